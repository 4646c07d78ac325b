package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cardtable-labs/bga-cli/internal/config"
	"github.com/cardtable-labs/bga-cli/internal/snapshot"
)

func TestReportCommand_EndToEnd(t *testing.T) {
	dir := t.TempDir()
	dataDir := filepath.Join(dir, "data")

	raw := json.RawMessage(`[
		{"display_name_en": "Zebra Cards", "player_numbers": [2, 3, 4], "tags": [[220, 1]], "status": "private"},
		{"display_name_en": "Apple Game", "player_numbers": [2], "tags": [[999, 1]], "status": "public"}
	]`)
	require.NoError(t, snapshot.Write(snapshot.Path(dataDir, false, time.Now()), raw))

	out := filepath.Join(dir, "bga-tricktakers.csv")
	cfg = &config.Config{
		Data:   config.DataConfig{Dir: dataDir},
		Report: config.ReportConfig{Output: out},
	}

	require.NoError(t, reportCmd.RunE(reportCmd, nil))

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, "Name,Status,Players\nZebra Cards,alpha,2-4\n", string(data))
}

func TestReportCommand_MissingSnapshot(t *testing.T) {
	dir := t.TempDir()
	cfg = &config.Config{
		Data:   config.DataConfig{Dir: filepath.Join(dir, "data")},
		Report: config.ReportConfig{Output: filepath.Join(dir, "out.csv")},
	}

	require.Error(t, reportCmd.RunE(reportCmd, nil))
}
