// Package snapshot persists the raw game catalog as pretty-printed JSON.
package snapshot

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	"github.com/rotisserie/eris"

	"github.com/cardtable-labs/bga-cli/internal/model"
)

// Path returns the snapshot filename under dir, suffixed with YYYYMMDD
// when timestamped.
func Path(dir string, timestamped bool, now time.Time) string {
	if timestamped {
		return filepath.Join(dir, "bga-list-"+now.Format("20060102")+".json")
	}
	return filepath.Join(dir, "bga-list.json")
}

// Write pretty-prints the raw game_list array to path with 2-space
// indentation, creating the parent directory if needed.
func Write(path string, raw json.RawMessage) error {
	var buf bytes.Buffer
	if err := json.Indent(&buf, raw, "", "  "); err != nil {
		return eris.Wrap(err, "snapshot: indent game list")
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return eris.Wrap(err, "snapshot: create data dir")
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return eris.Wrap(err, "snapshot: write file")
	}
	return nil
}

// Read loads a snapshot back into game records.
func Read(path string) ([]model.Game, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, eris.Wrap(err, "snapshot: read file")
	}

	var games []model.Game
	if err := json.Unmarshal(data, &games); err != nil {
		return nil, eris.Wrap(err, "snapshot: decode game list")
	}
	return games, nil
}
