// Package report turns the raw game catalog into the trick-taker CSV.
package report

import (
	"encoding/csv"
	"io"
	"os"
	"sort"

	"github.com/rotisserie/eris"

	"github.com/cardtable-labs/bga-cli/internal/model"
)

// header is the fixed CSV header row.
var header = []string{"Name", "Status", "Players"}

// Build projects the catalog to output rows: trick-taking games only,
// player counts compacted to a range string, status normalized, sorted
// ascending by name (case-sensitive).
func Build(games []model.Game) []model.Row {
	var rows []model.Row
	for _, g := range games {
		if !IsTrickTaker(g.Tags) {
			continue
		}
		rows = append(rows, model.Row{
			Name:    g.Name,
			Status:  NormalizeStatus(g.Status),
			Players: FormatRanges(Compact(g.PlayerNumbers)),
		})
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].Name < rows[j].Name })
	return rows
}

// WriteCSV writes the header and rows with \n line endings. The header is
// written even when rows is empty.
func WriteCSV(w io.Writer, rows []model.Row) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(header); err != nil {
		return eris.Wrap(err, "report: write header")
	}
	for _, r := range rows {
		if err := cw.Write([]string{r.Name, r.Status, r.Players}); err != nil {
			return eris.Wrap(err, "report: write row")
		}
	}

	cw.Flush()
	return eris.Wrap(cw.Error(), "report: flush")
}

// WriteCSVFile writes rows to path, creating or truncating it.
func WriteCSVFile(path string, rows []model.Row) error {
	f, err := os.Create(path)
	if err != nil {
		return eris.Wrap(err, "report: create output file")
	}
	defer f.Close()

	return WriteCSV(f, rows)
}
