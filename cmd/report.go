package main

import (
	"time"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/cardtable-labs/bga-cli/internal/report"
	"github.com/cardtable-labs/bga-cli/internal/snapshot"
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Write the trick-taker CSV from the current snapshot",
	RunE: func(cmd *cobra.Command, _ []string) error {
		path := snapshot.Path(cfg.Data.Dir, false, time.Now())
		games, err := snapshot.Read(path)
		if err != nil {
			return eris.Wrap(err, "report: read snapshot")
		}

		rows := report.Build(games)
		if err := report.WriteCSVFile(cfg.Report.Output, rows); err != nil {
			return eris.Wrap(err, "report: write csv")
		}

		zap.L().Info("wrote report",
			zap.String("path", cfg.Report.Output),
			zap.Int("rows", len(rows)),
		)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(reportCmd)
}
