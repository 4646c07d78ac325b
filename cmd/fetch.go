package main

import (
	"time"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/cardtable-labs/bga-cli/internal/bga"
	"github.com/cardtable-labs/bga-cli/internal/snapshot"
)

var fetchTimestamp bool

var fetchCmd = &cobra.Command{
	Use:   "fetch",
	Short: "Download the BGA game catalog and snapshot it as JSON",
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx := cmd.Context()

		client := bga.NewClient(cfg.BGA, cfg.Session)
		list, err := client.FetchGameList(ctx)
		if err != nil {
			return eris.Wrap(err, "fetch: game list")
		}
		zap.L().Info("fetched game list", zap.Int("games", len(list.Games)))

		path := snapshot.Path(cfg.Data.Dir, fetchTimestamp, time.Now())
		if err := snapshot.Write(path, list.Raw); err != nil {
			return eris.Wrap(err, "fetch: write snapshot")
		}
		zap.L().Info("wrote snapshot", zap.String("path", path))

		return nil
	},
}

func init() {
	fetchCmd.Flags().BoolVar(&fetchTimestamp, "timestamp", false, "suffix the snapshot filename with YYYYMMDD")
	rootCmd.AddCommand(fetchCmd)
}
