package main

import (
	"github.com/spf13/cobra"

	"github.com/tabula-historica/snapshot/internal/cli"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the published snapshot over HTTP",
	Long:  `Serves the published snapshot (from Redis when configured, otherwise from the output file) with /healthz and /metrics endpoints.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logger, err := setup(cmd)
		if err != nil {
			return err
		}

		ctx := cli.NewSignalContext(cmd.Context())
		defer ctx.Cancel()

		if err := cli.Serve(ctx, cfg, logger); err != nil {
			return err
		}
		if sig := ctx.Signal(); sig != nil {
			logger.Info("Server stopped", "signal", sig.String())
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().String("output", "", "Snapshot file to serve")
	serveCmd.Flags().String("redis-addr", "", "Serve the snapshot from this Redis server instead")
	serveCmd.Flags().String("redis-key", "", "Redis key of the snapshot")
	serveCmd.Flags().StringP("addr", "a", ":8080", "Address to listen on")
}
