package main

import (
	"github.com/spf13/cobra"

	"github.com/tabula-historica/snapshot/internal/cli"
)

// exportCmd represents the export command
var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write the public snapshot of the project",
	Long:  `Loads the project document, strips its private keys and replaces the published snapshot atomically.`,
	Args:  cobra.NoArgs,
	RunE:  runExport,
}

func runExport(cmd *cobra.Command, args []string) error {
	cfg, logger, err := setup(cmd)
	if err != nil {
		return err
	}
	_, err = cli.Export(cmd.Context(), cfg, logger)
	return err
}

// addLocationFlags registers the flags shared by every command that renders a snapshot.
func addLocationFlags(cmd *cobra.Command) {
	cmd.Flags().String("input", "", "Project document to read")
	cmd.Flags().String("output", "", "Snapshot file to write")
	cmd.Flags().StringSlice("strip", nil, "Top-level keys to remove (default: references,historyManager)")
	cmd.Flags().Bool("allow-missing", false, "Treat absent keys as already removed instead of failing")
	cmd.Flags().String("indent", "", "Pretty-print the snapshot with this indent")
}

func addExportFlags(cmd *cobra.Command) {
	addLocationFlags(cmd)
	cmd.Flags().String("redis-addr", "", "Also publish the snapshot to this Redis server")
	cmd.Flags().String("redis-key", "", "Redis key for the snapshot")
	cmd.Flags().Duration("redis-ttl", 0, "Expiration of the Redis key (0 = none)")
}

func init() {
	rootCmd.AddCommand(exportCmd)
	addExportFlags(exportCmd)

	// Running the bare command exports with defaults.
	addExportFlags(rootCmd)
	rootCmd.Args = cobra.NoArgs
	rootCmd.RunE = runExport
}
