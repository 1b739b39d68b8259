package main

import (
	"github.com/spf13/cobra"

	"github.com/tabula-historica/snapshot/internal/cli"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Verify the published snapshot is up to date",
	Long:  `Renders the snapshot without writing it and compares it with the published file. Exits 1 and prints a diff when they differ.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logger, err := setup(cmd)
		if err != nil {
			return err
		}
		return cli.Check(cmd.Context(), cfg, cmd.OutOrStdout(), logger)
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)
	addLocationFlags(checkCmd)
}
