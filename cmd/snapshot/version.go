package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tabula-historica/snapshot"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of snapshot",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "snapshot version %s\n", strings.TrimSpace(snapshot.Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
