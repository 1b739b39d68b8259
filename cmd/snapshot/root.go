package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/tabula-historica/snapshot/internal/cli"
	"github.com/tabula-historica/snapshot/internal/config"
)

var rootCmd = &cobra.Command{
	Use:   "snapshot",
	Short: "Publish the public snapshot of a project document",
	Long: `Reads the project document, removes its private top-level keys ("references" and
"historyManager") and writes the result where the static site serves it.

Run without arguments it reads ../projects/final_project/project.json and
writes ../static/static-project.json.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().String("config", "", "Config file (default: ./"+config.DefaultFile+" if present)")
	rootCmd.PersistentFlags().String("log-level", "", "Log level: debug, info, warn, error (default: warn)")
}

// setup loads the config file, applies the flags that were set explicitly, and builds the logger.
func setup(cmd *cobra.Command) (config.Config, *slog.Logger, error) {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		return cfg, nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("log-level") {
		cfg.LogLevel, _ = flags.GetString("log-level")
	}
	if flags.Changed("input") {
		cfg.Input, _ = flags.GetString("input")
	}
	if flags.Changed("output") {
		cfg.Output, _ = flags.GetString("output")
	}
	if flags.Changed("strip") {
		cfg.Strip, _ = flags.GetStringSlice("strip")
	}
	if flags.Changed("allow-missing") {
		cfg.AllowMissing, _ = flags.GetBool("allow-missing")
	}
	if flags.Changed("indent") {
		cfg.Indent, _ = flags.GetString("indent")
	}
	if flags.Changed("redis-addr") {
		cfg.Redis.Addr, _ = flags.GetString("redis-addr")
	}
	if flags.Changed("redis-key") {
		cfg.Redis.Key, _ = flags.GetString("redis-key")
	}
	if flags.Changed("redis-ttl") {
		cfg.Redis.TTL, _ = flags.GetDuration("redis-ttl")
	}
	if flags.Changed("addr") {
		cfg.Serve.Addr, _ = flags.GetString("addr")
	}

	logger, err := cli.CreateLogger(cfg.LogLevel)
	if err != nil {
		return cfg, nil, err
	}
	return cfg, logger, nil
}
