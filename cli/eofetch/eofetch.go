package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/glorpus-work/eofetch/internal/cli"
	"github.com/glorpus-work/eofetch/pkg/logger"
	"github.com/spf13/cobra"
)

var (
	configPath string
	verbose    bool
	noColor    bool
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	rootCmd := newRootCmd()
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		cancel()
		os.Exit(1)
	}

	cancel()
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "eofetch",
		Short: "Fetch satellite imagery from object storage",
		Long: `eofetch resolves Sentinel-2 product identifiers against an S3 object
store and downloads band files in parallel:
- CLI: search the catalog, resolve product paths, fetch bands
- Library: naming codecs, path resolution and bulk download`,
		SilenceUsage: true,
		PersistentPreRun: func(*cobra.Command, []string) {
			level := "info"
			if verbose {
				level = "debug"
			}
			logger.InitLogger(level, noColor)
		},
	}

	// Global flags
	cmd.PersistentFlags().StringVar(&configPath, "config", "", "config file path (default: auto-detect)")
	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	cmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")

	// Set up CLI pkg variables
	cli.ConfigPath = &configPath
	cli.Verbose = &verbose
	cli.NoColor = &noColor

	// Add subcommands
	cmd.AddCommand(
		cli.NewSearchCmd(),
		cli.NewResolveCmd(),
		cli.NewFetchCmd(),
		cli.NewConfigCmd(),
		cli.NewCacheCmd(),
		cli.NewVersionCmd(),
	)

	return cmd
}
