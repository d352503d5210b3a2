package cli

import (
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	cfg    *Config
	client *Client
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	cfg = DefaultConfig()

	rootCmd := &cobra.Command{
		Use:   "fairychess",
		Short: "CLI tool for the fairy chess server",
		Long: `fairychess plays chess, checkers and fantasy chess variants.

It drives a fairychess server over its JSON API (games, clicks, computer
moves and real-time SSE event streams) and can also play or benchmark
games locally without a server.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if cfg.NoColor {
				color.NoColor = true
			}

			client = NewClient(cfg.ServerURL)
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfg.ServerURL, "server", cfg.ServerURL, "Server URL (env: FAIRYCHESS_SERVER)")
	rootCmd.PersistentFlags().StringVarP(&cfg.Output, "output", "o", cfg.Output, "Output format: text, json (env: FAIRYCHESS_OUTPUT)")
	rootCmd.PersistentFlags().BoolVar(&cfg.NoColor, "no-color", cfg.NoColor, "Disable coloured boards (env: NO_COLOR)")
	rootCmd.PersistentFlags().BoolVarP(&cfg.Verbose, "verbose", "v", cfg.Verbose, "Verbose output")

	// Add subcommands
	rootCmd.AddCommand(newGameCmd())
	rootCmd.AddCommand(newEventsCmd())
	rootCmd.AddCommand(newModesCmd())
	rootCmd.AddCommand(newHealthCmd())
	rootCmd.AddCommand(newPlayCmd())
	rootCmd.AddCommand(newSearchCmd())

	return rootCmd
}

// Execute runs the root command, reporting errors in the configured output
// format
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		NewOutput(cfg.Output, os.Stdout).PrintError(err)
		os.Exit(1)
	}
}
