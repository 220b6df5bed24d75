package cli

import (
	"os"

	"github.com/spf13/cobra"
)

var (
	cfg    *Config
	client *Client
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "rsquare",
		Short: "CLI tool for the word square game API",
		Long: `rsquare is a CLI tool for playing the 5x5 word square game over its JSON API.

Two players take turns placing dictionary words on a shared board. Every
word after the first must reuse or touch letters already on the board.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			loaded, err := LoadConfig(cmd.Flags())
			if err != nil {
				return err
			}
			cfg = loaded

			// Create HTTP client
			client = NewClient(cfg.ServerURL)
			return nil
		},
		SilenceUsage: true,
	}

	// Global flags
	rootCmd.PersistentFlags().String("server", defaultServerURL, "Server URL (env: RSQUARE_SERVER)")
	rootCmd.PersistentFlags().StringP("output", "o", formatText, "Output format: text, json (env: RSQUARE_OUTPUT)")

	// Add subcommands
	rootCmd.AddCommand(newGameCmd())
	rootCmd.AddCommand(newWordCmd())
	rootCmd.AddCommand(newEventsCmd())
	rootCmd.AddCommand(newSummariesCmd())
	rootCmd.AddCommand(newHealthCmd())

	return rootCmd
}

// Execute runs the root command
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func output(cmd *cobra.Command) *Output {
	return NewOutput(cfg.Output, cmd.OutOrStdout())
}
