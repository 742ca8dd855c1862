// Package commands implements the splitledger CLI.
package commands

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/mmynk/splitledger/pkg/logging"
)

// Version is set at build time via -ldflags.
var Version = "dev"

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	var logLevel string

	rootCmd := &cobra.Command{
		Use:     "splitledger",
		Short:   "Track shared expenses and work out who pays whom",
		Version: Version,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			slog.SetDefault(logging.New(cmd.ErrOrStderr(), logging.ParseLevel(logLevel), "text"))
		},
	}

	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "log level: debug, info, warn, error")
	rootCmd.AddCommand(newSettleCommand())

	return rootCmd
}
