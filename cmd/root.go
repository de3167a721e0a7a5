package cmd

import (
	"fmt"
	"os"

	"bookledger/core/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "bookledger",
	Short: "Book-store transaction reconciliation",
	Long: `Bookledger reconciles messy book-store transaction batches.
It normalizes human-entered timestamps and prices, deduplicates customer
identities, and produces per-folder revenue and author reports.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	if err := RootCmd.Execute(); err != nil {
		// Report through the standard structured logger. Console format and
		// debug level give readable ISO8601 output for a CLI tool.
		cfg := &logger.Config{
			Level:  "debug",
			Format: "console",
		}

		l, logErr := logger.New(cfg)
		if logErr == nil {
			l.Error("command failed", zap.Error(err))
			_ = l.Sync()
		} else {
			// Absolute fallback if logger creation fails (rare)
			fmt.Println(err)
		}
		os.Exit(1)
	}
}
