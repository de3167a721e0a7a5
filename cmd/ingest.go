package cmd

import (
	"context"
	"fmt"

	"bookledger/core/config"
	"bookledger/core/database"
	"bookledger/core/logger"
	"bookledger/feature/ingest"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// ingestCmd loads a raw catalog export into the books table.
var ingestCmd = &cobra.Command{
	Use:   "ingest <export-file>",
	Short: "Ingest a raw catalog export into the books table",
	Long: `Ingest parses a catalog export written in Ruby hash notation,
normalizes every price to USD, and inserts the rows into the configured
MySQL books table.

Example:
  bookledger ingest ./task1_d.json`,
	Args: cobra.ExactArgs(1),
	RunE: runIngest,
}

func init() {
	RootCmd.AddCommand(ingestCmd)
}

func runIngest(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	cfg, err := config.LoadConfig(".")
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	l, err := logger.New(&cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	db, err := database.Connect(cfg.Database)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	svc := ingest.NewService(db, l, cfg.Batch.EURUSDRate)
	n, err := svc.IngestFile(ctx, args[0])
	if err != nil {
		return err
	}

	l.Info("Catalog ingested", zap.String("file", args[0]), zap.Int("rows", n))
	return nil
}
