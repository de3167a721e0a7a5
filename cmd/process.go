package cmd

import (
	"context"
	"fmt"

	"bookledger/core/config"
	"bookledger/core/logger"
	"bookledger/core/storage"
	"bookledger/feature/batch"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	// Flags for the process command
	basePathFlag string
	workersFlag  int
)

// processCmd runs the full reconciliation pipeline over every batch folder.
var processCmd = &cobra.Command{
	Use:   "process",
	Short: "Process all batch folders under the base path",
	Long: `Process runs the reconciliation pipeline on every folder under the
configured base path. Each folder holds an orders export (orders.parquet),
a users table (users.csv) and a book catalog (books.yaml); the pipeline
writes daily_revenue.csv and summary.csv back into the folder.

A folder with missing or corrupt inputs is logged and skipped. The run only
fails when the base path is unreadable or contains no folders at all.

Examples:
  # Process the configured base path
  bookledger process

  # Process a one-off directory with more workers
  bookledger process --base-path ./march_batches --workers 8`,
	RunE: runProcess,
}

func init() {
	processCmd.Flags().StringVar(&basePathFlag, "base-path", "", "Override the configured batch base path")
	processCmd.Flags().IntVar(&workersFlag, "workers", 0, "Override the configured folder worker count")

	RootCmd.AddCommand(processCmd)
}

func runProcess(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	cfg, err := config.LoadConfig(".")
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if basePathFlag != "" {
		cfg.Batch.BasePath = basePathFlag
	}
	if workersFlag > 0 {
		cfg.Batch.Workers = workersFlag
	}

	l, err := logger.New(&cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	l.Info("Starting batch run",
		zap.String("base_path", cfg.Batch.BasePath),
		zap.Float64("eur_usd_rate", cfg.Batch.EURUSDRate),
		zap.Int("workers", cfg.Batch.Workers),
	)

	o := batch.NewOrchestrator(cfg.Batch, l)
	if cfg.Batch.PublishReports {
		client, err := storage.NewClient(cfg.Storage)
		if err != nil {
			return fmt.Errorf("failed to connect to storage: %w", err)
		}
		o = o.WithPublisher(client, cfg.Storage.Bucket)
	}

	reports, err := o.Run(ctx)
	if err != nil {
		return err
	}

	for _, r := range reports {
		l.Info("Folder summary",
			zap.String("folder", r.Folder),
			zap.Strings("top_days", r.TopDays),
			zap.Int("unique_users", r.UniqueUsers),
			zap.Int("unique_authors", r.UniqueAuthors),
			zap.String("most_popular_author", r.MostPopularAuthor),
			zap.String("best_buyer", r.BestBuyer),
		)
	}
	return nil
}
