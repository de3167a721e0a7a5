package batch

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"bookledger/core/storage"
	"bookledger/feature/catalog"
	"bookledger/feature/identity"
	"bookledger/feature/orders"
	"bookledger/feature/revenue"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// ErrNoFolders is returned when the base path contains no batch folders.
var ErrNoFolders = errors.New("no batch folders found")

// FolderReport is the one-row summary produced for a single batch folder.
type FolderReport struct {
	Folder            string
	TopDays           []string
	UniqueUsers       int
	UniqueAuthors     int
	MostPopularAuthor string
	BestBuyer         string
}

// Orchestrator discovers batch folders under the configured base path and
// runs the full pipeline on each of them.
type Orchestrator struct {
	cfg    Config
	logger *zap.Logger
	store  storage.Client
	bucket string
}

// NewOrchestrator creates an orchestrator without report publishing.
func NewOrchestrator(cfg Config, logger *zap.Logger) *Orchestrator {
	return &Orchestrator{cfg: cfg, logger: logger}
}

// WithPublisher enables uploading per-folder outputs to object storage.
func (o *Orchestrator) WithPublisher(store storage.Client, bucket string) *Orchestrator {
	o.store = store
	o.bucket = bucket
	return o
}

// Run processes every batch folder. Folders are independent units of work:
// they run through a bounded worker pool and a failing folder is logged and
// skipped without aborting the others. Run fails hard only when the base
// path is unreadable or holds no folders at all.
func (o *Orchestrator) Run(ctx context.Context) ([]FolderReport, error) {
	runLog := o.logger.With(zap.String("run_id", uuid.NewString()))

	entries, err := os.ReadDir(o.cfg.BasePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read base path %s: %w", o.cfg.BasePath, err)
	}
	var folders []string
	for _, e := range entries {
		if e.IsDir() {
			folders = append(folders, e.Name())
		}
	}
	if len(folders) == 0 {
		return nil, fmt.Errorf("%w under %s", ErrNoFolders, o.cfg.BasePath)
	}

	workers := o.cfg.Workers
	if workers <= 0 {
		workers = 1
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	var (
		mu      sync.Mutex
		reports []FolderReport
	)
	for _, folder := range folders {
		folder := folder
		g.Go(func() error {
			l := runLog.With(zap.String("folder", folder))
			report, err := o.ProcessFolder(ctx, folder, l)
			if err != nil {
				// Folder-level failures never abort the run.
				l.Warn("Skipping folder", zap.Error(err))
				return nil
			}
			mu.Lock()
			reports = append(reports, report)
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	sort.Slice(reports, func(i, j int) bool { return reports[i].Folder < reports[j].Folder })
	runLog.Info("Batch run finished",
		zap.Int("folders", len(folders)),
		zap.Int("processed", len(reports)),
		zap.Int("skipped", len(folders)-len(reports)),
	)
	return reports, nil
}

// ProcessFolder runs the pipeline for one batch folder: load, enrich, the
// three aggregations, then the two output tables.
func (o *Orchestrator) ProcessFolder(ctx context.Context, folder string, l *zap.Logger) (FolderReport, error) {
	dir := filepath.Join(o.cfg.BasePath, folder)

	batch, err := LoadOrders(filepath.Join(dir, OrdersFile))
	if err != nil {
		return FolderReport{}, err
	}
	users, err := LoadUsers(filepath.Join(dir, UsersFile))
	if err != nil {
		return FolderReport{}, err
	}
	books, err := LoadBooks(filepath.Join(dir, BooksFile))
	if err != nil {
		return FolderReport{}, err
	}

	orders.Enrich(batch, o.cfg.EURUSDRate)

	identities := identity.Resolve(batch, users)
	sales := catalog.Aggregate(batch, books)
	daily := revenue.Daily(batch)

	report := FolderReport{
		Folder:            folder,
		TopDays:           revenue.TopDays(daily, o.cfg.TopDays),
		UniqueUsers:       identities.UniqueUsers,
		UniqueAuthors:     sales.UniqueAuthors,
		MostPopularAuthor: sales.MostPopularAuthor,
	}
	if b := identities.BestBuyer; b != nil {
		report.BestBuyer = fmt.Sprintf("%s (Ids: %s)", b.Name, b.ID)
	}

	if err := WriteDailyRevenue(filepath.Join(dir, DailyFile), daily); err != nil {
		return FolderReport{}, err
	}
	if err := WriteSummary(filepath.Join(dir, SummaryFile), report); err != nil {
		return FolderReport{}, err
	}
	l.Info("Folder processed",
		zap.Int("orders", len(batch)),
		zap.Int("unique_users", report.UniqueUsers),
		zap.Int("unique_authors", report.UniqueAuthors),
	)

	if o.cfg.PublishReports && o.store != nil {
		o.publish(ctx, folder, dir, l)
	}
	return report, nil
}
