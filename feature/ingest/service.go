package ingest

import (
	"context"
	"fmt"
	"os"

	"bookledger/feature/normalize"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Service ingests raw catalog exports into the books table.
type Service struct {
	db      *gorm.DB
	logger  *zap.Logger
	eurRate float64
}

// NewService creates a new ingest service.
func NewService(db *gorm.DB, logger *zap.Logger, eurRate float64) *Service {
	return &Service{db: db, logger: logger, eurRate: eurRate}
}

// IngestFile parses the export at path, normalizes every price to USD, and
// inserts the resulting rows. Records whose price cannot be normalized are
// logged and skipped rather than failing the whole file. Returns the number
// of rows inserted.
func (s *Service) IngestFile(ctx context.Context, path string) (int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, fmt.Errorf("failed to read catalog export %s: %w", path, err)
	}

	records, err := ParseCatalog(data)
	if err != nil {
		return 0, err
	}

	rows := make([]BookRow, 0, len(records))
	for _, rec := range records {
		price := normalize.Price(rec.Price, s.eurRate)
		if price == nil {
			s.logger.Warn("Skipping record with unparseable price",
				zap.Int64("book_id", rec.ID),
				zap.String("price", rec.Price),
			)
			continue
		}
		rows = append(rows, BookRow{
			BookID:          rec.ID,
			BookTitle:       rec.Title,
			BookAuthor:      rec.Author,
			BookGenre:       rec.Genre,
			BookPublisher:   rec.Publisher,
			BookReleaseYear: rec.Year,
			BookPriceInUSD:  *price,
		})
	}
	if len(rows) == 0 {
		return 0, nil
	}

	if err := s.db.WithContext(ctx).Create(&rows).Error; err != nil {
		return 0, fmt.Errorf("failed to insert catalog rows: %w", err)
	}
	return len(rows), nil
}
