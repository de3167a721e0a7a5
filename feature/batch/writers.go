package batch

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"

	"bookledger/feature/revenue"
)

// WriteDailyRevenue writes the per-day revenue table as CSV with two-decimal
// amounts.
func WriteDailyRevenue(path string, series []revenue.DailyRevenue) error {
	rows := make([][]string, 0, len(series)+1)
	rows = append(rows, []string{"date", "daily_revenue"})
	for _, d := range series {
		rows = append(rows, []string{d.Date, strconv.FormatFloat(d.Revenue, 'f', 2, 64)})
	}
	return writeCSV(path, rows)
}

// WriteSummary writes the one-row folder summary table.
func WriteSummary(path string, r FolderReport) error {
	rows := [][]string{
		{"top_5_days", "unique_users_number", "unique_authors", "most_popular_author", "best_buyer"},
		{
			strings.Join(r.TopDays, ","),
			strconv.Itoa(r.UniqueUsers),
			strconv.Itoa(r.UniqueAuthors),
			r.MostPopularAuthor,
			r.BestBuyer,
		},
	}
	return writeCSV(path, rows)
}

func writeCSV(path string, rows [][]string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}

	w := csv.NewWriter(f)
	if err := w.WriteAll(rows); err != nil {
		f.Close()
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close %s: %w", path, err)
	}
	return nil
}
