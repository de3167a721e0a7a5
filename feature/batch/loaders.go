package batch

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"bookledger/feature/orders"

	"github.com/parquet-go/parquet-go"
	"gopkg.in/yaml.v3"
)

// rawOrder mirrors the columnar layout of the orders export.
type rawOrder struct {
	UserID    int64  `parquet:"user_id"`
	BookID    int64  `parquet:"book_id"`
	Quantity  int64  `parquet:"quantity"`
	UnitPrice string `parquet:"unit_price"`
	Timestamp string `parquet:"timestamp"`
}

// LoadOrders reads the orders dataset of one batch folder.
func LoadOrders(path string) ([]orders.Order, error) {
	rows, err := parquet.ReadFile[rawOrder](path)
	if err != nil {
		return nil, fmt.Errorf("failed to read orders %s: %w", path, err)
	}

	batch := make([]orders.Order, len(rows))
	for i, r := range rows {
		batch[i] = orders.Order{
			UserID:       r.UserID,
			BookID:       r.BookID,
			Quantity:     r.Quantity,
			RawUnitPrice: r.UnitPrice,
			RawTimestamp: r.Timestamp,
		}
	}
	return batch, nil
}

// LoadUsers reads the delimited users dataset. Columns are resolved by
// header name so column order does not matter.
func LoadUsers(path string) ([]orders.User, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open users %s: %w", path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse users %s: %w", path, err)
	}
	if len(records) == 0 {
		return nil, nil
	}

	col := make(map[string]int, len(records[0]))
	for i, name := range records[0] {
		col[name] = i
	}
	idCol, ok := col["id"]
	if !ok {
		return nil, fmt.Errorf("users %s: missing id column", path)
	}

	field := func(rec []string, name string) string {
		if i, ok := col[name]; ok && i < len(rec) {
			return rec[i]
		}
		return ""
	}

	users := make([]orders.User, 0, len(records)-1)
	for _, rec := range records[1:] {
		id, err := strconv.ParseInt(rec[idCol], 10, 64)
		if err != nil {
			return nil, fmt.Errorf("users %s: bad id %q: %w", path, rec[idCol], err)
		}
		users = append(users, orders.User{
			ID:      id,
			Name:    field(rec, "name"),
			Address: field(rec, "address"),
			Phone:   field(rec, "phone"),
			Email:   field(rec, "email"),
		})
	}
	return users, nil
}

// rawBook maps the catalog's colon-prefixed field names onto the Book model.
type rawBook struct {
	ID        int64  `yaml:":id"`
	Title     string `yaml:":title"`
	Author    string `yaml:":author"`
	Genre     string `yaml:":genre"`
	Publisher string `yaml:":publisher"`
	Year      int    `yaml:":year"`
}

// LoadBooks reads the YAML book catalog of one batch folder.
func LoadBooks(path string) ([]orders.Book, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read books %s: %w", path, err)
	}

	var raw []rawBook
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse books %s: %w", path, err)
	}

	books := make([]orders.Book, len(raw))
	for i, r := range raw {
		books[i] = orders.Book{
			ID:        r.ID,
			Title:     r.Title,
			Author:    r.Author,
			Genre:     r.Genre,
			Publisher: r.Publisher,
			Year:      r.Year,
		}
	}
	return books, nil
}
