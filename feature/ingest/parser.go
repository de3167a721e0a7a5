package ingest

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
)

// Record is one catalog entry from the raw export. Price stays a string
// until normalization decides its currency.
type Record struct {
	ID        int64  `json:"id"`
	Title     string `json:"title"`
	Author    string `json:"author"`
	Genre     string `json:"genre"`
	Publisher string `json:"publisher"`
	Year      int    `json:"year"`
	Price     string `json:"price"`
}

// symbolKeyRe quotes a :symbol key at the start of an object or after a
// field separator.
var symbolKeyRe = regexp.MustCompile(`({|, ):(\w+)`)

// ParseCatalog converts the Ruby-hash flavored export into strict JSON and
// decodes it. Hash rockets become colons and symbol keys become quoted
// strings; the value side is already valid JSON.
func ParseCatalog(data []byte) ([]Record, error) {
	s := strings.ReplaceAll(string(data), "=>", ":")
	s = symbolKeyRe.ReplaceAllString(s, `$1"$2"`)

	var records []Record
	if err := json.Unmarshal([]byte(s), &records); err != nil {
		return nil, fmt.Errorf("failed to decode catalog export: %w", err)
	}
	return records, nil
}
