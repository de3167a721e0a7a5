// Package ingest loads a raw catalog export into the relational books table.
//
// The export is JSON written by a Ruby process: hash-rocket arrows instead of
// colons and :symbol keys instead of quoted strings. The parser rewrites the
// text into strict JSON, prices are normalized to USD through the field
// normalizer, and the cleaned rows are inserted through GORM.
package ingest
