package orders

import "time"

// Order is one transaction row from a batch export. The raw string fields
// carry whatever the upstream system produced; the derived fields are filled
// in by Enrich and stay nil when normalization fails.
type Order struct {
	UserID       int64
	BookID       int64
	Quantity     int64
	RawUnitPrice string
	RawTimestamp string

	// UnitPriceUSD is the normalized unit price in USD, nil if unparseable.
	UnitPriceUSD *float64
	// PaidPrice is Quantity * UnitPriceUSD, nil if the unit price is nil.
	PaidPrice *float64
	// Timestamp is the parsed purchase time, nil if unparseable.
	Timestamp *time.Time
}

// User is an immutable customer reference row. Any field other than ID may
// be blank.
type User struct {
	ID      int64
	Name    string
	Address string
	Phone   string
	Email   string
}

// Book is an immutable catalog reference row.
type Book struct {
	ID        int64
	Title     string
	Author    string
	Genre     string
	Publisher string
	Year      int
}
