package ingest

// BookRow is the relational shape of one normalized catalog entry.
type BookRow struct {
	BookID          int64   `gorm:"column:BookID;primaryKey"`
	BookTitle       string  `gorm:"column:BookTitle"`
	BookAuthor      string  `gorm:"column:BookAuthor"`
	BookGenre       string  `gorm:"column:BookGenre"`
	BookPublisher   string  `gorm:"column:BookPublisher"`
	BookReleaseYear int     `gorm:"column:BookReleaseYear"`
	BookPriceInUSD  float64 `gorm:"column:BookPriceInUSD"`
}

// TableName maps the model onto the existing books table.
func (BookRow) TableName() string {
	return "books"
}
