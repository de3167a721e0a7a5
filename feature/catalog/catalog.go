// Package catalog aggregates order quantities against the book reference
// catalog: distinct authors sold, per-author totals and the top seller.
package catalog

import (
	"sort"

	"bookledger/feature/orders"
)

// AuthorSales is the total quantity sold for one author.
type AuthorSales struct {
	Author   string
	Quantity int64
}

// Summary is the catalog aggregation output for one batch.
type Summary struct {
	// UniqueAuthors counts distinct authors among orders that matched a
	// catalog entry. Orders referencing unknown book ids are excluded.
	UniqueAuthors int
	// Sales is sorted by quantity descending, author name ascending on ties.
	Sales []AuthorSales
	// MostPopularAuthor is the author with the highest total, empty when no
	// order matched the catalog.
	MostPopularAuthor string
}

// Aggregate joins the batch to the catalog by book id and totals quantities
// per author. Quantity is taken as-is; rows with unparseable prices still
// count here.
func Aggregate(batch []orders.Order, books []orders.Book) Summary {
	byID := make(map[int64]orders.Book, len(books))
	for _, b := range books {
		byID[b.ID] = b
	}

	totals := make(map[string]int64)
	for i := range batch {
		book, ok := byID[batch[i].BookID]
		if !ok || book.Author == "" {
			continue
		}
		totals[book.Author] += batch[i].Quantity
	}

	sales := make([]AuthorSales, 0, len(totals))
	for author, qty := range totals {
		sales = append(sales, AuthorSales{Author: author, Quantity: qty})
	}
	sort.Slice(sales, func(i, j int) bool {
		if sales[i].Quantity != sales[j].Quantity {
			return sales[i].Quantity > sales[j].Quantity
		}
		return sales[i].Author < sales[j].Author
	})

	s := Summary{UniqueAuthors: len(totals), Sales: sales}
	if len(sales) > 0 {
		s.MostPopularAuthor = sales[0].Author
	}
	return s
}
