package orders

import "bookledger/feature/normalize"

// Enrich normalizes every order in the batch in place: the raw timestamp and
// unit price are run through the field normalizer and the paid price is
// derived. A nil unit price propagates to a nil paid price; the row itself is
// never dropped, later stages decide what a nil excludes.
func Enrich(batch []Order, eurRate float64) {
	for i := range batch {
		o := &batch[i]
		o.Timestamp = normalize.Timestamp(o.RawTimestamp)
		o.UnitPriceUSD = normalize.Price(o.RawUnitPrice, eurRate)
		if o.UnitPriceUSD != nil {
			paid := float64(o.Quantity) * *o.UnitPriceUSD
			o.PaidPrice = &paid
		} else {
			o.PaidPrice = nil
		}
	}
}

// PaidOrZero returns the order's paid price, treating nil as a zero
// contribution. Revenue sums use this so rows with unparseable prices do not
// poison the aggregate.
func (o *Order) PaidOrZero() float64 {
	if o.PaidPrice == nil {
		return 0
	}
	return *o.PaidPrice
}
