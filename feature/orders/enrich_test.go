package orders

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnrich(t *testing.T) {
	batch := []Order{
		{UserID: 1, BookID: 10, Quantity: 3, RawUnitPrice: "€10", RawTimestamp: "12/03/2024 10:15:00,"},
		{UserID: 2, BookID: 11, Quantity: 2, RawUnitPrice: "12,50", RawTimestamp: "garbage"},
		{UserID: 3, BookID: 12, Quantity: 5, RawUnitPrice: "n/a", RawTimestamp: "2024-01-01"},
	}

	Enrich(batch, 1.2)

	// EUR converted, paid derived, day-first timestamp parsed.
	require.NotNil(t, batch[0].UnitPriceUSD)
	assert.InDelta(t, 12.0, *batch[0].UnitPriceUSD, 0.001)
	require.NotNil(t, batch[0].PaidPrice)
	assert.InDelta(t, 36.0, *batch[0].PaidPrice, 0.001)
	require.NotNil(t, batch[0].Timestamp)
	assert.Equal(t, 12, batch[0].Timestamp.Day())

	// Bad timestamp degrades to nil without touching the price.
	assert.Nil(t, batch[1].Timestamp)
	require.NotNil(t, batch[1].PaidPrice)
	assert.InDelta(t, 25.0, *batch[1].PaidPrice, 0.001)

	// Bad price propagates to a nil paid price, row is kept.
	assert.Nil(t, batch[2].UnitPriceUSD)
	assert.Nil(t, batch[2].PaidPrice)
	require.NotNil(t, batch[2].Timestamp)
}

func TestPaidOrZero(t *testing.T) {
	paid := 9.5
	assert.Equal(t, 9.5, (&Order{PaidPrice: &paid}).PaidOrZero())
	assert.Equal(t, 0.0, (&Order{}).PaidOrZero())
}
