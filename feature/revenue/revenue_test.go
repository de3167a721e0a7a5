package revenue

import (
	"testing"
	"time"

	"bookledger/feature/orders"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func onDay(day int, paid float64) orders.Order {
	ts := time.Date(2024, time.March, day, 10, 0, 0, 0, time.UTC)
	return orders.Order{Quantity: 1, Timestamp: &ts, PaidPrice: &paid}
}

func TestDaily(t *testing.T) {
	batch := []orders.Order{
		onDay(2, 10),
		onDay(1, 5),
		onDay(2, 2.5),
		{Quantity: 1, Timestamp: nil, PaidPrice: new(float64)}, // excluded
	}

	series := Daily(batch)

	require.Len(t, series, 2)
	assert.Equal(t, "2024-03-01", series[0].Date)
	assert.InDelta(t, 5.0, series[0].Revenue, 0.001)
	assert.Equal(t, "2024-03-02", series[1].Date)
	assert.InDelta(t, 12.5, series[1].Revenue, 0.001)
}

func TestDaily_NilPaidContributesZero(t *testing.T) {
	ts := time.Date(2024, time.March, 3, 0, 0, 0, 0, time.UTC)
	batch := []orders.Order{
		{Timestamp: &ts, PaidPrice: nil},
		onDay(3, 4),
	}

	series := Daily(batch)

	require.Len(t, series, 1)
	assert.InDelta(t, 4.0, series[0].Revenue, 0.001)
}

func TestDaily_SeriesSumsToParsableRevenue(t *testing.T) {
	batch := []orders.Order{
		onDay(1, 1.25),
		onDay(2, 2.5),
		onDay(2, 3),
		{Timestamp: nil, PaidPrice: fptr(100)}, // unparseable timestamp
	}

	var total float64
	for _, d := range Daily(batch) {
		total += d.Revenue
	}
	assert.InDelta(t, 6.75, total, 0.001)
}

func TestDaily_NoParsableTimestamps(t *testing.T) {
	batch := []orders.Order{
		{Timestamp: nil, PaidPrice: fptr(10)},
	}
	assert.Empty(t, Daily(batch))
}

func TestTopDays(t *testing.T) {
	series := []DailyRevenue{
		{Date: "2024-03-01", Revenue: 5},
		{Date: "2024-03-02", Revenue: 20},
		{Date: "2024-03-03", Revenue: 5},
		{Date: "2024-03-04", Revenue: 10},
	}

	// Descending revenue, earlier date first on ties, capped at n.
	assert.Equal(t, []string{"2024-03-02", "2024-03-04", "2024-03-01"}, TopDays(series, 3))
	assert.Equal(t, []string{"2024-03-02", "2024-03-04", "2024-03-01", "2024-03-03"}, TopDays(series, 5))
	assert.Empty(t, TopDays(nil, 5))
}

func TestTopDays_DoesNotReorderInput(t *testing.T) {
	series := []DailyRevenue{
		{Date: "2024-03-01", Revenue: 1},
		{Date: "2024-03-02", Revenue: 2},
	}
	_ = TopDays(series, 2)
	assert.Equal(t, "2024-03-01", series[0].Date)
}

func fptr(v float64) *float64 { return &v }
