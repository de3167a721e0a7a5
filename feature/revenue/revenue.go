// Package revenue computes the temporal aggregations of a batch: the daily
// revenue series and the highest-revenue days.
package revenue

import (
	"sort"

	"bookledger/feature/orders"
)

// DateFormat is the ISO date layout used for all report output.
const DateFormat = "2006-01-02"

// DailyRevenue is the summed paid price of one calendar day.
type DailyRevenue struct {
	// Date is the ISO calendar date.
	Date string
	// Revenue is the day's paid price total, rows with nil paid prices
	// contributing zero.
	Revenue float64
}

// Daily groups orders with a parsed timestamp by calendar date and sums
// their paid prices. Orders whose timestamp failed normalization are
// excluded entirely. The series is sorted by date ascending; with no
// parsable timestamps it is empty.
func Daily(batch []orders.Order) []DailyRevenue {
	totals := make(map[string]float64)
	for i := range batch {
		o := &batch[i]
		if o.Timestamp == nil {
			continue
		}
		totals[o.Timestamp.Format(DateFormat)] += o.PaidOrZero()
	}

	series := make([]DailyRevenue, 0, len(totals))
	for date, total := range totals {
		series = append(series, DailyRevenue{Date: date, Revenue: total})
	}
	sort.Slice(series, func(i, j int) bool { return series[i].Date < series[j].Date })
	return series
}

// TopDays returns the n dates with the highest revenue, descending. Equal
// revenue ranks the earlier date first.
func TopDays(series []DailyRevenue, n int) []string {
	ranked := make([]DailyRevenue, len(series))
	copy(ranked, series)
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Revenue != ranked[j].Revenue {
			return ranked[i].Revenue > ranked[j].Revenue
		}
		return ranked[i].Date < ranked[j].Date
	})

	if n > len(ranked) {
		n = len(ranked)
	}
	days := make([]string, n)
	for i := 0; i < n; i++ {
		days[i] = ranked[i].Date
	}
	return days
}
