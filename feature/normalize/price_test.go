package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testRate = 1.2

func TestDetectCurrency(t *testing.T) {
	tests := []struct {
		raw  string
		want Currency
	}{
		{"€12.50", CurrencyEUR},
		{"12.50 EUR", CurrencyEUR},
		{"eur 8", CurrencyEUR},
		{"$12.50", CurrencyUSD},
		{"12.50 usd", CurrencyUSD},
		{"12.50", CurrencyUSD}, // no marker defaults to USD
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, DetectCurrency(tt.raw), "raw=%q", tt.raw)
	}
}

func TestPrice(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want float64
	}{
		{"EUR with thousands comma", "€1,234.5", 1481.4},
		{"Decimal comma no marker", "12,50", 12.5},
		{"Plain USD", "$1,299.99", 1299.99},
		{"Currency code suffix", "42 USD", 42},
		{"Currency code EUR", "EUR 10", 12},
		{"Cent sign as decimal point", "19¢99", 19.99},
		{"Multiple periods folded", "1.234.56", 1.23},
		{"Spaces inside number", "1 234,56", 1234.56},
		{"Already canonical", "1481.4", 1481.4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Price(tt.raw, testRate)
			require.NotNil(t, got)
			assert.InDelta(t, tt.want, *got, 0.001)
		})
	}
}

func TestPrice_Unparseable(t *testing.T) {
	for _, raw := range []string{"", "   ", "free", "$", "€,"} {
		assert.Nil(t, Price(raw, testRate), "raw=%q", raw)
	}
}

func TestPrice_Idempotent(t *testing.T) {
	// Normalizing an already-normalized USD value must be a fixpoint.
	first := Price("€1,234.5", testRate)
	require.NotNil(t, first)

	second := Price("1481.4", testRate)
	require.NotNil(t, second)
	assert.Equal(t, *first, *second)
}

func TestPrice_EURConversion(t *testing.T) {
	// EUR output is always the parsed value times the configured rate.
	usd := Price("250", testRate)
	eur := Price("€250", testRate)
	require.NotNil(t, usd)
	require.NotNil(t, eur)
	assert.InDelta(t, *usd*testRate, *eur, 0.001)
}

func TestPrice_ConfigurableRate(t *testing.T) {
	got := Price("€100", 1.5)
	require.NotNil(t, got)
	assert.InDelta(t, 150.0, *got, 0.001)
}
