package normalize

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

// Currency identifies the detected currency of a raw price string.
type Currency string

const (
	CurrencyUSD Currency = "USD"
	CurrencyEUR Currency = "EUR"
)

var (
	currencyRe   = regexp.MustCompile(`(?i)(eur|usd|€|\$)`)
	nonNumericRe = regexp.MustCompile(`[^0-9.]+`)
)

// DetectCurrency finds an explicit currency marker (symbol or 3-letter code)
// anywhere in the string. EUR wins when both markers appear; with no marker
// at all the value is assumed to be USD.
func DetectCurrency(raw string) Currency {
	lower := strings.ToLower(raw)
	if strings.Contains(lower, "€") || strings.Contains(lower, "eur") {
		return CurrencyEUR
	}
	return CurrencyUSD
}

// CleanPrice strips currency markers and resolves separator ambiguity,
// returning a plain decimal string ready for parsing. A single comma with no
// period is a decimal comma; any other comma is a thousands separator. A cent
// sign is a decimal point. When more than one period survives, the first one
// is kept and the remaining digit groups are folded into the fraction.
func CleanPrice(raw string) string {
	v := currencyRe.ReplaceAllString(strings.TrimSpace(raw), "")
	v = strings.ReplaceAll(v, "¢", ".")
	if strings.Count(v, ",") == 1 && !strings.Contains(v, ".") {
		v = strings.ReplaceAll(v, ",", ".")
	} else {
		v = strings.ReplaceAll(v, ",", "")
	}
	v = nonNumericRe.ReplaceAllString(v, "")
	if strings.Count(v, ".") > 1 {
		parts := strings.Split(v, ".")
		v = parts[0] + "." + strings.Join(parts[1:], "")
	}
	return v
}

// Price normalizes a raw price string into a USD amount rounded to two
// decimals. EUR values are converted at eurRate. Unparseable input yields
// nil, never an error.
func Price(raw string, eurRate float64) *float64 {
	currency := DetectCurrency(raw)
	f, err := strconv.ParseFloat(CleanPrice(raw), 64)
	if err != nil {
		return nil
	}
	if currency == CurrencyEUR {
		f *= eurRate
	}
	f = math.Round(f*100) / 100
	return &f
}
