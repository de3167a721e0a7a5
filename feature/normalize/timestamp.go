package normalize

import (
	"regexp"
	"strings"
	"time"

	"github.com/araddon/dateparse"
)

var (
	meridiemRe  = regexp.MustCompile(`(?i)\b([ap])\.m\.`)
	timeCommaRe = regexp.MustCompile(`(\d{2}:\d{2}:\d{2}),`)
	spaceRunRe  = regexp.MustCompile(`\s+`)
)

// CleanTimestamp rewrites a raw timestamp string into a parser-friendly form.
// The rewrite order matters: dotted meridiems are collapsed before commas are
// touched, and a comma directly after an HH:MM:SS token is treated as a
// spurious separator rather than a date delimiter.
func CleanTimestamp(raw string) string {
	v := strings.TrimSpace(raw)
	v = meridiemRe.ReplaceAllStringFunc(v, func(m string) string {
		return strings.ToUpper(m[:1]) + "M"
	})
	v = strings.ReplaceAll(v, ";", " ")
	v = timeCommaRe.ReplaceAllString(v, "$1 ")
	v = strings.ReplaceAll(v, ",", " ")
	v = spaceRunRe.ReplaceAllString(v, " ")
	return strings.TrimSpace(v)
}

// Timestamp cleans and parses a raw timestamp. Ambiguous day/month order is
// resolved day-first, so "12/03/2024" is the 12th of March. Unparseable input
// (including empty strings) yields nil.
func Timestamp(raw string) *time.Time {
	v := CleanTimestamp(raw)
	if v == "" {
		return nil
	}
	t, err := dateparse.ParseAny(v, dateparse.PreferMonthFirst(false))
	if err != nil {
		return nil
	}
	return &t
}
