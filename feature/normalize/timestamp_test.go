package normalize

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCleanTimestamp(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"Trailing comma after time", "12/03/2024 10:15:00,", "12/03/2024 10:15:00"},
		{"Semicolon separator", "05/04/2024;09:30:00", "05/04/2024 09:30:00"},
		{"Dotted meridiem lower", "12/03/2024 10:15:00 p.m.", "12/03/2024 10:15:00 PM"},
		{"Dotted meridiem upper", "12/03/2024 10:15:00 A.M.", "12/03/2024 10:15:00 AM"},
		{"Comma as date separator", "12/03/2024, 10:15:00", "12/03/2024 10:15:00"},
		{"Whitespace runs", "  12/03/2024   10:15:00 ", "12/03/2024 10:15:00"},
		{"Already canonical", "2024-03-12 10:15:00", "2024-03-12 10:15:00"},
		{"Empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CleanTimestamp(tt.raw))
		})
	}
}

func TestCleanTimestamp_Idempotent(t *testing.T) {
	inputs := []string{
		"12/03/2024 10:15:00,",
		"05/04/2024;09:30:00",
		"2024-03-12 10:15:00",
	}
	for _, raw := range inputs {
		once := CleanTimestamp(raw)
		assert.Equal(t, once, CleanTimestamp(once), "second pass must not change %q", raw)
	}
}

func TestTimestamp_DayFirst(t *testing.T) {
	ts := Timestamp("12/03/2024 10:15:00,")
	require.NotNil(t, ts)
	assert.Equal(t, 12, ts.Day())
	assert.Equal(t, time.March, ts.Month())
	assert.Equal(t, 2024, ts.Year())
	assert.Equal(t, 10, ts.Hour())
	assert.Equal(t, 15, ts.Minute())
}

func TestTimestamp_Unparseable(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"Empty", ""},
		{"Whitespace only", "   "},
		{"Garbage", "not a date at all"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Nil(t, Timestamp(tt.raw))
		})
	}
}

func TestTimestamp_CanonicalRoundTrip(t *testing.T) {
	ts := Timestamp("2024-03-12 10:15:00")
	require.NotNil(t, ts)

	again := Timestamp(ts.Format("2006-01-02 15:04:05"))
	require.NotNil(t, again)
	assert.True(t, ts.Equal(*again))
}
