package intervals

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseMillis(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want int64
	}{
		{name: "single week", raw: "interval 1 week", want: 7 * 24 * 60 * 60 * 1000},
		{name: "plural weeks", raw: "2 weeks", want: 14 * 24 * 60 * 60 * 1000},
		{name: "thirty days", raw: "interval 30 days", want: 30 * 24 * 60 * 60 * 1000},
		{name: "keyword case insensitive", raw: "INTERVAL 1 day", want: 24 * 60 * 60 * 1000},
		{name: "unit case insensitive", raw: "1 HOUR", want: 60 * 60 * 1000},
		{name: "combined units", raw: "1 day 12 hours", want: 36 * 60 * 60 * 1000},
		{name: "minutes", raw: "90 minutes", want: 90 * 60 * 1000},
		{name: "seconds", raw: "45 seconds", want: 45 * 1000},
		{name: "milliseconds", raw: "250 milliseconds", want: 250},
		{name: "microseconds truncate", raw: "1500 microseconds", want: 1},
		{name: "zero", raw: "interval 0 days", want: 0},
		{name: "negative", raw: "-1 day", want: -24 * 60 * 60 * 1000},
		{name: "extra whitespace", raw: "  interval   2   days ", want: 2 * 24 * 60 * 60 * 1000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseMillis(tt.raw)
			require.NoError(t, err, "should parse %q", tt.raw)
			if got != tt.want {
				t.Errorf("ParseMillis(%q) = %d, want %d", tt.raw, got, tt.want)
			}
		})
	}
}

func TestParseMillisRejectsMalformedInput(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{name: "empty", raw: ""},
		{name: "blank", raw: "   "},
		{name: "keyword only", raw: "interval"},
		{name: "value without unit", raw: "interval 1"},
		{name: "trailing value", raw: "1 week 3"},
		{name: "non numeric value", raw: "one week"},
		{name: "fractional value", raw: "1.5 days"},
		{name: "unknown unit", raw: "1 fortnight"},
		{name: "months rejected", raw: "interval 1 month"},
		{name: "years rejected", raw: "1 year"},
		{name: "value overflows", raw: "99999999999999 weeks"},
		{name: "negative value overflows", raw: "-99999999999999 weeks"},
		{name: "sum overflows", raw: "9223372036854775807 microseconds 1 microsecond"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseMillis(tt.raw)
			require.Error(t, err, "should reject %q", tt.raw)
		})
	}
}

func TestParseMillisMonthErrorSuggestsDays(t *testing.T) {
	_, err := ParseMillis("interval 3 months")
	require.Error(t, err, "months should be rejected")

	if !strings.Contains(err.Error(), "days instead") {
		t.Errorf("error should point at the days workaround, got: %v", err)
	}
}
