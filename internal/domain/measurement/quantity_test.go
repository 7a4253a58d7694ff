package measurement

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAmount(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		want     float64
		degraded bool
	}{
		{"Integer", "2", 2, false},
		{"Decimal", "1.5", 1.5, false},
		{"SimpleFraction", "1/2", 0.5, false},
		{"MixedNumber", "1 1/2", 1.5, false},
		{"TwoThirds", "2/3", 0.6667, false},
		{"LeadingWhitespace", "  3 ", 3, false},
		{"Empty", "", 0, true},
		{"Garbage", "abc", 0, true},
		{"ZeroDenominator", "1/0", 0, true},
		{"MixedWithBadToken", "1 abc", 0, true},
		{"MixedFractionBadWhole", "x 1/2", 0.5, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseAmount(tt.input)
			assert.InDelta(t, tt.want, got.Value, 0.001)
			assert.Equal(t, tt.degraded, got.Degraded)
		})
	}
}

func TestParseAmountMatchesPlainFloat(t *testing.T) {
	// Well-formed decimal strings parse identically to strconv.
	for _, s := range []string{"0", "0.25", "12", "3.75", "100.5"} {
		want, err := strconv.ParseFloat(s, 64)
		require.NoError(t, err)

		got := ParseAmount(s)
		assert.False(t, got.Degraded, s)
		assert.InDelta(t, want, got.Value, 1e-9, s)
	}
}

func TestSplitAmount(t *testing.T) {
	tests := []struct {
		input  string
		amount string
		unit   string
	}{
		{"200 g", "200", "g"},
		{"1 1/2 cups", "1 1/2", "cups"},
		{"2 eggs", "2", "eggs"},
		{"0.5l", "0.5", "l"},
		{"to taste", "", "to taste"},
	}

	for _, tt := range tests {
		amount, unit := SplitAmount(tt.input)
		assert.Equal(t, tt.amount, amount, tt.input)
		assert.Equal(t, tt.unit, unit, tt.input)
	}
}
