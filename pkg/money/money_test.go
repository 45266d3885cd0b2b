package money

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseStripsSymbolAndCommas(t *testing.T) {
	d, err := Parse("₹12,000")
	require.NoError(t, err)
	assert.True(t, d.Equal(decimal.NewFromInt(12000)))

	d, err = Parse("$150")
	require.NoError(t, err)
	assert.True(t, d.Equal(decimal.NewFromInt(150)))
}

func TestParseRejectsGarbage(t *testing.T) {
	for _, s := range []string{"", "₹", "abc", "₹12k"} {
		_, err := Parse(s)
		assert.ErrorIs(t, err, ErrInvalidAmount, "input %q", s)
	}
}

func TestValid(t *testing.T) {
	assert.True(t, Valid("₹8,500"))
	assert.True(t, Valid("45000"))
	assert.False(t, Valid("free"))
}

func TestFormatGroupsThousands(t *testing.T) {
	assert.Equal(t, "₹12,000", Format(decimal.NewFromInt(12000), "₹"))
	assert.Equal(t, "₹1,234,567", Format(decimal.NewFromInt(1234567), "₹"))
	assert.Equal(t, "₹500", Format(decimal.NewFromInt(500), "₹"))
}

func TestFormatKeepsFraction(t *testing.T) {
	d := decimal.RequireFromString("1234.56")
	assert.Equal(t, "$1,234.56", Format(d, "$"))
}

func TestFormatCompact(t *testing.T) {
	assert.Equal(t, "₹3.5M", FormatCompact(decimal.NewFromInt(3500000), "₹"))
	assert.Equal(t, "₹4M", FormatCompact(decimal.NewFromInt(4000000), "₹"))
	assert.Equal(t, "₹450K", FormatCompact(decimal.NewFromInt(450000), "₹"))
	assert.Equal(t, "₹999", FormatCompact(decimal.NewFromInt(999), "₹"))
}
