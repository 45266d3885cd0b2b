// Package money parses and formats the display-price strings used across
// the product tables and dashboard ("₹12,000", "$150", "₹4.2M").
package money

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"
)

var ErrInvalidAmount = errors.New("invalid amount")

// currency symbols accepted in front of an amount
const symbols = "₹$€£"

// Parse extracts the numeric value from a display price. Grouping commas
// and a leading currency symbol are ignored.
func Parse(s string) (decimal.Decimal, error) {
	cleaned := strings.TrimSpace(s)
	for _, sym := range strings.Split(symbols, "") {
		cleaned = strings.TrimPrefix(cleaned, sym)
	}
	cleaned = strings.ReplaceAll(cleaned, ",", "")
	cleaned = strings.TrimSpace(cleaned)
	if cleaned == "" {
		return decimal.Zero, ErrInvalidAmount
	}

	d, err := decimal.NewFromString(cleaned)
	if err != nil {
		return decimal.Zero, ErrInvalidAmount
	}
	return d, nil
}

// Valid reports whether s parses as a display price.
func Valid(s string) bool {
	_, err := Parse(s)
	return err == nil
}

// Format renders the amount with thousands grouping behind the given
// currency symbol. Fractional digits are kept only when present.
func Format(d decimal.Decimal, symbol string) string {
	s := d.String()
	neg := strings.HasPrefix(s, "-")
	s = strings.TrimPrefix(s, "-")

	intPart := s
	fracPart := ""
	if i := strings.Index(s, "."); i >= 0 {
		intPart, fracPart = s[:i], s[i:]
	}

	var b strings.Builder
	for i, r := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}

	out := symbol + b.String() + fracPart
	if neg {
		out = "-" + out
	}
	return out
}

// FormatCompact renders large amounts the way the dashboard cards do:
// millions as "₹4.2M", thousands as "₹450K", smaller values grouped.
func FormatCompact(d decimal.Decimal, symbol string) string {
	million := decimal.New(1, 6)
	thousand := decimal.New(1, 3)

	switch {
	case d.Abs().GreaterThanOrEqual(million):
		return symbol + trimZero(d.Div(million).StringFixed(1)) + "M"
	case d.Abs().GreaterThanOrEqual(thousand):
		return symbol + trimZero(d.Div(thousand).StringFixed(1)) + "K"
	default:
		return Format(d, symbol)
	}
}

func trimZero(s string) string {
	return strings.TrimSuffix(s, ".0")
}
