// Package money converts user-typed amounts to integer cents and renders
// cents back in the pt-BR style the UI shows ("1.234,56").
package money

import (
	"errors"
	"math"
	"strings"

	"github.com/shopspring/decimal"
)

// ErrInvalidAmount is returned when the input is not a decimal number or
// does not fit in int64 cents.
var ErrInvalidAmount = errors.New("invalid amount")

var (
	maxCents = decimal.NewFromInt(math.MaxInt64)
	minCents = decimal.NewFromInt(math.MinInt64)
)

// Normalize parses s accepting either "." or "," as the fractional
// separator. Every "," is replaced by "." before parsing, so "1234,56" and
// "1234.56" yield the same value while a grouped "1.234,56" is rejected.
func Normalize(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero, ErrInvalidAmount
	}
	d, err := decimal.NewFromString(strings.ReplaceAll(s, ",", "."))
	if err != nil {
		return decimal.Zero, ErrInvalidAmount
	}
	return d, nil
}

// ParseCents normalizes s and converts it to cents, rounding half away from
// zero on the third fractional digit.
func ParseCents(s string) (int64, error) {
	d, err := Normalize(s)
	if err != nil {
		return 0, err
	}
	cents := d.Shift(2).Round(0)
	if cents.GreaterThan(maxCents) || cents.LessThan(minCents) {
		return 0, ErrInvalidAmount
	}
	return cents.IntPart(), nil
}

// ToCents converts a decimal amount to cents. The amount must fit in int64
// cents; ParseCents checks that for user input.
func ToCents(d decimal.Decimal) int64 {
	return d.Shift(2).Round(0).IntPart()
}

// FromCents converts cents to a decimal amount.
func FromCents(cents int64) decimal.Decimal {
	return decimal.New(cents, -2)
}

// Format renders cents with "." thousands grouping and "," decimals.
func Format(cents int64) string {
	fixed := FromCents(cents).StringFixed(2)

	sign := ""
	if strings.HasPrefix(fixed, "-") {
		sign = "-"
		fixed = fixed[1:]
	}

	intPart, frac, _ := strings.Cut(fixed, ".")

	var b strings.Builder
	b.WriteString(sign)
	lead := len(intPart) % 3
	if lead > 0 {
		b.WriteString(intPart[:lead])
	}
	for i := lead; i < len(intPart); i += 3 {
		if b.Len() > len(sign) {
			b.WriteByte('.')
		}
		b.WriteString(intPart[i : i+3])
	}
	b.WriteByte(',')
	b.WriteString(frac)
	return b.String()
}

// FormatCurrency is Format with the "R$ " prefix.
func FormatCurrency(cents int64) string {
	return "R$ " + Format(cents)
}
