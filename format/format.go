// Package format renders fixed-point decimals for display: abbreviated
// amounts with multiplier suffixes, thousands-grouped currency strings
// and percentages.
//
// All functions are pure and have no locale awareness beyond digit grouping
// and the literal currency symbol supplied by the caller.
// Functions with the Raw prefix accept amounts in the smallest units of
// a token together with the token precision.
package format

import (
	"math/big"
	"strings"

	"github.com/govalues/fixed"
)

const (
	// DefaultCurrencyDigits is the customary number of digits after the
	// decimal point for [Currency].
	DefaultCurrencyDigits = 2
	// DefaultPercentDigits is the customary number of digits after the
	// decimal point for [Percent].
	DefaultPercentDigits = 2
)

// multipliers lists the suffixes used by [Multiplier] from the largest
// threshold to the smallest.
var multipliers = [...]struct {
	threshold fixed.Decimal
	suffix    string
}{
	{fixed.MustParse("1000000000000000000"), "Q"},
	{fixed.MustParse("1000000000000000"), "q"},
	{fixed.MustParse("1000000000000"), "T"},
	{fixed.MustParse("1000000000"), "B"},
	{fixed.MustParse("1000000"), "M"},
	{fixed.MustParse("1000"), "k"},
}

var hundred = fixed.New(100, 0)

// Multiplier abbreviates d with a multiplier suffix.
// If |d| is 1000 or greater, d is divided by the largest power of 1000 not
// exceeding |d| and rounded to the given number of digits after the decimal
// point, see [fixed.Decimal.RoundString].
// Otherwise, d is truncated to the given number of digits and has no suffix.
//
//	Multiplier(999, 1)     = "999.0"
//	Multiplier(1000, 1)    = "1.0k"
//	Multiplier(2500000, 2) = "2.50M"
func Multiplier(d fixed.Decimal, digits int) string {
	abs := d.Abs()
	for _, m := range multipliers {
		if abs.GreaterOrEqual(m.threshold) {
			return d.MustQuo(m.threshold).RoundString(digits) + m.suffix
		}
	}
	return d.TruncString(digits)
}

// Currency truncates d to the given number of digits after the decimal
// point, groups the integer digits by three with commas and prefixes the
// result with symbol.
// The symbol is placed before the sign, so -1234.5 with symbol "$" is
// rendered as "$-1,234.50".
// If digits is 0, the result has no decimal point.
func Currency(d fixed.Decimal, digits int, symbol string) string {
	s := d.TruncString(digits)

	var sign string
	if strings.HasPrefix(s, "-") {
		sign, s = "-", s[1:]
	}
	intpart, frac, hasfrac := strings.Cut(s, ".")

	var b strings.Builder
	b.Grow(len(symbol) + len(s) + len(s)/3 + 1)
	b.WriteString(symbol)
	b.WriteString(sign)
	for i := 0; i < len(intpart); i++ {
		if i > 0 && (len(intpart)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteByte(intpart[i])
	}
	if hasfrac {
		b.WriteByte('.')
		b.WriteString(frac)
	}
	return b.String()
}

// Percent multiplies d by 100 and renders it with the given number of
// digits after the decimal point followed by a percent sign.
// If round is true, the last digit is rounded as described in
// [fixed.Decimal.RoundString], otherwise the excess digits are truncated.
//
//	Percent(0.12345, 2, false) = "12.34%"
//	Percent(0.12345, 2, true)  = "12.35%"
func Percent(d fixed.Decimal, digits int, round bool) string {
	p := d.Mul(hundred)
	if round {
		return p.RoundString(digits) + "%"
	}
	return p.TruncString(digits) + "%"
}

// RawMultiplier is like [Multiplier] but takes an amount of prec digits
// after the decimal point, such as a token balance in its smallest units.
func RawMultiplier(raw *big.Int, prec, digits int) string {
	return Multiplier(fixed.NewFromBigInt(raw, prec), digits)
}

// RawCurrency is like [Currency] but takes an amount of prec digits
// after the decimal point.
func RawCurrency(raw *big.Int, prec, digits int, symbol string) string {
	return Currency(fixed.NewFromBigInt(raw, prec), digits, symbol)
}

// RawPercent is like [Percent] but takes a rate of prec digits after
// the decimal point.
func RawPercent(raw *big.Int, prec, digits int, round bool) string {
	return Percent(fixed.NewFromBigInt(raw, prec), digits, round)
}
