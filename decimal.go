package fixed

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"io"
	"math/big"
	"strconv"
	"strings"
)

// Decimal type is a representation of a fixed-point decimal number.
// The zero value is the numeric value of 0.
// It is designed to be safe for concurrent use by multiple goroutines.
//
// A decimal is an arbitrary-precision integer, the coefficient, which is
// equal to the numeric value multiplied by 10^[Precision].
// For example, the value 123.45 is stored as the coefficient
// 123450000000000000000.
// Since every decimal shares the same scale, there is exactly one
// representation for each numeric value, and decimals can be compared
// and added without any alignment.
//
// Decimals are immutable: every method returns a new decimal and leaves
// the receiver untouched.
// Decimals must be compared using [Decimal.Equal] or [Decimal.Cmp]
// rather than the == operator.
type Decimal struct {
	coef *bint // the value multiplied by 10^Precision, nil means 0
}

// Precision is the number of digits after the decimal point kept by
// every decimal.
// Values with a different number of fractional digits are converted
// on import ([NewFromBigInt]) and export ([Decimal.BigInt]).
const Precision = 18

var (
	// ErrInvalidFormat is returned when a string does not hold a valid decimal.
	ErrInvalidFormat = errors.New("invalid decimal format")
	// ErrDivisionByZero is returned when the divisor is 0.
	ErrDivisionByZero = errors.New("division by zero")

	errUint256Range = errors.New("uint256 out of range")
)

func newDecimal(coef *bint) Decimal {
	if coef.sign() == 0 {
		return Decimal{}
	}
	return Decimal{coef: coef}
}

// bint returns the coefficient of d.
// The result must not be modified.
func (d Decimal) bint() *bint {
	if d.coef == nil {
		return bzero
	}
	return d.coef
}

// New returns a decimal equal to coef / 10^prec.
// If prec is greater than [Precision], the excess digits are truncated.
func New(coef int64, prec int) Decimal {
	x := getBint()
	defer putBint(x)
	x.setInt64(coef)
	return newDecimal(rescale(x, prec, Precision))
}

// NewFromBigInt returns a decimal equal to coef / 10^prec.
// It is used to import amounts expressed in the smallest units of a token,
// for example, a USDC balance of 1500000 with prec 6 is the decimal 1.5.
// If prec is greater than [Precision], the excess digits are truncated
// towards zero.
// A nil coef is treated as 0.
// NewFromBigInt does not retain coef.
func NewFromBigInt(coef *big.Int, prec int) Decimal {
	if coef == nil {
		return Decimal{}
	}
	return newDecimal(rescale((*bint)(coef), prec, Precision))
}

// Parse converts a string to a decimal.
// The input string must be in one of the following formats:
//
//	1.234
//	-1234
//	0.000001234
//	.5
//	5.
//
// The formal EBNF grammar for the supported format is as follows:
//
//	sign           ::= '-'
//	digits         ::= { '0' | '1' | '2' | '3' | '4' | '5' | '6' | '7' | '8' | '9' }
//	significand    ::= digits '.' digits | '.' digits | digits '.' | digits
//	numeric-string ::= [sign] significand
//
// Parse removes leading zeros from the integer part of the input string.
//
// Parse returns an error wrapping [ErrInvalidFormat]:
//   - if the string is empty or has no digits;
//   - if the string has a '+' sign, an exponent, or more than one decimal point;
//   - if the fractional part has more than [Precision] digits.
func Parse(s string) (Decimal, error) {
	var (
		pos       int
		width     int
		neg       bool
		intbeg    int
		intend    int
		fracbeg   int
		fracend   int
		hasdigits bool
	)

	width = len(s)
	if width == 0 {
		return Decimal{}, fmt.Errorf("empty string: %w", ErrInvalidFormat)
	}

	// Sign
	switch s[pos] {
	case '-':
		neg = true
		pos++
	case '+':
		return Decimal{}, fmt.Errorf("explicit plus sign: %w", ErrInvalidFormat)
	}

	// Integer
	intbeg = pos
	for pos < width && isDigit(s[pos]) {
		pos++
	}
	intend = pos

	// Fraction
	fracbeg, fracend = pos, pos
	if pos < width && s[pos] == '.' {
		pos++
		fracbeg = pos
		for pos < width && isDigit(s[pos]) {
			pos++
		}
		fracend = pos
	}

	if pos != width {
		switch s[pos] {
		case '.':
			return Decimal{}, fmt.Errorf("multiple decimal points: %w", ErrInvalidFormat)
		case 'e', 'E':
			return Decimal{}, fmt.Errorf("exponent notation: %w", ErrInvalidFormat)
		default:
			return Decimal{}, fmt.Errorf("invalid character %q: %w", s[pos], ErrInvalidFormat)
		}
	}
	hasdigits = intend > intbeg || fracend > fracbeg
	if !hasdigits {
		return Decimal{}, fmt.Errorf("no digits: %w", ErrInvalidFormat)
	}
	scale := fracend - fracbeg
	if scale > Precision {
		return Decimal{}, fmt.Errorf("%v digit(s) after the decimal point, but at most %v are allowed: %w", scale, Precision, ErrInvalidFormat)
	}

	// Coefficient
	coef := new(bint)
	if !coef.setDigits(s[intbeg:intend] + s[fracbeg:fracend]) {
		return Decimal{}, fmt.Errorf("invalid digits: %w", ErrInvalidFormat)
	}
	coef.lsh(coef, Precision-scale)
	if neg {
		coef.neg(coef)
	}
	return newDecimal(coef), nil
}

func isDigit(b byte) bool {
	return '0' <= b && b <= '9'
}

// ParseOr is like [Parse] but returns def if the string cannot be parsed.
// It is intended for tolerant inputs, such as text fields, where a
// malformed value must fall back to a default instead of failing.
func ParseOr(s string, def Decimal) Decimal {
	d, err := Parse(s)
	if err != nil {
		return def
	}
	return d
}

// MustParse is like [Parse] but panics if the string cannot be parsed.
// It simplifies safe initialization of global variables holding decimals.
func MustParse(s string) Decimal {
	d, err := Parse(s)
	if err != nil {
		panic(fmt.Sprintf("MustParse(%q) failed: %v", s, err))
	}
	return d
}

// String method implements the [fmt.Stringer] interface and returns
// a string representation of a decimal value with all significant
// fractional digits and no trailing zeros.
// The returned string is formatted according to the following
// formal EBNF grammar:
//
//	sign           ::= '-'
//	digits         ::= { '0' | '1' | '2' | '3' | '4' | '5' | '6' | '7' | '8' | '9' }
//	significand    ::= digits '.' digits | digits
//	numeric-string ::= [sign] significand
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (d Decimal) String() string {
	s := layout(d.IsNeg(), d.bint(), Precision, 0)
	if strings.IndexByte(s, '.') < 0 {
		return s
	}
	s = strings.TrimRight(s, "0")
	return strings.TrimSuffix(s, ".")
}

// layout renders |coef| / 10^scale with exactly scale digits after the
// decimal point, followed by pad zeros.
// A zero result is rendered without sign.
func layout(neg bool, coef *bint, scale, pad int) string {
	digs := coef.string()
	if digs == "0" {
		neg = false
	}
	intdigs := len(digs) - scale

	buf := make([]byte, 0, len(digs)+scale+pad+3)

	// Sign
	if neg {
		buf = append(buf, '-')
	}

	// Integer
	if intdigs > 0 {
		buf = append(buf, digs[:intdigs]...)
	} else {
		buf = append(buf, '0')
	}

	// Fraction
	if scale+pad > 0 {
		buf = append(buf, '.')
		for i := intdigs; i < 0; i++ {
			buf = append(buf, '0')
		}
		buf = append(buf, digs[max(intdigs, 0):]...)
		for i := 0; i < pad; i++ {
			buf = append(buf, '0')
		}
	}

	return string(buf)
}

// TruncString returns a string representation of d with exactly scale
// digits after the decimal point.
// Digits beyond the scale are discarded without rounding, and the result
// is zero-padded to the right if scale is greater than [Precision].
// A negative scale is treated as 0.
func (d Decimal) TruncString(scale int) string {
	scale = max(scale, 0)
	if scale >= Precision {
		return layout(d.IsNeg(), d.bint(), Precision, scale-Precision)
	}
	return layout(d.IsNeg(), d.truncAbs(scale), scale, 0)
}

// RoundString returns a string representation of d rounded to exactly
// scale digits after the decimal point.
// Only the first discarded digit is considered:
//
//   - for zero and positive decimals, the last kept digit is incremented
//     if the discarded digit is 5 or greater;
//   - for negative decimals, the last kept digit is incremented (away from
//     zero) only if the discarded digit is 6 or greater, so -1.005 is
//     rounded to -1.00 whereas 1.005 is rounded to 1.01.
//
// The result is zero-padded to the right if scale is greater than [Precision].
// A negative scale is treated as 0.
func (d Decimal) RoundString(scale int) string {
	scale = max(scale, 0)
	if scale >= Precision {
		return d.TruncString(scale)
	}
	return layout(d.IsNeg(), d.roundAbs(scale), scale, 0)
}

// truncAbs returns |d| truncated to the given number of digits after
// the decimal point, as a coefficient with that scale.
func (d Decimal) truncAbs(scale int) *bint {
	z := new(bint)
	z.abs(d.bint())
	z.rshDown(z, Precision-scale)
	return z
}

// roundAbs returns |d| rounded to the given number of digits after
// the decimal point, as a coefficient with that scale.
// See [Decimal.RoundString] for the rounding rule.
func (d Decimal) roundAbs(scale int) *bint {
	shift := Precision - scale

	x := getBint()
	defer putBint(x)
	x.abs(d.bint())

	y := bpow10[shift]
	z, r := new(bint), getBint()
	defer putBint(r)
	z.quoRem(x, y, r)

	// First discarded digit
	r.rshDown(r, shift-1)
	threshold := 5
	if d.IsNeg() {
		threshold = 6
	}
	if r.digit() >= threshold {
		z.inc(z)
	}
	return z
}

// Trunc returns d truncated to the specified number of digits after
// the decimal point.
// Scales outside the range from 0 to [Precision] are clamped to it.
// Also see method [Decimal.TruncString].
func (d Decimal) Trunc(scale int) Decimal {
	scale = min(max(scale, 0), Precision)
	z := d.truncAbs(scale)
	return d.restore(z, scale)
}

// Round returns d rounded to the specified number of digits after
// the decimal point, using the rule described in [Decimal.RoundString].
// Scales outside the range from 0 to [Precision] are clamped to it.
func (d Decimal) Round(scale int) Decimal {
	scale = min(max(scale, 0), Precision)
	if scale == Precision {
		return d
	}
	z := d.roundAbs(scale)
	return d.restore(z, scale)
}

// restore converts an absolute coefficient with the given scale back into
// a decimal with the sign of d.
func (d Decimal) restore(z *bint, scale int) Decimal {
	z.lsh(z, Precision-scale)
	if d.IsNeg() {
		z.neg(z)
	}
	return newDecimal(z)
}

// BigInt returns the coefficient of d expressed with prec digits after
// the decimal point, that is, d * 10^prec.
// It is the inverse of [NewFromBigInt] and is used to export amounts in
// the smallest units of a token.
// If prec is less than [Precision], the excess digits are truncated
// towards zero; the result is never rounded.
func (d Decimal) BigInt(prec int) *big.Int {
	return (*big.Int)(rescale(d.bint(), Precision, prec))
}

// Sign returns:
//
//	-1 if d < 0
//	 0 if d == 0
//	+1 if d > 0
func (d Decimal) Sign() int {
	return d.bint().sign()
}

// IsPos returns true if d > 0.
func (d Decimal) IsPos() bool {
	return d.Sign() > 0
}

// IsNeg returns true if d < 0.
func (d Decimal) IsNeg() bool {
	return d.Sign() < 0
}

// IsZero returns true if d == 0.
func (d Decimal) IsZero() bool {
	return d.Sign() == 0
}

// IsInt returns true if fractional part of d is zero.
func (d Decimal) IsInt() bool {
	r := getBint()
	defer putBint(r)
	r.rem(d.bint(), bpow10[Precision])
	return r.sign() == 0
}

// Neg returns d with opposite sign.
func (d Decimal) Neg() Decimal {
	z := new(bint)
	z.neg(d.bint())
	return newDecimal(z)
}

// Abs returns absolute value of d.
func (d Decimal) Abs() Decimal {
	if !d.IsNeg() {
		return d
	}
	return d.Neg()
}

// Add returns sum of d and e.
func (d Decimal) Add(e Decimal) Decimal {
	z := new(bint)
	z.add(d.bint(), e.bint())
	return newDecimal(z)
}

// Sub returns difference of d and e.
func (d Decimal) Sub(e Decimal) Decimal {
	z := new(bint)
	z.sub(d.bint(), e.bint())
	return newDecimal(z)
}

// Mul returns product of d and e.
// Digits beyond [Precision] are truncated towards zero, for example,
// 0.000000000000000001 * 0.5 is 0.
func (d Decimal) Mul(e Decimal) Decimal {
	z := new(bint)
	z.mul(d.bint(), e.bint())
	z.rshDown(z, Precision)
	return newDecimal(z)
}

// Quo returns quotient of d and e.
// Digits beyond [Precision] are truncated towards zero, for example,
// 2 / 3 is 0.666666666666666666.
//
// Quo returns an error wrapping [ErrDivisionByZero] if e is 0.
func (d Decimal) Quo(e Decimal) (Decimal, error) {
	if e.IsZero() {
		return Decimal{}, fmt.Errorf("computing [%v / %v]: %w", d, e, ErrDivisionByZero)
	}
	z := new(bint)
	z.lsh(d.bint(), Precision)
	z.quo(z, e.bint())
	return newDecimal(z), nil
}

// Cmp compares d and e numerically and returns:
//
//	-1 if d < e
//	 0 if d == e
//	+1 if d > e
func (d Decimal) Cmp(e Decimal) int {
	return d.bint().cmp(e.bint())
}

// Equal returns true if d == e.
func (d Decimal) Equal(e Decimal) bool {
	return d.Cmp(e) == 0
}

// Less returns true if d < e.
func (d Decimal) Less(e Decimal) bool {
	return d.Cmp(e) < 0
}

// LessOrEqual returns true if d <= e.
func (d Decimal) LessOrEqual(e Decimal) bool {
	return d.Cmp(e) <= 0
}

// Greater returns true if d > e.
func (d Decimal) Greater(e Decimal) bool {
	return d.Cmp(e) > 0
}

// GreaterOrEqual returns true if d >= e.
func (d Decimal) GreaterOrEqual(e Decimal) bool {
	return d.Cmp(e) >= 0
}

// Max returns maximum of d and e.
func (d Decimal) Max(e Decimal) Decimal {
	if d.Cmp(e) >= 0 {
		return d
	}
	return e
}

// Min returns minimum of d and e.
func (d Decimal) Min(e Decimal) Decimal {
	if d.Cmp(e) <= 0 {
		return d
	}
	return e
}

// Format implements [fmt.Formatter] interface.
// The following [verbs] are available:
//
//	%s, %v: -123.456
//	%q:    "-123.456"
//	%f:     -123.456
//	%k:     -12345.6%
//
// The following format flags can be used with all verbs: '+', ' ', '0', '-'.
//
// Precision is only supported for %f and %k verbs, in which case the value
// is rendered by [Decimal.RoundString].
// Without precision, %f and %k render all significant digits.
//
// [verbs]: https://pkg.go.dev/fmt#hdr-Printing
// [fmt.Formatter]: https://pkg.go.dev/fmt#Formatter
func (d Decimal) Format(state fmt.State, verb rune) {
	var s string

	// Percentage
	if verb == 'k' || verb == 'K' {
		d = d.Mul(New(100, 0))
	}

	// Digits
	switch verb {
	case 'f', 'F', 'k', 'K':
		if p, ok := state.Precision(); ok {
			s = d.RoundString(p)
		} else {
			s = d.String()
		}
	case 's', 'S', 'v', 'V', 'q', 'Q':
		s = d.String()
	default:
		fmt.Fprintf(state, "%%!%c(fixed.Decimal=%v)", verb, d)
		return
	}

	// Arithmetic sign
	var rsign string
	switch {
	case strings.HasPrefix(s, "-"):
		rsign, s = "-", s[1:]
	case state.Flag('+'):
		rsign = "+"
	case state.Flag(' '):
		rsign = " "
	}

	// Percentage sign
	if verb == 'k' || verb == 'K' {
		s += "%"
	}

	// Quotes
	var quote string
	if verb == 'q' || verb == 'Q' {
		quote = `"`
	}

	// Padding
	var lspaces, tspaces, lzeroes string
	width := 2*len(quote) + len(rsign) + len(s)
	if w, ok := state.Width(); ok && w > width {
		switch {
		case state.Flag('-'):
			tspaces = strings.Repeat(" ", w-width)
		case state.Flag('0'):
			lzeroes = strings.Repeat("0", w-width)
		default:
			lspaces = strings.Repeat(" ", w-width)
		}
	}

	io.WriteString(state, lspaces+quote+rsign+lzeroes+s+quote+tspaces)
}

// UnmarshalText implements [encoding.TextUnmarshaler] interface.
// Also see method [Parse].
//
// [encoding.TextUnmarshaler]: https://pkg.go.dev/encoding#TextUnmarshaler
func (d *Decimal) UnmarshalText(text []byte) error {
	var err error
	*d, err = Parse(string(text))
	return err
}

// MarshalText implements [encoding.TextMarshaler] interface.
// Also see method [Decimal.String].
//
// [encoding.TextMarshaler]: https://pkg.go.dev/encoding#TextMarshaler
func (d Decimal) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// Scan implements the [sql.Scanner] interface.
// See also constructor [Parse].
//
// [sql.Scanner]: https://pkg.go.dev/database/sql#Scanner
func (d *Decimal) Scan(value any) error {
	var err error
	switch value := value.(type) {
	case string:
		*d, err = Parse(value)
	case []byte:
		*d, err = Parse(string(value))
	case int64:
		*d = New(value, 0)
	case float64:
		*d, err = Parse(strconv.FormatFloat(value, 'f', -1, 64))
	default:
		err = fmt.Errorf("converting from %T to %T: %w", value, Decimal{}, ErrInvalidFormat)
	}
	return err
}

// Value implements the [driver.Valuer] interface.
// See also method [Decimal.String].
//
// [driver.Valuer]: https://pkg.go.dev/database/sql/driver#Valuer
func (d Decimal) Value() (driver.Value, error) {
	return d.String(), nil
}

// NullDecimal represents a decimal that can be null.
// Its zero value is null.
// NullDecimal is not thread-safe.
type NullDecimal struct {
	Decimal Decimal
	Valid   bool
}

// Scan implements the [sql.Scanner] interface.
// See also method [Decimal.Scan].
//
// [sql.Scanner]: https://pkg.go.dev/database/sql#Scanner
func (n *NullDecimal) Scan(value any) error {
	if value == nil {
		n.Decimal = Decimal{}
		n.Valid = false
		return nil
	}
	err := n.Decimal.Scan(value)
	if err != nil {
		n.Decimal = Decimal{}
		n.Valid = false
		return err
	}
	n.Valid = true
	return nil
}

// Value implements the [driver.Valuer] interface.
// See also method [Decimal.Value].
//
// [driver.Valuer]: https://pkg.go.dev/database/sql/driver#Valuer
func (n NullDecimal) Value() (driver.Value, error) {
	if !n.Valid {
		return nil, nil
	}
	return n.Decimal.Value()
}
