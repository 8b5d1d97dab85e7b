package fixed

import (
	"fmt"
	"math/big"
	"sync"
)

// bint (Big INTeger) is a wrapper around big.Int.
// Unlike big.Int, a *bint reachable from a [Decimal] is never modified
// after the decimal has been constructed.
type bint big.Int

// bzero is the shared coefficient of the zero value.
var bzero = new(bint)

// bpow10 is a cache of powers of 10, where bpow10[x] = 10^x.
// The cache covers every shift produced by arithmetic on two decimals.
var bpow10 = func() [2*Precision + 1]*bint {
	var cache [2*Precision + 1]*bint
	ten := big.NewInt(10)
	p := big.NewInt(1)
	for i := range cache {
		cache[i] = (*bint)(new(big.Int).Set(p))
		p.Mul(p, ten)
	}
	return cache
}()

// mustParseBint converts a string to *big.Int, panicking on error.
// Use only for package variable initialization and test code!
func mustParseBint(s string) *bint {
	z, ok := new(big.Int).SetString(s, 10)
	if !ok {
		panic(fmt.Errorf("mustParseBint(%q) failed: parsing error", s))
	}
	return (*bint)(z)
}

func (z *bint) sign() int {
	return (*big.Int)(z).Sign()
}

func (z *bint) cmp(x *bint) int {
	return (*big.Int)(z).Cmp((*big.Int)(x))
}

// string returns the decimal digits of |z|.
func (z *bint) string() string {
	if z.sign() < 0 {
		return new(big.Int).Abs((*big.Int)(z)).String()
	}
	return (*big.Int)(z).String()
}

func (z *bint) setBint(x *bint) {
	(*big.Int)(z).Set((*big.Int)(x))
}

func (z *bint) setInt64(x int64) {
	(*big.Int)(z).SetInt64(x)
}

// setDigits sets z to the integer spelled by s, which must consist
// of ASCII digits only.
func (z *bint) setDigits(s string) bool {
	_, ok := (*big.Int)(z).SetString(s, 10)
	return ok
}

// digit converts a single-digit z to int.
// If z has more than one digit, the result is undefined.
func (z *bint) digit() int {
	return int((*big.Int)(z).Int64())
}

// add calculates z = x + y.
func (z *bint) add(x, y *bint) {
	(*big.Int)(z).Add((*big.Int)(x), (*big.Int)(y))
}

// inc calculates z = x + 1.
func (z *bint) inc(x *bint) {
	z.add(x, bpow10[0])
}

// sub calculates z = x - y.
func (z *bint) sub(x, y *bint) {
	(*big.Int)(z).Sub((*big.Int)(x), (*big.Int)(y))
}

// neg calculates z = -x.
func (z *bint) neg(x *bint) {
	(*big.Int)(z).Neg((*big.Int)(x))
}

// abs calculates z = |x|.
func (z *bint) abs(x *bint) {
	(*big.Int)(z).Abs((*big.Int)(x))
}

// mul calculates z = x * y.
func (z *bint) mul(x, y *bint) {
	(*big.Int)(z).Mul((*big.Int)(x), (*big.Int)(y))
}

// exp calculates z = x^y.
// If y is negative, the result is unpredictable.
func (z *bint) exp(x, y *bint) {
	(*big.Int)(z).Exp((*big.Int)(x), (*big.Int)(y), nil)
}

// pow10 calculates z = 10^power.
// If power is negative, the result is unpredictable.
func (z *bint) pow10(power int) {
	if power < len(bpow10) {
		z.setBint(bpow10[power])
		return
	}
	x := getBint()
	defer putBint(x)
	x.setInt64(10)
	y := getBint()
	defer putBint(y)
	y.setInt64(int64(power))
	z.exp(x, y)
}

// quo calculates z = x / y and truncates result towards zero.
func (z *bint) quo(x, y *bint) {
	(*big.Int)(z).Quo((*big.Int)(x), (*big.Int)(y))
}

// quoRem calculates z = x / y, r = x - y * z, truncating towards zero.
func (z *bint) quoRem(x, y, r *bint) {
	(*big.Int)(z).QuoRem((*big.Int)(x), (*big.Int)(y), (*big.Int)(r))
}

// rem calculates z = x - y * (x / y).
func (z *bint) rem(x, y *bint) {
	(*big.Int)(z).Rem((*big.Int)(x), (*big.Int)(y))
}

// lsh (Left Shift) calculates z = x * 10^shift.
func (z *bint) lsh(x *bint, shift int) {
	var y *bint
	if shift < len(bpow10) {
		y = bpow10[shift]
	} else {
		y = getBint()
		defer putBint(y)
		y.pow10(shift)
	}
	z.mul(x, y)
}

// rshDown (Right Shift) calculates z = x / 10^shift and truncates
// result towards zero.
func (z *bint) rshDown(x *bint, shift int) {
	// Special cases
	switch {
	case x.sign() == 0:
		z.setInt64(0)
		return
	case shift <= 0:
		z.setBint(x)
		return
	}
	// General case
	var y *bint
	if shift < len(bpow10) {
		y = bpow10[shift]
	} else {
		y = getBint()
		defer putBint(y)
		y.pow10(shift)
	}
	z.quo(x, y)
}

// rescale returns a new coefficient equal to x * 10^(to - from).
// When the scale shrinks, the result is truncated towards zero.
// x is never modified.
func rescale(x *bint, from, to int) *bint {
	z := new(bint)
	switch {
	case from < to:
		z.lsh(x, to-from)
	case to < from:
		z.rshDown(x, from-to)
	default:
		z.setBint(x)
	}
	return z
}

// bpool is a cache of reusable *big.Int instances.
// Pooled values are scratch space and never escape into a Decimal.
var bpool = sync.Pool{
	New: func() any {
		return (*bint)(new(big.Int))
	},
}

// getBint obtains a *big.Int from the pool.
func getBint() *bint {
	return bpool.Get().(*bint)
}

// putBint returns the *big.Int into the pool.
func putBint(b *bint) {
	bpool.Put(b)
}
