package fixed

import (
	"fmt"

	"github.com/holiman/uint256"
)

// MustQuo is like [Decimal.Quo] but panics if computing error.
func (d Decimal) MustQuo(e Decimal) Decimal {
	f, err := d.Quo(e)
	if err != nil {
		panic(fmt.Sprintf("MustQuo(%v) failed: %v", d, err))
	}
	return f
}

// MustUint256 is like [Decimal.Uint256] but panics if converting error.
func (d Decimal) MustUint256(prec int) *uint256.Int {
	z, err := d.Uint256(prec)
	if err != nil {
		panic(fmt.Sprintf("MustUint256(%v) failed: %v", prec, err))
	}
	return z
}
