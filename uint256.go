package fixed

import (
	"fmt"

	"github.com/holiman/uint256"
)

// NewFromUint256 returns a decimal equal to x / 10^prec.
// It is used to import 256-bit EVM words, such as ERC-20 balances,
// expressed in the smallest units of a token.
// A nil x is treated as 0.
// Also see [NewFromBigInt].
func NewFromUint256(x *uint256.Int, prec int) Decimal {
	if x == nil {
		return Decimal{}
	}
	return NewFromBigInt(x.ToBig(), prec)
}

// Uint256 returns d * 10^prec as a 256-bit unsigned integer, truncating
// digits beyond prec towards zero.
// It is the inverse of [NewFromUint256].
//
// Uint256 returns an error if d is negative or if the result does not fit
// into 256 bits.
func (d Decimal) Uint256(prec int) (*uint256.Int, error) {
	if d.IsNeg() {
		return nil, fmt.Errorf("converting %v to uint256: negative value: %w", d, errUint256Range)
	}
	z, overflow := uint256.FromBig(d.BigInt(prec))
	if overflow {
		return nil, fmt.Errorf("converting %v with precision %v to uint256: %w", d, prec, errUint256Range)
	}
	return z, nil
}
