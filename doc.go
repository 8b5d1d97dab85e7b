/*
Package fixed implements immutable fixed-point decimal numbers.
It is specifically designed for token amounts, prices and rates in
financial and blockchain applications, where values arrive as integers
scaled by a per-asset number of digits (6 for USDC, 8 for WBTC, 18 for ETH)
and must never pass through floating-point arithmetic.

# Representation

[Decimal] is a struct with a single field, an arbitrary-precision integer
coefficient equal to the numeric value multiplied by 10^[Precision].
For example, with a precision of 18 the decimal 1.5 has the coefficient
1500000000000000000.

Precision is a compile-time constant shared by every decimal.
Consequently, each numeric value has exactly one representation, and
decimals can be added, subtracted and compared directly.
There is no upper or lower bound on the value of a decimal.

Special values such as NaN, Infinity, or negative zeros are not supported.

# Conversions

The package provides methods for converting decimals:

  - from/to string:
    [Parse], [ParseOr], [Decimal.String], [Decimal.RoundString],
    [Decimal.TruncString], [Decimal.Format].
  - from/to scaled integers:
    [New], [NewFromBigInt], [Decimal.BigInt].
  - from/to 256-bit words:
    [NewFromUint256], [Decimal.Uint256].

Scaled integers are rescaled on import and export.
When the source or target has more digits than [Precision], the excess
digits are truncated towards zero; no conversion ever rounds.

See the documentation for each method for more details.

# Operations

[Decimal.Add] and [Decimal.Sub] are exact.

[Decimal.Mul] multiplies the coefficients, which yields a result with
2 * [Precision] digits after the decimal point, and truncates it back to
[Precision] digits.

[Decimal.Quo] shifts the dividend by [Precision] digits before dividing the
coefficients, so the quotient keeps [Precision] digits after the decimal
point.
The remaining digits are truncated.

# Rounding

[Decimal.TruncString] and [Decimal.Trunc] discard digits without rounding.

[Decimal.RoundString] and [Decimal.Round] look at the first discarded digit
only.
Zero and positive decimals are rounded up when that digit is 5 or greater.
Negative decimals are rounded away from zero only when that digit is
6 or greater:

	| Decimal | RoundString(2) |
	| ------- | -------------- |
	|  1.004  |  1.00          |
	|  1.005  |  1.01          |
	| -1.005  | -1.00          |
	| -1.006  | -1.01          |

Note the asymmetry between positive and negative ties.

# Errors

All methods are panic-free and pure, except for the Must* helpers.
Errors are returned in the following cases:

  - Invalid Format.
    [Parse], [Decimal.UnmarshalText] and [Decimal.Scan] return an error
    wrapping [ErrInvalidFormat] for empty strings, explicit '+' signs,
    exponents, repeated decimal points and for more than [Precision] digits
    after the decimal point.
    [ParseOr] never fails and returns the supplied default instead.

  - Division by Zero.
    Unlike the standard library, [Decimal.Quo] does not panic when dividing
    by 0.
    Instead, it returns an error wrapping [ErrDivisionByZero].

  - Range.
    [Decimal.Uint256] returns an error for negative decimals and for
    results wider than 256 bits.
*/
package fixed
