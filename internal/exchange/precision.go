package exchange

import (
	"math/big"

	"github.com/shopspring/decimal"
)

// Precision is the number of significant digits kept after every arithmetic step.
const Precision = 28

// guardDigits are computed past the target precision before a quotient is rounded.
const guardDigits = 8

// legPrecision is kept on both legs of a triangulated rate, so that only their
// product is rounded to Precision.
const legPrecision = Precision + guardDigits

var (
	one = decimal.NewFromInt(1)
	two = decimal.NewFromInt(2)
)

func mul(a, b decimal.Decimal) decimal.Decimal {
	return roundSignificant(a.Mul(b))
}

func div(a, b decimal.Decimal) decimal.Decimal {
	return divTo(a, b, Precision)
}

func divTo(a, b decimal.Decimal, digits int32) decimal.Decimal {
	places := digits - (adjustedExponent(a) - adjustedExponent(b)) + guardDigits
	return roundTo(a.DivRound(b, places), digits)
}

func inverse(d decimal.Decimal) decimal.Decimal {
	return inverseTo(d, Precision)
}

func inverseTo(d decimal.Decimal, digits int32) decimal.Decimal {
	return divTo(one, d, digits)
}

func meanTo(a, b decimal.Decimal, digits int32) decimal.Decimal {
	return divTo(roundTo(a.Add(b), digits), two, digits)
}

// roundSignificant rounds half-to-even so that at most Precision significant digits remain.
func roundSignificant(d decimal.Decimal) decimal.Decimal {
	return roundTo(d, Precision)
}

func roundTo(d decimal.Decimal, digits int32) decimal.Decimal {
	if d.IsZero() {
		return d
	}
	return d.RoundBank(digits - 1 - adjustedExponent(d))
}

// adjustedExponent is the power of ten of the most significant digit of d.
func adjustedExponent(d decimal.Decimal) int32 {
	if d.IsZero() {
		return 0
	}
	coefficient := new(big.Int).Abs(d.Coefficient())
	return int32(len(coefficient.String())) + d.Exponent() - 1
}
