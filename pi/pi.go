// Package pi computes π to an arbitrary number of decimal digits using
// longnum.Number, as a thin client of the root package in the same spirit as
// db47h/decimal/math is a thin client of db47h/decimal: it exercises the
// library's public API (construction, Add, Mul, Quo, Shr, precision control)
// rather than reaching into any unexported state.
package pi

import (
	"math"

	"github.com/maximxlss/longnum"
)

// RequiredPrecision returns the number of bits of fractional binary
// precision needed to safely print decimalDigits decimal digits, following
// the original program's sizing: ceil((decimalDigits+2) * log2(10)).
func RequiredPrecision(decimalDigits int) uint32 {
	return uint32(math.Ceil(float64(decimalDigits+2) * math.Log2(10)))
}

// guardBits is the number of extra bits of precision Compute carries the
// partial sum and the series terms with.
const guardBits = 8

// Compute returns π computed at the given binary precision (bits of
// fractional significand), using the series
//
//	π = Σ_{n≥0} term_n,  term_0 = 2,  term_n = term_{n-1} * 2n / (2n+1) * 2^-1
//
// (equivalently the double-factorial series term_n = 2*(2n)!!/(2n+1)!! *
// 2^-n), truncating each term's precision as n grows so that the amount of
// work per term shrinks along with its contribution to the sum. The sum and
// the terms are carried with guardBits extra bits, and the result is
// truncated to precision at the end. Grounded on
// original_source/src/calculate_pi.cpp's calculate_pi.
func Compute(precision uint32) *longnum.Number {
	work := precision + guardBits
	result := longnum.Zero().SetPrecision(work)
	term := longnum.NewFromUint64(2).WithPrecision(work)
	result.Add(result, term)

	for n := uint32(1); n <= precision; n++ {
		term.Shr(term, 1)
		term.Mul(term, longnum.NewFromUint64(uint64(n)*2))
		if _, err := term.Quo(term, longnum.NewFromUint64(uint64(n)*2+1)); err != nil {
			panic(err) // n*2+1 is never zero
		}
		term.SetPrecision(work - n + 2)
		result.Add(result, term)
	}

	result.SetPrecision(precision)
	return result
}

// ComputeDigits returns π computed to at least decimalDigits decimal digits
// of precision, at the binary precision RequiredPrecision would compute for
// that digit count.
func ComputeDigits(decimalDigits int) *longnum.Number {
	return Compute(RequiredPrecision(decimalDigits))
}
