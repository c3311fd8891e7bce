package mathkit

import (
	"math/bits"

	"go.llib.dev/subspace/pkg/bitkit"
)

// OverflowOut is the result of an overflow aware operation.
//
// Value always holds the wrapped result, even when Overflow is true.
type OverflowOut[T Integer] struct {
	Value    T
	Overflow bool
}

func overflowOut[T Integer](v T, overflow bool) OverflowOut[T] {
	return OverflowOut[T]{Value: v, Overflow: overflow}
}

// AddWithOverflow returns x+y.
//
// For unsigned types the sum overflowed when it wrapped below x.
// For signed types the sign of y and the direction of the result relative to x must agree.
func AddWithOverflow[T Integer](x, y T) OverflowOut[T] {
	v := x + y
	return overflowOut(v, (y >= 0) != (v >= x))
}

// SubWithOverflow returns x-y.
func SubWithOverflow[T Integer](x, y T) OverflowOut[T] {
	v := x - y
	return overflowOut(v, (y >= 0) != (v <= x))
}

// MulWithOverflow returns x*y.
//
// Types up to 32 bits are multiplied in a 64-bit intermediate,
// 64-bit types use a full 128-bit product split into its high and low halves.
func MulWithOverflow[T Integer](x, y T) OverflowOut[T] {
	if bitkit.Bits[T]() <= 32 {
		if bitkit.IsSigned[T]() {
			wide := int64(x) * int64(y)
			v := T(wide)
			return overflowOut(v, int64(v) != wide)
		}
		wide := uint64(x) * uint64(y)
		v := T(wide)
		return overflowOut(v, uint64(v) != wide)
	}

	v := T(uint64(x) * uint64(y))
	if !bitkit.IsSigned[T]() {
		hi, _ := bits.Mul64(uint64(x), uint64(y))
		return overflowOut(v, hi != 0)
	}

	hi, lo := bits.Mul64(AbsInt(x), AbsInt(y))
	if hi != 0 {
		return overflowOut(v, true)
	}
	const limit = uint64(1) << 63
	if (x < 0) != (y < 0) {
		return overflowOut(v, limit < lo)
	}
	return overflowOut(v, limit-1 < lo)
}

// NegWithOverflow returns -x.
//
// For signed types only the most negative value overflows.
// For unsigned types every non-zero value overflows.
func NegWithOverflow[T Integer](x T) OverflowOut[T] {
	if bitkit.IsSigned[T]() {
		return overflowOut(-x, x == bitkit.Min[T]())
	}
	return overflowOut(-x, x != 0)
}

// AbsWithOverflow returns |x|.
// The absolute value of the most negative signed value overflows and wraps back to itself.
func AbsWithOverflow[T Integer](x T) OverflowOut[T] {
	if x < 0 {
		return NegWithOverflow(x)
	}
	return overflowOut(x, false)
}

// ShlWithOverflow returns x << shift.
//
// The shift overflows when it is not smaller than the bit width of T.
// In that case the shift amount is masked to the width first, so Value stays deterministic.
func ShlWithOverflow[T Integer](x T, shift uint32) OverflowOut[T] {
	width := bitkit.Bits[T]()
	return overflowOut(x<<(shift&(width-1)), width <= shift)
}

// ShrWithOverflow returns x >> shift.
// Signed values are shifted arithmetically.
func ShrWithOverflow[T Integer](x T, shift uint32) OverflowOut[T] {
	width := bitkit.Bits[T]()
	return overflowOut(x>>(shift&(width-1)), width <= shift)
}

func isMinByMinusOne[T Integer](x, y T) bool {
	return bitkit.IsSigned[T]() && x == bitkit.Min[T]() && y == ^T(0)
}

// DivWithOverflow returns the truncated quotient x/y.
// The only overflowing pair is MIN / -1, which yields MIN.
//
// y must not be zero.
func DivWithOverflow[T Integer](x, y T) OverflowOut[T] {
	if isMinByMinusOne(x, y) {
		return overflowOut(x, true)
	}
	return overflowOut(x/y, false)
}

// RemWithOverflow returns the truncated remainder x%y.
// The remainder of MIN % -1 is reported as 0 with Overflow set.
//
// y must not be zero.
func RemWithOverflow[T Integer](x, y T) OverflowOut[T] {
	if isMinByMinusOne(x, y) {
		return overflowOut(T(0), true)
	}
	return overflowOut(x%y, false)
}

func DivEuclidWithOverflow[T Integer](x, y T) OverflowOut[T] {
	if isMinByMinusOne(x, y) {
		return overflowOut(x, true)
	}
	return overflowOut(DivEuclid(x, y), false)
}

func RemEuclidWithOverflow[T Integer](x, y T) OverflowOut[T] {
	if isMinByMinusOne(x, y) {
		return overflowOut(T(0), true)
	}
	return overflowOut(RemEuclid(x, y), false)
}

// PowWithOverflow raises x to the power exp by repeated squaring.
// The overflow flag is accumulated over every intermediate multiplication.
func PowWithOverflow[T Integer](x T, exp uint32) OverflowOut[T] {
	if exp == 0 {
		return overflowOut(T(1), false)
	}
	var (
		base       = x
		acc        = T(1)
		overflowed bool
	)
	for exp > 1 {
		if exp&1 == 1 {
			r := MulWithOverflow(acc, base)
			acc, overflowed = r.Value, overflowed || r.Overflow
		}
		exp /= 2
		r := MulWithOverflow(base, base)
		base, overflowed = r.Value, overflowed || r.Overflow
	}
	r := MulWithOverflow(acc, base)
	return overflowOut(r.Value, overflowed || r.Overflow)
}

// NextPowerOfTwoWithOverflow returns the smallest power of two greater than or equal to x.
//
// Values up to 1 yield 1.
// When the power of two does not fit into the non-negative range of T,
// Value is 0 and Overflow is set.
func NextPowerOfTwoWithOverflow[T Integer](x T) OverflowOut[T] {
	if x <= 1 {
		return overflowOut(T(1), false)
	}
	limit := bitkit.Bits[T]()
	if bitkit.IsSigned[T]() {
		limit--
	}
	n := bitkit.Bits[T]() - bitkit.LeadingZeros(x-1)
	if limit <= n {
		return overflowOut(T(0), true)
	}
	return overflowOut(T(1)<<n, false)
}

// DivEuclid computes the Euclidean quotient of x and y,
// the q for which x = y*q + r and 0 <= r < |y|.
//
// y must not be zero, and the pair must not be MIN, -1.
func DivEuclid[T Integer](x, y T) T {
	q := x / y
	if x%y < 0 {
		if 0 < y {
			return q - 1
		}
		return q + 1
	}
	return q
}

// RemEuclid computes the least non-negative remainder of x divided by y.
//
// y must not be zero, and the pair must not be MIN, -1.
func RemEuclid[T Integer](x, y T) T {
	r := x % y
	if r < 0 {
		// y == MIN still wraps into the exact remainder
		if y < 0 {
			return r - y
		}
		return r + y
	}
	return r
}
