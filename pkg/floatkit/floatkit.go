// Package floatkit works with IEEE-754 floating point values on the bit level.
//
// Its centrepiece is StrongOrder, a total order over every float bit pattern,
// which makes floats usable as sort keys even when NaN values are present.
package floatkit

import (
	"math"
	"unsafe"

	"go.llib.dev/subspace/pkg/compare"
	"golang.org/x/exp/constraints"
)

type Float constraints.Float

type layout struct {
	sign     uint64
	exponent uint64
	mantissa uint64
	quiet    uint64
}

var (
	layout32 = layout{
		sign:     1 << 31,
		exponent: 0x7f80_0000,
		mantissa: 0x007f_ffff,
		quiet:    1 << 22,
	}
	layout64 = layout{
		sign:     1 << 63,
		exponent: 0x7ff0_0000_0000_0000,
		mantissa: 0x000f_ffff_ffff_ffff,
		quiet:    1 << 51,
	}
)

func is32[T Float]() bool {
	var zero T
	return unsafe.Sizeof(zero) == 4
}

func layoutOf[T Float]() layout {
	if is32[T]() {
		return layout32
	}
	return layout64
}

// Bits returns the bit width of T.
func Bits[T Float]() uint32 {
	if is32[T]() {
		return 32
	}
	return 64
}

// ToBits reinterprets the IEEE-754 bit pattern of f as an unsigned integer.
// For 32-bit floats only the lower 32 bits are used.
func ToBits[T Float](f T) uint64 {
	if is32[T]() {
		return uint64(math.Float32bits(float32(f)))
	}
	return math.Float64bits(float64(f))
}

// FromBits reinterprets the lower Bits[T]() bits of u as a float.
func FromBits[T Float](u uint64) T {
	if is32[T]() {
		return T(math.Float32frombits(uint32(u)))
	}
	return T(math.Float64frombits(u))
}

func IsNaN[T Float](f T) bool { return f != f }

func IsInf[T Float](f T) bool {
	return ToBits(f)&^layoutOf[T]().sign == layoutOf[T]().exponent
}

func IsFinite[T Float](f T) bool {
	l := layoutOf[T]()
	return ToBits(f)&l.exponent != l.exponent
}

// SignBit reports whether the sign bit of f is set.
// Unlike f < 0 this also sees the sign of -0.0 and of NaN values.
func SignBit[T Float](f T) bool {
	return ToBits(f)&layoutOf[T]().sign != 0
}

// IsQuietNaN reports whether f is a NaN with its quiet bit set.
func IsQuietNaN[T Float](f T) bool {
	return IsNaN(f) && ToBits(f)&layoutOf[T]().quiet != 0
}

// IsSignalingNaN reports whether f is a NaN with its quiet bit cleared.
func IsSignalingNaN[T Float](f T) bool {
	return IsNaN(f) && ToBits(f)&layoutOf[T]().quiet == 0
}

// NaN builds a NaN with the given sign, quiet bit and payload.
//
// The payload is truncated to the mantissa bits below the quiet bit.
// A signaling NaN needs a non-zero payload, so a zero payload is replaced with 1.
func NaN[T Float](negative, quiet bool, payload uint64) T {
	l := layoutOf[T]()
	payload &= l.mantissa &^ l.quiet
	u := l.exponent | payload
	if quiet {
		u |= l.quiet
	} else if payload == 0 {
		u |= 1
	}
	if negative {
		u |= l.sign
	}
	return FromBits[T](u)
}

// Inf returns positive infinity if sign >= 0, negative infinity otherwise.
func Inf[T Float](sign int) T {
	l := layoutOf[T]()
	if sign < 0 {
		return FromBits[T](l.sign | l.exponent)
	}
	return FromBits[T](l.exponent)
}

// Max returns the largest finite value of T.
func Max[T Float]() T {
	if is32[T]() {
		return FromBits[T](0x7f7f_ffff)
	}
	return FromBits[T](0x7fef_ffff_ffff_ffff)
}

// MinPositive returns the smallest positive normal value of T.
func MinPositive[T Float]() T {
	if is32[T]() {
		return FromBits[T](1 << 23)
	}
	return FromBits[T](1 << 52)
}

// Epsilon returns the difference between 1.0 and the next representable value of T.
func Epsilon[T Float]() T {
	if is32[T]() {
		return T(math.Nextafter32(1, 2) - 1)
	}
	return T(math.Nextafter(1, 2) - 1)
}

// StrongOrder compares two floats by a total order over their bit patterns.
//
// The order is, from least to greatest:
// negative quiet NaNs, negative signaling NaNs, -Inf, negative numbers, -0.0,
// +0.0, positive numbers, +Inf, positive signaling NaNs, positive quiet NaNs.
// NaNs of the same kind are ordered by their payload.
// Two values compare Equal only when their bit patterns are identical.
func StrongOrder[T Float](l, r T) compare.Ordering {
	lb, rb := ToBits(l), ToBits(r)
	if lb == rb {
		return compare.Equal
	}

	lay := layoutOf[T]()
	lneg, rneg := lb&lay.sign != 0, rb&lay.sign != 0
	if lneg != rneg {
		if lneg {
			return compare.Less
		}
		return compare.Greater
	}
	// from here on both sides share the same sign
	negative := lneg

	lnan, rnan := IsNaN(l), IsNaN(r)
	switch {
	case lnan && !rnan:
		return towardsExtreme(negative)
	case !lnan && rnan:
		return towardsExtreme(negative).Reverse()
	case lnan && rnan:
		lq, rq := lb&lay.quiet != 0, rb&lay.quiet != 0
		if lq != rq {
			if lq {
				return towardsExtreme(negative)
			}
			return towardsExtreme(negative).Reverse()
		}
		o := compare.Greater
		if lb < rb {
			o = compare.Less
		}
		if negative {
			return o.Reverse()
		}
		return o
	}

	if l < r {
		return compare.Less
	}
	return compare.Greater
}

// towardsExtreme tells where the left side lands when it sits at the outer end of its half.
func towardsExtreme(negative bool) compare.Ordering {
	if negative {
		return compare.Less
	}
	return compare.Greater
}

// TotalCompare is StrongOrder as a cmp style function,
// so it can be passed to slices.SortFunc and friends.
func TotalCompare[T Float](l, r T) int {
	return int(StrongOrder(l, r))
}

// ToFloat32 narrows f to float32.
//
// Finite values above math.MaxFloat32 in magnitude become infinities of the same sign,
// even the ones within half an ulp of it, which round-to-nearest would map to math.MaxFloat32.
// NaN stays NaN.
func ToFloat32(f float64) float32 {
	switch {
	case f != f:
		return float32(f)
	case math.MaxFloat32 < f:
		return float32(math.Inf(1))
	case f < -math.MaxFloat32:
		return float32(math.Inf(-1))
	default:
		return float32(f)
	}
}
