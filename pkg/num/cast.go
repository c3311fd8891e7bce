package num

import (
	"unsafe"

	"go.llib.dev/subspace/pkg/floatkit"
	"golang.org/x/exp/constraints"
)

// Cast converts between any two numeric primitives.
// The conversion is total, it never panics:
//
//   - integer to integer truncates or sign extends, exactly like a Go conversion
//   - float to integer maps NaN to 0, saturates at the target's bounds and truncates toward zero in between
//   - integer to float rounds the way the platform does
//   - float to float narrowing turns out of range values into ±Inf
//
// Named integer types are accepted on both sides, which is how enumerations are cast.
func Cast[To, From Number](v From) To {
	switch {
	case isFloat[From]() && !isFloat[To]():
		return floatToInt[To](float64(v))
	case isFloat[From]() && isFloat[To]() && sizeOf[To]() == 4:
		return To(floatkit.ToFloat32(float64(v)))
	default:
		return To(v)
	}
}

// TryCast converts between integers and reports ErrOutOfRange when v has no exact representation in To.
func TryCast[To, From constraints.Integer](v From) (To, error) {
	r := To(v)
	if From(r) != v || (r < 0) != (v < 0) {
		return r, ErrOutOfRange.F("%d does not fit into %d bits", v, sizeOf[To]()*8)
	}
	return r, nil
}

func IntCast[To, From constraints.Integer](v Int[From]) Int[To] {
	return Of(Cast[To](v.primitive))
}

func FloatToInt[To constraints.Integer, From constraints.Float](v Float[From]) Int[To] {
	return Of(Cast[To](v.primitive))
}

func IntToFloat[To constraints.Float, From constraints.Integer](v Int[From]) Float[To] {
	return FloatOf(Cast[To](v.primitive))
}

func FloatCast[To, From constraints.Float](v Float[From]) Float[To] {
	return FloatOf(Cast[To](v.primitive))
}

func floatToInt[T Number](f float64) T {
	if f != f {
		return 0
	}
	lo, hi := intLimits[T]()
	switch {
	case f >= float64(hi):
		return hi
	case f <= float64(lo):
		return lo
	default:
		return T(f)
	}
}

func intLimits[T Number]() (lo, hi T) {
	bits := uint(sizeOf[T]()) * 8
	if isSigned[T]() {
		m := uint64(1)<<(bits-1) - 1
		return T(-int64(m) - 1), T(m)
	}
	return 0, T(^uint64(0) >> (64 - bits))
}

func isFloat[T Number]() bool {
	var one T = 1
	return one/2 != 0
}

func isSigned[T Number]() bool {
	var zero T
	return zero-1 < 0
}

func sizeOf[T any]() uintptr {
	var zero T
	return unsafe.Sizeof(zero)
}
