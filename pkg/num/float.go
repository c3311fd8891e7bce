package num

import (
	"math"
	"strconv"

	"go.llib.dev/subspace/pkg/compare"
	"go.llib.dev/subspace/pkg/floatkit"
	"golang.org/x/exp/constraints"
)

// Float is an IEEE-754 floating point value.
//
// Arithmetic follows IEEE-754 and never panics.
// Comparisons come in two flavours:
// PartialCmp follows the IEEE-754 partial order,
// while TotalCmp orders every bit pattern, NaNs and signed zeros included.
type Float[T constraints.Float] struct {
	primitive T
}

type (
	F32 = Float[float32]
	F64 = Float[float64]
)

func FloatOf[T constraints.Float](v T) Float[T] { return Float[T]{primitive: v} }

func Epsilon[T constraints.Float]() Float[T] { return FloatOf(floatkit.Epsilon[T]()) }

// Inf returns positive infinity if sign >= 0, negative infinity otherwise.
func Inf[T constraints.Float](sign int) Float[T] { return FloatOf(floatkit.Inf[T](sign)) }

// NaN returns the canonical quiet NaN.
func NaN[T constraints.Float]() Float[T] { return FloatOf(floatkit.NaN[T](false, true, 0)) }

func MaxFloat[T constraints.Float]() Float[T] { return FloatOf(floatkit.Max[T]()) }

func MinPositive[T constraints.Float]() Float[T] { return FloatOf(floatkit.MinPositive[T]()) }

func (f Float[T]) Primitive() T { return f.primitive }

func (f Float[T]) One() Float[T] { return Float[T]{primitive: 1} }

func (f Float[T]) String() string {
	return strconv.FormatFloat(float64(f.primitive), 'g', -1, int(floatkit.Bits[T]()))
}

func (f Float[T]) Add(o Float[T]) Float[T] { return FloatOf(f.primitive + o.primitive) }
func (f Float[T]) Sub(o Float[T]) Float[T] { return FloatOf(f.primitive - o.primitive) }
func (f Float[T]) Mul(o Float[T]) Float[T] { return FloatOf(f.primitive * o.primitive) }
func (f Float[T]) Div(o Float[T]) Float[T] { return FloatOf(f.primitive / o.primitive) }
func (f Float[T]) Neg() Float[T]           { return FloatOf(-f.primitive) }

// Rem returns the floating point remainder of f / o, with the sign of f.
func (f Float[T]) Rem(o Float[T]) Float[T] {
	return FloatOf(T(math.Mod(float64(f.primitive), float64(o.primitive))))
}

func (f Float[T]) Abs() Float[T] {
	return FloatOf(floatkit.FromBits[T](floatkit.ToBits(f.primitive) &^ signMask[T]()))
}

// Copysign returns f with the sign bit of sign.
func (f Float[T]) Copysign(sign Float[T]) Float[T] {
	mask := signMask[T]()
	return FloatOf(floatkit.FromBits[T](floatkit.ToBits(f.primitive)&^mask | floatkit.ToBits(sign.primitive)&mask))
}

func signMask[T constraints.Float]() uint64 { return uint64(1) << (floatkit.Bits[T]() - 1) }

// Signum returns 1.0 for values with a clear sign bit, -1.0 for values with a set one, and NaN for NaN.
func (f Float[T]) Signum() Float[T] {
	if f.IsNaN() {
		return f
	}
	return f.One().Copysign(f)
}

func (f Float[T]) Sqrt() Float[T]  { return FloatOf(T(math.Sqrt(float64(f.primitive)))) }
func (f Float[T]) Floor() Float[T] { return FloatOf(T(math.Floor(float64(f.primitive)))) }
func (f Float[T]) Ceil() Float[T]  { return FloatOf(T(math.Ceil(float64(f.primitive)))) }
func (f Float[T]) Round() Float[T] { return FloatOf(T(math.Round(float64(f.primitive)))) }
func (f Float[T]) Trunc() Float[T] { return FloatOf(T(math.Trunc(float64(f.primitive)))) }

// Powi raises f to an integer power.
func (f Float[T]) Powi(n int32) Float[T] {
	return FloatOf(T(math.Pow(float64(f.primitive), float64(n))))
}

func (f Float[T]) Powf(n Float[T]) Float[T] {
	return FloatOf(T(math.Pow(float64(f.primitive), float64(n.primitive))))
}

func (f Float[T]) IsNaN() bool          { return floatkit.IsNaN(f.primitive) }
func (f Float[T]) IsInfinite() bool     { return floatkit.IsInf(f.primitive) }
func (f Float[T]) IsFinite() bool       { return floatkit.IsFinite(f.primitive) }
func (f Float[T]) IsNormal() bool       { return f.Classify() == floatkit.Normal }
func (f Float[T]) IsSubnormal() bool    { return f.Classify() == floatkit.Subnormal }
func (f Float[T]) IsSignNegative() bool { return floatkit.SignBit(f.primitive) }
func (f Float[T]) IsSignPositive() bool { return !floatkit.SignBit(f.primitive) }

func (f Float[T]) Classify() floatkit.Category { return floatkit.Classify(f.primitive) }

func (f Float[T]) ToBits() uint64 { return floatkit.ToBits(f.primitive) }

func FloatFromBits[T constraints.Float](u uint64) Float[T] { return FloatOf(floatkit.FromBits[T](u)) }

// TotalCmp orders f and o by the IEEE-754 total order.
func (f Float[T]) TotalCmp(o Float[T]) compare.Ordering {
	return floatkit.StrongOrder(f.primitive, o.primitive)
}

// PartialCmp orders f and o by the IEEE-754 comparison operators,
// where NaN is unordered against everything and -0.0 equals +0.0.
func (f Float[T]) PartialCmp(o Float[T]) compare.PartialOrdering {
	return compare.Partial(f.primitive, o.primitive)
}

func (f Float[T]) Eq(o Float[T]) bool { return f.primitive == o.primitive }
func (f Float[T]) Lt(o Float[T]) bool { return f.primitive < o.primitive }
func (f Float[T]) Le(o Float[T]) bool { return f.primitive <= o.primitive }
func (f Float[T]) Gt(o Float[T]) bool { return f.primitive > o.primitive }
func (f Float[T]) Ge(o Float[T]) bool { return f.primitive >= o.primitive }

// Min returns the smaller value; when one side is NaN, the other side is returned.
func (f Float[T]) Min(o Float[T]) Float[T] {
	switch {
	case f.IsNaN():
		return o
	case o.IsNaN():
		return f
	case o.primitive < f.primitive:
		return o
	default:
		return f
	}
}

// Max returns the greater value; when one side is NaN, the other side is returned.
func (f Float[T]) Max(o Float[T]) Float[T] {
	switch {
	case f.IsNaN():
		return o
	case o.IsNaN():
		return f
	case f.primitive < o.primitive:
		return o
	default:
		return f
	}
}

// Clamp restricts f into the [lo, hi] range. NaN stays NaN.
// It panics when lo is greater than hi or either bound is NaN.
func (f Float[T]) Clamp(lo, hi Float[T]) Float[T] {
	if !(lo.primitive <= hi.primitive) {
		panic(ErrInvalidClamp.F("clamp(%s, %s)", lo, hi))
	}
	switch {
	case f.primitive < lo.primitive:
		return lo
	case hi.primitive < f.primitive:
		return hi
	default:
		return f
	}
}
