package num

import (
	"strconv"

	"go.llib.dev/subspace/pkg/bitkit"
	"go.llib.dev/subspace/pkg/compare"
	"go.llib.dev/subspace/pkg/mathkit"
	"golang.org/x/exp/constraints"
)

// Int is a fixed width integer value.
//
// It wraps exactly one primitive integer, its zero value is 0,
// and every operation returns a new value.
// T may be a named integer type as well, which is how enumerations are represented.
type Int[T constraints.Integer] struct {
	primitive T
}

type (
	I8    = Int[int8]
	I16   = Int[int16]
	I32   = Int[int32]
	I64   = Int[int64]
	Isize = Int[int]
	U8    = Int[uint8]
	U16   = Int[uint16]
	U32   = Int[uint32]
	U64   = Int[uint64]
	Usize = Int[uint]
)

// Of wraps a primitive integer.
func Of[T constraints.Integer](v T) Int[T] { return Int[T]{primitive: v} }

func Max[T constraints.Integer]() Int[T] { return Of(bitkit.Max[T]()) }

func Min[T constraints.Integer]() Int[T] { return Of(bitkit.Min[T]()) }

func Bits[T constraints.Integer]() uint32 { return bitkit.Bits[T]() }

// Primitive returns the wrapped primitive value.
func (i Int[T]) Primitive() T { return i.primitive }

func (i Int[T]) One() Int[T] { return Int[T]{primitive: 1} }

func (i Int[T]) IsZero() bool { return i.primitive == 0 }

func (i Int[T]) String() string {
	if bitkit.IsSigned[T]() {
		return strconv.FormatInt(int64(i.primitive), 10)
	}
	return strconv.FormatUint(uint64(i.primitive), 10)
}

// applyPolicy turns an overflow into a panic while overflow checks are enabled.
func (i Int[T]) applyPolicy(out mathkit.OverflowOut[T], fail func() error) Int[T] {
	if out.Overflow && overflowChecks {
		panic(fail())
	}
	return Of(out.Value)
}

func (i Int[T]) Add(o Int[T]) Int[T] {
	return i.applyPolicy(mathkit.AddWithOverflow(i.primitive, o.primitive),
		func() error { return ErrOverflow.F("%s + %s", i, o) })
}

func (i Int[T]) Sub(o Int[T]) Int[T] {
	return i.applyPolicy(mathkit.SubWithOverflow(i.primitive, o.primitive),
		func() error { return ErrOverflow.F("%s - %s", i, o) })
}

func (i Int[T]) Mul(o Int[T]) Int[T] {
	return i.applyPolicy(mathkit.MulWithOverflow(i.primitive, o.primitive),
		func() error { return ErrOverflow.F("%s * %s", i, o) })
}

func (i Int[T]) Neg() Int[T] {
	return i.applyPolicy(mathkit.NegWithOverflow(i.primitive),
		func() error { return ErrOverflow.F("-%s", i) })
}

func (i Int[T]) Abs() Int[T] {
	return i.applyPolicy(mathkit.AbsWithOverflow(i.primitive),
		func() error { return ErrOverflow.F("abs(%s)", i) })
}

func (i Int[T]) Pow(exp uint32) Int[T] {
	return i.applyPolicy(mathkit.PowWithOverflow(i.primitive, exp),
		func() error { return ErrOverflow.F("%s ^ %d", i, exp) })
}

func (i Int[T]) Shl(shift uint32) Int[T] {
	return i.applyPolicy(mathkit.ShlWithOverflow(i.primitive, shift),
		func() error { return ErrShiftOverflow.F("%s << %d", i, shift) })
}

func (i Int[T]) Shr(shift uint32) Int[T] {
	return i.applyPolicy(mathkit.ShrWithOverflow(i.primitive, shift),
		func() error { return ErrShiftOverflow.F("%s >> %d", i, shift) })
}

// NextPowerOfTwo returns the smallest power of two greater than or equal to i.
// When the result is not representable it overflows, which wraps to 0 with checks disabled.
func (i Int[T]) NextPowerOfTwo() Int[T] {
	return i.applyPolicy(mathkit.NextPowerOfTwoWithOverflow(i.primitive),
		func() error { return ErrOverflow.F("next power of two of %s", i) })
}

func (i Int[T]) checkDivisor(o Int[T], op string) {
	if o.primitive == 0 {
		panic(ErrDivideByZero.F("%s %s 0", i, op))
	}
}

// Div returns the truncated quotient.
// It panics on a zero divisor and on MIN / -1, whatever the overflow policy is.
func (i Int[T]) Div(o Int[T]) Int[T] {
	i.checkDivisor(o, "/")
	out := mathkit.DivWithOverflow(i.primitive, o.primitive)
	if out.Overflow {
		panic(ErrOverflow.F("%s / %s", i, o))
	}
	return Of(out.Value)
}

// Rem returns the truncated remainder, which has the sign of i.
// It panics on a zero divisor and on MIN % -1, whatever the overflow policy is.
func (i Int[T]) Rem(o Int[T]) Int[T] {
	i.checkDivisor(o, "%")
	out := mathkit.RemWithOverflow(i.primitive, o.primitive)
	if out.Overflow {
		panic(ErrOverflow.F("%s %% %s", i, o))
	}
	return Of(out.Value)
}

// DivEuclid returns the Euclidean quotient, the q for which i = o*q + r with 0 <= r < |o|.
func (i Int[T]) DivEuclid(o Int[T]) Int[T] {
	i.checkDivisor(o, "div_euclid")
	out := mathkit.DivEuclidWithOverflow(i.primitive, o.primitive)
	if out.Overflow {
		panic(ErrOverflow.F("%s div_euclid %s", i, o))
	}
	return Of(out.Value)
}

// RemEuclid returns the least non-negative remainder.
func (i Int[T]) RemEuclid(o Int[T]) Int[T] {
	i.checkDivisor(o, "rem_euclid")
	out := mathkit.RemEuclidWithOverflow(i.primitive, o.primitive)
	if out.Overflow {
		panic(ErrOverflow.F("%s rem_euclid %s", i, o))
	}
	return Of(out.Value)
}

func (i Int[T]) Log2() uint32 {
	n, ok := mathkit.ILog2(i.primitive)
	if !ok {
		panic(ErrNonPositiveLog.F("log2(%s)", i))
	}
	return n
}

func (i Int[T]) Log10() uint32 {
	n, ok := mathkit.ILog10(i.primitive)
	if !ok {
		panic(ErrNonPositiveLog.F("log10(%s)", i))
	}
	return n
}

// Log panics when i is not positive or base is smaller than 2.
func (i Int[T]) Log(base Int[T]) uint32 {
	n, ok := mathkit.ILog(i.primitive, base.primitive)
	if !ok {
		panic(ErrNonPositiveLog.F("log(%s, base %s)", i, base))
	}
	return n
}

func (i Int[T]) IsNegative() bool { return i.primitive < 0 }

func (i Int[T]) IsPositive() bool { return 0 < i.primitive }

// Signum returns -1, 0 or 1 depending on the sign of i.
func (i Int[T]) Signum() Int[T] {
	switch {
	case i.primitive < 0:
		return Of(^T(0))
	case 0 < i.primitive:
		return Of(T(1))
	default:
		return Of(T(0))
	}
}

func (i Int[T]) Cmp(o Int[T]) compare.Ordering {
	return compare.Of(compare.Numbers(i.primitive, o.primitive))
}

func (i Int[T]) Eq(o Int[T]) bool { return i.primitive == o.primitive }
func (i Int[T]) Lt(o Int[T]) bool { return i.primitive < o.primitive }
func (i Int[T]) Le(o Int[T]) bool { return i.primitive <= o.primitive }
func (i Int[T]) Gt(o Int[T]) bool { return i.primitive > o.primitive }
func (i Int[T]) Ge(o Int[T]) bool { return i.primitive >= o.primitive }

func (i Int[T]) Min(o Int[T]) Int[T] {
	if o.primitive < i.primitive {
		return o
	}
	return i
}

func (i Int[T]) Max(o Int[T]) Int[T] {
	if i.primitive < o.primitive {
		return o
	}
	return i
}

// Clamp restricts i into the [lo, hi] range.
// It panics when lo is greater than hi.
func (i Int[T]) Clamp(lo, hi Int[T]) Int[T] {
	if hi.primitive < lo.primitive {
		panic(ErrInvalidClamp.F("clamp(%s, %s)", lo, hi))
	}
	return i.Max(lo).Min(hi)
}
