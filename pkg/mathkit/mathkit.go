// Package mathkit implements overflow aware integer arithmetic.
//
// The WithOverflow family is the core: every function returns the wrapped (mod 2^N) result
// together with a flag telling whether the mathematically exact result was representable.
// The Saturating and Wrapping families are thin policies on top of it.
//
// Nothing in this package panics on overflow; deciding what an overflow means is left to the caller.
// Integer division by zero is a precondition, and it is reported by the Go runtime.
package mathkit

import (
	"go.llib.dev/subspace/pkg/bitkit"
	"golang.org/x/exp/constraints"
)

type (
	Int     constraints.Signed
	UInt    constraints.Unsigned
	Integer constraints.Integer
	Float   constraints.Float
	Number  interface{ Integer | Float }
)

func MaxInt[T Int]() T { return bitkit.Max[T]() }

func MinInt[T Int]() T { return bitkit.Min[T]() }

// SumInt adds a and b, and reports false instead of returning a wrapped value.
func SumInt[INT Integer](a, b INT) (INT, bool) {
	out := AddWithOverflow(a, b)
	if out.Overflow {
		var zero INT
		return zero, false
	}
	return out.Value, true
}

func CanIntSumOverflow[INT Integer](a, b INT) bool {
	return AddWithOverflow(a, b).Overflow
}

func CanIntMulOverflow[INT Integer](x, y INT) bool {
	return MulWithOverflow(x, y).Overflow
}

type AInt = uint64

// AbsInt returns the magnitude of n.
// The result type is wide enough for the magnitude of the most negative value.
func AbsInt[N Integer](n N) AInt {
	if n < 0 {
		return -uint64(n)
	}
	return uint64(n)
}
