package num

import (
	"go.llib.dev/subspace/pkg/bitkit"
	"go.llib.dev/subspace/pkg/mathkit"
	"golang.org/x/exp/constraints"
)

func checked[T constraints.Integer](out mathkit.OverflowOut[T]) (Int[T], bool) {
	return Of(out.Value), !out.Overflow
}

func overflowing[T constraints.Integer](out mathkit.OverflowOut[T]) (Int[T], bool) {
	return Of(out.Value), out.Overflow
}

// Checked operations report false instead of overflowing.

func (i Int[T]) CheckedAdd(o Int[T]) (Int[T], bool) {
	return checked(mathkit.AddWithOverflow(i.primitive, o.primitive))
}

func (i Int[T]) CheckedSub(o Int[T]) (Int[T], bool) {
	return checked(mathkit.SubWithOverflow(i.primitive, o.primitive))
}

func (i Int[T]) CheckedMul(o Int[T]) (Int[T], bool) {
	return checked(mathkit.MulWithOverflow(i.primitive, o.primitive))
}

func (i Int[T]) CheckedNeg() (Int[T], bool) { return checked(mathkit.NegWithOverflow(i.primitive)) }

func (i Int[T]) CheckedAbs() (Int[T], bool) { return checked(mathkit.AbsWithOverflow(i.primitive)) }

func (i Int[T]) CheckedPow(exp uint32) (Int[T], bool) {
	return checked(mathkit.PowWithOverflow(i.primitive, exp))
}

func (i Int[T]) CheckedShl(shift uint32) (Int[T], bool) {
	return checked(mathkit.ShlWithOverflow(i.primitive, shift))
}

func (i Int[T]) CheckedShr(shift uint32) (Int[T], bool) {
	return checked(mathkit.ShrWithOverflow(i.primitive, shift))
}

// CheckedDiv reports false for a zero divisor and for MIN / -1.
func (i Int[T]) CheckedDiv(o Int[T]) (Int[T], bool) {
	if o.primitive == 0 {
		return Int[T]{}, false
	}
	return checked(mathkit.DivWithOverflow(i.primitive, o.primitive))
}

func (i Int[T]) CheckedRem(o Int[T]) (Int[T], bool) {
	if o.primitive == 0 {
		return Int[T]{}, false
	}
	return checked(mathkit.RemWithOverflow(i.primitive, o.primitive))
}

func (i Int[T]) CheckedDivEuclid(o Int[T]) (Int[T], bool) {
	if o.primitive == 0 {
		return Int[T]{}, false
	}
	return checked(mathkit.DivEuclidWithOverflow(i.primitive, o.primitive))
}

func (i Int[T]) CheckedRemEuclid(o Int[T]) (Int[T], bool) {
	if o.primitive == 0 {
		return Int[T]{}, false
	}
	return checked(mathkit.RemEuclidWithOverflow(i.primitive, o.primitive))
}

func (i Int[T]) CheckedNextPowerOfTwo() (Int[T], bool) {
	return checked(mathkit.NextPowerOfTwoWithOverflow(i.primitive))
}

func (i Int[T]) CheckedLog2() (uint32, bool) { return mathkit.ILog2(i.primitive) }

func (i Int[T]) CheckedLog10() (uint32, bool) { return mathkit.ILog10(i.primitive) }

func (i Int[T]) CheckedLog(base Int[T]) (uint32, bool) {
	return mathkit.ILog(i.primitive, base.primitive)
}

// Overflowing operations return the wrapped value and whether an overflow happened.

func (i Int[T]) OverflowingAdd(o Int[T]) (Int[T], bool) {
	return overflowing(mathkit.AddWithOverflow(i.primitive, o.primitive))
}

func (i Int[T]) OverflowingSub(o Int[T]) (Int[T], bool) {
	return overflowing(mathkit.SubWithOverflow(i.primitive, o.primitive))
}

func (i Int[T]) OverflowingMul(o Int[T]) (Int[T], bool) {
	return overflowing(mathkit.MulWithOverflow(i.primitive, o.primitive))
}

func (i Int[T]) OverflowingNeg() (Int[T], bool) {
	return overflowing(mathkit.NegWithOverflow(i.primitive))
}

func (i Int[T]) OverflowingAbs() (Int[T], bool) {
	return overflowing(mathkit.AbsWithOverflow(i.primitive))
}

func (i Int[T]) OverflowingPow(exp uint32) (Int[T], bool) {
	return overflowing(mathkit.PowWithOverflow(i.primitive, exp))
}

func (i Int[T]) OverflowingShl(shift uint32) (Int[T], bool) {
	return overflowing(mathkit.ShlWithOverflow(i.primitive, shift))
}

func (i Int[T]) OverflowingShr(shift uint32) (Int[T], bool) {
	return overflowing(mathkit.ShrWithOverflow(i.primitive, shift))
}

// OverflowingDiv panics on a zero divisor; MIN / -1 yields MIN and true.
func (i Int[T]) OverflowingDiv(o Int[T]) (Int[T], bool) {
	i.checkDivisor(o, "/")
	return overflowing(mathkit.DivWithOverflow(i.primitive, o.primitive))
}

func (i Int[T]) OverflowingRem(o Int[T]) (Int[T], bool) {
	i.checkDivisor(o, "%")
	return overflowing(mathkit.RemWithOverflow(i.primitive, o.primitive))
}

// Saturating operations clamp to MIN or MAX instead of overflowing.

func (i Int[T]) SaturatingAdd(o Int[T]) Int[T] {
	return Of(mathkit.SaturatingAdd(i.primitive, o.primitive))
}

func (i Int[T]) SaturatingSub(o Int[T]) Int[T] {
	return Of(mathkit.SaturatingSub(i.primitive, o.primitive))
}

func (i Int[T]) SaturatingMul(o Int[T]) Int[T] {
	return Of(mathkit.SaturatingMul(i.primitive, o.primitive))
}

func (i Int[T]) SaturatingNeg() Int[T] { return Of(mathkit.SaturatingNeg(i.primitive)) }

func (i Int[T]) SaturatingAbs() Int[T] { return Of(mathkit.SaturatingAbs(i.primitive)) }

func (i Int[T]) SaturatingPow(exp uint32) Int[T] {
	return Of(mathkit.SaturatingPow(i.primitive, exp))
}

// SaturatingDiv panics on a zero divisor; MIN / -1 yields MAX.
func (i Int[T]) SaturatingDiv(o Int[T]) Int[T] {
	i.checkDivisor(o, "/")
	return Of(mathkit.SaturatingDiv(i.primitive, o.primitive))
}

// Wrapping operations compute modulo 2^N.

func (i Int[T]) WrappingAdd(o Int[T]) Int[T] {
	return Of(mathkit.WrappingAdd(i.primitive, o.primitive))
}

func (i Int[T]) WrappingSub(o Int[T]) Int[T] {
	return Of(mathkit.WrappingSub(i.primitive, o.primitive))
}

func (i Int[T]) WrappingMul(o Int[T]) Int[T] {
	return Of(mathkit.WrappingMul(i.primitive, o.primitive))
}

func (i Int[T]) WrappingNeg() Int[T] { return Of(mathkit.WrappingNeg(i.primitive)) }

func (i Int[T]) WrappingAbs() Int[T] { return Of(mathkit.WrappingAbs(i.primitive)) }

func (i Int[T]) WrappingPow(exp uint32) Int[T] {
	return Of(mathkit.WrappingPow(i.primitive, exp))
}

// WrappingShl masks the shift amount to the bit width.
func (i Int[T]) WrappingShl(shift uint32) Int[T] {
	return Of(mathkit.WrappingShl(i.primitive, shift))
}

// WrappingShr masks the shift amount to the bit width.
func (i Int[T]) WrappingShr(shift uint32) Int[T] {
	return Of(mathkit.WrappingShr(i.primitive, shift))
}

func (i Int[T]) WrappingDiv(o Int[T]) Int[T] {
	i.checkDivisor(o, "/")
	return Of(mathkit.WrappingDiv(i.primitive, o.primitive))
}

func (i Int[T]) WrappingRem(o Int[T]) Int[T] {
	i.checkDivisor(o, "%")
	return Of(mathkit.WrappingRem(i.primitive, o.primitive))
}

func (i Int[T]) WrappingDivEuclid(o Int[T]) Int[T] {
	i.checkDivisor(o, "div_euclid")
	return Of(mathkit.WrappingDivEuclid(i.primitive, o.primitive))
}

func (i Int[T]) WrappingRemEuclid(o Int[T]) Int[T] {
	i.checkDivisor(o, "rem_euclid")
	return Of(mathkit.WrappingRemEuclid(i.primitive, o.primitive))
}

// Bit level operations.

func (i Int[T]) And(o Int[T]) Int[T] { return Of(i.primitive & o.primitive) }
func (i Int[T]) Or(o Int[T]) Int[T]  { return Of(i.primitive | o.primitive) }
func (i Int[T]) Xor(o Int[T]) Int[T] { return Of(i.primitive ^ o.primitive) }
func (i Int[T]) Not() Int[T]         { return Of(^i.primitive) }

func (i Int[T]) CountOnes() uint32  { return bitkit.CountOnes(i.primitive) }
func (i Int[T]) CountZeros() uint32 { return bitkit.CountZeros(i.primitive) }

// LeadingZeros returns the bit width for zero.
func (i Int[T]) LeadingZeros() uint32 {
	if i.primitive == 0 {
		return bitkit.Bits[T]()
	}
	return bitkit.LeadingZerosNonZero(i.primitive)
}

// TrailingZeros returns the bit width for zero.
func (i Int[T]) TrailingZeros() uint32 {
	if i.primitive == 0 {
		return bitkit.Bits[T]()
	}
	return bitkit.TrailingZerosNonZero(i.primitive)
}

func (i Int[T]) LeadingOnes() uint32  { return bitkit.LeadingOnes(i.primitive) }
func (i Int[T]) TrailingOnes() uint32 { return bitkit.TrailingOnes(i.primitive) }

func (i Int[T]) ReverseBits() Int[T] { return Of(bitkit.ReverseBits(i.primitive)) }
func (i Int[T]) SwapBytes() Int[T]   { return Of(bitkit.SwapBytes(i.primitive)) }

func (i Int[T]) RotateLeft(n uint32) Int[T]  { return Of(bitkit.RotateLeft(i.primitive, n)) }
func (i Int[T]) RotateRight(n uint32) Int[T] { return Of(bitkit.RotateRight(i.primitive, n)) }

func (i Int[T]) IsPowerOfTwo() bool { return bitkit.IsPowerOfTwo(i.primitive) }

func (i Int[T]) ToBE() Int[T] { return Of(bitkit.ToBE(i.primitive)) }
func (i Int[T]) ToLE() Int[T] { return Of(bitkit.ToLE(i.primitive)) }

func (i Int[T]) ToBEBytes() []byte { return bitkit.ToBEBytes(i.primitive) }
func (i Int[T]) ToLEBytes() []byte { return bitkit.ToLEBytes(i.primitive) }

func FromBEBytes[T constraints.Integer](bs []byte) Int[T] { return Of(bitkit.FromBEBytes[T](bs)) }
func FromLEBytes[T constraints.Integer](bs []byte) Int[T] { return Of(bitkit.FromLEBytes[T](bs)) }
