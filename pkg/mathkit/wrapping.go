package mathkit

// The wrapping family computes modulo 2^N and drops the overflow flag.

func WrappingAdd[T Integer](x, y T) T { return AddWithOverflow(x, y).Value }

func WrappingSub[T Integer](x, y T) T { return SubWithOverflow(x, y).Value }

func WrappingMul[T Integer](x, y T) T { return MulWithOverflow(x, y).Value }

func WrappingNeg[T Integer](x T) T { return NegWithOverflow(x).Value }

func WrappingAbs[T Integer](x T) T { return AbsWithOverflow(x).Value }

func WrappingShl[T Integer](x T, shift uint32) T { return ShlWithOverflow(x, shift).Value }

func WrappingShr[T Integer](x T, shift uint32) T { return ShrWithOverflow(x, shift).Value }

func WrappingPow[T Integer](x T, exp uint32) T { return PowWithOverflow(x, exp).Value }

// WrappingDiv returns x/y, where MIN / -1 wraps to MIN.
//
// y must not be zero.
func WrappingDiv[T Integer](x, y T) T { return DivWithOverflow(x, y).Value }

// WrappingRem returns x%y, where MIN % -1 is 0.
//
// y must not be zero.
func WrappingRem[T Integer](x, y T) T { return RemWithOverflow(x, y).Value }

func WrappingDivEuclid[T Integer](x, y T) T { return DivEuclidWithOverflow(x, y).Value }

func WrappingRemEuclid[T Integer](x, y T) T { return RemEuclidWithOverflow(x, y).Value }
