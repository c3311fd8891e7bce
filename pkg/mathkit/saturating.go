package mathkit

import "go.llib.dev/subspace/pkg/bitkit"

// SaturatingAdd returns x+y clamped into the range of T.
func SaturatingAdd[T Integer](x, y T) T {
	out := AddWithOverflow(x, y)
	if !out.Overflow {
		return out.Value
	}
	if y < 0 {
		return bitkit.Min[T]()
	}
	return bitkit.Max[T]()
}

// SaturatingSub returns x-y clamped into the range of T.
func SaturatingSub[T Integer](x, y T) T {
	out := SubWithOverflow(x, y)
	if !out.Overflow {
		return out.Value
	}
	if y < 0 {
		return bitkit.Max[T]()
	}
	return bitkit.Min[T]()
}

// SaturatingMul returns x*y clamped into the range of T.
func SaturatingMul[T Integer](x, y T) T {
	out := MulWithOverflow(x, y)
	if !out.Overflow {
		return out.Value
	}
	if (x < 0) != (y < 0) {
		return bitkit.Min[T]()
	}
	return bitkit.Max[T]()
}

// SaturatingNeg returns -x clamped into the range of T.
// For unsigned types this is always 0.
func SaturatingNeg[T Integer](x T) T {
	out := NegWithOverflow(x)
	if !out.Overflow {
		return out.Value
	}
	if bitkit.IsSigned[T]() {
		return bitkit.Max[T]()
	}
	return 0
}

// SaturatingAbs returns |x|, where the absolute value of MIN saturates to MAX.
func SaturatingAbs[T Integer](x T) T {
	out := AbsWithOverflow(x)
	if !out.Overflow {
		return out.Value
	}
	return bitkit.Max[T]()
}

func SaturatingPow[T Integer](x T, exp uint32) T {
	out := PowWithOverflow(x, exp)
	if !out.Overflow {
		return out.Value
	}
	if x < 0 && exp%2 == 1 {
		return bitkit.Min[T]()
	}
	return bitkit.Max[T]()
}

// SaturatingDiv returns x/y, where MIN / -1 saturates to MAX.
//
// y must not be zero.
func SaturatingDiv[T Integer](x, y T) T {
	out := DivWithOverflow(x, y)
	if !out.Overflow {
		return out.Value
	}
	return bitkit.Max[T]()
}
