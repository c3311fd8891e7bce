package mathkit

import "go.llib.dev/subspace/pkg/bitkit"

// ILog2 returns the floor of the base 2 logarithm of x.
// It reports false when x is not positive.
func ILog2[T Integer](x T) (uint32, bool) {
	if x <= 0 {
		return 0, false
	}
	return bitkit.Bits[T]() - 1 - bitkit.LeadingZeros(x), true
}

// ILog10 returns the floor of the base 10 logarithm of x.
// It reports false when x is not positive.
func ILog10[T Integer](x T) (uint32, bool) {
	return ILog(x, T(10))
}

// ILog returns the floor of the logarithm of x in the given base.
// It reports false when x is not positive or base is smaller than 2.
func ILog[T Integer](x, base T) (uint32, bool) {
	if x <= 0 || base < 2 {
		return 0, false
	}
	var (
		n uint32
		u = uint64(x)
		b = uint64(base)
	)
	for b <= u {
		u /= b
		n++
	}
	return n, true
}
