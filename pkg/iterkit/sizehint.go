package iterkit

import (
	"fmt"
	"math"

	"go.llib.dev/subspace/pkg/mathkit"
)

// SizeHint is a non-binding estimate of the remaining length of an iterator.
//
// Lower is a safe underestimate.
// Upper is a safe overestimate when Bounded is true, otherwise there is no known upper bound.
type SizeHint struct {
	Lower   int
	Upper   int
	Bounded bool
}

func Exact(n int) SizeHint { return SizeHint{Lower: n, Upper: n, Bounded: true} }

func AtLeast(n int) SizeHint { return SizeHint{Lower: n} }

func Between(lower, upper int) SizeHint { return SizeHint{Lower: lower, Upper: upper, Bounded: true} }

// Unbounded is the hint of an infinite iterator.
func Unbounded() SizeHint { return SizeHint{Lower: math.MaxInt} }

// IsExact returns the length when the lower and the upper bound are the same.
func (h SizeHint) IsExact() (int, bool) {
	return h.Lower, h.Bounded && h.Lower == h.Upper
}

// Add returns the hint of two iterators drained one after the other.
// The lower bound saturates, the upper bound is lost when it overflows.
func (h SizeHint) Add(o SizeHint) SizeHint {
	out := SizeHint{Lower: mathkit.SaturatingAdd(h.Lower, o.Lower)}
	if h.Bounded && o.Bounded {
		sum := mathkit.AddWithOverflow(h.Upper, o.Upper)
		out.Upper, out.Bounded = sum.Value, !sum.Overflow
	}
	return out
}

// Sub removes n items from both bounds, saturating at zero.
func (h SizeHint) Sub(n int) SizeHint {
	h.Lower = max(mathkit.SaturatingSub(h.Lower, n), 0)
	if h.Bounded {
		h.Upper = max(mathkit.SaturatingSub(h.Upper, n), 0)
	}
	return h
}

// AtMost caps both bounds at n.
func (h SizeHint) AtMost(n int) SizeHint {
	h.Lower = min(h.Lower, n)
	if !h.Bounded || n < h.Upper {
		h.Upper, h.Bounded = n, true
	}
	return h
}

// Min returns the hint of two iterators pulled in lockstep until either is exhausted.
func (h SizeHint) Min(o SizeHint) SizeHint {
	out := SizeHint{Lower: min(h.Lower, o.Lower)}
	switch {
	case h.Bounded && o.Bounded:
		out.Upper, out.Bounded = min(h.Upper, o.Upper), true
	case h.Bounded:
		out.Upper, out.Bounded = h.Upper, true
	case o.Bounded:
		out.Upper, out.Bounded = o.Upper, true
	}
	return out
}

// Map applies fn to both bounds.
func (h SizeHint) Map(fn func(int) int) SizeHint {
	h.Lower = fn(h.Lower)
	if h.Bounded {
		h.Upper = fn(h.Upper)
	}
	return h
}

// WithoutLower drops the lower bound, as a filtering adaptor may reject every item.
func (h SizeHint) WithoutLower() SizeHint {
	h.Lower = 0
	return h
}

func (h SizeHint) String() string {
	if !h.Bounded {
		return fmt.Sprintf("(%d, none)", h.Lower)
	}
	return fmt.Sprintf("(%d, %d)", h.Lower, h.Upper)
}
