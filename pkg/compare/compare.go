// Package compare holds the ordering results used across subspace.
//
// Ordering is a strong, three-state comparison result,
// while PartialOrdering adds a fourth state for pairs which have no defined order,
// such as an IEEE-754 NaN compared with anything.
package compare

import (
	"cmp"
	"strings"

	"golang.org/x/exp/constraints"
)

// Ordering is the result of a total comparison.
//
// Think of the result like a seesaw:
// the side that's lower (touching the ground) represents the smaller value.
type Ordering int

const (
	Less    Ordering = -1
	Equal   Ordering = 0
	Greater Ordering = +1
)

// Of normalises a cmp style integer result into an Ordering.
func Of(c int) Ordering {
	switch {
	case c < 0:
		return Less
	case 0 < c:
		return Greater
	default:
		return Equal
	}
}

func (o Ordering) IsLess() bool           { return o == Less }
func (o Ordering) IsEqual() bool          { return o == Equal }
func (o Ordering) IsGreater() bool        { return o == Greater }
func (o Ordering) IsLessOrEqual() bool    { return o != Greater }
func (o Ordering) IsGreaterOrEqual() bool { return o != Less }

// Reverse swaps Less and Greater.
func (o Ordering) Reverse() Ordering { return -o }

// Then returns o unless it is Equal, in which case the other ordering decides.
// It chains lexicographic comparisons.
func (o Ordering) Then(other Ordering) Ordering {
	if o != Equal {
		return o
	}
	return other
}

// Partial lifts a strong ordering into the partial domain.
func (o Ordering) Partial() PartialOrdering { return PartialOrdering(o) }

func (o Ordering) String() string {
	switch o {
	case Less:
		return "less"
	case Equal:
		return "equal"
	case Greater:
		return "greater"
	default:
		return "invalid"
	}
}

// PartialOrdering is the result of a comparison where some pairs have no order.
type PartialOrdering int

// Unordered marks a pair of values that cannot be ordered.
// It sits outside the -1..+1 range so it never collides with a strong result.
const Unordered PartialOrdering = 2

// Strong returns the strong ordering and true when the pair was ordered.
func (o PartialOrdering) Strong() (Ordering, bool) {
	if o == Unordered {
		return Equal, false
	}
	return Ordering(o), true
}

func (o PartialOrdering) IsUnordered() bool { return o == Unordered }

func (o PartialOrdering) String() string {
	if o == Unordered {
		return "unordered"
	}
	return Ordering(o).String()
}

// Partial compares two ordered values,
// and reports Unordered when either side is not equal to itself (NaN).
func Partial[T cmp.Ordered](a, b T) PartialOrdering {
	if a != a || b != b {
		return Unordered
	}
	return PartialOrdering(Of(cmp.Compare(a, b)))
}

// IsEqual reports whether two values are equal based on their comparison result.
func IsEqual(cmp int) bool {
	return cmp == 0
}

// IsLess reports whether the receiver is less than another value.
func IsLess(cmp int) bool {
	return cmp < 0
}

// IsLessOrEqual reports whether the receiver is less than or equal to another value.
func IsLessOrEqual(cmp int) bool {
	return cmp <= 0
}

// IsMore reports whether the receiver is greater than another value.
func IsMore(cmp int) bool {
	return 0 < cmp
}

// IsMoreOrEqual reports whether the receiver is more than or equal to another value.
func IsMoreOrEqual(cmp int) bool {
	return 0 <= cmp
}

func Numbers[T constraints.Integer | constraints.Float](a, b T) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func Strings[S ~string](a, b S) int {
	return strings.Compare(string(a), string(b))
}
