package iterkit

import (
	"cmp"

	"go.llib.dev/subspace/pkg/compare"
	"go.llib.dev/subspace/pkg/floatkit"
)

func compareOrdered[T cmp.Ordered](a, b T) compare.Ordering {
	return compare.Of(cmp.Compare(a, b))
}

// MaxBy returns the greatest item according to fn; the last one when several are equally great.
func MaxBy[T any](it Iterator[T], fn func(a, b T) compare.Ordering) (T, bool) {
	return Reduce(it, func(best, v T) T {
		if fn(v, best).IsLess() {
			return best
		}
		return v
	})
}

// MinBy returns the least item according to fn; the first one when several are equally small.
func MinBy[T any](it Iterator[T], fn func(a, b T) compare.Ordering) (T, bool) {
	return Reduce(it, func(best, v T) T {
		if fn(v, best).IsLess() {
			return v
		}
		return best
	})
}

func MaxByKey[T any, K cmp.Ordered](it Iterator[T], key func(T) K) (T, bool) {
	return MaxBy(it, func(a, b T) compare.Ordering { return compareOrdered(key(a), key(b)) })
}

func MinByKey[T any, K cmp.Ordered](it Iterator[T], key func(T) K) (T, bool) {
	return MinBy(it, func(a, b T) compare.Ordering { return compareOrdered(key(a), key(b)) })
}

// IsSorted reports whether the items are in ascending order.
// It stops pulling at the first item that breaks the order.
func IsSorted[T cmp.Ordered](it Iterator[T]) bool {
	return IsSortedBy(it, func(a, b T) compare.PartialOrdering { return compare.Partial(a, b) })
}

// IsSortedBy reports whether every item is less than or equal to its successor according to fn.
// An unordered pair counts as not sorted.
func IsSortedBy[T any](it Iterator[T], fn func(a, b T) compare.PartialOrdering) bool {
	prev, ok := it.Next()
	if !ok {
		return true
	}
	return All(it, func(v T) bool {
		o := fn(prev, v)
		prev = v
		return o == compare.Less.Partial() || o == compare.Equal.Partial()
	})
}

// PartialCmpBy compares a and b lexicographically, pulling both in lockstep.
// It stops at the first pair that is not equal, or when either side is exhausted,
// in which case the shorter sequence is the lesser.
func PartialCmpBy[A, B any](a Iterator[A], b Iterator[B], fn func(A, B) compare.PartialOrdering) compare.PartialOrdering {
	for {
		x, ok := a.Next()
		if !ok {
			if _, ok := b.Next(); ok {
				return compare.Less.Partial()
			}
			return compare.Equal.Partial()
		}
		y, ok := b.Next()
		if !ok {
			return compare.Greater.Partial()
		}
		if o := fn(x, y); o != compare.Equal.Partial() {
			return o
		}
	}
}

// CmpBy compares a and b lexicographically with a total order.
func CmpBy[A, B any](a Iterator[A], b Iterator[B], fn func(A, B) compare.Ordering) compare.Ordering {
	o, _ := PartialCmpBy(a, b, func(x A, y B) compare.PartialOrdering { return fn(x, y).Partial() }).Strong()
	return o
}

// Cmp compares a and b lexicographically using cmp.Compare, which places NaN before every other value.
func Cmp[T cmp.Ordered](a, b Iterator[T]) compare.Ordering {
	return CmpBy(a, b, compareOrdered[T])
}

// PartialCmp compares a and b lexicographically with the < and == operators,
// so a NaN makes the comparison unordered.
func PartialCmp[T cmp.Ordered](a, b Iterator[T]) compare.PartialOrdering {
	return PartialCmpBy(a, b, compare.Partial[T])
}

// StrongCmpBy is CmpBy with a strong ordering, where equal items are indistinguishable.
func StrongCmpBy[A, B any](a Iterator[A], b Iterator[B], fn func(A, B) compare.Ordering) compare.Ordering {
	return CmpBy(a, b, fn)
}

// StrongCmp compares float sequences by the IEEE-754 total order,
// which ranks NaNs and tells -0.0 and +0.0 apart.
func StrongCmp[T floatkit.Float](a, b Iterator[T]) compare.Ordering {
	return StrongCmpBy(a, b, floatkit.StrongOrder[T])
}

// EqBy reports whether a and b yield the same number of pairwise equal items.
func EqBy[A, B any](a Iterator[A], b Iterator[B], fn func(A, B) bool) bool {
	return PartialCmpBy(a, b, func(x A, y B) compare.PartialOrdering {
		if fn(x, y) {
			return compare.Equal.Partial()
		}
		return compare.Unordered
	}) == compare.Equal.Partial()
}

func Eq[T comparable](a, b Iterator[T]) bool {
	return EqBy(a, b, func(x, y T) bool { return x == y })
}

func Ne[T comparable](a, b Iterator[T]) bool { return !Eq(a, b) }

func Lt[T cmp.Ordered](a, b Iterator[T]) bool {
	return PartialCmp(a, b) == compare.Less.Partial()
}

func Le[T cmp.Ordered](a, b Iterator[T]) bool {
	o := PartialCmp(a, b)
	return o == compare.Less.Partial() || o == compare.Equal.Partial()
}

func Gt[T cmp.Ordered](a, b Iterator[T]) bool {
	return PartialCmp(a, b) == compare.Greater.Partial()
}

func Ge[T cmp.Ordered](a, b Iterator[T]) bool {
	o := PartialCmp(a, b)
	return o == compare.Greater.Partial() || o == compare.Equal.Partial()
}
