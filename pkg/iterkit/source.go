package iterkit

import (
	"iter"
	"math"

	"go.llib.dev/subspace/pkg/bitkit"
	"golang.org/x/exp/constraints"
)

// Slice iterates over the elements of a slice, from either end.
func Slice[T any](vs []T) Iterator[T] {
	return &sliceIter[T]{vs: vs, back: len(vs)}
}

// Empty iterator is used to represent nil result with Null object pattern
func Empty[T any]() Iterator[T] {
	return &sliceIter[T]{}
}

// Once yields v exactly one time.
func Once[T any](v T) Iterator[T] {
	return Slice([]T{v})
}

type sliceIter[T any] struct {
	vs          []T
	front, back int
}

func (i *sliceIter[T]) Next() (T, bool) {
	if i.back <= i.front {
		var zero T
		return zero, false
	}
	v := i.vs[i.front]
	i.front++
	return v, true
}

func (i *sliceIter[T]) NextBack() (T, bool) {
	if i.back <= i.front {
		var zero T
		return zero, false
	}
	i.back--
	return i.vs[i.back], true
}

func (i *sliceIter[T]) SizeHint() SizeHint { return Exact(i.ExactSizeHint()) }
func (i *sliceIter[T]) ExactSizeHint() int { return i.back - i.front }
func (i *sliceIter[T]) TrustedLen()        {}
func (i *sliceIter[T]) Clone() Iterator[T] { c := *i; return &c }

// Repeat yields v endlessly, from either end.
func Repeat[T any](v T) Iterator[T] {
	return repeatIter[T]{v: v}
}

type repeatIter[T any] struct{ v T }

func (i repeatIter[T]) Next() (T, bool)     { return i.v, true }
func (i repeatIter[T]) NextBack() (T, bool) { return i.v, true }
func (i repeatIter[T]) SizeHint() SizeHint  { return Unbounded() }
func (i repeatIter[T]) TrustedLen()         {}
func (i repeatIter[T]) Clone() Iterator[T]  { return i }

// Range iterates over the half-open [start, end) interval.
func Range[T constraints.Integer](start, end T) Iterator[T] {
	if end <= start {
		return &rangeIter[T]{done: true}
	}
	return &rangeIter[T]{lo: start, hi: end - 1}
}

// RangeInclusive iterates over the closed [start, end] interval.
func RangeInclusive[T constraints.Integer](start, end T) Iterator[T] {
	return &rangeIter[T]{lo: start, hi: end, done: end < start}
}

// IntRange returns an iterator that will range between the specified `begin` and the `end` int, both included.
func IntRange(begin, end int) Iterator[int] {
	return RangeInclusive(begin, end)
}

// CharRange returns an iterator that will range between the specified `begin` and the `end` rune, both included.
func CharRange(begin, end rune) Iterator[rune] {
	return RangeInclusive(begin, end)
}

type rangeIter[T constraints.Integer] struct {
	lo, hi T
	done   bool
}

func (i *rangeIter[T]) Next() (T, bool) {
	if i.done {
		return 0, false
	}
	v := i.lo
	if i.lo == i.hi {
		i.done = true
	} else {
		i.lo++
	}
	return v, true
}

func (i *rangeIter[T]) NextBack() (T, bool) {
	if i.done {
		return 0, false
	}
	v := i.hi
	if i.lo == i.hi {
		i.done = true
	} else {
		i.hi--
	}
	return v, true
}

// length returns the remaining count, and false when it does not fit into an int.
func (i *rangeIter[T]) length() (int, bool) {
	if i.done {
		return 0, true
	}
	var distance uint64
	if bitkit.IsSigned[T]() {
		distance = uint64(bitkit.SignExtend(i.hi)) - uint64(bitkit.SignExtend(i.lo))
	} else {
		distance = bitkit.ZeroExtend(i.hi) - bitkit.ZeroExtend(i.lo)
	}
	if math.MaxInt <= distance {
		return math.MaxInt, false
	}
	return int(distance) + 1, true
}

func (i *rangeIter[T]) SizeHint() SizeHint {
	n, ok := i.length()
	if !ok {
		return AtLeast(n)
	}
	return Exact(n)
}

func (i *rangeIter[T]) Capabilities() Capability {
	caps := DoubleEnded | Cloneable
	if _, ok := i.length(); ok {
		caps |= ExactSize | Trusted
	}
	return caps
}

func (i *rangeIter[T]) ExactSizeHint() int {
	n, ok := i.length()
	if !ok {
		panic(ErrNotExactSize)
	}
	return n
}

func (i *rangeIter[T]) TrustedLen()        {}
func (i *rangeIter[T]) Clone() Iterator[T] { c := *i; return &c }

// FromPull turns a pull function into an Iterator.
// The iterator is exhausted when next first returns false.
func FromPull[T any](next func() (T, bool)) Iterator[T] {
	return &pullIter[T]{next: next}
}

type pullIter[T any] struct {
	next func() (T, bool)
	done bool
}

func (i *pullIter[T]) Next() (T, bool) {
	if i.done {
		var zero T
		return zero, false
	}
	v, ok := i.next()
	if !ok {
		i.done = true
	}
	return v, ok
}

func (i *pullIter[T]) SizeHint() SizeHint {
	if i.done {
		return Exact(0)
	}
	return AtLeast(0)
}

// ToSeq adapts an Iterator to a range-over-func sequence.
// The returned sequence is single use, as ranging over it consumes the iterator.
func ToSeq[T any](it Iterator[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		for {
			v, ok := it.Next()
			if !ok || !yield(v) {
				return
			}
		}
	}
}

// ToBackSeq ranges over a double-ended iterator from its end.
func ToBackSeq[T any](it Iterator[T]) iter.Seq[T] {
	if !IsDoubleEnded(it) {
		panic(ErrNotDoubleEnded)
	}
	return func(yield func(T) bool) {
		for {
			v, ok := nextBack(it)
			if !ok || !yield(v) {
				return
			}
		}
	}
}
