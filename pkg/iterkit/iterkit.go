// Package iterkit provides lazy, pull based iterators and their adaptors.
//
// # Summary
//
// An Iterator's goal is to decouple the origin of the data from the consumer who uses that data.
// An Iterator is pulled one item at a time with Next, until Next reports false.
// Nothing is computed ahead of that pull,
// so adaptors like Map, Filter or StepBy can be chained over infinite sources as well.
//
// Besides Next, every Iterator reports a SizeHint,
// a non-binding lower and upper bound on the number of remaining items.
// Consumers may use it to pre-allocate, but never for correctness.
//
// # Capabilities
//
// Some iterators can do more than a forward pull:
//
//   - DoubleEndedIterator can be pulled from the back with NextBack
//   - ExactSizeIterator knows its remaining length exactly
//   - TrustedLen promises that its SizeHint is exact
//   - CloneableIterator can duplicate its current position with Clone
//
// Adaptors inherit these capabilities from the iterators they wrap,
// so their method set is not a reliable source of truth.
// Use IsDoubleEnded, IsExactSize, IsTrustedLen and IsCloneable to check them.
// Calling a capability method that an adaptor does not actually have panics.
//
// # Concurrency
//
// Iterators are not safe for concurrent use.
//
// # Resources
//
// https://en.wikipedia.org/wiki/Iterator_pattern
package iterkit

import (
	"go.llib.dev/frameless/pkg/errorkit"
)

const (
	ErrNotDoubleEnded errorkit.Error = "iterator is not double-ended"
	ErrNotExactSize   errorkit.Error = "iterator does not know its exact size"
	ErrNotCloneable   errorkit.Error = "iterator can not be cloned"
	ErrZeroStep       errorkit.Error = "step must be greater than zero"
	ErrNegativeCount  errorkit.Error = "count must not be negative"

	errOverflow errorkit.Error = "overflow"
)

// Iterator is a lazy sequence of values.
//
// Once Next returned false, the iterator is exhausted.
// Iterators are expected to keep returning false after that,
// unless the documentation of the concrete iterator states otherwise.
type Iterator[T any] interface {
	// Next advances the iterator and returns the next value.
	// It returns false when the iterator is exhausted.
	Next() (T, bool)
	// SizeHint returns the bounds on the remaining length of the iterator.
	SizeHint() SizeHint
}

type DoubleEndedIterator[T any] interface {
	Iterator[T]
	// NextBack takes the next value from the end of the iterator.
	// Values taken by Next and NextBack never cross each other.
	NextBack() (T, bool)
}

type ExactSizeIterator[T any] interface {
	Iterator[T]
	// ExactSizeHint returns the exact number of remaining items.
	ExactSizeHint() int
}

// TrustedLen marks an iterator whose SizeHint is exact and can be relied on.
type TrustedLen[T any] interface {
	Iterator[T]
	TrustedLen()
}

type Cloner[T any] interface {
	Clone() T
}

type CloneableIterator[T any] interface {
	Iterator[T]
	Cloner[Iterator[T]]
}

// Capability is a set of optional iterator features.
type Capability uint8

const (
	DoubleEnded Capability = 1 << iota
	ExactSize
	Trusted
	Cloneable
)

// Has reports whether every capability of o is present in c.
func (c Capability) Has(o Capability) bool { return c&o == o }

// capable is implemented by adaptors, whose method set is wider than their real capabilities.
type capable interface {
	Capabilities() Capability
}

// CapabilitiesOf returns the capabilities of an iterator.
func CapabilitiesOf[T any](it Iterator[T]) Capability {
	if c, ok := it.(capable); ok {
		return c.Capabilities()
	}
	var caps Capability
	if _, ok := it.(DoubleEndedIterator[T]); ok {
		caps |= DoubleEnded
	}
	if _, ok := it.(ExactSizeIterator[T]); ok {
		caps |= ExactSize
	}
	if _, ok := it.(TrustedLen[T]); ok {
		caps |= Trusted
	}
	if _, ok := it.(CloneableIterator[T]); ok {
		caps |= Cloneable
	}
	return caps
}

func IsDoubleEnded[T any](it Iterator[T]) bool { return CapabilitiesOf(it).Has(DoubleEnded) }

func IsExactSize[T any](it Iterator[T]) bool { return CapabilitiesOf(it).Has(ExactSize) }

func IsTrustedLen[T any](it Iterator[T]) bool { return CapabilitiesOf(it).Has(Trusted) }

func IsCloneable[T any](it Iterator[T]) bool { return CapabilitiesOf(it).Has(Cloneable) }

func nextBack[T any](it Iterator[T]) (T, bool) {
	if !IsDoubleEnded(it) {
		panic(ErrNotDoubleEnded)
	}
	return it.(DoubleEndedIterator[T]).NextBack()
}

func exactSize[T any](it Iterator[T]) int {
	if !IsExactSize(it) {
		panic(ErrNotExactSize)
	}
	return it.(ExactSizeIterator[T]).ExactSizeHint()
}

func clone[T any](it Iterator[T]) Iterator[T] {
	if !IsCloneable(it) {
		panic(ErrNotCloneable)
	}
	return it.(Cloner[Iterator[T]]).Clone()
}

// inherit narrows the capabilities of an inner iterator down to the ones an adaptor can pass through.
func inherit[T any](it Iterator[T], mask Capability) Capability {
	return CapabilitiesOf(it) & mask
}

// KV is a key value pair, used by Enumerate, Zip, Unzip and CollectMap.
type KV[K, V any] struct {
	K K
	V V
}

// Result is a value or an error, the item type of TryCollect.
type Result[T any] struct {
	Value T
	Err   error
}

func Ok[T any](v T) Result[T] { return Result[T]{Value: v} }

func Err[T any](err error) Result[T] { return Result[T]{Err: err} }
