package iterkit

import (
	"iter"
)

// Generator bridges a push style sequence into the pull based Iterator protocol.
//
// The generator function runs as a coroutine:
// it is resumed once per Next call and suspended at its next yield,
// so exactly one item is materialised per pull.
// Once the function returns, the Generator is exhausted and stays exhausted.
//
// A Generator that is abandoned before exhaustion must be closed to release the coroutine.
type Generator[T any] struct {
	next func() (T, bool)
	stop func()
	done bool
}

// Generate creates a Generator from a function that yields values.
//
//	gen := iterkit.Generate(func(yield func(int) bool) {
//		for i := 0; ; i++ {
//			if !yield(i * i) {
//				return
//			}
//		}
//	})
//	defer gen.Close()
func Generate[T any](fn func(yield func(T) bool)) *Generator[T] {
	return FromSeq(iter.Seq[T](fn))
}

// FromSeq creates a Generator that pulls its values from a range-over-func sequence.
func FromSeq[T any](seq iter.Seq[T]) *Generator[T] {
	next, stop := iter.Pull(seq)
	return &Generator[T]{next: next, stop: stop}
}

func (g *Generator[T]) Next() (T, bool) {
	if g.done {
		var zero T
		return zero, false
	}
	v, ok := g.next()
	if !ok {
		g.Close()
	}
	return v, ok
}

func (g *Generator[T]) SizeHint() SizeHint {
	if g.done {
		return Exact(0)
	}
	return AtLeast(0)
}

// Close stops the generator function.
// It is safe to call Close more than once.
func (g *Generator[T]) Close() error {
	if g.done {
		return nil
	}
	g.done = true
	g.stop()
	return nil
}
