package iterkit

// Fuse guarantees that once it reported exhaustion, it is never pulled again.
func Fuse[T any](it Iterator[T]) Iterator[T] {
	return &fuseIter[T]{inner: it}
}

type fuseIter[T any] struct {
	inner Iterator[T]
	done  bool
}

func (i *fuseIter[T]) Next() (T, bool) { return i.pull(i.inner.Next) }

func (i *fuseIter[T]) NextBack() (T, bool) {
	return i.pull(func() (T, bool) { return nextBack(i.inner) })
}

func (i *fuseIter[T]) pull(next func() (T, bool)) (T, bool) {
	if i.done {
		var zero T
		return zero, false
	}
	v, ok := next()
	if !ok {
		i.done = true
	}
	return v, ok
}

func (i *fuseIter[T]) SizeHint() SizeHint {
	if i.done {
		return Exact(0)
	}
	return i.inner.SizeHint()
}

func (i *fuseIter[T]) ExactSizeHint() int {
	if i.done {
		return 0
	}
	return exactSize(i.inner)
}

func (i *fuseIter[T]) TrustedLen() {}

func (i *fuseIter[T]) Clone() Iterator[T] { return &fuseIter[T]{inner: clone(i.inner), done: i.done} }

func (i *fuseIter[T]) Capabilities() Capability {
	return inherit(i.inner, DoubleEnded|ExactSize|Trusted|Cloneable)
}

// Rev reverses the direction of a double-ended iterator.
// It panics with ErrNotDoubleEnded when it can not be pulled from the back.
func Rev[T any](it Iterator[T]) Iterator[T] {
	if !IsDoubleEnded(it) {
		panic(ErrNotDoubleEnded)
	}
	return &revIter[T]{inner: it}
}

type revIter[T any] struct {
	inner Iterator[T]
}

func (i *revIter[T]) Next() (T, bool)     { return nextBack(i.inner) }
func (i *revIter[T]) NextBack() (T, bool) { return i.inner.Next() }
func (i *revIter[T]) SizeHint() SizeHint  { return i.inner.SizeHint() }
func (i *revIter[T]) ExactSizeHint() int  { return exactSize(i.inner) }
func (i *revIter[T]) TrustedLen()         {}
func (i *revIter[T]) Clone() Iterator[T]  { return &revIter[T]{inner: clone(i.inner)} }

func (i *revIter[T]) Capabilities() Capability {
	return inherit(i.inner, DoubleEnded|ExactSize|Trusted|Cloneable)
}

// ByRef lends it to an adaptor without giving up on it.
//
// Items consumed through the returned iterator are consumed from it,
// so it can be used again once the adaptor is dropped.
// The returned iterator is not cloneable, and it must not outlive it.
//
//	first := iterkit.Collect(iterkit.Take(iterkit.ByRef(it), 3))
//	rest := iterkit.Collect(it)
func ByRef[T any](it Iterator[T]) Iterator[T] {
	return &byRef[T]{inner: it}
}

type byRef[T any] struct {
	inner Iterator[T]
}

func (i *byRef[T]) Next() (T, bool)     { return i.inner.Next() }
func (i *byRef[T]) NextBack() (T, bool) { return nextBack(i.inner) }
func (i *byRef[T]) SizeHint() SizeHint  { return i.inner.SizeHint() }
func (i *byRef[T]) ExactSizeHint() int  { return exactSize(i.inner) }
func (i *byRef[T]) TrustedLen()         {}

func (i *byRef[T]) Capabilities() Capability {
	return inherit(i.inner, DoubleEnded|ExactSize|Trusted)
}

// Peekable allows looking at the next item without consuming it.
func Peekable[T any](it Iterator[T]) *PeekableIter[T] {
	return &PeekableIter[T]{inner: it}
}

type PeekableIter[T any] struct {
	inner Iterator[T]
	// peeked is set when the next forward item, or the lack of it, is already pulled.
	peeked bool
	value  T
	ok     bool
}

func (i *PeekableIter[T]) Next() (T, bool) {
	if i.peeked {
		i.peeked = false
		return i.value, i.ok
	}
	return i.inner.Next()
}

// Peek returns the next item without advancing the iterator.
func (i *PeekableIter[T]) Peek() (T, bool) {
	if !i.peeked {
		i.value, i.ok = i.inner.Next()
		i.peeked = true
	}
	return i.value, i.ok
}

// NextIf consumes and returns the next item only when pred accepts it.
func (i *PeekableIter[T]) NextIf(pred func(T) bool) (T, bool) {
	if v, ok := i.Peek(); ok && pred(v) {
		return i.Next()
	}
	var zero T
	return zero, false
}

func (i *PeekableIter[T]) NextBack() (T, bool) {
	var zero T
	if i.peeked && !i.ok {
		return zero, false
	}
	if v, ok := nextBack(i.inner); ok {
		return v, true
	}
	if i.peeked {
		i.peeked = false
		return i.value, true
	}
	return zero, false
}

func (i *PeekableIter[T]) peekLen() int {
	if i.peeked {
		return 1
	}
	return 0
}

func (i *PeekableIter[T]) SizeHint() SizeHint {
	if i.peeked && !i.ok {
		return Exact(0)
	}
	return i.inner.SizeHint().Add(Exact(i.peekLen()))
}

func (i *PeekableIter[T]) ExactSizeHint() int {
	if i.peeked && !i.ok {
		return 0
	}
	return exactSize(i.inner) + i.peekLen()
}

func (i *PeekableIter[T]) TrustedLen() {}

func (i *PeekableIter[T]) Clone() Iterator[T] {
	c := *i
	c.inner = clone(i.inner)
	return &c
}

func (i *PeekableIter[T]) Capabilities() Capability {
	return inherit(i.inner, DoubleEnded|ExactSize|Trusted|Cloneable)
}
