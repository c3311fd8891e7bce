package iterkit

// capsOf treats a consumed (nil) part of a composite iterator as supporting everything.
func capsOf[T any](it Iterator[T]) Capability {
	if it == nil {
		return ^Capability(0)
	}
	return CapabilitiesOf(it)
}

func cloneOrNil[T any](it Iterator[T]) Iterator[T] {
	if it == nil {
		return nil
	}
	return clone(it)
}

// Chain yields the items of first, then the items of second.
//
// Once first is exhausted it is released and never pulled again.
// Pulling from the back drains second before touching first.
func Chain[T any](first, second Iterator[T]) Iterator[T] {
	return &chainIter[T]{first: first, second: second}
}

type chainIter[T any] struct {
	first, second Iterator[T]
}

func (i *chainIter[T]) Next() (T, bool) {
	if i.first != nil {
		if v, ok := i.first.Next(); ok {
			return v, true
		}
		i.first = nil
	}
	if i.second != nil {
		return i.second.Next()
	}
	var zero T
	return zero, false
}

func (i *chainIter[T]) NextBack() (T, bool) {
	if i.second != nil {
		if v, ok := nextBack(i.second); ok {
			return v, true
		}
		i.second = nil
	}
	if i.first != nil {
		return nextBack(i.first)
	}
	var zero T
	return zero, false
}

func (i *chainIter[T]) SizeHint() SizeHint {
	hint := Exact(0)
	if i.first != nil {
		hint = hint.Add(i.first.SizeHint())
	}
	if i.second != nil {
		hint = hint.Add(i.second.SizeHint())
	}
	return hint
}

func (i *chainIter[T]) TrustedLen() {}

func (i *chainIter[T]) Clone() Iterator[T] {
	return &chainIter[T]{first: cloneOrNil(i.first), second: cloneOrNil(i.second)}
}

func (i *chainIter[T]) Capabilities() Capability {
	return capsOf(i.first) & capsOf(i.second) & (DoubleEnded | Trusted | Cloneable)
}

// Zip pulls a and b in lockstep and yields their items as pairs.
// It is exhausted as soon as either side is; when a is exhausted first, b is not pulled.
func Zip[A, B any](a Iterator[A], b Iterator[B]) Iterator[KV[A, B]] {
	return &zipIter[A, B]{a: a, b: b}
}

type zipIter[A, B any] struct {
	a Iterator[A]
	b Iterator[B]
}

func (i *zipIter[A, B]) Next() (KV[A, B], bool) {
	x, ok := i.a.Next()
	if !ok {
		return KV[A, B]{}, false
	}
	y, ok := i.b.Next()
	if !ok {
		return KV[A, B]{}, false
	}
	return KV[A, B]{K: x, V: y}, true
}

// NextBack trims the longer side first, so the pairs match the ones Next would produce.
func (i *zipIter[A, B]) NextBack() (KV[A, B], bool) {
	la, lb := exactSize(i.a), exactSize(i.b)
	for ; lb < la; la-- {
		nextBack(i.a)
	}
	for ; la < lb; lb-- {
		nextBack(i.b)
	}
	x, ok := nextBack(i.a)
	if !ok {
		return KV[A, B]{}, false
	}
	y, ok := nextBack(i.b)
	if !ok {
		return KV[A, B]{}, false
	}
	return KV[A, B]{K: x, V: y}, true
}

func (i *zipIter[A, B]) SizeHint() SizeHint { return i.a.SizeHint().Min(i.b.SizeHint()) }
func (i *zipIter[A, B]) ExactSizeHint() int { return min(exactSize(i.a), exactSize(i.b)) }
func (i *zipIter[A, B]) TrustedLen()        {}

func (i *zipIter[A, B]) Clone() Iterator[KV[A, B]] {
	return &zipIter[A, B]{a: clone(i.a), b: clone(i.b)}
}

func (i *zipIter[A, B]) Capabilities() Capability {
	both := CapabilitiesOf(i.a) & CapabilitiesOf(i.b)
	caps := both & (ExactSize | Trusted | Cloneable)
	if both.Has(DoubleEnded | ExactSize) {
		caps |= DoubleEnded
	}
	return caps
}

// Enumerate pairs every item with its index, starting from zero.
func Enumerate[T any](it Iterator[T]) Iterator[KV[int, T]] {
	return &enumerateIter[T]{inner: it}
}

type enumerateIter[T any] struct {
	inner Iterator[T]
	count int
}

func (i *enumerateIter[T]) Next() (KV[int, T], bool) {
	v, ok := i.inner.Next()
	if !ok {
		return KV[int, T]{}, false
	}
	kv := KV[int, T]{K: i.count, V: v}
	i.count++
	return kv, true
}

func (i *enumerateIter[T]) NextBack() (KV[int, T], bool) {
	n := exactSize(i.inner)
	v, ok := nextBack(i.inner)
	if !ok {
		return KV[int, T]{}, false
	}
	return KV[int, T]{K: i.count + n - 1, V: v}, true
}

func (i *enumerateIter[T]) SizeHint() SizeHint { return i.inner.SizeHint() }
func (i *enumerateIter[T]) ExactSizeHint() int { return exactSize(i.inner) }
func (i *enumerateIter[T]) TrustedLen()        {}

func (i *enumerateIter[T]) Clone() Iterator[KV[int, T]] {
	return &enumerateIter[T]{inner: clone(i.inner), count: i.count}
}

func (i *enumerateIter[T]) Capabilities() Capability {
	caps := inherit(i.inner, ExactSize|Trusted|Cloneable)
	if CapabilitiesOf(i.inner).Has(DoubleEnded | ExactSize) {
		caps |= DoubleEnded
	}
	return caps
}

// Flatten yields the items of every iterator yielded by it.
//
// The inner iterators are not known before they are pulled,
// so the result can not be pulled from the back. Use FlattenDoubleEnded for that.
func Flatten[T any](it Iterator[Iterator[T]]) Iterator[T] {
	return &flattenIter[T]{outer: it}
}

// FlatMap maps every item to an iterator and flattens the result.
func FlatMap[From, To any](it Iterator[From], fn func(From) Iterator[To]) Iterator[To] {
	return Flatten(Map(it, fn))
}

// FlattenDoubleEnded is Flatten for inner iterators which can be pulled from the back.
// The result is double-ended whenever it is.
//
// Every inner iterator must report IsDoubleEnded,
// pulling from the back panics with ErrNotDoubleEnded on the first one that does not.
func FlattenDoubleEnded[T any](it Iterator[DoubleEndedIterator[T]]) Iterator[T] {
	return &flattenIter[T]{
		outer:    Map(it, func(inner DoubleEndedIterator[T]) Iterator[T] { return inner }),
		backward: true,
	}
}

// FlatMapDoubleEnded is FlatMap with the guarantees of FlattenDoubleEnded.
func FlatMapDoubleEnded[From, To any](it Iterator[From], fn func(From) DoubleEndedIterator[To]) Iterator[To] {
	return FlattenDoubleEnded(Map(it, fn))
}

type flattenIter[T any] struct {
	outer       Iterator[Iterator[T]]
	front, back Iterator[T]
	backward    bool
}

func (i *flattenIter[T]) Next() (T, bool) {
	for {
		if i.front != nil {
			if v, ok := i.front.Next(); ok {
				return v, true
			}
			i.front = nil
		}
		inner, ok := i.outer.Next()
		if !ok {
			break
		}
		i.front = inner
	}
	if i.back != nil {
		v, ok := i.back.Next()
		if !ok {
			i.back = nil
		}
		return v, ok
	}
	var zero T
	return zero, false
}

func (i *flattenIter[T]) NextBack() (T, bool) {
	if !i.backward {
		panic(ErrNotDoubleEnded)
	}
	for {
		if i.back != nil {
			if v, ok := nextBack(i.back); ok {
				return v, true
			}
			i.back = nil
		}
		inner, ok := nextBack(i.outer)
		if !ok {
			break
		}
		i.back = inner
	}
	if i.front != nil {
		v, ok := nextBack(i.front)
		if !ok {
			i.front = nil
		}
		return v, ok
	}
	var zero T
	return zero, false
}

func (i *flattenIter[T]) SizeHint() SizeHint {
	hint := Exact(0)
	if i.front != nil {
		hint = hint.Add(i.front.SizeHint())
	}
	if i.back != nil {
		hint = hint.Add(i.back.SizeHint())
	}
	if n, ok := i.outer.SizeHint().IsExact(); ok && n == 0 {
		return hint
	}
	return AtLeast(hint.Lower)
}

func (i *flattenIter[T]) Clone() Iterator[T] {
	return &flattenIter[T]{
		outer:    clone(i.outer),
		front:    cloneOrNil(i.front),
		back:     cloneOrNil(i.back),
		backward: i.backward,
	}
}

func (i *flattenIter[T]) Capabilities() Capability {
	caps := CapabilitiesOf(i.outer) & capsOf(i.front) & capsOf(i.back) & (DoubleEnded | Cloneable)
	if !i.backward {
		caps &^= DoubleEnded
	}
	return caps
}

// Cycle repeats it endlessly.
//
// It requires a cloneable iterator, as every round starts from a fresh clone of the original,
// and it panics with ErrNotCloneable otherwise.
// Cycle is the one adaptor whose exhaustion is not terminal for its inner iterators:
// an exhausted round is replaced by the next one.
// Cycling an empty iterator yields nothing.
func Cycle[T any](it Iterator[T]) Iterator[T] {
	return &cycleIter[T]{orig: clone(it), active: it}
}

type cycleIter[T any] struct {
	orig, active Iterator[T]
}

func (i *cycleIter[T]) Next() (T, bool) {
	if v, ok := i.active.Next(); ok {
		return v, true
	}
	i.active = clone(i.orig)
	return i.active.Next()
}

func (i *cycleIter[T]) SizeHint() SizeHint {
	hint := i.orig.SizeHint()
	if n, ok := hint.IsExact(); ok && n == 0 {
		return Exact(0)
	}
	if hint.Lower == 0 {
		return AtLeast(0)
	}
	return Unbounded()
}

func (i *cycleIter[T]) Clone() Iterator[T] {
	return &cycleIter[T]{orig: clone(i.orig), active: clone(i.active)}
}
