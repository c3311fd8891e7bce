package iterkit

// Map transforms every item of it with fn.
func Map[From, To any](it Iterator[From], fn func(From) To) Iterator[To] {
	return &mapIter[From, To]{inner: it, fn: fn}
}

type mapIter[From, To any] struct {
	inner Iterator[From]
	fn    func(From) To
}

func (i *mapIter[From, To]) Next() (To, bool) {
	return mapped(i.fn)(i.inner.Next())
}

func (i *mapIter[From, To]) NextBack() (To, bool) {
	return mapped(i.fn)(nextBack(i.inner))
}

func mapped[From, To any](fn func(From) To) func(From, bool) (To, bool) {
	return func(v From, ok bool) (To, bool) {
		if !ok {
			var zero To
			return zero, false
		}
		return fn(v), true
	}
}

func (i *mapIter[From, To]) SizeHint() SizeHint { return i.inner.SizeHint() }
func (i *mapIter[From, To]) ExactSizeHint() int { return exactSize(i.inner) }
func (i *mapIter[From, To]) TrustedLen()        {}

func (i *mapIter[From, To]) Clone() Iterator[To] {
	return &mapIter[From, To]{inner: clone(i.inner), fn: i.fn}
}

func (i *mapIter[From, To]) Capabilities() Capability {
	return inherit(i.inner, DoubleEnded|ExactSize|Trusted|Cloneable)
}

// Inspect calls fn with every item before passing it on.
func Inspect[T any](it Iterator[T], fn func(T)) Iterator[T] {
	return Map(it, func(v T) T {
		fn(v)
		return v
	})
}

// Cloned yields a clone of every item.
func Cloned[T Cloner[T]](it Iterator[T]) Iterator[T] {
	return Map(it, func(v T) T { return v.Clone() })
}

// Copied dereferences every item.
func Copied[T any](it Iterator[*T]) Iterator[T] {
	return Map(it, func(p *T) T { return *p })
}

// Filter yields only the items that pass the filter.
func Filter[T any](it Iterator[T], filter func(T) bool) Iterator[T] {
	return FilterMap(it, func(v T) (T, bool) { return v, filter(v) })
}

// FilterMap transforms the items with fn and yields the ones where fn reported true.
func FilterMap[From, To any](it Iterator[From], fn func(From) (To, bool)) Iterator[To] {
	return &filterMapIter[From, To]{inner: it, fn: fn}
}

type filterMapIter[From, To any] struct {
	inner Iterator[From]
	fn    func(From) (To, bool)
}

func (i *filterMapIter[From, To]) Next() (To, bool) {
	return i.find(i.inner.Next)
}

func (i *filterMapIter[From, To]) NextBack() (To, bool) {
	return i.find(func() (From, bool) { return nextBack(i.inner) })
}

func (i *filterMapIter[From, To]) find(next func() (From, bool)) (To, bool) {
	for {
		v, ok := next()
		if !ok {
			var zero To
			return zero, false
		}
		if out, ok := i.fn(v); ok {
			return out, true
		}
	}
}

func (i *filterMapIter[From, To]) SizeHint() SizeHint { return i.inner.SizeHint().WithoutLower() }

func (i *filterMapIter[From, To]) Clone() Iterator[To] {
	return &filterMapIter[From, To]{inner: clone(i.inner), fn: i.fn}
}

func (i *filterMapIter[From, To]) Capabilities() Capability {
	return inherit(i.inner, DoubleEnded|Cloneable)
}

// MapWhile transforms items with fn as long as fn reports true.
// The first false ends the iterator for good, the inner iterator is not pulled again.
func MapWhile[From, To any](it Iterator[From], fn func(From) (To, bool)) Iterator[To] {
	return Scan(it, struct{}{}, func(_ *struct{}, v From) (To, bool) { return fn(v) })
}

// Scan is a stateful Map.
// Every item is passed to fn together with a pointer to the state,
// and the first false returned by fn ends the iterator, even when the inner iterator has items left.
func Scan[From, State, To any](it Iterator[From], state State, fn func(*State, From) (To, bool)) Iterator[To] {
	return &scanIter[From, State, To]{inner: it, state: state, fn: fn}
}

type scanIter[From, State, To any] struct {
	inner Iterator[From]
	state State
	fn    func(*State, From) (To, bool)
	done  bool
}

func (i *scanIter[From, State, To]) Next() (To, bool) {
	var zero To
	if i.done {
		return zero, false
	}
	v, ok := i.inner.Next()
	if !ok {
		i.done = true
		return zero, false
	}
	out, ok := i.fn(&i.state, v)
	if !ok {
		i.done = true
		return zero, false
	}
	return out, true
}

func (i *scanIter[From, State, To]) SizeHint() SizeHint {
	if i.done {
		return Exact(0)
	}
	return i.inner.SizeHint().WithoutLower()
}

func (i *scanIter[From, State, To]) Clone() Iterator[To] {
	c := *i
	c.inner = clone(i.inner)
	return &c
}

func (i *scanIter[From, State, To]) Capabilities() Capability {
	return inherit(i.inner, Cloneable)
}
