package iterkit

// Skip discards the first n items of it.
// The skipping happens lazily, on the first pull.
func Skip[T any](it Iterator[T], n int) Iterator[T] {
	if n < 0 {
		panic(ErrNegativeCount.F("skip(%d)", n))
	}
	return &skipIter[T]{inner: it, n: n}
}

type skipIter[T any] struct {
	inner Iterator[T]
	n     int
}

func (i *skipIter[T]) Next() (T, bool) {
	if 0 < i.n {
		n := i.n
		i.n = 0
		return Nth(i.inner, n)
	}
	return i.inner.Next()
}

// NextBack never reaches into the skipped prefix.
func (i *skipIter[T]) NextBack() (T, bool) {
	if i.ExactSizeHint() == 0 {
		var zero T
		return zero, false
	}
	return nextBack(i.inner)
}

func (i *skipIter[T]) SizeHint() SizeHint { return i.inner.SizeHint().Sub(i.n) }
func (i *skipIter[T]) ExactSizeHint() int { return max(exactSize(i.inner)-i.n, 0) }

func (i *skipIter[T]) Clone() Iterator[T] { return &skipIter[T]{inner: clone(i.inner), n: i.n} }

func (i *skipIter[T]) Capabilities() Capability {
	caps := inherit(i.inner, ExactSize|Cloneable)
	if CapabilitiesOf(i.inner).Has(DoubleEnded | ExactSize) {
		caps |= DoubleEnded
	}
	return caps
}

// Take yields at most n items of it.
// Once n items were taken, the inner iterator is not pulled anymore.
func Take[T any](it Iterator[T], n int) Iterator[T] {
	if n < 0 {
		panic(ErrNegativeCount.F("take(%d)", n))
	}
	return &takeIter[T]{inner: it, n: n}
}

type takeIter[T any] struct {
	inner Iterator[T]
	n     int
}

func (i *takeIter[T]) Next() (T, bool) {
	if i.n == 0 {
		var zero T
		return zero, false
	}
	i.n--
	return i.inner.Next()
}

func (i *takeIter[T]) NextBack() (T, bool) {
	if i.n == 0 {
		var zero T
		return zero, false
	}
	n := i.n
	i.n--
	return NthBack(i.inner, max(exactSize(i.inner)-n, 0))
}

func (i *takeIter[T]) SizeHint() SizeHint {
	if i.n == 0 {
		return Exact(0)
	}
	return i.inner.SizeHint().AtMost(i.n)
}

func (i *takeIter[T]) ExactSizeHint() int { return min(exactSize(i.inner), i.n) }
func (i *takeIter[T]) TrustedLen()        {}

func (i *takeIter[T]) Clone() Iterator[T] { return &takeIter[T]{inner: clone(i.inner), n: i.n} }

func (i *takeIter[T]) Capabilities() Capability {
	caps := inherit(i.inner, ExactSize|Trusted|Cloneable)
	if CapabilitiesOf(i.inner).Has(DoubleEnded | ExactSize) {
		caps |= DoubleEnded
	}
	return caps
}

// SkipWhile discards items while pred holds, then yields everything that follows.
func SkipWhile[T any](it Iterator[T], pred func(T) bool) Iterator[T] {
	return &skipWhileIter[T]{inner: it, pred: pred}
}

type skipWhileIter[T any] struct {
	inner   Iterator[T]
	pred    func(T) bool
	skipped bool
}

func (i *skipWhileIter[T]) Next() (T, bool) {
	if i.skipped {
		return i.inner.Next()
	}
	for {
		v, ok := i.inner.Next()
		if !ok || !i.pred(v) {
			i.skipped = true
			return v, ok
		}
	}
}

func (i *skipWhileIter[T]) SizeHint() SizeHint {
	if i.skipped {
		return i.inner.SizeHint()
	}
	return i.inner.SizeHint().WithoutLower()
}

func (i *skipWhileIter[T]) Clone() Iterator[T] {
	return &skipWhileIter[T]{inner: clone(i.inner), pred: i.pred, skipped: i.skipped}
}

func (i *skipWhileIter[T]) Capabilities() Capability { return inherit(i.inner, Cloneable) }

// TakeWhile yields items while pred holds.
// The first rejected item is consumed and the iterator is exhausted from then on.
func TakeWhile[T any](it Iterator[T], pred func(T) bool) Iterator[T] {
	return &takeWhileIter[T]{inner: it, pred: pred}
}

type takeWhileIter[T any] struct {
	inner Iterator[T]
	pred  func(T) bool
	done  bool
}

func (i *takeWhileIter[T]) Next() (T, bool) {
	var zero T
	if i.done {
		return zero, false
	}
	v, ok := i.inner.Next()
	if !ok || !i.pred(v) {
		i.done = true
		return zero, false
	}
	return v, true
}

func (i *takeWhileIter[T]) SizeHint() SizeHint {
	if i.done {
		return Exact(0)
	}
	return i.inner.SizeHint().WithoutLower()
}

func (i *takeWhileIter[T]) Clone() Iterator[T] {
	return &takeWhileIter[T]{inner: clone(i.inner), pred: i.pred, done: i.done}
}

func (i *takeWhileIter[T]) Capabilities() Capability { return inherit(i.inner, Cloneable) }

// StepBy yields the first item of it, then every step-th item after it.
// It panics when step is not positive.
//
// Pulling from the back yields the same items as pulling from the front would,
// which requires the inner iterator to be double-ended and exact sized.
func StepBy[T any](it Iterator[T], step int) Iterator[T] {
	if step <= 0 {
		panic(ErrZeroStep.F("step_by(%d)", step))
	}
	return &stepByIter[T]{inner: it, step: step, firstTake: true}
}

type stepByIter[T any] struct {
	inner     Iterator[T]
	step      int
	firstTake bool
}

func (i *stepByIter[T]) Next() (T, bool) {
	if i.firstTake {
		i.firstTake = false
		return i.inner.Next()
	}
	return Nth(i.inner, i.step-1)
}

func (i *stepByIter[T]) NextBack() (T, bool) {
	return NthBack(i.inner, i.backOffset())
}

// backOffset is the number of inner items to discard from the end,
// so that the item taken from the back lands on the same stride as the forward pulls.
//
// Before the first forward pull the strides start at the inner's first item,
// after it they start at the inner's step-1th item.
func (i *stepByIter[T]) backOffset() int {
	rem := exactSize(i.inner) % i.step
	if !i.firstTake {
		return rem
	}
	if rem == 0 {
		return i.step - 1
	}
	return rem - 1
}

func (i *stepByIter[T]) SizeHint() SizeHint { return i.inner.SizeHint().Map(i.stepped) }
func (i *stepByIter[T]) ExactSizeHint() int { return i.stepped(exactSize(i.inner)) }

func (i *stepByIter[T]) stepped(n int) int {
	if !i.firstTake {
		return n / i.step
	}
	if n == 0 {
		return 0
	}
	return 1 + (n-1)/i.step
}

func (i *stepByIter[T]) Clone() Iterator[T] {
	return &stepByIter[T]{inner: clone(i.inner), step: i.step, firstTake: i.firstTake}
}

func (i *stepByIter[T]) Capabilities() Capability {
	caps := inherit(i.inner, ExactSize|Cloneable)
	if CapabilitiesOf(i.inner).Has(DoubleEnded | ExactSize) {
		caps |= DoubleEnded
	}
	return caps
}
