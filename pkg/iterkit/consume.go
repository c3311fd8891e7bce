package iterkit

import (
	"cmp"

	"go.llib.dev/subspace/pkg/mathkit"
)

// Collect drains it into a slice.
func Collect[T any](it Iterator[T]) []T {
	vs := make([]T, 0, capacityFor(it.SizeHint()))
	for {
		v, ok := it.Next()
		if !ok {
			return vs
		}
		vs = append(vs, v)
	}
}

// maxPrealloc bounds the capacity reserved from a size hint, which may be inflated.
const maxPrealloc = 1 << 16

func capacityFor(hint SizeHint) int {
	return min(hint.Lower, maxPrealloc)
}

// CollectMap drains key value pairs into a map, where later keys overwrite earlier ones.
func CollectMap[K comparable, V any](it Iterator[KV[K, V]]) map[K]V {
	m := make(map[K]V, capacityFor(it.SizeHint()))
	ForEach(it, func(kv KV[K, V]) { m[kv.K] = kv.V })
	return m
}

// TryCollect collects the values until the first error, which it returns.
// Nothing is pulled after the first error.
func TryCollect[T any](it Iterator[Result[T]]) ([]T, error) {
	var vs []T
	err := TryForEach(it, func(r Result[T]) error {
		if r.Err != nil {
			return r.Err
		}
		vs = append(vs, r.Value)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return vs, nil
}

func ForEach[T any](it Iterator[T], fn func(T)) {
	for {
		v, ok := it.Next()
		if !ok {
			return
		}
		fn(v)
	}
}

// TryForEach calls fn on every item and stops at the first error.
func TryForEach[T any](it Iterator[T], fn func(T) error) error {
	_, err := TryFold(it, struct{}{}, func(_ struct{}, v T) (struct{}, error) {
		return struct{}{}, fn(v)
	})
	return err
}

func Fold[T, A any](it Iterator[T], init A, fn func(A, T) A) A {
	acc := init
	ForEach(it, func(v T) { acc = fn(acc, v) })
	return acc
}

// TryFold folds until fn returns an error, and returns the accumulator as it was at that point.
func TryFold[T, A any](it Iterator[T], init A, fn func(A, T) (A, error)) (A, error) {
	acc := init
	for {
		v, ok := it.Next()
		if !ok {
			return acc, nil
		}
		next, err := fn(acc, v)
		if err != nil {
			return acc, err
		}
		acc = next
	}
}

// RFold folds a double-ended iterator from its end.
func RFold[T, A any](it Iterator[T], init A, fn func(A, T) A) A {
	acc, _ := TryRFold(it, init, func(acc A, v T) (A, error) { return fn(acc, v), nil })
	return acc
}

func TryRFold[T, A any](it Iterator[T], init A, fn func(A, T) (A, error)) (A, error) {
	return TryFold(Rev(it), init, fn)
}

// Reduce folds the items using the first item as the initial value.
// It reports false for an empty iterator.
func Reduce[T any](it Iterator[T], fn func(T, T) T) (T, bool) {
	first, ok := it.Next()
	if !ok {
		return first, false
	}
	return Fold(it, first, fn), true
}

func Count[T any](it Iterator[T]) int {
	return Fold(it, 0, func(n int, _ T) int { return n + 1 })
}

func Last[T any](it Iterator[T]) (T, bool) {
	var (
		last  T
		found bool
	)
	ForEach(it, func(v T) { last, found = v, true })
	return last, found
}

// Nth returns the item at index n, consuming every item up to and including it.
func Nth[T any](it Iterator[T], n int) (T, bool) {
	for ; 0 < n; n-- {
		if _, ok := it.Next(); !ok {
			var zero T
			return zero, false
		}
	}
	return it.Next()
}

// NthBack returns the nth item counted from the end of a double-ended iterator.
func NthBack[T any](it Iterator[T], n int) (T, bool) {
	for ; 0 < n; n-- {
		if _, ok := nextBack(it); !ok {
			var zero T
			return zero, false
		}
	}
	return nextBack(it)
}

// All reports whether pred holds for every item.
// It stops pulling at the first item that fails pred.
func All[T any](it Iterator[T], pred func(T) bool) bool {
	_, found := Find(it, func(v T) bool { return !pred(v) })
	return !found
}

// Any reports whether pred holds for any item.
// It stops pulling at the first item that satisfies pred.
func Any[T any](it Iterator[T], pred func(T) bool) bool {
	_, found := Find(it, pred)
	return found
}

// Find returns the first item that satisfies pred, and pulls nothing after it.
func Find[T any](it Iterator[T], pred func(T) bool) (T, bool) {
	return FindMap(it, func(v T) (T, bool) { return v, pred(v) })
}

// FindMap returns the first result of fn that reports true.
func FindMap[T, R any](it Iterator[T], fn func(T) (R, bool)) (R, bool) {
	for {
		v, ok := it.Next()
		if !ok {
			var zero R
			return zero, false
		}
		if r, ok := fn(v); ok {
			return r, true
		}
	}
}

// RFind searches a double-ended iterator from its end.
func RFind[T any](it Iterator[T], pred func(T) bool) (T, bool) {
	return Find(Rev(it), pred)
}

// Position returns the index of the first item that satisfies pred.
func Position[T any](it Iterator[T], pred func(T) bool) (int, bool) {
	for i := 0; ; i++ {
		v, ok := it.Next()
		if !ok {
			return 0, false
		}
		if pred(v) {
			return i, true
		}
	}
}

// RPosition searches from the end of a double-ended and exact sized iterator,
// and returns the index counted from the front.
func RPosition[T any](it Iterator[T], pred func(T) bool) (int, bool) {
	for i := exactSize(it); 0 < i; i-- {
		v, ok := nextBack(it)
		if !ok {
			break
		}
		if pred(v) {
			return i - 1, true
		}
	}
	return 0, false
}

// Partition splits the items into the ones that satisfy pred and the ones that do not.
func Partition[T any](it Iterator[T], pred func(T) bool) (matching, rest []T) {
	ForEach(it, func(v T) {
		if pred(v) {
			matching = append(matching, v)
		} else {
			rest = append(rest, v)
		}
	})
	return matching, rest
}

func Unzip[A, B any](it Iterator[KV[A, B]]) ([]A, []B) {
	n := capacityFor(it.SizeHint())
	as, bs := make([]A, 0, n), make([]B, 0, n)
	ForEach(it, func(kv KV[A, B]) {
		as = append(as, kv.K)
		bs = append(bs, kv.V)
	})
	return as, bs
}

// Sum adds up the items with the + operator.
// Integer sums wrap around on overflow, whatever the overflow checks setting is.
// Use CheckedSum to detect the overflow, or SumOf with num values to follow the overflow checks.
func Sum[T mathkit.Number](it Iterator[T]) T {
	return Fold(it, 0, func(acc, v T) T { return acc + v })
}

// Product multiplies the items with the * operator.
// Like Sum, integer products wrap around; see CheckedProduct and ProductOf.
func Product[T mathkit.Number](it Iterator[T]) T {
	return Fold(it, 1, func(acc, v T) T { return acc * v })
}

// CheckedSum reports false as soon as the running sum overflows, and pulls nothing after that.
func CheckedSum[T mathkit.Integer](it Iterator[T]) (T, bool) {
	return checkedFold(it, 0, mathkit.AddWithOverflow[T])
}

// CheckedProduct reports false as soon as the running product overflows, and pulls nothing after that.
func CheckedProduct[T mathkit.Integer](it Iterator[T]) (T, bool) {
	return checkedFold(it, 1, mathkit.MulWithOverflow[T])
}

func checkedFold[T mathkit.Integer](it Iterator[T], init T, op func(T, T) mathkit.OverflowOut[T]) (T, bool) {
	acc, err := TryFold(it, init, func(acc, v T) (T, error) {
		out := op(acc, v)
		if out.Overflow {
			return acc, errOverflow
		}
		return out.Value, nil
	})
	return acc, err == nil
}

// Adder is a value type with an addition, like num.Int or num.Float.
type Adder[T any] interface {
	Add(T) T
}

// Multiplier is a value type with a multiplication and a multiplicative identity.
type Multiplier[T any] interface {
	Mul(T) T
	One() T
}

// SumOf adds up items with their Add method, starting from the zero value.
func SumOf[T Adder[T]](it Iterator[T]) T {
	var zero T
	return Fold(it, zero, func(acc, v T) T { return acc.Add(v) })
}

// ProductOf multiplies items with their Mul method, starting from One.
func ProductOf[T Multiplier[T]](it Iterator[T]) T {
	var zero T
	return Fold(it, zero.One(), func(acc, v T) T { return acc.Mul(v) })
}

// Max returns the greatest item; the last one when several are equally great.
func Max[T cmp.Ordered](it Iterator[T]) (T, bool) {
	return MaxBy(it, compareOrdered[T])
}

// Min returns the least item; the first one when several are equally small.
func Min[T cmp.Ordered](it Iterator[T]) (T, bool) {
	return MinBy(it, compareOrdered[T])
}
