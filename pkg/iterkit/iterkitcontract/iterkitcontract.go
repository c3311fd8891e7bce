// Package iterkitcontract holds the behaviour every finite iterkit.Iterator implementation must satisfy.
//
// The factory passed to Iterator must build a new, deterministic iterator on every call,
// so the contract can compare independent pulls of the same sequence.
package iterkitcontract

import (
	"testing"

	"go.llib.dev/subspace/pkg/iterkit"
	"go.llib.dev/testcase"
	"go.llib.dev/testcase/assert"
)

// limit bounds how many items are pulled, so a broken iterator can not hang the test.
const limit = 1 << 12

func Iterator[T any](tb testing.TB, mk func(testing.TB) iterkit.Iterator[T]) {
	s := testcase.NewSpec(tb)

	subject := testcase.Let(s, func(t *testcase.T) iterkit.Iterator[T] {
		return mk(t)
	})

	expected := testcase.Let(s, func(t *testcase.T) []T {
		return drain(t, mk(t))
	})

	s.Then("it stays exhausted once Next reported false", func(t *testcase.T) {
		it := subject.Get(t)
		drain(t, it)
		t.Random.Repeat(1, 3, func() {
			_, ok := it.Next()
			assert.False(t, ok)
		})
	})

	s.Then("the size hint bounds the number of remaining items", func(t *testcase.T) {
		it := subject.Get(t)
		for remaining := len(expected.Get(t)); ; remaining-- {
			hint := it.SizeHint()
			assert.True(t, hint.Lower <= remaining, assert.MessageF("lower bound %d exceeds %d", hint.Lower, remaining))
			if hint.Bounded {
				assert.True(t, remaining <= hint.Upper, assert.MessageF("upper bound %d is below %d", hint.Upper, remaining))
			}
			if _, ok := it.Next(); !ok {
				break
			}
		}
	})

	s.Then("the exact size matches the remaining items", func(t *testcase.T) {
		it := subject.Get(t)
		if !iterkit.IsExactSize(it) {
			t.Skip("not an exact size iterator")
		}
		es := it.(iterkit.ExactSizeIterator[T])
		for remaining := len(expected.Get(t)); 0 <= remaining; remaining-- {
			assert.Equal(t, remaining, es.ExactSizeHint())
			it.Next()
		}
	})

	s.Then("a trusted length is reflected in an exact size hint", func(t *testcase.T) {
		it := subject.Get(t)
		if !iterkit.IsTrustedLen(it) {
			t.Skip("not a trusted length iterator")
		}
		n, ok := it.SizeHint().IsExact()
		assert.True(t, ok)
		assert.Equal(t, len(expected.Get(t)), n)
	})

	s.Then("pulling from both ends yields every item once, without crossing", func(t *testcase.T) {
		it := subject.Get(t)
		if !iterkit.IsDoubleEnded(it) {
			t.Skip("not a double-ended iterator")
		}
		de := it.(iterkit.DoubleEndedIterator[T])
		front, back := make([]T, 0), make([]T, 0)
		for i := 0; i < limit; i++ {
			if t.Random.IntN(2) == 0 {
				v, ok := de.Next()
				if !ok {
					break
				}
				front = append(front, v)
				continue
			}
			v, ok := de.NextBack()
			if !ok {
				break
			}
			back = append(back, v)
		}
		got := front
		for i := len(back) - 1; 0 <= i; i-- {
			got = append(got, back[i])
		}
		assert.Equal(t, expected.Get(t), got)
	})

	s.Then("a clone continues independently from the same position", func(t *testcase.T) {
		it := subject.Get(t)
		if !iterkit.IsCloneable(it) {
			t.Skip("not a cloneable iterator")
		}
		all := expected.Get(t)
		skip := t.Random.IntBetween(0, len(all))
		for i := 0; i < skip; i++ {
			it.Next()
		}
		c := it.(iterkit.Cloner[iterkit.Iterator[T]]).Clone()
		assert.Equal(t, all[skip:], drain(t, it))
		assert.Equal(t, all[skip:], drain(t, c))
	})
}

func drain[T any](tb testing.TB, it iterkit.Iterator[T]) []T {
	vs := make([]T, 0)
	for {
		v, ok := it.Next()
		if !ok {
			return vs
		}
		vs = append(vs, v)
		if limit < len(vs) {
			tb.Fatalf("iterator yielded more than %d items", limit)
		}
	}
}
