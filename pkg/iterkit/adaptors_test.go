package iterkit_test

import (
	"slices"
	"strconv"
	"testing"

	"github.com/golang/mock/gomock"
	"go.llib.dev/subspace/internal/mocks"
	"go.llib.dev/subspace/pkg/iterkit"
	"go.llib.dev/subspace/pkg/iterkit/iterkitcontract"
	"go.llib.dev/testcase"
	"go.llib.dev/testcase/assert"
)

func TestAdaptors_contract(t *testing.T) {
	ints := func() iterkit.Iterator[int] { return iterkit.Range(0, 13) }
	isEven := func(v int) bool { return v%2 == 0 }

	for name, mk := range map[string]func() iterkit.Iterator[int]{
		"Map":        func() iterkit.Iterator[int] { return iterkit.Map(ints(), func(v int) int { return v * 3 }) },
		"Filter":     func() iterkit.Iterator[int] { return iterkit.Filter(ints(), isEven) },
		"Skip":       func() iterkit.Iterator[int] { return iterkit.Skip(ints(), 4) },
		"Take":       func() iterkit.Iterator[int] { return iterkit.Take(ints(), 5) },
		"StepBy(1)":  func() iterkit.Iterator[int] { return iterkit.StepBy(ints(), 1) },
		"StepBy(3)":  func() iterkit.Iterator[int] { return iterkit.StepBy(ints(), 3) },
		"StepBy(4)":  func() iterkit.Iterator[int] { return iterkit.StepBy(ints(), 4) },
		"SkipWhile":  func() iterkit.Iterator[int] { return iterkit.SkipWhile(ints(), func(v int) bool { return v < 5 }) },
		"TakeWhile":  func() iterkit.Iterator[int] { return iterkit.TakeWhile(ints(), func(v int) bool { return v < 5 }) },
		"Chain":      func() iterkit.Iterator[int] { return iterkit.Chain(ints(), iterkit.Slice([]int{42, 43})) },
		"Fuse":       func() iterkit.Iterator[int] { return iterkit.Fuse(ints()) },
		"Rev":        func() iterkit.Iterator[int] { return iterkit.Rev(ints()) },
		"Peekable":   func() iterkit.Iterator[int] { return iterkit.Peekable(ints()) },
		"Skip(Rev)":  func() iterkit.Iterator[int] { return iterkit.Skip(iterkit.Rev(ints()), 2) },
		"Take(Skip)": func() iterkit.Iterator[int] { return iterkit.Take(iterkit.Skip(ints(), 2), 20) },

		"Scan": func() iterkit.Iterator[int] {
			return iterkit.Scan(ints(), 0, func(acc *int, v int) (int, bool) {
				*acc += v
				return *acc, *acc < 50
			})
		},
		"FlatMap": func() iterkit.Iterator[int] {
			return iterkit.FlatMap(iterkit.Range(0, 5), func(n int) iterkit.Iterator[int] { return iterkit.Range(0, n*2) })
		},
		"FlatMapDoubleEnded": func() iterkit.Iterator[int] {
			return iterkit.FlatMapDoubleEnded(iterkit.Range(0, 5), func(n int) iterkit.DoubleEndedIterator[int] {
				return doubleEnded(iterkit.Range(0, n*2))
			})
		},
		"Zip.K": func() iterkit.Iterator[int] {
			return iterkit.Map(iterkit.Zip(ints(), iterkit.Range(0, 7)), func(kv iterkit.KV[int, int]) int { return kv.K })
		},
		"Enumerate.K": func() iterkit.Iterator[int] {
			return iterkit.Map(iterkit.Enumerate(iterkit.Skip(ints(), 3)), func(kv iterkit.KV[int, int]) int { return kv.K })
		},
	} {
		t.Run(name, func(t *testing.T) {
			iterkitcontract.Iterator(t, func(testing.TB) iterkit.Iterator[int] { return mk() })
		})
	}
}

func doubleEnded[T any](it iterkit.Iterator[T]) iterkit.DoubleEndedIterator[T] {
	return it.(iterkit.DoubleEndedIterator[T])
}

type bag struct{ vs []int }

func (b bag) Clone() bag { return bag{vs: slices.Clone(b.vs)} }

func ExampleMap() {
	itr := iterkit.Map(iterkit.Range(1, 4), strconv.Itoa)

	vs := iterkit.Collect(itr)
	_ = vs // []string{"1", "2", "3"}
}

func TestMap(t *testing.T) {
	s := testcase.NewSpec(t)

	s.Test("it transforms every item", func(t *testcase.T) {
		itr := iterkit.Map(iterkit.Slice([]int{1, 2, 3}), func(v int) string { return strconv.Itoa(v * 2) })
		assert.Equal(t, []string{"2", "4", "6"}, iterkit.Collect(itr))
	})

	s.Test("it keeps the capabilities of the inner iterator", func(t *testcase.T) {
		assert.Equal(t, iterkit.CapabilitiesOf(iterkit.Range(0, 3)),
			iterkit.CapabilitiesOf(iterkit.Map(iterkit.Range(0, 3), func(v int) int { return v })))
		assert.Equal(t, iterkit.Capability(0),
			iterkit.CapabilitiesOf(iterkit.Map[int](iterkit.FromPull(func() (int, bool) { return 0, false }), func(v int) int { return v })))
	})

	s.Test("inspect sees every item", func(t *testcase.T) {
		var seen []int
		itr := iterkit.Inspect(iterkit.Slice([]int{1, 2, 3}), func(v int) { seen = append(seen, v) })
		assert.Equal(t, []int{1, 2, 3}, iterkit.Collect(itr))
		assert.Equal(t, []int{1, 2, 3}, seen)
	})

	s.Test("copied dereferences", func(t *testcase.T) {
		a, b := 1, 2
		assert.Equal(t, []int{1, 2}, iterkit.Collect(iterkit.Copied(iterkit.Slice([]*int{&a, &b}))))
	})

	s.Test("cloned calls Clone", func(t *testcase.T) {
		orig := bag{vs: []int{1, 2, 3}}
		clones := iterkit.Collect(iterkit.Cloned(iterkit.Once(orig)))
		assert.Equal(t, 1, len(clones))
		clones[0].vs[0] = 42
		assert.Equal(t, []int{1, 2, 3}, orig.vs)
	})
}

func ExampleFilter() {
	itr := iterkit.Filter(iterkit.Range(0, 10), func(n int) bool { return n%2 == 0 })

	vs := iterkit.Collect(itr)
	_ = vs // []int{0, 2, 4, 6, 8}
}

func TestFilter(t *testing.T) {
	s := testcase.NewSpec(t)

	s.Test("it keeps the matching items", func(t *testcase.T) {
		itr := iterkit.Filter(iterkit.Range(0, 10), func(n int) bool { return n%3 == 0 })
		assert.Equal(t, []int{0, 3, 6, 9}, iterkit.Collect(itr))
	})

	s.Test("the lower bound of the size hint drops to zero", func(t *testcase.T) {
		itr := iterkit.Filter(iterkit.Slice([]int{1, 2, 3, 4, 5}), func(int) bool { return true })
		assert.Equal(t, iterkit.Between(0, 5), itr.SizeHint())
		assert.False(t, iterkit.IsExactSize(itr))
	})

	s.Test("filter map", func(t *testcase.T) {
		itr := iterkit.FilterMap(iterkit.Slice([]string{"1", "x", "3"}), func(s string) (int, bool) {
			n, err := strconv.Atoi(s)
			return n, err == nil
		})
		assert.Equal(t, []int{1, 3}, iterkit.Collect(itr))
	})

	s.Test("from the back", func(t *testcase.T) {
		itr := iterkit.Rev(iterkit.Filter(iterkit.Range(0, 10), func(n int) bool { return 5 < n }))
		assert.Equal(t, []int{9, 8, 7, 6}, iterkit.Collect(itr))
	})
}

func TestScan(t *testing.T) {
	s := testcase.NewSpec(t)

	s.Test("it threads the state through the items", func(t *testcase.T) {
		itr := iterkit.Scan(iterkit.Slice([]int{1, 2, 3, 4}), 1, func(acc *int, v int) (int, bool) {
			*acc *= v
			return *acc, true
		})
		assert.Equal(t, []int{1, 2, 6, 24}, iterkit.Collect(itr))
	})

	s.Test("the first false ends it, even with items left", func(t *testcase.T) {
		inner := iterkit.Slice([]int{1, 2, 3, 4})
		itr := iterkit.Scan(iterkit.ByRef(inner), 0, func(acc *int, v int) (int, bool) {
			*acc += v
			return *acc, *acc <= 5
		})
		assert.Equal(t, []int{1, 3}, iterkit.Collect(itr))
		_, ok := itr.Next()
		assert.False(t, ok)
		assert.Equal(t, []int{4}, iterkit.Collect(inner))
	})

	s.Test("map while", func(t *testcase.T) {
		inner := iterkit.Slice([]int{1, 2, -1, 3})
		itr := iterkit.MapWhile(iterkit.ByRef(inner), func(v int) (string, bool) {
			return strconv.Itoa(v * 10), 0 < v
		})
		assert.Equal(t, []string{"10", "20"}, iterkit.Collect(itr))
		assert.Equal(t, []int{3}, iterkit.Collect(inner))
	})
}

func TestSkip(t *testing.T) {
	s := testcase.NewSpec(t)

	s.Test("it drops the first n items", func(t *testcase.T) {
		assert.Equal(t, []int{3, 4, 5}, iterkit.Collect(iterkit.Skip(iterkit.Slice([]int{1, 2, 3, 4, 5}), 2)))
		assert.Equal(t, []int{}, iterkit.Collect(iterkit.Skip(iterkit.Slice([]int{1, 2}), 5)))
	})

	s.Test("it does not pull before the first Next", func(t *testcase.T) {
		ctrl := gomock.NewController(t)
		itr := iterkit.Skip[int](mocks.NewMockIterator[int](ctrl), 2)
		assert.NotNil(t, itr)
	})

	s.Test("size hint", func(t *testcase.T) {
		assert.Equal(t, iterkit.Exact(3), iterkit.Skip(iterkit.Range(0, 5), 2).SizeHint())
		assert.Equal(t, iterkit.Exact(0), iterkit.Skip(iterkit.Range(0, 5), 7).SizeHint())
	})

	s.Test("from the back it never reaches into the skipped items", func(t *testcase.T) {
		assert.Equal(t, []int{5, 4, 3}, iterkit.Collect(iterkit.Rev(iterkit.Skip(iterkit.Range(1, 6), 2))))
	})

	s.Test("a negative count panics", func(t *testcase.T) {
		assert.ErrorIs(t, iterkit.ErrNegativeCount, panicError(t, func() { iterkit.Skip(iterkit.Range(0, 3), -1) }))
		assert.ErrorIs(t, iterkit.ErrNegativeCount, panicError(t, func() { iterkit.Take(iterkit.Range(0, 3), -1) }))
	})
}

func TestTake(t *testing.T) {
	s := testcase.NewSpec(t)

	s.Test("it yields at most n items", func(t *testcase.T) {
		assert.Equal(t, []int{1, 2}, iterkit.Collect(iterkit.Take(iterkit.Slice([]int{1, 2, 3}), 2)))
		assert.Equal(t, []int{1, 2, 3}, iterkit.Collect(iterkit.Take(iterkit.Slice([]int{1, 2, 3}), 10)))
	})

	s.Test("it does not pull the inner iterator after the nth item", func(t *testcase.T) {
		ctrl := gomock.NewController(t)
		itr := iterkit.Take[int](mocks.ExpectSequence(ctrl, 7, 8), 2)
		var got []int
		iterkit.ForEach(itr, func(v int) { got = append(got, v) })
		assert.Equal(t, []int{7, 8}, got)
		_, ok := itr.Next()
		assert.False(t, ok)
	})

	s.Test("from the back", func(t *testcase.T) {
		assert.Equal(t, []int{3, 2, 1}, iterkit.Collect(iterkit.Rev(iterkit.Take(iterkit.Range(1, 10), 3))))
	})

	s.Test("take while", func(t *testcase.T) {
		inner := iterkit.Range(1, 10)
		itr := iterkit.TakeWhile(iterkit.ByRef(inner), func(v int) bool { return v < 4 })
		assert.Equal(t, []int{1, 2, 3}, iterkit.Collect(itr))
		assert.Equal(t, []int{5, 6, 7, 8, 9}, iterkit.Collect(inner))
	})

	s.Test("skip while", func(t *testcase.T) {
		itr := iterkit.SkipWhile(iterkit.Slice([]int{1, 2, 5, 1, 2}), func(v int) bool { return v < 3 })
		assert.Equal(t, []int{5, 1, 2}, iterkit.Collect(itr))
	})
}

func ExampleStepBy() {
	itr := iterkit.StepBy(iterkit.Range(0, 10), 3)

	vs := iterkit.Collect(itr)
	_ = vs // []int{0, 3, 6, 9}
}

func TestStepBy(t *testing.T) {
	s := testcase.NewSpec(t)

	s.Test("it yields the first item and every step-th after it", func(t *testcase.T) {
		assert.Equal(t, []int{1, 3, 5}, iterkit.Collect(iterkit.StepBy(iterkit.Slice([]int{1, 2, 3, 4, 5}), 2)))
		assert.Equal(t, []int{1, 4}, iterkit.Collect(iterkit.StepBy(iterkit.Slice([]int{1, 2, 3, 4, 5}), 3)))
	})

	s.Test("a step that is not positive panics at construction", func(t *testcase.T) {
		assert.ErrorIs(t, iterkit.ErrZeroStep, panicError(t, func() { iterkit.StepBy(iterkit.Range(0, 3), 0) }))
		assert.ErrorIs(t, iterkit.ErrZeroStep, panicError(t, func() { iterkit.StepBy(iterkit.Range(0, 3), -2) }))
	})

	s.Test("size hint", func(t *testcase.T) {
		itr := iterkit.StepBy(iterkit.Range(0, 10), 3)
		assert.Equal(t, iterkit.Exact(4), itr.SizeHint())
		itr.Next()
		assert.Equal(t, iterkit.Exact(3), itr.SizeHint())
	})

	s.Test("pulling from both ends yields the forward strides", func(t *testcase.T) {
		t.Random.Repeat(16, 32, func() {
			var (
				n    = t.Random.IntB(0, 30)
				step = t.Random.IntB(1, 5)
			)
			expected := make([]int, 0)
			for i := 0; i < n; i += step {
				expected = append(expected, i)
			}

			itr := iterkit.StepBy(iterkit.Range(0, n), step).(iterkit.DoubleEndedIterator[int])
			front, back := make([]int, 0), make([]int, 0)
			for {
				if t.Random.IntN(2) == 0 {
					v, ok := itr.Next()
					if !ok {
						break
					}
					front = append(front, v)
					continue
				}
				v, ok := itr.NextBack()
				if !ok {
					break
				}
				back = append(back, v)
			}
			for i := len(back) - 1; 0 <= i; i-- {
				front = append(front, back[i])
			}
			assert.Equal(t, expected, front, assert.MessageF("n=%d step=%d", n, step))
		})
	})
}

func ExampleChain() {
	itr := iterkit.Chain(iterkit.Slice([]int{1, 2}), iterkit.Slice([]int{3, 4}))

	vs := iterkit.Collect(itr)
	_ = vs // []int{1, 2, 3, 4}
}

func TestChain(t *testing.T) {
	s := testcase.NewSpec(t)

	s.Test("it yields first, then second", func(t *testcase.T) {
		itr := iterkit.Chain(iterkit.Slice([]int{1, 2}), iterkit.Slice([]int{3, 4}))
		assert.Equal(t, iterkit.Exact(4), itr.SizeHint())
		assert.Equal(t, []int{1, 2, 3, 4}, iterkit.Collect(itr))
	})

	s.Test("from the back", func(t *testcase.T) {
		itr := iterkit.Chain(iterkit.Slice([]int{1, 2}), iterkit.Slice([]int{3, 4}))
		assert.Equal(t, []int{4, 3, 2, 1}, iterkit.Collect(iterkit.Rev(itr)))
	})

	s.Test("an exhausted first iterator is not pulled again", func(t *testcase.T) {
		ctrl := gomock.NewController(t)
		first := mocks.NewMockIterator[int](ctrl)
		gomock.InOrder(
			first.EXPECT().Next().Return(1, true),
			first.EXPECT().Next().Return(0, false),
		)
		itr := iterkit.Chain[int](first, iterkit.Once(2))
		var got []int
		iterkit.ForEach(itr, func(v int) { got = append(got, v) })
		assert.Equal(t, []int{1, 2}, got)
		_, ok := itr.Next()
		assert.False(t, ok)
	})

	s.Test("its size hint loses the upper bound on overflow", func(t *testcase.T) {
		hint := iterkit.Chain(iterkit.Repeat(1), iterkit.Once(1)).SizeHint()
		assert.False(t, hint.Bounded)
	})
}

func TestZip(t *testing.T) {
	s := testcase.NewSpec(t)

	s.Test("it stops at the shorter side", func(t *testcase.T) {
		itr := iterkit.Zip(iterkit.Slice([]int{1, 2, 3}), iterkit.Slice([]string{"a", "b"}))
		assert.Equal(t, iterkit.Exact(2), itr.SizeHint())
		assert.Equal(t, []iterkit.KV[int, string]{{K: 1, V: "a"}, {K: 2, V: "b"}}, iterkit.Collect(itr))
	})

	s.Test("b is not pulled when a is exhausted", func(t *testcase.T) {
		ctrl := gomock.NewController(t)
		itr := iterkit.Zip[int, int](iterkit.Empty[int](), mocks.NewMockIterator[int](ctrl))
		_, ok := itr.Next()
		assert.False(t, ok)
	})

	s.Test("from the back, the longer side is trimmed first", func(t *testcase.T) {
		itr := iterkit.Rev(iterkit.Zip(iterkit.Slice([]int{1, 2, 3}), iterkit.Slice([]string{"a", "b"})))
		assert.Equal(t, []iterkit.KV[int, string]{{K: 2, V: "b"}, {K: 1, V: "a"}}, iterkit.Collect(itr))
	})

	s.Test("enumerate", func(t *testcase.T) {
		itr := iterkit.Enumerate(iterkit.Slice([]string{"a", "b", "c"}))
		first, ok := itr.Next()
		assert.True(t, ok)
		assert.Equal(t, iterkit.KV[int, string]{K: 0, V: "a"}, first)
		assert.Equal(t, []iterkit.KV[int, string]{{K: 2, V: "c"}, {K: 1, V: "b"}}, iterkit.Collect(iterkit.Rev(itr)))
	})
}

func TestFlatten(t *testing.T) {
	s := testcase.NewSpec(t)

	s.Test("it yields the items of every inner iterator", func(t *testcase.T) {
		itr := iterkit.FlatMap(iterkit.Range(1, 4), func(n int) iterkit.Iterator[int] {
			return iterkit.Take(iterkit.Repeat(n), n)
		})
		assert.Equal(t, []int{1, 2, 2, 3, 3, 3}, iterkit.Collect(itr))
	})

	s.Test("it is not double-ended, whatever its inner iterators are", func(t *testcase.T) {
		itr := iterkit.Flatten(iterkit.Slice([]iterkit.Iterator[int]{
			iterkit.FromPull(func() (int, bool) { return 0, false }),
			iterkit.Slice([]int{1, 2}),
		}))
		assert.False(t, iterkit.IsDoubleEnded(itr))
		assert.True(t, iterkit.IsCloneable(iterkit.Flatten(iterkit.Slice([]iterkit.Iterator[int]{iterkit.Slice([]int{1})}))))

		assert.ErrorIs(t, iterkit.ErrNotDoubleEnded, panicError(t, func() { iterkit.Rev(itr) }))
		assert.ErrorIs(t, iterkit.ErrNotDoubleEnded, panicError(t, func() {
			itr.(iterkit.DoubleEndedIterator[int]).NextBack()
		}))
		assert.Equal(t, []int{1, 2}, iterkit.Collect(itr))
	})

	s.Test("from the back, with double-ended inner iterators", func(t *testcase.T) {
		itr := iterkit.FlattenDoubleEnded(iterkit.Slice([]iterkit.DoubleEndedIterator[int]{
			doubleEnded(iterkit.Slice([]int{1, 2})),
			doubleEnded(iterkit.Empty[int]()),
			doubleEnded(iterkit.Slice([]int{3})),
		}))
		assert.True(t, iterkit.IsDoubleEnded(itr))
		assert.Equal(t, []int{3, 2, 1}, iterkit.Collect(iterkit.Rev(itr)))
	})

	s.Test("from both ends", func(t *testcase.T) {
		itr := iterkit.FlatMapDoubleEnded(iterkit.Range(1, 4), func(n int) iterkit.DoubleEndedIterator[int] {
			return doubleEnded(iterkit.Range(n*10, n*10+2))
		})
		first, _ := itr.Next()
		last, _ := itr.(iterkit.DoubleEndedIterator[int]).NextBack()
		assert.Equal(t, 10, first)
		assert.Equal(t, 31, last)
		assert.Equal(t, []int{11, 20, 21, 30}, iterkit.Collect(itr))
	})

	s.Test("size hint is only bounded once the outer iterator is drained", func(t *testcase.T) {
		itr := iterkit.Flatten(iterkit.Slice([]iterkit.Iterator[int]{iterkit.Slice([]int{1, 2})}))
		assert.False(t, itr.SizeHint().Bounded)
		itr.Next()
		assert.Equal(t, iterkit.Exact(1), itr.SizeHint())
	})
}

func ExampleCycle() {
	itr := iterkit.Take(iterkit.Cycle(iterkit.Slice([]int{1, 2})), 5)

	vs := iterkit.Collect(itr)
	_ = vs // []int{1, 2, 1, 2, 1}
}

func TestCycle(t *testing.T) {
	s := testcase.NewSpec(t)

	s.Test("it restarts once exhausted", func(t *testcase.T) {
		itr := iterkit.Take(iterkit.Cycle(iterkit.Slice([]int{1, 2})), 5)
		assert.Equal(t, []int{1, 2, 1, 2, 1}, iterkit.Collect(itr))
	})

	s.Test("an empty iterator cycles to nothing", func(t *testcase.T) {
		itr := iterkit.Cycle(iterkit.Empty[int]())
		_, ok := itr.Next()
		assert.False(t, ok)
		assert.Equal(t, iterkit.Exact(0), itr.SizeHint())
	})

	s.Test("size hint", func(t *testcase.T) {
		assert.False(t, iterkit.Cycle(iterkit.Once(1)).SizeHint().Bounded)
		assert.Equal(t, iterkit.AtLeast(0), iterkit.Cycle(iterkit.Filter(iterkit.Range(0, 3), func(int) bool { return true })).SizeHint())
	})

	s.Test("it needs a cloneable iterator", func(t *testcase.T) {
		gen := iterkit.Generate(func(yield func(int) bool) { yield(1) })
		defer gen.Close()
		assert.ErrorIs(t, iterkit.ErrNotCloneable, panicError(t, func() { iterkit.Cycle[int](gen) }))
	})
}

func TestFuse(t *testing.T) {
	s := testcase.NewSpec(t)

	s.Test("it is not pulled again after exhaustion", func(t *testcase.T) {
		var calls int
		flaky := iterkit.FromPull(func() (int, bool) {
			calls++
			return calls, true
		})
		itr := iterkit.Fuse(iterkit.TakeWhile(flaky, func(v int) bool { return v < 3 }))
		assert.Equal(t, []int{1, 2}, iterkit.Collect(itr))
		_, ok := itr.Next()
		assert.False(t, ok)
		assert.Equal(t, 3, calls)
	})
}

func TestRev(t *testing.T) {
	s := testcase.NewSpec(t)

	s.Test("it panics at construction without a back end", func(t *testcase.T) {
		itr := iterkit.FromPull(func() (int, bool) { return 0, false })
		assert.ErrorIs(t, iterkit.ErrNotDoubleEnded, panicError(t, func() { iterkit.Rev(itr) }))
	})

	s.Test("calling a capability an adaptor lacks panics", func(t *testcase.T) {
		itr := iterkit.Map[int](iterkit.FromPull(func() (int, bool) { return 0, false }), func(v int) int { return v })
		de, ok := itr.(iterkit.DoubleEndedIterator[int])
		assert.True(t, ok)
		assert.False(t, iterkit.IsDoubleEnded(itr))
		assert.ErrorIs(t, iterkit.ErrNotDoubleEnded, panicError(t, func() { de.NextBack() }))
	})

	s.Test("reversing twice is a no-op", func(t *testcase.T) {
		assert.Equal(t, []int{0, 1, 2}, iterkit.Collect(iterkit.Rev(iterkit.Rev(iterkit.Range(0, 3)))))
	})
}

func ExampleByRef() {
	itr := iterkit.Range(0, 5)

	head := iterkit.Collect(iterkit.Take(iterkit.ByRef(itr), 2))
	rest := iterkit.Collect(itr)
	_, _ = head, rest // []int{0, 1}, []int{2, 3, 4}
}

func TestByRef(t *testing.T) {
	s := testcase.NewSpec(t)

	s.Test("the referenced iterator can be used after the adaptor", func(t *testcase.T) {
		itr := iterkit.Range(0, 5)
		assert.Equal(t, []int{0, 1}, iterkit.Collect(iterkit.Take(iterkit.ByRef(itr), 2)))
		assert.Equal(t, []int{2, 3, 4}, iterkit.Collect(itr))
	})

	s.Test("it can not be cloned", func(t *testcase.T) {
		assert.False(t, iterkit.IsCloneable(iterkit.ByRef(iterkit.Range(0, 5))))
		assert.True(t, iterkit.IsDoubleEnded(iterkit.ByRef(iterkit.Range(0, 5))))
	})
}

func TestPeekable(t *testing.T) {
	s := testcase.NewSpec(t)

	s.Test("peek does not consume", func(t *testcase.T) {
		itr := iterkit.Peekable(iterkit.Slice([]int{1, 2, 3}))
		v, ok := itr.Peek()
		assert.True(t, ok)
		assert.Equal(t, 1, v)
		assert.Equal(t, iterkit.Exact(3), itr.SizeHint())
		assert.Equal(t, []int{1, 2, 3}, iterkit.Collect(itr))
	})

	s.Test("next if", func(t *testcase.T) {
		itr := iterkit.Peekable(iterkit.Slice([]int{1, 2, 3}))
		isOdd := func(v int) bool { return v%2 == 1 }
		v, ok := itr.NextIf(isOdd)
		assert.True(t, ok)
		assert.Equal(t, 1, v)
		_, ok = itr.NextIf(isOdd)
		assert.False(t, ok)
		assert.Equal(t, []int{2, 3}, iterkit.Collect(itr))
	})

	s.Test("the back end reaches the peeked item last", func(t *testcase.T) {
		itr := iterkit.Peekable(iterkit.Slice([]int{1, 2}))
		itr.Peek()
		v, _ := itr.NextBack()
		assert.Equal(t, 2, v)
		v, _ = itr.NextBack()
		assert.Equal(t, 1, v)
		_, ok := itr.Next()
		assert.False(t, ok)
	})
}
