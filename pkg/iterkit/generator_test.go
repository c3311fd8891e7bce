package iterkit_test

import (
	"testing"

	"go.llib.dev/subspace/pkg/iterkit"
	"go.llib.dev/testcase"
	"go.llib.dev/testcase/assert"
)

func ExampleGenerate() {
	gen := iterkit.Generate(func(yield func(int) bool) {
		for i := 0; ; i++ {
			if !yield(i * i) {
				return
			}
		}
	})
	defer gen.Close()

	squares := iterkit.Collect(iterkit.Take[int](gen, 4))
	_ = squares // []int{0, 1, 4, 9}
}

func TestGenerator(t *testing.T) {
	s := testcase.NewSpec(t)

	s.Test("one item is materialised per pull", func(t *testcase.T) {
		var produced int
		gen := iterkit.Generate(func(yield func(int) bool) {
			for i := 0; i < 10; i++ {
				produced++
				if !yield(i) {
					return
				}
			}
		})
		defer gen.Close()

		v, ok := gen.Next()
		assert.True(t, ok)
		assert.Equal(t, 0, v)
		assert.Equal(t, 1, produced)

		gen.Next()
		gen.Next()
		assert.Equal(t, 3, produced)
	})

	s.Test("it stays exhausted once the function returned", func(t *testcase.T) {
		gen := iterkit.Generate(func(yield func(string) bool) {
			yield("a")
			yield("b")
		})
		assert.Equal(t, []string{"a", "b"}, iterkit.Collect[string](gen))
		_, ok := gen.Next()
		assert.False(t, ok)
		assert.Equal(t, iterkit.Exact(0), gen.SizeHint())
		assert.NoError(t, gen.Close())
	})

	s.Test("close stops the function early", func(t *testcase.T) {
		var stopped bool
		gen := iterkit.Generate(func(yield func(int) bool) {
			for i := 0; yield(i); i++ {
			}
			stopped = true
		})
		gen.Next()
		assert.False(t, stopped)
		assert.NoError(t, gen.Close())
		assert.True(t, stopped)
		assert.NoError(t, gen.Close())

		_, ok := gen.Next()
		assert.False(t, ok)
	})

	s.Test("from a range-over-func sequence", func(t *testcase.T) {
		gen := iterkit.FromSeq(iterkit.ToSeq(iterkit.Range(0, 3)))
		assert.Equal(t, []int{0, 1, 2}, iterkit.Collect[int](gen))
	})

	s.Test("it can be adapted like any iterator", func(t *testcase.T) {
		gen := iterkit.Generate(func(yield func(int) bool) {
			for i := 1; i <= 10 && yield(i); i++ {
			}
		})
		evens := iterkit.Filter[int](gen, func(v int) bool { return v%2 == 0 })
		assert.Equal(t, 30, iterkit.Sum(evens))
	})
}
