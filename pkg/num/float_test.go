package num_test

import (
	"math"
	"slices"
	"testing"

	"go.llib.dev/subspace/pkg/compare"
	"go.llib.dev/subspace/pkg/floatkit"
	"go.llib.dev/subspace/pkg/num"
	"go.llib.dev/testcase"
	"go.llib.dev/testcase/assert"
)

func TestFloat_ordering(t *testing.T) {
	var (
		nan     = num.NaN[float64]()
		negZero = num.FloatOf(math.Copysign(0, -1))
		zero    = num.FloatOf(0.0)
	)

	t.Run("partial order treats NaN as unordered", func(t *testing.T) {
		assert.Equal(t, compare.Unordered, nan.PartialCmp(zero))
		assert.Equal(t, compare.Unordered, nan.PartialCmp(nan))
		assert.Equal(t, compare.Equal.Partial(), negZero.PartialCmp(zero))
		assert.False(t, nan.Eq(nan))
		assert.True(t, negZero.Eq(zero))
	})

	t.Run("total order ranks every value", func(t *testing.T) {
		assert.Equal(t, compare.Equal, nan.TotalCmp(nan))
		assert.Equal(t, compare.Less, negZero.TotalCmp(zero))
		assert.Equal(t, compare.Greater, nan.TotalCmp(num.Inf[float64](1)))
		assert.Equal(t, compare.Less, nan.Neg().TotalCmp(num.Inf[float64](-1)))
	})

	t.Run("total order sorts consistently", func(t *testing.T) {
		vs := []num.F32{
			num.FloatOf[float32](1), num.NaN[float32](), num.Inf[float32](-1),
			num.FloatOf[float32](-0.0).Neg(), num.FloatOf[float32](0), num.MinPositive[float32](),
		}
		slices.SortFunc(vs, func(a, b num.F32) int { return int(a.TotalCmp(b)) })
		assert.True(t, vs[0].IsInfinite())
		assert.True(t, vs[1].IsSignNegative() && vs[1].Classify() == floatkit.Zero)
		assert.True(t, vs[2].IsSignPositive() && vs[2].Classify() == floatkit.Zero)
		assert.True(t, vs[len(vs)-1].IsNaN())
	})
}

func TestFloat_arithmetic(t *testing.T) {
	s := testcase.NewSpec(t)

	s.Test("follows IEEE-754", func(t *testcase.T) {
		a := num.FloatOf(t.Random.Float64() * 1000)
		b := num.FloatOf(t.Random.Float64()*1000 + 1)
		assert.Equal(t, a.Primitive()+b.Primitive(), a.Add(b).Primitive())
		assert.Equal(t, a.Primitive()-b.Primitive(), a.Sub(b).Primitive())
		assert.Equal(t, a.Primitive()*b.Primitive(), a.Mul(b).Primitive())
		assert.Equal(t, a.Primitive()/b.Primitive(), a.Div(b).Primitive())
		assert.Equal(t, math.Mod(a.Primitive(), b.Primitive()), a.Rem(b).Primitive())
	})

	s.Test("never panics", func(t *testcase.T) {
		assert.True(t, num.FloatOf(1.0).Div(num.FloatOf(0.0)).IsInfinite())
		assert.True(t, num.FloatOf(0.0).Div(num.FloatOf(0.0)).IsNaN())
		assert.True(t, num.MaxFloat[float32]().Mul(num.FloatOf[float32](2)).IsInfinite())
	})

	s.Test("sign handling", func(t *testcase.T) {
		assert.Equal(t, 2.5, num.FloatOf(-2.5).Abs().Primitive())
		assert.False(t, num.NaN[float64]().Neg().Abs().IsSignNegative())
		assert.Equal(t, -3.0, num.FloatOf(3.0).Copysign(num.FloatOf(math.Copysign(0, -1))).Primitive())
		assert.Equal(t, -1.0, num.FloatOf(-42.0).Signum().Primitive())
		assert.Equal(t, 1.0, num.FloatOf(0.0).Signum().Primitive())
		assert.True(t, num.NaN[float64]().Signum().IsNaN())
	})

	s.Test("rounding", func(t *testcase.T) {
		v := num.FloatOf[float32](-2.5)
		assert.Equal(t, -3, v.Floor().Primitive())
		assert.Equal(t, -2, v.Ceil().Primitive())
		assert.Equal(t, -3, v.Round().Primitive())
		assert.Equal(t, -2, v.Trunc().Primitive())
		assert.Equal(t, 3, num.FloatOf(9.0).Sqrt().Primitive())
		assert.Equal(t, 0.125, num.FloatOf(2.0).Powi(-3).Primitive())
		assert.Equal(t, 4, num.FloatOf(16.0).Powf(num.FloatOf(0.5)).Primitive())
	})
}

func TestFloat_minMaxClamp(t *testing.T) {
	nan := num.NaN[float64]()
	one, two := num.FloatOf(1.0), num.FloatOf(2.0)

	assert.Equal(t, one, one.Min(two))
	assert.Equal(t, two, one.Max(two))
	assert.Equal(t, one, nan.Min(one))
	assert.Equal(t, two, two.Max(nan))
	assert.Equal(t, two, num.FloatOf(3.0).Clamp(one, two))
	assert.Equal(t, one, num.FloatOf(-3.0).Clamp(one, two))
	assert.True(t, nan.Clamp(one, two).IsNaN())
	assert.ErrorIs(t, num.ErrInvalidClamp, panicError(t, func() { one.Clamp(two, one) }))
	assert.ErrorIs(t, num.ErrInvalidClamp, panicError(t, func() { one.Clamp(nan, two) }))
}

func TestFloat_classification(t *testing.T) {
	assert.Equal(t, floatkit.Subnormal, num.FloatFromBits[float64](1).Classify())
	assert.True(t, num.FloatFromBits[float32](1).IsSubnormal())
	assert.True(t, num.Epsilon[float32]().IsNormal())
	assert.True(t, num.MaxFloat[float64]().IsFinite())
	assert.False(t, num.Inf[float64](-1).IsFinite())
	assert.Equal(t, 0x7ff0000000000000, num.Inf[float64](1).ToBits())
	assert.Equal(t, "0.1", num.FloatOf[float32](0.1).String())
	assert.Equal(t, "-Inf", num.Inf[float64](-1).String())
	assert.Equal(t, num.FloatOf(1.0), num.F64{}.One())
}
