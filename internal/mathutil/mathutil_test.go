package mathutil

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPow10(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		pow int64
		res float64
	}{
		{0, 1},
		{1, 10},
		{15, 1e15},
		{22, 1e22},
		{23, 1e23},
		{308, 1e308},
		{-1, 0.1},
		{-22, 1e-22},
		{-308, 1e-308},
		{309, math.Inf(1)},
		{10000, math.Inf(1)},
		{-324, 0},
		{-10000, 0},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			res := Pow10(test.pow)
			if math.IsInf(test.res, 0) || test.res == 0 {
				a.Equal(test.res, res)
			} else if test.pow >= -22 && test.pow <= 22 {
				// this range is exactly representable
				a.Equal(test.res, res)
			} else {
				a.InEpsilon(test.res, res, 1e-15)
			}
		})
	}
	// the deepest power before the flush to zero is still positive
	a.True(Pow10(MinFloatExponent+1) > 0)
	a.Zero(Pow10(MinFloatExponent))
}

func TestFloorLog10(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		f float64
		e int64
	}{
		{1, 0},
		{9.99, 0},
		{10, 1},
		{12345, 4},
		{0.5, -1},
		{0.01, -2},
		{1.5e100, 100},
		{2e-100, -100},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			a.Equal(test.e, FloorLog10(test.f))
		})
	}
}

func TestAbsInt64(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		val, res int64
	}{
		{0, 0},
		{1, 1},
		{-1, 1},
		{12345, 12345},
		{-12345, 12345},
		{math.MaxInt64, math.MaxInt64},
		{math.MinInt64 + 1, math.MaxInt64},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			a.Equal(test.res, AbsInt64(test.val))
		})
	}
}

func TestAddInt64(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		x, y, res int64
	}{
		{0, 0, 0},
		{1, 2, 3},
		{-1, -2, -3},
		{math.MaxInt64, 0, math.MaxInt64},
		{math.MaxInt64, math.MinInt64, -1},
		{math.MaxInt64, 1, math.MaxInt64},
		{math.MaxInt64, math.MaxInt64, math.MaxInt64},
		{math.MinInt64, -1, math.MinInt64},
		{math.MinInt64, math.MinInt64, math.MinInt64},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			a.Equal(test.res, AddInt64(test.x, test.y))
			a.Equal(test.res, AddInt64(test.y, test.x))
		})
	}
}

func TestSubInt64(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		x, y, res int64
	}{
		{0, 0, 0},
		{3, 2, 1},
		{2, 3, -1},
		{math.MinInt64, math.MinInt64, 0},
		{math.MaxInt64, -1, math.MaxInt64},
		{0, math.MinInt64, math.MaxInt64},
		{math.MinInt64, 1, math.MinInt64},
		{-2, math.MaxInt64, math.MinInt64},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			a.Equal(test.res, SubInt64(test.x, test.y))
		})
	}
}

func TestFloatSign(t *testing.T) {
	a := assert.New(t)
	a.Equal(0, FloatSign(0))
	a.Equal(0, FloatSign(math.Copysign(0, -1)))
	a.Equal(1, FloatSign(0.5))
	a.Equal(1, FloatSign(math.Inf(1)))
	a.Equal(-1, FloatSign(-0.5))
	a.Equal(-1, FloatSign(math.Inf(-1)))
	a.Equal(0, FloatSign(math.NaN()))
}

func BenchmarkPow10Table(b *testing.B) {
	var dummy float64
	for i := 0; i < b.N; i++ {
		dummy += Pow10(int64(i % 22))
	}
	// this metric is just to prevent unwanted optimisations in calculations of `dummy.`
	b.ReportMetric(dummy, "dummy_metric")
}

func BenchmarkPow10Math(b *testing.B) {
	var dummy float64
	for i := 0; i < b.N; i++ {
		dummy += math.Pow10(i % 22)
	}
	// this metric is just to prevent unwanted optimisations in calculations of `dummy.`
	b.ReportMetric(dummy, "dummy_metric")
}
