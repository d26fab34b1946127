package bignum

import (
	"math"

	"github.com/avdva/bignum/internal/mathutil"
)

// equalityEpsilon bounds the mantissa difference of equal-exponent
// values still considered equal by Eq.
const equalityEpsilon = 1e-15

// Cmp compares two values.
// Returns -1 if v < other, 0 if v == other, 1 if v > other.
// The order is exact, see Eq for the tolerant equality check.
func (v Value) Cmp(other Value) int {
	m1, e1 := split(v)
	m2, e2 := split(other)
	s1, s2 := mathutil.FloatSign(m1), mathutil.FloatSign(m2)
	if s1 != s2 { // also covers zero against anything nonzero
		if s1 < s2 {
			return -1
		}
		return 1
	}
	if s1 == 0 {
		return 0
	}
	if e1 != e2 {
		// for positive values the larger exponent wins, for negative ones it loses
		if e1 > e2 {
			return s1
		}
		return -s1
	}
	return floatCmp(m1, m2)
}

// Eq returns true if both values represent approximately the same number:
// the exponents are equal and the mantissas differ by at most 1e-15.
// The tolerance makes Eq non-transitive: a.Eq(b) and b.Eq(c)
// do not imply a.Eq(c).
func (v Value) Eq(other Value) bool {
	if v == other {
		return true
	}
	return v.exp == other.exp && math.Abs(v.mant-other.mant) <= equalityEpsilon
}

// Ne returns true if the values differ by more than the Eq tolerance.
func (v Value) Ne(other Value) bool {
	return !v.Eq(other)
}

// Lt returns true if v < other.
func (v Value) Lt(other Value) bool {
	return v.Cmp(other) < 0
}

// Lte returns true if v <= other.
func (v Value) Lte(other Value) bool {
	return v.Cmp(other) <= 0
}

// Gt returns true if v > other.
func (v Value) Gt(other Value) bool {
	return v.Cmp(other) > 0
}

// Gte returns true if v >= other.
func (v Value) Gte(other Value) bool {
	return v.Cmp(other) >= 0
}

// Min returns the smaller of a and b.
func Min(a, b Value) Value {
	if a.Cmp(b) <= 0 {
		return a
	}
	return b
}

// Max returns the larger of a and b.
func Max(a, b Value) Value {
	if a.Cmp(b) >= 0 {
		return a
	}
	return b
}

func floatCmp(a, b float64) int {
	switch {
	case a > b:
		return 1
	case a < b:
		return -1
	default:
		return 0
	}
}
