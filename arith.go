// Copyright 2021 Aleksandr Demakin. All rights reserved.

package bignum

import (
	"math"

	"github.com/avdva/bignum/internal/mathutil"
)

const (
	// ExactRadius bounds the band of exponents, [-ExactRadius, ExactRadius],
	// inside which arithmetic is done directly on float64 values.
	ExactRadius = 12
	// IgnoreGap is the exponent distance starting from which the smaller
	// operand of a sum no longer affects the result.
	IgnoreGap = 15
)

func inExactBand(v Value) bool {
	return v.exp >= -ExactRadius && v.exp <= ExactRadius
}

// Add returns v + other.
// If both operands fit the native float band, the sum is a float64 sum.
// Otherwise mantissas are combined at the larger exponent, and an operand
// more than IgnoreGap orders of magnitude smaller is dropped entirely.
func (v Value) Add(other Value) Value {
	m1, e1 := split(v)
	m2, e2 := split(other)
	// first, check for obvious cases, when one of the arguments is zero
	if m1 == 0 {
		if m2 == 0 {
			return Zero
		}
		return other
	}
	if m2 == 0 {
		return v
	}
	if inExactBand(v) && inExactBand(other) {
		r, _ := FromFloat64(v.InexactFloat64() + other.InexactFloat64())
		return r
	}
	// prepare the numbers so, that e1 >= e2
	if e1 < e2 {
		m1, e1, m2, e2 = m2, e2, m1, e1
	}
	gap := e1 - e2
	switch {
	case gap == 0:
		return normalize(m1+m2, e1)
	case gap > IgnoreGap || gap < 0: // a negative gap is an int64 overflow
		return Value{mant: m1, exp: e1}
	}
	return normalize(m1+m2/mathutil.Pow10(gap), e1)
}

// Sub returns v - other.
func (v Value) Sub(other Value) Value {
	return v.Add(other.Neg())
}

// Mul returns v * other.
func (v Value) Mul(other Value) Value {
	if v.IsZero() || other.IsZero() {
		return Zero
	}
	if inExactBand(v) && inExactBand(other) {
		r, _ := FromFloat64(v.InexactFloat64() * other.InexactFloat64())
		return r
	}
	// the exponent saturates instead of wrapping on adversarial operands
	return normalize(v.mant*other.mant, mathutil.AddInt64(v.exp, other.exp))
}

// Div returns v / other.
// Returns ErrDivisionByZero if other is zero, a zero dividend is fine
// and yields Zero.
func (v Value) Div(other Value) (Value, error) {
	if other.IsZero() {
		return Zero, ErrDivisionByZero.New("%s / 0", v.String())
	}
	if v.IsZero() {
		return Zero, nil
	}
	if inExactBand(v) && inExactBand(other) {
		r, _ := FromFloat64(v.InexactFloat64() / other.InexactFloat64())
		return r, nil
	}
	return normalize(v.mant/other.mant, mathutil.SubInt64(v.exp, other.exp)), nil
}

// MustDiv is like Div, but panics if other is zero.
func (v Value) MustDiv(other Value) Value {
	result, err := v.Div(other)
	if err != nil {
		panic(err)
	}
	return result
}

// Abs returns the absolute value of v.
func (v Value) Abs() Value {
	return Value{mant: math.Abs(v.mant), exp: v.exp}
}

// Neg returns -v. The negation of Zero is Zero,
// a negative zero mantissa is not representable.
func (v Value) Neg() Value {
	if v.IsZero() {
		return Zero
	}
	return Value{mant: -v.mant, exp: v.exp}
}
