// Copyright 2021 Aleksandr Demakin. All rights reserved.

// Package bignum implements an approximate decimal floating-point number,
// where the mantissa is a float64 and the exponent is an int64.
// Can be used to represent quantities far outside the native float64 range,
// such as resource counters in incremental games, trading precision
// for unbounded magnitude.
package bignum

import (
	"encoding/json"
	"fmt"
	"math"
	"strings"

	"github.com/avdva/bignum/internal/mathutil"

	"github.com/zeebo/errs"
)

var (
	// ErrInvalidInput is returned when a value cannot be built from the input.
	ErrInvalidInput = errs.Class("invalid input")
	// ErrDivisionByZero is returned on division by a zero value.
	ErrDivisionByZero = errs.Class("division by zero")
	// ErrConversionOverflow is returned when a value is too large for the target type.
	ErrConversionOverflow = errs.Class("conversion overflow")
	// ErrConversionUnderflow is returned when a value is too small for the target type.
	ErrConversionUnderflow = errs.Class("conversion underflow")
)

const (
	// mantissaEpsilon absorbs float rounding when deciding
	// whether a mantissa needs another digit shift.
	mantissaEpsilon = 1e-12
	// mantissaFloor is the magnitude below which a mantissa collapses to zero.
	mantissaFloor = 1e-18
)

var (
	// Zero is the canonical zero value.
	Zero Value
	// One is the value 1.
	One = Value{mant: 1}
)

type (
	mantType = float64
	expType  = int64
)

// Value is an approximate decimal floating-point number equal to mant * 10^exp.
// A normalized nonzero value keeps the mantissa within [1, 10),
// up to a small tolerance at the bounds, zero is always {0, 0}.
// Values are immutable: all operations return new normalized values.
// The zero Value is valid and equals Zero.
type Value struct {
	mant mantType
	exp  expType
}

func split(v Value) (mantissa mantType, exponent expType) {
	return v.mant, v.exp
}

// New returns a normalized value equal to mant * 10^exp.
// Mantissas with magnitude below 1e-18 collapse to Zero,
// NaNs and infinities are not representable and also map to Zero,
// see FromFloat64 for a constructor that reports them.
func New(mant float64, exp int64) Value {
	return normalize(mant, exp)
}

// FromFloat64 returns a value for the given float64.
// Returns an error for infinities and not-a-numbers.
func FromFloat64(f float64) (Value, error) {
	if math.IsInf(f, 0) || math.IsNaN(f) {
		return Zero, ErrInvalidInput.New("not a finite number: %v", f)
	}
	if f == 0 {
		return Zero, nil
	}
	// scale into the canonical range first, so that the mantissa floor
	// in normalize cannot swallow small, but representable floats.
	e := mathutil.FloorLog10(math.Abs(f))
	if e < mathutil.MinFloatExponent+1 { // Pow10 flushes to zero below that
		e = mathutil.MinFloatExponent + 1
	}
	return normalize(f/mathutil.Pow10(e), e), nil
}

// MustFromFloat64 is like FromFloat64, but panics on invalid input.
func MustFromFloat64(f float64) Value {
	v, err := FromFloat64(f)
	if err != nil {
		panic(err)
	}
	return v
}

// normalize brings the mantissa into the canonical range.
// The epsilon at the decision bounds treats a mantissa within 1e-12 of a
// range edge as already over it, so values like 9.999999999999996 shift a
// digit instead of oscillating at the boundary, and a resulting mantissa
// may land slightly outside [1, 10).
func normalize(m mantType, e expType) Value {
	if math.IsNaN(m) || math.IsInf(m, 0) {
		return Zero
	}
	am := math.Abs(m)
	if am < mantissaFloor {
		return Zero
	}
	if am >= 100 || am < 0.1 {
		// more than one digit off, jump most of the way on a log estimate
		shift := mathutil.FloorLog10(am)
		m /= mathutil.Pow10(shift)
		e += shift
	}
	for math.Abs(m) >= 10-mantissaEpsilon {
		m /= 10
		e++
	}
	for math.Abs(m) < 1-mantissaEpsilon {
		m *= 10
		e--
	}
	if math.Abs(m) < mantissaFloor {
		return Zero
	}
	return Value{mant: m, exp: e}
}

// IsZero returns true if the value is zero.
func (v Value) IsZero() bool {
	return v.mant == 0
}

// Sign returns -1 for negative values, 1 for positive ones, and 0 for zero.
func (v Value) Sign() int {
	return mathutil.FloatSign(v.mant)
}

// Mantissa returns the normalized mantissa.
func (v Value) Mantissa() float64 {
	return v.mant
}

// Exponent returns the decimal exponent.
func (v Value) Exponent() int64 {
	return v.exp
}

// ExponentGapAtLeast returns true if v's exponent exceeds other's by at least gap.
// For normalized nonzero values a gap of k means v's magnitude
// is at least 10^(k-1) times larger.
func (v Value) ExponentGapAtLeast(other Value, gap int64) bool {
	return v.exp-other.exp >= gap
}

// Float64 converts the value to a float64.
// If the value does not fit the native range, the result saturates to ±Inf or 0,
// and an ErrConversionOverflow or ErrConversionUnderflow error reports
// which bound was crossed.
func (v Value) Float64() (float64, error) {
	if v.IsZero() {
		return 0, nil
	}
	if v.exp > mathutil.MaxFloatExponent {
		return math.Inf(v.Sign()), ErrConversionOverflow.New("exponent %d does not fit float64", v.exp)
	}
	if v.exp < mathutil.MinFloatExponent {
		return 0, ErrConversionUnderflow.New("exponent %d does not fit float64", v.exp)
	}
	f := v.mant * mathutil.Pow10(v.exp)
	if f == 0 { // the deepest denormals need two-step scaling
		f = v.mant * mathutil.Pow10(v.exp+30) * mathutil.Pow10(-30)
	}
	switch {
	case math.IsInf(f, 0):
		return f, ErrConversionOverflow.New("%s does not fit float64", v.String())
	case f == 0:
		return 0, ErrConversionUnderflow.New("%s does not fit float64", v.String())
	}
	return f, nil
}

// InexactFloat64 converts the value to the nearest float64,
// saturating to ±Inf for too large values, and to 0 for too small ones.
func (v Value) InexactFloat64() float64 {
	f, _ := v.Float64()
	return f
}

// String returns a debug representation in the form {mantissa}e{exponent}.
// Use Format or Compact for display strings.
func (v Value) String() string {
	var builder strings.Builder
	writeMantExp(&builder, v.mant, v.exp)
	return builder.String()
}

// GoString returns a Go-syntax representation of the value.
func (v Value) GoString() string {
	return fmt.Sprintf("bignum.New(%v, %v)", v.mant, v.exp)
}

// MarshalJSON marshals the value as a string in the form {mantissa}e{exponent}.
// This form survives exponents beyond the float64 range.
func (v Value) MarshalJSON() ([]byte, error) {
	var builder strings.Builder
	builder.WriteByte('"')
	writeMantExp(&builder, v.mant, v.exp)
	builder.WriteByte('"')
	return []byte(builder.String()), nil
}

// UnmarshalJSON unmarshals a string, a number, or a {"m":,"e":} object into a value.
func (v *Value) UnmarshalJSON(data []byte) error {
	if len(data) == 0 {
		return ErrInvalidInput.New("empty json")
	}
	switch data[0] {
	case '{':
		d := struct {
			M mantType
			E expType
		}{}
		if err := json.Unmarshal(data, &d); err != nil {
			return ErrInvalidInput.Wrap(err)
		}
		*v = New(d.M, d.E)
	default:
		value, err := FromString(string(data))
		if err != nil {
			return err
		}
		*v = value
	}
	return nil
}
