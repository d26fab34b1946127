package bignum

import (
	"math"
	"strconv"

	"github.com/shopspring/decimal"
)

// Decimal converts the value into a decimal.Decimal.
// The conversion keeps the full mantissa, so it is exact up to float64
// precision. Exponents outside the decimal's int32 shift range produce
// an ErrConversionOverflow or ErrConversionUnderflow error.
func (v Value) Decimal() (decimal.Decimal, error) {
	if v.IsZero() {
		return decimal.Decimal{}, nil
	}
	if v.exp > math.MaxInt32 {
		return decimal.Decimal{}, ErrConversionOverflow.New("exponent %d does not fit decimal", v.exp)
	}
	// the mantissa digits take some of the int32 exponent range themselves
	if v.exp < math.MinInt32+maxParseDigits {
		return decimal.Decimal{}, ErrConversionUnderflow.New("exponent %d does not fit decimal", v.exp)
	}
	return decimal.NewFromFloat(v.mant).Shift(int32(v.exp)), nil
}

// FromDecimal builds a value from a decimal.Decimal.
// At most 17 significant digits of the coefficient survive,
// the rest only contribute to the exponent.
func FromDecimal(d decimal.Decimal) Value {
	digits := d.Coefficient().String()
	var neg bool
	if digits[0] == '-' {
		neg, digits = true, digits[1:]
	}
	var dropped int
	if len(digits) > maxParseDigits {
		dropped = len(digits) - maxParseDigits
		digits = digits[:maxParseDigits]
	}
	m, err := strconv.ParseFloat(digits, 64)
	if err != nil || m == 0 {
		return Zero
	}
	if neg {
		m = -m
	}
	return New(m, int64(d.Exponent())+int64(dropped))
}
