package mathutil

import (
	"math"
	"unsafe"
)

var (
	decimalFactorTable = [...]float64{ // up to 1e22, the largest exact power of ten
		1, 1e1, 1e2, 1e3, 1e4,
		1e5, 1e6, 1e7, 1e8, 1e9, 1e10,
		1e11, 1e12, 1e13, 1e14,
		1e15, 1e16, 1e17, 1e18, 1e19,
		1e20, 1e21, 1e22,
	}
)

const (
	// MaxFloatExponent is the largest decimal exponent of a finite float64.
	MaxFloatExponent = 308
	// MinFloatExponent is the decimal exponent of the smallest denormal float64.
	MinFloatExponent = -324
)

// Pow10 returns 10^pow as a float64.
// The result saturates to +Inf above the float64 range and to 0 below it.
func Pow10(pow int64) float64 {
	if pow >= 0 && pow < int64(len(decimalFactorTable)) {
		return decimalFactorTable[pow]
	}
	switch {
	case pow > MaxFloatExponent:
		return math.Inf(1)
	case pow < MinFloatExponent+1: // math.Pow10 flushes to zero below -323
		return 0
	}
	return math.Pow10(int(pow))
}

// FloorLog10 returns the largest e such that 10^e <= f.
// f must be positive and finite.
// The result can be off by one near exact powers of ten,
// callers are expected to correct for that.
func FloorLog10(f float64) int64 {
	return int64(math.Floor(math.Log10(f)))
}

// AbsInt64 returns the absolute value of val.
func AbsInt64(val int64) int64 {
	mask := val >> (unsafe.Sizeof(int64(0))*8 - 1)
	return (val + mask) ^ mask
}

// AddInt64 returns a + b, saturating to the int64 range on overflow.
func AddInt64(a, b int64) int64 {
	sum := a + b
	if (a > 0 && b > 0 && sum < 0) || (a < 0 && b < 0 && sum >= 0) {
		if a > 0 {
			return math.MaxInt64
		}
		return math.MinInt64
	}
	return sum
}

// SubInt64 returns a - b, saturating to the int64 range on overflow.
func SubInt64(a, b int64) int64 {
	diff := a - b
	if (a >= 0 && b < 0 && diff < 0) || (a < 0 && b > 0 && diff >= 0) {
		if a >= 0 {
			return math.MaxInt64
		}
		return math.MinInt64
	}
	return diff
}

// FloatSign returns 1 for positive values, -1 for negative ones, and 0 otherwise.
func FloatSign(f float64) int {
	switch {
	case f > 0:
		return 1
	case f < 0:
		return -1
	default:
		return 0
	}
}
