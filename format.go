package bignum

import (
	"strconv"
	"strings"

	"github.com/avdva/bignum/internal/mathutil"
)

// suffixes maps an exponent tier (exponent / 3) to its short-scale
// name, from thousand up to decillion.
var suffixes = [...]string{"", "K", "M", "B", "T", "Qa", "Qi", "Sx", "Sp", "Oc", "No", "Dc"}

// Format renders the value for display with the given number of decimal places.
// Zero is "0". Values with exponents in (-3, 3) are plain decimals, like "123.00".
// Larger values are scaled down to a short-scale suffix: 1234 becomes "1.23K".
// Outside the suffix table the value is rendered as {mantissa}e{exponent}.
func Format(v Value, decimalPlaces int) string {
	return format(v, decimalPlaces, false)
}

// Compact is like Format with two decimal places, but trailing
// fractional zeros are dropped: "1.5K" instead of "1.50K".
func Compact(v Value) string {
	return format(v, 2, true)
}

func format(v Value, places int, trim bool) string {
	if v.IsZero() {
		return "0"
	}
	if places < 0 {
		places = 0
	}
	var b strings.Builder
	switch tier := v.exp / 3; {
	case v.exp > -3 && v.exp < 3:
		writeFixed(&b, v.mant*mathutil.Pow10(v.exp), places, trim)
	case tier > 0 && tier < int64(len(suffixes)):
		writeFixed(&b, v.mant*mathutil.Pow10(v.exp-tier*3), places, trim)
		b.WriteString(suffixes[tier])
	default:
		writeFixed(&b, v.mant, places, trim)
		b.WriteByte('e')
		b.WriteString(strconv.FormatInt(v.exp, 10))
	}
	return b.String()
}

func writeFixed(b *strings.Builder, f float64, places int, trim bool) {
	s := strconv.FormatFloat(f, 'f', places, 64)
	if trim && strings.ContainsRune(s, delim) {
		s = strings.TrimRight(s, "0")
		s = strings.TrimSuffix(s, string(delim))
	}
	b.WriteString(s)
}
