package bignum

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

const (
	delim = '.'
	// float64 resolves at most 17 decimal digits,
	// extra digits of the input only shift the exponent.
	maxParseDigits = 17
)

type posError struct {
	pos int
	err string
}

func newPosError(err string, pos int) *posError {
	return &posError{err: err, pos: pos}
}

func (pe posError) Error() string {
	return pe.err + fmt.Sprintf(" at pos %d", pe.pos)
}

func addPosErrorOffset(err error, offset int) error {
	var pe *posError
	if !errors.As(err, &pe) { // try to locate error position.
		return err
	}
	pe.pos += offset
	return pe
}

// FromString parses a decimal string into a value.
// Accepted forms are plain decimals ("123.45"), decimals with an explicit
// exponent ("1.23e45", the exponent may be any int64), and decimals carrying
// a display suffix produced by Format ("1.5K", "4.5Qa").
// The input may be quoted, signed, and padded with spaces.
// Returns ErrInvalidInput for malformed strings.
func FromString(s string) (Value, error) {
	s, offset, neg := prepareString(s)
	if len(s) == 0 {
		return Zero, ErrInvalidInput.New("empty input")
	}
	s, suffixExp := trimDisplaySuffix(s)
	if len(s) == 0 {
		return Zero, ErrInvalidInput.New("no digits")
	}
	digits, e, err := doParse(s)
	if err != nil {
		// add what we've trimmed before and add +1 to the offset to start indices from 1.
		return Zero, ErrInvalidInput.Wrap(fmt.Errorf("parsing failed: %w", addPosErrorOffset(err, offset+1)))
	}
	if len(digits) == 0 { // a zero-only string
		return Zero, nil
	}
	if extra := len(digits) - maxParseDigits; extra > 0 {
		digits, e = digits[:maxParseDigits], e+int64(extra)
	}
	m, err := strconv.ParseFloat(digits, 64)
	if err != nil {
		return Zero, ErrInvalidInput.Wrap(err)
	}
	if neg {
		m = -m
	}
	return New(m, e+suffixExp), nil
}

// MustFromString is like FromString, but panics on malformed input.
func MustFromString(s string) Value {
	v, err := FromString(s)
	if err != nil {
		panic(err)
	}
	return v
}

// trimDisplaySuffix cuts a trailing display suffix off s,
// returning the exponent shift it stands for.
func trimDisplaySuffix(s string) (string, int64) {
	for tier := len(suffixes) - 1; tier > 0; tier-- {
		if strings.HasSuffix(s, suffixes[tier]) {
			return s[:len(s)-len(suffixes[tier])], int64(tier) * 3
		}
	}
	return s, 0
}

// doParse parses given decimal string.
// returns a string without leading and trailing zeros, and an exponent.
func doParse(s string) (result string, e int64, err error) {
	result, delimPos, e, err := removeLeadingZeros(s)
	if err != nil {
		return "", 0, err
	}
	result, eFromDelim := removeTrailingZeros(result, delimPos)
	return result, e + eFromDelim, nil
}

// prepareString cleans the string from ",-,+ symbols, and spaces.
func prepareString(s string) (prepared string, offset int, neg bool) {
	if len(s) == 0 {
		return "", 0, false
	}
	if s[0] == '"' {
		s = s[1:]
		offset++
	}
	if len(s) == 0 {
		return "", 0, false
	}
	if s[len(s)-1] == '"' {
		s = s[:len(s)-1]
	}
	if trimmed := strings.TrimLeftFunc(s, unicode.IsSpace); len(trimmed) != len(s) {
		offset += len(s) - len(trimmed)
		s = trimmed
	}
	s = strings.TrimRightFunc(s, unicode.IsSpace)
	if len(s) == 0 {
		return "", 0, false
	}
	if s[0] == '-' {
		neg = true
		offset++
		s = s[1:]
	} else if s[0] == '+' {
		offset++
		s = s[1:]
	}
	return s, offset, neg
}

func removeLeadingZeros(s string) (result string, delimPos int, e int64, err error) {
	var b strings.Builder
	delimPos, firstNonZeroPos := -1, -1
outer:
	for i, r := range s {
		switch {
		case '0' <= r && r <= '9':
			if b.Len() == 0 {
				if r == '0' { // trim leading zeros
					continue
				}
				firstNonZeroPos = i
			}
			b.WriteRune(r)
		case r == 'e':
			parsed, err := strconv.ParseInt(s[i+1:], 10, 64)
			if err != nil {
				return "", 0, 0, newPosError("error parsing exponent: "+err.Error(), i+1)
			}
			e = parsed
			break outer
		case r == delim:
			if delimPos != -1 {
				return "", 0, 0, newPosError("unexpected delimeter", i)
			}
			delimPos = i
		default:
			return "", 0, 0, newPosError(fmt.Sprintf("unexpected symbol %q", r), i)
		}
	}
	if firstNonZeroPos == -1 { // a zero-only string
		return "", 0, 0, nil
	}

	result = b.String()

	// move delimPos to the beginning of the trimmed string
	if delimPos >= 0 {
		if delimPos < firstNonZeroPos {
			firstNonZeroPos--
		}
		delimPos -= firstNonZeroPos
	} else { // if there is no delim, add one at the end of the string 123 --> 123.
		delimPos = len(result)
	}

	return result, delimPos, e, nil
}

func removeTrailingZeros(s string, delimPos int) (result string, e int64) {
	for {
		l := len(s)
		if l == 0 || s[l-1] != '0' {
			break
		}
		s = s[:l-1]
	}
	return s, int64(delimPos - len(s))
}

// writeMantExp writes the fixed {mantissa}e{exponent} debug form.
func writeMantExp(b *strings.Builder, mant float64, exp int64) {
	b.WriteString(strconv.FormatFloat(mant, 'f', -1, 64))
	b.WriteByte('e')
	b.WriteString(strconv.FormatInt(exp, 10))
}
