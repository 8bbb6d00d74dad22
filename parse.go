package minifmt

import (
	"cmp"
	"fmt"
	"math"
	"slices"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Parser reads a value from the front of s and returns it together with
// the unconsumed remainder. Leading whitespace is skipped. Parsers fail
// with [ErrParse] when s does not start with a value.
type Parser[T any] func(s string) (value T, rest string, err error)

// ParseInt reads a base-10 integer: an optional sign followed by digits.
// Prefixes such as "0x" are not recognized, so "0x1F" reads as 0 with "x1F"
// left over.
func ParseInt(s string) (int, string, error) {
	s = strings.TrimLeftFunc(s, unicode.IsSpace)
	n := scanSign(s, 0)
	end := scanDigits(s, n)
	if end == n {
		return 0, s, fmt.Errorf("%w: %q is not an integer", ErrParse, s)
	}
	v, err := strconv.Atoi(s[:end])
	if err != nil {
		return 0, s, fmt.Errorf("%w: %v", ErrParse, err)
	}
	return v, s[end:], nil
}

// ParseFloat reads a decimal number: an optional sign, digits with an
// optional fraction, and an optional exponent. Hexadecimal, "inf" and
// "nan" forms are not recognized.
func ParseFloat(s string) (float64, string, error) {
	s = strings.TrimLeftFunc(s, unicode.IsSpace)
	n := scanSign(s, 0)
	end := scanDigits(s, n)
	digits := end > n
	if end < len(s) && s[end] == '.' {
		frac := scanDigits(s, end+1)
		if frac > end+1 || digits {
			digits = true
			end = frac
		}
	}
	if !digits {
		return 0, s, fmt.Errorf("%w: %q is not a number", ErrParse, s)
	}
	if end < len(s) && (s[end] == 'e' || s[end] == 'E') {
		exp := scanSign(s, end+1)
		if e := scanDigits(s, exp); e > exp {
			end = e
		}
	}
	v, err := strconv.ParseFloat(s[:end], 64)
	if err != nil {
		return 0, s, fmt.Errorf("%w: %v", ErrParse, err)
	}
	return v, s[end:], nil
}

// ParseWord reads the first whitespace-delimited word.
func ParseWord(s string) (string, string, error) {
	s = strings.TrimLeftFunc(s, unicode.IsSpace)
	if s == "" {
		return "", s, fmt.Errorf("%w: empty input", ErrParse)
	}
	end := strings.IndexFunc(s, unicode.IsSpace)
	if end < 0 {
		end = len(s)
	}
	return s[:end], s[end:], nil
}

// ParseChar reads the first non-whitespace character.
func ParseChar(s string) (rune, string, error) {
	s = strings.TrimLeftFunc(s, unicode.IsSpace)
	if s == "" {
		return 0, s, fmt.Errorf("%w: empty input", ErrParse)
	}
	r, size := utf8.DecodeRuneInString(s)
	return r, s[size:], nil
}

func scanSign(s string, i int) int {
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		return i + 1
	}
	return i
}

func scanDigits(s string, i int) int {
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
	}
	return i
}

// Trim removes leading and trailing whitespace.
func Trim(s string) string { return strings.TrimSpace(s) }

// StripDecorations trims s and drops any leading currency and percent
// signs, so "$ 100" and "%5" parse as numbers. A line made only of
// decorations becomes empty and fails to parse.
func StripDecorations(s string) string {
	return strings.TrimLeft(Trim(s), "$%")
}

// IsPositiveReal reports whether v is a finite, normal number above zero.
func IsPositiveReal(v float64) bool {
	return v >= 0x1p-1022 && !math.IsInf(v, 1)
}

// InRange returns a predicate accepting values in [lo, hi].
func InRange[T cmp.Ordered](lo, hi T) func(T) bool {
	return func(v T) bool { return v >= lo && v <= hi }
}

// OneOf returns a predicate accepting only the listed values.
func OneOf[T comparable](values ...T) func(T) bool {
	return func(v T) bool { return slices.Contains(values, v) }
}
