// Package parse converts the textual command-line forms of raster sizes and
// complex-plane points ("1000x750", "-1.20,0.35") into numbers.
package parse

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrSyntax is returned when a pair is malformed.
var ErrSyntax = errors.New("parse: invalid pair")

// Number is the set of element types Pair can parse.
type Number interface {
	int | float64
}

// Pair parses s as two values separated by sep, e.g. "400x600" with 'x' or
// "1.0,0.5" with ','. Both halves must parse completely; surrounding text or
// an empty half is an error.
func Pair[T Number](s string, sep rune) (T, T, error) {
	var zero T

	idx := strings.IndexRune(s, sep)
	if idx < 0 {
		return zero, zero, fmt.Errorf("%w: %q has no %q separator", ErrSyntax, s, sep)
	}

	l, err := value[T](s[:idx])
	if err != nil {
		return zero, zero, fmt.Errorf("%w: %q: %w", ErrSyntax, s, err)
	}
	r, err := value[T](s[idx+len(string(sep)):])
	if err != nil {
		return zero, zero, fmt.Errorf("%w: %q: %w", ErrSyntax, s, err)
	}
	return l, r, nil
}

// Complex parses "re,im".
func Complex(s string) (re, im float64, err error) {
	return Pair[float64](s, ',')
}

func value[T Number](s string) (T, error) {
	var v T
	switch p := any(&v).(type) {
	case *int:
		n, err := strconv.Atoi(s)
		if err != nil {
			return v, err
		}
		*p = n
	case *float64:
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return v, err
		}
		*p = f
	}
	return v, nil
}
