package misc

import (
	"fmt"
	"math/cmplx"
	"strconv"
	"strings"
)

// ParsePair splits s at the first separator and parses both halves with parse.
// "400x600" with 'x' gives 400 and 600, ",10" gives an error.
func ParsePair[T any](s string, separator byte, parse func(string) (T, error)) (T, T, error) {
	var left, right T

	index := strings.IndexByte(s, separator)
	if index < 0 {
		return left, right, fmt.Errorf("%q has no %q separator", s, separator)
	}

	left, err := parse(s[:index])
	if err != nil {
		return left, right, fmt.Errorf("parsing %q: %w", s, err)
	}
	right, err = parse(s[index+1:])
	if err != nil {
		return left, right, fmt.Errorf("parsing %q: %w", s, err)
	}
	return left, right, nil
}

// ParseDimensions parses image dimensions of the form "WIDTHxHEIGHT". Both must be positive.
func ParseDimensions(s string) (uint, uint, error) {
	width, height, err := ParsePair(s, 'x', parseUint)
	if err != nil {
		return 0, 0, err
	}
	if width == 0 || height == 0 {
		return 0, 0, fmt.Errorf("dimensions %q must both be positive", s)
	}
	return width, height, nil
}

// ParseComplex parses a point of the complex plane written as "re,im".
func ParseComplex(s string) (complex128, error) {
	re, im, err := ParsePair(s, ',', parseFloat)
	if err != nil {
		return 0, err
	}
	point := complex(re, im)
	if cmplx.IsNaN(point) || cmplx.IsInf(point) {
		return 0, fmt.Errorf("point %q must be finite", s)
	}
	return point, nil
}

func parseUint(s string) (uint, error) {
	v, err := strconv.ParseUint(s, 10, 0)
	return uint(v), err
}

func parseFloat(s string) (float64, error) {
	return strconv.ParseFloat(s, 64)
}
