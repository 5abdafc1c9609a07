package gart

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrNegative is returned by LCM for negative input.
	ErrNegative = errors.New("negative input")
	// ErrNoCommonMultiple is returned by LCM when exactly one input is zero.
	ErrNoCommonMultiple = errors.New("no common multiple")
)

// Basename retrieves the basename of a file path.
func Basename(fName string) string {
	if lslash := strings.LastIndex(fName, "/"); lslash != -1 {
		fName = fName[lslash+1:]
	}
	return fName
}

// Clamp current value between low and high
func Clamp(cur, low, high float64) float64 {
	if low > high {
		low, high = high, low
	}
	if cur < low {
		return low
	}
	if cur > high {
		return high
	}
	return cur
}

// ClampInt current value between low and high
func ClampInt(cur, low, high int) int {
	if low > high {
		low, high = high, low
	}
	if cur < low {
		return low
	}
	if cur > high {
		return high
	}
	return cur
}

// Lerp is a linear interpolation from v0 to v1 where t varies from 0 to 1
func Lerp(v0, v1, t float64) float64 {
	return v0*(1-t) + v1*t
}

// LCM returns the least common multiple of a and b.
// LCM(0, 0) is 0; a single zero has no common multiple.
func LCM(a, b int) (int, error) {
	if a < 0 || b < 0 {
		return 0, fmt.Errorf("lcm(%d, %d): %w", a, b, ErrNegative)
	}
	if a == 0 && b == 0 {
		return 0, nil
	}
	if a == 0 || b == 0 {
		return 0, fmt.Errorf("lcm(%d, %d): %w", a, b, ErrNoCommonMultiple)
	}
	return a / GCD(a, b) * b, nil
}

// GCD returns the greatest common divisor of two non-negative ints.
func GCD(a, b int) int {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}
