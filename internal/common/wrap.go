package common

import "math"

// UnknownStr is the String() fallback for out-of-range enum values.
const UnknownStr = "unknown"

type number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~float32 | ~float64
}

// IsInRange checks if a value is within the specified range, both inclusive.
func IsInRange[T number](min T, value T, max T) bool {
	return min <= value && value <= max
}

// Mod returns the non-negative remainder of a divided by n (n > 0).
// Mod(-1, 12) == 11.
func Mod[T ~int](a, n T) T {
	r := a % n
	if r < 0 {
		r += n
	}

	return r
}

// WrapDegrees normalizes an angle into [0, 360).
// Non-finite input is returned unchanged so callers can reject it.
func WrapDegrees(deg float64) float64 {
	if math.IsNaN(deg) || math.IsInf(deg, 0) {
		return deg
	}

	r := math.Mod(deg, 360)
	if r < 0 {
		r += 360
	}

	// -1e-17 + 360 rounds to 360.
	if r >= 360 {
		r = 0
	}

	return r
}

// IsFinite reports whether f is neither NaN nor ±Inf.
func IsFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
