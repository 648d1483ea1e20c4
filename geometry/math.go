// Package geometry provides the small pure math helpers used by the layout
// engine.
package geometry

import "math"

// RoundTenth rounds a value to the nearest 0.1. Row packing rounds both row
// edges and entity positions this way before comparing them, so that float
// jitter cannot flip row assignments between frames.
func RoundTenth(value float64) float64 {
	return math.Round(value*10) / 10
}

// FloorToDecade rounds a year down to the start of its decade. Negative
// years round away from zero, e.g. -151 becomes -160.
func FloorToDecade(year int) int {
	if year < 0 {
		return saturatingSub(year, 9) / 10 * 10
	}
	return year / 10 * 10
}

// CeilToDecade rounds a year up to the start of the next decade boundary.
// Negative years round toward zero, e.g. -151 becomes -150.
func CeilToDecade(year int) int {
	if year < 0 {
		return year / 10 * 10
	}
	return saturatingAdd(year, 9) / 10 * 10
}

// SaturatingSub subtracts b from a, clamping at the integer limits instead
// of wrapping.
func SaturatingSub(a, b int) int {
	return saturatingSub(a, b)
}

func saturatingAdd(a, b int) int {
	sum := a + b
	if b > 0 && sum < a {
		return math.MaxInt
	}
	if b < 0 && sum > a {
		return math.MinInt
	}
	return sum
}

func saturatingSub(a, b int) int {
	diff := a - b
	if b < 0 && diff < a {
		return math.MaxInt
	}
	if b > 0 && diff > a {
		return math.MinInt
	}
	return diff
}
