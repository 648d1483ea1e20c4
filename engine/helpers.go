package engine

import "spanline/core"

// monthDayFraction converts an optional month/day pair into a fractional
// offset within a year, e.g. mid-June is roughly 0.46. Unset fields behave
// as January / the 1st, so a year-only date positions at the start of its
// year.
func monthDayFraction(month, day int) float64 {
	if month == 0 {
		month = 1
	}
	if day == 0 {
		day = 1
	}
	return float64(month-1)/12.0 + float64(day-1)/365.0
}

// isVisible reports whether a bounding box intersects the canvas. The box's
// own height is used as a vertical margin so partially offscreen primitives
// near the top and bottom edges still render.
func isVisible(min, max, canvas core.Point) bool {
	height := max.Y - min.Y
	if min.X > canvas.X {
		return false
	}
	if max.X < 0 {
		return false
	}
	if min.Y-height > canvas.Y {
		return false
	}
	if max.Y+height < 0 {
		return false
	}
	return true
}
