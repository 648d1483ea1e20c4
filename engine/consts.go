package engine

// Zoom limits. Zoom scales every pixel measurement uniformly.
const (
	MinZoom = 0.25
	MaxZoom = 4.0
)

// Datetime scale limits. The datetime scale stretches only the horizontal
// time axis, independently of zoom.
const (
	MinDatetimeScale = 1.0
	MaxDatetimeScale = 10.0
)

// Datetime scale thresholds for progressive level of detail. Ordering
// invariant: partial year lines appear first, then year headings, then
// fully opaque year lines, then full 4-digit year labels.
const (
	scaleShowYearLinesPartial = 1.5
	scaleShowYears            = 2.0
	scaleShowYearLinesFull    = 3.0
	scaleShowFullYears        = 4.0
)
