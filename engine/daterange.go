package engine

import "spanline/core"

// dateRange tracks the span of years the timeline covers.
type dateRange struct {
	// The decade in which the timeline starts.
	decadeRangeStart int

	// The decade boundary before which the timeline ends.
	decadeRangeEnd int

	// The earliest visible entity start year.
	earliestYear int

	// The latest visible entity end year (entities without end dates are
	// ignored here).
	latestYear int

	// Optional user-set cutoffs. When set they override the automatic
	// bounds and hide entities outside them.
	startCutoff *core.Date
	endCutoff   *core.Date

	// The number of decade buckets shown. Zero when nothing is visible.
	decadeCount int
}
