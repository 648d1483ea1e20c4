package engine

import (
	"math"

	"spanline/core"
	"spanline/geometry"
)

// updateEarliestAndLatestYears scans only visible entities: a filtered-out
// entity must not widen or narrow the visible date span.
func (e *Engine) updateEarliestAndLatestYears() {
	e.dateRange.earliestYear = math.MaxInt
	e.dateRange.latestYear = math.MinInt

	for i := range e.working {
		entity := &e.working[i]
		if entity.isFilteredOut() {
			continue
		}
		if year := entity.entity.Start.Year; year < e.dateRange.earliestYear {
			e.dateRange.earliestYear = year
		}
		if end, ok := entity.entity.EndYear(); ok && end > e.dateRange.latestYear {
			e.dateRange.latestYear = end
		}
	}

	// Every visible entity is open-ended: bound the span at today.
	if e.dateRange.latestYear == math.MinInt {
		e.dateRange.latestYear = core.Today().Year
	}
}

// updateDateRange recomputes the decade bounds and bucket count. With no
// visible entities the range degenerates to zero decades and no further
// layout work happens.
func (e *Engine) updateDateRange() {
	e.updateEarliestAndLatestYears()

	if e.visibleCount() == 0 {
		e.dateRange.decadeCount = 0
		return
	}

	startYear := e.dateRange.earliestYear
	if e.dateRange.startCutoff != nil {
		startYear = e.dateRange.startCutoff.Year
	}

	endYear := e.dateRange.latestYear
	if e.dateRange.endCutoff != nil {
		endYear = e.dateRange.endCutoff.Year
	}

	e.dateRange.decadeRangeStart = geometry.FloorToDecade(startYear)
	e.dateRange.decadeRangeEnd = geometry.CeilToDecade(endYear)
	e.dateRange.decadeCount = geometry.SaturatingSub(e.dateRange.decadeRangeEnd, e.dateRange.decadeRangeStart) / 10
}

func (e *Engine) visibleCount() int {
	count := 0
	for i := range e.working {
		if !e.working[i].isFilteredOut() {
			count++
		}
	}
	return count
}

// calculateEntityPositions runs the geometric half of the pipeline: widths
// and x positions first (packing needs max x values), then packing, then y
// positions from the assigned rows, then the pan clamp.
func (e *Engine) calculateEntityPositions() {
	e.calculateEntityWidths()
	e.calculateEntityXPositions()
	e.packEntitiesIntoRows()
	e.calculateEntityYPositions()
	e.clampGlobalOffset()
}

// calculateEntityWidths sets each entity's date box width from its lifespan
// and its text box width from the measured label. An open-ended entity uses
// today as its effective end, so it visually extends to the current date.
func (e *Engine) calculateEntityWidths() {
	for i := range e.working {
		entity := &e.working[i]

		startFraction := monthDayFraction(entity.start.Month, entity.start.Day)
		endFraction := monthDayFraction(entity.end.Month, entity.end.Day)
		lifespanYears := (float64(entity.end.Year) + endFraction) -
			(float64(entity.start.Year) + startFraction)

		entity.dateBox.Rect.Width = lifespanYears * e.measured.yearWidth
		entity.textBox.Rect.Width = entity.text.Width + 2*e.zoomedParams.PaddingX
	}
}

// calculateEntityXPositions computes each entity's x position in unpanned
// logical space. The pan offset is applied just before output, never here.
func (e *Engine) calculateEntityXPositions() {
	for i := range e.working {
		entity := &e.working[i]

		offsetInYears := float64(entity.start.Year-e.dateRange.decadeRangeStart) +
			monthDayFraction(entity.start.Month, entity.start.Day)
		x := offsetInYears * e.measured.yearWidth

		entity.text.TopLeft.X = x + e.zoomedParams.PaddingX
		entity.textBox.Rect.Pos.X = x
		entity.dateBox.Rect.Pos.X = x
	}
}

// calculateEntityYPositions computes each entity's y position from its row.
// Row 0 sits one row height down, just below the header band.
func (e *Engine) calculateEntityYPositions() {
	rowHeight := e.measured.rowHeightNoPadding + e.zoomedParams.RowMargin + 2*e.zoomedParams.PaddingY
	for i := range e.working {
		entity := &e.working[i]
		y := rowHeight * float64(entity.row+1)
		entity.text.TopLeft.Y = y + e.zoomedParams.PaddingY
		entity.textBox.Rect.Pos.Y = y
		entity.dateBox.Rect.Pos.Y = y
	}
}

// clampGlobalOffset keeps the content on the canvas: when the timeline is
// larger than the canvas the offset may not open a gap at either edge, and
// when it is smaller the offset may not drift positive.
func (e *Engine) clampGlobalOffset() {
	e.offset.X = math.Min(e.offset.X, 0)
	e.offset.Y = math.Min(e.offset.Y, 0)

	maxX := math.Inf(-1)
	maxY := math.Inf(-1)
	for i := range e.working {
		entity := &e.working[i]
		if entity.isFilteredOut() {
			continue
		}
		maxX = math.Max(maxX, entity.maxX())
		maxY = math.Max(maxY, entity.maxY())
	}
	if math.IsInf(maxX, -1) {
		return
	}

	if maxX > e.canvasSize.X {
		e.offset.X = math.Max(e.offset.X, e.canvasSize.X-maxX)
	} else {
		e.offset.X = math.Max(e.offset.X, 0)
	}

	maxY += e.zoomedParams.RowMargin
	if maxY > e.canvasSize.Y {
		e.offset.Y = math.Max(e.offset.Y, e.canvasSize.Y-maxY)
	} else {
		e.offset.Y = math.Max(e.offset.Y, 0)
	}
}
