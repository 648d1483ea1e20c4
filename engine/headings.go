package engine

import (
	"fmt"

	"spanline/core"
)

// decadeWidth is derived from the measured year width, which already
// accounts for padding.
func (e *Engine) decadeWidth() float64 {
	return e.measured.yearWidth * 10
}

// updateHeadings rebuilds the decade header bands, plus year sub-headings
// when the datetime scale is high enough. Headings are stored in unpanned
// space; the pan offset is applied on query.
func (e *Engine) updateHeadings() {
	height := e.measured.rowHeightNoPadding + 2*e.zoomedParams.PaddingY
	decadeStrWidth := e.strWidth(decadeMeasureSample)

	var headings []Heading
	currentDecade := e.dateRange.decadeRangeStart
	for decadeNumber := 0; decadeNumber < e.dateRange.decadeCount; decadeNumber++ {
		decadeWidth := e.decadeWidth()
		x := decadeWidth * float64(decadeNumber)
		textX := x + (decadeWidth-decadeStrWidth)/2

		headings = append(headings, Heading{
			Text: TextOut{
				TopLeft:  core.Point{X: textX, Y: e.zoomedParams.PaddingY},
				Text:     fmt.Sprintf("%ds", currentDecade),
				Colour:   e.theme.Heading.TextColour,
				FontSize: e.zoomedParams.FontSizePx,
			},
			Box: FilledBox{
				Rect:   Rect{Pos: core.Point{X: x}, Width: decadeWidth, Height: height},
				Fill:   e.theme.Heading.Box.Fill,
				Border: e.theme.Heading.Box.Border,
			},
		})

		if e.datetimeScale > scaleShowYears {
			yearWidth := decadeWidth / 10
			for yearNumber := 0; yearNumber < 10; yearNumber++ {
				year := currentDecade + yearNumber
				yearX := x + yearWidth*float64(yearNumber)

				// Abbreviated two-digit form until zoomed far enough in
				// for full years.
				var label string
				if e.datetimeScale < scaleShowFullYears {
					label = fmt.Sprintf("'%02d", ((year%100)+100)%100)
				} else {
					label = fmt.Sprintf("%d", year)
				}

				labelWidth := e.strWidth(label)
				headings = append(headings, Heading{
					Text: TextOut{
						TopLeft:  core.Point{X: yearX + (yearWidth-labelWidth)/2, Y: height + e.zoomedParams.PaddingY},
						Text:     label,
						Colour:   e.theme.Heading.TextColour,
						FontSize: e.zoomedParams.FontSizePx,
					},
					Box: FilledBox{
						Rect:   Rect{Pos: core.Point{X: yearX, Y: height}, Width: yearWidth, Height: height},
						Fill:   e.theme.Heading.Box.Fill,
						Border: e.theme.Heading.Box.Border,
					},
				})
			}
		}

		currentDecade += 10
	}

	e.headings = headings
}

// decadeMeasureSample is the text measured to derive the width of a decade
// label, and from it the year width.
const decadeMeasureSample = "1234s"

// rowHeightMeasureSample is the text measured to derive the height of one
// row; it spans ascenders and descenders.
const rowHeightMeasureSample = "lpfHT"
