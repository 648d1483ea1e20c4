package engine

import (
	"math"

	"spanline/colour"
	"spanline/core"
)

// EntityOut is everything a frontend needs to draw one entity: the source
// entity plus its label, text box and date box.
type EntityOut struct {
	Entity  core.Entity
	Text    TextOut
	TextBox FilledBox
	DateBox FilledBox
}

// workingEntity wraps one input entity with all the render state the engine
// derives for it. Geometry fields are overwritten on every recompute pass.
type workingEntity struct {
	entity core.Entity

	text    workingText
	textBox FilledBox
	dateBox FilledBox

	isHoveredOver bool
	isSelected    bool

	filteredByDateRange bool
	filteredByTagExpr   bool

	// Display row, valid only after packing. Filtered entities keep no
	// meaningful assignment.
	row int

	// Layout dates. end defaults to today when the entity is open-ended,
	// so it still occupies a bounded box.
	start core.Date
	end   core.Date
}

// workingText is an entity label plus its measured width.
type workingText struct {
	TopLeft  core.Point
	Text     string
	Width    float64
	Colour   colour.Colour
	FontSize float64
}

func newWorkingEntity(entity core.Entity, theme colour.Theme, measured measuredParams, zoomed ScalableLayoutParams, textWidth float64) workingEntity {
	rowHeight := measured.rowHeightNoPadding + 2*zoomed.PaddingY

	end := core.Today()
	if entity.End != nil {
		end = *entity.End
	}

	return workingEntity{
		entity: entity,
		text: workingText{
			Text:     entity.Name,
			Width:    textWidth,
			Colour:   theme.Entity.TextColour,
			FontSize: zoomed.FontSizePx,
		},
		textBox: FilledBox{
			Rect:   Rect{Width: textWidth + 2*zoomed.PaddingX, Height: rowHeight},
			Fill:   theme.Entity.TextBox.Fill,
			Border: theme.Entity.TextBox.Border,
		},
		dateBox: FilledBox{
			Rect:   Rect{Height: rowHeight},
			Fill:   theme.Entity.DateBox.Fill,
			Border: theme.Entity.DateBox.Border,
		},
		start: entity.Start,
		end:   end,
	}
}

// refreshGeometry re-applies the measurements that depend on text size and
// layout params. Positions are recomputed separately.
func (w *workingEntity) refreshGeometry(theme colour.Theme, measured measuredParams, zoomed ScalableLayoutParams, textWidth float64) {
	rowHeight := measured.rowHeightNoPadding + 2*zoomed.PaddingY

	w.text.Width = textWidth
	w.text.FontSize = zoomed.FontSizePx

	w.textBox.Rect.Width = textWidth + 2*zoomed.PaddingX
	w.textBox.Rect.Height = rowHeight
	w.textBox.Border = theme.Entity.TextBox.Border

	w.dateBox.Rect.Height = rowHeight
	w.dateBox.Border = theme.Entity.DateBox.Border
}

func (w *workingEntity) isFilteredOut() bool {
	return w.filteredByDateRange || w.filteredByTagExpr
}

// minX is the entity's smallest x position.
func (w *workingEntity) minX() float64 {
	return w.textBox.Rect.Pos.X
}

// maxX is the entity's largest x position across both boxes.
func (w *workingEntity) maxX() float64 {
	return math.Max(w.textBox.Rect.MaxX(), w.dateBox.Rect.MaxX())
}

// maxY is the entity's largest y position across both boxes.
func (w *workingEntity) maxY() float64 {
	return math.Max(w.textBox.Rect.MaxY(), w.dateBox.Rect.MaxY())
}

// withOffset clones the entity with the pan offset applied, so that panning
// never mutates the stored logical positions.
func (w workingEntity) withOffset(dx, dy float64) workingEntity {
	w.text.TopLeft.X += dx
	w.text.TopLeft.Y += dy
	w.textBox.Rect.addOffset(dx, dy)
	w.dateBox.Rect.addOffset(dx, dy)
	return w
}

// adjustStickyText slides the label right inside its box so it stays on
// screen while the box still has free space for it.
func (w *workingEntity) adjustStickyText(paddingX float64) {
	boxWidth := w.textBox.Rect.Width
	if w.dateBox.Rect.Width > boxWidth {
		boxWidth = w.dateBox.Rect.Width
	}
	freeSpace := boxWidth - w.text.Width - 2*paddingX
	if w.text.TopLeft.X < paddingX {
		if w.text.TopLeft.X < -(freeSpace - paddingX) {
			w.text.TopLeft.X += freeSpace
		} else {
			w.text.TopLeft.X = paddingX
		}
	}
}

func (w *workingEntity) updateFilteredByDateRange(dr dateRange) {
	if dr.startCutoff != nil && w.entity.Start.Before(*dr.startCutoff) {
		w.filteredByDateRange = true
		return
	}
	if dr.endCutoff != nil {
		if w.entity.End != nil {
			if w.entity.End.After(*dr.endCutoff) {
				w.filteredByDateRange = true
				return
			}
		} else if w.entity.Start.After(*dr.endCutoff) {
			w.filteredByDateRange = true
			return
		}
	}
	w.filteredByDateRange = false
}

func (w *workingEntity) updateFilteredByTagExpr(expr core.TagExpr) {
	w.filteredByTagExpr = expr != nil && !w.entity.Matches(expr)
}

func (w workingEntity) out() EntityOut {
	return EntityOut{
		Entity: w.entity,
		Text: TextOut{
			TopLeft:  w.text.TopLeft,
			Text:     w.text.Text,
			Colour:   w.text.Colour,
			FontSize: w.text.FontSize,
		},
		TextBox: w.textBox,
		DateBox: w.dateBox,
	}
}
