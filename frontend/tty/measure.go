// Package tty is a terminal frontend for the timeline engine, built on
// tcell. It is a dumb consumer: it translates terminal events into engine
// mutator calls and draws the pulled output primitives. It performs no
// layout of its own.
package tty

import (
	"github.com/mattn/go-runewidth"

	"spanline/core"
	"spanline/engine"
)

// Measure measures text in terminal cells. The font size is ignored: a
// terminal has exactly one glyph size. Deterministic for identical inputs,
// as the engine requires.
func Measure(_ float64, text string) (width, height float64) {
	return float64(runewidth.StringWidth(text)), 1
}

// LayoutParams returns layout measurements tuned for cell units rather
// than pixels.
func LayoutParams() engine.ScalableLayoutParams {
	return engine.ScalableLayoutParams{
		RowMargin:             0,
		MinInlineSpacing:      1,
		PaddingX:              1,
		PaddingY:              0,
		FontSizePx:            1,
		DividingLineThickness: 1,
	}
}

// HitTest returns the ID of the entity whose text or date box contains the
// given point, if any. Later entities win, matching draw order.
func HitTest(entities []engine.EntityOut, x, y float64) (core.ID, bool) {
	var id core.ID
	found := false
	for _, entity := range entities {
		if rectContains(entity.TextBox.Rect, x, y) || rectContains(entity.DateBox.Rect, x, y) {
			id = entity.Entity.ID
			found = true
		}
	}
	return id, found
}

func rectContains(r engine.Rect, x, y float64) bool {
	return x >= r.Pos.X && x < r.MaxX() && y >= r.Pos.Y && y < r.MaxY()
}
