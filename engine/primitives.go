package engine

import (
	"spanline/colour"
	"spanline/core"
)

// Rect specifies the location and size of something drawn on the timeline.
// Boxes grow down and to the right from Pos.
type Rect struct {
	Pos    core.Point
	Width  float64
	Height float64
}

// MaxX returns the largest x value of the rect.
func (r Rect) MaxX() float64 {
	return r.Pos.X + r.Width
}

// MaxY returns the largest y value of the rect (how far it grows
// downwards).
func (r Rect) MaxY() float64 {
	return r.Pos.Y + r.Height
}

func (r *Rect) addOffset(dx, dy float64) {
	r.Pos.X += dx
	r.Pos.Y += dy
}

// TextOut is everything a frontend needs to draw a piece of text.
type TextOut struct {
	TopLeft  core.Point
	Text     string
	Colour   colour.Colour
	FontSize float64
}

// FilledBox is everything a frontend needs to draw a filled box. A nil
// border means no border.
type FilledBox struct {
	Rect   Rect
	Fill   colour.Colour
	Border *colour.LineStyle
}

// Heading is a decade or year header band: a label plus a filled box.
type Heading struct {
	Text TextOut
	Box  FilledBox
}

// withOffset clones the heading shifted along the x axis, so that panning
// does not require recomputing the headings themselves.
func (h Heading) withOffset(dx float64) Heading {
	shifted := h
	shifted.Text.TopLeft.X += dx
	shifted.Box.Rect.Pos.X += dx
	return shifted
}

// VerticalLine is a full-height dividing line at a decade or year boundary.
type VerticalLine struct {
	X     float64
	Style colour.LineStyle
}

// Background is one decade-wide background stripe.
type Background struct {
	X      float64
	Width  float64
	Colour colour.Colour
}
