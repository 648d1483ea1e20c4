package engine

// ScalableLayoutParams are the base pixel measurements users can adjust.
// They are never mutated by zooming; the engine derives a zoomed copy from
// them instead.
type ScalableLayoutParams struct {
	RowMargin                float64 `yaml:"row_margin"`
	MinInlineSpacing         float64 `yaml:"min_inline_spacing"`
	PaddingX                 float64 `yaml:"padding_x"`
	PaddingY                 float64 `yaml:"padding_y"`
	FontSizePx               float64 `yaml:"font_size_px"`
	DividingLineThickness    float64 `yaml:"dividing_line_thickness"`
	EntityHighlightThickness float64 `yaml:"entity_highlight_thickness"`
}

// DefaultLayoutParams returns the stock measurements.
func DefaultLayoutParams() ScalableLayoutParams {
	return ScalableLayoutParams{
		RowMargin:                5.0,
		MinInlineSpacing:         5.0,
		PaddingX:                 10.0,
		PaddingY:                 7.0,
		FontSizePx:               12.0,
		DividingLineThickness:    0.5,
		EntityHighlightThickness: 10.0,
	}
}

// scaled derives the zoomed copy of the params. The zoomed copy is always
// computed from the fixed one, never mutated independently.
func (p ScalableLayoutParams) scaled(zoom float64) ScalableLayoutParams {
	return ScalableLayoutParams{
		RowMargin:                p.RowMargin * zoom,
		MinInlineSpacing:         p.MinInlineSpacing * zoom,
		PaddingX:                 p.PaddingX * zoom,
		PaddingY:                 p.PaddingY * zoom,
		FontSizePx:               p.FontSizePx * zoom,
		DividingLineThickness:    p.DividingLineThickness * zoom,
		EntityHighlightThickness: p.EntityHighlightThickness * zoom,
	}
}

// measuredParams are layout measurements derived from measured text rather
// than set directly.
type measuredParams struct {
	// Pixels per year along the time axis. Derived from the width of a
	// decade label plus padding, divided by ten.
	yearWidth float64

	// Height of one text row before padding and margin are added.
	rowHeightNoPadding float64
}
