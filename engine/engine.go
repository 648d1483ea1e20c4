// Package engine implements the timeline layout engine. It turns an
// unordered collection of dated entities into a fully positioned, zoomable,
// pannable 2D scene: stacked horizontal bars, decade and year header bands,
// vertical gridlines, background stripes and hit-testable regions,
// recomputed synchronously on every interaction.
//
// The engine is single-threaded and owns all of its state; drive it from
// one UI thread, once per frame. Every mutator ends in a full recompute, so
// the query methods (EntitiesForDrawing, HeadingsForDrawing,
// LinesForDrawing, BackgroundsForDrawing) are pure reads and cheap to call
// repeatedly.
package engine

import (
	"log/slog"
	"sort"

	"spanline/colour"
	"spanline/core"
)

// MeasureTextFunc measures a string at a font size, returning its pixel
// width and height. The engine calls it synchronously and expects a
// deterministic result for identical inputs.
type MeasureTextFunc func(fontSizePx float64, text string) (width, height float64)

// Engine manages all entities, measurements, calculations and interactions
// common to every timeline frontend.
type Engine struct {
	// The information required for all entity-related calculations.
	working []workingEntity

	// The tag expression entities are filtered by, if any.
	entityFilter core.TagExpr

	// The decade/year header bands, rebuilt on every recompute.
	headings []Heading

	measureText MeasureTextFunc

	dateRange dateRange

	// IDs of the currently selected entities.
	selectedIDs []core.ID

	theme colour.Theme

	// The global pan offset. Never scaled.
	offset core.Point

	zoom          float64
	datetimeScale float64

	// Derived from measured text.
	measured measuredParams

	// User-set baseline params, and the copy derived from them by zooming.
	fixedParams  ScalableLayoutParams
	zoomedParams ScalableLayoutParams

	// Recorded interaction events, drained by the frontend once per frame.
	events []InteractionEvent

	// Whether entity labels stick to the left of the screen rather than
	// disappearing off it, space allowing.
	stickyText bool

	canvasSize core.Point

	log *slog.Logger
}

// Option configures an Engine at construction.
type Option func(*Engine)

// WithLogger sets the logger the engine emits debug records to.
func WithLogger(log *slog.Logger) Option {
	return func(e *Engine) { e.log = log }
}

// WithTheme sets the initial colour theme.
func WithTheme(theme colour.Theme) Option {
	return func(e *Engine) { e.theme = theme }
}

// WithLayoutParams sets the initial baseline layout measurements.
func WithLayoutParams(params ScalableLayoutParams) Option {
	return func(e *Engine) { e.fixedParams = params }
}

// New creates an engine. The measure function is how the engine sizes text;
// frontends supply one appropriate to their drawing surface.
//
// SetCanvasMax must be called before querying for drawing, otherwise the
// engine considers everything out of frame.
func New(measure MeasureTextFunc, opts ...Option) *Engine {
	e := &Engine{
		measureText:   measure,
		theme:         colour.DefaultTheme(),
		zoom:          1.0,
		datetimeScale: MinDatetimeScale,
		fixedParams:   DefaultLayoutParams(),
		stickyText:    true,
		log:           slog.Default(),
	}
	for _, opt := range opts {
		opt(e)
	}
	e.zoomedParams = e.fixedParams.scaled(e.zoom)
	return e
}

func (e *Engine) strWidth(text string) float64 {
	w, _ := e.measureText(e.zoomedParams.FontSizePx, text)
	return w
}

func (e *Engine) strHeight(text string) float64 {
	_, h := e.measureText(e.zoomedParams.FontSizePx, text)
	return h
}

// recalculate re-runs the full pipeline: filter flags, date range, measured
// params, per-entity re-measure, packing, positions, offset clamp and
// heading rebuild. Every mutator ends here so queries always see a
// consistent scene.
func (e *Engine) recalculate() {
	e.updateFilterFlags()
	e.updateDateRange()
	e.updateMeasuredParams()

	for i := range e.working {
		width := e.strWidth(e.working[i].entity.Name)
		e.working[i].refreshGeometry(e.theme, e.measured, e.zoomedParams, width)
	}

	e.calculateEntityPositions()
	e.updateHeadings()
}

func (e *Engine) updateFilterFlags() {
	for i := range e.working {
		e.working[i].updateFilteredByTagExpr(e.entityFilter)
		e.working[i].updateFilteredByDateRange(e.dateRange)
	}
}

// updateMeasuredParams recomputes the measurements that depend on text
// size: the row height and the year width.
func (e *Engine) updateMeasuredParams() {
	e.measured.rowHeightNoPadding = e.strHeight(rowHeightMeasureSample)

	decadeStrWidth := e.strWidth(decadeMeasureSample) * e.datetimeScale
	e.measured.yearWidth = (decadeStrWidth + 2*e.zoomedParams.PaddingX) / 10
}

// ---- Entity management ----

// SetEntities replaces the list of entities drawn on the timeline.
func (e *Engine) SetEntities(entities []core.Entity) {
	e.working = nil
	e.AddEntities(entities)
}

// AddEntities adds new entities to the timeline.
func (e *Engine) AddEntities(entities []core.Entity) {
	for _, entity := range entities {
		width := e.strWidth(entity.Name)
		e.working = append(e.working, newWorkingEntity(entity, e.theme, e.measured, e.zoomedParams, width))
	}
	e.log.Debug("entities added", "count", len(entities), "total", len(e.working))
	e.sortEntities()
	e.recalculate()
}

// RemoveEntities removes the entities with the given IDs.
func (e *Engine) RemoveEntities(ids []core.ID) {
	toRemove := make(map[core.ID]struct{}, len(ids))
	for _, id := range ids {
		toRemove[id] = struct{}{}
	}
	kept := e.working[:0]
	for _, entity := range e.working {
		if _, remove := toRemove[entity.entity.ID]; !remove {
			kept = append(kept, entity)
		}
	}
	e.working = kept
	e.recalculate()
}

// ClearEntities removes every entity.
func (e *Engine) ClearEntities() {
	e.working = nil
	e.recalculate()
}

// EntityCount returns the number of entities, ignoring filtering.
func (e *Engine) EntityCount() int {
	return len(e.working)
}

// sortEntities orders entities by start date. Ties are broken by ID string
// so that row packing is deterministic regardless of arrival order.
func (e *Engine) sortEntities() {
	sort.SliceStable(e.working, func(i, j int) bool {
		if c := e.working[i].entity.Start.Compare(e.working[j].entity.Start); c != 0 {
			return c < 0
		}
		return e.working[i].entity.ID.String() < e.working[j].entity.ID.String()
	})
}

// ---- Filtering ----

// SetTagExprFilter filters entities by the given tag expression.
func (e *Engine) SetTagExprFilter(expr core.TagExpr) {
	e.entityFilter = expr
	e.recalculate()
}

// RemoveTagExprFilter removes the tag expression filter.
func (e *Engine) RemoveTagExprFilter() {
	e.entityFilter = nil
	e.recalculate()
}

// SetDateLimits sets optional start/end cutoffs. Entities outside them are
// hidden, and a set cutoff overrides the automatic timeline bound on that
// side. Pass nil to clear a cutoff.
func (e *Engine) SetDateLimits(start, end *core.Date) {
	e.dateRange.startCutoff = start
	e.dateRange.endCutoff = end
	e.recalculate()
}

// DateLimits returns the current cutoffs; either may be nil.
func (e *Engine) DateLimits() (start, end *core.Date) {
	return e.dateRange.startCutoff, e.dateRange.endCutoff
}

// ---- Layout params, zoom and scale ----

// SetFontSizePx sets the baseline font size.
func (e *Engine) SetFontSizePx(fontSizePx float64) {
	e.fixedParams.FontSizePx = fontSizePx
	e.zoomedParams = e.fixedParams.scaled(e.zoom)
	e.recalculate()
}

// SetLayoutParams replaces the baseline layout measurements.
func (e *Engine) SetLayoutParams(params ScalableLayoutParams) {
	e.fixedParams = params
	e.zoomedParams = e.fixedParams.scaled(e.zoom)
	e.recalculate()
}

// EffectiveFontSizePx is the font size after zooming; it may differ from
// the size passed to SetFontSizePx.
func (e *Engine) EffectiveFontSizePx() float64 {
	return e.zoomedParams.FontSizePx
}

// Zoom returns the current zoom level.
func (e *Engine) Zoom() float64 {
	return e.zoom
}

// DatetimeScale returns the current horizontal time-axis stretch factor.
func (e *Engine) DatetimeScale() float64 {
	return e.datetimeScale
}

// ZoomIn zooms in by factor around the given local point, which stays
// visually stationary. At the zoom limit the factor is reduced so the
// effective zoom lands exactly on the boundary instead of jumping.
func (e *Engine) ZoomIn(factor, xLocal, yLocal float64) {
	// Exact comparison is fine: the boundary value is only ever assigned,
	// never computed.
	if e.zoom == MaxZoom {
		return
	}
	if e.zoom*factor > MaxZoom {
		factor = MaxZoom / e.zoom
		e.zoom = MaxZoom
	} else {
		e.zoom *= factor
	}

	e.offset.X = xLocal - (xLocal-e.offset.X)*factor
	e.offset.Y = yLocal - (yLocal-e.offset.Y)*factor

	e.zoomedParams = e.fixedParams.scaled(e.zoom)
	e.log.Debug("zoom in", "zoom", e.zoom)

	// Text sizing is not linear in the scale factor, so a full recompute
	// is needed.
	e.recalculate()
}

// ZoomOut zooms out by factor around the given local point; the mirror of
// ZoomIn.
func (e *Engine) ZoomOut(factor, xLocal, yLocal float64) {
	if e.zoom == MinZoom {
		return
	}
	if e.zoom/factor < MinZoom {
		factor = e.zoom / MinZoom
		e.zoom = MinZoom
	} else {
		e.zoom /= factor
	}

	e.offset.X = xLocal - (xLocal-e.offset.X)/factor
	e.offset.Y = yLocal - (yLocal-e.offset.Y)/factor

	e.zoomedParams = e.fixedParams.scaled(e.zoom)
	e.log.Debug("zoom out", "zoom", e.zoom)
	e.recalculate()
}

// SetZoom jumps to a zoom level, clamped to [MinZoom, MaxZoom].
func (e *Engine) SetZoom(zoom float64) {
	e.zoom = clamp(zoom, MinZoom, MaxZoom)
	e.zoomedParams = e.fixedParams.scaled(e.zoom)
	e.recalculate()
}

// SetDatetimeScale sets the horizontal stretch factor, clamped to
// [MinDatetimeScale, MaxDatetimeScale].
func (e *Engine) SetDatetimeScale(scale float64) {
	e.datetimeScale = clamp(scale, MinDatetimeScale, MaxDatetimeScale)
	e.recalculate()
}

// ---- Pan and canvas ----

// SetCanvasMax tells the engine how big the canvas is. Must be called
// before drawing and on every resize.
func (e *Engine) SetCanvasMax(x, y float64) {
	e.canvasSize = core.Point{X: x, Y: y}
	e.clampGlobalOffset()
}

// AddToGlobalOffset pans the timeline by a delta. Positions are stored in
// unpanned space, so panning only needs an offset clamp, not a recompute.
func (e *Engine) AddToGlobalOffset(dx, dy float64) {
	e.offset.X += dx
	e.offset.Y += dy
	e.clampGlobalOffset()
}

// SetStickyText toggles whether entity labels stick to the left edge of
// the screen while their box is partially scrolled off it.
func (e *Engine) SetStickyText(sticky bool) {
	e.stickyText = sticky
}

// ---- Theme ----

// Theme returns the current colour theme.
func (e *Engine) Theme() colour.Theme {
	return e.theme
}

// SetTheme replaces the colour theme.
func (e *Engine) SetTheme(theme colour.Theme) {
	e.theme = theme
	e.recalculate()
}

// ---- Selection and interaction ----

// SelectedEntityIDs returns the IDs of the currently selected entities.
func (e *Engine) SelectedEntityIDs() []core.ID {
	return e.selectedIDs
}

// SetSelectedEntityIDs replaces the selected-entity ID list.
func (e *Engine) SetSelectedEntityIDs(ids []core.ID) {
	e.selectedIDs = ids
}

// AddSelectedEntityID appends an ID to the selected-entity list.
func (e *Engine) AddSelectedEntityID(id core.ID) {
	e.selectedIDs = append(e.selectedIDs, id)
}

// ClearSelectedEntityIDs empties the selected-entity list.
func (e *Engine) ClearSelectedEntityIDs() {
	e.selectedIDs = nil
}

// RemoveSelectedEntityID removes an ID from the selected-entity list.
func (e *Engine) RemoveSelectedEntityID(id core.ID) {
	kept := e.selectedIDs[:0]
	for _, existing := range e.selectedIDs {
		if existing != id {
			kept = append(kept, existing)
		}
	}
	e.selectedIDs = kept
}

// ClickOnEntity records a single click on an entity.
func (e *Engine) ClickOnEntity(id core.ID) {
	e.events = append(e.events, InteractionEvent{Kind: SingleClick, EntityID: id})
}

// DoubleClickOnEntity records a double click on an entity.
func (e *Engine) DoubleClickOnEntity(id core.ID) {
	e.events = append(e.events, InteractionEvent{Kind: DoubleClick, EntityID: id})
}

// TripleClickOnEntity records a triple click on an entity.
func (e *Engine) TripleClickOnEntity(id core.ID) {
	e.events = append(e.events, InteractionEvent{Kind: TripleClick, EntityID: id})
}

// HoverOverEntity records a hover over an entity and marks it hovered for
// highlight drawing. Pass nil when the pointer hovers nothing.
func (e *Engine) HoverOverEntity(id *core.ID) {
	if id != nil {
		e.events = append(e.events, InteractionEvent{Kind: Hover, EntityID: *id})
	}
	for i := range e.working {
		e.working[i].isHoveredOver = id != nil && e.working[i].entity.ID == *id
	}
}

// SelectEntities marks exactly the given entities as selected; any others
// are deselected. Selection is presentation-only and never affects layout.
func (e *Engine) SelectEntities(ids []core.ID) {
	selected := make(map[core.ID]struct{}, len(ids))
	for _, id := range ids {
		selected[id] = struct{}{}
	}
	for i := range e.working {
		_, ok := selected[e.working[i].entity.ID]
		e.working[i].isSelected = ok
	}
}

// DrainInteractionEvents returns all recorded interaction events and clears
// the queue. Frontends call this once per frame.
func (e *Engine) DrainInteractionEvents() []InteractionEvent {
	events := e.events
	e.events = nil
	return events
}

// ---- Queries for drawing ----

// StartAndEndYears returns the decade-floor and decade-ceiling years the
// timeline spans.
func (e *Engine) StartAndEndYears() (start, end int) {
	return e.dateRange.decadeRangeStart, e.dateRange.decadeRangeEnd
}

// EntitiesForDrawing returns every visible entity, themed, panned and
// culled against the canvas, ready for a frontend to draw.
func (e *Engine) EntitiesForDrawing() []EntityOut {
	headerHeight := e.measured.rowHeightNoPadding + 2*e.zoomedParams.PaddingY

	// The year sub-header adds a band, so content auto-shifts below it.
	yOffset := e.offset.Y
	if e.datetimeScale > scaleShowYears {
		yOffset += headerHeight
	}

	var out []EntityOut
	for i := range e.working {
		if e.working[i].isFilteredOut() {
			continue
		}
		entity := e.working[i]

		entity.text.Colour = e.theme.Entity.TextColour
		entity.textBox.Fill = e.theme.Entity.TextBox.Fill
		entity.textBox.Border = e.theme.Entity.TextBox.Border
		entity.dateBox.Fill = e.theme.Entity.DateBox.Fill
		entity.dateBox.Border = e.theme.Entity.DateBox.Border

		if entity.isHoveredOver {
			entity.text.Colour = entity.text.Colour.Lightened()
			entity.textBox.Fill = entity.textBox.Fill.Lightened()
			entity.dateBox.Fill = entity.dateBox.Fill.Lightened()
		}

		if entity.isSelected {
			highlight := &colour.LineStyle{
				Colour:    e.theme.Heading.Box.Fill,
				Thickness: e.zoomedParams.EntityHighlightThickness,
			}
			entity.textBox.Border = highlight
			entity.dateBox.Border = highlight
		}

		entity = entity.withOffset(e.offset.X, yOffset)
		if e.stickyText {
			entity.adjustStickyText(e.zoomedParams.PaddingX)
		}

		min := entity.dateBox.Rect.Pos.Min(entity.textBox.Rect.Pos)
		max := core.Point{X: entity.maxX(), Y: entity.maxY()}
		if !isVisible(min, max, e.canvasSize) {
			continue
		}

		out = append(out, entity.out())
	}
	return out
}

// HeadingsForDrawing returns the header bands, panned horizontally and
// culled against the canvas.
func (e *Engine) HeadingsForDrawing() []Heading {
	var out []Heading
	for _, heading := range e.headings {
		shifted := heading.withOffset(e.offset.X)
		min := shifted.Box.Rect.Pos
		max := core.Point{X: shifted.Box.Rect.MaxX(), Y: shifted.Box.Rect.MaxY()}
		if !isVisible(min, max, e.canvasSize) {
			continue
		}
		out = append(out, shifted)
	}
	return out
}

// LinesForDrawing returns the vertical dividing lines: one per decade
// boundary, plus faded year lines at high datetime scales.
func (e *Engine) LinesForDrawing() []VerticalLine {
	if e.dateRange.decadeCount == 0 {
		return nil
	}

	var lines []VerticalLine
	decadeWidth := e.decadeWidth()

	for decadeNumber := 0; decadeNumber <= e.dateRange.decadeCount; decadeNumber++ {
		decadeMinX := float64(decadeNumber)*decadeWidth + e.offset.X

		if decadeMinX >= 0 && decadeMinX <= e.canvasSize.X {
			lines = append(lines, VerticalLine{
				X:     decadeMinX,
				Style: colourLine(e.theme.DividingLine.Colour, e.zoomedParams.DividingLineThickness),
			})
		}

		if e.datetimeScale > scaleShowYearLinesPartial && decadeNumber != e.dateRange.decadeCount {
			// Year lines fade in as the scale approaches the full
			// threshold.
			lineColour := e.theme.DividingLine.Colour.Lightened().Lightened()
			if e.datetimeScale < scaleShowYearLinesFull {
				steps := int((scaleShowYearLinesFull-e.datetimeScale)/0.5 + 0.5)
				for s := 0; s < steps; s++ {
					lineColour = lineColour.Lightened()
				}
			}

			yearWidth := decadeWidth / 10
			for yearNumber := 1; yearNumber < 10; yearNumber++ {
				x := decadeMinX + yearWidth*float64(yearNumber)
				if x < 0 || x > e.canvasSize.X {
					continue
				}
				lines = append(lines, VerticalLine{
					X:     x,
					Style: colourLine(lineColour, e.zoomedParams.DividingLineThickness),
				})
			}
		}
	}
	return lines
}

// BackgroundsForDrawing returns one background stripe per decade,
// alternating colour century by century, culled against the canvas.
func (e *Engine) BackgroundsForDrawing() []Background {
	var backgrounds []Background
	width := e.decadeWidth()
	for decadeNumber := 0; decadeNumber < e.dateRange.decadeCount; decadeNumber++ {
		decade := e.dateRange.decadeRangeStart + decadeNumber*10
		x := float64(decadeNumber)*width + e.offset.X
		if x+width < 0 || x > e.canvasSize.X {
			continue
		}

		fill := e.theme.Background.B
		if (decade/100)%2 == 0 {
			fill = e.theme.Background.A
		}
		backgrounds = append(backgrounds, Background{X: x, Width: width, Colour: fill})
	}
	return backgrounds
}

func colourLine(c colour.Colour, thickness float64) colour.LineStyle {
	return colour.LineStyle{Colour: c, Thickness: thickness}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
