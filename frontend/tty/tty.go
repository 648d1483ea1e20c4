package tty

import (
	"log/slog"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"spanline/engine"
)

const (
	zoomStep  = 1.1
	scaleStep = 1.25
	panStep   = 4
)

// Frontend drives a timeline engine from a tcell screen.
type Frontend struct {
	engine *engine.Engine
	screen tcell.Screen
	log    *slog.Logger

	// Drag state for pan-by-mouse.
	dragging   bool
	dragMovedX int
	lastMouseX int
	lastMouseY int
}

// Option configures a Frontend.
type Option func(*Frontend)

// WithLogger sets the logger interaction events are reported to.
func WithLogger(log *slog.Logger) Option {
	return func(f *Frontend) { f.log = log }
}

// New creates a frontend over an initialized engine. The caller keeps
// ownership of the engine; the frontend only translates events and draws.
func New(e *engine.Engine, opts ...Option) (*Frontend, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}
	screen.EnableMouse()

	f := &Frontend{
		engine: e,
		screen: screen,
		log:    slog.Default(),
	}
	for _, opt := range opts {
		opt(f)
	}

	width, height := screen.Size()
	e.SetCanvasMax(float64(width), float64(height))
	return f, nil
}

// Run enters the event loop: draw, poll, translate, repeat. Returns when
// the user quits.
func (f *Frontend) Run() error {
	defer f.screen.Fini()

	for {
		f.drawFrame()

		for _, event := range f.engine.DrainInteractionEvents() {
			f.log.Debug("interaction", "kind", event.Kind.String(), "entity", event.EntityID.String())
		}

		switch event := f.screen.PollEvent().(type) {
		case *tcell.EventResize:
			width, height := event.Size()
			f.engine.SetCanvasMax(float64(width), float64(height))
			f.screen.Sync()

		case *tcell.EventKey:
			if f.handleKey(event) {
				return nil
			}

		case *tcell.EventMouse:
			f.handleMouse(event)

		case nil:
			return nil
		}
	}
}

// handleKey translates a key press into an engine call. Returns true when
// the user asked to quit.
func (f *Frontend) handleKey(event *tcell.EventKey) bool {
	width, height := f.screen.Size()
	centerX, centerY := float64(width)/2, float64(height)/2

	switch event.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyLeft:
		f.engine.AddToGlobalOffset(panStep, 0)
	case tcell.KeyRight:
		f.engine.AddToGlobalOffset(-panStep, 0)
	case tcell.KeyUp:
		f.engine.AddToGlobalOffset(0, panStep)
	case tcell.KeyDown:
		f.engine.AddToGlobalOffset(0, -panStep)
	case tcell.KeyRune:
		switch event.Rune() {
		case 'q':
			return true
		case 'i':
			f.engine.ZoomIn(zoomStep, centerX, centerY)
		case 'o':
			f.engine.ZoomOut(zoomStep, centerX, centerY)
		case '+', '=':
			f.engine.SetDatetimeScale(f.engine.DatetimeScale() * scaleStep)
		case '-':
			f.engine.SetDatetimeScale(f.engine.DatetimeScale() / scaleStep)
		}
	}
	return false
}

// handleMouse translates pointer events: drag pans, the wheel zooms around
// the pointer, motion hovers and a press clicks the entity under the
// pointer.
func (f *Frontend) handleMouse(event *tcell.EventMouse) {
	x, y := event.Position()
	fx, fy := float64(x), float64(y)

	switch {
	case event.Buttons()&tcell.WheelUp != 0:
		f.engine.ZoomIn(zoomStep, fx, fy)
	case event.Buttons()&tcell.WheelDown != 0:
		f.engine.ZoomOut(zoomStep, fx, fy)

	case event.Buttons()&tcell.Button1 != 0:
		if f.dragging {
			f.engine.AddToGlobalOffset(fx-float64(f.lastMouseX), fy-float64(f.lastMouseY))
			f.dragMovedX += abs(x - f.lastMouseX)
		}
		f.dragging = true

	default:
		if f.dragging {
			// Release without movement counts as a click.
			if f.dragMovedX == 0 {
				if id, ok := HitTest(f.engine.EntitiesForDrawing(), fx, fy); ok {
					f.engine.ClickOnEntity(id)
				}
			}
			f.dragging = false
			f.dragMovedX = 0
		} else {
			if id, ok := HitTest(f.engine.EntitiesForDrawing(), fx, fy); ok {
				f.engine.HoverOverEntity(&id)
			} else {
				f.engine.HoverOverEntity(nil)
			}
		}
	}

	f.lastMouseX, f.lastMouseY = x, y
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func runeWidth(r rune) int {
	return runewidth.RuneWidth(r)
}
