package tty

import (
	"github.com/gdamore/tcell/v2"

	"spanline/colour"
)

func toTcell(c colour.Colour) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

// drawFrame pulls fresh output from the engine and repaints the screen.
func (f *Frontend) drawFrame() {
	f.screen.Clear()
	width, height := f.screen.Size()

	for _, bg := range f.engine.BackgroundsForDrawing() {
		f.fillColumns(int(bg.X), int(bg.X+bg.Width), 0, height, toTcell(bg.Colour))
	}

	for _, line := range f.engine.LinesForDrawing() {
		x := int(line.X)
		if x < 0 || x >= width {
			continue
		}
		style := tcell.StyleDefault.Foreground(toTcell(line.Style.Colour))
		for y := 0; y < height; y++ {
			f.screen.SetContent(x, y, '│', nil, style)
		}
	}

	for _, heading := range f.engine.HeadingsForDrawing() {
		f.fillBox(heading.Box.Rect.Pos.X, heading.Box.Rect.Pos.Y, heading.Box.Rect.Width, heading.Box.Rect.Height, toTcell(heading.Box.Fill))
		f.drawText(heading.Text.TopLeft.X, heading.Text.TopLeft.Y, heading.Text.Text, toTcell(heading.Text.Colour), toTcell(heading.Box.Fill))
	}

	for _, entity := range f.engine.EntitiesForDrawing() {
		f.fillBox(entity.DateBox.Rect.Pos.X, entity.DateBox.Rect.Pos.Y, entity.DateBox.Rect.Width, entity.DateBox.Rect.Height, toTcell(entity.DateBox.Fill))
		f.fillBox(entity.TextBox.Rect.Pos.X, entity.TextBox.Rect.Pos.Y, entity.TextBox.Rect.Width, entity.TextBox.Rect.Height, toTcell(entity.TextBox.Fill))
		f.drawText(entity.Text.TopLeft.X, entity.Text.TopLeft.Y, entity.Text.Text, toTcell(entity.Text.Colour), toTcell(entity.TextBox.Fill))
	}

	f.screen.Show()
}

func (f *Frontend) fillBox(x, y, w, h float64, fill tcell.Color) {
	_, screenHeight := f.screen.Size()
	top := int(y)
	bottom := int(y + h)
	if bottom == top {
		bottom = top + 1 // a box never collapses below one cell
	}
	if bottom > screenHeight {
		bottom = screenHeight
	}
	f.fillColumns(int(x), int(x+w), top, bottom, fill)
}

func (f *Frontend) fillColumns(minX, maxX, minY, maxY int, fill tcell.Color) {
	screenWidth, _ := f.screen.Size()
	if minX < 0 {
		minX = 0
	}
	if maxX > screenWidth {
		maxX = screenWidth
	}
	if minY < 0 {
		minY = 0
	}
	style := tcell.StyleDefault.Background(fill)
	for x := minX; x < maxX; x++ {
		for y := minY; y < maxY; y++ {
			f.screen.SetContent(x, y, ' ', nil, style)
		}
	}
}

func (f *Frontend) drawText(x, y float64, text string, fg, bg tcell.Color) {
	style := tcell.StyleDefault.Foreground(fg).Background(bg)
	col := int(x)
	for _, r := range text {
		f.screen.SetContent(col, int(y), r, nil, style)
		col += runeWidth(r)
	}
}
