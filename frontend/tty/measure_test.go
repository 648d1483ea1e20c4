package tty

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"spanline/core"
	"spanline/engine"
)

func TestMeasure(t *testing.T) {
	w, h := Measure(12, "hello")
	assert.Equal(t, 5.0, w)
	assert.Equal(t, 1.0, h)

	// Font size must not change cell measurements.
	w2, _ := Measure(99, "hello")
	assert.Equal(t, w, w2)

	// East Asian wide runes occupy two cells.
	wide, _ := Measure(1, "日本")
	assert.Equal(t, 4.0, wide)

	empty, _ := Measure(1, "")
	assert.Equal(t, 0.0, empty)
}

func entityAt(t *testing.T, name string, x, y, width, height float64) engine.EntityOut {
	t.Helper()
	entity, err := core.NewEntity(name, core.YearOnly(1900), nil, nil)
	if err != nil {
		t.Fatal(err)
	}
	return engine.EntityOut{
		Entity: entity,
		TextBox: engine.FilledBox{
			Rect: engine.Rect{Pos: core.Point{X: x, Y: y}, Width: width, Height: height},
		},
		DateBox: engine.FilledBox{
			Rect: engine.Rect{Pos: core.Point{X: x, Y: y + height}, Width: width, Height: height},
		},
	}
}

func TestHitTest(t *testing.T) {
	under := entityAt(t, "under", 0, 0, 10, 2)
	over := entityAt(t, "over", 5, 0, 10, 2)
	entities := []engine.EntityOut{under, over}

	id, ok := HitTest(entities, 2, 1)
	assert.True(t, ok)
	assert.Equal(t, under.Entity.ID, id)

	// Overlap resolves to the later entity, matching draw order.
	id, ok = HitTest(entities, 7, 1)
	assert.True(t, ok)
	assert.Equal(t, over.Entity.ID, id)

	// The date box row counts too.
	id, ok = HitTest(entities, 2, 3)
	assert.True(t, ok)
	assert.Equal(t, under.Entity.ID, id)

	_, ok = HitTest(entities, 50, 50)
	assert.False(t, ok)

	// Max edges are exclusive.
	_, ok = HitTest([]engine.EntityOut{under}, 10, 0)
	assert.False(t, ok)
}
