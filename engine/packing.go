package engine

import "spanline/geometry"

// packEntitiesIntoRows assigns every visible working entity a display row
// using the greedy interval-partitioning heuristic: entities are processed
// in start-date order, and each takes the first row whose right edge (plus
// the minimum inline spacing) is still left of its own minimum x. Rows and
// entity positions are rounded to a tenth before comparing so float jitter
// cannot flip assignments between frames.
//
// Filtered-out entities are skipped and keep no row assignment. A
// zero-width span still occupies a full row slot.
func (e *Engine) packEntitiesIntoRows() {
	// Right edge of each currently open row, by row index.
	var rows []float64

	for i := range e.working {
		entity := &e.working[i]
		if entity.isFilteredOut() {
			continue
		}

		entityMin := geometry.RoundTenth(entity.minX())

		placed := false
		for r := range rows {
			rowMaxX := geometry.RoundTenth(rows[r] + e.zoomedParams.MinInlineSpacing)
			if rowMaxX < entityMin {
				rows[r] = entity.maxX()
				entity.row = r
				placed = true
				break
			}
		}

		// No open row has space: open a new one.
		if !placed {
			entity.row = len(rows)
			rows = append(rows, entity.maxX())
		}
	}
}
