package engine

import "spanline/core"

// EventKind distinguishes the interaction events the engine records.
type EventKind int

const (
	SingleClick EventKind = iota
	DoubleClick
	TripleClick
	Hover
)

// String returns the string representation of an EventKind.
func (k EventKind) String() string {
	switch k {
	case SingleClick:
		return "SingleClick"
	case DoubleClick:
		return "DoubleClick"
	case TripleClick:
		return "TripleClick"
	case Hover:
		return "Hover"
	default:
		return "Unknown"
	}
}

// InteractionEvent is one recorded pointer interaction with an entity. The
// engine never dispatches callbacks; frontends poll the queue once per
// frame via DrainInteractionEvents.
type InteractionEvent struct {
	Kind     EventKind
	EntityID core.ID
}
