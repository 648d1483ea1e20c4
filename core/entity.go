// Package core contains the fundamental types used throughout the spanline
// timeline renderer.
package core

import "fmt"

// TagExpr is an opaque predicate over an entity's tags. The engine never
// inspects expressions; it only asks whether a tag set matches.
type TagExpr interface {
	Matches(tags []string) bool
}

// Entity is a named thing with a start date and an optional end date. It is
// the unit being visualized on a timeline.
type Entity struct {
	ID    ID
	Name  string
	Start Date
	End   *Date // nil = open-ended (still ongoing)
	Tags  []string
}

// NewEntity builds an entity, generating an ID and validating that the end
// date, if present, is not before the start date.
func NewEntity(name string, start Date, end *Date, tags []string) (Entity, error) {
	if end != nil && end.Before(start) {
		return Entity{}, fmt.Errorf("entity %q: end %s before start %s", name, end.ShortFormat(), start.ShortFormat())
	}
	return Entity{
		ID:    NewID(),
		Name:  name,
		Start: start,
		End:   end,
		Tags:  tags,
	}, nil
}

// EndYear returns the end year and whether an end date is set.
func (e Entity) EndYear() (int, bool) {
	if e.End == nil {
		return 0, false
	}
	return e.End.Year, true
}

// Matches reports whether the entity's tags satisfy the expression. A nil
// expression matches everything.
func (e Entity) Matches(expr TagExpr) bool {
	if expr == nil {
		return true
	}
	return expr.Matches(e.Tags)
}
