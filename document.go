package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"spanline/colour"
	"spanline/core"
	"spanline/engine"
)

// document is the on-disk YAML form of a timeline: the entities to show
// plus optional theme and layout overrides.
type document struct {
	Title    string                       `yaml:"title"`
	Theme    *colour.Theme                `yaml:"theme,omitempty"`
	Layout   *engine.ScalableLayoutParams `yaml:"layout,omitempty"`
	Entities []documentEntity             `yaml:"entities"`
}

type documentEntity struct {
	Name  string        `yaml:"name"`
	Start documentDate  `yaml:"start"`
	End   *documentDate `yaml:"end,omitempty"`
	Tags  []string      `yaml:"tags,omitempty"`
}

type documentDate struct {
	Year  int `yaml:"year"`
	Month int `yaml:"month,omitempty"`
	Day   int `yaml:"day,omitempty"`
}

func loadDocument(path string) (document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return document{}, err
	}
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return document{}, fmt.Errorf("parse %s: %w", path, err)
	}
	return doc, nil
}

// entities converts the document entries into validated core entities.
func (d document) entities() ([]core.Entity, error) {
	out := make([]core.Entity, 0, len(d.Entities))
	for _, raw := range d.Entities {
		start, err := core.NewDate(raw.Start.Year, raw.Start.Month, raw.Start.Day)
		if err != nil {
			return nil, fmt.Errorf("entity %q: start: %w", raw.Name, err)
		}
		var end *core.Date
		if raw.End != nil {
			parsed, err := core.NewDate(raw.End.Year, raw.End.Month, raw.End.Day)
			if err != nil {
				return nil, fmt.Errorf("entity %q: end: %w", raw.Name, err)
			}
			end = &parsed
		}
		entity, err := core.NewEntity(raw.Name, start, end, raw.Tags)
		if err != nil {
			return nil, err
		}
		out = append(out, entity)
	}
	return out, nil
}
