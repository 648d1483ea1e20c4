// Command spanline renders a timeline document in the terminal.
//
// Usage:
//
//	spanline -f timeline.yaml
//
// Drag or use the arrow keys to pan, the mouse wheel or i/o to zoom, and
// +/- to stretch the time axis into year-level detail.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"spanline/engine"
	"spanline/frontend/tty"
)

func main() {
	file := flag.String("f", "timeline.yaml", "timeline document to load")
	debug := flag.Bool("debug", false, "enable debug logging to stderr")
	flag.Parse()

	level := slog.LevelWarn
	if *debug {
		level = slog.LevelDebug
	}
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(log)

	if err := run(*file, log); err != nil {
		fmt.Fprintf(os.Stderr, "spanline: %v\n", err)
		os.Exit(1)
	}
}

func run(path string, log *slog.Logger) error {
	doc, err := loadDocument(path)
	if err != nil {
		return err
	}
	entities, err := doc.entities()
	if err != nil {
		return err
	}

	params := tty.LayoutParams()
	if doc.Layout != nil {
		params = *doc.Layout
	}

	opts := []engine.Option{
		engine.WithLogger(log),
		engine.WithLayoutParams(params),
	}
	if doc.Theme != nil {
		opts = append(opts, engine.WithTheme(*doc.Theme))
	}

	eng := engine.New(tty.Measure, opts...)
	eng.SetEntities(entities)
	log.Debug("timeline loaded", "title", doc.Title, "entities", eng.EntityCount())

	frontend, err := tty.New(eng, tty.WithLogger(log))
	if err != nil {
		return err
	}
	return frontend.Run()
}
