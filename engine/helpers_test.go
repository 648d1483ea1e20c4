package engine

import (
	"testing"

	"spanline/core"
)

func TestMonthDayFraction(t *testing.T) {
	tests := []struct {
		name       string
		month, day int
		want       float64
	}{
		{"unset fields behave as January 1st", 0, 0, 0},
		{"january first", 1, 1, 0},
		{"start of july", 7, 1, 0.5},
		{"mid june", 6, 15, 5.0/12.0 + 14.0/365.0},
		{"day without month uses january", 0, 31, 30.0 / 365.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := monthDayFraction(tt.month, tt.day); got != tt.want {
				t.Errorf("monthDayFraction(%d, %d) = %v, want %v", tt.month, tt.day, got, tt.want)
			}
		})
	}
}

func TestIsVisible(t *testing.T) {
	canvas := core.Point{X: 100, Y: 50}

	tests := []struct {
		name     string
		min, max core.Point
		want     bool
	}{
		{"fully inside", core.Point{X: 10, Y: 10}, core.Point{X: 20, Y: 20}, true},
		{"right of canvas", core.Point{X: 101, Y: 10}, core.Point{X: 120, Y: 20}, false},
		{"left of canvas", core.Point{X: -50, Y: 10}, core.Point{X: -10, Y: 20}, false},
		{"straddles right edge", core.Point{X: 90, Y: 10}, core.Point{X: 150, Y: 20}, true},
		{"just below, within own-height margin", core.Point{X: 10, Y: 55}, core.Point{X: 20, Y: 65}, true},
		{"far below", core.Point{X: 10, Y: 200}, core.Point{X: 20, Y: 210}, false},
		{"far above", core.Point{X: 10, Y: -200}, core.Point{X: 20, Y: -190}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := isVisible(tt.min, tt.max, canvas); got != tt.want {
				t.Errorf("isVisible(%v, %v) = %v, want %v", tt.min, tt.max, got, tt.want)
			}
		})
	}
}
