package geometry

import (
	"math"
	"testing"
)

func TestFloorToDecade(t *testing.T) {
	tests := []struct {
		year int
		want int
	}{
		{-150, -150},
		{-151, -160},
		{-159, -160},
		{150, 150},
		{151, 150},
		{159, 150},
		{0, 0},
		{9, 0},
	}

	for _, tt := range tests {
		if got := FloorToDecade(tt.year); got != tt.want {
			t.Errorf("FloorToDecade(%d) = %d, want %d", tt.year, got, tt.want)
		}
	}
}

func TestCeilToDecade(t *testing.T) {
	tests := []struct {
		year int
		want int
	}{
		{-150, -150},
		{-151, -150},
		{-159, -150},
		{150, 150},
		{151, 160},
		{159, 160},
		{0, 0},
		{1, 10},
	}

	for _, tt := range tests {
		if got := CeilToDecade(tt.year); got != tt.want {
			t.Errorf("CeilToDecade(%d) = %d, want %d", tt.year, got, tt.want)
		}
	}
}

func TestCeilToDecadeSaturates(t *testing.T) {
	// The extreme end of the year range must clamp, not wrap.
	got := CeilToDecade(math.MaxInt - 3)
	if got < 0 {
		t.Errorf("CeilToDecade near MaxInt wrapped to %d", got)
	}
}

func TestSaturatingSub(t *testing.T) {
	tests := []struct {
		a, b int
		want int
	}{
		{10, 3, 7},
		{-5, 5, -10},
		{math.MinInt, 1, math.MinInt},
		{math.MaxInt, -1, math.MaxInt},
	}

	for _, tt := range tests {
		if got := SaturatingSub(tt.a, tt.b); got != tt.want {
			t.Errorf("SaturatingSub(%d, %d) = %d, want %d", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestRoundTenth(t *testing.T) {
	tests := []struct {
		value float64
		want  float64
	}{
		{0.0, 0.0},
		{0.04, 0.0},
		{0.05, 0.1},
		{1.26, 1.3},
		{-1.26, -1.3},
		{100.44, 100.4},
	}

	for _, tt := range tests {
		if got := RoundTenth(tt.value); got != tt.want {
			t.Errorf("RoundTenth(%v) = %v, want %v", tt.value, got, tt.want)
		}
	}
}
