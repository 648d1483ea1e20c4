package core

import "math"

// Point represents a 2D coordinate in the canvas.
type Point struct {
	X, Y float64
}

// Min returns the component-wise minimum of two points.
func (p Point) Min(other Point) Point {
	return Point{X: math.Min(p.X, other.X), Y: math.Min(p.Y, other.Y)}
}

// Max returns the component-wise maximum of two points.
func (p Point) Max(other Point) Point {
	return Point{X: math.Max(p.X, other.X), Y: math.Max(p.Y, other.Y)}
}
