package collage

import "math"

// Point represents a 2D point or vector.
type Point struct {
	X, Y float64
}

// Pt is a convenience function to create a Point.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Add returns the sum of two points (vector addition).
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns the difference of two points (vector subtraction).
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Mul returns the point scaled by a scalar.
func (p Point) Mul(s float64) Point {
	return Point{X: p.X * s, Y: p.Y * s}
}

// Length returns the length of the vector.
func (p Point) Length() float64 {
	return math.Hypot(p.X, p.Y)
}

// Distance returns the distance between two points.
func (p Point) Distance(q Point) float64 {
	return p.Sub(q).Length()
}

// Near reports whether p and q are within eps of each other.
func (p Point) Near(q Point, eps float64) bool {
	return p.Distance(q) <= eps
}

// Size is a non-negative width and height.
type Size struct {
	Width, Height float64
}

// Sz is a convenience function to create a Size.
func Sz(w, h float64) Size {
	return Size{Width: w, Height: h}
}

// IsZero reports whether s is 0x0.
func (s Size) IsZero() bool {
	return s.Width == 0 && s.Height == 0
}
