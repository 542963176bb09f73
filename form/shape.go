package form

import (
	"math"
	"slices"

	"github.com/gogpu/collage"
)

// OvalSegments is the number of vertices used to approximate an oval.
const OvalSegments = 50

// Shape is a closed polygon. It becomes a Form once filled or outlined.
type Shape []collage.Point

// Path is an open polyline. It becomes a Form once traced.
type Path []collage.Point

// Polygon creates a shape from its vertices. The last vertex connects back
// to the first.
func Polygon(points ...collage.Point) Shape {
	return Shape(slices.Clone(points))
}

// Rect creates a w×h rectangle centered on the origin.
func Rect(w, h float64) Shape {
	hw, hh := w/2, h/2
	return Shape{
		{X: -hw, Y: -hh},
		{X: hw, Y: -hh},
		{X: hw, Y: hh},
		{X: -hw, Y: hh},
	}
}

// Square creates a square with side n centered on the origin.
func Square(n float64) Shape {
	return Rect(n, n)
}

// Oval creates an ellipse w wide and h tall centered on the origin.
func Oval(w, h float64) Shape {
	hw, hh := w/2, h/2
	step := 2 * math.Pi / OvalSegments
	points := make(Shape, OvalSegments)
	for i := range points {
		sin, cos := math.Sincos(step * float64(i))
		points[i] = collage.Point{X: hw * cos, Y: hh * sin}
	}
	return points
}

// Circle creates a circle with radius r centered on the origin.
func Circle(r float64) Shape {
	return Oval(2*r, 2*r)
}

// Ngon creates a regular polygon with n sides and circumradius r, with its
// first vertex on the positive x axis. Fewer than 3 sides give an empty
// shape.
func Ngon(n int, r float64) Shape {
	if n < 3 {
		return Shape{}
	}
	step := 2 * math.Pi / float64(n)
	points := make(Shape, n)
	for i := range points {
		sin, cos := math.Sincos(step * float64(i))
		points[i] = collage.Point{X: r * cos, Y: r * sin}
	}
	return points
}

// PathOf creates a path through the given points.
func PathOf(points ...collage.Point) Path {
	return Path(slices.Clone(points))
}

// Segment creates a path with a single segment.
func Segment(a, b collage.Point) Path {
	return Path{a, b}
}

// Closed returns the path as a shape, joining its last point to its first.
func (p Path) Closed() Shape {
	return Shape(slices.Clone(p))
}

// Drawable reports whether the shape encloses area: it needs at least
// three distinct vertices.
func (s Shape) Drawable() bool {
	return distinctAtLeast(s, 3)
}

// Drawable reports whether the path has at least one segment.
func (p Path) Drawable() bool {
	return len(p) >= 2
}

// distinctAtLeast reports whether points holds at least n points that are
// pairwise further apart than collage.Epsilon.
func distinctAtLeast(points []collage.Point, n int) bool {
	if len(points) < n {
		return false
	}
	seen := make([]collage.Point, 0, n)
	for _, p := range points {
		dup := false
		for _, q := range seen {
			if p.Near(q, collage.Epsilon) {
				dup = true
				break
			}
		}
		if !dup {
			seen = append(seen, p)
			if len(seen) >= n {
				return true
			}
		}
	}
	return false
}
