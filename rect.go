package collage

import "math"

// Rect is an axis-aligned rectangle given by its min and max corners.
// A Rect with MinX > MaxX or MinY > MaxY is empty; [EmptyRect] returns the
// canonical empty value that acts as the unit of [Rect.Union].
type Rect struct {
	MinX, MinY float64
	MaxX, MaxY float64
}

// EmptyRect returns an empty rectangle.
func EmptyRect() Rect {
	return Rect{
		MinX: math.Inf(1), MinY: math.Inf(1),
		MaxX: math.Inf(-1), MaxY: math.Inf(-1),
	}
}

// RectXYWH returns the rectangle with origin (x, y) and the given size.
func RectXYWH(x, y, w, h float64) Rect {
	return Rect{MinX: x, MinY: y, MaxX: x + w, MaxY: y + h}
}

// BoundingBox returns the smallest rectangle containing every point.
// An empty slice yields [EmptyRect].
func BoundingBox(points []Point) Rect {
	r := EmptyRect()
	for _, p := range points {
		r.MinX = min(r.MinX, p.X)
		r.MinY = min(r.MinY, p.Y)
		r.MaxX = max(r.MaxX, p.X)
		r.MaxY = max(r.MaxY, p.Y)
	}
	return r
}

// Empty reports whether r contains no points.
func (r Rect) Empty() bool {
	return r.MinX > r.MaxX || r.MinY > r.MaxY
}

// Width returns the width of the rectangle (0 for empty rectangles).
func (r Rect) Width() float64 {
	if r.Empty() {
		return 0
	}
	return r.MaxX - r.MinX
}

// Height returns the height of the rectangle (0 for empty rectangles).
func (r Rect) Height() float64 {
	if r.Empty() {
		return 0
	}
	return r.MaxY - r.MinY
}

// Size returns the width and height of r.
func (r Rect) Size() Size {
	return Size{Width: r.Width(), Height: r.Height()}
}

// Min returns the min corner.
func (r Rect) Min() Point {
	return Point{X: r.MinX, Y: r.MinY}
}

// Center returns the centre of r.
func (r Rect) Center() Point {
	return Point{X: (r.MinX + r.MaxX) / 2, Y: (r.MinY + r.MaxY) / 2}
}

// Union returns the smallest rectangle containing both r and other.
func (r Rect) Union(other Rect) Rect {
	if r.Empty() {
		return other
	}
	if other.Empty() {
		return r
	}
	return Rect{
		MinX: min(r.MinX, other.MinX),
		MinY: min(r.MinY, other.MinY),
		MaxX: max(r.MaxX, other.MaxX),
		MaxY: max(r.MaxY, other.MaxY),
	}
}

// Intersect returns the overlap of r and other, which may be empty.
func (r Rect) Intersect(other Rect) Rect {
	out := Rect{
		MinX: max(r.MinX, other.MinX),
		MinY: max(r.MinY, other.MinY),
		MaxX: min(r.MaxX, other.MaxX),
		MaxY: min(r.MaxY, other.MaxY),
	}
	if out.Empty() {
		return EmptyRect()
	}
	return out
}

// Contains reports whether p lies inside r (edges included).
func (r Rect) Contains(p Point) bool {
	return p.X >= r.MinX && p.X <= r.MaxX && p.Y >= r.MinY && p.Y <= r.MaxY
}

// Translate returns r moved by (dx, dy).
func (r Rect) Translate(dx, dy float64) Rect {
	if r.Empty() {
		return r
	}
	return Rect{MinX: r.MinX + dx, MinY: r.MinY + dy, MaxX: r.MaxX + dx, MaxY: r.MaxY + dy}
}

// Transform returns the bounding box of r's four corners under m.
func (r Rect) Transform(m Matrix) Rect {
	if r.Empty() {
		return r
	}
	return BoundingBox([]Point{
		m.TransformPoint(Point{X: r.MinX, Y: r.MinY}),
		m.TransformPoint(Point{X: r.MaxX, Y: r.MinY}),
		m.TransformPoint(Point{X: r.MaxX, Y: r.MaxY}),
		m.TransformPoint(Point{X: r.MinX, Y: r.MaxY}),
	})
}
