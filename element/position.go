package element

import "github.com/gogpu/collage"

// Value is a requested length: either Auto (take the content's size) or a
// fixed number of pixels.
type Value struct {
	v     float64
	fixed bool
}

// Auto returns a value that sizes to the content.
func Auto() Value { return Value{} }

// Fixed returns a fixed length. Negative lengths are rejected when the
// value is used.
func Fixed(v float64) Value { return Value{v: v, fixed: true} }

// IsAuto reports whether v sizes to the content.
func (v Value) IsAuto() bool { return !v.fixed }

// Get returns the fixed length, or false for Auto.
func (v Value) Get() (float64, bool) { return v.v, v.fixed }

// resolve returns the fixed length or content.
func (v Value) resolve(content float64) float64 {
	if v.fixed {
		return v.v
	}
	return content
}

func (v Value) check(field string) error {
	if !v.fixed {
		return nil
	}
	return collage.CheckNonNegative(field, v.v)
}

// Insets is padding inside a container's box.
type Insets struct {
	Top, Right, Bottom, Left float64
}

// Uniform returns the same padding on all four sides.
func Uniform(p float64) Insets {
	return Insets{Top: p, Right: p, Bottom: p, Left: p}
}

// Symmetric returns vertical padding v and horizontal padding h.
func Symmetric(v, h float64) Insets {
	return Insets{Top: v, Right: h, Bottom: v, Left: h}
}

// Horizontal returns Left + Right.
func (i Insets) Horizontal() float64 { return i.Left + i.Right }

// Vertical returns Top + Bottom.
func (i Insets) Vertical() float64 { return i.Top + i.Bottom }

func (i Insets) check() error {
	for _, f := range []struct {
		name string
		v    float64
	}{
		{"padding.top", i.Top},
		{"padding.right", i.Right},
		{"padding.bottom", i.Bottom},
		{"padding.left", i.Left},
	} {
		if err := collage.CheckNonNegative(f.name, f.v); err != nil {
			return err
		}
	}
	return nil
}

// Position places a child inside a container. FX and FY are fractions of
// the free space (container inner size minus child size) that go before
// the child; DX and DY shift the result in pixels.
//
//	x = padding.Left + (innerWidth - childWidth) * FX + DX
type Position struct {
	fx, fy float64
	dx, dy float64
}

// Align returns a position at fractions fx and fy of the free space.
// Fractions outside [0, 1] fail with collage.ErrInvalidLayoutSpec.
func Align(fx, fy float64) (Position, error) {
	if err := collage.CheckFraction("align.x", fx); err != nil {
		return Position{}, err
	}
	if err := collage.CheckFraction("align.y", fy); err != nil {
		return Position{}, err
	}
	return Position{fx: fx, fy: fy}, nil
}

// Named positions.
var (
	TopLeft     = Position{fx: 0, fy: 0}
	MidTop      = Position{fx: 0.5, fy: 0}
	TopRight    = Position{fx: 1, fy: 0}
	MidLeft     = Position{fx: 0, fy: 0.5}
	Middle      = Position{fx: 0.5, fy: 0.5}
	MidRight    = Position{fx: 1, fy: 0.5}
	BottomLeft  = Position{fx: 0, fy: 1}
	MidBottom   = Position{fx: 0.5, fy: 1}
	BottomRight = Position{fx: 1, fy: 1}
)

// Center is an alias for Middle.
var Center = Middle

// Offset returns p shifted by (dx, dy) pixels.
func (p Position) Offset(dx, dy float64) Position {
	p.dx += dx
	p.dy += dy
	return p
}

// Fractions returns the alignment fractions.
func (p Position) Fractions() (fx, fy float64) { return p.fx, p.fy }

// Shift returns the pixel offset.
func (p Position) Shift() (dx, dy float64) { return p.dx, p.dy }

// place returns the child's origin inside a box of the given size.
func (p Position) place(box, child collage.Size, pad Insets) collage.Point {
	innerW := box.Width - pad.Horizontal()
	innerH := box.Height - pad.Vertical()
	return collage.Point{
		X: pad.Left + (innerW-child.Width)*p.fx + p.dx,
		Y: pad.Top + (innerH-child.Height)*p.fy + p.dy,
	}
}

// Direction is the way a Flow lays out its children.
type Direction uint8

const (
	// Right places children left to right.
	Right Direction = iota
	// Left places children right to left: the first child at the right edge.
	Left
	// Down places children top to bottom.
	Down
	// Up places children bottom to top: the first child at the bottom edge.
	Up
	// Outward stacks children on top of each other, the first at the back.
	Outward
	// Inward stacks children on top of each other, the first at the front.
	Inward
)

// String returns the name of the direction.
func (d Direction) String() string {
	switch d {
	case Right:
		return "Right"
	case Left:
		return "Left"
	case Down:
		return "Down"
	case Up:
		return "Up"
	case Outward:
		return "Outward"
	case Inward:
		return "Inward"
	default:
		return "Unknown"
	}
}

// horizontal reports whether the main axis is x.
func (d Direction) horizontal() bool { return d == Right || d == Left }

// layered reports whether children overlap.
func (d Direction) layered() bool { return d == Outward || d == Inward }
