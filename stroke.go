package collage

import (
	"math"
	"slices"
)

// LineCap is the shape of the end points of a line.
type LineCap uint8

const (
	// CapFlat ends the line exactly at its end points.
	CapFlat LineCap = iota
	// CapRound ends the line with a half circle.
	CapRound
	// CapPadded extends the line by half its width with a square end.
	CapPadded
)

// String returns the name of the cap.
func (c LineCap) String() string {
	switch c {
	case CapFlat:
		return "Flat"
	case CapRound:
		return "Round"
	case CapPadded:
		return "Padded"
	default:
		return "Unknown"
	}
}

// JoinKind is the shape used where two segments of a line meet.
type JoinKind uint8

const (
	// JoinSmooth rounds the corner.
	JoinSmooth JoinKind = iota
	// JoinSharp extends the segments to a point, up to a miter limit.
	JoinSharp
	// JoinClipped bevels the corner.
	JoinClipped
)

// String returns the name of the join kind.
func (k JoinKind) String() string {
	switch k {
	case JoinSmooth:
		return "Smooth"
	case JoinSharp:
		return "Sharp"
	case JoinClipped:
		return "Clipped"
	default:
		return "Unknown"
	}
}

// LineJoin describes a join. MiterLimit only applies to JoinSharp.
type LineJoin struct {
	Kind       JoinKind
	MiterLimit float64
}

// Smooth returns a rounded join.
func Smooth() LineJoin { return LineJoin{Kind: JoinSmooth} }

// Sharp returns a miter join with the given limit.
func Sharp(limit float64) LineJoin { return LineJoin{Kind: JoinSharp, MiterLimit: math.Abs(limit)} }

// Clipped returns a bevel join.
func Clipped() LineJoin { return LineJoin{Kind: JoinClipped} }

// LineStyle defines how a path or an outline is stroked.
// Width is never negative and dash lengths are never negative; the With*
// helpers normalize their input.
type LineStyle struct {
	Color RGBA
	Width float64
	Cap   LineCap
	Join  LineJoin

	// Dashing holds alternating dash/gap lengths. Empty means solid.
	Dashing    []float64
	DashOffset float64
}

// DefaultLineStyle returns a solid black 1-unit line with flat caps and
// sharp joins limited at 10.
func DefaultLineStyle() LineStyle {
	return LineStyle{
		Color: Black,
		Width: 1,
		Cap:   CapFlat,
		Join:  Sharp(10),
	}
}

// SolidLine returns the default line style in the given color.
func SolidLine(c RGBA) LineStyle {
	return DefaultLineStyle().WithColor(c)
}

// DashedLine returns a line style in the given color dashed [8, 4].
func DashedLine(c RGBA) LineStyle {
	return SolidLine(c).WithDash(8, 4)
}

// DottedLine returns a line style in the given color dashed [3, 3].
func DottedLine(c RGBA) LineStyle {
	return SolidLine(c).WithDash(3, 3)
}

// WithColor returns a copy of the style with the given color.
func (s LineStyle) WithColor(c RGBA) LineStyle {
	s.Color = RGBA2(c.R, c.G, c.B, c.A)
	s.Dashing = slices.Clone(s.Dashing)
	return s
}

// WithWidth returns a copy of the style with the given width.
// Negative widths clamp to 0.
func (s LineStyle) WithWidth(w float64) LineStyle {
	s.Width = max(w, 0)
	s.Dashing = slices.Clone(s.Dashing)
	return s
}

// WithCap returns a copy of the style with the given cap.
func (s LineStyle) WithCap(c LineCap) LineStyle {
	s.Cap = c
	s.Dashing = slices.Clone(s.Dashing)
	return s
}

// WithJoin returns a copy of the style with the given join.
func (s LineStyle) WithJoin(j LineJoin) LineStyle {
	s.Join = j
	s.Dashing = slices.Clone(s.Dashing)
	return s
}

// WithDash returns a copy of the style with the given dash pattern.
// Negative lengths are replaced by their absolute value; a pattern with no
// positive length is treated as solid.
func (s LineStyle) WithDash(lengths ...float64) LineStyle {
	s.Dashing = normalizeDash(lengths)
	return s
}

// WithDashOffset returns a copy of the style with the dash offset set.
func (s LineStyle) WithDashOffset(offset float64) LineStyle {
	s.DashOffset = offset
	s.Dashing = slices.Clone(s.Dashing)
	return s
}

// IsDashed reports whether the style has a dash pattern.
func (s LineStyle) IsDashed() bool {
	return len(s.Dashing) > 0
}

// Clone returns a deep copy of the style.
func (s LineStyle) Clone() LineStyle {
	s.Dashing = slices.Clone(s.Dashing)
	return s
}

// Equal reports whether two line styles are identical.
func (s LineStyle) Equal(o LineStyle) bool {
	return s.Color == o.Color && s.Width == o.Width && s.Cap == o.Cap &&
		s.Join == o.Join && s.DashOffset == o.DashOffset &&
		slices.Equal(s.Dashing, o.Dashing)
}

// normalize returns s with width and dashes made valid.
func (s LineStyle) normalize() LineStyle {
	s.Color = RGBA2(s.Color.R, s.Color.G, s.Color.B, s.Color.A)
	s.Width = max(s.Width, 0)
	s.Dashing = normalizeDash(s.Dashing)
	return s
}

// Normalized returns a copy of s that satisfies the LineStyle invariants.
func (s LineStyle) Normalized() LineStyle {
	return s.normalize()
}

func normalizeDash(lengths []float64) []float64 {
	positive := false
	for _, l := range lengths {
		if math.Abs(l) > 0 {
			positive = true
			break
		}
	}
	if !positive {
		return nil
	}
	out := make([]float64, len(lengths))
	for i, l := range lengths {
		out[i] = math.Abs(l)
	}
	return out
}
