package scene

import (
	"slices"

	"github.com/gogpu/collage"
	"golang.org/x/image/math/f64"
)

// Geometry is what a primitive draws, in the primitive's local space.
// The set of implementations is closed: Polyline, Polygon, Text and Image.
type Geometry interface {
	// LocalBounds returns the bounding box in local space.
	LocalBounds() collage.Rect
	isGeometry()
}

// Polyline is an open path, stroked and never filled.
type Polyline struct {
	Points []collage.Point
}

// LocalBounds implements Geometry.
func (g Polyline) LocalBounds() collage.Rect { return collage.BoundingBox(g.Points) }
func (Polyline) isGeometry()                 {}

// Polygon is a closed path: filled, stroked along its outline, or both.
type Polygon struct {
	Points []collage.Point
}

// LocalBounds implements Geometry.
func (g Polygon) LocalBounds() collage.Rect { return collage.BoundingBox(g.Points) }
func (Polygon) isGeometry()                 {}

// Text is a run of styled text. Its box has its top-left corner at the
// local origin and is Extent.Width by Extent.Height; the first baseline is
// Extent.Baseline below the top. Span colors are already resolved.
// Lines are separated by '\n'. Align positions each line inside the box as
// a fraction of the free width: 0 left, 0.5 centered, 1 right.
type Text struct {
	Text   collage.Text
	Extent collage.Extent
	Align  float64
}

// LocalBounds implements Geometry.
func (g Text) LocalBounds() collage.Rect {
	return collage.RectXYWH(0, 0, g.Extent.Width, g.Extent.Height)
}
func (Text) isGeometry() {}

// ImageMode says how an image covers its destination rectangle.
type ImageMode uint8

const (
	// ImageStretch scales Src to exactly cover Dest.
	ImageStretch ImageMode = iota
	// ImageFit scales Src uniformly until it covers Dest, centered, and
	// crops whatever falls outside.
	ImageFit
	// ImageTile repeats the image at its natural size from Dest's corner.
	ImageTile
)

// String returns the name of the mode.
func (m ImageMode) String() string {
	switch m {
	case ImageStretch:
		return "Stretch"
	case ImageFit:
		return "Fit"
	case ImageTile:
		return "Tile"
	default:
		return "Unknown"
	}
}

// Image draws the Src region of an image into Dest. An empty Src means
// the whole image; the referenced image's pixel size is known only to the
// renderer.
type Image struct {
	Ref  collage.ImageRef
	Src  collage.Rect
	Dest collage.Rect
	Mode ImageMode
}

// LocalBounds implements Geometry.
func (g Image) LocalBounds() collage.Rect { return g.Dest }
func (Image) isGeometry()                 {}

// Style is the resolved paint of a primitive. Colors already include the
// accumulated alpha.
type Style struct {
	Fill   collage.FillStyle
	Stroke *collage.LineStyle
}

// Stroked reports whether the primitive strokes its geometry.
func (s Style) Stroked() bool { return s.Stroke != nil }

// Batchable reports whether two primitives paint with identical styles,
// so a renderer may draw consecutive runs of them in one batch.
func (s Style) Batchable(other Style) bool {
	if !s.Fill.Equal(other.Fill) {
		return false
	}
	switch {
	case s.Stroke == nil && other.Stroke == nil:
		return true
	case s.Stroke == nil || other.Stroke == nil:
		return false
	default:
		return s.Stroke.Equal(*other.Stroke)
	}
}

// Primitive is a fully resolved drawable unit.
//
// Transform maps the geometry's local space to scene space. Alpha is the
// accumulated opacity: it is already folded into every color of Style and
// of Text geometry, and a renderer applies it only to images and textures,
// which carry no color. When Clipped is set, drawing is restricted to Clip,
// an axis-aligned rectangle in scene space.
type Primitive struct {
	Transform collage.Matrix
	Alpha     float64
	Style     Style
	Geometry  Geometry
	Clip      collage.Rect
	Clipped   bool
}

// Aff3 returns the transform in the layout used by golang.org/x/image.
func (p Primitive) Aff3() f64.Aff3 {
	m := p.Transform
	return f64.Aff3{m.A, m.B, m.C, m.D, m.E, m.F}
}

// Bounds returns the bounding box of the primitive in scene space,
// limited to its clip. Stroke widths are ignored.
func (p Primitive) Bounds() collage.Rect {
	if p.Geometry == nil {
		return collage.EmptyRect()
	}
	r := p.Geometry.LocalBounds().Transform(p.Transform)
	if p.Clipped {
		r = r.Intersect(p.Clip)
	}
	return r
}

// Visible reports whether the primitive can change any pixel.
func (p Primitive) Visible() bool {
	return p.Alpha > 0 && !p.Bounds().Empty()
}

// clone returns a deep copy of p.
func (p Primitive) clone() Primitive {
	if p.Style.Stroke != nil {
		s := p.Style.Stroke.Clone()
		p.Style.Stroke = &s
	}
	switch g := p.Geometry.(type) {
	case Polyline:
		p.Geometry = Polyline{Points: slices.Clone(g.Points)}
	case Polygon:
		p.Geometry = Polygon{Points: slices.Clone(g.Points)}
	}
	return p
}
