package form

import "github.com/gogpu/collage"

// TextBox returns the rectangle occupied by a text node in its own space
// together with the measured extent. The box is centered vertically on the
// origin and placed horizontally by the node's hint.
func TextBox(t *TextNode, m collage.Measurer) (collage.Rect, collage.Extent) {
	ext := collage.MeasureText(m, t.text)
	var x float64
	switch t.hint {
	case ToLeft:
		x = -ext.Width
	case ToRight:
		x = 0
	default:
		x = -ext.Width / 2
	}
	return collage.RectXYWH(x, -ext.Height/2, ext.Width, ext.Height), ext
}

// Bounds returns the bounding box of f in its parent's space, including
// f's own transform. Stroke widths are ignored. The boolean is false when
// f draws nothing: empty groups, empty text, 0x0 embedded content,
// degenerate shapes and paths.
func Bounds(f Form, m collage.Measurer) (collage.Rect, bool) {
	return bounds(f, collage.Identity(), m)
}

// bounds returns the box of f under the parent transform ctm.
func bounds(f Form, ctm collage.Matrix, m collage.Measurer) (collage.Rect, bool) {
	ctm = ctm.Multiply(f.Local())
	switch n := f.(type) {
	case *PathNode:
		if !Path(n.points).Drawable() {
			return collage.Rect{}, false
		}
		return transformedBox(n.points, ctm), true
	case *ShapeNode:
		if !Shape(n.points).Drawable() {
			return collage.Rect{}, false
		}
		return transformedBox(n.points, ctm), true
	case *TextNode:
		if n.text.IsEmpty() {
			return collage.Rect{}, false
		}
		box, _ := TextBox(n, m)
		return box.Transform(ctm), true
	case *EmbedNode:
		box := n.Box(m)
		if box.Size().IsZero() {
			return collage.Rect{}, false
		}
		return box.Transform(ctm), true
	case *ImageNode:
		return n.Dest().Transform(ctm), true
	case *GroupNode:
		r := collage.EmptyRect()
		found := false
		for _, child := range n.forms {
			if cb, ok := bounds(child, ctm, m); ok {
				r = r.Union(cb)
				found = true
			}
		}
		return r, found
	default:
		return collage.Rect{}, false
	}
}

func transformedBox(points []collage.Point, m collage.Matrix) collage.Rect {
	pts := make([]collage.Point, len(points))
	for i, p := range points {
		pts[i] = m.TransformPoint(p)
	}
	return collage.BoundingBox(pts)
}
