package form

import "github.com/gogpu/collage"

// Group combines forms into one. Later forms paint over earlier ones.
// Nil forms are skipped.
func Group(forms ...Form) Form {
	return GroupTransform(collage.Identity(), forms...)
}

// GroupTransform combines forms under a shared transform.
func GroupTransform(m collage.Matrix, forms ...Form) Form {
	children := make([]Form, 0, len(forms))
	for _, f := range forms {
		if f != nil {
			children = append(children, f)
		}
	}
	n := newNode()
	n.local = m
	return &GroupNode{node: n, forms: children}
}

// Transform applies m on top of the form's existing transform. The result
// is the same as wrapping f in GroupTransform(m, f).
//
// Like every combinator below, Transform returns nil for a nil form, which
// Group and element.Collage then skip.
func Transform(m collage.Matrix, f Form) Form {
	if f == nil {
		return nil
	}
	n := f.attrs()
	n.local = m.Multiply(n.local)
	return f.with(n)
}

// Move translates a form by (dx, dy) in its parent's space.
func Move(dx, dy float64, f Form) Form {
	return Transform(collage.Translate(dx, dy), f)
}

// MoveX translates a form horizontally.
func MoveX(dx float64, f Form) Form {
	return Move(dx, 0, f)
}

// MoveY translates a form vertically.
func MoveY(dy float64, f Form) Form {
	return Move(0, dy, f)
}

// Rotate rotates a form by theta radians about its parent's origin.
func Rotate(theta float64, f Form) Form {
	return Transform(collage.Rotate(theta), f)
}

// Scale scales a form uniformly about its parent's origin.
func Scale(s float64, f Form) Form {
	return ScaleXY(s, s, f)
}

// ScaleXY scales a form about its parent's origin.
func ScaleXY(sx, sy float64, f Form) Form {
	return Transform(collage.Scale(sx, sy), f)
}

// Alpha multiplies the opacity of a form. The result is clamped to [0, 1].
// A form with zero alpha is still part of the drawing, only invisible.
func Alpha(a float64, f Form) Form {
	if f == nil {
		return nil
	}
	n := f.attrs()
	n.alpha = collage.Clamp01(n.alpha * collage.Clamp01(a))
	return f.with(n)
}
