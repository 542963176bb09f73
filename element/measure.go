package element

import (
	"github.com/gogpu/collage"
	"github.com/gogpu/collage/form"
)

// Measured is an element annotated with its intrinsic size. Children are
// in the order of the element's children.
type Measured struct {
	Element  Element
	Size     collage.Size
	Children []*Measured

	// Content is the bounding box of a FormNode's form in form space.
	Content collage.Rect
	// Text is the measured extent of a TextNode.
	Text collage.Extent
}

// Measure computes the intrinsic size of e and all its descendants,
// bottom-up. Text is measured with m; a nil m measures all text as 0x0.
func Measure(e Element, m collage.Measurer) *Measured {
	ms := &Measured{Element: e}
	switch n := e.Node().(type) {
	case SpacerNode:
		ms.Size = collage.Sz(n.Width, n.Height)
	case CollageNode:
		ms.Size = collage.Sz(n.Width, n.Height)
	case ImageNode:
		ms.Size = collage.Sz(n.Width, n.Height)
	case FormNode:
		if n.Form != nil {
			if r, ok := form.Bounds(n.Form, m); ok {
				ms.Content = r
				ms.Size = r.Size()
			}
		}
	case TextNode:
		ms.Text = collage.MeasureText(m, n.Text)
		ms.Size = collage.Sz(ms.Text.Width, ms.Text.Height)
	case ContainerNode:
		child := Measure(n.Child, m)
		ms.Children = []*Measured{child}
		ms.Size = collage.Size{
			Width:  n.Width.resolve(child.Size.Width + n.Padding.Horizontal()),
			Height: n.Height.resolve(child.Size.Height + n.Padding.Vertical()),
		}
	case FlowNode:
		ms.Children = make([]*Measured, len(n.children))
		var sum, most collage.Size
		for i, c := range n.children {
			child := Measure(c, m)
			ms.Children[i] = child
			sum.Width += child.Size.Width
			sum.Height += child.Size.Height
			most.Width = max(most.Width, child.Size.Width)
			most.Height = max(most.Height, child.Size.Height)
		}
		switch {
		case n.Direction.horizontal():
			ms.Size = collage.Sz(sum.Width, most.Height)
		case n.Direction.layered():
			ms.Size = most
		default:
			ms.Size = collage.Sz(most.Width, sum.Height)
		}
	}

	if e.props.hasWidth {
		ms.Size.Width = e.props.width
	}
	if e.props.hasHeight {
		ms.Size.Height = e.props.height
	}
	return ms
}

// SizeOf returns the intrinsic size of e.
func SizeOf(e Element, m collage.Measurer) collage.Size {
	return Measure(e, m).Size
}

// Size returns the intrinsic size of e. It lets an element be embedded in
// a form with ToForm.
func (e Element) Size(m collage.Measurer) collage.Size {
	return SizeOf(e, m)
}

// WidthOf returns the intrinsic width of e.
func WidthOf(e Element, m collage.Measurer) float64 {
	return SizeOf(e, m).Width
}

// HeightOf returns the intrinsic height of e.
func HeightOf(e Element, m collage.Measurer) float64 {
	return SizeOf(e, m).Height
}
