// Package element is the box layout engine: immutable trees of sized
// widgets (spacers, collages, text, images, containers and flows) that are
// measured bottom-up and arranged top-down into a tree of Boxes.
//
//	title := element.Centered(collage.FromString("Hello").Height(24))
//	body := element.Must(element.Collage(200, 200, form.FilledColor(collage.Red, form.Circle(50))))
//	page := element.Must(element.Container(element.Fixed(300), element.Auto(),
//	    element.MidTop, element.Above(title, body)))
//
//	box, err := element.Layout(page, 300, 400)
//
// Element coordinates are y-down with the origin at the top-left corner of
// each box. Constructors that take sizes reject negative values with
// collage.ErrInvalidLayoutSpec; Must panics instead, for literal trees.
package element

import (
	"slices"

	"github.com/gogpu/collage"
	"github.com/gogpu/collage/form"
)

// Element is an immutable layout node. The zero Element is an empty spacer.
type Element struct {
	node  Node
	props props
}

// props are the attributes shared by every element.
type props struct {
	width, height       float64
	hasWidth, hasHeight bool
	opacity             float64
	hasOpacity          bool
	color               collage.RGBA
	hasColor            bool
	crossAlign          float64
	tag                 string
}

func newElement(n Node) Element {
	return Element{node: n}
}

// Node is the content of an element. The set of implementations is closed:
// SpacerNode, CollageNode, FormNode, TextNode, ImageNode, ContainerNode
// and FlowNode.
type Node interface {
	isNode()
}

// SpacerNode is empty space of the size given to Spacer.
type SpacerNode struct {
	Width, Height float64
}

// CollageNode draws forms in a fixed-size box with the form origin at the
// center of the box. Forms outside the box are clipped.
type CollageNode struct {
	Width, Height float64
	forms         []form.Form
}

// Forms returns a copy of the forms.
func (c CollageNode) Forms() []form.Form { return slices.Clone(c.forms) }

// FormNode sizes itself to the bounding box of a form.
type FormNode struct {
	Form form.Form
}

// TextAlign is the horizontal alignment of the lines of a text element.
type TextAlign uint8

const (
	AlignLeft TextAlign = iota
	AlignCenter
	AlignRight
)

// Fraction returns the share of free width placed before each line.
func (a TextAlign) Fraction() float64 {
	switch a {
	case AlignCenter:
		return 0.5
	case AlignRight:
		return 1
	default:
		return 0
	}
}

// TextNode is a block of styled text sized by the measurer.
type TextNode struct {
	Text  collage.Text
	Align TextAlign
}

// ImageKind says how an image fills its element.
type ImageKind uint8

const (
	// ImagePlain stretches the image to the element.
	ImagePlain ImageKind = iota
	// ImageFitted scales the image to cover the element and crops the rest.
	ImageFitted
	// ImageCropped shows a region of the image at its natural scale.
	ImageCropped
	// ImageTiled repeats the image across the element.
	ImageTiled
)

// ImageNode shows an image.
type ImageNode struct {
	Kind          ImageKind
	Ref           collage.ImageRef
	Width, Height float64
	// Crop is the region shown by ImageCropped, in image pixels.
	Crop collage.Rect
}

// ContainerNode positions a single child inside a box.
type ContainerNode struct {
	Width, Height Value
	Position      Position
	Padding       Insets
	Child         Element
}

// FlowNode lays out children along a direction.
type FlowNode struct {
	Direction Direction
	children  []Element
}

// Children returns a copy of the children.
func (f FlowNode) Children() []Element { return slices.Clone(f.children) }

// Len returns the number of children.
func (f FlowNode) Len() int { return len(f.children) }

func (SpacerNode) isNode()    {}
func (CollageNode) isNode()   {}
func (FormNode) isNode()      {}
func (TextNode) isNode()      {}
func (ImageNode) isNode()     {}
func (ContainerNode) isNode() {}
func (FlowNode) isNode()      {}

// Node returns the content of e.
func (e Element) Node() Node {
	if e.node == nil {
		return SpacerNode{}
	}
	return e.node
}

// aspect returns the natural size of elements that scale uniformly.
func (e Element) aspect() (w, h float64, ok bool) {
	switch n := e.node.(type) {
	case ImageNode:
		return n.Width, n.Height, n.Width > 0 && n.Height > 0
	case CollageNode:
		return n.Width, n.Height, n.Width > 0 && n.Height > 0
	}
	return 0, 0, false
}

// WithWidth returns e with its width overridden. Images and collages keep
// their aspect ratio unless their height was overridden too.
func (e Element) WithWidth(w float64) (Element, error) {
	if err := collage.CheckNonNegative("width", w); err != nil {
		return Element{}, err
	}
	if nw, nh, ok := e.aspect(); ok && !e.props.hasHeight {
		e.props.height, e.props.hasHeight = nh/nw*w, true
	}
	e.props.width, e.props.hasWidth = w, true
	return e, nil
}

// WithHeight returns e with its height overridden. Images and collages
// keep their aspect ratio unless their width was overridden too.
func (e Element) WithHeight(h float64) (Element, error) {
	if err := collage.CheckNonNegative("height", h); err != nil {
		return Element{}, err
	}
	if nw, nh, ok := e.aspect(); ok && !e.props.hasWidth {
		e.props.width, e.props.hasWidth = nw/nh*h, true
	}
	e.props.height, e.props.hasHeight = h, true
	return e, nil
}

// WithSize returns e with both dimensions overridden.
func (e Element) WithSize(w, h float64) (Element, error) {
	if err := collage.CheckNonNegative("width", w); err != nil {
		return Element{}, err
	}
	if err := collage.CheckNonNegative("height", h); err != nil {
		return Element{}, err
	}
	e.props.width, e.props.hasWidth = w, true
	e.props.height, e.props.hasHeight = h, true
	return e, nil
}

// WithOpacity returns e with its opacity multiplied by a, clamped to [0, 1].
func (e Element) WithOpacity(a float64) Element {
	e.props.opacity = collage.Clamp01(e.Opacity() * collage.Clamp01(a))
	e.props.hasOpacity = true
	return e
}

// WithColor returns e with a background color.
func (e Element) WithColor(c collage.RGBA) Element {
	e.props.color = collage.RGBA2(c.R, c.G, c.B, c.A)
	e.props.hasColor = true
	return e
}

// WithCrossAlign returns e aligned at fraction f of the free cross-axis
// space when it is a child of a Flow. 0 is the start (top or left), 1 the
// end. Layered flows apply f on both axes.
func (e Element) WithCrossAlign(f float64) (Element, error) {
	if err := collage.CheckFraction("crossAlign", f); err != nil {
		return Element{}, err
	}
	e.props.crossAlign = f
	return e, nil
}

// WithTag returns e with an identifier that is carried to its Box.
func (e Element) WithTag(tag string) Element {
	e.props.tag = tag
	return e
}

// Opacity returns the element's opacity.
func (e Element) Opacity() float64 {
	if !e.props.hasOpacity {
		return 1
	}
	return e.props.opacity
}

// Color returns the background color, if set.
func (e Element) Color() (collage.RGBA, bool) { return e.props.color, e.props.hasColor }

// CrossAlign returns the cross-axis alignment fraction.
func (e Element) CrossAlign() float64 { return e.props.crossAlign }

// Tag returns the element's identifier.
func (e Element) Tag() string { return e.props.tag }

// Must returns e, or panics if err is not nil.
func Must(e Element, err error) Element {
	if err != nil {
		panic(err)
	}
	return e
}
