// Package form is the vector drawing algebra: immutable trees of paths,
// shapes, text, images and groups, each carrying a local transform and
// alpha.
//
// Forms are built from shapes and paths by styling them, then arranged
// with the transform combinators:
//
//	square := form.Filled(collage.Solid(collage.Blue), form.Square(40))
//	f := form.Group(
//	    form.Move(-30, 0, square),
//	    form.Rotate(collage.Degrees(45), form.Move(30, 0, square)),
//	)
//
// Coordinates are y-down and rotations turn +x towards +y.
// Every combinator returns a new Form and leaves its arguments untouched.
package form

import (
	"slices"

	"github.com/gogpu/collage"
)

// Form is a node of a drawing. The set of implementations is closed:
// *PathNode, *ShapeNode, *TextNode, *ImageNode, *EmbedNode and *GroupNode.
type Form interface {
	// Local returns the transform from the node's space to its parent's.
	Local() collage.Matrix
	// Opacity returns the node's alpha in [0, 1], applied to the whole
	// subtree.
	Opacity() float64

	// with returns a shallow copy of the node carrying n.
	with(n node) Form
	attrs() node
}

// node holds the attributes every variant shares.
type node struct {
	local collage.Matrix
	alpha float64
}

func newNode() node {
	return node{local: collage.Identity(), alpha: 1}
}

func (n node) Local() collage.Matrix { return n.local }
func (n node) Opacity() float64      { return n.alpha }
func (n node) attrs() node           { return n }

// PathNode strokes an open polyline.
type PathNode struct {
	node
	points []collage.Point
	style  collage.LineStyle
}

// Points returns a copy of the polyline vertices.
func (p *PathNode) Points() []collage.Point { return slices.Clone(p.points) }

// Style returns the stroke style.
func (p *PathNode) Style() collage.LineStyle { return p.style.Clone() }

func (p *PathNode) with(n node) Form {
	c := *p
	c.node = n
	return &c
}

// ShapeNode fills a closed polygon and optionally strokes its outline.
type ShapeNode struct {
	node
	points  []collage.Point
	fill    collage.FillStyle
	outline *collage.LineStyle
}

// Points returns a copy of the polygon vertices.
func (s *ShapeNode) Points() []collage.Point { return slices.Clone(s.points) }

// Fill returns the fill style.
func (s *ShapeNode) Fill() collage.FillStyle { return s.fill }

// Outline returns the outline style, if the shape has one.
func (s *ShapeNode) Outline() (collage.LineStyle, bool) {
	if s.outline == nil {
		return collage.LineStyle{}, false
	}
	return s.outline.Clone(), true
}

func (s *ShapeNode) with(n node) Form {
	c := *s
	c.node = n
	return &c
}

// Hint positions a text form horizontally relative to its origin.
// Text is always centered vertically on the origin.
type Hint uint8

const (
	// Center puts the middle of the text on the origin.
	Center Hint = iota
	// ToLeft ends the text at the origin.
	ToLeft
	// ToRight starts the text at the origin.
	ToRight
)

// String returns the name of the hint.
func (h Hint) String() string {
	switch h {
	case Center:
		return "Center"
	case ToLeft:
		return "ToLeft"
	case ToRight:
		return "ToRight"
	default:
		return "Unknown"
	}
}

// TextNode draws styled text.
type TextNode struct {
	node
	text    collage.Text
	hint    Hint
	outline *collage.LineStyle
}

// Text returns the styled text.
func (t *TextNode) Text() collage.Text { return t.text }

// Hint returns the horizontal placement of the text.
func (t *TextNode) Hint() Hint { return t.hint }

// Outline returns the glyph outline style, if the text is outlined
// instead of filled.
func (t *TextNode) Outline() (collage.LineStyle, bool) {
	if t.outline == nil {
		return collage.LineStyle{}, false
	}
	return t.outline.Clone(), true
}

func (t *TextNode) with(n node) Form {
	c := *t
	c.node = n
	return &c
}

// ImageNode draws a region of an image, centered on the origin.
type ImageNode struct {
	node
	ref  collage.ImageRef
	src  collage.Rect
	size collage.Size
}

// Ref returns the image reference.
func (i *ImageNode) Ref() collage.ImageRef { return i.ref }

// Source returns the region of the image in image pixels.
func (i *ImageNode) Source() collage.Rect { return i.src }

// Size returns the size the region is drawn at.
func (i *ImageNode) Size() collage.Size { return i.size }

// Dest returns the rectangle the image covers in the node's space.
func (i *ImageNode) Dest() collage.Rect {
	return collage.RectXYWH(-i.size.Width/2, -i.size.Height/2, i.size.Width, i.size.Height)
}

func (i *ImageNode) with(n node) Form {
	c := *i
	c.node = n
	return &c
}

// Embedded is content laid out outside the form algebra, such as an
// element.
type Embedded interface {
	// Size returns the intrinsic size of the content, with text measured
	// by m.
	Size(m collage.Measurer) collage.Size
}

// EmbedNode draws embedded content with its center on the origin.
type EmbedNode struct {
	node
	content Embedded
}

// Content returns the embedded content.
func (e *EmbedNode) Content() Embedded { return e.content }

// Box returns the rectangle the content covers in the node's space.
func (e *EmbedNode) Box(m collage.Measurer) collage.Rect {
	size := e.content.Size(m)
	return collage.RectXYWH(-size.Width/2, -size.Height/2, size.Width, size.Height)
}

func (e *EmbedNode) with(n node) Form {
	c := *e
	c.node = n
	return &c
}

// GroupNode paints its children in order, later children over earlier.
type GroupNode struct {
	node
	forms []Form
}

// Forms returns a copy of the children.
func (g *GroupNode) Forms() []Form { return slices.Clone(g.forms) }

// Len returns the number of children.
func (g *GroupNode) Len() int { return len(g.forms) }

// At returns the i-th child.
func (g *GroupNode) At(i int) Form { return g.forms[i] }

func (g *GroupNode) with(n node) Form {
	c := *g
	c.node = n
	return &c
}
