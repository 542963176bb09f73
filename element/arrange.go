package element

import (
	"log/slog"
	"slices"

	"github.com/gogpu/collage"
	"github.com/gogpu/collage/text"
)

// Box is an arranged element. Offset is relative to the parent box's
// top-left corner. Children are in paint order, back to front.
type Box struct {
	Element  Element
	Offset   collage.Point
	Size     collage.Size
	Children []*Box

	// Clip is set when the box restricts its contents to its own rectangle:
	// collages always, containers whose child overflows.
	Clip bool

	// Content is the bounding box of a FormNode's form in form space.
	Content collage.Rect
	// Text is the measured extent of a TextNode.
	Text collage.Extent
}

// Rect returns the box in its parent's coordinates.
func (b *Box) Rect() collage.Rect {
	return collage.RectXYWH(b.Offset.X, b.Offset.Y, b.Size.Width, b.Size.Height)
}

// Walk calls fn for b and every descendant in paint order, passing the
// absolute offset of each box. Walk stops descending into a box when fn
// returns false.
func (b *Box) Walk(fn func(b *Box, origin collage.Point) bool) {
	b.walk(collage.Point{}, fn)
}

func (b *Box) walk(parent collage.Point, fn func(*Box, collage.Point) bool) {
	origin := parent.Add(b.Offset)
	if !fn(b, origin) {
		return
	}
	for _, c := range b.Children {
		c.walk(origin, fn)
	}
}

// Option configures Layout.
type Option func(*options)

type options struct {
	measurer collage.Measurer
	logger   *slog.Logger
}

// WithMeasurer sets the text measurer. The default is text.Default().
func WithMeasurer(m collage.Measurer) Option {
	return func(o *options) {
		o.measurer = m
	}
}

// WithLogger sets the logger for layout diagnostics. The default is
// collage.Logger().
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

// Layout measures e and arranges it into a w by h box at the origin.
func Layout(e Element, w, h float64, opts ...Option) (*Box, error) {
	if err := checkSize(w, h); err != nil {
		return nil, err
	}
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	if o.measurer == nil {
		o.measurer = text.Default()
	}
	if o.logger == nil {
		o.logger = collage.Logger()
	}
	a := arranger{log: o.logger}
	return a.arrange(Measure(e, o.measurer), collage.Point{}, collage.Sz(w, h)), nil
}

// Arrange places a measured tree into a box of the given size at the
// origin. Arrange is pure: the same input always gives an identical tree.
func Arrange(m *Measured, size collage.Size) *Box {
	a := arranger{log: collage.Logger()}
	return a.arrange(m, collage.Point{}, size)
}

type arranger struct {
	log *slog.Logger
}

func (a arranger) arrange(m *Measured, off collage.Point, size collage.Size) *Box {
	b := &Box{
		Element: m.Element,
		Offset:  off,
		Size:    size,
		Content: m.Content,
		Text:    m.Text,
	}
	switch n := m.Element.Node().(type) {
	case CollageNode:
		b.Clip = true
	case ContainerNode:
		child := m.Children[0]
		pos := n.Position.place(size, child.Size, n.Padding)
		b.Children = []*Box{a.arrange(child, pos, child.Size)}
		if overflows(pos, child.Size, size) {
			b.Clip = true
			a.log.Debug("element: container child overflows",
				"tag", m.Element.Tag(),
				"box", size,
				"child", child.Size,
				"at", pos)
		}
	case FlowNode:
		b.Children = a.flow(n.Direction, m.Children, size)
	}
	return b
}

// flow places children edge to edge along dir, or stacked for layers.
func (a arranger) flow(dir Direction, children []*Measured, size collage.Size) []*Box {
	boxes := make([]*Box, len(children))
	var cursor float64
	switch dir {
	case Left:
		cursor = size.Width
	case Up:
		cursor = size.Height
	}
	for i, c := range children {
		cs := c.Size
		ca := c.Element.CrossAlign()
		var pos collage.Point
		switch dir {
		case Right:
			pos = collage.Pt(cursor, (size.Height-cs.Height)*ca)
			cursor += cs.Width
		case Left:
			cursor -= cs.Width
			pos = collage.Pt(cursor, (size.Height-cs.Height)*ca)
		case Down:
			pos = collage.Pt((size.Width-cs.Width)*ca, cursor)
			cursor += cs.Height
		case Up:
			cursor -= cs.Height
			pos = collage.Pt((size.Width-cs.Width)*ca, cursor)
		default:
			pos = collage.Pt((size.Width-cs.Width)*ca, (size.Height-cs.Height)*ca)
		}
		boxes[i] = a.arrange(c, pos, cs)
	}
	if dir == Inward {
		slices.Reverse(boxes)
	}
	return boxes
}

func overflows(pos collage.Point, child, box collage.Size) bool {
	const eps = collage.Epsilon
	return pos.X < -eps || pos.Y < -eps ||
		pos.X+child.Width > box.Width+eps ||
		pos.Y+child.Height > box.Height+eps
}
