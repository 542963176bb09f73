// Package flatten turns form trees and arranged element trees into
// scenes: flat, ordered sequences of primitives with absolute transforms,
// accumulated opacity and resolved styles.
//
// Primitives are emitted in pre-order, children left to right, which is
// back-to-front paint order. Subtrees with zero opacity are kept with
// alpha 0. Paths with fewer than two points and shapes with fewer than
// three distinct points emit nothing. Elements embedded in forms with
// element.ToForm are laid out at their intrinsic size.
//
//	s, err := flatten.Element(page, 800, 600, flatten.WithParallelism(runtime.GOMAXPROCS(0)))
//	if err != nil {
//		return err
//	}
//	return s.Playback(sink)
package flatten

import (
	"log/slog"

	"github.com/gogpu/collage"
	"github.com/gogpu/collage/element"
	"github.com/gogpu/collage/form"
	"github.com/gogpu/collage/scene"
	"golang.org/x/sync/errgroup"
)

// parallelDepth is how deep in the tree sibling subtrees are still
// flattened concurrently. Below it every subtree is flattened on the
// goroutine that reached it.
const parallelDepth = 2

// Form flattens f.
func Form(f form.Form, opts ...Option) *scene.Scene {
	o := resolve(opts)
	fl := flattener{measurer: o.measurer, parallelism: o.parallelism, log: o.logger}
	b := scene.NewBuilder(0)
	if f != nil {
		fl.form(b, f, root(o), 0)
	}
	return fl.finish(b, "form")
}

// Box flattens an arranged element tree. The root box's offset is
// honored.
func Box(box *element.Box, opts ...Option) *scene.Scene {
	o := resolve(opts)
	fl := flattener{measurer: o.measurer, parallelism: o.parallelism, log: o.logger}
	b := scene.NewBuilder(0)
	if box != nil {
		fl.box(b, box, root(o), 0)
	}
	return fl.finish(b, "box")
}

// Element lays e out in a w by h box and flattens the result.
func Element(e element.Element, w, h float64, opts ...Option) (*scene.Scene, error) {
	o := resolve(opts)
	box, err := element.Layout(e, w, h,
		element.WithMeasurer(o.measurer),
		element.WithLogger(o.logger))
	if err != nil {
		return nil, err
	}
	return Box(box, opts...), nil
}

// state is what flattening accumulates on the way down the tree.
type state struct {
	ctm     collage.Matrix
	alpha   float64
	clip    collage.Rect
	clipped bool
}

func root(o options) state {
	return state{ctm: o.transform, alpha: 1}
}

// push composes a child's local transform and opacity.
func (s state) push(local collage.Matrix, alpha float64) state {
	s.ctm = s.ctm.Multiply(local)
	s.alpha *= alpha
	return s
}

// clipTo restricts drawing to r, given in local space. Under rotation the
// clip is the scene-space bounding box of r.
func (s state) clipTo(r collage.Rect) state {
	r = r.Transform(s.ctm)
	if s.clipped {
		r = r.Intersect(s.clip)
	}
	s.clip, s.clipped = r, true
	return s
}

func (s state) primitive(style scene.Style, g scene.Geometry) scene.Primitive {
	return scene.Primitive{
		Transform: s.ctm,
		Alpha:     s.alpha,
		Style:     style,
		Geometry:  g,
		Clip:      s.clip,
		Clipped:   s.clipped,
	}
}

type flattener struct {
	measurer    collage.Measurer
	parallelism int
	log         *slog.Logger
}

func (fl flattener) finish(b *scene.Builder, kind string) *scene.Scene {
	s := b.Scene()
	fl.log.Debug("flatten: scene built",
		"root", kind,
		"primitives", s.Len(),
		"parallelism", fl.parallelism)
	return s
}

// each runs fn for n siblings, concurrently when the tree is still shallow
// enough, and appends their output to b in sibling order.
func (fl flattener) each(b *scene.Builder, n, depth int, fn func(i int, b *scene.Builder)) {
	if fl.parallelism <= 1 || depth >= parallelDepth || n < 2 {
		for i := range n {
			fn(i, b)
		}
		return
	}

	fl.log.Debug("flatten: fan-out", "depth", depth, "subtrees", n, "limit", fl.parallelism)
	parts := make([]*scene.Scene, n)
	var g errgroup.Group
	g.SetLimit(fl.parallelism)
	for i := range n {
		g.Go(func() error {
			sub := scene.NewBuilder(0)
			fn(i, sub)
			parts[i] = sub.Scene()
			return nil
		})
	}
	_ = g.Wait()
	for _, p := range parts {
		b.AddScene(p)
	}
}

func (fl flattener) form(b *scene.Builder, f form.Form, st state, depth int) {
	st = st.push(f.Local(), f.Opacity())
	switch n := f.(type) {
	case *form.PathNode:
		pts := n.Points()
		if !form.Path(pts).Drawable() {
			return
		}
		stroke := fadeLine(n.Style(), st.alpha)
		b.Add(st.primitive(scene.Style{Stroke: &stroke}, scene.Polyline{Points: pts}))
	case *form.ShapeNode:
		pts := n.Points()
		if !form.Shape(pts).Drawable() {
			return
		}
		style := scene.Style{Fill: n.Fill().MulAlpha(st.alpha)}
		if outline, ok := n.Outline(); ok {
			stroke := fadeLine(outline, st.alpha)
			style.Stroke = &stroke
		}
		b.Add(st.primitive(style, scene.Polygon{Points: pts}))
	case *form.TextNode:
		if n.Text().IsEmpty() {
			return
		}
		box, ext := form.TextBox(n, fl.measurer)
		var style scene.Style
		if outline, ok := n.Outline(); ok {
			stroke := fadeLine(outline, st.alpha)
			style.Stroke = &stroke
		}
		st.ctm = st.ctm.Multiply(collage.Translate(box.MinX, box.MinY))
		b.Add(st.primitive(style, scene.Text{
			Text:   n.Text().MulAlpha(st.alpha),
			Extent: ext,
			Align:  hintAlign(n.Hint()),
		}))
	case *form.ImageNode:
		b.Add(st.primitive(scene.Style{}, scene.Image{
			Ref:  n.Ref(),
			Src:  n.Source(),
			Dest: n.Dest(),
			Mode: scene.ImageStretch,
		}))
	case *form.GroupNode:
		fl.each(b, n.Len(), depth, func(i int, b *scene.Builder) {
			fl.form(b, n.At(i), st, depth+1)
		})
	case *form.EmbedNode:
		e, ok := n.Content().(element.Element)
		if !ok {
			return
		}
		m := element.Measure(e, fl.measurer)
		corner := st.push(collage.Translate(-m.Size.Width/2, -m.Size.Height/2), 1)
		fl.box(b, element.Arrange(m, m.Size), corner, depth+1)
	}
}

func (fl flattener) box(b *scene.Builder, box *element.Box, st state, depth int) {
	e := box.Element
	st = st.push(collage.Translate(box.Offset.X, box.Offset.Y), e.Opacity())
	bounds := collage.RectXYWH(0, 0, box.Size.Width, box.Size.Height)

	if bg, ok := e.Color(); ok {
		b.Add(st.primitive(
			scene.Style{Fill: collage.Solid(bg).MulAlpha(st.alpha)},
			scene.Polygon{Points: corners(bounds)}))
	}
	if box.Clip {
		st = st.clipTo(bounds)
	}

	switch n := e.Node().(type) {
	case element.CollageNode:
		forms := n.Forms()
		center := st.push(collage.Translate(box.Size.Width/2, box.Size.Height/2), 1)
		fl.each(b, len(forms), depth, func(i int, b *scene.Builder) {
			fl.form(b, forms[i], center, depth+1)
		})
	case element.FormNode:
		if n.Form != nil {
			fl.form(b, n.Form, st.push(collage.Translate(-box.Content.MinX, -box.Content.MinY), 1), depth+1)
		}
	case element.TextNode:
		if n.Text.IsEmpty() {
			return
		}
		dx := (box.Size.Width - box.Text.Width) * n.Align.Fraction()
		st = st.push(collage.Translate(dx, 0), 1)
		b.Add(st.primitive(scene.Style{}, scene.Text{
			Text:   n.Text.MulAlpha(st.alpha),
			Extent: box.Text,
			Align:  n.Align.Fraction(),
		}))
	case element.ImageNode:
		img := scene.Image{Ref: n.Ref, Dest: bounds}
		switch n.Kind {
		case element.ImageFitted:
			img.Mode = scene.ImageFit
		case element.ImageTiled:
			img.Mode = scene.ImageTile
		case element.ImageCropped:
			img.Src = n.Crop
		}
		b.Add(st.primitive(scene.Style{}, img))
	default:
		fl.each(b, len(box.Children), depth, func(i int, b *scene.Builder) {
			fl.box(b, box.Children[i], st, depth+1)
		})
	}
}

// fadeLine returns a copy of s with its color faded by alpha.
func fadeLine(s collage.LineStyle, alpha float64) collage.LineStyle {
	s = s.Clone()
	s.Color = s.Color.MulAlpha(alpha)
	return s
}

// hintAlign converts a text hint to the alignment of lines in the box.
func hintAlign(h form.Hint) float64 {
	switch h {
	case form.ToLeft:
		return 1
	case form.ToRight:
		return 0
	default:
		return 0.5
	}
}

func corners(r collage.Rect) []collage.Point {
	return []collage.Point{
		{X: r.MinX, Y: r.MinY},
		{X: r.MaxX, Y: r.MinY},
		{X: r.MaxX, Y: r.MaxY},
		{X: r.MinX, Y: r.MaxY},
	}
}
