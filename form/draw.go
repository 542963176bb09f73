package form

import (
	"slices"

	"github.com/gogpu/collage"
)

// Traced strokes a path with the given line style.
func Traced(style collage.LineStyle, p Path) Form {
	return &PathNode{
		node:   newNode(),
		points: slices.Clone(p),
		style:  style.Normalized(),
	}
}

// Line traces the segment from (x1, y1) to (x2, y2).
func Line(style collage.LineStyle, x1, y1, x2, y2 float64) Form {
	return Traced(style, Segment(collage.Pt(x1, y1), collage.Pt(x2, y2)))
}

// Filled fills a shape.
func Filled(fill collage.FillStyle, s Shape) Form {
	return &ShapeNode{
		node:   newNode(),
		points: slices.Clone(s),
		fill:   fill,
	}
}

// FilledColor fills a shape with a solid color.
func FilledColor(c collage.RGBA, s Shape) Form {
	return Filled(collage.Solid(c), s)
}

// Textured fills a shape with a tiled texture.
func Textured(ref collage.TextureRef, s Shape) Form {
	return Filled(collage.Texture(ref), s)
}

// Gradient fills a shape with a gradient. The gradient coordinates are in
// the shape's space.
func Gradient(g collage.Gradient, s Shape) Form {
	return Filled(collage.GradientFill(g), s)
}

// Outlined strokes the outline of a shape without filling it.
func Outlined(style collage.LineStyle, s Shape) Form {
	return FilledOutlined(collage.NoFill(), style, s)
}

// FilledOutlined fills a shape and strokes its outline on top.
func FilledOutlined(fill collage.FillStyle, style collage.LineStyle, s Shape) Form {
	style = style.Normalized()
	return &ShapeNode{
		node:    newNode(),
		points:  slices.Clone(s),
		fill:    fill,
		outline: &style,
	}
}

// Sprite draws the src region of an image at the given size, centered on
// the origin. An empty src means the whole image.
func Sprite(ref collage.ImageRef, src collage.Rect, size collage.Size) Form {
	return &ImageNode{
		node: newNode(),
		ref:  ref,
		src:  src,
		size: collage.Size{Width: max(size.Width, 0), Height: max(size.Height, 0)},
	}
}

// TextForm draws text centered on the origin.
func TextForm(t collage.Text) Form {
	return TextAligned(t, Center)
}

// TextAligned draws text placed horizontally by hint.
func TextAligned(t collage.Text, hint Hint) Form {
	return &TextNode{node: newNode(), text: t, hint: hint}
}

// OutlinedText draws the outline of the glyphs instead of filling them.
func OutlinedText(style collage.LineStyle, t collage.Text) Form {
	style = style.Normalized()
	return &TextNode{node: newNode(), text: t, hint: Center, outline: &style}
}

// Embed draws content laid out elsewhere, centered on the origin. A nil
// content gives a nil Form.
func Embed(c Embedded) Form {
	if c == nil {
		return nil
	}
	return &EmbedNode{node: newNode(), content: c}
}
