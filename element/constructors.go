package element

import (
	"github.com/gogpu/collage"
	"github.com/gogpu/collage/form"
)

// Spacer returns an empty element of the given size.
func Spacer(w, h float64) (Element, error) {
	if err := checkSize(w, h); err != nil {
		return Element{}, err
	}
	return newElement(SpacerNode{Width: w, Height: h}), nil
}

// Empty returns a 0x0 spacer.
func Empty() Element {
	return newElement(SpacerNode{})
}

// Collage returns a w by h element that draws forms with the origin at its
// center. Nil forms are skipped.
func Collage(w, h float64, forms ...form.Form) (Element, error) {
	if err := checkSize(w, h); err != nil {
		return Element{}, err
	}
	kept := make([]form.Form, 0, len(forms))
	for _, f := range forms {
		if f != nil {
			kept = append(kept, f)
		}
	}
	return newElement(CollageNode{Width: w, Height: h, forms: kept}), nil
}

// FromForm returns an element sized to the bounding box of f. A form that
// draws nothing gives a 0x0 element.
func FromForm(f form.Form) Element {
	return newElement(FormNode{Form: f})
}

// ToForm returns a form that draws e at its intrinsic size, centered on
// the origin. The form can be moved, rotated and faded like any other.
func ToForm(e Element) form.Form {
	return form.Embed(e)
}

// TextElement returns left-aligned text.
func TextElement(t collage.Text) Element {
	return LeftAligned(t)
}

// LeftAligned returns text with every line starting at the left edge.
func LeftAligned(t collage.Text) Element {
	return newElement(TextNode{Text: t, Align: AlignLeft})
}

// RightAligned returns text with every line ending at the right edge.
func RightAligned(t collage.Text) Element {
	return newElement(TextNode{Text: t, Align: AlignRight})
}

// Centered returns text with centered lines.
func Centered(t collage.Text) Element {
	return newElement(TextNode{Text: t, Align: AlignCenter})
}

// Image returns a w by h element that stretches the image to fit.
func Image(w, h float64, ref collage.ImageRef) (Element, error) {
	return image(ImagePlain, w, h, ref, collage.Rect{})
}

// FittedImage returns a w by h element covered by the image, scaled
// uniformly and cropped to the element.
func FittedImage(w, h float64, ref collage.ImageRef) (Element, error) {
	return image(ImageFitted, w, h, ref, collage.Rect{})
}

// TiledImage returns a w by h element filled with copies of the image.
func TiledImage(w, h float64, ref collage.ImageRef) (Element, error) {
	return image(ImageTiled, w, h, ref, collage.Rect{})
}

// CroppedImage returns a w by h element showing the region of the image
// whose top-left corner is at (x, y).
func CroppedImage(x, y, w, h float64, ref collage.ImageRef) (Element, error) {
	if err := collage.CheckNonNegative("crop.x", x); err != nil {
		return Element{}, err
	}
	if err := collage.CheckNonNegative("crop.y", y); err != nil {
		return Element{}, err
	}
	return image(ImageCropped, w, h, ref, collage.RectXYWH(x, y, w, h))
}

func image(kind ImageKind, w, h float64, ref collage.ImageRef, crop collage.Rect) (Element, error) {
	if err := checkSize(w, h); err != nil {
		return Element{}, err
	}
	return newElement(ImageNode{Kind: kind, Ref: ref, Width: w, Height: h, Crop: crop}), nil
}

// ContainerOption configures a container.
type ContainerOption func(*ContainerNode)

// WithPadding sets the space between the container's edges and the area
// its child is aligned in.
func WithPadding(p Insets) ContainerOption {
	return func(c *ContainerNode) {
		c.Padding = p
	}
}

// Container returns an element of the requested size with child placed at
// pos. An Auto axis takes the child's size plus padding. A child larger
// than a fixed axis overflows and is clipped to the container.
func Container(w, h Value, pos Position, child Element, opts ...ContainerOption) (Element, error) {
	c := ContainerNode{Width: w, Height: h, Position: pos, Child: child}
	for _, opt := range opts {
		opt(&c)
	}
	if err := w.check("width"); err != nil {
		return Element{}, err
	}
	if err := h.check("height"); err != nil {
		return Element{}, err
	}
	if err := c.Padding.check(); err != nil {
		return Element{}, err
	}
	return newElement(c), nil
}

// Flow returns children laid out edge to edge in direction dir, or
// stacked for Inward and Outward.
func Flow(dir Direction, children ...Element) Element {
	return newElement(FlowNode{Direction: dir, children: append([]Element(nil), children...)})
}

// Above returns a with b below it.
func Above(a, b Element) Element { return Flow(Down, a, b) }

// Below returns a with b above it.
func Below(a, b Element) Element { return Flow(Down, b, a) }

// Beside returns a with b to its right.
func Beside(a, b Element) Element { return Flow(Right, a, b) }

// Layers stacks children with the first at the back.
func Layers(children ...Element) Element { return Flow(Outward, children...) }

func checkSize(w, h float64) error {
	if err := collage.CheckNonNegative("width", w); err != nil {
		return err
	}
	return collage.CheckNonNegative("height", h)
}
