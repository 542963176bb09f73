package collage

// ImageRef is an opaque handle to an image, resolved by the renderer's
// asset collaborator.
type ImageRef string

// TextureRef is an opaque handle to a texture tiled across a shape.
type TextureRef string

// FillKind identifies the variant of a FillStyle.
type FillKind uint8

const (
	// FillNone paints nothing.
	FillNone FillKind = iota
	// FillSolid paints a single color.
	FillSolid
	// FillGradient paints a gradient.
	FillGradient
	// FillTexture tiles a texture.
	FillTexture
)

// String returns the name of the fill kind.
func (k FillKind) String() string {
	switch k {
	case FillNone:
		return "None"
	case FillSolid:
		return "Solid"
	case FillGradient:
		return "Gradient"
	case FillTexture:
		return "Texture"
	default:
		return "Unknown"
	}
}

// FillStyle is the closed variant {None, Solid, Gradient, Texture}.
// Only the field matching Kind is meaningful. The zero value is FillNone.
type FillStyle struct {
	kind     FillKind
	color    RGBA
	gradient Gradient
	texture  TextureRef
}

// NoFill returns the empty fill.
func NoFill() FillStyle { return FillStyle{} }

// Solid returns a single-color fill.
func Solid(c RGBA) FillStyle {
	return FillStyle{kind: FillSolid, color: RGBA2(c.R, c.G, c.B, c.A)}
}

// GradientFill returns a gradient fill.
func GradientFill(g Gradient) FillStyle {
	return FillStyle{kind: FillGradient, gradient: g}
}

// Texture returns a fill that tiles the referenced texture.
func Texture(ref TextureRef) FillStyle {
	return FillStyle{kind: FillTexture, texture: ref}
}

// Kind returns the variant of f.
func (f FillStyle) Kind() FillKind { return f.kind }

// Color returns the color of a solid fill.
func (f FillStyle) Color() (RGBA, bool) { return f.color, f.kind == FillSolid }

// Gradient returns the gradient of a gradient fill.
func (f FillStyle) Gradient() (Gradient, bool) { return f.gradient, f.kind == FillGradient }

// Texture returns the texture reference of a texture fill.
func (f FillStyle) Texture() (TextureRef, bool) { return f.texture, f.kind == FillTexture }

// MulAlpha returns f with its colors' alpha multiplied by a.
// Textures carry no color; their alpha is applied by the primitive.
func (f FillStyle) MulAlpha(a float64) FillStyle {
	switch f.kind {
	case FillSolid:
		f.color = f.color.MulAlpha(a)
	case FillGradient:
		f.gradient = f.gradient.MulAlpha(a)
	}
	return f
}

// Equal reports whether two fills paint identically.
func (f FillStyle) Equal(o FillStyle) bool {
	if f.kind != o.kind {
		return false
	}
	switch f.kind {
	case FillSolid:
		return f.color == o.color
	case FillGradient:
		return f.gradient.Equal(o.gradient)
	case FillTexture:
		return f.texture == o.texture
	default:
		return true
	}
}
