package collage

import (
	"image/color"
	"math"
)

// RGBA represents a color with red, green, blue, and alpha components.
// Each component is in the range [0, 1]; constructors clamp out-of-range
// input instead of rejecting it. Components are not premultiplied.
type RGBA struct {
	R, G, B, A float64
}

// Color converts RGBA to the standard color.Color interface.
func (c RGBA) Color() color.Color {
	return color.NRGBA{
		R: uint8(math.Round(clamp01(c.R) * 255)),
		G: uint8(math.Round(clamp01(c.G) * 255)),
		B: uint8(math.Round(clamp01(c.B) * 255)),
		A: uint8(math.Round(clamp01(c.A) * 255)),
	}
}

// FromColor converts a standard color.Color to RGBA.
func FromColor(c color.Color) RGBA {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return RGB8(n.R, n.G, n.B, float64(n.A)/255)
}

// RGB creates an opaque color from RGB components.
func RGB(r, g, b float64) RGBA {
	return RGBA2(r, g, b, 1)
}

// RGBA2 creates a color from RGBA components, clamping each to [0, 1].
func RGBA2(r, g, b, a float64) RGBA {
	return RGBA{R: clamp01(r), G: clamp01(g), B: clamp01(b), A: clamp01(a)}
}

// RGB8 creates a color from 8-bit channels and a [0, 1] alpha.
func RGB8(r, g, b uint8, a float64) RGBA {
	return RGBA2(float64(r)/255, float64(g)/255, float64(b)/255, a)
}

// Hex creates a color from a hex string.
// Supports formats: "RGB", "RGBA", "RRGGBB", "RRGGBBAA", with or without '#'.
// Malformed input yields opaque black.
func Hex(hex string) RGBA {
	if hex != "" && hex[0] == '#' {
		hex = hex[1:]
	}

	var r, g, b uint32
	a := uint32(255)

	switch len(hex) {
	case 3:
		parseHex(hex[0:1], &r)
		parseHex(hex[1:2], &g)
		parseHex(hex[2:3], &b)
		r, g, b = r*17, g*17, b*17
	case 4:
		parseHex(hex[0:1], &r)
		parseHex(hex[1:2], &g)
		parseHex(hex[2:3], &b)
		parseHex(hex[3:4], &a)
		r, g, b, a = r*17, g*17, b*17, a*17
	case 6:
		parseHex(hex[0:2], &r)
		parseHex(hex[2:4], &g)
		parseHex(hex[4:6], &b)
	case 8:
		parseHex(hex[0:2], &r)
		parseHex(hex[2:4], &g)
		parseHex(hex[4:6], &b)
		parseHex(hex[6:8], &a)
	default:
		return Black
	}

	return RGBA{
		R: float64(r) / 255,
		G: float64(g) / 255,
		B: float64(b) / 255,
		A: float64(a) / 255,
	}
}

func parseHex(s string, val *uint32) {
	*val = 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		*val *= 16
		switch {
		case '0' <= c && c <= '9':
			*val += uint32(c - '0')
		case 'a' <= c && c <= 'f':
			*val += uint32(c - 'a' + 10)
		case 'A' <= c && c <= 'F':
			*val += uint32(c - 'A' + 10)
		default:
			return
		}
	}
}

// HSL creates an opaque color from hue (radians), saturation and lightness.
func HSL(hue, saturation, lightness float64) RGBA {
	return HSLA(hue, saturation, lightness, 1)
}

// HSLA creates a color from hue (radians), saturation, lightness and alpha.
// The hue wraps around a full turn; the other components are clamped.
func HSLA(hue, saturation, lightness, alpha float64) RGBA {
	r, g, b := hslToRGB(normalizeHue(hue), clamp01(saturation), clamp01(lightness))
	return RGBA2(r, g, b, alpha)
}

// Grayscale produces a gray: 0 is white and 1 is black.
func Grayscale(p float64) RGBA {
	return HSL(0, 0, 1-clamp01(p))
}

// HSLAComponents holds a color in hue/saturation/lightness form.
// Hue is in radians in [0, 2π).
type HSLAComponents struct {
	Hue, Saturation, Lightness, Alpha float64
}

// ToHSL returns c in HSL form.
func (c RGBA) ToHSL() HSLAComponents {
	h, s, l := rgbToHSL(c.R, c.G, c.B)
	return HSLAComponents{Hue: h, Saturation: s, Lightness: l, Alpha: c.A}
}

// Complement returns the complementary color: the hue rotated by 180°.
func (c RGBA) Complement() RGBA {
	hsl := c.ToHSL()
	return HSLA(hsl.Hue+math.Pi, hsl.Saturation, hsl.Lightness, c.A)
}

// WithAlpha returns c with its alpha replaced.
func (c RGBA) WithAlpha(a float64) RGBA {
	c.A = clamp01(a)
	return c
}

// MulAlpha returns c with its alpha multiplied by a.
func (c RGBA) MulAlpha(a float64) RGBA {
	c.A = clamp01(c.A * a)
	return c
}

// Lerp performs linear interpolation between two colors.
func (c RGBA) Lerp(other RGBA, t float64) RGBA {
	return RGBA{
		R: c.R + (other.R-c.R)*t,
		G: c.G + (other.G-c.G)*t,
		B: c.B + (other.B-c.B)*t,
		A: c.A + (other.A-c.A)*t,
	}
}

func normalizeHue(h float64) float64 {
	h = math.Mod(h, 2*math.Pi)
	if h < 0 {
		h += 2 * math.Pi
	}
	return h
}

func rgbToHSL(r, g, b float64) (h, s, l float64) {
	cMax := max(r, g, b)
	cMin := min(r, g, b)
	c := cMax - cMin
	l = (cMax + cMin) / 2
	if c == 0 {
		return 0, 0, l
	}

	var sector float64
	switch cMax {
	case r:
		sector = math.Mod((g-b)/c, 6)
	case g:
		sector = (b-r)/c + 2
	default:
		sector = (r-g)/c + 4
	}
	h = normalizeHue(sector * math.Pi / 3)
	s = c / (1 - math.Abs(2*l-1))
	return h, s, l
}

func hslToRGB(h, s, l float64) (r, g, b float64) {
	chroma := (1 - math.Abs(2*l-1)) * s
	sector := h / (math.Pi / 3)
	x := chroma * (1 - math.Abs(math.Mod(sector, 2)-1))
	switch {
	case sector < 1:
		r, g, b = chroma, x, 0
	case sector < 2:
		r, g, b = x, chroma, 0
	case sector < 3:
		r, g, b = 0, chroma, x
	case sector < 4:
		r, g, b = 0, x, chroma
	case sector < 5:
		r, g, b = x, 0, chroma
	default:
		r, g, b = chroma, 0, x
	}
	m := l - chroma/2
	return r + m, g + m, b + m
}

// Clamp01 clamps x to the [0, 1] range used by alphas and color channels.
// NaN maps to 0.
func Clamp01(x float64) float64 { return clamp01(x) }

func clamp01(x float64) float64 {
	if !(x > 0) {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}

// Built-in colors from the Tango palette.
var (
	LightRed      = RGB8(239, 41, 41, 1)
	Red           = RGB8(204, 0, 0, 1)
	DarkRed       = RGB8(164, 0, 0, 1)
	LightOrange   = RGB8(252, 175, 62, 1)
	Orange        = RGB8(245, 121, 0, 1)
	DarkOrange    = RGB8(206, 92, 0, 1)
	LightYellow   = RGB8(255, 233, 79, 1)
	Yellow        = RGB8(237, 212, 0, 1)
	DarkYellow    = RGB8(196, 160, 0, 1)
	LightGreen    = RGB8(138, 226, 52, 1)
	Green         = RGB8(115, 210, 22, 1)
	DarkGreen     = RGB8(78, 154, 6, 1)
	LightBlue     = RGB8(114, 159, 207, 1)
	Blue          = RGB8(52, 101, 164, 1)
	DarkBlue      = RGB8(32, 74, 135, 1)
	LightPurple   = RGB8(173, 127, 168, 1)
	Purple        = RGB8(117, 80, 123, 1)
	DarkPurple    = RGB8(92, 53, 102, 1)
	LightBrown    = RGB8(233, 185, 110, 1)
	Brown         = RGB8(193, 125, 17, 1)
	DarkBrown     = RGB8(143, 89, 2, 1)
	LightGray     = RGB8(238, 238, 236, 1)
	Gray          = RGB8(211, 215, 207, 1)
	DarkGray      = RGB8(186, 189, 182, 1)
	LightCharcoal = RGB8(136, 138, 133, 1)
	Charcoal      = RGB8(85, 87, 83, 1)
	DarkCharcoal  = RGB8(46, 52, 54, 1)

	Black       = RGBA{R: 0, G: 0, B: 0, A: 1}
	White       = RGBA{R: 1, G: 1, B: 1, A: 1}
	Transparent = RGBA{}
)
