package collage

import (
	"image/color"
	"math"
	"testing"
)

func colorsEqual(c1, c2 RGBA, epsilon float64) bool {
	return math.Abs(c1.R-c2.R) < epsilon &&
		math.Abs(c1.G-c2.G) < epsilon &&
		math.Abs(c1.B-c2.B) < epsilon &&
		math.Abs(c1.A-c2.A) < epsilon
}

func TestRGBA_Color(t *testing.T) {
	tests := []struct {
		name string
		c    RGBA
		want color.NRGBA
	}{
		{"opaque black", Black, color.NRGBA{A: 255}},
		{"opaque white", White, color.NRGBA{R: 255, G: 255, B: 255, A: 255}},
		{"tango red", Red, color.NRGBA{R: 204, A: 255}},
		{"transparent", Transparent, color.NRGBA{}},
		{"half blue", RGBA{B: 1, A: 0.5}, color.NRGBA{B: 255, A: 128}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.c.Color(); got != tt.want {
				t.Errorf("Color() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFromColorRoundTrip(t *testing.T) {
	for _, c := range []RGBA{Black, White, Orange, DarkPurple, Charcoal} {
		if got := FromColor(c.Color()); !colorsEqual(got, c, 1e-9) {
			t.Errorf("FromColor(%v.Color()) = %v", c, got)
		}
	}
}

func TestConstructorsClamp(t *testing.T) {
	tests := []struct {
		name string
		got  RGBA
		want RGBA
	}{
		{"RGB above one", RGB(2, 0.5, -1), RGBA{R: 1, G: 0.5, B: 0, A: 1}},
		{"RGBA2 alpha", RGBA2(0, 0, 0, 7), Black},
		{"RGBA2 NaN", RGBA2(math.NaN(), 0, 0, 1), Black},
		{"WithAlpha", Red.WithAlpha(-3), Red.WithAlpha(0)},
		{"MulAlpha", White.MulAlpha(0.25), RGBA{R: 1, G: 1, B: 1, A: 0.25}},
		{"MulAlpha above one", White.MulAlpha(4), White},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !colorsEqual(tt.got, tt.want, 1e-12) {
				t.Errorf("got %v, want %v", tt.got, tt.want)
			}
		})
	}
}

func TestHex(t *testing.T) {
	tests := []struct {
		in   string
		want RGBA
	}{
		{"#fff", White},
		{"000", Black},
		{"#ff000080", RGBA{R: 1, A: 128.0 / 255}},
		{"00FF00", RGBA{G: 1, A: 1}},
		{"#f008", RGBA{R: 1, A: 136.0 / 255}},
		{"bogus", Black},
		{"", Black},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := Hex(tt.in); !colorsEqual(got, tt.want, 1e-9) {
				t.Errorf("Hex(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestHSL(t *testing.T) {
	tests := []struct {
		name string
		got  RGBA
		want RGBA
	}{
		{"red", HSL(0, 1, 0.5), RGBA{R: 1, A: 1}},
		{"green", HSL(Degrees(120), 1, 0.5), RGBA{G: 1, A: 1}},
		{"blue wraps", HSL(Degrees(240)+Turns(3), 1, 0.5), RGBA{B: 1, A: 1}},
		{"negative hue", HSL(Degrees(-120), 1, 0.5), RGBA{B: 1, A: 1}},
		{"gray", HSL(1, 0, 0.5), RGBA{R: 0.5, G: 0.5, B: 0.5, A: 1}},
		{"alpha", HSLA(0, 1, 0.5, 0.3), RGBA{R: 1, A: 0.3}},
		{"grayscale 0 is white", Grayscale(0), White},
		{"grayscale 1 is black", Grayscale(1), Black},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !colorsEqual(tt.got, tt.want, 1e-9) {
				t.Errorf("got %v, want %v", tt.got, tt.want)
			}
		})
	}
}

func TestToHSLRoundTrip(t *testing.T) {
	for _, c := range []RGBA{Red, LightOrange, Yellow, Green, Blue, Purple, Brown, Gray} {
		hsl := c.ToHSL()
		got := HSLA(hsl.Hue, hsl.Saturation, hsl.Lightness, hsl.Alpha)
		if !colorsEqual(got, c, 1e-9) {
			t.Errorf("HSL round trip of %v = %v", c, got)
		}
	}
}

func TestComplement(t *testing.T) {
	if got := RGB(1, 0, 0).Complement(); !colorsEqual(got, RGB(0, 1, 1), 1e-9) {
		t.Errorf("Complement(red) = %v, want cyan", got)
	}
	c := Orange.WithAlpha(0.4)
	if got := c.Complement().Complement(); !colorsEqual(got, c, 1e-9) {
		t.Errorf("double complement = %v, want %v", got, c)
	}
}

func TestLerp(t *testing.T) {
	got := Black.Lerp(White, 0.5)
	if !colorsEqual(got, RGBA{R: 0.5, G: 0.5, B: 0.5, A: 1}, 1e-12) {
		t.Errorf("Lerp = %v", got)
	}
}

func TestClamp01(t *testing.T) {
	for in, want := range map[float64]float64{-1: 0, 0: 0, 0.3: 0.3, 1: 1, 5: 1, math.Inf(1): 1, math.Inf(-1): 0} {
		if got := Clamp01(in); got != want {
			t.Errorf("Clamp01(%v) = %v, want %v", in, got, want)
		}
	}
	if Clamp01(math.NaN()) != 0 {
		t.Error("Clamp01(NaN) should be 0")
	}
}
