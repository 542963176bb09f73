package text

import (
	"bytes"
	"errors"
	"log/slog"
	"math"
	"strings"
	"testing"

	"github.com/gogpu/collage"
	"golang.org/x/image/font/gofont/goregular"
)

// loadTestFont loads the embedded Go font.
func loadTestFont(t *testing.T) *FontSource {
	t.Helper()

	source, err := NewFontSource(goregular.TTF)
	if err != nil {
		t.Fatalf("failed to load test font: %v", err)
	}
	return source
}

func newTestMeasurer(t *testing.T, opts ...MeasurerOption) *Measurer {
	t.Helper()

	m, err := NewMeasurer(opts...)
	if err != nil {
		t.Fatalf("NewMeasurer() error = %v", err)
	}
	return m
}

func TestFontSourceErrors(t *testing.T) {
	if _, err := NewFontSource(nil); !errors.Is(err, ErrEmptyFontData) {
		t.Errorf("NewFontSource(nil) error = %v, want ErrEmptyFontData", err)
	}
	if _, err := NewFontSource([]byte("not a font")); err == nil {
		t.Error("NewFontSource(garbage) succeeded, want error")
	}
	if _, err := NewFontSource(goregular.TTF, WithParser("missing")); !errors.Is(err, ErrUnknownParser) {
		t.Errorf("WithParser(missing) error = %v, want ErrUnknownParser", err)
	}
}

func TestFontSourceName(t *testing.T) {
	source := loadTestFont(t)
	if source.Name() == "" {
		t.Error("Name() is empty")
	}
}

func TestFaceMetrics(t *testing.T) {
	source := loadTestFont(t)

	tests := []struct {
		name string
		size float64
	}{
		{"size 12", 12},
		{"size 16", 16},
		{"size 48", 48},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := source.Face(tt.size).Metrics()
			if m.Ascent <= 0 {
				t.Errorf("Ascent should be positive, got %f", m.Ascent)
			}
			if m.Descent <= 0 {
				t.Errorf("Descent should be positive, got %f", m.Descent)
			}
			if m.LineGap < 0 {
				t.Errorf("LineGap should be non-negative, got %f", m.LineGap)
			}
			if got, want := m.BoxHeight(1), m.Ascent+m.Descent; got != want {
				t.Errorf("BoxHeight(1) = %f, want %f", got, want)
			}
			if got, want := m.BoxHeight(3), m.Ascent+m.Descent+2*m.LineHeight(); math.Abs(got-want) > 1e-9 {
				t.Errorf("BoxHeight(3) = %f, want %f", got, want)
			}
		})
	}
}

func TestFaceAdvance(t *testing.T) {
	source := loadTestFont(t)
	face := source.Face(16)

	if got := face.Advance(""); got != 0 {
		t.Errorf("Advance(\"\") = %f, want 0", got)
	}
	short, long := face.Advance("Hello"), face.Advance("Hello, world")
	if short <= 0 || long <= short {
		t.Errorf("Advance(Hello) = %f, Advance(Hello, world) = %f; want 0 < short < long", short, long)
	}
	if !face.HasGlyph('A') {
		t.Error("HasGlyph('A') = false")
	}
}

func TestMeasureScalesWithSize(t *testing.T) {
	m := newTestMeasurer(t)

	small := m.Measure("Scaling", collage.Font{Size: 16})
	large := m.Measure("Scaling", collage.Font{Size: 32})

	ratio := large.Width / small.Width
	if math.Abs(ratio-2) > 0.05 {
		t.Errorf("width ratio 32/16 = %f, want about 2", ratio)
	}
	if large.Height <= small.Height {
		t.Errorf("height at 32 (%f) should exceed height at 16 (%f)", large.Height, small.Height)
	}
}

func TestMeasureDefaultSize(t *testing.T) {
	m := newTestMeasurer(t)

	zero := m.Measure("abc", collage.Font{})
	def := m.Measure("abc", collage.Font{Size: collage.DefaultTextHeight})
	if zero != def {
		t.Errorf("Measure with size 0 = %+v, want default size %+v", zero, def)
	}
}

func TestMeasureEmpty(t *testing.T) {
	m := newTestMeasurer(t)

	ext := m.Measure("", collage.Font{Size: 16})
	if ext.Width != 0 {
		t.Errorf("empty Width = %f, want 0", ext.Width)
	}
	if ext.Height <= 0 || ext.Baseline <= 0 {
		t.Errorf("empty extent = %+v, want positive height and baseline", ext)
	}
}

func TestMeasureMultiline(t *testing.T) {
	m := newTestMeasurer(t)
	f := collage.Font{Size: 16}

	one := m.Measure("wide line here", f)
	two := m.Measure("wide line here\nshort", f)

	if two.Width != one.Width {
		t.Errorf("multiline Width = %f, want widest line %f", two.Width, one.Width)
	}
	metrics := m.Face(f).Metrics()
	if math.Abs(two.Height-metrics.BoxHeight(2)) > 1e-9 {
		t.Errorf("multiline Height = %f, want %f", two.Height, metrics.BoxHeight(2))
	}
	if two.Baseline != one.Baseline {
		t.Errorf("multiline Baseline = %f, want %f", two.Baseline, one.Baseline)
	}
}

func TestMeasureMonospace(t *testing.T) {
	m := newTestMeasurer(t)
	f := collage.Font{Size: 16, Monospace: true}

	narrow := m.Measure("iiii", f)
	wide := m.Measure("MMMM", f)
	if math.Abs(narrow.Width-wide.Width) > 1e-6 {
		t.Errorf("monospace widths differ: iiii=%f MMMM=%f", narrow.Width, wide.Width)
	}
}

func TestMeasureVariants(t *testing.T) {
	m := newTestMeasurer(t)

	fam := m.Family(collage.Font{})
	tests := []struct {
		name         string
		bold, italic bool
		want         *FontSource
	}{
		{"regular", false, false, fam.Regular},
		{"bold", true, false, fam.Bold},
		{"italic", false, true, fam.Italic},
		{"bold italic", true, true, fam.BoldItalic},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			face := m.Face(collage.Font{Size: 12, Bold: tt.bold, Italic: tt.italic})
			if face.Source() != tt.want {
				t.Errorf("Face().Source() = %p, want %p", face.Source(), tt.want)
			}
		})
	}
}

func TestFamilyVariantFallback(t *testing.T) {
	source := loadTestFont(t)
	fam := Family{Regular: source}

	for _, v := range []struct{ bold, italic bool }{{false, false}, {true, false}, {false, true}, {true, true}} {
		if got := fam.Variant(v.bold, v.italic); got != source {
			t.Errorf("Variant(%v, %v) did not fall back to Regular", v.bold, v.italic)
		}
	}
}

func TestMeasureTypefaces(t *testing.T) {
	source := loadTestFont(t)
	custom := Family{Regular: source}
	m := newTestMeasurer(t, WithFamily("Custom Sans", custom))

	if got := m.Family(collage.Font{Typeface: "custom sans"}); got.Regular != source {
		t.Error("typeface lookup should ignore case")
	}

	unknown := m.Measure("fallback", collage.Font{Typeface: "Nope", Size: 16})
	def := m.Measure("fallback", collage.Font{Size: 16})
	if unknown != def {
		t.Errorf("unknown typeface = %+v, want default family %+v", unknown, def)
	}
}

func TestUnknownTypefaceLogged(t *testing.T) {
	orig := collage.Logger()
	t.Cleanup(func() { collage.SetLogger(orig) })
	var buf bytes.Buffer
	collage.SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))

	m := newTestMeasurer(t)
	m.Family(collage.Font{Typeface: "Nope"})
	m.Family(collage.Font{})

	out := buf.String()
	if !strings.Contains(out, "text: unknown typeface, using default family") || !strings.Contains(out, "typeface=Nope") {
		t.Errorf("log output = %q, want the unknown typeface reported", out)
	}
	if n := strings.Count(out, "unknown typeface"); n != 1 {
		t.Errorf("logged %d fallbacks, want 1", n)
	}
}

func TestNewMeasurerErrors(t *testing.T) {
	if _, err := NewMeasurer(WithDefaultFamily("missing")); !errors.Is(err, ErrUnknownTypeface) {
		t.Errorf("WithDefaultFamily(missing) error = %v, want ErrUnknownTypeface", err)
	}
	if _, err := NewMeasurer(WithFamily("broken", Family{})); err == nil {
		t.Error("family without regular variant should fail")
	}
}

func TestMeasureCache(t *testing.T) {
	m := newTestMeasurer(t, WithCacheLimit(8))
	f := collage.Font{Size: 16}

	first := m.Measure("cached", f)
	second := m.Measure("cached", f)
	if first != second {
		t.Errorf("cached extent = %+v, want %+v", second, first)
	}
	stats := m.CacheStats()
	if stats.Hits != 1 || stats.Misses != 1 || stats.Len != 1 {
		t.Errorf("CacheStats() = %+v, want 1 hit, 1 miss, 1 entry", stats)
	}
}

func TestShapersAgree(t *testing.T) {
	source := loadTestFont(t)
	face := source.Face(16)

	builtin := BuiltinShaper{}.Advance("Typography", face, DirectionLTR)
	shaped := NewGoTextShaper().Advance("Typography", face, DirectionLTR)

	if builtin <= 0 || shaped <= 0 {
		t.Fatalf("advances must be positive: builtin=%f shaped=%f", builtin, shaped)
	}
	if math.Abs(builtin-shaped)/builtin > 0.1 {
		t.Errorf("builtin advance %f and HarfBuzz advance %f differ by more than 10%%", builtin, shaped)
	}
}

func TestDetectDirection(t *testing.T) {
	tests := []struct {
		in   string
		want Direction
	}{
		{"", DirectionLTR},
		{"hello", DirectionLTR},
		{"123", DirectionLTR},
		{"שלום", DirectionRTL},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := DetectDirection(tt.in); got != tt.want {
				t.Errorf("DetectDirection(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestDefaultIsShared(t *testing.T) {
	if Default() != Default() {
		t.Error("Default() should return the same Measurer")
	}
}

func BenchmarkMeasureCached(b *testing.B) {
	m := Default()
	f := collage.Font{Size: 16}
	m.Measure("benchmark", f)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		m.Measure("benchmark", f)
	}
}
