package flatten

import (
	"bytes"
	"errors"
	"log/slog"
	"math"
	"strconv"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/gogpu/collage"
	"github.com/gogpu/collage/element"
	"github.com/gogpu/collage/form"
	"github.com/gogpu/collage/scene"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

type fixedMeasurer struct {
	advance, height float64
}

func (m fixedMeasurer) Measure(s string, _ collage.Font) collage.Extent {
	return collage.Extent{
		Width:    m.advance * float64(utf8.RuneCountInString(s)),
		Height:   m.height,
		Baseline: m.height * 0.8,
	}
}

var testMeasurer = WithMeasurer(fixedMeasurer{advance: 6, height: 10})

func diffPrims(want, got []scene.Primitive) string {
	return cmp.Diff(want, got, cmpopts.EquateApprox(0, 1e-9))
}

func square(c collage.RGBA, side float64) form.Form {
	return form.FilledColor(c, form.Square(side))
}

func TestGroupIsConcatenation(t *testing.T) {
	f1 := form.Move(10, 0, square(collage.Red, 4))
	f2 := form.Rotate(math.Pi/4, form.Traced(collage.SolidLine(collage.Blue), form.Segment(collage.Pt(0, 0), collage.Pt(5, 5))))
	m := collage.Translate(3, 7).Multiply(collage.Scale(2, 2))

	tests := []struct {
		name  string
		group form.Form
		opts  []Option
	}{
		{"plain", form.Group(f1, f2), nil},
		{"transformed", form.GroupTransform(m, f1, f2), []Option{WithTransform(m)}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var want []scene.Primitive
			want = append(want, Form(f1, append(tt.opts, testMeasurer)...).Primitives()...)
			want = append(want, Form(f2, append(tt.opts, testMeasurer)...).Primitives()...)

			got := Form(tt.group, testMeasurer).Primitives()
			if d := diffPrims(want, got); d != "" {
				t.Errorf("group mismatch (-want +got):\n%s", d)
			}
		})
	}
}

func TestDegenerateGeometry(t *testing.T) {
	tests := []struct {
		name string
		f    form.Form
	}{
		{"empty shape", form.Filled(collage.Solid(collage.Red), form.Polygon())},
		{"two point shape", form.FilledColor(collage.Red, form.Polygon(collage.Pt(0, 0), collage.Pt(1, 1)))},
		{"repeated points", form.FilledColor(collage.Red, form.Polygon(collage.Pt(1, 1), collage.Pt(1, 1), collage.Pt(1, 1)))},
		{"ngon below three", form.FilledColor(collage.Red, form.Ngon(2, 10))},
		{"single point path", form.Traced(collage.DefaultLineStyle(), form.PathOf(collage.Pt(1, 1)))},
		{"empty group", form.Group()},
		{"empty text", form.TextForm(collage.EmptyText())},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if n := Form(tt.f, testMeasurer).Len(); n != 0 {
				t.Errorf("Form() emitted %d primitives, want 0", n)
			}
		})
	}
	if n := Form(nil).Len(); n != 0 {
		t.Errorf("Form(nil) emitted %d primitives", n)
	}
}

func TestZeroAlphaIsKept(t *testing.T) {
	f := form.Alpha(0, form.Group(square(collage.Red, 2), square(collage.Blue, 2)))
	s := Form(f, testMeasurer)
	if s.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", s.Len())
	}
	for i, p := range s.All() {
		if p.Alpha != 0 {
			t.Errorf("primitive %d alpha = %v, want 0", i, p.Alpha)
		}
		if c, _ := p.Style.Fill.Color(); c.A != 0 {
			t.Errorf("primitive %d fill alpha = %v, want 0", i, c.A)
		}
		if p.Visible() {
			t.Errorf("primitive %d should not be visible", i)
		}
	}
}

func TestAccumulation(t *testing.T) {
	outline := collage.SolidLine(collage.Black).WithWidth(2)
	inner := form.Rotate(math.Pi/2, form.FilledOutlined(collage.Solid(collage.Red), outline, form.Square(2)))
	f := form.Move(10, 0, form.Alpha(0.5, form.Group(form.Alpha(0.5, inner))))

	s := Form(f, testMeasurer)
	if s.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", s.Len())
	}
	p := s.At(0)

	want := collage.Translate(10, 0).Multiply(collage.Rotate(math.Pi / 2))
	if !p.Transform.ApproxEqual(want, 1e-9) {
		t.Errorf("Transform = %+v, want %+v", p.Transform, want)
	}
	if math.Abs(p.Alpha-0.25) > 1e-9 {
		t.Errorf("Alpha = %v, want 0.25", p.Alpha)
	}
	if c, _ := p.Style.Fill.Color(); math.Abs(c.A-0.25) > 1e-9 {
		t.Errorf("fill alpha = %v, want 0.25", c.A)
	}
	if p.Style.Stroke == nil || math.Abs(p.Style.Stroke.Color.A-0.25) > 1e-9 || p.Style.Stroke.Width != 2 {
		t.Errorf("stroke = %+v, want width 2 at alpha 0.25", p.Style.Stroke)
	}
	if pt := p.Transform.TransformPoint(collage.Pt(1, 0)); !pt.Near(collage.Pt(10, 1), 1e-9) {
		t.Errorf("+x maps to %v, want (10, 1)", pt)
	}
}

func TestTextForm(t *testing.T) {
	tests := []struct {
		hint  form.Hint
		at    collage.Point
		align float64
	}{
		{form.Center, collage.Pt(-6, -5), 0.5},
		{form.ToLeft, collage.Pt(-12, -5), 1},
		{form.ToRight, collage.Pt(0, -5), 0},
	}
	for _, tt := range tests {
		t.Run(tt.hint.String(), func(t *testing.T) {
			s := Form(form.TextAligned(collage.FromString("ab").Color(collage.Green), tt.hint), testMeasurer)
			if s.Len() != 1 {
				t.Fatalf("Len() = %d, want 1", s.Len())
			}
			p := s.At(0)
			if got := p.Transform.Translation(); !got.Near(tt.at, 1e-9) {
				t.Errorf("text box at %v, want %v", got, tt.at)
			}
			g, ok := p.Geometry.(scene.Text)
			if !ok {
				t.Fatalf("Geometry = %T, want scene.Text", p.Geometry)
			}
			if g.Align != tt.align {
				t.Errorf("Align = %v, want %v", g.Align, tt.align)
			}
			if g.Extent.Width != 12 || g.Extent.Height != 10 {
				t.Errorf("Extent = %+v, want 12x10", g.Extent)
			}
		})
	}
}

func TestImageForm(t *testing.T) {
	src := collage.RectXYWH(0, 0, 8, 8)
	s := Form(form.Move(5, 5, form.Sprite("tile.png", src, collage.Sz(4, 2))), testMeasurer)
	want := []scene.Primitive{{
		Transform: collage.Translate(5, 5),
		Alpha:     1,
		Geometry: scene.Image{
			Ref:  "tile.png",
			Src:  src,
			Dest: collage.RectXYWH(-2, -1, 4, 2),
		},
	}}
	if d := diffPrims(want, s.Primitives()); d != "" {
		t.Errorf("image mismatch (-want +got):\n%s", d)
	}
}

func TestParallelMatchesSequential(t *testing.T) {
	var rows []form.Form
	for i := range 12 {
		var cells []form.Form
		for j := range 9 {
			var f form.Form
			switch (i + j) % 3 {
			case 0:
				f = square(collage.HSL(float64(i*j), 0.5, 0.5), 3)
			case 1:
				f = form.TextForm(collage.FromString("cell"))
			default:
				f = form.Traced(collage.DashedLine(collage.Black), form.Segment(collage.Pt(0, 0), collage.Pt(3, 3)))
			}
			cells = append(cells, form.Move(float64(j*4), 0, f))
		}
		rows = append(rows, form.Alpha(0.9, form.MoveY(float64(i*4), form.Group(cells...))))
	}
	tree := form.Rotate(0.1, form.Group(rows...))

	seq := Form(tree, testMeasurer)
	for _, n := range []int{2, 4, 16} {
		par := Form(tree, testMeasurer, WithParallelism(n))
		if d := diffPrims(seq.Primitives(), par.Primitives()); d != "" {
			t.Errorf("parallelism %d differs from sequential (-seq +par):\n%s", n, d)
		}
	}
	if seq.Len() != 12*9 {
		t.Errorf("Len() = %d, want %d", seq.Len(), 12*9)
	}
}

func TestElementBackgroundAndCollage(t *testing.T) {
	bg := element.Must(element.Spacer(100, 50)).WithColor(collage.Red)
	pic := element.Must(element.Collage(20, 20, square(collage.Blue, 40)))
	page := element.Layers(bg, element.Must(element.Container(element.Fixed(100), element.Fixed(50), element.Middle, pic)))

	s, err := Element(page, 100, 50, testMeasurer)
	if err != nil {
		t.Fatalf("Element() error = %v", err)
	}
	if s.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", s.Len())
	}

	back := s.At(0)
	if got := back.Bounds(); got != collage.RectXYWH(0, 0, 100, 50) {
		t.Errorf("background bounds = %+v", got)
	}
	if c, _ := back.Style.Fill.Color(); c != collage.Red {
		t.Errorf("background color = %v", c)
	}

	fg := s.At(1)
	if got := fg.Transform.Translation(); !got.Near(collage.Pt(50, 25), 1e-9) {
		t.Errorf("collage origin at %v, want the box center (50, 25)", got)
	}
	if !fg.Clipped {
		t.Fatal("collage forms should be clipped")
	}
	if d := cmp.Diff(collage.RectXYWH(40, 15, 20, 20), fg.Clip, cmpopts.EquateApprox(0, 1e-9)); d != "" {
		t.Errorf("clip mismatch (-want +got):\n%s", d)
	}
	if d := cmp.Diff(collage.RectXYWH(40, 15, 20, 20), fg.Bounds(), cmpopts.EquateApprox(0, 1e-9)); d != "" {
		t.Errorf("clipped bounds mismatch (-want +got):\n%s", d)
	}
}

func TestElementLeaves(t *testing.T) {
	formLeaf := element.FromForm(form.FilledColor(collage.Green, form.Rect(20, 10)))
	wide := element.Must(element.RightAligned(collage.FromString("ab")).WithWidth(30))
	fitted := element.Must(element.FittedImage(16, 16, "fit.png"))
	tiled := element.Must(element.TiledImage(8, 8, "tile.png"))
	cropped := element.Must(element.CroppedImage(2, 3, 4, 5, "crop.png"))

	page := element.Flow(element.Down, formLeaf, wide, fitted, tiled, cropped)
	s, err := Element(page, 30, 49, testMeasurer)
	if err != nil {
		t.Fatalf("Element() error = %v", err)
	}
	if s.Len() != 5 {
		t.Fatalf("Len() = %d, want 5", s.Len())
	}

	if got := s.At(0).Bounds(); got != collage.RectXYWH(0, 0, 20, 10) {
		t.Errorf("form leaf bounds = %+v, want its box", got)
	}

	txt := s.At(1)
	if got := txt.Transform.Translation(); !got.Near(collage.Pt(18, 10), 1e-9) {
		t.Errorf("right-aligned text at %v, want (18, 10)", got)
	}
	if g := txt.Geometry.(scene.Text); g.Align != 1 {
		t.Errorf("text Align = %v, want 1", g.Align)
	}

	wantImages := []struct {
		mode scene.ImageMode
		src  collage.Rect
		dest collage.Rect
		at   collage.Point
	}{
		{scene.ImageFit, collage.Rect{}, collage.RectXYWH(0, 0, 16, 16), collage.Pt(0, 20)},
		{scene.ImageTile, collage.Rect{}, collage.RectXYWH(0, 0, 8, 8), collage.Pt(0, 36)},
		{scene.ImageStretch, collage.RectXYWH(2, 3, 4, 5), collage.RectXYWH(0, 0, 4, 5), collage.Pt(0, 44)},
	}
	for i, want := range wantImages {
		p := s.At(2 + i)
		g, ok := p.Geometry.(scene.Image)
		if !ok {
			t.Fatalf("primitive %d geometry = %T, want scene.Image", 2+i, p.Geometry)
		}
		if g.Mode != want.mode || g.Src != want.src || g.Dest != want.dest {
			t.Errorf("image %d = %+v, want mode %v src %+v dest %+v", i, g, want.mode, want.src, want.dest)
		}
		if got := p.Transform.Translation(); !got.Near(want.at, 1e-9) {
			t.Errorf("image %d at %v, want %v", i, got, want.at)
		}
	}
}

func TestElementOpacityAndOverflow(t *testing.T) {
	child := element.Must(element.Spacer(40, 40)).WithColor(collage.Blue)
	c := element.Must(element.Container(element.Fixed(20), element.Fixed(20), element.TopLeft, child)).WithOpacity(0.5)

	s, err := Element(c, 20, 20, testMeasurer)
	if err != nil {
		t.Fatalf("Element() error = %v", err)
	}
	if s.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", s.Len())
	}
	p := s.At(0)
	if p.Alpha != 0.5 {
		t.Errorf("Alpha = %v, want 0.5", p.Alpha)
	}
	if !p.Clipped || p.Bounds() != collage.RectXYWH(0, 0, 20, 20) {
		t.Errorf("overflowing child should be clipped to the container, bounds %+v", p.Bounds())
	}
}

func TestElementInwardOrder(t *testing.T) {
	a := element.Must(element.Spacer(10, 10)).WithColor(collage.Red)
	b := element.Must(element.Spacer(10, 10)).WithColor(collage.Blue)

	s, err := Element(element.Flow(element.Inward, a, b), 10, 10, testMeasurer)
	if err != nil {
		t.Fatalf("Element() error = %v", err)
	}
	want := []collage.RGBA{collage.Blue, collage.Red}
	for i, p := range s.All() {
		if c, _ := p.Style.Fill.Color(); c != want[i] {
			t.Errorf("primitive %d = %v, want %v", i, c, want[i])
		}
	}
}

func TestElementError(t *testing.T) {
	if _, err := Element(element.Empty(), -1, 1, testMeasurer); !errors.Is(err, collage.ErrInvalidLayoutSpec) {
		t.Errorf("Element() error = %v, want ErrInvalidLayoutSpec", err)
	}
}

func TestRootTransform(t *testing.T) {
	e := element.Must(element.Spacer(10, 10)).WithColor(collage.Red)
	s, err := Element(e, 10, 10, testMeasurer, WithTransform(collage.Scale(2, 2)))
	if err != nil {
		t.Fatalf("Element() error = %v", err)
	}
	if got := s.Bounds(); got != collage.RectXYWH(0, 0, 20, 20) {
		t.Errorf("Bounds() = %+v, want 20x20", got)
	}
}

func TestEmbeddedElement(t *testing.T) {
	red := element.Must(element.Spacer(20, 10)).WithColor(collage.Red)
	blue := element.Must(element.Spacer(10, 10)).WithColor(collage.Blue)
	inner := element.Beside(red, blue)

	pic := element.Must(element.Collage(100, 100, form.Move(10, 0, element.ToForm(inner))))
	page := element.Flow(element.Right, element.Must(element.Spacer(50, 0)), pic)

	s, err := Element(page, 150, 100, testMeasurer)
	if err != nil {
		t.Fatalf("Element() error = %v", err)
	}
	if s.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", s.Len())
	}

	want := []struct {
		color  collage.RGBA
		bounds collage.Rect
	}{
		{collage.Red, collage.RectXYWH(95, 45, 20, 10)},
		{collage.Blue, collage.RectXYWH(115, 45, 10, 10)},
	}
	for i, w := range want {
		p := s.At(i)
		if c, _ := p.Style.Fill.Color(); c != w.color {
			t.Errorf("primitive %d color = %v, want %v", i, c, w.color)
		}
		if d := cmp.Diff(w.bounds, p.Bounds(), cmpopts.EquateApprox(0, 1e-9)); d != "" {
			t.Errorf("primitive %d bounds mismatch (-want +got):\n%s", i, d)
		}
		if !p.Clipped {
			t.Errorf("primitive %d should be clipped to the collage", i)
		}
		if d := cmp.Diff(collage.RectXYWH(50, 0, 100, 100), p.Clip, cmpopts.EquateApprox(0, 1e-9)); d != "" {
			t.Errorf("primitive %d clip mismatch (-want +got):\n%s", i, d)
		}
	}
}

func TestEmbeddedElementFaded(t *testing.T) {
	e := element.Must(element.Spacer(10, 10)).WithColor(collage.Green)
	s := Form(form.Alpha(0.5, element.ToForm(e)), testMeasurer)
	if s.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", s.Len())
	}
	p := s.At(0)
	if p.Alpha != 0.5 {
		t.Errorf("Alpha = %v, want 0.5", p.Alpha)
	}
	if got := p.Bounds(); got != collage.RectXYWH(-5, -5, 10, 10) {
		t.Errorf("Bounds() = %+v, want centered on the origin", got)
	}
}

type sizedContent collage.Size

func (c sizedContent) Size(collage.Measurer) collage.Size { return collage.Size(c) }

func TestEmbeddedUnknownContent(t *testing.T) {
	if n := Form(form.Embed(sizedContent{Width: 5, Height: 5})).Len(); n != 0 {
		t.Errorf("Len() = %d, want 0 for content that is not an element", n)
	}
}

func TestDebugLogging(t *testing.T) {
	orig := collage.Logger()
	t.Cleanup(func() { collage.SetLogger(orig) })

	var buf bytes.Buffer
	collage.SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	})))

	big := element.Must(element.Spacer(40, 40))
	tight := element.Must(element.Container(element.Fixed(20), element.Fixed(20), element.TopLeft, big)).WithTag("tight")
	page := element.Flow(element.Right, tight, element.Must(element.Spacer(10, 10)).WithColor(collage.Red))

	if _, err := Element(page, 30, 20, testMeasurer, WithParallelism(4)); err != nil {
		t.Fatalf("Element() error = %v", err)
	}

	out := buf.String()
	for _, msg := range []string{
		"element: container child overflows",
		"tag=tight",
		"flatten: fan-out",
		"flatten: scene built",
		"root=box",
		"primitives=1",
	} {
		if !strings.Contains(out, msg) {
			t.Errorf("log output missing %q:\n%s", msg, out)
		}
	}
}

func TestBoxNil(t *testing.T) {
	if Box(nil).Len() != 0 {
		t.Error("Box(nil) should be empty")
	}
}

func BenchmarkFormParallel(b *testing.B) {
	var forms []form.Form
	for i := range 256 {
		forms = append(forms, form.Group(form.Move(float64(i), 0, square(collage.Red, 2)), form.TextForm(collage.FromString("x"))))
	}
	tree := form.Group(forms...)
	for _, n := range []int{1, 8} {
		b.Run("parallelism="+strconv.Itoa(n), func(b *testing.B) {
			for b.Loop() {
				Form(tree, testMeasurer, WithParallelism(n))
			}
		})
	}
}
