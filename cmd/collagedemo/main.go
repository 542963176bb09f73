// Command collagedemo lays out a demo page, flattens it and replays the
// scene into a sink. The built-in "text" sink prints one line per
// primitive.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"runtime"

	"github.com/gogpu/collage"
	"github.com/gogpu/collage/element"
	"github.com/gogpu/collage/flatten"
	"github.com/gogpu/collage/form"
	"github.com/gogpu/collage/scene"
)

func main() {
	var (
		width    = flag.Float64("width", 480, "page width")
		height   = flag.Float64("height", 360, "page height")
		sinkName = flag.String("sink", "text", "sink to replay the scene into")
		parallel = flag.Int("parallel", runtime.GOMAXPROCS(0), "subtrees flattened concurrently")
		verbose  = flag.Bool("v", false, "log layout and flatten diagnostics")
	)
	flag.Parse()

	if *verbose {
		collage.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	scene.Register("text", func() scene.Sink { return &textSink{w: os.Stdout} })

	page, err := demoPage()
	if err != nil {
		log.Fatalf("Failed to build page: %v", err)
	}

	s, err := flatten.Element(page, *width, *height, flatten.WithParallelism(*parallel))
	if err != nil {
		log.Fatalf("Failed to flatten: %v", err)
	}

	sink, err := scene.NewSink(*sinkName)
	if err != nil {
		log.Fatalf("Available sinks: %v: %v", scene.Sinks(), err)
	}
	if err := s.Playback(sink); err != nil {
		log.Fatalf("Playback failed: %v", err)
	}

	log.Printf("Replayed %d primitives into %q (%.0fx%.0f)\n", s.Len(), *sinkName, *width, *height)
}

func demoPage() (element.Element, error) {
	sky, err := collage.LinearGradient(collage.Pt(0, -80), collage.Pt(0, 80),
		collage.Stop(0, collage.LightBlue),
		collage.Stop(1, collage.DarkBlue))
	if err != nil {
		return element.Element{}, err
	}

	star := form.FilledOutlined(
		collage.Solid(collage.Yellow),
		collage.SolidLine(collage.DarkYellow).WithWidth(2).WithJoin(collage.Smooth()),
		starShape(5, 40, 18))

	pic, err := element.Collage(240, 160,
		form.Gradient(sky, form.Rect(240, 160)),
		form.Rotate(collage.Degrees(-18), form.Move(-40, 0, star)),
		form.Alpha(0.6, form.Move(60, 20, form.FilledColor(collage.White, form.Oval(80, 30)))),
		form.Traced(collage.DashedLine(collage.White), form.PathOf(
			collage.Pt(-120, 70), collage.Pt(-40, 50), collage.Pt(40, 70), collage.Pt(120, 50))),
	)
	if err != nil {
		return element.Element{}, err
	}

	title := element.Centered(collage.FromString("collage").Height(28).Bold())
	caption := element.LeftAligned(collage.FromString("forms, elements and scenes").Italic())
	badge := element.FromForm(form.FilledColor(collage.Red, form.Ngon(6, 12)))

	column := element.Flow(element.Down,
		title,
		pic,
		element.Flow(element.Right, badge, element.Must(element.Spacer(8, 0)), caption),
	)
	page, err := element.Container(element.Fixed(480), element.Fixed(360), element.Middle,
		column, element.WithPadding(element.Uniform(12)))
	if err != nil {
		return element.Element{}, err
	}
	return page.WithColor(collage.LightGray), nil
}

// starShape returns a star with n points alternating between two radii.
func starShape(n int, outer, inner float64) form.Shape {
	pts := make([]collage.Point, 0, 2*n)
	for i := range 2 * n {
		r := outer
		if i%2 == 1 {
			r = inner
		}
		a := collage.Turns(float64(i) / float64(2*n))
		m := collage.Rotate(a)
		pts = append(pts, m.TransformPoint(collage.Pt(r, 0)))
	}
	return form.Polygon(pts...)
}

// textSink prints a line per primitive.
type textSink struct {
	w io.Writer
	n int
}

func (s *textSink) Begin(bounds collage.Rect) error {
	_, err := fmt.Fprintf(s.w, "scene %.1f,%.1f %.1fx%.1f\n",
		bounds.MinX, bounds.MinY, bounds.Width(), bounds.Height())
	return err
}

func (s *textSink) Draw(p scene.Primitive) error {
	b := p.Bounds()
	_, err := fmt.Fprintf(s.w, "%4d %-8s alpha=%.2f fill=%-8s stroked=%-5v clipped=%-5v at %.1f,%.1f %.1fx%.1f\n",
		s.n, geometryName(p.Geometry), p.Alpha, p.Style.Fill.Kind(), p.Style.Stroked(), p.Clipped,
		b.MinX, b.MinY, b.Width(), b.Height())
	s.n++
	return err
}

func (s *textSink) End() error {
	_, err := fmt.Fprintf(s.w, "end (%d primitives)\n", s.n)
	return err
}

func geometryName(g scene.Geometry) string {
	switch g := g.(type) {
	case scene.Polyline:
		return "polyline"
	case scene.Polygon:
		return "polygon"
	case scene.Text:
		return fmt.Sprintf("text(%q)", g.Text.String())
	case scene.Image:
		return "image"
	default:
		return "unknown"
	}
}
