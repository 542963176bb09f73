package text

// Face is a FontSource at a specific size.
// Metrics are resolved once at creation. Face is safe for concurrent use.
type Face struct {
	source  *FontSource
	size    float64
	metrics Metrics
}

func newFace(s *FontSource, size float64) *Face {
	fm := s.parsed.Metrics(size)

	// FontMetrics.Descent is negative (below baseline),
	// Metrics.Descent is the positive distance from the baseline.
	descent := fm.Descent
	if descent < 0 {
		descent = -descent
	}
	return &Face{
		source: s,
		size:   size,
		metrics: Metrics{
			Ascent:    fm.Ascent,
			Descent:   descent,
			LineGap:   fm.LineGap,
			XHeight:   fm.XHeight,
			CapHeight: fm.CapHeight,
		},
	}
}

// Metrics returns the font metrics at this face's size.
func (f *Face) Metrics() Metrics { return f.metrics }

// Size returns the size of this face in pixels per em.
func (f *Face) Size() float64 { return f.size }

// Source returns the FontSource this face was created from.
func (f *Face) Source() *FontSource { return f.source }

// HasGlyph reports whether the font has a glyph for the given rune.
func (f *Face) HasGlyph(r rune) bool {
	return f.source.parsed.GlyphIndex(r) != 0
}

// Advance returns the advance width of s using the font's own advances and
// kerning pairs, without OpenType shaping.
func (f *Face) Advance(s string) float64 {
	parsed := f.source.parsed
	var (
		total float64
		prev  uint16
		first = true
	)
	for _, r := range s {
		gid := parsed.GlyphIndex(r)
		if !first {
			total += parsed.Kern(prev, gid, f.size)
		}
		total += parsed.GlyphAdvance(gid, f.size)
		prev, first = gid, false
	}
	return total
}
