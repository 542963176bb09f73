package text

import (
	"fmt"
	"sync"

	"github.com/gogpu/collage"
	"github.com/gogpu/collage/internal/cache"
)

// Measurer implements collage.Measurer with real font metrics.
//
// A font is resolved to a family by typeface name (case-insensitive), then
// to a variant by its bold and italic flags. Monospace fonts always use the
// Go Mono family. Results are cached per (string, font) pair.
//
// Measurer is safe for concurrent use.
type Measurer struct {
	families      map[string]Family
	defaultFamily Family
	shaper        Shaper
	extents       *cache.Cache[measureKey, collage.Extent]
}

type measureKey struct {
	s    string
	font collage.Font
}

var _ collage.Measurer = (*Measurer)(nil)

// NewMeasurer creates a Measurer. The Go and Go Mono families are always
// available; WithFamily adds more.
func NewMeasurer(opts ...MeasurerOption) (*Measurer, error) {
	config := defaultMeasurerConfig()
	for _, opt := range opts {
		opt(&config)
	}

	families := make(map[string]Family, len(config.families)+2)
	goFam, err := GoFamily()
	if err != nil {
		return nil, err
	}
	monoFam, err := GoMonoFamily()
	if err != nil {
		return nil, err
	}
	families[GoFamilyName] = goFam
	families[GoMonoFamilyName] = monoFam
	for name, fam := range config.families {
		if fam.Regular == nil {
			return nil, fmt.Errorf("text: family %q has no regular variant", name)
		}
		families[name] = fam
	}

	def := goFam
	if config.defaultFamily != "" {
		fam, ok := families[config.defaultFamily]
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownTypeface, config.defaultFamily)
		}
		def = fam
	}

	shaper := config.shaper
	if shaper == nil {
		shaper = NewGoTextShaper()
	}

	return &Measurer{
		families:      families,
		defaultFamily: def,
		shaper:        shaper,
		extents:       cache.New[measureKey, collage.Extent](config.cacheLimit),
	}, nil
}

var defaultMeasurer = sync.OnceValue(func() *Measurer {
	m, err := NewMeasurer()
	if err != nil {
		// The embedded Go fonts always parse.
		panic(err)
	}
	return m
})

// Default returns the shared Measurer backed by the Go fonts.
func Default() *Measurer {
	return defaultMeasurer()
}

// Measure implements collage.Measurer. Lines are separated by '\n'; the
// width is the widest line and the height covers every line. Baseline is
// the ascent of the first line. Sizes of 0 or less use
// collage.DefaultTextHeight.
func (m *Measurer) Measure(s string, f collage.Font) collage.Extent {
	if f.Size <= 0 {
		f.Size = collage.DefaultTextHeight
	}
	key := measureKey{s: s, font: f}
	return m.extents.GetOrCreate(key, func() collage.Extent {
		return m.measure(s, f)
	})
}

func (m *Measurer) measure(s string, f collage.Font) collage.Extent {
	face := m.Face(f)
	metrics := face.Metrics()
	lines := splitLines(s)

	var width float64
	for _, line := range lines {
		width = max(width, m.shaper.Advance(line, face, DetectDirection(line)))
	}
	return collage.Extent{
		Width:    width,
		Height:   metrics.BoxHeight(len(lines)),
		Baseline: metrics.Ascent,
	}
}

// Face returns the face f resolves to.
func (m *Measurer) Face(f collage.Font) *Face {
	size := f.Size
	if size <= 0 {
		size = collage.DefaultTextHeight
	}
	return m.Family(f).Variant(f.Bold, f.Italic).Face(size)
}

// Family returns the family f resolves to. Unknown typefaces resolve to the
// default family.
func (m *Measurer) Family(f collage.Font) Family {
	if f.Monospace {
		return m.families[GoMonoFamilyName]
	}
	if f.Typeface == "" {
		return m.defaultFamily
	}
	fam, ok := m.families[normalizeTypeface(f.Typeface)]
	if !ok {
		collage.Logger().Debug("text: unknown typeface, using default family",
			"typeface", f.Typeface)
		return m.defaultFamily
	}
	return fam
}

// CacheStats describes the measurement cache.
type CacheStats struct {
	Len    int
	Hits   uint64
	Misses uint64
}

// CacheStats returns statistics of the measurement cache.
func (m *Measurer) CacheStats() CacheStats {
	s := m.extents.Stats()
	return CacheStats{Len: s.Len, Hits: s.Hits, Misses: s.Misses}
}
