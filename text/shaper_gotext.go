package text

import (
	"bytes"
	"sync"

	"github.com/go-text/typesetting/di"
	"github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
)

// GoTextShaper measures text with HarfBuzz-level shaping from
// go-text/typesetting, so kerning, ligatures and complex scripts are
// reflected in the advance width.
//
// GoTextShaper is safe for concurrent use. It caches parsed font.Font objects
// (which are thread-safe) and creates lightweight font.Face instances per
// call (font.Face is NOT safe for concurrent use). The HarfbuzzShaper
// instances are pooled via sync.Pool since they also are not concurrent-safe.
type GoTextShaper struct {
	shaperPool sync.Pool

	// mu protects fontCache.
	mu sync.RWMutex

	// fontCache maps FontSource pointers to parsed go-text Font objects.
	fontCache map[*FontSource]*font.Font

	// fallback measures sources go-text cannot parse.
	fallback BuiltinShaper
}

// NewGoTextShaper creates a new GoTextShaper backed by go-text/typesetting's
// HarfBuzz implementation.
func NewGoTextShaper() *GoTextShaper {
	return &GoTextShaper{
		shaperPool: sync.Pool{
			New: func() any {
				return &shaping.HarfbuzzShaper{}
			},
		},
		fontCache: make(map[*FontSource]*font.Font),
	}
}

// Advance implements Shaper.
func (s *GoTextShaper) Advance(line string, face *Face, dir Direction) float64 {
	if line == "" || face == nil {
		return 0
	}

	goTextFont, err := s.getOrCreateFont(face.Source())
	if err != nil {
		return s.fallback.Advance(line, face, dir)
	}

	runes := []rune(line)
	input := shaping.Input{
		Text:      runes,
		RunStart:  0,
		RunEnd:    len(runes),
		Direction: mapDirection(dir),
		Face:      font.NewFace(goTextFont),
		Size:      floatToFixed(face.Size()),
		Script:    detectScript(runes),
		Language:  language.NewLanguage("en"),
	}

	hbShaper := s.shaperPool.Get().(*shaping.HarfbuzzShaper)
	output := hbShaper.Shape(input)
	s.shaperPool.Put(hbShaper)

	var total float64
	for _, g := range output.Glyphs {
		total += fixedToFloat(g.Advance)
	}
	return total
}

// getOrCreateFont returns a cached go-text font.Font for the given source,
// or parses the font data and caches the Font (not Face).
func (s *GoTextShaper) getOrCreateFont(source *FontSource) (*font.Font, error) {
	s.mu.RLock()
	if f, ok := s.fontCache[source]; ok {
		s.mu.RUnlock()
		return f, nil
	}
	s.mu.RUnlock()

	s.mu.Lock()
	defer s.mu.Unlock()

	if f, ok := s.fontCache[source]; ok {
		return f, nil
	}

	// ParseTTF returns a *Face which embeds the thread-safe *Font.
	goTextFace, err := font.ParseTTF(bytes.NewReader(source.data))
	if err != nil {
		return nil, err
	}
	s.fontCache[source] = goTextFace.Font
	return goTextFace.Font, nil
}

// ClearCache removes all cached parsed fonts.
func (s *GoTextShaper) ClearCache() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.fontCache = make(map[*FontSource]*font.Font)
}

// mapDirection converts our text.Direction to go-text's di.Direction.
func mapDirection(d Direction) di.Direction {
	if d == DirectionRTL {
		return di.DirectionRTL
	}
	return di.DirectionLTR
}

// detectScript returns the script of the first non-space rune.
// Mixed-script lines are shaped as a single run of that script.
func detectScript(runes []rune) language.Script {
	for _, r := range runes {
		if r == ' ' || r == '\t' || r == '\r' {
			continue
		}
		return language.LookupScript(r)
	}
	return language.Latin
}
