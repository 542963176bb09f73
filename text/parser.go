package text

import "sync"

// FontParser is an interface for font parsing backends.
// The default implementation uses golang.org/x/image/font/opentype.
type FontParser interface {
	// Parse parses font data (TTF or OTF) and returns a ParsedFont.
	Parse(data []byte) (ParsedFont, error)
}

// ParsedFont is the read-only view of a font file that measurement needs.
// Implementations must be safe for concurrent use.
type ParsedFont interface {
	// Name returns the font family name, or "" if not available.
	Name() string

	// FullName returns the full font name, or "" if not available.
	FullName() string

	// UnitsPerEm returns the units per em for the font.
	UnitsPerEm() int

	// GlyphIndex returns the glyph index for a rune, 0 if the font has none.
	GlyphIndex(r rune) uint16

	// GlyphAdvance returns the advance width of a glyph at ppem pixels per em.
	GlyphAdvance(glyphIndex uint16, ppem float64) float64

	// Kern returns the horizontal kerning adjustment between two glyphs,
	// 0 when the font has no kerning data for the pair.
	Kern(left, right uint16, ppem float64) float64

	// Metrics returns the font metrics at ppem pixels per em.
	Metrics(ppem float64) FontMetrics
}

// FontMetrics holds font-level metrics at a specific size.
type FontMetrics struct {
	// Ascent is the distance from the baseline to the top of the font (positive).
	Ascent float64

	// Descent is the distance from the baseline to the bottom of the font (negative).
	Descent float64

	// LineGap is the recommended line gap between lines.
	LineGap float64

	XHeight   float64
	CapHeight float64
}

// Height returns the total line height (ascent - descent + line gap).
func (m FontMetrics) Height() float64 {
	return m.Ascent - m.Descent + m.LineGap
}

// defaultParserName is the name of the default parser.
const defaultParserName = "ximage"

var (
	parserMu       sync.RWMutex
	parserRegistry = map[string]FontParser{
		defaultParserName: ximageParser{},
	}
)

// RegisterParser registers a custom font parser under name.
// Registering an existing name replaces the previous parser.
func RegisterParser(name string, parser FontParser) {
	if parser == nil {
		panic("text: RegisterParser parser is nil")
	}
	parserMu.Lock()
	defer parserMu.Unlock()
	parserRegistry[name] = parser
}

// lookupParser returns the parser registered under name.
func lookupParser(name string) (FontParser, bool) {
	parserMu.RLock()
	defer parserMu.RUnlock()
	p, ok := parserRegistry[name]
	return p, ok
}
