package text

import (
	"fmt"
	"os"
)

// FontSource represents a loaded font file.
// One FontSource can create multiple Face instances at different sizes.
// FontSource is heavyweight and should be shared across the application.
//
// FontSource is safe for concurrent use.
// FontSource must not be copied after creation (enforced by copyCheck).
type FontSource struct {
	// addr is used for copy protection. It must point to the FontSource itself.
	addr *FontSource

	data   []byte
	parsed ParsedFont
	name   string
}

// NewFontSource creates a FontSource from font data (TTF or OTF).
// The data slice is copied internally and can be reused after this call.
func NewFontSource(data []byte, opts ...SourceOption) (*FontSource, error) {
	if len(data) == 0 {
		return nil, ErrEmptyFontData
	}

	config := defaultSourceConfig()
	for _, opt := range opts {
		opt(&config)
	}

	parser, ok := lookupParser(config.parserName)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownParser, config.parserName)
	}
	parsed, err := parser.Parse(data)
	if err != nil {
		return nil, err
	}

	dataCopy := make([]byte, len(data))
	copy(dataCopy, data)

	s := &FontSource{
		data:   dataCopy,
		parsed: parsed,
		name:   extractFontName(parsed),
	}
	s.addr = s
	return s, nil
}

// NewFontSourceFromFile loads a FontSource from a font file path.
func NewFontSourceFromFile(path string, opts ...SourceOption) (*FontSource, error) {
	// #nosec G304 -- Font file path is provided by the user
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("text: failed to read font file: %w", err)
	}
	return NewFontSource(data, opts...)
}

// Face creates a Face at the specified size in pixels per em.
// Panics if s is nil (e.g. when the NewFontSource error was ignored).
func (s *FontSource) Face(size float64) *Face {
	if s == nil {
		panic("text: FontSource is nil, check the error from NewFontSource")
	}
	s.copyCheck()
	return newFace(s, size)
}

// Name returns the font family name.
func (s *FontSource) Name() string {
	s.copyCheck()
	return s.name
}

// Parsed returns the parsed font for advanced operations.
func (s *FontSource) Parsed() ParsedFont {
	s.copyCheck()
	return s.parsed
}

// copyCheck panics if FontSource was copied by value.
func (s *FontSource) copyCheck() {
	if s.addr != s {
		panic("text: FontSource must not be copied by value")
	}
}

// extractFontName extracts the font family name from the parsed font.
func extractFontName(parsed ParsedFont) string {
	if name := parsed.Name(); name != "" {
		return name
	}
	if fullName := parsed.FullName(); fullName != "" {
		return fullName
	}
	return "Unknown Font"
}
