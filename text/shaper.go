package text

// Shaper computes the advance width of a single line of text.
// Implementations must be safe for concurrent use.
type Shaper interface {
	// Advance returns the width of line set in face with the given base
	// direction. line contains no newlines.
	Advance(line string, face *Face, dir Direction) float64
}

// BuiltinShaper measures text from the font's glyph advances and kerning
// table. It performs no ligature or contextual substitution.
type BuiltinShaper struct{}

// Advance implements Shaper.
func (BuiltinShaper) Advance(line string, face *Face, _ Direction) float64 {
	if line == "" || face == nil {
		return 0
	}
	return face.Advance(line)
}
