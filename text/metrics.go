package text

// Metrics holds font metrics at a specific size.
// These metrics are derived from the font file and scaled to the face size.
type Metrics struct {
	// Ascent is the distance from the baseline to the top of the font (positive).
	Ascent float64

	// Descent is the distance from the baseline to the bottom of the font
	// (positive, below baseline).
	Descent float64

	// LineGap is the recommended gap between lines.
	LineGap float64

	// XHeight is the height of lowercase letters (like 'x').
	XHeight float64

	// CapHeight is the height of uppercase letters.
	CapHeight float64
}

// LineHeight returns the total line height (ascent + descent + line gap).
// This is the recommended vertical distance between baselines of consecutive lines.
func (m Metrics) LineHeight() float64 {
	return m.Ascent + m.Descent + m.LineGap
}

// BoxHeight returns the height of n lines of text: one ascent plus one
// descent, with a full line height between consecutive baselines.
func (m Metrics) BoxHeight(n int) float64 {
	if n <= 0 {
		return 0
	}
	return m.Ascent + m.Descent + float64(n-1)*m.LineHeight()
}
