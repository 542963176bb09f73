package text

import (
	"fmt"

	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
)

// ximageParser implements FontParser using golang.org/x/image/font/opentype.
type ximageParser struct{}

// Parse implements FontParser.Parse.
func (ximageParser) Parse(data []byte) (ParsedFont, error) {
	f, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("text: failed to parse font: %w", err)
	}
	return &ximageParsedFont{font: f}, nil
}

// ximageParsedFont implements ParsedFont using sfnt.Font.
// sfnt.Font methods are safe for concurrent use as long as each call gets
// its own sfnt.Buffer.
type ximageParsedFont struct {
	font *opentype.Font
}

func (f *ximageParsedFont) Name() string {
	if name, err := f.font.Name(nil, sfnt.NameIDFamily); err == nil {
		return name
	}
	return ""
}

func (f *ximageParsedFont) FullName() string {
	if name, err := f.font.Name(nil, sfnt.NameIDFull); err == nil {
		return name
	}
	return ""
}

func (f *ximageParsedFont) UnitsPerEm() int {
	return int(f.font.UnitsPerEm())
}

func (f *ximageParsedFont) GlyphIndex(r rune) uint16 {
	var buf sfnt.Buffer
	idx, err := f.font.GlyphIndex(&buf, r)
	if err != nil {
		return 0
	}
	return uint16(idx)
}

func (f *ximageParsedFont) GlyphAdvance(glyphIndex uint16, ppem float64) float64 {
	var buf sfnt.Buffer
	advance, err := f.font.GlyphAdvance(&buf, sfnt.GlyphIndex(glyphIndex), floatToFixed(ppem), font.HintingNone)
	if err != nil {
		return 0
	}
	return fixedToFloat(advance)
}

func (f *ximageParsedFont) Kern(left, right uint16, ppem float64) float64 {
	var buf sfnt.Buffer
	k, err := f.font.Kern(&buf, sfnt.GlyphIndex(left), sfnt.GlyphIndex(right), floatToFixed(ppem), font.HintingNone)
	if err != nil {
		// sfnt.ErrNotFound for fonts without a kern table.
		return 0
	}
	return fixedToFloat(k)
}

func (f *ximageParsedFont) Metrics(ppem float64) FontMetrics {
	var buf sfnt.Buffer
	m, err := f.font.Metrics(&buf, floatToFixed(ppem), font.HintingNone)
	if err != nil {
		return FontMetrics{}
	}

	// x/image reports Descent as a positive distance below the baseline.
	ascent := fixedToFloat(m.Ascent)
	descent := fixedToFloat(m.Descent)
	return FontMetrics{
		Ascent:    ascent,
		Descent:   -descent,
		LineGap:   max(fixedToFloat(m.Height)-ascent-descent, 0),
		XHeight:   fixedToFloat(m.XHeight),
		CapHeight: fixedToFloat(m.CapHeight),
	}
}

// floatToFixed converts a float64 size to fixed.Int26_6.
// The fixed-point representation uses 6 fractional bits, so we multiply by 64.
func floatToFixed(size float64) fixed.Int26_6 {
	return fixed.Int26_6(size * 64)
}

// fixedToFloat converts a fixed.Int26_6 value to float64.
func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64.0
}
