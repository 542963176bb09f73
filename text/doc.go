// Package text measures styled text for layout.
//
// It implements collage.Measurer on top of real font files:
//
//   - FontSource: a parsed TTF/OTF file, shared across sizes
//   - Face: a FontSource at one size, exposing metrics and advances
//   - Family: regular, bold, italic and bold italic sources of one typeface
//   - Shaper: turns a line of text into an advance width
//   - Measurer: resolves a collage.Font to a Face and caches extents
//
// # Example usage
//
//	m := text.Default() // Go fonts, HarfBuzz shaping
//	ext := m.Measure("Hello", collage.Font{Size: 16})
//
// Custom typefaces are registered as families:
//
//	fam, err := text.NewFamily(regularTTF, boldTTF, nil, nil)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	m, err := text.NewMeasurer(text.WithFamily("Inter", fam))
//
// # Pluggable Parser Backend
//
// Font parsing is abstracted through the FontParser interface.
// By default, golang.org/x/image/font/opentype is used.
//
//	text.RegisterParser("myparser", myCustomParser)
//	source, err := text.NewFontSource(data, text.WithParser("myparser"))
package text
