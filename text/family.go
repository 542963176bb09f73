package text

import (
	"fmt"
	"strings"

	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gobolditalic"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/gomonobold"
	"golang.org/x/image/font/gofont/gomonobolditalic"
	"golang.org/x/image/font/gofont/gomonoitalic"
	"golang.org/x/image/font/gofont/goregular"
)

// Built-in family names.
const (
	GoFamilyName     = "go"
	GoMonoFamilyName = "go mono"
)

// Family groups the style variants of one typeface.
// Regular is always set; missing variants fall back towards Regular.
type Family struct {
	Regular    *FontSource
	Bold       *FontSource
	Italic     *FontSource
	BoldItalic *FontSource
}

// NewFamily parses the variants of a typeface. Only regular is required;
// nil or empty data leaves that variant unset.
func NewFamily(regular, bold, italic, boldItalic []byte, opts ...SourceOption) (Family, error) {
	var fam Family
	var err error
	if fam.Regular, err = NewFontSource(regular, opts...); err != nil {
		return Family{}, fmt.Errorf("text: regular variant: %w", err)
	}
	variants := []struct {
		name string
		data []byte
		dst  **FontSource
	}{
		{"bold", bold, &fam.Bold},
		{"italic", italic, &fam.Italic},
		{"bold italic", boldItalic, &fam.BoldItalic},
	}
	for _, v := range variants {
		if len(v.data) == 0 {
			continue
		}
		if *v.dst, err = NewFontSource(v.data, opts...); err != nil {
			return Family{}, fmt.Errorf("text: %s variant: %w", v.name, err)
		}
	}
	return fam, nil
}

// Variant returns the source for the requested style, falling back to
// Bold or Italic for BoldItalic and to Regular otherwise.
func (f Family) Variant(bold, italic bool) *FontSource {
	switch {
	case bold && italic:
		return firstSource(f.BoldItalic, f.Bold, f.Italic, f.Regular)
	case bold:
		return firstSource(f.Bold, f.Regular)
	case italic:
		return firstSource(f.Italic, f.Regular)
	default:
		return f.Regular
	}
}

func firstSource(sources ...*FontSource) *FontSource {
	for _, s := range sources {
		if s != nil {
			return s
		}
	}
	return nil
}

// GoFamily returns the proportional Go fonts.
func GoFamily() (Family, error) {
	return NewFamily(goregular.TTF, gobold.TTF, goitalic.TTF, gobolditalic.TTF)
}

// GoMonoFamily returns the monospace Go fonts.
func GoMonoFamily() (Family, error) {
	return NewFamily(gomono.TTF, gomonobold.TTF, gomonoitalic.TTF, gomonobolditalic.TTF)
}

func normalizeTypeface(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
