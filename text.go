package collage

import (
	"slices"
	"strings"
)

// DefaultTextHeight is the text height used when a TextStyle leaves Height
// unset.
const DefaultTextHeight = 16.0

// TextLine decorates text with a horizontal line.
type TextLine uint8

const (
	LineNone TextLine = iota
	LineUnder
	LineOver
	LineThrough
)

// TextStyle describes how a span of text looks.
// An empty Typeface or zero Height falls back to the measurer's defaults.
type TextStyle struct {
	Typeface  string
	Height    float64
	Color     RGBA
	Bold      bool
	Italic    bool
	Line      TextLine
	Monospace bool
}

// DefaultTextStyle is black, default height, default typeface, no
// decorations.
func DefaultTextStyle() TextStyle {
	return TextStyle{Color: Black}
}

// Font returns the measurement-relevant part of the style.
func (s TextStyle) Font() Font {
	size := s.Height
	if size <= 0 {
		size = DefaultTextHeight
	}
	return Font{
		Typeface:  s.Typeface,
		Size:      size,
		Bold:      s.Bold,
		Italic:    s.Italic,
		Monospace: s.Monospace,
	}
}

// Span is a run of text with a single style.
type Span struct {
	String string
	Style  TextStyle
}

// Text is an immutable sequence of styled spans.
type Text struct {
	spans []Span
}

// FromString converts a string into text with the default style.
func FromString(s string) Text {
	return Text{spans: []Span{{String: s, Style: DefaultTextStyle()}}}
}

// EmptyText returns text with nothing in it.
func EmptyText() Text {
	return FromString("")
}

// TextOf builds text from explicit spans.
func TextOf(spans ...Span) Text {
	return Text{spans: slices.Clone(spans)}
}

// Spans returns a copy of the spans.
func (t Text) Spans() []Span {
	return slices.Clone(t.spans)
}

// String returns the concatenation of all spans.
func (t Text) String() string {
	var b strings.Builder
	for _, s := range t.spans {
		b.WriteString(s.String)
	}
	return b.String()
}

// IsEmpty reports whether t contains no characters.
func (t Text) IsEmpty() bool {
	for _, s := range t.spans {
		if s.String != "" {
			return false
		}
	}
	return true
}

// Append puts two chunks of text together.
func (t Text) Append(other Text) Text {
	spans := make([]Span, 0, len(t.spans)+len(other.spans))
	spans = append(spans, t.spans...)
	spans = append(spans, other.spans...)
	return Text{spans: spans}
}

// ConcatText puts many chunks of text together.
func ConcatText(texts ...Text) Text {
	var out Text
	for _, t := range texts {
		out = out.Append(t)
	}
	return out
}

// JoinText puts many chunks of text together with a separator between
// consecutive chunks.
func JoinText(sep Text, texts ...Text) Text {
	var out Text
	for i, t := range texts {
		if i > 0 {
			out = out.Append(sep)
		}
		out = out.Append(t)
	}
	return out
}

// Equal reports whether two texts have the same spans.
func (t Text) Equal(o Text) bool {
	return slices.Equal(t.spans, o.spans)
}

// WithStyle merges all spans into one and gives it the style.
func (t Text) WithStyle(style TextStyle) Text {
	return Text{spans: []Span{{String: t.String(), Style: style}}}
}

// mapStyle returns a copy of t with f applied to every span's style.
func (t Text) mapStyle(f func(*TextStyle)) Text {
	spans := slices.Clone(t.spans)
	for i := range spans {
		f(&spans[i].Style)
	}
	return Text{spans: spans}
}

// Typeface sets the typeface of every span.
func (t Text) Typeface(name string) Text {
	return t.mapStyle(func(s *TextStyle) { s.Typeface = name })
}

// Monospace switches every span to a monospace typeface.
func (t Text) Monospace() Text {
	return t.mapStyle(func(s *TextStyle) { s.Monospace = true })
}

// Height sets the height of every span. Negative heights clamp to 0, which
// means the default height.
func (t Text) Height(h float64) Text {
	return t.mapStyle(func(s *TextStyle) { s.Height = max(h, 0) })
}

// Color sets the color of every span.
func (t Text) Color(c RGBA) Text {
	c = RGBA2(c.R, c.G, c.B, c.A)
	return t.mapStyle(func(s *TextStyle) { s.Color = c })
}

// Bold makes every span bold.
func (t Text) Bold() Text {
	return t.mapStyle(func(s *TextStyle) { s.Bold = true })
}

// Italic makes every span italic.
func (t Text) Italic() Text {
	return t.mapStyle(func(s *TextStyle) { s.Italic = true })
}

// Line puts a line on every span.
func (t Text) Line(l TextLine) Text {
	return t.mapStyle(func(s *TextStyle) { s.Line = l })
}

// MulAlpha returns t with every span color's alpha multiplied by a.
func (t Text) MulAlpha(a float64) Text {
	if a == 1 {
		return t
	}
	return t.mapStyle(func(s *TextStyle) { s.Color = s.Color.MulAlpha(a) })
}

// Font identifies a face for measurement.
type Font struct {
	Typeface  string
	Size      float64
	Bold      bool
	Italic    bool
	Monospace bool
}

// Extent is the result of measuring a run of text. Baseline is the distance
// from the top of the box to the baseline.
type Extent struct {
	Width, Height, Baseline float64
}

// Measurer measures text. Implementations must be safe for concurrent use
// and behave as pure functions of their arguments.
type Measurer interface {
	Measure(s string, font Font) Extent
}

// MeasureText lays the spans of t out and returns the combined extent.
// Lines break at '\n' or "\r\n", inside a span or across spans. Within a
// line widths add up and height takes the maximum. Lines stack downwards,
// so the extent is as wide as the widest line. Baseline is the first
// line's. A nil measurer yields a zero extent.
func MeasureText(m Measurer, t Text) Extent {
	if m == nil || len(t.spans) == 0 {
		return Extent{}
	}
	var (
		ext   Extent
		line  Extent
		blank Extent
		inked bool
		first = true
	)
	endLine := func() {
		if !inked {
			line.Height, line.Baseline = blank.Height, blank.Baseline
		}
		ext.Width = max(ext.Width, line.Width)
		ext.Height += line.Height
		if first {
			ext.Baseline = line.Baseline
			first = false
		}
		line, blank, inked = Extent{}, Extent{}, false
	}
	for _, s := range t.spans {
		f := s.Style.Font()
		for i, seg := range strings.Split(strings.ReplaceAll(s.String, "\r\n", "\n"), "\n") {
			if i > 0 {
				endLine()
			}
			e := m.Measure(seg, f)
			if seg == "" {
				blank.Height = max(blank.Height, e.Height)
				blank.Baseline = max(blank.Baseline, e.Baseline)
				continue
			}
			line.Width += e.Width
			line.Height = max(line.Height, e.Height)
			line.Baseline = max(line.Baseline, e.Baseline)
			inked = true
		}
	}
	endLine()
	return ext
}
