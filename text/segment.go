package text

import (
	"strings"

	"golang.org/x/text/unicode/bidi"
)

// Direction is the base direction of a line of text.
type Direction uint8

const (
	// DirectionLTR is left-to-right text (Latin, Cyrillic, CJK).
	DirectionLTR Direction = iota
	// DirectionRTL is right-to-left text (Arabic, Hebrew).
	DirectionRTL
)

// String returns the name of the direction.
func (d Direction) String() string {
	switch d {
	case DirectionLTR:
		return "LTR"
	case DirectionRTL:
		return "RTL"
	default:
		return "Unknown"
	}
}

// DetectDirection returns the base direction of line according to the
// Unicode Bidirectional Algorithm: the direction of its first run.
// Lines without strong characters are LTR.
func DetectDirection(line string) Direction {
	if line == "" {
		return DirectionLTR
	}

	p := bidi.Paragraph{}
	if _, err := p.SetString(line, bidi.DefaultDirection(bidi.LeftToRight)); err != nil {
		return DirectionLTR
	}
	ordering, err := p.Order()
	if err != nil || ordering.NumRuns() == 0 {
		return DirectionLTR
	}
	// The ordering reports the direction of its first run.
	if ordering.Direction() == bidi.RightToLeft {
		return DirectionRTL
	}
	return DirectionLTR
}

// splitLines splits s on '\n'. A trailing newline yields an empty last line,
// which still counts towards the height.
func splitLines(s string) []string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return strings.Split(s, "\n")
}
