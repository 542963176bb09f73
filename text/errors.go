package text

import "errors"

// Sentinel errors for text package.
var (
	// ErrEmptyFontData is returned when font data is empty.
	ErrEmptyFontData = errors.New("text: empty font data")

	// ErrUnknownTypeface is returned when a typeface name has no family.
	ErrUnknownTypeface = errors.New("text: unknown typeface")

	// ErrUnknownParser is returned when WithParser names an unregistered parser.
	ErrUnknownParser = errors.New("text: unknown font parser")
)
