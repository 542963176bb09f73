package collage

import (
	"errors"
	"fmt"
)

// Sentinel errors. Use errors.Is to test for them; constructors usually
// return them wrapped in one of the typed errors below.
var (
	// ErrSingularTransform is returned when inverting a matrix whose
	// determinant is within Epsilon of zero.
	ErrSingularTransform = errors.New("collage: singular transform")

	// ErrInvalidLayoutSpec is returned for negative sizes or paddings and
	// alignment fractions outside [0, 1].
	ErrInvalidLayoutSpec = errors.New("collage: invalid layout spec")

	// ErrInvalidGradientStops is returned for an empty stop list, offsets
	// outside [0, 1], or offsets that are not strictly increasing.
	ErrInvalidGradientStops = errors.New("collage: invalid gradient stops")
)

// LayoutSpecError describes the field that made a layout specification
// invalid.
type LayoutSpecError struct {
	Field string
	Value float64
}

func (e *LayoutSpecError) Error() string {
	return fmt.Sprintf("collage: invalid layout spec: %s = %g", e.Field, e.Value)
}

// Unwrap returns ErrInvalidLayoutSpec.
func (e *LayoutSpecError) Unwrap() error { return ErrInvalidLayoutSpec }

// CheckNonNegative returns a *LayoutSpecError when v is negative or NaN.
func CheckNonNegative(field string, v float64) error {
	if !(v >= 0) {
		return &LayoutSpecError{Field: field, Value: v}
	}
	return nil
}

// CheckFraction returns a *LayoutSpecError when v is outside [0, 1].
func CheckFraction(field string, v float64) error {
	if !(v >= 0 && v <= 1) {
		return &LayoutSpecError{Field: field, Value: v}
	}
	return nil
}

// GradientStopsError reports which stop broke the gradient rules.
type GradientStopsError struct {
	Index  int
	Reason string
}

func (e *GradientStopsError) Error() string {
	if e.Index < 0 {
		return "collage: invalid gradient stops: " + e.Reason
	}
	return fmt.Sprintf("collage: invalid gradient stops: stop %d: %s", e.Index, e.Reason)
}

// Unwrap returns ErrInvalidGradientStops.
func (e *GradientStopsError) Unwrap() error { return ErrInvalidGradientStops }
