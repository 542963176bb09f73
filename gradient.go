package collage

import (
	"slices"
	"sort"
)

// GradientKind distinguishes linear from radial gradients.
type GradientKind uint8

const (
	// GradientLinear interpolates along the line from Start to End.
	GradientLinear GradientKind = iota
	// GradientRadial interpolates between two circles.
	GradientRadial
)

// String returns the name of the gradient kind.
func (k GradientKind) String() string {
	switch k {
	case GradientLinear:
		return "Linear"
	case GradientRadial:
		return "Radial"
	default:
		return "Unknown"
	}
}

// ColorStop represents a color at a specific position in a gradient.
type ColorStop struct {
	Offset float64 // Position in gradient, 0.0 to 1.0
	Color  RGBA    // Color at this position
}

// Stop is a convenience constructor for ColorStop.
func Stop(offset float64, c RGBA) ColorStop {
	return ColorStop{Offset: offset, Color: c}
}

// Gradient is a validated, immutable gradient definition.
// Offsets are strictly increasing and lie in [0, 1].
type Gradient struct {
	kind        GradientKind
	start, end  Point
	startRadius float64
	endRadius   float64
	stops       []ColorStop
}

// LinearGradient creates a gradient interpolating from start to end.
func LinearGradient(start, end Point, stops ...ColorStop) (Gradient, error) {
	checked, err := checkStops(stops)
	if err != nil {
		return Gradient{}, err
	}
	return Gradient{kind: GradientLinear, start: start, end: end, stops: checked}, nil
}

// RadialGradient creates a gradient interpolating between the circle at
// start with radius r0 and the circle at end with radius r1.
// Negative radii fail with ErrInvalidGradientStops.
func RadialGradient(start Point, r0 float64, end Point, r1 float64, stops ...ColorStop) (Gradient, error) {
	if !(r0 >= 0) || !(r1 >= 0) {
		return Gradient{}, &GradientStopsError{Index: -1, Reason: "negative radius"}
	}
	checked, err := checkStops(stops)
	if err != nil {
		return Gradient{}, err
	}
	return Gradient{
		kind:        GradientRadial,
		start:       start,
		end:         end,
		startRadius: r0,
		endRadius:   r1,
		stops:       checked,
	}, nil
}

// checkStops validates stop ordering and returns a copy with colors clamped.
func checkStops(stops []ColorStop) ([]ColorStop, error) {
	if len(stops) == 0 {
		return nil, &GradientStopsError{Index: -1, Reason: "no stops"}
	}
	out := make([]ColorStop, len(stops))
	for i, s := range stops {
		if !(s.Offset >= 0 && s.Offset <= 1) {
			return nil, &GradientStopsError{Index: i, Reason: "offset outside [0, 1]"}
		}
		if i > 0 && s.Offset <= stops[i-1].Offset {
			return nil, &GradientStopsError{Index: i, Reason: "offsets not strictly increasing"}
		}
		c := s.Color
		out[i] = ColorStop{Offset: s.Offset, Color: RGBA2(c.R, c.G, c.B, c.A)}
	}
	return out, nil
}

// Kind returns whether g is linear or radial.
func (g Gradient) Kind() GradientKind { return g.kind }

// Start returns the start point (centre of the inner circle for radial).
func (g Gradient) Start() Point { return g.start }

// End returns the end point (centre of the outer circle for radial).
func (g Gradient) End() Point { return g.end }

// Radii returns the inner and outer radius of a radial gradient.
func (g Gradient) Radii() (r0, r1 float64) { return g.startRadius, g.endRadius }

// Stops returns a copy of the color stops.
func (g Gradient) Stops() []ColorStop { return slices.Clone(g.stops) }

// MulAlpha returns g with every stop's alpha multiplied by a.
func (g Gradient) MulAlpha(a float64) Gradient {
	if a == 1 {
		return g
	}
	stops := make([]ColorStop, len(g.stops))
	for i, s := range g.stops {
		stops[i] = ColorStop{Offset: s.Offset, Color: s.Color.MulAlpha(a)}
	}
	g.stops = stops
	return g
}

// ColorAt returns the interpolated color at t. Values of t outside [0, 1]
// take the color of the nearest end stop.
func (g Gradient) ColorAt(t float64) RGBA {
	if len(g.stops) == 0 {
		return Transparent
	}
	t = clamp01(t)
	idx := sort.Search(len(g.stops), func(i int) bool {
		return g.stops[i].Offset >= t
	})
	if idx == 0 {
		return g.stops[0].Color
	}
	if idx >= len(g.stops) {
		return g.stops[len(g.stops)-1].Color
	}
	s0, s1 := g.stops[idx-1], g.stops[idx]
	return s0.Color.Lerp(s1.Color, (t-s0.Offset)/(s1.Offset-s0.Offset))
}

// Equal reports whether two gradients are identical.
func (g Gradient) Equal(o Gradient) bool {
	return g.kind == o.kind && g.start == o.start && g.end == o.end &&
		g.startRadius == o.startRadius && g.endRadius == o.endRadius &&
		slices.Equal(g.stops, o.stops)
}
