package gradient

import (
	"errors"
	"fmt"
	"strings"
)

// ErrEmptyGradient is returned when a gradient is built from zero stops.
var ErrEmptyGradient = errors.New("gradient has no stops")

// Gradient is an ordered, non-empty list of color stops spread evenly over
// [0, 1]. N stops divide the domain into N-1 segments of equal width; a single
// stop yields that stop's color everywhere.
//
// A Gradient is immutable. Changing the stops means building a new Gradient.
type Gradient struct {
	stops []Color
}

// New creates a gradient from the given stops in order.
// It panics if no stops are given.
func New(stops ...Color) Gradient {
	g, err := FromStops(stops)
	if err != nil {
		panic(err)
	}
	return g
}

// FromStops creates a gradient from a slice of stops, copying it.
// It returns ErrEmptyGradient when stops is empty.
func FromStops(stops []Color) (Gradient, error) {
	if len(stops) == 0 {
		return Gradient{}, ErrEmptyGradient
	}
	cp := make([]Color, len(stops))
	copy(cp, stops)
	return Gradient{stops: cp}, nil
}

// Parse builds a gradient from color strings using the supplied parser,
// typically style.ParseColor.
func Parse(parse func(string) (Color, error), specs ...string) (Gradient, error) {
	if len(specs) == 0 {
		return Gradient{}, ErrEmptyGradient
	}
	stops := make([]Color, 0, len(specs))
	for i, s := range specs {
		c, err := parse(s)
		if err != nil {
			return Gradient{}, fmt.Errorf("stop %d: %w", i, err)
		}
		stops = append(stops, c)
	}
	return Gradient{stops: stops}, nil
}

// Len returns the number of stops.
func (g Gradient) Len() int {
	return len(g.stops)
}

// IsZero reports whether g was never initialized.
func (g Gradient) IsZero() bool {
	return len(g.stops) == 0
}

// Stops returns a copy of the stops.
func (g Gradient) Stops() []Color {
	out := make([]Color, len(g.stops))
	copy(out, g.stops)
	return out
}

// First returns the leftmost stop.
func (g Gradient) First() Color {
	g.mustHaveStops()
	return g.stops[0]
}

// Last returns the rightmost stop.
func (g Gradient) Last() Color {
	g.mustHaveStops()
	return g.stops[len(g.stops)-1]
}

// Equal reports whether both gradients have identical stops.
func (g Gradient) Equal(other Gradient) bool {
	if len(g.stops) != len(other.stops) {
		return false
	}
	for i := range g.stops {
		if g.stops[i] != other.stops[i] {
			return false
		}
	}
	return true
}

// At returns the color at a percentage in [0, 1]. It is MapValueToColor with a
// maximum of 1.
func (g Gradient) At(percentage float64) Color {
	return MapValueToColor(percentage, 1, g)
}

// String lists the stops, e.g. "[#FF0000FF #00FF00FF]".
func (g Gradient) String() string {
	parts := make([]string, len(g.stops))
	for i, c := range g.stops {
		parts[i] = c.String()
	}
	return "[" + strings.Join(parts, " ") + "]"
}

func (g Gradient) mustHaveStops() {
	if len(g.stops) == 0 {
		panic(ErrEmptyGradient)
	}
}

// MapValueToColor returns the color of a handle dragged to value along a track
// of length maximum.
//
// The segment is chosen by flooring value/maximum over the segment width. The
// interpolation parameter is the raw percentage along the whole gradient, not the
// fraction within the segment, so gradients with more than two stops jump at
// segment boundaries. Existing renders depend on this.
//
// A percentage landing on or past the final stop returns the last stop. It
// panics if maximum is not positive or the gradient is empty.
func MapValueToColor(value, maximum float64, g Gradient) Color {
	g.mustHaveStops()
	if !(maximum > 0) {
		panic(fmt.Sprintf("gradient: maximum must be positive, got %v", maximum))
	}

	segments := len(g.stops) - 1
	if segments == 0 {
		return g.stops[0]
	}

	step := 1.0 / float64(segments)
	percentage := value / maximum

	index := int(percentage / step)
	if index >= segments {
		return g.stops[segments]
	}
	if index < 0 {
		// value below zero: the segment lookup would underflow.
		index = 0
	}
	return Interpolate(g.stops[index], g.stops[index+1], percentage)
}
