package band

import (
	"errors"
	"fmt"
	"image/color"
	"math"
)

var (
	// ErrInvalidSpec is returned for a Spec that cannot be rendered.
	ErrInvalidSpec = errors.New("invalid band spec")

	// ErrOutOfRange is returned when a band reaches outside the guide curve.
	ErrOutOfRange = errors.New("band outside guide span")
)

// Range is a closed interval.
type Range struct {
	Min, Max float64
}

// Spread places stars horizontally: a normal offset of Stdev around Mean,
// re-centered onto the guide curve.
type Spread struct {
	Mean, Stdev float64
}

// Spec describes one rendering pass.
type Spec struct {
	Name   string
	Count  int
	Radius Range
	Color  color.Color
	Y      Range
	Spread Spread
}

// Validate rejects specs that would produce garbage coordinates.
func (s Spec) Validate() error {
	switch {
	case !finite(s.Radius.Min, s.Radius.Max, s.Y.Min, s.Y.Max, s.Spread.Mean, s.Spread.Stdev):
		return fmt.Errorf("%w: %s: radius, y and spread must be finite", ErrInvalidSpec, s.Name)
	case s.Count < 0:
		return fmt.Errorf("%w: %s: negative star count %d", ErrInvalidSpec, s.Name, s.Count)
	case s.Radius.Min > s.Radius.Max:
		return fmt.Errorf("%w: %s: radius range %v..%v inverted", ErrInvalidSpec, s.Name, s.Radius.Min, s.Radius.Max)
	case s.Radius.Min < 0:
		return fmt.Errorf("%w: %s: negative radius %v", ErrInvalidSpec, s.Name, s.Radius.Min)
	case s.Y.Min > s.Y.Max:
		return fmt.Errorf("%w: %s: y range %v..%v inverted", ErrInvalidSpec, s.Name, s.Y.Min, s.Y.Max)
	case s.Spread.Stdev < 0:
		return fmt.Errorf("%w: %s: negative stdev %v", ErrInvalidSpec, s.Name, s.Spread.Stdev)
	case s.Color == nil:
		return fmt.Errorf("%w: %s: no color", ErrInvalidSpec, s.Name)
	}
	return nil
}

// finite reports whether none of vals is NaN or infinite.
func finite(vals ...float64) bool {
	for _, v := range vals {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}
