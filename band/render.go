package band

import (
	"fmt"
	"math"

	"github.com/scottkirkwood/galaxy/curve"
	"github.com/scottkirkwood/galaxy/sample"
)

// Renderer draws bands of stars.
type Renderer struct {
	sampler *sample.Sampler
}

// NewRenderer returns a Renderer drawing positions from s.
func NewRenderer(s *sample.Sampler) *Renderer {
	return &Renderer{sampler: s}
}

// Render adds spec.Count circles to a fresh path on surface and fills them
// all with spec.Color in one go, so overlapping stars blend once.
func (r *Renderer) Render(surface Surface, spec Spec, guide curve.Polyline) error {
	if err := spec.Validate(); err != nil {
		return err
	}
	if err := guide.Validate(); err != nil {
		return fmt.Errorf("band %s: %w", spec.Name, err)
	}
	if !guide.Contains(spec.Y.Min) || !guide.Contains(spec.Y.Max) {
		top, bottom := guide.Span()
		return fmt.Errorf("%w: %s: y %v..%v, guide %v..%v",
			ErrOutOfRange, spec.Name, spec.Y.Min, spec.Y.Max, top, bottom)
	}

	surface.BeginPath()
	for i := 0; i < spec.Count; i++ {
		y := r.sampler.Uniform(spec.Y.Min, spec.Y.Max)
		cx, _ := guide.XAtY(y)
		x := r.sampler.ApproxNormal(spec.Spread.Stdev, spec.Spread.Mean) + cx - spec.Spread.Mean
		circle(surface, x, y, r.sampler.Uniform(spec.Radius.Min, spec.Radius.Max))
	}
	surface.SetFillColor(spec.Color)
	surface.Fill()
	return nil
}

func circle(s Surface, x, y, radius float64) {
	s.MoveTo(x+radius, y)
	s.Arc(x, y, radius, 0, 2*math.Pi)
}
