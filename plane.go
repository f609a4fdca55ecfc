// Package galaxy paints a starry galactic plane for use as a background.
//
// A vertical guide line is bent by recursive midpoint displacement into a
// wandering curve, then several bands of translucent stars are scattered
// around it, each band filled in a single pass. The drawing goes onto any
// Surface: Context writes vector and PNG output with canvas, ImageContext
// renders in memory with gg.
package galaxy

import (
	"image/color"

	"github.com/charmbracelet/log"
	"github.com/scottkirkwood/galaxy/band"
	"github.com/scottkirkwood/galaxy/config"
	"github.com/scottkirkwood/galaxy/curve"
	"github.com/scottkirkwood/galaxy/sample"
)

// overlayWidth is the stroke width of the debug overlays, in pixels.
const overlayWidth = 1

// Surface is what a Plane is drawn onto.
type Surface interface {
	band.Surface
	// Clear paints the whole surface with col.
	Clear(col color.Color)
}

// Plane draws one galaxy from a config and a random source.
type Plane struct {
	cfg     config.Config
	sampler *sample.Sampler
	logger  *log.Logger
}

// NewPlane returns a Plane. A nil logger falls back to log.Default.
func NewPlane(cfg config.Config, src sample.Source, logger *log.Logger) *Plane {
	if logger == nil {
		logger = log.Default()
	}
	return &Plane{cfg: cfg, sampler: sample.New(src), logger: logger}
}

// Guide bends a fresh guide curve running the full height of the canvas.
func (p *Plane) Guide() curve.Polyline {
	guide := curve.NewGuide(p.cfg.GuideX(), 0, float64(p.cfg.Height))
	b := curve.NewBender(p.sampler)
	b.MaxDraws = p.cfg.Guide.MaxDraws
	wx, wy := p.cfg.Wiggle()
	b.Bend(&guide, 0, wx, wy, p.cfg.Guide.Depth)
	return guide
}

// Draw paints the background, the optional overlays and every band onto s,
// and returns the guide curve used. The first failing band aborts the draw.
func (p *Plane) Draw(s Surface) (curve.Polyline, error) {
	if err := p.cfg.Validate(); err != nil {
		return nil, err
	}
	specs, err := p.cfg.Specs()
	if err != nil {
		return nil, err
	}

	if p.cfg.Background != "" {
		bg, err := config.ParseColor(p.cfg.Background, 1)
		if err != nil {
			return nil, err
		}
		s.Clear(bg)
	}

	prog := newProgress(p.logger)
	guide := p.Guide()
	prog.done("Bent guide", "points", len(guide), "depth", p.cfg.Guide.Depth)

	if err := p.drawOverlays(s, guide); err != nil {
		return nil, err
	}

	r := band.NewRenderer(p.sampler)
	for _, spec := range specs {
		prog := newProgress(p.logger)
		if err := r.Render(s, spec, guide); err != nil {
			return nil, err
		}
		prog.done("Rendered band", "name", spec.Name, "stars", spec.Count)
	}
	p.logger.Info("Drew galaxy", "width", p.cfg.Width, "height", p.cfg.Height, "bands", len(specs))
	return guide, nil
}

func (p *Plane) drawOverlays(s Surface, guide curve.Polyline) error {
	dbg := p.cfg.Debug
	if dbg.Guide {
		col, err := config.ParseColor(dbg.GuideColor, 1)
		if err != nil {
			return err
		}
		band.DrawGuide(s, guide, col, overlayWidth)
	}
	if dbg.Trace {
		col, err := config.ParseColor(dbg.TraceColor, 1)
		if err != nil {
			return err
		}
		band.DrawTrace(s, guide, col, overlayWidth)
	}
	return nil
}
