package band

import (
	"image/color"

	"github.com/scottkirkwood/galaxy/curve"
)

// DrawGuide strokes the guide polyline point to point.
func DrawGuide(s Surface, guide curve.Polyline, col color.Color, width float64) {
	stroke(s, guide, col, width)
}

// DrawTrace strokes the curve XAtY reports on every scanline, which should
// sit exactly on top of DrawGuide.
func DrawTrace(s Surface, guide curve.Polyline, col color.Color, width float64) {
	stroke(s, guide.Trace(1), col, width)
}

func stroke(s Surface, pts []curve.Point, col color.Color, width float64) {
	if len(pts) < 2 {
		return
	}
	s.BeginPath()
	s.MoveTo(pts[0].X, pts[0].Y)
	for _, p := range pts[1:] {
		s.LineTo(p.X, p.Y)
	}
	s.SetStrokeColor(col)
	s.SetStrokeWidth(width)
	s.Stroke()
}
