// Package band scatters stars around a guide curve in layered passes.
package band

import "image/color"

// Surface is the drawing primitive set a band is rendered onto. Drawing
// calls accumulate into a current path that Fill or Stroke paints.
type Surface interface {
	// BeginPath discards the current path.
	BeginPath()
	MoveTo(x, y float64)
	LineTo(x, y float64)
	// Arc adds an arc around cx,cy of radius r from angle a0 to a1 in
	// radians. The current point must be the arc's start; the sign of
	// a1-a0 gives the direction.
	Arc(cx, cy, r, a0, a1 float64)
	SetFillColor(col color.Color)
	SetStrokeColor(col color.Color)
	SetStrokeWidth(width float64)
	// Fill paints the current path and resets it.
	Fill()
	// Stroke outlines the current path and resets it.
	Stroke()
}
