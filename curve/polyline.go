// Package curve builds the wandering guide curve a galaxy is drawn around and
// answers where that curve sits on any scanline.
package curve

import (
	"errors"
	"fmt"
	"math"
	"sort"
)

var (
	// ErrTooShort is returned for a polyline with fewer than two points.
	ErrTooShort = errors.New("polyline needs at least two points")

	// ErrNotIncreasing is returned when y does not strictly increase.
	ErrNotIncreasing = errors.New("polyline y values not strictly increasing")

	// ErrNotDominant is returned when a segment is not steeper than 45 degrees.
	ErrNotDominant = errors.New("polyline segment not vertically dominant")
)

// Point is a 2D coordinate.
type Point struct {
	X, Y float64
}

// Polyline is an ordered sequence of points running top to bottom.
type Polyline []Point

// NewGuide returns the two-point vertical segment at x running from top to
// bottom, the starting shape for Bend.
func NewGuide(x, top, bottom float64) Polyline {
	return Polyline{{X: x, Y: top}, {X: x, Y: bottom}}
}

// Span returns the first and last y of the polyline.
func (pl Polyline) Span() (top, bottom float64) {
	if len(pl) == 0 {
		return 0, 0
	}
	return pl[0].Y, pl[len(pl)-1].Y
}

// Contains reports whether y lies within the polyline's vertical span.
func (pl Polyline) Contains(y float64) bool {
	if len(pl) < 2 {
		return false
	}
	top, bottom := pl.Span()
	return y >= top && y <= bottom
}

// Validate checks the invariants XAtY relies on: at least two points, strictly
// increasing y, and |dy| > |dx| for every segment.
func (pl Polyline) Validate() error {
	if len(pl) < 2 {
		return fmt.Errorf("%w: got %d", ErrTooShort, len(pl))
	}
	for i := 1; i < len(pl); i++ {
		p0, p1 := pl[i-1], pl[i]
		if p1.Y <= p0.Y {
			return fmt.Errorf("%w: point %d at y=%v after y=%v", ErrNotIncreasing, i, p1.Y, p0.Y)
		}
		if !dominant(p0, p1) {
			return fmt.Errorf("%w: segment %d %v -> %v", ErrNotDominant, i-1, p0, p1)
		}
	}
	return nil
}

// dominant reports whether the segment a-b spans more vertically than
// horizontally.
func dominant(a, b Point) bool {
	return math.Abs(b.Y-a.Y) > math.Abs(b.X-a.X)
}

// insert places p directly after index i. Every index above i shifts by one.
func (pl *Polyline) insert(i int, p Point) {
	s := append(*pl, Point{})
	copy(s[i+2:], s[i+1:])
	s[i+1] = p
	*pl = s
}

// XAtY returns the x coordinate of the polyline on scanline y. The second
// result is false when y lies outside the polyline's span. A query exactly at
// the last point's y returns that point's x.
func (pl Polyline) XAtY(y float64) (float64, bool) {
	if !pl.Contains(y) {
		return 0, false
	}
	// First point strictly below y.
	i := sort.Search(len(pl)-1, func(i int) bool { return pl[i+1].Y > y }) + 1
	if i == len(pl) {
		return pl[len(pl)-1].X, true
	}
	x0, y0 := pl[i-1].X, pl[i-1].Y
	x1, y1 := pl[i].X, pl[i].Y
	t := (y - y0) / (y1 - y0)
	// Segments only ever head south-south-east or south-south-west.
	if x0 > x1 {
		return x0 - t*(x0-x1), true
	}
	return x0 + t*(x1-x0), true
}

// Trace samples XAtY on every step-th scanline from the top of the polyline to
// its bottom, inclusive of both ends.
func (pl Polyline) Trace(step float64) []Point {
	if len(pl) < 2 || step <= 0 {
		return nil
	}
	top, bottom := pl.Span()
	pts := make([]Point, 0, int((bottom-top)/step)+2)
	for y := top; y < bottom; y += step {
		x, _ := pl.XAtY(y)
		pts = append(pts, Point{X: x, Y: y})
	}
	return append(pts, pl[len(pl)-1])
}
