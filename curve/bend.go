package curve

import (
	"math"

	"github.com/scottkirkwood/galaxy/sample"
)

// DefaultMaxDraws caps each rejection loop in Bend.
const DefaultMaxDraws = 1000

// Bender wiggles a polyline by recursive midpoint displacement.
type Bender struct {
	Sampler *sample.Sampler

	// MaxDraws bounds the redraws of each rejection loop. When a loop runs
	// out the exact midpoint is used. Zero means retry forever.
	MaxDraws int
}

// NewBender returns a Bender drawing from s with DefaultMaxDraws.
func NewBender(s *sample.Sampler) *Bender {
	return &Bender{Sampler: s, MaxDraws: DefaultMaxDraws}
}

// Bend inserts a displaced midpoint between pl[start] and pl[start+1], then
// recurses into both new segments with half the wiggle, depth times. A
// two-point polyline ends with 2^depth+1 points. Negative depth is treated as
// zero.
//
// Insertion at index i shifts every index above i, so the right segment is
// bent before the left one: its index is still start+1 at that point.
func (b *Bender) Bend(pl *Polyline, start int, wiggleX, wiggleY float64, depth int) {
	if depth <= 0 {
		return
	}
	a, c := (*pl)[start], (*pl)[start+1]
	mid := Point{X: midpoint(a.X, c.X), Y: midpoint(a.Y, c.Y)}

	p, ok := b.displace(a, c, mid, wiggleX, wiggleY)
	if !ok || !dominant(a, p) || !dominant(p, c) {
		p = mid
	}
	pl.insert(start, p)

	b.Bend(pl, start+1, wiggleX/2, wiggleY/2, depth-1)
	b.Bend(pl, start, wiggleX/2, wiggleY/2, depth-1)
}

// displace draws a candidate point around mid. x must move at least
// wiggleX/2 away from mid.X and y must land strictly between a.Y and c.Y.
func (b *Bender) displace(a, c, mid Point, wiggleX, wiggleY float64) (Point, bool) {
	x, ok := b.draw(wiggleX, mid.X, func(x float64) bool {
		return math.Abs(x-mid.X) >= wiggleX/2
	})
	if !ok {
		return mid, false
	}
	y, ok := b.draw(wiggleY, mid.Y, func(y float64) bool {
		return y > a.Y && y < c.Y
	})
	if !ok {
		return mid, false
	}
	return Point{X: x, Y: y}, true
}

// draw rounds ApproxNormal(stdev, mean) to a whole pixel until accept holds.
func (b *Bender) draw(stdev, mean float64, accept func(float64) bool) (float64, bool) {
	for i := 0; b.MaxDraws <= 0 || i < b.MaxDraws; i++ {
		v := math.Round(b.Sampler.ApproxNormal(stdev, mean))
		if accept(v) {
			return v, true
		}
	}
	return 0, false
}

func midpoint(a, b float64) float64 {
	return math.Min(a, b) + math.Abs(a-b)/2
}
