package galaxy

import (
	"errors"
	"image/color"
	"io"
	"math/rand"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/google/go-cmp/cmp"
	"github.com/scottkirkwood/galaxy/config"
	"github.com/scottkirkwood/galaxy/curve"
)

// recorder is a Surface that counts calls by name.
type recorder struct {
	calls []string
}

func (r *recorder) add(s string) { r.calls = append(r.calls, s) }
func (r *recorder) Clear(col color.Color) { r.add("clear") }
func (r *recorder) BeginPath() { r.add("begin") }
func (r *recorder) MoveTo(x, y float64) { r.add("move") }
func (r *recorder) LineTo(x, y float64) { r.add("line") }
func (r *recorder) Arc(cx, cy, rad, a0, a1 float64) { r.add("arc") }
func (r *recorder) SetFillColor(col color.Color) { r.add("fill-color") }
func (r *recorder) SetStrokeColor(col color.Color) { r.add("stroke-color") }
func (r *recorder) SetStrokeWidth(width float64) { r.add("width") }
func (r *recorder) Fill() { r.add("fill") }
func (r *recorder) Stroke() { r.add("stroke") }

func (r *recorder) count(call string) int {
	n := 0
	for _, c := range r.calls {
		if c == call {
			n++
		}
	}
	return n
}

var quiet = log.New(io.Discard)

func smallConfig() config.Config {
	cfg := config.Default()
	cfg.Width, cfg.Height = 240, 90
	return cfg
}

func TestDrawDefaultBands(t *testing.T) {
	rec := &recorder{}
	guide, err := NewPlane(smallConfig(), rand.New(rand.NewSource(3)), quiet).Draw(rec)
	if err != nil {
		t.Fatalf("Draw: %v", err)
	}
	if len(guide) != 33 {
		t.Errorf("Want 33 guide points, got %d", len(guide))
	}
	if err := guide.Validate(); err != nil {
		t.Errorf("guide: %v", err)
	}
	if n := rec.count("fill"); n != 4 {
		t.Errorf("Want one fill per band, got %d", n)
	}
	if want, got := 9000+2250+900+30, rec.count("arc"); got != want {
		t.Errorf("Want %d stars, got %d", want, got)
	}
	if n := rec.count("clear") + rec.count("stroke"); n != 0 {
		t.Errorf("Want no background or overlays, got %d calls", n)
	}
}

func TestDrawOverlaysAndBackground(t *testing.T) {
	cfg := smallConfig()
	cfg.Background = "#000000"
	cfg.Debug.Guide = true
	cfg.Debug.Trace = true
	cfg.Bands = nil
	rec := &recorder{}
	guide, err := NewPlane(cfg, rand.New(rand.NewSource(4)), quiet).Draw(rec)
	if err != nil {
		t.Fatalf("Draw: %v", err)
	}
	if rec.calls[0] != "clear" {
		t.Errorf("Want background cleared first, got %q", rec.calls[0])
	}
	if n := rec.count("stroke"); n != 2 {
		t.Errorf("Want 2 overlay strokes, got %d", n)
	}
	// Guide has len-1 segments, the trace one per scanline.
	if want, got := len(guide)-1+cfg.Height, rec.count("line"); got != want {
		t.Errorf("Want %d line segments, got %d", want, got)
	}
}

func TestDrawDeterministic(t *testing.T) {
	var guides []curve.Polyline
	for i := 0; i < 2; i++ {
		seed, err := Init("5eed")
		if err != nil {
			t.Fatal(err)
		}
		g, err := NewPlane(smallConfig(), seed.Rand(), quiet).Draw(&recorder{})
		if err != nil {
			t.Fatalf("Draw: %v", err)
		}
		guides = append(guides, g)
	}
	if diff := cmp.Diff(guides[0], guides[1]); diff != "" {
		t.Errorf("same seed gave different guides (-first +second):\n%s", diff)
	}
}

func TestDrawInvalidConfig(t *testing.T) {
	cfg := smallConfig()
	cfg.Bands[1].RadiusMin = 5
	rec := &recorder{}
	_, err := NewPlane(cfg, rand.New(rand.NewSource(1)), quiet).Draw(rec)
	if !errors.Is(err, config.ErrInvalid) {
		t.Errorf("Want config.ErrInvalid, got %v", err)
	}
	if len(rec.calls) != 0 {
		t.Errorf("Want nothing drawn, got %d calls", len(rec.calls))
	}
}

func TestDrawRaster(t *testing.T) {
	cfg := smallConfig()
	cfg.Background = "#000000"
	ic := NewImageContext(cfg.Width, cfg.Height)
	guide, err := NewPlane(cfg, rand.New(rand.NewSource(9)), quiet).Draw(ic)
	if err != nil {
		t.Fatalf("Draw: %v", err)
	}
	img := ic.Image()
	if b := img.Bounds(); b.Dx() != cfg.Width || b.Dy() != cfg.Height {
		t.Fatalf("Want %dx%d image, got %v", cfg.Width, cfg.Height, b)
	}
	// The band is brightest along the guide and fades out to the sides.
	near, far := brightness(img, guide, 0), brightness(img, guide, 110)
	if near <= far {
		t.Errorf("Want more light on the guide (%d) than off it (%d)", near, far)
	}
}

// brightness sums the red channel along the guide shifted right by dx.
func brightness(img interface {
	At(x, y int) color.Color
}, guide curve.Polyline, dx float64) uint32 {
	_, bottom := guide.Span()
	var sum uint32
	for y := 0; y < int(bottom); y++ {
		x, _ := guide.XAtY(float64(y))
		r, _, _, _ := img.At(int(x+dx), y).RGBA()
		sum += r >> 8
	}
	return sum
}
