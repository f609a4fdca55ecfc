package galaxy

import (
	"bytes"
	"errors"
	"image/color"
	_ "image/png"
	"math/rand"
	"os"
	"path/filepath"
	"testing"
)

func TestImageContextClear(t *testing.T) {
	ic := NewImageContext(4, 3)
	ic.Clear(color.NRGBA{10, 20, 30, 255})
	r, g, b, a := ic.Image().At(2, 1).RGBA()
	if r>>8 != 10 || g>>8 != 20 || b>>8 != 30 || a>>8 != 255 {
		t.Errorf("Want (10, 20, 30, 255), got (%d, %d, %d, %d)", r>>8, g>>8, b>>8, a>>8)
	}
}

func TestImageContextFillCircle(t *testing.T) {
	ic := NewImageContext(20, 20)
	ic.BeginPath()
	ic.MoveTo(15, 10)
	ic.Arc(10, 10, 5, 0, 6.283185307179586)
	ic.SetFillColor(color.White)
	ic.Fill()
	if r, _, _, _ := ic.Image().At(10, 10).RGBA(); r>>8 != 255 {
		t.Errorf("Want white at circle center, got red %d", r>>8)
	}
	if _, _, _, a := ic.Image().At(1, 1).RGBA(); a != 0 {
		t.Errorf("Want transparent corner, got alpha %d", a)
	}
}

func TestSafeWrite(t *testing.T) {
	dir := t.TempDir()
	s, _ := Init("c0ffee")
	ic := NewImageContext(8, 8)
	ic.Clear(color.Black)

	fname, err := s.SafeWrite(ic, filepath.Join(dir, "nested", "galaxy-"), ".png")
	if err != nil {
		t.Fatalf("SafeWrite: %v", err)
	}
	info, err := os.Stat(fname)
	if err != nil {
		t.Fatalf("Stat: %v", err)
	}
	if info.Size() == 0 {
		t.Errorf("Want a non-empty file")
	}
	frames := DecodeImages([]string{fname}, quiet)
	if len(frames) != 1 || frames[0].Image.Bounds().Dx() != 8 {
		t.Errorf("Want the written image to decode as 8 pixels wide, got %v", frames)
	}
	leftovers, _ := filepath.Glob(filepath.Join(dir, "nested", "galaxy.*"))
	if len(leftovers) != 0 {
		t.Errorf("Want temp files cleaned up, got %v", leftovers)
	}
}

func TestSafeWriteUnsupported(t *testing.T) {
	dir := t.TempDir()
	s, _ := Init("1")
	_, err := s.SafeWrite(NewImageContext(2, 2), filepath.Join(dir, "galaxy-"), ".svg")
	if !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("Want ErrUnsupportedFormat, got %v", err)
	}
	if left, _ := filepath.Glob(filepath.Join(dir, "*")); len(left) != 0 {
		t.Errorf("Want no files left behind, got %v", left)
	}
}

func TestVectorContextFormats(t *testing.T) {
	ctx := NewContext(10, 10)
	err := ctx.WriteFile(filepath.Join(t.TempDir(), "x.gif"))
	if !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("Want ErrUnsupportedFormat, got %v", err)
	}
}

func TestClampInt(t *testing.T) {
	tests := []struct {
		cur, low, high, want int
	}{
		{5, 0, 10, 5},
		{-1, 0, 10, 0},
		{11, 0, 10, 10},
		{11, 10, 0, 10},
	}
	for _, tt := range tests {
		if got := ClampInt(tt.cur, tt.low, tt.high); got != tt.want {
			t.Errorf("Want ClampInt(%d, %d, %d) = %d, got %d", tt.cur, tt.low, tt.high, tt.want, got)
		}
	}
}

func TestDrawVectorSVG(t *testing.T) {
	cfg := smallConfig()
	cfg.Debug.Guide = true
	for i := range cfg.Bands {
		cfg.Bands[i].Density = 0.5
	}
	ctx := NewContext(float64(cfg.Width), float64(cfg.Height))
	if _, err := NewPlane(cfg, rand.New(rand.NewSource(2)), quiet).Draw(ctx); err != nil {
		t.Fatalf("Draw: %v", err)
	}
	fname := filepath.Join(t.TempDir(), "galaxy.svg")
	if err := ctx.WriteFile(fname); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	data, err := os.ReadFile(fname)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Contains(data, []byte("<svg")) {
		t.Errorf("Want an svg document, got %.80q", data)
	}
}
