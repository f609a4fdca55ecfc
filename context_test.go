package galaxy

import (
	"image"
	"image/color"
	_ "image/png"
	"math"
	"os"
	"path/filepath"
	"testing"
)

func TestContextFillCircle(t *testing.T) {
	// Circle in the top half, so a missing y flip would light the bottom half.
	ctx := NewContext(20, 20)
	ctx.BeginPath()
	ctx.MoveTo(10, 6)
	ctx.Arc(6, 6, 4, 0, 2*math.Pi)
	ctx.SetFillColor(color.White)
	ctx.Fill()

	fname := filepath.Join(t.TempDir(), "circle.png")
	if err := ctx.WriteFile(fname); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	img := decodePNG(t, fname)
	if b := img.Bounds(); b.Dx() != 20 || b.Dy() != 20 {
		t.Fatalf("Want a 20x20 image, got %v", b)
	}

	tests := []struct {
		x, y   int
		filled bool
	}{
		{6, 6, true},
		{6, 14, false},
		{1, 1, false},
		{18, 18, false},
	}
	for _, tt := range tests {
		_, _, _, a := img.At(tt.x, tt.y).RGBA()
		if filled := a>>8 > 200; filled != tt.filled {
			t.Errorf("Want pixel (%d, %d) filled=%v, got alpha %d", tt.x, tt.y, tt.filled, a>>8)
		}
	}
}

func decodePNG(t *testing.T, fname string) image.Image {
	t.Helper()
	f, err := os.Open(fname)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	img, _, err := image.Decode(f)
	if err != nil {
		t.Fatalf("Decode %s: %v", fname, err)
	}
	return img
}
