package galaxy

import (
	"fmt"
	"image"
	"image/color"
	"path/filepath"
	"strings"

	"github.com/fogleman/gg"
)

const jpegQuality = 95

// ImageContext draws straight into an in-memory RGBA image with gg. Unlike
// Context it can hand the picture back without going through a file.
type ImageContext struct {
	dc *gg.Context
}

// NewImageContext returns a raster context of width by height pixels.
func NewImageContext(width, height int) *ImageContext {
	return &ImageContext{dc: gg.NewContext(width, height)}
}

// Image returns the pixels drawn so far.
func (ic *ImageContext) Image() image.Image {
	return ic.dc.Image()
}

// WriteFile saves the image as .png or .jpg.
func (ic *ImageContext) WriteFile(fname string) error {
	switch ext := strings.ToLower(filepath.Ext(fname)); ext {
	case ".png":
		return ic.dc.SavePNG(fname)
	case ".jpg", ".jpeg":
		return gg.SaveJPG(fname, ic.dc.Image(), jpegQuality)
	default:
		return fmt.Errorf("%w %s for raster output", ErrUnsupportedFormat, ext)
	}
}

// Clear paints the whole image with col.
func (ic *ImageContext) Clear(col color.Color) {
	ic.dc.Push()
	ic.dc.SetColor(col)
	ic.dc.Clear()
	ic.dc.Pop()
}

func (ic *ImageContext) BeginPath() {
	ic.dc.ClearPath()
}

func (ic *ImageContext) MoveTo(x, y float64) {
	ic.dc.MoveTo(x, y)
}

func (ic *ImageContext) LineTo(x, y float64) {
	ic.dc.LineTo(x, y)
}

func (ic *ImageContext) Arc(cx, cy, r, a0, a1 float64) {
	ic.dc.DrawArc(cx, cy, r, a0, a1)
}

func (ic *ImageContext) SetFillColor(col color.Color) {
	ic.dc.SetFillStyle(gg.NewSolidPattern(col))
}

func (ic *ImageContext) SetStrokeColor(col color.Color) {
	ic.dc.SetStrokeStyle(gg.NewSolidPattern(col))
}

func (ic *ImageContext) SetStrokeWidth(width float64) {
	ic.dc.SetLineWidth(width)
}

// Fill fills the current path and clears it.
func (ic *ImageContext) Fill() {
	ic.dc.Fill()
}

// Stroke strokes the current path and clears it.
func (ic *ImageContext) Stroke() {
	ic.dc.Stroke()
}
