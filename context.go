package galaxy

import (
	"fmt"
	"image/color"
	"math"
	"path/filepath"
	"strings"

	"github.com/tdewolff/canvas"
	"github.com/tdewolff/canvas/pdf"
	"github.com/tdewolff/canvas/rasterizer"
	"github.com/tdewolff/canvas/svg"
)

// pngResolution is the dots per canvas unit used when rasterizing, so one
// unit is one pixel.
const pngResolution = 1.0

// Context is my abstraction for Canvas. It takes y growing downwards like
// every other surface here and flips it for canvas, whose y grows upwards.
type Context struct {
	c             *canvas.Canvas
	ctx           *canvas.Context
	width, height float64
}

// NewContext returns a vector context of width by height pixels.
func NewContext(width, height float64) *Context {
	ctx := &Context{
		c:      canvas.New(width, height),
		width:  width,
		height: height,
	}
	ctx.ctx = canvas.NewContext(ctx.c)
	return ctx
}

// WriteFile saves the drawing, picking the format from the extension:
// .png, .svg or .pdf.
func (ctx *Context) WriteFile(fname string) error {
	switch ext := strings.ToLower(filepath.Ext(fname)); ext {
	case ".png":
		return ctx.c.WriteFile(fname, rasterizer.PNGWriter(pngResolution))
	case ".svg":
		return ctx.c.WriteFile(fname, svg.Writer)
	case ".pdf":
		return ctx.c.WriteFile(fname, pdf.Writer)
	default:
		return fmt.Errorf("%w %s for vector output", ErrUnsupportedFormat, ext)
	}
}

func (ctx *Context) Push() {
	ctx.ctx.Push()
}

// Pop restores the last pushed draw state and uses that as the current draw state. If there are no
// states on the stack, this will do nothing.
func (ctx *Context) Pop() {
	ctx.ctx.Pop()
}

// Clear paints the whole canvas with col.
func (ctx *Context) Clear(col color.Color) {
	ctx.Push()
	ctx.ctx.SetFillColor(col)
	ctx.ctx.SetStrokeColor(color.Transparent)
	ctx.ctx.DrawPath(0, 0, canvas.Rectangle(ctx.width, ctx.height))
	ctx.Pop()
}

// BeginPath is a no-op: canvas starts a new path after every Fill and Stroke.
func (ctx *Context) BeginPath() {}

func (ctx *Context) SetFillColor(col color.Color) {
	ctx.ctx.SetFillColor(col)
}

func (ctx *Context) SetStrokeColor(col color.Color) {
	ctx.ctx.SetStrokeColor(col)
}

func (ctx *Context) SetStrokeWidth(width float64) {
	ctx.ctx.SetStrokeWidth(width)
}

// MoveTo moves the path to x,y without connecting the path. It starts a new independent subpath.
func (ctx *Context) MoveTo(x, y float64) {
	ctx.ctx.MoveTo(x, ctx.height-y)
}

// LineTo adds a linear path to x,y.
func (ctx *Context) LineTo(x, y float64) {
	ctx.ctx.LineTo(x, ctx.height-y)
}

// Arc adds a circular arc around cx,cy from the current point. Canvas measures
// angles in degrees counter clockwise with y up, so the sweep is mirrored.
func (ctx *Context) Arc(cx, cy, r, a0, a1 float64) {
	ctx.ctx.Arc(r, r, 0, -degrees(a0), -degrees(a1))
}

// Fill fills the current path and resets it.
func (ctx *Context) Fill() {
	ctx.ctx.Fill()
}

// Stroke strokes the current path and resets it.
func (ctx *Context) Stroke() {
	ctx.ctx.Stroke()
}

func degrees(rad float64) float64 {
	return rad * 180 / math.Pi
}
