// Package config reads the canvas, guide and band settings for a galaxy.
//
// Sizes in a config are relative to the canvas so one file renders the same
// picture at any resolution: band densities are stars per pixel of height and
// spreads and wiggles are divisors of the canvas width or height.
package config

import (
	"errors"
	"fmt"
	"image/color"
	"math"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/scottkirkwood/galaxy/band"
)

// ErrInvalid is returned for settings that cannot produce an image.
var ErrInvalid = errors.New("invalid config")

// maxDepth bounds the guide recursion; each level doubles the point count.
const maxDepth = 16

// Config is the full set of knobs for one picture.
type Config struct {
	Width  int `toml:"width"`  // pixels
	Height int `toml:"height"` // pixels
	// Ecliptic is the guide's x as a fraction of the width.
	Ecliptic float64 `toml:"ecliptic"`
	// Background is a hex color painted before the bands. Empty leaves the
	// canvas transparent.
	Background string `toml:"background"`
	Guide      Guide  `toml:"guide"`
	Debug      Debug  `toml:"debug"`
	Bands      []Band `toml:"band"`
}

// Guide controls the bent guide curve.
type Guide struct {
	Depth    int     `toml:"depth"`
	WiggleX  float64 `toml:"wiggle_x"` // width divisor
	WiggleY  float64 `toml:"wiggle_y"` // height divisor
	MaxDraws int     `toml:"max_draws"`
}

// Debug turns on the diagnostic overlays.
type Debug struct {
	Guide      bool   `toml:"guide"`
	GuideColor string `toml:"guide_color"`
	Trace      bool   `toml:"trace"`
	TraceColor string `toml:"trace_color"`
}

// Band is one rendering pass.
type Band struct {
	Name      string  `toml:"name"`
	Density   float64 `toml:"density"` // stars per pixel of height
	RadiusMin float64 `toml:"radius_min"`
	RadiusMax float64 `toml:"radius_max"`
	Color     string  `toml:"color"`
	Alpha     float64 `toml:"alpha"`
	Spread    float64 `toml:"spread"` // width divisor giving the stdev
}

// Default returns the classic four-band galaxy.
func Default() Config {
	return Config{
		Width:    1920,
		Height:   1080,
		Ecliptic: 5.0 / 8,
		Guide: Guide{
			Depth:    5,
			WiggleX:  30,
			WiggleY:  30,
			MaxDraws: 1000,
		},
		Debug: Debug{
			GuideColor: "#ffffff",
			TraceColor: "#ff0000",
		},
		Bands: []Band{
			{Name: "background", Density: 100, RadiusMin: 0.5, RadiusMax: 0.8, Color: "#ffffff", Alpha: 0.05, Spread: 15},
			{Name: "background highlight", Density: 25, RadiusMin: 0.5, RadiusMax: 0.8, Color: "#ffffff", Alpha: 0.075, Spread: 25},
			{Name: "foreground", Density: 10, RadiusMin: 0.1, RadiusMax: 1.1, Color: "#ffffff", Alpha: 0.15, Spread: 6},
			{Name: "foreground highlight", Density: 1.0 / 3, RadiusMin: 0.9, RadiusMax: 1.5, Color: "#ffffff", Alpha: 0.35, Spread: 4},
		},
	}
}

// Load reads a TOML file over Default. Bands in the file replace the default
// bands entirely. Unknown keys are an error.
func Load(path string) (Config, error) {
	cfg := Default()
	bands := cfg.Bands
	cfg.Bands = nil
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("read config %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Config{}, fmt.Errorf("%w: %s: unknown keys %s", ErrInvalid, path, strings.Join(keys, ", "))
	}
	if !md.IsDefined("band") {
		cfg.Bands = bands
	}
	return cfg, cfg.Validate()
}

// Validate checks every setting.
func (c Config) Validate() error {
	switch {
	case !finite(c.Ecliptic, c.Guide.WiggleX, c.Guide.WiggleY):
		return fmt.Errorf("%w: non-finite ecliptic or wiggle", ErrInvalid)
	case c.Width <= 0 || c.Height <= 0:
		return fmt.Errorf("%w: canvas %dx%d", ErrInvalid, c.Width, c.Height)
	case c.Ecliptic < 0 || c.Ecliptic > 1:
		return fmt.Errorf("%w: ecliptic %v not within [0, 1]", ErrInvalid, c.Ecliptic)
	case c.Guide.Depth < 0 || c.Guide.Depth > maxDepth:
		return fmt.Errorf("%w: guide depth %d not within [0, %d]", ErrInvalid, c.Guide.Depth, maxDepth)
	case c.Guide.WiggleX <= 0 || c.Guide.WiggleY <= 0:
		return fmt.Errorf("%w: guide wiggle divisors must be positive", ErrInvalid)
	case c.Guide.MaxDraws < 0:
		return fmt.Errorf("%w: negative max_draws %d", ErrInvalid, c.Guide.MaxDraws)
	}
	for _, hex := range []string{c.Background, c.Debug.GuideColor, c.Debug.TraceColor} {
		if hex == "" {
			continue
		}
		if _, err := ParseColor(hex, 1); err != nil {
			return err
		}
	}
	for i, b := range c.Bands {
		if err := b.validate(); err != nil {
			return fmt.Errorf("band %d: %w", i, err)
		}
	}
	return nil
}

func (b Band) validate() error {
	switch {
	case !finite(b.Density, b.RadiusMin, b.RadiusMax, b.Alpha, b.Spread):
		return fmt.Errorf("%w: %s: non-finite value", ErrInvalid, b.Name)
	case b.Density < 0:
		return fmt.Errorf("%w: %s: negative density %v", ErrInvalid, b.Name, b.Density)
	case b.RadiusMin < 0 || b.RadiusMin > b.RadiusMax:
		return fmt.Errorf("%w: %s: radius %v..%v", ErrInvalid, b.Name, b.RadiusMin, b.RadiusMax)
	case b.Spread <= 0:
		return fmt.Errorf("%w: %s: spread %v must be positive", ErrInvalid, b.Name, b.Spread)
	}
	_, err := ParseColor(b.Color, b.Alpha)
	return err
}

// ParseColor turns a hex string and an alpha in [0, 1] into a color.
func ParseColor(hex string, alpha float64) (color.Color, error) {
	if !(alpha >= 0 && alpha <= 1) {
		return nil, fmt.Errorf("%w: alpha %v not within [0, 1]", ErrInvalid, alpha)
	}
	c, err := colorful.Hex(hex)
	if err != nil {
		return nil, fmt.Errorf("%w: color %q: %v", ErrInvalid, hex, err)
	}
	r, g, b := c.RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: uint8(math.Round(alpha * 255))}, nil
}

// GuideX returns the x the guide curve starts from.
func (c Config) GuideX() float64 {
	return c.Ecliptic * float64(c.Width)
}

// Wiggle returns the initial guide displacement in pixels.
func (c Config) Wiggle() (x, y float64) {
	return float64(c.Width) / c.Guide.WiggleX, float64(c.Height) / c.Guide.WiggleY
}

// Specs resolves the bands against the canvas size. Every band spans the full
// height and spreads around the guide's starting x.
func (c Config) Specs() ([]band.Spec, error) {
	w, h := float64(c.Width), float64(c.Height)
	specs := make([]band.Spec, 0, len(c.Bands))
	for _, b := range c.Bands {
		col, err := ParseColor(b.Color, b.Alpha)
		if err != nil {
			return nil, fmt.Errorf("band %s: %w", b.Name, err)
		}
		specs = append(specs, band.Spec{
			Name:   b.Name,
			Count:  int(math.Ceil(b.Density*h - 1e-9)),
			Radius: band.Range{Min: b.RadiusMin, Max: b.RadiusMax},
			Color:  col,
			Y:      band.Range{Min: 0, Max: h},
			Spread: band.Spread{Mean: c.GuideX(), Stdev: w / b.Spread},
		})
	}
	return specs, nil
}

// finite reports whether none of vals is NaN or infinite.
func finite(vals ...float64) bool {
	for _, v := range vals {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}
