// Starfield paints a wandering band of stars, the kind of galactic plane
// that makes a good desktop or page background.
//
//	starfield --seed 5eed --width 2560 --height 1440 --ext .svg
package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/scottkirkwood/galaxy"
	"github.com/scottkirkwood/galaxy/config"
	"github.com/spf13/cobra"
)

type options struct {
	seed       string
	configPath string
	width      int
	height     int
	depth      int
	guide      bool
	trace      bool
	backend    string
	ext        string
	out        string
	verbose    bool
}

func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var opts options
	cmd := &cobra.Command{
		Use:          "starfield",
		Short:        "Paint a galactic plane of stars",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, opts)
		},
	}
	f := cmd.Flags()
	f.StringVar(&opts.seed, "seed", "", "hex value for the seed to use")
	f.StringVarP(&opts.configPath, "config", "c", "", "TOML file overriding the default bands")
	f.IntVar(&opts.width, "width", 0, "canvas width in pixels (overrides config)")
	f.IntVar(&opts.height, "height", 0, "canvas height in pixels (overrides config)")
	f.IntVar(&opts.depth, "depth", -1, "guide bend depth (overrides config)")
	f.BoolVar(&opts.guide, "guide", false, "draw the guide polyline")
	f.BoolVar(&opts.trace, "trace", false, "draw the per-scanline guide lookup")
	f.StringVar(&opts.backend, "backend", "vector", "drawing backend: vector or raster")
	f.StringVar(&opts.ext, "ext", ".png", "output format: .png, .svg, .pdf (vector) or .png, .jpg (raster)")
	f.StringVarP(&opts.out, "out", "o", "samples/starfield-", "output filename prefix")
	f.BoolVarP(&opts.verbose, "verbose", "v", false, "enable verbose logging")
	return cmd
}

func run(cmd *cobra.Command, opts options) error {
	level := log.InfoLevel
	if opts.verbose {
		level = log.DebugLevel
	}
	logger := galaxy.NewLogger(cmd.ErrOrStderr(), level)

	cfg, err := loadConfig(cmd, opts)
	if err != nil {
		logger.Error("Bad config", "err", err)
		return err
	}
	seed, err := galaxy.Init(opts.seed)
	if err != nil {
		logger.Error("Unable to set the seed", "err", err)
		return err
	}
	logger.Debug("Seeded", "seed", seed)

	surface, err := newSurface(opts.backend, cfg)
	if err != nil {
		return err
	}
	if _, err := galaxy.NewPlane(cfg, seed.Rand(), logger).Draw(surface); err != nil {
		logger.Error("Unable to draw", "err", err)
		return err
	}

	fname, err := seed.SafeWrite(surface, opts.out, opts.ext)
	if err != nil {
		logger.Error("Unable to write image", "file", fname, "err", err)
		return err
	}
	logger.Info("Saved", "file", fname)
	return nil
}

// loadConfig reads the config file, if any, and applies flag overrides.
func loadConfig(cmd *cobra.Command, opts options) (config.Config, error) {
	cfg := config.Default()
	if opts.configPath != "" {
		var err error
		if cfg, err = config.Load(opts.configPath); err != nil {
			return cfg, err
		}
	}
	flags := cmd.Flags()
	if flags.Changed("width") {
		cfg.Width = opts.width
	}
	if flags.Changed("height") {
		cfg.Height = opts.height
	}
	if flags.Changed("depth") {
		cfg.Guide.Depth = opts.depth
	}
	cfg.Debug.Guide = cfg.Debug.Guide || opts.guide
	cfg.Debug.Trace = cfg.Debug.Trace || opts.trace
	return cfg, cfg.Validate()
}

// canvas is a surface that can also save itself.
type canvas interface {
	galaxy.Surface
	galaxy.FileWriter
}

func newSurface(backend string, cfg config.Config) (canvas, error) {
	switch strings.ToLower(backend) {
	case "vector":
		return galaxy.NewContext(float64(cfg.Width), float64(cfg.Height)), nil
	case "raster":
		return galaxy.NewImageContext(cfg.Width, cfg.Height), nil
	default:
		return nil, fmt.Errorf("unknown backend %q, want vector or raster", backend)
	}
}
