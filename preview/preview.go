// Preview shows a galaxy in a window and repaints it whenever the config
// file changes. Extra image files given as arguments can be flipped through
// with the arrow keys for comparison.
//
// Keys: n new seed, s save, r fit window to image, left/right cycle, q quit.
package main

import (
	"flag"
	"hash/crc64"
	"image"
	"image/color"
	"image/draw"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/fsnotify/fsnotify"
	"github.com/scottkirkwood/galaxy"
	"github.com/scottkirkwood/galaxy/config"
	"golang.org/x/exp/shiny/driver"
	"golang.org/x/exp/shiny/screen"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	"golang.org/x/mobile/event/key"
	"golang.org/x/mobile/event/lifecycle"
	"golang.org/x/mobile/event/paint"
	"golang.org/x/mobile/event/size"
)

const (
	maxWinWidth  = 1000 // pixels
	maxWinHeight = 768
	savePrefix   = "samples/starfield-"
	maxRenders   = 4 // renders kept for flipping back through
)

var (
	seedFlag    = flag.String("seed", "", "Hex value for the seed to use")
	configFlag  = flag.String("config", "", "TOML config to render and watch")
	verboseFlag = flag.Bool("v", false, "Verbose logging")
)

// reloadEvent asks the window loop to render again.
type reloadEvent struct{}

func main() {
	flag.Parse()
	level := log.InfoLevel
	if *verboseFlag {
		level = log.DebugLevel
	}
	logger := galaxy.NewLogger(os.Stderr, level)

	seed, err := galaxy.Init(*seedFlag)
	if err != nil {
		logger.Fatal("Unable to set the seed", "err", err)
	}
	v := &viewer{
		configPath: *configFlag,
		seed:       seed,
		crcs:       newChecksums(),
		logger:     logger,
	}
	if err := v.render(); err != nil {
		logger.Fatal("Unable to draw", "err", err)
	}
	v.frames = append(v.frames, galaxy.DecodeImages(flag.Args(), logger)...)

	driver.Main(v.run)
}

type viewer struct {
	configPath string
	seed       galaxy.Seed
	crcs       *checksums
	logger     *log.Logger

	frames   []galaxy.Frame
	rendered int // leading frames that are renders, the rest are files
	i        int // index of frame to display
	last     *galaxy.ImageContext
}

// render draws a galaxy for the current seed and config and shows it.
func (v *viewer) render() error {
	cfg := config.Default()
	if v.configPath != "" {
		var err error
		if cfg, err = config.Load(v.configPath); err != nil {
			return err
		}
	}
	ic := galaxy.NewImageContext(cfg.Width, cfg.Height)
	if _, err := galaxy.NewPlane(cfg, v.seed.Rand(), v.logger).Draw(ic); err != nil {
		return err
	}
	v.last = ic
	f := galaxy.Frame{Name: "seed " + v.seed.String(), Image: ic.Image()}
	renders := append(v.frames[:v.rendered:v.rendered], f)
	if len(renders) > maxRenders {
		renders = renders[len(renders)-maxRenders:]
	}
	v.frames = append(renders, v.frames[v.rendered:]...)
	v.rendered = len(renders)
	v.i = v.rendered - 1
	return nil
}

func (v *viewer) save() {
	if v.last == nil {
		return
	}
	fname, err := v.seed.SafeWrite(v.last, savePrefix, ".png")
	if err != nil {
		v.logger.Error("Unable to write image", "file", fname, "err", err)
		return
	}
	v.logger.Info("Saved", "file", fname)
}

func (v *viewer) run(s screen.Screen) {
	rect := v.frames[v.i].Image.Bounds()
	winSize := image.Point{
		X: galaxy.ClampInt(rect.Dx(), 1, maxWinWidth),
		Y: galaxy.ClampInt(rect.Dy(), 1, maxWinHeight),
	}
	w, err := s.NewWindow(&screen.NewWindowOptions{Width: winSize.X, Height: winSize.Y})
	if err != nil {
		v.logger.Error("Unable to open window", "err", err)
		return
	}
	defer w.Release()

	if v.configPath != "" {
		watcher, err := v.watch(w)
		if err != nil {
			v.logger.Error("Unable to watch config", "err", err)
		} else {
			defer watcher.Close()
		}
	}

	var sz size.Event
	b, err := s.NewBuffer(winSize)
	if err != nil {
		v.logger.Error("Unable to allocate buffer", "err", err)
		return
	}
	defer func() {
		if b != nil {
			b.Release()
		}
	}()

	newBuffer := func(p image.Point) bool {
		if b != nil {
			b.Release()
		}
		if b, err = s.NewBuffer(p); err != nil {
			v.logger.Error("Unable to allocate buffer", "err", err)
			return false
		}
		return true
	}

	for {
		switch e := w.NextEvent().(type) {
		case key.Event:
			if e.Direction != key.DirPress {
				continue
			}
			switch e.Code {
			case key.CodeEscape, key.CodeQ:
				return
			case key.CodeRightArrow:
				v.i = cycle(v.i, len(v.frames), 1)
			case key.CodeLeftArrow:
				v.i = cycle(v.i, len(v.frames), -1)
			case key.CodeN:
				v.seed, _ = galaxy.Init("")
				v.reload()
			case key.CodeS:
				v.save()
				continue
			case key.CodeR:
				r := v.frames[v.i].Image.Bounds()
				sz.WidthPx, sz.HeightPx = r.Dx(), r.Dy()
			default:
				continue
			}
			if !newBuffer(sz.Size()) {
				return
			}
			w.Send(paint.Event{})

		case reloadEvent:
			v.reload()
			w.Send(paint.Event{})

		case paint.Event:
			img := v.frames[v.i].Image
			draw.Draw(b.RGBA(), b.Bounds(), img, img.Bounds().Min, draw.Src)
			dp := galaxy.VpCenter(img, sz.WidthPx, sz.HeightPx)
			if dp != (image.Point{}) {
				w.Fill(sz.Bounds(), color.Black, draw.Src)
			}
			w.Upload(dp, b, b.Bounds())
			w.Publish()

		case size.Event:
			sz = e
			if !newBuffer(sz.Size()) {
				return
			}

		case lifecycle.Event:
			if e.To == lifecycle.StageDead {
				return
			}

		case error:
			v.logger.Error("Screen error", "err", e)
			return
		}
	}
}

func (v *viewer) reload() {
	if err := v.render(); err != nil {
		v.logger.Error("Unable to draw", "err", err)
		return
	}
	v.logger.Info("Rendered", "seed", v.seed, "frames", len(v.frames))
}

// watch sends a reloadEvent to the window each time the config's content
// changes. The directory is watched since editors often replace the file.
func (v *viewer) watch(w screen.Window) (*fsnotify.Watcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	target := filepath.Clean(v.configPath)
	if err := watcher.Add(filepath.Dir(target)); err != nil {
		watcher.Close()
		return nil, err
	}
	v.crcs.changed(target)
	v.logger.Info("Watching", "file", target)

	go func() {
		for {
			select {
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if filepath.Clean(event.Name) != target {
					continue
				}
				if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
					continue
				}
				if v.crcs.changed(target) {
					w.Send(reloadEvent{})
				}
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				v.logger.Warn("Watcher error", "err", err)
			}
		}
	}()
	return watcher, nil
}

// cycle moves i by delta through n frames, wrapping at both ends.
func cycle(i, n, delta int) int {
	if n == 0 {
		return 0
	}
	return ((i+delta)%n + n) % n
}

// checksums remembers file contents so that saves which do not change
// anything are ignored. It is only used from the watcher goroutine after
// setup.
type checksums struct {
	table *crc64.Table
	sums  map[string]uint64
}

func newChecksums() *checksums {
	return &checksums{table: crc64.MakeTable(crc64.ECMA), sums: make(map[string]uint64)}
}

// changed reports whether fname differs from the last time it was seen.
// Unreadable files count as unchanged.
func (c *checksums) changed(fname string) bool {
	data, err := os.ReadFile(fname)
	if err != nil {
		return false
	}
	sum := crc64.Checksum(data, c.table)
	if old, ok := c.sums[fname]; ok && old == sum {
		return false
	}
	c.sums[fname] = sum
	return true
}
