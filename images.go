package galaxy

import (
	"image"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
)

// Frame is a named picture shown by the preview.
type Frame struct {
	Name  string
	Image image.Image
}

// DecodeImages takes a list of image files and decodes them in parallel.
// Note that the number of frames returned may not be the number of files
// passed in: a file is skipped, with a warning, if it cannot be read or
// decoded into an image type that Go understands. Order is kept.
func DecodeImages(imageFiles []string, logger *log.Logger) []Frame {
	frameChans := make([]chan Frame, len(imageFiles))
	for i, fName := range imageFiles {
		frameChans[i] = make(chan Frame, 1)
		go func(ch chan<- Frame, fName string) {
			defer close(ch)
			start := time.Now()
			img, kind, err := decodeFile(fName)
			if err != nil {
				logger.Warn("Skipping image", "file", fName, "err", err)
				return
			}
			logger.Debug("Decoded image", "file", fName, "kind", kind, "elapsed", time.Since(start))
			ch <- Frame{Name: filepath.Base(fName), Image: img}
		}(frameChans[i], fName)
	}

	frames := make([]Frame, 0, len(imageFiles))
	for _, ch := range frameChans {
		if f, ok := <-ch; ok {
			frames = append(frames, f)
		}
	}
	return frames
}

func decodeFile(fName string) (image.Image, string, error) {
	file, err := os.Open(fName)
	if err != nil {
		return nil, "", err
	}
	defer file.Close()
	return image.Decode(file)
}

// VpCenter inspects the canvas and image geometry, and determines where the
// origin of the image should be painted into the canvas.
// If the image is bigger than the canvas, this is always (0, 0).
// If a dimension of the image is smaller than the canvas, then:
// x = (canvas_width - image_width) / 2 and
// y = (canvas_height - image_height) / 2
func VpCenter(ximg image.Image, canWidth, canHeight int) image.Point {
	xmargin, ymargin := 0, 0
	if ximg.Bounds().Dx() < canWidth {
		xmargin = (canWidth - ximg.Bounds().Dx()) / 2
	}
	if ximg.Bounds().Dy() < canHeight {
		ymargin = (canHeight - ximg.Bounds().Dy()) / 2
	}
	return image.Point{X: xmargin, Y: ymargin}
}
