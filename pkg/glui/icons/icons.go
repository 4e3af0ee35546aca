// Package icons loads the menu icons from an icon directory.
//
// Icons are looked up by constants.IconID. Each id has a base file name; an
// SVG file is preferred and rasterised at the requested size, a PNG file is
// used as is.
package icons

import (
	"errors"
	"fmt"
	"image"
	"image/draw"
	"image/png"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/BrandonKowalski/glui/pkg/glui/constants"
	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
)

// ErrUnknownIcon is returned for ids outside the icon table.
var ErrUnknownIcon = errors.New("unknown icon")

// Extensions tried by Loader, in order.
var Extensions = []string{".svg", ".png"}

// Rasterize renders an SVG document into a size x size image.
func Rasterize(r io.Reader, size int) (*image.RGBA, error) {
	if size <= 0 {
		return nil, fmt.Errorf("rasterize: invalid size %d", size)
	}

	icon, err := oksvg.ReadIconStream(r, oksvg.WarnErrorMode)
	if err != nil {
		return nil, fmt.Errorf("parsing svg: %w", err)
	}
	icon.SetTarget(0, 0, float64(size), float64(size))

	img := image.NewRGBA(image.Rect(0, 0, size, size))
	scanner := rasterx.NewScannerGV(size, size, img, img.Bounds())
	icon.Draw(rasterx.NewDasher(size, size, scanner), 1)

	return img, nil
}

// Loader reads icons from Dir.
type Loader struct {
	Dir    string
	Size   int
	Logger *slog.Logger
}

// NewLoader returns a Loader for dir that rasterises SVG icons at size
// pixels.
func NewLoader(dir string, size int, logger *slog.Logger) *Loader {
	if logger == nil {
		logger = slog.Default()
	}
	return &Loader{Dir: dir, Size: size, Logger: logger}
}

// Path returns the first existing file for id, or an error wrapping
// os.ErrNotExist.
func (l *Loader) Path(id constants.IconID) (string, error) {
	if !id.Valid() {
		return "", fmt.Errorf("%w: %d", ErrUnknownIcon, id)
	}

	for _, ext := range Extensions {
		p := filepath.Join(l.Dir, id.Name()+ext)
		if _, err := os.Stat(p); err == nil {
			return p, nil
		}
	}
	return "", fmt.Errorf("icon %s in %s: %w", id.Name(), l.Dir, os.ErrNotExist)
}

// Load reads and decodes the icon for id.
func (l *Loader) Load(id constants.IconID) (*image.RGBA, error) {
	p, err := l.Path(id)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(p)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	if filepath.Ext(p) == ".svg" {
		img, err := Rasterize(f, l.Size)
		if err != nil {
			return nil, fmt.Errorf("icon %s: %w", p, err)
		}
		return img, nil
	}

	decoded, err := png.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("icon %s: %w", p, err)
	}
	img := image.NewRGBA(decoded.Bounds())
	draw.Draw(img, img.Bounds(), decoded, decoded.Bounds().Min, draw.Src)
	return img, nil
}

// LoadAll loads every icon. Missing or broken icons are logged and left out
// of the result; the menu draws those entries without an icon.
func (l *Loader) LoadAll() map[constants.IconID]*image.RGBA {
	out := make(map[constants.IconID]*image.RGBA, int(constants.IconCount))
	for id := constants.IconID(0); id < constants.IconCount; id++ {
		img, err := l.Load(id)
		if err != nil {
			l.Logger.Debug("Icon not loaded", "icon", id.Name(), "error", err)
			continue
		}
		out[id] = img
	}
	return out
}
