package internal

import (
	"errors"
	"fmt"
	"os"

	"github.com/BrandonKowalski/glui/pkg/glui/layout"
	"github.com/veandco/go-sdl2/ttf"
)

// Fonts tried when no font is configured.
var fallbackFonts = []string{
	"/usr/share/fonts/truetype/dejavu/DejaVuSans.ttf",
	"/usr/share/fonts/TTF/DejaVuSans.ttf",
	"/System/Library/Fonts/Supplemental/Arial.ttf",
}

// Fonts holds the label and sublabel faces at the sizes of the current
// metrics.
type Fonts struct {
	path         string
	label        *ttf.Font
	sublabel     *ttf.Font
	labelSize    int
	sublabelSize int
}

// OpenFonts opens path at the font sizes of m. An empty path tries a few
// common system fonts.
func OpenFonts(path string, m layout.Metrics) (*Fonts, error) {
	if path == "" {
		for _, p := range fallbackFonts {
			if _, err := os.Stat(p); err == nil {
				path = p
				break
			}
		}
		if path == "" {
			return nil, errors.New("no font configured and no system font found")
		}
	}

	f := &Fonts{path: path}
	if err := f.Resize(m); err != nil {
		return nil, err
	}
	GetInternalLogger().Debug("Fonts loaded", "path", path, "label", f.labelSize, "sublabel", f.sublabelSize)
	return f, nil
}

// Resize reopens the faces when the font sizes of m differ from the loaded
// ones.
func (f *Fonts) Resize(m layout.Metrics) error {
	labelSize := max(int(m.FontSize), 1)
	sublabelSize := max(int(m.SublabelFontSize), 1)
	if labelSize == f.labelSize && sublabelSize == f.sublabelSize {
		return nil
	}

	label, err := ttf.OpenFont(f.path, labelSize)
	if err != nil {
		return fmt.Errorf("opening font %s: %w", f.path, err)
	}
	sublabel, err := ttf.OpenFont(f.path, sublabelSize)
	if err != nil {
		label.Close()
		return fmt.Errorf("opening font %s: %w", f.path, err)
	}

	f.Close()
	f.label, f.sublabel = label, sublabel
	f.labelSize, f.sublabelSize = labelSize, sublabelSize
	return nil
}

// Font returns the face for font.
func (f *Fonts) Font(font layout.Font) *ttf.Font {
	if font == layout.FontSublabel {
		return f.sublabel
	}
	return f.label
}

// MeasureWidth is the rendered width of text in pixels.
func (f *Fonts) MeasureWidth(font layout.Font, text string) float32 {
	face := f.Font(font)
	if face == nil || text == "" {
		return 0
	}
	w, _, err := face.SizeUTF8(text)
	if err != nil {
		return 0
	}
	return float32(w)
}

// Close releases both faces.
func (f *Fonts) Close() {
	if f.label != nil {
		f.label.Close()
		f.label = nil
	}
	if f.sublabel != nil {
		f.sublabel.Close()
		f.sublabel = nil
	}
}
