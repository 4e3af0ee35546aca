package internal

import (
	"image/color"

	"github.com/veandco/go-sdl2/sdl"
)

// SDLColor converts a theme colour for the renderer.
func SDLColor(c color.NRGBA) sdl.Color {
	return sdl.Color{R: c.R, G: c.G, B: c.B, A: c.A}
}

// SetDrawColor sets the renderer draw colour from a theme colour.
func SetDrawColor(r *sdl.Renderer, c color.NRGBA) {
	r.SetDrawColor(c.R, c.G, c.B, c.A)
}
