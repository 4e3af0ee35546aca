package internal

import (
	"fmt"
	"math"

	"github.com/BrandonKowalski/glui/pkg/glui/constants"
	"github.com/veandco/go-sdl2/img"
	"github.com/veandco/go-sdl2/sdl"
)

// Screen diagonal in inches assumed when the display does not report a DPI.
const fallbackDiagonal = 6.5

// Window wraps SDL window and renderer with additional state for the menu.
type Window struct {
	Window    *sdl.Window
	Renderer  *sdl.Renderer
	Title     string
	Wallpaper *sdl.Texture

	dpiOverride     float32
	hasVSync        bool
	lastPresentTime uint64
}

func initWindow(title string, width, height int32, winOpts WindowOptions) (*Window, error) {
	x, y := int32(sdl.WINDOWPOS_UNDEFINED), int32(sdl.WINDOWPOS_UNDEFINED)

	if constants.IsDevMode() {
		x, y = 50, 50
		if width == 0 || height == 0 {
			width, height = 1024, 768
		}
	} else if width == 0 || height == 0 {
		displayMode, err := sdl.GetCurrentDisplayMode(0)
		if err != nil {
			GetInternalLogger().Error("Failed to get display mode", "error", err)
			width, height = 640, 480
		} else {
			width, height = displayMode.W, displayMode.H
		}
	}

	GetInternalLogger().Debug("Initializing SDL Window", "width", width, "height", height)

	window, err := sdl.CreateWindow(title, x, y, width, height, winOpts.ToSDLFlags())
	if err != nil {
		return nil, fmt.Errorf("creating window: %w", err)
	}

	renderer, err := sdl.CreateRenderer(window, -1, sdl.RENDERER_ACCELERATED|sdl.RENDERER_PRESENTVSYNC|sdl.RENDERER_TARGETTEXTURE)
	if err != nil {
		GetInternalLogger().Warn("Accelerated renderer unavailable, falling back to software", "error", err)
		renderer, err = sdl.CreateRenderer(window, -1, sdl.RENDERER_SOFTWARE)
	}
	if err != nil {
		window.Destroy()
		return nil, fmt.Errorf("creating renderer: %w", err)
	}

	renderer.SetDrawBlendMode(sdl.BLENDMODE_BLEND)

	info, err := renderer.GetInfo()
	vsync := err == nil && info.Flags&sdl.RENDERER_PRESENTVSYNC != 0

	return &Window{
		Window:   window,
		Renderer: renderer,
		Title:    title,
		hasVSync: vsync,
	}, nil
}

// LoadWallpaper replaces the wallpaper. An empty path removes it.
func (window *Window) LoadWallpaper(path string) error {
	if window.Wallpaper != nil {
		window.Wallpaper.Destroy()
		window.Wallpaper = nil
	}
	if path == "" {
		return nil
	}

	texture, err := img.LoadTexture(window.Renderer, path)
	if err != nil {
		return fmt.Errorf("loading wallpaper %s: %w", path, err)
	}
	window.Wallpaper = texture
	return nil
}

// SetDPIOverride makes DPI return d instead of the display's value. Zero
// restores detection.
func (window *Window) SetDPIOverride(d float32) {
	window.dpiOverride = d
}

// DPI is the scale every menu metric derives from. It comes from the
// override, the display, or the window diagonal, in that order.
func (window *Window) DPI() float32 {
	if window.dpiOverride > 0 {
		return window.dpiOverride
	}

	if idx, err := window.Window.GetDisplayIndex(); err == nil {
		if ddpi, _, _, err := sdl.GetDisplayDPI(idx); err == nil && ddpi > 0 {
			return ddpi
		}
	}

	w, h := window.Size()
	return float32(math.Sqrt(float64(w)*float64(w)+float64(h)*float64(h)) / fallbackDiagonal)
}

// Size is the size of the drawable area in pixels.
func (window *Window) Size() (int32, int32) {
	w, h, err := window.Renderer.GetOutputSize()
	if err != nil {
		return window.Window.GetSize()
	}
	return w, h
}

func (window *Window) closeWindow() {
	if window.Wallpaper != nil {
		window.Wallpaper.Destroy()
	}
	window.Renderer.Destroy()
	window.Window.Destroy()
}

func GetWindow() *Window {
	return window
}

// RenderWallpaper draws the wallpaper stretched over the window.
func (window *Window) RenderWallpaper() bool {
	if window.Wallpaper == nil {
		return false
	}
	w, h := window.Size()
	window.Renderer.Copy(window.Wallpaper, nil, &sdl.Rect{X: 0, Y: 0, W: w, H: h})
	return true
}

// Present swaps the render buffer and enforces ~60fps frame timing
// when VSync is not available. Use this instead of renderer.Present().
func (window *Window) Present() {
	window.Renderer.Present()
	if !window.hasVSync {
		now := sdl.GetTicks64()
		if elapsed := now - window.lastPresentTime; elapsed < 16 {
			sdl.Delay(uint32(16 - elapsed))
		}
		window.lastPresentTime = sdl.GetTicks64()
	}
}
