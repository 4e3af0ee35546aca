package internal

import (
	"fmt"

	"github.com/veandco/go-sdl2/img"
	"github.com/veandco/go-sdl2/sdl"
	"github.com/veandco/go-sdl2/ttf"
)

var window *Window

// Init brings up SDL, SDL_image, SDL_ttf, the game controllers and the
// window. A zero width or height uses the display size.
func Init(title string, width, height int32, winOpts WindowOptions) error {
	if err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_GAMECONTROLLER | sdl.INIT_JOYSTICK); err != nil {
		return fmt.Errorf("sdl: %w", err)
	}

	if err := img.Init(img.INIT_PNG | img.INIT_JPG); err != nil {
		GetInternalLogger().Warn("SDL_image init incomplete", "error", err)
	}

	if err := ttf.Init(); err != nil {
		return fmt.Errorf("ttf: %w", err)
	}

	if winOpts.IsZero() {
		winOpts = DefaultWindowOptions()
	}

	w, err := initWindow(title, width, height, winOpts)
	if err != nil {
		return err
	}
	window = w

	openControllers()
	return nil
}

func SDLCleanup() {
	if window != nil {
		window.closeWindow()
		window = nil
	}
	closeControllers()
	ttf.Quit()
	img.Quit()
	sdl.Quit()
	CloseLogger()
}
