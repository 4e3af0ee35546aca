package glui

import (
	"context"
	"errors"
	"time"

	"github.com/BrandonKowalski/glui/pkg/glui/internal"
	"github.com/BrandonKowalski/glui/pkg/glui/menu"
	"github.com/BrandonKowalski/glui/pkg/glui/pointer"
	"github.com/veandco/go-sdl2/sdl"
)

// App is everything Run drives.
type App struct {
	Controller *menu.Controller
	Renderer   *Renderer
	Handler    Handler // QuitOnCancel when nil

	// Pointer receives mouse and touch events. Nil disables both.
	Pointer *pointer.Tracker
	Mouse   bool
	Touch   bool
}

// Run shows the menu until the window is closed, ctx is done or the handler
// returns an error. ErrQuit from the handler and closing the window end Run
// with a nil error. Backing out of a tab root with the default handler ends
// it with ErrCancelled.
func Run(ctx context.Context, app App) error {
	window := internal.GetWindow()
	if window == nil {
		return NewInfrastructureError("run", errNotInitialized)
	}

	handler := app.Handler
	if handler == nil {
		handler = QuitOnCancel
	}
	dispatch := func(action menu.Action) error {
		if action.Kind == menu.ActionNone {
			return nil
		}
		internal.GetInternalLogger().Debug("Menu action", "kind", action.Kind, "list", action.List, "index", action.Index)
		return handler(app.Controller, action)
	}

	last := sdl.GetTicks64()
	for {
		if ctx.Err() != nil {
			return nil
		}

		w, h := window.Size()

		for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
			if _, ok := event.(*sdl.QuitEvent); ok {
				return nil
			}
			if app.Pointer != nil && internal.PointerEvent(event, app.Pointer, w, h, app.Mouse, app.Touch) {
				continue
			}
			if ev, ok := internal.ButtonEvent(event); ok {
				if err := dispatch(app.Controller.Button(ev.Button, ev.Pressed)); err != nil {
					return finish(err)
				}
			}
		}

		now := sdl.GetTicks64()
		delta := time.Duration(now-last) * time.Millisecond
		last = now

		if err := dispatch(app.Controller.Frame(float32(w), float32(h), delta)); err != nil {
			return finish(err)
		}

		app.Renderer.Draw(app.Controller)
		window.Present()
	}
}

func finish(err error) error {
	if errors.Is(err, ErrQuit) {
		return nil
	}
	return err
}
