package glui

import (
	"github.com/BrandonKowalski/glui/pkg/glui/menu"
)

// Handler is called with every action the menu does not handle itself.
// Returning ErrQuit ends Run cleanly; any other error, ErrCancelled
// included, ends it with that error.
type Handler func(ctrl *menu.Controller, action menu.Action) error

// QuitOnCancel is the Handler used when none is given: cancel on a tab root
// ends Run with ErrCancelled and everything else is ignored.
func QuitOnCancel(_ *menu.Controller, action menu.Action) error {
	if action.Kind == menu.ActionCancel {
		return ErrCancelled
	}
	return nil
}
