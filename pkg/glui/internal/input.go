package internal

import (
	"github.com/BrandonKowalski/glui/pkg/glui/constants"
	"github.com/BrandonKowalski/glui/pkg/glui/pointer"
	"github.com/veandco/go-sdl2/sdl"
)

// Mouse wheel notches are turned into drag acceleration.
const wheelAccel = 12

// Event is a virtual button changing state.
type Event struct {
	Button  constants.VirtualButton
	Pressed bool
}

var keyboardMap = map[sdl.Keycode]constants.VirtualButton{
	sdl.K_UP:        constants.VirtualButtonUp,
	sdl.K_DOWN:      constants.VirtualButtonDown,
	sdl.K_LEFT:      constants.VirtualButtonLeft,
	sdl.K_RIGHT:     constants.VirtualButtonRight,
	sdl.K_x:         constants.VirtualButtonA,
	sdl.K_SPACE:     constants.VirtualButtonA,
	sdl.K_z:         constants.VirtualButtonB,
	sdl.K_BACKSPACE: constants.VirtualButtonB,
	sdl.K_q:         constants.VirtualButtonL1,
	sdl.K_w:         constants.VirtualButtonR1,
	sdl.K_RETURN:    constants.VirtualButtonStart,
	sdl.K_RSHIFT:    constants.VirtualButtonSelect,
	sdl.K_ESCAPE:    constants.VirtualButtonMenu,
}

// Face buttons use the Nintendo layout: the right button confirms.
var controllerMap = map[sdl.GameControllerButton]constants.VirtualButton{
	sdl.CONTROLLER_BUTTON_DPAD_UP:       constants.VirtualButtonUp,
	sdl.CONTROLLER_BUTTON_DPAD_DOWN:     constants.VirtualButtonDown,
	sdl.CONTROLLER_BUTTON_DPAD_LEFT:     constants.VirtualButtonLeft,
	sdl.CONTROLLER_BUTTON_DPAD_RIGHT:    constants.VirtualButtonRight,
	sdl.CONTROLLER_BUTTON_B:             constants.VirtualButtonA,
	sdl.CONTROLLER_BUTTON_A:             constants.VirtualButtonB,
	sdl.CONTROLLER_BUTTON_LEFTSHOULDER:  constants.VirtualButtonL1,
	sdl.CONTROLLER_BUTTON_RIGHTSHOULDER: constants.VirtualButtonR1,
	sdl.CONTROLLER_BUTTON_START:         constants.VirtualButtonStart,
	sdl.CONTROLLER_BUTTON_BACK:          constants.VirtualButtonSelect,
	sdl.CONTROLLER_BUTTON_GUIDE:         constants.VirtualButtonMenu,
}

var flipFaceButtons bool

// SetFlipFaceButtons maps the bottom face button to confirm instead.
func SetFlipFaceButtons(flip bool) {
	flipFaceButtons = flip
}

var controllers []*sdl.GameController

func openControllers() {
	for i := range sdl.NumJoysticks() {
		openController(i)
	}
}

func openController(index int) {
	if !sdl.IsGameController(index) {
		return
	}
	if c := sdl.GameControllerOpen(index); c != nil {
		controllers = append(controllers, c)
		GetInternalLogger().Debug("Opened game controller", "index", index, "name", c.Name())
	}
}

func closeControllers() {
	for _, c := range controllers {
		c.Close()
	}
	controllers = nil
}

// ButtonEvent maps keyboard and controller events to virtual buttons. Key
// repeats from the OS are dropped; the menu repeats held directions itself.
func ButtonEvent(event sdl.Event) (Event, bool) {
	switch e := event.(type) {
	case *sdl.KeyboardEvent:
		if e.Repeat != 0 {
			return Event{}, false
		}
		b, ok := keyboardMap[e.Keysym.Sym]
		return Event{Button: b, Pressed: e.Type == sdl.KEYDOWN}, ok

	case *sdl.ControllerButtonEvent:
		b, ok := controllerMap[sdl.GameControllerButton(e.Button)]
		if flipFaceButtons {
			switch b {
			case constants.VirtualButtonA:
				b = constants.VirtualButtonB
			case constants.VirtualButtonB:
				b = constants.VirtualButtonA
			}
		}
		return Event{Button: b, Pressed: e.State == sdl.PRESSED}, ok

	case *sdl.ControllerDeviceEvent:
		if e.Type == sdl.CONTROLLERDEVICEADDED {
			openController(int(e.Which))
		}
	}
	return Event{}, false
}

// PointerEvent feeds mouse and touch events into t. Touch coordinates are
// normalised by SDL and scaled to width x height. It reports whether the
// event was a pointer event.
func PointerEvent(event sdl.Event, t *pointer.Tracker, width, height int32, mouse, touch bool) bool {
	switch e := event.(type) {
	case *sdl.MouseButtonEvent:
		if !mouse || e.Which == sdl.TOUCH_MOUSEID || e.Button != sdl.BUTTON_LEFT {
			return false
		}
		if e.Type == sdl.MOUSEBUTTONDOWN {
			t.Press(e.X, e.Y)
		} else {
			t.Release(e.X, e.Y)
		}
		return true

	case *sdl.MouseMotionEvent:
		if !mouse || e.Which == sdl.TOUCH_MOUSEID {
			return false
		}
		t.Move(e.X, e.Y)
		return true

	case *sdl.MouseWheelEvent:
		if !mouse {
			return false
		}
		t.UpdateAccel(func(a float32) float32 { return a + float32(e.Y*wheelAccel) })
		return true

	case *sdl.TouchFingerEvent:
		if !touch {
			return false
		}
		x := int32(e.X * float32(width))
		y := int32(e.Y * float32(height))
		switch e.Type {
		case sdl.FINGERDOWN:
			t.Press(x, y)
		case sdl.FINGERMOTION:
			t.Move(x, y)
		case sdl.FINGERUP:
			t.Release(x, y)
		}
		return true
	}
	return false
}
