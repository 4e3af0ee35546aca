package menu

import (
	"time"

	"github.com/BrandonKowalski/glui/pkg/glui/constants"
)

// direction is a held navigation button.
type direction int

const (
	directionNone direction = iota
	directionUp
	directionDown
	directionLeft
	directionRight
	directionPageUp
	directionPageDown
)

func (d direction) String() string {
	switch d {
	case directionUp:
		return "up"
	case directionDown:
		return "down"
	case directionLeft:
		return "left"
	case directionRight:
		return "right"
	case directionPageUp:
		return "page up"
	case directionPageDown:
		return "page down"
	default:
		return ""
	}
}

func directionFor(button constants.VirtualButton) direction {
	switch button {
	case constants.VirtualButtonUp:
		return directionUp
	case constants.VirtualButtonDown:
		return directionDown
	case constants.VirtualButtonLeft:
		return directionLeft
	case constants.VirtualButtonRight:
		return directionRight
	case constants.VirtualButtonL1:
		return directionPageUp
	case constants.VirtualButtonR1:
		return directionPageDown
	default:
		return directionNone
	}
}

// repeater tracks the held direction and fires repeats: the first after
// delay, then one every interval.
type repeater struct {
	held        direction
	last        time.Time
	delay       time.Duration
	interval    time.Duration
	hasRepeated bool
}

func newRepeater(delay, interval time.Duration) repeater {
	return repeater{delay: delay, interval: interval}
}

// press starts holding the direction of button. It reports false for
// buttons that do not repeat.
func (r *repeater) press(button constants.VirtualButton, now time.Time) bool {
	d := directionFor(button)
	if d == directionNone {
		return false
	}
	r.held = d
	r.last = now
	r.hasRepeated = false
	return true
}

func (r *repeater) release(button constants.VirtualButton) {
	if d := directionFor(button); d != directionNone && d == r.held {
		r.reset()
	}
}

// update returns the direction to repeat at now, or directionNone.
func (r *repeater) update(now time.Time) direction {
	if r.held == directionNone {
		return directionNone
	}

	threshold := r.interval
	if !r.hasRepeated {
		threshold = r.delay
	}

	if now.Sub(r.last) >= threshold {
		r.last = now
		r.hasRepeated = true
		return r.held
	}
	return directionNone
}

func (r *repeater) reset() {
	r.held = directionNone
	r.hasRepeated = false
}
