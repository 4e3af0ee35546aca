// Package pointer tracks touch and mouse pointers.
//
// A Tracker is written by input sources (the SDL event loop for mice, a
// goroutine reading a touchscreen for touch) and read once per frame by the
// menu. All of its state is held in atomics so the two sides never block
// each other.
package pointer

import (
	"go.uber.org/atomic"
)

// DragThreshold is how far a press may travel, in pixels, and still count as
// a tap on release.
const DragThreshold = 10

const eventQueueSize = 32

// EventKind says what an Event reports.
type EventKind int

const (
	EventPress EventKind = iota
	EventRelease
)

// Event is a press or release queued for the render loop.
type Event struct {
	Kind EventKind
	X, Y int32
	Tap  bool // release only: the press never became a drag
}

// Tracker is the state of one pointer.
type Tracker struct {
	events chan Event

	pressed atomic.Bool
	dragged atomic.Bool

	x, y           atomic.Int32
	startX, startY atomic.Int32

	accel  atomic.Float32
	lastDY atomic.Float32
}

// NewTracker returns a released tracker at the origin.
func NewTracker() *Tracker {
	return &Tracker{events: make(chan Event, eventQueueSize)}
}

// Press starts a touch or button press at (x, y). Any inertia left from an
// earlier drag stops.
func (t *Tracker) Press(x, y int32) {
	t.x.Store(x)
	t.y.Store(y)
	t.startX.Store(x)
	t.startY.Store(y)
	t.accel.Store(0)
	t.lastDY.Store(0)
	t.dragged.Store(false)
	t.pressed.Store(true)
	t.queue(Event{Kind: EventPress, X: x, Y: y})
}

// Move records a new position. While pressed the vertical motion feeds the
// drag acceleration, which is the mean of the last two vertical deltas.
func (t *Tracker) Move(x, y int32) {
	prevY := t.y.Swap(y)
	t.x.Store(x)

	if !t.pressed.Load() {
		return
	}

	dy := float32(y - prevY)
	t.accel.Store((t.lastDY.Swap(dy) + dy) / 2)

	if abs(x-t.startX.Load()) > DragThreshold || abs(y-t.startY.Load()) > DragThreshold {
		t.dragged.Store(true)
	}
}

// Release ends the press at (x, y) and reports whether it was a tap, that is
// the pointer never travelled further than DragThreshold. The acceleration
// is kept so the list coasts.
func (t *Tracker) Release(x, y int32) bool {
	t.Move(x, y)
	if !t.pressed.Swap(false) {
		return false
	}

	tap := !t.dragged.Load()
	t.queue(Event{Kind: EventRelease, X: x, Y: y, Tap: tap})
	return tap
}

// Poll returns the next queued press or release, if any.
func (t *Tracker) Poll() (Event, bool) {
	select {
	case ev := <-t.events:
		return ev, true
	default:
		return Event{}, false
	}
}

// queue drops the event when the render loop has fallen behind.
func (t *Tracker) queue(ev Event) {
	select {
	case t.events <- ev:
	default:
	}
}

// Position returns the last known position.
func (t *Tracker) Position() (x, y int32) {
	return t.x.Load(), t.y.Load()
}

// Pressed reports whether the pointer is down.
func (t *Tracker) Pressed() bool {
	return t.pressed.Load()
}

// Dragged reports whether the current or last press moved beyond
// DragThreshold.
func (t *Tracker) Dragged() bool {
	return t.dragged.Load()
}

// Accel returns the drag acceleration.
func (t *Tracker) Accel() float32 {
	return t.accel.Load()
}

// SetAccel overwrites the drag acceleration.
func (t *Tracker) SetAccel(v float32) {
	t.accel.Store(v)
}

// UpdateAccel replaces the acceleration with fn applied to it. If an input
// source stores a new value concurrently, fn is retried on that value.
func (t *Tracker) UpdateAccel(fn func(float32) float32) {
	for {
		old := t.accel.Load()
		if t.accel.CompareAndSwap(old, fn(old)) {
			return
		}
	}
}

func abs(v int32) int32 {
	if v < 0 {
		return -v
	}
	return v
}
