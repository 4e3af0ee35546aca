package pointer

import (
	"context"
	"errors"
	"log/slog"
	"sync"
)

// ErrUnsupported is returned by TouchReader.Start on platforms without
// evdev.
var ErrUnsupported = errors.New("touch input not supported on this platform")

type touchKind int

const (
	touchX touchKind = iota
	touchY
	touchDown
	touchUp
	touchSync
)

// axis is the value range a touchscreen reports for one coordinate.
type axis struct {
	min, max int32
}

// scale maps v from the axis range onto [0, size).
func (a axis) scale(v, size int32) int32 {
	if a.max <= a.min || size <= 0 {
		return v
	}
	v = min(max(v, a.min), a.max)
	return int32(int64(v-a.min) * int64(size-1) / int64(a.max-a.min))
}

// touchDecoder turns the per-axis stream of a touchscreen into tracker
// calls. Nothing is applied until a sync event closes the frame.
type touchDecoder struct {
	tracker       *Tracker
	xAxis, yAxis  axis
	width, height int32

	x, y    int32
	down    bool
	wasDown bool
	moved   bool
}

func (d *touchDecoder) handle(kind touchKind, value int32) {
	switch kind {
	case touchX:
		d.x = d.xAxis.scale(value, d.width)
		d.moved = true
	case touchY:
		d.y = d.yAxis.scale(value, d.height)
		d.moved = true
	case touchDown:
		d.down = true
	case touchUp:
		d.down = false
	case touchSync:
		d.sync()
	}
}

func (d *touchDecoder) sync() {
	switch {
	case d.down && !d.wasDown:
		d.tracker.Press(d.x, d.y)
	case d.down && d.moved:
		d.tracker.Move(d.x, d.y)
	case !d.down && d.wasDown:
		d.tracker.Release(d.x, d.y)
	}
	d.wasDown = d.down
	d.moved = false
}

// TouchReader feeds a Tracker from a touchscreen event device on a
// background goroutine.
type TouchReader struct {
	path          string
	tracker       *Tracker
	width, height int32
	logger        *slog.Logger

	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewTouchReader prepares a reader for the device at path. Coordinates are
// scaled to a screen of width x height pixels.
func NewTouchReader(path string, tracker *Tracker, width, height int32, logger *slog.Logger) *TouchReader {
	if logger == nil {
		logger = slog.Default()
	}
	return &TouchReader{
		path:    path,
		tracker: tracker,
		width:   width,
		height:  height,
		logger:  logger,
	}
}

// Close stops the reader goroutine and waits for it to exit.
func (r *TouchReader) Close() {
	if r.cancel != nil {
		r.cancel()
	}
	r.wg.Wait()
}
