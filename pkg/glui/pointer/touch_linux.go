//go:build linux

package pointer

import (
	"context"
	"fmt"

	"github.com/holoplot/go-evdev"
)

// Start opens the device and begins reading it. The goroutine ends when ctx
// is cancelled, Close is called or the device goes away.
func (r *TouchReader) Start(ctx context.Context) error {
	dev, err := evdev.Open(r.path)
	if err != nil {
		return fmt.Errorf("opening touch device %s: %w", r.path, err)
	}

	dec := &touchDecoder{
		tracker: r.tracker,
		width:   r.width,
		height:  r.height,
	}
	if infos, err := dev.AbsInfos(); err == nil {
		if info, ok := infos[evdev.ABS_MT_POSITION_X]; ok {
			dec.xAxis = axis{min: info.Minimum, max: info.Maximum}
		} else if info, ok := infos[evdev.ABS_X]; ok {
			dec.xAxis = axis{min: info.Minimum, max: info.Maximum}
		}
		if info, ok := infos[evdev.ABS_MT_POSITION_Y]; ok {
			dec.yAxis = axis{min: info.Minimum, max: info.Maximum}
		} else if info, ok := infos[evdev.ABS_Y]; ok {
			dec.yAxis = axis{min: info.Minimum, max: info.Maximum}
		}
	} else {
		r.logger.Warn("Touch device has no axis info, using raw coordinates", "device", r.path, "error", err)
	}

	name, _ := dev.Name()
	r.logger.Debug("Reading touch device", "device", r.path, "name", name,
		"x_range", []int32{dec.xAxis.min, dec.xAxis.max},
		"y_range", []int32{dec.yAxis.min, dec.yAxis.max})

	ctx, r.cancel = context.WithCancel(ctx)

	// ReadOne blocks, so closing the device is what unblocks the reader.
	r.wg.Add(2)
	go func() {
		defer r.wg.Done()
		<-ctx.Done()
		dev.Close()
	}()
	go func() {
		defer r.wg.Done()
		defer r.cancel()

		for {
			ev, err := dev.ReadOne()
			if err != nil {
				if ctx.Err() == nil {
					r.logger.Error("Touch device read failed", "device", r.path, "error", err)
				}
				return
			}

			switch ev.Type {
			case evdev.EV_ABS:
				switch ev.Code {
				case evdev.ABS_MT_POSITION_X, evdev.ABS_X:
					dec.handle(touchX, ev.Value)
				case evdev.ABS_MT_POSITION_Y, evdev.ABS_Y:
					dec.handle(touchY, ev.Value)
				}
			case evdev.EV_KEY:
				if ev.Code == evdev.BTN_TOUCH {
					if ev.Value != 0 {
						dec.handle(touchDown, 0)
					} else {
						dec.handle(touchUp, 0)
					}
				}
			case evdev.EV_SYN:
				if ev.Code == evdev.SYN_REPORT {
					dec.handle(touchSync, 0)
				}
			}
		}
	}()

	return nil
}
