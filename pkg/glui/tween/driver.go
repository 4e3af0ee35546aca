// Package tween animates float32 values over time.
//
// A Driver holds the set of running tweens. Each tween is bound to a subject
// pointer and moves it from its value at push time to a target value along an
// easing curve from github.com/tanema/gween/ease. The driver is advanced once
// per frame with Update and is not safe for concurrent use.
package tween

import (
	"errors"
	"log/slog"
	"time"

	"github.com/BrandonKowalski/glui/pkg/glui/constants"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// ErrNilSubject is returned when a tween is pushed without a subject.
var ErrNilSubject = errors.New("tween: nil subject")

// NoTag marks a tween that does not belong to any tag group.
const NoTag = -1

// Entry describes a single animation.
type Entry struct {
	Subject    *float32       // Value being animated
	Target     float32        // Final value
	Duration   time.Duration  // Total length of the animation
	Easing     ease.TweenFunc // Interpolation curve, ease.Linear when nil
	Tag        int            // Group id for KillByTag, NoTag if none
	OnComplete func()         // Called once after the subject reaches Target
}

type tween struct {
	Entry
	curve   *gween.Tween
	elapsed time.Duration
}

// Driver owns the active tweens.
type Driver struct {
	tweens []*tween
	logger *slog.Logger
}

// NewDriver creates an empty Driver. A nil logger falls back to slog.Default.
func NewDriver(logger *slog.Logger) *Driver {
	if logger == nil {
		logger = slog.Default()
	}
	return &Driver{logger: logger}
}

// Push starts a new tween. Any tween already bound to the same subject is
// removed first so two animations never fight over one value.
// A non-positive duration assigns the target immediately.
func (d *Driver) Push(e Entry) error {
	if e.Subject == nil {
		return ErrNilSubject
	}

	d.KillBySubject(e.Subject)

	if e.Duration <= 0 {
		*e.Subject = e.Target
		if e.OnComplete != nil {
			e.OnComplete()
		}
		return nil
	}

	if e.Easing == nil {
		e.Easing = ease.Linear
	}

	d.tweens = append(d.tweens, &tween{
		Entry: e,
		curve: gween.New(*e.Subject, e.Target, float32(e.Duration.Seconds()), e.Easing),
	})
	return nil
}

// Animate pushes an untagged tween. It is the entry point the layout engine
// uses for scroll animations.
func (d *Driver) Animate(subject *float32, target float32, duration time.Duration, easing ease.TweenFunc) {
	err := d.Push(Entry{
		Subject:  subject,
		Target:   target,
		Duration: duration,
		Easing:   easing,
		Tag:      NoTag,
	})
	if err != nil {
		d.logger.Warn("Dropped animation", "error", err)
	}
}

// Update advances every tween by delta and returns true while any tween is
// still running. The delta is normalised with IdealDelta.
func (d *Driver) Update(delta time.Duration) bool {
	if len(d.tweens) == 0 {
		return false
	}

	delta = IdealDelta(delta)

	var finished []func()
	remaining := d.tweens[:0]

	for _, t := range d.tweens {
		// Completion is decided on the Duration, not on float seconds.
		t.elapsed += delta
		if t.elapsed >= t.Duration {
			*t.Subject = t.Target
			if t.OnComplete != nil {
				finished = append(finished, t.OnComplete)
			}
			continue
		}

		*t.Subject, _ = t.curve.Set(float32(t.elapsed.Seconds()))
		remaining = append(remaining, t)
	}

	for i := len(remaining); i < len(d.tweens); i++ {
		d.tweens[i] = nil
	}
	d.tweens = remaining

	// Callbacks may push new tweens, so run them after the list is settled.
	for _, fn := range finished {
		fn()
	}

	return len(d.tweens) > 0
}

// KillBySubject removes every tween bound to one of the given subjects and
// returns how many were removed. Subjects keep their current value.
func (d *Driver) KillBySubject(subjects ...*float32) int {
	if len(subjects) == 0 || len(d.tweens) == 0 {
		return 0
	}

	return d.removeWhere(func(t *tween) bool {
		for _, s := range subjects {
			if s != nil && t.Subject == s {
				return true
			}
		}
		return false
	})
}

// KillByTag removes every tween carrying tag. NoTag is ignored.
func (d *Driver) KillByTag(tag int) int {
	if tag == NoTag {
		return 0
	}
	return d.removeWhere(func(t *tween) bool { return t.Tag == tag })
}

// Clear removes all tweens.
func (d *Driver) Clear() {
	d.tweens = nil
}

// Len returns the number of running tweens.
func (d *Driver) Len() int {
	return len(d.tweens)
}

// IsActive reports whether any tween is running.
func (d *Driver) IsActive() bool {
	return len(d.tweens) > 0
}

func (d *Driver) removeWhere(match func(*tween) bool) int {
	removed := 0
	kept := d.tweens[:0]
	for _, t := range d.tweens {
		if match(t) {
			removed++
			continue
		}
		kept = append(kept, t)
	}
	for i := len(kept); i < len(d.tweens); i++ {
		d.tweens[i] = nil
	}
	d.tweens = kept
	return removed
}

// IdealDelta clamps a measured frame time into a usable animation step.
// Zero or negative deltas become one ideal frame; long stalls are capped.
func IdealDelta(delta time.Duration) time.Duration {
	if delta <= 0 {
		return constants.IdealFrameTime
	}
	if delta > constants.MaxFrameTime {
		return constants.MaxFrameTime
	}
	return delta
}
