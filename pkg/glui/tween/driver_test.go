package tween

import (
	"errors"
	"math"
	"testing"
	"time"

	"github.com/BrandonKowalski/glui/pkg/glui/constants"
	"github.com/tanema/gween/ease"
)

func TestInOutQuadThroughDriver(t *testing.T) {
	d := NewDriver(nil)
	value := float32(0)

	d.Animate(&value, 100, 4*constants.IdealFrameTime, ease.InOutQuad)

	want := []float32{12.5, 50, 87.5, 100}
	for i, w := range want {
		d.Update(constants.IdealFrameTime)
		if math.Abs(float64(value-w)) > 0.01 {
			t.Errorf("after %d frames value = %v, want %v", i+1, value, w)
		}
	}
}

func TestNilEasingIsLinear(t *testing.T) {
	d := NewDriver(nil)
	value := float32(0)

	if err := d.Push(Entry{Subject: &value, Target: 40, Duration: 4 * constants.IdealFrameTime, Tag: NoTag}); err != nil {
		t.Fatalf("Push() error = %v", err)
	}
	d.Update(constants.IdealFrameTime)
	if math.Abs(float64(value-10)) > 0.01 {
		t.Errorf("after 1 frame value = %v, want 10", value)
	}
}

func TestPushNilSubject(t *testing.T) {
	d := NewDriver(nil)
	if err := d.Push(Entry{Target: 1, Duration: time.Second}); !errors.Is(err, ErrNilSubject) {
		t.Fatalf("Push() error = %v, want ErrNilSubject", err)
	}
}

func TestLinearTweenReachesTarget(t *testing.T) {
	d := NewDriver(nil)
	value := float32(0)

	d.Animate(&value, 100, 4*constants.IdealFrameTime, ease.Linear)

	d.Update(constants.IdealFrameTime)
	if math.Abs(float64(value-25)) > 0.01 {
		t.Errorf("after 1 frame value = %v, want 25", value)
	}

	d.Update(constants.IdealFrameTime)
	if math.Abs(float64(value-50)) > 0.01 {
		t.Errorf("after 2 frames value = %v, want 50", value)
	}

	d.Update(constants.IdealFrameTime)
	running := d.Update(constants.IdealFrameTime)
	if running {
		t.Error("Update() reported running after the tween finished")
	}
	if value != 100 {
		t.Errorf("final value = %v, want 100", value)
	}
	if d.Len() != 0 {
		t.Errorf("Len() = %d, want 0", d.Len())
	}
}

func TestZeroDurationAssignsImmediately(t *testing.T) {
	d := NewDriver(nil)
	value := float32(3)
	done := false

	err := d.Push(Entry{Subject: &value, Target: 9, OnComplete: func() { done = true }})
	if err != nil {
		t.Fatalf("Push() error = %v", err)
	}
	if value != 9 || !done {
		t.Errorf("value = %v done = %v, want 9 true", value, done)
	}
	if d.IsActive() {
		t.Error("zero duration tween should not stay active")
	}
}

func TestPushReplacesTweenOnSameSubject(t *testing.T) {
	d := NewDriver(nil)
	value := float32(0)

	d.Animate(&value, 100, time.Second, ease.Linear)
	d.Animate(&value, 10, time.Second, ease.Linear)

	if d.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", d.Len())
	}
	for i := 0; i < 200; i++ {
		d.Update(constants.IdealFrameTime)
	}
	if value != 10 {
		t.Errorf("value = %v, want 10", value)
	}
}

func TestKillBySubject(t *testing.T) {
	d := NewDriver(nil)
	a, b, c := float32(0), float32(0), float32(0)

	d.Animate(&a, 1, time.Second, ease.Linear)
	d.Animate(&b, 1, time.Second, ease.Linear)
	d.Animate(&c, 1, time.Second, ease.Linear)

	if n := d.KillBySubject(&a, &c, nil); n != 2 {
		t.Errorf("KillBySubject() = %d, want 2", n)
	}
	if d.Len() != 1 {
		t.Errorf("Len() = %d, want 1", d.Len())
	}

	d.Update(constants.IdealFrameTime)
	if a != 0 || c != 0 {
		t.Errorf("killed subjects moved: a=%v c=%v", a, c)
	}
	if b == 0 {
		t.Error("surviving subject did not move")
	}
}

func TestKillByTag(t *testing.T) {
	d := NewDriver(nil)
	a, b := float32(0), float32(0)

	_ = d.Push(Entry{Subject: &a, Target: 1, Duration: time.Second, Tag: 7})
	_ = d.Push(Entry{Subject: &b, Target: 1, Duration: time.Second, Tag: NoTag})

	if n := d.KillByTag(NoTag); n != 0 {
		t.Errorf("KillByTag(NoTag) = %d, want 0", n)
	}
	if n := d.KillByTag(7); n != 1 {
		t.Errorf("KillByTag(7) = %d, want 1", n)
	}
}

func TestOnCompleteMayPush(t *testing.T) {
	d := NewDriver(nil)
	value := float32(0)

	err := d.Push(Entry{
		Subject:  &value,
		Target:   1,
		Duration: constants.IdealFrameTime,
		OnComplete: func() {
			d.Animate(&value, 2, constants.IdealFrameTime, ease.Linear)
		},
	})
	if err != nil {
		t.Fatalf("Push() error = %v", err)
	}

	if !d.Update(constants.IdealFrameTime) {
		t.Fatal("chained tween was not registered")
	}
	d.Update(constants.IdealFrameTime)
	if value != 2 {
		t.Errorf("value = %v, want 2", value)
	}
}

func TestIdealDelta(t *testing.T) {
	tests := []struct {
		name string
		in   time.Duration
		want time.Duration
	}{
		{"zero", 0, constants.IdealFrameTime},
		{"negative", -time.Second, constants.IdealFrameTime},
		{"normal", 10 * time.Millisecond, 10 * time.Millisecond},
		{"stall", time.Second, constants.MaxFrameTime},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := IdealDelta(tc.in); got != tc.want {
				t.Errorf("IdealDelta(%v) = %v, want %v", tc.in, got, tc.want)
			}
		})
	}
}
