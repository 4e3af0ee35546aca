package pointer

import (
	"sync"
	"testing"
)

func TestTrackerTap(t *testing.T) {
	tr := NewTracker()

	tr.Press(100, 200)
	if !tr.Pressed() {
		t.Fatal("Pressed() = false after Press")
	}
	tr.Move(103, 204)

	if tap := tr.Release(103, 204); !tap {
		t.Error("short press was not a tap")
	}
	if tr.Pressed() {
		t.Error("Pressed() = true after Release")
	}

	ev, ok := tr.Poll()
	if !ok || ev.Kind != EventPress || ev.X != 100 || ev.Y != 200 {
		t.Errorf("first event = %+v, %v, want press at 100,200", ev, ok)
	}
	ev, ok = tr.Poll()
	if !ok || ev.Kind != EventRelease || !ev.Tap {
		t.Errorf("second event = %+v, %v, want tap release", ev, ok)
	}
	if _, ok := tr.Poll(); ok {
		t.Error("Poll() returned a third event")
	}
}

func TestTrackerDrag(t *testing.T) {
	tr := NewTracker()

	tr.Press(50, 300)
	tr.Move(50, 290)
	if got := tr.Accel(); got != -5 {
		t.Errorf("Accel() after first move = %v, want -5", got)
	}

	tr.Move(50, 270)
	// mean of -10 and -20
	if got := tr.Accel(); got != -15 {
		t.Errorf("Accel() after second move = %v, want -15", got)
	}
	if !tr.Dragged() {
		t.Error("Dragged() = false after 30px of travel")
	}

	if tap := tr.Release(50, 270); tap {
		t.Error("drag reported as tap")
	}
	if tr.Accel() == 0 {
		t.Error("Release cleared the acceleration")
	}

	tr.Press(50, 270)
	if tr.Accel() != 0 {
		t.Errorf("Press kept acceleration %v", tr.Accel())
	}
}

func TestTrackerMoveWhileReleased(t *testing.T) {
	tr := NewTracker()
	tr.Move(10, 10)
	tr.Move(10, 90)

	if tr.Accel() != 0 {
		t.Errorf("hover changed acceleration to %v", tr.Accel())
	}
	if x, y := tr.Position(); x != 10 || y != 90 {
		t.Errorf("Position() = %d, %d, want 10, 90", x, y)
	}
	if tr.Release(10, 90) {
		t.Error("Release without Press reported a tap")
	}
	if _, ok := tr.Poll(); ok {
		t.Error("hover queued an event")
	}
}

func TestTrackerUpdateAccel(t *testing.T) {
	tr := NewTracker()
	tr.SetAccel(10)

	tr.UpdateAccel(func(a float32) float32 { return a / 2 })
	if tr.Accel() != 5 {
		t.Errorf("Accel() = %v, want 5", tr.Accel())
	}
}

func TestTrackerConcurrentAccess(t *testing.T) {
	tr := NewTracker()

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		for i := range int32(1000) {
			tr.Press(0, i)
			tr.Move(0, i+5)
			tr.Release(0, i+5)
		}
	}()
	go func() {
		defer wg.Done()
		for range 1000 {
			tr.UpdateAccel(func(a float32) float32 { return a * 0.96 })
			tr.Poll()
		}
	}()
	wg.Wait()
}

func TestEventQueueDropsWhenFull(t *testing.T) {
	tr := NewTracker()
	for i := range int32(eventQueueSize * 2) {
		tr.Press(i, i)
		tr.Release(i, i)
	}

	n := 0
	for {
		if _, ok := tr.Poll(); !ok {
			break
		}
		n++
	}
	if n != eventQueueSize {
		t.Errorf("drained %d events, want %d", n, eventQueueSize)
	}
}

func TestAxisScale(t *testing.T) {
	tests := []struct {
		name string
		a    axis
		v    int32
		size int32
		want int32
	}{
		{"minimum", axis{0, 4095}, 0, 640, 0},
		{"maximum", axis{0, 4095}, 4095, 640, 639},
		{"middle", axis{0, 4095}, 2048, 640, 319},
		{"offset range", axis{100, 1100}, 600, 1001, 500},
		{"below range", axis{100, 1100}, 0, 1001, 0},
		{"no range", axis{}, 77, 640, 77},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.a.scale(tc.v, tc.size); got != tc.want {
				t.Errorf("scale(%d, %d) = %d, want %d", tc.v, tc.size, got, tc.want)
			}
		})
	}
}

func TestTouchDecoder(t *testing.T) {
	tr := NewTracker()
	dec := &touchDecoder{
		tracker: tr,
		xAxis:   axis{0, 1000},
		yAxis:   axis{0, 1000},
		width:   1001,
		height:  1001,
	}

	// Finger down at (100, 500).
	dec.handle(touchX, 100)
	dec.handle(touchY, 500)
	dec.handle(touchDown, 0)
	if tr.Pressed() {
		t.Fatal("press applied before sync")
	}
	dec.handle(touchSync, 0)
	if !tr.Pressed() {
		t.Fatal("press not applied on sync")
	}

	// Drag up by 40.
	dec.handle(touchY, 480)
	dec.handle(touchSync, 0)
	dec.handle(touchY, 460)
	dec.handle(touchSync, 0)
	if tr.Accel() != -20 {
		t.Errorf("Accel() = %v, want -20", tr.Accel())
	}

	// Lift.
	dec.handle(touchUp, 0)
	dec.handle(touchSync, 0)
	if tr.Pressed() {
		t.Error("release not applied")
	}

	kinds := []EventKind{}
	for {
		ev, ok := tr.Poll()
		if !ok {
			break
		}
		kinds = append(kinds, ev.Kind)
		if ev.Kind == EventRelease && ev.Tap {
			t.Error("drag delivered as tap")
		}
	}
	if len(kinds) != 2 || kinds[0] != EventPress || kinds[1] != EventRelease {
		t.Errorf("events = %v, want press, release", kinds)
	}
}
