package menu

import (
	"testing"
	"time"

	"github.com/BrandonKowalski/glui/pkg/glui/constants"
	"github.com/BrandonKowalski/glui/pkg/glui/labels"
	"github.com/BrandonKowalski/glui/pkg/glui/layout"
	"github.com/BrandonKowalski/glui/pkg/glui/pointer"
	"github.com/BrandonKowalski/glui/pkg/glui/router"
)

const (
	listMain router.List = iota
	listPlaylists
	listSettings
)

// 320x480 at dpi 144: header and tabs are 48px, rows are 48px, so the list
// area holds eight rows between y=48 and y=432.
const (
	screenW = 320
	screenH = 480
)

type fakePointer struct {
	x, y   int32
	events []pointer.Event
	accel  float32
}

func (p *fakePointer) Position() (int32, int32) { return p.x, p.y }

func (p *fakePointer) Poll() (pointer.Event, bool) {
	if len(p.events) == 0 {
		return pointer.Event{}, false
	}
	ev := p.events[0]
	p.events = p.events[1:]
	return ev, true
}

func (p *fakePointer) UpdateAccel(fn func(float32) float32) { p.accel = fn(p.accel) }

func (p *fakePointer) tap(x, y int32) {
	p.events = append(p.events,
		pointer.Event{Kind: pointer.EventPress, X: x, Y: y},
		pointer.Event{Kind: pointer.EventRelease, X: x, Y: y, Tap: true},
	)
}

func newTestRouter() *router.Router {
	r := router.New(nil)

	r.Register(listMain, labels.MainMenu, func() (layout.EntryList, error) {
		entries := make(layout.EntryList, 20)
		for i := range entries {
			entries[i] = layout.Entry{Label: "entry"}
		}
		entries[12] = layout.Entry{LabelID: labels.SettingsTab}
		return entries, nil
	})
	r.Register(listPlaylists, labels.PlaylistsTab, func() (layout.EntryList, error) {
		return layout.EntryList{{Label: "Nintendo - SNES"}}, nil
	})
	r.Register(listSettings, labels.SettingsTab, func() (layout.EntryList, error) {
		return layout.EntryList{
			{LabelID: labels.VideoSettings},
			{LabelID: labels.AudioSettings},
			{LabelID: labels.InputSettings},
		}, nil
	})

	r.Link(labels.SettingsTab, listSettings)
	r.Tab(constants.TabMain, listMain)
	r.Tab(constants.TabPlaylists, listPlaylists)
	r.Tab(constants.TabSettings, listSettings)
	return r
}

func newTestController(t *testing.T, opts ...Option) *Controller {
	t.Helper()
	c := New(newTestRouter(), layout.NewMetrics(144), opts...)
	if err := c.Start(constants.TabMain); err != nil {
		t.Fatalf("Start() error = %v", err)
	}
	c.Frame(screenW, screenH, constants.IdealFrameTime)
	return c
}

// settle runs enough frames for any navigation animation to finish.
func settle(c *Controller) Action {
	var last Action
	for range 12 {
		if a := c.Frame(screenW, screenH, constants.IdealFrameTime); a.Kind != ActionNone {
			last = a
		}
	}
	return last
}

func approx(a, b float32) bool {
	d := a - b
	return d < 1e-3 && d > -1e-3
}

func press(c *Controller, b constants.VirtualButton) Action {
	a := c.Button(b, true)
	c.Button(b, false)
	return a
}

func TestStartShowsRoot(t *testing.T) {
	c := newTestController(t)

	if c.Page().List != listMain || c.Tab() != constants.TabMain {
		t.Errorf("showing list %d tab %s, want main", c.Page().List, c.Tab())
	}
	if c.Selection() != 0 || c.Engine().ScrollY() != 0 {
		t.Errorf("selection %d scroll %v, want 0, 0", c.Selection(), c.Engine().ScrollY())
	}
	if got := c.Engine().ContentHeight(); got != 20*48 {
		t.Errorf("ContentHeight() = %v, want %v", got, 20*48)
	}
}

func TestDownScrollsToSelection(t *testing.T) {
	c := newTestController(t)

	for range 10 {
		press(c, constants.VirtualButtonDown)
		c.Frame(screenW, screenH, constants.IdealFrameTime)
	}
	settle(c)

	if c.Selection() != 10 {
		t.Fatalf("Selection() = %d, want 10", c.Selection())
	}
	// (10 + 2 - (480/48)/3) * 48
	if got := c.Engine().ScrollY(); got != 432 {
		t.Errorf("ScrollY() = %v, want 432", got)
	}
}

func TestSelectionMovement(t *testing.T) {
	tests := []struct {
		name    string
		buttons []constants.VirtualButton
		want    int
	}{
		{"up wraps to end", []constants.VirtualButton{constants.VirtualButtonUp}, 19},
		{"down wraps to start", []constants.VirtualButton{constants.VirtualButtonUp, constants.VirtualButtonDown}, 0},
		{"page down", []constants.VirtualButton{constants.VirtualButtonR1}, 10},
		{"page down clamps", []constants.VirtualButton{constants.VirtualButtonR1, constants.VirtualButtonR1}, 19},
		{"page up clamps", []constants.VirtualButton{constants.VirtualButtonL1}, 0},
		{"page back", []constants.VirtualButton{constants.VirtualButtonR1, constants.VirtualButtonR1, constants.VirtualButtonL1}, 9},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c := newTestController(t)
			for _, b := range tc.buttons {
				press(c, b)
			}
			if c.Selection() != tc.want {
				t.Errorf("Selection() = %d, want %d", c.Selection(), tc.want)
			}
		})
	}
}

func TestOpenAndBackRestoresPosition(t *testing.T) {
	c := newTestController(t)

	c.Select(12)
	settle(c)
	scroll := c.Engine().ScrollY()
	if scroll != 528 {
		t.Fatalf("ScrollY() before opening = %v, want 528", scroll)
	}

	if a := press(c, constants.VirtualButtonA); a.Kind != ActionNone {
		t.Fatalf("activating a linked entry returned %v", a.Kind)
	}
	if c.Page().List != listSettings || c.Depth() != 1 {
		t.Fatalf("showing list %d depth %d, want settings at depth 1", c.Page().List, c.Depth())
	}
	c.Frame(screenW, screenH, constants.IdealFrameTime)
	if c.Selection() != 0 || c.Engine().ScrollY() != 0 {
		t.Errorf("new list at selection %d scroll %v", c.Selection(), c.Engine().ScrollY())
	}

	press(c, constants.VirtualButtonB)
	c.Frame(screenW, screenH, constants.IdealFrameTime)
	if c.Page().List != listMain || c.Selection() != 12 {
		t.Errorf("back to list %d selection %d, want main at 12", c.Page().List, c.Selection())
	}
	if got := c.Engine().ScrollY(); got != scroll {
		t.Errorf("ScrollY() after back = %v, want %v", got, scroll)
	}
}

func TestActivatePlainEntry(t *testing.T) {
	c := newTestController(t)
	press(c, constants.VirtualButtonDown)

	a := press(c, constants.VirtualButtonA)
	if a.Kind != ActionActivate || a.Index != 1 || a.List != listMain || a.Entry.Label != "entry" {
		t.Errorf("A returned %+v", a)
	}
}

func TestCancelAtRoot(t *testing.T) {
	c := newTestController(t)
	if a := press(c, constants.VirtualButtonB); a.Kind != ActionCancel {
		t.Errorf("B on root returned %v, want cancel", a.Kind)
	}
}

func TestLeftRightOnRootSwitchesTabs(t *testing.T) {
	c := newTestController(t)

	steps := []struct {
		button constants.VirtualButton
		tab    constants.Tab
		list   router.List
	}{
		{constants.VirtualButtonRight, constants.TabPlaylists, listPlaylists},
		{constants.VirtualButtonLeft, constants.TabMain, listMain},
		{constants.VirtualButtonLeft, constants.TabSettings, listSettings},
	}
	for _, s := range steps {
		press(c, s.button)
		if c.Tab() != s.tab || c.Page().List != s.list {
			t.Fatalf("after %s: tab %s list %d, want %s %d", s.button.GetName(), c.Tab(), c.Page().List, s.tab, s.list)
		}
	}
}

func TestLeftRightInSubList(t *testing.T) {
	c := newTestController(t)
	c.Select(12)
	press(c, constants.VirtualButtonA)
	press(c, constants.VirtualButtonDown)

	a := press(c, constants.VirtualButtonRight)
	if a.Kind != ActionRight || a.Index != 1 || a.Entry.LabelID != labels.AudioSettings {
		t.Errorf("Right returned %+v", a)
	}
	if a := press(c, constants.VirtualButtonLeft); a.Kind != ActionLeft {
		t.Errorf("Left returned %v", a.Kind)
	}
	if c.Tab() != constants.TabMain {
		t.Errorf("tab changed to %s inside a sub list", c.Tab())
	}
}

func TestDirectionRepeat(t *testing.T) {
	now := time.Unix(0, 0)
	c := newTestController(t,
		WithClock(func() time.Time { return now }),
		WithRepeat(300*time.Millisecond, 50*time.Millisecond),
	)

	c.Button(constants.VirtualButtonDown, true)

	steps := []struct {
		at   time.Duration
		want int
	}{
		{0, 1},
		{200 * time.Millisecond, 1},
		{300 * time.Millisecond, 2},
		{330 * time.Millisecond, 2},
		{350 * time.Millisecond, 3},
		{400 * time.Millisecond, 4},
	}
	for _, s := range steps {
		now = time.Unix(0, 0).Add(s.at)
		c.Frame(screenW, screenH, constants.IdealFrameTime)
		if c.Selection() != s.want {
			t.Fatalf("at %v: Selection() = %d, want %d", s.at, c.Selection(), s.want)
		}
	}

	c.Button(constants.VirtualButtonDown, false)
	now = now.Add(time.Second)
	c.Frame(screenW, screenH, constants.IdealFrameTime)
	if c.Selection() != 4 {
		t.Errorf("released button kept repeating to %d", c.Selection())
	}
}

func TestPointerTap(t *testing.T) {
	tests := []struct {
		name      string
		x, y      int32
		kind      ActionKind
		index     int
		tab       constants.Tab
		list      router.List
		selection int
	}{
		{"entry", 10, 48 + 2*48 + 10, ActionActivate, 2, constants.TabMain, listMain, 2},
		{"header cancels", 10, 20, ActionCancel, 0, constants.TabMain, listMain, 0},
		{"tab bar", 250, 470, ActionNone, 0, constants.TabSettings, listSettings, 0},
		{"active tab", 10, 440, ActionNone, 0, constants.TabMain, listMain, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p := &fakePointer{}
			c := newTestController(t, WithPointer(p))
			p.tap(tc.x, tc.y)

			a := c.Frame(screenW, screenH, constants.IdealFrameTime)
			if a.Kind != tc.kind || (a.Kind == ActionActivate && a.Index != tc.index) {
				t.Errorf("tap returned %+v, want %v at %d", a, tc.kind, tc.index)
			}
			if c.Tab() != tc.tab || c.Page().List != tc.list {
				t.Errorf("tab %s list %d, want %s %d", c.Tab(), c.Page().List, tc.tab, tc.list)
			}
			if c.Selection() != tc.selection {
				t.Errorf("Selection() = %d, want %d", c.Selection(), tc.selection)
			}
		})
	}
}

func TestPointerPressSelectsWithoutActivating(t *testing.T) {
	p := &fakePointer{}
	c := newTestController(t, WithPointer(p))

	p.events = []pointer.Event{
		{Kind: pointer.EventPress, X: 10, Y: 48 + 3*48 + 5},
		{Kind: pointer.EventRelease, X: 10, Y: 48 + 4*48 + 5, Tap: true},
	}
	if a := c.Frame(screenW, screenH, constants.IdealFrameTime); a.Kind != ActionNone {
		t.Errorf("release on another entry returned %v", a.Kind)
	}
	if c.Selection() != 3 {
		t.Errorf("Selection() = %d, want 3", c.Selection())
	}

	p.events = []pointer.Event{
		{Kind: pointer.EventPress, X: 10, Y: 48 + 5},
		{Kind: pointer.EventRelease, X: 10, Y: 48 + 5},
	}
	if a := c.Frame(screenW, screenH, constants.IdealFrameTime); a.Kind != ActionNone {
		t.Errorf("drag release returned %v", a.Kind)
	}
}

func TestPointerAccelAppliedOncePerFrame(t *testing.T) {
	p := &fakePointer{accel: -10}
	c := newTestController(t, WithPointer(p))

	// The start frame already consumed one step.
	if got := c.Engine().ScrollY(); got != 10 {
		t.Errorf("ScrollY() = %v, want 10", got)
	}
	if !approx(p.accel, -9.6) {
		t.Errorf("accel = %v, want -9.6", p.accel)
	}

	c.Frame(screenW, screenH, constants.IdealFrameTime)
	if got := c.Engine().ScrollY(); !approx(got, 19.6) {
		t.Errorf("ScrollY() after second frame = %v, want 19.6", got)
	}
}

func TestPointerAccelClamped(t *testing.T) {
	p := &fakePointer{accel: 50}
	c := newTestController(t, WithPointer(p))

	if got := c.Engine().ScrollY(); got != 0 {
		t.Errorf("ScrollY() = %v, want clamped to 0", got)
	}
}

func TestHover(t *testing.T) {
	p := &fakePointer{x: 10, y: 48 + 2*48 + 5}
	c := newTestController(t, WithPointer(p))
	if c.Hover() != 2 {
		t.Errorf("Hover() = %d, want 2", c.Hover())
	}

	p.y = 10
	c.Frame(screenW, screenH, constants.IdealFrameTime)
	if c.Hover() != layout.NoEntry {
		t.Errorf("Hover() in header = %d, want NoEntry", c.Hover())
	}
}

func TestMessageSwallowsInput(t *testing.T) {
	p := &fakePointer{}
	c := newTestController(t, WithPointer(p))

	c.ShowMessage("Saved\nSlot 1")
	if a := press(c, constants.VirtualButtonB); a.Kind != ActionNone {
		t.Errorf("B with a message returned %v", a.Kind)
	}
	if c.Message() != "" {
		t.Error("button did not dismiss the message")
	}

	c.ShowMessage("again")
	p.tap(10, 48+5)
	if a := c.Frame(screenW, screenH, constants.IdealFrameTime); a.Kind != ActionNone {
		t.Errorf("tap with a message returned %v", a.Kind)
	}
	if c.Message() != "" {
		t.Error("tap did not dismiss the message")
	}
}

func TestKeyboardButtons(t *testing.T) {
	c := newTestController(t)
	c.ShowKeyboard("Name")

	press(c, constants.VirtualButtonA)    // 1
	press(c, constants.VirtualButtonDown) // q
	press(c, constants.VirtualButtonA)
	press(c, constants.VirtualButtonLeft) // wraps to enter
	press(c, constants.VirtualButtonLeft) // p
	press(c, constants.VirtualButtonA)

	if got := c.Keyboard().Text(); got != "1qp" {
		t.Fatalf("Text() = %q, want %q", got, "1qp")
	}
	if c.Selection() != 0 {
		t.Errorf("keyboard input moved the list selection to %d", c.Selection())
	}

	a := press(c, constants.VirtualButtonStart)
	if a.Kind != ActionInput || a.Text != "1qp" {
		t.Errorf("Start returned %+v", a)
	}
	if c.Keyboard() != nil {
		t.Error("keyboard still open")
	}

	c.ShowKeyboard("Name")
	press(c, constants.VirtualButtonA)
	if a := press(c, constants.VirtualButtonB); a.Kind != ActionInputCancelled || a.Text != "" {
		t.Errorf("B returned %+v", a)
	}
}

func TestKeyboardTap(t *testing.T) {
	p := &fakePointer{}
	c := newTestController(t, WithPointer(p))
	c.ShowKeyboard("")

	tapKey := func(i int) {
		r := layout.OSKKeyRect(screenW, screenH, i)
		p.tap(int32(r.X+r.W/2), int32(r.Y+r.H/2))
	}
	tapKey(11) // q
	tapKey(KeyEnter)

	a := c.Frame(screenW, screenH, constants.IdealFrameTime)
	if a.Kind != ActionInput || a.Text != "q" {
		t.Errorf("Frame() = %+v, want input %q", a, "q")
	}
}
