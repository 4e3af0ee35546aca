// Package menu drives one menu screen frame by frame.
//
// A Controller owns the entries of the current list, the layout engine, the
// tween driver and the list router. The render loop calls Frame once per
// frame and forwards button events to Button; pointer input is pulled from a
// PointerSource during Frame so that the drag acceleration is read and
// written back exactly once per frame.
package menu

import (
	"log/slog"
	"time"

	"github.com/BrandonKowalski/glui/pkg/glui/constants"
	"github.com/BrandonKowalski/glui/pkg/glui/layout"
	"github.com/BrandonKowalski/glui/pkg/glui/pointer"
	"github.com/BrandonKowalski/glui/pkg/glui/router"
	"github.com/BrandonKowalski/glui/pkg/glui/tween"
)

// PageStep is how many entries L1/R1 move the selection.
const PageStep = 10

// PointerSource is the touch or mouse pointer. *pointer.Tracker satisfies it.
type PointerSource interface {
	Position() (x, y int32)
	Poll() (pointer.Event, bool)
	UpdateAccel(fn func(float32) float32)
}

// ActionKind says what the user asked for.
type ActionKind int

const (
	ActionNone ActionKind = iota
	// ActionActivate is an entry without a linked list being activated.
	ActionActivate
	// ActionLeft and ActionRight change the value of an entry on a list
	// that is not a tab root.
	ActionLeft
	ActionRight
	// ActionCancel is cancel pressed on a tab root.
	ActionCancel
	// ActionInput is text confirmed on the on-screen keyboard.
	ActionInput
	// ActionInputCancelled is the on-screen keyboard being closed.
	ActionInputCancelled
)

func (k ActionKind) String() string {
	switch k {
	case ActionActivate:
		return "activate"
	case ActionLeft:
		return "left"
	case ActionRight:
		return "right"
	case ActionCancel:
		return "cancel"
	case ActionInput:
		return "input"
	case ActionInputCancelled:
		return "input cancelled"
	default:
		return "none"
	}
}

// Action is the result of a frame or a button press that the application
// has to handle.
type Action struct {
	Kind  ActionKind
	List  router.List
	Index int
	Entry layout.Entry
	Text  string
}

// Controller is the state of the menu between frames. It is not safe for
// concurrent use; only the pointer source may be written from elsewhere.
type Controller struct {
	router  *router.Router
	engine  *layout.Engine
	driver  *tween.Driver
	pointer PointerSource

	page      router.Page
	tab       constants.Tab
	selection int
	hover     int
	pressed   int
	populate  bool

	message  string
	keyboard *Keyboard

	repeat        repeater
	width, height float32

	now    func() time.Time
	logger *slog.Logger
}

// Option configures a Controller.
type Option func(*Controller, *[]layout.Option)

// WithLogger sets the logger of the controller and its engine and driver.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Controller, _ *[]layout.Option) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithPointer enables touch or mouse input.
func WithPointer(p PointerSource) Option {
	return func(c *Controller, _ *[]layout.Option) {
		c.pointer = p
	}
}

// WithEngineOptions passes options to the layout engine.
func WithEngineOptions(opts ...layout.Option) Option {
	return func(_ *Controller, engine *[]layout.Option) {
		*engine = append(*engine, opts...)
	}
}

// WithRepeat sets the hold delay before a direction repeats and the
// interval between repeats.
func WithRepeat(delay, interval time.Duration) Option {
	return func(c *Controller, _ *[]layout.Option) {
		c.repeat = newRepeater(delay, interval)
	}
}

// WithClock replaces time.Now for button repeats.
func WithClock(now func() time.Time) Option {
	return func(c *Controller, _ *[]layout.Option) {
		if now != nil {
			c.now = now
		}
	}
}

// New creates a Controller showing lists from r.
func New(r *router.Router, metrics layout.Metrics, opts ...Option) *Controller {
	c := &Controller{
		router:  r,
		hover:   layout.NoEntry,
		pressed: layout.NoEntry,
		repeat:  newRepeater(constants.DefaultRepeatDelay, constants.DefaultRepeatInterval),
		now:     time.Now,
		logger:  slog.Default(),
	}

	var engineOpts []layout.Option
	for _, opt := range opts {
		opt(c, &engineOpts)
	}

	c.driver = tween.NewDriver(c.logger)
	engineOpts = append([]layout.Option{
		layout.WithAnimator(c.driver),
		layout.WithLogger(c.logger),
	}, engineOpts...)
	c.engine = layout.New(metrics, engineOpts...)

	return c
}

// Start shows the root list of tab.
func (c *Controller) Start(tab constants.Tab) error {
	return c.SwitchTab(tab)
}

// SwitchTab drops the navigation history and shows the root list of tab.
func (c *Controller) SwitchTab(tab constants.Tab) error {
	page, err := c.router.SwitchTab(tab)
	if err != nil {
		c.logger.Error("Unable to switch tab", "tab", tab, "error", err)
		return err
	}
	c.tab = tab
	c.show(page)
	c.logger.Debug("Switched tab", "tab", tab, "list", page.List)
	return nil
}

// Refresh rebuilds the current list in place, keeping the selection.
func (c *Controller) Refresh() error {
	page, err := c.router.Refresh(router.Resume{Selection: c.selection, ScrollY: c.engine.ScrollY()})
	if err != nil {
		c.logger.Error("Unable to refresh list", "list", c.page.List, "error", err)
		return err
	}
	c.show(page)
	return nil
}

func (c *Controller) show(page router.Page) {
	c.engine.Clear()
	c.page = page
	c.selection = page.Resume.Selection
	c.hover = layout.NoEntry
	c.pressed = layout.NoEntry
	c.populate = true
	c.repeat.reset()
}

// Frame advances the menu by one frame on a screen of the given size: the
// layout is computed, tweens advance, pointer events are handled, the
// pointer acceleration is applied and decayed, and finally the scroll offset
// is clamped.
func (c *Controller) Frame(width, height float32, delta time.Duration) Action {
	c.width, c.height = width, height

	vp := c.engine.Metrics().Viewport(width, height)
	c.engine.Compute(vp, c.page.Entries)

	if c.populate {
		c.populate = false
		if c.page.Resume.ScrollY != 0 {
			c.engine.SetScrollY(c.page.Resume.ScrollY)
		} else {
			c.engine.Populate(c.selection)
		}
	}

	c.driver.Update(delta)

	var action Action
	keep := func(a Action) {
		if action.Kind == ActionNone {
			action = a
		}
	}

	if d := c.repeat.update(c.now()); d != directionNone {
		keep(c.navigate(d))
	}

	if c.pointer != nil {
		for {
			ev, ok := c.pointer.Poll()
			if !ok {
				break
			}
			keep(c.pointerEvent(ev))
		}

		x, y := c.pointer.Position()
		c.hover = c.engine.HitTest(float32(x), float32(y))
		c.pointer.UpdateAccel(c.engine.ApplyPointerAccel)
	}

	c.engine.Clamp()
	return action
}

// Button handles a button being pressed or released.
func (c *Controller) Button(button constants.VirtualButton, pressed bool) Action {
	if !pressed {
		c.repeat.release(button)
		return Action{}
	}

	if c.message != "" {
		c.message = ""
		return Action{}
	}
	if c.keyboard != nil {
		return c.keyboardButton(button)
	}

	if c.repeat.press(button, c.now()) {
		return c.navigate(directionFor(button))
	}

	switch button {
	case constants.VirtualButtonA:
		return c.Activate(c.selection)
	case constants.VirtualButtonB:
		return c.Cancel()
	}
	return Action{}
}

func (c *Controller) navigate(d direction) Action {
	switch d {
	case directionUp:
		c.move(-1, true)
	case directionDown:
		c.move(1, true)
	case directionPageUp:
		c.move(-PageStep, false)
	case directionPageDown:
		c.move(PageStep, false)
	case directionLeft, directionRight:
		if c.router.Stack().IsEmpty() {
			next := layout.NextTab(c.tab)
			if d == directionLeft {
				next = layout.PrevTab(c.tab)
			}
			_ = c.SwitchTab(next)
			return Action{}
		}

		kind := ActionRight
		if d == directionLeft {
			kind = ActionLeft
		}
		return c.entryAction(kind, c.selection)
	}
	return Action{}
}

func (c *Controller) move(delta int, wrap bool) {
	n := len(c.page.Entries)
	if n == 0 {
		return
	}

	s := c.selection + delta
	if wrap {
		s = ((s % n) + n) % n
	} else {
		s = min(max(s, 0), n-1)
	}

	if s != c.selection {
		c.selection = s
		c.engine.NavigationSet(s)
	}
}

// Select moves the selection to i and scrolls it into view.
func (c *Controller) Select(i int) {
	if i < 0 || i >= len(c.page.Entries) || i == c.selection {
		return
	}
	c.selection = i
	c.engine.NavigationSet(i)
}

// Activate opens the list linked to entry i, or returns ActionActivate for
// the application to handle.
func (c *Controller) Activate(i int) Action {
	if i < 0 || i >= len(c.page.Entries) {
		return Action{}
	}
	c.selection = i

	if list, ok := c.router.Target(c.page.Entries[i]); ok {
		page, err := c.router.Open(list, router.Resume{Selection: i, ScrollY: c.engine.ScrollY()})
		if err != nil {
			c.logger.Error("Unable to open list", "list", list, "error", err)
			return Action{}
		}
		c.show(page)
		return Action{}
	}

	return c.entryAction(ActionActivate, i)
}

// Cancel goes back to the previous list. On a tab root it returns
// ActionCancel.
func (c *Controller) Cancel() Action {
	page, ok, err := c.router.Back()
	if err != nil {
		c.logger.Error("Unable to go back", "error", err)
		return Action{}
	}
	if !ok {
		return Action{Kind: ActionCancel, List: c.page.List}
	}
	c.show(page)
	return Action{}
}

func (c *Controller) entryAction(kind ActionKind, i int) Action {
	if i < 0 || i >= len(c.page.Entries) {
		return Action{}
	}
	return Action{
		Kind:  kind,
		List:  c.page.List,
		Index: i,
		Entry: c.page.Entries[i],
	}
}

func (c *Controller) pointerEvent(ev pointer.Event) Action {
	x, y := float32(ev.X), float32(ev.Y)

	if c.message != "" {
		if ev.Kind == pointer.EventRelease {
			c.message = ""
		}
		return Action{}
	}

	if c.keyboard != nil {
		if ev.Kind != pointer.EventRelease || !ev.Tap {
			return Action{}
		}
		i := layout.OSKKeyAt(int(c.width), int(c.height), int(ev.X), int(ev.Y))
		if i >= 0 && c.keyboard.Press(i) {
			return c.closeKeyboard(ActionInput)
		}
		return Action{}
	}

	vp := c.engine.Viewport()
	inHeader := y < vp.Header
	inTabs := y > vp.Height-vp.Footer

	switch ev.Kind {
	case pointer.EventPress:
		c.pressed = layout.NoEntry
		if inHeader || inTabs {
			return Action{}
		}
		if i := c.engine.HitTest(x, y); i != layout.NoEntry {
			c.pressed = i
			c.selection = i
		}

	case pointer.EventRelease:
		pressed := c.pressed
		c.pressed = layout.NoEntry
		if !ev.Tap {
			return Action{}
		}

		switch {
		case inHeader:
			return c.Cancel()
		case inTabs:
			bar := layout.NewTabBar(c.engine.Metrics(), vp.Width, vp.Height)
			if tab, ok := bar.TabAt(x); ok {
				_ = c.SwitchTab(tab)
			}
		default:
			if i := c.engine.HitTest(x, y); i != layout.NoEntry && i == pressed {
				return c.Activate(i)
			}
		}
	}
	return Action{}
}

// ShowMessage shows a message box until the next button press or tap.
func (c *Controller) ShowMessage(message string) {
	c.message = message
}

// Message returns the message being shown, or "".
func (c *Controller) Message() string {
	return c.message
}

// ShowKeyboard opens the on-screen keyboard. The typed text is returned with
// ActionInput.
func (c *Controller) ShowKeyboard(prompt string) {
	c.keyboard = &Keyboard{Prompt: prompt}
	c.repeat.reset()
}

// Keyboard returns the open on-screen keyboard, or nil.
func (c *Controller) Keyboard() *Keyboard {
	return c.keyboard
}

func (c *Controller) keyboardButton(button constants.VirtualButton) Action {
	switch button {
	case constants.VirtualButtonUp:
		c.keyboard.Move(0, -1)
	case constants.VirtualButtonDown:
		c.keyboard.Move(0, 1)
	case constants.VirtualButtonLeft:
		c.keyboard.Move(-1, 0)
	case constants.VirtualButtonRight:
		c.keyboard.Move(1, 0)
	case constants.VirtualButtonA:
		if c.keyboard.Press(c.keyboard.Selected) {
			return c.closeKeyboard(ActionInput)
		}
	case constants.VirtualButtonStart:
		return c.closeKeyboard(ActionInput)
	case constants.VirtualButtonB:
		return c.closeKeyboard(ActionInputCancelled)
	}
	return Action{}
}

func (c *Controller) closeKeyboard(kind ActionKind) Action {
	text := c.keyboard.Text()
	c.keyboard = nil
	if kind == ActionInputCancelled {
		text = ""
	}
	return Action{Kind: kind, List: c.page.List, Index: c.selection, Text: text}
}

// Page returns the list being shown.
func (c *Controller) Page() router.Page {
	return c.page
}

// Tab returns the active tab.
func (c *Controller) Tab() constants.Tab {
	return c.tab
}

// Selection returns the selected entry index.
func (c *Controller) Selection() int {
	return c.selection
}

// Hover returns the entry under the pointer, or layout.NoEntry.
func (c *Controller) Hover() int {
	return c.hover
}

// Depth is the number of lists behind the current one.
func (c *Controller) Depth() int {
	return c.router.Stack().Len()
}

// Engine returns the layout engine.
func (c *Controller) Engine() *layout.Engine {
	return c.engine
}

// Driver returns the tween driver.
func (c *Controller) Driver() *tween.Driver {
	return c.driver
}
