// Package layout computes the geometry of a scrolling menu list.
//
// An Engine keeps one Node per entry with its height and its offset from the
// top of the list, the vertical scroll offset, and answers the questions the
// renderer and the input handling ask every frame: how tall is the content,
// where may the scroll offset go, which entry is under the pointer and where
// should the list scroll to when the selection moves.
//
// The engine is driven from the render loop and is not safe for concurrent
// use. Per frame the expected order is Compute, tween update, HitTest,
// ApplyPointerAccel and finally Clamp.
package layout

import (
	"log/slog"
	"strings"
	"time"

	"github.com/BrandonKowalski/glui/pkg/glui/constants"
	"github.com/BrandonKowalski/glui/pkg/glui/labels"
	"github.com/tanema/gween/ease"
)

// NoEntry is returned by HitTest when no entry is under the coordinate.
const NoEntry = -1

// Animator runs the scroll animations on behalf of the engine.
// *tween.Driver satisfies it.
type Animator interface {
	Animate(subject *float32, target float32, duration time.Duration, easing ease.TweenFunc)
	KillBySubject(subjects ...*float32) int
}

// Engine owns the layout nodes and the scroll offset of one menu.
type Engine struct {
	metrics  Metrics
	viewport Viewport

	nodes         []Node
	contentHeight float32
	scrollY       float32

	wrap     WrapFunc
	anim     Animator
	dpi      DPIFunc
	measurer TextMeasurer
	logger   *slog.Logger
}

// Option configures an Engine.
type Option func(*Engine)

// WithLogger sets the logger used for skipped nodes and similar notices.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// WithWrap replaces the sublabel wrapping function. WordWrap is the default.
func WithWrap(wrap WrapFunc) Option {
	return func(e *Engine) {
		if wrap != nil {
			e.wrap = wrap
		}
	}
}

// WithAnimator sets the tween driver used for scroll animations. Without one
// scroll targets are applied immediately.
func WithAnimator(anim Animator) Option {
	return func(e *Engine) {
		e.anim = anim
	}
}

// WithDPI makes Compute rebuild the metrics whenever the reported DPI scale
// changes.
func WithDPI(dpi DPIFunc) Option {
	return func(e *Engine) {
		e.dpi = dpi
	}
}

// WithMeasurer calibrates glyph widths against real font measurements each
// time the metrics are rebuilt.
func WithMeasurer(tm TextMeasurer) Option {
	return func(e *Engine) {
		e.measurer = tm
	}
}

// New creates an Engine for the given metrics.
func New(metrics Metrics, opts ...Option) *Engine {
	e := &Engine{
		metrics: metrics,
		wrap:    WordWrap,
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.measurer != nil {
		e.metrics.CalibrateGlyphs(e.measurer)
	}
	return e
}

// Metrics returns the metrics currently in use.
func (e *Engine) Metrics() Metrics {
	return e.metrics
}

// SetMetrics replaces the metrics, for example after a DPI change.
func (e *Engine) SetMetrics(m Metrics) {
	if e.measurer != nil {
		m.CalibrateGlyphs(e.measurer)
	}
	e.metrics = m
}

// Viewport returns the viewport of the last Compute.
func (e *Engine) Viewport() Viewport {
	return e.viewport
}

// Insert creates the node of entry i and decides its icon. Entries inserted
// past the end grow the arena; a negative index is logged and skipped.
// Replacing entry i in the provider without calling Insert or Clear keeps the
// old icon.
func (e *Engine) Insert(i int, entry Entry) bool {
	if i < 0 {
		e.logger.Warn("Skipping layout node", "index", i, "label", entry.Label)
		return false
	}

	if i >= len(e.nodes) {
		e.grow(i + 1)
	}

	icon, ok := labels.IconFor(entry.Type, entry.LabelID)
	e.nodes[i] = Node{Icon: icon, HasIcon: ok}
	return true
}

func (e *Engine) grow(n int) {
	if n <= len(e.nodes) {
		return
	}
	if n <= cap(e.nodes) {
		e.nodes = e.nodes[:n]
		return
	}
	grown := make([]Node, n, max(n, 2*cap(e.nodes)))
	copy(grown, e.nodes)
	e.nodes = grown
}

// Clear cancels every animation bound to the scroll offset or to a node and
// then drops all nodes.
func (e *Engine) Clear() {
	if e.anim != nil {
		subjects := make([]*float32, 0, 1+2*len(e.nodes))
		subjects = append(subjects, &e.scrollY)
		for i := range e.nodes {
			subjects = append(subjects, &e.nodes[i].LineHeight, &e.nodes[i].Y)
		}
		e.anim.KillBySubject(subjects...)
	}

	e.nodes = nil
	e.contentHeight = 0
}

// truncate drops the nodes from n on, cancelling the animations bound to
// them first.
func (e *Engine) truncate(n int) {
	if n >= len(e.nodes) {
		return
	}
	if e.anim != nil {
		dropped := e.nodes[n:]
		subjects := make([]*float32, 0, 2*len(dropped))
		for i := range dropped {
			subjects = append(subjects, &dropped[i].LineHeight, &dropped[i].Y)
		}
		e.anim.KillBySubject(subjects...)
	}
	e.nodes = e.nodes[:n]
}

// Nodes returns the layout nodes. The slice is owned by the engine and is
// only valid until the next Insert or Clear.
func (e *Engine) Nodes() []Node {
	return e.nodes
}

// Node returns the node of entry i.
func (e *Engine) Node(i int) (Node, bool) {
	if i < 0 || i >= len(e.nodes) {
		return Node{}, false
	}
	return e.nodes[i], true
}

// Compute lays out every entry of provider for the viewport: each node gets
// the base row height plus one sublabel line height per wrapped sublabel
// line, and its offset is the running sum of the heights above it.
//
// Icons are decided only for nodes the arena grows by. Callers that replace
// the entries of a provider with a list of the same length must Clear first.
//
// A nil provider, an empty list or a viewport without width or height lays
// out nothing and resets the scroll offset.
func (e *Engine) Compute(vp Viewport, provider EntryProvider) {
	e.refreshMetrics()
	e.viewport = vp

	n := 0
	if provider != nil {
		n = provider.Len()
	}
	if n <= 0 || vp.Width <= 0 || vp.Height <= 0 {
		e.truncate(0)
		e.contentHeight = 0
		e.scrollY = 0
		return
	}

	if n > len(e.nodes) {
		start := len(e.nodes)
		e.grow(n)
		for i := start; i < n; i++ {
			entry := provider.At(i)
			icon, ok := labels.IconFor(entry.Type, entry.LabelID)
			e.nodes[i] = Node{Icon: icon, HasIcon: ok}
		}
	} else if n < len(e.nodes) {
		e.truncate(n)
	}

	columns := e.SublabelColumns()

	row := e.metrics.RowHeight()
	var sum float32
	for i := range n {
		lines := 0
		if sub := provider.At(i).Sublabel; sub != "" {
			_, lines = e.wrap(sub, columns)
		}

		node := &e.nodes[i]
		node.LineHeight = row + float32(lines)*e.metrics.SublabelFontSize
		node.Y = sum
		sum += node.LineHeight
	}

	e.contentHeight = sum
}

// SublabelColumns is the number of sublabel glyphs that fit on one line of
// the current viewport.
func (e *Engine) SublabelColumns() int {
	usable := e.viewport.Width - 2*e.metrics.Margin
	if e.metrics.SublabelGlyphWidth <= 0 {
		return 1
	}
	return max(int(usable/e.metrics.SublabelGlyphWidth), 1)
}

// WrapSublabel wraps text the way Compute does when measuring heights.
func (e *Engine) WrapSublabel(text string) []string {
	wrapped, lines := e.wrap(text, e.SublabelColumns())
	if lines == 0 {
		return nil
	}
	return strings.Split(wrapped, "\n")
}

func (e *Engine) refreshMetrics() {
	if e.dpi == nil {
		return
	}
	d := e.dpi()
	if d <= 0 || d == e.metrics.DPI {
		return
	}
	e.SetMetrics(NewMetrics(d))
}

// ContentHeight is the total height of all nodes of the last Compute.
func (e *Engine) ContentHeight() float32 {
	return e.contentHeight
}

// MaxScroll is the largest valid scroll offset for the current content and
// viewport.
func (e *Engine) MaxScroll() float32 {
	return max(0, e.contentHeight-e.viewport.Height+e.viewport.Header+e.viewport.Footer)
}

// Clamp pulls the scroll offset back into [0, MaxScroll]. Content that fits
// between header and tab bar does not scroll at all.
func (e *Engine) Clamp() {
	if e.scrollY < 0 {
		e.scrollY = 0
	}

	if bottom := e.MaxScroll(); e.scrollY > bottom {
		e.scrollY = bottom
	}

	if e.contentHeight < e.viewport.ContentHeight() {
		e.scrollY = 0
	}
}

// ApplyPointerAccel moves the list by one frame of drag acceleration and
// returns the decayed acceleration for the next frame.
func (e *Engine) ApplyPointerAccel(accel float32) float32 {
	e.scrollY -= accel
	return accel * constants.PointerAccelDamping
}

// HitTest returns the entry under the screen coordinate (x, y), or NoEntry
// when y lies in the header or tab bar or below the last entry. Rows span
// the full width, so x is not consulted.
func (e *Engine) HitTest(_, y float32) int {
	if y < e.viewport.Header || y > e.viewport.Height-e.viewport.Footer {
		return NoEntry
	}

	contentY := y + e.scrollY - e.viewport.Header
	for i, node := range e.nodes {
		if contentY >= node.Y && contentY < node.Y+node.LineHeight {
			return i
		}
	}
	return NoEntry
}

// ScrollTarget is the scroll offset that keeps selection roughly a third of
// the way down the viewport. The first third of the list never scrolls.
func (e *Engine) ScrollTarget(selection int) float32 {
	row := int(e.metrics.LineHeight)
	if row <= 0 || selection < 0 {
		return 0
	}

	half := (int(e.viewport.Height) / row) / 3
	if selection < half {
		return 0
	}
	return float32((selection + 2 - half) * row)
}

// NavigationSet animates the scroll offset towards the target of selection.
func (e *Engine) NavigationSet(selection int) {
	target := e.ScrollTarget(selection)
	if e.anim == nil {
		e.scrollY = target
		return
	}
	e.anim.Animate(&e.scrollY, target, constants.NavigationAnimationDuration, ease.InOutQuad)
}

// Populate jumps straight to the target of selection, as when a new list is
// shown.
func (e *Engine) Populate(selection int) {
	if e.anim != nil {
		e.anim.KillBySubject(&e.scrollY)
	}
	e.scrollY = e.ScrollTarget(selection)
}

// NavigationClear scrolls back to the top.
func (e *Engine) NavigationClear() {
	if e.anim != nil {
		e.anim.KillBySubject(&e.scrollY)
	}
	e.scrollY = 0
}

// ScrollY returns the scroll offset.
func (e *Engine) ScrollY() float32 {
	return e.scrollY
}

// SetScrollY sets the scroll offset without clamping it.
func (e *Engine) SetScrollY(y float32) {
	e.scrollY = y
}

// ScrollSubject exposes the scroll offset for animations driven from
// outside the engine.
func (e *Engine) ScrollSubject() *float32 {
	return &e.scrollY
}

// Scrollbar returns the rectangle of the scrollbar thumb. It is hidden while
// the content fits the viewport.
func (e *Engine) Scrollbar() (Rect, bool) {
	track := e.viewport.ContentHeight()
	if track <= 0 || e.contentHeight <= 0 || e.contentHeight < track {
		return Rect{}, false
	}

	w := e.metrics.ScrollbarWidth
	margin := w

	h := track/(e.contentHeight/track) - 2*margin
	if h < w {
		h = w
	}

	y := track * e.scrollY / e.contentHeight

	return Rect{
		X: e.viewport.Width - w - margin,
		Y: e.viewport.Header + y + margin,
		W: w,
		H: h,
	}, true
}

// Visible returns the index range [first, last) of nodes that intersect the
// list area at the current scroll offset.
func (e *Engine) Visible() (first, last int) {
	top := e.scrollY
	bottom := e.scrollY + e.viewport.ContentHeight()

	first = len(e.nodes)
	for i, node := range e.nodes {
		if node.Y+node.LineHeight > top {
			first = i
			break
		}
	}

	last = first
	for last < len(e.nodes) && e.nodes[last].Y < bottom {
		last++
	}
	return first, last
}
