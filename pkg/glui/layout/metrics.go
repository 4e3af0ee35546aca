package layout

// Font selects which of the menu fonts a measurement refers to.
type Font int

const (
	FontLabel Font = iota
	FontSublabel
)

// TextMeasurer measures rendered text widths in pixels.
type TextMeasurer interface {
	MeasureWidth(font Font, text string) float32
}

// DPIFunc reports the current display density scale.
type DPIFunc func() float32

// Metrics are the pixel sizes of the menu chrome, all derived from the DPI
// scale of the display.
type Metrics struct {
	DPI float32

	HeaderHeight     float32
	TabsHeight       float32
	LineHeight       float32
	IconSize         float32
	FontSize         float32
	SublabelFontSize float32
	Margin           float32
	ShadowHeight     float32
	ScrollbarWidth   float32

	GlyphWidth         float32
	SublabelGlyphWidth float32
}

// NewMetrics derives the chrome sizes for a DPI scale. Glyph widths start at
// three quarters of the font size until CalibrateGlyphs measures real ones.
func NewMetrics(dpi float32) Metrics {
	if dpi < 0 {
		dpi = 0
	}

	m := Metrics{
		DPI:              dpi,
		HeaderHeight:     floor(dpi / 3),
		TabsHeight:       floor(dpi / 3),
		LineHeight:       floor(dpi / 3),
		IconSize:         floor(dpi / 3),
		FontSize:         floor(dpi / 9),
		SublabelFontSize: floor(dpi / 12),
		Margin:           floor(dpi / 9),
		ShadowHeight:     floor(dpi / 36),
		ScrollbarWidth:   floor(dpi / 36),
	}
	m.GlyphWidth = floor(m.FontSize * 3 / 4)
	m.SublabelGlyphWidth = floor(m.SublabelFontSize * 3 / 4)
	return m
}

// CalibrateGlyphs replaces the estimated glyph widths with the measured
// widths of a typical lowercase letter. Zero or negative measurements keep
// the estimate.
func (m *Metrics) CalibrateGlyphs(tm TextMeasurer) {
	if tm == nil {
		return
	}
	if w := tm.MeasureWidth(FontLabel, "a"); w > 0 {
		m.GlyphWidth = w
	}
	if w := tm.MeasureWidth(FontSublabel, "t"); w > 0 {
		m.SublabelGlyphWidth = w
	}
}

// RowHeight is the height of an entry without sublabel lines.
func (m Metrics) RowHeight() float32 {
	return m.DPI / 3
}

// Viewport returns a viewport of the given size with header and tab bar
// heights taken from the metrics.
func (m Metrics) Viewport(width, height float32) Viewport {
	return Viewport{
		Width:  width,
		Height: height,
		Header: m.HeaderHeight,
		Footer: m.TabsHeight,
	}
}

// Viewport is the visible area of the menu. Header and Footer are the
// heights of the title bar and the tab bar.
type Viewport struct {
	Width  float32
	Height float32
	Header float32
	Footer float32
}

// ContentHeight is the height available to the scrolling list.
func (v Viewport) ContentHeight() float32 {
	return v.Height - v.Header - v.Footer
}

// Rect is an axis aligned rectangle in screen space.
type Rect struct {
	X, Y, W, H float32
}

// Contains reports whether (x, y) lies inside r. The right and bottom edges
// are exclusive.
func (r Rect) Contains(x, y float32) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

func floor(v float32) float32 {
	return float32(int(v))
}
