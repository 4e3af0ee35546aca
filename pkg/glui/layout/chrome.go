package layout

import (
	"strings"

	"github.com/BrandonKowalski/glui/pkg/glui/constants"
)

// TabBar is the geometry of the tab bar at the bottom of the screen.
type TabBar struct {
	Width        float32
	Height       float32 // screen height
	TabsHeight   float32
	HeaderHeight float32
	IconSize     float32
}

// NewTabBar returns the tab bar of a screen of the given size.
func NewTabBar(m Metrics, width, height float32) TabBar {
	return TabBar{
		Width:        width,
		Height:       height,
		TabsHeight:   m.TabsHeight,
		HeaderHeight: m.HeaderHeight,
		IconSize:     m.IconSize,
	}
}

func (b TabBar) tabWidth() float32 {
	return b.Width / float32(constants.TabCount)
}

// Bounds is the rectangle of the whole bar.
func (b TabBar) Bounds() Rect {
	return Rect{X: 0, Y: b.Height - b.TabsHeight, W: b.Width, H: b.TabsHeight}
}

// TabAt returns the tab under x. The caller has already decided that the
// coordinate lies in the bar.
func (b TabBar) TabAt(x float32) (constants.Tab, bool) {
	w := b.tabWidth()
	if w <= 0 || x < 0 || x >= b.Width {
		return constants.TabMain, false
	}
	i := int(x / w)
	if i >= constants.TabCount {
		i = constants.TabCount - 1
	}
	return constants.Tab(i), true
}

// IconRect is where the icon of tab t is drawn.
func (b TabBar) IconRect(t constants.Tab) Rect {
	return Rect{
		X: b.tabWidth()*(float32(t)+0.5) - b.IconSize/2,
		Y: b.Height - b.TabsHeight,
		W: b.IconSize,
		H: b.IconSize,
	}
}

// MarkerRect is the underline drawn below the active tab.
func (b TabBar) MarkerRect(active constants.Tab) Rect {
	h := b.HeaderHeight / 16
	return Rect{
		X: float32(active) * b.tabWidth(),
		Y: b.Height - h,
		W: b.tabWidth(),
		H: h,
	}
}

// NextTab and PrevTab cycle through the tabs, wrapping at both ends.
func NextTab(t constants.Tab) constants.Tab {
	return constants.Tab((int(t) + 1) % constants.TabCount)
}

func PrevTab(t constants.Tab) constants.Tab {
	return constants.Tab((int(t) + constants.TabCount - 1) % constants.TabCount)
}

// MessageLine is one positioned line of a message box.
type MessageLine struct {
	Text string
	X, Y float32
}

// MessageBox is the geometry of a centred message box.
type MessageBox struct {
	Box        Rect
	Lines      []MessageLine
	LineHeight float32
}

// MessageBoxLayout centres message on a screen of the given size. Lines are
// split on newlines and left aligned against the longest one. With the
// on-screen keyboard shown the box moves to the upper quarter.
func MessageBoxLayout(m Metrics, tm TextMeasurer, width, height float32, message string, keyboard bool) MessageBox {
	if message == "" {
		return MessageBox{}
	}

	texts := strings.Split(message, "\n")
	lineHeight := m.FontSize * constants.MessageLineSpacing

	centerY := height / 2
	if keyboard {
		centerY = height / 4
	}
	x := width / 2
	y := centerY - float32(len(texts)-1)*lineHeight/2

	var longest float32
	for _, t := range texts {
		if w := measure(m, tm, t); w > longest {
			longest = w
		}
	}

	pad := m.Margin * 2
	mb := MessageBox{
		Box: Rect{
			X: x - longest/2 - pad,
			Y: y - lineHeight/2 - pad,
			W: longest + 2*pad,
			H: lineHeight*float32(len(texts)) + 2*pad,
		},
		Lines:      make([]MessageLine, len(texts)),
		LineHeight: lineHeight,
	}
	for i, t := range texts {
		mb.Lines[i] = MessageLine{
			Text: t,
			X:    x - longest/2,
			Y:    y + float32(i)*lineHeight + m.FontSize/3,
		}
	}
	return mb
}

func measure(m Metrics, tm TextMeasurer, text string) float32 {
	if tm != nil {
		return tm.MeasureWidth(FontLabel, text)
	}
	return float32(len([]rune(text))) * m.GlyphWidth
}

// On-screen keyboard grid.
const (
	OSKColumns  = 11
	OSKRows     = 4
	OSKKeyCount = OSKColumns * OSKRows
)

func oskKeySize(width, height int) (int, int) {
	w := width / OSKColumns
	h := height / 10
	if w >= h {
		w = h
	}
	return w, h
}

// OSKKeyRect is the rectangle of key i of the on-screen keyboard on a screen
// of the given size.
func OSKKeyRect(width, height, i int) Rect {
	w, h := oskKeySize(width, height)
	lineY := (i / OSKColumns) * height / 10
	x := int(float32(width)/2 - float32(OSKColumns*w)/2 + float32((i%OSKColumns)*w))
	y := int(float32(height)/2 + float32(h)*1.5 + float32(lineY) - float32(h))
	return Rect{X: float32(x), Y: float32(y), W: float32(w), H: float32(h)}
}

// OSKKeyAt returns the key under (x, y), or -1. Key edges do not count as
// inside.
func OSKKeyAt(width, height int, x, y int) int {
	fx, fy := float32(x), float32(y)
	for i := range OSKKeyCount {
		r := OSKKeyRect(width, height, i)
		if fx > r.X && fx < r.X+r.W && fy > r.Y && fy < r.Y+r.H {
			return i
		}
	}
	return -1
}
