package glui

import (
	"errors"
	"image"
	"image/color"
	"log/slog"

	"github.com/BrandonKowalski/glui/pkg/glui/constants"
	"github.com/BrandonKowalski/glui/pkg/glui/internal"
	"github.com/BrandonKowalski/glui/pkg/glui/labels"
	"github.com/BrandonKowalski/glui/pkg/glui/layout"
	"github.com/BrandonKowalski/glui/pkg/glui/menu"
	"github.com/BrandonKowalski/glui/pkg/glui/theme"
	"github.com/veandco/go-sdl2/sdl"
)

var keyboardDim = color.NRGBA{A: 0x80}

var errNotInitialized = errors.New("Init has not been called")

// Renderer draws the menu of a Controller into the glui window.
type Renderer struct {
	window *internal.Window
	fonts  *internal.Fonts
	cache  *internal.TextureCache
	theme  theme.Theme
	labels *labels.Localizer
	logger *slog.Logger

	fontSize float32
}

// NewRenderer opens the menu fonts for metrics. An empty fontPath falls back
// to a system font. Init must have been called.
func NewRenderer(t theme.Theme, loc *labels.Localizer, fontPath string, metrics layout.Metrics) (*Renderer, error) {
	window := internal.GetWindow()
	if window == nil {
		return nil, NewInfrastructureError("renderer", errNotInitialized)
	}

	fonts, err := internal.OpenFonts(fontPath, metrics)
	if err != nil {
		return nil, NewInfrastructureError("load_font", err)
	}

	if err := window.Renderer.SetDrawBlendMode(sdl.BLENDMODE_BLEND); err != nil {
		internal.GetInternalLogger().Warn("Unable to enable blending", "error", err)
	}

	return &Renderer{
		window:   window,
		fonts:    fonts,
		cache:    internal.NewTextureCache(),
		theme:    t,
		labels:   loc,
		logger:   internal.GetInternalLogger(),
		fontSize: metrics.FontSize,
	}, nil
}

// MeasureWidth measures text with the loaded fonts, which makes the
// Renderer the layout.TextMeasurer of the engine.
func (r *Renderer) MeasureWidth(font layout.Font, text string) float32 {
	return r.fonts.MeasureWidth(font, text)
}

// SetTheme switches the colours used from the next frame on.
func (r *Renderer) SetTheme(t theme.Theme) {
	r.theme = t
	r.cache.FlushText()
}

// LoadIcons uploads the rasterised icons.
func (r *Renderer) LoadIcons(icons map[constants.IconID]*image.RGBA) {
	r.cache.LoadIcons(r.window.Renderer, icons)
}

// Close releases the fonts and textures.
func (r *Renderer) Close() {
	r.cache.Destroy()
	r.fonts.Close()
}

func (r *Renderer) syncFonts(m layout.Metrics) {
	if m.FontSize == r.fontSize {
		return
	}
	if err := r.fonts.Resize(m); err != nil {
		r.logger.Error("Unable to resize fonts", "size", m.FontSize, "error", err)
		return
	}
	r.fontSize = m.FontSize
	r.cache.FlushText()
}

// Draw renders one frame of ctrl. Frame must have run first so the layout
// is current.
func (r *Renderer) Draw(ctrl *menu.Controller) {
	e := ctrl.Engine()
	m := e.Metrics()
	vp := e.Viewport()
	r.syncFonts(m)

	rend := r.window.Renderer
	if !r.window.RenderWallpaper() {
		internal.SetDrawColor(rend, r.theme.Clear)
		rend.Clear()
	}

	body := layout.Rect{Y: vp.Header, W: vp.Width, H: vp.ContentHeight()}
	r.fill(body, r.theme.BodyBackground)

	r.drawEntries(ctrl, m, vp, body)

	if thumb, ok := e.Scrollbar(); ok {
		r.fill(thumb, r.theme.ActiveTabMarker)
	}

	r.drawHeader(ctrl, m, vp)
	r.drawTabBar(ctrl, m, vp)

	switch {
	case ctrl.Keyboard() != nil:
		r.drawKeyboard(ctrl.Keyboard(), m, vp)
	case ctrl.Message() != "":
		r.drawMessage(ctrl.Message(), m, vp, false)
	}
}

func (r *Renderer) drawEntries(ctrl *menu.Controller, m layout.Metrics, vp layout.Viewport, body layout.Rect) {
	e := ctrl.Engine()
	entries := ctrl.Page().Entries
	rend := r.window.Renderer

	clip := toSDLRect(body)
	rend.SetClipRect(&clip)
	defer rend.SetClipRect(nil)

	first, last := e.Visible()
	for i := first; i < last && i < len(entries); i++ {
		node, _ := e.Node(i)
		entry := entries[i]
		y := vp.Header + node.Y - e.ScrollY()
		selected := i == ctrl.Selection()

		if selected {
			r.fill(layout.Rect{Y: y, W: vp.Width, H: node.LineHeight}, r.theme.HighlightedEntry)
		}

		fontColor, subColor := r.theme.Font, r.theme.Sublabel
		if selected {
			fontColor, subColor = r.theme.FontHover, r.theme.SublabelHover
		}

		row := m.RowHeight()
		x := m.Margin
		if node.HasIcon {
			if icon := r.cache.Icon(node.Icon); icon != nil {
				r.drawIcon(icon, layout.Rect{X: 0, Y: y + row/2 - m.IconSize/2, W: m.IconSize, H: m.IconSize}, fontColor)
			}
			x += m.IconSize
		}

		valueW := float32(0)
		if icon, on, ok := r.switchIcon(entry.Value); ok {
			c := r.theme.PassiveTabIcon
			if on {
				c = r.theme.ActiveTabMarker
			}
			r.drawIcon(icon, layout.Rect{X: vp.Width - m.Margin - m.IconSize, Y: y + row/2 - m.IconSize/2, W: m.IconSize, H: m.IconSize}, c)
			valueW = m.IconSize + m.Margin
		} else if entry.Value != "" {
			if t := r.text(layout.FontLabel, fontColor, entry.Value); t != nil {
				valueW = float32(t.W) + m.Margin
				r.blit(t, vp.Width-m.Margin-float32(t.W), y+row/2-float32(t.H)/2, 0)
			}
		}

		if t := r.text(layout.FontLabel, fontColor, entry.Label); t != nil {
			r.blit(t, x, y+row/2-float32(t.H)/2, vp.Width-m.Margin-valueW-x)
		}

		for k, line := range e.WrapSublabel(entry.Sublabel) {
			if t := r.text(layout.FontSublabel, subColor, line); t != nil {
				r.blit(t, m.Margin, y+row-m.SublabelFontSize/2+float32(k)*m.SublabelFontSize, 0)
			}
		}
	}
}

func (r *Renderer) drawHeader(ctrl *menu.Controller, m layout.Metrics, vp layout.Viewport) {
	r.fill(layout.Rect{W: vp.Width, H: vp.Header}, r.theme.HeaderBackground)
	r.fill(layout.Rect{Y: vp.Header, W: vp.Width, H: m.ShadowHeight}, r.theme.Shadow)

	title := ctrl.Page().Title.String()
	if r.labels != nil {
		title = r.labels.Label(ctrl.Page().Title)
	}
	if t := r.text(layout.FontLabel, r.theme.FontHeader, title); t != nil {
		r.blit(t, m.Margin, vp.Header/2-float32(t.H)/2, vp.Width-2*m.Margin)
	}
}

func (r *Renderer) drawTabBar(ctrl *menu.Controller, m layout.Metrics, vp layout.Viewport) {
	bar := layout.NewTabBar(m, vp.Width, vp.Height)
	bounds := bar.Bounds()

	r.fill(layout.Rect{Y: bounds.Y - m.ShadowHeight, W: vp.Width, H: m.ShadowHeight}, r.theme.Shadow)
	r.fill(bounds, r.theme.FooterBackground)

	for i := range constants.TabCount {
		tab := constants.Tab(i)
		icon := r.cache.Icon(constants.TabIcon(tab))
		if icon == nil {
			continue
		}
		c := r.theme.PassiveTabIcon
		if tab == ctrl.Tab() {
			c = r.theme.ActiveTabMarker
		}
		r.drawIcon(icon, bar.IconRect(tab), c)
	}

	r.fill(bar.MarkerRect(ctrl.Tab()), r.theme.ActiveTabMarker)
}

func (r *Renderer) drawMessage(message string, m layout.Metrics, vp layout.Viewport, keyboard bool) {
	mb := layout.MessageBoxLayout(m, r, vp.Width, vp.Height, message, keyboard)
	if len(mb.Lines) == 0 {
		return
	}

	r.fill(mb.Box, r.theme.BodyBackground)
	for _, line := range mb.Lines {
		if t := r.text(layout.FontLabel, r.theme.Font, line.Text); t != nil {
			r.blit(t, line.X, line.Y-float32(t.H)/2, 0)
		}
	}
}

func (r *Renderer) drawKeyboard(kb *menu.Keyboard, m layout.Metrics, vp layout.Viewport) {
	r.fill(layout.Rect{W: vp.Width, H: vp.Height}, keyboardDim)

	message := kb.Prompt + "\n" + kb.Text()
	r.drawMessage(message, m, vp, true)

	keys := kb.Keys()
	for i := range layout.OSKKeyCount {
		rect := layout.OSKKeyRect(int(vp.Width), int(vp.Height), i)
		fontColor := r.theme.Font
		if i == kb.Selected {
			r.fill(rect, r.theme.HighlightedEntry)
			fontColor = r.theme.FontHover
		}
		if t := r.text(layout.FontLabel, fontColor, keys[i]); t != nil {
			r.blit(t, rect.X+rect.W/2-float32(t.W)/2, rect.Y+rect.H/2-float32(t.H)/2, 0)
		}
	}
}

// switchIcon returns the switch texture for on/off values. Values without
// a loaded switch texture are drawn as text.
func (r *Renderer) switchIcon(value string) (*internal.Texture, bool, bool) {
	if r.labels == nil {
		return nil, false, false
	}
	id, ok := r.labels.SwitchIcon(value)
	if !ok {
		return nil, false, false
	}
	icon := r.cache.Icon(id)
	if icon == nil {
		return nil, false, false
	}
	return icon, id == constants.IconSwitchOn, true
}

func (r *Renderer) text(font layout.Font, c color.NRGBA, s string) *internal.Texture {
	if s == "" {
		return nil
	}
	t, err := r.cache.Text(r.window.Renderer, r.fonts, font, c, s)
	if err != nil {
		r.logger.Debug("Unable to render text", "text", s, "error", err)
		return nil
	}
	return t
}

// blit copies t to (x, y), cut to maxW pixels when maxW is positive.
func (r *Renderer) blit(t *internal.Texture, x, y, maxW float32) {
	w := t.W
	if maxW > 0 && float32(w) > maxW {
		w = int32(maxW)
	}
	if w <= 0 {
		return
	}
	src := &sdl.Rect{W: w, H: t.H}
	dst := &sdl.Rect{X: int32(x), Y: int32(y), W: w, H: t.H}
	r.window.Renderer.Copy(t.Texture, src, dst)
}

func (r *Renderer) drawIcon(t *internal.Texture, rect layout.Rect, c color.NRGBA) {
	t.SetColorMod(c.R, c.G, c.B)
	t.SetAlphaMod(c.A)
	dst := toSDLRect(rect)
	r.window.Renderer.Copy(t.Texture, nil, &dst)
}

func (r *Renderer) fill(rect layout.Rect, c color.NRGBA) {
	if c.A == 0 || rect.W <= 0 || rect.H <= 0 {
		return
	}
	internal.SetDrawColor(r.window.Renderer, c)
	dst := toSDLRect(rect)
	r.window.Renderer.FillRect(&dst)
}

func toSDLRect(r layout.Rect) sdl.Rect {
	return sdl.Rect{X: int32(r.X), Y: int32(r.Y), W: int32(r.W), H: int32(r.H)}
}
