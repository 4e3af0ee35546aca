// Package theme holds the colour themes of the menu.
//
// A Theme is a plain value handed to the renderer each frame. There is no
// package level "current" theme; switching themes means passing a different
// value.
package theme

import (
	"errors"
	"fmt"
	"image/color"
	"math"
	"sort"
	"strconv"
	"strings"
)

// ErrInvalidColor is returned for colour strings that are not #RRGGBB or
// #RRGGBBAA.
var ErrInvalidColor = errors.New("invalid color")

// Theme is the full set of colours used to draw one frame.
type Theme struct {
	Name string

	HeaderBackground color.NRGBA // Title bar
	FooterBackground color.NRGBA // Tab bar
	BodyBackground   color.NRGBA // List area
	HighlightedEntry color.NRGBA // Row under the selection
	ActiveTabMarker  color.NRGBA // Underline of the active tab, scrollbar
	PassiveTabIcon   color.NRGBA // Icons of inactive tabs
	Clear            color.NRGBA // Screen clear colour behind everything
	Shadow           color.NRGBA // Drop shadow under header and above tab bar

	Font          color.NRGBA // Entry labels
	FontHover     color.NRGBA // Entry labels of the selection
	FontHeader    color.NRGBA // Title text
	Sublabel      color.NRGBA
	SublabelHover color.NRGBA
}

// Preset names accepted by ByName.
const (
	Blue         = "blue"
	BlueGrey     = "blue_grey"
	Green        = "green"
	Red          = "red"
	Yellow       = "yellow"
	DarkBlue     = "dark_blue"
	NvidiaShield = "nvidia_shield"
)

// Material palette, https://material.io/design/color
const (
	blue500     = 0x2196F3
	blue50      = 0xE3F2FD
	blueGrey500 = 0x607D8B
	blueGrey50  = 0xECEFF1
	red500      = 0xF44336
	red50       = 0xFFEBEE
	green500    = 0x4CAF50
	green50     = 0xE8F5E9
	yellow500   = 0xFFEB3B
	yellow50    = 0xFFFDE7

	greyishBlue = 0x38474F
	almostBlack = 0x212121
	nvBody      = 0x202427
	nvAccent    = 0x77B900
	nvHeader    = 0x282F37
)

var (
	blackOpaque54 = rgba(0x0000008A)
	blackOpaque87 = rgba(0x000000DE)
	whiteOpaque70 = rgba(0xFFFFFFB3)
	sublabelGrey  = rgba(0x888888FF)
	white         = rgba(0xFFFFFFFF)
	passiveGrey   = rgb(0xC7C7C7, 0.90)
	shadow        = rgb(0x000000, 0.20)
)

func light(name string, accent, highlight uint32) Theme {
	return Theme{
		Name:             name,
		HeaderBackground: rgb(accent, 1),
		FooterBackground: rgb(0xFFFFFF, 1),
		BodyBackground:   rgb(0xFAFAFA, 0.90),
		HighlightedEntry: rgb(highlight, 0.90),
		ActiveTabMarker:  rgb(accent, 1),
		PassiveTabIcon:   passiveGrey,
		Clear:            rgb(0xFFFFFF, 0.75),
		Shadow:           shadow,
		Font:             blackOpaque54,
		FontHover:        blackOpaque87,
		FontHeader:       white,
		Sublabel:         sublabelGrey,
		SublabelHover:    sublabelGrey,
	}
}

func dark(name string, header, highlight, marker color.NRGBA, body uint32) Theme {
	return Theme{
		Name:             name,
		HeaderBackground: header,
		FooterBackground: rgb(body, 1),
		BodyBackground:   rgb(body, 0.90),
		HighlightedEntry: highlight,
		ActiveTabMarker:  marker,
		PassiveTabIcon:   passiveGrey,
		Clear:            rgb(body, 1),
		Shadow:           shadow,
		Font:             whiteOpaque70,
		FontHover:        white,
		FontHeader:       white,
		Sublabel:         whiteOpaque70,
		SublabelHover:    whiteOpaque70,
	}
}

var presets = map[string]Theme{
	Blue:     light(Blue, blue500, blue50),
	BlueGrey: light(BlueGrey, blueGrey500, blueGrey50),
	Green:    light(Green, green500, green50),
	Red:      light(Red, red500, red50),
	Yellow: func() Theme {
		t := light(Yellow, yellow500, yellow50)
		t.FontHeader = rgba(0xBBBBBBBB)
		return t
	}(),
	DarkBlue: dark(DarkBlue,
		rgb(greyishBlue, 1), rgb(0xC7C7C7, 0.90), rgb(0x566066, 1), almostBlack),
	NvidiaShield: dark(NvidiaShield,
		rgb(nvHeader, 1), rgb(nvAccent, 0.90), rgb(0xFFFFFF, 0.90), nvBody),
}

// Default returns the blue theme.
func Default() Theme {
	return presets[Blue]
}

// ByName looks up a preset. Names are matched case-insensitively and
// "blue-grey" is accepted for "blue_grey".
func ByName(name string) (Theme, bool) {
	key := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), "-", "_")
	t, ok := presets[key]
	return t, ok
}

// Names lists the preset names in alphabetical order.
func Names() []string {
	names := make([]string, 0, len(presets))
	for n := range presets {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// WithOpacity returns a copy of t with the header and tab bar backgrounds
// made translucent. Opacities are clamped to [0, 1].
func (t Theme) WithOpacity(header, footer float32) Theme {
	t.HeaderBackground.A = alpha(float64(header))
	t.FooterBackground.A = alpha(float64(footer))
	return t
}

// HexToColor parses "#RRGGBB" or "#RRGGBBAA". The leading '#' is optional.
func HexToColor(s string) (color.NRGBA, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")

	switch len(hex) {
	case 6:
		hex += "ff"
	case 8:
	default:
		return color.NRGBA{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}

	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}
	return rgba(uint32(v)), nil
}

// ColorToHex formats c as "#RRGGBBAA".
func ColorToHex(c color.NRGBA) string {
	return fmt.Sprintf("#%02X%02X%02X%02X", c.R, c.G, c.B, c.A)
}

func rgba(v uint32) color.NRGBA {
	return color.NRGBA{R: uint8(v >> 24), G: uint8(v >> 16), B: uint8(v >> 8), A: uint8(v)}
}

func rgb(v uint32, opacity float64) color.NRGBA {
	return color.NRGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: alpha(opacity)}
}

func alpha(opacity float64) uint8 {
	opacity = min(max(opacity, 0), 1)
	return uint8(math.Round(opacity * 255))
}
