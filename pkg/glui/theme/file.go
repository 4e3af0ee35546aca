package theme

import (
	"fmt"
	"image/color"
	"io"
	"os"

	"github.com/BurntSushi/toml"
)

// fileTheme is the on-disk form of a custom theme. Every colour is optional
// and overrides the theme named by Base.
type fileTheme struct {
	Name string `toml:"name"`
	Base string `toml:"base"`

	HeaderBackground string `toml:"header_background"`
	FooterBackground string `toml:"footer_background"`
	BodyBackground   string `toml:"body_background"`
	HighlightedEntry string `toml:"highlighted_entry"`
	ActiveTabMarker  string `toml:"active_tab_marker"`
	PassiveTabIcon   string `toml:"passive_tab_icon"`
	Clear            string `toml:"clear"`
	Shadow           string `toml:"shadow"`
	Font             string `toml:"font"`
	FontHover        string `toml:"font_hover"`
	FontHeader       string `toml:"font_header"`
	Sublabel         string `toml:"sublabel"`
	SublabelHover    string `toml:"sublabel_hover"`
}

// LoadFile reads a custom theme from a TOML file.
func LoadFile(path string) (Theme, error) {
	f, err := os.Open(path)
	if err != nil {
		return Theme{}, fmt.Errorf("opening theme %s: %w", path, err)
	}
	defer f.Close()

	t, err := Decode(f)
	if err != nil {
		return Theme{}, fmt.Errorf("theme %s: %w", path, err)
	}
	return t, nil
}

// Decode reads a custom theme. Colours not set in the file come from the
// preset named by "base", or the default theme when there is none.
//
//	name = "midnight"
//	base = "dark_blue"
//	header_background = "#101820"
//	highlighted_entry = "#FFFFFF33"
func Decode(r io.Reader) (Theme, error) {
	var ft fileTheme
	md, err := toml.NewDecoder(r).Decode(&ft)
	if err != nil {
		return Theme{}, fmt.Errorf("decoding theme: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return Theme{}, fmt.Errorf("unknown theme keys: %v", undecoded)
	}

	t := Default()
	if ft.Base != "" {
		base, ok := ByName(ft.Base)
		if !ok {
			return Theme{}, fmt.Errorf("unknown base theme %q", ft.Base)
		}
		t = base
	}
	if ft.Name != "" {
		t.Name = ft.Name
	}

	fields := []struct {
		value string
		dst   *color.NRGBA
	}{
		{ft.HeaderBackground, &t.HeaderBackground},
		{ft.FooterBackground, &t.FooterBackground},
		{ft.BodyBackground, &t.BodyBackground},
		{ft.HighlightedEntry, &t.HighlightedEntry},
		{ft.ActiveTabMarker, &t.ActiveTabMarker},
		{ft.PassiveTabIcon, &t.PassiveTabIcon},
		{ft.Clear, &t.Clear},
		{ft.Shadow, &t.Shadow},
		{ft.Font, &t.Font},
		{ft.FontHover, &t.FontHover},
		{ft.FontHeader, &t.FontHeader},
		{ft.Sublabel, &t.Sublabel},
		{ft.SublabelHover, &t.SublabelHover},
	}
	for _, f := range fields {
		if f.value == "" {
			continue
		}
		c, err := HexToColor(f.value)
		if err != nil {
			return Theme{}, err
		}
		*f.dst = c
	}

	return t, nil
}

// Encode writes t in the format read by Decode.
func Encode(w io.Writer, t Theme) error {
	ft := fileTheme{
		Name:             t.Name,
		HeaderBackground: ColorToHex(t.HeaderBackground),
		FooterBackground: ColorToHex(t.FooterBackground),
		BodyBackground:   ColorToHex(t.BodyBackground),
		HighlightedEntry: ColorToHex(t.HighlightedEntry),
		ActiveTabMarker:  ColorToHex(t.ActiveTabMarker),
		PassiveTabIcon:   ColorToHex(t.PassiveTabIcon),
		Clear:            ColorToHex(t.Clear),
		Shadow:           ColorToHex(t.Shadow),
		Font:             ColorToHex(t.Font),
		FontHover:        ColorToHex(t.FontHover),
		FontHeader:       ColorToHex(t.FontHeader),
		Sublabel:         ColorToHex(t.Sublabel),
		SublabelHover:    ColorToHex(t.SublabelHover),
	}
	return toml.NewEncoder(w).Encode(ft)
}
