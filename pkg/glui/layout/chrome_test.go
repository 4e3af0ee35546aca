package layout

import (
	"testing"

	"github.com/BrandonKowalski/glui/pkg/glui/constants"
)

func TestWordWrap(t *testing.T) {
	tests := []struct {
		name      string
		text      string
		columns   int
		wantText  string
		wantLines int
	}{
		{"empty", "", 10, "", 0},
		{"fits", "hello", 10, "hello", 1},
		{"break at space", "one two three", 7, "one two\nthree", 2},
		{"break at last option", "hello world", 8, "hello\nworld", 2},
		{"explicit newlines", "a\nb\nc", 80, "a\nb\nc", 3},
		{"trailing newline", "a\n", 80, "a", 1},
		{"blank line", "a\n\nb", 80, "a\n\nb", 3},
		{"no break option", "abcdefghij", 4, "abcd\nefgh\nij", 3},
		{"zero columns", "ab", 0, "a\nb", 2},
		{"space run at break", "a  b", 1, "a\nb", 2},
		{"space run after word", "one   two", 3, "one\ntwo", 2},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			gotText, gotLines := WordWrap(tc.text, tc.columns)
			if gotText != tc.wantText || gotLines != tc.wantLines {
				t.Errorf("WordWrap(%q, %d) = %q, %d, want %q, %d",
					tc.text, tc.columns, gotText, gotLines, tc.wantText, tc.wantLines)
			}
		})
	}
}

func TestTabBar(t *testing.T) {
	bar := NewTabBar(NewMetrics(144), 300, 480)

	tests := []struct {
		x    float32
		want constants.Tab
		ok   bool
	}{
		{0, constants.TabMain, true},
		{99, constants.TabMain, true},
		{100, constants.TabPlaylists, true},
		{150, constants.TabPlaylists, true},
		{299, constants.TabSettings, true},
		{300, constants.TabMain, false},
		{-1, constants.TabMain, false},
	}
	for _, tc := range tests {
		got, ok := bar.TabAt(tc.x)
		if got != tc.want || ok != tc.ok {
			t.Errorf("TabAt(%v) = %v, %v, want %v, %v", tc.x, got, ok, tc.want, tc.ok)
		}
	}

	if b := bar.Bounds(); b.Y != 432 || b.H != 48 || b.W != 300 {
		t.Errorf("Bounds() = %+v", b)
	}
	if r := bar.IconRect(constants.TabPlaylists); r.X != 126 || r.Y != 432 {
		t.Errorf("IconRect(TabPlaylists) = %+v, want X=126 Y=432", r)
	}
	if r := bar.MarkerRect(constants.TabSettings); r.X != 200 || r.Y != 477 || r.W != 100 || r.H != 3 {
		t.Errorf("MarkerRect(TabSettings) = %+v", r)
	}
}

func TestTabCycling(t *testing.T) {
	if got := NextTab(constants.TabMain); got != constants.TabPlaylists {
		t.Errorf("NextTab(main) = %v", got)
	}
	if got := NextTab(constants.TabSettings); got != constants.TabMain {
		t.Errorf("NextTab(settings) = %v", got)
	}
	if got := PrevTab(constants.TabMain); got != constants.TabSettings {
		t.Errorf("PrevTab(main) = %v", got)
	}
	if got := PrevTab(constants.TabPlaylists); got != constants.TabMain {
		t.Errorf("PrevTab(playlists) = %v", got)
	}
}

func TestMessageBoxLayout(t *testing.T) {
	m := NewMetrics(144)

	mb := MessageBoxLayout(m, nil, 400, 300, "ab\ncd", false)
	if len(mb.Lines) != 2 {
		t.Fatalf("len(Lines) = %d, want 2", len(mb.Lines))
	}
	if !approx(mb.LineHeight, 19.2) {
		t.Errorf("LineHeight = %v, want 19.2", mb.LineHeight)
	}

	// Longest line is 2 glyphs of 12px; padding is 2 margins of 16px.
	want := Rect{X: 156, Y: 140.4 - 9.6 - 32, W: 88, H: 38.4 + 64}
	if !approx(mb.Box.X, want.X) || !approx(mb.Box.Y, want.Y) || !approx(mb.Box.W, want.W) || !approx(mb.Box.H, want.H) {
		t.Errorf("Box = %+v, want %+v", mb.Box, want)
	}
	if !approx(mb.Lines[0].X, 188) || !approx(mb.Lines[1].Y-mb.Lines[0].Y, 19.2) {
		t.Errorf("Lines = %+v", mb.Lines)
	}

	withKeyboard := MessageBoxLayout(m, nil, 400, 300, "ab\ncd", true)
	if !approx(mb.Box.Y-withKeyboard.Box.Y, 75) {
		t.Errorf("keyboard did not move the box up a quarter screen: %v -> %v", mb.Box.Y, withKeyboard.Box.Y)
	}

	if empty := MessageBoxLayout(m, nil, 400, 300, "", false); len(empty.Lines) != 0 {
		t.Errorf("empty message produced %d lines", len(empty.Lines))
	}
}

func TestOSKKeyAt(t *testing.T) {
	tests := []struct {
		name string
		x, y int
		want int
	}{
		{"first key", 20, 240, 0},
		{"left edge", 0, 240, -1},
		{"second row", 60, 280, 12},
		{"last key", 420, 360, 43},
		{"above keyboard", 20, 100, -1},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := OSKKeyAt(440, 400, tc.x, tc.y); got != tc.want {
				t.Errorf("OSKKeyAt(%d, %d) = %d, want %d", tc.x, tc.y, got, tc.want)
			}
		})
	}
}

func TestOSKKeyRect(t *testing.T) {
	r := OSKKeyRect(440, 400, 0)
	if r != (Rect{X: 0, Y: 220, W: 40, H: 40}) {
		t.Errorf("OSKKeyRect(0) = %+v", r)
	}

	// Keys are square when the screen is wide.
	r = OSKKeyRect(1280, 400, 0)
	if r.W != 40 || r.X != 640-220 {
		t.Errorf("OSKKeyRect on a wide screen = %+v", r)
	}
}
