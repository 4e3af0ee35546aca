package menu

import "testing"

func TestKeyboardPress(t *testing.T) {
	k := &Keyboard{}

	k.Press(0)  // 1
	k.Press(11) // q
	k.Press(KeyShift)
	k.Press(12) // W
	k.Press(KeySpace)
	k.Press(KeyShift)
	k.Press(23) // s

	if got := k.Text(); got != "1qW s" {
		t.Fatalf("Text() = %q, want %q", got, "1qW s")
	}

	k.Press(KeyBackspace)
	k.Press(KeyBackspace)
	if got := k.Text(); got != "1qW" {
		t.Errorf("Text() after backspace = %q, want %q", got, "1qW")
	}

	if !k.Press(KeyEnter) {
		t.Error("Enter did not report completion")
	}
	if k.Press(-1) || k.Press(44) {
		t.Error("out of range key reported completion")
	}
}

func TestKeyboardBackspaceMultibyte(t *testing.T) {
	k := &Keyboard{}
	k.Press(KeyBackspace)
	if k.Text() != "" {
		t.Errorf("backspace on empty text = %q", k.Text())
	}

	k.text.WriteString("añ")
	k.Press(KeyBackspace)
	if k.Text() != "a" {
		t.Errorf("Text() = %q, want %q", k.Text(), "a")
	}
}

func TestKeyboardMove(t *testing.T) {
	tests := []struct {
		name   string
		from   int
		dx, dy int
		want   int
	}{
		{"right", 0, 1, 0, 1},
		{"left wraps", 0, -1, 0, 10},
		{"right wraps", 10, 1, 0, 0},
		{"down", 3, 0, 1, 14},
		{"up wraps", 3, 0, -1, 36},
		{"down wraps", 40, 0, 1, 7},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			k := &Keyboard{Selected: tc.from}
			k.Move(tc.dx, tc.dy)
			if k.Selected != tc.want {
				t.Errorf("Move(%d, %d) from %d = %d, want %d", tc.dx, tc.dy, tc.from, k.Selected, tc.want)
			}
		})
	}
}
