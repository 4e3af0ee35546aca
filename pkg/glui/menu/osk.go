package menu

import (
	"strings"

	"github.com/BrandonKowalski/glui/pkg/glui/layout"
)

// Special keys of the on-screen keyboard grid.
const (
	KeyBackspace = 10
	KeyEnter     = 21
	KeyShift     = 32
	KeySpace     = 43
)

var (
	lowerKeys = [layout.OSKKeyCount]string{
		"1", "2", "3", "4", "5", "6", "7", "8", "9", "0", "⌫",
		"q", "w", "e", "r", "t", "y", "u", "i", "o", "p", "⏎",
		"a", "s", "d", "f", "g", "h", "j", "k", "l", "@", "⇧",
		"z", "x", "c", "v", "b", "n", "m", "-", "_", ".", "␣",
	}
	upperKeys = [layout.OSKKeyCount]string{
		"!", "\"", "#", "$", "%", "&", "'", "*", "(", ")", "⌫",
		"Q", "W", "E", "R", "T", "Y", "U", "I", "O", "P", "⏎",
		"A", "S", "D", "F", "G", "H", "J", "K", "L", ":", "⇧",
		"Z", "X", "C", "V", "B", "N", "M", "+", "=", "/", "␣",
	}
)

// Keyboard is the state of the on-screen keyboard.
type Keyboard struct {
	Prompt   string
	Selected int

	text  strings.Builder
	upper bool
}

// Keys returns the labels of the current key grid.
func (k *Keyboard) Keys() [layout.OSKKeyCount]string {
	if k.upper {
		return upperKeys
	}
	return lowerKeys
}

// Text returns the text typed so far.
func (k *Keyboard) Text() string {
	return k.text.String()
}

// Upper reports whether the shifted grid is shown.
func (k *Keyboard) Upper() bool {
	return k.upper
}

// Press types key i. It reports true when Enter was pressed.
func (k *Keyboard) Press(i int) bool {
	if i < 0 || i >= layout.OSKKeyCount {
		return false
	}
	k.Selected = i

	switch i {
	case KeyBackspace:
		s := []rune(k.text.String())
		k.text.Reset()
		if len(s) > 0 {
			k.text.WriteString(string(s[:len(s)-1]))
		}
	case KeyEnter:
		return true
	case KeyShift:
		k.upper = !k.upper
	case KeySpace:
		k.text.WriteByte(' ')
	default:
		k.text.WriteString(k.Keys()[i])
	}
	return false
}

// Move moves the key selection by dx columns and dy rows, wrapping at the
// grid edges.
func (k *Keyboard) Move(dx, dy int) {
	col := k.Selected % layout.OSKColumns
	row := k.Selected / layout.OSKColumns
	col = (col + dx + layout.OSKColumns) % layout.OSKColumns
	row = (row + dy + layout.OSKRows) % layout.OSKRows
	k.Selected = row*layout.OSKColumns + col
}
