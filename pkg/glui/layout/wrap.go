package layout

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/rivo/uniseg"
)

// WrapFunc wraps text to a column count and returns the wrapped text and its
// number of lines.
type WrapFunc func(text string, columns int) (string, int)

// WordWrap breaks text into lines of at most columns cells, preferring the
// line break opportunities of the Unicode line breaking algorithm and
// keeping explicit newlines. A cluster wider than the whole line gets a line
// of its own. Empty text has zero lines.
func WordWrap(text string, columns int) (string, int) {
	if text == "" {
		return "", 0
	}
	if columns < 1 {
		columns = 1
	}

	var (
		lines           []string
		start, pos      int
		lineWidth       int
		lastOption      = -1
		lastOptionWidth int
		state           = -1
		wrapped         bool
	)

	str := text
	for len(str) > 0 {
		cluster, rest, boundaries, next := uniseg.StepString(str, state)
		state = next
		str = rest

		if rest == "" && !uniseg.HasTrailingLineBreakInString(cluster) {
			boundaries &^= uniseg.MaskLine
		}
		width := boundaries >> uniseg.ShiftWidth

		// Spaces left over at the start of a wrapped line are dropped.
		if wrapped && lineWidth == 0 && isSpace(cluster) {
			pos += len(cluster)
			start = pos
			continue
		}
		wrapped = false

		if lineWidth > 0 && lineWidth+width > columns {
			if isSpace(cluster) {
				// The overflowing space ends the line and is dropped.
				lines = append(lines, strings.TrimRight(text[start:pos], " "))
				pos += len(cluster)
				start = pos
				lineWidth, lastOption, lastOptionWidth = 0, -1, 0
				wrapped = true
				continue
			}
			if lastOption > start {
				lines = append(lines, strings.TrimRight(text[start:lastOption], " "))
				start = lastOption
				lineWidth -= lastOptionWidth
			} else {
				lines = append(lines, text[start:pos])
				start = pos
				lineWidth = 0
			}
			lastOption, lastOptionWidth = -1, 0
		}

		pos += len(cluster)
		lineWidth += width

		switch boundaries & uniseg.MaskLine {
		case uniseg.LineCanBreak:
			lastOption, lastOptionWidth = pos, lineWidth
		case uniseg.LineMustBreak:
			lines = append(lines, strings.TrimRight(text[start:pos], "\r\n"))
			start = pos
			lineWidth, lastOption, lastOptionWidth = 0, -1, 0
		}
	}

	if start < len(text) {
		lines = append(lines, text[start:])
	}

	return strings.Join(lines, "\n"), len(lines)
}

func isSpace(cluster string) bool {
	r, _ := utf8.DecodeRuneInString(cluster)
	return r != '\n' && r != '\r' && unicode.IsSpace(r)
}
