package tracker

import (
	"github.com/samber/lo"
	"golang.org/x/text/unicode/norm"
)

// Normalize returns the gradable runes of s: NFC composed, spaces removed.
// Index i of the result is the i-th non-space character.
func Normalize(s string) []rune {
	return lo.Filter([]rune(norm.NFC.String(s)), func(r rune, _ int) bool {
		return r != ' '
	})
}

// Locate maps a flat rune offset in buffer to a line and column. Offsets
// past the end land after the last rune.
func Locate(buffer string, offset int) Position {
	var pos Position
	if offset <= 0 {
		return pos
	}
	i := 0
	for _, r := range buffer {
		if i == offset {
			break
		}
		if r == '\n' {
			pos.Line++
			pos.Column = 0
		} else {
			pos.Column++
		}
		i++
	}
	return pos
}
