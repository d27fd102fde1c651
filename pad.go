package numstr

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// ZeroPad left-pads s with '0' to a minimum display width. Strings at or
// above the width are returned unchanged; output is never truncated.
func ZeroPad(s string, width int) string {
	return padLeft(s, width, "0")
}

// SpacePad left-pads s with spaces to a minimum display width, no
// truncation.
func SpacePad(s string, width int) string {
	return padLeft(s, width, " ")
}

func padLeft(s string, width int, fill string) string {
	// Width is measured in terminal columns so wide runes count as two.
	n := width - runewidth.StringWidth(s)
	if n <= 0 {
		return s
	}
	return strings.Repeat(fill, n) + s
}
