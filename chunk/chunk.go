// Package chunk groups the characters of a string into fixed-size chunks.
//
// It lives outside the root package so that numstr itself carries no
// dependency on the grapheme segmenter; import it only when needed.
package chunk

import (
	"strings"

	"github.com/clipperhouse/uax29/v2/graphemes"
)

// Join splits s into grapheme clusters, groups them size at a time, and
// joins the groups with sep. A final group shorter than size is kept as-is:
//
//	chunk.Join("FEEDC0FFEE", 2, " ") // "FE ED C0 FF EE"
//
// A size of zero or less, or an empty separator, returns s unchanged.
// Splitting on grapheme clusters rather than bytes keeps combining marks
// and emoji sequences intact.
func Join(s string, size int, sep string) string {
	if size <= 0 || sep == "" {
		return s
	}
	var b strings.Builder
	b.Grow(len(s) + len(sep)*(len(s)/size))
	n := 0
	tokens := graphemes.FromString(s)
	for tokens.Next() {
		if n > 0 && n%size == 0 {
			b.WriteString(sep)
		}
		b.WriteString(tokens.Value())
		n++
	}
	return b.String()
}
