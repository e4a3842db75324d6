package render

import (
	"strings"

	textutil "github.com/kk-code-lab/rpick/internal/textutil"
)

type highlightSpan struct {
	start int
	end   int
}

// computeHighlightSpans locates the first occurrence of the folded query in
// text and returns it as rune offsets into text. Each rune is folded on its
// own so offsets map back to the original; names whose match only exists
// after whole-string normalization are left unhighlighted.
func computeHighlightSpans(foldedQuery, text string) []highlightSpan {
	if foldedQuery == "" || text == "" {
		return nil
	}

	var folded strings.Builder
	folded.Grow(len(text))
	// owners[i] is the rune index in text that produced byte i of folded.
	owners := make([]int, 0, len(text))
	idx := 0
	for _, ru := range text {
		piece := textutil.FoldName(string(ru))
		folded.WriteString(piece)
		for range len(piece) {
			owners = append(owners, idx)
		}
		idx++
	}

	haystack := folded.String()
	at := strings.Index(haystack, foldedQuery)
	if at < 0 {
		return nil
	}
	last := at + len(foldedQuery) - 1
	return []highlightSpan{{start: owners[at], end: owners[last] + 1}}
}
