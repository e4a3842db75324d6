package render

import (
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

const ellipsis = "…"

// cellWidth is the number of cells ru occupies; zero-width runes still get a
// cell of their own.
func (r *Renderer) cellWidth(ru rune) int {
	if w, ok := r.widths[ru]; ok {
		return w
	}
	w := runewidth.RuneWidth(ru)
	if w < 1 {
		w = 1
	}
	r.widths[ru] = w
	return w
}

func (r *Renderer) measureTextWidth(text string) int {
	width := 0
	for _, ru := range text {
		width += r.cellWidth(ru)
	}
	return width
}

// truncateTextToWidth cuts text to maxWidth cells, marking the cut with "…".
func (r *Renderer) truncateTextToWidth(text string, maxWidth int) string {
	switch {
	case maxWidth <= 0:
		return ""
	case r.measureTextWidth(text) <= maxWidth:
		return text
	case maxWidth == 1:
		return ellipsis
	}

	var b strings.Builder
	room := maxWidth - 1
	for _, ru := range text {
		w := r.cellWidth(ru)
		if w > room {
			break
		}
		b.WriteRune(ru)
		room -= w
	}
	b.WriteString(ellipsis)
	return b.String()
}

func (r *Renderer) drawTextLine(startX, y, maxWidth int, text string, style tcell.Style) int {
	x := startX
	for _, ru := range text {
		if x-startX >= maxWidth {
			break
		}
		x = r.drawStyledRune(x, y, startX+maxWidth, ru, style)
	}
	return x
}

func (r *Renderer) drawStyledRune(x, y, maxX int, ru rune, style tcell.Style) int {
	if x >= maxX {
		return x
	}

	width := r.cellWidth(ru)
	r.screen.SetContent(x, y, ru, nil, style)
	for w := 1; w < width && x+w < maxX; w++ {
		r.screen.SetContent(x+w, y, ' ', nil, style)
	}
	return x + width
}

func (r *Renderer) fillRow(startX, y, maxX int, style tcell.Style) {
	for x := startX; x < maxX; x++ {
		r.screen.SetContent(x, y, ' ', nil, style)
	}
}

// drawHighlightedText draws runes, switching to highlightStyle inside spans.
// Span offsets are rune indices into text.
func (r *Renderer) drawHighlightedText(startX, y, maxX int, text string, spans []highlightSpan, baseStyle, highlightStyle tcell.Style) int {
	x := startX
	spanIdx := 0
	idx := 0

	for _, ru := range text {
		if x >= maxX {
			return x
		}

		for spanIdx < len(spans) && idx >= spans[spanIdx].end {
			spanIdx++
		}

		style := baseStyle
		if spanIdx < len(spans) && idx >= spans[spanIdx].start && idx < spans[spanIdx].end {
			style = highlightStyle
		}

		x = r.drawStyledRune(x, y, maxX, ru, style)
		idx++
	}

	return x
}
