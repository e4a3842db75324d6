package render

import (
	"strings"
	"time"

	"github.com/gdamore/tcell/v2"
	statepkg "github.com/kk-code-lab/rpick/internal/state"
	textutil "github.com/kk-code-lab/rpick/internal/textutil"
)

const (
	promptText  = "> "
	cursorRune  = '█'
	placeholder = "(type to filter)"
	flashPeriod = 100 * time.Millisecond
)

// Renderer draws AppState onto a tcell screen. It is used only from the
// event loop goroutine.
type Renderer struct {
	screen tcell.Screen
	theme  ColorTheme
	widths map[rune]int
}

// NewRenderer creates a new renderer
func NewRenderer(screen tcell.Screen) *Renderer {
	return &Renderer{
		screen: screen,
		theme:  GetColorTheme(),
		widths: make(map[rune]int, 128),
	}
}

// Render draws the entire UI based on state
func (r *Renderer) Render(state *statepkg.AppState) {
	r.screen.Clear()

	w, h := r.screen.Size()
	if w <= 0 || h <= 0 {
		r.screen.Show()
		return
	}

	if state.HelpVisible {
		r.drawHelpOverlay(w, h)
		r.screen.Show()
		return
	}

	r.drawPrompt(state, w)
	r.drawItemList(state, w, h)
	r.drawStatusLine(state, w, h)
	r.drawFooter(state, w, h)

	r.screen.Show()
}

// drawPrompt renders the query line with a block cursor at the end.
func (r *Renderer) drawPrompt(state *statepkg.AppState, w int) {
	baseStyle := tcell.StyleDefault.Background(r.theme.Background).Foreground(r.theme.Foreground)
	promptStyle := baseStyle.Foreground(r.theme.PromptFg).Bold(true)
	cursorStyle := baseStyle.Background(r.theme.SelectionBg).Foreground(r.theme.SelectionFg)

	x := r.drawTextLine(0, 0, w, promptText, promptStyle)
	query := textutil.SanitizeTerminalText(state.FilterQuery)
	x = r.drawTextLine(x, 0, w-x, query, baseStyle)
	x = r.drawStyledRune(x, 0, w, cursorRune, cursorStyle)
	if query == "" {
		x = r.drawTextLine(x, 0, w-x, placeholder, baseStyle.Dim(true))
	}
	r.fillRow(x, 0, w, baseStyle)
}

// drawItemList renders the visible window of results between the prompt and
// the status line.
func (r *Renderer) drawItemList(state *statepkg.AppState, w, h int) {
	baseStyle := tcell.StyleDefault.Background(r.theme.Background).Foreground(r.theme.Foreground)
	selectedStyle := tcell.StyleDefault.Background(r.theme.SelectionBg).Foreground(r.theme.SelectionFg)

	listStartY := 1
	visibleLines := state.VisibleLines()
	foldedQuery := textutil.FoldName(state.FilterQuery)

	endIndex := state.ScrollOffset + visibleLines
	if endIndex > len(state.Items) {
		endIndex = len(state.Items)
	}

	y := listStartY
	for idx := state.ScrollOffset; idx < endIndex; idx++ {
		item := state.Items[idx]
		isSelected := idx == state.SelectedIndex

		rowStyle := baseStyle
		marker := "  "
		if isSelected {
			rowStyle = selectedStyle
			marker = "▌ "
		}
		matchStyle := rowStyle.Foreground(r.theme.MatchFg).Bold(true)
		if isSelected {
			matchStyle = rowStyle.Bold(true).Underline(true)
		}

		x := r.drawTextLine(0, y, w, marker, rowStyle)
		x = r.drawItemName(x, y, w, item, foldedQuery, rowStyle, matchStyle)
		if item.Detail != "" && x+2 < w {
			detailStyle := rowStyle
			if !isSelected {
				detailStyle = rowStyle.Foreground(r.theme.DetailFg)
			}
			x = r.drawTextLine(x, y, w-x, "  ", rowStyle)
			detail := r.truncateTextToWidth(textutil.SanitizeTerminalText(item.Detail), w-x)
			x = r.drawTextLine(x, y, w-x, detail, detailStyle)
		}
		r.fillRow(x, y, w, rowStyle)
		y++
	}

	for ; y < listStartY+visibleLines; y++ {
		r.fillRow(0, y, w, baseStyle)
	}
}

// drawItemName draws the display name, truncated to the row, with the query
// match highlighted.
func (r *Renderer) drawItemName(x, y, w int, item statepkg.Item, foldedQuery string, rowStyle, matchStyle tcell.Style) int {
	display := sanitizeName(item.Name)
	spans := computeHighlightSpans(foldedQuery, item.Name)
	if r.measureTextWidth(display) > w-x {
		display = r.truncateTextToWidth(display, w-x)
	}
	return r.drawHighlightedText(x, y, w, display, spans, rowStyle, matchStyle)
}

// sanitizeName keeps one rune per input rune so highlight offsets stay valid.
func sanitizeName(name string) string {
	if !strings.ContainsFunc(name, func(ru rune) bool { return textutil.SanitizeRune(ru) != ru }) {
		return name
	}
	var b strings.Builder
	b.Grow(len(name))
	for _, ru := range name {
		b.WriteRune(textutil.SanitizeRune(ru))
	}
	return b.String()
}

// drawStatusLine shows the selected item's source on the left and the
// match count on the right. It flashes after a yank.
func (r *Renderer) drawStatusLine(state *statepkg.AppState, w, h int) {
	y := h - 2
	if y < 1 {
		return
	}
	normalStyle := tcell.StyleDefault.Background(r.theme.FooterBg).Foreground(r.theme.FooterFg).Reverse(true)
	flashStyle := tcell.StyleDefault.Background(tcell.ColorGreen).Foreground(tcell.ColorBlack)

	style := normalStyle
	if !state.LastYankTime.IsZero() && time.Since(state.LastYankTime) < flashPeriod {
		style = flashStyle
	}

	right := formatMatchStatus(state)
	left := formatSelectionStatus(state)
	if state.LastError != nil {
		left = "error: " + state.LastError.Error()
	}
	left = textutil.SanitizeTerminalText(left)

	rightWidth := r.measureTextWidth(right)
	leftMax := w - rightWidth - 2
	x := r.drawTextLine(0, y, w, " ", style)
	if leftMax > 1 {
		x = r.drawTextLine(x, y, leftMax-1, r.truncateTextToWidth(left, leftMax-1), style)
	}
	r.fillRow(x, y, w, style)
	if rightStart := w - rightWidth - 1; rightStart >= 0 {
		r.drawTextLine(rightStart, y, rightWidth, right, style)
	}
}

// drawFooter renders the key hints on the last row.
func (r *Renderer) drawFooter(state *statepkg.AppState, w, h int) {
	y := h - 1
	if y < 1 {
		return
	}
	style := tcell.StyleDefault.Background(r.theme.FooterBg).Foreground(r.theme.FooterFg)
	helpText := textutil.SanitizeTerminalText(buildFooterHelpText(state))
	x := r.drawTextLine(0, y, w, r.truncateTextToWidth(helpText, w), style)
	r.fillRow(x, y, w, style)
}
