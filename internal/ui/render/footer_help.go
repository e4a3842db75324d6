package render

import (
	"strings"

	statepkg "github.com/kk-code-lab/rpick/internal/state"
)

// buildFooterHelpText returns the contextual footer hint string with leading/trailing padding.
func buildFooterHelpText(state *statepkg.AppState) string {
	parts := buildFooterHelpSegments(state)
	if len(parts) == 0 {
		return ""
	}
	return " " + strings.Join(parts, "  ") + " "
}

// buildFooterHelpSegments assembles context-aware help hints for the footer.
func buildFooterHelpSegments(state *statepkg.AppState) []string {
	if state == nil {
		return nil
	}

	segments := []string{"type: filter", "↑↓: select", "↵: accept"}
	if state.FilterQuery != "" {
		segments = append(segments, "Esc: clear", "^W: del word")
	} else {
		segments = append(segments, "Esc: quit")
	}
	if state.ClipboardAvailable {
		segments = append(segments, "^Y: yank")
	}
	segments = append(segments, "F1: help")
	return segments
}
