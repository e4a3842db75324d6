package render

import (
	"fmt"
	"strings"

	statepkg "github.com/kk-code-lab/rpick/internal/state"
)

// formatMatchStatus renders "matches/total", plus the skipped count when
// some catalog entries had unusable names.
func formatMatchStatus(state *statepkg.AppState) string {
	parts := []string{fmt.Sprintf("%d/%d", state.MatchCount(), state.TotalCount())}
	if skipped := state.SkippedCount(); skipped > 0 {
		parts = append(parts, fmt.Sprintf("%s skipped", formatCompactNumber(skipped)))
	}
	return strings.Join(parts, " · ")
}

// formatSelectionStatus describes where the selected item came from.
func formatSelectionStatus(state *statepkg.AppState) string {
	item := state.CurrentItem()
	if item == nil {
		if state.FilterQuery != "" {
			return "no matches"
		}
		return ""
	}
	if item.Source == "" {
		return item.Name
	}
	return item.Source
}

func formatCompactNumber(n int) string {
	switch {
	case n >= 1_000_000_000:
		return fmt.Sprintf("%.1fB", float64(n)/1_000_000_000.0)
	case n >= 1_000_000:
		return fmt.Sprintf("%.1fM", float64(n)/1_000_000.0)
	case n >= 1_000:
		return fmt.Sprintf("%.1fk", float64(n)/1_000.0)
	default:
		return fmt.Sprintf("%d", n)
	}
}
