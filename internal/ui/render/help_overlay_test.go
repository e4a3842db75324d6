package render

import (
	"strings"
	"testing"
)

func TestBuildHelpOverlayLinesIncludesSections(t *testing.T) {
	lines := buildHelpOverlayLines()

	assertContains := func(substr string) {
		found := false
		for _, line := range lines {
			if strings.Contains(line, substr) {
				found = true
				break
			}
		}
		if !found {
			t.Fatalf("expected lines to contain %q, got %v", substr, lines)
		}
	}

	assertContains("Filter")
	assertContains("Navigation")
	assertContains("Actions")
	assertContains("Exit")
	assertContains("Delete last word")
	assertContains("Yank selection")
}

func TestFormatHelpOverlayEntryAlignsKeys(t *testing.T) {
	got := formatHelpOverlayEntry(helpOverlayEntry{keys: "Esc", desc: "Quit"})
	if got != "  Esc            Quit" {
		t.Fatalf("unexpected entry %q", got)
	}
}
