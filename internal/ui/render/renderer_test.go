package render

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/kk-code-lab/rpick/internal/catalog"
	"github.com/kk-code-lab/rpick/internal/filter"
	statepkg "github.com/kk-code-lab/rpick/internal/state"
)

func TestTruncateTextToWidth(t *testing.T) {
	r := NewRenderer(nil)

	tests := []struct {
		name   string
		text   string
		width  int
		expect string
	}{
		{
			name:   "fits without truncation",
			text:   "file.txt",
			width:  20,
			expect: "file.txt",
		},
		{
			name:   "adds ellipsis when needed",
			text:   "verylongname",
			width:  6,
			expect: "veryl…",
		},
		{
			name:   "only ellipsis when width too small",
			text:   "ingot",
			width:  1,
			expect: "…",
		},
		{
			name:   "multi-byte characters respected",
			text:   "你好世界",
			width:  5,
			expect: "你好…",
		},
		{
			name:   "returns empty when width is zero",
			text:   "anything",
			width:  0,
			expect: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			actual := r.truncateTextToWidth(tt.text, tt.width)
			if actual != tt.expect {
				t.Fatalf("expected %q, got %q (width %d)", tt.expect, actual, tt.width)
			}
		})
	}
}

func TestMeasureTextWidth(t *testing.T) {
	r := NewRenderer(nil)

	if got := r.measureTextWidth("abc"); got != 3 {
		t.Fatalf("expected ASCII width 3, got %d", got)
	}

	if got := r.measureTextWidth("你好"); got != 4 {
		t.Fatalf("expected wide rune width 4, got %d", got)
	}
}

func TestComputeHighlightSpans(t *testing.T) {
	tests := []struct {
		name  string
		query string
		text  string
		want  []highlightSpan
	}{
		{"empty query", "", "Gold", nil},
		{"case folded", "ol", "GOLD", []highlightSpan{{start: 1, end: 3}}},
		{"first occurrence only", "a", "banana", []highlightSpan{{start: 1, end: 2}}},
		{"multibyte offsets are runes", "lé", "Café Olé", []highlightSpan{{start: 6, end: 8}}},
		{"no match", "zz", "Gold", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := computeHighlightSpans(tt.query, tt.text)
			if len(got) != len(tt.want) {
				t.Fatalf("expected %v, got %v", tt.want, got)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Fatalf("expected %v, got %v", tt.want, got)
				}
			}
		})
	}
}

func TestSanitizeNameKeepsRuneCount(t *testing.T) {
	in := "a\tb\x1bc"
	out := sanitizeName(in)
	if len([]rune(out)) != len([]rune(in)) {
		t.Fatalf("rune count changed: %q -> %q", in, out)
	}
	if strings.ContainsAny(out, "\t\x1b") {
		t.Fatalf("control runes survived: %q", out)
	}
}

func newTestScreen(t *testing.T, w, h int) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("")
	if err := screen.Init(); err != nil {
		t.Fatalf("failed to init screen: %v", err)
	}
	t.Cleanup(func() {
		screen.Fini()
	})
	screen.SetSize(w, h)
	return screen
}

func newRenderState(t *testing.T, w, h int, names ...string) *statepkg.AppState {
	t.Helper()
	cat := catalog.New[catalog.Item](len(names))
	for _, name := range names {
		cat.AddName(catalog.Item{Name: name, Source: "test"}, name, name)
	}
	engine, err := filter.New(cat)
	if err != nil {
		t.Fatalf("filter.New: %v", err)
	}
	state := statepkg.NewAppState(engine)
	state.ScreenWidth = w
	state.ScreenHeight = h
	return state
}

func rowText(screen tcell.Screen, y, w int) string {
	var b strings.Builder
	for x := 0; x < w; x++ {
		mainc, _, _, width := screen.GetContent(x, y)
		b.WriteRune(mainc)
		if width > 1 {
			x += width - 1
		}
	}
	return strings.TrimRight(b.String(), " ")
}

func TestRenderDrawsPromptListAndStatus(t *testing.T) {
	screen := newTestScreen(t, 40, 8)
	state := newRenderState(t, 40, 8, "Iron", "Gold", "Silver")
	reducer := statepkg.NewStateReducer()
	if _, err := reducer.Reduce(state, statepkg.FilterCharAction{Char: 'L'}); err != nil {
		t.Fatalf("reduce: %v", err)
	}

	NewRenderer(screen).Render(state)

	if got := rowText(screen, 0, 40); got != "> L█" {
		t.Fatalf("prompt row = %q", got)
	}
	if got := rowText(screen, 1, 40); got != "▌ Gold" {
		t.Fatalf("first row = %q", got)
	}
	if got := rowText(screen, 2, 40); got != "  Silver" {
		t.Fatalf("second row = %q", got)
	}
	if got := rowText(screen, 3, 40); got != "" {
		t.Fatalf("third row should be empty, got %q", got)
	}
	status := rowText(screen, 6, 40)
	if !strings.HasSuffix(status, "2/3") {
		t.Fatalf("status should end with match count, got %q", status)
	}
	if !strings.Contains(rowText(screen, 7, 40), "↵: accept") {
		t.Fatalf("footer missing help hint: %q", rowText(screen, 7, 40))
	}
}

func TestRenderHighlightsMatch(t *testing.T) {
	screen := newTestScreen(t, 40, 8)
	state := newRenderState(t, 40, 8, "Iron", "Gold")
	if _, err := statepkg.NewStateReducer().Reduce(state, statepkg.FilterSetQueryAction{Query: "ol"}); err != nil {
		t.Fatalf("reduce: %v", err)
	}

	NewRenderer(screen).Render(state)

	// Row 1 is "▌ Gold"; 'o' and 'l' sit at columns 3 and 4.
	_, _, plain, _ := screen.GetContent(2, 1)
	_, _, match, _ := screen.GetContent(3, 1)
	if plain == match {
		t.Fatalf("matched runes should be styled differently from the rest of the row")
	}
	_, _, matchEnd, _ := screen.GetContent(4, 1)
	if matchEnd != match {
		t.Fatalf("whole match should share a style")
	}
}

func TestRenderShowsSkippedAndErrors(t *testing.T) {
	screen := newTestScreen(t, 60, 6)
	cat := catalog.New[catalog.Item](2)
	cat.AddName(catalog.Item{Name: "ok"}, "ok", "ok")
	cat.Add(catalog.Item{}, "broken", func() (string, error) { return "", errors.New("boom") })
	engine, err := filter.New(cat)
	if err != nil {
		t.Fatalf("filter.New: %v", err)
	}
	state := statepkg.NewAppState(engine)
	state.ScreenWidth, state.ScreenHeight = 60, 6
	state.LastError = errors.New("clipboard failed")

	NewRenderer(screen).Render(state)

	status := rowText(screen, 4, 60)
	if !strings.Contains(status, "1/1 · 1 skipped") {
		t.Fatalf("status should report skipped entries, got %q", status)
	}
	if !strings.Contains(status, "error: clipboard failed") {
		t.Fatalf("status should show last error, got %q", status)
	}
}

func TestRenderStatusFlashesAfterYank(t *testing.T) {
	screen := newTestScreen(t, 30, 6)
	state := newRenderState(t, 30, 6, "Iron")
	state.LastYankTime = time.Now()

	NewRenderer(screen).Render(state)

	_, _, style, _ := screen.GetContent(0, 4)
	_, bg, _ := style.Decompose()
	if bg != tcell.ColorGreen {
		t.Fatalf("expected flash background, got %v", bg)
	}
}

func TestRenderHelpOverlay(t *testing.T) {
	screen := newTestScreen(t, 60, 24)
	state := newRenderState(t, 60, 24, "Iron")
	state.HelpVisible = true

	NewRenderer(screen).Render(state)

	var all []string
	for y := 0; y < 24; y++ {
		all = append(all, rowText(screen, y, 60))
	}
	joined := strings.Join(all, "\n")
	for _, want := range []string{"Help", "Filter", "Navigation", "Ctrl+Y", "Quit immediately"} {
		if !strings.Contains(joined, want) {
			t.Fatalf("help overlay missing %q:\n%s", want, joined)
		}
	}
}
