package state

import (
	"time"

	"github.com/kk-code-lab/rpick/internal/catalog"
	"github.com/kk-code-lab/rpick/internal/filter"
)

// Item mirrors catalog.Item so UI code can rely on a stable type.
type Item = catalog.Item

// Engine is the filter engine the picker drives.
type Engine = filter.Engine[catalog.Item]

// chromeLines is the number of rows not used by the result list: the prompt
// at the top plus the status and footer rows at the bottom.
const chromeLines = 3

// ===== STATE DEFINITIONS =====

// AppState is the single source of truth
type AppState struct {
	Engine *Engine

	// Filtering
	FilterQuery string // As typed; folding happens inside the engine
	Items       []Item // Current result list, shared with the engine cache

	// Selection & viewport
	SelectedIndex int // -1 when Items is empty
	ScrollOffset  int

	// Dimensions
	ScreenWidth  int
	ScreenHeight int

	// Overlays
	HelpVisible bool

	// Status line
	ClipboardAvailable bool      // Whether clipboard command is available
	LastYankTime       time.Time // Time of last successful yank (for flash effect)

	// Outcome
	Accepted *Item // Set once the user accepts a selection
	Quit     bool  // Set when the picker should stop

	// Error state
	LastError error
}

// NewAppState builds the initial state showing the full catalog.
func NewAppState(engine *Engine) *AppState {
	s := &AppState{
		Engine:        engine,
		SelectedIndex: -1,
	}
	if engine != nil {
		s.FilterQuery = engine.FilterText()
		s.Items = engine.ItemList()
	}
	if len(s.Items) > 0 {
		s.SelectedIndex = 0
	}
	return s
}

// CurrentItem returns the selected item, or nil when nothing is selected.
func (s *AppState) CurrentItem() *Item {
	if s.SelectedIndex < 0 || s.SelectedIndex >= len(s.Items) {
		return nil
	}
	item := s.Items[s.SelectedIndex]
	return &item
}

// MatchCount is the number of items matching the current query.
func (s *AppState) MatchCount() int {
	return len(s.Items)
}

// TotalCount is the number of items in the unfiltered catalog.
func (s *AppState) TotalCount() int {
	if s.Engine == nil {
		return len(s.Items)
	}
	return s.Engine.Total()
}

// SkippedCount is the number of catalog entries dropped for broken names.
func (s *AppState) SkippedCount() int {
	if s.Engine == nil {
		return 0
	}
	return s.Engine.Skipped()
}

// VisibleLines reports how many result rows fit on screen.
func (s *AppState) VisibleLines() int {
	return s.visibleLines()
}

func (s *AppState) visibleLines() int {
	lines := s.ScreenHeight - chromeLines
	if lines < 0 {
		return 0
	}
	return lines
}
