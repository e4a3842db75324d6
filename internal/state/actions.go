package state

// Action is the base interface for all state mutations
type Action interface{}

// ===== NAVIGATION ACTIONS =====

type NavigateUpAction struct{}
type NavigateDownAction struct{}

// ===== FILTER ACTIONS =====

type FilterCharAction struct {
	Char rune
}
type FilterBackspaceAction struct{}
type FilterDeleteWordAction struct{}
type FilterResetQueryAction struct{}

// FilterSetQueryAction replaces the whole query, e.g. from an initial
// command-line query.
type FilterSetQueryAction struct {
	Query string
}

// ===== SCROLL ACTIONS =====

type ScrollPageUpAction struct{}
type ScrollPageDownAction struct{}
type ScrollToStartAction struct{}
type ScrollToEndAction struct{}

// MouseSelectAction selects a visible row by its index in the result list.
type MouseSelectAction struct {
	DisplayIndex int
}

// ===== VIEW ACTIONS =====

type ResizeAction struct {
	Width  int
	Height int
}

type YankAction struct{}
type HelpToggleAction struct{}
type HelpHideAction struct{}

// ===== APPLICATION ACTIONS =====

type AcceptAction struct{}  // Enter - print the selection and exit
type QuitAction struct{}    // Ctrl-C or Esc on an empty query
type SuspendAction struct{} // Ctrl-Z - stop the process and return to the shell
