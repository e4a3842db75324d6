package state

import "fmt"

// StateReducer applies actions to AppState.
type StateReducer struct{}

func NewStateReducer() *StateReducer {
	return &StateReducer{}
}

// Reduce applies an action to state and returns new state
// State is mutated in place; callers treat the returned pointer as the result.
func (r *StateReducer) Reduce(state *AppState, action Action) (*AppState, error) {
	switch a := action.(type) {

	// ===== NAVIGATION =====

	case NavigateDownAction:
		if len(state.Items) == 0 || state.SelectedIndex >= len(state.Items)-1 {
			return state, nil
		}
		state.setSelectedIndex(state.SelectedIndex + 1)
		return state, nil

	case NavigateUpAction:
		if len(state.Items) == 0 || state.SelectedIndex == 0 {
			return state, nil
		}
		if state.SelectedIndex < 0 {
			state.setSelectedIndex(len(state.Items) - 1)
			return state, nil
		}
		state.setSelectedIndex(state.SelectedIndex - 1)
		return state, nil

	// ===== FILTER =====

	case FilterCharAction:
		state.applyQuery(state.FilterQuery + string(a.Char))
		return state, nil

	case FilterBackspaceAction:
		if state.FilterQuery == "" {
			return state, nil
		}
		runes := []rune(state.FilterQuery)
		state.applyQuery(string(runes[:len(runes)-1]))
		return state, nil

	case FilterDeleteWordAction:
		if state.FilterQuery == "" {
			return state, nil
		}
		runes := []rune(state.FilterQuery)
		start := previousWordBoundary(runes, len(runes))
		state.applyQuery(string(runes[:start]))
		return state, nil

	case FilterResetQueryAction:
		if state.FilterQuery == "" {
			return state, nil
		}
		state.applyQuery("")
		return state, nil

	case FilterSetQueryAction:
		state.applyQuery(a.Query)
		return state, nil

	// ===== SCROLLING =====

	case ScrollPageUpAction:
		visibleLines := state.visibleLines()
		if len(state.Items) == 0 || visibleLines <= 0 {
			return state, nil
		}
		state.setSelectedIndex(state.SelectedIndex - visibleLines)
		return state, nil

	case ScrollPageDownAction:
		visibleLines := state.visibleLines()
		if len(state.Items) == 0 || visibleLines <= 0 {
			return state, nil
		}
		state.setSelectedIndex(state.SelectedIndex + visibleLines)
		return state, nil

	case ScrollToStartAction:
		state.setSelectedIndex(0)
		return state, nil

	case ScrollToEndAction:
		state.setSelectedIndex(len(state.Items) - 1)
		return state, nil

	case MouseSelectAction:
		if a.DisplayIndex < 0 || a.DisplayIndex >= len(state.Items) {
			return state, nil
		}
		state.setSelectedIndex(a.DisplayIndex)
		return state, nil

	// ===== VIEW =====

	case ResizeAction:
		state.ScreenWidth = a.Width
		state.ScreenHeight = a.Height
		state.updateScrollVisibility()
		return state, nil

	case HelpToggleAction:
		state.HelpVisible = !state.HelpVisible
		return state, nil

	case HelpHideAction:
		if state.HelpVisible {
			state.HelpVisible = false
		}
		return state, nil

	// ===== APPLICATION =====

	case AcceptAction:
		item := state.CurrentItem()
		if item == nil {
			return state, nil
		}
		state.Accepted = item
		state.Quit = true
		return state, nil

	case QuitAction:
		state.Quit = true
		return state, nil

	default:
		return state, fmt.Errorf("unknown action: %T", action)
	}
}
