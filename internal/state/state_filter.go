package state

import "unicode"

// applyQuery hands query to the engine and refreshes the result list. The
// previous selection is kept when the same item is still listed.
func (s *AppState) applyQuery(query string) {
	prev := s.CurrentItem()
	s.FilterQuery = query
	if s.Engine == nil {
		return
	}
	if !s.Engine.SetFilterText(query) && s.Items != nil {
		return
	}
	s.Items = s.Engine.ItemList()
	s.retainSelectionAfterFilterChange(prev)
	s.ScrollOffset = 0
	s.updateScrollVisibility()
}

func (s *AppState) retainSelectionAfterFilterChange(prev *Item) {
	if len(s.Items) == 0 {
		s.SelectedIndex = -1
		return
	}
	if prev != nil {
		for i, item := range s.Items {
			if item == *prev {
				s.SelectedIndex = i
				return
			}
		}
	}
	s.SelectedIndex = 0
}

func isQueryWordChar(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_'
}

func previousWordBoundary(runes []rune, pos int) int {
	if pos <= 0 {
		return 0
	}
	if pos > len(runes) {
		pos = len(runes)
	}

	i := pos - 1
	for i >= 0 && !isQueryWordChar(runes[i]) {
		i--
	}
	for i >= 0 && isQueryWordChar(runes[i]) {
		i--
	}
	return i + 1
}
