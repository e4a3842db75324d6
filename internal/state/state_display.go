package state

func (s *AppState) setSelectedIndex(idx int) bool {
	if len(s.Items) == 0 {
		return false
	}
	if idx < 0 {
		idx = 0
	}
	if idx >= len(s.Items) {
		idx = len(s.Items) - 1
	}
	if idx == s.SelectedIndex {
		return false
	}
	s.SelectedIndex = idx
	s.updateScrollVisibility()
	return true
}

func (s *AppState) updateScrollVisibility() {
	visibleLines := s.visibleLines()
	if s.SelectedIndex < 0 || visibleLines <= 0 {
		s.ScrollOffset = 0
		return
	}

	if s.SelectedIndex < s.ScrollOffset {
		s.ScrollOffset = s.SelectedIndex
	} else if s.SelectedIndex >= s.ScrollOffset+visibleLines {
		s.ScrollOffset = s.SelectedIndex - visibleLines + 1
	}

	maxOffset := len(s.Items) - visibleLines
	if maxOffset < 0 {
		maxOffset = 0
	}
	if s.ScrollOffset < 0 {
		s.ScrollOffset = 0
	}
	if s.ScrollOffset > maxOffset {
		s.ScrollOffset = maxOffset
	}
}
