package navigation

// Service moves the row cursor and keeps it inside the visible window
type Service struct {
	state *State
}

// NewService creates a navigation service over count rows
func NewService(count int) *Service {
	s := &Service{
		state: &State{
			ViewportHeight: 20, // Default, will be updated
		},
	}
	s.SetCount(count)
	return s
}

// SetCount updates the number of rows and clamps the cursor
func (s *Service) SetCount(count int) {
	s.state.MaxIndex = count - 1
	if s.state.MaxIndex < 0 {
		s.state.MaxIndex = 0
	}
	s.state.Cursor = s.clampIndex(s.state.Cursor)
	s.ensureVisible()
}

// GetCursor returns current cursor position
func (s *Service) GetCursor() int {
	return s.state.Cursor
}

// GetViewportOffset returns current viewport offset
func (s *Service) GetViewportOffset() int {
	return s.state.ViewportOffset
}

// GetViewportHeight returns current viewport height
func (s *Service) GetViewportHeight() int {
	return s.state.ViewportHeight
}

// SetViewportHeight updates the number of visible rows
func (s *Service) SetViewportHeight(rows int) {
	if rows < 1 {
		rows = 1
	}
	s.state.ViewportHeight = rows
	s.ensureVisible()
}

// Navigate handles navigation in a direction.
// Returns true if the cursor moved.
func (s *Service) Navigate(direction Direction) bool {
	oldCursor := s.state.Cursor

	switch direction {
	case DirectionUp:
		s.moveUp()
	case DirectionDown:
		s.moveDown()
	case DirectionPageUp:
		s.pageUp()
	case DirectionPageDown:
		s.pageDown()
	case DirectionHome:
		s.moveToStart()
	case DirectionEnd:
		s.moveToEnd()
	}

	return oldCursor != s.state.Cursor
}

// MoveToIndex moves cursor to specific index
func (s *Service) MoveToIndex(index int) {
	s.state.Cursor = s.clampIndex(index)
	s.ensureVisible()
}

func (s *Service) moveUp() {
	if s.state.Cursor > 0 {
		s.state.Cursor--
		s.ensureVisible()
	}
}

func (s *Service) moveDown() {
	if s.state.Cursor < s.state.MaxIndex {
		s.state.Cursor++
		s.ensureVisible()
	}
}

func (s *Service) pageUp() {
	pageSize := s.pageSize()
	s.state.Cursor = s.clampIndex(s.state.Cursor - pageSize)

	s.state.ViewportOffset -= pageSize
	if s.state.ViewportOffset < 0 {
		s.state.ViewportOffset = 0
	}
	s.ensureVisible()
}

func (s *Service) pageDown() {
	s.state.Cursor = s.clampIndex(s.state.Cursor + s.pageSize())
	s.ensureVisible()
}

func (s *Service) moveToStart() {
	s.state.Cursor = 0
	s.state.ViewportOffset = 0
}

func (s *Service) moveToEnd() {
	s.state.Cursor = s.state.MaxIndex
	s.ensureVisible()
}

func (s *Service) pageSize() int {
	if s.state.ViewportHeight > 1 {
		return s.state.ViewportHeight - 1
	}
	return 1
}

func (s *Service) clampIndex(index int) int {
	if index < 0 {
		return 0
	}
	if index > s.state.MaxIndex {
		return s.state.MaxIndex
	}
	return index
}

func (s *Service) ensureVisible() {
	if s.state.Cursor < s.state.ViewportOffset {
		s.state.ViewportOffset = s.state.Cursor
	} else if s.state.Cursor >= s.state.ViewportOffset+s.state.ViewportHeight {
		s.state.ViewportOffset = s.state.Cursor - s.state.ViewportHeight + 1
	}
}
