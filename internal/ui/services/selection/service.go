package selection

import (
	"memberpick/internal/catalog"
	"memberpick/internal/domain"
)

// Store holds the single selected member id for one list presentation and
// notifies listeners on every change. It is not safe for concurrent use;
// callers drive it from the UI update loop.
type Store struct {
	catalog   *catalog.Catalog
	selected  Selection
	listeners []listenerEntry
	nextID    int
}

// NewStore creates a store over c. A nil catalog means the sample members.
func NewStore(c *catalog.Catalog) *Store {
	if c == nil {
		c = catalog.New(nil)
	}
	return &Store{catalog: c}
}

// Catalog returns the members this store selects from
func (s *Store) Catalog() *catalog.Catalog {
	return s.catalog
}

// Select marks member as selected. The member does not have to be in the
// catalog. Listeners are notified even when the id is unchanged.
func (s *Store) Select(member domain.Member) {
	s.selected = Of(member.ID)
	s.notify()
}

// Clear removes the selection and notifies listeners
func (s *Store) Clear() {
	s.selected = None()
	s.notify()
}

// IsSelected reports whether member's id is the selected one
func (s *Store) IsSelected(member domain.Member) bool {
	return s.selected.Is(member.ID)
}

// Selected returns the current selection
func (s *Store) Selected() Selection {
	return s.selected
}

// SelectedMember looks the selected id up in the catalog
func (s *Store) SelectedMember() (domain.Member, bool) {
	if !s.selected.Set {
		return domain.Member{}, false
	}
	return s.catalog.At(s.catalog.IndexOf(s.selected.ID))
}

// Subscribe registers fn and immediately delivers the current selection to it.
// The returned function removes the listener.
func (s *Store) Subscribe(fn Listener) func() {
	id := s.nextID
	s.nextID++
	s.listeners = append(s.listeners, listenerEntry{id: id, fn: fn})
	fn(s.selected)

	return func() {
		for i, l := range s.listeners {
			if l.id == id {
				s.listeners = append(s.listeners[:i:i], s.listeners[i+1:]...)
				return
			}
		}
	}
}

// notify delivers the selection to listeners in subscription order
func (s *Store) notify() {
	current := s.selected
	listeners := make([]listenerEntry, len(s.listeners))
	copy(listeners, s.listeners)
	for _, l := range listeners {
		l.fn(current)
	}
}
