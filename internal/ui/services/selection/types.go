package selection

// Selection is the currently selected member id, if any
type Selection struct {
	ID  int
	Set bool
}

// None returns the empty selection
func None() Selection {
	return Selection{}
}

// Of returns a selection holding id
func Of(id int) Selection {
	return Selection{ID: id, Set: true}
}

// Is reports whether the selection holds id
func (s Selection) Is(id int) bool {
	return s.Set && s.ID == id
}

// Listener receives the selection after every change
type Listener func(Selection)

type listenerEntry struct {
	id int
	fn Listener
}
