package catalog

import (
	"iter"

	"memberpick/internal/domain"
)

// Catalog is an immutable, ordered list of members available for selection
type Catalog struct {
	members []domain.Member
}

// New creates a catalog over a copy of members.
// An empty input falls back to the sample members.
func New(members []domain.Member) *Catalog {
	if len(members) == 0 {
		return &Catalog{members: domain.SampleMembers()}
	}
	owned := make([]domain.Member, len(members))
	copy(owned, members)
	return &Catalog{members: owned}
}

// Len returns the number of members
func (c *Catalog) Len() int {
	return len(c.members)
}

// At returns the member at index i
func (c *Catalog) At(i int) (domain.Member, bool) {
	if i < 0 || i >= len(c.members) {
		return domain.Member{}, false
	}
	return c.members[i], true
}

// Members returns a copy of all members in order
func (c *Catalog) Members() []domain.Member {
	result := make([]domain.Member, len(c.members))
	copy(result, c.members)
	return result
}

// All iterates over the members in order
func (c *Catalog) All() iter.Seq2[int, domain.Member] {
	return func(yield func(int, domain.Member) bool) {
		for i, m := range c.members {
			if !yield(i, m) {
				return
			}
		}
	}
}

// IndexOf returns the index of the first member with id, or -1
func (c *Catalog) IndexOf(id int) int {
	for i, m := range c.members {
		if m.ID == id {
			return i
		}
	}
	return -1
}
