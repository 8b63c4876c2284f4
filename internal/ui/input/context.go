package input

import (
	"memberpick/internal/ui/services/navigation"
	"memberpick/internal/ui/services/selection"
)

// ModelContext implements the Context interface for the input handler
type ModelContext struct {
	Store     *selection.Store
	Navigator *navigation.Service
	ShowClose bool
}

// CurrentIndex returns the row under the cursor
func (c *ModelContext) CurrentIndex() int {
	return c.Navigator.GetCursor()
}

// TotalItems returns the number of member rows
func (c *ModelContext) TotalItems() int {
	return c.Store.Catalog().Len()
}

// HasSelection returns true if a member is selected
func (c *ModelContext) HasSelection() bool {
	return c.Store.Selected().Set
}

// CloseEnabled reports whether the close affordance is shown
func (c *ModelContext) CloseEnabled() bool {
	return c.ShowClose
}
