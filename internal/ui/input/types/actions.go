package types

// Navigation actions
type NavigateAction struct {
	Direction string // "up", "down", "pageup", "pagedown", "home", "end"
}

func (a NavigateAction) Type() string { return "navigate" }

// Selection actions
type SelectAction struct {
	Index int
}

func (a SelectAction) Type() string { return "select" }

type ClearSelectionAction struct{}

func (a ClearSelectionAction) Type() string { return "clear_selection" }

// CloseAction dismisses the list through the close affordance
type CloseAction struct{}

func (a CloseAction) Type() string { return "close" }

type ToggleHelpAction struct{}

func (a ToggleHelpAction) Type() string { return "toggle_help" }

// QuitAction exits without firing the close callback
type QuitAction struct{}

func (a QuitAction) Type() string { return "quit" }
