package input

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"memberpick/internal/ui/input/types"
)

// Handler turns key presses into actions for the model
type Handler struct {
	keys KeyMap
}

func New() *Handler {
	return &Handler{keys: DefaultKeyMap()}
}

// Keys returns the active bindings, used to render help
func (h *Handler) Keys() KeyMap {
	return h.keys
}

// HandleKey maps msg to actions. A nil result means the key is unbound.
func (h *Handler) HandleKey(msg tea.KeyMsg, ctx types.Context) []types.Action {
	switch {
	case key.Matches(msg, h.keys.Quit):
		return []types.Action{types.QuitAction{}}

	case key.Matches(msg, h.keys.Up):
		return []types.Action{types.NavigateAction{Direction: "up"}}

	case key.Matches(msg, h.keys.Down):
		return []types.Action{types.NavigateAction{Direction: "down"}}

	case key.Matches(msg, h.keys.Home):
		return []types.Action{types.NavigateAction{Direction: "home"}}

	case key.Matches(msg, h.keys.End):
		return []types.Action{types.NavigateAction{Direction: "end"}}

	case key.Matches(msg, h.keys.PgUp):
		return []types.Action{types.NavigateAction{Direction: "pageup"}}

	case key.Matches(msg, h.keys.PgDown):
		return []types.Action{types.NavigateAction{Direction: "pagedown"}}

	case key.Matches(msg, h.keys.Select):
		if ctx.TotalItems() == 0 {
			return nil
		}
		return []types.Action{types.SelectAction{Index: ctx.CurrentIndex()}}

	case key.Matches(msg, h.keys.Clear):
		if !ctx.HasSelection() {
			return nil
		}
		return []types.Action{types.ClearSelectionAction{}}

	case key.Matches(msg, h.keys.Close):
		// Without a close affordance there is nothing to dismiss
		if !ctx.CloseEnabled() {
			return nil
		}
		return []types.Action{types.CloseAction{}}

	case key.Matches(msg, h.keys.Help):
		return []types.Action{types.ToggleHelpAction{}}
	}

	return nil
}
