package viewmodels

import (
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/rs/zerolog/log"

	"memberpick/internal/config"
	"memberpick/internal/ui/input"
	"memberpick/internal/ui/services/navigation"
	"memberpick/internal/ui/services/selection"
	"memberpick/internal/ui/views"
)

// ViewModel transforms store and navigation state into view-ready data
type ViewModel struct {
	store     *selection.Store
	navigator *navigation.Service
	config    *config.Config
	keys      input.KeyMap
	width     int
	height    int
	help      help.Model
	status    string

	unsubscribe func()
}

// NewViewModel creates a new view model
func NewViewModel(store *selection.Store, nav *navigation.Service, cfg *config.Config, keys input.KeyMap) *ViewModel {
	vm := &ViewModel{
		store:     store,
		navigator: nav,
		config:    cfg,
		keys:      keys,
		help:      help.New(),
	}
	vm.unsubscribe = store.Subscribe(vm.onSelectionChanged)
	return vm
}

// Close stops observing the store
func (vm *ViewModel) Close() {
	if vm.unsubscribe != nil {
		vm.unsubscribe()
		vm.unsubscribe = nil
	}
}

// SetDimensions sets the current terminal dimensions
func (vm *ViewModel) SetDimensions(width, height int) {
	vm.width = width
	vm.height = height
	vm.help.Width = width
}

// ToggleFullHelp switches the footer between short and full help
func (vm *ViewModel) ToggleFullHelp() {
	vm.help.ShowAll = !vm.help.ShowAll
}

// StatusMessage describes the last observed selection
func (vm *ViewModel) StatusMessage() string {
	return vm.status
}

func (vm *ViewModel) onSelectionChanged(sel selection.Selection) {
	if !sel.Set {
		vm.status = ""
	} else if m, ok := vm.store.SelectedMember(); ok {
		vm.status = fmt.Sprintf("Selected: %s", m.Name)
	} else {
		vm.status = fmt.Sprintf("Selected: #%d", sel.ID)
	}
	log.Debug().Bool("set", sel.Set).Int("id", sel.ID).Msg("selection changed")
}

// BuildViewState creates a ViewState for rendering
func (vm *ViewModel) BuildViewState() views.ViewState {
	cursor := vm.navigator.GetCursor()
	members := vm.store.Catalog()

	rows := make([]views.RowState, 0, members.Len())
	for i, m := range members.All() {
		selected := vm.store.IsSelected(m)
		rows = append(rows, views.RowState{
			Member:   m,
			Selected: selected,
			Cursor:   i == cursor,
			Label:    m.AccessibilityLabel(selected),
		})
	}

	return views.ViewState{
		Width:          vm.width,
		Height:         vm.height,
		Title:          vm.config.UISettings.Title,
		Presentation:   vm.config.UISettings.Presentation,
		ShowClose:      vm.config.UISettings.ShowClose,
		Rows:           rows,
		ViewportOffset: vm.navigator.GetViewportOffset(),
		ViewportHeight: vm.navigator.GetViewportHeight(),
		StatusMessage:  vm.StatusMessage(),
		HelpView:       vm.help.View(vm.keys),
	}
}
