package ui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog/log"

	"memberpick/internal/config"
	"memberpick/internal/domain"
	"memberpick/internal/ui/input"
	inputtypes "memberpick/internal/ui/input/types"
	"memberpick/internal/ui/services/navigation"
	"memberpick/internal/ui/services/selection"
	"memberpick/internal/ui/viewmodels"
	"memberpick/internal/ui/views"
)

// Rows taken by everything but the member list
const (
	pushChrome  = 10
	sheetChrome = 14
)

// Options carries the callbacks owned by whoever presents the list
type Options struct {
	// OnClose runs when the user dismisses the list via the close affordance
	OnClose func()
	// OnMemberSelected runs after the store has recorded a row selection
	OnMemberSelected func(domain.Member)
	// OnSelectionCleared runs after the user cleared the selection
	OnSelectionCleared func()
	// ReadyMarker appends ReadyMarker to the output, for pty tests
	ReadyMarker bool
}

// Model is the Bubble Tea model rendering one member list presentation
type Model struct {
	store   *selection.Store
	config  *config.Config
	options Options

	width  int
	height int

	navigator    *navigation.Service
	renderer     *views.Renderer
	viewModel    *viewmodels.ViewModel
	inputHandler *input.Handler
	helpOps      *HelpOps

	closed bool
}

// NewModel creates a new UI model over store
func NewModel(store *selection.Store, cfg *config.Config, opts Options) *Model {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}

	m := &Model{
		store:        store,
		config:       cfg,
		options:      opts,
		navigator:    navigation.NewService(store.Catalog().Len()),
		renderer:     views.NewRenderer(),
		inputHandler: input.New(),
		helpOps:      NewHelpOps(),
	}
	m.viewModel = viewmodels.NewViewModel(store, m.navigator, cfg, m.inputHandler.Keys())

	// Start on the current selection when the store is reused across presentations
	if sel := store.Selected(); sel.Set {
		if i := store.Catalog().IndexOf(sel.ID); i >= 0 {
			m.navigator.MoveToIndex(i)
		}
	}

	return m
}

// SetProgram sets the program reference for terminal management
func (m *Model) SetProgram(p *tea.Program) {
	m.helpOps.SetProgram(p)
}

// Closed reports whether the list was dismissed through the close affordance
func (m *Model) Closed() bool {
	return m.closed
}

// Init returns an initial command
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.viewModel.SetDimensions(msg.Width, msg.Height)
		m.updateViewportHeight()

	case tea.KeyMsg:
		ctx := &input.ModelContext{
			Store:     m.store,
			Navigator: m.navigator,
			ShowClose: m.config.UISettings.ShowClose,
		}

		var cmds []tea.Cmd
		for _, action := range m.inputHandler.HandleKey(msg, ctx) {
			if cmd := m.processAction(action); cmd != nil {
				cmds = append(cmds, cmd)
			}
		}
		return m, tea.Batch(cmds...)

	case helpPagerMsg:
		if msg.err != nil {
			log.Error().Err(msg.err).Msg("help pager failed")
			m.viewModel.ToggleFullHelp()
		}
	}

	return m, nil
}

// View renders the UI
func (m *Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	out := m.renderer.Render(m.viewModel.BuildViewState())
	if m.options.ReadyMarker {
		out += "\n" + ReadyMarker
	}
	return out
}

// processAction processes an action from the input handler
func (m *Model) processAction(action inputtypes.Action) tea.Cmd {
	switch a := action.(type) {
	case inputtypes.NavigateAction:
		m.navigator.Navigate(navigation.Direction(a.Direction))

	case inputtypes.SelectAction:
		// The sheet stays up after a pick; only the close affordance dismisses it
		member, ok := m.store.Catalog().At(a.Index)
		if !ok {
			return nil
		}
		m.store.Select(member)
		if m.options.OnMemberSelected != nil {
			m.options.OnMemberSelected(member)
		}

	case inputtypes.ClearSelectionAction:
		m.store.Clear()
		if m.options.OnSelectionCleared != nil {
			m.options.OnSelectionCleared()
		}

	case inputtypes.CloseAction:
		m.closed = true
		m.viewModel.Close()
		if m.options.OnClose != nil {
			m.options.OnClose()
		}
		return tea.Quit

	case inputtypes.ToggleHelpAction:
		if !m.helpOps.Available() {
			m.viewModel.ToggleFullHelp()
			return nil
		}
		content := RenderHelpContent(m.config.UISettings.Title, m.inputHandler.Keys())
		return func() tea.Msg {
			return helpPagerMsg{err: m.helpOps.ShowHelpInPager(content)}
		}

	case inputtypes.QuitAction:
		m.viewModel.Close()
		return tea.Quit
	}

	return nil
}

// updateViewportHeight fits the member rows into the terminal
func (m *Model) updateViewportHeight() {
	chrome := sheetChrome
	if m.config.UISettings.Presentation == config.PresentationPush {
		chrome = pushChrome
	}
	m.navigator.SetViewportHeight(m.height - chrome)
}
