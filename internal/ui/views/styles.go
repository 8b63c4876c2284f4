package views

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles contains all the style definitions for the UI
type Styles struct {
	NavBar     lipgloss.Style
	Title      lipgloss.Style
	Close      lipgloss.Style
	Avatar     lipgloss.Style
	Name       lipgloss.Style
	Checkmark  lipgloss.Style
	Cursor     lipgloss.Style
	Dim        lipgloss.Style
	Status     lipgloss.Style
	Help       lipgloss.Style
	Main       lipgloss.Style
	Sheet      lipgloss.Style
	Scroll     lipgloss.Style
	RootButton lipgloss.Style
}

// NewStyles creates a new Styles instance with default values
func NewStyles() *Styles {
	return &Styles{
		NavBar: lipgloss.NewStyle().
			Background(lipgloss.Color("203")).
			Foreground(lipgloss.Color("231")),
		Title: lipgloss.NewStyle().
			Bold(true),
		Close: lipgloss.NewStyle().
			Foreground(lipgloss.Color("33")).
			Bold(true),
		Avatar: lipgloss.NewStyle().
			Background(lipgloss.Color("252")).
			Foreground(lipgloss.Color("33")).
			Bold(true).
			Padding(0, 1),
		Name:      lipgloss.NewStyle(),
		Checkmark: lipgloss.NewStyle().Foreground(lipgloss.Color("33")).Bold(true),
		Cursor:    lipgloss.NewStyle().Background(lipgloss.Color("238")),
		Dim:       lipgloss.NewStyle().Faint(true),
		Status: lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			MarginTop(1),
		Help: lipgloss.NewStyle().Faint(true),
		Main: lipgloss.NewStyle().
			Padding(1, 2),
		Sheet: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("241")).
			Padding(0, 1),
		Scroll: lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true),
		RootButton: lipgloss.NewStyle().
			Background(lipgloss.Color("33")).
			Foreground(lipgloss.Color("231")).
			Bold(true).
			Padding(0, 2),
	}
}
