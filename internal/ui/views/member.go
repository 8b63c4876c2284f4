package views

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"memberpick/internal/domain"
)

// Checkmark marks the selected row
const Checkmark = "✓"

// FocusMarker prefixes the line announcing the focused row
const FocusMarker = "›"

// RowState is one rendered member row
type RowState struct {
	Member   domain.Member
	Selected bool
	Cursor   bool
	// Label is the text announced when the row has focus
	Label string
}

// MemberRenderer handles rendering of member rows
type MemberRenderer struct {
	styles *Styles
}

// NewMemberRenderer creates a new member renderer
func NewMemberRenderer(styles *Styles) *MemberRenderer {
	return &MemberRenderer{styles: styles}
}

// RenderRow renders avatar, name and checkmark padded to width
func (r *MemberRenderer) RenderRow(row RowState, width int) string {
	bg := lipgloss.NewStyle()
	if row.Cursor {
		bg = r.styles.Cursor
	}

	avatar := r.RenderAvatar(row.Member.AvatarInitial())
	name := bg.Inherit(r.styles.Name).Render(truncate(row.Member.Name, width-12))

	mark := " "
	if row.Selected {
		mark = r.styles.Checkmark.Inherit(bg).Render(Checkmark)
	}

	left := avatar + bg.Render("  ") + name
	gap := width - lipgloss.Width(left) - lipgloss.Width(mark) - 1
	if gap < 1 {
		gap = 1
	}
	return left + bg.Render(strings.Repeat(" ", gap)) + mark + bg.Render(" ")
}

// RenderAvatar renders the initial badge; a blank name gets an empty badge
func (r *MemberRenderer) RenderAvatar(initial string) string {
	if initial == "" {
		initial = " "
	}
	return r.styles.Avatar.Render(initial)
}

func truncate(s string, max int) string {
	if max < 4 {
		max = 4
	}
	if lipgloss.Width(s) <= max {
		return s
	}
	runes := []rune(s)
	for len(runes) > 0 && lipgloss.Width(string(runes))+3 > max {
		runes = runes[:len(runes)-1]
	}
	return string(runes) + "..."
}
