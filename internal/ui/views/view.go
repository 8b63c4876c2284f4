package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"memberpick/internal/config"
)

// ViewState contains all the state needed for rendering
type ViewState struct {
	Width          int
	Height         int
	Title          string
	Presentation   string
	ShowClose      bool
	Rows           []RowState
	ViewportOffset int
	ViewportHeight int
	StatusMessage  string
	HelpView       string
}

// CloseLabel is the text of the close affordance
const CloseLabel = "Close"

// RootLabel is the screen shown behind the sheet
const RootLabel = "Show Member List"

// Renderer handles all view rendering
type Renderer struct {
	styles       *Styles
	memberRender *MemberRenderer
	popupRender  *PopupRenderer
}

// NewRenderer creates a new renderer
func NewRenderer() *Renderer {
	styles := NewStyles()
	return &Renderer{
		styles:       styles,
		memberRender: NewMemberRenderer(styles),
		popupRender:  NewPopupRenderer(styles),
	}
}

// Render produces the complete view
func (r *Renderer) Render(state ViewState) string {
	width := state.Width
	if width <= 0 {
		width = 80 // Default terminal width
	}

	if state.Presentation == config.PresentationPush {
		return r.renderList(state, width-4)
	}

	sheetWidth := width * 2 / 3
	if sheetWidth < 40 {
		sheetWidth = min(40, width)
	}
	list := r.renderList(state, sheetWidth-4)
	return r.popupRender.RenderSheet(r.renderRoot(width), list, width, state.Height)
}

// renderRoot renders the screen the sheet is presented from
func (r *Renderer) renderRoot(width int) string {
	button := r.styles.RootButton.Render(RootLabel)
	return r.styles.Main.Width(width).Render(button)
}

// renderList renders navigation bar, rows, status and help at the given inner width
func (r *Renderer) renderList(state ViewState, width int) string {
	if width < 20 {
		width = 20
	}
	content := &strings.Builder{}

	content.WriteString(r.renderNavBar(state, width))
	content.WriteString("\n\n")

	if len(state.Rows) == 0 {
		content.WriteString(r.styles.Dim.Render("No members"))
		content.WriteString("\n")
	}

	start, end := visibleRange(len(state.Rows), state.ViewportOffset, state.ViewportHeight)
	if start > 0 {
		content.WriteString(r.styles.Scroll.Render(fmt.Sprintf("↑ %d more", start)))
		content.WriteString("\n")
	}
	for _, row := range state.Rows[start:end] {
		content.WriteString(r.memberRender.RenderRow(row, width))
		content.WriteString("\n")
	}
	if end < len(state.Rows) {
		content.WriteString(r.styles.Scroll.Render(fmt.Sprintf("↓ %d more", len(state.Rows)-end)))
		content.WriteString("\n")
	}

	if label := focusedLabel(state.Rows); label != "" {
		content.WriteString(r.styles.Dim.Render(FocusMarker + " " + label))
		content.WriteString("\n")
	}

	if state.StatusMessage != "" {
		content.WriteString(r.styles.Status.Render(state.StatusMessage))
		content.WriteString("\n")
	}
	if state.HelpView != "" {
		content.WriteString("\n")
		content.WriteString(r.styles.Help.Render(state.HelpView))
	}

	if state.Presentation == config.PresentationPush {
		return r.styles.Main.Render(content.String())
	}
	return content.String()
}

// renderNavBar renders the close affordance on the left and the title centered
func (r *Renderer) renderNavBar(state ViewState, width int) string {
	closeText := ""
	if state.ShowClose {
		closeText = r.styles.Close.Inherit(r.styles.NavBar).Render(CloseLabel)
	}
	title := r.styles.Title.Inherit(r.styles.NavBar).Render(state.Title)

	closeW := lipgloss.Width(closeText)
	titleW := lipgloss.Width(title)
	leftPad := (width-titleW)/2 - closeW
	if leftPad < 1 {
		leftPad = 1
	}
	rightPad := width - closeW - leftPad - titleW
	if rightPad < 0 {
		rightPad = 0
	}

	return closeText +
		r.styles.NavBar.Render(strings.Repeat(" ", leftPad)) +
		title +
		r.styles.NavBar.Render(strings.Repeat(" ", rightPad))
}

// focusedLabel returns the spoken label of the row under the cursor
func focusedLabel(rows []RowState) string {
	for _, row := range rows {
		if row.Cursor {
			return row.Label
		}
	}
	return ""
}

// visibleRange clamps the viewport window to total rows
func visibleRange(total, offset, height int) (int, int) {
	if height <= 0 || height > total {
		height = total
	}
	if offset < 0 {
		offset = 0
	}
	if offset > total-height {
		offset = total - height
	}
	return offset, offset + height
}
