package views

import (
	"regexp"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// PopupRenderer handles sheet/modal rendering
type PopupRenderer struct {
	styles *Styles
}

// NewPopupRenderer creates a new popup renderer
func NewPopupRenderer(styles *Styles) *PopupRenderer {
	return &PopupRenderer{
		styles: styles,
	}
}

// RenderSheet draws popupContent in a bordered box centered over a dimmed
// copy of mainContent
func (pr *PopupRenderer) RenderSheet(mainContent, popupContent string, width, height int) string {
	styledPopup := pr.styles.Sheet.Render(popupContent)

	popupW := lipgloss.Width(styledPopup)
	popupH := lipgloss.Height(styledPopup)
	if width <= popupW || height <= popupH {
		return styledPopup
	}

	base := strings.Split(desaturateANSI(mainContent), "\n")
	for len(base) < height {
		base = append(base, "")
	}

	x := (width - popupW) / 2
	y := (height - popupH) / 2
	for i, line := range strings.Split(styledPopup, "\n") {
		row := y + i
		plain := ansiRE.ReplaceAllString(base[row], "")
		left := padRight(cutWidth(plain, x), x)
		base[row] = pr.styles.Dim.Render(left) + line
	}
	return strings.Join(base[:height], "\n")
}

// ANSI escape sequence regex to strip styles/colors
var ansiRE = regexp.MustCompile(`\x1b\[[0-9;]*m`)

// desaturateANSI strips ANSI color/style codes and recolors text dim gray
func desaturateANSI(s string) string {
	lines := strings.Split(ansiRE.ReplaceAllString(s, ""), "\n")
	dim := lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	for i, line := range lines {
		lines[i] = dim.Render(line)
	}
	return strings.Join(lines, "\n")
}

// cutWidth keeps the leading runes of s that fit into w cells
func cutWidth(s string, w int) string {
	var b strings.Builder
	used := 0
	for _, r := range s {
		rw := lipgloss.Width(string(r))
		if used+rw > w {
			break
		}
		b.WriteRune(r)
		used += rw
	}
	return b.String()
}

func padRight(s string, w int) string {
	if gap := w - lipgloss.Width(s); gap > 0 {
		return s + strings.Repeat(" ", gap)
	}
	return s
}
