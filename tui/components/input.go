package components

import (
	"github.com/charmbracelet/lipgloss"
)

// RenderInputPanel renders the entry bar: what is being entered, the in/out
// toggle and the text field. kind is empty when no toggle applies.
func RenderInputPanel(title, kind, field string, active bool, width int, boxStyle, activeStyle, inactiveStyle lipgloss.Style) string {
	var toggle string
	if kind != "" {
		inLabel, outLabel := inactiveStyle.Render(" In "), inactiveStyle.Render(" Out ")
		if kind == "in" {
			inLabel = activeStyle.Render(" In ")
		} else {
			outLabel = activeStyle.Render(" Out ")
		}
		toggle = lipgloss.JoinHorizontal(lipgloss.Left, inLabel, " ", outLabel, "  ")
	}

	titleStyle := inactiveStyle
	if active {
		titleStyle = activeStyle
	}

	row := lipgloss.JoinHorizontal(lipgloss.Left, titleStyle.Render(" "+title+" "), "  ", toggle, field)
	return boxStyle.Width(width).Render(row)
}
