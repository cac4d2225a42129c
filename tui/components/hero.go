package components

import (
	"github.com/charmbracelet/lipgloss"
)

// HeroStat is a labelled figure shown under the leave estimate.
type HeroStat struct {
	Label string
	Value string
	Style lipgloss.Style
}

// RenderHero renders the hero section: the leave estimate large and centred,
// with the headline figures beneath it.
func RenderHero(leave, leaveWithBreak string, stats []HeroStat, width int, border, leaveStyle, breakStyle, labelStyle lipgloss.Style) string {
	innerWidth := width - 4 // Account for border padding (2 chars on each side)
	if innerWidth < 10 {
		innerWidth = 10
	}

	var lines []string
	lines = append(lines, lipgloss.Place(innerWidth, 1, lipgloss.Center, lipgloss.Center, leaveStyle.Render(leave)))
	if leaveWithBreak != "" {
		lines = append(lines, lipgloss.Place(innerWidth, 1, lipgloss.Center, lipgloss.Center, breakStyle.Render("incl. break "+leaveWithBreak)))
	}
	lines = append(lines, "")

	if len(stats) > 0 {
		cellWidth := innerWidth / len(stats)
		var cells []string
		for _, stat := range stats {
			cell := lipgloss.JoinVertical(lipgloss.Center,
				labelStyle.Render(stat.Label),
				stat.Style.Render(stat.Value),
			)
			cells = append(cells, lipgloss.PlaceHorizontal(cellWidth, lipgloss.Center, cell))
		}
		lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}

	content := lipgloss.JoinVertical(lipgloss.Left, lines...)
	return border.Width(width).Render(content)
}
