package components

import (
	"fmt"
	"time"

	"github.com/charmbracelet/lipgloss"
)

// RenderDayHeatmap renders one square per hour of the day, shaded by how
// much of that hour was worked.
func RenderDayHeatmap(hourly [24]time.Duration, width, height int, boxStyle lipgloss.Style) string {
	var lines []string
	lines = append(lines, lipgloss.NewStyle().Bold(true).Render("Hours Worked"))
	lines = append(lines, "")

	// Two rows of twelve: AM then PM.
	for half := 0; half < 2; half++ {
		var squares []string
		label := "AM "
		if half == 1 {
			label = "PM "
		}
		squares = append(squares, lipgloss.NewStyle().Foreground(lipgloss.Color("#888888")).Render(label))

		for h := half * 12; h < half*12+12; h++ {
			intensity := float64(hourly[h]) / float64(time.Hour)
			color := heatColor(intensity)
			square := lipgloss.NewStyle().
				Foreground(color).
				Render("██")
			squares = append(squares, square)
		}
		lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Left, squares...))
	}

	lines = append(lines, "", fmt.Sprintf("%d of 24 hours touched", countNonZero(hourly)))

	content := lipgloss.JoinVertical(lipgloss.Left, lines...)
	return boxStyle.Width(width).Height(height).Render(content)
}

func heatColor(intensity float64) lipgloss.Color {
	switch {
	case intensity <= 0:
		return lipgloss.Color("#333333")
	case intensity < 0.25:
		return lipgloss.Color("#005500")
	case intensity < 0.5:
		return lipgloss.Color("#00aa00")
	case intensity < 0.75:
		return lipgloss.Color("#00ff00")
	default:
		return lipgloss.Color("#88ff88")
	}
}

func countNonZero(hourly [24]time.Duration) int {
	n := 0
	for _, d := range hourly {
		if d > 0 {
			n++
		}
	}
	return n
}
