package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// TimelineRow is one log entry as the timeline shows it.
type TimelineRow struct {
	Index    int    // position in the log
	Kind     string // "in" or "out"
	Clock    string // display time
	Duration string // paired duration, empty when unpaired
}

// RenderTimeline renders log entries one per line with their paired duration.
// The row at cursor is highlighted.
func RenderTimeline(rows []TimelineRow, cursor, width, height int, inStyle, outStyle, durationStyle, cursorStyle, boxStyle lipgloss.Style) string {
	if len(rows) == 0 {
		return boxStyle.Width(width).Height(height).Render(
			lipgloss.Place(width-4, height-2, lipgloss.Center, lipgloss.Center,
				lipgloss.NewStyle().Foreground(lipgloss.Color("#888888")).Render("No Entry Available")))
	}

	maxLines := height - 2
	if maxLines < 1 {
		maxLines = 1
	}

	// Scroll so the cursor stays visible.
	start := 0
	if cursor >= maxLines {
		start = cursor - maxLines + 1
	}

	var lines []string
	for i := start; i < len(rows) && len(lines) < maxLines; i++ {
		row := rows[i]

		kindStyle := inStyle
		if row.Kind == "out" {
			kindStyle = outStyle
		}
		kindText := kindStyle.Render(strings.ToUpper(row.Kind))
		if lipgloss.Width(kindText) < 3 {
			kindText += " "
		}

		line := kindText + "  " + row.Clock
		if row.Duration != "" {
			dur := durationStyle.Render(row.Duration)
			dots := strings.Repeat(".", max(0, width-lipgloss.Width(line)-lipgloss.Width(dur)-8))
			line += " " + dots + " " + dur
		}

		if i == cursor {
			line = cursorStyle.Render("> " + line)
		} else {
			line = "  " + line
		}
		lines = append(lines, line)
	}

	content := lipgloss.JoinVertical(lipgloss.Left, lines...)
	return boxStyle.Width(width).Height(height).Render(content)
}
