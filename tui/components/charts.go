package components

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
)

// SegmentBar is one closed segment for chart display.
type SegmentBar struct {
	Label    string
	Duration time.Duration
}

// RenderSegmentChart renders a horizontal bar per segment, scaled to the
// longest one, with each segment's share of the target.
func RenderSegmentChart(bars []SegmentBar, target time.Duration, width, height int, chartBarStyle, chartLabelStyle, chartPercentStyle, boxStyle lipgloss.Style, formatDurationShort func(time.Duration) string) string {
	if len(bars) == 0 {
		return boxStyle.Width(width).Height(height).Render(
			lipgloss.Place(width-4, height-2, lipgloss.Center, lipgloss.Center,
				lipgloss.NewStyle().Foreground(lipgloss.Color("#888888")).Render("No closed segments.")))
	}

	var maxDuration time.Duration
	for _, bar := range bars {
		if bar.Duration > maxDuration {
			maxDuration = bar.Duration
		}
	}

	// Limit to available height
	maxLines := height - 2
	if maxLines < 1 {
		maxLines = 1
	}
	if len(bars) > maxLines {
		bars = bars[len(bars)-maxLines:]
	}

	const labelWidth = 20
	barWidth := width - labelWidth - 20
	if barWidth < 5 {
		barWidth = 5
	}

	var lines []string
	for _, bar := range bars {
		filled := 0
		if maxDuration > 0 {
			filled = int(float64(barWidth) * float64(bar.Duration) / float64(maxDuration))
		}
		if filled > barWidth {
			filled = barWidth
		}

		share := ""
		if target > 0 {
			share = fmt.Sprintf(" %d%%", int(float64(bar.Duration)/float64(target)*100))
		}

		line := lipgloss.JoinHorizontal(lipgloss.Left,
			chartLabelStyle.Width(labelWidth).Render(bar.Label),
			chartBarStyle.Render(strings.Repeat("█", filled)),
			" "+formatDurationShort(bar.Duration),
			chartPercentStyle.Render(share),
		)
		lines = append(lines, line)
	}

	content := lipgloss.JoinVertical(lipgloss.Left, lines...)
	return boxStyle.Width(width).Height(height).Render(content)
}
