package components

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
)

// RenderProgressBar renders a progress bar for goal tracking.
func RenderProgressBar(current, target time.Duration, label string, width int, progressStyle lipgloss.Style, formatDuration func(time.Duration) string) string {
	if target <= 0 {
		return label + ": N/A"
	}

	percent := float64(current) / float64(target)
	if percent > 1.0 {
		percent = 1.0
	}

	barWidth := width - 30 // Leave space for text
	if barWidth < 10 {
		barWidth = 10
	}

	filled := int(float64(barWidth) * percent)
	empty := barWidth - filled

	bar := strings.Repeat("█", filled) + strings.Repeat("░", empty)
	styledBar := progressStyle.Render(bar)

	percentText := formatDuration(current) + " / " + formatDuration(target)
	percentNum := int(percent * 100)

	return lipgloss.JoinHorizontal(lipgloss.Left,
		label+": ",
		styledBar,
		fmt.Sprintf(" %d%% ", percentNum),
		"("+percentText+")",
	)
}

// RenderTargetProgress renders worked time against the target and break
// taken against the allowance.
func RenderTargetProgress(worked, target, breakTaken, breakAllowance time.Duration, width int, getProgressStyle func(time.Duration, time.Duration) lipgloss.Style, formatDuration func(time.Duration) string) string {
	workBar := RenderProgressBar(worked, target, "Work ", width, getProgressStyle(worked, target), formatDuration)
	if breakAllowance <= 0 {
		return workBar
	}
	breakBar := RenderProgressBar(breakTaken, breakAllowance, "Break", width, getProgressStyle(breakTaken, breakAllowance), formatDuration)
	return lipgloss.JoinVertical(lipgloss.Left, workBar, breakBar)
}
