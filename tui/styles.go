package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/lipgloss"
)

var (
	colorGreen  = lipgloss.Color("#b8bb26")
	colorYellow = lipgloss.Color("#fabd2f")
	colorRed    = lipgloss.Color("#fb4934")
	colorBlue   = lipgloss.Color("#83a598")
	colorAqua   = lipgloss.Color("#8ec07c")
	colorGray   = lipgloss.Color("#928374")
	colorFg     = lipgloss.Color("#ebdbb2")
)

var (
	BoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorGray).
			Padding(0, 1)

	// BorderIdle frames the hero while clocked out, BorderRunning while clocked in.
	BorderIdle    = BoxStyle.BorderForeground(colorGray)
	BorderRunning = BoxStyle.BorderForeground(colorGreen)

	HeroLeaveStyle = lipgloss.NewStyle().Bold(true).Foreground(colorYellow)
	HeroBreakStyle = lipgloss.NewStyle().Italic(true).Foreground(colorAqua)
	HeroLabelStyle = lipgloss.NewStyle().Foreground(colorGray)
	HeroValueStyle = lipgloss.NewStyle().Bold(true).Foreground(colorFg)

	TimelineInStyle       = lipgloss.NewStyle().Bold(true).Foreground(colorGreen)
	TimelineOutStyle      = lipgloss.NewStyle().Bold(true).Foreground(colorRed)
	TimelineDurationStyle = lipgloss.NewStyle().Foreground(colorBlue)
	TimelineCursorStyle   = lipgloss.NewStyle().Bold(true).Foreground(colorYellow)

	ChartBarStyle     = lipgloss.NewStyle().Foreground(colorBlue)
	ChartLabelStyle   = lipgloss.NewStyle().Foreground(colorFg)
	ChartPercentStyle = lipgloss.NewStyle().Foreground(colorGray)

	InputActiveStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#282828")).Background(colorYellow)
	InputInactiveStyle = lipgloss.NewStyle().Foreground(colorGray)

	FooterStyle  = lipgloss.NewStyle().Foreground(colorGray)
	SuccessStyle = lipgloss.NewStyle().Foreground(colorGreen)
	ErrorStyle   = lipgloss.NewStyle().Foreground(colorRed)
)

// GetProgressStyle colours a bar by how far current is toward target.
func GetProgressStyle(current, target time.Duration) lipgloss.Style {
	if target <= 0 {
		return lipgloss.NewStyle().Foreground(colorGray)
	}
	ratio := float64(current) / float64(target)
	switch {
	case ratio >= 1:
		return lipgloss.NewStyle().Foreground(colorGreen)
	case ratio >= 0.5:
		return lipgloss.NewStyle().Foreground(colorYellow)
	default:
		return lipgloss.NewStyle().Foreground(colorRed)
	}
}

// FormatDurationShort formats d as "7h05m" or "42m".
func FormatDurationShort(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	h := int(d.Hours())
	m := int(d.Minutes()) % 60
	if h > 0 {
		return fmt.Sprintf("%dh%02dm", h, m)
	}
	return fmt.Sprintf("%dm", m)
}
