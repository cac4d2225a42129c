package tui

import (
	"github.com/charmbracelet/lipgloss"

	"leavetime/timelog"
	"leavetime/tui/components"
)

// renderMainView renders the main application view.
func renderMainView(m Model) string {
	width := m.width
	height := m.height
	if width < 80 {
		width = 80
	}
	if height < 24 {
		height = 24
	}

	s := m.summary()
	events := m.log.Events()

	// Hero section (full width at top)
	border := BorderIdle
	if clockedIn(s.Stamps) {
		border = BorderRunning
	}
	var withBreak string
	if m.opts.BreakAllowance > 0 && s.LeaveWithBreak.HasTime() {
		withBreak = timelog.FormatClock(s.LeaveWithBreak.At)
	}
	stats := []components.HeroStat{
		{Label: "Total Work Time", Value: timelog.FormatSpan(s.Worked), Style: HeroValueStyle},
		{Label: "Left Time", Value: timelog.FormatSpan(s.Remaining), Style: HeroValueStyle},
		{Label: "Break Taken", Value: timelog.FormatSpan(s.BreakTaken), Style: HeroValueStyle},
	}
	heroSection := components.RenderHero(s.Leave.String(), withBreak, stats, width,
		border, HeroLeaveStyle, HeroBreakStyle, HeroLabelStyle)

	progress := components.RenderTargetProgress(s.Worked, m.opts.Target, s.BreakTaken, m.opts.BreakAllowance,
		width, GetProgressStyle, FormatDurationShort)

	inputSection := renderInput(m, width)

	// Message (if any)
	var messageLine string
	if m.message != "" {
		msgStyle := SuccessStyle
		if m.messageError {
			msgStyle = ErrorStyle
		}
		messageLine = lipgloss.PlaceHorizontal(width, lipgloss.Center, msgStyle.Render(m.message))
	}

	footer := renderFooter(m, width)

	used := lipgloss.Height(heroSection) + lipgloss.Height(progress) + lipgloss.Height(inputSection) +
		lipgloss.Height(footer) + 1
	mainHeight := height - used
	if mainHeight < 10 {
		mainHeight = 10
	}

	// Timeline (left) and charts (right)
	leftWidth := int(float64(width) * 0.50)
	rightWidth := width - leftWidth - 1

	rows := TimelineRows(events, s)
	timeline := components.RenderTimeline(rows, m.cursor, leftWidth, mainHeight,
		TimelineInStyle, TimelineOutStyle, TimelineDurationStyle, TimelineCursorStyle, BoxStyle)

	heatmapHeight := 8
	chartHeight := mainHeight - heatmapHeight
	if chartHeight < 3 {
		chartHeight = 3
	}
	chart := components.RenderSegmentChart(SegmentBars(s.Segments), m.opts.Target, rightWidth, chartHeight,
		ChartBarStyle, ChartLabelStyle, ChartPercentStyle, BoxStyle, FormatDurationShort)
	heatmap := components.RenderDayHeatmap(HourlyWorked(s.Segments), rightWidth, heatmapHeight, BoxStyle)
	sidebar := lipgloss.JoinVertical(lipgloss.Left, chart, heatmap)

	contentRow := lipgloss.JoinHorizontal(lipgloss.Top, timeline, " ", sidebar)

	return lipgloss.JoinVertical(lipgloss.Left,
		heroSection,
		progress,
		inputSection,
		contentRow,
		messageLine,
		footer,
	)
}

func renderInput(m Model, width int) string {
	if m.mode == modeBrowse {
		hint := InputInactiveStyle.Render("target " + timelog.FormatHM(m.opts.Target) +
			"  break " + timelog.FormatHM(m.opts.BreakAllowance) + "  next: " + m.log.NextKind().Label())
		return components.RenderInputPanel(m.mode.title(), "", hint, false, width,
			BoxStyle, InputActiveStyle, InputInactiveStyle)
	}

	var kind string
	if m.mode == modeEntry {
		kind = string(m.kind)
	}
	return components.RenderInputPanel(m.mode.title(), kind, m.input.View(), true, width,
		BoxStyle, InputActiveStyle, InputInactiveStyle)
}

// renderFooter renders the footer with help text.
func renderFooter(m Model, width int) string {
	return FooterStyle.Width(width).Render(m.help.View(m.keys))
}
