package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"leavetime/accounting"
	"leavetime/timelog"
)

// Palette shared by the command output.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = lipgloss.Color("#fe8019")
)

var (
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

// LeaveStyle colours a leave estimate by status.
func LeaveStyle(leave accounting.Leave) lipgloss.Style {
	switch leave.Status {
	case accounting.LeaveDone:
		return StyleGreen
	case accounting.LeaveAt, accounting.LeaveCanLeaveAt:
		return StyleBold
	default:
		return StyleDim
	}
}

// FormatSummary renders the status report for a summary.
func FormatSummary(s accounting.Summary, opts accounting.Options) string {
	rows := [][2]string{
		{"Leave at", LeaveStyle(s.Leave).Render(s.Leave.String())},
	}
	if opts.BreakAllowance > 0 && s.LeaveWithBreak.HasTime() {
		rows = append(rows, [2]string{"With break", LeaveStyle(s.LeaveWithBreak).Render(timelog.FormatClock(s.LeaveWithBreak.At))})
	}

	remainingStyle := StyleRed
	if s.Remaining == 0 {
		remainingStyle = StyleGreen
	}
	rows = append(rows,
		[2]string{"Total Work Time", StyleBold.Render(timelog.FormatHM(s.Worked))},
		[2]string{"Left Time", remainingStyle.Render(timelog.FormatHM(s.Remaining))},
		[2]string{"Target", timelog.FormatHM(opts.Target)},
	)
	if opts.BreakAllowance > 0 {
		rows = append(rows, [2]string{"Break taken", fmt.Sprintf("%s of %s",
			timelog.FormatSpan(s.BreakTaken), timelog.FormatHM(opts.BreakAllowance))})
	}

	labelWidth := 0
	for _, row := range rows {
		if w := lipgloss.Width(row[0]); w > labelWidth {
			labelWidth = w
		}
	}

	var b strings.Builder
	for _, row := range rows {
		pad := labelWidth - lipgloss.Width(row[0])
		b.WriteString(StyleHeader.Render(row[0]))
		b.WriteString(strings.Repeat(" ", pad+2))
		b.WriteString(row[1])
		b.WriteString("\n")
	}
	return b.String()
}

// FormatPairs renders the paired segments as a table.
func FormatPairs(segments []accounting.Segment) string {
	if len(segments) == 0 {
		return StyleDim.Render("No Entry Available") + "\n"
	}

	rows := make([][]string, 0, len(segments))
	for i, segment := range segments {
		outText := StyleDim.Render("-")
		durText := StyleYellow.Render("open")
		if segment.Out != nil {
			outText = timelog.DisplayClock(segment.Out.Time)
			d, err := segment.Duration()
			if err != nil {
				durText = StyleRed.Render("error")
			} else {
				durText = timelog.FormatSpan(d)
			}
		}
		rows = append(rows, []string{
			strconv.Itoa(i + 1),
			timelog.DisplayClock(segment.In.Time),
			outText,
			durText,
		})
	}
	return RenderTable([]string{"#", "In", "Out", "Duration"}, rows)
}

// RenderTable renders a simple aligned table with a header separator line.
// Columns are padded to the widest visible cell.
func RenderTable(headers []string, rows [][]string) string {
	if len(headers) == 0 {
		return ""
	}

	cols := len(headers)
	widths := make([]int, cols)
	for i, h := range headers {
		widths[i] = lipgloss.Width(h)
	}
	for _, row := range rows {
		for i := 0; i < cols && i < len(row); i++ {
			if w := lipgloss.Width(row[i]); w > widths[i] {
				widths[i] = w
			}
		}
	}

	const colGap = 2
	var b strings.Builder

	writeRow := func(cells []string, style *lipgloss.Style) {
		for i := 0; i < cols; i++ {
			cell := ""
			if i < len(cells) {
				cell = cells[i]
			}
			pad := widths[i] - lipgloss.Width(cell)
			if style != nil {
				cell = style.Render(cell)
			}
			b.WriteString(cell)
			if i < cols-1 {
				b.WriteString(strings.Repeat(" ", pad+colGap))
			}
		}
		b.WriteString("\n")
	}

	writeRow(headers, &StyleHeader)
	for i, w := range widths {
		b.WriteString(StyleDim.Render(strings.Repeat("─", w)))
		if i < cols-1 {
			b.WriteString(strings.Repeat(" ", colGap))
		}
	}
	b.WriteString("\n")
	for _, row := range rows {
		writeRow(row, nil)
	}

	return b.String()
}
