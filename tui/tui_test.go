package tui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"leavetime/accounting"
	"leavetime/timelog"
)

var wallClock = time.Date(2026, 10, 15, 13, 0, 0, 0, time.UTC)

func newTestModel(t *testing.T, events ...timelog.Event) Model {
	t.Helper()
	opts, err := accounting.ParseOptions("08:00", "01:00")
	require.NoError(t, err)
	return NewModel(Settings{
		Options: opts,
		Target:  "08:00",
		Break:   "01:00",
		Now:     func() time.Time { return wallClock },
		Events:  events,
	})
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	model, ok := next.(Model)
	require.True(t, ok)
	return model, cmd
}

func press(t *testing.T, m Model, keys ...string) Model {
	t.Helper()
	for _, k := range keys {
		var msg tea.KeyMsg
		switch k {
		case "enter":
			msg = tea.KeyMsg{Type: tea.KeyEnter}
		case "esc":
			msg = tea.KeyMsg{Type: tea.KeyEsc}
		case "tab":
			msg = tea.KeyMsg{Type: tea.KeyTab}
		case "up":
			msg = tea.KeyMsg{Type: tea.KeyUp}
		case "down":
			msg = tea.KeyMsg{Type: tea.KeyDown}
		default:
			msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
		}
		m, _ = update(t, m, msg)
	}
	return m
}

func typeText(t *testing.T, m Model, text string) Model {
	t.Helper()
	for _, r := range text {
		m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	return m
}

func ev(value string, kind timelog.Kind) timelog.Event {
	return timelog.Event{Time: value, Kind: kind}
}

func TestNewModel_Empty(t *testing.T) {
	m := newTestModel(t)

	assert.Equal(t, modeBrowse, m.mode)
	assert.Equal(t, timelog.KindIn, m.kind)
	assert.Equal(t, wallClock, m.clock)

	view := m.View()
	assert.Contains(t, view, "No Logs Available")
	assert.Contains(t, view, "No Entry Available")
}

func TestInit_Ticks(t *testing.T) {
	m := newTestModel(t)
	assert.NotNil(t, m.Init())
}

func TestUpdate_TickRefreshesClock(t *testing.T) {
	m := newTestModel(t)
	later := wallClock.Add(time.Minute)
	m.now = func() time.Time { return later }

	m, cmd := update(t, m, tickMsg(later))
	assert.Equal(t, later, m.clock)
	assert.NotNil(t, cmd)
}

func TestUpdate_WindowSize(t *testing.T) {
	m := newTestModel(t)
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})
	assert.Equal(t, 120, m.width)
	assert.Equal(t, 40, m.height)
}

func TestEntryFlow_RecordsEvent(t *testing.T) {
	m := newTestModel(t)

	m = press(t, m, "n")
	require.Equal(t, modeEntry, m.mode)

	m = typeText(t, m, "9:00:00 AM")
	m = press(t, m, "enter")

	assert.Equal(t, modeBrowse, m.mode)
	assert.False(t, m.messageError)
	assert.Equal(t, "Time clocked in at 9:00:00 AM", m.message)
	require.Equal(t, 1, m.log.Len())

	event, err := m.log.At(0)
	require.NoError(t, err)
	assert.Equal(t, ev("9:00:00 AM", timelog.KindIn), event)
	assert.Equal(t, timelog.KindOut, m.kind)
}

func TestEntryFlow_InvalidTimeKeepsInputOpen(t *testing.T) {
	m := newTestModel(t)

	m = press(t, m, "n")
	m = typeText(t, m, "25:00")
	m = press(t, m, "enter")

	assert.Equal(t, modeEntry, m.mode)
	assert.True(t, m.messageError)
	assert.Equal(t, timelog.ErrInvalidClock.Error(), m.message)
	assert.Equal(t, 0, m.log.Len())
}

func TestEntryFlow_TabTogglesKind(t *testing.T) {
	m := newTestModel(t)

	m = press(t, m, "n", "tab")
	assert.Equal(t, timelog.KindOut, m.kind)

	m = typeText(t, m, "17:00")
	m = press(t, m, "enter")
	assert.Equal(t, "Time clocked out at 17:00", m.message)
}

func TestEntryFlow_TypedKeysDoNotTriggerCommands(t *testing.T) {
	m := newTestModel(t)

	m = press(t, m, "n")
	m = press(t, m, "q", "e", "t")

	assert.Equal(t, modeEntry, m.mode)
	assert.Equal(t, "qet", m.input.Value())
}

func TestEntryFlow_EscCancels(t *testing.T) {
	m := newTestModel(t)

	m = press(t, m, "n")
	m = typeText(t, m, "9:00")
	m = press(t, m, "esc")

	assert.Equal(t, modeBrowse, m.mode)
	assert.Equal(t, "", m.input.Value())
	assert.Equal(t, 0, m.log.Len())
}

func TestEditFlow_ChangesSelectedTime(t *testing.T) {
	m := newTestModel(t,
		ev("08:00:00 AM", timelog.KindIn),
		ev("12:00:00 PM", timelog.KindOut),
	)

	// Cursor starts on the newest entry; move to the older one.
	m = press(t, m, "down", "e")
	require.Equal(t, modeEdit, m.mode)
	assert.Equal(t, 0, m.editIndex)
	assert.Equal(t, "08:00:00 AM", m.input.Value())

	m.input.SetValue("07:30:00 AM")
	m = press(t, m, "enter")

	assert.Equal(t, modeBrowse, m.mode)
	assert.Equal(t, "Entry updated to 07:30:00 AM", m.message)
	event, err := m.log.At(0)
	require.NoError(t, err)
	assert.Equal(t, "07:30:00 AM", event.Time)
	assert.Equal(t, timelog.KindIn, event.Kind)
}

func TestEditFlow_EmptyLog(t *testing.T) {
	m := newTestModel(t)

	m = press(t, m, "e")
	assert.Equal(t, modeBrowse, m.mode)
	assert.True(t, m.messageError)
}

func TestTargetAndBreak(t *testing.T) {
	m := newTestModel(t)

	m = press(t, m, "t")
	require.Equal(t, modeTarget, m.mode)
	assert.Equal(t, "08:00", m.input.Value())
	m.input.SetValue("7:30")
	m = press(t, m, "enter")
	assert.Equal(t, 7*time.Hour+30*time.Minute, m.opts.Target)
	assert.Equal(t, "Target set to 07:30", m.message)

	m = press(t, m, "b")
	require.Equal(t, modeBreak, m.mode)
	m.input.SetValue("0:45")
	m = press(t, m, "enter")
	assert.Equal(t, 45*time.Minute, m.opts.BreakAllowance)
	assert.Equal(t, 7*time.Hour+30*time.Minute, m.opts.Target)

	m = press(t, m, "t")
	m.input.SetValue("soon")
	m = press(t, m, "enter")
	assert.Equal(t, modeTarget, m.mode)
	assert.True(t, m.messageError)
	assert.Equal(t, 7*time.Hour+30*time.Minute, m.opts.Target)
}

func TestCursorBounds(t *testing.T) {
	m := newTestModel(t,
		ev("08:00:00 AM", timelog.KindIn),
		ev("12:00:00 PM", timelog.KindOut),
	)

	m = press(t, m, "up")
	assert.Equal(t, 0, m.cursor)
	m = press(t, m, "j", "j", "j")
	assert.Equal(t, 1, m.cursor)
	m = press(t, m, "k")
	assert.Equal(t, 0, m.cursor)
}

func TestQuit(t *testing.T) {
	m := newTestModel(t)
	_, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestHelpToggle(t *testing.T) {
	m := newTestModel(t)
	m = press(t, m, "?")
	assert.True(t, m.help.ShowAll)
}

func TestView_ShowsSummary(t *testing.T) {
	m := newTestModel(t,
		ev("08:00:00 AM", timelog.KindIn),
		ev("12:00:00 PM", timelog.KindOut),
		ev("01:00:00 PM", timelog.KindIn),
	)

	view := m.View()
	assert.Contains(t, view, "05:00:00 PM")
	assert.Contains(t, view, "Total Work Time")
	assert.Contains(t, view, "4h")
	assert.Contains(t, view, "Left Time")
}

func TestTimelineRows_NewestFirstWithDurations(t *testing.T) {
	events := []timelog.Event{
		ev("08:00:00 AM", timelog.KindIn),
		ev("12:30:00 PM", timelog.KindOut),
		ev("01:00:00 PM", timelog.KindIn),
	}
	s := accounting.Summarize(events, accounting.Options{Target: 8 * time.Hour}, wallClock)

	rows := TimelineRows(events, s)
	require.Len(t, rows, 3)
	assert.Equal(t, 2, rows[0].Index)
	assert.Equal(t, "running", rows[0].Duration)
	assert.Equal(t, "out", rows[1].Kind)
	assert.Equal(t, "12:30 PM", rows[1].Clock)
	assert.Equal(t, "4h 30m", rows[1].Duration)
	assert.Equal(t, "", rows[2].Duration)
}

func TestHourlyWorked_SplitsAcrossHours(t *testing.T) {
	events := []timelog.Event{
		ev("08:30:00 AM", timelog.KindIn),
		ev("10:15:00 AM", timelog.KindOut),
		ev("11:00:00 AM", timelog.KindIn),
	}
	s := accounting.Summarize(events, accounting.Options{}, wallClock)

	hourly := HourlyWorked(s.Segments)
	assert.Equal(t, 30*time.Minute, hourly[8])
	assert.Equal(t, time.Hour, hourly[9])
	assert.Equal(t, 15*time.Minute, hourly[10])
	assert.Zero(t, hourly[11])
}

func TestSegmentBars_SkipsOpenAndErrored(t *testing.T) {
	events := []timelog.Event{
		ev("08:00:00 AM", timelog.KindIn),
		ev("09:00:00 AM", timelog.KindOut),
		ev("13:00:00 PM", timelog.KindIn),
		ev("10:00:00 AM", timelog.KindOut),
		ev("11:00:00 AM", timelog.KindIn),
	}
	s := accounting.Summarize(events, accounting.Options{}, wallClock)

	bars := SegmentBars(s.Segments)
	require.Len(t, bars, 1)
	assert.Equal(t, "8:00 AM - 9:00 AM", bars[0].Label)
	assert.Equal(t, time.Hour, bars[0].Duration)
}
