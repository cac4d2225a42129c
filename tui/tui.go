package tui

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"leavetime/accounting"
	"leavetime/timelog"
)

// Settings is what the TUI starts from.
type Settings struct {
	Options accounting.Options
	// Target and Break are the H:MM strings Options was parsed from,
	// shown and edited as typed.
	Target string
	Break  string
	// Now returns the wall clock. Nil means timelog.LocalNow.
	Now func() time.Time
	// Events seeds the log.
	Events []timelog.Event
}

// LaunchTUI initializes and launches the terminal UI using Bubbletea.
func LaunchTUI(settings Settings) error {
	m := NewModel(settings)
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()
	return err
}

type mode int

const (
	modeBrowse mode = iota
	modeEntry
	modeEdit
	modeTarget
	modeBreak
)

func (md mode) title() string {
	switch md {
	case modeEntry:
		return "New entry"
	case modeEdit:
		return "Edit entry"
	case modeTarget:
		return "Target"
	case modeBreak:
		return "Break"
	}
	return "Browse"
}

type tickMsg time.Time

func tick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Model is the bubbletea model. The log is owned by the Update loop.
type Model struct {
	log        *timelog.Log
	opts       accounting.Options
	targetText string
	breakText  string
	now        func() time.Time
	clock      time.Time

	width  int
	height int

	mode      mode
	kind      timelog.Kind
	input     textinput.Model
	cursor    int // row in the timeline, 0 is the newest entry
	editIndex int // log index being edited

	keys keyMap
	help help.Model

	message      string
	messageError bool
}

// NewModel builds a Model from settings.
func NewModel(settings Settings) Model {
	now := settings.Now
	if now == nil {
		now = timelog.LocalNow
	}

	ti := textinput.New()
	ti.Placeholder = "9:30:00 AM"
	ti.CharLimit = 16
	ti.Width = 20

	log := timelog.NewLog(settings.Events...)
	return Model{
		log:        log,
		opts:       settings.Options,
		targetText: settings.Target,
		breakText:  settings.Break,
		now:        now,
		clock:      now(),
		mode:       modeBrowse,
		kind:       log.NextKind(),
		input:      ti,
		editIndex:  -1,
		keys:       newKeyMap(),
		help:       help.New(),
	}
}

func (m Model) Init() tea.Cmd {
	return tick()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		m.clock = m.now()
		return m, tick()

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		if m.mode != modeBrowse {
			return m.updateInput(msg)
		}
		return m.updateBrowse(msg)
	}

	if m.mode != modeBrowse {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) updateBrowse(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll

	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}

	case key.Matches(msg, m.keys.Down):
		if m.cursor < m.log.Len()-1 {
			m.cursor++
		}

	case key.Matches(msg, m.keys.New):
		m.kind = m.log.NextKind()
		return m.openInput(modeEntry, "")

	case key.Matches(msg, m.keys.Edit):
		index := m.selectedIndex()
		event, err := m.log.At(index)
		if err != nil {
			m.setError("No entry to edit")
			return m, nil
		}
		m.editIndex = index
		return m.openInput(modeEdit, event.Time)

	case key.Matches(msg, m.keys.Target):
		return m.openInput(modeTarget, m.targetText)

	case key.Matches(msg, m.keys.Break):
		return m.openInput(modeBreak, m.breakText)
	}
	return m, nil
}

func (m Model) openInput(md mode, value string) (tea.Model, tea.Cmd) {
	m.mode = md
	m.message = ""
	m.input.SetValue(value)
	m.input.CursorEnd()
	switch md {
	case modeTarget, modeBreak:
		m.input.Placeholder = "8:00"
	default:
		m.input.Placeholder = "9:30:00 AM"
	}
	return m, m.input.Focus()
}

func (m Model) closeInput() Model {
	m.mode = modeBrowse
	m.editIndex = -1
	m.input.Blur()
	m.input.SetValue("")
	return m
}

func (m Model) updateInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case msg.Type == tea.KeyCtrlC:
		return m, tea.Quit

	case key.Matches(msg, m.keys.Cancel):
		return m.closeInput(), nil

	case key.Matches(msg, m.keys.Toggle):
		if m.mode == modeEntry {
			m.kind = m.kind.Opposite()
		}
		return m, nil

	case key.Matches(msg, m.keys.Submit):
		return m.submit()
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// submit applies the input for the current mode. On error the input stays
// open so the value can be corrected.
func (m Model) submit() (tea.Model, tea.Cmd) {
	value := strings.TrimSpace(m.input.Value())

	switch m.mode {
	case modeEntry:
		if _, err := m.log.Append(value, m.kind); err != nil {
			m.setError(err.Error())
			return m, nil
		}
		slog.Debug("entry recorded", "time", value, "kind", m.kind)
		m.setMessage(fmt.Sprintf("Time %s at %s", m.kind.Label(), value))
		m.kind = m.log.NextKind()
		m.cursor = 0

	case modeEdit:
		if err := m.log.Edit(m.editIndex, value); err != nil {
			m.setError(err.Error())
			return m, nil
		}
		slog.Debug("entry edited", "index", m.editIndex, "time", value)
		m.setMessage("Entry updated to " + value)

	case modeTarget:
		opts, err := accounting.ParseOptions(value, m.breakText)
		if err != nil {
			m.setError(fmt.Sprintf("target %q: %v", value, err))
			return m, nil
		}
		m.opts, m.targetText = opts, value
		m.setMessage("Target set to " + timelog.FormatHM(opts.Target))

	case modeBreak:
		opts, err := accounting.ParseOptions(m.targetText, value)
		if err != nil {
			m.setError(fmt.Sprintf("break %q: %v", value, err))
			return m, nil
		}
		m.opts, m.breakText = opts, value
		m.setMessage("Break set to " + timelog.FormatHM(opts.BreakAllowance))
	}

	return m.closeInput(), nil
}

func (m *Model) setMessage(msg string) {
	m.message = msg
	m.messageError = false
}

func (m *Model) setError(msg string) {
	m.message = msg
	m.messageError = true
}

// selectedIndex maps the cursor row to a log index.
func (m Model) selectedIndex() int {
	return m.log.Len() - 1 - m.cursor
}

func (m Model) summary() accounting.Summary {
	return accounting.Summarize(m.log.Events(), m.opts, m.clock)
}

func (m Model) View() string {
	return renderMainView(m)
}
