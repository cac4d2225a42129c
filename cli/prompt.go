package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"leavetime/accounting"
	"leavetime/timelog"
)

func newPromptCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "prompt",
		Short: "Enter clock times one by one and see the running totals",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := app.options()
			if err != nil {
				return err
			}
			return runPrompt(app, cmd.OutOrStdout(), timelog.NewLog(), opts, runEntryForm)
		},
	}
}

// entryFields holds the values bound to one entry form.
type entryFields struct {
	time string
	kind timelog.Kind
	more bool
}

func leaveHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	t.Focused.Title = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(ColorHeader)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(ColorGreen)
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(ColorFg)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(ColorHeader)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(ColorHeader)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(ColorDim)
	t.Focused.ErrorMessage = lipgloss.NewStyle().Foreground(ColorRed)

	t.Blurred.Title = lipgloss.NewStyle().Foreground(ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(ColorDim)

	return t
}

// newEntryForm builds the form for one clock entry. The time input uses the
// same validation as the log, so bad values never leave the form.
func newEntryForm(fields *entryFields) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Time").
				Placeholder("eg: 10:02:17 AM").
				Value(&fields.time).
				Validate(timelog.ValidateClock),
			huh.NewSelect[timelog.Kind]().
				Title("Type").
				Options(
					huh.NewOption("In", timelog.KindIn),
					huh.NewOption("Out", timelog.KindOut),
				).
				Value(&fields.kind),
			huh.NewConfirm().
				Title("Add another entry?").
				Value(&fields.more),
		),
	).WithTheme(leaveHuhTheme()).WithShowHelp(false)
}

// recordEntry appends the form's values and reports the outcome.
func recordEntry(log *timelog.Log, fields entryFields) (string, error) {
	if _, err := log.Append(fields.time, fields.kind); err != nil {
		return "", err
	}
	return fmt.Sprintf("Time %s at %s", fields.kind.Label(), fields.time), nil
}

func runEntryForm(fields *entryFields) error {
	return newEntryForm(fields).Run()
}

// runPrompt asks for entries until fill reports no more or the user aborts.
// Each entry starts with the kind that should come next.
func runPrompt(app *App, out io.Writer, log *timelog.Log, opts accounting.Options, fill func(*entryFields) error) error {
	for {
		fields := entryFields{kind: log.NextKind(), more: true}
		if err := fill(&fields); err != nil {
			if errors.Is(err, huh.ErrUserAborted) {
				return nil
			}
			return err
		}

		msg, err := recordEntry(log, fields)
		if err != nil {
			fmt.Fprintln(out, StyleRed.Render(err.Error()))
			continue
		}
		fmt.Fprintln(out, StyleGreen.Render(msg))
		fmt.Fprint(out, FormatSummary(accounting.Summarize(log.Events(), opts, app.now()), opts))

		if !fields.more {
			return nil
		}
	}
}
