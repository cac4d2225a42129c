package cli

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"leavetime/accounting"
	"leavetime/timelog"
)

func newStatusCmd(app *App) *cobra.Command {
	var flags eventFlags

	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show worked time, time left and when you can leave",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := app.options()
			if err != nil {
				return err
			}
			events, err := flags.events(cmd.InOrStdin())
			if err != nil {
				return err
			}

			summary := accounting.Summarize(events, opts, app.now())
			slog.Debug("status computed", "events", len(events), "segments", len(summary.Segments), "worked_min", accounting.Minutes(summary.Worked))

			fmt.Fprint(cmd.OutOrStdout(), FormatSummary(summary, opts))
			return nil
		},
	}
	flags.register(cmd)

	return cmd
}

func newPairsCmd(app *App) *cobra.Command {
	var flags eventFlags

	cmd := &cobra.Command{
		Use:   "pairs",
		Short: "List in/out pairs with their durations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			events, err := flags.events(cmd.InOrStdin())
			if err != nil {
				return err
			}

			segments := accounting.PairSegments(accounting.Normalize(events))
			for _, segment := range segments {
				if _, err := segment.Duration(); err != nil {
					slog.Warn("segment skipped", "in_index", segment.InIndex(), "out_index", segment.OutIndex(), "error", err)
				}
			}

			fmt.Fprint(cmd.OutOrStdout(), FormatPairs(segments))
			return nil
		},
	}
	flags.register(cmd)

	return cmd
}

// errInvalidTimes is returned by validate when any argument was rejected.
var errInvalidTimes = errors.New("invalid time values")

func newValidateCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "validate TIME...",
		Short: "Check clock times against the accepted formats",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			invalid := 0
			for _, arg := range args {
				if err := timelog.ValidateClock(arg); err != nil {
					invalid++
					fmt.Fprintf(out, "%s  %q: %v\n", StyleRed.Render("invalid"), arg, err)
					continue
				}
				fmt.Fprintf(out, "%s  %q\n", StyleGreen.Render("ok"), arg)
			}
			if invalid > 0 {
				return fmt.Errorf("%w: %d of %d", errInvalidTimes, invalid, len(args))
			}
			return nil
		},
	}
}
