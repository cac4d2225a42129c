package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"

	"leavetime/accounting"
	"leavetime/config"
	"leavetime/timelog"
	"leavetime/tui"
)

// App carries what the commands share. Fields left nil get defaults.
type App struct {
	Config *config.Config
	Now    func() time.Time

	// IsInteractive reports whether stdin is a terminal; the bare command
	// opens the TUI only when it is.
	IsInteractive func() bool
	// LaunchTUI runs the terminal UI. Defaults to tui.LaunchTUI.
	LaunchTUI func(tui.Settings) error

	logCloser io.Closer
}

func (app *App) now() time.Time {
	if app.Now != nil {
		return app.Now()
	}
	return timelog.LocalNow()
}

// Close releases what the last run opened, such as the log file. It runs
// after Execute whether or not the command failed, and is safe to call twice.
func (app *App) Close() error {
	if app.logCloser == nil {
		return nil
	}
	err := app.logCloser.Close()
	app.logCloser = nil
	return err
}

// options returns the accounting options from the loaded config.
func (app *App) options() (accounting.Options, error) {
	return accounting.ParseOptions(app.Config.Target, app.Config.Break)
}

// NewRootCmd creates the top-level "leavetime" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	var configPath, target, breakAllowance, logLevel, logFile string

	root := &cobra.Command{
		Use:           "leavetime",
		Short:         "Log clock-in and clock-out times and see when you can leave",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			if target != "" {
				cfg.Target = target
			}
			if breakAllowance != "" {
				cfg.Break = breakAllowance
			}
			if logLevel != "" {
				cfg.LogLevel = logLevel
			}
			if logFile != "" {
				cfg.LogFile = logFile
			}
			if err := cfg.Validate(); err != nil {
				return err
			}
			app.Config = cfg

			closer, err := SetupLogger(cmd.ErrOrStderr(), cfg.LogLevel, cfg.LogFile)
			if err != nil {
				return err
			}
			app.logCloser = closer
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.IsInteractive != nil && app.IsInteractive() {
				return runTUI(app, nil)
			}
			return cmd.Help()
		},
	}

	root.PersistentFlags().StringVar(&configPath, "config", "", "Path to the TOML config file")
	root.PersistentFlags().StringVar(&target, "target", "", "Daily target as H:MM (default from config, 08:00)")
	root.PersistentFlags().StringVar(&breakAllowance, "break", "", "Break allowance as H:MM (default from config, 01:00)")
	root.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level: debug, info, warn, error")
	root.PersistentFlags().StringVar(&logFile, "log-file", "", "Write logs to this file instead of stderr")

	root.AddCommand(
		newStatusCmd(app),
		newPairsCmd(app),
		newValidateCmd(app),
		newPromptCmd(app),
		newTUICmd(app),
	)

	return root
}

func newTUICmd(app *App) *cobra.Command {
	var flags eventFlags

	cmd := &cobra.Command{
		Use:   "tui",
		Short: "Open the terminal UI",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			events, err := flags.events(cmd.InOrStdin())
			if err != nil {
				return err
			}
			return runTUI(app, events)
		},
	}
	flags.register(cmd)

	return cmd
}

// runTUI opens the terminal UI with the log seeded from events.
func runTUI(app *App, events []timelog.Event) error {
	opts, err := app.options()
	if err != nil {
		return err
	}
	launch := app.LaunchTUI
	if launch == nil {
		launch = tui.LaunchTUI
	}
	// Log lines on stderr would tear the alt screen.
	if app.Config.LogFile == "" {
		slog.SetDefault(slog.New(slog.NewTextHandler(io.Discard, nil)))
	}
	slog.Debug("launching tui", "target", app.Config.Target, "break", app.Config.Break)
	return launch(tui.Settings{
		Options: opts,
		Target:  app.Config.Target,
		Break:   app.Config.Break,
		Now:     app.Now,
		Events:  events,
	})
}

// eventFlags collects events from --file, --in and --out.
type eventFlags struct {
	file string
	ins  []string
	outs []string
}

func (f *eventFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.file, "file", "f", "", "Read events from a file of \"<time> <in|out>\" lines (- for stdin)")
	cmd.Flags().StringArrayVar(&f.ins, "in", nil, "Clock-in time (repeatable)")
	cmd.Flags().StringArrayVar(&f.outs, "out", nil, "Clock-out time (repeatable)")
}

// events returns file events first, then --in and --out values. Flag
// values go through the same validation as interactive entry; file lines
// are taken as they are.
func (f *eventFlags) events(stdin io.Reader) ([]timelog.Event, error) {
	var fromFile []timelog.Event
	if f.file != "" {
		r := stdin
		if f.file != "-" {
			file, err := os.Open(f.file)
			if err != nil {
				return nil, fmt.Errorf("failed to open events file: %w", err)
			}
			defer file.Close()
			r = file
		}
		events, err := timelog.ReadEvents(r)
		if err != nil {
			return nil, err
		}
		fromFile = events
	}

	log := timelog.NewLog(fromFile...)
	for _, value := range f.ins {
		if _, err := log.Append(value, timelog.KindIn); err != nil {
			return nil, fmt.Errorf("--in %q: %w", value, err)
		}
	}
	for _, value := range f.outs {
		if _, err := log.Append(value, timelog.KindOut); err != nil {
			return nil, fmt.Errorf("--out %q: %w", value, err)
		}
	}
	return log.Events(), nil
}
