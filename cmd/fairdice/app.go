package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"

	"github.com/lox/fairdice/internal/config"
	"github.com/lox/fairdice/internal/dice"
	"github.com/lox/fairdice/internal/display"
	"github.com/lox/fairdice/internal/fairness"
	"github.com/lox/fairdice/internal/game"
)

// Exit codes. Leaving through the exit command is a clean exit.
const (
	exitOK          = 0
	exitUsage       = 1
	exitInvalid     = 2
	exitRandom      = 3
	exitVerifyFail  = 4
	exitInterrupted = 130
)

var errVerificationFailed = errors.New("verification failed")

// shownError marks an error the console already printed in the transcript.
type shownError struct {
	err error
}

func (e shownError) Error() string { return e.err.Error() }
func (e shownError) Unwrap() error { return e.err }

// App carries everything the subcommands share.
type App struct {
	ctx    context.Context
	cancel context.CancelFunc
	cfg    *config.Config
	logger *log.Logger
	clock  quartz.Clock
	in     io.Reader
	out    io.Writer

	logFile *os.File
}

func newApp(cli *CLI, in io.Reader, out io.Writer) (*App, error) {
	cfg, err := config.Load(cli.Config)
	if err != nil {
		return nil, err
	}
	if cli.LogLevel != "" {
		cfg.Log.Level = cli.LogLevel
	}
	if cli.LogFile != "" {
		cfg.Log.File = cli.LogFile
	}
	if cli.NoColor {
		off := false
		cfg.UI.Color = &off
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	app := &App{
		cfg:   cfg,
		clock: quartz.NewReal(),
		in:    in,
		out:   out,
	}
	if err := app.setupLogger(); err != nil {
		return nil, err
	}
	app.ctx, app.cancel = setupSignalHandler(app.logger)
	app.logger.Debug("configuration loaded", "config", cli.Config, "level", cfg.Log.Level)
	return app, nil
}

// setupLogger sends diagnostics to the configured file, or to stderr so the
// transcript on stdout stays clean.
func (a *App) setupLogger() error {
	level, err := log.ParseLevel(a.cfg.Log.Level)
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", a.cfg.Log.Level, err)
	}

	var w io.Writer = os.Stderr
	if a.cfg.Log.File != "" {
		f, err := os.OpenFile(a.cfg.Log.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("failed to open log file: %w", err)
		}
		a.logFile = f
		w = f
	}

	a.logger = log.NewWithOptions(w, log.Options{
		Level:           level,
		ReportTimestamp: true,
		TimeFormat:      time.TimeOnly,
		Prefix:          "fairdice",
	})
	return nil
}

// Close releases the log file and signal handler. It is safe to call twice.
func (a *App) Close() {
	if a.cancel != nil {
		a.cancel()
	}
	if a.logFile != nil {
		if err := a.logFile.Close(); err != nil {
			fmt.Fprintf(os.Stderr, "failed to close log file: %v\n", err)
		}
		a.logFile = nil
	}
}

func (a *App) console() *display.Console {
	opts := []display.ConsoleOption{display.WithLogger(a.logger)}
	if !a.cfg.ColorEnabled() {
		opts = append(opts, display.WithoutColor())
	}
	return display.NewConsole(a.in, a.out, opts...)
}

// diceSet parses specs from the command line, falling back to the config file.
func (a *App) diceSet(specs []string) (dice.Set, error) {
	if len(specs) == 0 {
		specs = a.cfg.Dice
	}
	return dice.ParseSet(specs)
}

// report prints err to w unless it was already shown and returns the exit
// code for it.
func report(w io.Writer, err error) int {
	var shown shownError
	if !errors.As(err, &shown) {
		fmt.Fprintf(w, "fairdice: %v\n", err)
	}
	return exitCode(err)
}

// exitCode maps an error returned by a subcommand to the process exit code.
func exitCode(err error) int {
	var (
		formatErr  *dice.InputFormatError
		invalidErr *game.InvalidSelectionError
	)
	switch {
	case err == nil:
		return exitOK
	case errors.As(err, &formatErr):
		return exitUsage
	case errors.As(err, &invalidErr):
		return exitInvalid
	case errors.Is(err, fairness.ErrRandomSource):
		return exitRandom
	case errors.Is(err, errVerificationFailed):
		return exitVerifyFail
	case errors.Is(err, context.Canceled):
		return exitInterrupted
	default:
		return exitUsage
	}
}
