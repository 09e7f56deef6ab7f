package main

import (
	"crypto/rand"
	"errors"
	"fmt"

	"github.com/lox/fairdice/internal/audit"
	"github.com/lox/fairdice/internal/game"
	"github.com/lox/fairdice/internal/sessionid"
)

// PlayCmd plays one match on the terminal.
type PlayCmd struct {
	Dice      []string `arg:"" optional:"" help:"Dice as six comma separated faces, e.g. 2,2,4,4,9,9 (at least 3)"`
	AuditFile string   `help:"Write an HCL audit transcript of every disclosed exchange" type:"path"`
}

func (c *PlayCmd) Run(app *App) error {
	set, err := app.diceSet(c.Dice)
	if err != nil {
		return err
	}

	id, err := sessionid.New(app.clock, rand.Reader)
	if err != nil {
		return fmt.Errorf("failed to create session id: %w", err)
	}
	logger := app.logger.With("session", id)

	recorder := audit.NewRecorder(app.clock, logger, id, set)
	console := app.console()
	console.Banner(fmt.Sprintf("fairdice %s", id))

	session, err := game.NewSession(set, console,
		game.WithLogger(logger),
		game.WithRecorder(recorder),
	)
	if err != nil {
		return err
	}

	_, runErr := session.Run(app.ctx)
	if err := c.writeAudit(app, recorder.Log()); err != nil {
		return errors.Join(runErr, err)
	}

	if errors.Is(runErr, game.ErrExit) {
		console.Show(game.ToneText, "Game exited.")
		return nil
	}
	var invalid *game.InvalidSelectionError
	if errors.As(runErr, &invalid) {
		console.Errorf("%s", invalid.Error())
		return shownError{runErr}
	}
	return runErr
}

// writeAudit stores whatever was disclosed, including from aborted matches.
func (c *PlayCmd) writeAudit(app *App, l audit.Log) error {
	path := c.AuditFile
	if path == "" {
		path = app.cfg.Audit.File
	}
	if path == "" {
		return nil
	}
	if err := audit.WriteFile(path, l); err != nil {
		return err
	}
	app.logger.Info("audit written", "path", path, "exchanges", len(l.Exchanges))
	return nil
}
