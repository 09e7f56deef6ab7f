package main

import (
	"errors"
	"fmt"

	"github.com/lox/fairdice/internal/audit"
	"github.com/lox/fairdice/internal/fairness"
	"github.com/lox/fairdice/internal/game"
)

// VerifyCmd checks disclosures against published macs, either one triple
// from the flags or every exchange in an audit file.
type VerifyCmd struct {
	Audit string `help:"Audit file written by 'play --audit-file'" type:"existingfile" xor:"source"`
	Value *int   `help:"Disclosed value" xor:"source"`
	Key   string `help:"Disclosed key (64 hex characters)"`
	MAC   string `name:"mac" help:"HMAC published before the value was disclosed"`
}

func (c *VerifyCmd) Run(app *App) error {
	console := app.console()

	if c.Audit != "" {
		return c.verifyFile(app, console.Show)
	}
	if c.Value == nil || c.Key == "" || c.MAC == "" {
		return errors.New("either --audit or all of --value, --key and --mac are required")
	}

	d := fairness.Disclosure{Value: *c.Value, Key: c.Key}
	if !fairness.Verify(d, c.MAC) {
		console.Show(game.ToneText, fmt.Sprintf("FAILED value=%d HMAC=%s", d.Value, c.MAC))
		return errVerificationFailed
	}
	console.Show(game.ToneReveal, fmt.Sprintf("OK value=%d HMAC=%s", d.Value, c.MAC))
	return nil
}

func (c *VerifyCmd) verifyFile(app *App, show func(game.Tone, string)) error {
	l, err := audit.ReadFile(c.Audit)
	if err != nil {
		return err
	}
	app.logger.Debug("audit loaded", "session", l.Session, "exchanges", len(l.Exchanges))

	show(game.ToneText, fmt.Sprintf("Session %s, dice %v", l.Session, l.Dice))
	var errs []error
	for _, e := range l.Exchanges {
		if err := e.Verify(); err != nil {
			errs = append(errs, err)
			show(game.ToneText, fmt.Sprintf("FAILED %-12s value=%d", e.Label, e.Value))
			continue
		}
		show(game.ToneReveal, fmt.Sprintf("OK     %-12s value=%d", e.Label, e.Value))
	}

	if len(errs) > 0 {
		return fmt.Errorf("%w: %d of %d exchanges: %w", errVerificationFailed, len(errs), len(l.Exchanges), errors.Join(errs...))
	}
	return nil
}
