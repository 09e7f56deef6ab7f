// Package audit keeps a verifiable record of every commit-reveal exchange in
// a session and stores it as an HCL file the player can check later with
// `fairdice verify --audit <file>`.
package audit

import (
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"

	"github.com/lox/fairdice/internal/dice"
	"github.com/lox/fairdice/internal/fairness"
)

// Entry is one disclosed exchange.
type Entry struct {
	Label       string
	Rule        fairness.Rule
	Range       int
	MAC         string
	Value       int
	Key         string
	Supplied    int
	Result      int
	CommittedAt time.Time
	DisclosedAt time.Time
}

// Log is the complete record of one session.
type Log struct {
	Session   string
	Dice      []string
	Exchanges []Entry
}

// Recorder collects entries as a session runs. It is used from the single
// goroutine driving the session and is not safe for concurrent use.
type Recorder struct {
	clock   quartz.Clock
	logger  *log.Logger
	log     Log
	pending map[string]Entry
}

// NewRecorder starts an empty log for the session.
func NewRecorder(clock quartz.Clock, logger *log.Logger, sessionID string, set dice.Set) *Recorder {
	specs := make([]string, len(set))
	for i, d := range set {
		specs[i] = d.String()
	}
	return &Recorder{
		clock:   clock,
		logger:  logger,
		log:     Log{Session: sessionID, Dice: specs},
		pending: make(map[string]Entry),
	}
}

// Committed notes the moment a mac was published.
func (r *Recorder) Committed(label string, rule fairness.Rule, c *fairness.Commitment) {
	r.pending[label] = Entry{
		Label:       label,
		Rule:        rule,
		Range:       c.Range(),
		MAC:         c.MAC(),
		CommittedAt: r.clock.Now(),
	}
}

// Disclosed completes the entry started by Committed. Exchanges abandoned
// before disclosure never reach the log.
func (r *Recorder) Disclosed(label string, d fairness.Disclosure, supplied, result int) {
	e, ok := r.pending[label]
	if !ok {
		r.logger.Warn("disclosure without commitment", "label", label)
		return
	}
	delete(r.pending, label)

	e.Value = d.Value
	e.Key = d.Key
	e.Supplied = supplied
	e.Result = result
	e.DisclosedAt = r.clock.Now()
	r.log.Exchanges = append(r.log.Exchanges, e)
	r.logger.Debug("exchange recorded", "label", label, "value", d.Value, "supplied", supplied)
}

// Log returns a copy of everything recorded so far.
func (r *Recorder) Log() Log {
	out := r.log
	out.Dice = append([]string(nil), r.log.Dice...)
	out.Exchanges = append([]Entry(nil), r.log.Exchanges...)
	return out
}

// Verify checks a single exchange: the mac matches the disclosed value, both
// contributions are in range, and the recorded result follows from them under
// the entry's rule.
func (e Entry) Verify() error {
	var errs []error
	d := fairness.Disclosure{Value: e.Value, Key: e.Key}
	if !fairness.Verify(d, e.MAC) {
		errs = append(errs, fmt.Errorf("exchange %q: mac does not match value %d", e.Label, e.Value))
	}
	if e.Value < 0 || e.Value > e.Range {
		errs = append(errs, fmt.Errorf("exchange %q: value %d outside [0,%d]", e.Label, e.Value, e.Range))
	}
	if e.Supplied < 0 || e.Supplied > e.Range {
		errs = append(errs, fmt.Errorf("exchange %q: supplied %d outside [0,%d]", e.Label, e.Supplied, e.Range))
	}
	if want, err := e.Rule.Combine(e.Range, e.Value, e.Supplied); err != nil {
		errs = append(errs, fmt.Errorf("exchange %q: %w", e.Label, err))
	} else if want != e.Result {
		errs = append(errs, fmt.Errorf("exchange %q: result %d, want %d from %s of %d and %d",
			e.Label, e.Result, want, e.Rule, e.Value, e.Supplied))
	}
	if e.DisclosedAt.Before(e.CommittedAt) {
		errs = append(errs, fmt.Errorf("exchange %q: disclosed before it was committed", e.Label))
	}
	return errors.Join(errs...)
}

// Verify checks every exchange in the log. All problems are reported, joined.
func (l Log) Verify() error {
	var errs []error
	for _, e := range l.Exchanges {
		if err := e.Verify(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
