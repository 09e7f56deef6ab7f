package game

import (
	"context"
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/lox/fairdice/internal/dice"
	"github.com/lox/fairdice/internal/fairness"
	"github.com/lox/fairdice/internal/probability"
)

// Session is a single match. It is driven by one goroutine and is not safe
// for concurrent use.
type Session struct {
	io       IO
	source   fairness.Source
	recorder Recorder
	logger   *log.Logger

	// matrix is computed from the full set and never sees claims.
	matrix *probability.Matrix
	// pool is the working copy players claim dice from.
	pool *dice.Pool

	started bool
}

// NewSession prepares a match over set. The set is copied; later changes to
// it have no effect on the session.
func NewSession(set dice.Set, io IO, opts ...SessionOption) (*Session, error) {
	if len(set) < dice.MinDice {
		return nil, fmt.Errorf("need at least %d dice, got %d", dice.MinDice, len(set))
	}
	if io == nil {
		return nil, fmt.Errorf("io is required")
	}

	cfg := defaultSessionConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	return &Session{
		io:       io,
		source:   cfg.source,
		recorder: cfg.recorder,
		logger:   cfg.logger,
		matrix:   probability.Compute(set),
		pool:     dice.NewPool(set),
	}, nil
}

// Matrix returns the probability table for the session's dice.
func (s *Session) Matrix() *probability.Matrix {
	return s.matrix
}

// Run plays the match to the end. It returns ErrExit if the player leaves,
// an *InvalidSelectionError on bad input, an error wrapping
// fairness.ErrRandomSource if randomness fails, or ctx.Err() on cancellation.
// A session can only be run once.
func (s *Session) Run(ctx context.Context) (Outcome, error) {
	if s.started {
		return Outcome{}, ErrAlreadyRun
	}
	s.started = true

	var p phase = turnOrder{}
	for {
		if r, ok := p.(result); ok {
			s.logger.Info("match finished", "human", r.outcome.HumanScore, "computer", r.outcome.ComputerScore)
			s.io.Show(ToneResult, r.outcome.String())
			return r.outcome, nil
		}

		s.logger.Debug("entering phase", "phase", p)
		next, err := p.run(ctx, s)
		if err != nil {
			s.logger.Debug("phase ended early", "phase", p, "error", err)
			return Outcome{}, err
		}
		p = next
	}
}

// claimRandom takes a uniformly random die from the pool for the computer.
// The draw goes through a commitment like every other computer choice, but
// nothing is disclosed: the human has no stake in which index is drawn.
func (s *Session) claimRandom() (dice.Dice, error) {
	c, err := fairness.Commit(s.source, s.pool.Len()-1)
	if err != nil {
		return dice.Dice{}, fmt.Errorf("draw die: %w", err)
	}
	return s.pool.Claim(c.Disclose().Value)
}

func (s *Session) say(format string, args ...any) {
	s.io.Show(ToneText, fmt.Sprintf(format, args...))
}
