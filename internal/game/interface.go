package game

import (
	"context"

	"github.com/lox/fairdice/internal/fairness"
	"github.com/lox/fairdice/internal/probability"
)

// Tone classifies a transcript line so the terminal can style it.
type Tone int

const (
	ToneText Tone = iota
	ToneCommit
	ToneReveal
	ToneMenu
	ToneResult
)

// IO is the terminal the session talks to.
type IO interface {
	// Prompt shows label and blocks until one line of input is available.
	// It returns io.EOF when input is exhausted.
	Prompt(ctx context.Context, label string) (string, error)
	// Show prints one transcript line.
	Show(tone Tone, text string)
	// ShowMatrix renders the probability table.
	ShowMatrix(m *probability.Matrix)
}

// Recorder observes commit-reveal exchanges, e.g. to keep an audit trail.
type Recorder interface {
	Committed(label string, rule fairness.Rule, c *fairness.Commitment)
	Disclosed(label string, d fairness.Disclosure, supplied, result int)
}

type nopRecorder struct{}

func (nopRecorder) Committed(string, fairness.Rule, *fairness.Commitment) {}
func (nopRecorder) Disclosed(string, fairness.Disclosure, int, int)       {}
