package game

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/lox/fairdice/internal/fairness"
)

const selectionPrompt = "Your selection: "

// exchange describes one commit -> prompt -> disclose -> combine round trip.
// Turn order and both throw rounds are all instances of it.
type exchange struct {
	label    string
	rangeMax int    // computer commits to a value in [0, rangeMax]
	what     string // what the human is asked for, used in errors
	maxInput int    // human answers with a value in [0, maxInput]
	announce func(mac string)
	reveal   func(d fairness.Disclosure, supplied, result int)
	rule     fairness.Rule
}

type exchangeResult struct {
	committed int
	supplied  int
	result    int
}

// exchange runs ex. The commitment is created and its mac published before
// the human is asked anything, and disclosed only after the human answered.
// On any error the commitment is dropped undisclosed.
func (s *Session) exchange(ctx context.Context, ex exchange) (exchangeResult, error) {
	c, err := fairness.Commit(s.source, ex.rangeMax)
	if err != nil {
		return exchangeResult{}, fmt.Errorf("%s: %w", ex.label, err)
	}
	s.recorder.Committed(ex.label, ex.rule, c)
	s.logger.Debug("committed", "exchange", ex.label, "range", ex.rangeMax, "mac", c.MAC())

	ex.announce(c.MAC())
	s.showChoices(ex.maxInput)

	supplied, err := s.promptNumber(ctx, ex.what, 0, ex.maxInput)
	if err != nil {
		s.logger.Debug("exchange abandoned", "exchange", ex.label, "error", err)
		return exchangeResult{}, err
	}

	d := c.Disclose()
	result, err := ex.rule.Combine(ex.rangeMax, d.Value, supplied)
	if err != nil {
		return exchangeResult{}, fmt.Errorf("%s: %w", ex.label, err)
	}
	ex.reveal(d, supplied, result)
	s.recorder.Disclosed(ex.label, d, supplied, result)
	s.logger.Debug("disclosed", "exchange", ex.label, "value", d.Value, "supplied", supplied, "result", result)

	return exchangeResult{committed: d.Value, supplied: supplied, result: result}, nil
}

func (s *Session) showChoices(highest int) {
	for i := 0; i <= highest; i++ {
		s.io.Show(ToneMenu, fmt.Sprintf("%d - %d", i, i))
	}
	s.showCommands()
}

func (s *Session) showCommands() {
	s.io.Show(ToneMenu, "X - exit")
	s.io.Show(ToneMenu, "? - help")
}

// promptNumber asks until it gets something other than a help request. Exit
// and end of input become ErrExit; anything outside [lo, hi] ends the
// session with an *InvalidSelectionError.
func (s *Session) promptNumber(ctx context.Context, what string, lo, hi int) (int, error) {
	for {
		line, err := s.io.Prompt(ctx, selectionPrompt)
		if errors.Is(err, io.EOF) {
			return 0, ErrExit
		}
		if err != nil {
			return 0, err
		}

		input := strings.TrimSpace(line)
		switch strings.ToLower(input) {
		case "x":
			return 0, ErrExit
		case "?":
			s.showHelp()
			continue
		}

		n, err := strconv.Atoi(input)
		if err != nil || n < lo || n > hi {
			return 0, &InvalidSelectionError{What: what, Input: input, Min: lo, Max: hi}
		}
		return n, nil
	}
}

func (s *Session) showHelp() {
	s.io.Show(ToneText, "Help Menu:")
	s.io.ShowMatrix(s.matrix)
	s.io.Show(ToneText, "Here is the probability table")
}
