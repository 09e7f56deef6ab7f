package game

import (
	"context"
	"fmt"

	"github.com/lox/fairdice/internal/dice"
	"github.com/lox/fairdice/internal/fairness"
)

// throwRounds is the number of scored throws per match.
const throwRounds = 2

// phase is one state of the match. Each implementation carries only the data
// that exists at that point; run returns the following phase.
type phase interface {
	run(ctx context.Context, s *Session) (phase, error)
	String() string
}

// turnOrder decides who moves first: the computer commits to 0 or 1 and the
// human tries to guess it.
type turnOrder struct{}

func (turnOrder) String() string { return "turn-order" }

func (turnOrder) run(ctx context.Context, s *Session) (phase, error) {
	res, err := s.exchange(ctx, exchange{
		label:    "turn-order",
		rangeMax: 1,
		what:     "guess",
		maxInput: 1,
		announce: func(mac string) {
			s.say("Let's determine who makes the first move")
			s.io.Show(ToneCommit, fmt.Sprintf("I selected a random value in the range 0..1 (HMAC=%s)", mac))
			s.say("Try to guess my selection")
		},
		reveal: func(d fairness.Disclosure, _, _ int) {
			s.io.Show(ToneReveal, fmt.Sprintf("My selection: %d (KEY=%s)", d.Value, d.Key))
		},
		// A match (0) hands the first move to the human.
		rule: fairness.RuleMatch,
	})
	if err != nil {
		return nil, err
	}

	first := Player(res.result)
	if first == Human {
		s.say("You make the first move")
		return selection{first: Human}, nil
	}

	d, err := s.claimRandom()
	if err != nil {
		return nil, err
	}
	s.say("I make the first move and choose the [%s] dice", d)
	return selection{first: Computer, computerDie: &d}, nil
}

// selection lets the human claim a die. When the human moved first the
// computer claims one from what is left afterwards.
type selection struct {
	first Player
	// computerDie is set when the computer already claimed during turn order.
	computerDie *dice.Dice
}

func (selection) String() string { return "selection" }

func (sel selection) run(ctx context.Context, s *Session) (phase, error) {
	s.say("Choose your dice:")
	for i := 0; i < s.pool.Len(); i++ {
		s.io.Show(ToneMenu, fmt.Sprintf("%d - %s", i, s.pool.At(i)))
	}
	s.showCommands()

	idx, err := s.promptNumber(ctx, "dice index", 0, s.pool.Len()-1)
	if err != nil {
		return nil, err
	}
	human, err := s.pool.Claim(idx)
	if err != nil {
		return nil, err
	}
	s.say("You choose the [%s] dice", human)

	var computer dice.Dice
	if sel.computerDie != nil {
		computer = *sel.computerDie
	} else {
		computer, err = s.claimRandom()
		if err != nil {
			return nil, err
		}
		s.say("I choose the [%s] dice", computer)
	}

	return throwRound{
		number: 1,
		first:  sel.first,
		dice:   [2]dice.Dice{Human: human, Computer: computer},
	}, nil
}

// throwRound is one scored throw. Round 1 scores the first mover, round 2 the
// other side. In both the computer commits and the human adds a number.
type throwRound struct {
	number int
	first  Player
	dice   [2]dice.Dice
	scores [2]int
	throws []Throw
}

func (r throwRound) String() string { return fmt.Sprintf("round-%d", r.number) }

func (r throwRound) scorer() Player {
	if r.number%2 == 1 {
		return r.first
	}
	return r.first.Other()
}

func (r throwRound) run(ctx context.Context, s *Session) (phase, error) {
	scorer := r.scorer()

	res, err := s.exchange(ctx, exchange{
		label:    r.String(),
		rangeMax: dice.Faces - 1,
		what:     "number",
		maxInput: dice.Faces - 1,
		announce: func(mac string) {
			s.say("It's time for %s throw", scorer.possessive())
			s.say("I selected a random value in the range 0..%d", dice.Faces-1)
			s.io.Show(ToneCommit, fmt.Sprintf("(HMAC=%s)", mac))
			s.say("Add your number modulo %d", dice.Faces)
		},
		reveal: func(d fairness.Disclosure, supplied, result int) {
			s.io.Show(ToneReveal, fmt.Sprintf("My number is %d", d.Value))
			s.io.Show(ToneReveal, fmt.Sprintf("(KEY=%s)", d.Key))
			s.say("The result is %d + %d = %d (mod %d)", d.Value, supplied, result, dice.Faces)
		},
		rule: fairness.RuleSum,
	})
	if err != nil {
		return nil, err
	}

	face := r.dice[scorer].Face(res.result)
	if scorer == Human {
		s.say("Your throw is %d", face)
	} else {
		s.say("My throw is %d", face)
	}

	next := r
	next.scores[scorer] += face
	next.throws = append(append([]Throw(nil), r.throws...), Throw{
		Round:     r.number,
		Player:    scorer,
		Committed: res.committed,
		Supplied:  res.supplied,
		Index:     res.result,
		Face:      face,
	})

	if r.number < throwRounds {
		next.number++
		return next, nil
	}
	return result{outcome: Outcome{
		First:         r.first,
		HumanDie:      r.dice[Human],
		ComputerDie:   r.dice[Computer],
		HumanScore:    next.scores[Human],
		ComputerScore: next.scores[Computer],
		Throws:        next.throws,
	}}, nil
}

// result is terminal; Session.Run reports it instead of running it.
type result struct {
	outcome Outcome
}

func (result) String() string { return "result" }

func (result) run(context.Context, *Session) (phase, error) {
	return nil, fmt.Errorf("result is a terminal phase")
}
