package game

import (
	"fmt"

	"github.com/lox/fairdice/internal/dice"
	"github.com/lox/fairdice/internal/fairness"
)

// Throw is one scored use of a claimed die.
type Throw struct {
	Round     int
	Player    Player
	Committed int
	Supplied  int
	Index     int
	Face      int
}

// Outcome is the final state of a completed match.
type Outcome struct {
	First         Player
	HumanDie      dice.Dice
	ComputerDie   dice.Dice
	HumanScore    int
	ComputerScore int
	Throws        []Throw
}

// Winner returns the winning side; ok is false on a tie.
func (o Outcome) Winner() (p Player, ok bool) {
	switch {
	case o.HumanScore > o.ComputerScore:
		return Human, true
	case o.ComputerScore > o.HumanScore:
		return Computer, true
	default:
		return Human, false
	}
}

// String is the result line shown to the player.
func (o Outcome) String() string {
	winner, ok := o.Winner()
	switch {
	case !ok:
		return "It's a tie!"
	case winner == Human:
		return fmt.Sprintf("You win (%d > %d)", o.HumanScore, o.ComputerScore)
	default:
		return fmt.Sprintf("I win (%d > %d)", o.ComputerScore, o.HumanScore)
	}
}

// ThrowIndex combines the committed and supplied contributions into a face
// index in [0, dice.Faces).
func ThrowIndex(committed, supplied int) int {
	i, _ := fairness.RuleSum.Combine(dice.Faces-1, committed, supplied)
	return i
}
