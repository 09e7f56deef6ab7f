package dice

import "fmt"

// Set is the ordered list of dice a game is played with.
type Set []Dice

// Clone returns an independent copy of the set.
func (s Set) Clone() Set {
	out := make(Set, len(s))
	copy(out, s)
	return out
}

// Pool is the working copy of a Set that players claim dice from. Claims are
// by position in the pool as it currently stands, so indexes shift after
// every claim.
type Pool struct {
	dice []Dice
}

// NewPool creates a pool holding a copy of the set.
func NewPool(s Set) *Pool {
	return &Pool{dice: s.Clone()}
}

// Len returns the number of unclaimed dice.
func (p *Pool) Len() int {
	return len(p.dice)
}

// At returns the die at position i without claiming it.
func (p *Pool) At(i int) Dice {
	return p.dice[i]
}

// Remaining returns a copy of the unclaimed dice in pool order.
func (p *Pool) Remaining() Set {
	return Set(p.dice).Clone()
}

// Claim removes and returns the die at position i.
func (p *Pool) Claim(i int) (Dice, error) {
	if i < 0 || i >= len(p.dice) {
		return Dice{}, fmt.Errorf("claim index %d out of range [0,%d)", i, len(p.dice))
	}

	d := p.dice[i]
	p.dice = append(p.dice[:i:i], p.dice[i+1:]...)
	return d, nil
}
