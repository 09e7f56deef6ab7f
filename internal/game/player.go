package game

// Player identifies one of the two sides of a match.
type Player int

const (
	Human Player = iota
	Computer
)

// Other returns the opposing side.
func (p Player) Other() Player {
	if p == Human {
		return Computer
	}
	return Human
}

func (p Player) String() string {
	switch p {
	case Human:
		return "human"
	case Computer:
		return "computer"
	default:
		return "unknown"
	}
}

// possessive is used in transcript lines such as "It's time for your throw".
func (p Player) possessive() string {
	if p == Human {
		return "your"
	}
	return "my"
}
