package fairness

import (
	"errors"
	"fmt"
)

// ErrUnknownRule is returned when a rule name is not one of the known rules.
var ErrUnknownRule = errors.New("unknown combine rule")

// Rule names how a disclosed value and the other party's contribution are
// combined into the result of an exchange. It is stored alongside each
// exchange so a transcript can be re-derived without knowing the game.
type Rule string

const (
	// RuleSum adds both contributions modulo rangeMax+1.
	RuleSum Rule = "sum"
	// RuleMatch yields 0 when the contribution equals the value, 1 otherwise.
	RuleMatch Rule = "match"
)

// Combine applies the rule to value and supplied, both drawn from
// [0, rangeMax].
func (r Rule) Combine(rangeMax, value, supplied int) (int, error) {
	if rangeMax < 0 {
		return 0, ErrNegativeRange
	}
	switch r {
	case RuleSum:
		n := rangeMax + 1
		return ((value+supplied)%n + n) % n, nil
	case RuleMatch:
		if value == supplied {
			return 0, nil
		}
		return 1, nil
	default:
		return 0, fmt.Errorf("%w %q", ErrUnknownRule, string(r))
	}
}
