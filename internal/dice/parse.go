package dice

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

const (
	exampleDie = "2,2,4,4,9,9"
	exampleSet = "2,2,4,4,9,9 1,1,6,6,8,8 3,3,5,5,7,7"
)

var specPattern = regexp.MustCompile(`^(?:[1-9],){5}[1-9]$`)

var (
	// ErrTooFewDice is returned when fewer than MinDice specs are given.
	ErrTooFewDice = errors.New("too few dice")

	errFaceCount = errors.New("wrong number of faces")
	errFaceRange = errors.New("face value out of range")
	errSyntax    = errors.New("malformed spec")
)

// InputFormatError reports a dice specification that violates the
// "six comma-separated digits 1-9, at least three dice" format.
type InputFormatError struct {
	Spec   string
	Reason error
}

func (e *InputFormatError) Error() string {
	if errors.Is(e.Reason, ErrTooFewDice) {
		return fmt.Sprintf("ARGS LENGTH ERROR: You must provide at least %d dice (%d numbers each). Example: %s",
			MinDice, Faces, exampleSet)
	}
	return fmt.Sprintf("INVALID DICE FORMAT '%s': The dice must have exactly %d faces with integer numbers between %d and %d separated by commas. Example: %s",
		e.Spec, Faces, MinFace, MaxFace, exampleDie)
}

func (e *InputFormatError) Unwrap() error {
	return e.Reason
}

// Parse parses a single die spec such as "1,1,6,6,8,8".
func Parse(spec string) (Dice, error) {
	if !specPattern.MatchString(spec) {
		return Dice{}, &InputFormatError{Spec: spec, Reason: errSyntax}
	}

	parts := strings.Split(spec, ",")
	faces := make([]int, 0, Faces)
	for _, p := range parts {
		v, err := strconv.Atoi(p)
		if err != nil {
			return Dice{}, &InputFormatError{Spec: spec, Reason: err}
		}
		faces = append(faces, v)
	}
	return New(faces...)
}

// ParseSet parses and validates a full set of die specs. The first invalid
// spec is reported; nothing is returned unless every spec is valid.
func ParseSet(specs []string) (Set, error) {
	if len(specs) < MinDice {
		return nil, &InputFormatError{Reason: ErrTooFewDice}
	}

	set := make(Set, 0, len(specs))
	for _, spec := range specs {
		d, err := Parse(spec)
		if err != nil {
			return nil, err
		}
		set = append(set, d)
	}
	return set, nil
}
