// Package dice defines six-sided dice with arbitrary face values and the
// comma-separated format they are specified in on the command line.
package dice

import (
	"strconv"
	"strings"
)

const (
	// Faces is the number of faces every die has.
	Faces = 6

	// MinFace and MaxFace bound the value printed on a face.
	MinFace = 1
	MaxFace = 9

	// MinDice is the smallest set a game can be played with.
	MinDice = 3
)

// Dice is an immutable die. The zero value has no faces set and is not valid.
type Dice struct {
	faces [Faces]int
}

// New builds a die from exactly six face values in [MinFace, MaxFace].
func New(faces ...int) (Dice, error) {
	var d Dice
	if len(faces) != Faces {
		return d, &InputFormatError{Spec: join(faces), Reason: errFaceCount}
	}
	for i, f := range faces {
		if f < MinFace || f > MaxFace {
			return Dice{}, &InputFormatError{Spec: join(faces), Reason: errFaceRange}
		}
		d.faces[i] = f
	}
	return d, nil
}

// MustNew is like New but panics on invalid faces. Intended for tests and
// fixed presets.
func MustNew(faces ...int) Dice {
	d, err := New(faces...)
	if err != nil {
		panic(err)
	}
	return d
}

// Face returns the value on face i (0-based).
func (d Dice) Face(i int) int {
	return d.faces[i]
}

// Faces returns a copy of the face values.
func (d Dice) Faces() []int {
	out := make([]int, Faces)
	copy(out, d.faces[:])
	return out
}

// String renders the die in its input format, e.g. "2,2,4,4,9,9".
func (d Dice) String() string {
	return join(d.faces[:])
}

func join(faces []int) string {
	parts := make([]string, len(faces))
	for i, f := range faces {
		parts[i] = strconv.Itoa(f)
	}
	return strings.Join(parts, ",")
}
