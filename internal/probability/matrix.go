// Package probability computes exact head-to-head odds for a set of dice by
// comparing every face of one die against every face of another.
package probability

import (
	"context"
	"fmt"
	"math"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/lox/fairdice/internal/dice"
)

// Cell holds the outcome counts of die Row against die Col.
type Cell struct {
	Row, Col int
	Wins     int
	Ties     int
	Total    int
}

// Self reports whether the cell compares a die against itself.
func (c Cell) Self() bool {
	return c.Row == c.Col
}

// Losses is the number of comparisons the row die loses.
func (c Cell) Losses() int {
	return c.Total - c.Wins - c.Ties
}

// WinPercent is the row die's win chance rounded to two decimals.
func (c Cell) WinPercent() float64 {
	return percent(c.Wins, c.Total)
}

// TiePercent is the tie chance rounded to two decimals.
func (c Cell) TiePercent() float64 {
	return percent(c.Ties, c.Total)
}

// String formats the cell as "55.56% W / 0.00% T".
func (c Cell) String() string {
	return fmt.Sprintf("%.2f%% W / %.2f%% T", c.WinPercent(), c.TiePercent())
}

// Matrix is the full table of pairwise odds. It is computed once from a
// snapshot of the dice and never changes afterwards.
type Matrix struct {
	dice     dice.Set
	cells    [][]Cell
	averages []float64
}

// Compute builds the matrix for set. It cannot fail without a context to
// cancel it.
func Compute(set dice.Set) *Matrix {
	m, err := ComputeContext(context.Background(), set)
	if err != nil {
		panic(fmt.Sprintf("probability: compute without cancellation failed: %v", err))
	}
	return m
}

// ComputeContext builds the matrix for set, one row per worker. Rows are
// independent; the only failure is ctx ending before every row is done.
func ComputeContext(ctx context.Context, set dice.Set) (*Matrix, error) {
	m := &Matrix{
		dice:     set.Clone(),
		cells:    make([][]Cell, len(set)),
		averages: make([]float64, len(set)),
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i := range m.dice {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			m.cells[i] = m.row(i)
			m.averages[i] = m.average(i)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("compute probabilities: %w", err)
	}
	return m, nil
}

// Compare counts wins and ties of a over b across all face pairs.
func Compare(a, b dice.Dice) (wins, ties int) {
	for i := 0; i < dice.Faces; i++ {
		for j := 0; j < dice.Faces; j++ {
			switch fa, fb := a.Face(i), b.Face(j); {
			case fa > fb:
				wins++
			case fa == fb:
				ties++
			}
		}
	}
	return wins, ties
}

func (m *Matrix) row(i int) []Cell {
	row := make([]Cell, len(m.dice))
	for j := range m.dice {
		wins, ties := Compare(m.dice[i], m.dice[j])
		row[j] = Cell{Row: i, Col: j, Wins: wins, Ties: ties, Total: dice.Faces * dice.Faces}
	}
	return row
}

// average is the mean of the two-decimal win percentages against every other
// die, itself rounded to two decimals.
func (m *Matrix) average(i int) float64 {
	if len(m.dice) < 2 {
		return 0
	}
	var sum float64
	for _, c := range m.cells[i] {
		if c.Self() {
			continue
		}
		sum += c.WinPercent()
	}
	return round2(sum / float64(len(m.dice)-1))
}

// Len returns the number of dice in the matrix.
func (m *Matrix) Len() int {
	return len(m.dice)
}

// Dice returns a copy of the dice the matrix was computed from.
func (m *Matrix) Dice() dice.Set {
	return m.dice.Clone()
}

// Cell returns the comparison of die i against die j.
func (m *Matrix) Cell(i, j int) Cell {
	return m.cells[i][j]
}

// Average returns die i's average win chance against the other dice.
func (m *Matrix) Average(i int) float64 {
	return m.averages[i]
}

// Dominant returns the index of a die that is more likely to win than lose
// against every other die. A set without one is non-transitive.
func (m *Matrix) Dominant() (int, bool) {
	for i := range m.cells {
		beatsAll := true
		for _, c := range m.cells[i] {
			if c.Self() {
				continue
			}
			if c.Wins <= c.Losses() {
				beatsAll = false
				break
			}
		}
		if beatsAll && len(m.cells) > 1 {
			return i, true
		}
	}
	return -1, false
}

func percent(n, total int) float64 {
	if total == 0 {
		return 0
	}
	return round2(float64(n) / float64(total) * 100)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
