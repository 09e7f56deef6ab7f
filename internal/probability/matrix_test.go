package probability

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/fairdice/internal/dice"
)

func classicSet(t *testing.T) dice.Set {
	t.Helper()
	set, err := dice.ParseSet([]string{"2,2,4,4,9,9", "1,1,6,6,8,8", "3,3,5,5,7,7"})
	require.NoError(t, err)
	return set
}

func TestCompare(t *testing.T) {
	tests := []struct {
		name       string
		a, b       dice.Dice
		wins, ties int
	}{
		{"identical standard dice", dice.MustNew(1, 2, 3, 4, 5, 6), dice.MustNew(1, 2, 3, 4, 5, 6), 15, 6},
		{"always higher", dice.MustNew(9, 9, 9, 9, 9, 9), dice.MustNew(1, 1, 1, 1, 1, 1), 36, 0},
		{"always lower", dice.MustNew(1, 1, 1, 1, 1, 1), dice.MustNew(9, 9, 9, 9, 9, 9), 0, 0},
		{"always tie", dice.MustNew(5, 5, 5, 5, 5, 5), dice.MustNew(5, 5, 5, 5, 5, 5), 0, 36},
		{"classic A vs B", dice.MustNew(2, 2, 4, 4, 9, 9), dice.MustNew(1, 1, 6, 6, 8, 8), 20, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wins, ties := Compare(tt.a, tt.b)
			assert.Equal(t, tt.wins, wins)
			assert.Equal(t, tt.ties, ties)
		})
	}
}

func TestMatrixOutcomesPartitionEveryPair(t *testing.T) {
	set := dice.Set{
		dice.MustNew(1, 2, 3, 4, 5, 6),
		dice.MustNew(2, 2, 4, 4, 9, 9),
		dice.MustNew(3, 3, 3, 3, 3, 3),
		dice.MustNew(1, 1, 6, 6, 8, 8),
		dice.MustNew(5, 5, 5, 5, 5, 5),
	}
	m := Compute(set)
	require.Equal(t, len(set), m.Len())

	for i := 0; i < m.Len(); i++ {
		for j := 0; j < m.Len(); j++ {
			ij, ji := m.Cell(i, j), m.Cell(j, i)
			assert.Equal(t, 36, ij.Wins+ij.Ties+ji.Wins, "pair %d,%d", i, j)
			assert.Equal(t, ij.Ties, ji.Ties)
			assert.Equal(t, ij.Losses(), ji.Wins)
			assert.InDelta(t, 100, ij.WinPercent()+ij.TiePercent()+ji.WinPercent(), 0.011)
		}
	}
}

func TestMatrixClassicSetIsNonTransitive(t *testing.T) {
	m := Compute(classicSet(t))

	assert.Equal(t, "55.56% W / 0.00% T", m.Cell(0, 1).String())
	assert.Equal(t, "55.56% W / 0.00% T", m.Cell(1, 2).String())
	assert.Equal(t, "55.56% W / 0.00% T", m.Cell(2, 0).String())
	assert.Equal(t, "44.44% W / 0.00% T", m.Cell(1, 0).String())

	for i := 0; i < m.Len(); i++ {
		assert.Equal(t, 50.0, m.Average(i))

		hasContest := false
		for j := 0; j < m.Len(); j++ {
			if i == j {
				continue
			}
			w := m.Cell(i, j).WinPercent()
			if w > 0 && w < 100 {
				hasContest = true
			}
		}
		assert.True(t, hasContest, "die %d should be beatable", i)
	}

	_, dominant := m.Dominant()
	assert.False(t, dominant)
}

func TestMatrixDominantDie(t *testing.T) {
	m := Compute(dice.Set{
		dice.MustNew(1, 1, 1, 1, 1, 1),
		dice.MustNew(6, 6, 6, 6, 6, 6),
		dice.MustNew(1, 2, 3, 4, 5, 6),
	})
	idx, ok := m.Dominant()
	require.True(t, ok)
	assert.Equal(t, 1, idx)
}

func TestMatrixSelfCellsExcludedFromAverage(t *testing.T) {
	m := Compute(dice.Set{
		dice.MustNew(1, 2, 3, 4, 5, 6),
		dice.MustNew(9, 9, 9, 9, 9, 9),
		dice.MustNew(1, 1, 1, 1, 1, 1),
	})

	self := m.Cell(0, 0)
	assert.True(t, self.Self())
	assert.Equal(t, "41.67% W / 16.67% T", self.String())

	// Die 0 wins 0% against nines and 83.33% against ones.
	assert.Equal(t, 41.67, m.Average(0))
	assert.Equal(t, 100.0, m.Average(1))
	assert.Equal(t, 0.0, m.Average(2))
}

func TestMatrixIgnoresLaterChangesToInput(t *testing.T) {
	set := classicSet(t)
	m := Compute(set)
	set[0] = dice.MustNew(9, 9, 9, 9, 9, 9)

	assert.Equal(t, "2,2,4,4,9,9", m.Dice()[0].String())
	assert.Equal(t, 20, m.Cell(0, 1).Wins)
}

func TestComputeIsRepeatable(t *testing.T) {
	set := classicSet(t)
	a, b := Compute(set), Compute(set)
	for i := 0; i < a.Len(); i++ {
		for j := 0; j < a.Len(); j++ {
			assert.Equal(t, a.Cell(i, j), b.Cell(i, j))
		}
		assert.Equal(t, a.Average(i), b.Average(i))
	}
}

func TestComputeContext(t *testing.T) {
	m, err := ComputeContext(context.Background(), classicSet(t))
	require.NoError(t, err)
	assert.Equal(t, Compute(classicSet(t)), m)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	m, err = ComputeContext(ctx, classicSet(t))
	assert.ErrorIs(t, err, context.Canceled)
	assert.Nil(t, m)
}
