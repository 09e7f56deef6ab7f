package dice

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	t.Run("valid spec", func(t *testing.T) {
		d, err := Parse("2,2,4,4,9,9")
		require.NoError(t, err)
		assert.Equal(t, []int{2, 2, 4, 4, 9, 9}, d.Faces())
		assert.Equal(t, "2,2,4,4,9,9", d.String())
		assert.Equal(t, 9, d.Face(5))
	})

	invalid := []string{
		"",
		"1,2,3,4,5",
		"1,2,3,4,5,6,7",
		"0,1,2,3,4,5",
		"1,2,3,4,5,10",
		"1, 2,3,4,5,6",
		"a,b,c,d,e,f",
		"1,2,3,4,5,6,",
		"1;2;3;4;5;6",
	}
	for _, spec := range invalid {
		t.Run("rejects "+spec, func(t *testing.T) {
			_, err := Parse(spec)
			require.Error(t, err)

			var formatErr *InputFormatError
			require.ErrorAs(t, err, &formatErr)
			assert.Equal(t, spec, formatErr.Spec)
			assert.Contains(t, err.Error(), "INVALID DICE FORMAT '"+spec+"'")
		})
	}
}

func TestNew(t *testing.T) {
	_, err := New(1, 2, 3)
	assert.ErrorIs(t, err, errFaceCount)

	_, err = New(1, 2, 3, 4, 5, 0)
	assert.ErrorIs(t, err, errFaceRange)

	assert.Panics(t, func() { MustNew(1) })
}

func TestFacesReturnsCopy(t *testing.T) {
	d := MustNew(1, 2, 3, 4, 5, 6)
	faces := d.Faces()
	faces[0] = 9
	assert.Equal(t, 1, d.Face(0))
}

func TestParseSet(t *testing.T) {
	t.Run("three valid dice", func(t *testing.T) {
		set, err := ParseSet([]string{"2,2,4,4,9,9", "1,1,6,6,8,8", "3,3,5,5,7,7"})
		require.NoError(t, err)
		require.Len(t, set, 3)
		assert.Equal(t, "1,1,6,6,8,8", set[1].String())
	})

	t.Run("too few dice", func(t *testing.T) {
		_, err := ParseSet([]string{"2,2,4,4,9,9", "1,1,6,6,8,8"})
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrTooFewDice))
		assert.Contains(t, err.Error(), "ARGS LENGTH ERROR")
	})

	t.Run("names the first offending spec", func(t *testing.T) {
		_, err := ParseSet([]string{"2,2,4,4,9,9", "1,1,6,6,8", "3,3,5,5,7,0"})
		var formatErr *InputFormatError
		require.ErrorAs(t, err, &formatErr)
		assert.Equal(t, "1,1,6,6,8", formatErr.Spec)
	})
}

func TestPoolClaim(t *testing.T) {
	set := Set{
		MustNew(1, 1, 1, 1, 1, 1),
		MustNew(2, 2, 2, 2, 2, 2),
		MustNew(3, 3, 3, 3, 3, 3),
	}
	pool := NewPool(set)

	d, err := pool.Claim(1)
	require.NoError(t, err)
	assert.Equal(t, 2, d.Face(0))
	assert.Equal(t, 2, pool.Len())

	// Indexes shift after a claim.
	assert.Equal(t, 3, pool.At(1).Face(0))

	_, err = pool.Claim(2)
	assert.Error(t, err)
	_, err = pool.Claim(-1)
	assert.Error(t, err)

	// The original set is never touched by claims.
	assert.Len(t, set, 3)
	assert.Equal(t, 2, set[1].Face(0))
	assert.Len(t, pool.Remaining(), 2)
}
