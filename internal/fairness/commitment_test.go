package fairness

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingSource struct {
	failRead bool
}

func (f failingSource) Intn(n int) (int, error) {
	if f.failRead {
		return 0, nil
	}
	return 0, errors.New("entropy pool gone")
}

func (f failingSource) Read(p []byte) (int, error) {
	return 0, errors.New("entropy pool gone")
}

func TestComputeMAC(t *testing.T) {
	// Matches `printf %s 3 | openssl dgst -sha256 -hmac secret`.
	assert.Equal(t,
		"88a43b1b8ef6d2e900797363da21fd2bb29351d3022389feb31fb1340a94dae2",
		ComputeMAC("secret", 3))
}

func TestCommit(t *testing.T) {
	t.Run("value within range and mac verifies", func(t *testing.T) {
		src := NewSeededSource(7)
		for rangeMax := 0; rangeMax <= 10; rangeMax++ {
			for i := 0; i < 50; i++ {
				c, err := Commit(src, rangeMax)
				require.NoError(t, err)

				d := c.Disclose()
				assert.GreaterOrEqual(t, d.Value, 0)
				assert.LessOrEqual(t, d.Value, rangeMax)
				assert.Len(t, d.Key, KeyBytes*2)
				assert.Equal(t, rangeMax, c.Range())
				assert.True(t, Verify(d, c.MAC()))
			}
		}
	})

	t.Run("disclosure does not alter the commitment", func(t *testing.T) {
		c, err := Commit(CryptoSource{}, 5)
		require.NoError(t, err)

		mac := c.MAC()
		first := c.Disclose()
		second := c.Disclose()
		assert.Equal(t, first, second)
		assert.Equal(t, mac, c.MAC())
		assert.Equal(t, ComputeMAC(first.Key, first.Value), mac)
	})

	t.Run("range zero always yields zero", func(t *testing.T) {
		c, err := Commit(CryptoSource{}, 0)
		require.NoError(t, err)
		assert.Equal(t, 0, c.Disclose().Value)
	})

	t.Run("negative range rejected", func(t *testing.T) {
		_, err := Commit(CryptoSource{}, -1)
		assert.ErrorIs(t, err, ErrNegativeRange)
	})

	t.Run("source failure is reported", func(t *testing.T) {
		_, err := Commit(failingSource{}, 5)
		assert.ErrorIs(t, err, ErrRandomSource)

		_, err = Commit(failingSource{failRead: true}, 5)
		assert.ErrorIs(t, err, ErrRandomSource)
	})

	t.Run("keys are independent", func(t *testing.T) {
		a, err := Commit(CryptoSource{}, 1)
		require.NoError(t, err)
		b, err := Commit(CryptoSource{}, 1)
		require.NoError(t, err)
		assert.NotEqual(t, a.Disclose().Key, b.Disclose().Key)
	})
}

func TestVerify(t *testing.T) {
	c, err := Commit(NewSeededSource(1), 5)
	require.NoError(t, err)
	d := c.Disclose()

	assert.True(t, Verify(d, strings.ToUpper(c.MAC())), "hex case should not matter")
	assert.False(t, Verify(Disclosure{Value: (d.Value + 1) % 6, Key: d.Key}, c.MAC()))
	assert.False(t, Verify(Disclosure{Value: d.Value, Key: d.Key + "0"}, c.MAC()))
	assert.False(t, Verify(d, "not-hex"))
}

func TestSeededSourceIsDeterministic(t *testing.T) {
	a, err := Commit(NewSeededSource(42), 5)
	require.NoError(t, err)
	b, err := Commit(NewSeededSource(42), 5)
	require.NoError(t, err)
	assert.Equal(t, a.Disclose(), b.Disclose())
	assert.Equal(t, a.MAC(), b.MAC())

	_, err = NewSeededSource(1).Intn(0)
	assert.Error(t, err)
}

func TestRuleCombine(t *testing.T) {
	tests := []struct {
		name     string
		rule     Rule
		rangeMax int
		value    int
		supplied int
		want     int
	}{
		{"sum wraps", RuleSum, 5, 5, 5, 4},
		{"sum zero", RuleSum, 5, 3, 3, 0},
		{"sum negative", RuleSum, 5, -1, 0, 5},
		{"match hit", RuleMatch, 1, 1, 1, 0},
		{"match miss", RuleMatch, 1, 0, 1, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.rule.Combine(tt.rangeMax, tt.value, tt.supplied)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := Rule("xor").Combine(5, 1, 1)
	assert.ErrorIs(t, err, ErrUnknownRule)
	_, err = RuleSum.Combine(-1, 0, 0)
	assert.ErrorIs(t, err, ErrNegativeRange)
}
