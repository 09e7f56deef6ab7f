package display

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/fairdice/internal/dice"
	"github.com/lox/fairdice/internal/game"
	"github.com/lox/fairdice/internal/probability"
)

func classicMatrix(t *testing.T) *probability.Matrix {
	t.Helper()
	set, err := dice.ParseSet([]string{"2,2,4,4,9,9", "1,1,6,6,8,8", "3,3,5,5,7,7"})
	require.NoError(t, err)
	return probability.Compute(set)
}

func TestConsolePrompt(t *testing.T) {
	var out bytes.Buffer
	c := NewConsole(strings.NewReader("1\n  ?\n"), &out, WithoutColor())
	ctx := context.Background()

	line, err := c.Prompt(ctx, "Your selection: ")
	require.NoError(t, err)
	assert.Equal(t, "1", line)

	line, err = c.Prompt(ctx, "Your selection: ")
	require.NoError(t, err)
	assert.Equal(t, "  ?", line)

	_, err = c.Prompt(ctx, "Your selection: ")
	assert.ErrorIs(t, err, io.EOF)
	_, err = c.Prompt(ctx, "Your selection: ")
	assert.ErrorIs(t, err, io.EOF, "EOF must be sticky")

	assert.Equal(t, 4, strings.Count(out.String(), "Your selection: "))

	select {
	case <-c.done:
	default:
		t.Fatal("reader goroutine should have finished after EOF")
	}
}

func TestConsolePromptReportsReadError(t *testing.T) {
	pr, pw := io.Pipe()
	c := NewConsole(pr, io.Discard, WithoutColor())
	boom := errors.New("terminal gone")

	go func() {
		_, _ = pw.Write([]byte("1\n"))
		_ = pw.CloseWithError(boom)
	}()

	line, err := c.Prompt(context.Background(), "> ")
	require.NoError(t, err)
	assert.Equal(t, "1", line)

	_, err = c.Prompt(context.Background(), "> ")
	assert.ErrorIs(t, err, boom)
}

func TestConsolePromptHonoursContext(t *testing.T) {
	pr, pw := io.Pipe()
	defer pw.Close()

	var out bytes.Buffer
	c := NewConsole(pr, &out, WithoutColor())

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err := c.Prompt(ctx, "> ")
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestConsoleShow(t *testing.T) {
	var out bytes.Buffer
	c := NewConsole(strings.NewReader(""), &out, WithoutColor())

	c.Show(game.ToneCommit, "(HMAC=abc)")
	c.Show(game.ToneResult, "You win (9 > 3)")
	c.Errorf("Invalid input %q", "9")
	c.Banner("fairdice")

	text := out.String()
	assert.Contains(t, text, "(HMAC=abc)\n")
	assert.Contains(t, text, "You win (9 > 3)\n")
	assert.Contains(t, text, `Invalid input "9"`)
	assert.Contains(t, text, "fairdice")
	assert.NotContains(t, text, "\x1b[", "no escape codes without colour")
}

func TestRenderMatrix(t *testing.T) {
	r := NewConsole(strings.NewReader(""), io.Discard, WithoutColor())
	text := RenderMatrix(classicMatrix(t), r.Styles())

	assert.Contains(t, text, "Probability Table")
	assert.Contains(t, text, `Dice \ Dice`)
	assert.Contains(t, text, "55.56% W / 0.00% T")
	assert.Contains(t, text, "44.44% W / 0.00% T")
	assert.Contains(t, text, "Probability of winning with each dice:")
	for _, line := range []string{"Dice 0: 50.00%", "Dice 1: 50.00%", "Dice 2: 50.00%"} {
		assert.Contains(t, text, line)
	}

	// Header plus one row per die, each row naming its die.
	for _, label := range []string{"Dice 0", "Dice 1", "Dice 2"} {
		assert.GreaterOrEqual(t, strings.Count(text, label), 3, label)
	}
}

func TestConsoleShowMatrix(t *testing.T) {
	var out bytes.Buffer
	c := NewConsole(strings.NewReader(""), &out, WithoutColor())
	c.ShowMatrix(classicMatrix(t))
	assert.Contains(t, out.String(), "Dice 2: 50.00%")
}
