// Package display is the line-based terminal front end of the game: it reads
// one line per prompt and prints the styled transcript.
package display

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/muesli/termenv"

	"github.com/lox/fairdice/internal/game"
	"github.com/lox/fairdice/internal/probability"
)

// Console implements game.IO on a reader/writer pair.
type Console struct {
	in     io.Reader
	out    io.Writer
	styles *Styles
	logger *log.Logger

	once  sync.Once
	lines chan string

	// done is closed once input ends; readErr is set before that.
	done    chan struct{}
	readErr error
}

// ConsoleOption configures a Console.
type ConsoleOption func(*Console)

// WithoutColor forces plain output regardless of what the terminal supports.
func WithoutColor() ConsoleOption {
	return func(c *Console) {
		r := lipgloss.NewRenderer(c.out)
		r.SetColorProfile(termenv.Ascii)
		c.styles = NewStyles(r)
	}
}

// WithLogger sets the diagnostic logger.
func WithLogger(l *log.Logger) ConsoleOption {
	return func(c *Console) {
		c.logger = l
	}
}

// NewConsole creates a console reading prompts from in and writing the
// transcript to out.
func NewConsole(in io.Reader, out io.Writer, opts ...ConsoleOption) *Console {
	c := &Console{
		in:     in,
		out:    out,
		styles: NewStyles(lipgloss.NewRenderer(out)),
		logger: log.NewWithOptions(io.Discard, log.Options{}),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Styles returns the styles the console renders with.
func (c *Console) Styles() *Styles {
	return c.styles
}

// Prompt prints label and waits for the next line or for ctx to end. Input
// is read on a background goroutine so a cancelled context does not wait for
// the player to press enter.
func (c *Console) Prompt(ctx context.Context, label string) (string, error) {
	c.once.Do(c.startReader)

	fmt.Fprint(c.out, c.styles.Prompt.Render(label))
	select {
	case <-ctx.Done():
		fmt.Fprintln(c.out)
		return "", ctx.Err()
	case line := <-c.lines:
		c.logger.Debug("input", "line", line)
		return line, nil
	case <-c.done:
		c.logger.Debug("input closed", "error", c.readErr)
		return "", c.readErr
	}
}

// startReader scans lines on a goroutine that exits when input ends. Every
// line is handed over before done is closed, so a closed done never hides
// unread input.
func (c *Console) startReader() {
	c.lines = make(chan string)
	c.done = make(chan struct{})
	go func() {
		defer close(c.done)
		scanner := bufio.NewScanner(c.in)
		for scanner.Scan() {
			c.lines <- scanner.Text()
		}
		c.readErr = scanner.Err()
		if c.readErr == nil {
			c.readErr = io.EOF
		}
	}()
}

// Show prints one transcript line styled by tone.
func (c *Console) Show(tone game.Tone, text string) {
	fmt.Fprintln(c.out, c.styles.forTone(tone).Render(text))
}

// ShowMatrix prints the probability table.
func (c *Console) ShowMatrix(m *probability.Matrix) {
	fmt.Fprint(c.out, RenderMatrix(m, c.styles))
}

// Banner prints a title line.
func (c *Console) Banner(text string) {
	fmt.Fprintln(c.out, c.styles.Title.Render(text))
}

// Errorf prints an error line.
func (c *Console) Errorf(format string, args ...any) {
	fmt.Fprintln(c.out, c.styles.Error.Render(fmt.Sprintf(format, args...)))
}
