package display

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/lox/fairdice/internal/game"
)

// Styles holds the styling for transcript lines and the probability table.
type Styles struct {
	Title  lipgloss.Style
	Text   lipgloss.Style
	Commit lipgloss.Style
	Reveal lipgloss.Style
	Menu   lipgloss.Style
	Result lipgloss.Style
	Error  lipgloss.Style
	Prompt lipgloss.Style

	TableBorder lipgloss.Style
	TableHeader lipgloss.Style
	TableCell   lipgloss.Style
	TableSelf   lipgloss.Style
	TableWin    lipgloss.Style
}

// NewStyles builds styles bound to r so colour support follows r's output.
func NewStyles(r *lipgloss.Renderer) *Styles {
	return &Styles{
		Title: r.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1).
			Bold(true),
		Text: r.NewStyle(),
		Commit: r.NewStyle().
			Foreground(lipgloss.Color("#74B9FF")),
		Reveal: r.NewStyle().
			Foreground(lipgloss.Color("#FFEAA7")),
		Menu: r.NewStyle().
			Foreground(lipgloss.Color("#626262")),
		Result: r.NewStyle().
			Foreground(lipgloss.Color("#FFD700")).
			Bold(true),
		Error: r.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B")).
			Bold(true),
		Prompt: r.NewStyle().
			Foreground(lipgloss.Color("#04B575")).
			Bold(true),

		TableBorder: r.NewStyle().
			Foreground(lipgloss.Color("#626262")),
		TableHeader: r.NewStyle().
			Foreground(lipgloss.Color("#96CEB4")).
			Bold(true).
			Padding(0, 1),
		TableCell: r.NewStyle().
			Padding(0, 1),
		TableSelf: r.NewStyle().
			Foreground(lipgloss.Color("#626262")).
			Padding(0, 1),
		TableWin: r.NewStyle().
			Foreground(lipgloss.Color("#96CEB4")).
			Padding(0, 1),
	}
}

func (s *Styles) forTone(t game.Tone) lipgloss.Style {
	switch t {
	case game.ToneCommit:
		return s.Commit
	case game.ToneReveal:
		return s.Reveal
	case game.ToneMenu:
		return s.Menu
	case game.ToneResult:
		return s.Result
	default:
		return s.Text
	}
}
