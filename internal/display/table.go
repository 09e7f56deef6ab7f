package display

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/lox/fairdice/internal/probability"
)

const tableTitle = "Probability Table"

// RenderMatrix draws the pairwise odds table followed by each die's average
// win chance.
func RenderMatrix(m *probability.Matrix, styles *Styles) string {
	n := m.Len()

	headers := make([]string, 0, n+1)
	headers = append(headers, `Dice \ Dice`)
	for j := 0; j < n; j++ {
		headers = append(headers, dieLabel(j))
	}

	rows := make([][]string, n)
	for i := 0; i < n; i++ {
		row := make([]string, 0, n+1)
		row = append(row, dieLabel(i))
		for j := 0; j < n; j++ {
			row = append(row, m.Cell(i, j).String())
		}
		rows[i] = row
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(styles.TableBorder).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow, col == 0:
				return styles.TableHeader
			case row == col-1:
				return styles.TableSelf
			}
			c := m.Cell(row, col-1)
			if c.Wins > c.Losses() {
				return styles.TableWin
			}
			return styles.TableCell
		})

	var b strings.Builder
	b.WriteString(styles.TableHeader.Render(tableTitle))
	b.WriteString("\n")
	b.WriteString(t.String())
	b.WriteString("\n\nProbability of winning with each dice:\n")
	for i := 0; i < n; i++ {
		fmt.Fprintf(&b, "%s: %.2f%%\n", dieLabel(i), m.Average(i))
	}
	return b.String()
}

func dieLabel(i int) string {
	return fmt.Sprintf("Dice %d", i)
}
