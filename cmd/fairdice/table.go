package main

import (
	"fmt"

	"github.com/lox/fairdice/internal/display"
	"github.com/lox/fairdice/internal/game"
	"github.com/lox/fairdice/internal/probability"
)

// TableCmd prints the probability table without playing.
type TableCmd struct {
	Dice []string `arg:"" optional:"" help:"Dice as six comma separated faces (at least 3)"`
}

func (c *TableCmd) Run(app *App) error {
	set, err := app.diceSet(c.Dice)
	if err != nil {
		return err
	}

	m, err := probability.ComputeContext(app.ctx, set)
	if err != nil {
		return err
	}
	console := app.console()
	fmt.Fprint(app.out, display.RenderMatrix(m, console.Styles()))

	if i, ok := m.Dominant(); ok {
		console.Show(game.ToneResult, fmt.Sprintf("Dice %d [%s] beats every other dice.", i, set[i]))
	} else {
		console.Show(game.ToneResult, "No dice beats every other: the set is non-transitive.")
	}
	return nil
}
