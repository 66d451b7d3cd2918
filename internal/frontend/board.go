package frontend

import (
	"fmt"

	"github.com/janpfeifer/GoBingo/internal/bingo"
	"github.com/maxence-charriere/go-app/v10/pkg/app"
)

// board describes how to draw a card. Only card is required.
type board struct {
	card    bingo.Card
	headers []string

	// covered tells which cells are shown as marked.
	covered func(pos bingo.Coord) bool

	// winning cells are highlighted.
	winning map[bingo.Coord]bool

	// onClick, if set, makes the cells clickable.
	onClick func(pos bingo.Coord) app.EventHandler
}

// winningCells collects the cells of the given lines.
func winningCells(lines []bingo.Line) map[bingo.Coord]bool {
	cells := make(map[bingo.Coord]bool)
	for _, line := range lines {
		for _, pos := range line.Cells {
			cells[pos] = true
		}
	}
	return cells
}

func (b board) view() app.UI {
	size := b.card.Size()
	items := make([]app.UI, 0, size*size+len(b.headers))
	for _, header := range b.headers {
		items = append(items, app.Div().Class("bingo-header").Text(header))
	}
	for row := range b.card {
		for col, cell := range b.card[row] {
			pos := bingo.Coord{Row: row, Col: col}
			classes := []string{"bingo-cell"}
			if cell.Free {
				classes = append(classes, "free")
			}
			if b.covered != nil && b.covered(pos) {
				classes = append(classes, "marked")
			}
			if b.winning[pos] {
				classes = append(classes, "winning")
			}
			div := app.Div().Class(classes...).Text(cell.String())
			if b.onClick != nil {
				div = div.Style("cursor", "pointer").OnClick(b.onClick(pos))
			}
			items = append(items, div)
		}
	}
	return app.Div().
		Class("bingo-card").
		Style("display", "grid").
		Style("gap", "0.5rem").
		Style("grid-template-columns", fmt.Sprintf("repeat(%d, minmax(0, 1fr))", size)).
		Body(items...)
}

// errorBanner shows the last error, if any.
func errorBanner() app.UI {
	if State.Error == "" {
		return app.Text("")
	}
	return app.Article().Class("no-print").Style("color", "red").Body(
		app.P().Text(State.Error),
	)
}
