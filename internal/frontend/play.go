package frontend

import (
	"fmt"
	"strconv"

	"github.com/janpfeifer/GoBingo/internal/bingo"
	"github.com/maxence-charriere/go-app/v10/pkg/app"
	"k8s.io/klog/v2"
)

// Play is a free-form card: any size from 3x3 to 6x6, numbers up to a
// configurable maximum. The player marks the numbers called by someone else.
type Play struct {
	app.Compo

	// Settings form, applied on the next card.
	maxNumber int
	cardSize  int
	freeSpace bool
}

func (p *Play) OnMount(ctx app.Context) {
	klog.V(1).Infof("Play: OnMount called")
	p.maxNumber = State.PlayOptions.MaxNumber
	p.cardSize = State.PlayOptions.Size
	p.freeSpace = State.PlayOptions.FreeSpace
	if app.IsServer {
		return
	}
	State.Listeners["play"] = func() {
		ctx.Dispatch(func(ctx app.Context) {})
	}
	if State.Play == nil {
		State.NewPlayCard(State.PlayOptions)
	}
}

func (p *Play) OnDismount() {
	delete(State.Listeners, "play")
}

func (p *Play) onMaxNumberChange(ctx app.Context, e app.Event) {
	n, err := strconv.Atoi(ctx.JSSrc().Get("value").String())
	if err != nil {
		n = MinMaxNumber
	}
	p.maxNumber = clamp(n, MinMaxNumber, MaxMaxNumber)
}

func (p *Play) onCardSizeChange(ctx app.Context, e app.Event) {
	n, err := strconv.Atoi(ctx.JSSrc().Get("value").String())
	if err != nil {
		return
	}
	p.cardSize = clamp(n, MinCardSize, MaxCardSize)
}

func (p *Play) onFreeSpaceChange(ctx app.Context, e app.Event) {
	p.freeSpace = ctx.JSSrc().Get("checked").Bool()
}

func (p *Play) onNewCard(ctx app.Context, e app.Event) {
	State.NewPlayCard(bingo.Options{
		Size:      p.cardSize,
		MaxNumber: p.maxNumber,
		FreeSpace: p.freeSpace,
	})
}

func (p *Play) onCellClick(pos bingo.Coord) app.EventHandler {
	return func(ctx app.Context, e app.Event) {
		State.TogglePlayCell(pos)
	}
}

func (p *Play) renderSettings() app.UI {
	var sizes []app.UI
	for size := MinCardSize; size <= MaxCardSize; size++ {
		sizes = append(sizes, app.Option().
			Value(strconv.Itoa(size)).
			Selected(size == p.cardSize).
			Text(fmt.Sprintf("%dx%d", size, size)))
	}

	return app.Article().Class("no-print").Body(
		app.Header().Body(app.H2().Text("Card Settings")),
		app.Div().Class("grid").Body(
			app.Label().For("maxNumber").Body(
				app.Text("Maximum Number"),
				app.Input().
					Type("number").
					ID("maxNumber").
					Min(MinMaxNumber).
					Max(MaxMaxNumber).
					Value(p.maxNumber).
					OnChange(p.onMaxNumberChange),
			),
			app.Label().For("cardSize").Body(
				app.Text("Card Size"),
				app.Select().ID("cardSize").OnChange(p.onCardSizeChange).Body(sizes...),
			),
		),
		app.Label().For("playFreeSpace").Body(
			app.Input().
				Type("checkbox").
				ID("playFreeSpace").
				Checked(p.freeSpace).
				OnChange(p.onFreeSpaceChange),
			app.Text("Free Space (odd sizes only)"),
		),
		app.Button().Text("Generate New Card").OnClick(p.onNewCard),
	)
}

func (p *Play) Render() app.UI {
	var content app.UI
	if State.Play == nil {
		content = app.Div().Aria("busy", "true").Text("Dealing a card...")
	} else {
		session := State.Play
		var banner app.UI = app.Text("")
		if session.Won() {
			banner = app.Article().Class("bingo-banner").Text("BINGO! You've won!")
		}
		content = app.Div().Body(
			banner,
			board{
				card:    session.Card(),
				covered: session.Covered,
				winning: winningCells(session.WinningLines()),
				onClick: p.onCellClick,
			}.view(),
		)
	}

	return app.Main().Class("container").Body(
		&TopBar{},
		app.Div().Class("no-print").Style("display", "flex").Style("justify-content", "space-between").Style("align-items", "center").Body(
			app.H2().Text("Online Bingo"),
			app.Button().Class("secondary").Text("New Card").OnClick(p.onNewCard),
		),
		errorBanner(),
		content,
		p.renderSettings(),
	)
}
