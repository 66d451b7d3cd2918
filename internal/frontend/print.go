package frontend

import (
	"fmt"
	"strconv"

	"github.com/janpfeifer/GoBingo/internal/bingo"
	"github.com/maxence-charriere/go-app/v10/pkg/app"
	"k8s.io/klog/v2"
)

// Print generates a batch of cards and lays them out for the printer.
type Print struct {
	app.Compo

	count     int
	maxNumber int
	cardSize  int
	freeSpace bool
}

func (p *Print) OnMount(ctx app.Context) {
	klog.V(1).Infof("Print: OnMount called")
	p.count = State.PrintCount
	p.maxNumber = State.PrintOptions.MaxNumber
	p.cardSize = State.PrintOptions.Size
	p.freeSpace = State.PrintOptions.FreeSpace
	if app.IsServer {
		return
	}
	State.Listeners["print"] = func() {
		ctx.Dispatch(func(ctx app.Context) {})
	}
}

func (p *Print) OnDismount() {
	delete(State.Listeners, "print")
}

func (p *Print) onCountChange(ctx app.Context, e app.Event) {
	n, err := strconv.Atoi(ctx.JSSrc().Get("value").String())
	if err != nil {
		n = MinPrintRun
	}
	p.count = clamp(n, MinPrintRun, MaxPrintRun)
}

func (p *Print) onMaxNumberChange(ctx app.Context, e app.Event) {
	n, err := strconv.Atoi(ctx.JSSrc().Get("value").String())
	if err != nil {
		n = MinMaxNumber
	}
	p.maxNumber = clamp(n, MinMaxNumber, MaxMaxNumber)
}

func (p *Print) onCardSizeChange(ctx app.Context, e app.Event) {
	n, err := strconv.Atoi(ctx.JSSrc().Get("value").String())
	if err != nil {
		return
	}
	p.cardSize = clamp(n, MinCardSize, MaxCardSize)
}

func (p *Print) onFreeSpaceChange(ctx app.Context, e app.Event) {
	p.freeSpace = ctx.JSSrc().Get("checked").Bool()
}

func (p *Print) onGenerate(ctx app.Context, e app.Event) {
	State.GeneratePrintCards(p.count, bingo.Options{
		Size:      p.cardSize,
		MaxNumber: p.maxNumber,
		FreeSpace: p.freeSpace,
	})
}

func (p *Print) onPrint(ctx app.Context, e app.Event) {
	app.Window().Call("print")
}

func (p *Print) renderSettings() app.UI {
	var sizes []app.UI
	for size := MinCardSize; size <= MaxCardSize; size++ {
		sizes = append(sizes, app.Option().
			Value(strconv.Itoa(size)).
			Selected(size == p.cardSize).
			Text(fmt.Sprintf("%dx%d", size, size)))
	}

	var printButton app.UI = app.Text("")
	if len(State.PrintCards) > 0 {
		printButton = app.Button().Class("secondary").Text("Print Cards").OnClick(p.onPrint)
	}

	return app.Article().Class("no-print").Body(
		app.Header().Body(app.H2().Text("Card Settings")),
		app.Div().Class("grid").Body(
			app.Label().For("numCards").Body(
				app.Text("Number of Cards"),
				app.Input().
					Type("number").
					ID("numCards").
					Min(MinPrintRun).
					Max(MaxPrintRun).
					Value(p.count).
					OnChange(p.onCountChange),
			),
			app.Label().For("printMaxNumber").Body(
				app.Text("Maximum Number"),
				app.Input().
					Type("number").
					ID("printMaxNumber").
					Min(MinMaxNumber).
					Max(MaxMaxNumber).
					Value(p.maxNumber).
					OnChange(p.onMaxNumberChange),
			),
			app.Label().For("printCardSize").Body(
				app.Text("Card Size"),
				app.Select().ID("printCardSize").OnChange(p.onCardSizeChange).Body(sizes...),
			),
		),
		app.Label().For("printFreeSpace").Body(
			app.Input().
				Type("checkbox").
				ID("printFreeSpace").
				Checked(p.freeSpace).
				OnChange(p.onFreeSpaceChange),
			app.Text("Free Space (odd sizes only)"),
		),
		app.Div().Style("display", "flex").Style("gap", "1rem").Body(
			app.Button().Text("Generate Cards").OnClick(p.onGenerate),
			printButton,
		),
	)
}

func (p *Print) Render() app.UI {
	var cards []app.UI
	for i, card := range State.PrintCards {
		cards = append(cards, app.Article().Class("print-card").Body(
			app.H3().Style("text-align", "center").Text(fmt.Sprintf("BINGO CARD #%d", i+1)),
			board{card: card}.view(),
		))
	}

	return app.Main().Class("container").Body(
		&TopBar{},
		app.H2().Class("no-print").Text("Generate Bingo Cards"),
		errorBanner(),
		p.renderSettings(),
		app.Div().Class("grid", "print-container").Body(cards...),
	)
}
