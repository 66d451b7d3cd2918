package frontend

import (
	"github.com/janpfeifer/GoBingo/internal/bingo"
	"github.com/maxence-charriere/go-app/v10/pkg/app"
	"k8s.io/klog/v2"
)

// Game is the classic B-I-N-G-O game: a 5x5 card with its own number caller.
type Game struct {
	app.Compo

	onUpdate func()
}

func (g *Game) OnAppUpdate(ctx app.Context) {
	klog.Infof("Game component: App update available, not reloading not to interrupt the game...")
}

func (g *Game) OnMount(ctx app.Context) {
	klog.Infof("Game component: OnMount called")
	if app.IsServer {
		return
	}
	g.onUpdate = func() {
		ctx.Dispatch(func(ctx app.Context) {})
	}
	State.Listeners["game"] = g.onUpdate
}

func (g *Game) OnDismount() {
	klog.Infof("Game component: OnDismount called")
	delete(State.Listeners, "game")
}

func (g *Game) onNewGame(ctx app.Context, e app.Event) {
	State.StartGame()
}

func (g *Game) onCallNumber(ctx app.Context, e app.Event) {
	State.CallNumber()
}

func (g *Game) onFreeSpaceChange(ctx app.Context, e app.Event) {
	// Takes effect on the next game: the current card was dealt with or
	// without the free space.
	State.GameFreeSpace = ctx.JSSrc().Get("checked").Bool()
}

func (g *Game) onTitleChange(ctx app.Context, e app.Event) {
	State.Title = ctx.JSSrc().Get("value").String()
}

func (g *Game) onCellClick(pos bingo.Coord) app.EventHandler {
	return func(ctx app.Context, e app.Event) {
		State.ToggleGameCell(pos)
	}
}

func (g *Game) renderControls() app.UI {
	return app.Div().Class("no-print").Style("display", "flex").Style("flex-wrap", "wrap").Style("gap", "1rem").Style("align-items", "center").Style("justify-content", "center").Body(
		app.Button().Text("New Game").OnClick(g.onNewGame),
		app.Button().
			Class("secondary").
			Text("Call Number").
			Disabled(!State.GameActive()).
			OnClick(g.onCallNumber),
		app.Label().For("freeSpace").Body(
			app.Input().
				Type("checkbox").
				ID("freeSpace").
				Checked(State.GameFreeSpace).
				OnChange(g.onFreeSpaceChange),
			app.Text("Free Space"),
		),
		app.Input().
			Type("text").
			ID("title").
			MaxLength(bingo.ClassicSize).
			Value(State.Title).
			OnInput(g.onTitleChange).
			Style("width", "8rem"),
	)
}

func (g *Game) renderCalled(session *bingo.Session) app.UI {
	last := "None"
	if n := session.LastCalled(); n != 0 {
		last = bingo.Announce(n)
	}
	var called []app.UI
	for _, n := range session.CalledSorted() {
		called = append(called, app.Span().Class("called-number").Text(bingo.Announce(n)))
	}
	return app.Div().Style("text-align", "center").Body(
		app.H3().Text("Last called: "+last),
		app.Div().Class("called-numbers").Body(called...),
	)
}

func (g *Game) Render() app.UI {
	var content app.UI
	if State.Game == nil {
		content = app.P().Style("text-align", "center").Text(`Click "New Game" to generate a bingo board and start playing!`)
	} else {
		session := State.Game
		var banner app.UI = app.Text("")
		if session.Won() {
			banner = app.Article().Class("bingo-banner").Text("BINGO! You've won!")
		}
		var onClick func(bingo.Coord) app.EventHandler
		if State.GameActive() {
			onClick = g.onCellClick
		}
		content = app.Div().Body(
			g.renderCalled(session),
			banner,
			board{
				card:    session.Card(),
				headers: State.Headers(),
				covered: session.Covered,
				winning: winningCells(session.WinningLines()),
				onClick: onClick,
			}.view(),
		)
	}

	return app.Main().Class("container").Body(
		&TopBar{},
		app.H2().Style("text-align", "center").Text("Online Bingo"),
		g.renderControls(),
		errorBanner(),
		content,
	)
}
