package frontend

import (
	"github.com/maxence-charriere/go-app/v10/pkg/app"
)

// TopBar is the navigation shared by all pages. It is hidden when printing.
type TopBar struct {
	app.Compo
}

func (t *TopBar) onBannerClick(ctx app.Context, e app.Event) {
	ctx.Navigate("/")
}

func (t *TopBar) Render() app.UI {
	links := []app.UI{
		app.Li().Body(app.A().Href("/play").Text("Play")),
		app.Li().Body(app.A().Href("/game").Text("Classic Game")),
		app.Li().Body(app.A().Href("/print").Text("Print Cards")),
	}

	return app.Nav().Class("no-print").Body(
		app.Ul().Body(
			app.Li().Body(
				app.Strong().
					Text("GoBingo").
					Style("cursor", "pointer").
					OnClick(t.onBannerClick),
			),
		),
		app.Ul().Body(links...),
	)
}
