package frontend

import (
	"github.com/maxence-charriere/go-app/v10/pkg/app"
	"k8s.io/klog/v2"
)

// Home is the landing page component: a menu of the three modes.
type Home struct {
	app.Compo
}

func (h *Home) OnMount(ctx app.Context) {
	klog.V(1).Infof("Home: OnMount called")
}

func (h *Home) OnAppUpdate(ctx app.Context) {
	klog.Infof("Home component: App update available, reloading...")
	ctx.Reload()
}

func (h *Home) Render() app.UI {
	entry := func(href, title, description string) app.UI {
		return app.Article().Body(
			app.Header().Body(app.H3().Text(title)),
			app.P().Text(description),
			app.A().Href(href).Attr("role", "button").Text(title),
		)
	}

	return app.Main().Class("container").Body(
		&TopBar{},
		app.H1().Style("text-align", "center").Text("Bingo Game"),
		app.Div().Class("grid").Body(
			entry("/play", "Play Online", "Get a card of the size you like and mark the numbers as they are called."),
			entry("/game", "Classic Game", "A B-I-N-G-O card with its own number caller. Mark a full line to win."),
			entry("/print", "Get Cards to Print", "Generate a batch of cards for everybody at the table and print them."),
		),
	)
}
