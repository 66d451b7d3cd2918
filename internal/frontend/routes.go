package frontend

import "github.com/maxence-charriere/go-app/v10/pkg/app"

// RegisterRoutes maps the page paths to their components. It is used both by
// the WASM client and by the server, to prerender the pages.
func RegisterRoutes() {
	app.Route("/", func() app.Composer { return &Home{} })
	app.Route("/play", func() app.Composer { return &Play{} })
	app.Route("/game", func() app.Composer { return &Game{} })
	app.Route("/print", func() app.Composer { return &Print{} })
}
