package server

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/janpfeifer/GoBingo/internal/bingo"
	"github.com/janpfeifer/GoBingo/internal/frontend"
	"github.com/maxence-charriere/go-app/v10/pkg/app"
	"golang.org/x/sync/errgroup"
	"k8s.io/klog/v2"
)

// PicoCSS is the Pico stylesheet the pages are laid out with (container, grid,
// button variants). It is served by a CDN, not from the web directory.
const PicoCSS = "https://cdn.jsdelivr.net/npm/@picocss/pico@2/css/pico.min.css"

// ServerState is reported once the server is listening.
type ServerState struct {
	// Address the server is bound to, as host:port.
	Address string
}

// Handler returns the HTTP handler serving the web assets and the go-app UI.
func Handler(cfg Config) http.Handler {
	// Prerendering runs the components server side, so they need state and routes.
	frontend.InitState()
	frontend.RegisterRoutes()

	h := &app.Handler{
		Name:        cfg.AppName,
		ShortName:   "Bingo",
		Title:       cfg.AppName,
		Description: "Bingo card generator and caller",
		Version:     bingo.Version,
		Styles: []string{
			PicoCSS,
			"/web/css/main.css", // Card grid and print layout.
		},
	}

	mux := http.NewServeMux()
	mux.Handle("/web/", http.StripPrefix("/web/", http.FileServer(http.Dir(cfg.WebDir))))
	mux.Handle("/", h)
	return mux
}

// Run starts the server and blocks until the context is canceled.
//
// If started is not nil, the server state is sent to it once the server is listening.
func Run(ctx context.Context, cfg Config, started chan<- *ServerState) error {
	addr := cfg.Addr
	if addr == "" {
		addr = "localhost:0"
	}
	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return err
	}

	srv := &http.Server{
		Handler:           Handler(cfg),
		ReadHeaderTimeout: 10 * time.Second,
	}
	state := &ServerState{Address: listener.Addr().String()}
	klog.Infof("Server started on %s", state.Address)
	if started != nil {
		started <- state
	}

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := srv.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			klog.Errorf("Server error: %v", err)
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gCtx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		klog.Infof("Shutting down server...")
		return srv.Shutdown(shutdownCtx)
	})
	return g.Wait()
}
