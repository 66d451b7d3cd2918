package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/alecthomas/kong"
	"github.com/janpfeifer/GoBingo/internal/server"
	"k8s.io/klog/v2"
)

// CLI flags override the BINGO_* environment variables.
type CLI struct {
	Addr      string `help:"Address to listen on (default: $BINGO_ADDR, or auto-port on localhost)"`
	WebDir    string `help:"Directory with the static assets and app.wasm (default: $BINGO_WEB_DIR, or ./web)"`
	Verbosity int    `short:"v" help:"Log verbosity level"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli, kong.Description("Serves the GoBingo web application."))

	fs := flag.NewFlagSet("klog", flag.ContinueOnError)
	klog.InitFlags(fs)
	fs.Set("v", fmt.Sprint(cli.Verbosity))
	defer klog.Flush()

	cfg, err := server.LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		ctx.Exit(1)
	}
	if cli.Addr != "" {
		cfg.Addr = cli.Addr
	}
	if cli.WebDir != "" {
		cfg.WebDir = cli.WebDir
	}

	runCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	started := make(chan *server.ServerState, 1)
	go func() {
		state := <-started
		fmt.Printf("GoBingo server listening on http://%s\n", state.Address)
	}()

	if err := server.Run(runCtx, cfg, started); err != nil {
		klog.Fatal(err)
	}
}
