package server

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config of the web server.
type Config struct {
	// Addr to listen on. Empty means an automatically chosen port on localhost.
	Addr string `env:"BINGO_ADDR"`

	// WebDir holds the static assets served under /web/, including the
	// compiled app.wasm.
	WebDir string `env:"BINGO_WEB_DIR" envDefault:"web"`

	// AppName is used as page title and in the web manifest.
	AppName string `env:"BINGO_APP_NAME" envDefault:"GoBingo"`
}

// LoadConfig reads the configuration from the environment.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
