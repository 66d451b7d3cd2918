package server

import (
	"context"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// startServer runs the server until the test ends and returns its address.
func startServer(t *testing.T, cfg Config) string {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())

	started := make(chan *ServerState, 1)
	errCh := make(chan error, 1)
	go func() {
		errCh <- Run(ctx, cfg, started)
	}()

	var state *ServerState
	select {
	case state = <-started:
	case err := <-errCh:
		cancel()
		t.Fatalf("Server failed to start: %v", err)
	case <-time.After(5 * time.Second):
		cancel()
		t.Fatalf("Server took too long to start")
	}

	t.Cleanup(func() {
		// Cancel the context to stop the server, and wait for a clean shutdown.
		cancel()
		select {
		case err := <-errCh:
			assert.NoError(t, err, "Server shut down with error")
		case <-time.After(2 * time.Second):
			t.Errorf("Server took too long to shut down")
		}
	})
	return state.Address
}

func get(t *testing.T, url string) (int, string) {
	t.Helper()
	resp, err := http.Get(url)
	require.NoError(t, err, "Failed to connect to server")
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err, "Failed to read body")
	return resp.StatusCode, string(body)
}

func TestServerRun(t *testing.T) {
	addr := startServer(t, Config{AppName: "GoBingo", WebDir: t.TempDir()})

	// The go-app framework generates standard HTML, with our app name in it.
	status, body := get(t, "http://"+addr+"/")
	assert.Equal(t, http.StatusOK, status)
	assert.Contains(t, body, "GoBingo")
	assert.Contains(t, body, PicoCSS)
	assert.Contains(t, body, "/web/css/main.css")

	for _, path := range []string{"/play", "/game", "/print"} {
		status, _ := get(t, "http://"+addr+path)
		assert.Equal(t, http.StatusOK, status, path)
	}
}

func TestServerStaticAssets(t *testing.T) {
	webDir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(webDir, "css"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(webDir, "css", "main.css"), []byte(".bingo-card{}"), 0o644))

	addr := startServer(t, Config{AppName: "GoBingo", WebDir: webDir})
	status, body := get(t, "http://"+addr+"/web/css/main.css")
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, ".bingo-card{}", body)

	status, _ = get(t, "http://"+addr+"/web/css/missing.css")
	assert.Equal(t, http.StatusNotFound, status)
}

func TestRunInvalidAddress(t *testing.T) {
	err := Run(context.Background(), Config{Addr: "256.0.0.1:-1"}, nil)
	assert.Error(t, err)
}

func TestLoadConfig(t *testing.T) {
	t.Setenv("BINGO_ADDR", "127.0.0.1:9090")
	t.Setenv("BINGO_WEB_DIR", "/srv/bingo")
	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1:9090", cfg.Addr)
	assert.Equal(t, "/srv/bingo", cfg.WebDir)
	assert.Equal(t, "GoBingo", cfg.AppName)
}
