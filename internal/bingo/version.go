package bingo

// Version of the application.
// Bumping this number will eventually make clients reload the WASM.
//
// If you set this to an empty string, go-app picks a random version on every
// server restart, which forces the reload of the WASM each time.
// This is useful during development.
var Version = "v0.1.0"
