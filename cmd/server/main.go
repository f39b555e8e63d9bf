package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/nfrund/gopang/internal/config"
	"github.com/nfrund/gopang/internal/logging"
	"github.com/nfrund/gopang/internal/server"
)

// AppAssets can be set at build time to force a static asset source.
// Example: go build -ldflags "-X 'main.AppAssets=disk'"
var AppAssets string

func main() {
	if AppAssets != "" {
		os.Setenv("APP_ASSETS", AppAssets)
	}

	cfg := config.New()
	logging.New() // Initialize the structured logger

	// Create a new server instance.
	s, err := server.New(cfg)
	if err != nil {
		slog.Error("Failed to create server", "error", err)
		os.Exit(1)
	}

	// Register all application routes.
	s.RegisterRoutes()

	// Start the server.
	if err := s.Start(context.Background()); err != nil {
		slog.Error("Server stopped with error", "error", err)
		os.Exit(1)
	}
}
