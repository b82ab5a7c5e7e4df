package main

import (
	"context"
	"log/slog"
	"os"

	_ "github.com/JonMunkholm/metagen/internal/core/schemas" // Register all schemas
	"github.com/joho/godotenv"
)

func main() {
	// Load .env file if it exists; explicit environment variables win
	if err := godotenv.Load(); err == nil {
		slog.Debug("loaded .env file")
	}

	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		reportError(os.Stderr, err)
		os.Exit(1)
	}
}
