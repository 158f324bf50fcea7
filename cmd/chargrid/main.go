// Package main is the entry point for chargrid.
package main

import (
	"context"
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/samdwyer/chargrid/internal/editor"
	"github.com/samdwyer/chargrid/internal/telemetry"
)

func main() {
	// Load .env for local development; env vars may also be set directly.
	if err := godotenv.Load(); err != nil {
		log.Printf("Note: .env file not loaded: %v", err)
	}

	ctx := context.Background()

	// Initialize telemetry. The editor works fine without it.
	shutdown, err := telemetry.Setup(ctx)
	if err != nil {
		log.Printf("Warning: telemetry setup failed: %v", err)
		log.Printf("Editor will run without observability")
	} else {
		defer func() {
			if err := shutdown(ctx); err != nil {
				log.Printf("Error shutting down telemetry: %v", err)
			}
		}()
	}

	e, err := editor.New(editor.Config{
		Preset: os.Getenv("CHARGRID_PRESET"),
	})
	if err != nil {
		log.Fatalf("Failed to initialize editor: %v", err)
	}

	if err := e.Run(ctx); err != nil {
		log.Fatalf("Editor error: %v", err)
	}
}
