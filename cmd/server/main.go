// Command server runs the diary HTTP API.
//
// Configuration is read from config.yml and the environment; see
// internal/config for the full list of settings.
package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"github.com/norahazel/mydiary-backend/internal/app"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := app.Run(ctx); err != nil {
		log.Fatalf("application error: %v", err)
	}
}
