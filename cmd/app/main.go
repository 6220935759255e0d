package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"RegimeSim/internal/di"
	"RegimeSim/pkg/config"
)

func main() {
	// All parameters are fixed in code.
	cfg, err := config.Default()
	if err != nil {
		log.Fatalf("config failed: %v", err)
	}

	app, err := di.InitializeApp(cfg)
	if err != nil {
		log.Fatalf("app initialization failed: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := app.Run(ctx); err != nil {
		log.Printf("app error: %v", err)
		stop()
		os.Exit(1)
	}
}
