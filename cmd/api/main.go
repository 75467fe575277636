package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"skribe/internal/bootstrap"
	"skribe/internal/shared/config"
	"skribe/internal/shared/server"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg := config.Load()
	app, err := bootstrap.Build(ctx, cfg)
	if err != nil {
		log.Fatalf("bootstrap: %v", err)
	}

	addr := server.Addr(cfg.Port)
	log.Printf("Starting API server on %s", addr)

	if err := server.Run(ctx, addr, app.Router); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
