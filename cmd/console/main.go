package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/avc-dev/url-shortener-console/internal/config"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return newRootCmd(cfg, defaultDeps()).ExecuteContext(ctx)
}
