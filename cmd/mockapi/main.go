package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/spec-kit/ticket-dashboard/internal/config"
	"github.com/spec-kit/ticket-dashboard/internal/mockapi"
	"github.com/spec-kit/ticket-dashboard/internal/observability"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logger, "ticket-mock-api")
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	store := mockapi.NewStore()
	if cfg.MockAPI.Seed {
		mockapi.Seed(store)
	}
	app := mockapi.NewApp(store, logger)

	logger.Info("starting mock ticket api", zap.String("addr", cfg.MockAPI.Addr()), zap.Bool("seeded", cfg.MockAPI.Seed))

	go func() {
		if err := app.Listen(cfg.MockAPI.Addr()); err != nil {
			logger.Fatal("fiber listen", zap.Error(err))
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	sig := <-sigCh
	logger.Info("shutting down", zap.String("signal", sig.String()))

	_ = app.Shutdown()
}
