package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/spec-kit/ticket-dashboard/internal/api/http"
	"github.com/spec-kit/ticket-dashboard/internal/api/http/handlers"
	"github.com/spec-kit/ticket-dashboard/internal/apiclient"
	"github.com/spec-kit/ticket-dashboard/internal/config"
	"github.com/spec-kit/ticket-dashboard/internal/events"
	"github.com/spec-kit/ticket-dashboard/internal/observability"
	"github.com/spec-kit/ticket-dashboard/internal/service"
	"github.com/spec-kit/ticket-dashboard/internal/views"
	"github.com/spec-kit/ticket-dashboard/internal/worker"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logger, cfg.App.Name)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	metrics := observability.NewMetrics()

	opts := []apiclient.Option{
		apiclient.WithLogger(logger),
		apiclient.WithMetrics(metrics),
	}
	if cfg.API.StrictStatus {
		opts = append(opts, apiclient.WithStrictStatus())
	}
	client := apiclient.New(cfg.API.BaseURL, opts...)

	dispatcher := events.NewInMemoryDispatcher()
	activityService := service.NewActivityService(dispatcher, logger, cfg.App.ActivityFeedSize)
	worker.StartActivityWorker(activityService)

	ticketService := service.NewTicketService(service.TicketDependencies{
		Backend:    client,
		Activity:   activityService,
		Theme:      views.NewTheme(cfg.Theme.Mode),
		Dispatcher: dispatcher,
		Logger:     logger,
	})

	app := fiber.New(fiber.Config{
		AppName:   cfg.App.Name,
		BodyLimit: 32 << 20,
	})
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout())

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:    handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, client),
		Dashboard: handlers.NewDashboardHandler(ticketService),
		Tickets:   handlers.NewTicketsHandler(ticketService),
		Metrics:   metrics,
	})

	logger.Info("starting dashboard",
		zap.String("addr", cfg.App.Addr()),
		zap.String("ticket_api", client.BaseURL()))

	go func() {
		if err := app.Listen(cfg.App.Addr()); err != nil {
			logger.Fatal("fiber listen", zap.Error(err))
		}
	}()

	waitForShutdown(logger)

	_ = app.Shutdown()
}

func waitForShutdown(logger *zap.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logger.Info("shutting down", zap.String("signal", sig.String()))
}
