package main

import (
	"context"
	"errors"
	"math/rand"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/multierr"

	"github.com/trendiesmaroc/admin-backend/api/routes"
	"github.com/trendiesmaroc/admin-backend/internal/email"
	"github.com/trendiesmaroc/admin-backend/internal/events"
	"github.com/trendiesmaroc/admin-backend/internal/notifications"
	"github.com/trendiesmaroc/admin-backend/internal/simulator"
	"github.com/trendiesmaroc/admin-backend/internal/store"
	"github.com/trendiesmaroc/admin-backend/pkg/config"
	"github.com/trendiesmaroc/admin-backend/pkg/logger"
	"github.com/trendiesmaroc/admin-backend/pkg/metrics"
)

const shutdownGrace = 10 * time.Second

func main() {
	logg := logger.New(logger.Options{ServiceName: "admin-api"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "admin-api",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	st := store.New(store.Params{
		Now:  time.Now,
		Rand: rand.New(rand.NewSource(time.Now().UnixNano())),
	})

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector())
	eventMetrics := metrics.NewEventMetrics(registry)

	publisher := notifications.NewPublisher()
	notificationsService, err := notifications.NewService(st, publisher, eventMetrics)
	if err != nil {
		logg.Error(context.Background(), "failed to create notifications service", err)
		os.Exit(1)
	}

	gateway, err := email.NewGateway(email.Params{
		Config:  cfg.Brevo,
		Store:   st,
		Logger:  logg,
		Metrics: eventMetrics,
	})
	if err != nil {
		logg.Error(context.Background(), "failed to create email gateway", err)
		os.Exit(1)
	}
	if !cfg.Brevo.Configured() {
		logg.Warn(context.Background(), "brevo api key absent, email runs in simulation mode")
	}

	dispatcher, err := events.NewDispatcher(events.Params{
		Store:         st,
		Notifications: notificationsService,
		Gateway:       gateway,
		Logger:        logg,
		Metrics:       eventMetrics,
	})
	if err != nil {
		logg.Error(context.Background(), "failed to create event dispatcher", err)
		os.Exit(1)
	}

	sim, err := simulator.New(simulator.Params{
		Store:         st,
		Dispatcher:    dispatcher,
		Notifications: notificationsService,
		Logger:        logg,
		Metrics:       eventMetrics,
		MinDelay:      cfg.Simulator.MinDelay,
		MaxDelay:      cfg.Simulator.MaxDelay,
	})
	if err != nil {
		logg.Error(context.Background(), "failed to create simulator", err)
		os.Exit(1)
	}
	if cfg.Simulator.AutoStart {
		sim.Start()
	}

	handler := routes.NewRouter(routes.Deps{
		Config:        cfg,
		Logger:        logg,
		Store:         st,
		Dispatcher:    dispatcher,
		Notifications: notificationsService,
		Publisher:     publisher,
		Simulator:     sim,
		Metrics:       registry,
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.App.Port
	}
	addr := ":" + port

	ctx := logg.WithFields(context.Background(), map[string]any{
		"env":  cfg.App.Env,
		"addr": addr,
	})
	logg.Info(ctx, "starting admin api server")

	server := &http.Server{
		Addr:    addr,
		Handler: handler,
	}

	serverErr := make(chan error, 1)
	go func() {
		serverErr <- server.ListenAndServe()
	}()

	stopCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	select {
	case err := <-serverErr:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logg.Error(ctx, "admin api server stopped unexpectedly", err)
			os.Exit(1)
		}
	case <-stopCtx.Done():
		logg.Info(ctx, "shutdown signal received")
	}

	sim.Stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownGrace)
	defer cancel()

	var errs error
	if err := server.Shutdown(shutdownCtx); err != nil {
		errs = multierr.Append(errs, err)
	}
	if err := <-serverErr; err != nil && !errors.Is(err, http.ErrServerClosed) {
		errs = multierr.Append(errs, err)
	}
	if errs != nil {
		logg.Error(ctx, "shutdown finished with errors", errs)
		os.Exit(1)
	}
	logg.Info(ctx, "shutdown complete")
}
