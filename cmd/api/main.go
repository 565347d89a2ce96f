package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/angelmondragon/menucart/api/controllers/cart"
	"github.com/angelmondragon/menucart/api/routes"
	cartsvc "github.com/angelmondragon/menucart/internal/cart"
	"github.com/angelmondragon/menucart/internal/catalog"
	"github.com/angelmondragon/menucart/internal/orders"
	"github.com/angelmondragon/menucart/internal/quantity"
	"github.com/angelmondragon/menucart/internal/session"
	"github.com/angelmondragon/menucart/pkg/config"
	"github.com/angelmondragon/menucart/pkg/logger"
	"github.com/angelmondragon/menucart/pkg/metrics"
	"github.com/angelmondragon/menucart/pkg/redis"
)

const shutdownTimeout = 10 * time.Second

func main() {
	logg := logger.New(logger.Options{ServiceName: "api"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "api",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		Format:      cfg.App.LogFormat,
		WarnStack:   cfg.App.LogWarnStack,
	})

	menu, err := catalog.Load(cfg.Catalog.Path)
	if err != nil {
		logg.Error(logg.WithField(context.Background(), "catalog_path", cfg.Catalog.Path), "failed to load catalog", err)
		os.Exit(1)
	}

	sessions, err := session.NewRegistry(cartsvc.Options{
		DeliveryFee: cfg.Cart.DeliveryFee,
		Quantity: quantity.Bounds{
			Min:     cfg.Amount.Min,
			Max:     cfg.Amount.Max,
			Default: cfg.Amount.Default,
		},
	})
	if err != nil {
		logg.Error(context.Background(), "invalid cart configuration", err)
		os.Exit(1)
	}

	var submitter cart.OrderSubmitter
	if cfg.Orders.SubmissionEnabled() {
		client, err := orders.NewClient(cfg.Orders)
		if err != nil {
			logg.Error(context.Background(), "failed to create order client", err)
			os.Exit(1)
		}
		submitter = client
	} else {
		logg.Warn(context.Background(), "order endpoint not configured, orders will not be forwarded")
	}

	var redisClient *redis.Client
	if cfg.Redis.Enabled() {
		redisClient, err = redis.New(context.Background(), cfg.Redis, logg)
		if err != nil {
			logg.Error(context.Background(), "failed to bootstrap redis", err)
			os.Exit(1)
		}
		defer func() {
			if err := redisClient.Close(); err != nil {
				logg.Error(context.Background(), "error closing redis", err)
			}
		}()
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	cartMetrics := metrics.NewCartMetrics(registry)

	addr := ":" + cfg.App.Port
	ctx := logg.WithFields(context.Background(), map[string]any{
		"env":        cfg.App.Env,
		"addr":       addr,
		"products":   menu.Len(),
		"orders_on":  submitter != nil,
		"redis_on":   redisClient != nil,
		"fee":        cfg.Cart.DeliveryFee.String(),
		"amount_max": cfg.Amount.Max,
	})
	logg.Info(ctx, "starting api server")

	server := &http.Server{
		Addr:              addr,
		Handler:           routes.NewRouter(cfg, logg, menu, sessions, submitter, redisClient, registry, cartMetrics),
		ReadHeaderTimeout: 5 * time.Second,
	}

	runCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logg.Error(ctx, "api server stopped unexpectedly", err)
			os.Exit(1)
		}
	case <-runCtx.Done():
		logg.Info(ctx, "shutting down api server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			logg.Error(ctx, "graceful shutdown failed", err)
		}
	}
}
