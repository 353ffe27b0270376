// Package api wires the order HTTP API: observability, persistence,
// downstream clients, and the gin router.
package api

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	customersclient "github.com/chronolux/watchstore/internal/clients/customers"
	plansclient "github.com/chronolux/watchstore/internal/clients/plans"
	productsclient "github.com/chronolux/watchstore/internal/clients/products"

	ordersapi "github.com/chronolux/watchstore/internal/domains/orders/adapters/http"
	ordersmemory "github.com/chronolux/watchstore/internal/domains/orders/adapters/memory"
	ordersobs "github.com/chronolux/watchstore/internal/domains/orders/adapters/observability"
	orderspostgres "github.com/chronolux/watchstore/internal/domains/orders/adapters/persistence/postgres"
	ordersapp "github.com/chronolux/watchstore/internal/domains/orders/application"
	ordersports "github.com/chronolux/watchstore/internal/domains/orders/ports"
	"github.com/chronolux/watchstore/internal/platform/migrations"
	platformobservability "github.com/chronolux/watchstore/internal/platform/observability"
	platformpostgres "github.com/chronolux/watchstore/internal/platform/postgres"
)

// Run boots the order HTTP API with observability, persistence, and
// downstream service clients wired.
func Run(ctx context.Context) error {
	const serviceName = "watchstore-order-api"

	cfg, err := LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	instruments, shutdown, err := platformobservability.Init(ctx, serviceName)
	if err != nil {
		return fmt.Errorf("failed to initialize observability: %w", err)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdown(shutdownCtx); err != nil {
			instruments.Logger.Error("failed to shutdown observability", slog.String("error", err.Error()))
		}
	}()
	logger := instruments.Logger

	repo, cleanupRepo, err := buildOrderRepository(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer cleanupRepo()

	httpClient := &http.Client{Timeout: cfg.DownstreamTimeout}
	customerClient, err := customersclient.NewClient(cfg.CustomerServiceURL, httpClient)
	if err != nil {
		return fmt.Errorf("failed to build customer client: %w", err)
	}
	productClient, err := productsclient.NewClient(cfg.ProductServiceURL, httpClient)
	if err != nil {
		return fmt.Errorf("failed to build product client: %w", err)
	}
	planClient, err := plansclient.NewClient(cfg.ServicePlanServiceURL, httpClient)
	if err != nil {
		return fmt.Errorf("failed to build service plan client: %w", err)
	}

	coreService := ordersapp.NewService(repo, customerClient, productClient, planClient)
	orderService := ordersobs.New(
		coreService,
		ordersobs.WithLogger(logger),
		ordersobs.WithTracer(instruments.Tracer("internal.orders.application")),
		ordersobs.WithMeter(instruments.Meter("internal.orders.application")),
	)

	router := gin.Default()
	router.Use(otelgin.Middleware(serviceName))
	ordersapi.NewOrderAPI(orderService).Register(router)

	addr := ":" + cfg.Port
	logger.Info("order API listening", slog.String("addr", addr))
	if err := router.Run(addr); err != nil {
		logger.Error("order API server exited", slog.String("addr", addr), slog.String("error", err.Error()))
		return err
	}
	return nil
}

func buildOrderRepository(ctx context.Context, cfg Config, logger *slog.Logger) (ordersports.Repository, func(), error) {
	db, cleanup := platformpostgres.ConnectWithFallback(ctx, cfg.PostgresDSN, logger)
	if db == nil {
		return ordersmemory.NewRepository(), cleanup, nil
	}
	if err := migrations.Run(db); err != nil {
		cleanup()
		return nil, func() {}, fmt.Errorf("failed to run migrations: %w", err)
	}
	logger.Info("order repository configured with postgres")
	return orderspostgres.NewRepository(db), cleanup, nil
}
