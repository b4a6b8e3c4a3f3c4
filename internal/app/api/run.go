package api

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	cataloghttp "github.com/qashop/storefront-api/internal/domains/catalog/adapters/http"
	catalogstatic "github.com/qashop/storefront-api/internal/domains/catalog/adapters/static"
	ordershttp "github.com/qashop/storefront-api/internal/domains/orders/adapters/http"
	ordersmemory "github.com/qashop/storefront-api/internal/domains/orders/adapters/memory"
	ordersnumbers "github.com/qashop/storefront-api/internal/domains/orders/adapters/numbers"
	ordersobs "github.com/qashop/storefront-api/internal/domains/orders/adapters/observability"
	orderspostgres "github.com/qashop/storefront-api/internal/domains/orders/adapters/persistence/postgres"
	ordersredis "github.com/qashop/storefront-api/internal/domains/orders/adapters/redis"
	ordersapp "github.com/qashop/storefront-api/internal/domains/orders/application"
	ordersports "github.com/qashop/storefront-api/internal/domains/orders/ports"
	"github.com/qashop/storefront-api/internal/platform/migrations"
	platformobservability "github.com/qashop/storefront-api/internal/platform/observability"
	platformpostgres "github.com/qashop/storefront-api/internal/platform/postgres"
)

// Run boots the storefront HTTP API with observability, repositories, and
// the order intake pipeline wired. It blocks until ctx is cancelled.
func Run(ctx context.Context) error {
	// Local convenience, absent files are fine.
	_ = godotenv.Load()

	cfg, err := LoadConfig(envOrDefault("CONFIG_DIR", "configs"), os.Getenv("APP_ENV"))
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	instruments, shutdown, err := platformobservability.Init(ctx, cfg.App.Name, cfg.App.LogFile)
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

	orderRepo, cleanupRepo := buildOrderRepository(ctx, cfg, logger)
	defer cleanupRepo()

	idemStore, cleanupIdem := buildIdempotencyStore(cfg, logger)
	defer cleanupIdem()

	coreOrderService := ordersapp.NewService(
		orderRepo,
		ordersnumbers.NewUUIDGenerator(),
		ordersapp.WithIdempotencyStore(idemStore),
	)

	// Repair and seed the ledger before accepting traffic so every read
	// observes a fully-populated status column.
	if filled, err := coreOrderService.BackfillStatuses(ctx); err != nil {
		logger.Error("status backfill failed", slog.String("error", err.Error()))
	} else if filled > 0 {
		logger.Info("backfilled order statuses", slog.Int64("count", filled))
	}
	if cfg.Seed.SampleOrders {
		if err := coreOrderService.SeedSampleOrders(ctx); err != nil {
			logger.Error("sample order seed failed", slog.String("error", err.Error()))
		}
	}

	orderService := ordersobs.New(
		coreOrderService,
		ordersobs.WithLogger(logger),
		ordersobs.WithTracer(instruments.Tracer("internal.orders.application")),
		ordersobs.WithMeter(instruments.Meter("internal.orders.application")),
	)

	router := NewRouter(
		cfg.App.Name,
		logger,
		ordershttp.NewOrdersAPI(orderService),
		cataloghttp.NewCatalogAPI(catalogstatic.NewProvider()),
	)

	server := &http.Server{
		Addr:         cfg.App.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
		IdleTimeout:  cfg.HTTP.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("storefront API listening", slog.String("addr", cfg.App.HTTPAddr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			logger.Error("storefront API server exited", slog.String("error", err.Error()))
		}
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown failed", slog.String("error", err.Error()))
		return err
	}
	logger.Info("storefront API stopped")
	return nil
}

// buildOrderRepository prefers Postgres when a DSN is configured and degrades
// to the in-memory ledger otherwise.
func buildOrderRepository(ctx context.Context, cfg Config, logger *slog.Logger) (ordersports.Repository, func()) {
	dsn := strings.TrimSpace(cfg.Postgres.DSN)
	if dsn == "" {
		logger.Warn("postgres.dsn not set, falling back to in-memory order repository")
		return ordersmemory.NewRepository(), func() {}
	}
	db, err := platformpostgres.Connect(ctx, dsn)
	if err != nil {
		logger.Warn("failed to connect to postgres, falling back to memory", slog.String("error", err.Error()))
		return ordersmemory.NewRepository(), func() {}
	}
	if err := migrations.Run(db); err != nil {
		logger.Warn("failed to run migrations, falling back to memory", slog.String("error", err.Error()))
		return ordersmemory.NewRepository(), func() {}
	}
	sqlDB, err := db.DB()
	if err != nil {
		logger.Warn("failed to unwrap postgres connection, falling back to memory", slog.String("error", err.Error()))
		return ordersmemory.NewRepository(), func() {}
	}
	logger.Info("order repository configured with postgres")
	return orderspostgres.NewRepository(db), func() { _ = sqlDB.Close() }
}

// buildIdempotencyStore uses Redis when configured so replay detection
// survives restarts, otherwise keeps records in process memory.
func buildIdempotencyStore(cfg Config, logger *slog.Logger) (ordersports.IdempotencyStore, func()) {
	addr := strings.TrimSpace(cfg.Redis.Addr)
	if addr == "" {
		return ordersmemory.NewIdempotencyStore(), func() {}
	}
	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: cfg.Redis.Password,
	})
	logger.Info("idempotency store configured with redis", slog.String("addr", addr))
	return ordersredis.NewIdempotencyStore(rdb, cfg.Idempotency.TTL), func() { _ = rdb.Close() }
}

func envOrDefault(key, fallback string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return fallback
}
