package main

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/DanielPopoola/cxtrauma-orders/internal/adapters/catalog"
	"github.com/DanielPopoola/cxtrauma-orders/internal/adapters/clock"
	"github.com/DanielPopoola/cxtrauma-orders/internal/adapters/handler"
	"github.com/DanielPopoola/cxtrauma-orders/internal/adapters/memory"
	"github.com/DanielPopoola/cxtrauma-orders/internal/adapters/middleware"
	"github.com/DanielPopoola/cxtrauma-orders/internal/adapters/postgres"
	"github.com/DanielPopoola/cxtrauma-orders/internal/adapters/redis"
	"github.com/DanielPopoola/cxtrauma-orders/internal/adapters/sqlite"
	"github.com/DanielPopoola/cxtrauma-orders/internal/config"
	"github.com/DanielPopoola/cxtrauma-orders/internal/core/ports"
	"github.com/DanielPopoola/cxtrauma-orders/internal/core/service"
	"github.com/DanielPopoola/cxtrauma-orders/internal/metrics"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	logger := cfg.Logger.NewLogger()
	slog.SetDefault(logger)

	logger.Info("starting order service",
		"port", cfg.Server.Port,
		"env", cfg.Primary.Env,
		"storage", cfg.Storage.Driver,
		"log_level", cfg.Logger.Level,
	)

	ctx := context.Background()
	checks := map[string]handler.HealthCheck{}

	cat, err := catalog.Load(cfg.Catalog.Path)
	if err != nil {
		logger.Error("failed to load catalog", "path", cfg.Catalog.Path, "error", err)
		os.Exit(1)
	}

	records, closeRecords, err := openRecordStore(ctx, cfg, logger, checks)
	if err != nil {
		logger.Error("failed to open record store", "driver", cfg.Storage.Driver, "error", err)
		os.Exit(1)
	}
	defer closeRecords.Close()

	var sessions ports.CartSessionStore = memory.NewCartSessionStore()
	redisClient, err := redis.New(ctx, cfg.Redis.URL)
	if err != nil {
		logger.Error("failed to connect to redis", "error", err)
		os.Exit(1)
	}
	if redisClient != nil {
		defer redisClient.Close()
		sessions = redis.NewCartSessionStore(redisClient.Client, cfg.Redis.TTL)
		checks["redis"] = redisClient.Health
		logger.Info("cart sessions stored in redis", "ttl", cfg.Redis.TTL)
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	m := metrics.New(registry)

	validator, err := service.NewFormValidator()
	if err != nil {
		logger.Error("failed to build form validator", "error", err)
		os.Exit(1)
	}

	submissions := service.NewSubmissionService(
		validator,
		cat,
		records,
		clock.NewTimerDelay(cfg.Submission.Delay),
		clock.System{},
		m,
		cfg.Submission.Namespace,
		logger,
	)
	carts := service.NewCartService(
		sessions,
		cat,
		records,
		clock.System{},
		m,
		cfg.Submission.ExamNamespace,
		logger,
	)

	h := handler.NewOrderHandler(submissions, carts, cat, records, checks)

	mux := http.NewServeMux()
	h.RegisterRoutes(mux)
	mux.Handle("GET /metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))

	router := http.Handler(mux)

	httpHandler := middleware.Recovery(logger)(router)
	httpHandler = middleware.Logging(logger)(httpHandler)
	httpHandler = middleware.Timeout(cfg.Server.RequestTimeout)(httpHandler)

	server := &http.Server{
		Addr:         "0.0.0.0:" + cfg.Server.Port,
		Handler:      httpHandler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	go func() {
		logger.Info("server starting", "addr", server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
	}

	logger.Info("server exited")
}

type closerFunc func() error

func (f closerFunc) Close() error { return f() }

// openRecordStore selects the record store for the configured driver.
func openRecordStore(
	ctx context.Context,
	cfg *config.Config,
	logger *slog.Logger,
	checks map[string]handler.HealthCheck,
) (ports.RecordStore, io.Closer, error) {
	switch cfg.Storage.Driver {
	case config.StorageSQLite:
		store, err := sqlite.New(cfg.Storage.SQLitePath)
		if err != nil {
			return nil, nil, err
		}
		logger.Info("records stored in sqlite", "path", cfg.Storage.SQLitePath)
		return store, store, nil

	case config.StoragePostgres:
		db, err := postgres.Connect(ctx, &cfg.Database, logger)
		if err != nil {
			return nil, nil, err
		}
		if err := db.Migrate(ctx); err != nil {
			db.Close()
			return nil, nil, err
		}
		checks["postgres"] = db.Pool.Ping
		return postgres.NewRecordStore(db), closerFunc(func() error {
			db.Close()
			return nil
		}), nil

	default:
		logger.Warn("records kept in memory and lost on restart")
		return memory.NewRecordStore(), closerFunc(func() error { return nil }), nil
	}
}
