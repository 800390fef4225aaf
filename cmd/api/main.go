// Package main is the entry point for the Ibadah Tracker API server.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"

	"github.com/ibadah-tracker/backend/config"
	"github.com/ibadah-tracker/backend/internal/application/adapter"
	"github.com/ibadah-tracker/backend/internal/infra/db"
	"github.com/ibadah-tracker/backend/internal/infra/dependency"
	"github.com/ibadah-tracker/backend/internal/integration/adapters"
	"github.com/ibadah-tracker/backend/internal/integration/persistence"
	"github.com/ibadah-tracker/backend/internal/integration/persistence/model"
)

func main() {
	// Load .env file if it exists (development only)
	_ = godotenv.Load()

	// Load configuration
	cfg := config.Load()

	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: parseLogLevel(cfg.LogLevel),
	}))
	slog.SetDefault(logger)

	slog.Info("Starting Ibadah Tracker API",
		"environment", cfg.Server.Environment,
		"host", cfg.Server.Host,
		"port", cfg.Server.Port,
		"store", cfg.Store.Engine,
	)

	if err := run(cfg, logger); err != nil {
		slog.Error("Server stopped with error", "error", err)
		os.Exit(1)
	}
	slog.Info("Server exited properly")
}

func run(cfg *config.Config, logger *slog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Open the record store
	var (
		database    *db.Database
		redisClient *redis.Client
		healthCheck func(ctx context.Context) bool
		err         error
	)
	switch cfg.Store.Engine {
	case persistence.EngineSQLite, persistence.EnginePostgres:
		database, err = db.NewConnection(&cfg.Store)
		if err != nil {
			return err
		}
		defer func() {
			if err := database.Close(); err != nil {
				slog.Error("Failed to close database connection", "error", err)
			}
		}()
		if err := database.AutoMigrate(&model.RecordModel{}); err != nil {
			return fmt.Errorf("failed to run database migrations: %w", err)
		}
		slog.Info("Database migrations completed successfully")
		healthCheck = database.HealthCheck
	case persistence.EngineRedis:
	default:
		return fmt.Errorf("unknown store engine %q", cfg.Store.Engine)
	}

	if cfg.Store.Engine == persistence.EngineRedis || cfg.Redis.SyncEnabled {
		redisClient, err = db.NewRedisClient(&cfg.Redis)
		if err != nil {
			return err
		}
		defer func() {
			if err := redisClient.Close(); err != nil {
				slog.Error("Failed to close redis connection", "error", err)
			}
		}()
		if healthCheck == nil {
			healthCheck = db.RedisHealthCheck(redisClient)
		}
	}

	var gormDB *gorm.DB
	if database != nil {
		gormDB = database.DB()
	}
	store, err := persistence.NewByEngine(cfg.Store.Engine, gormDB, redisClient)
	if err != nil {
		return err
	}

	// Collaborators
	clock := adapters.NewSystemClock(cfg.Engine.Location())
	schedules, err := adapters.NewScheduleFileProvider(cfg.Prayer.SchedulePath)
	if err != nil {
		return fmt.Errorf("failed to load prayer schedule: %w", err)
	}

	var remote adapter.SyncRemote
	if cfg.Redis.SyncEnabled {
		remote = adapters.NewRedisSyncRemote(redisClient, cfg.Redis.SyncPrefix)
		slog.Info("Sync remote enabled", "prefix", cfg.Redis.SyncPrefix)
	}

	sink, closeSink, err := newAnalyticsSink(cfg.Analytics, logger)
	if err != nil {
		return err
	}
	defer closeSink()

	injector := dependency.NewInjector(cfg, dependency.Dependencies{
		Store:       store,
		Clock:       clock,
		Schedules:   schedules,
		Sink:        sink,
		Remote:      remote,
		HealthCheck: healthCheck,
	})

	// Create HTTP server
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      injector.Router.Setup(cfg.Server.Environment),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		slog.Info("Server listening", "address", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	})

	if injector.SyncWorker != nil {
		g.Go(func() error {
			injector.SyncWorker.Start(gctx)
			return nil
		})
	}
	if injector.RetentionWorker != nil {
		g.Go(func() error {
			injector.RetentionWorker.Start(gctx)
			return nil
		})
	}

	// Graceful shutdown
	g.Go(func() error {
		<-gctx.Done()
		slog.Info("Shutting down server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("server forced to shutdown: %w", err)
		}
		return nil
	})

	return g.Wait()
}

// newAnalyticsSink builds the configured sink and the function that releases it.
func newAnalyticsSink(cfg config.AnalyticsConfig, logger *slog.Logger) (adapter.AnalyticsSink, func(), error) {
	switch cfg.Sink {
	case "mqtt":
		sink, err := adapters.NewMQTTAnalyticsSink(cfg.MQTTBroker, cfg.ClientID, cfg.MQTTTopic)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to connect analytics broker: %w", err)
		}
		return sink, sink.Close, nil
	case "none":
		return adapters.NoopAnalyticsSink{}, func() {}, nil
	default:
		return adapters.NewLogAnalyticsSink(logger), func() {}, nil
	}
}

func parseLogLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
