package dependency

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/ibadah-tracker/backend/config"
	"github.com/ibadah-tracker/backend/internal/integration/adapters"
	"github.com/ibadah-tracker/backend/internal/integration/persistence"
	"github.com/ibadah-tracker/backend/internal/integration/persistence/mock"
	"github.com/ibadah-tracker/backend/internal/integration/persistence/model"
)

func newTestDependencies(t *testing.T, withRemote bool) Dependencies {
	t.Helper()

	db := mock.NewDb(&model.RecordModel{})
	t.Cleanup(db.Close)

	schedules, err := adapters.NewScheduleFileProvider("")
	if err != nil {
		t.Fatalf("load schedule: %v", err)
	}

	deps := Dependencies{
		Store:       persistence.NewGormRecordStore(db.DbConn),
		Clock:       adapters.NewFixedClock(time.Date(2024, 3, 10, 10, 0, 0, 0, time.UTC)),
		Schedules:   schedules,
		Sink:        adapters.NoopAnalyticsSink{},
		HealthCheck: func(ctx context.Context) bool { return true },
	}
	if withRemote {
		redis := mock.NewRedis()
		t.Cleanup(redis.Close)
		deps.Remote = adapters.NewRedisSyncRemote(redis.Client, "test:")
	}
	return deps
}

func testConfig() *config.Config {
	cfg := config.Load()
	cfg.Server.Environment = "test"
	cfg.Store.Engine = persistence.EngineSQLite
	cfg.CORS.AllowedOrigins = nil
	return cfg
}

func TestNewInjector_Routes(t *testing.T) {
	injector := NewInjector(testConfig(), newTestDependencies(t, false))
	engine := injector.Router.Setup("test")

	registered := make(map[string]bool)
	for _, route := range engine.Routes() {
		registered[route.Method+" "+route.Path] = true
	}

	for _, route := range []string{
		"GET /health",
		"POST /api/v1/devices",
		"GET /api/v1/profile",
		"PATCH /api/v1/profile",
		"DELETE /api/v1/profile",
		"POST /api/v1/prayers/:date/:prayer/mark",
		"PUT /api/v1/prayers/:date/:prayer",
		"POST /api/v1/habits/:date/:habit/toggle",
		"GET /api/v1/points",
		"POST /api/v1/rewards",
		"POST /api/v1/streak",
		"GET /api/v1/stats/calendar",
		"POST /api/v1/zakat/entries/:id/paid",
		"POST /api/v1/bookmarks/toggle",
		"POST /api/v1/favorites/toggle",
		"POST /api/v1/sync/pull",
		"POST /api/v1/retention/cleanup",
	} {
		if !registered[route] {
			t.Errorf("expected route %s to be registered", route)
		}
	}

	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	if rec.Code != http.StatusOK {
		t.Errorf("expected health to answer 200, got %d", rec.Code)
	}
}

func TestNewInjector_Workers(t *testing.T) {
	t.Run("disabled by default", func(t *testing.T) {
		cfg := testConfig()
		cfg.Workers.SyncEnabled = false
		cfg.Workers.RetentionEnabled = false

		injector := NewInjector(cfg, newTestDependencies(t, true))
		if injector.SyncWorker != nil || injector.RetentionWorker != nil {
			t.Error("expected no workers")
		}
	})

	t.Run("sync worker needs a remote", func(t *testing.T) {
		cfg := testConfig()
		cfg.Workers.SyncEnabled = true

		if NewInjector(cfg, newTestDependencies(t, false)).SyncWorker != nil {
			t.Error("expected no sync worker without a remote")
		}
		if NewInjector(cfg, newTestDependencies(t, true)).SyncWorker == nil {
			t.Error("expected a sync worker")
		}
	})

	t.Run("retention worker needs a window", func(t *testing.T) {
		cfg := testConfig()
		cfg.Workers.RetentionEnabled = true
		cfg.Engine.RetentionDays = 0
		if NewInjector(cfg, newTestDependencies(t, false)).RetentionWorker != nil {
			t.Error("expected no retention worker without a window")
		}

		cfg.Engine.RetentionDays = 90
		if NewInjector(cfg, newTestDependencies(t, false)).RetentionWorker == nil {
			t.Error("expected a retention worker")
		}
	})
}
