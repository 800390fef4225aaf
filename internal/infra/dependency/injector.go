// Package dependency provides dependency injection for the application.
package dependency

import (
	"context"

	"github.com/ibadah-tracker/backend/config"
	"github.com/ibadah-tracker/backend/internal/application/adapter"
	"github.com/ibadah-tracker/backend/internal/application/usecase/collection"
	"github.com/ibadah-tracker/backend/internal/application/usecase/habit"
	"github.com/ibadah-tracker/backend/internal/application/usecase/points"
	"github.com/ibadah-tracker/backend/internal/application/usecase/prayer"
	"github.com/ibadah-tracker/backend/internal/application/usecase/profile"
	"github.com/ibadah-tracker/backend/internal/application/usecase/progress"
	"github.com/ibadah-tracker/backend/internal/application/usecase/retention"
	"github.com/ibadah-tracker/backend/internal/application/usecase/stats"
	"github.com/ibadah-tracker/backend/internal/application/usecase/streak"
	syncuc "github.com/ibadah-tracker/backend/internal/application/usecase/sync"
	"github.com/ibadah-tracker/backend/internal/application/usecase/zakat"
	"github.com/ibadah-tracker/backend/internal/infra/server/router"
	"github.com/ibadah-tracker/backend/internal/integration/adapters"
	"github.com/ibadah-tracker/backend/internal/integration/entrypoint/controller"
	"github.com/ibadah-tracker/backend/internal/integration/entrypoint/middleware"
	"github.com/ibadah-tracker/backend/internal/integration/persistence"
	"github.com/ibadah-tracker/backend/internal/integration/worker"
)

// Dependencies are the infrastructure collaborators opened by the caller.
type Dependencies struct {
	Store       adapter.RecordStore
	Clock       adapter.Clock
	Schedules   adapter.PrayerTimesProvider
	Sink        adapter.AnalyticsSink
	Remote      adapter.SyncRemote // Optional, sync is disabled when nil
	HealthCheck func(ctx context.Context) bool
}

// Injector holds all application dependencies.
type Injector struct {
	Config          *config.Config
	Router          *router.Router
	SyncWorker      *worker.SyncWorker      // nil unless sync is enabled
	RetentionWorker *worker.RetentionWorker // nil unless retention is enabled
}

// NewInjector creates a new dependency injector with all dependencies wired.
func NewInjector(cfg *config.Config, deps Dependencies) *Injector {
	// Create repositories
	records := persistence.NewRecords(deps.Store, deps.Clock)
	profileRepo := persistence.NewProfileRepository(records)
	prayerRepo := persistence.NewPrayerLogRepository(records)
	habitRepo := persistence.NewHabitLogRepository(records)
	rewardRepo := persistence.NewRewardRepository(records)
	zakatRepo := persistence.NewZakatRepository(records)
	collectionRepo := persistence.NewCollectionRepository(records)

	// Create adapters/services
	locker := adapters.NewInMemoryOwnerLocker()
	tokenService := adapters.NewTokenService(cfg.JWT.Secret, cfg.JWT.AccessTokenExpiry, deps.Clock)
	engine := progress.NewEngine(profileRepo, prayerRepo, habitRepo, rewardRepo, deps.Clock, cfg.Engine.StreakScanDays)

	// Create profile use cases
	registerDeviceUseCase := profile.NewRegisterDeviceUseCase(profileRepo, tokenService, deps.Clock, deps.Sink, cfg.Prayer.DefaultLatitude, cfg.Prayer.DefaultLongitude)
	getProfileUseCase := profile.NewGetProfileUseCase(engine)
	updateProfileUseCase := profile.NewUpdateProfileUseCase(profileRepo, engine, locker)
	resetAllDataUseCase := profile.NewResetAllDataUseCase(deps.Store, engine, locker, deps.Sink)
	refreshProfileUseCase := profile.NewRefreshProfileUseCase(engine, locker)

	// Create prayer and habit use cases
	getPrayerDayUseCase := prayer.NewGetPrayerDayUseCase(prayerRepo, deps.Schedules, engine)
	markPrayerUseCase := prayer.NewMarkPrayerUseCase(prayerRepo, deps.Schedules, engine, locker, deps.Sink, cfg.Engine.OnTimeWindow)
	setPrayerStatusUseCase := prayer.NewSetPrayerStatusUseCase(prayerRepo, deps.Schedules, engine, locker, deps.Sink, cfg.Engine.OnTimeWindow)
	getHabitDayUseCase := habit.NewGetHabitDayUseCase(habitRepo)
	toggleHabitUseCase := habit.NewToggleHabitUseCase(habitRepo, engine, locker, deps.Sink)

	// Create points and streak use cases
	getPointsUseCase := points.NewGetPointsUseCase(engine)
	recalculatePointsUseCase := points.NewRecalculatePointsUseCase(engine, locker)
	awardPointsUseCase := points.NewAwardPointsUseCase(engine, locker, deps.Sink, cfg.Engine.MaxRewardPoints)
	updateStreakUseCase := streak.NewUpdateStreakUseCase(engine, locker)

	// Create stats use cases
	dailyStatsUseCase := stats.NewGetDailyStatsUseCase(prayerRepo, habitRepo, deps.Clock)
	rangeStatsUseCase := stats.NewGetRangeStatsUseCase(prayerRepo, habitRepo)
	weeklyStatsUseCase := stats.NewGetWeeklyStatsUseCase(prayerRepo, habitRepo, deps.Clock)
	monthlyStatsUseCase := stats.NewGetMonthlyStatsUseCase(prayerRepo, habitRepo, deps.Clock)
	calendarUseCase := stats.NewGetCalendarUseCase(prayerRepo, habitRepo)

	// Create zakat use cases
	getZakatAssetsUseCase := zakat.NewGetZakatAssetsUseCase(zakatRepo)
	setZakatAssetsUseCase := zakat.NewSetZakatAssetsUseCase(zakatRepo, locker)
	setZakatPricesUseCase := zakat.NewSetZakatPricesUseCase(zakatRepo, locker)
	calculateZakatUseCase := zakat.NewCalculateZakatUseCase(zakatRepo)
	addZakatEntryUseCase := zakat.NewAddZakatEntryUseCase(zakatRepo, engine, locker, deps.Sink)
	listZakatEntriesUseCase := zakat.NewListZakatEntriesUseCase(zakatRepo)
	markZakatPaidUseCase := zakat.NewMarkZakatPaidUseCase(zakatRepo, deps.Clock, locker, deps.Sink)

	// Create collection use cases
	toggleBookmarkUseCase := collection.NewToggleBookmarkUseCase(collectionRepo, locker)
	listBookmarksUseCase := collection.NewListBookmarksUseCase(collectionRepo)
	toggleFavoriteUseCase := collection.NewToggleFavoriteUseCase(collectionRepo, locker)
	listFavoritesUseCase := collection.NewListFavoritesUseCase(collectionRepo)

	// Create sync and retention use cases
	cleanupUseCase := retention.NewCleanupOldLogsUseCase(prayerRepo, habitRepo, rewardRepo, engine, locker)
	var (
		pushUseCase *syncuc.PushBundleUseCase
		pullUseCase *syncuc.PullAndMergeUseCase
	)
	if deps.Remote != nil {
		pushUseCase = syncuc.NewPushBundleUseCase(deps.Store, deps.Remote, locker)
		pullUseCase = syncuc.NewPullAndMergeUseCase(deps.Store, deps.Remote, engine, locker)
	}

	// Create controllers
	healthController := controller.NewHealthController(cfg.Store.Engine, deps.HealthCheck)
	profileController := controller.NewProfileController(
		registerDeviceUseCase,
		getProfileUseCase,
		updateProfileUseCase,
		resetAllDataUseCase,
		refreshProfileUseCase,
	)
	prayerController := controller.NewPrayerController(getPrayerDayUseCase, markPrayerUseCase, setPrayerStatusUseCase)
	habitController := controller.NewHabitController(getHabitDayUseCase, toggleHabitUseCase)
	pointsController := controller.NewPointsController(getPointsUseCase, recalculatePointsUseCase, awardPointsUseCase, updateStreakUseCase)
	statsController := controller.NewStatsController(
		dailyStatsUseCase,
		rangeStatsUseCase,
		weeklyStatsUseCase,
		monthlyStatsUseCase,
		calendarUseCase,
	)
	zakatController := controller.NewZakatController(
		getZakatAssetsUseCase,
		setZakatAssetsUseCase,
		setZakatPricesUseCase,
		calculateZakatUseCase,
		addZakatEntryUseCase,
		listZakatEntriesUseCase,
		markZakatPaidUseCase,
	)
	collectionController := controller.NewCollectionController(
		toggleBookmarkUseCase,
		listBookmarksUseCase,
		toggleFavoriteUseCase,
		listFavoritesUseCase,
	)
	syncController := controller.NewSyncController(pushUseCase, pullUseCase, cleanupUseCase)

	// Create middleware
	rateLimiter := middleware.NewRateLimiter(cfg.Engine.RateLimitPerMin)
	authMiddleware := middleware.NewAuthMiddleware(tokenService)

	// Create router
	r := router.NewRouter(router.Controllers{
		Health:     healthController,
		Profile:    profileController,
		Prayer:     prayerController,
		Habit:      habitController,
		Points:     pointsController,
		Stats:      statsController,
		Zakat:      zakatController,
		Collection: collectionController,
		Sync:       syncController,
	}, rateLimiter, authMiddleware, cfg.CORS.AllowedOrigins)

	injector := &Injector{
		Config: cfg,
		Router: r,
	}

	// Create workers
	if cfg.Workers.SyncEnabled && deps.Remote != nil {
		injector.SyncWorker = worker.NewSyncWorker(deps.Store, pullUseCase, pushUseCase, worker.Config{
			Interval: cfg.Workers.SyncInterval,
		})
	}
	if cfg.Workers.RetentionEnabled && cfg.Engine.RetentionDays > 0 {
		injector.RetentionWorker = worker.NewRetentionWorker(deps.Store, cleanupUseCase, cfg.Engine.RetentionDays, worker.Config{
			Interval: cfg.Workers.RetentionInterval,
		})
	}

	return injector
}
