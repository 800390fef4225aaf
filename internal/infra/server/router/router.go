// Package router sets up the HTTP routing for the application.
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/ibadah-tracker/backend/internal/integration/entrypoint/controller"
	"github.com/ibadah-tracker/backend/internal/integration/entrypoint/middleware"
)

// Controllers groups the HTTP handlers the router mounts.
type Controllers struct {
	Health     *controller.HealthController
	Profile    *controller.ProfileController
	Prayer     *controller.PrayerController
	Habit      *controller.HabitController
	Points     *controller.PointsController
	Stats      *controller.StatsController
	Zakat      *controller.ZakatController
	Collection *controller.CollectionController
	Sync       *controller.SyncController
}

// Router holds the Gin engine and controller dependencies.
type Router struct {
	engine         *gin.Engine
	controllers    Controllers
	rateLimiter    *middleware.RateLimiter
	authMiddleware *middleware.AuthMiddleware
	allowedOrigins []string
}

// NewRouter creates a new router instance with all dependencies.
func NewRouter(
	controllers Controllers,
	rateLimiter *middleware.RateLimiter,
	authMiddleware *middleware.AuthMiddleware,
	allowedOrigins []string,
) *Router {
	return &Router{
		controllers:    controllers,
		rateLimiter:    rateLimiter,
		authMiddleware: authMiddleware,
		allowedOrigins: allowedOrigins,
	}
}

// Setup configures and returns the Gin engine with all routes.
func (r *Router) Setup(environment string) *gin.Engine {
	switch environment {
	case "production":
		gin.SetMode(gin.ReleaseMode)
	case "test":
		gin.SetMode(gin.TestMode)
	}

	r.engine = gin.New()
	r.engine.Use(gin.Recovery())
	if environment != "test" {
		r.engine.Use(gin.Logger())
	}
	if len(r.allowedOrigins) > 0 {
		r.engine.Use(middleware.CORS(r.allowedOrigins))
	}

	r.setupHealthRoutes()
	r.setupAPIRoutes()

	return r.engine
}

// setupHealthRoutes configures health check endpoints.
func (r *Router) setupHealthRoutes() {
	r.engine.GET("/health", r.controllers.Health.Check)
}

// setupAPIRoutes configures the main API routes.
func (r *Router) setupAPIRoutes() {
	c := r.controllers
	v1 := r.engine.Group("/api/v1")

	// Device registration is the only public route.
	v1.POST("/devices", r.rateLimiter.Middleware(), c.Profile.Register)

	api := v1.Group("")
	api.Use(r.authMiddleware.Authenticate(), r.rateLimiter.Middleware())
	{
		api.GET("/profile", c.Profile.Get)
		api.PATCH("/profile", c.Profile.Update)
		api.DELETE("/profile", c.Profile.Reset)
		api.POST("/refresh", c.Profile.Refresh)

		prayers := api.Group("/prayers")
		{
			prayers.GET("/:date", c.Prayer.GetDay)
			prayers.POST("/:date/:prayer/mark", c.Prayer.Mark)
			prayers.PUT("/:date/:prayer", c.Prayer.SetStatus)
		}

		habits := api.Group("/habits")
		{
			habits.GET("/:date", c.Habit.GetDay)
			habits.POST("/:date/:habit/toggle", c.Habit.Toggle)
		}

		pointsGroup := api.Group("/points")
		{
			pointsGroup.GET("", c.Points.Get)
			pointsGroup.GET("/levels", c.Points.Levels)
			pointsGroup.GET("/table", c.Points.Table)
			pointsGroup.POST("/recalculate", c.Points.Recalculate)
		}
		api.POST("/rewards", c.Points.Award)
		api.POST("/streak", c.Points.UpdateStreak)

		statsGroup := api.Group("/stats")
		{
			statsGroup.GET("/daily", c.Stats.Daily)
			statsGroup.GET("/range", c.Stats.Range)
			statsGroup.GET("/weekly", c.Stats.Weekly)
			statsGroup.GET("/monthly", c.Stats.Monthly)
			statsGroup.GET("/calendar", c.Stats.Calendar)
		}

		zakatGroup := api.Group("/zakat")
		{
			zakatGroup.GET("/assets", c.Zakat.GetAssets)
			zakatGroup.PUT("/assets", c.Zakat.SetAssets)
			zakatGroup.PUT("/prices", c.Zakat.SetPrices)
			zakatGroup.POST("/calculate", c.Zakat.Calculate)
			zakatGroup.GET("/entries", c.Zakat.ListEntries)
			zakatGroup.POST("/entries", c.Zakat.AddEntry)
			zakatGroup.POST("/entries/:id/paid", c.Zakat.MarkPaid)
		}

		api.GET("/bookmarks", c.Collection.ListBookmarks)
		api.POST("/bookmarks/toggle", c.Collection.ToggleBookmark)
		api.GET("/favorites", c.Collection.ListFavorites)
		api.POST("/favorites/toggle", c.Collection.ToggleFavorite)

		api.POST("/sync/push", c.Sync.Push)
		api.POST("/sync/pull", c.Sync.Pull)
		api.POST("/retention/cleanup", c.Sync.Cleanup)
	}
}
