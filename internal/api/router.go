package api

import (
	"net/http"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/acadtrack/acadtrack/docs"
	"github.com/acadtrack/acadtrack/internal/api/handler"
	"github.com/acadtrack/acadtrack/internal/api/middleware"
	"github.com/acadtrack/acadtrack/internal/core/domain"
	"github.com/acadtrack/acadtrack/internal/core/service"
	"github.com/acadtrack/acadtrack/internal/infrastructure/config"
	mongodb "github.com/acadtrack/acadtrack/internal/infrastructure/db/mongo"
	redisdb "github.com/acadtrack/acadtrack/internal/infrastructure/db/redis"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *redis.Client, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: cfg.CORSOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
	}))
	e.Use(echoprometheus.NewMiddleware("acadtrack"))

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(db)
	activityRepo := mongodb.NewActivityRepository(db)
	activityCache := redisdb.NewActivityCache(rdb, log)

	tokenService := service.NewTokenService(cfg.JWTSecret, cfg.TokenTTL)
	authService := service.NewAuthService(userRepo, tokenService, cfg.AdminCode, log)
	activityService := service.NewActivityService(activityRepo, activityCache, log)

	authHandler := handler.NewAuthHandler(authService)
	activityHandler := handler.NewActivityHandler(activityService)

	// Auth runs before RequireRole on every gated route: the gate reads the
	// identity the middleware attached.
	authenticated := middleware.Auth(tokenService, userRepo)
	adminOnly := middleware.RequireRole(domain.RoleAdmin)

	// --- Auth routes ---
	e.POST("/auth/register", authHandler.Register)
	e.POST("/auth/login", authHandler.Login)
	e.GET("/auth/users/all", authHandler.ListUsers, authenticated, adminOnly)
	e.GET("/auth/profile", authHandler.Profile, authenticated)

	// --- Activity routes ---
	activities := e.Group("/activities", authenticated)
	activities.GET("", activityHandler.List)
	activities.GET("/:id", activityHandler.Get)
	activities.POST("", activityHandler.Create, adminOnly)
	// Legacy alias kept for older clients.
	activities.POST("/create", activityHandler.Create, adminOnly)
	activities.PUT("/:id", activityHandler.Update, adminOnly)
	activities.DELETE("/:id", activityHandler.Delete, adminOnly)

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)

	// --- Observability & docs ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e
}
