package api

import (
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/taplog/attendance-system/internal/api/handler"
	"github.com/taplog/attendance-system/internal/api/middleware"
	"github.com/taplog/attendance-system/internal/core/domain"
	"github.com/taplog/attendance-system/internal/core/service"
	"github.com/taplog/attendance-system/internal/infrastructure/config"
	mongodb "github.com/taplog/attendance-system/internal/infrastructure/db/mongo"
	redisdb "github.com/taplog/attendance-system/internal/infrastructure/db/redis"
	"github.com/taplog/attendance-system/internal/infrastructure/notify"
)

// NewRouter builds and returns the Echo instance with all routes registered.
// hub carries recorded taps to the SSE endpoint; loc fixes the attendance
// day boundary.
func NewRouter(
	db *mongo.Database,
	rdb *redis.Client,
	hub *notify.Hub,
	loc *time.Location,
	cfg *config.Config,
	log zerolog.Logger,
) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.CORS())
	e.Use(echoprometheus.NewMiddleware("attendance"))

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(db)
	eventRepo := mongodb.NewEventRepository(db)
	authRepo := mongodb.NewAuthRepository(db)

	locker := redisdb.NewTapLock(rdb)
	notifier := notify.NewRedisPublisher(rdb, log)

	tapService := service.NewTapService(userRepo, eventRepo, notifier, locker, loc, cfg.DailyTapLimit, log)
	logService := service.NewLogService(eventRepo, userRepo, loc, log)
	summaryService := service.NewSummaryService(eventRepo, log)
	userService := service.NewUserService(userRepo, log)
	authService := service.NewAuthService(authRepo, cfg.JWTSecret, 24*time.Hour)

	tapHandler := handler.NewTapHandler(tapService, log)
	logHandler := handler.NewLogHandler(logService, summaryService)
	userHandler := handler.NewUserHandler(userService)
	authHandler := handler.NewAuthHandler(authService)
	eventsHandler := handler.NewEventsHandler(hub, log)

	authRequired := middleware.Auth(cfg.JWTSecret)
	adminOnly := middleware.RBAC(domain.RoleAdmin)

	// --- Tap ingestion + realtime channel ---
	e.POST("/api/tap", tapHandler.Receive)
	e.GET("/api/events", eventsHandler.Stream)

	// --- Ledger (dashboard read surface, unauthenticated) ---
	e.GET("/api/logs", logHandler.List)
	e.GET("/api/logs/today", logHandler.ListToday)
	e.GET("/api/logs/date/:date", logHandler.ListByDate)
	e.GET("/api/logs/user/:uid", logHandler.ListByUID)
	e.GET("/api/logs/summary/:date", logHandler.Summary)
	e.DELETE("/api/logs/:id", logHandler.Delete, authRequired, adminOnly)

	// --- User directory ---
	e.GET("/api/users", userHandler.List)
	e.POST("/api/users", userHandler.Create)
	e.GET("/api/users/:id", userHandler.Get)
	e.PUT("/api/users/:id", userHandler.Update)
	e.DELETE("/api/users/:id", userHandler.Delete, authRequired, adminOnly)

	// --- Debug views ---
	e.GET("/api/debug/logs", logHandler.DebugOverview)
	e.GET("/api/debug/uid/:uid", logHandler.DebugUID)

	// --- Auth (operator accounts) ---
	e.POST("/auth/register", authHandler.Register)
	e.POST("/auth/login", authHandler.Login)

	// --- Health probes + metrics (no auth required) ---
	healthHandler := handler.NewHealthHandler(loc)
	healthDepsHandler := handler.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
