package api

import (
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/grocerytrack/grocery-api/internal/api/handler"
	"github.com/grocerytrack/grocery-api/internal/api/middleware"
	"github.com/grocerytrack/grocery-api/internal/core/domain"
	"github.com/grocerytrack/grocery-api/internal/core/service"
	mongodb "github.com/grocerytrack/grocery-api/internal/infrastructure/db/mongo"
	redisdb "github.com/grocerytrack/grocery-api/internal/infrastructure/db/redis"
)

// Options carries the runtime knobs the router needs beyond its two stores.
type Options struct {
	JWTSecret     string
	TokenTTL      time.Duration
	LoginAttempts int64
	LoginWindow   time.Duration
	Logger        zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *redis.Client, opts Options) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(opts.Logger)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("grocery"))

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(db)
	itemRepo := mongodb.NewItemRepository(db)
	commentRepo := mongodb.NewCommentRepository(db)

	tokenService := service.NewTokenService(opts.JWTSecret, opts.TokenTTL)
	authService := service.NewAuthService(userRepo, tokenService, opts.Logger)
	itemService := service.NewItemService(itemRepo, commentRepo, opts.Logger)
	profileService := service.NewProfileService(userRepo, opts.Logger)
	adminService := service.NewAdminService(userRepo, itemRepo, commentRepo, opts.Logger)

	authHandler := handler.NewAuthHandler(authService)
	itemHandler := handler.NewItemHandler(itemService)
	commentHandler := handler.NewCommentHandler(itemService)
	profileHandler := handler.NewProfileHandler(profileService)
	adminHandler := handler.NewAdminHandler(adminService)

	authn := middleware.Auth(tokenService, userRepo)
	adminOnly := middleware.RequireRole(domain.RoleAdmin)
	limiter := redisdb.NewLoginLimiter(rdb, opts.LoginAttempts, opts.LoginWindow)
	throttle := middleware.LoginThrottle(limiter, opts.Logger)

	// --- Auth routes ---
	e.POST("/v1/auth/register", authHandler.Register)
	e.POST("/v1/auth/login", authHandler.Login, throttle)

	// --- Authenticated routes ---
	v1 := e.Group("/v1", authn)
	v1.GET("/items", itemHandler.List)
	v1.POST("/items", itemHandler.Create)
	v1.GET("/items/:id", itemHandler.Get)
	v1.POST("/comments", commentHandler.Create)
	v1.GET("/profile", profileHandler.Get)
	v1.PUT("/profile", profileHandler.Update)

	// --- Admin routes ---
	admin := e.Group("/v1/admin", authn, adminOnly)
	admin.GET("/users", adminHandler.ListUsers)
	admin.DELETE("/users/:id", adminHandler.DeleteUser)
	admin.PUT("/users/:id/role", adminHandler.SetUserRole)
	admin.GET("/items", adminHandler.ListItems)
	admin.DELETE("/items/:id", adminHandler.DeleteItem)

	// --- Probes and metrics (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)           // liveness  – is the process alive?
	e.GET("/health/ready", readinessHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
