package api

import (
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/socialnet/community-api/docs"
	"github.com/socialnet/community-api/internal/api/handler"
	"github.com/socialnet/community-api/internal/api/middleware"
	"github.com/socialnet/community-api/internal/core/service"
	mongodb "github.com/socialnet/community-api/internal/infrastructure/db/mongo"
	redisdb "github.com/socialnet/community-api/internal/infrastructure/db/redis"
)

// Options carries the settings the router needs beyond its store handles.
type Options struct {
	JWTSecret string
	TokenTTL  time.Duration
}

// NewRouter builds and returns the Echo instance with all routes registered.
// Every route except /, /auth/token and the operational endpoints sits behind
// the bearer-token gate.
func NewRouter(db *mongo.Database, rdb *redis.Client, opts Options, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("community"))

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(db)
	roleRepo := mongodb.NewRoleRepository(db)
	postRepo := mongodb.NewPostRepository(db)
	presence := redisdb.NewPresenceTracker(rdb)

	userService := service.NewUserService(userRepo, roleRepo, log)
	authService := service.NewAuthService(userRepo, opts.JWTSecret, opts.TokenTTL)
	postService := service.NewPostService(postRepo, log)

	userHandler := handler.NewUserHandler(userService)
	profileHandler := handler.NewProfileHandler(userService)
	postHandler := handler.NewPostHandler(postService)
	authHandler := handler.NewAuthHandler(authService)

	// --- Unprotected routes ---
	e.GET("/", handler.Hello)
	e.POST("/auth/token", authHandler.Login)

	// --- Operational endpoints ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)
	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	// --- Protected routes ---
	g := e.Group("", middleware.Auth(opts.JWTSecret, presence))

	g.GET("/users", userHandler.List)
	g.GET("/users/:id", userHandler.Get)
	g.POST("/users", userHandler.Create)
	g.PUT("/users/:id", userHandler.Update)
	g.DELETE("/users/:id", userHandler.Delete)
	g.DELETE("/testusers", userHandler.PurgeTestUsers)

	g.GET("/edit-profile", profileHandler.Get)
	g.POST("/edit-profile", profileHandler.Update)

	g.GET("/posts", postHandler.List)

	return e
}
