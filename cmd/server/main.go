package main

import (
	"log"

	"github.com/labstack/echo/v4"
	"github.com/yatube-project/yatube/internal/render"
	"github.com/yatube-project/yatube/internal/repositories"
	"github.com/yatube-project/yatube/internal/router"
	"github.com/yatube-project/yatube/pkg/cache"
	"github.com/yatube-project/yatube/pkg/config"
	"github.com/yatube-project/yatube/pkg/session"
	"github.com/yatube-project/yatube/validators"
	"go.uber.org/zap"
)

func main() {
	// Load configuration
	cfg := config.Load()
	config.InitLogger(cfg.Env)

	// Initialize database connections
	db, err := config.InitDB(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize databases: %v", err)
	}
	defer db.CloseDB() // Ensure database connections are closed when main exits

	// Page cache: Redis when configured, in-process otherwise
	var pageCache cache.Cache = cache.NewMemory()
	if cfg.RedisAddr != "" {
		redisClient, err := config.InitRedis(cfg)
		if err != nil {
			config.Logger.Fatal("Failed to connect to Redis", zap.Error(err))
		}
		defer redisClient.Close()
		pageCache = cache.NewRedis(redisClient)
	}

	sessions := session.NewCookieStore("yatube_session", []byte(cfg.SessionSecret))
	imageRepo := repositories.NewMongoImageRepository(db.Mongo.Database("yatube"))

	// Create Echo instance
	e := echo.New()

	// Renderer and validator
	renderer, err := render.New()
	if err != nil {
		config.Logger.Fatal("Failed to parse templates", zap.Error(err))
	}
	e.Renderer = renderer
	e.Validator = validators.NewValidator()

	// Setup global middleware
	router.SetupMiddleware(e)

	// Setup routes and dependencies
	if err := router.SetupRoutes(e, db.Postgres, imageRepo, pageCache, sessions, cfg.PageCacheTTL); err != nil {
		config.Logger.Fatal("Failed to set up routes", zap.Error(err))
	}

	// Start server
	e.Logger.Fatal(e.Start(":" + cfg.Port))
}
