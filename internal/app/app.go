package app

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/nabeelsyed11/Kimia/internal/config"
	"github.com/nabeelsyed11/Kimia/internal/database"
	"github.com/nabeelsyed11/Kimia/internal/middleware"
	"github.com/nabeelsyed11/Kimia/internal/modules/blog"
	"github.com/nabeelsyed11/Kimia/internal/modules/property"
	"github.com/nabeelsyed11/Kimia/internal/pkg/token"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// App holds all application dependencies.
type App struct {
	cfg    *config.AppConfig
	router *gin.Engine
	logger *zap.Logger
	tokens *token.Manager
	client *mongo.Client // nil when running on the in-memory stores
}

// New initializes the application: config → stores → routes.
func New(logger *zap.Logger, cfg *config.AppConfig) (*App, error) {
	if cfg == nil {
		return nil, errors.New("config is nil")
	}

	if cfg.IsDev() {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.HandleMethodNotAllowed = true
	router.Use(gin.Recovery())
	router.Use(middleware.Logger(logger))

	corsConfig := cors.Config{
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}
	if len(cfg.AllowedOrigins) > 0 && !cfg.IsDev() {
		patterns := cfg.AllowedOrigins
		corsConfig.AllowOriginFunc = func(origin string) bool {
			host := extractOriginHost(origin)
			for _, pattern := range patterns {
				if matchOriginPattern(pattern, host) {
					return true
				}
			}
			return false
		}
	} else {
		corsConfig.AllowOriginFunc = func(origin string) bool { return true }
	}
	router.Use(cors.New(corsConfig))

	var (
		client    *mongo.Client
		propStore property.Store
		blogStore blog.Store
	)
	if cfg.UseMongo() {
		var err error
		client, err = database.Connect(cfg)
		if err != nil {
			return nil, fmt.Errorf("database: %w", err)
		}
		db := client.Database(cfg.Mongo.DBName)
		propStore = property.NewMongoStore(db)
		blogStore = blog.NewMongoStore(db)
		logger.Info("using mongo stores", zap.String("db", cfg.Mongo.DBName))
	} else {
		propStore = property.NewMemoryStore(property.DemoSeed()...)
		blogStore = blog.NewMemoryStore(blog.DemoSeed()...)
		logger.Info("no mongo url configured, using seeded in-memory stores")
	}

	app := &App{
		cfg:    cfg,
		router: router,
		logger: logger,
		tokens: token.NewManager(cfg.JWTSecret),
		client: client,
	}
	if err := app.registerRoutes(propStore, blogStore); err != nil {
		return nil, err
	}
	return app, nil
}

// Addr returns the listen address.
func (a *App) Addr() string { return fmt.Sprintf(":%d", a.cfg.Port) }

// Router returns the HTTP handler.
func (a *App) Router() http.Handler { return a.router }

// Shutdown releases the database connection.
func (a *App) Shutdown() {
	if err := database.Disconnect(a.client); err != nil {
		a.logger.Warn("mongo disconnect", zap.Error(err))
	}
}
