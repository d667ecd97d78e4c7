package container

import (
	"context"
	"fmt"
	"time"

	"streetcats-backend/internal/config"
	"streetcats-backend/internal/domains/activitylog"
	activitylogHandler "streetcats-backend/internal/domains/activitylog/handler"
	activitylogRepository "streetcats-backend/internal/domains/activitylog/repository"
	activitylogService "streetcats-backend/internal/domains/activitylog/service"
	"streetcats-backend/internal/domains/auth"
	authHandler "streetcats-backend/internal/domains/auth/handler"
	authRepository "streetcats-backend/internal/domains/auth/repository"
	authService "streetcats-backend/internal/domains/auth/service"
	"streetcats-backend/internal/domains/cat"
	catHandler "streetcats-backend/internal/domains/cat/handler"
	catRepository "streetcats-backend/internal/domains/cat/repository"
	catService "streetcats-backend/internal/domains/cat/service"
	"streetcats-backend/internal/domains/photo"
	photoHandler "streetcats-backend/internal/domains/photo/handler"
	photoService "streetcats-backend/internal/domains/photo/service"
	infraCache "streetcats-backend/internal/infrastructure/cache"
	"streetcats-backend/internal/infrastructure/database"
	"streetcats-backend/internal/infrastructure/storage"
	"streetcats-backend/pkg/jwt"
	"streetcats-backend/pkg/logger"
)

// Container wires the whole application together: infrastructure first,
// then repositories, services and handlers on top.
type Container struct {
	Config *config.Config

	// Infrastructure
	DB      *database.PostgresDB
	Redis   *infraCache.RedisCache
	Storage *storage.MinIOStorage
	JWT     *jwt.Manager

	// Shared state
	CatStore  *cat.Store
	AuthState *auth.State

	// Services
	CatService         cat.Service
	ActivityLogService activitylog.Service
	PhotoService       photo.Service
	AuthService        auth.Service

	// Handlers
	CatHandler         *catHandler.CatHandler
	ActivityLogHandler *activitylogHandler.ActivityLogHandler
	PhotoHandler       *photoHandler.PhotoHandler
	AuthHandler        *authHandler.AuthHandler
}

// New builds the container. Postgres and MinIO are required; Redis is
// not, the API starts without it and only session auth degrades.
func New() (*Container, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	logger.Init(cfg.App.Environment)

	c := &Container{Config: cfg}

	if err := c.initDatabase(); err != nil {
		return nil, err
	}
	c.initRedis()
	if err := c.initStorage(); err != nil {
		return nil, err
	}

	c.JWT = jwt.NewManager(cfg.JWT.Secret, time.Duration(cfg.JWT.SessionExpiryHrs)*time.Hour)

	c.initDomains()

	logger.Info("container initialized", map[string]interface{}{
		"app": cfg.App.Name,
		"env": cfg.App.Environment,
	})

	return c, nil
}

func (c *Container) initDatabase() error {
	dbConfig, err := config.LoadDatabaseConfig()
	if err != nil {
		return fmt.Errorf("failed to load database config: %w", err)
	}

	c.DB = database.NewPostgresDB(dbConfig)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := c.DB.Connect(ctx); err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	logger.Info("database connected", map[string]interface{}{
		"host": dbConfig.Host,
		"db":   dbConfig.DBName,
	})
	return nil
}

func (c *Container) initRedis() {
	c.Redis = infraCache.NewRedisCache(
		c.Config.Redis.Host,
		c.Config.Redis.Password,
		c.Config.Redis.DB,
	)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := c.Redis.Connect(ctx); err != nil {
		logger.Warn("redis unavailable, session auth degraded", err)
		return
	}

	logger.Info("redis connected", map[string]interface{}{
		"host": c.Config.Redis.Host,
	})
}

func (c *Container) initStorage() error {
	store, err := storage.NewMinIOStorage(c.Config.MinIO)
	if err != nil {
		return fmt.Errorf("failed to init object storage: %w", err)
	}
	c.Storage = store

	logger.Info("object storage ready", map[string]interface{}{
		"endpoint": c.Config.MinIO.Endpoint,
		"bucket":   c.Config.MinIO.Bucket,
	})
	return nil
}

func (c *Container) initDomains() {
	// Cats
	c.CatStore = cat.NewStore()
	catRepo := catRepository.NewPostgresRepository(c.DB.Pool)
	c.CatService = catService.NewCatService(catRepo, c.CatStore)
	c.CatHandler = catHandler.NewCatHandler(c.CatService)

	// Activity logs
	logRepo := activitylogRepository.NewPostgresRepository(c.DB.Pool)
	c.ActivityLogService = activitylogService.NewActivityLogService(logRepo)
	c.ActivityLogHandler = activitylogHandler.NewActivityLogHandler(c.ActivityLogService)

	// Photos
	processor := storage.NewImageProcessor()
	c.PhotoService = photoService.NewPhotoService(c.Storage, processor)
	c.PhotoHandler = photoHandler.NewPhotoHandler(c.PhotoService)

	// Auth
	c.AuthState = auth.NewState()
	userRepo := authRepository.NewPostgresRepository(c.DB.Pool)
	c.AuthService = authService.NewAuthService(userRepo, c.Redis, c.JWT, c.AuthState)
	c.AuthService.Init(context.Background())
	c.AuthHandler = authHandler.NewAuthHandler(c.AuthService)
}

// Cleanup releases infrastructure resources on shutdown.
func (c *Container) Cleanup() {
	if c.DB != nil && c.DB.Pool != nil {
		c.DB.Pool.Close()
		logger.Info("database pool closed", nil)
	}

	if c.Redis != nil {
		if err := c.Redis.Close(); err != nil {
			logger.Warn("redis close failed", err)
		}
	}
}
