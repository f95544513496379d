package di

import (
	"fmt"

	"gorm.io/gorm"

	"taskapi/application/serviceimpl"
	"taskapi/domain/ports"
	"taskapi/domain/repositories"
	"taskapi/domain/services"
	natspkg "taskapi/infrastructure/nats"
	"taskapi/infrastructure/postgres"
	redispkg "taskapi/infrastructure/redis"
	"taskapi/interfaces/api/handlers"
	"taskapi/pkg/config"
	"taskapi/pkg/logger"
	"taskapi/pkg/scheduler"
)

type Container struct {
	Config *config.Config

	// Infrastructure
	DB             *gorm.DB
	RedisClient    *redispkg.Client // nil unless REDIS_URL is set
	NATSClient     *natspkg.Client  // nil unless NATS_URL is set
	EventScheduler scheduler.EventScheduler

	// Ports
	TaskCache          ports.TaskCache
	TaskEventPublisher ports.TaskEventPublisher

	// Repositories
	TaskRepository repositories.TaskRepository

	// Services
	TaskService     services.TaskService
	OverdueDetector *serviceimpl.OverdueDetectorService
}

func NewContainer() *Container {
	return &Container{}
}

func (c *Container) Initialize() error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	c.Config = cfg

	if err := logger.Init(logger.Config{
		Level:      cfg.Log.Level,
		Format:     cfg.Log.Format,
		Output:     cfg.Log.Output,
		FilePath:   cfg.Log.FilePath,
		MaxSize:    cfg.Log.MaxSize,
		MaxBackups: cfg.Log.MaxBackups,
		MaxAge:     cfg.Log.MaxAge,
		Compress:   cfg.Log.Compress,
	}); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	db, err := postgres.NewDatabase(postgres.DatabaseConfig{
		Host:     cfg.Database.Host,
		Port:     cfg.Database.Port,
		User:     cfg.Database.User,
		Password: cfg.Database.Password,
		DBName:   cfg.Database.DBName,
		SSLMode:  cfg.Database.SSLMode,
	})
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := postgres.Migrate(db); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}
	c.DB = db
	logger.Info("Database connected", "host", cfg.Database.Host, "db", cfg.Database.DBName)

	// Redis cache is optional; the service falls back to repository reads.
	if cfg.Redis.URL != "" {
		redisClient, err := redispkg.NewClient(&cfg.Redis)
		if err != nil {
			logger.Warn("Redis unavailable, task cache disabled", "error", err)
		} else {
			c.RedisClient = redisClient
			c.TaskCache = redispkg.NewTaskCache(redisClient)
		}
	}

	// NATS event publishing is optional.
	if cfg.NATS.URL != "" {
		natsClient, err := natspkg.NewClient(natspkg.ClientConfig{URL: cfg.NATS.URL})
		if err != nil {
			logger.Warn("NATS unavailable, task events disabled", "error", err)
		} else {
			c.NATSClient = natsClient
			c.TaskEventPublisher = natspkg.NewEventPublisher(natsClient)
		}
	}

	c.TaskRepository = postgres.NewTaskRepository(db)
	c.TaskService = serviceimpl.NewTaskService(c.TaskRepository, c.TaskCache, c.TaskEventPublisher)

	if cfg.Scheduler.Enabled {
		c.EventScheduler = scheduler.NewEventScheduler()
		c.OverdueDetector = serviceimpl.NewOverdueDetectorService(
			serviceimpl.OverdueDetectorConfig{CheckInterval: cfg.Scheduler.OverdueInterval},
			c.TaskRepository,
			c.EventScheduler,
		)
		if err := c.OverdueDetector.RegisterDetectorJob(); err != nil {
			return fmt.Errorf("failed to register overdue detector: %w", err)
		}
		c.EventScheduler.Start()
	}

	return nil
}

func (c *Container) GetConfig() *config.Config {
	return c.Config
}

func (c *Container) GetHandlerServices() *handlers.Services {
	return &handlers.Services{
		TaskService: c.TaskService,
	}
}

func (c *Container) Cleanup() error {
	if c.EventScheduler != nil {
		c.EventScheduler.Stop()
	}

	if c.NATSClient != nil {
		c.NATSClient.Close()
	}

	if c.RedisClient != nil {
		if err := c.RedisClient.Close(); err != nil {
			logger.Warn("Failed to close Redis client", "error", err)
		}
	}

	if c.DB != nil {
		sqlDB, err := c.DB.DB()
		if err == nil {
			if err := sqlDB.Close(); err != nil {
				return fmt.Errorf("failed to close database: %w", err)
			}
		}
	}

	return nil
}
