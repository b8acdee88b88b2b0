package app

import (
	"context"
	"log/slog"
	"time"

	"jobtrack/internal/config"
	"jobtrack/internal/database"
	dbpostgres "jobtrack/internal/database/postgres"
	"jobtrack/internal/infrastructure/cache"
	"jobtrack/internal/pkg/jwt"
	"jobtrack/internal/pkg/logger"
)

// Container holds the process-wide dependencies: everything that owns a
// connection or is shared across requests.
type Container struct {
	Config config.Config
	Logger *slog.Logger

	DB    database.DB
	Cache *cache.Redis
	JWT   jwt.Service
}

func NewContainer(cfg config.Config) (*Container, error) {
	log := logger.New(cfg.Logging)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	db, err := dbpostgres.Connect(ctx, cfg.Database)
	if err != nil {
		return nil, err
	}

	jwtSvc := jwt.NewHMACService(
		cfg.JWT.AccessSecret,
		cfg.JWT.RefreshSecret,
		cfg.JWT.AccessExpiresIn,
		cfg.JWT.RefreshExpiresIn,
	)

	return &Container{
		Config: cfg,
		Logger: log,
		DB:     db,
		Cache:  cache.NewRedis(log),
		JWT:    jwtSvc,
	}, nil
}

func (c *Container) Close() error {
	if c == nil {
		return nil
	}
	if c.Cache != nil {
		if err := c.Cache.Close(); err != nil {
			c.Logger.Warn("closing redis", slog.Any("error", err))
		}
	}
	if c.DB == nil {
		return nil
	}
	return c.DB.Close()
}
