package datasource

import (
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"bankclients/internal/core/config"
	"bankclients/internal/core/database"
	"bankclients/internal/domain"
	"bankclients/internal/feature/user"
)

const (
	DriverHTTP  = "http"
	DriverRedis = "redis"
	DriverDB    = "db"
)

// New 按 source.driver 构造数据源；cleanup 释放连接，始终非 nil
func New(cfg *config.Config, l *zap.Logger) (domain.UserDataSource, func(), error) {
	noop := func() {}
	switch strings.ToLower(cfg.Source.Driver) {
	case "", DriverHTTP:
		src, err := NewHTTPSource(HTTPOptions{
			BaseURL:   cfg.Source.BaseURL,
			Endpoint:  cfg.Source.Endpoint,
			Timeout:   time.Duration(cfg.Source.TimeoutSec) * time.Second,
			UserAgent: cfg.Source.UserAgent,
		})
		if err != nil {
			return nil, noop, err
		}
		l.Info("user source ready", zap.String("driver", DriverHTTP), zap.String("url", src.URL()))
		return src, noop, nil

	case DriverRedis:
		src := NewRedisSource(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB, cfg.Redis.Key)
		l.Info("user source ready",
			zap.String("driver", DriverRedis),
			zap.String("addr", cfg.Redis.Addr),
			zap.String("key", cfg.Redis.Key),
		)
		return src, func() { _ = src.Close() }, nil

	case DriverDB:
		db, err := database.NewGorm(database.Opts{
			Driver:             cfg.DB.Driver,
			DSN:                cfg.DB.DSN,
			Username:           cfg.DB.Username,
			Password:           cfg.DB.Password,
			MaxOpenConns:       cfg.DB.MaxOpenConns,
			MaxIdleConns:       cfg.DB.MaxIdleConns,
			ConnMaxLifetimeMin: cfg.DB.ConnMaxLifetimeMin,
			LogLevel:           cfg.DB.LogLevel,
			Logger:             l,
		})
		if err != nil {
			return nil, noop, fmt.Errorf("open db: %w", err)
		}
		if cfg.DB.AutoMigrate {
			if err := db.AutoMigrate(&user.UserModel{}); err != nil {
				_ = database.Close(db)
				return nil, noop, fmt.Errorf("automigrate users: %w", err)
			}
			l.Info("automigrate done")
		}
		l.Info("user source ready", zap.String("driver", DriverDB), zap.String("db", cfg.DB.Driver))
		return NewDBSource(db), func() { _ = database.Close(db) }, nil

	default:
		return nil, noop, fmt.Errorf("unsupported source driver %q", cfg.Source.Driver)
	}
}
