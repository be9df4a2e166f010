package main

import (
	"context"
	"fmt"
	"log/slog"

	"stockroom/internal/config"
	"stockroom/internal/db"
	"stockroom/internal/repository"
)

type stores struct {
	users    repository.UserRepository
	products repository.ProductRepository
	ping     func(ctx context.Context) error
	close    func()
}

func openStores(cfg *config.Config, logger *slog.Logger) (*stores, error) {
	if cfg.Storage == config.StorageMemory {
		logger.Warn("using in-memory storage, data is lost on exit")
		return &stores{
			users:    repository.NewMemoryUserRepository(),
			products: repository.NewMemoryProductRepository(),
			close:    func() {},
		}, nil
	}

	gormDB, err := db.NewMySQL(cfg.MySQLDSN, db.Options{
		MaxOpenConns:    cfg.MySQLMaxOpenConns,
		MaxIdleConns:    cfg.MySQLMaxIdleConns,
		ConnMaxLifetime: cfg.MySQLConnMaxLifetime,
	})
	if err != nil {
		return nil, fmt.Errorf("database init: %w", err)
	}

	if cfg.ResetDB {
		logger.Warn("RESET_DB=true detected, dropping all tables")
	}
	if err := db.Migrate(gormDB, cfg.ResetDB); err != nil {
		return nil, err
	}
	logger.Info("database schema ready")

	return &stores{
		users:    repository.NewUserRepository(gormDB),
		products: repository.NewProductRepository(gormDB),
		ping: func(ctx context.Context) error {
			return db.Ping(ctx, gormDB)
		},
		close: func() {
			if sqlDB, err := gormDB.DB(); err == nil {
				_ = sqlDB.Close()
			}
		},
	}, nil
}
