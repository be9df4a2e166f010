package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"stockroom/internal/config"
	"stockroom/internal/db"
	"stockroom/internal/log"
	"stockroom/internal/repository"
	"stockroom/internal/service"
)

// SeedProduct is one entry of the seed file.
type SeedProduct struct {
	PName       string   `json:"pname"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price"`
	Stock       *int     `json:"stock"`
}

func main() {
	if err := run(); err != nil {
		fmt.Printf("error running seed: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	logger := log.NewSlogLogger(cfg.Log)

	items, err := readSeedFile(cfg.SeedFile)
	if err != nil {
		return err
	}
	logger.Info("read seed file", slog.String("path", cfg.SeedFile), slog.Int("count", len(items)))

	gormDB, err := db.NewMySQL(cfg.MySQLDSN, db.Options{})
	if err != nil {
		return err
	}
	if err := db.Migrate(gormDB, cfg.ResetDB); err != nil {
		return err
	}

	products := service.NewProductService(repository.NewProductRepository(gormDB))

	created, skipped := 0, 0
	for i, item := range items {
		if item.PName == "" || item.Price == nil || item.Stock == nil {
			logger.Warn("skipping product with missing fields", slog.Int("index", i))
			skipped++
			continue
		}
		p, err := products.CreateProduct(ctx, item.PName, item.Description, *item.Price, *item.Stock)
		if err != nil {
			return fmt.Errorf("seed product %d: %w", i, err)
		}
		logger.Debug("created product", slog.Uint64("pid", uint64(p.PID)))
		created++
	}

	logger.Info("seed completed", slog.Int("created", created), slog.Int("skipped", skipped))
	return nil
}

func readSeedFile(path string) ([]SeedProduct, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read seed file: %w", err)
	}
	var items []SeedProduct
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("decode seed file: %w", err)
	}
	return items, nil
}
