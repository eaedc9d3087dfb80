// cmd/seed/main.go
package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"finlit_academy/internal/config"
	"finlit_academy/internal/repository"
	"finlit_academy/internal/seed"

	"github.com/go-redis/redis/v8"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))
	slog.SetDefault(logger)

	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "configs"
	}
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		slog.Error("Error loading configuration", slog.Any("error", err))
		os.Exit(1)
	}

	db, err := repository.NewDB(cfg.Database.URL, logger)
	if err != nil {
		slog.Error("Error initializing database", slog.Any("error", err))
		os.Exit(1)
	}
	sqlDB, _ := db.DB()
	defer sqlDB.Close()

	if err := repository.Migrate(db); err != nil {
		slog.Error("Error migrating database", slog.Any("error", err))
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	created, err := seed.SeedBosses(ctx, db)
	if err != nil {
		slog.Error("Seeding failed", slog.Any("error", err))
		os.Exit(1)
	}
	slog.Info("Boss seeding completed", slog.Int("created", created), slog.Int("total", len(seed.Bosses)))

	// 既存のカタログキャッシュは古くなるので消しておく
	if cfg.Redis.Enabled {
		rdb := redis.NewClient(&redis.Options{Addr: cfg.Redis.Addr, Password: cfg.Redis.Password, DB: cfg.Redis.DB})
		defer rdb.Close()
		if err := repository.InvalidateBossCache(ctx, rdb); err != nil {
			slog.Warn("Failed to invalidate boss cache", slog.Any("error", err))
		} else {
			slog.Info("Boss cache invalidated")
		}
	}
}
