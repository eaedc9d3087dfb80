// cmd/main.go
package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/go-chi/chi/v5"
	"github.com/go-redis/redis/v8"
	"github.com/lmittmann/tint"
	"github.com/rs/cors"

	"finlit_academy/internal/config"
	"finlit_academy/internal/graph"
	"finlit_academy/internal/metrics"
	"finlit_academy/internal/middleware"
	"finlit_academy/internal/repository"
	"finlit_academy/internal/service"

	chimiddleware "github.com/go-chi/chi/v5/middleware"
)

func main() {
	//　設定ファイル読み込み用の一時的なロガー設定
	tempLogger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	slog.SetDefault(tempLogger)

	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "configs"
	}
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		slog.Error("Error loading configuration", slog.Any("error", err))
		os.Exit(1)
	}

	logger := newLogger(cfg.Log.Level, tempLogger)
	slog.SetDefault(logger)
	slog.Info("Application starting...", slog.String("app", config.AppName), slog.String("version", config.AppVersion))

	// 1. Database
	db, err := repository.NewDB(cfg.Database.URL, logger)
	if err != nil {
		slog.Error("Error initializing database", slog.Any("error", err))
		os.Exit(1)
	}
	sqlDB, err := db.DB()
	if err != nil {
		slog.Error("Error getting underlying sql.DB from GORM", slog.Any("error", err))
		os.Exit(1)
	}
	defer func() {
		if err := sqlDB.Close(); err != nil {
			slog.Error("Error closing database connection", slog.Any("error", err))
		} else {
			slog.Info("Database connection closed.")
		}
	}()

	if cfg.Database.AutoMigrate {
		if err := repository.Migrate(db); err != nil {
			slog.Error("Error migrating database", slog.Any("error", err))
			os.Exit(1)
		}
		slog.Info("Database schema migrated.")
	}

	// 2. Dependency Injection
	bossRepo := repository.NewGormBossRepository()
	if cfg.Redis.Enabled {
		rdb, err := connectRedis(cfg.Redis)
		if err != nil {
			// キャッシュなしでも動作できるので起動は続ける
			slog.Warn("Redis unavailable, boss catalog cache disabled", slog.Any("error", err))
		} else {
			defer rdb.Close()
			bossRepo = repository.NewCachedBossRepository(bossRepo, rdb, cfg.Redis.CatalogTTL)
			slog.Info("Boss catalog cache enabled", slog.String("addr", cfg.Redis.Addr), slog.Duration("ttl", cfg.Redis.CatalogTTL))
		}
	}
	battleRepo := repository.NewGormBattleRepository()
	achievementRepo := repository.NewGormAchievementRepository()
	progressRepo := repository.NewGormProgressRepository()

	battleMetrics := metrics.NewBattleMetrics()
	generator := service.NewQuestionGenerator(cfg)

	bossService := service.NewBossService(db, bossRepo)
	battleService := service.NewBattleService(db, bossRepo, battleRepo, achievementRepo, progressRepo, generator, battleMetrics, cfg)
	achievementService := service.NewAchievementService(db, achievementRepo, progressRepo)

	schema, err := graph.NewSchema(graph.NewResolver(bossService, battleService, achievementService))
	if err != nil {
		slog.Error("Error parsing GraphQL schema", slog.Any("error", err))
		os.Exit(1)
	}
	graphqlHandler := graph.NewHandler(schema)

	// 3. Setup Router
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.LoggingMiddleware(logger))

	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   cfg.CORS.AllowedOrigins,
		AllowedMethods:   cfg.CORS.AllowedMethods,
		AllowedHeaders:   cfg.CORS.AllowedHeaders,
		ExposedHeaders:   cfg.CORS.ExposedHeaders,
		AllowCredentials: cfg.CORS.AllowCredentials,
		MaxAge:           cfg.CORS.MaxAge,
		Debug:            false,
	})
	r.Use(corsHandler.Handler)

	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(60 * time.Second))

	r.Group(func(r chi.Router) {
		if cfg.Auth.Enabled {
			slog.Info("Applying JWT authentication middleware")
			r.Use(middleware.JWTAuthMiddleware(cfg.Auth.JWTSecret))
		} else {
			slog.Warn("Authentication disabled, trusting X-User-ID header")
			r.Use(middleware.DevUserContextMiddleware)
		}
		r.Handle("/graphql", graphqlHandler)
	})

	if cfg.Metrics.Enabled {
		r.Handle(cfg.Metrics.Path, metrics.Handler(metrics.NewRegistry(battleMetrics)))
	}

	// Health Check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if err := sqlDB.PingContext(ctx); err != nil {
			slog.ErrorContext(ctx, "Health check failed: could not ping DB", slog.Any("error", err))
			http.Error(w, "Health check failed", http.StatusInternalServerError)
			return
		}
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// 4. Start Server
	server := &http.Server{
		Addr:         cfg.Server.Port,
		Handler:      r,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 90 * time.Second, // 問題生成の再試行を含めて待てる長さ
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		slog.Info("Server listening", slog.String("port", cfg.Server.Port))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Could not listen on port", slog.String("port", cfg.Server.Port), slog.Any("error", err))
			os.Exit(1)
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	slog.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		slog.Error("Server forced to shutdown", slog.Any("error", err))
	}

	log.Println("Server exiting")
}

// newLogger はログレベルと APP_ENV に応じて tint か JSON のハンドラを選ぶ
func newLogger(level string, tempLogger *slog.Logger) *slog.Logger {
	logLevel := new(slog.LevelVar)
	switch strings.ToLower(level) {
	case "debug":
		logLevel.Set(slog.LevelDebug)
	case "info":
		logLevel.Set(slog.LevelInfo)
	case "warn", "warning":
		logLevel.Set(slog.LevelWarn)
	case "error":
		logLevel.Set(slog.LevelError)
	default:
		logLevel.Set(slog.LevelInfo)
		tempLogger.Warn("Unknown log level specified in config, defaulting to INFO", slog.String("level", level))
	}

	var handler slog.Handler
	appEnv := os.Getenv("APP_ENV")
	if strings.ToLower(appEnv) == "dev" {
		handler = tint.NewHandler(os.Stderr, &tint.Options{
			Level:      logLevel,
			TimeFormat: time.RFC3339,
		})
		tempLogger.Info("Using TINT log handler", slog.String("APP_ENV", appEnv))
	} else {
		handler = slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
			Level:     logLevel,
			AddSource: true,
		})
		tempLogger.Info("Using JSON log handler", slog.String("APP_ENV", appEnv))
	}
	return slog.New(handler)
}

// connectRedis は起動直後の Redis 未準備に備えて数回 PING を再試行する
func connectRedis(cfg config.RedisConfig) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	b := backoff.NewExponentialBackOff()
	b.MaxElapsedTime = 10 * time.Second
	err := backoff.Retry(func() error {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		if err := rdb.Ping(ctx).Err(); err != nil {
			slog.Warn("Redis ping failed, retrying...", slog.Any("error", err))
			return err
		}
		return nil
	}, b)
	if err != nil {
		rdb.Close()
		return nil, err
	}
	return rdb, nil
}
