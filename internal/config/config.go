// internal/config/config.go
package config

import (
	"errors"
	"log"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	Database  DatabaseConfig  `mapstructure:"database"`
	Log       LogConfig       `mapstructure:"log"`
	CORS      CORSConfig      `mapstructure:"cors"`
	Auth      AuthConfig      `mapstructure:"auth"`
	Redis     RedisConfig     `mapstructure:"redis"`
	Generator GeneratorConfig `mapstructure:"generator"`
	Battle    BattleConfig    `mapstructure:"battle"`
	Metrics   MetricsConfig   `mapstructure:"metrics"`
}

type ServerConfig struct {
	Port string `mapstructure:"port"`
}

type DatabaseConfig struct {
	URL         string `mapstructure:"url"`
	AutoMigrate bool   `mapstructure:"auto_migrate"`
}

type LogConfig struct {
	Level string `mapstructure:"level"`
}

type CORSConfig struct {
	AllowedOrigins   []string `mapstructure:"allowed_origins"`
	AllowedMethods   []string `mapstructure:"allowed_methods"`
	AllowedHeaders   []string `mapstructure:"allowed_headers"`
	ExposedHeaders   []string `mapstructure:"exposed_headers"`
	AllowCredentials bool     `mapstructure:"allow_credentials"`
	MaxAge           int      `mapstructure:"max_age"`
}

type AuthConfig struct {
	Enabled   bool   `mapstructure:"enabled"`
	JWTSecret string `mapstructure:"jwt_secret"`
}

type RedisConfig struct {
	Enabled    bool          `mapstructure:"enabled"`
	Addr       string        `mapstructure:"addr"`
	Password   string        `mapstructure:"password"`
	DB         int           `mapstructure:"db"`
	CatalogTTL time.Duration `mapstructure:"catalog_ttl"`
}

// GeneratorConfig はボスの出題文を生成するサービスの設定
type GeneratorConfig struct {
	Type                 string        `mapstructure:"type"` // "openai" or "scripted"
	APIKey               string        `mapstructure:"api_key"`
	BaseURL              string        `mapstructure:"base_url"`
	Model                string        `mapstructure:"model"`
	Temperature          float32       `mapstructure:"temperature"`
	MaxTokens            int           `mapstructure:"max_tokens"`
	MaxAttempts          int           `mapstructure:"max_attempts"`
	RetryInitialInterval time.Duration `mapstructure:"retry_initial_interval"`
}

type BattleConfig struct {
	// 問題数を使い切った時の勝利ライン (正解数 / 総問題数 の百分率)
	PassThresholdPercent int `mapstructure:"pass_threshold_percent"`
}

type MetricsConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Path    string `mapstructure:"path"`
}

// LoadConfig は path 配下の config.yaml と環境変数 (APP_ 接頭辞) を読み込む
func LoadConfig(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(path)
	v.AddConfigPath(".")

	v.SetEnvPrefix("APP")
	v.AutomaticEnv()
	// 秘密情報は接頭辞なしの環境変数でも受け付ける
	v.BindEnv("database.url", "APP_DATABASE_URL", "DATABASE_URL")
	v.BindEnv("auth.enabled", "AUTH_ENABLED")
	v.BindEnv("auth.jwt_secret", "APP_AUTH_JWT_SECRET", "JWT_SECRET")
	v.BindEnv("generator.api_key", "APP_GENERATOR_API_KEY", "OPENAI_API_KEY")
	v.BindEnv("redis.addr", "APP_REDIS_ADDR", "REDIS_ADDR")

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			log.Println("Warning: Config file not found. Using default settings or environment variables if available.")
		} else {
			log.Printf("Error reading config file: %s\n", err)
			return nil, err
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		log.Printf("Error unmarshalling config: %s\n", err)
		return nil, err
	}

	applyFallbacks(&cfg)

	log.Println("Config loaded successfully")
	log.Printf("Server Port: %s", cfg.Server.Port)
	log.Printf("Auth Enabled: %t", cfg.Auth.Enabled)
	log.Printf("Generator Type: %s", cfg.Generator.Type)
	log.Printf("Redis Enabled: %t", cfg.Redis.Enabled)

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", DefaultServerPort)
	v.SetDefault("log.level", DefaultLogLevel)
	v.SetDefault("auth.enabled", true)
	v.SetDefault("redis.addr", "localhost:6379")
	v.SetDefault("redis.catalog_ttl", DefaultCatalogTTL)
	v.SetDefault("generator.type", GeneratorTypeOpenAI)
	v.SetDefault("generator.model", DefaultGeneratorModel)
	v.SetDefault("generator.temperature", DefaultGeneratorTemperature)
	v.SetDefault("generator.max_tokens", DefaultGeneratorMaxTokens)
	v.SetDefault("generator.max_attempts", DefaultGeneratorMaxAttempts)
	v.SetDefault("generator.retry_initial_interval", DefaultGeneratorRetryInterval)
	v.SetDefault("battle.pass_threshold_percent", DefaultPassThresholdPercent)
	v.SetDefault("metrics.enabled", true)
	v.SetDefault("metrics.path", "/metrics")
}

// applyFallbacks は不正な値をデフォルトに戻す
func applyFallbacks(cfg *Config) {
	if cfg.Server.Port == "" {
		log.Printf("Server port not set, using default '%s'", DefaultServerPort)
		cfg.Server.Port = DefaultServerPort
	}
	if cfg.Database.URL == "" {
		log.Println("Warning: Database URL is not set in config.")
	}
	if cfg.Battle.PassThresholdPercent <= 0 || cfg.Battle.PassThresholdPercent > 100 {
		log.Printf("Invalid battle pass threshold %d, using default %d", cfg.Battle.PassThresholdPercent, DefaultPassThresholdPercent)
		cfg.Battle.PassThresholdPercent = DefaultPassThresholdPercent
	}
	if cfg.Generator.MaxAttempts <= 0 {
		cfg.Generator.MaxAttempts = DefaultGeneratorMaxAttempts
	}
	if cfg.Generator.Type == GeneratorTypeOpenAI && cfg.Generator.APIKey == "" {
		log.Println("Warning: generator api key is empty, falling back to scripted generator")
		cfg.Generator.Type = GeneratorTypeScripted
	}
	if cfg.Auth.Enabled && cfg.Auth.JWTSecret == "" {
		log.Println("Warning: JWT secret is not set while auth is enabled.")
	}
}
