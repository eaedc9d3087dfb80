// internal/config/constants.go
package config

import "time"

// アプリケーション情報
const (
	AppName    = "finlit-academy"
	AppVersion = "1.0.0"
)

const (
	GeneratorTypeOpenAI   = "openai"
	GeneratorTypeScripted = "scripted"
)

// デフォルト設定値
const (
	DefaultServerPort             = ":8080"
	DefaultLogLevel               = "info"
	DefaultCatalogTTL             = time.Hour
	DefaultGeneratorModel         = "gpt-4"
	DefaultGeneratorTemperature   = 0.7
	DefaultGeneratorMaxTokens     = 500
	DefaultGeneratorMaxAttempts   = 3
	DefaultGeneratorRetryInterval = 500 * time.Millisecond
	DefaultPassThresholdPercent   = 60
)
