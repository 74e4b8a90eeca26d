package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config - структура для хранения конфигурации приложения
type Config struct {
	DatabaseURL string `env:"DATABASE_URL"`
	DBMaxConns  int32  `env:"DB_MAX_CONNS" envDefault:"10"`
	HTTPPort    string `env:"HTTP_PORT" envDefault:"8080"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`

	// Redis Config
	RedisAddr string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	RedisPass string `env:"REDIS_PASSWORD"`
	RedisDB   int    `env:"REDIS_DB" envDefault:"0"`

	// Auth Config
	JWTSecret string        `env:"JWT_SECRET"`
	JWTTTL    time.Duration `env:"JWT_TTL" envDefault:"168h"`

	// Scoring Config
	DefaultCity string `env:"DEFAULT_CITY" envDefault:"demo_city"`
	// Жесткий потолок размера рабочего набора сигналов: каждая агрегация
	// сканирует весь набор, поэтому выборка должна быть ограничена
	SignalPageLimit int `env:"SIGNAL_PAGE_LIMIT" envDefault:"1000"`

	// Export worker Config
	ExportWebhookURL    string        `env:"EXPORT_WEBHOOK_URL"`
	ExportWebhookSecret string        `env:"EXPORT_WEBHOOK_SECRET"`
	ExportTimeout       time.Duration `env:"EXPORT_TIMEOUT" envDefault:"5s"`
	ExportMaxRetries    int           `env:"EXPORT_MAX_RETRIES" envDefault:"3"`
	ExportBaseDelay     time.Duration `env:"EXPORT_BASE_DELAY" envDefault:"1s"`
	ExportResultTTL     time.Duration `env:"EXPORT_RESULT_TTL" envDefault:"24h"`
}

// LoadConfig загружает конфигурацию из переменных окружения и .env файла
func LoadConfig() (*Config, error) {
	// Загрузка переменных окружения из .env файла (если есть)
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("ошибка загрузки файла .env: %w", err)
	}

	cfg := &Config{
		DatabaseURL:         os.Getenv("DATABASE_URL"),
		DBMaxConns:          int32(getEnvAsInt("DB_MAX_CONNS", 10)),
		HTTPPort:            getEnv("HTTP_PORT", "8080"),
		LogLevel:            getEnv("LOG_LEVEL", "info"),
		RedisAddr:           getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPass:           os.Getenv("REDIS_PASSWORD"),
		RedisDB:             getEnvAsInt("REDIS_DB", 0),
		JWTSecret:           os.Getenv("JWT_SECRET"),
		JWTTTL:              getEnvAsDuration("JWT_TTL", 168*time.Hour),
		DefaultCity:         getEnv("DEFAULT_CITY", "demo_city"),
		SignalPageLimit:     getEnvAsInt("SIGNAL_PAGE_LIMIT", 1000),
		ExportWebhookURL:    os.Getenv("EXPORT_WEBHOOK_URL"),
		ExportWebhookSecret: os.Getenv("EXPORT_WEBHOOK_SECRET"),
		ExportTimeout:       getEnvAsDuration("EXPORT_TIMEOUT", 5*time.Second),
		ExportMaxRetries:    getEnvAsInt("EXPORT_MAX_RETRIES", 3),
		ExportBaseDelay:     getEnvAsDuration("EXPORT_BASE_DELAY", time.Second),
		ExportResultTTL:     getEnvAsDuration("EXPORT_RESULT_TTL", 24*time.Hour),
	}

	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL environment variable is required")
	}

	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET environment variable is required")
	}

	return cfg, nil
}

// getEnv возвращает значение переменной окружения или значение по умолчанию
func getEnv(key string, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsInt возвращает значение переменной окружения как int или значение по умолчанию
func getEnvAsInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getEnvAsDuration возвращает значение переменной окружения как time.Duration или значение по умолчанию
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value, exists := os.LookupEnv(key); exists {
		if durationValue, err := time.ParseDuration(value); err == nil {
			return durationValue
		}
	}
	return defaultValue
}
