package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config - структура для хранения конфигурации приложения
type Config struct {
	HTTPPort        string        `env:"HTTP_PORT" envDefault:"8080"`
	LogLevel        string        `env:"LOG_LEVEL" envDefault:"info"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"5s"`

	// Dataset Config
	DatasetPath string `env:"DATASET_PATH" envDefault:"data/crashes.json"`
	DatasetSeed bool   `env:"DATASET_SEED" envDefault:"false"`

	// Postgres Config (необязательно)
	DatabaseURL    string `env:"DATABASE_URL"`
	MigrationsPath string `env:"MIGRATIONS_PATH" envDefault:"file://migrations"`

	// Redis Config
	RedisAddr string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	RedisPass string `env:"REDIS_PASSWORD"`
	RedisDB   int    `env:"REDIS_DB" envDefault:"0"`

	// Weather Config
	WeatherAPIKey   string        `env:"WEATHER_API_KEY"`
	WeatherAPIURL   string        `env:"WEATHER_API_URL" envDefault:"https://api.openweathermap.org/data/2.5"`
	WeatherTimeout  time.Duration `env:"WEATHER_TIMEOUT" envDefault:"5s"`
	WeatherCacheTTL time.Duration `env:"WEATHER_CACHE_TTL" envDefault:"10m"`

	// Prefetch Config
	PrefetchEnabled bool `env:"PREFETCH_ENABLED" envDefault:"true"`

	// API Keys for authentication
	APIKeys []string `env:"API_KEYS"`
}

// WeatherEnabled сообщает, настроен ли доступ к погодному API
func (c *Config) WeatherEnabled() bool {
	return c.WeatherAPIKey != ""
}

// LoadConfig загружает конфигурацию из переменных окружения и .env файла
func LoadConfig() (*Config, error) {
	// Загрузка переменных окружения из .env файла (если есть)
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to load .env file: %w", err)
	}

	cfg := &Config{
		HTTPPort:        getEnv("HTTP_PORT", "8080"),
		LogLevel:        getEnv("LOG_LEVEL", "info"),
		ShutdownTimeout: getEnvAsDuration("SHUTDOWN_TIMEOUT", 5*time.Second),
		DatasetPath:     getEnv("DATASET_PATH", "data/crashes.json"),
		DatasetSeed:     getEnvAsBool("DATASET_SEED", false),
		DatabaseURL:     os.Getenv("DATABASE_URL"),
		MigrationsPath:  getEnv("MIGRATIONS_PATH", "file://migrations"),
		RedisAddr:       getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPass:       os.Getenv("REDIS_PASSWORD"),
		RedisDB:         getEnvAsInt("REDIS_DB", 0),
		WeatherAPIKey:   os.Getenv("WEATHER_API_KEY"),
		WeatherAPIURL:   getEnv("WEATHER_API_URL", "https://api.openweathermap.org/data/2.5"),
		WeatherTimeout:  getEnvAsDuration("WEATHER_TIMEOUT", 5*time.Second),
		WeatherCacheTTL: getEnvAsDuration("WEATHER_CACHE_TTL", 10*time.Minute),
		PrefetchEnabled: getEnvAsBool("PREFETCH_ENABLED", true),
	}

	// Загрузка API ключей
	apiKeysStr := os.Getenv("API_KEYS")
	if apiKeysStr != "" {
		for _, key := range strings.Split(apiKeysStr, ",") {
			if key = strings.TrimSpace(key); key != "" {
				cfg.APIKeys = append(cfg.APIKeys, key)
			}
		}
	}

	if cfg.DatasetPath == "" {
		return nil, fmt.Errorf("DATASET_PATH environment variable is required")
	}
	if cfg.WeatherTimeout <= 0 {
		return nil, fmt.Errorf("WEATHER_TIMEOUT must be positive")
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

// getEnvAsBool возвращает значение переменной окружения как bool или значение по умолчанию
func getEnvAsBool(key string, defaultValue bool) bool {
	if value, exists := os.LookupEnv(key); exists {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
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
