package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config holds the full application configuration.
// Populated from environment variables (plus .env in development).
type Config struct {
	App      AppConfig
	Catalog  CatalogConfig
	Storage  StorageConfig
	Redis    RedisConfig
	Database DatabaseConfig
}

type AppConfig struct {
	Name        string
	Environment string // development, staging, production
	Port        string
	Version     string
}

// CatalogConfig describes the external read-only book feed.
// The feed is fetched once per process; there is no auth or pagination.
type CatalogConfig struct {
	Endpoint     string
	FetchTimeout time.Duration
}

// StorageConfig selects the persistence backend for cart, favorites
// and the signed-in identity.
type StorageConfig struct {
	// Backend: memory | file | redis | postgres
	Backend string
	// FilePath is the state file location for the file backend.
	FilePath string
}

type RedisConfig struct {
	Host     string
	Password string
	DB       int
}

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Database string
	SSLMode  string
	MaxConns int
	MinConns int
}

// Load reads config from environment variables.
func Load() (*Config, error) {
	cfg := &Config{
		App: AppConfig{
			Name:        getEnv("APP_NAME", "Bookshop API"),
			Environment: getEnv("APP_ENV", "development"),
			Port:        getEnv("APP_PORT", "8080"),
			Version:     getEnv("APP_VERSION", "1.0.0"),
		},
		Catalog: CatalogConfig{
			Endpoint:     getEnv("CATALOG_ENDPOINT", "https://example-data.draftbit.com/books"),
			FetchTimeout: time.Duration(getEnvInt("CATALOG_FETCH_TIMEOUT", 15)) * time.Second,
		},
		Storage: StorageConfig{
			Backend:  getEnv("STORAGE_BACKEND", "file"),
			FilePath: getEnv("STORAGE_FILE_PATH", "bookshop_state.json"),
		},
		Redis: RedisConfig{
			Host:     getEnv("REDIS_HOST", "localhost:6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvInt("REDIS_DB", 0),
		},
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnvInt("DB_PORT", 5432),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", ""),
			Database: getEnv("DB_NAME", "bookshop"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
			MaxConns: getEnvInt("DB_MAX_CONNS", 10),
			MinConns: getEnvInt("DB_MIN_CONNS", 2),
		},
	}

	// Validate critical config
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

// Validate checks the critical settings.
func (c *Config) Validate() error {
	if c.Catalog.Endpoint == "" {
		return fmt.Errorf("CATALOG_ENDPOINT must not be empty")
	}

	switch c.Storage.Backend {
	case "memory", "file", "redis", "postgres":
	default:
		return fmt.Errorf("unknown STORAGE_BACKEND %q (want memory, file, redis or postgres)", c.Storage.Backend)
	}

	if c.Storage.Backend == "file" && c.Storage.FilePath == "" {
		return fmt.Errorf("STORAGE_FILE_PATH must not be empty for the file backend")
	}

	return nil
}

// getEnv reads an environment variable with a fallback default value.
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// getEnvInt reads an integer environment variable with a fallback default value.
func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	n, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}
	return n
}
