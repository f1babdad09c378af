// internal/config/config.go
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Storage driver names accepted by STORAGE_DRIVER.
const (
	DriverMemory = "memory"
	DriverFile   = "file"
	DriverRedis  = "redis"
)

// Config holds all configuration for the storefront.
type Config struct {
	App     AppConfig
	API     APIConfig
	Cart    CartConfig
	Storage StorageConfig
	Redis   RedisConfig
	Logging LoggingConfig
}

// AppConfig contains application-level configuration.
type AppConfig struct {
	Name        string
	Version     string
	Environment string
}

// APIConfig contains store API configuration.
type APIConfig struct {
	BaseURL string
	Timeout time.Duration
}

// CartConfig contains cart configuration.
type CartConfig struct {
	StorageKey string
	Currency   string
}

// StorageConfig selects and configures the persistence backend.
type StorageConfig struct {
	Driver   string
	FilePath string
}

// RedisConfig contains Redis configuration for the redis storage driver.
type RedisConfig struct {
	Host         string
	Port         string
	Password     string
	DB           int
	PoolSize     int
	MinIdleConns int
	Channel      string
}

// LoggingConfig contains logging configuration.
type LoggingConfig struct {
	Level  string
	Format string
}

// Load loads configuration from environment variables and an optional .env file.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		fmt.Println("No .env file found, using environment variables")
	}

	config := &Config{
		App: AppConfig{
			Name:        getEnv("APP_NAME", "Storefront"),
			Version:     getEnv("APP_VERSION", "1.0.0"),
			Environment: getEnv("APP_ENV", "development"),
		},
		API: APIConfig{
			BaseURL: getEnv("STORE_API_URL", "https://fakestoreapi.com"),
			Timeout: getEnvAsDuration("STORE_API_TIMEOUT", 30*time.Second),
		},
		Cart: CartConfig{
			StorageKey: getEnv("CART_STORAGE_KEY", "fake-store-api-cart"),
			Currency:   getEnv("CART_CURRENCY", "PLN"),
		},
		Storage: StorageConfig{
			Driver:   getEnv("STORAGE_DRIVER", DriverFile),
			FilePath: getEnv("STORAGE_FILE_PATH", ".storefront/storage.json"),
		},
		Redis: RedisConfig{
			Host:         getEnv("REDIS_HOST", "localhost"),
			Port:         getEnv("REDIS_PORT", "6379"),
			Password:     getEnv("REDIS_PASSWORD", ""),
			DB:           getEnvAsInt("REDIS_DB", 0),
			PoolSize:     getEnvAsInt("REDIS_POOL_SIZE", 10),
			MinIdleConns: getEnvAsInt("REDIS_MIN_IDLE_CONNS", 5),
			Channel:      getEnv("REDIS_EVENT_CHANNEL", "storefront:storage:events"),
		},
		Logging: LoggingConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", "text"),
		},
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if c.API.BaseURL == "" {
		return fmt.Errorf("STORE_API_URL is required")
	}
	if c.Cart.StorageKey == "" {
		return fmt.Errorf("CART_STORAGE_KEY is required")
	}

	switch c.Storage.Driver {
	case DriverMemory:
	case DriverFile:
		if c.Storage.FilePath == "" {
			return fmt.Errorf("STORAGE_FILE_PATH is required for the file driver")
		}
	case DriverRedis:
		if c.Redis.Host == "" {
			return fmt.Errorf("REDIS_HOST is required for the redis driver")
		}
	default:
		return fmt.Errorf("unknown STORAGE_DRIVER %q", c.Storage.Driver)
	}

	return nil
}

// IsDevelopment returns true if the application is running in development mode.
func (c *Config) IsDevelopment() bool {
	return c.App.Environment == "development"
}

// GetRedisAddr returns the Redis address.
func (c *Config) GetRedisAddr() string {
	return fmt.Sprintf("%s:%s", c.Redis.Host, c.Redis.Port)
}

// Helper functions for environment variable parsing

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

