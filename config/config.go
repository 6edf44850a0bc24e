package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	// Server
	Port        string
	Environment string

	// Database
	Database DatabaseConfig

	// Redis (rate limiting)
	Redis RedisConfig

	// Security
	Security SecurityConfig
}

type DatabaseConfig struct {
	URI      string
	Name     string
	Host     string
	Port     string
	Username string
	Password string

	MaxConnections int
	MinConnections int
	MaxIdleTime    time.Duration
}

type RedisConfig struct {
	Address  string
	Password string
	DB       int

	// Fixed-window rate limit applied to widget-facing routes.
	RateLimitPerMin int
}

type SecurityConfig struct {
	AllowedOrigins []string
	TrustedProxies []string
}

var cfg *Config

// Load initializes the configuration from .env / environment variables.
func Load() error {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg = &Config{
		Port:        getEnv("PORT", "8080"),
		Environment: getEnv("ENVIRONMENT", "development"),

		Database: DatabaseConfig{
			URI:      getEnv("DATABASE_URL", ""),
			Name:     getEnv("DB_NAME", "zain_site"),
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "27017"),
			Username: getEnv("DB_USERNAME", ""),
			Password: getEnv("DB_PASSWORD", ""),

			MaxConnections: getEnvAsInt("DB_MAX_CONNECTIONS", 100),
			MinConnections: getEnvAsInt("DB_MIN_CONNECTIONS", 10),
			MaxIdleTime:    getEnvAsDuration("DB_MAX_IDLE_TIME", "30m"),
		},

		Redis: RedisConfig{
			Address:         getEnv("REDIS_ADDRESS", "localhost:6379"),
			Password:        getEnv("REDIS_PASSWORD", ""),
			DB:              getEnvAsInt("REDIS_DB", 0),
			RateLimitPerMin: getEnvAsInt("RATE_LIMIT_PER_MIN", 60),
		},

		Security: SecurityConfig{
			AllowedOrigins: getEnvAsSlice("ALLOWED_ORIGINS", []string{"http://localhost:3000", "http://localhost:5173"}),
			TrustedProxies: getEnvAsSlice("TRUSTED_PROXIES", []string{}),
		},
	}

	if err := validate(); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}

	return nil
}

// Get returns the loaded configuration
func Get() *Config {
	if cfg == nil {
		log.Fatal("Configuration not loaded. Call Load() first")
	}
	return cfg
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue string) time.Duration {
	valueStr := getEnv(key, defaultValue)
	if duration, err := time.ParseDuration(valueStr); err == nil {
		return duration
	}
	duration, _ := time.ParseDuration(defaultValue)
	return duration
}

func getEnvAsSlice(key string, defaultValue []string) []string {
	value := getEnv(key, "")
	if value == "" {
		return defaultValue
	}
	return strings.Split(value, ",")
}

func validate() error {
	if cfg.Database.URI == "" {
		if cfg.Database.Host == "" || cfg.Database.Port == "" {
			return fmt.Errorf("database URI or host/port must be provided")
		}
	}
	return nil
}

// BuildDatabaseURI constructs the MongoDB URI if not provided directly.
func (c *Config) BuildDatabaseURI() string {
	if c.Database.URI != "" {
		return c.Database.URI
	}

	if c.Database.Username != "" && c.Database.Password != "" {
		return fmt.Sprintf("mongodb://%s:%s@%s:%s/%s",
			c.Database.Username,
			c.Database.Password,
			c.Database.Host,
			c.Database.Port,
			c.Database.Name,
		)
	}
	return fmt.Sprintf("mongodb://%s:%s/%s",
		c.Database.Host,
		c.Database.Port,
		c.Database.Name,
	)
}
