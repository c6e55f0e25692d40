// ABOUTME: Configuration management for the application with environment variable support
// ABOUTME: Defines configuration structures for server, cache and collaborator endpoints

package config

import (
	"errors"
	"os"
	"strconv"
)

// Config holds all application configuration.
type Config struct {
	// Server contains HTTP server configuration
	Server ServerConfig

	// Cache contains cache backend configuration
	Cache CacheConfig

	// Services contains external collaborator endpoints
	Services ServicesConfig

	// Logging contains log output configuration
	Logging LoggingConfig
}

// ServerConfig holds HTTP server configuration.
type ServerConfig struct {
	// Port is the HTTP server port
	Port string
}

// CacheConfig holds cache backend configuration.
type CacheConfig struct {
	// Type specifies the cache backend (memory/redis/sqlite)
	Type string

	// Redis contains Redis-specific configuration
	Redis RedisConfig

	// Memory contains in-memory cache configuration
	Memory MemoryConfig

	// SQLitePath is the database file used by the sqlite backend
	SQLitePath string
}

// RedisConfig holds Redis-specific configuration.
type RedisConfig struct {
	// Address is the Redis server address
	Address string

	// Password is the Redis authentication password
	Password string

	// DB is the Redis database number
	DB int
}

// MemoryConfig holds in-memory cache configuration.
type MemoryConfig struct {
	// DefaultExpiration is the default TTL for cache entries in seconds
	DefaultExpiration int
}

// ServicesConfig holds the endpoints and limits for external collaborators.
type ServicesConfig struct {
	// SearchAPIURL is the web search endpoint
	SearchAPIURL string

	// AnalyzerURL is the content analysis endpoint
	AnalyzerURL string

	// ClassifierURL is the image classification endpoint
	ClassifierURL string

	// MaxSources caps how many search hits feed one brochure
	MaxSources int
}

// LoggingConfig holds log output configuration.
type LoggingConfig struct {
	// Level is the minimum level to emit (debug/info/warn/error)
	Level string

	// JSONFormat switches to JSON output for log aggregation
	JSONFormat bool
}

// LoadFromEnv loads configuration from environment variables.
func LoadFromEnv() (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Port: getEnvOrDefault("PORT", "8000"),
		},
		Cache: CacheConfig{
			Type: getEnvOrDefault("CACHE_TYPE", "memory"),
			Redis: RedisConfig{
				Address:  getEnvOrDefault("REDIS_ADDRESS", "localhost:6379"),
				Password: getEnvOrDefault("REDIS_PASSWORD", ""),
				DB:       getEnvAsIntOrDefault("REDIS_DB", 0),
			},
			Memory: MemoryConfig{
				DefaultExpiration: getEnvAsIntOrDefault("MEMORY_CACHE_EXPIRATION", 3600),
			},
			SQLitePath: getEnvOrDefault("SQLITE_CACHE_PATH", "brochure-cache.db"),
		},
		Services: ServicesConfig{
			SearchAPIURL:  getEnvOrDefault("SEARCH_API_URL", ""),
			AnalyzerURL:   getEnvOrDefault("ANALYZER_URL", ""),
			ClassifierURL: getEnvOrDefault("CLASSIFIER_URL", ""),
			MaxSources:    getEnvAsIntOrDefault("MAX_SOURCES", 5),
		},
		Logging: LoggingConfig{
			Level:      getEnvOrDefault("LOG_LEVEL", "info"),
			JSONFormat: getEnvAsBoolOrDefault("LOG_JSON", false),
		},
	}

	return cfg, nil
}

// getEnvOrDefault returns the environment variable value or a default.
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsIntOrDefault returns the environment variable as int or a default.
func getEnvAsIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getEnvAsBoolOrDefault returns the environment variable as bool or a default.
func getEnvAsBoolOrDefault(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return errors.New("port cannot be empty")
	}

	switch c.Cache.Type {
	case "memory", "redis", "sqlite":
	default:
		return errors.New("cache type must be 'memory', 'redis' or 'sqlite'")
	}

	if c.Cache.Type == "redis" && c.Cache.Redis.Address == "" {
		return errors.New("redis address cannot be empty when using redis cache")
	}

	if c.Services.MaxSources < 1 {
		return errors.New("max sources must be at least 1")
	}

	return nil
}
