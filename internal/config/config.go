package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config holds all configuration for docgen
type Config struct {
	Server    ServerConfig
	Redis     RedisConfig
	Session   SessionConfig
	Upload    UploadConfig
	Templates TemplatesConfig
	Cleanup   CleanupConfig
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Host string
	Port int
}

// RedisConfig holds Redis configuration. An empty address means
// sessions are kept in process memory instead.
type RedisConfig struct {
	Address  string
	Password string
	DB       int
}

// SessionConfig holds session lifetime configuration
type SessionConfig struct {
	TTL        time.Duration
	CookieName string
}

// UploadConfig holds structure-upload configuration
type UploadConfig struct {
	Dir       string
	MaxBytes  int64
	Retention time.Duration
}

// TemplatesConfig holds section catalog configuration
type TemplatesConfig struct {
	Dir string
}

// CleanupConfig holds cleanup worker configuration
type CleanupConfig struct {
	Interval time.Duration
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Host: getEnv("SERVER_HOST", "0.0.0.0"),
			Port: getEnvAsInt("SERVER_PORT", 8080),
		},
		Redis: RedisConfig{
			Address:  getEnv("REDIS_ADDRESS", ""),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvAsInt("REDIS_DB", 0),
		},
		Session: SessionConfig{
			TTL:        getEnvAsDuration("SESSION_TTL", 24*time.Hour),
			CookieName: getEnv("SESSION_COOKIE_NAME", "docgen_session"),
		},
		Upload: UploadConfig{
			Dir:       getEnv("UPLOAD_DIR", os.TempDir()),
			MaxBytes:  int64(getEnvAsInt("UPLOAD_MAX_BYTES", 50*1024*1024)),
			Retention: getEnvAsDuration("UPLOAD_RETENTION", time.Hour),
		},
		Templates: TemplatesConfig{
			Dir: getEnv("TEMPLATES_DIR", ""),
		},
		Cleanup: CleanupConfig{
			Interval: getEnvAsDuration("CLEANUP_INTERVAL", 10*time.Minute),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", c.Server.Port)
	}

	if c.Session.TTL <= 0 {
		return fmt.Errorf("session TTL must be positive")
	}

	if c.Session.CookieName == "" {
		return fmt.Errorf("session cookie name is required")
	}

	if c.Upload.MaxBytes <= 0 {
		return fmt.Errorf("upload size limit must be positive")
	}

	return nil
}

// Helper functions

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value, exists := os.LookupEnv(key); exists {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
