package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	// Database
	DatabaseURL string

	// Server
	Port        string
	CORSOrigins []string
	Env         string

	// Location used for calendar dates and month keys
	Location *time.Location

	// Exports
	ExportRateLimit int
	ExportURLTTL    time.Duration

	// Rendered chart cache budget in bytes, and how often it is re-warmed
	// (0 disables warming)
	ChartCacheSize    int64
	ChartWarmInterval time.Duration

	// S3 Storage
	S3 S3Config
}

// S3Config holds AWS S3 configuration
type S3Config struct {
	Region          string
	Bucket          string
	AccessKeyID     string
	SecretAccessKey string
	Endpoint        string // Optional: for MinIO/LocalStack local dev
}

// Enabled reports whether report archiving to S3 is configured
func (c S3Config) Enabled() bool {
	return c.Bucket != ""
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists (ignore error if not found)
	_ = godotenv.Load()

	loc, err := time.LoadLocation(getEnv("TIMEZONE", "Local"))
	if err != nil {
		return nil, fmt.Errorf("invalid TIMEZONE: %w", err)
	}

	exportRateLimit, err := strconv.Atoi(getEnv("EXPORT_RATE_LIMIT", "20"))
	if err != nil {
		return nil, fmt.Errorf("invalid EXPORT_RATE_LIMIT: %w", err)
	}

	exportURLTTL, err := time.ParseDuration(getEnv("EXPORT_URL_TTL", "15m"))
	if err != nil {
		return nil, fmt.Errorf("invalid EXPORT_URL_TTL: %w", err)
	}

	chartCacheSize, err := strconv.ParseInt(getEnv("CHART_CACHE_SIZE", "33554432"), 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid CHART_CACHE_SIZE: %w", err)
	}

	chartWarmInterval, err := time.ParseDuration(getEnv("CHART_WARM_INTERVAL", "10m"))
	if err != nil {
		return nil, fmt.Errorf("invalid CHART_WARM_INTERVAL: %w", err)
	}

	cfg := &Config{
		DatabaseURL:       getEnv("DATABASE_URL", ""),
		Port:              getEnv("PORT", "8080"),
		CORSOrigins:       strings.Split(getEnv("CORS_ORIGINS", "http://localhost:3000"), ","),
		Env:               getEnv("ENV", "development"),
		Location:          loc,
		ExportRateLimit:   exportRateLimit,
		ExportURLTTL:      exportURLTTL,
		ChartCacheSize:    chartCacheSize,
		ChartWarmInterval: chartWarmInterval,
		S3: S3Config{
			Region:          getEnv("S3_REGION", "us-east-1"),
			Bucket:          getEnv("S3_BUCKET", ""),
			AccessKeyID:     getEnv("AWS_ACCESS_KEY_ID", ""),
			SecretAccessKey: getEnv("AWS_SECRET_ACCESS_KEY", ""),
			Endpoint:        getEnv("S3_ENDPOINT", ""), // Empty = use AWS, set for MinIO/LocalStack
		},
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) validate() error {
	if c.DatabaseURL == "" {
		return fmt.Errorf("DATABASE_URL is required")
	}
	if c.ExportRateLimit <= 0 {
		return fmt.Errorf("EXPORT_RATE_LIMIT must be positive")
	}
	if c.ExportURLTTL <= 0 || c.ExportURLTTL > 7*24*time.Hour {
		return fmt.Errorf("EXPORT_URL_TTL must be between 1s and 168h")
	}
	if c.ChartCacheSize <= 0 {
		return fmt.Errorf("CHART_CACHE_SIZE must be positive")
	}
	if c.ChartWarmInterval < 0 {
		return fmt.Errorf("CHART_WARM_INTERVAL must not be negative")
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
