package common

import (
	"os"
	"strconv"
	"time"
)

// Config holds all application configuration
type Config struct {
	Database DatabaseConfig
	Server   ServerConfig
	Storage  StorageConfig
	Vision   VisionConfig
	LLM      LLMConfig
	Auth     AuthConfig
}

// DatabaseConfig holds database-related configuration
type DatabaseConfig struct {
	DSN              string
	MaxConns         int32
	MinConns         int32
	MaxConnLifetime  time.Duration
	MaxConnIdleTime  time.Duration
	DialTimeout      time.Duration
	StatementTimeout time.Duration
}

// ServerConfig holds server-related configuration
type ServerConfig struct {
	GRPCAddr string
}

// StorageConfig holds object-storage configuration. Endpoint may point at
// any S3-compatible service (MinIO in development).
type StorageConfig struct {
	Endpoint     string
	Region       string
	AccessKey    string
	SecretKey    string
	Bucket       string
	UsePathStyle bool
	PresignTTL   time.Duration
}

// VisionConfig holds text-detection configuration.
type VisionConfig struct {
	CacheDir      string
	LineThreshold float64
}

// LLMConfig holds structured-extraction configuration
type LLMConfig struct {
	Model    string
	APIKey   string
	BaseURL  string
	Timeout  time.Duration
	CacheDir string
}

// AuthConfig holds token configuration for the gRPC API.
type AuthConfig struct {
	JWTSecret string
	TokenTTL  time.Duration
}

// LoadConfig loads configuration from environment variables
func LoadConfig() *Config {
	return &Config{
		Database: DatabaseConfig{
			DSN:              getEnv("DB_URL", ""),
			MaxConns:         getEnvAsInt32("DB_MAX_CONNS", 20),
			MinConns:         getEnvAsInt32("DB_MIN_CONNS", 5),
			MaxConnLifetime:  getEnvAsDuration("DB_MAX_CONN_LIFETIME", 30*time.Minute),
			MaxConnIdleTime:  getEnvAsDuration("DB_MAX_CONN_IDLE_TIME", 5*time.Minute),
			DialTimeout:      getEnvAsDuration("DB_DIAL_TIMEOUT", 3*time.Second),
			StatementTimeout: getEnvAsDuration("DB_STATEMENT_TIMEOUT", 0),
		},
		Server: ServerConfig{
			GRPCAddr: getEnv("GRPC_ADDR", ":8080"),
		},
		Storage: StorageConfig{
			Endpoint:     getEnv("S3_ENDPOINT", ""),
			Region:       getEnv("S3_REGION", "auto"),
			AccessKey:    getEnv("S3_ACCESS_KEY_ID", ""),
			SecretKey:    getEnv("S3_SECRET_ACCESS_KEY", ""),
			Bucket:       getEnv("S3_BUCKET", "receipts"),
			UsePathStyle: getEnvAsBool("S3_PATH_STYLE", true),
			PresignTTL:   getEnvAsDuration("S3_PRESIGN_TTL", time.Hour),
		},
		Vision: VisionConfig{
			CacheDir:      getEnv("VISION_CACHE_DIR", "cache/cloud_vision"),
			LineThreshold: getEnvAsFloat64("LINE_Y_THRESHOLD", 10),
		},
		LLM: LLMConfig{
			Model:    getEnv("OPENAI_MODEL", "gpt-4o-mini"),
			APIKey:   getEnv("OPENAI_API_KEY", ""),
			BaseURL:  getEnv("OPENAI_BASE_URL", ""),
			Timeout:  getEnvAsDuration("OPENAI_TIMEOUT", 45*time.Second),
			CacheDir: getEnv("OPENAI_CACHE_DIR", "cache/openai"),
		},
		Auth: AuthConfig{
			JWTSecret: getEnv("JWT_SECRET", ""),
			TokenTTL:  getEnvAsDuration("JWT_TTL", 24*time.Hour),
		},
	}
}

// Helper functions for environment variable parsing
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt32(key string, defaultValue int32) int32 {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.ParseInt(value, 10, 32); err == nil {
			return int32(intVal)
		}
	}
	return defaultValue
}

func getEnvAsFloat64(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatVal, err := strconv.ParseFloat(value, 64); err == nil {
			return floatVal
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
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

// ValidateConfig validates the loaded configuration
func (c *Config) Validate() error {
	if c.Database.DSN == "" {
		return NewAppError("CONFIG_ERROR", "DB_URL is required", ErrInvalidInput)
	}
	if c.LLM.APIKey == "" {
		return NewAppError("CONFIG_ERROR", "OPENAI_API_KEY is required", ErrInvalidInput)
	}
	if c.Server.GRPCAddr == "" {
		return NewAppError("CONFIG_ERROR", "GRPC_ADDR is required", ErrInvalidInput)
	}
	if c.Auth.JWTSecret == "" {
		return NewAppError("CONFIG_ERROR", "JWT_SECRET is required", ErrInvalidInput)
	}
	return nil
}
