// Package config loads process-wide configuration from the environment.
package config

import (
	"log/slog"
	"os"
	"time"

	"github.com/joho/godotenv"
)

// DefaultJWTExpiry is the token lifetime used when JWT_EXPIRY is not set.
const DefaultJWTExpiry = time.Hour

// Config holds all settings the server needs at startup.
// The JWT secret is injected into the token generator from here;
// business logic never reads it from the environment directly.
type Config struct {
	HTTPAddr  string
	JWTSecret string
	JWTExpiry time.Duration

	// DatabaseURL takes precedence over the MySQL settings when set.
	DatabaseURL string
	DB          DBConfig

	RedisHost     string
	RedisPort     string
	RedisPassword string

	RunMigrations bool
}

// DBConfig holds MySQL connection settings.
type DBConfig struct {
	User         string
	Password     string
	Name         string
	Host         string
	Port         string
	InstanceName string // Cloud SQL instance connection name
}

// Load reads configuration from .env (if present) and the environment.
func Load() *Config {
	// .envを読み込む（存在しない場合はシステム環境変数を使用）
	if err := godotenv.Load(); err != nil {
		slog.Info(".env not found; using system environment variables")
	}

	jwtExpiry := DefaultJWTExpiry
	if raw := os.Getenv("JWT_EXPIRY"); raw != "" {
		if d, err := time.ParseDuration(raw); err == nil && d > 0 {
			jwtExpiry = d
		} else {
			slog.Warn("invalid JWT_EXPIRY; using default", "value", raw, "default", DefaultJWTExpiry)
		}
	}

	return &Config{
		HTTPAddr:    getEnv("HTTP_ADDR", ":8080"),
		JWTSecret:   os.Getenv("JWT_SECRET"),
		JWTExpiry:   jwtExpiry,
		DatabaseURL: os.Getenv("DATABASE_URL"),
		DB: DBConfig{
			User:         os.Getenv("DB_USER"),
			Password:     os.Getenv("DB_PASSWORD"),
			Name:         os.Getenv("DB_NAME"),
			Host:         os.Getenv("DB_HOST"),
			Port:         getEnv("DB_PORT", "3306"),
			InstanceName: os.Getenv("INSTANCE_CONNECTION_NAME"),
		},
		RedisHost:     os.Getenv("REDIS_HOST"),
		RedisPort:     getEnv("REDIS_PORT", "6379"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),
		RunMigrations: os.Getenv("RUN_MIGRATIONS") == "true",
	}
}

// getEnv returns the value of key, or fallback when unset or empty.
func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
