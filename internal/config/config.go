package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

const (
	DriverMySQL  = "mysql"
	DriverSQLite = "sqlite"
)

type Config struct {
	Database DatabaseConfig
	Server   ServerConfig
	Auth     AuthConfig
	CORS     CORSConfig
	Log      LogConfig
}

type DatabaseConfig struct {
	Driver   string `validate:"required,oneof=mysql sqlite"`
	Host     string `validate:"required_if=Driver mysql"`
	Port     string `validate:"required_if=Driver mysql"`
	User     string `validate:"required_if=Driver mysql"`
	Password string
	Database string `validate:"required_if=Driver mysql"`
	Path     string `validate:"required_if=Driver sqlite"`
}

type ServerConfig struct {
	Port    string `validate:"required,numeric"`
	GinMode string `validate:"oneof=debug release test"`
}

// AuthConfig holds the single shared credential guarding /api routes.
// When PasswordHash is set it takes precedence over Password.
type AuthConfig struct {
	Username     string `validate:"required"`
	Password     string `validate:"required_without=PasswordHash"`
	PasswordHash string
}

type CORSConfig struct {
	AllowedOrigins []string `validate:"min=1,dive,url"`
}

type LogConfig struct {
	Level string
}

// LoadConfig reads the environment (and a .env file when present) and validates the result.
func LoadConfig() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Database: DatabaseConfig{
			Driver:   getEnv("DB_DRIVER", DriverMySQL),
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "3306"),
			User:     getEnv("DB_USER", "root"),
			Password: getEnv("DB_PASSWORD", ""),
			Database: getEnv("DB_NAME", "task_manager"),
			Path:     getEnv("DB_PATH", "task_manager.db"),
		},
		Server: ServerConfig{
			Port:    getEnv("PORT", "8080"),
			GinMode: getEnv("GIN_MODE", "debug"),
		},
		Auth: AuthConfig{
			Username:     getEnv("AUTH_USERNAME", "admin"),
			Password:     getEnv("AUTH_PASSWORD", "password123"),
			PasswordHash: getEnv("AUTH_PASSWORD_HASH", ""),
		},
		CORS: CORSConfig{
			AllowedOrigins: parseOrigins(getEnv("ALLOWED_ORIGINS", "http://localhost:5173")),
		},
		Log: LogConfig{
			Level: getEnv("LOG_LEVEL", "info"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the struct tags on every section of the config.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func parseOrigins(s string) []string {
	origins := []string{}
	for _, origin := range strings.Split(s, ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			origins = append(origins, origin)
		}
	}
	return origins
}
