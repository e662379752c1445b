package config

import (
	"fmt"
	"os"
	"strconv"
)

// Config chứa toàn bộ application configuration
// Struct này được populate từ environment variables
type Config struct {
	App      AppConfig
	Database DatabaseConfig
	JWT      JWTConfig
	Upload   UploadConfig
	CORS     CORSConfig
}

type AppConfig struct {
	Name        string
	Environment string // development, staging, production
	Port        string
	FrontendURL string // base URL của frontend, dùng để build absolute links
}

type DatabaseConfig struct {
	Path string // đường dẫn file SQLite (vd: data/portfolio.db)
}

type JWTConfig struct {
	Secret      string
	ExpiryHours int // token lifetime, default 7 ngày
}

type UploadConfig struct {
	Dir      string // thư mục lưu file upload
	MaxBytes int64  // size ceiling cho mỗi file
}

type CORSConfig struct {
	AllowOrigin string // origin được phép gọi API, "*" cho local dev
}

const defaultJWTSecret = "changeme-use-strong-secret-in-production"

// Load đọc config từ environment variables
func Load() (*Config, error) {
	cfg := &Config{
		App: AppConfig{
			Name:        getEnv("APP_NAME", "Portfolio API"),
			Environment: getEnv("APP_ENV", "development"),
			Port:        getEnv("PORT", "4000"),
			FrontendURL: getEnv("FRONTEND_URL", "http://localhost:5173"),
		},
		Database: DatabaseConfig{
			Path: getEnv("DB_PATH", "data/portfolio.db"),
		},
		JWT: JWTConfig{
			Secret:      getEnv("JWT_SECRET", defaultJWTSecret),
			ExpiryHours: getEnvInt("JWT_EXPIRY_HOURS", 7*24), // 7 days
		},
		Upload: UploadConfig{
			Dir:      getEnv("UPLOAD_DIR", "uploads"),
			MaxBytes: int64(getEnvInt("UPLOAD_MAX_BYTES", 10<<20)), // 10 MiB
		},
		CORS: CORSConfig{
			AllowOrigin: getEnv("CORS_ORIGIN", "*"),
		},
	}

	// Validate critical config
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

// Validate kiểm tra config có hợp lệ không
func (c *Config) Validate() error {
	// Production environment phải có JWT secret riêng
	if c.App.Environment == "production" {
		if c.JWT.Secret == defaultJWTSecret {
			return fmt.Errorf("JWT_SECRET must be set in production")
		}
	}

	if c.Upload.MaxBytes <= 0 {
		return fmt.Errorf("UPLOAD_MAX_BYTES must be positive")
	}

	return nil
}

// Helper functions
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}
