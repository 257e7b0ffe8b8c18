package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config aggregates runtime configuration for the gateway.
type Config struct {
	App      AppConfig
	Logger   LoggerConfig
	Auth     AuthConfig
	Website  WebsiteConfig
	Upstream UpstreamConfig
}

// AppConfig controls server level behavior.
type AppConfig struct {
	Name                  string
	Env                   string
	Host                  string
	Port                  string
	Version               string
	RequestTimeoutSeconds int
}

// LoggerConfig configures logging behavior.
type LoggerConfig struct {
	Level string
}

// AuthConfig defines session-token parameters.
type AuthConfig struct {
	JWTSecret     string
	TokenTTLHours int
}

// WebsiteConfig holds the single fixed website login pair.
type WebsiteConfig struct {
	LoginID       string
	LoginPassword string
}

// UpstreamConfig holds Reolink cloud connection values.
type UpstreamConfig struct {
	BaseURL         string
	Email           string
	Password        string
	CameraUID       string
	TimeoutSeconds  int
	SessionTTLHours int
}

// Load reads configuration from environment variables, applying defaults where possible.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		App: AppConfig{
			Name:                  getEnv("APP_NAME", "camera-gateway"),
			Env:                   getEnv("APP_ENV", "development"),
			Host:                  getEnv("APP_HOST", "0.0.0.0"),
			Port:                  getEnv("APP_PORT", "8080"),
			Version:               getEnv("APP_VERSION", "dev"),
			RequestTimeoutSeconds: getEnvAsInt("HTTP_REQUEST_TIMEOUT_SECONDS", 30),
		},
		Logger: LoggerConfig{
			Level: getEnv("LOG_LEVEL", "info"),
		},
		Auth: AuthConfig{
			JWTSecret:     getEnv("SECRET_KEY", "your-secret-key-change-in-production"),
			TokenTTLHours: getEnvAsInt("AUTH_TOKEN_TTL_HOURS", 24),
		},
		Website: WebsiteConfig{
			LoginID:       getEnv("WEBSITE_ID", "860"),
			LoginPassword: getEnv("WEBSITE_PASSWORD", "ocean"),
		},
		Upstream: UpstreamConfig{
			BaseURL:         getEnv("REOLINK_API_BASE", "https://api.reolink.com/v1"),
			Email:           os.Getenv("REOLINK_EMAIL"),
			Password:        os.Getenv("REOLINK_PASSWORD"),
			CameraUID:       os.Getenv("CAMERA_UID"),
			TimeoutSeconds:  getEnvAsInt("UPSTREAM_TIMEOUT_SECONDS", 10),
			SessionTTLHours: getEnvAsInt("UPSTREAM_SESSION_TTL_HOURS", 23),
		},
	}

	return cfg, nil
}

// Addr returns the HTTP bind address.
func (a AppConfig) Addr() string {
	return fmt.Sprintf("%s:%s", a.Host, a.Port)
}

// RequestTimeout returns the configured request timeout duration.
func (a AppConfig) RequestTimeout() time.Duration {
	if a.RequestTimeoutSeconds <= 0 {
		return 0
	}
	return time.Duration(a.RequestTimeoutSeconds) * time.Second
}

// Timeout returns the per-call upstream timeout duration.
func (u UpstreamConfig) Timeout() time.Duration {
	if u.TimeoutSeconds <= 0 {
		return 10 * time.Second
	}
	return time.Duration(u.TimeoutSeconds) * time.Second
}

// SessionTTL returns the lifetime stamped onto a fresh upstream session.
func (u UpstreamConfig) SessionTTL() time.Duration {
	if u.SessionTTLHours <= 0 {
		return 23 * time.Hour
	}
	return time.Duration(u.SessionTTLHours) * time.Hour
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	val := os.Getenv(key)
	if val == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(val)
	if err != nil {
		return fallback
	}
	return parsed
}
