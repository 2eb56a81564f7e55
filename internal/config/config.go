package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config chứa toàn bộ application configuration
// Struct này được populate từ environment variables
type Config struct {
	App     AppConfig
	Mongo   MongoConfig
	Session SessionConfig
	Google  GoogleConfig
}

type AppConfig struct {
	Name        string
	Environment string // development, staging, production
	Port        string
	Version     string
	StaticDir   string // optional: serve the built SPA from this directory
}

type MongoConfig struct {
	URI        string
	Database   string
	Collection string

	// Connection behaviour
	ConnectTimeout time.Duration
	MaxRetries     int
	RetryDelay     time.Duration
}

type SessionConfig struct {
	CookieName string
	Secret     string // HMAC key for the signed session cookie
	MaxAge     int    // seconds; 0 = session cookie
	Secure     bool
}

type GoogleConfig struct {
	// UserInfoURL is the endpoint the access token is validated against on
	// every protected request. Overridable for tests.
	UserInfoURL string
	Timeout     time.Duration
}

// Load đọc config từ environment variables
func Load() (*Config, error) {
	cfg := &Config{
		App: AppConfig{
			Name:        getEnv("APP_NAME", "News API"),
			Environment: getEnv("APP_ENV", "development"),
			Port:        getEnv("APP_PORT", "3000"),
			Version:     getEnv("APP_VERSION", "1.0.0"),
			StaticDir:   getEnv("STATIC_DIR", ""),
		},
		Mongo: MongoConfig{
			URI:            getEnv("MONGODB_URI", "mongodb://localhost:27017"),
			Database:       getEnv("MONGODB_DATABASE", "news_database"),
			Collection:     getEnv("MONGODB_COLLECTION", "news"),
			ConnectTimeout: time.Duration(getEnvInt("MONGODB_CONNECT_TIMEOUT", 10)) * time.Second,
			MaxRetries:     getEnvInt("MONGODB_MAX_RETRIES", 3),
			RetryDelay:     time.Duration(getEnvInt("MONGODB_RETRY_DELAY", 2)) * time.Second,
		},
		Session: SessionConfig{
			CookieName: getEnv("SESSION_COOKIE_NAME", "access_token"),
			Secret:     getEnv("COOKIE_SECRET", "dev-cookie-secret-change-in-production"),
			MaxAge:     getEnvInt("SESSION_MAX_AGE", 0),
			Secure:     getEnv("APP_ENV", "development") == "production",
		},
		Google: GoogleConfig{
			UserInfoURL: getEnv("GOOGLE_USERINFO_URL", "https://www.googleapis.com/oauth2/v1/userinfo"),
			Timeout:     time.Duration(getEnvInt("GOOGLE_TIMEOUT", 10)) * time.Second,
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
	if c.Mongo.URI == "" {
		return fmt.Errorf("MONGODB_URI must not be empty")
	}

	// Production environment phải có cookie secret thật
	if c.App.Environment == "production" {
		if c.Session.Secret == "dev-cookie-secret-change-in-production" {
			return fmt.Errorf("COOKIE_SECRET must be set in production")
		}
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
