package config

import (
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config aggregates all runtime settings required by the client.
type Config struct {
	AppName     string
	Environment string
	Backend     BackendConfig
	Credentials CredentialsConfig
	Logger      LoggerConfig
}

type BackendConfig struct {
	// BaseURL selects the backend the client talks to.
	BaseURL string
	// RequestTimeout bounds every outgoing HTTP exchange.
	RequestTimeout time.Duration
}

type CredentialsConfig struct {
	// Backend is "bolt" for on-disk persistence or "none" for the
	// no-op store.
	Backend string
	Path    string
}

type LoggerConfig struct {
	Level    string
	Encoding string
}

// Load reads configuration from environment variables (optionally .env)
// and applies sane defaults so the client can run in any environment.
func Load() (*Config, error) {
	_ = godotenv.Load(".env")

	cfg := &Config{
		AppName:     getString("APP_NAME", "taskpilot"),
		Environment: getString("APP_ENV", "development"),
		Backend: BackendConfig{
			BaseURL:        getString("BACKEND_URL", "http://localhost:8000"),
			RequestTimeout: getDuration("REQUEST_TIMEOUT", 10*time.Second),
		},
		Credentials: CredentialsConfig{
			Backend: getString("CREDENTIALS_BACKEND", "bolt"),
			Path:    getString("CREDENTIALS_PATH", defaultCredentialsPath()),
		},
		Logger: LoggerConfig{
			Level:    getString("LOG_LEVEL", "warn"),
			Encoding: getString("LOG_ENCODING", "console"),
		},
	}

	return cfg, nil
}

// MustLoad panics if configuration cannot be loaded.
func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		panic(err)
	}
	return cfg
}

func defaultCredentialsPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "./credentials.db"
	}
	return filepath.Join(home, ".taskpilot", "credentials.db")
}

func getString(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) time.Duration {
	if val := os.Getenv(key); val != "" {
		if parsed, err := time.ParseDuration(val); err == nil {
			return parsed
		}
		if seconds, err := strconv.Atoi(val); err == nil {
			return time.Duration(seconds) * time.Second
		}
	}
	return fallback
}
