package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds runtime configuration values for the teacher dashboard.
type Config struct {
	AppName        string
	AppEnv         string
	AppPort        string
	BackendURL     string
	RequestTimeout time.Duration
	LogLevel       string
	LogFormat      string
	MetricsEnabled bool
}

// HTTPAddress returns the address the dashboard server should listen on.
func (c Config) HTTPAddress() string {
	if strings.HasPrefix(c.AppPort, ":") {
		return c.AppPort
	}

	return fmt.Sprintf(":%s", c.AppPort)
}

// Load reads configuration values from environment variables and optional .env file.
func Load() (Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetEnvPrefix("DASHBOARD")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	v.SetDefault("app.name", "Teacher Dashboard")
	v.SetDefault("app.env", "development")
	v.SetDefault("app.port", "8090")
	v.SetDefault("backend.url", "http://localhost:5000")
	v.SetDefault("request_timeout", "10s")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")
	v.SetDefault("metrics.enabled", true)

	timeoutString := strings.TrimSpace(v.GetString("request_timeout"))
	if timeoutString == "" {
		timeoutString = "10s"
	}

	timeout, err := time.ParseDuration(timeoutString)
	if err != nil {
		return Config{}, fmt.Errorf("invalid request timeout: %w", err)
	}
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	cfg := Config{
		AppName:        v.GetString("app.name"),
		AppEnv:         v.GetString("app.env"),
		AppPort:        v.GetString("app.port"),
		BackendURL:     strings.TrimRight(strings.TrimSpace(v.GetString("backend.url")), "/"),
		RequestTimeout: timeout,
		LogLevel:       strings.ToLower(v.GetString("log.level")),
		LogFormat:      strings.ToLower(v.GetString("log.format")),
		MetricsEnabled: v.GetBool("metrics.enabled"),
	}

	if cfg.BackendURL == "" {
		return Config{}, fmt.Errorf("backend url must be provided")
	}

	parsed, err := url.Parse(cfg.BackendURL)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return Config{}, fmt.Errorf("invalid backend url %q", cfg.BackendURL)
	}

	return cfg, nil
}
