package config

import (
	"errors"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config represents the full application configuration surface.
type Config struct {
	Server       ServerConfig
	Database     DatabaseConfig
	Redis        RedisConfig
	RemoteSearch RemoteSearchConfig
	Alert        AlertConfig
}

// ServerConfig holds HTTP server related options.
type ServerConfig struct {
	Addr string
}

// DatabaseConfig holds the Postgres connection settings.
type DatabaseConfig struct {
	URL string
}

// RedisConfig holds cache settings. An empty Addr disables the cache.
type RedisConfig struct {
	Addr       string
	SummaryTTL time.Duration
}

// RemoteSearchConfig points at the external search service. An empty URL
// means searches are answered locally.
type RemoteSearchConfig struct {
	URL string
}

// AlertConfig holds SMTP settings for low-stock alert mail. An empty Server
// disables alerting.
type AlertConfig struct {
	From         string
	To           string
	Server       string
	Port         string
	User         string
	Password     string
	AuthDisabled bool
}

// Load reads environment variables, optionally seeded from a .env file, and
// materializes a Config instance.
func Load() (*Config, error) {
	// Missing .env files are acceptable when configuration comes from the
	// environment directly.
	_ = godotenv.Load()

	v := viper.New()
	v.SetDefault("APP_ADDR", ":8080")
	v.SetDefault("SUMMARY_CACHE_TTL", "30s")
	v.AutomaticEnv()

	cfg := &Config{
		Server: ServerConfig{
			Addr: v.GetString("APP_ADDR"),
		},
		Database: DatabaseConfig{
			URL: v.GetString("DATABASE_URL"),
		},
		Redis: RedisConfig{
			Addr:       v.GetString("REDIS_ADDR"),
			SummaryTTL: v.GetDuration("SUMMARY_CACHE_TTL"),
		},
		RemoteSearch: RemoteSearchConfig{
			URL: v.GetString("REMOTE_SEARCH_URL"),
		},
		Alert: AlertConfig{
			From:         v.GetString("ALERT_FROM"),
			To:           v.GetString("ALERT_TO"),
			Server:       v.GetString("SMTP_SERVER"),
			Port:         v.GetString("SMTP_PORT"),
			User:         v.GetString("SMTP_USER"),
			Password:     v.GetString("SMTP_PASS"),
			AuthDisabled: v.GetBool("SMTP_AUTH_DISABLED"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate ensures that required configuration fields are populated.
func (c *Config) Validate() error {
	if c.Server.Addr == "" {
		return errors.New("APP_ADDR must be provided")
	}
	if c.Database.URL == "" {
		return errors.New("DATABASE_URL must be provided")
	}
	if c.Redis.SummaryTTL < 0 {
		return errors.New("SUMMARY_CACHE_TTL must not be negative")
	}
	if c.Alert.Server != "" && (c.Alert.From == "" || c.Alert.To == "") {
		return errors.New("ALERT_FROM and ALERT_TO must be provided when SMTP_SERVER is set")
	}
	return nil
}
