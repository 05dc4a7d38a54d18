// Package config loads and validates environment-driven configuration.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/joho/godotenv"
	"go-simpler.org/env"
)

type Config struct {
	AppEnv      string `env:"APP_ENV" default:"development"`
	Port        string `env:"PORT" default:"8080"`
	DatabaseURL string `env:"DATABASE_URL"`

	// RedisURL is optional; without it the content cache is disabled and
	// public reads always hit the database.
	RedisURL string `env:"REDIS_URL"`

	SessionSecret string `env:"SESSION_SECRET"`

	// Twitch OAuth settings must be set together or not at all. When unset
	// the OAuth login routes are not registered.
	TwitchClientID     string `env:"TWITCH_CLIENT_ID"`
	TwitchClientSecret string `env:"TWITCH_CLIENT_SECRET"`
	TwitchRedirectURI  string `env:"TWITCH_REDIRECT_URI"`

	// TokenEncryptionKey is an optional hex-encoded 32-byte AES key. When set,
	// Twitch OAuth tokens are encrypted at rest.
	TokenEncryptionKey string `env:"TOKEN_ENCRYPTION_KEY"`

	// PublicBaseURL is the canonical site origin used in the sitemap.
	PublicBaseURL string `env:"PUBLIC_BASE_URL" default:"https://twitchviewer.com"`

	LogLevel  string `env:"LOG_LEVEL" default:"info"`
	LogFormat string `env:"LOG_FORMAT" default:"text"`

	ResetTokenTTL   time.Duration `env:"RESET_TOKEN_TTL" default:"1h"`
	ContentCacheTTL time.Duration `env:"CONTENT_CACHE_TTL" default:"60s"`

	// RememberSessionMaxAge extends the session cookie when a user logs in
	// with "remember me". Without it the cookie is browser-session only.
	RememberSessionMaxAge time.Duration `env:"REMEMBER_SESSION_MAX_AGE" default:"720h"` // 30 days
}

func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		slog.Info("No .env file found, using environment variables")
	}

	var cfg Config
	if err := env.Load(&cfg, nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	if err := validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// TwitchOAuthEnabled reports whether the Twitch login flow is configured.
func (c *Config) TwitchOAuthEnabled() bool {
	return c.TwitchClientID != ""
}

func validate(cfg *Config) error {
	required := map[string]string{
		"DATABASE_URL":   cfg.DatabaseURL,
		"SESSION_SECRET": cfg.SessionSecret,
	}
	for name, value := range required {
		if value == "" {
			return fmt.Errorf("%s is required", name)
		}
	}

	if len(cfg.SessionSecret) < 32 {
		return errors.New("SESSION_SECRET must be at least 32 characters")
	}

	twitchVars := []string{cfg.TwitchClientID, cfg.TwitchClientSecret, cfg.TwitchRedirectURI}
	set := 0
	for _, v := range twitchVars {
		if v != "" {
			set++
		}
	}
	if set != 0 && set != len(twitchVars) {
		return errors.New("TWITCH_CLIENT_ID, TWITCH_CLIENT_SECRET and TWITCH_REDIRECT_URI must be set together")
	}

	if cfg.TokenEncryptionKey != "" && len(cfg.TokenEncryptionKey) != 64 {
		return errors.New("TOKEN_ENCRYPTION_KEY must be 64 hex characters (32 bytes)")
	}

	if cfg.ResetTokenTTL <= 0 {
		return errors.New("RESET_TOKEN_TTL must be positive")
	}

	return nil
}
