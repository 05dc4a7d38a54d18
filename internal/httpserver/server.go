// Package httpserver exposes the JSON API, the Twitch OAuth flow and the
// sitemap over echo.
package httpserver

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/sessions"
	"github.com/labstack/echo/v4"

	"github.com/yayincibotu/twitchviewer/internal/app"
	"github.com/yayincibotu/twitchviewer/internal/config"
)

// HealthCheck is a named readiness check.
type HealthCheck struct {
	Name  string
	Check func(ctx context.Context) error
}

type Server struct {
	echo   *echo.Echo
	config *config.Config

	app          *app.Service
	oauthClient  twitchOAuthClient
	sessionStore *sessions.CookieStore
	healthChecks []HealthCheck
	startTime    time.Time
}

func NewServer(cfg *config.Config, svc *app.Service, healthChecks []HealthCheck) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	srv := &Server{
		echo:         e,
		config:       cfg,
		app:          svc,
		sessionStore: setupSessionStore(cfg),
		healthChecks: healthChecks,
		startTime:    time.Now(),
	}

	if cfg.TwitchOAuthEnabled() {
		srv.oauthClient = newTwitchOAuthClient(cfg.TwitchClientID, cfg.TwitchClientSecret, cfg.TwitchRedirectURI)
	}

	srv.registerRoutes()

	return srv
}

func (s *Server) Start() error {
	slog.Info("Starting server", "port", s.config.Port)
	if err := s.echo.Start(":" + s.config.Port); err != nil {
		return fmt.Errorf("failed to start server: %w", err)
	}
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	if err := s.echo.Shutdown(ctx); err != nil {
		return fmt.Errorf("failed to shutdown server: %w", err)
	}
	return nil
}

// Session keys
const (
	sessionName          = "twitchviewer-session"
	sessionKeyUserID     = "user_id"
	sessionKeyOAuthState = "oauth_state"
)

func setupSessionStore(cfg *config.Config) *sessions.CookieStore {
	store := sessions.NewCookieStore([]byte(cfg.SessionSecret))
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   0, // browser-session cookie unless "remember me" extends it
		HttpOnly: true,
		Secure:   cfg.AppEnv == "production",
		SameSite: http.SameSiteLaxMode,
	}
	return store
}

// rememberOptions returns cookie options with a 30-day (configurable)
// lifetime for remember-me logins.
func (s *Server) rememberOptions() *sessions.Options {
	return &sessions.Options{
		Path:     "/",
		MaxAge:   int(s.config.RememberSessionMaxAge.Seconds()),
		HttpOnly: true,
		Secure:   s.config.AppEnv == "production",
		SameSite: http.SameSiteLaxMode,
	}
}
