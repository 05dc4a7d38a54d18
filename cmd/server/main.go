package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jonboulle/clockwork"

	"github.com/yayincibotu/twitchviewer/internal/app"
	"github.com/yayincibotu/twitchviewer/internal/auth"
	"github.com/yayincibotu/twitchviewer/internal/billing"
	"github.com/yayincibotu/twitchviewer/internal/config"
	"github.com/yayincibotu/twitchviewer/internal/crypto"
	"github.com/yayincibotu/twitchviewer/internal/httpserver"
	"github.com/yayincibotu/twitchviewer/internal/logging"
	"github.com/yayincibotu/twitchviewer/internal/redis"
	"github.com/yayincibotu/twitchviewer/internal/storage/postgres"
	"github.com/yayincibotu/twitchviewer/internal/version"
)

func main() {
	cfg := setupConfig()
	logging.InitLogger(cfg.LogLevel, cfg.LogFormat)
	slog.Info("Starting twitchviewer", "version", version.Get().Version, "env", cfg.AppEnv)

	pool := setupDB(cfg)
	defer pool.Close()

	redisClient, cache := setupCache(cfg)
	if redisClient != nil {
		defer redisClient.Close()
	}

	svc := setupService(cfg, pool, cache)
	srv := httpserver.NewServer(cfg, svc, buildHealthChecks(pool, redisClient))

	done := runGracefulShutdown(srv)

	if err := srv.Start(); err != nil {
		slog.Error("Server stopped", "error", err)
	}

	<-done
	slog.Info("Shutdown complete")
}

func setupConfig() *config.Config {
	cfg, err := config.Load()
	if err != nil {
		// Use log before slog is initialized
		log.Fatalf("Failed to load config: %v", err)
	}
	return cfg
}

func setupDB(cfg *config.Config) *pgxpool.Pool {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pool, err := postgres.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}

	if err := postgres.RunMigrationsWithLock(ctx, pool); err != nil {
		slog.Error("Failed to run migrations", "error", err)
		os.Exit(1)
	}

	return pool
}

// setupCache connects redis when configured. Without a redis URL the site
// runs fine, every public read just hits postgres.
func setupCache(cfg *config.Config) (*redis.Client, app.ContentCache) {
	if cfg.RedisURL == "" {
		slog.Info("Redis not configured, content cache disabled")
		return nil, nil
	}

	client, err := redis.NewClient(cfg.RedisURL)
	if err != nil {
		slog.Error("Failed to connect to redis", "error", err)
		os.Exit(1)
	}

	return client, redis.NewContentCache(client.Underlying(), cfg.ContentCacheTTL)
}

func setupService(cfg *config.Config, pool *pgxpool.Pool, cache app.ContentCache) *app.Service {
	cryptoService := setupCrypto(cfg)

	repos := app.Repositories{
		Users:    postgres.NewUserRepo(pool, cryptoService),
		Packages: postgres.NewPackageRepo(pool),
		Seo:      postgres.NewSeoRepo(pool),
		Blog:     postgres.NewBlogRepo(pool),
		Media:    postgres.NewMediaRepo(pool),
		Faq:      postgres.NewFaqRepo(pool),
		Stats:    postgres.NewStatisticRepo(pool),
		Stories:  postgres.NewSuccessStoryRepo(pool),
		Offers:   postgres.NewOfferRepo(pool),
		Badges:   postgres.NewSecurityBadgeRepo(pool),
	}

	tokens := auth.NewTokenIssuer(cfg.ResetTokenTTL, clockwork.NewRealClock())

	return app.NewService(repos, tokens, billing.NewMockProvider(), cache)
}

func setupCrypto(cfg *config.Config) crypto.Service {
	if cfg.TokenEncryptionKey == "" {
		slog.Warn("TOKEN_ENCRYPTION_KEY not set, Twitch tokens are stored in plaintext")
		return crypto.NoopService{}
	}

	svc, err := crypto.NewAesGcmService(cfg.TokenEncryptionKey)
	if err != nil {
		slog.Error("Invalid token encryption key", "error", err)
		os.Exit(1)
	}
	return svc
}

func buildHealthChecks(pool *pgxpool.Pool, redisClient *redis.Client) []httpserver.HealthCheck {
	checks := []httpserver.HealthCheck{
		{Name: "postgres", Check: pool.Ping},
	}
	if redisClient != nil {
		checks = append(checks, httpserver.HealthCheck{Name: "redis", Check: redisClient.Ping})
	}
	return checks
}

func runGracefulShutdown(srv *httpserver.Server) <-chan struct{} {
	done := make(chan struct{})
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sigChan
		slog.Info("Shutdown signal received, cleaning up...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			slog.Error("Server shutdown error", "error", err)
		}

		close(done)
	}()

	return done
}
