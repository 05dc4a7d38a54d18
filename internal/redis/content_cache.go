package redis

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/yayincibotu/twitchviewer/internal/domain"
	"github.com/yayincibotu/twitchviewer/internal/metrics"
)

const (
	packagesCacheKey = "content_cache:packages"
	seoCachePrefix   = "content_cache:seo:"
)

// ContentCache is a Redis-backed cache for the public catalog reads. Every
// operation is best-effort: a Redis failure is logged and counted, then
// treated as a miss so the caller falls through to PostgreSQL.
type ContentCache struct {
	rdb goredis.Cmdable
	ttl time.Duration
}

// NewContentCache creates a content cache with the given entry TTL.
func NewContentCache(rdb goredis.Cmdable, ttl time.Duration) *ContentCache {
	return &ContentCache{rdb: rdb, ttl: ttl}
}

func (c *ContentCache) GetPackages(ctx context.Context) ([]domain.Package, bool) {
	data, err := c.rdb.Get(ctx, packagesCacheKey).Bytes()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			metrics.CacheRequestsTotal.WithLabelValues("packages", "miss").Inc()
		} else {
			metrics.CacheRequestsTotal.WithLabelValues("packages", "error").Inc()
			slog.WarnContext(ctx, "package cache GET failed", "error", err)
		}
		return nil, false
	}

	var pkgs []domain.Package
	if err := json.Unmarshal(data, &pkgs); err != nil {
		slog.WarnContext(ctx, "failed to unmarshal cached packages", "error", err)
		metrics.CacheRequestsTotal.WithLabelValues("packages", "error").Inc()
		return nil, false
	}

	metrics.CacheRequestsTotal.WithLabelValues("packages", "hit").Inc()
	return pkgs, true
}

func (c *ContentCache) SetPackages(ctx context.Context, pkgs []domain.Package) {
	encoded, err := json.Marshal(pkgs)
	if err != nil {
		return
	}
	if err := c.rdb.Set(ctx, packagesCacheKey, encoded, c.ttl).Err(); err != nil {
		slog.WarnContext(ctx, "failed to populate package cache", "error", err)
	}
}

func (c *ContentCache) InvalidatePackages(ctx context.Context) {
	metrics.CacheInvalidationsTotal.WithLabelValues("packages").Inc()
	if err := c.rdb.Del(ctx, packagesCacheKey).Err(); err != nil {
		slog.WarnContext(ctx, "failed to invalidate package cache", "error", err)
	}
}

func (c *ContentCache) GetSeo(ctx context.Context, slug string) (*domain.SeoSettings, bool) {
	data, err := c.rdb.Get(ctx, seoCachePrefix+slug).Bytes()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			metrics.CacheRequestsTotal.WithLabelValues("seo", "miss").Inc()
		} else {
			metrics.CacheRequestsTotal.WithLabelValues("seo", "error").Inc()
			slog.WarnContext(ctx, "seo cache GET failed", "slug", slug, "error", err)
		}
		return nil, false
	}

	var seo domain.SeoSettings
	if err := json.Unmarshal(data, &seo); err != nil {
		slog.WarnContext(ctx, "failed to unmarshal cached seo settings", "slug", slug, "error", err)
		metrics.CacheRequestsTotal.WithLabelValues("seo", "error").Inc()
		return nil, false
	}

	metrics.CacheRequestsTotal.WithLabelValues("seo", "hit").Inc()
	return &seo, true
}

func (c *ContentCache) SetSeo(ctx context.Context, seo *domain.SeoSettings) {
	encoded, err := json.Marshal(seo)
	if err != nil {
		return
	}
	if err := c.rdb.Set(ctx, seoCachePrefix+seo.PageSlug, encoded, c.ttl).Err(); err != nil {
		slog.WarnContext(ctx, "failed to populate seo cache", "slug", seo.PageSlug, "error", err)
	}
}

func (c *ContentCache) InvalidateSeo(ctx context.Context, slug string) {
	metrics.CacheInvalidationsTotal.WithLabelValues("seo").Inc()
	if err := c.rdb.Del(ctx, seoCachePrefix+slug).Err(); err != nil {
		slog.WarnContext(ctx, "failed to invalidate seo cache", "slug", slug, "error", err)
	}
}
