// Package app is the application layer. It orchestrates the use cases
// behind the HTTP handlers and is the only package that crosses entity
// boundaries.
package app

import (
	"context"
	"errors"

	"github.com/yayincibotu/twitchviewer/internal/auth"
	"github.com/yayincibotu/twitchviewer/internal/billing"
	"github.com/yayincibotu/twitchviewer/internal/domain"
)

// Sentinel errors surfaced to the transport layer, which maps them onto
// HTTP status codes.
var (
	// ErrInvalidCredentials deliberately does not say which field was wrong.
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrResetTokenInvalid  = errors.New("invalid or expired reset token")
	ErrEmailNotVerified   = errors.New("email verification required")
)

// ContentCache caches public catalog reads. Writes go around it and
// invalidate. Implementations must be safe for concurrent use; a cache
// failure is treated as a miss, never as an error.
type ContentCache interface {
	GetPackages(ctx context.Context) ([]domain.Package, bool)
	SetPackages(ctx context.Context, pkgs []domain.Package)
	InvalidatePackages(ctx context.Context)

	GetSeo(ctx context.Context, slug string) (*domain.SeoSettings, bool)
	SetSeo(ctx context.Context, seo *domain.SeoSettings)
	InvalidateSeo(ctx context.Context, slug string)
}

// NoopCache disables caching; every read is a miss.
type NoopCache struct{}

func (NoopCache) GetPackages(context.Context) ([]domain.Package, bool) { return nil, false }
func (NoopCache) SetPackages(context.Context, []domain.Package)        {}
func (NoopCache) InvalidatePackages(context.Context)                   {}
func (NoopCache) GetSeo(context.Context, string) (*domain.SeoSettings, bool) {
	return nil, false
}
func (NoopCache) SetSeo(context.Context, *domain.SeoSettings) {}
func (NoopCache) InvalidateSeo(context.Context, string)       {}

// Repositories groups every repository the service depends on.
type Repositories struct {
	Users    domain.UserRepository
	Packages domain.PackageRepository
	Seo      domain.SeoRepository
	Blog     domain.BlogRepository
	Media    domain.MediaRepository
	Faq      domain.FaqRepository
	Stats    domain.StatisticRepository
	Stories  domain.SuccessStoryRepository
	Offers   domain.OfferRepository
	Badges   domain.SecurityBadgeRepository
}

// Service implements the use cases behind the HTTP handlers.
type Service struct {
	repos   Repositories
	tokens  *auth.TokenIssuer
	billing billing.Provider
	cache   ContentCache
}

// NewService creates the application layer service. cache may be nil, in
// which case caching is disabled.
func NewService(repos Repositories, tokens *auth.TokenIssuer, provider billing.Provider, cache ContentCache) *Service {
	if cache == nil {
		cache = NoopCache{}
	}
	return &Service{
		repos:   repos,
		tokens:  tokens,
		billing: provider,
		cache:   cache,
	}
}
