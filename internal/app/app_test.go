package app

import (
	"context"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/yayincibotu/twitchviewer/internal/auth"
	"github.com/yayincibotu/twitchviewer/internal/billing"
	"github.com/yayincibotu/twitchviewer/internal/domain"
	"github.com/yayincibotu/twitchviewer/internal/storage/memory"
)

type testEnv struct {
	service *Service
	store   *memory.Store
	clock   clockwork.FakeClock
	cache   *recordingCache
}

func newTestEnv() *testEnv {
	store := memory.NewStore()
	clock := clockwork.NewFakeClock()
	cache := &recordingCache{}

	repos := Repositories{
		Users:    store.Users,
		Packages: store.Packages,
		Seo:      store.Seo,
		Blog:     store.Blog,
		Media:    store.Media,
		Faq:      store.Faq,
		Stats:    store.Stats,
		Stories:  store.Stories,
		Offers:   store.Offers,
		Badges:   store.Badges,
	}

	tokens := auth.NewTokenIssuer(time.Hour, clock)
	service := NewService(repos, tokens, billing.NewMockProvider(), cache)

	return &testEnv{service: service, store: store, clock: clock, cache: cache}
}

// recordingCache tracks invalidations while behaving as an always-miss cache.
type recordingCache struct {
	packageInvalidations int
	seoInvalidations     []string
}

func (c *recordingCache) GetPackages(context.Context) ([]domain.Package, bool) { return nil, false }
func (c *recordingCache) SetPackages(context.Context, []domain.Package)        {}
func (c *recordingCache) InvalidatePackages(context.Context) {
	c.packageInvalidations++
}
func (c *recordingCache) GetSeo(context.Context, string) (*domain.SeoSettings, bool) {
	return nil, false
}
func (c *recordingCache) SetSeo(context.Context, *domain.SeoSettings) {}
func (c *recordingCache) InvalidateSeo(_ context.Context, slug string) {
	c.seoInvalidations = append(c.seoInvalidations, slug)
}
