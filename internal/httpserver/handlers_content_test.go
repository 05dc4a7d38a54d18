package httpserver

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yayincibotu/twitchviewer/internal/domain"
)

func TestBlog_Lifecycle(t *testing.T) {
	ts := newTestServer(t)
	admin := registerAdmin(t, ts)

	rec := admin.do(t, http.MethodPost, "/api/blog", map[string]any{
		"slug":    "grow-your-stream",
		"title":   "Grow Your Stream",
		"excerpt": "Five tactics that work.",
		"content": "Full article body.",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	post := decodeJSON[domain.BlogPost](t, rec)
	assert.NotZero(t, post.AuthorID)
	assert.False(t, post.PublishedAt.IsZero())

	public := ts.client().do(t, http.MethodGet, "/api/blog/grow-your-stream", nil)
	require.Equal(t, http.StatusOK, public.Code)

	patched := admin.do(t, http.MethodPatch, fmt.Sprintf("/api/blog/%d", post.ID), map[string]any{"title": "Grow Faster"})
	require.Equal(t, http.StatusOK, patched.Code)
	updated := decodeJSON[domain.BlogPost](t, patched)
	assert.Equal(t, "Grow Faster", updated.Title)
	assert.Equal(t, "grow-your-stream", updated.Slug)

	del := admin.do(t, http.MethodDelete, fmt.Sprintf("/api/blog/%d", post.ID), nil)
	require.Equal(t, http.StatusNoContent, del.Code)

	gone := ts.client().do(t, http.MethodGet, "/api/blog/grow-your-stream", nil)
	assert.Equal(t, http.StatusNotFound, gone.Code)
}

func TestBlog_WriteRequiresAdmin(t *testing.T) {
	ts := newTestServer(t)
	registerAdmin(t, ts)
	viewer := registerUser(t, ts, "viewer", "viewer@example.com", "password123")

	rec := viewer.do(t, http.MethodPost, "/api/blog", map[string]any{"slug": "x", "title": "y"})

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestMedia_AdminOnly(t *testing.T) {
	ts := newTestServer(t)
	admin := registerAdmin(t, ts)

	unauth := ts.client().do(t, http.MethodGet, "/api/media", nil)
	assert.Equal(t, http.StatusUnauthorized, unauth.Code)

	rec := admin.do(t, http.MethodPost, "/api/media", map[string]any{
		"filename":  "hero.webp",
		"url":       "https://cdn.example.com/hero.webp",
		"altText":   "streamer at desk",
		"mimeType":  "image/webp",
		"sizeBytes": 48213,
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	file := decodeJSON[domain.MediaFile](t, rec)

	list := admin.do(t, http.MethodGet, "/api/media", nil)
	require.Equal(t, http.StatusOK, list.Code)
	files := decodeJSON[[]domain.MediaFile](t, list)
	require.Len(t, files, 1)

	del := admin.do(t, http.MethodDelete, fmt.Sprintf("/api/media/%d", file.ID), nil)
	assert.Equal(t, http.StatusNoContent, del.Code)
}

func TestFaq_NestedPublicShape(t *testing.T) {
	ts := newTestServer(t)
	admin := registerAdmin(t, ts)

	rec := admin.do(t, http.MethodPost, "/api/faq/categories", map[string]any{"name": "Billing", "sortOrder": 1})
	require.Equal(t, http.StatusCreated, rec.Code)
	cat := decodeJSON[domain.FaqCategory](t, rec)

	rec = admin.do(t, http.MethodPost, "/api/faq/items", map[string]any{
		"categoryId": cat.ID,
		"question":   "Can I cancel anytime?",
		"answer":     "Yes, from the dashboard.",
		"sortOrder":  1,
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	public := ts.client().do(t, http.MethodGet, "/api/faq", nil)
	require.Equal(t, http.StatusOK, public.Code)
	categories := decodeJSON[[]faqCategoryResponse](t, public)
	require.Len(t, categories, 1)
	assert.Equal(t, "Billing", categories[0].Name)
	require.Len(t, categories[0].Items, 1)
	assert.Equal(t, "Can I cancel anytime?", categories[0].Items[0].Question)
}

func TestFaq_RenameCategory(t *testing.T) {
	ts := newTestServer(t)
	admin := registerAdmin(t, ts)

	rec := admin.do(t, http.MethodPost, "/api/faq/categories", map[string]any{"name": "Biling", "sortOrder": 2})
	require.Equal(t, http.StatusCreated, rec.Code)
	cat := decodeJSON[domain.FaqCategory](t, rec)

	rec = admin.do(t, http.MethodPatch, fmt.Sprintf("/api/faq/categories/%d", cat.ID), map[string]any{"name": "Billing"})
	require.Equal(t, http.StatusOK, rec.Code)
	updated := decodeJSON[domain.FaqCategory](t, rec)
	assert.Equal(t, "Billing", updated.Name)
	assert.Equal(t, 2, updated.SortOrder)

	rec = admin.do(t, http.MethodPatch, "/api/faq/categories/999", map[string]any{"name": "Ghost"})
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestFaq_ItemForUnknownCategory(t *testing.T) {
	ts := newTestServer(t)
	admin := registerAdmin(t, ts)

	rec := admin.do(t, http.MethodPost, "/api/faq/items", map[string]any{
		"categoryId": 999,
		"question":   "Orphan?",
		"answer":     "Should fail.",
	})

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestStatistics_PublicList(t *testing.T) {
	ts := newTestServer(t)
	admin := registerAdmin(t, ts)

	rec := admin.do(t, http.MethodPost, "/api/statistics", map[string]any{
		"label": "Streams boosted", "value": 12800, "suffix": "+",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	public := ts.client().do(t, http.MethodGet, "/api/statistics", nil)
	require.Equal(t, http.StatusOK, public.Code)
	stats := decodeJSON[[]domain.Statistic](t, public)
	require.Len(t, stats, 1)
	assert.Equal(t, int64(12800), stats[0].Value)
}

func TestSuccessStories_PublicList(t *testing.T) {
	ts := newTestServer(t)
	admin := registerAdmin(t, ts)

	rec := admin.do(t, http.MethodPost, "/api/success-stories", map[string]any{
		"streamerName":  "ninjaclone",
		"quote":         "Went from 4 to 80 average viewers.",
		"viewersBefore": 4,
		"viewersAfter":  80,
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	public := ts.client().do(t, http.MethodGet, "/api/success-stories", nil)
	require.Equal(t, http.StatusOK, public.Code)
	stories := decodeJSON[[]domain.SuccessStory](t, public)
	require.Len(t, stories, 1)
}

func TestOffers_PublicListFiltersInactiveAndExpired(t *testing.T) {
	ts := newTestServer(t)
	admin := registerAdmin(t, ts)
	now := ts.clock.Now()

	for _, offer := range []map[string]any{
		{"title": "Live deal", "discountPercent": 20, "expiresAt": now.Add(24 * time.Hour), "active": true},
		{"title": "Expired deal", "discountPercent": 30, "expiresAt": now.Add(-time.Hour), "active": true},
		{"title": "Disabled deal", "discountPercent": 40, "expiresAt": now.Add(24 * time.Hour), "active": false},
	} {
		rec := admin.do(t, http.MethodPost, "/api/offers", offer)
		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	}

	public := ts.client().do(t, http.MethodGet, "/api/offers", nil)
	require.Equal(t, http.StatusOK, public.Code)
	offers := decodeJSON[[]domain.LimitedTimeOffer](t, public)
	require.Len(t, offers, 1)
	assert.Equal(t, "Live deal", offers[0].Title)

	all := admin.do(t, http.MethodGet, "/api/offers/all", nil)
	require.Equal(t, http.StatusOK, all.Code)
	assert.Len(t, decodeJSON[[]domain.LimitedTimeOffer](t, all), 3)
}

func TestOffers_DiscountValidation(t *testing.T) {
	ts := newTestServer(t)
	admin := registerAdmin(t, ts)

	rec := admin.do(t, http.MethodPost, "/api/offers", map[string]any{
		"title": "Too good", "discountPercent": 150, "expiresAt": ts.clock.Now().Add(time.Hour), "active": true,
	})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSecurityBadges_PublicList(t *testing.T) {
	ts := newTestServer(t)
	admin := registerAdmin(t, ts)

	rec := admin.do(t, http.MethodPost, "/api/security-badges", map[string]any{
		"name":        "SSL Secured",
		"iconUrl":     "https://cdn.example.com/ssl.svg",
		"description": "All traffic is encrypted.",
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	badge := decodeJSON[domain.SecurityBadge](t, rec)

	public := ts.client().do(t, http.MethodGet, "/api/security-badges", nil)
	require.Equal(t, http.StatusOK, public.Code)
	require.Len(t, decodeJSON[[]domain.SecurityBadge](t, public), 1)

	del := admin.do(t, http.MethodDelete, fmt.Sprintf("/api/security-badges/%d", badge.ID), nil)
	assert.Equal(t, http.StatusNoContent, del.Code)
}
