package httpserver

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yayincibotu/twitchviewer/internal/domain"
)

func createPackage(t *testing.T, admin *client, name, priceID string) domain.Package {
	t.Helper()

	rec := admin.do(t, http.MethodPost, "/api/packages", map[string]any{
		"name":          name,
		"description":   "viewers for your stream",
		"priceCents":    2900,
		"maxViewers":    50,
		"features":      []string{"chatters included"},
		"stripePriceId": priceID,
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	return decodeJSON[domain.Package](t, rec)
}

func TestPackages_PublicRead(t *testing.T) {
	ts := newTestServer(t)
	admin := registerAdmin(t, ts)
	pkg := createPackage(t, admin, "Starter", "price_starter")

	list := ts.client().do(t, http.MethodGet, "/api/packages", nil)
	require.Equal(t, http.StatusOK, list.Code)
	pkgs := decodeJSON[[]domain.Package](t, list)
	require.Len(t, pkgs, 1)
	assert.Equal(t, "Starter", pkgs[0].Name)

	single := ts.client().do(t, http.MethodGet, fmt.Sprintf("/api/packages/%d", pkg.ID), nil)
	require.Equal(t, http.StatusOK, single.Code)
}

func TestPackages_WriteRequiresAuth(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.client().do(t, http.MethodPost, "/api/packages", map[string]any{"name": "x"})

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestPackages_WriteRequiresAdmin(t *testing.T) {
	ts := newTestServer(t)
	registerAdmin(t, ts)
	viewer := registerUser(t, ts, "viewer", "viewer@example.com", "password123")

	rec := viewer.do(t, http.MethodPost, "/api/packages", map[string]any{
		"name": "Nope", "priceCents": 100, "maxViewers": 10,
	})

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestPackages_AdminLifecycle(t *testing.T) {
	ts := newTestServer(t)
	admin := registerAdmin(t, ts)
	pkg := createPackage(t, admin, "Starter", "price_starter")

	newName := "Starter Plus"
	rec := admin.do(t, http.MethodPatch, fmt.Sprintf("/api/packages/%d", pkg.ID), map[string]any{"name": newName})
	require.Equal(t, http.StatusOK, rec.Code)
	updated := decodeJSON[domain.Package](t, rec)
	assert.Equal(t, newName, updated.Name)
	assert.Equal(t, 2900, updated.PriceCents, "unpatched fields keep their values")

	del := admin.do(t, http.MethodDelete, fmt.Sprintf("/api/packages/%d", pkg.ID), nil)
	require.Equal(t, http.StatusNoContent, del.Code)

	gone := ts.client().do(t, http.MethodGet, fmt.Sprintf("/api/packages/%d", pkg.ID), nil)
	assert.Equal(t, http.StatusNotFound, gone.Code)
}

func TestPackages_InvalidID(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.client().do(t, http.MethodGet, "/api/packages/banana", nil)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestPackages_ValidationError(t *testing.T) {
	ts := newTestServer(t)
	admin := registerAdmin(t, ts)

	rec := admin.do(t, http.MethodPost, "/api/packages", map[string]any{
		"name": "Broken", "priceCents": -1, "maxViewers": 10,
	})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func createSeo(t *testing.T, admin *client, slug string, cornerstone bool) domain.SeoSettings {
	t.Helper()

	rec := admin.do(t, http.MethodPost, "/api/seo", map[string]any{
		"pageSlug":      slug,
		"title":         "Buy Twitch Viewers",
		"description":   "Grow your channel",
		"focusKeyword":  "twitch viewers",
		"isCornerstone": cornerstone,
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	return decodeJSON[domain.SeoSettings](t, rec)
}

func TestSeo_PublicReadBySlug(t *testing.T) {
	ts := newTestServer(t)
	admin := registerAdmin(t, ts)
	createSeo(t, admin, "pricing", true)

	rec := ts.client().do(t, http.MethodGet, "/api/seo/pricing", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	seo := decodeJSON[domain.SeoSettings](t, rec)
	assert.Equal(t, "pricing", seo.PageSlug)
	assert.True(t, seo.IsCornerstone)
}

func TestSeo_UnknownSlug(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.client().do(t, http.MethodGet, "/api/seo/ghost-page", nil)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestSeo_ListRequiresAdmin(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.client().do(t, http.MethodGet, "/api/seo", nil)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestSeo_AdminUpdate(t *testing.T) {
	ts := newTestServer(t)
	admin := registerAdmin(t, ts)
	seo := createSeo(t, admin, "pricing", false)

	cornerstone := true
	rec := admin.do(t, http.MethodPatch, fmt.Sprintf("/api/seo/%d", seo.ID), map[string]any{"isCornerstone": cornerstone})

	require.Equal(t, http.StatusOK, rec.Code)
	updated := decodeJSON[domain.SeoSettings](t, rec)
	assert.True(t, updated.IsCornerstone)
	assert.Equal(t, "Buy Twitch Viewers", updated.Title)
}

func TestSeo_DuplicateSlug(t *testing.T) {
	ts := newTestServer(t)
	admin := registerAdmin(t, ts)
	createSeo(t, admin, "pricing", false)

	rec := admin.do(t, http.MethodPost, "/api/seo", map[string]any{
		"pageSlug": "PRICING",
		"title":    "Duplicate",
	})

	assert.Equal(t, http.StatusConflict, rec.Code)
}
