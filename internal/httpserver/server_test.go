package httpserver

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"

	"github.com/yayincibotu/twitchviewer/internal/app"
	"github.com/yayincibotu/twitchviewer/internal/auth"
	"github.com/yayincibotu/twitchviewer/internal/billing"
	"github.com/yayincibotu/twitchviewer/internal/config"
	"github.com/yayincibotu/twitchviewer/internal/storage/memory"
)

type testServer struct {
	srv   *Server
	store *memory.Store
	oauth *fakeOAuthClient
	clock clockwork.FakeClock
}

type testServerOption func(*testServer)

func withHealthChecks(checks ...HealthCheck) testServerOption {
	return func(ts *testServer) {
		ts.srv.healthChecks = checks
	}
}

func newTestServer(t *testing.T, opts ...testServerOption) *testServer {
	t.Helper()

	cfg := &config.Config{
		AppEnv:                "test",
		Port:                  "0",
		SessionSecret:         strings.Repeat("s", 32),
		PublicBaseURL:         "https://twitchviewer.example",
		RememberSessionMaxAge: 720 * time.Hour,
		TwitchClientID:        "test-client-id",
		TwitchClientSecret:    "test-client-secret",
		TwitchRedirectURI:     "https://twitchviewer.example/api/auth/twitch/callback",
	}

	store := memory.NewStore()
	repos := app.Repositories{
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

	clock := clockwork.NewFakeClock()
	tokens := auth.NewTokenIssuer(time.Hour, clock)
	svc := app.NewService(repos, tokens, billing.NewMockProvider(), nil)

	srv := NewServer(cfg, svc, nil)

	oauth := &fakeOAuthClient{
		token:   &twitchToken{AccessToken: "access-1", RefreshToken: "refresh-1", ExpiresIn: 3600},
		profile: &twitchProfile{ID: "44322889", Login: "dallas", DisplayName: "dallas", Email: "dallas@twitch.tv"},
	}
	srv.oauthClient = oauth

	ts := &testServer{srv: srv, store: store, oauth: oauth, clock: clock}
	for _, opt := range opts {
		opt(ts)
	}
	return ts
}

// client carries a cookie jar across requests, like a browser would.
type client struct {
	ts      *testServer
	cookies map[string]*http.Cookie
}

func (ts *testServer) client() *client {
	return &client{ts: ts, cookies: make(map[string]*http.Cookie)}
}

func (cl *client) do(t *testing.T, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	for _, cookie := range cl.cookies {
		req.AddCookie(cookie)
	}

	rec := httptest.NewRecorder()
	cl.ts.srv.echo.ServeHTTP(rec, req)

	for _, cookie := range rec.Result().Cookies() {
		if cookie.MaxAge < 0 {
			delete(cl.cookies, cookie.Name)
			continue
		}
		cl.cookies[cookie.Name] = cookie
	}

	return rec
}

func decodeJSON[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v))
	return v
}

// registerUser registers through the API and returns a logged-in client.
// The first registered user in a fresh store is the admin.
func registerUser(t *testing.T, ts *testServer, username, email, password string) *client {
	t.Helper()

	cl := ts.client()
	rec := cl.do(t, http.MethodPost, "/api/register", map[string]string{
		"username": username,
		"email":    email,
		"password": password,
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	return cl
}

func registerAdmin(t *testing.T, ts *testServer) *client {
	return registerUser(t, ts, "admin", "admin@example.com", "sup3rsecret")
}

type fakeOAuthClient struct {
	token   *twitchToken
	profile *twitchProfile

	exchangeErr error
	profileErr  error

	exchangeCalls int
	profileCalls  int
}

func (f *fakeOAuthClient) AuthorizeURL(state string) string {
	return fmt.Sprintf("%s?client_id=test-client-id&state=%s", twitchAuthURL, state)
}

func (f *fakeOAuthClient) ExchangeCode(_ context.Context, _ string) (*twitchToken, error) {
	f.exchangeCalls++
	if f.exchangeErr != nil {
		return nil, f.exchangeErr
	}
	return f.token, nil
}

func (f *fakeOAuthClient) FetchProfile(_ context.Context, _ string) (*twitchProfile, error) {
	f.profileCalls++
	if f.profileErr != nil {
		return nil, f.profileErr
	}
	return f.profile, nil
}
