package httpserver

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/yayincibotu/twitchviewer/internal/app"
	apperrors "github.com/yayincibotu/twitchviewer/internal/errors"
	"github.com/yayincibotu/twitchviewer/internal/metrics"
)

// callbackState tracks how far a Twitch OAuth callback has progressed.
// Every failure is terminal at the state it happened in, which makes the
// failure mode explicit in logs.
type callbackState int

const (
	callbackStart callbackState = iota
	callbackStateVerified
	callbackTokenExchanged
	callbackProfileFetched
	callbackUserUpserted
	callbackSessionEstablished
)

func (s callbackState) String() string {
	switch s {
	case callbackStart:
		return "start"
	case callbackStateVerified:
		return "state_verified"
	case callbackTokenExchanged:
		return "token_exchanged"
	case callbackProfileFetched:
		return "profile_fetched"
	case callbackUserUpserted:
		return "user_upserted"
	case callbackSessionEstablished:
		return "session_established"
	}
	return "unknown"
}

func generateOAuthState() (string, error) {
	b := make([]byte, 16)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("failed to generate OAuth state: %w", err)
	}
	return hex.EncodeToString(b), nil
}

// handleTwitchLogin stores a CSRF state in the session and redirects to the
// Twitch authorize endpoint.
func (s *Server) handleTwitchLogin(c echo.Context) error {
	state, err := generateOAuthState()
	if err != nil {
		return apperrors.InternalError("failed to generate OAuth state", err)
	}

	session := s.session(c)
	session.Values[sessionKeyOAuthState] = state
	if err := session.Save(c.Request(), c.Response().Writer); err != nil {
		return apperrors.InternalError("failed to save session", err)
	}

	return c.Redirect(http.StatusFound, s.oauthClient.AuthorizeURL(state))
}

func (s *Server) handleTwitchCallback(c echo.Context) error {
	start := time.Now()
	state := callbackStart
	defer func() {
		metrics.OAuthCallbackDuration.Observe(time.Since(start).Seconds())
	}()

	fail := func(err error) error {
		metrics.LoginsTotal.WithLabelValues("twitch", "failure").Inc()
		slog.InfoContext(c.Request().Context(), "twitch callback failed", "state", state.String(), "error", err)
		return err
	}

	code := c.QueryParam("code")
	if code == "" {
		return fail(apperrors.ValidationError("missing code parameter"))
	}

	// State must match before any token leaves for Twitch.
	session := s.session(c)
	expectedState, ok := session.Values[sessionKeyOAuthState].(string)
	if !ok || expectedState == "" || c.QueryParam("state") != expectedState {
		return fail(apperrors.ValidationError("invalid OAuth state"))
	}
	delete(session.Values, sessionKeyOAuthState)
	state = callbackStateVerified

	ctx, cancel := context.WithTimeout(c.Request().Context(), httpCallTimeout)
	defer cancel()

	token, err := s.oauthClient.ExchangeCode(ctx, code)
	if err != nil {
		return fail(err)
	}
	state = callbackTokenExchanged

	profile, err := s.oauthClient.FetchProfile(ctx, token.AccessToken)
	if err != nil {
		return fail(err)
	}
	state = callbackProfileFetched

	user, err := s.app.UpsertTwitchUser(ctx, app.TwitchProfile{
		ID:           profile.ID,
		Login:        profile.Login,
		DisplayName:  profile.DisplayName,
		Email:        profile.Email,
		AccessToken:  token.AccessToken,
		RefreshToken: token.RefreshToken,
	})
	if err != nil {
		return fail(err)
	}
	state = callbackUserUpserted

	session.Values[sessionKeyUserID] = user.ID
	if err := session.Save(c.Request(), c.Response().Writer); err != nil {
		return fail(apperrors.InternalError("failed to save session", err))
	}
	state = callbackSessionEstablished

	metrics.LoginsTotal.WithLabelValues("twitch", "success").Inc()
	slog.InfoContext(ctx, "twitch login", "user_id", user.ID, "state", state.String())

	return c.Redirect(http.StatusFound, "/dashboard")
}
