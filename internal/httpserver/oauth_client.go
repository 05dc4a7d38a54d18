package httpserver

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	apperrors "github.com/yayincibotu/twitchviewer/internal/errors"
)

const (
	twitchAuthURL   = "https://id.twitch.tv/oauth2/authorize"
	twitchTokenURL  = "https://id.twitch.tv/oauth2/token"
	twitchUsersURL  = "https://api.twitch.tv/helix/users"
	twitchScopes    = "user:read:email"
	httpCallTimeout = 10 * time.Second
)

// twitchOAuthClient covers the two calls of the callback: the code-for-token
// exchange and the helix profile fetch.
type twitchOAuthClient interface {
	AuthorizeURL(state string) string
	ExchangeCode(ctx context.Context, code string) (*twitchToken, error)
	FetchProfile(ctx context.Context, accessToken string) (*twitchProfile, error)
}

type twitchToken struct {
	AccessToken  string
	RefreshToken string
	ExpiresIn    int
}

type twitchProfile struct {
	ID          string
	Login       string
	DisplayName string
	Email       string
}

type twitchOAuthHTTPClient struct {
	clientID     string
	clientSecret string
	redirectURI  string
	httpClient   *http.Client
}

func newTwitchOAuthClient(clientID, clientSecret, redirectURI string) *twitchOAuthHTTPClient {
	return &twitchOAuthHTTPClient{
		clientID:     clientID,
		clientSecret: clientSecret,
		redirectURI:  redirectURI,
		httpClient:   &http.Client{Timeout: httpCallTimeout},
	}
}

func (c *twitchOAuthHTTPClient) AuthorizeURL(state string) string {
	return fmt.Sprintf(
		"%s?client_id=%s&redirect_uri=%s&response_type=code&scope=%s&state=%s",
		twitchAuthURL,
		url.QueryEscape(c.clientID),
		url.QueryEscape(c.redirectURI),
		url.QueryEscape(twitchScopes),
		url.QueryEscape(state),
	)
}

func (c *twitchOAuthHTTPClient) ExchangeCode(ctx context.Context, code string) (*twitchToken, error) {
	data := url.Values{}
	data.Set("client_id", c.clientID)
	data.Set("client_secret", c.clientSecret)
	data.Set("code", code)
	data.Set("grant_type", "authorization_code")
	data.Set("redirect_uri", c.redirectURI)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, twitchTokenURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create token request: %w", err)
	}
	req.URL.RawQuery = data.Encode()

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, apperrors.ExternalError("twitch token exchange failed", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, apperrors.ExternalError("twitch token exchange failed", fmt.Errorf("twitch returned status %d", resp.StatusCode))
	}

	var tokenResp struct {
		AccessToken  string `json:"access_token"`
		RefreshToken string `json:"refresh_token"`
		ExpiresIn    int    `json:"expires_in"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&tokenResp); err != nil {
		return nil, fmt.Errorf("failed to decode token response: %w", err)
	}

	return &twitchToken{
		AccessToken:  tokenResp.AccessToken,
		RefreshToken: tokenResp.RefreshToken,
		ExpiresIn:    tokenResp.ExpiresIn,
	}, nil
}

func (c *twitchOAuthHTTPClient) FetchProfile(ctx context.Context, accessToken string) (*twitchProfile, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, twitchUsersURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create user request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+accessToken)
	req.Header.Set("Client-Id", c.clientID)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, apperrors.ExternalError("twitch user fetch failed", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, apperrors.ExternalError("twitch user fetch failed", fmt.Errorf("twitch returned status %d", resp.StatusCode))
	}

	var userResp struct {
		Data []struct {
			ID          string `json:"id"`
			Login       string `json:"login"`
			DisplayName string `json:"display_name"`
			Email       string `json:"email"`
		} `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&userResp); err != nil {
		return nil, fmt.Errorf("failed to decode user response: %w", err)
	}

	if len(userResp.Data) == 0 {
		return nil, apperrors.ExternalError("twitch user fetch failed", fmt.Errorf("no user data returned"))
	}

	u := userResp.Data[0]
	return &twitchProfile{
		ID:          u.ID,
		Login:       u.Login,
		DisplayName: u.DisplayName,
		Email:       u.Email,
	}, nil
}
