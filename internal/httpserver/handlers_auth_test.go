package httpserver

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegister_FirstUserIsAdmin(t *testing.T) {
	ts := newTestServer(t)
	cl := ts.client()

	rec := cl.do(t, http.MethodPost, "/api/register", map[string]string{
		"username": "admin",
		"email":    "admin@example.com",
		"password": "sup3rsecret",
	})

	require.Equal(t, http.StatusCreated, rec.Code)
	user := decodeJSON[userResponse](t, rec)
	assert.Equal(t, "admin", user.Username)
	assert.Equal(t, "admin", string(user.Role))
	assert.True(t, user.EmailVerified)

	// the session is established right away
	me := cl.do(t, http.MethodGet, "/api/user", nil)
	assert.Equal(t, http.StatusOK, me.Code)
}

func TestRegister_SecondUserIsRegular(t *testing.T) {
	ts := newTestServer(t)
	registerAdmin(t, ts)

	cl := registerUser(t, ts, "viewer", "viewer@example.com", "password123")
	rec := cl.do(t, http.MethodGet, "/api/user", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	user := decodeJSON[userResponse](t, rec)
	assert.Equal(t, "user", string(user.Role))
	assert.False(t, user.EmailVerified)
}

func TestRegister_DuplicateUsernameCaseInsensitive(t *testing.T) {
	ts := newTestServer(t)
	registerAdmin(t, ts)

	rec := ts.client().do(t, http.MethodPost, "/api/register", map[string]string{
		"username": "ADMIN",
		"email":    "other@example.com",
		"password": "password123",
	})

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "username already taken")
}

func TestRegister_Validation(t *testing.T) {
	ts := newTestServer(t)

	tests := []struct {
		name string
		body map[string]string
	}{
		{"short username", map[string]string{"username": "ab", "email": "a@b.com", "password": "password123"}},
		{"bad email", map[string]string{"username": "someone", "email": "nope", "password": "password123"}},
		{"short password", map[string]string{"username": "someone", "email": "a@b.com", "password": "short"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := ts.client().do(t, http.MethodPost, "/api/register", tt.body)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestLogin_Success(t *testing.T) {
	ts := newTestServer(t)
	registerAdmin(t, ts)

	cl := ts.client()
	rec := cl.do(t, http.MethodPost, "/api/login", map[string]any{
		"username": "admin",
		"password": "sup3rsecret",
	})

	require.Equal(t, http.StatusOK, rec.Code)

	me := cl.do(t, http.MethodGet, "/api/user", nil)
	require.Equal(t, http.StatusOK, me.Code)
	user := decodeJSON[userResponse](t, me)
	assert.Equal(t, "admin", user.Username)
}

func TestLogin_ByEmail(t *testing.T) {
	ts := newTestServer(t)
	registerAdmin(t, ts)

	rec := ts.client().do(t, http.MethodPost, "/api/login", map[string]any{
		"username": "admin@example.com",
		"password": "sup3rsecret",
	})

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestLogin_WrongPassword(t *testing.T) {
	ts := newTestServer(t)
	registerAdmin(t, ts)

	rec := ts.client().do(t, http.MethodPost, "/api/login", map[string]any{
		"username": "admin",
		"password": "wrongpassword",
	})

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "invalid username or password")
}

func TestLogin_UnknownUserSameError(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.client().do(t, http.MethodPost, "/api/login", map[string]any{
		"username": "ghost",
		"password": "whatever123",
	})

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "invalid username or password")
}

func TestLogin_RememberExtendsCookie(t *testing.T) {
	ts := newTestServer(t)
	registerAdmin(t, ts)

	rec := ts.client().do(t, http.MethodPost, "/api/login", map[string]any{
		"username": "admin",
		"password": "sup3rsecret",
		"remember": true,
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var sessionCookie *http.Cookie
	for _, cookie := range rec.Result().Cookies() {
		if cookie.Name == sessionName {
			sessionCookie = cookie
		}
	}
	require.NotNil(t, sessionCookie)
	assert.Greater(t, sessionCookie.MaxAge, 0)

	user, err := ts.store.Users.GetByUsername(context.Background(), "admin")
	require.NoError(t, err)
	assert.True(t, user.RememberSession)
}

func TestLogout_ClearsSession(t *testing.T) {
	ts := newTestServer(t)
	cl := registerAdmin(t, ts)

	rec := cl.do(t, http.MethodPost, "/api/logout", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	me := cl.do(t, http.MethodGet, "/api/user", nil)
	assert.Equal(t, http.StatusUnauthorized, me.Code)
}

func TestCurrentUser_Unauthenticated(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.client().do(t, http.MethodGet, "/api/user", nil)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestVerifyEmail(t *testing.T) {
	ts := newTestServer(t)
	registerAdmin(t, ts)
	cl := registerUser(t, ts, "viewer", "viewer@example.com", "password123")

	rec := cl.do(t, http.MethodPost, "/api/verify-email", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	user := decodeJSON[userResponse](t, rec)
	assert.True(t, user.EmailVerified)
}

func TestRequestPasswordReset_SameResponseForUnknownEmail(t *testing.T) {
	ts := newTestServer(t)
	registerAdmin(t, ts)

	known := ts.client().do(t, http.MethodPost, "/api/request-password-reset", map[string]string{"email": "admin@example.com"})
	unknown := ts.client().do(t, http.MethodPost, "/api/request-password-reset", map[string]string{"email": "ghost@example.com"})

	require.Equal(t, http.StatusOK, known.Code)
	require.Equal(t, http.StatusOK, unknown.Code)
	assert.Equal(t, known.Body.String(), unknown.Body.String())
}

func TestResetPassword_FullFlow(t *testing.T) {
	ts := newTestServer(t)
	registerAdmin(t, ts)

	rec := ts.client().do(t, http.MethodPost, "/api/request-password-reset", map[string]string{"email": "admin@example.com"})
	require.Equal(t, http.StatusOK, rec.Code)

	user, err := ts.store.Users.GetByEmail(context.Background(), "admin@example.com")
	require.NoError(t, err)
	require.Len(t, user.ResetToken, 32)

	rec = ts.client().do(t, http.MethodPost, "/api/reset-password", map[string]string{
		"token":       user.ResetToken,
		"newPassword": "brandnewpass",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	// old password no longer works, new one does
	old := ts.client().do(t, http.MethodPost, "/api/login", map[string]any{"username": "admin", "password": "sup3rsecret"})
	assert.Equal(t, http.StatusUnauthorized, old.Code)
	fresh := ts.client().do(t, http.MethodPost, "/api/login", map[string]any{"username": "admin", "password": "brandnewpass"})
	assert.Equal(t, http.StatusOK, fresh.Code)
}

func TestResetPassword_TokenIsSingleUse(t *testing.T) {
	ts := newTestServer(t)
	registerAdmin(t, ts)

	ts.client().do(t, http.MethodPost, "/api/request-password-reset", map[string]string{"email": "admin@example.com"})
	user, err := ts.store.Users.GetByEmail(context.Background(), "admin@example.com")
	require.NoError(t, err)

	first := ts.client().do(t, http.MethodPost, "/api/reset-password", map[string]string{
		"token":       user.ResetToken,
		"newPassword": "brandnewpass",
	})
	require.Equal(t, http.StatusOK, first.Code)

	second := ts.client().do(t, http.MethodPost, "/api/reset-password", map[string]string{
		"token":       user.ResetToken,
		"newPassword": "anotherpass1",
	})
	require.Equal(t, http.StatusBadRequest, second.Code)
	assert.Contains(t, second.Body.String(), "invalid or expired reset token")
}

func TestResetPassword_BogusToken(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.client().do(t, http.MethodPost, "/api/reset-password", map[string]string{
		"token":       "deadbeefdeadbeefdeadbeefdeadbeef",
		"newPassword": "brandnewpass",
	})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
