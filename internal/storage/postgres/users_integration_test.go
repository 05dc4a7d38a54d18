package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yayincibotu/twitchviewer/internal/crypto"
	"github.com/yayincibotu/twitchviewer/internal/domain"
)

const testEncryptionKey = "0123456789abcdef0123456789abcdef0123456789abcdef0123456789abcdef"

func newTestUser(username, email string) *domain.User {
	return &domain.User{
		Username:     username,
		Email:        email,
		Role:         domain.RoleUser,
		PasswordHash: "$argon2id$fakehash",
	}
}

func TestUserRepo_CreateAndGet(t *testing.T) {
	pool := setupTestDB(t)
	repo := NewUserRepo(pool, nil)
	ctx := context.Background()

	created, err := repo.Create(ctx, newTestUser("alice", "alice@example.com"))
	require.NoError(t, err)
	assert.NotZero(t, created.ID)
	assert.False(t, created.CreatedAt.IsZero())

	t.Run("by id", func(t *testing.T) {
		got, err := repo.GetByID(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, "alice", got.Username)
	})

	t.Run("by username case-insensitive", func(t *testing.T) {
		got, err := repo.GetByUsername(ctx, "ALICE")
		require.NoError(t, err)
		assert.Equal(t, created.ID, got.ID)
	})

	t.Run("by email case-insensitive", func(t *testing.T) {
		got, err := repo.GetByEmail(ctx, "Alice@Example.COM")
		require.NoError(t, err)
		assert.Equal(t, created.ID, got.ID)
	})

	t.Run("unknown id", func(t *testing.T) {
		_, err := repo.GetByID(ctx, 99999)
		assert.ErrorIs(t, err, domain.ErrUserNotFound)
	})
}

func TestUserRepo_DuplicateDetection(t *testing.T) {
	pool := setupTestDB(t)
	repo := NewUserRepo(pool, nil)
	ctx := context.Background()

	_, err := repo.Create(ctx, newTestUser("alice", "alice@example.com"))
	require.NoError(t, err)

	_, err = repo.Create(ctx, newTestUser("ALICE", "other@example.com"))
	assert.ErrorIs(t, err, domain.ErrDuplicateUsername)

	_, err = repo.Create(ctx, newTestUser("bob", "ALICE@example.com"))
	assert.ErrorIs(t, err, domain.ErrDuplicateEmail)
}

func TestUserRepo_UpdateMergesPatch(t *testing.T) {
	pool := setupTestDB(t)
	repo := NewUserRepo(pool, nil)
	ctx := context.Background()

	created, err := repo.Create(ctx, newTestUser("alice", "alice@example.com"))
	require.NoError(t, err)

	verified := true
	updated, err := repo.Update(ctx, created.ID, domain.UserPatch{EmailVerified: &verified})
	require.NoError(t, err)
	assert.True(t, updated.EmailVerified)
	// Untouched fields survive.
	assert.Equal(t, created.PasswordHash, updated.PasswordHash)
	assert.Equal(t, created.Username, updated.Username)

	_, err = repo.Update(ctx, 99999, domain.UserPatch{EmailVerified: &verified})
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestUserRepo_ResetToken(t *testing.T) {
	pool := setupTestDB(t)
	repo := NewUserRepo(pool, nil)
	ctx := context.Background()
	now := time.Now().UTC()

	created, err := repo.Create(ctx, newTestUser("alice", "alice@example.com"))
	require.NoError(t, err)

	token := "deadbeefdeadbeefdeadbeefdeadbeef"
	expiry := now.Add(time.Hour)
	_, err = repo.Update(ctx, created.ID, domain.UserPatch{
		ResetToken: &token, ResetTokenExpiry: &expiry,
	})
	require.NoError(t, err)

	got, err := repo.GetByResetToken(ctx, token, now)
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)

	// Expired lookup misses.
	_, err = repo.GetByResetToken(ctx, token, now.Add(2*time.Hour))
	assert.ErrorIs(t, err, domain.ErrUserNotFound)

	// Empty token never matches.
	_, err = repo.GetByResetToken(ctx, "", now)
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestUserRepo_TwitchTokensEncryptedAtRest(t *testing.T) {
	pool := setupTestDB(t)
	svc, err := crypto.NewAesGcmService(testEncryptionKey)
	require.NoError(t, err)
	repo := NewUserRepo(pool, svc)
	ctx := context.Background()

	user := newTestUser("dallas", "dallas@twitch.example")
	user.TwitchID = "44322889"
	user.TwitchAccessToken = "secret-access"
	user.TwitchRefreshToken = "secret-refresh"

	created, err := repo.Create(ctx, user)
	require.NoError(t, err)
	// Round trip decrypts transparently.
	assert.Equal(t, "secret-access", created.TwitchAccessToken)

	got, err := repo.GetByTwitchID(ctx, "44322889")
	require.NoError(t, err)
	assert.Equal(t, "secret-refresh", got.TwitchRefreshToken)

	// The stored column must not contain the plaintext.
	var stored string
	err = pool.QueryRow(ctx, `SELECT twitch_access_token FROM users WHERE id = $1`, created.ID).Scan(&stored)
	require.NoError(t, err)
	assert.NotEqual(t, "secret-access", stored)
	assert.NotEmpty(t, stored)
}

func TestUserRepo_Count(t *testing.T) {
	pool := setupTestDB(t)
	repo := NewUserRepo(pool, nil)
	ctx := context.Background()

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, count)

	_, err = repo.Create(ctx, newTestUser("alice", "alice@example.com"))
	require.NoError(t, err)

	count, err = repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}
