package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/yayincibotu/twitchviewer/internal/crypto"
	"github.com/yayincibotu/twitchviewer/internal/domain"
)

// userColumns must match the Scan order in scanUser.
const userColumns = `id, username, email, email_verified, role, password_hash,
	stripe_customer_id, stripe_subscription_id, reset_token, reset_token_expiry,
	twitch_id, twitch_access_token, twitch_refresh_token, remember_session,
	created_at, updated_at`

// UserRepo implements domain.UserRepository backed by PostgreSQL. Twitch
// OAuth tokens go through the crypto service on the way in and out.
type UserRepo struct {
	pool   *pgxpool.Pool
	crypto crypto.Service
}

func NewUserRepo(pool *pgxpool.Pool, cryptoService crypto.Service) *UserRepo {
	if cryptoService == nil {
		cryptoService = crypto.NoopService{}
	}
	return &UserRepo{pool: pool, crypto: cryptoService}
}

type pgxRow interface {
	Scan(dest ...any) error
}

func (r *UserRepo) scanUser(row pgxRow) (*domain.User, error) {
	var user domain.User
	var role string
	err := row.Scan(
		&user.ID, &user.Username, &user.Email, &user.EmailVerified, &role,
		&user.PasswordHash, &user.StripeCustomerID, &user.StripeSubscriptionID,
		&user.ResetToken, &user.ResetTokenExpiry,
		&user.TwitchID, &user.TwitchAccessToken, &user.TwitchRefreshToken,
		&user.RememberSession, &user.CreatedAt, &user.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	user.Role = domain.Role(role)

	user.TwitchAccessToken, err = r.crypto.Decrypt(user.TwitchAccessToken)
	if err != nil {
		return nil, fmt.Errorf("failed to decrypt access token: %w", err)
	}
	user.TwitchRefreshToken, err = r.crypto.Decrypt(user.TwitchRefreshToken)
	if err != nil {
		return nil, fmt.Errorf("failed to decrypt refresh token: %w", err)
	}
	return &user, nil
}

func (r *UserRepo) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	encAccess, err := r.crypto.Encrypt(user.TwitchAccessToken)
	if err != nil {
		return nil, fmt.Errorf("failed to encrypt access token: %w", err)
	}
	encRefresh, err := r.crypto.Encrypt(user.TwitchRefreshToken)
	if err != nil {
		return nil, fmt.Errorf("failed to encrypt refresh token: %w", err)
	}

	row := r.pool.QueryRow(ctx, `
		INSERT INTO users (username, email, email_verified, role, password_hash,
			twitch_id, twitch_access_token, twitch_refresh_token)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING `+userColumns,
		user.Username, user.Email, user.EmailVerified, string(user.Role),
		user.PasswordHash, user.TwitchID, encAccess, encRefresh,
	)

	created, err := r.scanUser(row)
	if err != nil {
		if sentinel, ok := uniqueViolation(err); ok {
			return nil, sentinel
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	return created, nil
}

func (r *UserRepo) getBy(ctx context.Context, where string, arg any) (*domain.User, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE `+where, arg)

	user, err := r.scanUser(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return user, nil
}

func (r *UserRepo) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	return r.getBy(ctx, `id = $1`, id)
}

func (r *UserRepo) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	return r.getBy(ctx, `LOWER(username) = LOWER($1)`, username)
}

func (r *UserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.getBy(ctx, `LOWER(email) = LOWER($1)`, email)
}

func (r *UserRepo) GetByTwitchID(ctx context.Context, twitchID string) (*domain.User, error) {
	if twitchID == "" {
		return nil, domain.ErrUserNotFound
	}
	return r.getBy(ctx, `twitch_id = $1`, twitchID)
}

func (r *UserRepo) GetByResetToken(ctx context.Context, token string, now time.Time) (*domain.User, error) {
	if token == "" {
		return nil, domain.ErrUserNotFound
	}

	row := r.pool.QueryRow(ctx,
		`SELECT `+userColumns+` FROM users WHERE reset_token = $1 AND reset_token_expiry > $2`,
		token, now,
	)

	user, err := r.scanUser(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user by reset token: %w", err)
	}
	return user, nil
}

// Update applies the patch with read-merge-write under FOR UPDATE, so
// concurrent partial updates cannot clobber each other.
func (r *UserRepo) Update(ctx context.Context, id int64, patch domain.UserPatch) (*domain.User, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	row := tx.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1 FOR UPDATE`, id)
	user, err := r.scanUser(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to lock user row: %w", err)
	}

	applyUserPatch(user, patch)

	encAccess, err := r.crypto.Encrypt(user.TwitchAccessToken)
	if err != nil {
		return nil, fmt.Errorf("failed to encrypt access token: %w", err)
	}
	encRefresh, err := r.crypto.Encrypt(user.TwitchRefreshToken)
	if err != nil {
		return nil, fmt.Errorf("failed to encrypt refresh token: %w", err)
	}

	row = tx.QueryRow(ctx, `
		UPDATE users SET
			email_verified = $2, role = $3, password_hash = $4,
			stripe_customer_id = $5, stripe_subscription_id = $6,
			reset_token = $7, reset_token_expiry = $8,
			twitch_access_token = $9, twitch_refresh_token = $10,
			remember_session = $11, updated_at = NOW()
		WHERE id = $1
		RETURNING `+userColumns,
		id, user.EmailVerified, string(user.Role), user.PasswordHash,
		user.StripeCustomerID, user.StripeSubscriptionID,
		user.ResetToken, user.ResetTokenExpiry,
		encAccess, encRefresh, user.RememberSession,
	)

	updated, err := r.scanUser(row)
	if err != nil {
		return nil, fmt.Errorf("failed to update user: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return updated, nil
}

func applyUserPatch(user *domain.User, patch domain.UserPatch) {
	if patch.EmailVerified != nil {
		user.EmailVerified = *patch.EmailVerified
	}
	if patch.Role != nil {
		user.Role = *patch.Role
	}
	if patch.PasswordHash != nil {
		user.PasswordHash = *patch.PasswordHash
	}
	if patch.StripeCustomerID != nil {
		user.StripeCustomerID = *patch.StripeCustomerID
	}
	if patch.StripeSubscriptionID != nil {
		user.StripeSubscriptionID = *patch.StripeSubscriptionID
	}
	if patch.ResetToken != nil {
		user.ResetToken = *patch.ResetToken
	}
	if patch.ResetTokenExpiry != nil {
		user.ResetTokenExpiry = *patch.ResetTokenExpiry
	}
	if patch.TwitchAccessToken != nil {
		user.TwitchAccessToken = *patch.TwitchAccessToken
	}
	if patch.TwitchRefreshToken != nil {
		user.TwitchRefreshToken = *patch.TwitchRefreshToken
	}
	if patch.RememberSession != nil {
		user.RememberSession = *patch.RememberSession
	}
}

func (r *UserRepo) Count(ctx context.Context) (int, error) {
	var count int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM users`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count users: %w", err)
	}
	return count, nil
}
