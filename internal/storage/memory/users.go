package memory

import (
	"context"
	"strings"
	"time"

	"github.com/yayincibotu/twitchviewer/internal/domain"
)

// UserRepo implements domain.UserRepository over an in-memory table.
type UserRepo struct {
	rows *table[domain.User]
}

func (r *UserRepo) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	if _, err := r.GetByUsername(ctx, user.Username); err == nil {
		return nil, domain.ErrDuplicateUsername
	}
	if _, err := r.GetByEmail(ctx, user.Email); err == nil {
		return nil, domain.ErrDuplicateEmail
	}

	now := time.Now()
	row := *user
	row.CreatedAt = now
	row.UpdatedAt = now

	created := r.rows.insert(row, func(u *domain.User, id int64) { u.ID = id })
	return &created, nil
}

func (r *UserRepo) GetByID(_ context.Context, id int64) (*domain.User, error) {
	user, ok := r.rows.get(id)
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return &user, nil
}

func (r *UserRepo) GetByUsername(_ context.Context, username string) (*domain.User, error) {
	user, ok := r.rows.find(func(u domain.User) bool {
		return strings.EqualFold(u.Username, username)
	})
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return &user, nil
}

func (r *UserRepo) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	user, ok := r.rows.find(func(u domain.User) bool {
		return strings.EqualFold(u.Email, email)
	})
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return &user, nil
}

func (r *UserRepo) GetByTwitchID(_ context.Context, twitchID string) (*domain.User, error) {
	user, ok := r.rows.find(func(u domain.User) bool {
		return u.TwitchID != "" && u.TwitchID == twitchID
	})
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return &user, nil
}

func (r *UserRepo) GetByResetToken(_ context.Context, token string, now time.Time) (*domain.User, error) {
	if token == "" {
		return nil, domain.ErrUserNotFound
	}
	user, ok := r.rows.find(func(u domain.User) bool {
		return u.ResetToken == token && u.ResetTokenExpiry.After(now)
	})
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return &user, nil
}

func (r *UserRepo) Update(_ context.Context, id int64, patch domain.UserPatch) (*domain.User, error) {
	user, ok := r.rows.update(id, func(u *domain.User) {
		if patch.EmailVerified != nil {
			u.EmailVerified = *patch.EmailVerified
		}
		if patch.Role != nil {
			u.Role = *patch.Role
		}
		if patch.PasswordHash != nil {
			u.PasswordHash = *patch.PasswordHash
		}
		if patch.StripeCustomerID != nil {
			u.StripeCustomerID = *patch.StripeCustomerID
		}
		if patch.StripeSubscriptionID != nil {
			u.StripeSubscriptionID = *patch.StripeSubscriptionID
		}
		if patch.ResetToken != nil {
			u.ResetToken = *patch.ResetToken
		}
		if patch.ResetTokenExpiry != nil {
			u.ResetTokenExpiry = *patch.ResetTokenExpiry
		}
		if patch.TwitchAccessToken != nil {
			u.TwitchAccessToken = *patch.TwitchAccessToken
		}
		if patch.TwitchRefreshToken != nil {
			u.TwitchRefreshToken = *patch.TwitchRefreshToken
		}
		if patch.RememberSession != nil {
			u.RememberSession = *patch.RememberSession
		}
		u.UpdatedAt = time.Now()
	})
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return &user, nil
}

func (r *UserRepo) Count(_ context.Context) (int, error) {
	return r.rows.count(), nil
}
