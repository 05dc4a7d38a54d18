package domain

import (
	"context"
	"time"
)

// Role controls what a user may do. Writes to catalog and content entities
// require RoleAdmin; RoleModerator is read-only on admin surfaces.
type Role string

const (
	RoleUser      Role = "user"
	RoleModerator Role = "moderator"
	RoleAdmin     Role = "admin"
)

func (r Role) Valid() bool {
	switch r {
	case RoleUser, RoleModerator, RoleAdmin:
		return true
	}
	return false
}

type User struct {
	ID            int64
	Username      string
	Email         string
	EmailVerified bool
	Role          Role

	// PasswordHash is an argon2id encoded hash. Empty for users created
	// through Twitch OAuth who never set a local password.
	PasswordHash string

	// Payment provider linkage, set after the first checkout session.
	StripeCustomerID     string
	StripeSubscriptionID string

	// Password reset state. Token is single-use: redemption clears both
	// fields in the same update.
	ResetToken       string
	ResetTokenExpiry time.Time

	// Twitch OAuth linkage. Tokens are kept on the user because they share
	// its lifecycle; encryption concerns belong to the repository layer.
	TwitchID           string
	TwitchAccessToken  string
	TwitchRefreshToken string

	RememberSession bool

	CreatedAt time.Time
	UpdatedAt time.Time
}

// UserPatch carries a partial update. Nil fields are left unchanged.
type UserPatch struct {
	EmailVerified        *bool
	Role                 *Role
	PasswordHash         *string
	StripeCustomerID     *string
	StripeSubscriptionID *string
	ResetToken           *string
	ResetTokenExpiry     *time.Time
	TwitchAccessToken    *string
	TwitchRefreshToken   *string
	RememberSession      *bool
}

type UserRepository interface {
	Create(ctx context.Context, user *User) (*User, error)
	GetByID(ctx context.Context, id int64) (*User, error)
	// GetByUsername and GetByEmail match case-insensitively.
	GetByUsername(ctx context.Context, username string) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	GetByTwitchID(ctx context.Context, twitchID string) (*User, error)
	// GetByResetToken only matches tokens that have not expired at now.
	GetByResetToken(ctx context.Context, token string, now time.Time) (*User, error)
	Update(ctx context.Context, id int64, patch UserPatch) (*User, error)
	Count(ctx context.Context) (int, error)
}
