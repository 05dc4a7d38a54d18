package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/mail"
	"strings"
	"time"

	"github.com/yayincibotu/twitchviewer/internal/auth"
	"github.com/yayincibotu/twitchviewer/internal/domain"
	apperrors "github.com/yayincibotu/twitchviewer/internal/errors"
	"github.com/yayincibotu/twitchviewer/internal/metrics"
)

// RegisterInput carries a local registration request.
type RegisterInput struct {
	Username string
	Email    string
	Password string
}

func (in RegisterInput) validate() error {
	if len(in.Username) < 3 || len(in.Username) > 30 {
		return apperrors.ValidationError("username must be between 3 and 30 characters")
	}
	if _, err := mail.ParseAddress(in.Email); err != nil {
		return apperrors.ValidationError("invalid email address")
	}
	if len(in.Password) < 8 {
		return apperrors.ValidationError("password must be at least 8 characters")
	}
	return nil
}

// Register creates a local account. The very first account in the system
// becomes an admin with a verified email, so a fresh deployment can be
// administered without manual database surgery.
func (s *Service) Register(ctx context.Context, in RegisterInput) (*domain.User, error) {
	if err := in.validate(); err != nil {
		metrics.RegistrationsTotal.WithLabelValues("invalid").Inc()
		return nil, err
	}

	hash, err := auth.HashPassword(in.Password)
	if err != nil {
		return nil, err
	}

	count, err := s.repos.Users.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count users: %w", err)
	}

	user := &domain.User{
		Username:     strings.TrimSpace(in.Username),
		Email:        strings.TrimSpace(in.Email),
		Role:         domain.RoleUser,
		PasswordHash: hash,
	}
	if count == 0 {
		user.Role = domain.RoleAdmin
		user.EmailVerified = true
	}

	created, err := s.repos.Users.Create(ctx, user)
	if err != nil {
		if errors.Is(err, domain.ErrDuplicateUsername) || errors.Is(err, domain.ErrDuplicateEmail) {
			metrics.RegistrationsTotal.WithLabelValues("duplicate").Inc()
		}
		return nil, err
	}

	metrics.RegistrationsTotal.WithLabelValues("created").Inc()
	slog.InfoContext(ctx, "user registered", "user_id", created.ID, "role", created.Role)
	return created, nil
}

// Login verifies a username (or email) and password. Both an unknown user
// and a wrong password produce ErrInvalidCredentials.
func (s *Service) Login(ctx context.Context, login, password string) (*domain.User, error) {
	user, err := s.repos.Users.GetByUsername(ctx, login)
	if errors.Is(err, domain.ErrUserNotFound) {
		user, err = s.repos.Users.GetByEmail(ctx, login)
	}
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			metrics.LoginsTotal.WithLabelValues("local", "failure").Inc()
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	match, err := auth.VerifyPassword(password, user.PasswordHash)
	if err != nil {
		return nil, err
	}
	if !match {
		metrics.LoginsTotal.WithLabelValues("local", "failure").Inc()
		return nil, ErrInvalidCredentials
	}

	metrics.LoginsTotal.WithLabelValues("local", "success").Inc()
	return user, nil
}

// GetUser loads a user by id.
func (s *Service) GetUser(ctx context.Context, id int64) (*domain.User, error) {
	return s.repos.Users.GetByID(ctx, id)
}

// VerifyEmail marks the user's email as verified. Calling it on an already
// verified account is a no-op.
func (s *Service) VerifyEmail(ctx context.Context, userID int64) (*domain.User, error) {
	verified := true
	return s.repos.Users.Update(ctx, userID, domain.UserPatch{EmailVerified: &verified})
}

// SetRemember persists the user's remember-me preference, so a returning
// session cookie can be re-extended consistently.
func (s *Service) SetRemember(ctx context.Context, userID int64, remember bool) error {
	_, err := s.repos.Users.Update(ctx, userID, domain.UserPatch{RememberSession: &remember})
	return err
}

// RequestPasswordReset issues a reset token for the account behind the
// email. To avoid leaking which emails exist, an unknown email returns no
// error and no token; the caller responds identically in both cases.
func (s *Service) RequestPasswordReset(ctx context.Context, email string) (*auth.ResetToken, error) {
	user, err := s.repos.Users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			slog.InfoContext(ctx, "password reset requested for unknown email")
			return nil, nil
		}
		return nil, err
	}

	token, err := s.tokens.Issue()
	if err != nil {
		return nil, err
	}

	_, err = s.repos.Users.Update(ctx, user.ID, domain.UserPatch{
		ResetToken:       &token.Token,
		ResetTokenExpiry: &token.ExpiresAt,
	})
	if err != nil {
		return nil, err
	}

	metrics.PasswordResetsTotal.WithLabelValues("requested").Inc()
	slog.InfoContext(ctx, "password reset requested", "user_id", user.ID)
	return &token, nil
}

// ResetPassword redeems a reset token and sets a new password. The token is
// single-use: redemption clears it in the same update that writes the hash.
func (s *Service) ResetPassword(ctx context.Context, token, newPassword string) error {
	if len(newPassword) < 8 {
		return apperrors.ValidationError("password must be at least 8 characters")
	}

	user, err := s.repos.Users.GetByResetToken(ctx, token, s.tokens.Now())
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			metrics.PasswordResetsTotal.WithLabelValues("rejected").Inc()
			return ErrResetTokenInvalid
		}
		return err
	}

	hash, err := auth.HashPassword(newPassword)
	if err != nil {
		return err
	}

	empty := ""
	var zeroExpiry time.Time
	_, err = s.repos.Users.Update(ctx, user.ID, domain.UserPatch{
		PasswordHash:     &hash,
		ResetToken:       &empty,
		ResetTokenExpiry: &zeroExpiry,
	})
	if err != nil {
		return err
	}

	metrics.PasswordResetsTotal.WithLabelValues("redeemed").Inc()
	slog.InfoContext(ctx, "password reset redeemed", "user_id", user.ID)
	return nil
}

// TwitchProfile is the subset of the Twitch user record the service needs.
type TwitchProfile struct {
	ID           string
	Login        string
	DisplayName  string
	Email        string
	AccessToken  string
	RefreshToken string
}

// UpsertTwitchUser links a Twitch identity to an account. An existing link
// refreshes the stored tokens; a new identity creates a user. Twitch has
// already verified the email, so OAuth accounts start verified.
func (s *Service) UpsertTwitchUser(ctx context.Context, profile TwitchProfile) (*domain.User, error) {
	if profile.ID == "" {
		return nil, apperrors.ValidationError("twitch profile id is required")
	}

	existing, err := s.repos.Users.GetByTwitchID(ctx, profile.ID)
	if err == nil {
		updated, err := s.repos.Users.Update(ctx, existing.ID, domain.UserPatch{
			TwitchAccessToken:  &profile.AccessToken,
			TwitchRefreshToken: &profile.RefreshToken,
		})
		if err != nil {
			return nil, err
		}
		metrics.LoginsTotal.WithLabelValues("twitch", "success").Inc()
		return updated, nil
	}
	if !errors.Is(err, domain.ErrUserNotFound) {
		return nil, err
	}

	email := profile.Email
	if email == "" {
		// Helix omits the email without the user:read:email scope grant.
		email = profile.Login + "@twitch.local"
	}

	count, err := s.repos.Users.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count users: %w", err)
	}

	username := profile.Login
	if username == "" {
		username = "twitch_" + profile.ID
	}

	user := &domain.User{
		Username:           username,
		Email:              email,
		EmailVerified:      true,
		Role:               domain.RoleUser,
		TwitchID:           profile.ID,
		TwitchAccessToken:  profile.AccessToken,
		TwitchRefreshToken: profile.RefreshToken,
	}
	if count == 0 {
		user.Role = domain.RoleAdmin
	}

	created, err := s.repos.Users.Create(ctx, user)
	if err != nil && (errors.Is(err, domain.ErrDuplicateUsername) || errors.Is(err, domain.ErrDuplicateEmail)) {
		// A local account already owns the name. Suffix with the Twitch id,
		// which is unique on their side.
		user.Username = username + "_" + profile.ID
		if errors.Is(err, domain.ErrDuplicateEmail) {
			user.Email = profile.Login + "+" + profile.ID + "@twitch.local"
		}
		created, err = s.repos.Users.Create(ctx, user)
	}
	if err != nil {
		return nil, err
	}

	metrics.LoginsTotal.WithLabelValues("twitch", "success").Inc()
	slog.InfoContext(ctx, "twitch user created", "user_id", created.ID, "twitch_id", profile.ID)
	return created, nil
}
