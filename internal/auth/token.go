package auth

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/jonboulle/clockwork"
)

// ResetToken is an opaque single-use credential for the password-reset flow.
type ResetToken struct {
	Token     string
	ExpiresAt time.Time
}

// TokenIssuer mints password-reset tokens with a fixed time-to-live.
type TokenIssuer struct {
	ttl   time.Duration
	clock clockwork.Clock
}

func NewTokenIssuer(ttl time.Duration, clock clockwork.Clock) *TokenIssuer {
	return &TokenIssuer{ttl: ttl, clock: clock}
}

// Issue generates a 32-character hex token (16 random bytes) expiring at
// now + ttl.
func (i *TokenIssuer) Issue() (ResetToken, error) {
	b := make([]byte, 16)
	if _, err := rand.Read(b); err != nil {
		return ResetToken{}, fmt.Errorf("failed to generate reset token: %w", err)
	}
	return ResetToken{
		Token:     hex.EncodeToString(b),
		ExpiresAt: i.clock.Now().Add(i.ttl),
	}, nil
}

// Now exposes the issuer's clock, so expiry checks and issuance share a
// single time source.
func (i *TokenIssuer) Now() time.Time {
	return i.clock.Now()
}
