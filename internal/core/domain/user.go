package domain

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID           uuid.UUID  `json:"id"`
	Email        string     `json:"email"`
	Name         string     `json:"name"`
	PasswordHash string     `json:"-"`
	CreatedAt    time.Time  `json:"created_at"`
	DeletedAt    *time.Time `json:"deleted_at,omitempty"`
}

// RefreshToken is a single entry in a user's token ledger. Token holds the
// raw opaque value only at issuance time; storage keeps TokenHash.
type RefreshToken struct {
	ID        uuid.UUID  `json:"id"`
	UserID    uuid.UUID  `json:"user_id"`
	Token     string     `json:"-"`
	TokenHash string     `json:"-"`
	IssuedAt  time.Time  `json:"issued_at"`
	ExpiresAt time.Time  `json:"expires_at"`
	RevokedAt *time.Time `json:"revoked_at,omitempty"`
}

// IsExpiredAt reports whether the token has expired at the given instant.
// The boundary is exclusive of validity: a token whose expiry equals now
// is already expired.
func (t *RefreshToken) IsExpiredAt(now time.Time) bool {
	return !now.Before(t.ExpiresAt)
}

// IsActiveAt reports whether the token can still be exchanged: never
// revoked and not expired. Revocation is monotonic, a revoked token
// never becomes active again.
func (t *RefreshToken) IsActiveAt(now time.Time) bool {
	return t.RevokedAt == nil && !t.IsExpiredAt(now)
}
