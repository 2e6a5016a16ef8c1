package ports

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/surveybasket/api/internal/core/domain"
)

// AccessClaims is the identity extracted from a validated access token.
type AccessClaims struct {
	UserID  uuid.UUID
	Email   string
	TokenID uuid.UUID
}

// TokenSigner mints and verifies signed access tokens.
type TokenSigner interface {
	// Issue builds a signed token for the user carrying sub, jti, iat,
	// exp, iss and aud claims, valid for the given lifetime.
	Issue(user *domain.User, lifetime time.Duration) (string, error)

	// Validate checks signature, issuer and audience, and lifetime unless
	// ignoreExpiry is set. ignoreExpiry is used during refresh, where the
	// access token is typically already expired but still identifies the
	// subject.
	Validate(token string, ignoreExpiry bool) (*AccessClaims, error)
}

// RefreshTokenLedger is the per-user collection of refresh token records.
// It is the only shared mutable state of the auth flow; implementations
// must make RevokeIfActive atomic per token value so a rotation race has
// exactly one winner.
type RefreshTokenLedger interface {
	// IssueFor generates a fresh random token value, stores its record
	// with expiry now+lifetime and returns it. The raw value is present
	// only on the returned record's Token field.
	IssueFor(ctx context.Context, userID uuid.UUID, lifetime time.Duration) (*domain.RefreshToken, error)

	// FindByValue resolves a record by its raw token value. Returns
	// (nil, nil) when no record matches; callers decide whether the
	// record is still active.
	FindByValue(ctx context.Context, value string) (*domain.RefreshToken, error)

	// Revoke marks the record revoked. Revoking an already revoked or
	// absent token is a no-op.
	Revoke(ctx context.Context, value string) error

	// RevokeIfActive atomically revokes the record identified by value
	// if and only if it is still active at now. It reports whether this
	// call performed the revocation; a concurrent loser gets false.
	RevokeIfActive(ctx context.Context, value string, now time.Time) (bool, error)
}

// TokenPair is the payload of a successful login or refresh.
type TokenPair struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
	ExpiresIn    int64  `json:"expiresIn"`
}

type AuthService interface {
	Login(ctx context.Context, email, password string) domain.Result[TokenPair]
	Refresh(ctx context.Context, accessToken, refreshToken string) domain.Result[TokenPair]
	Revoke(ctx context.Context, refreshToken string) domain.Result[domain.Unit]
}
