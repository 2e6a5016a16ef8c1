package memory

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/surveybasket/api/internal/core/domain"
	"github.com/surveybasket/api/internal/core/ports"
)

// AuthRepository is an in-memory refresh token ledger. The mutex gives
// RevokeIfActive the same single-winner semantics the postgres adapter
// gets from its conditional UPDATE.
type AuthRepository struct {
	mu     sync.Mutex
	tokens map[string]*domain.RefreshToken
}

func NewAuthRepository() *AuthRepository {
	return &AuthRepository{
		tokens: make(map[string]*domain.RefreshToken),
	}
}

func (r *AuthRepository) IssueFor(_ context.Context, userID uuid.UUID, lifetime time.Duration) (*domain.RefreshToken, error) {
	value, err := generateTokenValue()
	if err != nil {
		return nil, fmt.Errorf("failed to generate refresh token: %w", err)
	}

	now := time.Now().UTC()
	token := &domain.RefreshToken{
		ID:        uuid.New(),
		UserID:    userID,
		Token:     value,
		TokenHash: hashTokenValue(value),
		IssuedAt:  now,
		ExpiresAt: now.Add(lifetime),
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.tokens[token.TokenHash] = token

	return copyToken(token), nil
}

func (r *AuthRepository) FindByValue(_ context.Context, value string) (*domain.RefreshToken, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	token, ok := r.tokens[hashTokenValue(value)]
	if !ok {
		return nil, nil
	}
	return copyToken(token), nil
}

func (r *AuthRepository) Revoke(_ context.Context, value string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	token, ok := r.tokens[hashTokenValue(value)]
	if !ok || token.RevokedAt != nil {
		return nil
	}
	now := time.Now().UTC()
	token.RevokedAt = &now
	return nil
}

func (r *AuthRepository) RevokeIfActive(_ context.Context, value string, now time.Time) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	token, ok := r.tokens[hashTokenValue(value)]
	if !ok || !token.IsActiveAt(now) {
		return false, nil
	}
	revokedAt := now.UTC()
	token.RevokedAt = &revokedAt
	return true, nil
}

// Count reports the number of stored records, active or not.
func (r *AuthRepository) Count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.tokens)
}

// Expire backdates a token's expiry, for tests exercising lifetime
// boundaries without waiting.
func (r *AuthRepository) Expire(value string, expiresAt time.Time) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if token, ok := r.tokens[hashTokenValue(value)]; ok {
		token.ExpiresAt = expiresAt
	}
}

func copyToken(token *domain.RefreshToken) *domain.RefreshToken {
	c := *token
	if token.RevokedAt != nil {
		revokedAt := *token.RevokedAt
		c.RevokedAt = &revokedAt
	}
	return &c
}

func generateTokenValue() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return base64.URLEncoding.EncodeToString(b), nil
}

func hashTokenValue(value string) string {
	hash := sha256.Sum256([]byte(value))
	return hex.EncodeToString(hash[:])
}

var _ ports.RefreshTokenLedger = (*AuthRepository)(nil)
