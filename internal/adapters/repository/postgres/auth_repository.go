package postgres

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"database/sql"
	"encoding/base64"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/surveybasket/api/internal/core/domain"
	"github.com/surveybasket/api/internal/core/ports"
)

// AuthRepository is the durable refresh token ledger. Raw token values are
// never stored; rows carry a sha256 hash and lookups hash the presented
// value first.
type AuthRepository struct {
	db *sql.DB
}

func NewAuthRepository(db *sql.DB) ports.RefreshTokenLedger {
	return &AuthRepository{db: db}
}

func (r *AuthRepository) IssueFor(ctx context.Context, userID uuid.UUID, lifetime time.Duration) (*domain.RefreshToken, error) {
	value, err := generateTokenValue()
	if err != nil {
		return nil, fmt.Errorf("failed to generate refresh token: %w", err)
	}

	now := time.Now().UTC()
	token := &domain.RefreshToken{
		UserID:    userID,
		Token:     value,
		TokenHash: hashTokenValue(value),
		IssuedAt:  now,
		ExpiresAt: now.Add(lifetime),
	}

	query := `
		INSERT INTO refresh_tokens (user_id, token_hash, issued_at, expires_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`
	err = r.db.QueryRowContext(ctx, query, token.UserID, token.TokenHash, token.IssuedAt, token.ExpiresAt).Scan(&token.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to store refresh token: %w", err)
	}

	return token, nil
}

func (r *AuthRepository) FindByValue(ctx context.Context, value string) (*domain.RefreshToken, error) {
	query := `
		SELECT id, user_id, token_hash, issued_at, expires_at, revoked_at
		FROM refresh_tokens
		WHERE token_hash = $1
	`
	token := &domain.RefreshToken{}
	err := r.db.QueryRowContext(ctx, query, hashTokenValue(value)).Scan(
		&token.ID,
		&token.UserID,
		&token.TokenHash,
		&token.IssuedAt,
		&token.ExpiresAt,
		&token.RevokedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get refresh token: %w", err)
	}
	return token, nil
}

func (r *AuthRepository) Revoke(ctx context.Context, value string) error {
	query := `
		UPDATE refresh_tokens SET revoked_at = $2
		WHERE token_hash = $1 AND revoked_at IS NULL
	`
	_, err := r.db.ExecContext(ctx, query, hashTokenValue(value), time.Now().UTC())
	if err != nil {
		return fmt.Errorf("failed to revoke refresh token: %w", err)
	}
	return nil
}

// RevokeIfActive is the rotation guard: the conditional update is atomic
// per row, so of N concurrent calls presenting the same value exactly one
// observes an affected row.
func (r *AuthRepository) RevokeIfActive(ctx context.Context, value string, now time.Time) (bool, error) {
	query := `
		UPDATE refresh_tokens SET revoked_at = $2
		WHERE token_hash = $1 AND revoked_at IS NULL AND expires_at > $2
	`
	res, err := r.db.ExecContext(ctx, query, hashTokenValue(value), now.UTC())
	if err != nil {
		return false, fmt.Errorf("failed to revoke refresh token: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read affected rows: %w", err)
	}
	return affected == 1, nil
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
