package jwt

import (
	"errors"
	"fmt"
	"time"

	gojwt "github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/surveybasket/api/internal/core/domain"
	"github.com/surveybasket/api/internal/core/ports"
)

var (
	ErrInvalidToken = errors.New("access token is invalid")
)

// Signer mints and validates HS256 access tokens for a fixed
// key/issuer/audience triple.
type Signer struct {
	key      []byte
	issuer   string
	audience string
}

func NewSigner(key []byte, issuer, audience string) *Signer {
	return &Signer{
		key:      key,
		issuer:   issuer,
		audience: audience,
	}
}

type accessTokenClaims struct {
	Email string `json:"email,omitempty"`
	gojwt.RegisteredClaims
}

func (s *Signer) Issue(user *domain.User, lifetime time.Duration) (string, error) {
	now := time.Now().UTC()

	claims := accessTokenClaims{
		Email: user.Email,
		RegisteredClaims: gojwt.RegisteredClaims{
			Subject:   user.ID.String(),
			ID:        uuid.NewString(),
			Issuer:    s.issuer,
			Audience:  gojwt.ClaimStrings{s.audience},
			IssuedAt:  gojwt.NewNumericDate(now),
			ExpiresAt: gojwt.NewNumericDate(now.Add(lifetime)),
		},
	}

	signed, err := gojwt.NewWithClaims(gojwt.SigningMethodHS256, claims).SignedString(s.key)
	if err != nil {
		return "", fmt.Errorf("failed to sign access token: %w", err)
	}

	return signed, nil
}

func (s *Signer) Validate(token string, ignoreExpiry bool) (*ports.AccessClaims, error) {
	opts := []gojwt.ParserOption{
		gojwt.WithValidMethods([]string{gojwt.SigningMethodHS256.Alg()}),
	}
	if ignoreExpiry {
		// Signature verification still runs; issuer and audience are
		// checked by hand below since claim validation is off entirely.
		opts = append(opts, gojwt.WithoutClaimsValidation())
	} else {
		opts = append(opts,
			gojwt.WithIssuer(s.issuer),
			gojwt.WithAudience(s.audience),
			gojwt.WithExpirationRequired(),
		)
	}

	claims := &accessTokenClaims{}
	parsed, err := gojwt.ParseWithClaims(token, claims, func(t *gojwt.Token) (any, error) {
		return s.key, nil
	}, opts...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}
	if !parsed.Valid {
		return nil, ErrInvalidToken
	}

	if ignoreExpiry {
		if claims.Issuer != s.issuer || !containsAudience(claims.Audience, s.audience) {
			return nil, ErrInvalidToken
		}
	}

	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return nil, fmt.Errorf("%w: unusable subject claim", ErrInvalidToken)
	}

	tokenID, err := uuid.Parse(claims.ID)
	if err != nil {
		return nil, fmt.Errorf("%w: unusable jti claim", ErrInvalidToken)
	}

	return &ports.AccessClaims{
		UserID:  userID,
		Email:   claims.Email,
		TokenID: tokenID,
	}, nil
}

func containsAudience(audience gojwt.ClaimStrings, want string) bool {
	for _, aud := range audience {
		if aud == want {
			return true
		}
	}
	return false
}
