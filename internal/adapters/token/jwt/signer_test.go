package jwt_test

import (
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/surveybasket/api/internal/adapters/token/jwt"
	"github.com/surveybasket/api/internal/core/domain"
)

const (
	testKey      = "test-signing-key"
	testIssuer   = "surveybasket"
	testAudience = "surveybasket-api"
)

func testUser() *domain.User {
	return &domain.User{
		ID:    uuid.New(),
		Email: "a@x.com",
	}
}

func newSigner() *jwt.Signer {
	return jwt.NewSigner([]byte(testKey), testIssuer, testAudience)
}

func TestIssueValidateRoundTrip(t *testing.T) {
	signer := newSigner()
	user := testUser()

	token, err := signer.Issue(user, time.Minute)
	require.NoError(t, err)
	require.NotEmpty(t, token)
	assert.Len(t, strings.Split(token, "."), 3)

	claims, err := signer.Validate(token, false)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
	assert.Equal(t, user.Email, claims.Email)
	assert.NotEqual(t, uuid.Nil, claims.TokenID)
}

func TestUniqueTokenID(t *testing.T) {
	signer := newSigner()
	user := testUser()

	first, err := signer.Issue(user, time.Minute)
	require.NoError(t, err)
	second, err := signer.Issue(user, time.Minute)
	require.NoError(t, err)

	firstClaims, err := signer.Validate(first, false)
	require.NoError(t, err)
	secondClaims, err := signer.Validate(second, false)
	require.NoError(t, err)

	assert.NotEqual(t, firstClaims.TokenID, secondClaims.TokenID)
}

func TestTamperedSignatureRejected(t *testing.T) {
	signer := newSigner()

	token, err := signer.Issue(testUser(), time.Minute)
	require.NoError(t, err)

	tampered := tamperSignature(t, token)
	require.NotEqual(t, token, tampered)

	_, err = signer.Validate(tampered, false)
	assert.Error(t, err)

	_, err = signer.Validate(tampered, true)
	assert.Error(t, err, "signature must be checked even when expiry is ignored")
}

func TestWrongKeyRejected(t *testing.T) {
	signer := newSigner()
	other := jwt.NewSigner([]byte("another-key"), testIssuer, testAudience)

	token, err := signer.Issue(testUser(), time.Minute)
	require.NoError(t, err)

	_, err = other.Validate(token, false)
	assert.Error(t, err)
}

func TestIssuerAndAudienceChecked(t *testing.T) {
	signer := newSigner()

	token, err := signer.Issue(testUser(), time.Minute)
	require.NoError(t, err)

	cases := []struct {
		name     string
		issuer   string
		audience string
	}{
		{"issuer mismatch", "someone-else", testAudience},
		{"audience mismatch", testIssuer, "another-api"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			other := jwt.NewSigner([]byte(testKey), tc.issuer, tc.audience)

			_, err := other.Validate(token, false)
			assert.Error(t, err)

			_, err = other.Validate(token, true)
			assert.Error(t, err, "issuer and audience must be checked even when expiry is ignored")
		})
	}
}

func TestExpiredToken(t *testing.T) {
	signer := newSigner()
	user := testUser()

	token, err := signer.Issue(user, -time.Minute)
	require.NoError(t, err)

	_, err = signer.Validate(token, false)
	require.Error(t, err)

	// Refresh extracts identity from an expired token.
	claims, err := signer.Validate(token, true)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
}

func TestMalformedToken(t *testing.T) {
	signer := newSigner()

	for _, token := range []string{"", "not-a-token", "a.b.c"} {
		_, err := signer.Validate(token, false)
		assert.Error(t, err, "token %q should be rejected", token)
	}
}

// tamperSignature flips one byte in the middle of the signature segment.
func tamperSignature(t *testing.T, token string) string {
	t.Helper()

	parts := strings.Split(token, ".")
	require.Len(t, parts, 3)

	sig := []byte(parts[2])
	i := len(sig) / 2
	if sig[i] == 'A' {
		sig[i] = 'B'
	} else {
		sig[i] = 'A'
	}
	parts[2] = string(sig)

	return strings.Join(parts, ".")
}
