package http_test

import (
	stdhttp "net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	handler "github.com/surveybasket/api/internal/adapters/handler/http"
	"github.com/surveybasket/api/internal/adapters/token/jwt"
	"github.com/surveybasket/api/internal/core/domain"
)

func TestRequireAuth(t *testing.T) {
	signer := jwt.NewSigner([]byte("test-key"), "surveybasket", "surveybasket-api")
	user := &domain.User{ID: uuid.New(), Email: "a@x.com"}

	validToken, err := signer.Issue(user, time.Minute)
	require.NoError(t, err)
	expiredToken, err := signer.Issue(user, -time.Minute)
	require.NoError(t, err)

	var gotUserID uuid.UUID
	next := stdhttp.HandlerFunc(func(w stdhttp.ResponseWriter, r *stdhttp.Request) {
		gotUserID, _ = r.Context().Value(handler.UserIDKey).(uuid.UUID)
		w.WriteHeader(stdhttp.StatusOK)
	})
	protected := handler.RequireAuth(signer)(next)

	cases := []struct {
		name   string
		header string
		code   int
	}{
		{"valid token", "Bearer " + validToken, stdhttp.StatusOK},
		{"missing header", "", stdhttp.StatusUnauthorized},
		{"not a bearer token", "Basic abc", stdhttp.StatusUnauthorized},
		{"expired token", "Bearer " + expiredToken, stdhttp.StatusUnauthorized},
		{"garbage token", "Bearer garbage", stdhttp.StatusUnauthorized},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			gotUserID = uuid.Nil

			req := httptest.NewRequest(stdhttp.MethodGet, "/api/users/me", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			rec := httptest.NewRecorder()
			protected.ServeHTTP(rec, req)

			assert.Equal(t, tc.code, rec.Code)
			if tc.code == stdhttp.StatusOK {
				assert.Equal(t, user.ID, gotUserID)
			}
		})
	}
}
