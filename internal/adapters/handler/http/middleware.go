package http

import (
	"context"
	"net/http"
	"strings"

	"github.com/surveybasket/api/internal/core/domain"
	"github.com/surveybasket/api/internal/core/ports"
)

type contextKey string

// UserIDKey carries the authenticated user's id through the request context.
const UserIDKey contextKey = "user_id"

// RequireAuth validates the Bearer access token and injects the subject
// into the request context. Expired tokens are rejected here; refresh is
// the only place an expired token is still worth something.
func RequireAuth(signer ports.TokenSigner) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, ok := bearerToken(r)
			if !ok {
				renderProblem(w, r, http.StatusUnauthorized, domain.ErrInvalidToken)
				return
			}

			claims, err := signer.Validate(token, false)
			if err != nil {
				renderProblem(w, r, http.StatusUnauthorized, domain.ErrInvalidToken)
				return
			}

			ctx := context.WithValue(r.Context(), UserIDKey, claims.UserID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func bearerToken(r *http.Request) (string, bool) {
	header := r.Header.Get("Authorization")
	token, found := strings.CutPrefix(header, "Bearer ")
	if !found || token == "" {
		return "", false
	}
	return token, true
}
