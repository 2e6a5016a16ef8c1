package http

import (
	"net/http"

	"github.com/go-chi/render"

	"github.com/surveybasket/api/internal/core/domain"
)

// errInvalidRequest covers malformed or incomplete request bodies,
// rejected at the boundary before any service is called.
var errInvalidRequest = domain.NewError("Request.Invalid", "Request body is missing or malformed")

// renderProblem writes the catalog error as a problem body. Internal
// detail never leaks past the Error's code and description.
func renderProblem(w http.ResponseWriter, r *http.Request, status int, err domain.Error) {
	render.Status(r, status)
	render.JSON(w, r, err)
}

// authStatus maps auth failures to HTTP statuses: the whole credential
// and token family answers 401 so callers cannot probe which part failed.
func authStatus(err domain.Error) int {
	switch err.Code {
	case domain.ErrInvalidCredentials.Code,
		domain.ErrInvalidToken.Code,
		domain.ErrRefreshTokenNotFound.Code,
		domain.ErrRefreshTokenInvalid.Code,
		domain.ErrUserNotFound.Code:
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}

func pollStatus(err domain.Error) int {
	switch err.Code {
	case domain.ErrPollNotFound.Code:
		return http.StatusNotFound
	case domain.ErrInvalidPoll.Code:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
