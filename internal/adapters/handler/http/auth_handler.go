package http

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/render"

	"github.com/surveybasket/api/internal/core/domain"
	"github.com/surveybasket/api/internal/core/ports"
)

type AuthHandler struct {
	service ports.AuthService
	log     *slog.Logger
}

func NewAuthHandler(service ports.AuthService, log *slog.Logger) *AuthHandler {
	return &AuthHandler{
		service: service,
		log:     log,
	}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if req.Email == "" || req.Password == "" {
		renderProblem(w, r, http.StatusBadRequest, errInvalidRequest)
		return
	}

	res := h.service.Login(r.Context(), req.Email, req.Password)
	if res.IsFailure() {
		h.log.Info("login rejected", slog.String("code", res.Err().Code))
		renderProblem(w, r, authStatus(res.Err()), res.Err())
		return
	}

	render.Status(r, http.StatusOK)
	render.JSON(w, r, res.Value())
}

type refreshRequest struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

func (h *AuthHandler) Refresh(w http.ResponseWriter, r *http.Request) {
	var req refreshRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if req.AccessToken == "" || req.RefreshToken == "" {
		renderProblem(w, r, http.StatusBadRequest, errInvalidRequest)
		return
	}

	res := h.service.Refresh(r.Context(), req.AccessToken, req.RefreshToken)
	if res.IsFailure() {
		h.log.Info("refresh rejected", slog.String("code", res.Err().Code))
		renderProblem(w, r, authStatus(res.Err()), res.Err())
		return
	}

	render.Status(r, http.StatusOK)
	render.JSON(w, r, res.Value())
}

type revokeRequest struct {
	RefreshToken string `json:"refreshToken"`
}

func (h *AuthHandler) Revoke(w http.ResponseWriter, r *http.Request) {
	var req revokeRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if req.RefreshToken == "" {
		renderProblem(w, r, http.StatusBadRequest, errInvalidRequest)
		return
	}

	res := h.service.Revoke(r.Context(), req.RefreshToken)
	if res.IsFailure() {
		status := http.StatusInternalServerError
		if res.Err().Code == domain.ErrRefreshTokenNotFound.Code {
			status = http.StatusNotFound
		}
		renderProblem(w, r, status, res.Err())
		return
	}

	render.NoContent(w, r)
}

func decodeBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := render.DecodeJSON(r.Body, dst); err != nil {
		renderProblem(w, r, http.StatusBadRequest, errInvalidRequest)
		return false
	}
	return true
}
