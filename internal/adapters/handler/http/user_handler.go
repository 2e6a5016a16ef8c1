package http

import (
	"net/http"

	"github.com/go-chi/render"
	"github.com/google/uuid"

	"github.com/surveybasket/api/internal/core/domain"
	"github.com/surveybasket/api/internal/core/ports"
)

type UserHandler struct {
	service ports.UserService
}

func NewUserHandler(service ports.UserService) *UserHandler {
	return &UserHandler{
		service: service,
	}
}

type registerRequest struct {
	Email    string `json:"email"`
	Name     string `json:"name"`
	Password string `json:"password"`
}

func (h *UserHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if req.Email == "" || req.Password == "" {
		renderProblem(w, r, http.StatusBadRequest, errInvalidRequest)
		return
	}

	res := h.service.Register(r.Context(), ports.RegisterInput{
		Email:    req.Email,
		Name:     req.Name,
		Password: req.Password,
	})
	if res.IsFailure() {
		status := http.StatusInternalServerError
		if res.Err().Code == domain.ErrDuplicateEmail.Code {
			status = http.StatusConflict
		}
		renderProblem(w, r, status, res.Err())
		return
	}

	render.Status(r, http.StatusCreated)
	render.JSON(w, r, res.Value())
}

func (h *UserHandler) GetMe(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value(UserIDKey).(uuid.UUID)
	if !ok {
		renderProblem(w, r, http.StatusUnauthorized, domain.ErrInvalidToken)
		return
	}

	res := h.service.GetByID(r.Context(), userID)
	if res.IsFailure() {
		status := http.StatusInternalServerError
		if res.Err().Code == domain.ErrUserNotFound.Code {
			status = http.StatusNotFound
		}
		renderProblem(w, r, status, res.Err())
		return
	}

	render.JSON(w, r, res.Value())
}
