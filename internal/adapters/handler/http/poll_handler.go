package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/google/uuid"

	"github.com/surveybasket/api/internal/core/domain"
	"github.com/surveybasket/api/internal/core/ports"
)

type PollHandler struct {
	service ports.PollService
}

func NewPollHandler(service ports.PollService) *PollHandler {
	return &PollHandler{
		service: service,
	}
}

type pollRequest struct {
	Title    string     `json:"title"`
	Summary  string     `json:"summary"`
	StartsAt *time.Time `json:"starts_at,omitempty"`
	EndsAt   *time.Time `json:"ends_at,omitempty"`
}

func (h *PollHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	res := h.service.GetAll(r.Context())
	if res.IsFailure() {
		renderProblem(w, r, pollStatus(res.Err()), res.Err())
		return
	}
	render.JSON(w, r, res.Value())
}

func (h *PollHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pollID(w, r)
	if !ok {
		return
	}

	res := h.service.GetByID(r.Context(), id)
	if res.IsFailure() {
		renderProblem(w, r, pollStatus(res.Err()), res.Err())
		return
	}
	render.JSON(w, r, res.Value())
}

func (h *PollHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req pollRequest
	if !decodeBody(w, r, &req) {
		return
	}

	res := h.service.Create(r.Context(), ports.PollInput{
		Title:    req.Title,
		Summary:  req.Summary,
		StartsAt: req.StartsAt,
		EndsAt:   req.EndsAt,
	})
	if res.IsFailure() {
		renderProblem(w, r, pollStatus(res.Err()), res.Err())
		return
	}

	render.Status(r, http.StatusCreated)
	render.JSON(w, r, res.Value())
}

func (h *PollHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pollID(w, r)
	if !ok {
		return
	}

	var req pollRequest
	if !decodeBody(w, r, &req) {
		return
	}

	res := h.service.Update(r.Context(), id, ports.PollInput{
		Title:    req.Title,
		Summary:  req.Summary,
		StartsAt: req.StartsAt,
		EndsAt:   req.EndsAt,
	})
	if res.IsFailure() {
		renderProblem(w, r, pollStatus(res.Err()), res.Err())
		return
	}
	render.NoContent(w, r)
}

func (h *PollHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pollID(w, r)
	if !ok {
		return
	}

	res := h.service.Delete(r.Context(), id)
	if res.IsFailure() {
		renderProblem(w, r, pollStatus(res.Err()), res.Err())
		return
	}
	render.NoContent(w, r)
}

func (h *PollHandler) TogglePublish(w http.ResponseWriter, r *http.Request) {
	id, ok := pollID(w, r)
	if !ok {
		return
	}

	res := h.service.TogglePublish(r.Context(), id)
	if res.IsFailure() {
		renderProblem(w, r, pollStatus(res.Err()), res.Err())
		return
	}
	render.NoContent(w, r)
}

// pollID parses the route id. An unparsable id maps to the same 404 a
// missing poll would: the resource does not exist either way.
func pollID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		renderProblem(w, r, http.StatusNotFound, domain.ErrPollNotFound)
		return uuid.Nil, false
	}
	return id, true
}
