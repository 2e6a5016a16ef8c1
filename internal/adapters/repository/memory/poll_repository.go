package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/surveybasket/api/internal/core/domain"
	"github.com/surveybasket/api/internal/core/ports"
)

type PollRepository struct {
	mu    sync.RWMutex
	polls map[uuid.UUID]*domain.Poll
}

func NewPollRepository() *PollRepository {
	return &PollRepository{
		polls: make(map[uuid.UUID]*domain.Poll),
	}
}

func (r *PollRepository) Save(_ context.Context, poll *domain.Poll) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	poll.CreatedAt = time.Now().UTC()
	p := *poll
	r.polls[p.ID] = &p
	return nil
}

func (r *PollRepository) GetByID(_ context.Context, id uuid.UUID) (*domain.Poll, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	poll, ok := r.polls[id]
	if !ok {
		return nil, nil
	}
	p := *poll
	return &p, nil
}

func (r *PollRepository) GetAll(_ context.Context) ([]*domain.Poll, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	polls := make([]*domain.Poll, 0, len(r.polls))
	for _, poll := range r.polls {
		p := *poll
		polls = append(polls, &p)
	}
	sort.Slice(polls, func(i, j int) bool {
		return polls[i].CreatedAt.After(polls[j].CreatedAt)
	})
	return polls, nil
}

func (r *PollRepository) Update(_ context.Context, poll *domain.Poll) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.polls[poll.ID]
	if !ok {
		return false, nil
	}

	now := time.Now().UTC()
	existing.Title = poll.Title
	existing.Summary = poll.Summary
	existing.StartsAt = poll.StartsAt
	existing.EndsAt = poll.EndsAt
	existing.UpdatedAt = &now
	return true, nil
}

func (r *PollRepository) Delete(_ context.Context, id uuid.UUID) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.polls[id]; !ok {
		return false, nil
	}
	delete(r.polls, id)
	return true, nil
}

func (r *PollRepository) TogglePublish(_ context.Context, id uuid.UUID) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	poll, ok := r.polls[id]
	if !ok {
		return false, nil
	}
	now := time.Now().UTC()
	poll.IsPublished = !poll.IsPublished
	poll.UpdatedAt = &now
	return true, nil
}

var _ ports.PollRepository = (*PollRepository)(nil)
