package memory

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/surveybasket/api/internal/core/domain"
	"github.com/surveybasket/api/internal/core/ports"
)

type UserRepository struct {
	mu    sync.RWMutex
	users map[uuid.UUID]*domain.User
}

func NewUserRepository() *UserRepository {
	return &UserRepository{
		users: make(map[uuid.UUID]*domain.User),
	}
}

func (r *UserRepository) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, user := range r.users {
		if user.Email == email && user.DeletedAt == nil {
			u := *user
			return &u, nil
		}
	}
	return nil, nil
}

func (r *UserRepository) GetByID(_ context.Context, id string) (*domain.User, error) {
	userID, err := uuid.Parse(id)
	if err != nil {
		return nil, nil
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.users[userID]
	if !ok || user.DeletedAt != nil {
		return nil, nil
	}
	u := *user
	return &u, nil
}

func (r *UserRepository) Create(_ context.Context, user *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.users {
		if existing.Email == user.Email && existing.DeletedAt == nil {
			return ports.ErrDuplicateEmail
		}
	}

	user.ID = uuid.New()
	user.CreatedAt = time.Now().UTC()
	u := *user
	r.users[u.ID] = &u
	return nil
}

var _ ports.UserRepository = (*UserRepository)(nil)
