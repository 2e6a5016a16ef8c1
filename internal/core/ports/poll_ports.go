package ports

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/surveybasket/api/internal/core/domain"
)

type PollRepository interface {
	Save(ctx context.Context, poll *domain.Poll) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Poll, error)
	GetAll(ctx context.Context) ([]*domain.Poll, error)
	// Update and the operations below report whether a row matched.
	Update(ctx context.Context, poll *domain.Poll) (bool, error)
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
	TogglePublish(ctx context.Context, id uuid.UUID) (bool, error)
}

type PollInput struct {
	Title    string
	Summary  string
	StartsAt *time.Time
	EndsAt   *time.Time
}

// PollService is a thin pass-through between HTTP verbs and storage rows.
type PollService interface {
	GetAll(ctx context.Context) domain.Result[[]*domain.Poll]
	GetByID(ctx context.Context, id uuid.UUID) domain.Result[domain.Poll]
	Create(ctx context.Context, input PollInput) domain.Result[domain.Poll]
	Update(ctx context.Context, id uuid.UUID, input PollInput) domain.Result[domain.Unit]
	Delete(ctx context.Context, id uuid.UUID) domain.Result[domain.Unit]
	TogglePublish(ctx context.Context, id uuid.UUID) domain.Result[domain.Unit]
}
