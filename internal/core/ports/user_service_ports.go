package ports

import (
	"context"

	"github.com/google/uuid"

	"github.com/surveybasket/api/internal/core/domain"
)

type RegisterInput struct {
	Email    string
	Name     string
	Password string
}

type UserService interface {
	Register(ctx context.Context, input RegisterInput) domain.Result[domain.User]
	GetByID(ctx context.Context, id uuid.UUID) domain.Result[domain.User]
}
