package services

import (
	"context"
	"errors"
	"log/slog"

	"github.com/google/uuid"

	"github.com/surveybasket/api/internal/core/domain"
	"github.com/surveybasket/api/internal/core/ports"
)

type UserService struct {
	repo ports.UserRepository
	log  *slog.Logger
}

func NewUserService(repo ports.UserRepository, log *slog.Logger) *UserService {
	return &UserService{
		repo: repo,
		log:  log,
	}
}

func (s *UserService) Register(ctx context.Context, input ports.RegisterInput) domain.Result[domain.User] {
	passwordHash, err := HashPassword(input.Password)
	if err != nil {
		s.log.Error("failed to hash password", slog.String("err", err.Error()))
		return domain.Failure[domain.User](domain.ErrInternal)
	}

	user := &domain.User{
		Email:        input.Email,
		Name:         input.Name,
		PasswordHash: passwordHash,
	}

	if err := s.repo.Create(ctx, user); err != nil {
		if errors.Is(err, ports.ErrDuplicateEmail) {
			return domain.Failure[domain.User](domain.ErrDuplicateEmail)
		}
		s.log.Error("failed to create user", slog.String("err", err.Error()))
		return domain.Failure[domain.User](domain.ErrInternal)
	}

	return domain.Success(*user)
}

func (s *UserService) GetByID(ctx context.Context, id uuid.UUID) domain.Result[domain.User] {
	user, err := s.repo.GetByID(ctx, id.String())
	if err != nil {
		s.log.Error("failed to get user", slog.String("err", err.Error()))
		return domain.Failure[domain.User](domain.ErrInternal)
	}
	if user == nil {
		return domain.Failure[domain.User](domain.ErrUserNotFound)
	}
	return domain.Success(*user)
}

var _ ports.UserService = (*UserService)(nil)
