package services

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/surveybasket/api/internal/core/domain"
	"github.com/surveybasket/api/internal/core/ports"
)

const (
	maxPollTitleLen   = 100
	maxPollSummaryLen = 500
)

type pollService struct {
	repo ports.PollRepository
	log  *slog.Logger
}

func NewPollService(repo ports.PollRepository, log *slog.Logger) ports.PollService {
	return &pollService{
		repo: repo,
		log:  log,
	}
}

func (s *pollService) GetAll(ctx context.Context) domain.Result[[]*domain.Poll] {
	polls, err := s.repo.GetAll(ctx)
	if err != nil {
		s.log.Error("failed to list polls", slog.String("err", err.Error()))
		return domain.Failure[[]*domain.Poll](domain.ErrInternal)
	}
	return domain.Success(polls)
}

func (s *pollService) GetByID(ctx context.Context, id uuid.UUID) domain.Result[domain.Poll] {
	poll, err := s.repo.GetByID(ctx, id)
	if err != nil {
		s.log.Error("failed to get poll", slog.String("err", err.Error()))
		return domain.Failure[domain.Poll](domain.ErrInternal)
	}
	if poll == nil {
		return domain.Failure[domain.Poll](domain.ErrPollNotFound)
	}
	return domain.Success(*poll)
}

func (s *pollService) Create(ctx context.Context, input ports.PollInput) domain.Result[domain.Poll] {
	if !validPollInput(input) {
		return domain.Failure[domain.Poll](domain.ErrInvalidPoll)
	}

	poll := &domain.Poll{
		ID:       uuid.New(),
		Title:    input.Title,
		Summary:  input.Summary,
		StartsAt: input.StartsAt,
		EndsAt:   input.EndsAt,
	}

	if err := s.repo.Save(ctx, poll); err != nil {
		s.log.Error("failed to create poll", slog.String("err", err.Error()))
		return domain.Failure[domain.Poll](domain.ErrInternal)
	}

	return domain.Success(*poll)
}

func (s *pollService) Update(ctx context.Context, id uuid.UUID, input ports.PollInput) domain.Result[domain.Unit] {
	if !validPollInput(input) {
		return domain.Failure[domain.Unit](domain.ErrInvalidPoll)
	}

	poll := &domain.Poll{
		ID:       id,
		Title:    input.Title,
		Summary:  input.Summary,
		StartsAt: input.StartsAt,
		EndsAt:   input.EndsAt,
	}

	matched, err := s.repo.Update(ctx, poll)
	if err != nil {
		s.log.Error("failed to update poll", slog.String("err", err.Error()))
		return domain.Failure[domain.Unit](domain.ErrInternal)
	}
	if !matched {
		return domain.Failure[domain.Unit](domain.ErrPollNotFound)
	}
	return domain.Success(domain.Unit{})
}

func (s *pollService) Delete(ctx context.Context, id uuid.UUID) domain.Result[domain.Unit] {
	matched, err := s.repo.Delete(ctx, id)
	if err != nil {
		s.log.Error("failed to delete poll", slog.String("err", err.Error()))
		return domain.Failure[domain.Unit](domain.ErrInternal)
	}
	if !matched {
		return domain.Failure[domain.Unit](domain.ErrPollNotFound)
	}
	return domain.Success(domain.Unit{})
}

func (s *pollService) TogglePublish(ctx context.Context, id uuid.UUID) domain.Result[domain.Unit] {
	matched, err := s.repo.TogglePublish(ctx, id)
	if err != nil {
		s.log.Error("failed to toggle poll publish state", slog.String("err", err.Error()))
		return domain.Failure[domain.Unit](domain.ErrInternal)
	}
	if !matched {
		return domain.Failure[domain.Unit](domain.ErrPollNotFound)
	}
	return domain.Success(domain.Unit{})
}

func validPollInput(input ports.PollInput) bool {
	if input.Title == "" || len(input.Title) > maxPollTitleLen {
		return false
	}
	if len(input.Summary) > maxPollSummaryLen {
		return false
	}
	return true
}
