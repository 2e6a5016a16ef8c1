package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/surveybasket/api/internal/core/domain"
	"github.com/surveybasket/api/internal/core/ports"
)

type pollRepository struct {
	db *sql.DB
}

func NewPollRepository(db *sql.DB) ports.PollRepository {
	return &pollRepository{
		db: db,
	}
}

func (r *pollRepository) Save(ctx context.Context, poll *domain.Poll) error {
	query := `
		INSERT INTO polls (id, title, summary, is_published, starts_at, ends_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING created_at
	`
	err := r.db.QueryRowContext(ctx, query, poll.ID, poll.Title, poll.Summary, poll.IsPublished, poll.StartsAt, poll.EndsAt).Scan(&poll.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert poll: %w", err)
	}
	return nil
}

func (r *pollRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Poll, error) {
	query := `
		SELECT id, title, summary, is_published, starts_at, ends_at, created_at, updated_at
		FROM polls
		WHERE id = $1
	`
	poll := &domain.Poll{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&poll.ID,
		&poll.Title,
		&poll.Summary,
		&poll.IsPublished,
		&poll.StartsAt,
		&poll.EndsAt,
		&poll.CreatedAt,
		&poll.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get poll: %w", err)
	}
	return poll, nil
}

func (r *pollRepository) GetAll(ctx context.Context) ([]*domain.Poll, error) {
	query := `
		SELECT id, title, summary, is_published, starts_at, ends_at, created_at, updated_at
		FROM polls
		ORDER BY created_at DESC
	`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list polls: %w", err)
	}
	defer rows.Close()

	polls := []*domain.Poll{}
	for rows.Next() {
		poll := &domain.Poll{}
		err := rows.Scan(
			&poll.ID,
			&poll.Title,
			&poll.Summary,
			&poll.IsPublished,
			&poll.StartsAt,
			&poll.EndsAt,
			&poll.CreatedAt,
			&poll.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan poll: %w", err)
		}
		polls = append(polls, poll)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate polls: %w", err)
	}

	return polls, nil
}

func (r *pollRepository) Update(ctx context.Context, poll *domain.Poll) (bool, error) {
	query := `
		UPDATE polls
		SET title = $2, summary = $3, starts_at = $4, ends_at = $5, updated_at = $6
		WHERE id = $1
	`
	res, err := r.db.ExecContext(ctx, query, poll.ID, poll.Title, poll.Summary, poll.StartsAt, poll.EndsAt, time.Now().UTC())
	if err != nil {
		return false, fmt.Errorf("failed to update poll: %w", err)
	}
	return rowMatched(res)
}

func (r *pollRepository) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM polls WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("failed to delete poll: %w", err)
	}
	return rowMatched(res)
}

func (r *pollRepository) TogglePublish(ctx context.Context, id uuid.UUID) (bool, error) {
	query := `
		UPDATE polls
		SET is_published = NOT is_published, updated_at = $2
		WHERE id = $1
	`
	res, err := r.db.ExecContext(ctx, query, id, time.Now().UTC())
	if err != nil {
		return false, fmt.Errorf("failed to toggle poll publish state: %w", err)
	}
	return rowMatched(res)
}

func rowMatched(res sql.Result) (bool, error) {
	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read affected rows: %w", err)
	}
	return affected == 1, nil
}
