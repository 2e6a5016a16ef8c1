package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/surveybasket/api/internal/core/domain"
)

func TestSuccessResult(t *testing.T) {
	res := domain.Success(42)

	assert.True(t, res.IsSuccess())
	assert.False(t, res.IsFailure())
	assert.Equal(t, 42, res.Value())
	assert.Equal(t, domain.ErrNone, res.Err())
}

func TestFailureResult(t *testing.T) {
	res := domain.Failure[int](domain.ErrInvalidCredentials)

	assert.True(t, res.IsFailure())
	assert.False(t, res.IsSuccess())
	assert.Equal(t, domain.ErrInvalidCredentials, res.Err())
}

func TestFailureResultValuePanics(t *testing.T) {
	res := domain.Failure[string](domain.ErrInvalidToken)

	require.Panics(t, func() {
		_ = res.Value()
	})
}

func TestFailureWithNoErrorPanics(t *testing.T) {
	require.Panics(t, func() {
		domain.Failure[int](domain.ErrNone)
	})
}

func TestErrorIsNone(t *testing.T) {
	assert.True(t, domain.ErrNone.IsNone())
	assert.False(t, domain.ErrUserNotFound.IsNone())
}
