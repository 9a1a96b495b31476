package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/xavierca1/admissions-api/internal/entity"
	"github.com/xavierca1/admissions-api/internal/infra/database/memory"
)

func TestResultSessionLifecycle(t *testing.T) {
	ctx := context.Background()
	uc := NewResultSessionUseCase(memory.NewResultSessionRepository(), zap.NewNop())

	first, err := uc.Create(ctx, ResultSessionInput{Label: "Board Results 2025", Year: 2025})
	require.NoError(t, err)
	assert.Equal(t, "board-results-2025", first.Slug)
	assert.Equal(t, []string{}, first.Images)

	second, err := uc.Create(ctx, ResultSessionInput{Label: "Board Results 2025"})
	require.NoError(t, err)
	assert.Equal(t, "board-results-2025-1", second.Slug)

	got, err := uc.GetBySlug(ctx, "board-results-2025-1")
	require.NoError(t, err)
	assert.Equal(t, second.ID, got.ID)

	updated, err := uc.Update(ctx, second.ID, ResultSessionInput{
		Label:  "Board Results 2026",
		Images: []string{"https://cdn.example.com/r1.jpg"},
	})
	require.NoError(t, err)
	assert.Equal(t, "board-results-2026", updated.Slug)
	assert.Len(t, updated.Images, 1)

	require.NoError(t, uc.Delete(ctx, first.ID))
	assert.ErrorIs(t, uc.Delete(ctx, first.ID), entity.ErrNotFound)

	all, err := uc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestResultSessionValidation(t *testing.T) {
	uc := NewResultSessionUseCase(memory.NewResultSessionRepository(), zap.NewNop())

	_, err := uc.Create(context.Background(), ResultSessionInput{Images: []string{"not a url"}})

	var de *DomainError
	require.True(t, errors.As(err, &de))
	assert.Equal(t, CodeValidation, de.Code)
}

func TestResultSessionGetBySlugNotFound(t *testing.T) {
	uc := NewResultSessionUseCase(memory.NewResultSessionRepository(), zap.NewNop())

	_, err := uc.GetBySlug(context.Background(), "missing")

	assert.ErrorIs(t, err, entity.ErrNotFound)
}
