package service

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alfredhq/alfred/internal/model"
	"github.com/alfredhq/alfred/internal/repository"
)

func TestProjectService(t *testing.T) {
	svc := NewProjectService(repository.NewProjectRepo(newTestDB(t)))
	svc.now = func() time.Time { return date(2026, time.October, 19) }
	ctx := context.Background()

	past := date(2026, time.October, 1)
	assert.ErrorIs(t, svc.CreateProject(ctx, &model.Project{UserID: "u1", Title: "Carro", TargetAmount: decimal.NewFromInt(1), Deadline: &past}), ErrInvalidInput)
	assert.ErrorIs(t, svc.CreateProject(ctx, &model.Project{UserID: "u1", Title: "Carro"}), ErrInvalidInput)

	today := date(2026, time.October, 19)
	p := &model.Project{UserID: "u1", Title: "Carro", TargetAmount: decimal.NewFromInt(40000), Deadline: &today}
	require.NoError(t, svc.CreateProject(ctx, p))
	assert.Equal(t, model.ProjectGoal, p.Category)

	_, err := svc.Contribute(ctx, "u1", p.ID, decimal.Zero)
	assert.ErrorIs(t, err, ErrInvalidInput)
	_, err = svc.Contribute(ctx, "u2", p.ID, decimal.NewFromInt(10))
	assert.ErrorIs(t, err, ErrForbidden)

	got, err := svc.Contribute(ctx, "u1", p.ID, decimal.NewFromInt(10000))
	require.NoError(t, err)
	assert.InDelta(t, 0.25, got.Progress(), 1e-9)

	require.NoError(t, svc.Delete(ctx, "u1", p.ID))
	list, err := svc.List(ctx, "u1")
	require.NoError(t, err)
	assert.Empty(t, list)
}
