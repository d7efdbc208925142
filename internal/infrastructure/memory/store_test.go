package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/accadex/accadex/internal/domain/entity"
	"github.com/accadex/accadex/internal/domain/repository"
)

func TestUsers_duplicateEmail(t *testing.T) {
	ctx := context.Background()
	s := NewStore()

	first := &entity.User{Name: "A", Email: "a@example.com", Role: entity.RolePlayer}
	require.NoError(t, s.Users().Create(ctx, first))
	assert.NotEmpty(t, first.ID)

	err := s.Users().Create(ctx, &entity.User{Name: "B", Email: "A@example.com"})
	assert.ErrorIs(t, err, repository.ErrDuplicateEmail)

	got, err := s.Users().GetByEmail(ctx, "a@example.com")
	require.NoError(t, err)
	assert.Equal(t, first.ID, got.ID)

	_, err = s.Users().GetByID(ctx, "missing")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestMatches_newestFirst(t *testing.T) {
	ctx := context.Background()
	s := NewStore()
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	err := s.Matches().CreateMany(ctx, []*entity.Match{
		{Opponent: "old", Player: "p1", Date: now.Add(-48 * time.Hour)},
		{Opponent: "new", Player: "p1", Date: now},
		{Opponent: "other player", Player: "p2", Date: now},
		{Opponent: "mid", Player: "p1", Date: now.Add(-24 * time.Hour)},
	})
	require.NoError(t, err)

	got, err := s.Matches().ListByPlayer(ctx, "p1")
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, "new", got[0].Opponent)
	assert.Equal(t, "mid", got[1].Opponent)
	assert.Equal(t, "old", got[2].Opponent)
}

func TestSchedules_earliestFirstAndDelete(t *testing.T) {
	ctx := context.Background()
	s := NewStore()
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	later := &entity.Schedule{Player: "p1", Opponent: "later", Date: now.Add(72 * time.Hour)}
	sooner := &entity.Schedule{Player: "p1", Opponent: "sooner", Date: now.Add(24 * time.Hour)}
	require.NoError(t, s.Schedules().Create(ctx, later))
	require.NoError(t, s.Schedules().Create(ctx, sooner))

	got, err := s.Schedules().ListByPlayer(ctx, "p1")
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "sooner", got[0].Opponent)

	require.NoError(t, s.Schedules().Delete(ctx, sooner.ID))
	assert.ErrorIs(t, s.Schedules().Delete(ctx, sooner.ID), repository.ErrNotFound)

	got, err = s.Schedules().ListByPlayer(ctx, "p1")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, later.ID, got[0].ID)
}

func TestInsights_emptyListIsNotNil(t *testing.T) {
	got, err := NewStore().Insights().ListByPlayer(context.Background(), "nobody")
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}
