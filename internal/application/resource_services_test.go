package application

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/accadex/accadex/internal/domain/entity"
	"github.com/accadex/accadex/internal/domain/repository"
	"github.com/accadex/accadex/internal/domain/repository/mockrepo"
	"github.com/accadex/accadex/internal/infrastructure/memory"
)

func TestMatchService_createDefaultsDate(t *testing.T) {
	store := memory.NewStore()
	svc := NewMatchService(store.Matches(), newMockClock())
	ctx := context.Background()

	m, err := svc.Create(ctx, CreateMatchInput{Opponent: "Rivals", Result: entity.ResultWin, Score: "2-1", Player: "p1"})
	require.NoError(t, err)
	assert.NotEmpty(t, m.ID)
	assert.Equal(t, testNow, m.Date)

	older := testNow.Add(-48 * time.Hour)
	_, err = svc.Create(ctx, CreateMatchInput{Opponent: "Old", Result: entity.ResultLoss, Score: "0-1", Player: "p1", Date: &older})
	require.NoError(t, err)

	list, err := svc.List(ctx, "p1")
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "Rivals", list[0].Opponent)
	assert.Equal(t, older, list[1].Date)
}

func TestMatchService_invalidReference(t *testing.T) {
	repo := &mockrepo.Matches{}
	repo.On("Create", mock.Anything, mock.Anything).Return(repository.ErrInvalidID)

	_, err := NewMatchService(repo, newMockClock()).Create(context.Background(), CreateMatchInput{Player: "bad"})
	assert.ErrorIs(t, err, ErrInvalidReference)
}

func TestScheduleService_lifecycle(t *testing.T) {
	store := memory.NewStore()
	svc := NewScheduleService(store.Schedules(), newMockClock())
	ctx := context.Background()

	later, err := svc.Create(ctx, CreateScheduleInput{Player: "p1", Opponent: "Later", Date: testNow.Add(72 * time.Hour)})
	require.NoError(t, err)
	assert.Equal(t, entity.FixtureFriendly, later.Type)
	assert.Equal(t, entity.StatusScheduled, later.Status)
	assert.Equal(t, testNow, later.CreatedAt)

	sooner, err := svc.Create(ctx, CreateScheduleInput{Player: "p1", Opponent: "Sooner", Date: testNow.Add(24 * time.Hour), Type: entity.FixtureLeague})
	require.NoError(t, err)

	list, err := svc.List(ctx, "p1")
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, sooner.ID, list[0].ID)

	require.NoError(t, svc.Delete(ctx, sooner.ID))
	assert.ErrorIs(t, svc.Delete(ctx, sooner.ID), ErrScheduleNotFound)

	list, err = svc.List(ctx, "p1")
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, later.ID, list[0].ID)
}

func TestScheduleService_deleteStoreFailure(t *testing.T) {
	repo := &mockrepo.Schedules{}
	repo.On("GetByID", mock.Anything, "s1").Return(nil, errors.New("connection reset"))

	err := NewScheduleService(repo, newMockClock()).Delete(context.Background(), "s1")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrScheduleNotFound)
	repo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestInsightService(t *testing.T) {
	store := memory.NewStore()
	svc := NewInsightService(store.Insights(), newMockClock())
	ctx := context.Background()

	in, err := svc.Create(ctx, CreateInsightInput{Title: "Hydrate", Description: "Drink more", RelatedPlayer: "p1"})
	require.NoError(t, err)
	assert.Equal(t, entity.InsightPerformance, in.Type)
	assert.Equal(t, testNow, in.Date)

	list, err := svc.List(ctx, "p1")
	require.NoError(t, err)
	require.Len(t, list, 1)

	list, err = svc.List(ctx, "p2")
	require.NoError(t, err)
	assert.NotNil(t, list)
	assert.Empty(t, list)
}
