//go:build integration

package mongo

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go/modules/mongodb"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/accadex/accadex/internal/domain/entity"
	"github.com/accadex/accadex/internal/domain/repository"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	ctx := context.Background()

	container, err := mongodb.Run(ctx, "mongo:7")
	require.NoError(t, err)
	t.Cleanup(func() { _ = container.Terminate(context.Background()) })

	uri, err := container.ConnectionString(ctx)
	require.NoError(t, err)

	s := NewStore(uri, "accadex_test", nil)
	t.Cleanup(func() { _ = s.Close(context.Background()) })
	return s
}

func TestStore_usersAndSchedules(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.Ping(ctx))

	u := &entity.User{Name: "Demo", Email: "demo@accadex.com", Password: "hash", Role: entity.RolePlayer, CreatedAt: time.Now()}
	require.NoError(t, s.Users().Create(ctx, u))
	assert.Len(t, u.ID, 24)

	err := s.Users().Create(ctx, &entity.User{Name: "Dup", Email: "demo@accadex.com"})
	assert.ErrorIs(t, err, repository.ErrDuplicateEmail)

	got, err := s.Users().GetByEmail(ctx, "demo@accadex.com")
	require.NoError(t, err)
	assert.Equal(t, u.ID, got.ID)

	now := time.Now().UTC().Truncate(time.Millisecond)
	later := &entity.Schedule{Player: u.ID, Opponent: "later", Date: now.Add(48 * time.Hour), Type: entity.FixtureLeague, Status: entity.StatusScheduled}
	sooner := &entity.Schedule{Player: u.ID, Opponent: "sooner", Date: now.Add(24 * time.Hour), Type: entity.FixtureFriendly, Status: entity.StatusScheduled}
	require.NoError(t, s.Schedules().Create(ctx, later))
	require.NoError(t, s.Schedules().Create(ctx, sooner))

	list, err := s.Schedules().ListByPlayer(ctx, u.ID)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "sooner", list[0].Opponent)

	require.NoError(t, s.Schedules().Delete(ctx, sooner.ID))
	assert.ErrorIs(t, s.Schedules().Delete(ctx, sooner.ID), repository.ErrNotFound)
	assert.ErrorIs(t, s.Schedules().Delete(ctx, primitive.NewObjectID().Hex()), repository.ErrNotFound)
}

func TestStore_matchesNewestFirst(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	player := primitive.NewObjectID().Hex()
	now := time.Now().UTC()

	require.NoError(t, s.Matches().CreateMany(ctx, []*entity.Match{
		{Opponent: "old", Result: entity.ResultLoss, Score: "0-1", Player: player, Date: now.Add(-72 * time.Hour)},
		{Opponent: "new", Result: entity.ResultWin, Score: "2-0", Player: player, Date: now},
	}))

	list, err := s.Matches().ListByPlayer(ctx, player)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "new", list[0].Opponent)
}
