package application

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/accadex/accadex/internal/domain/entity"
	"github.com/accadex/accadex/internal/infrastructure/memory"
	"github.com/accadex/accadex/pkg/helpers"
)

func TestSeedDemo(t *testing.T) {
	store := memory.NewStore()
	ctx := context.Background()
	clk := newMockClock()

	old, err := NewAuthService(store, helpers.NewJWTManager("s", 0), clk, nil).Register(ctx, RegisterInput{Name: "Old", Email: "old@example.com", Password: "pw"})
	require.NoError(t, err)
	require.NoError(t, store.Schedules().Create(ctx, &entity.Schedule{Player: old.User.ID, Opponent: "Kept", Date: testNow}))

	u, err := SeedDemo(ctx, store, clk)
	require.NoError(t, err)
	assert.Equal(t, DemoEmail, u.Email)
	assert.True(t, helpers.CompareHashAndPassword(u.Password, DemoPassword))

	_, err = store.Users().GetByEmail(ctx, "old@example.com")
	assert.Error(t, err)
	oldMatches, err := store.Matches().ListByPlayer(ctx, old.User.ID)
	require.NoError(t, err)
	assert.Empty(t, oldMatches)
	oldSchedules, err := store.Schedules().ListByPlayer(ctx, old.User.ID)
	require.NoError(t, err)
	assert.Len(t, oldSchedules, 1)

	matches, err := store.Matches().ListByPlayer(ctx, u.ID)
	require.NoError(t, err)
	assert.Len(t, matches, 6)
	assert.Equal(t, "City Rivals FC", matches[0].Opponent)

	insights, err := store.Insights().ListByPlayer(ctx, u.ID)
	require.NoError(t, err)
	assert.Len(t, insights, 4)

	// seeding twice leaves exactly one demo account
	_, err = SeedDemo(ctx, store, clk)
	require.NoError(t, err)
	again, err := store.Users().GetByEmail(ctx, DemoEmail)
	require.NoError(t, err)
	assert.NotEqual(t, u.ID, again.ID)
}
