package search

import (
	"context"
	"testing"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/accadex/accadex/internal/domain/entity"
	"github.com/accadex/accadex/internal/testutils"
)

func newIndex(t *testing.T) (*UserIndex, *testutils.FakeElasticsearchServer) {
	t.Helper()
	fake := testutils.NewFakeElasticsearchServer()
	t.Cleanup(fake.Close)

	es, err := elasticsearch.NewClient(elasticsearch.Config{Addresses: []string{fake.URL()}})
	require.NoError(t, err)
	return NewUserIndex(es, "users"), fake
}

func TestUserIndex_indexAndSearch(t *testing.T) {
	idx, fake := newIndex(t)
	ctx := context.Background()

	require.NoError(t, idx.Index(ctx, entity.UserSummary{ID: "1", Name: "Asha Patel", Email: "asha@example.com", Academy: "North", Role: entity.RolePlayer}))
	require.NoError(t, idx.Index(ctx, entity.UserSummary{ID: "2", Name: "Mike Stone", Email: "mike@example.com", Academy: "North", Role: entity.RoleCoach}))
	require.NoError(t, idx.Index(ctx, entity.UserSummary{ID: "1", Name: "Asha Patel", Email: "asha@example.com", Academy: "South", Role: entity.RolePlayer}))
	assert.Equal(t, 2, fake.Count("users"))

	got, err := idx.Search(ctx, "asha", 10)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "1", got[0].ID)
	assert.Equal(t, "South", got[0].Academy)

	got, err = idx.Search(ctx, "north", 10)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, entity.RoleCoach, got[0].Role)

	got, err = idx.Search(ctx, "zzz", 10)
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}
