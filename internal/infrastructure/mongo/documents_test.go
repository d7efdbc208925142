package mongo

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/accadex/accadex/internal/domain/entity"
	"github.com/accadex/accadex/internal/domain/repository"
)

func TestObjectID_invalidHex(t *testing.T) {
	_, err := objectID("not-an-object-id")
	assert.ErrorIs(t, err, repository.ErrInvalidID)
}

func TestMatchDoc_roundTrip(t *testing.T) {
	player := primitive.NewObjectID()
	date := time.Date(2025, 5, 1, 10, 0, 0, 0, time.UTC)
	m := &entity.Match{
		Date:     date,
		Opponent: "City Rivals FC",
		Result:   entity.ResultWin,
		Score:    "3-1",
		Player:   player.Hex(),
		Stats:    entity.MatchStats{Points: 15, Assists: 5, MinutesPlayed: 90},
	}

	doc, err := newMatchDoc(m)
	require.NoError(t, err)
	assert.False(t, doc.ID.IsZero())
	assert.Equal(t, player, doc.Player)

	got := doc.toEntity()
	assert.Equal(t, doc.ID.Hex(), got.ID)
	assert.Equal(t, m.Player, got.Player)
	assert.Equal(t, m.Stats, got.Stats)
	assert.Equal(t, date, got.Date)
}

func TestMatchDoc_invalidPlayer(t *testing.T) {
	_, err := newMatchDoc(&entity.Match{Player: "123"})
	assert.ErrorIs(t, err, repository.ErrInvalidID)
}

func TestInsightDoc_optionalPlayer(t *testing.T) {
	doc, err := newInsightDoc(&entity.Insight{Title: "t", Description: "d", Type: entity.InsightHealth})
	require.NoError(t, err)
	assert.Nil(t, doc.RelatedPlayer)
	assert.Empty(t, doc.toEntity().RelatedPlayer)

	player := primitive.NewObjectID()
	doc, err = newInsightDoc(&entity.Insight{Title: "t", Description: "d", RelatedPlayer: player.Hex()})
	require.NoError(t, err)
	require.NotNil(t, doc.RelatedPlayer)
	assert.Equal(t, player.Hex(), doc.toEntity().RelatedPlayer)
}
