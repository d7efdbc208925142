package repository

import (
	"context"

	"github.com/accadex/accadex/internal/domain/entity"
)

// MatchRepository stores played matches.
type MatchRepository interface {
	Create(ctx context.Context, m *entity.Match) error
	CreateMany(ctx context.Context, ms []*entity.Match) error
	// ListByPlayer returns the player's matches, newest first.
	ListByPlayer(ctx context.Context, playerID string) ([]entity.Match, error)
	DeleteAll(ctx context.Context) error
}
