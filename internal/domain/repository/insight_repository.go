package repository

import (
	"context"

	"github.com/accadex/accadex/internal/domain/entity"
)

// InsightRepository stores insights.
type InsightRepository interface {
	Create(ctx context.Context, in *entity.Insight) error
	CreateMany(ctx context.Context, ins []*entity.Insight) error
	// ListByPlayer returns the player's insights, newest first.
	ListByPlayer(ctx context.Context, playerID string) ([]entity.Insight, error)
	DeleteAll(ctx context.Context) error
}
