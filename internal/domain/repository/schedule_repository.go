package repository

import (
	"context"

	"github.com/accadex/accadex/internal/domain/entity"
)

// ScheduleRepository stores upcoming fixtures.
type ScheduleRepository interface {
	Create(ctx context.Context, s *entity.Schedule) error
	// ListByPlayer returns the player's fixtures, earliest first.
	ListByPlayer(ctx context.Context, playerID string) ([]entity.Schedule, error)
	GetByID(ctx context.Context, id string) (*entity.Schedule, error)
	// Delete returns ErrNotFound if nothing was removed.
	Delete(ctx context.Context, id string) error
}
