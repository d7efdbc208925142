package application

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/itbasis/go-clock"

	"github.com/accadex/accadex/internal/domain/entity"
	repo "github.com/accadex/accadex/internal/domain/repository"
)

type CreateScheduleInput struct {
	Player   string
	Date     time.Time
	Opponent string
	Type     entity.FixtureType
}

type ScheduleService struct {
	Repo  repo.ScheduleRepository
	Clock clock.Clock
}

func NewScheduleService(r repo.ScheduleRepository, clk clock.Clock) *ScheduleService {
	return &ScheduleService{Repo: r, Clock: clk}
}

// List returns the player's fixtures, earliest first.
func (s *ScheduleService) List(ctx context.Context, playerID string) ([]entity.Schedule, error) {
	out, err := s.Repo.ListByPlayer(ctx, playerID)
	if err != nil {
		return nil, fmt.Errorf("list schedules: %w", err)
	}
	return out, nil
}

func (s *ScheduleService) Create(ctx context.Context, in CreateScheduleInput) (*entity.Schedule, error) {
	typ := in.Type
	if typ == "" {
		typ = entity.FixtureFriendly
	}
	sc := &entity.Schedule{
		Player:    in.Player,
		Date:      in.Date.UTC(),
		Opponent:  in.Opponent,
		Type:      typ,
		Status:    entity.StatusScheduled,
		CreatedAt: s.Clock.Now().UTC(),
	}
	if err := s.Repo.Create(ctx, sc); err != nil {
		if errors.Is(err, repo.ErrInvalidID) {
			return nil, ErrInvalidReference
		}
		return nil, fmt.Errorf("create schedule: %w", err)
	}
	return sc, nil
}

// Delete removes a fixture. The existence check and the delete are separate
// calls, so a concurrent delete surfaces as ErrScheduleNotFound.
func (s *ScheduleService) Delete(ctx context.Context, id string) error {
	if _, err := s.Repo.GetByID(ctx, id); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return ErrScheduleNotFound
		}
		return fmt.Errorf("get schedule: %w", err)
	}
	if err := s.Repo.Delete(ctx, id); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return ErrScheduleNotFound
		}
		return fmt.Errorf("delete schedule: %w", err)
	}
	return nil
}
