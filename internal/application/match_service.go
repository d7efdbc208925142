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

type CreateMatchInput struct {
	Opponent string
	Result   entity.MatchResult
	Score    string
	Player   string
	Stats    entity.MatchStats
	Date     *time.Time // nil means now
}

type MatchService struct {
	Repo  repo.MatchRepository
	Clock clock.Clock
}

func NewMatchService(r repo.MatchRepository, clk clock.Clock) *MatchService {
	return &MatchService{Repo: r, Clock: clk}
}

// List returns the player's matches, newest first.
func (s *MatchService) List(ctx context.Context, playerID string) ([]entity.Match, error) {
	ms, err := s.Repo.ListByPlayer(ctx, playerID)
	if err != nil {
		return nil, fmt.Errorf("list matches: %w", err)
	}
	return ms, nil
}

func (s *MatchService) Create(ctx context.Context, in CreateMatchInput) (*entity.Match, error) {
	date := s.Clock.Now().UTC()
	if in.Date != nil {
		date = in.Date.UTC()
	}
	m := &entity.Match{
		Date:     date,
		Opponent: in.Opponent,
		Result:   in.Result,
		Score:    in.Score,
		Player:   in.Player,
		Stats:    in.Stats,
	}
	if err := s.Repo.Create(ctx, m); err != nil {
		if errors.Is(err, repo.ErrInvalidID) {
			return nil, ErrInvalidReference
		}
		return nil, fmt.Errorf("create match: %w", err)
	}
	return m, nil
}
