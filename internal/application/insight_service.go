package application

import (
	"context"
	"errors"
	"fmt"

	"github.com/itbasis/go-clock"

	"github.com/accadex/accadex/internal/domain/entity"
	repo "github.com/accadex/accadex/internal/domain/repository"
)

type CreateInsightInput struct {
	Title         string
	Description   string
	Type          entity.InsightType
	RelatedPlayer string
}

type InsightService struct {
	Repo  repo.InsightRepository
	Clock clock.Clock
}

func NewInsightService(r repo.InsightRepository, clk clock.Clock) *InsightService {
	return &InsightService{Repo: r, Clock: clk}
}

// List returns insights attached to the player, newest first.
func (s *InsightService) List(ctx context.Context, playerID string) ([]entity.Insight, error) {
	out, err := s.Repo.ListByPlayer(ctx, playerID)
	if err != nil {
		return nil, fmt.Errorf("list insights: %w", err)
	}
	return out, nil
}

func (s *InsightService) Create(ctx context.Context, in CreateInsightInput) (*entity.Insight, error) {
	typ := in.Type
	if typ == "" {
		typ = entity.InsightPerformance
	}
	ins := &entity.Insight{
		Title:         in.Title,
		Description:   in.Description,
		Type:          typ,
		Date:          s.Clock.Now().UTC(),
		RelatedPlayer: in.RelatedPlayer,
	}
	if err := s.Repo.Create(ctx, ins); err != nil {
		if errors.Is(err, repo.ErrInvalidID) {
			return nil, ErrInvalidReference
		}
		return nil, fmt.Errorf("create insight: %w", err)
	}
	return ins, nil
}
