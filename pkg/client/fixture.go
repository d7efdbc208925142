package client

import (
	"context"
	"fmt"

	"github.com/accadex/accadex/internal/domain/entity"
)

// DefaultFixtureStats are recorded when a fixture is completed without stats.
var DefaultFixtureStats = entity.MatchStats{MinutesPlayed: 90}

// CompleteFixture turns a scheduled fixture into a played match: it creates a
// Match with the fixture's opponent and date, then deletes the Schedule.
// The two calls are not atomic. If the delete fails the match stays created
// and the returned error says so.
func (c *Client) CompleteFixture(ctx context.Context, sc entity.Schedule, result entity.MatchResult, score string, stats *entity.MatchStats) (*entity.Match, error) {
	st := DefaultFixtureStats
	if stats != nil {
		st = *stats
	}
	date := sc.Date
	m, err := c.CreateMatch(ctx, NewMatch{
		Opponent: sc.Opponent,
		Result:   result,
		Score:    score,
		Player:   sc.Player,
		Stats:    st,
		Date:     &date,
	})
	if err != nil {
		return nil, fmt.Errorf("record match: %w", err)
	}
	if err := c.DeleteSchedule(ctx, sc.ID); err != nil {
		return m, fmt.Errorf("match %s recorded but fixture %s not removed: %w", m.ID, sc.ID, err)
	}
	return m, nil
}
