package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/accadex/accadex/internal/domain/repository"
)

// Store is the Postgres implementation of repository.Store.
type Store struct {
	pool      *pgxpool.Pool
	users     *UserRepository
	matches   *MatchRepository
	schedules *ScheduleRepository
	insights  *InsightRepository
}

func NewStore(pool *pgxpool.Pool) *Store {
	return &Store{
		pool:      pool,
		users:     NewUserRepository(pool),
		matches:   NewMatchRepository(pool),
		schedules: NewScheduleRepository(pool),
		insights:  NewInsightRepository(pool),
	}
}

func (s *Store) Users() repository.UserRepository         { return s.users }
func (s *Store) Matches() repository.MatchRepository      { return s.matches }
func (s *Store) Schedules() repository.ScheduleRepository { return s.schedules }
func (s *Store) Insights() repository.InsightRepository   { return s.insights }

func (s *Store) Ping(ctx context.Context) error { return s.pool.Ping(ctx) }

func (s *Store) Close(ctx context.Context) error {
	s.pool.Close()
	return nil
}

var _ repository.Store = (*Store)(nil)
