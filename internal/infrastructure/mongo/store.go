package mongo

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/accadex/accadex/internal/domain/repository"
)

// Store is the MongoDB implementation of repository.Store.
type Store struct {
	conn      *Conn
	users     *UserRepository
	matches   *MatchRepository
	schedules *ScheduleRepository
	insights  *InsightRepository
}

// NewStore does not dial; the connection is opened by the first repository call.
func NewStore(uri, dbName string, logger *logrus.Logger) *Store {
	conn := NewConn(uri, dbName, logger)
	return &Store{
		conn:      conn,
		users:     NewUserRepository(conn),
		matches:   NewMatchRepository(conn),
		schedules: NewScheduleRepository(conn),
		insights:  NewInsightRepository(conn),
	}
}

func (s *Store) Users() repository.UserRepository         { return s.users }
func (s *Store) Matches() repository.MatchRepository      { return s.matches }
func (s *Store) Schedules() repository.ScheduleRepository { return s.schedules }
func (s *Store) Insights() repository.InsightRepository   { return s.insights }

func (s *Store) Ping(ctx context.Context) error  { return s.conn.Ping(ctx) }
func (s *Store) Close(ctx context.Context) error { return s.conn.Close(ctx) }

var _ repository.Store = (*Store)(nil)
