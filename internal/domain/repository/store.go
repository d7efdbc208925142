package repository

import "context"

// Store bundles the repositories of one storage backend together with its
// connection lifecycle.
type Store interface {
	Users() UserRepository
	Matches() MatchRepository
	Schedules() ScheduleRepository
	Insights() InsightRepository
	Ping(ctx context.Context) error
	Close(ctx context.Context) error
}
