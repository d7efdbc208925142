// Package memory is a process-local storage backend used for development
// (DB_DRIVER=memory) and tests. Data is lost when the process exits.
package memory

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/accadex/accadex/internal/domain/entity"
	"github.com/accadex/accadex/internal/domain/repository"
)

type Store struct {
	mu        sync.RWMutex
	users     map[string]entity.User
	matches   map[string]entity.Match
	schedules map[string]entity.Schedule
	insights  map[string]entity.Insight
}

func NewStore() *Store {
	return &Store{
		users:     map[string]entity.User{},
		matches:   map[string]entity.Match{},
		schedules: map[string]entity.Schedule{},
		insights:  map[string]entity.Insight{},
	}
}

func (s *Store) Users() repository.UserRepository         { return userRepo{s} }
func (s *Store) Matches() repository.MatchRepository      { return matchRepo{s} }
func (s *Store) Schedules() repository.ScheduleRepository { return scheduleRepo{s} }
func (s *Store) Insights() repository.InsightRepository   { return insightRepo{s} }

func (s *Store) Ping(ctx context.Context) error  { return nil }
func (s *Store) Close(ctx context.Context) error { return nil }

var _ repository.Store = (*Store)(nil)

type userRepo struct{ s *Store }

func (r userRepo) Create(ctx context.Context, u *entity.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, existing := range r.s.users {
		if strings.EqualFold(existing.Email, u.Email) {
			return repository.ErrDuplicateEmail
		}
	}
	u.ID = uuid.NewString()
	r.s.users[u.ID] = *u
	return nil
}

func (r userRepo) GetByID(ctx context.Context, id string) (*entity.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	u, ok := r.s.users[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &u, nil
}

func (r userRepo) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	for _, u := range r.s.users {
		if strings.EqualFold(u.Email, email) {
			return &u, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r userRepo) DeleteAll(ctx context.Context) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.users = map[string]entity.User{}
	return nil
}

type matchRepo struct{ s *Store }

func (r matchRepo) Create(ctx context.Context, m *entity.Match) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	m.ID = uuid.NewString()
	r.s.matches[m.ID] = *m
	return nil
}

func (r matchRepo) CreateMany(ctx context.Context, ms []*entity.Match) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, m := range ms {
		m.ID = uuid.NewString()
		r.s.matches[m.ID] = *m
	}
	return nil
}

func (r matchRepo) ListByPlayer(ctx context.Context, playerID string) ([]entity.Match, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := []entity.Match{}
	for _, m := range r.s.matches {
		if m.Player == playerID {
			out = append(out, m)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Date.After(out[j].Date) })
	return out, nil
}

func (r matchRepo) DeleteAll(ctx context.Context) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.matches = map[string]entity.Match{}
	return nil
}

type scheduleRepo struct{ s *Store }

func (r scheduleRepo) Create(ctx context.Context, sc *entity.Schedule) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	sc.ID = uuid.NewString()
	r.s.schedules[sc.ID] = *sc
	return nil
}

func (r scheduleRepo) ListByPlayer(ctx context.Context, playerID string) ([]entity.Schedule, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := []entity.Schedule{}
	for _, sc := range r.s.schedules {
		if sc.Player == playerID {
			out = append(out, sc)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date) })
	return out, nil
}

func (r scheduleRepo) GetByID(ctx context.Context, id string) (*entity.Schedule, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	sc, ok := r.s.schedules[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &sc, nil
}

func (r scheduleRepo) Delete(ctx context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.schedules[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.s.schedules, id)
	return nil
}

type insightRepo struct{ s *Store }

func (r insightRepo) Create(ctx context.Context, in *entity.Insight) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	in.ID = uuid.NewString()
	r.s.insights[in.ID] = *in
	return nil
}

func (r insightRepo) CreateMany(ctx context.Context, ins []*entity.Insight) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, in := range ins {
		in.ID = uuid.NewString()
		r.s.insights[in.ID] = *in
	}
	return nil
}

func (r insightRepo) ListByPlayer(ctx context.Context, playerID string) ([]entity.Insight, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := []entity.Insight{}
	for _, in := range r.s.insights {
		if in.RelatedPlayer == playerID {
			out = append(out, in)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Date.After(out[j].Date) })
	return out, nil
}

func (r insightRepo) DeleteAll(ctx context.Context) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.insights = map[string]entity.Insight{}
	return nil
}
