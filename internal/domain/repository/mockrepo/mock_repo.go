package mockrepo

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/accadex/accadex/internal/domain/entity"
	"github.com/accadex/accadex/internal/domain/repository"
)

type Users struct {
	mock.Mock
}

func (r *Users) Create(ctx context.Context, u *entity.User) error {
	args := r.Called(ctx, u)
	return args.Error(0)
}

func (r *Users) GetByID(ctx context.Context, id string) (*entity.User, error) {
	args := r.Called(ctx, id)

	var u *entity.User
	if args.Get(0) != nil {
		u = args.Get(0).(*entity.User)
	}
	return u, args.Error(1)
}

func (r *Users) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	args := r.Called(ctx, email)

	var u *entity.User
	if args.Get(0) != nil {
		u = args.Get(0).(*entity.User)
	}
	return u, args.Error(1)
}

func (r *Users) DeleteAll(ctx context.Context) error {
	args := r.Called(ctx)
	return args.Error(0)
}

type Matches struct {
	mock.Mock
}

func (r *Matches) Create(ctx context.Context, m *entity.Match) error {
	args := r.Called(ctx, m)
	return args.Error(0)
}

func (r *Matches) CreateMany(ctx context.Context, ms []*entity.Match) error {
	args := r.Called(ctx, ms)
	return args.Error(0)
}

func (r *Matches) ListByPlayer(ctx context.Context, playerID string) ([]entity.Match, error) {
	args := r.Called(ctx, playerID)

	var ms []entity.Match
	if args.Get(0) != nil {
		ms = args.Get(0).([]entity.Match)
	}
	return ms, args.Error(1)
}

func (r *Matches) DeleteAll(ctx context.Context) error {
	args := r.Called(ctx)
	return args.Error(0)
}

type Schedules struct {
	mock.Mock
}

func (r *Schedules) Create(ctx context.Context, s *entity.Schedule) error {
	args := r.Called(ctx, s)
	return args.Error(0)
}

func (r *Schedules) ListByPlayer(ctx context.Context, playerID string) ([]entity.Schedule, error) {
	args := r.Called(ctx, playerID)

	var ss []entity.Schedule
	if args.Get(0) != nil {
		ss = args.Get(0).([]entity.Schedule)
	}
	return ss, args.Error(1)
}

func (r *Schedules) GetByID(ctx context.Context, id string) (*entity.Schedule, error) {
	args := r.Called(ctx, id)

	var s *entity.Schedule
	if args.Get(0) != nil {
		s = args.Get(0).(*entity.Schedule)
	}
	return s, args.Error(1)
}

func (r *Schedules) Delete(ctx context.Context, id string) error {
	args := r.Called(ctx, id)
	return args.Error(0)
}

type Insights struct {
	mock.Mock
}

func (r *Insights) Create(ctx context.Context, in *entity.Insight) error {
	args := r.Called(ctx, in)
	return args.Error(0)
}

func (r *Insights) CreateMany(ctx context.Context, ins []*entity.Insight) error {
	args := r.Called(ctx, ins)
	return args.Error(0)
}

func (r *Insights) ListByPlayer(ctx context.Context, playerID string) ([]entity.Insight, error) {
	args := r.Called(ctx, playerID)

	var ins []entity.Insight
	if args.Get(0) != nil {
		ins = args.Get(0).([]entity.Insight)
	}
	return ins, args.Error(1)
}

func (r *Insights) DeleteAll(ctx context.Context) error {
	args := r.Called(ctx)
	return args.Error(0)
}

var (
	_ repository.UserRepository     = (*Users)(nil)
	_ repository.MatchRepository    = (*Matches)(nil)
	_ repository.ScheduleRepository = (*Schedules)(nil)
	_ repository.InsightRepository  = (*Insights)(nil)
)
