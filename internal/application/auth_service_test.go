package application

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/itbasis/go-clock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/accadex/accadex/internal/domain/entity"
	"github.com/accadex/accadex/internal/domain/repository"
	"github.com/accadex/accadex/internal/domain/repository/mockrepo"
	"github.com/accadex/accadex/internal/infrastructure/memory"
	"github.com/accadex/accadex/pkg/helpers"
	"github.com/accadex/accadex/pkg/mailer"
)

var testNow = time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)

func newMockClock() *clock.Mock {
	c := clock.NewMock()
	c.Set(testNow)
	return c
}

type fakeIndexer struct {
	docs []entity.UserSummary
	err  error
}

func (f *fakeIndexer) Index(_ context.Context, u entity.UserSummary) error {
	f.docs = append(f.docs, u)
	return f.err
}

type fakePublisher struct {
	jobs []any
	err  error
}

func (f *fakePublisher) PublishJSON(_ context.Context, body any) error {
	f.jobs = append(f.jobs, body)
	return f.err
}

func newAuth(t *testing.T) (*AuthService, *memory.Store) {
	t.Helper()
	store := memory.NewStore()
	jwt := helpers.NewJWTManager("test-secret", time.Hour)
	return NewAuthService(store, jwt, newMockClock(), nil), store
}

func TestRegister_createsUserAndWelcomeData(t *testing.T) {
	svc, store := newAuth(t)
	ctx := context.Background()

	res, err := svc.Register(ctx, RegisterInput{Name: "Asha", Email: " Asha@Example.com ", Password: "demo123"})
	require.NoError(t, err)
	require.NotEmpty(t, res.Token)
	assert.Equal(t, "Asha", res.User.Name)
	assert.Equal(t, entity.RolePlayer, res.User.Role)

	claims, err := svc.JWT.Parse(res.Token)
	require.NoError(t, err)
	assert.Equal(t, res.User.ID, claims.User.ID)
	assert.Equal(t, "player", claims.User.Role)

	u, err := store.Users().GetByEmail(ctx, "asha@example.com")
	require.NoError(t, err)
	assert.Equal(t, entity.DefaultAcademy, u.Academy)
	assert.NotEqual(t, "demo123", u.Password)

	matches, err := store.Matches().ListByPlayer(ctx, res.User.ID)
	require.NoError(t, err)
	require.Len(t, matches, 3)
	assert.Equal(t, "Placement Match AI", matches[0].Opponent)
	assert.Equal(t, testNow, matches[0].Date)
	assert.Equal(t, "Academy Reserves", matches[2].Opponent)
	assert.Equal(t, testNow.Add(-7*24*time.Hour), matches[2].Date)

	insights, err := store.Insights().ListByPlayer(ctx, res.User.ID)
	require.NoError(t, err)
	require.Len(t, insights, 2)
}

func TestRegister_duplicateEmail(t *testing.T) {
	svc, _ := newAuth(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, RegisterInput{Name: "A", Email: "dup@example.com", Password: "x"})
	require.NoError(t, err)

	_, err = svc.Register(ctx, RegisterInput{Name: "B", Email: "DUP@example.com", Password: "y"})
	assert.ErrorIs(t, err, ErrDuplicateEmail)
}

func TestRegister_sideEffects(t *testing.T) {
	svc, _ := newAuth(t)
	idx := &fakeIndexer{err: errors.New("es down")}
	pub := &fakePublisher{}
	svc.Indexer = idx
	svc.Emails = pub

	res, err := svc.Register(context.Background(), RegisterInput{Name: "Coach", Email: "c@example.com", Password: "pw", Role: entity.RoleCoach, Academy: "North"})
	require.NoError(t, err, "indexing failures must not fail registration")

	require.Len(t, idx.docs, 1)
	assert.Equal(t, res.User.ID, idx.docs[0].ID)
	assert.Equal(t, "North", idx.docs[0].Academy)

	require.Len(t, pub.jobs, 1)
	job := pub.jobs[0].(mailer.EmailJob)
	assert.Equal(t, "c@example.com", job.To)
	assert.Equal(t, "welcome", job.Template)
	assert.Equal(t, "North", job.Data["Academy"])
}

func TestRegister_welcomeDataFailure(t *testing.T) {
	users := &mockrepo.Users{}
	matches := &mockrepo.Matches{}
	insights := &mockrepo.Insights{}
	svc := &AuthService{
		Users: users, Matches: matches, Insights: insights,
		JWT: helpers.NewJWTManager("s", time.Hour), Clock: newMockClock(), Logger: helpers.NewNopLogger(),
	}

	users.On("GetByEmail", mock.Anything, "x@example.com").Return(nil, repository.ErrNotFound)
	users.On("Create", mock.Anything, mock.AnythingOfType("*entity.User")).Run(func(args mock.Arguments) {
		args.Get(1).(*entity.User).ID = "u1"
	}).Return(nil)
	matches.On("CreateMany", mock.Anything, mock.Anything).Return(errors.New("write failed"))

	_, err := svc.Register(context.Background(), RegisterInput{Name: "X", Email: "x@example.com", Password: "pw"})
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrDuplicateEmail)
	insights.AssertNotCalled(t, "CreateMany", mock.Anything, mock.Anything)
}

func TestLogin(t *testing.T) {
	svc, _ := newAuth(t)
	ctx := context.Background()
	reg, err := svc.Register(ctx, RegisterInput{Name: "Asha", Email: "asha@example.com", Password: "demo123"})
	require.NoError(t, err)

	res, err := svc.Login(ctx, "ASHA@example.com", "demo123")
	require.NoError(t, err)
	claims, err := svc.JWT.Parse(res.Token)
	require.NoError(t, err)
	assert.Equal(t, reg.User.ID, claims.User.ID)

	_, err = svc.Login(ctx, "asha@example.com", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Login(ctx, "nobody@example.com", "demo123")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestMe(t *testing.T) {
	svc, _ := newAuth(t)
	ctx := context.Background()
	reg, err := svc.Register(ctx, RegisterInput{Name: "Asha", Email: "asha@example.com", Password: "demo123"})
	require.NoError(t, err)

	u, err := svc.Me(ctx, reg.User.ID)
	require.NoError(t, err)
	assert.Equal(t, "asha@example.com", u.Email)

	_, err = svc.Me(ctx, "missing")
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestRegister_passwordTooLong(t *testing.T) {
	svc, store := newAuth(t)

	_, err := svc.Register(context.Background(), RegisterInput{Name: "Ana", Email: "ana@example.com", Password: strings.Repeat("a", 73)})
	assert.ErrorIs(t, err, ErrPasswordTooLong)

	_, err = store.Users().GetByEmail(context.Background(), "ana@example.com")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}
