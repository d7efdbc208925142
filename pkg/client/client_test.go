package client

import (
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/accadex/accadex/internal/application"
	"github.com/accadex/accadex/internal/domain/entity"
	"github.com/accadex/accadex/internal/router"
	"github.com/accadex/accadex/internal/testutils"
)

func init() { gin.SetMode(gin.TestMode) }

func newServer(t *testing.T, wrap func(http.Handler) http.Handler) *httptest.Server {
	t.Helper()
	c, _ := testutils.NewMemoryContainer()
	var h http.Handler = router.New(c)
	if wrap != nil {
		h = wrap(h)
	}
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	return srv
}

func signUp(t *testing.T, c *Client) *AuthResponse {
	t.Helper()
	res, err := c.Register(context.Background(), RegisterRequest{Name: "Ana", Email: "ana@example.com", Password: "secret", Academy: "North"})
	require.NoError(t, err)
	c.SetToken(res.Token)
	return res
}

func TestClient_authFlow(t *testing.T) {
	srv := newServer(t, nil)
	c := New(srv.URL)
	ctx := context.Background()
	reg := signUp(t, c)

	_, err := c.Register(ctx, RegisterRequest{Name: "Ana", Email: "ana@example.com", Password: "x"})
	require.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, StatusCode(err))
	assert.Contains(t, err.Error(), "User already exists")

	_, err = New(srv.URL).Login(ctx, "ana@example.com", "wrong")
	assert.Equal(t, http.StatusBadRequest, StatusCode(err))

	login, err := New(srv.URL).Login(ctx, "ana@example.com", "secret")
	require.NoError(t, err)
	assert.Equal(t, reg.User, login.User)

	me, err := c.Me(ctx)
	require.NoError(t, err)
	assert.Equal(t, "North", me.Academy)

	_, err = New(srv.URL).Me(ctx)
	assert.Equal(t, http.StatusUnauthorized, StatusCode(err))
}

func TestClient_resources(t *testing.T) {
	c := New(newServer(t, nil).URL)
	ctx := context.Background()
	id := signUp(t, c).User.ID

	matches, err := c.Matches(ctx, id)
	require.NoError(t, err)
	assert.Len(t, matches, 3)

	in, err := c.CreateInsight(ctx, NewInsight{Title: "Hydrate", Description: "Two litres a day", Type: entity.InsightHealth, RelatedPlayer: id})
	require.NoError(t, err)
	insights, err := c.Insights(ctx, id)
	require.NoError(t, err)
	assert.Len(t, insights, 3)
	assert.Contains(t, insights, *in)

	_, err = c.CreateSchedule(ctx, NewSchedule{Player: id, Opponent: "City"})
	require.Error(t, err)
	assert.Equal(t, "must be a valid date", err.(*APIError).Errors["date"])

	users, err := c.SearchUsers(ctx, "ana", 5)
	require.NoError(t, err)
	assert.Empty(t, users)

	_, err = c.UploadVideo(ctx, "clip.mp4", "video/mp4", id, strings.NewReader("frames"))
	assert.Equal(t, http.StatusServiceUnavailable, StatusCode(err))
}

func TestCompleteFixture(t *testing.T) {
	c := New(newServer(t, nil).URL)
	ctx := context.Background()
	id := signUp(t, c).User.ID

	date := time.Date(2024, 6, 1, 15, 0, 0, 0, time.UTC)
	sc, err := c.CreateSchedule(ctx, NewSchedule{Player: id, Date: date, Opponent: "Harbour FC", Type: entity.FixtureLeague})
	require.NoError(t, err)

	m, err := c.CompleteFixture(ctx, *sc, entity.ResultWin, "2-0", nil)
	require.NoError(t, err)
	assert.Equal(t, "Harbour FC", m.Opponent)
	assert.True(t, date.Equal(m.Date))
	assert.Equal(t, DefaultFixtureStats, m.Stats)

	schedules, err := c.Schedules(ctx, id)
	require.NoError(t, err)
	for _, s := range schedules {
		assert.NotEqual(t, sc.ID, s.ID)
	}

	matches, err := c.Matches(ctx, id)
	require.NoError(t, err)
	require.NotEmpty(t, matches)
	assert.Equal(t, m.ID, matches[0].ID)
	assert.True(t, date.Equal(matches[0].Date))
}

func TestCompleteFixture_deleteFailsKeepsMatch(t *testing.T) {
	failDeletes := func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method == http.MethodDelete {
				w.WriteHeader(http.StatusInternalServerError)
				_, _ = w.Write([]byte(`{"msg":"Server Error"}`))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
	c := New(newServer(t, failDeletes).URL)
	ctx := context.Background()
	id := signUp(t, c).User.ID

	sc, err := c.CreateSchedule(ctx, NewSchedule{Player: id, Date: time.Date(2024, 6, 1, 15, 0, 0, 0, time.UTC), Opponent: "City"})
	require.NoError(t, err)

	m, err := c.CompleteFixture(ctx, *sc, entity.ResultLoss, "0-1", &entity.MatchStats{Points: 1})
	require.Error(t, err)
	require.NotNil(t, m)
	assert.Equal(t, http.StatusInternalServerError, StatusCode(err))

	schedules, err := c.Schedules(ctx, id)
	require.NoError(t, err)
	assert.Len(t, schedules, 1)
	matches, err := c.Matches(ctx, id)
	require.NoError(t, err)
	assert.Len(t, matches, 4)
}

func TestBoard(t *testing.T) {
	b := NewBoard()
	for _, contact := range Contacts {
		h := b.History(contact.ID)
		require.Len(t, h, 1)
		assert.Equal(t, FromBot, h[0].From)
	}
	assert.Equal(t, "Coach Mike here. Ready to review your game plan?", b.History(PersonaHeadCoach)[0].Text)

	c := New(newServer(t, nil).URL)
	reply, err := b.Send(context.Background(), c, PersonaPhysician, "My ankle is sore")
	require.NoError(t, err)
	assert.Equal(t, application.DemoModeReply, reply.Text)

	h := b.History(PersonaPhysician)
	require.Len(t, h, 3)
	assert.Equal(t, FromUser, h[1].From)
	assert.Equal(t, "My ankle is sore", h[1].Text)
	assert.Len(t, b.History(PersonaNutritionist), 1, "histories are kept per persona")

	b.Reset(PersonaPhysician)
	assert.Len(t, b.History(PersonaPhysician), 1)
}

func TestBoard_connectionFailure(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	srv.Close()

	b := NewBoard()
	reply, err := b.Send(context.Background(), New(srv.URL), PersonaAICoach, "Hi")
	require.Error(t, err)
	assert.Equal(t, ConnectionTrouble, reply.Text)
	assert.Len(t, b.History(PersonaAICoach), 3)

	reply, err = b.SendVideo(context.Background(), New(srv.URL), PersonaAICoach, "Sending file...", "https://clips/x.mp4")
	require.Error(t, err)
	assert.Equal(t, SendFileFailed, reply.Text)
}

func TestSessionFile(t *testing.T) {
	f := SessionFile{Path: filepath.Join(t.TempDir(), "nested", "session.json")}

	_, err := f.Load()
	assert.ErrorIs(t, err, ErrNotLoggedIn)

	s := &Session{Token: "tok", User: entity.PublicUser{ID: "u1", Name: "Ana", Role: entity.RolePlayer}, Chats: NewBoard()}
	s.Chats.Append(PersonaAICoach, Message{From: FromUser, Text: "hello"})
	require.NoError(t, f.Save(s))

	got, err := f.Load()
	require.NoError(t, err)
	assert.Equal(t, "tok", got.Token)
	assert.Equal(t, s.User, got.User)
	assert.Len(t, got.Chats.History(PersonaAICoach), 2)

	require.NoError(t, f.Clear())
	require.NoError(t, f.Clear())
	_, err = f.Load()
	assert.ErrorIs(t, err, ErrNotLoggedIn)
}
