package main

import (
	"bytes"
	"io"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/fatih/color"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/accadex/accadex/internal/application"
	"github.com/accadex/accadex/internal/domain/entity"
	"github.com/accadex/accadex/internal/router"
	"github.com/accadex/accadex/internal/testutils"
	"github.com/accadex/accadex/pkg/client"
)

func init() {
	gin.SetMode(gin.TestMode)
	color.NoColor = true
}

type cli struct {
	t       *testing.T
	server  string
	session string
}

func newCLI(t *testing.T) *cli {
	t.Helper()
	c, _ := testutils.NewMemoryContainer()
	srv := httptest.NewServer(router.New(c))
	t.Cleanup(srv.Close)
	return &cli{t: t, server: srv.URL, session: filepath.Join(t.TempDir(), "session.json")}
}

func (c *cli) run(args ...string) (string, error) {
	c.t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd(&out)
	cmd.SetErr(io.Discard)
	cmd.SetArgs(append([]string{"--server", c.server, "--session", c.session}, args...))
	err := cmd.Execute()
	return out.String(), err
}

func (c *cli) mustRun(args ...string) string {
	c.t.Helper()
	out, err := c.run(args...)
	require.NoError(c.t, err, out)
	return out
}

func (c *cli) register() *client.Session {
	c.t.Helper()
	c.mustRun("register", "--name", "Ana Lima", "--email", "ana@example.com", "--password", "secret", "--academy", "North")
	s, err := client.SessionFile{Path: c.session}.Load()
	require.NoError(c.t, err)
	return s
}

func TestParseDate(t *testing.T) {
	tests := []struct {
		in      string
		want    time.Time
		wantErr bool
	}{
		{in: "2024-06-01", want: time.Date(2024, 6, 1, 0, 0, 0, 0, time.Local)},
		{in: "2024-06-01T15:30", want: time.Date(2024, 6, 1, 15, 30, 0, 0, time.Local)},
		{in: " 2024-06-01 15:30 ", want: time.Date(2024, 6, 1, 15, 30, 0, 0, time.Local)},
		{in: "2024-06-01T15:30:00Z", want: time.Date(2024, 6, 1, 15, 30, 0, 0, time.UTC)},
		{in: "next friday", wantErr: true},
		{in: "", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := parseDate(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.True(t, tt.want.Equal(got), "got %v", got)
		})
	}
}

func TestParseEnums(t *testing.T) {
	r, err := parseResult("win")
	require.NoError(t, err)
	assert.Equal(t, entity.ResultWin, r)
	_, err = parseResult("victory")
	assert.Error(t, err)

	ft, err := parseFixtureType("TOURNAMENT")
	require.NoError(t, err)
	assert.Equal(t, entity.FixtureTournament, ft)
	_, err = parseFixtureType("cup")
	assert.Error(t, err)

	it, err := parseInsightType("health")
	require.NoError(t, err)
	assert.Equal(t, entity.InsightHealth, it)
}

func TestPadRightAndShortID(t *testing.T) {
	assert.Equal(t, "ab   ", padRight("ab", 5))
	assert.Equal(t, "abcdef", padRight("abcdef", 3))
	assert.Equal(t, "12345678", shortID("1234567890"))
	assert.Equal(t, "abc", shortID("abc"))
}

func TestCommandsRequireLogin(t *testing.T) {
	c := newCLI(t)
	for _, args := range [][]string{
		{"whoami"},
		{"matches", "list"},
		{"schedule", "list"},
		{"insights", "list"},
		{"chat", "hello"},
		{"users", "search", "ana"},
	} {
		_, err := c.run(args...)
		require.Error(t, err, args)
		assert.Contains(t, err.Error(), "not logged in", args)
	}
}

func TestRegisterWhoamiLogout(t *testing.T) {
	c := newCLI(t)
	out := c.mustRun("register", "--name", "Ana Lima", "--email", "ana@example.com", "--password", "secret")
	assert.Contains(t, out, "Welcome, Ana Lima")

	s, err := client.SessionFile{Path: c.session}.Load()
	require.NoError(t, err)
	assert.Equal(t, c.server, s.BaseURL)
	assert.NotEmpty(t, s.Token)

	out = c.mustRun("whoami")
	assert.Contains(t, out, "Ana Lima")
	assert.Contains(t, out, "ana@example.com")
	assert.Contains(t, out, entity.DefaultAcademy)

	assert.Contains(t, c.mustRun("logout"), "Signed out")
	_, err = c.run("whoami")
	assert.ErrorContains(t, err, "not logged in")

	out = c.mustRun("login", "--email", "ana@example.com", "--password", "secret")
	assert.Contains(t, out, "Signed in as Ana Lima")

	_, err = c.run("login", "--email", "ana@example.com", "--password", "nope")
	assert.ErrorContains(t, err, "Invalid Credentials")
}

func TestMatchesAndInsights(t *testing.T) {
	c := newCLI(t)
	c.register()

	out := c.mustRun("matches", "list")
	assert.Contains(t, out, "Placement Match AI")

	out = c.mustRun("matches", "add", "--opponent", "Harbour FC", "--result", "win", "--score", "3-1", "--points", "12", "--date", "2024-04-30")
	assert.Contains(t, out, "Recorded Win 3-1 vs Harbour FC")
	out = c.mustRun("matches", "list")
	assert.Contains(t, out, "Harbour FC")
	assert.Contains(t, out, "12pts")

	_, err := c.run("matches", "add", "--opponent", "X", "--result", "maybe", "--score", "0-0")
	assert.ErrorContains(t, err, "invalid result")

	out = c.mustRun("insights", "add", "--title", "Left foot", "--description", "Work on weak foot passing", "--type", "strategy")
	assert.Contains(t, out, "Strategy insight added: Left foot")
	out = c.mustRun("insights", "list")
	assert.Contains(t, out, "Left foot")
	assert.Contains(t, out, "[Strategy]")
}

func TestScheduleCompleteAndDelete(t *testing.T) {
	c := newCLI(t)
	c.register()

	assert.Contains(t, c.mustRun("schedule", "list"), "No upcoming fixtures")

	out := c.mustRun("schedule", "add", "--opponent", "City FC", "--date", "2024-06-01T15:00", "--type", "league")
	assert.Contains(t, out, "League vs City FC")
	c.mustRun("schedule", "add", "--opponent", "Rovers", "--date", "2024-06-08")

	s, err := client.SessionFile{Path: c.session}.Load()
	require.NoError(t, err)
	api := client.New(c.server, client.WithToken(s.Token))
	fixtures, err := api.Schedules(t.Context(), s.User.ID)
	require.NoError(t, err)
	require.Len(t, fixtures, 2)

	var city, rovers entity.Schedule
	for _, f := range fixtures {
		if f.Opponent == "City FC" {
			city = f
		} else {
			rovers = f
		}
	}

	out = c.mustRun("schedule", "complete", city.ID, "--result", "Draw", "--score", "1-1")
	assert.Contains(t, out, "Recorded Draw 1-1 vs City FC")

	matches, err := api.Matches(t.Context(), s.User.ID)
	require.NoError(t, err)
	var played *entity.Match
	for i := range matches {
		if matches[i].Opponent == "City FC" {
			played = &matches[i]
		}
	}
	require.NotNil(t, played)
	assert.True(t, city.Date.Equal(played.Date))
	assert.Equal(t, client.DefaultFixtureStats, played.Stats)

	out = c.mustRun("schedule", "delete", shortID(rovers.ID))
	assert.Contains(t, out, "Schedule removed")
	assert.Contains(t, c.mustRun("schedule", "list"), "No upcoming fixtures")

	_, err = c.run("schedule", "complete", "missing", "--result", "Win", "--score", "1-0")
	assert.ErrorContains(t, err, `no fixture matches "missing"`)
}

func TestChatKeepsHistory(t *testing.T) {
	c := newCLI(t)
	c.register()

	out := c.mustRun("chat", "--persona", client.PersonaPhysician, "My", "knee", "hurts")
	assert.Contains(t, out, "Dr. Sarah: "+application.DemoModeReply)

	s, err := client.SessionFile{Path: c.session}.Load()
	require.NoError(t, err)
	history := s.Chats.History(client.PersonaPhysician)
	require.Len(t, history, 3)
	assert.Equal(t, "My knee hurts", history[1].Text)
	assert.Equal(t, client.FromBot, history[2].From)

	out = c.mustRun("chat", "-p", client.PersonaPhysician)
	assert.Contains(t, out, "you: My knee hurts")

	out = c.mustRun("chat", "-p", client.PersonaPhysician, "--reset")
	assert.NotContains(t, out, "My knee hurts")

	_, err = c.run("chat", "--persona", "physio", "hi")
	assert.ErrorContains(t, err, "unknown persona")

	assert.Contains(t, c.mustRun("chat", "--contacts"), "Coach Mike")
}

func TestChatConnectionTrouble(t *testing.T) {
	c := newCLI(t)
	c.register()

	dead := httptest.NewServer(nil)
	dead.Close()

	out, err := c.run("--server", dead.URL, "chat", "hello?")
	require.NoError(t, err)
	assert.Contains(t, out, client.ConnectionTrouble)
}

func TestUploadDisabledReportsFailure(t *testing.T) {
	c := newCLI(t)
	c.register()

	clip := filepath.Join(t.TempDir(), "clip.mp4")
	require.NoError(t, os.WriteFile(clip, []byte("not really a video"), 0o600))

	out, err := c.run("upload", clip, "--persona", client.PersonaAICoach)
	require.Error(t, err)
	assert.Equal(t, 503, client.StatusCode(err))
	assert.Contains(t, out, client.SendFileFailed)

	s, lerr := client.SessionFile{Path: c.session}.Load()
	require.NoError(t, lerr)
	history := s.Chats.History(client.PersonaAICoach)
	require.Len(t, history, 3)
	assert.True(t, history[1].IsVideo)
}

func TestUsersSearchWithoutDirectory(t *testing.T) {
	c := newCLI(t)
	c.register()
	assert.True(t, strings.Contains(c.mustRun("users", "search", "ana"), "No users found"))
}
