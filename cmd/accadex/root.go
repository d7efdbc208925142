package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/accadex/accadex/pkg/client"
)

// app is the state shared by every subcommand of one invocation.
type app struct {
	out         io.Writer
	server      string
	sessionPath string

	session *client.Session
	api     *client.Client
}

var (
	faint   = color.New(color.Faint)
	bold    = color.New(color.Bold)
	success = color.New(color.FgGreen)
	warn    = color.New(color.FgYellow)
)

func newRootCmd(out io.Writer) *cobra.Command {
	a := &app{out: out}

	root := &cobra.Command{
		Use:   "accadex",
		Short: "Command-line client for the Accadex sports academy API",
		Long: `Accadex tracks a player's matches, upcoming fixtures and insights, and
lets them chat with AI personas (AI coach, physician, head coach, nutritionist).

QUICK START:

  $ accadex register --name "Ana Lima" --email ana@example.com --password secret
  $ accadex matches list
  $ accadex schedule add --opponent "City FC" --date 2024-06-01T15:00
  $ accadex schedule complete <id> --result Win --score 2-1
  $ accadex chat --persona physician "My ankle is sore"

The session token is kept in a local file (see --session) until 'accadex logout'.`,
		SilenceUsage: true,
	}
	root.SetOut(out)
	root.PersistentFlags().StringVar(&a.server, "server", os.Getenv("ACCADEX_SERVER"), "API base URL (default "+client.DefaultBaseURL+")")
	root.PersistentFlags().StringVar(&a.sessionPath, "session", os.Getenv("ACCADEX_SESSION"), "session file (default <config dir>/accadex/session.json)")

	root.AddCommand(
		a.registerCmd(),
		a.loginCmd(),
		a.logoutCmd(),
		a.whoamiCmd(),
		a.matchesCmd(),
		a.scheduleCmd(),
		a.insightsCmd(),
		a.chatCmd(),
		a.uploadCmd(),
		a.usersCmd(),
	)
	return root
}

func (a *app) file() (client.SessionFile, error) {
	if a.sessionPath != "" {
		return client.SessionFile{Path: a.sessionPath}, nil
	}
	p, err := client.DefaultSessionPath()
	if err != nil {
		return client.SessionFile{}, fmt.Errorf("locate session file: %w", err)
	}
	return client.SessionFile{Path: p}, nil
}

func (a *app) baseURL() string {
	if a.server != "" {
		return a.server
	}
	if a.session != nil && a.session.BaseURL != "" {
		return a.session.BaseURL
	}
	return client.DefaultBaseURL
}

// anonymous returns a client without credentials, for register and login.
func (a *app) anonymous() *client.Client {
	return client.New(a.baseURL())
}

// requireSession loads the saved session; commands that talk to the API on
// behalf of the user call it first.
func (a *app) requireSession() error {
	f, err := a.file()
	if err != nil {
		return err
	}
	s, err := f.Load()
	if errors.Is(err, client.ErrNotLoggedIn) {
		return errors.New("not logged in, run 'accadex login' first")
	}
	if err != nil {
		return err
	}
	a.session = s
	a.api = client.New(a.baseURL(), client.WithToken(s.Token))
	return nil
}

func (a *app) save() error {
	f, err := a.file()
	if err != nil {
		return err
	}
	return f.Save(a.session)
}

// startSession stores a fresh token, starting an empty chat board.
func (a *app) startSession(res *client.AuthResponse) error {
	a.session = &client.Session{
		BaseURL: a.baseURL(),
		Token:   res.Token,
		User:    res.User,
		Chats:   client.NewBoard(),
	}
	return a.save()
}

func (a *app) userID() string {
	return a.session.User.ID
}

func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}

var dateLayouts = []string{time.RFC3339, "2006-01-02T15:04", "2006-01-02 15:04", "2006-01-02"}

// parseDate accepts RFC 3339 or a local "YYYY-MM-DD[ HH:MM]" date.
func parseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range dateLayouts {
		if t, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid date %q, use YYYY-MM-DD or YYYY-MM-DDTHH:MM", s)
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

func padRight(s string, length int) string {
	if len(s) >= length {
		return s
	}
	return s + strings.Repeat(" ", length-len(s))
}
