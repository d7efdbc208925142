package client

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/accadex/accadex/internal/domain/entity"
)

// ErrNotLoggedIn is returned by Load when no session has been saved.
var ErrNotLoggedIn = errors.New("not logged in")

// Session is what a signed-in client keeps between runs.
type Session struct {
	BaseURL string            `json:"baseUrl,omitempty"`
	Token   string            `json:"token"`
	User    entity.PublicUser `json:"user"`
	Chats   Board             `json:"chats,omitempty"`
}

// SessionFile persists a Session as JSON readable only by the owner.
type SessionFile struct {
	Path string
}

// DefaultSessionPath is <user config dir>/accadex/session.json.
func DefaultSessionPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "accadex", "session.json"), nil
}

func (f SessionFile) Load() (*Session, error) {
	raw, err := os.ReadFile(f.Path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, ErrNotLoggedIn
	}
	if err != nil {
		return nil, fmt.Errorf("read session: %w", err)
	}
	var s Session
	if err := json.Unmarshal(raw, &s); err != nil {
		return nil, fmt.Errorf("parse session %s: %w", f.Path, err)
	}
	if s.Token == "" {
		return nil, ErrNotLoggedIn
	}
	if s.Chats == nil {
		s.Chats = NewBoard()
	}
	return &s, nil
}

func (f SessionFile) Save(s *Session) error {
	raw, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(f.Path), 0o700); err != nil {
		return fmt.Errorf("create session dir: %w", err)
	}
	tmp := f.Path + ".tmp"
	if err := os.WriteFile(tmp, raw, 0o600); err != nil {
		return fmt.Errorf("write session: %w", err)
	}
	return os.Rename(tmp, f.Path)
}

// Clear removes the session. A missing file is not an error.
func (f SessionFile) Clear() error {
	if err := os.Remove(f.Path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return nil
}
