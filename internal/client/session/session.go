// Package session owns the stored session credential.
//
// The credential is a single opaque string the server issued at login. It is
// the only state this client ever persists: one file, created on login,
// removed on logout or when the server rejects it. The guard check is
// presence-only; the token is never decoded or validated locally.
package session

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// Session reads, writes, and clears the credential file. Construct one and
// inject it wherever the credential is needed; there is no package-level
// state.
type Session struct {
	mu   sync.Mutex
	path string
}

// New returns a Session backed by the credential file at path. The file does
// not have to exist yet.
func New(path string) *Session {
	return &Session{path: path}
}

// Token returns the stored credential, or "" when none is stored. The file
// is re-read on every call so a credential cleared elsewhere is observed
// immediately.
func (s *Session) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(data))
}

// SetToken persists the credential, replacing any previous one.
func (s *Session) SetToken(token string) error {
	if token == "" {
		return errors.New("session: refusing to store an empty credential")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return fmt.Errorf("session: creating credential dir: %w", err)
		}
	}
	if err := os.WriteFile(s.path, []byte(token), 0o600); err != nil {
		return fmt.Errorf("session: storing credential: %w", err)
	}
	return nil
}

// Clear removes the stored credential. Clearing an absent credential is not
// an error.
func (s *Session) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.Remove(s.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("session: clearing credential: %w", err)
	}
	return nil
}

// IsAuthenticated reports whether a credential is present. Presence is
// necessary but not sufficient: the server may still reject the token, at
// which point it is cleared and this returns false again.
func (s *Session) IsAuthenticated() bool {
	return s.Token() != ""
}
