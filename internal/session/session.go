// Package session manages the authenticated session boundary: login and
// registration flows, and the bearer token persisted across runs in a file
// under the user configuration directory.
package session

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/docsight/docsight/internal/gateway"
)

// Session couples the gateway's in-memory token with its on-disk copy.
type Session struct {
	gw     *gateway.Client
	store  *TokenStore
	logger *slog.Logger
}

// New creates a session backed by the token file at tokenPath.
func New(gw *gateway.Client, tokenPath string, logger *slog.Logger) *Session {
	return &Session{
		gw:     gw,
		store:  &TokenStore{path: tokenPath},
		logger: logger.With("system", "session"),
	}
}

// Register creates a new account. Registration does not log in.
func (s *Session) Register(ctx context.Context, req gateway.RegisterRequest) (*gateway.User, error) {
	return s.gw.Register(ctx, req)
}

// Login authenticates, adopts the returned token for subsequent calls, and
// persists it for later runs.
func (s *Session) Login(ctx context.Context, email, password string) (*gateway.User, error) {
	result, err := s.gw.Login(ctx, gateway.Credentials{Email: email, Password: password})
	if err != nil {
		return nil, err
	}

	s.gw.SetToken(result.AccessToken)
	if err := s.store.Save(result.AccessToken); err != nil {
		s.logger.Warn("failed to persist token", "error", err)
	}

	return &result.User, nil
}

// Restore loads the persisted token and verifies it with a profile check.
// A failed check forces logout: the token is cleared both in memory and on
// disk before the error is returned.
func (s *Session) Restore(ctx context.Context) (*gateway.User, error) {
	token, err := s.store.Load()
	if err != nil {
		return nil, err
	}
	if token == "" {
		return nil, ErrNotLoggedIn
	}

	s.gw.SetToken(token)

	user, err := s.gw.Profile(ctx)
	if err != nil {
		if gateway.IsAuthError(err) {
			s.logger.Debug("profile check failed, clearing session", "error", err)
			s.Logout()
		}
		return nil, fmt.Errorf("profile check: %w", err)
	}

	return user, nil
}

// Logout clears the token in memory and on disk.
func (s *Session) Logout() {
	s.gw.ClearToken()
	if err := s.store.Clear(); err != nil {
		s.logger.Warn("failed to remove token file", "error", err)
	}
}

// TokenStore persists the bearer token as a file readable only by the user.
type TokenStore struct {
	path string
}

// Load returns the stored token, or "" when none is stored.
func (t *TokenStore) Load() (string, error) {
	data, err := os.ReadFile(t.path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil
		}
		return "", fmt.Errorf("read token: %w", err)
	}
	return strings.TrimSpace(string(data)), nil
}

// Save writes the token, creating the parent directory when needed.
func (t *TokenStore) Save(token string) error {
	if err := os.MkdirAll(filepath.Dir(t.path), 0o700); err != nil {
		return fmt.Errorf("create token dir: %w", err)
	}
	if err := os.WriteFile(t.path, []byte(token+"\n"), 0o600); err != nil {
		return fmt.Errorf("write token: %w", err)
	}
	return nil
}

// Clear removes the token file. A missing file is not an error.
func (t *TokenStore) Clear() error {
	if err := os.Remove(t.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove token: %w", err)
	}
	return nil
}
