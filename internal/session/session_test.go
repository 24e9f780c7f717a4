package session_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/docsight/docsight/internal/gateway"
	"github.com/docsight/docsight/internal/session"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestTokenStore_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "token")

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(gateway.LoginResult{
			AccessToken: "tok-123",
			User:        gateway.User{ID: 1, Username: "ada"},
		})
	}))
	t.Cleanup(server.Close)

	gw := gateway.New(server.URL, 5*time.Second, testLogger())
	sess := session.New(gw, path, testLogger())

	user, err := sess.Login(context.Background(), "ada@example.com", "pw")
	if err != nil {
		t.Fatalf("Login() error = %v", err)
	}
	if user.Username != "ada" {
		t.Errorf("user = %q, want ada", user.Username)
	}
	if gw.Token() != "tok-123" {
		t.Errorf("gateway token = %q, want tok-123", gw.Token())
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("token file not written: %v", err)
	}
	if got := string(data); got != "tok-123\n" {
		t.Errorf("token file contents = %q, want token with newline", got)
	}
}

func TestSession_RestoreWithValidToken(t *testing.T) {
	var gotAuth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		json.NewEncoder(w).Encode(gateway.User{ID: 1, Username: "ada"})
	}))
	t.Cleanup(server.Close)

	path := filepath.Join(t.TempDir(), "token")
	if err := os.WriteFile(path, []byte("tok-456\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	gw := gateway.New(server.URL, 5*time.Second, testLogger())
	sess := session.New(gw, path, testLogger())

	user, err := sess.Restore(context.Background())
	if err != nil {
		t.Fatalf("Restore() error = %v", err)
	}
	if user.Username != "ada" {
		t.Errorf("user = %q, want ada", user.Username)
	}
	if gotAuth != "Bearer tok-456" {
		t.Errorf("Authorization = %q, want Bearer tok-456", gotAuth)
	}
}

func TestSession_RestoreWithoutToken(t *testing.T) {
	gw := gateway.New("http://localhost", time.Second, testLogger())
	sess := session.New(gw, filepath.Join(t.TempDir(), "token"), testLogger())

	_, err := sess.Restore(context.Background())
	if !errors.Is(err, session.ErrNotLoggedIn) {
		t.Errorf("Restore() error = %v, want ErrNotLoggedIn", err)
	}
}

func TestSession_FailedProfileCheckForcesLogout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(map[string]string{"detail": "Could not validate credentials"})
	}))
	t.Cleanup(server.Close)

	path := filepath.Join(t.TempDir(), "token")
	if err := os.WriteFile(path, []byte("stale-token\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	gw := gateway.New(server.URL, 5*time.Second, testLogger())
	sess := session.New(gw, path, testLogger())

	if _, err := sess.Restore(context.Background()); err == nil {
		t.Fatal("Restore() with rejected token returned nil error")
	}

	if gw.Token() != "" {
		t.Errorf("gateway token = %q after forced logout, want empty", gw.Token())
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Error("token file still present after forced logout")
	}
}

func TestSession_RestoreKeepsTokenOnTransientError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	t.Cleanup(server.Close)

	path := filepath.Join(t.TempDir(), "token")
	if err := os.WriteFile(path, []byte("tok-789\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	gw := gateway.New(server.URL, 5*time.Second, testLogger())
	sess := session.New(gw, path, testLogger())

	if _, err := sess.Restore(context.Background()); err == nil {
		t.Fatal("Restore() returned nil error on server failure")
	}

	// A transient server error is not an auth failure; the stored token
	// survives for the next attempt.
	if _, err := os.Stat(path); err != nil {
		t.Error("token file removed on transient error")
	}
}
