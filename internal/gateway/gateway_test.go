package gateway_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/docsight/docsight/internal/gateway"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestClient(t *testing.T, handler http.Handler) *gateway.Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return gateway.New(server.URL, 5*time.Second, testLogger())
}

func TestClient_AuthorizationHeader(t *testing.T) {
	tests := []struct {
		name       string
		token      string
		wantHeader string
	}{
		{
			"no token set",
			"",
			"",
		},
		{
			"token set",
			"abc123",
			"Bearer abc123",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotAuth string
			client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				gotAuth = r.Header.Get("Authorization")
				json.NewEncoder(w).Encode([]gateway.Document{})
			}))

			if tt.token != "" {
				client.SetToken(tt.token)
			}

			if _, err := client.ListDocuments(context.Background()); err != nil {
				t.Fatalf("ListDocuments() error = %v", err)
			}

			if gotAuth != tt.wantHeader {
				t.Errorf("Authorization = %q, want %q", gotAuth, tt.wantHeader)
			}
		})
	}
}

func TestClient_ClearToken(t *testing.T) {
	client := gateway.New("http://localhost", time.Second, testLogger())

	client.SetToken("abc")
	if client.Token() != "abc" {
		t.Fatalf("Token() = %q, want abc", client.Token())
	}

	client.ClearToken()
	if client.Token() != "" {
		t.Errorf("Token() = %q after ClearToken, want empty", client.Token())
	}
}

func TestClient_JSONRequestHeaders(t *testing.T) {
	var gotContentType, gotRequestID string
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotContentType = r.Header.Get("Content-Type")
		gotRequestID = r.Header.Get("X-Request-ID")
		json.NewEncoder(w).Encode(gateway.User{ID: 1})
	}))

	if _, err := client.Profile(context.Background()); err != nil {
		t.Fatalf("Profile() error = %v", err)
	}

	if gotContentType != "application/json" {
		t.Errorf("Content-Type = %q, want application/json", gotContentType)
	}
	if gotRequestID == "" {
		t.Error("X-Request-ID header missing")
	}
}

func TestClient_UploadDocumentMultipart(t *testing.T) {
	var gotContentType, gotFilename, gotPartType string
	var gotBody []byte

	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotContentType = r.Header.Get("Content-Type")

		file, header, err := r.FormFile("file")
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		defer file.Close()

		gotFilename = header.Filename
		gotPartType = header.Header.Get("Content-Type")
		gotBody, _ = io.ReadAll(file)

		json.NewEncoder(w).Encode(gateway.Document{ID: 7, OriginalFilename: header.Filename})
	}))

	doc, err := client.UploadDocument(context.Background(), "report.pdf", "application/pdf", []byte("%PDF-1.4"))
	if err != nil {
		t.Fatalf("UploadDocument() error = %v", err)
	}

	if doc.ID != 7 {
		t.Errorf("doc.ID = %d, want 7", doc.ID)
	}
	if !strings.HasPrefix(gotContentType, "multipart/form-data; boundary=") {
		t.Errorf("Content-Type = %q, want multipart with boundary", gotContentType)
	}
	if gotFilename != "report.pdf" {
		t.Errorf("filename = %q, want report.pdf", gotFilename)
	}
	if gotPartType != "application/pdf" {
		t.Errorf("part Content-Type = %q, want application/pdf", gotPartType)
	}
	if string(gotBody) != "%PDF-1.4" {
		t.Errorf("body = %q, want file bytes", gotBody)
	}
}

func TestClient_ErrorExtraction(t *testing.T) {
	tests := []struct {
		name     string
		status   int
		body     string
		wantMsg  string
		wantAuth bool
	}{
		{
			"server detail preferred",
			http.StatusBadRequest,
			`{"detail": "Document not found"}`,
			"Document not found",
			false,
		},
		{
			"generic fallback for empty body",
			http.StatusInternalServerError,
			"",
			"HTTP error! status: 500",
			false,
		},
		{
			"generic fallback for non-json body",
			http.StatusBadGateway,
			"<html>bad gateway</html>",
			"HTTP error! status: 502",
			false,
		},
		{
			"unauthorized is an auth error",
			http.StatusUnauthorized,
			`{"detail": "Could not validate credentials"}`,
			"Could not validate credentials",
			true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				io.WriteString(w, tt.body)
			}))

			_, err := client.GetDocument(context.Background(), 1)
			if err == nil {
				t.Fatal("GetDocument() returned nil error")
			}

			if err.Error() != tt.wantMsg {
				t.Errorf("error = %q, want %q", err.Error(), tt.wantMsg)
			}

			var apiErr *gateway.APIError
			if !errors.As(err, &apiErr) {
				t.Fatalf("error %T does not unwrap to *APIError", err)
			}
			if apiErr.Status != tt.status {
				t.Errorf("Status = %d, want %d", apiErr.Status, tt.status)
			}

			if got := gateway.IsAuthError(err); got != tt.wantAuth {
				t.Errorf("IsAuthError() = %v, want %v", got, tt.wantAuth)
			}
		})
	}
}

func TestClient_OperationsHitExpectedRoutes(t *testing.T) {
	var gotMethod, gotPath string
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		io.WriteString(w, "{}")
	}))

	ctx := context.Background()
	tests := []struct {
		name       string
		call       func() error
		wantMethod string
		wantPath   string
	}{
		{
			"register",
			func() error { _, err := client.Register(ctx, gateway.RegisterRequest{}); return err },
			http.MethodPost,
			"/auth/register",
		},
		{
			"login",
			func() error { _, err := client.Login(ctx, gateway.Credentials{}); return err },
			http.MethodPost,
			"/auth/login",
		},
		{
			"profile",
			func() error { _, err := client.Profile(ctx); return err },
			http.MethodGet,
			"/auth/profile",
		},
		{
			"get document",
			func() error { _, err := client.GetDocument(ctx, 42); return err },
			http.MethodGet,
			"/documents/42",
		},
		{
			"delete document",
			func() error { return client.DeleteDocument(ctx, 42) },
			http.MethodDelete,
			"/documents/42",
		},
		{
			"start processing",
			func() error { _, err := client.ProcessDocument(ctx, 42); return err },
			http.MethodPost,
			"/process/42",
		},
		{
			"processing status",
			func() error { _, err := client.ProcessingStatusFor(ctx, 42); return err },
			http.MethodGet,
			"/process/42/status",
		},
		{
			"insights",
			func() error { _, err := client.DocumentInsights(ctx, 42); return err },
			http.MethodGet,
			"/process/42/insights",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.call(); err != nil {
				t.Fatalf("call error = %v", err)
			}
			if gotMethod != tt.wantMethod || gotPath != tt.wantPath {
				t.Errorf("request = %s %s, want %s %s", gotMethod, gotPath, tt.wantMethod, tt.wantPath)
			}
		})
	}
}
