package uploads_test

import (
	"strings"
	"sync"
	"testing"

	"github.com/docsight/docsight/internal/uploads"
)

type recordingNotifier struct {
	mu       sync.Mutex
	messages []string
	levels   []uploads.NotifyLevel
}

func (n *recordingNotifier) Notify(level uploads.NotifyLevel, message string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.levels = append(n.levels, level)
	n.messages = append(n.messages, message)
}

func (n *recordingNotifier) all() []string {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]string(nil), n.messages...)
}

var allowedTypes = []string{
	"application/pdf",
	"text/plain",
	"application/msword",
	"application/vnd.openxmlformats-officedocument.wordprocessingml.document",
}

func TestValidator_Validate(t *testing.T) {
	tests := []struct {
		name        string
		candidate   uploads.Candidate
		want        bool
		wantWarning string
	}{
		{
			"allowed pdf within limit",
			uploads.Candidate{Filename: "report.pdf", ContentType: "application/pdf", Size: 2 * 1024 * 1024},
			true,
			"",
		},
		{
			"allowed text file",
			uploads.Candidate{Filename: "notes.txt", ContentType: "text/plain", Size: 100},
			true,
			"",
		},
		{
			"disallowed media type",
			uploads.Candidate{Filename: "photo.png", ContentType: "image/png", Size: 100},
			false,
			"File type image/png is not supported",
		},
		{
			"file exceeds size limit",
			uploads.Candidate{Filename: "huge.pdf", ContentType: "application/pdf", Size: 11 * 1024 * 1024},
			false,
			"File huge.pdf is too large (max 10 MB)",
		},
		{
			"type check runs before size check",
			uploads.Candidate{Filename: "huge.png", ContentType: "image/png", Size: 11 * 1024 * 1024},
			false,
			"File type image/png is not supported",
		},
		{
			"exactly at the size limit",
			uploads.Candidate{Filename: "edge.pdf", ContentType: "application/pdf", Size: 10 * 1024 * 1024},
			true,
			"",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			notifier := &recordingNotifier{}
			validator := uploads.NewValidator(10*1024*1024, allowedTypes, notifier)

			got := validator.Validate(tt.candidate)

			if got != tt.want {
				t.Errorf("Validate() = %v, want %v", got, tt.want)
			}

			messages := notifier.all()
			if tt.wantWarning == "" {
				if len(messages) != 0 {
					t.Errorf("unexpected notifications: %v", messages)
				}
				return
			}

			if len(messages) != 1 {
				t.Fatalf("got %d notifications, want 1: %v", len(messages), messages)
			}
			if messages[0] != tt.wantWarning {
				t.Errorf("warning = %q, want %q", messages[0], tt.wantWarning)
			}
			if notifier.levels[0] != uploads.NotifyWarning {
				t.Errorf("level = %q, want %q", notifier.levels[0], uploads.NotifyWarning)
			}
		})
	}
}

func TestValidator_MixedBatchIndependence(t *testing.T) {
	notifier := &recordingNotifier{}
	validator := uploads.NewValidator(10*1024*1024, allowedTypes, notifier)

	batch := []uploads.Candidate{
		{Filename: "a.pdf", ContentType: "application/pdf", Size: 100},
		{Filename: "b.png", ContentType: "image/png", Size: 100},
		{Filename: "c.txt", ContentType: "text/plain", Size: 100},
	}

	var accepted []string
	for _, c := range batch {
		if validator.Validate(c) {
			accepted = append(accepted, c.Filename)
		}
	}

	if len(accepted) != 2 || accepted[0] != "a.pdf" || accepted[1] != "c.txt" {
		t.Errorf("accepted = %v, want [a.pdf c.txt]", accepted)
	}

	messages := notifier.all()
	if len(messages) != 1 || !strings.Contains(messages[0], "image/png") {
		t.Errorf("notifications = %v, want one warning about image/png", messages)
	}
}
