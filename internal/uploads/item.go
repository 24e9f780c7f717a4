// Package uploads provides the upload queue and document lifecycle
// orchestration: file validation, FIFO sequencing of transfers to the
// analysis service, per-item state tracking, and the detached
// start-processing trigger issued after each successful transfer.
package uploads

import (
	"time"

	"github.com/oklog/ulid/v2"
)

// Status tracks one file's journey through the local queue.
type Status string

// Queue item states. Completed and Failed are terminal.
const (
	StatusQueued    Status = "queued"
	StatusUploading Status = "uploading"
	StatusCompleted Status = "completed"
	StatusFailed    Status = "failed"
)

// CanTransition reports whether the state machine permits moving to next.
// Status only moves forward; terminal states are never re-entered.
func (s Status) CanTransition(next Status) bool {
	switch s {
	case StatusQueued:
		return next == StatusUploading
	case StatusUploading:
		return next == StatusCompleted || next == StatusFailed
	default:
		return false
	}
}

// Nominal progress values rendered per state. Progress is informational
// only and never drives control decisions.
const (
	progressQueued   = 0
	progressInFlight = 10
	progressDone     = 100
)

// Item is the local record of one file's progress through the queue.
// It is mutated exclusively by the Orchestrator via the queue store.
type Item struct {
	ID          string
	Filename    string
	ContentType string
	Size        int64
	PageCount   *int
	Data        []byte

	Status   Status
	Progress int
	Error    string

	// DocumentID is the remote record created by a successful transfer.
	DocumentID int64

	EnqueuedAt time.Time
}

// newItemID returns an identifier unique for the queue's lifetime,
// built from the current time plus random salt.
func newItemID() string {
	return ulid.Make().String()
}
