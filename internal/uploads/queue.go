package uploads

import (
	"sync"
	"time"
)

// Queue is the ordered collection of upload items. Items are appended by
// Submit, mutated only through the state-machine methods below, and removed
// only by Clear, which drops the whole queue at once.
//
// The epoch counter resolves the clear-vs-drain race: Clear bumps it, and
// the orchestrator re-checks it before every dequeue, so a drain loop never
// acts on a queue that was cleared out from under it.
type Queue struct {
	mu       sync.Mutex
	items    []*Item
	epoch    uint64
	observer Observer
}

// NewQueue creates an empty queue. A nil observer ignores render updates.
func NewQueue(observer Observer) *Queue {
	if observer == nil {
		observer = NopObserver{}
	}
	return &Queue{observer: observer}
}

// Enqueue appends a validated candidate in the queued state and renders it
// immediately. Enqueueing is independent of any drain in progress.
func (q *Queue) Enqueue(c Candidate) Item {
	item := &Item{
		ID:          newItemID(),
		Filename:    c.Filename,
		ContentType: c.ContentType,
		Size:        c.Size,
		PageCount:   c.PageCount,
		Data:        c.Data,
		Status:      StatusQueued,
		Progress:    progressQueued,
		EnqueuedAt:  time.Now(),
	}

	q.mu.Lock()
	q.items = append(q.items, item)
	snapshot := *item
	q.mu.Unlock()

	q.observer.ItemEnqueued(snapshot)
	return snapshot
}

// Items returns a snapshot of the queue in insertion order.
func (q *Queue) Items() []Item {
	q.mu.Lock()
	defer q.mu.Unlock()

	snapshot := make([]Item, len(q.items))
	for i, item := range q.items {
		snapshot[i] = *item
	}
	return snapshot
}

// Len returns the number of items currently in the queue.
func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.items)
}

// Epoch returns the current queue generation.
func (q *Queue) Epoch() uint64 {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.epoch
}

// Clear unconditionally empties the queue and its rendered representation.
// It does not wait on in-flight orchestrator activity; an item already
// mid-transfer finishes its transfer but is never rendered again.
func (q *Queue) Clear() {
	q.mu.Lock()
	q.items = nil
	q.epoch++
	q.mu.Unlock()

	q.observer.QueueCleared()
}

// startNext finds the first item still queued and moves it to uploading
// with nominal in-flight progress. It returns false when the queue holds no
// queued items or when the epoch no longer matches the drain pass.
func (q *Queue) startNext(epoch uint64) (Item, bool) {
	q.mu.Lock()

	if q.epoch != epoch {
		q.mu.Unlock()
		return Item{}, false
	}

	for _, item := range q.items {
		if item.Status != StatusQueued {
			continue
		}
		item.Status = StatusUploading
		item.Progress = progressInFlight
		snapshot := *item
		q.mu.Unlock()

		q.observer.ItemUpdated(snapshot)
		return snapshot, true
	}

	q.mu.Unlock()
	return Item{}, false
}

// complete marks an uploading item as completed with full progress and
// records the remote document id created by the transfer.
func (q *Queue) complete(id string, documentID int64) {
	q.transition(id, StatusCompleted, func(item *Item) {
		item.Progress = progressDone
		item.DocumentID = documentID
		item.Data = nil
	})
}

// fail marks an uploading item as failed, resets progress, and records the
// surfaced error message.
func (q *Queue) fail(id string, message string) {
	q.transition(id, StatusFailed, func(item *Item) {
		item.Progress = progressQueued
		item.Error = message
		item.Data = nil
	})
}

// transition applies a forward state-machine move to the identified item.
// It is a no-op when the item is gone (queue cleared mid-transfer) or when
// the move is not permitted.
func (q *Queue) transition(id string, next Status, mutate func(*Item)) {
	q.mu.Lock()

	for _, item := range q.items {
		if item.ID != id {
			continue
		}
		if !item.Status.CanTransition(next) {
			q.mu.Unlock()
			return
		}
		item.Status = next
		mutate(item)
		snapshot := *item
		q.mu.Unlock()

		q.observer.ItemUpdated(snapshot)
		return
	}

	q.mu.Unlock()
}
