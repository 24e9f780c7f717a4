package uploads

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/docsight/docsight/internal/gateway"
)

// defaultTriggerTimeout bounds the detached start-processing call.
const defaultTriggerTimeout = 30 * time.Second

// Orchestrator drains the upload queue sequentially. Within one drain pass,
// transfers start in insertion order and at most one item is mid-transfer
// at any instant. After a successful transfer it spawns a detached
// start-processing trigger whose outcome never touches the item's state.
type Orchestrator struct {
	queue     *Queue
	validator *Validator
	gw        *gateway.Client
	logger    *slog.Logger
	notifier  Notifier

	triggerTimeout time.Duration
	triggers       sync.WaitGroup
}

// NewOrchestrator wires the queue, validator, and gateway together.
// A nil notifier silently discards user-visible messages.
func NewOrchestrator(queue *Queue, validator *Validator, gw *gateway.Client, logger *slog.Logger, notifier Notifier) *Orchestrator {
	if notifier == nil {
		notifier = NopNotifier{}
	}
	return &Orchestrator{
		queue:          queue,
		validator:      validator,
		gw:             gw,
		logger:         logger.With("system", "uploads"),
		notifier:       notifier,
		triggerTimeout: defaultTriggerTimeout,
	}
}

// Queue returns the orchestrator's queue store.
func (o *Orchestrator) Queue() *Queue {
	return o.queue
}

// Submit validates each candidate independently and enqueues the ones that
// pass. Rejected files warn and are skipped; a mixed batch partially
// succeeds. PDF candidates pick up a page count as queue metadata.
func (o *Orchestrator) Submit(candidates []Candidate) []Item {
	var accepted []Item
	for _, c := range candidates {
		if !o.validator.Validate(c) {
			continue
		}

		if c.isPDF() && c.PageCount == nil {
			count, err := pdfPageCount(c.Data)
			if err != nil {
				o.logger.Warn("failed to extract pdf page count", "file", c.Filename, "error", err)
			} else {
				c.PageCount = count
			}
		}

		accepted = append(accepted, o.queue.Enqueue(c))
	}
	return accepted
}

// ProcessQueue performs one drain pass: each item still queued is
// transferred to completion, success or failure, before the next one
// starts. A failure on one item never prevents the next attempt. The pass
// stops silently if the queue is cleared mid-drain.
func (o *Orchestrator) ProcessQueue(ctx context.Context) {
	epoch := o.queue.Epoch()

	for {
		if ctx.Err() != nil {
			return
		}

		item, ok := o.queue.startNext(epoch)
		if !ok {
			return
		}

		o.transfer(ctx, item)
	}
}

func (o *Orchestrator) transfer(ctx context.Context, item Item) {
	doc, err := o.gw.UploadDocument(ctx, item.Filename, item.ContentType, item.Data)
	if err != nil {
		o.queue.fail(item.ID, err.Error())
		o.notifier.Notify(NotifyError, fmt.Sprintf("Upload failed: %s", err.Error()))
		return
	}

	o.queue.complete(item.ID, doc.ID)
	o.notifier.Notify(NotifySuccess, fmt.Sprintf("%s uploaded successfully!", item.Filename))

	o.spawnProcessingTrigger(doc.ID, item.Filename)
}

// spawnProcessingTrigger fires the remote processing step for a freshly
// stored document. The task runs on its own context and error channel:
// its failure is logged, never surfaced, and never reflected in the item.
// No ordering is guaranteed between the trigger and later queue items.
func (o *Orchestrator) spawnProcessingTrigger(documentID int64, filename string) {
	o.triggers.Add(1)
	go func() {
		defer o.triggers.Done()

		ctx, cancel := context.WithTimeout(context.Background(), o.triggerTimeout)
		defer cancel()

		if _, err := o.gw.ProcessDocument(ctx, documentID); err != nil {
			o.logger.Warn("processing trigger failed", "document_id", documentID, "error", err)
			return
		}

		o.notifier.Notify(NotifyInfo, fmt.Sprintf("Processing %s...", filename))
	}()
}

// WaitTriggers blocks until every detached processing trigger has settled.
// The CLI calls it before exiting so triggers are not cut off mid-flight.
func (o *Orchestrator) WaitTriggers() {
	o.triggers.Wait()
}
