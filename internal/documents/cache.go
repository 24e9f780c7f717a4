// Package documents holds the read-side cache of remote document records.
// The cache is a full-replace snapshot: it is discarded and refetched after
// any mutating remote call rather than patched incrementally.
package documents

import (
	"context"
	"fmt"
	"log/slog"
	"sort"

	"github.com/docsight/docsight/internal/gateway"
)

// Cache is the last-fetched snapshot of the user's document records.
// Derived views recompute over the snapshot on every load, which is fine at
// the expected scale of tens to low hundreds of documents.
type Cache struct {
	gw     *gateway.Client
	logger *slog.Logger
	docs   []gateway.Document
}

// NewCache creates an empty cache backed by the gateway.
func NewCache(gw *gateway.Client, logger *slog.Logger) *Cache {
	return &Cache{
		gw:     gw,
		logger: logger.With("system", "documents"),
	}
}

// Load replaces the entire snapshot with a fresh list from the service.
func (c *Cache) Load(ctx context.Context) error {
	docs, err := c.gw.ListDocuments(ctx)
	if err != nil {
		return fmt.Errorf("load documents: %w", err)
	}

	c.docs = docs
	c.logger.Debug("documents reloaded", "count", len(docs))
	return nil
}

// Documents returns the current snapshot in service order.
func (c *Cache) Documents() []gateway.Document {
	return c.docs
}

// Find returns the cached record with the given id, if present.
func (c *Cache) Find(id int64) (*gateway.Document, bool) {
	for i := range c.docs {
		if c.docs[i].ID == id {
			return &c.docs[i], true
		}
	}
	return nil, false
}

// Recent returns up to n documents sorted by creation time descending.
func (c *Cache) Recent(n int) []gateway.Document {
	recent := make([]gateway.Document, len(c.docs))
	copy(recent, c.docs)

	sort.Slice(recent, func(i, j int) bool {
		return recent[i].CreatedAt.After(recent[j].CreatedAt)
	})

	if len(recent) > n {
		recent = recent[:n]
	}
	return recent
}

// Stats aggregates snapshot counts for the dashboard view.
type Stats struct {
	Total     int
	Processed int
	Pending   int
}

// Stats recomputes aggregate counts with a full scan over the snapshot.
func (c *Cache) Stats() Stats {
	stats := Stats{Total: len(c.docs)}
	for _, doc := range c.docs {
		if doc.Processed {
			stats.Processed++
		} else {
			stats.Pending++
		}
	}
	return stats
}

// Delete removes a document remotely, then reloads the whole snapshot.
func (c *Cache) Delete(ctx context.Context, id int64) error {
	if err := c.gw.DeleteDocument(ctx, id); err != nil {
		return fmt.Errorf("delete document %d: %w", id, err)
	}
	return c.Load(ctx)
}

// StartProcessing asks the service to analyze a stored document, then
// reloads the snapshot so the new processing status is visible.
func (c *Cache) StartProcessing(ctx context.Context, id int64) error {
	if _, err := c.gw.ProcessDocument(ctx, id); err != nil {
		return fmt.Errorf("start processing %d: %w", id, err)
	}
	return c.Load(ctx)
}
