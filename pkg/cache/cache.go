// Package cache provides the page cache behind the listing page: a rendered
// response keyed by request URI, expiring after a fixed window, with an
// explicit Clear for operators and tests.
package cache

import (
	"context"
	"time"
)

// Entry is one cached rendered response.
type Entry struct {
	Status      int    `json:"status"`
	ContentType string `json:"content_type"`
	Body        []byte `json:"body"`
}

// Cache stores full rendered responses. Concurrent Sets for the same key may
// race; last writer wins, which is acceptable because entries for one key are
// rendered from the same data within a window.
type Cache interface {
	Get(ctx context.Context, key string) (*Entry, bool, error)
	Set(ctx context.Context, key string, entry *Entry, ttl time.Duration) error
	Clear(ctx context.Context) error
}
