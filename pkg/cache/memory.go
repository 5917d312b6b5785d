package cache

import (
	"context"
	"sync"
	"time"
)

type memoryEntry struct {
	entry     Entry
	expiresAt time.Time
}

// Memory is an in-process Cache for single-instance deployments and tests.
// Now is replaceable so tests drive expiry instead of sleeping.
type Memory struct {
	mu      sync.RWMutex
	entries map[string]memoryEntry

	Now func() time.Time
}

// NewMemory creates an empty in-memory cache.
func NewMemory() *Memory {
	return &Memory{
		entries: make(map[string]memoryEntry),
		Now:     time.Now,
	}
}

func (m *Memory) Get(_ context.Context, key string) (*Entry, bool, error) {
	m.mu.RLock()
	me, ok := m.entries[key]
	m.mu.RUnlock()
	if !ok || m.Now().After(me.expiresAt) {
		return nil, false, nil
	}
	e := me.entry
	return &e, true, nil
}

func (m *Memory) Set(_ context.Context, key string, entry *Entry, ttl time.Duration) error {
	m.mu.Lock()
	m.entries[key] = memoryEntry{entry: *entry, expiresAt: m.Now().Add(ttl)}
	m.mu.Unlock()
	return nil
}

// Clear drops every entry immediately.
func (m *Memory) Clear(_ context.Context) error {
	m.mu.Lock()
	m.entries = make(map[string]memoryEntry)
	m.mu.Unlock()
	return nil
}
