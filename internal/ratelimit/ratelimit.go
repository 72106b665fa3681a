// Package ratelimit bounds OTP-related requests per client address within
// a fixed window. The counter lives behind a Store interface so single
// instance deployments use the in-memory map and tests can substitute
// their own.
package ratelimit

import (
	"sync"
	"time"
)

// Store decides whether a request from the given client key may proceed.
type Store interface {
	Allow(key string) bool
}

type entry struct {
	count   int
	resetAt time.Time
}

type MemoryStore struct {
	mu      sync.Mutex
	entries map[string]*entry

	window time.Duration
	max    int

	now func() time.Time
}

// NewMemoryStore creates a process-local limiter and starts a background
// sweep that drops expired entries so key cardinality stays bounded.
func NewMemoryStore(window time.Duration, max int) *MemoryStore {
	s := newMemoryStore(window, max)
	go s.sweep(10 * time.Minute)
	return s
}

func newMemoryStore(window time.Duration, max int) *MemoryStore {
	if window <= 0 {
		window = 15 * time.Minute
	}
	if max <= 0 {
		max = 5
	}
	return &MemoryStore{
		entries: make(map[string]*entry),
		window:  window,
		max:     max,
		now:     time.Now,
	}
}

// Allow reports whether the request is within the limit. A fresh or
// expired key starts a new window at count 1; once the cap is reached
// further requests are rejected without incrementing.
func (s *MemoryStore) Allow(key string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	e, ok := s.entries[key]
	if !ok || now.After(e.resetAt) {
		s.entries[key] = &entry{count: 1, resetAt: now.Add(s.window)}
		return true
	}

	if e.count >= s.max {
		return false
	}

	e.count++
	return true
}

func (s *MemoryStore) sweep(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for range ticker.C {
		s.removeStale()
	}
}

func (s *MemoryStore) removeStale() {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	for key, e := range s.entries {
		if now.After(e.resetAt) {
			delete(s.entries, key)
		}
	}
}
