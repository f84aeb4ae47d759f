package store

import (
	"context"
	"log/slog"
	"sort"
	"sync"
	"time"

	"github.com/Pratikshinde2410/container-event-processing-engine/internal/engine"
)

// Entry is a container summary together with the time it was last updated.
type Entry struct {
	Summary   engine.Summary
	UpdatedAt time.Time
}

// Store is a thread-safe in-memory summary store, keyed by container_id.
type Store struct {
	mu   sync.RWMutex
	data map[string]*Entry
	ttl  time.Duration
	now  func() time.Time // injectable for deterministic tests
}

// New creates a Store with the given retention TTL.
func New(ttl time.Duration) *Store {
	return &Store{
		data: make(map[string]*Entry),
		ttl:  ttl,
		now:  time.Now,
	}
}

// Put stores or replaces the summary for its container_id.
func (s *Store) Put(sum engine.Summary) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[sum.ContainerID] = &Entry{
		Summary:   sum,
		UpdatedAt: s.now(),
	}
}

// Get returns the Entry for the given container ID. The entry may be stale
// if TTL has elapsed; callers that care should compare UpdatedAt.
func (s *Store) Get(containerID string) (*Entry, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	e, ok := s.data[containerID]
	return e, ok
}

// TTL returns the configured retention window.
func (s *Store) TTL() time.Duration { return s.ttl }

// List returns all entries updated within the TTL, ordered by container ID
// so dashboard reads are deterministic. Stale entries not yet evicted are
// excluded.
func (s *Store) List() []*Entry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	cutoff := s.now().Add(-s.ttl)
	out := make([]*Entry, 0, len(s.data))
	for _, e := range s.data {
		if e.UpdatedAt.After(cutoff) {
			out = append(out, e)
		}
	}
	sort.Slice(out, func(a, b int) bool {
		return out[a].Summary.ContainerID < out[b].Summary.ContainerID
	})
	return out
}

// Count returns the total number of entries currently held, stale included.
func (s *Store) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.data)
}

// Evict removes entries whose UpdatedAt is older than now minus TTL and
// returns the number removed.
func (s *Store) Evict(now time.Time) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	cutoff := now.Add(-s.ttl)
	removed := 0
	for id, e := range s.data {
		if !e.UpdatedAt.After(cutoff) {
			delete(s.data, id)
			removed++
		}
	}
	return removed
}

// Run starts the background TTL eviction loop, ticking at half the TTL
// (minimum 1 second). Blocks until ctx is cancelled.
func (s *Store) Run(ctx context.Context) {
	interval := s.ttl / 2
	if interval < time.Second {
		interval = time.Second
	}
	t := time.NewTicker(interval)
	defer t.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case now := <-t.C:
			if n := s.Evict(now); n > 0 {
				slog.Debug("store: evicted expired summaries", "count", n)
			}
		}
	}
}
