package app

import (
	"log"
	"sync"
	"time"

	"goroster/domain/core"
	"goroster/internal/errors"
	"goroster/ports"
)

// ResultStore holds finished roster builds in memory for the UI's
// preview→download flow. Entries expire after a TTL; a background sweeper
// evicts them. This is session-scoped presentation state, not persistence.
type ResultStore struct {
	mu      sync.RWMutex
	results map[core.ResultID]storedResult
	ttl     time.Duration
	done    chan struct{}
	once    sync.Once
}

type storedResult struct {
	result    *ports.RosterResult
	expiresAt time.Time
}

// NewResultStore creates a store whose entries live for ttl
func NewResultStore(ttl time.Duration) *ResultStore {
	store := &ResultStore{
		results: make(map[core.ResultID]storedResult),
		ttl:     ttl,
		done:    make(chan struct{}),
	}
	go store.sweep()
	return store
}

// Put stores a finished build under its result ID
func (s *ResultStore) Put(result *ports.RosterResult) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.results[result.ID] = storedResult{
		result:    result,
		expiresAt: time.Now().Add(s.ttl),
	}
}

// Get returns the stored result, or a NOT_FOUND AppError when the ID is
// unknown or the entry has expired.
func (s *ResultStore) Get(id core.ResultID) (*ports.RosterResult, error) {
	s.mu.RLock()
	stored, ok := s.results[id]
	s.mu.RUnlock()

	if !ok || time.Now().After(stored.expiresAt) {
		return nil, errors.NotFound("roster result")
	}
	return stored.result, nil
}

// Len returns the number of live entries
func (s *ResultStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.results)
}

// Stop halts the background sweeper. Safe to call more than once.
func (s *ResultStore) Stop() {
	s.once.Do(func() { close(s.done) })
}

// sweep evicts expired entries once a minute until Stop is called
func (s *ResultStore) sweep() {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-s.done:
			return
		case now := <-ticker.C:
			s.evictExpired(now)
		}
	}
}

func (s *ResultStore) evictExpired(now time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()

	evicted := 0
	for id, stored := range s.results {
		if now.After(stored.expiresAt) {
			delete(s.results, id)
			evicted++
		}
	}
	if evicted > 0 {
		log.Printf("[ResultStore] Evicted %d expired results (%d remaining)", evicted, len(s.results))
	}
}
