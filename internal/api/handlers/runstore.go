package handlers

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"option-sim/internal/model"
	"option-sim/internal/sim"
)

// StoredRun keeps a finished run around so /runs/:id and the replay stream
// can serve it without recomputing.
type StoredRun struct {
	ID        string
	Inputs    model.SimulationInputs
	Result    *sim.Result
	Summary   sim.Summary
	ExpiresAt time.Time
}

// RunStore is an in-process, TTL-bounded map of recent runs. It is not
// persistence: nothing survives a restart, and expired runs are swept by a
// background goroutine.
type RunStore struct {
	mu    sync.RWMutex
	store map[string]*StoredRun
	ttl   time.Duration
}

const defaultRunTTL = 1 * time.Hour

// NewRunStore creates a store and starts its cleanup goroutine.
func NewRunStore(ttl time.Duration) *RunStore {
	if ttl <= 0 {
		ttl = defaultRunTTL
	}
	s := &RunStore{
		store: make(map[string]*StoredRun),
		ttl:   ttl,
	}
	go s.cleanup()
	return s
}

// Put stores a run under a fresh ID and returns it.
func (s *RunStore) Put(in model.SimulationInputs, res *sim.Result, summary sim.Summary) *StoredRun {
	run := &StoredRun{
		ID:        uuid.NewString(),
		Inputs:    in,
		Result:    res,
		Summary:   summary,
		ExpiresAt: time.Now().Add(s.ttl),
	}

	s.mu.Lock()
	s.store[run.ID] = run
	s.mu.Unlock()

	return run
}

// Get retrieves a stored run if present and not expired.
func (s *RunStore) Get(id string) (*StoredRun, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	run, exists := s.store[id]
	if !exists {
		return nil, false
	}
	if time.Now().After(run.ExpiresAt) {
		return nil, false
	}
	return run, true
}

// cleanup periodically removes expired runs.
func (s *RunStore) cleanup() {
	ticker := time.NewTicker(5 * time.Minute)
	defer ticker.Stop()

	for range ticker.C {
		s.mu.Lock()
		now := time.Now()
		for id, run := range s.store {
			if now.After(run.ExpiresAt) {
				delete(s.store, id)
			}
		}
		s.mu.Unlock()
	}
}
