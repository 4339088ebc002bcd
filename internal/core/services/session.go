// Package services implements the driving ports: ingestion, question
// answering and clause auditing over a reviewed document corpus.
package services

import (
	"context"
	"sync"

	"github.com/custodia-labs/lexaudit-cli/internal/core/ports/driven"
	"github.com/custodia-labs/lexaudit-cli/internal/logger"
)

// ReviewSession holds the active index for the lifetime of a process.
// It starts from whatever the store persisted (or absent) and is
// swapped atomically when ingestion rebuilds the index.
type ReviewSession struct {
	mu    sync.RWMutex
	store driven.IndexStore
	index driven.Index
}

// NewReviewSession creates a session over the given index store.
// Call Init to load any persisted index before first use.
func NewReviewSession(store driven.IndexStore) *ReviewSession {
	return &ReviewSession{store: store}
}

// Init loads the persisted index, if any. A missing or unreadable
// index leaves the session empty; it never fails startup.
func (s *ReviewSession) Init(ctx context.Context) error {
	index, err := s.store.Load(ctx)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.index = index
	s.mu.Unlock()

	if index != nil {
		logger.Info("Loaded persisted index: %d chunks, %d dimensions, model %s",
			index.Len(), index.Dimensions(), index.ModelName())
	} else {
		logger.Info("No persisted index, starting empty")
	}
	return nil
}

// Index returns the active index, or nil when nothing is indexed.
func (s *ReviewSession) Index() driven.Index {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.index
}

// HasIndex reports whether an index with at least one chunk is active.
func (s *ReviewSession) HasIndex() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.index != nil && s.index.Len() > 0
}

// Replace swaps in a freshly built index.
func (s *ReviewSession) Replace(index driven.Index) {
	s.mu.Lock()
	s.index = index
	s.mu.Unlock()
}

// Store exposes the underlying index store.
func (s *ReviewSession) Store() driven.IndexStore {
	return s.store
}
