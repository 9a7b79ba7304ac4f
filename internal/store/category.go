package store

import (
	"context"
	"sync"

	"github.com/oneclickfood/oneclick/internal/domain"
	"github.com/oneclickfood/oneclick/internal/logger"
)

// CatalogState distinguishes "not yet loaded" from "loaded" and
// "fetch failed", so consumers never have to guess what an empty slice
// means.
type CatalogState int

const (
	CatalogLoading CatalogState = iota
	CatalogLoaded
	CatalogFailed
)

// String returns a human-readable catalog state.
func (s CatalogState) String() string {
	switch s {
	case CatalogLoading:
		return "loading"
	case CatalogLoaded:
		return "loaded"
	case CatalogFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// CategoryStore holds the category reference catalog. It is created in
// the loading state; Load fetches the catalog once from the remote
// service. Write is a manual override that always yields the loaded
// state.
type CategoryStore struct {
	mu      sync.RWMutex
	items   []domain.Category
	state   CatalogState
	loadErr error
	fetch   domain.CategorySource
	ready   bool
	log     *logger.Logger
}

// NewCategoryStore creates an empty category store in the loading state.
func NewCategoryStore(fetch domain.CategorySource, log *logger.Logger) *CategoryStore {
	return &CategoryStore{
		state: CatalogLoading,
		fetch: fetch,
		ready: true,
		log:   log,
	}
}

// Load fetches the catalog and transitions the store to loaded or
// failed. On failure the store stays empty and retains the error.
func (s *CategoryStore) Load(ctx context.Context) error {
	if s == nil || !s.ready {
		return domain.ErrStoreNotReady
	}

	items, err := s.fetch.Categories(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		s.state = CatalogFailed
		s.loadErr = err
		s.log.Error("category store: catalog fetch failed: %v", err)
		return err
	}
	s.items = items
	s.state = CatalogLoaded
	s.loadErr = nil
	s.log.Info("category store: loaded %d categories", len(items))
	return nil
}

// Read returns a copy of the current catalog and its state, so callers
// cannot mutate the shared slice under other readers. The error is the
// retained fetch error when the state is failed, or
// domain.ErrStoreNotReady for an unconstructed store.
func (s *CategoryStore) Read() ([]domain.Category, CatalogState, error) {
	if s == nil {
		return nil, CatalogFailed, domain.ErrStoreNotReady
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.ready {
		return nil, CatalogFailed, domain.ErrStoreNotReady
	}
	if s.state == CatalogFailed {
		return nil, s.state, s.loadErr
	}
	items := make([]domain.Category, len(s.items))
	copy(items, s.items)
	return items, s.state, nil
}

// Write replaces the catalog, moving the store to the loaded state.
func (s *CategoryStore) Write(items []domain.Category) error {
	if s == nil {
		return domain.ErrStoreNotReady
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.ready {
		return domain.ErrStoreNotReady
	}
	s.items = items
	s.state = CatalogLoaded
	s.loadErr = nil
	return nil
}
