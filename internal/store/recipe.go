package store

import (
	"context"
	"sync"

	"github.com/oneclickfood/oneclick/internal/domain"
	"github.com/oneclickfood/oneclick/internal/logger"
)

// RecipeStore holds the recipe collection shown on the catalog view.
// Its lifecycle mirrors CategoryStore: created loading, fetched once,
// writable as a manual override (used to refresh after a submit).
type RecipeStore struct {
	mu      sync.RWMutex
	items   []domain.Recipe
	state   CatalogState
	loadErr error
	fetch   domain.RecipeSource
	ready   bool
	log     *logger.Logger
}

// NewRecipeStore creates an empty recipe store in the loading state.
func NewRecipeStore(fetch domain.RecipeSource, log *logger.Logger) *RecipeStore {
	return &RecipeStore{
		state: CatalogLoading,
		fetch: fetch,
		ready: true,
		log:   log,
	}
}

// Load fetches the recipe collection from the remote service.
func (s *RecipeStore) Load(ctx context.Context) error {
	if s == nil || !s.ready {
		return domain.ErrStoreNotReady
	}

	items, err := s.fetch.Recipes(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		s.state = CatalogFailed
		s.loadErr = err
		s.log.Error("recipe store: fetch failed: %v", err)
		return err
	}
	s.items = items
	s.state = CatalogLoaded
	s.loadErr = nil
	s.log.Info("recipe store: loaded %d recipes", len(items))
	return nil
}

// Read returns a copy of the current collection and its state.
func (s *RecipeStore) Read() ([]domain.Recipe, CatalogState, error) {
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
	items := make([]domain.Recipe, len(s.items))
	copy(items, s.items)
	return items, s.state, nil
}

// Write replaces the collection, moving the store to the loaded state.
func (s *RecipeStore) Write(items []domain.Recipe) error {
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
