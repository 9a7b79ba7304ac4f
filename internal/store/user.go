// Package store holds the session-scoped shared state: the current
// user, the category catalog, and the recipe collection. Stores are
// explicit objects passed by reference to their consumers; a zero-value
// store that was never constructed reports domain.ErrStoreNotReady
// instead of panicking. Safe for concurrent access.
package store

import (
	"sync"

	"github.com/oneclickfood/oneclick/internal/domain"
	"github.com/oneclickfood/oneclick/internal/logger"
)

// UserStore holds the identity record for the current session. It
// starts at the anonymous sentinel (ID 0); login and signup replace the
// whole record. Last write wins, no merge semantics.
type UserStore struct {
	mu    sync.RWMutex
	user  domain.User
	ready bool
	log   *logger.Logger
}

// NewUserStore creates a user store seeded with the anonymous sentinel.
func NewUserStore(log *logger.Logger) *UserStore {
	return &UserStore{
		user:  domain.Anonymous(),
		ready: true,
		log:   log,
	}
}

// Read returns the current identity record.
func (s *UserStore) Read() (domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.ready {
		return domain.User{}, domain.ErrStoreNotReady
	}
	return s.user, nil
}

// Write replaces the identity record atomically.
func (s *UserStore) Write(u domain.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.ready {
		return domain.ErrStoreNotReady
	}
	s.user = u
	s.log.Info("user store: now %q (id=%d)", u.UserName, u.ID)
	return nil
}

// Reset returns the store to the anonymous sentinel (logout).
func (s *UserStore) Reset() error {
	return s.Write(domain.Anonymous())
}
