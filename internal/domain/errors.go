package domain

import "errors"

// Sentinel errors used across layers.
var (
	// ErrStoreNotReady is returned when a shared state store is used
	// before it was constructed. This is a contract violation by the
	// caller, surfaced as a typed error rather than a panic so wiring
	// mistakes show up in development without crashing the terminal.
	ErrStoreNotReady = errors.New("store accessed before initialization")

	ErrNotFound = errors.New("not found")
)
