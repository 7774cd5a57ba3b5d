package storage

import "errors"

// Common storage errors
var (
	// ErrStoreNotOpen indicates that no per-user store is currently open
	ErrStoreNotOpen = errors.New("store is not open")

	// ErrStoreAlreadyOpen indicates that a store is already held for a different user
	ErrStoreAlreadyOpen = errors.New("store already open for another user")

	// ErrProductNotFound indicates that the product does not exist in the store
	ErrProductNotFound = errors.New("product not found")

	// ErrSessionNotFound indicates that no session data is stored
	ErrSessionNotFound = errors.New("session not found")
)
