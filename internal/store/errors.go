package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrCheckpointNotFound is returned when a resource has no stored sync
	// checkpoint yet, meaning the next fetch for it must be a full fetch.
	ErrCheckpointNotFound = errors.New("sync checkpoint not found")

	// ErrPendingOpNotFound is returned when removing a queued offline mutation
	// that does not exist in the local cache.
	ErrPendingOpNotFound = errors.New("pending operation not found")

	// ErrMailItemsNotSaved is returned when an upsert of one or more mail
	// items completes without error but the number of affected rows is zero,
	// indicating that no data was actually persisted.
	ErrMailItemsNotSaved = errors.New("mail items were not saved")
)
