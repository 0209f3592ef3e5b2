package lock

import "context"

// Registry tracks which person ids are temporarily protected from mutation
// and deletion. Entries expire on their own after the configured TTL; nothing
// ever deletes them explicitly. The registry exclusively owns its key
// namespace in the backing store.
type Registry interface {
	// Lock places a protection on the given id for the configured window.
	// Calling it again for the same id resets the window.
	Lock(ctx context.Context, id uint64) error

	// IsLocked reports whether an unexpired entry for the id exists.
	// A backend failure is returned as an error, never as "unlocked":
	// callers must fail closed to avoid mutating a protected record.
	IsLocked(ctx context.Context, id uint64) (bool, error)

	// LockedIDs returns every id whose entry has not yet expired.
	LockedIDs(ctx context.Context) ([]uint64, error)
}
