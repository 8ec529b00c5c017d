package session

import "context"

// Store persists session records keyed by their opaque id.
// Implementations must handle concurrent access safely and must never
// return an expired record from Get.
type Store interface {
	// Add inserts a record, overwriting any record already stored under id.
	Add(ctx context.Context, id string, rec Record) error
	// Get returns a snapshot of the record, or ErrNoSession.
	Get(ctx context.Context, id string) (Record, error)
	// Remove deletes the record, or reports ErrNoSession if none was there.
	Remove(ctx context.Context, id string) error
	// MarkLastUsed sets the record's LastAccess to now (ms since epoch).
	MarkLastUsed(ctx context.Context, id string, now int64) error
}
