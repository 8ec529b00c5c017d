// Package session holds the session model of the gateway: the persisted
// record, its invariant checks, id minting, and the two Store
// implementations (in-memory and Redis).
//
// A record is created at login, pinned to the client IP observed at that
// moment, and carries two clocks: an absolute expiry (ValidTill) and the
// instant of the last successful validation (LastAccess). Both are
// milliseconds since the Unix epoch. The checks are deliberately strict
// comparisons, so a record is still valid at the exact boundary millisecond.
//
// Stores own their records and hand out snapshot copies:
//
//	store := session.NewMemoryStore()
//	err := store.Add(ctx, id, rec)
//	rec, err := store.Get(ctx, id) // never returns an expired record
//
// The Redis store keeps every key and value encrypted at rest and delegates
// expiry to per-entry TTLs.
package session
