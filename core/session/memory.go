package session

import (
	"context"
	"slices"
	"sort"
	"sync"
	"time"
)

// expiryKey orders the secondary index by (ValidTill, id).
type expiryKey struct {
	validTill int64
	id        string
}

// MemoryStore keeps records in process memory. A single mutex guards the
// primary map and the expiry index so a sweep and the mutation it precedes
// observe each other atomically.
type MemoryStore struct {
	mu      sync.Mutex
	records map[string]Record
	expiry  []expiryKey
}

// NewMemoryStore returns an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{records: make(map[string]Record)}
}

// Add inserts or overwrites a record. Expired entries are swept first.
// The store takes ownership of the record: the caller's Roles slice is
// cloned so later mutations on either side stay invisible to the other.
func (s *MemoryStore) Add(ctx context.Context, id string, rec Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.sweep(time.Now().UnixMilli())
	rec.User.Roles = slices.Clone(rec.User.Roles)
	s.records[id] = rec
	s.insertExpiry(expiryKey{validTill: rec.ValidTill, id: id})
	return nil
}

// Get returns a snapshot of the record under id. Expired entries are swept
// first, so an expired record is reported as ErrNoSession even when it was
// still physically present on entry.
func (s *MemoryStore) Get(ctx context.Context, id string) (Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.sweep(time.Now().UnixMilli())
	rec, ok := s.records[id]
	if !ok {
		return Record{}, ErrNoSession
	}
	rec.User.Roles = slices.Clone(rec.User.Roles)
	return rec, nil
}

// Remove deletes the record under id. The matching expiry index entry is
// left behind as a tombstone; the sweep discards it when the time cursor
// reaches its key.
func (s *MemoryStore) Remove(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.records[id]; !ok {
		return ErrNoSession
	}
	delete(s.records, id)
	return nil
}

// MarkLastUsed updates the record's LastAccess in place.
func (s *MemoryStore) MarkLastUsed(ctx context.Context, id string, now int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.records[id]
	if !ok {
		return ErrNoSession
	}
	rec.LastAccess = now
	s.records[id] = rec
	return nil
}

// sweep drops every record with ValidTill at or before now from both
// structures. Index entries whose record was removed or overwritten in the
// meantime are tombstones; they are discarded without touching the map
// record unless that record is itself expired. Callers must hold the mutex.
func (s *MemoryStore) sweep(now int64) {
	i := 0
	for ; i < len(s.expiry); i++ {
		key := s.expiry[i]
		if key.validTill > now {
			break
		}
		if rec, ok := s.records[key.id]; ok && rec.ValidTill <= now {
			delete(s.records, key.id)
		}
	}
	if i > 0 {
		s.expiry = slices.Delete(s.expiry, 0, i)
	}
}

// insertExpiry places key at its sorted position. Callers must hold the
// mutex.
func (s *MemoryStore) insertExpiry(key expiryKey) {
	i := sort.Search(len(s.expiry), func(i int) bool {
		e := s.expiry[i]
		if e.validTill != key.validTill {
			return e.validTill > key.validTill
		}
		return e.id >= key.id
	})
	s.expiry = slices.Insert(s.expiry, i, key)
}
