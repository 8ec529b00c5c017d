package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/dmitrymomot/authgate/core/crypt"
)

// RedisStore persists records in Redis with per-entry TTL expiry. Every key
// and value is passed through the codec, so the backend never sees a session
// id or a record in clear.
type RedisStore struct {
	client redis.UniversalClient
	codec  *crypt.Codec
}

// NewRedisStore connects to the given URL (redis[s]://...) and returns a
// store encrypting with codec. The client maintains its own connection pool.
func NewRedisStore(redisURL string, codec *crypt.Codec) (*RedisStore, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("session: parse redis url: %w", err)
	}
	return NewRedisStoreWithClient(redis.NewClient(opts), codec), nil
}

// NewRedisStoreWithClient wraps an existing client. Used by tests and by
// callers that manage the client lifecycle themselves.
func NewRedisStoreWithClient(client redis.UniversalClient, codec *crypt.Codec) *RedisStore {
	return &RedisStore{client: client, codec: codec}
}

// Add stores the encrypted record under the encrypted id with a TTL of the
// record's remaining lifetime in whole seconds, leaving expiry to Redis.
func (s *RedisStore) Add(ctx context.Context, id string, rec Record) error {
	payload, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("session: encode record: %w", err)
	}

	ttl := remainingTTL(rec.ValidTill, time.Now().UnixMilli())
	key := s.codec.Encrypt(id)
	value := s.codec.Encrypt(string(payload))

	if err := s.client.SetEx(ctx, key, value, ttl).Err(); err != nil {
		return fmt.Errorf("session: store record: %w", err)
	}
	return nil
}

// Get fetches and decrypts the record under id. A missing key, including one
// Redis already expired, is ErrNoSession.
func (s *RedisStore) Get(ctx context.Context, id string) (Record, error) {
	value, err := s.client.Get(ctx, s.codec.Encrypt(id)).Result()
	if errors.Is(err, redis.Nil) {
		return Record{}, ErrNoSession
	}
	if err != nil {
		return Record{}, fmt.Errorf("session: fetch record: %w", err)
	}

	payload, err := s.codec.Decrypt(value)
	if err != nil {
		return Record{}, fmt.Errorf("session: decrypt record: %w", err)
	}

	var rec Record
	if err := json.Unmarshal([]byte(payload), &rec); err != nil {
		return Record{}, fmt.Errorf("session: decode record: %w", err)
	}
	return rec, nil
}

// Remove deletes the record under id, reporting ErrNoSession when the
// backend deleted nothing.
func (s *RedisStore) Remove(ctx context.Context, id string) error {
	deleted, err := s.client.Del(ctx, s.codec.Encrypt(id)).Result()
	if err != nil {
		return fmt.Errorf("session: remove record: %w", err)
	}
	if deleted == 0 {
		return ErrNoSession
	}
	return nil
}

// MarkLastUsed is a read-modify-write: fetch, bump LastAccess, re-store with
// the TTL recomputed from the unchanged ValidTill. Deliberately not atomic
// across concurrent writers; LastAccess is monotone per caller and bounded
// by ValidTill, so last-writer-wins is acceptable.
func (s *RedisStore) MarkLastUsed(ctx context.Context, id string, now int64) error {
	rec, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	rec.LastAccess = now
	return s.Add(ctx, id, rec)
}

// remainingTTL converts the record's remaining lifetime to whole seconds,
// never negative.
func remainingTTL(validTill, now int64) time.Duration {
	ms := validTill - now
	if ms < 0 {
		ms = 0
	}
	return time.Duration(ms/1000) * time.Second
}
