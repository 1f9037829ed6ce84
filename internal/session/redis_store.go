package session

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "session:"

// RedisStore implements Store on top of a Redis client. Records are
// stored as JSON under "session:<id>" with a TTL applied on every write.
// The client is safe for concurrent use; no additional locking is done
// here, so concurrent read-modify-write cycles on one session can lose
// an update (see Manager).
type RedisStore struct {
	client redis.UniversalClient
}

// NewRedisStore creates a Redis-backed session store.
func NewRedisStore(client redis.UniversalClient) *RedisStore {
	return &RedisStore{client: client}
}

func sessionKey(id string) string {
	return keyPrefix + id
}

// Get retrieves and deserializes a session record.
func (s *RedisStore) Get(ctx context.Context, id string) (*Session, error) {
	raw, err := s.client.Get(ctx, sessionKey(id)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrNoSession
		}
		return nil, errors.Join(ErrStoreFailure, err)
	}

	var sess Session
	if err := json.Unmarshal([]byte(raw), &sess); err != nil {
		return nil, errors.Join(ErrCorruptRecord, err)
	}
	return &sess, nil
}

// Set serializes and writes a session record with the given TTL.
func (s *RedisStore) Set(ctx context.Context, sess *Session, ttl time.Duration) error {
	if sess == nil || sess.ID == "" {
		return ErrInvalidSession
	}

	raw, err := json.Marshal(sess)
	if err != nil {
		return errors.Join(ErrStoreFailure, err)
	}

	if err := s.client.Set(ctx, sessionKey(sess.ID), raw, ttl).Err(); err != nil {
		return errors.Join(ErrStoreFailure, err)
	}
	return nil
}

// Delete removes a session record. Deleting a missing record is a no-op.
func (s *RedisStore) Delete(ctx context.Context, id string) error {
	if err := s.client.Del(ctx, sessionKey(id)).Err(); err != nil {
		return errors.Join(ErrStoreFailure, err)
	}
	return nil
}

// Exists reports whether a live record exists for the identifier.
func (s *RedisStore) Exists(ctx context.Context, id string) (bool, error) {
	n, err := s.client.Exists(ctx, sessionKey(id)).Result()
	if err != nil {
		return false, errors.Join(ErrStoreFailure, err)
	}
	return n > 0, nil
}

// Touch resets the record's TTL to the full duration.
func (s *RedisStore) Touch(ctx context.Context, id string, ttl time.Duration) (bool, error) {
	ok, err := s.client.Expire(ctx, sessionKey(id), ttl).Result()
	if err != nil {
		return false, errors.Join(ErrStoreFailure, err)
	}
	return ok, nil
}
