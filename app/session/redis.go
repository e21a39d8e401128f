package session

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const redisKeyPrefix = "session:"

// RedisStore keeps snapshots in redis so sessions survive a process restart.
// Opt-in via session.backend: redis. Entries are written without TTL,
// matching the memory backend's no-expiry behavior.
type RedisStore struct{ rdb *redis.Client }

func NewRedisStore(rdb *redis.Client) *RedisStore { return &RedisStore{rdb: rdb} }

func (s *RedisStore) Create(ctx context.Context, snap Snapshot) (string, error) {
	token := uuid.NewString()
	b, err := json.Marshal(snap)
	if err != nil {
		return "", err
	}
	if err := s.rdb.Set(ctx, redisKeyPrefix+token, b, 0).Err(); err != nil {
		return "", err
	}
	return token, nil
}

func (s *RedisStore) Resolve(ctx context.Context, token string) (Snapshot, bool, error) {
	b, err := s.rdb.Get(ctx, redisKeyPrefix+token).Bytes()
	if errors.Is(err, redis.Nil) {
		return Snapshot{}, false, nil
	}
	if err != nil {
		return Snapshot{}, false, err
	}
	var snap Snapshot
	if err := json.Unmarshal(b, &snap); err != nil {
		return Snapshot{}, false, err
	}
	return snap, true, nil
}

func (s *RedisStore) Destroy(ctx context.Context, token string) error {
	return s.rdb.Del(ctx, redisKeyPrefix+token).Err()
}
