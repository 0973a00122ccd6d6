package repositories

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
)

const redisKeyPrefix = "fitstore"

type RedisStorage struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisStorage stores entries with the given ttl, refreshed on every
// write. A zero ttl keeps entries forever.
func NewRedisStorage(client *redis.Client, ttl time.Duration) *RedisStorage {
	return &RedisStorage{client: client, ttl: ttl}
}

func (s *RedisStorage) Open(_ http.ResponseWriter, r *http.Request, visitorID string) (KeyValueStore, error) {
	return s.Scope(r.Context(), visitorID), nil
}

func (s *RedisStorage) Scope(ctx context.Context, namespace string) KeyValueStore {
	return &redisScope{parent: s, ctx: ctx, namespace: namespace}
}

type redisScope struct {
	parent    *RedisStorage
	ctx       context.Context
	namespace string
}

func (s *redisScope) redisKey(key string) string {
	return fmt.Sprintf("%s:%s:%s", redisKeyPrefix, s.namespace, key)
}

func (s *redisScope) GetItem(key string) (string, bool, error) {
	val, err := s.parent.client.Get(s.ctx, s.redisKey(key)).Result()
	if err == redis.Nil {
		return "", false, nil
	}
	if err != nil {
		return "", false, errors.Wrapf(err, "redis GET %s", s.redisKey(key))
	}
	return val, true, nil
}

func (s *redisScope) SetItem(key, value string) error {
	err := s.parent.client.Set(s.ctx, s.redisKey(key), value, s.parent.ttl).Err()
	return errors.Wrapf(err, "redis SET %s", s.redisKey(key))
}

func (s *redisScope) RemoveItem(key string) error {
	err := s.parent.client.Del(s.ctx, s.redisKey(key)).Err()
	return errors.Wrapf(err, "redis DEL %s", s.redisKey(key))
}
