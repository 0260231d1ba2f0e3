package content

import (
	"context"
	"errors"
	"sync"

	"github.com/redis/go-redis/v9"
)

// ErrKeyMissing is returned by a KV when a collection has never been saved.
var ErrKeyMissing = errors.New("content: key missing")

// KV is the durable key-value substrate the record store sits on. One blob
// per collection, whole-value reads and writes, no transactions.
type KV interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
}

// ===========================
// Redis-backed KV (production)
type redisKV struct {
	rdb *redis.Client
}

func NewRedisKV(rdb *redis.Client) KV {
	return &redisKV{rdb: rdb}
}

func (r *redisKV) Get(ctx context.Context, key string) (string, error) {
	val, err := r.rdb.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return "", ErrKeyMissing
	}
	return val, err
}

func (r *redisKV) Set(ctx context.Context, key, value string) error {
	// No TTL: site content lives until it is overwritten
	return r.rdb.Set(ctx, key, value, 0).Err()
}

// ===========================
// In-memory KV (tests, and running without Redis)
type memoryKV struct {
	mu   sync.RWMutex
	data map[string]string
}

func NewMemoryKV() KV {
	return &memoryKV{data: map[string]string{}}
}

func (m *memoryKV) Get(_ context.Context, key string) (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	val, ok := m.data[key]
	if !ok {
		return "", ErrKeyMissing
	}
	return val, nil
}

func (m *memoryKV) Set(_ context.Context, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = value
	return nil
}
