// internal/domain/cart/storage.go
package cart

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

// ErrNotFound is returned by Storage.Get when the key has no value
var ErrNotFound = errors.New("cart: key not found")

// Storage is the durable key-value store the cart is persisted to. One string
// key maps to one JSON-serialized cart. Reading a missing key yields
// ErrNotFound, which callers treat as an empty cart.
type Storage interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string, ttl time.Duration) error
	Del(ctx context.Context, key string) error
}

// RedisStorage persists carts in Redis
type RedisStorage struct {
	client *redis.Client
}

// NewRedisStorage creates a Redis-backed cart storage
func NewRedisStorage(client *redis.Client) *RedisStorage {
	return &RedisStorage{client: client}
}

func (s *RedisStorage) Get(ctx context.Context, key string) (string, error) {
	value, err := s.client.Get(ctx, key).Result()
	if err == redis.Nil {
		return "", ErrNotFound
	}
	if err != nil {
		return "", err
	}
	return value, nil
}

func (s *RedisStorage) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	return s.client.Set(ctx, key, value, ttl).Err()
}

func (s *RedisStorage) Del(ctx context.Context, key string) error {
	return s.client.Del(ctx, key).Err()
}

// MemoryStorage is an in-process Storage used by tests and local development.
// TTLs are recorded but only enforced lazily on read.
type MemoryStorage struct {
	mu      sync.RWMutex
	values  map[string]string
	expires map[string]time.Time
}

// NewMemoryStorage creates an empty in-memory cart storage
func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{
		values:  make(map[string]string),
		expires: make(map[string]time.Time),
	}
}

func (s *MemoryStorage) Get(ctx context.Context, key string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	value, ok := s.values[key]
	if !ok {
		return "", ErrNotFound
	}
	if expiry, ok := s.expires[key]; ok && time.Now().After(expiry) {
		return "", ErrNotFound
	}
	return value, nil
}

func (s *MemoryStorage) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.values[key] = value
	if ttl > 0 {
		s.expires[key] = time.Now().Add(ttl)
	} else {
		delete(s.expires, key)
	}
	return nil
}

func (s *MemoryStorage) Del(ctx context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.values, key)
	delete(s.expires, key)
	return nil
}
