package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/rasel-stacklearner/blogger/internal/resilience/circuitbreaker"
)

// ErrCacheMiss indicates that the key was not present in the cache store.
// Callers treat it as the signal to fall through to the authoritative store.
var ErrCacheMiss = errors.New("cache miss")

// PostDetailKey builds the cache key for a post's composed detail view.
// The key shape is part of the cache contract shared with operators.
func PostDetailKey(postID string) string {
	return fmt.Sprintf("post:%s:details", postID)
}

// Store wraps the cache store client with a circuit breaker so that a
// struggling Redis degrades every operation into a fast failure instead of
// stalling request handling. Failure isolation is the point: no Store error
// may ever decide the outcome of an HTTP request on its own.
type Store struct {
	client  redis.UniversalClient
	breaker *circuitbreaker.CircuitBreaker
}

// NewStore creates a Store around the given client.
func NewStore(client redis.UniversalClient) *Store {
	return &Store{
		client:  client,
		breaker: circuitbreaker.New(circuitbreaker.CacheConfig()),
	}
}

// Get retrieves the raw value stored under key.
// Returns ErrCacheMiss when the key does not exist. An open circuit is
// reported as an infrastructure error, which callers handle like a miss.
func (s *Store) Get(ctx context.Context, key string) ([]byte, error) {
	result, err := s.breaker.Execute(func() (interface{}, error) {
		val, err := s.client.Get(ctx, key).Bytes()
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return val, err
	})
	if err != nil {
		return nil, fmt.Errorf("cache get %q: %w", key, err)
	}
	if result == nil {
		return nil, ErrCacheMiss
	}
	return result.([]byte), nil
}

// Set stores val under key with the given expiry.
func (s *Store) Set(ctx context.Context, key string, val []byte, ttl time.Duration) error {
	_, err := s.breaker.Execute(func() (interface{}, error) {
		return nil, s.client.Set(ctx, key, val, ttl).Err()
	})
	if err != nil {
		return fmt.Errorf("cache set %q: %w", key, err)
	}
	return nil
}

// Delete removes key from the cache store. Missing keys are not an error.
func (s *Store) Delete(ctx context.Context, key string) error {
	_, err := s.breaker.Execute(func() (interface{}, error) {
		return nil, s.client.Del(ctx, key).Err()
	})
	if err != nil {
		return fmt.Errorf("cache delete %q: %w", key, err)
	}
	return nil
}

// PushList pushes val onto the head of the list at key and trims the list to
// maxLen entries, so the access-log mirror cannot grow without bound.
// Both commands travel in one pipeline round trip.
func (s *Store) PushList(ctx context.Context, key string, val []byte, maxLen int64) error {
	_, err := s.breaker.Execute(func() (interface{}, error) {
		pipe := s.client.Pipeline()
		pipe.LPush(ctx, key, val)
		pipe.LTrim(ctx, key, 0, maxLen-1)
		_, err := pipe.Exec(ctx)
		return nil, err
	})
	if err != nil {
		return fmt.Errorf("cache push %q: %w", key, err)
	}
	return nil
}

// Breaker exposes the store's circuit breaker for health reporting.
func (s *Store) Breaker() *circuitbreaker.CircuitBreaker {
	return s.breaker
}
