// internal/domain/cart/store.go
package cart

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// DecodeError reports a persisted cart payload that could not be parsed. The
// store never silently discards it; callers decide whether to fall back to an
// empty cart.
type DecodeError struct {
	Key string
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("cart: corrupt payload at %s: %v", e.Key, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// IsDecodeError reports whether err wraps a DecodeError
func IsDecodeError(err error) bool {
	var decodeErr *DecodeError
	return errors.As(err, &decodeErr)
}

// Store is the persistence gateway for session carts. One Store instance is
// constructed at startup and shared; each cart is keyed by its session id and
// written back in full on every mutation.
type Store struct {
	storage Storage
	ttl     time.Duration
}

// NewStore creates a cart store over the given key-value storage. The TTL is
// applied on every write, so active carts keep sliding forward.
func NewStore(storage Storage, ttl time.Duration) *Store {
	return &Store{
		storage: storage,
		ttl:     ttl,
	}
}

// Load reads the cart for a session. A missing key yields a fresh empty cart.
// A payload that fails to parse yields a *DecodeError; the caller chooses the
// recovery policy.
func (s *Store) Load(ctx context.Context, sessionID string) (*Cart, error) {
	if sessionID == "" {
		return nil, fmt.Errorf("cart: session id required")
	}

	key := sessionKey(sessionID)
	payload, err := s.storage.Get(ctx, key)
	if errors.Is(err, ErrNotFound) {
		return New(sessionID), nil
	}
	if err != nil {
		return nil, fmt.Errorf("cart: failed to load %s: %w", key, err)
	}

	var cart Cart
	if err := json.Unmarshal([]byte(payload), &cart); err != nil {
		return nil, &DecodeError{Key: key, Err: err}
	}

	// Older payloads may predate the line id counter
	if cart.NextLineID == 0 {
		cart.NextLineID = 1
		for _, line := range cart.Lines {
			if line.ID >= cart.NextLineID {
				cart.NextLineID = line.ID + 1
			}
		}
	}
	cart.SessionID = sessionID

	return &cart, nil
}

// Save serializes the whole cart and writes it under the session key
func (s *Store) Save(ctx context.Context, cart *Cart) error {
	payload, err := json.Marshal(cart)
	if err != nil {
		return fmt.Errorf("cart: failed to encode cart: %w", err)
	}

	key := sessionKey(cart.SessionID)
	if err := s.storage.Set(ctx, key, string(payload), s.ttl); err != nil {
		return fmt.Errorf("cart: failed to save %s: %w", key, err)
	}
	return nil
}

// Delete drops the persisted cart for a session
func (s *Store) Delete(ctx context.Context, sessionID string) error {
	return s.storage.Del(ctx, sessionKey(sessionID))
}

func sessionKey(sessionID string) string {
	return "cart:session:" + sessionID
}
