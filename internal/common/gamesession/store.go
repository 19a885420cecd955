// Package gamesession provides a generic JSON-serialized session store on
// Valkey. Games inject their own key function, TTL and record type and share
// the same persistence logic.
package gamesession

import (
	"context"
	"log/slog"
	"time"

	json "github.com/goccy/go-json"
	"github.com/valkey-io/valkey-go"

	cerrors "github.com/wordhush/wordhush-bot-go/internal/common/errors"
	"github.com/wordhush/wordhush-bot-go/internal/common/valkeyx"
)

// KeyFunc builds the Redis key for a session id.
type KeyFunc func(sessionID string) string

// Store persists one session record per id as a JSON string.
// A zero TTL stores records without expiry (single-slot, deleted explicitly).
type Store[T any] struct {
	client  valkey.Client
	logger  *slog.Logger
	keyFunc KeyFunc
	ttl     time.Duration
}

// Config carries the per-game settings for a Store.
type Config struct {
	KeyFunc KeyFunc
	TTL     time.Duration
}

// NewStore creates a generic session store.
func NewStore[T any](client valkey.Client, logger *slog.Logger, cfg Config) *Store[T] {
	if logger == nil {
		logger = slog.Default()
	}
	return &Store[T]{
		client:  client,
		logger:  logger,
		keyFunc: cfg.KeyFunc,
		ttl:     cfg.TTL,
	}
}

// Save serializes data and writes it under the session key.
func (s *Store[T]) Save(ctx context.Context, sessionID string, data T) error {
	key := s.keyFunc(sessionID)

	payload, err := json.Marshal(data)
	if err != nil {
		return cerrors.RedisError{Operation: "session_marshal", Err: err}
	}

	if err := valkeyx.SetStringEX(ctx, s.client, key, string(payload), s.ttl); err != nil {
		return cerrors.RedisError{Operation: "session_save", Err: err}
	}

	s.logger.Debug("session_saved", "session_id", sessionID)
	return nil
}

// Load reads and deserializes the session record.
// Returns nil when the key is absent.
func (s *Store[T]) Load(ctx context.Context, sessionID string) (*T, error) {
	key := s.keyFunc(sessionID)

	raw, ok, err := valkeyx.GetBytes(ctx, s.client, key)
	if err != nil {
		return nil, cerrors.RedisError{Operation: "session_load", Err: err}
	}
	if !ok {
		return nil, nil
	}

	var data T
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, cerrors.RedisError{Operation: "session_unmarshal", Err: err}
	}
	return &data, nil
}

// Delete removes the session record.
func (s *Store[T]) Delete(ctx context.Context, sessionID string) error {
	key := s.keyFunc(sessionID)

	if err := valkeyx.DeleteKeys(ctx, s.client, key); err != nil {
		return cerrors.RedisError{Operation: "session_delete", Err: err}
	}
	s.logger.Debug("session_deleted", "session_id", sessionID)
	return nil
}

// Exists reports whether a session record is present.
func (s *Store[T]) Exists(ctx context.Context, sessionID string) (bool, error) {
	key := s.keyFunc(sessionID)

	ok, err := valkeyx.Exists(ctx, s.client, key)
	if err != nil {
		return false, cerrors.RedisError{Operation: "session_exists", Err: err}
	}
	return ok, nil
}

// Client returns the underlying Valkey client for game-specific extensions.
func (s *Store[T]) Client() valkey.Client {
	return s.client
}

// Logger returns the store's logger.
func (s *Store[T]) Logger() *slog.Logger {
	return s.logger
}
