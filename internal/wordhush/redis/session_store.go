package redis

import (
	"context"
	"errors"
	"log/slog"

	"github.com/valkey-io/valkey-go"

	cerrors "github.com/wordhush/wordhush-bot-go/internal/common/errors"
	"github.com/wordhush/wordhush-bot-go/internal/common/gamesession"
	"github.com/wordhush/wordhush-bot-go/internal/wordhush/model"
)

// SessionStore persists the single per-chat game record. Sessions have no
// TTL; they live until won or ended.
type SessionStore struct {
	inner  *gamesession.Store[model.GameSession]
	logger *slog.Logger
}

// NewSessionStore creates a SessionStore.
func NewSessionStore(client valkey.Client, logger *slog.Logger) *SessionStore {
	if logger == nil {
		logger = slog.Default()
	}
	return &SessionStore{
		inner: gamesession.NewStore[model.GameSession](client, logger, gamesession.Config{
			KeyFunc: gameKey,
			TTL:     0,
		}),
		logger: logger,
	}
}

// Save writes the session record.
func (s *SessionStore) Save(ctx context.Context, chatID string, session model.GameSession) error {
	return s.inner.Save(ctx, chatID, session)
}

// Load reads the raw session record. Returns nil when absent.
func (s *SessionStore) Load(ctx context.Context, chatID string) (*model.GameSession, error) {
	return s.inner.Load(ctx, chatID)
}

// LoadValid reads the session and treats malformed or structurally invalid
// records as absent, logging them so corruption never wedges the chat.
// Connection failures still propagate.
func (s *SessionStore) LoadValid(ctx context.Context, chatID string) (*model.GameSession, error) {
	session, err := s.inner.Load(ctx, chatID)
	if err != nil {
		var redisErr cerrors.RedisError
		if errors.As(err, &redisErr) && redisErr.Operation == "session_unmarshal" {
			s.logger.Warn("session_malformed_treating_absent", "chat_id", chatID, "err", err)
			return nil, nil
		}
		return nil, err
	}
	if session == nil {
		return nil, nil
	}
	if !session.Validate() {
		s.logger.Warn("session_invalid_treating_absent", "chat_id", chatID)
		return nil, nil
	}
	return session, nil
}

// Delete removes the session record.
func (s *SessionStore) Delete(ctx context.Context, chatID string) error {
	return s.inner.Delete(ctx, chatID)
}

// Exists reports whether a session record is present, valid or not.
func (s *SessionStore) Exists(ctx context.Context, chatID string) (bool, error) {
	return s.inner.Exists(ctx, chatID)
}
