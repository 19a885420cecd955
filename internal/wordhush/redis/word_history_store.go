package redis

import (
	"context"
	"log/slog"

	"github.com/valkey-io/valkey-go"

	cerrors "github.com/wordhush/wordhush-bot-go/internal/common/errors"
	whconfig "github.com/wordhush/wordhush-bot-go/internal/wordhush/config"
)

// WordHistoryStore tracks the per-chat set of recently used words so the
// selector avoids repeats.
type WordHistoryStore struct {
	client valkey.Client
	logger *slog.Logger
}

// NewWordHistoryStore creates a WordHistoryStore.
func NewWordHistoryStore(client valkey.Client, logger *slog.Logger) *WordHistoryStore {
	if logger == nil {
		logger = slog.Default()
	}
	return &WordHistoryStore{client: client, logger: logger}
}

// Members returns the used words for the chat.
func (s *WordHistoryStore) Members(ctx context.Context, chatID string) ([]string, error) {
	key := historyKey(chatID)
	cmd := s.client.B().Smembers().Key(key).Build()
	members, err := s.client.Do(ctx, cmd).AsStrSlice()
	if err != nil {
		return nil, cerrors.RedisError{Operation: "history_members", Err: err}
	}
	return members, nil
}

// Size returns the used-word count for the chat.
func (s *WordHistoryStore) Size(ctx context.Context, chatID string) (int64, error) {
	key := historyKey(chatID)
	cmd := s.client.B().Scard().Key(key).Build()
	n, err := s.client.Do(ctx, cmd).AsInt64()
	if err != nil {
		return 0, cerrors.RedisError{Operation: "history_size", Err: err}
	}
	return n, nil
}

// Record adds a word to the history and refreshes the idle TTL. When the
// set has reached its ceiling a random fifth of it is popped so the chat
// never runs out of candidates.
func (s *WordHistoryStore) Record(ctx context.Context, chatID string, word string, currentSize int64) error {
	key := historyKey(chatID)

	addCmd := s.client.B().Sadd().Key(key).Member(word).Build()
	if err := s.client.Do(ctx, addCmd).Error(); err != nil {
		return cerrors.RedisError{Operation: "history_record", Err: err}
	}

	expireCmd := s.client.B().Expire().Key(key).Seconds(int64(whconfig.WordHistoryTTL.Seconds())).Build()
	if err := s.client.Do(ctx, expireCmd).Error(); err != nil {
		return cerrors.RedisError{Operation: "history_expire", Err: err}
	}

	if currentSize >= whconfig.WordHistoryCeiling {
		trimCount := int64(float64(whconfig.WordHistoryCeiling) * whconfig.WordHistoryTrimRatio)
		popCmd := s.client.B().Spop().Key(key).Count(trimCount).Build()
		if err := s.client.Do(ctx, popCmd).Error(); err != nil {
			return cerrors.RedisError{Operation: "history_trim", Err: err}
		}
		s.logger.Debug("word_history_trimmed", "chat_id", chatID, "count", trimCount)
	}

	return nil
}

// Collapse replaces the history with just the given recent words, making
// older words eligible again.
func (s *WordHistoryStore) Collapse(ctx context.Context, chatID string, keep []string) error {
	key := historyKey(chatID)

	delCmd := s.client.B().Del().Key(key).Build()
	if err := s.client.Do(ctx, delCmd).Error(); err != nil {
		return cerrors.RedisError{Operation: "history_collapse_del", Err: err}
	}

	if len(keep) > 0 {
		addCmd := s.client.B().Sadd().Key(key).Member(keep...).Build()
		if err := s.client.Do(ctx, addCmd).Error(); err != nil {
			return cerrors.RedisError{Operation: "history_collapse_add", Err: err}
		}
	}

	s.logger.Debug("word_history_collapsed", "chat_id", chatID, "kept", len(keep))
	return nil
}

// Swap replaces oldWord with newWord in the history. Used when the hint
// source resolves a different lemma than the one originally drawn.
func (s *WordHistoryStore) Swap(ctx context.Context, chatID string, oldWord, newWord string) error {
	key := historyKey(chatID)

	addCmd := s.client.B().Sadd().Key(key).Member(newWord).Build()
	if err := s.client.Do(ctx, addCmd).Error(); err != nil {
		return cerrors.RedisError{Operation: "history_swap_add", Err: err}
	}

	remCmd := s.client.B().Srem().Key(key).Member(oldWord).Build()
	if err := s.client.Do(ctx, remCmd).Error(); err != nil {
		return cerrors.RedisError{Operation: "history_swap_rem", Err: err}
	}

	return nil
}

// Clear removes the chat's word history.
func (s *WordHistoryStore) Clear(ctx context.Context, chatID string) error {
	key := historyKey(chatID)
	cmd := s.client.B().Del().Key(key).Build()
	if err := s.client.Do(ctx, cmd).Error(); err != nil {
		return cerrors.RedisError{Operation: "history_clear", Err: err}
	}
	return nil
}
