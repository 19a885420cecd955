package redis

import (
	"context"

	"github.com/valkey-io/valkey-go"

	cerrors "github.com/wordhush/wordhush-bot-go/internal/common/errors"
	"github.com/wordhush/wordhush-bot-go/internal/common/valkeyx"
)

// LatestMessageStore remembers the most recent chat message id seen during
// a game, so hint updates can decide between editing in place and posting a
// fresh message when the conversation has moved on.
type LatestMessageStore struct {
	client valkey.Client
}

// NewLatestMessageStore creates a LatestMessageStore.
func NewLatestMessageStore(client valkey.Client) *LatestMessageStore {
	return &LatestMessageStore{client: client}
}

// Record stores the message id for the chat.
func (s *LatestMessageStore) Record(ctx context.Context, chatID string, messageID string) error {
	if err := valkeyx.SetString(ctx, s.client, latestMsgKey(chatID), messageID); err != nil {
		return cerrors.RedisError{Operation: "latest_msg_record", Err: err}
	}
	return nil
}

// Get reads the last recorded message id. Empty when none.
func (s *LatestMessageStore) Get(ctx context.Context, chatID string) (string, error) {
	value, ok, err := valkeyx.GetString(ctx, s.client, latestMsgKey(chatID))
	if err != nil {
		return "", cerrors.RedisError{Operation: "latest_msg_get", Err: err}
	}
	if !ok {
		return "", nil
	}
	return value, nil
}

// Clear removes the chat's record.
func (s *LatestMessageStore) Clear(ctx context.Context, chatID string) error {
	if err := valkeyx.DeleteKeys(ctx, s.client, latestMsgKey(chatID)); err != nil {
		return cerrors.RedisError{Operation: "latest_msg_clear", Err: err}
	}
	return nil
}
