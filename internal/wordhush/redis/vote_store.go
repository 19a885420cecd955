package redis

import (
	"context"

	json "github.com/goccy/go-json"
	"github.com/valkey-io/valkey-go"

	cerrors "github.com/wordhush/wordhush-bot-go/internal/common/errors"
	"github.com/wordhush/wordhush-bot-go/internal/common/valkeyx"
	whconfig "github.com/wordhush/wordhush-bot-go/internal/wordhush/config"
	"github.com/wordhush/wordhush-bot-go/internal/wordhush/model"
)

// VoteStore persists the per-chat termination vote with a fixed TTL.
// Every save refreshes the expiry, matching the vote's five minute life.
type VoteStore struct {
	client valkey.Client
}

// NewVoteStore creates a VoteStore.
func NewVoteStore(client valkey.Client) *VoteStore {
	return &VoteStore{client: client}
}

// Get reads the open vote. Returns nil when none exists.
func (s *VoteStore) Get(ctx context.Context, chatID string) (*model.EndVote, error) {
	key := voteKey(chatID)

	raw, ok, err := valkeyx.GetBytes(ctx, s.client, key)
	if err != nil {
		return nil, cerrors.RedisError{Operation: "vote_get", Err: err}
	}
	if !ok {
		return nil, nil
	}

	var vote model.EndVote
	if err := json.Unmarshal(raw, &vote); err != nil {
		return nil, cerrors.RedisError{Operation: "vote_unmarshal", Err: err}
	}
	return &vote, nil
}

// Save writes the vote and resets its TTL.
func (s *VoteStore) Save(ctx context.Context, chatID string, vote model.EndVote) error {
	key := voteKey(chatID)

	raw, err := json.Marshal(vote)
	if err != nil {
		return cerrors.RedisError{Operation: "vote_marshal", Err: err}
	}

	if err := valkeyx.SetStringEX(ctx, s.client, key, string(raw), whconfig.VoteTTL); err != nil {
		return cerrors.RedisError{Operation: "vote_save", Err: err}
	}
	return nil
}

// Clear removes the vote, on resolution or game end.
func (s *VoteStore) Clear(ctx context.Context, chatID string) error {
	key := voteKey(chatID)

	if err := valkeyx.DeleteKeys(ctx, s.client, key); err != nil {
		return cerrors.RedisError{Operation: "vote_clear", Err: err}
	}
	return nil
}

// Exists reports whether a vote is open for the chat.
func (s *VoteStore) Exists(ctx context.Context, chatID string) (bool, error) {
	ok, err := valkeyx.Exists(ctx, s.client, voteKey(chatID))
	if err != nil {
		return false, cerrors.RedisError{Operation: "vote_exists", Err: err}
	}
	return ok, nil
}
