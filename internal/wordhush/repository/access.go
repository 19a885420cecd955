package repository

import (
	"context"
	"fmt"
)

// IsUserAuthorized reports whether the user was granted end-game rights in
// the chat.
func (r *Repository) IsUserAuthorized(ctx context.Context, chatID string, userID string) (bool, error) {
	if r == nil || r.db == nil {
		return false, fmt.Errorf("db is nil")
	}
	var count int64
	err := r.db.WithContext(ctx).Model(&AuthorizedUser{}).
		Where("chat_id = ? AND user_id = ?", chatID, userID).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("authorized user lookup failed: %w", err)
	}
	return count > 0, nil
}

// AllowedTopics lists the forum topics designated for the game in a chat.
// An empty list means every topic is allowed.
func (r *Repository) AllowedTopics(ctx context.Context, chatID string) ([]string, error) {
	if r == nil || r.db == nil {
		return nil, fmt.Errorf("db is nil")
	}
	var topics []string
	err := r.db.WithContext(ctx).Model(&ChatGameTopic{}).
		Where("chat_id = ?", chatID).
		Pluck("topic_id", &topics).Error
	if err != nil {
		return nil, fmt.Errorf("allowed topics lookup failed: %w", err)
	}
	return topics, nil
}
