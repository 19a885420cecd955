package repository

import (
	"context"
	"fmt"
	"time"
)

// ScoreRow is one aggregated leaderboard line.
type ScoreRow struct {
	UserID string
	Name   string
	Total  int
	Wins   int
}

// RecordWin appends one leaderboard entry.
func (r *Repository) RecordWin(ctx context.Context, entry LeaderboardEntry) error {
	if r == nil || r.db == nil {
		return fmt.Errorf("db is nil")
	}
	if err := r.db.WithContext(ctx).Create(&entry).Error; err != nil {
		return fmt.Errorf("record win failed: %w", err)
	}
	return nil
}

// TopScores aggregates per-user totals for a chat since the given time,
// highest total first. A zero since covers all time.
func (r *Repository) TopScores(ctx context.Context, chatID string, since time.Time, limit int) ([]ScoreRow, error) {
	if r == nil || r.db == nil {
		return nil, fmt.Errorf("db is nil")
	}
	query := r.db.WithContext(ctx).Model(&LeaderboardEntry{}).
		Select("leaderboard.user_id AS user_id, users.name AS name, SUM(leaderboard.score) AS total, COUNT(*) AS wins").
		Joins("JOIN users ON users.id = leaderboard.user_id").
		Where("leaderboard.chat_id = ?", chatID)
	if !since.IsZero() {
		query = query.Where("leaderboard.created_at >= ?", since)
	}

	var rows []ScoreRow
	err := query.Group("leaderboard.user_id, users.name").
		Order("total DESC").
		Limit(limit).
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("top scores failed: %w", err)
	}
	return rows, nil
}

// UserScore sums one user's points and wins in a chat.
func (r *Repository) UserScore(ctx context.Context, chatID string, userID string) (total int, wins int, err error) {
	if r == nil || r.db == nil {
		return 0, 0, fmt.Errorf("db is nil")
	}
	var row struct {
		Total int
		Wins  int
	}
	err = r.db.WithContext(ctx).Model(&LeaderboardEntry{}).
		Select("COALESCE(SUM(score), 0) AS total, COUNT(*) AS wins").
		Where("chat_id = ? AND user_id = ?", chatID, userID).
		Scan(&row).Error
	if err != nil {
		return 0, 0, fmt.Errorf("user score failed: %w", err)
	}
	return row.Total, row.Wins, nil
}
