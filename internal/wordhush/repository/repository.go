// Package repository is the GORM-backed relational store for durable state:
// user balances, leaderboard entries, cached word hints and access grants.
// Methods are split by domain:
//   - users.go: user upsert, coin credit/debit
//   - leaderboard.go: win records and score queries
//   - word_hints.go: cached hint sets
//   - access.go: authorized users and designated game topics
package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"
)

// Repository wraps the gorm handle.
type Repository struct {
	db *gorm.DB
}

// New creates a Repository.
func New(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// AutoMigrate creates or updates the table schemas.
func (r *Repository) AutoMigrate(ctx context.Context) error {
	if r == nil || r.db == nil {
		return fmt.Errorf("db is nil")
	}
	if err := r.db.WithContext(ctx).AutoMigrate(
		&User{},
		&LeaderboardEntry{},
		&WordHint{},
		&AuthorizedUser{},
		&ChatGameTopic{},
	); err != nil {
		return fmt.Errorf("auto migrate failed: %w", err)
	}
	return nil
}
