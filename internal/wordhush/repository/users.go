package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	wherrors "github.com/wordhush/wordhush-bot-go/internal/wordhush/errors"
)

// UpsertWithCredit inserts the user or, on conflict, refreshes the profile
// and adds the credit to the existing balance.
func (r *Repository) UpsertWithCredit(ctx context.Context, user User, credit int) error {
	if r == nil || r.db == nil {
		return fmt.Errorf("db is nil")
	}
	user.Coins = credit
	result := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "id"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"name":     user.Name,
			"username": user.Username,
			"coins":    gorm.Expr("users.coins + ?", credit),
		}),
	}).Create(&user)
	if result.Error != nil {
		return fmt.Errorf("upsert user failed: %w", result.Error)
	}
	return nil
}

// GetUser fetches a user by id. Returns nil when absent.
func (r *Repository) GetUser(ctx context.Context, userID string) (*User, error) {
	if r == nil || r.db == nil {
		return nil, fmt.Errorf("db is nil")
	}
	var user User
	err := r.db.WithContext(ctx).Where("id = ?", userID).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get user failed: %w", err)
	}
	return &user, nil
}

// DebitIfSufficient atomically subtracts price from the user's balance.
// The update only matches when the balance covers the price, so a race
// between two purchases cannot drive coins negative.
func (r *Repository) DebitIfSufficient(ctx context.Context, userID string, price int) error {
	if r == nil || r.db == nil {
		return fmt.Errorf("db is nil")
	}
	result := r.db.WithContext(ctx).Model(&User{}).
		Where("id = ? AND coins >= ?", userID, price).
		Update("coins", gorm.Expr("coins - ?", price))
	if result.Error != nil {
		return fmt.Errorf("debit user failed: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return wherrors.InsufficientCoinsError{Price: price}
	}
	return nil
}
