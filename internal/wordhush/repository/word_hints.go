package repository

import (
	"context"
	"errors"
	"fmt"

	json "github.com/goccy/go-json"
	"gorm.io/gorm"
)

// HintSet is a decoded word_hints row.
type HintSet struct {
	Word         string
	Level        string
	Hints        []string
	RelatedWords []string
	Sentence     string
}

// FindHintSet looks up a cached hint set for the exact word and level.
// Returns nil when absent. Multiple rows can exist for one word; a random
// one is picked so repeated games vary.
func (r *Repository) FindHintSet(ctx context.Context, level string, word string) (*HintSet, error) {
	if r == nil || r.db == nil {
		return nil, fmt.Errorf("db is nil")
	}
	var row WordHint
	err := r.db.WithContext(ctx).
		Where("level = ? AND word = ?", level, word).
		Order("RANDOM()").
		First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find hint set failed: %w", err)
	}
	return decodeHintRow(row)
}

// FindAnyHintSetByLevel picks a random cached hint set for the level,
// regardless of word. Returns nil when the level has no rows.
func (r *Repository) FindAnyHintSetByLevel(ctx context.Context, level string) (*HintSet, error) {
	if r == nil || r.db == nil {
		return nil, fmt.Errorf("db is nil")
	}
	var row WordHint
	err := r.db.WithContext(ctx).
		Where("level = ?", level).
		Order("RANDOM()").
		First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find hint set by level failed: %w", err)
	}
	return decodeHintRow(row)
}

// StoreHintSet caches a generated hint set.
func (r *Repository) StoreHintSet(ctx context.Context, set HintSet) error {
	if r == nil || r.db == nil {
		return fmt.Errorf("db is nil")
	}
	hints, err := json.Marshal(set.Hints)
	if err != nil {
		return fmt.Errorf("marshal hints failed: %w", err)
	}
	related, err := json.Marshal(set.RelatedWords)
	if err != nil {
		return fmt.Errorf("marshal related words failed: %w", err)
	}
	row := WordHint{
		Word:             set.Word,
		Level:            set.Level,
		HintsJSON:        string(hints),
		RelatedWordsJSON: string(related),
		Sentence:         set.Sentence,
	}
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		return fmt.Errorf("store hint set failed: %w", err)
	}
	return nil
}

func decodeHintRow(row WordHint) (*HintSet, error) {
	set := HintSet{
		Word:     row.Word,
		Level:    row.Level,
		Sentence: row.Sentence,
	}
	if err := json.Unmarshal([]byte(row.HintsJSON), &set.Hints); err != nil {
		return nil, fmt.Errorf("decode hints failed: %w", err)
	}
	if row.RelatedWordsJSON != "" {
		if err := json.Unmarshal([]byte(row.RelatedWordsJSON), &set.RelatedWords); err != nil {
			return nil, fmt.Errorf("decode related words failed: %w", err)
		}
	}
	return &set, nil
}
