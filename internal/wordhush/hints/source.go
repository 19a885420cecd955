// Package hints resolves the hint set for a game word: a list of hints, all
// accepted forms of the word, and an example sentence. The cached source
// serves from the word_hints table; the Gemini generator fills the gaps and
// stores what it produces.
package hints

import (
	"context"
	"log/slog"

	"github.com/wordhush/wordhush-bot-go/internal/wordhush/model"
	"github.com/wordhush/wordhush-bot-go/internal/wordhush/repository"
)

// WordHints is a resolved hint set. ResolvedWord may differ from the
// requested word when the cache fell back to another word of the same level.
type WordHints struct {
	Words    []string
	Hints    []string
	Sentence string

	ResolvedWord string
}

// Source resolves hints for a word. A nil result with nil error means the
// source has nothing for the word.
type Source interface {
	HintsFor(ctx context.Context, level model.Level, word string) (*WordHints, error)
}

// CachedSource serves hint sets from the database cache. When the exact
// word has no row it falls back to any cached word of the same level, so a
// sparsely seeded cache still yields a playable game.
type CachedSource struct {
	repo   *repository.Repository
	logger *slog.Logger
}

// NewCachedSource creates a CachedSource.
func NewCachedSource(repo *repository.Repository, logger *slog.Logger) *CachedSource {
	if logger == nil {
		logger = slog.Default()
	}
	return &CachedSource{repo: repo, logger: logger}
}

// HintsFor looks up the word, then any word of the level.
func (s *CachedSource) HintsFor(ctx context.Context, level model.Level, word string) (*WordHints, error) {
	set, err := s.repo.FindHintSet(ctx, string(level), word)
	if err != nil {
		return nil, err
	}
	if set == nil {
		set, err = s.repo.FindAnyHintSetByLevel(ctx, string(level))
		if err != nil {
			return nil, err
		}
		if set == nil {
			return nil, nil
		}
		s.logger.Debug("hint_cache_level_fallback", "level", level, "requested", word, "resolved", set.Word)
	}
	return &WordHints{
		Words:        set.RelatedWords,
		Hints:        set.Hints,
		Sentence:     set.Sentence,
		ResolvedWord: set.Word,
	}, nil
}
