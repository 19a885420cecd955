package service

import (
	"context"
	"crypto/rand"
	"fmt"
	"log/slog"
	"math/big"

	whconfig "github.com/wordhush/wordhush-bot-go/internal/wordhush/config"
	"github.com/wordhush/wordhush-bot-go/internal/wordhush/model"
	whredis "github.com/wordhush/wordhush-bot-go/internal/wordhush/redis"
	"github.com/wordhush/wordhush-bot-go/internal/wordhush/words"
)

// WordSelector draws a random word for a level while avoiding the chat's
// recent words. When the candidate pool runs dry the history collapses to
// its most recent half-threshold and selection retries once. Any history
// store failure degrades to an unfiltered random pick so a game can always
// start.
type WordSelector struct {
	history *whredis.WordHistoryStore
	logger  *slog.Logger
}

// NewWordSelector creates a WordSelector.
func NewWordSelector(history *whredis.WordHistoryStore, logger *slog.Logger) *WordSelector {
	if logger == nil {
		logger = slog.Default()
	}
	return &WordSelector{history: history, logger: logger}
}

// Pick selects a word for the chat at the given level and records it in the
// history.
func (s *WordSelector) Pick(ctx context.Context, chatID string, level model.Level) (string, error) {
	candidates, err := words.ForLevel(level)
	if err != nil {
		return "", err
	}

	// One collapse at most. A second dry pool means the catalog itself is
	// smaller than the threshold and filtering is pointless.
	for iteration := 0; iteration < 2; iteration++ {
		used, err := s.history.Members(ctx, chatID)
		if err != nil {
			return s.fallbackPick(chatID, candidates, err)
		}
		size, err := s.history.Size(ctx, chatID)
		if err != nil {
			return s.fallbackPick(chatID, candidates, err)
		}

		usedSet := make(map[string]struct{}, len(used))
		for _, w := range used {
			usedSet[w] = struct{}{}
		}
		available := make([]string, 0, len(candidates))
		for _, w := range candidates {
			if _, ok := usedSet[w]; !ok {
				available = append(available, w)
			}
		}

		if len(available) < whconfig.WordHistoryResetThreshold && iteration == 0 {
			keep := used
			if half := whconfig.WordHistoryResetThreshold / 2; len(keep) > half {
				keep = keep[len(keep)-half:]
			}
			if err := s.history.Collapse(ctx, chatID, keep); err != nil {
				return s.fallbackPick(chatID, candidates, err)
			}
			continue
		}

		if len(available) == 0 {
			available = candidates
		}

		word, err := randomElement(available)
		if err != nil {
			return "", err
		}
		if err := s.history.Record(ctx, chatID, word, size); err != nil {
			return s.fallbackPick(chatID, candidates, err)
		}
		return word, nil
	}

	return randomElement(candidates)
}

// fallbackPick serves an unfiltered random word when the history store is
// unreachable. Starting a game beats avoiding a repeat.
func (s *WordSelector) fallbackPick(chatID string, candidates []string, cause error) (string, error) {
	s.logger.Warn("word_history_unavailable", "chat_id", chatID, "err", cause)
	return randomElement(candidates)
}

func randomElement(items []string) (string, error) {
	if len(items) == 0 {
		return "", fmt.Errorf("no candidate words")
	}
	idx, err := randomIndex(len(items))
	if err != nil {
		return "", err
	}
	return items[idx], nil
}

func randomIndex(n int) (int, error) {
	if n <= 0 {
		return 0, fmt.Errorf("empty selection pool")
	}
	v, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		return 0, fmt.Errorf("random pick failed: %w", err)
	}
	return int(v.Int64()), nil
}
