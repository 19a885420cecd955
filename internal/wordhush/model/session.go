package model

import (
	"strings"
)

// GameSession is the single per-chat game record. CurrentHintIndex starts at
// 1 (the first hint is shown on start) and counts revealed hints.
type GameSession struct {
	Words             []string `json:"words"`
	Hints             []string `json:"hints"`
	Sentence          string   `json:"sentence"`
	Level             Level    `json:"level"`
	CurrentHintIndex  int      `json:"currentHintIndex"`
	RevealedPositions []int    `json:"revealedPositions"`
	StartedBy         string   `json:"startedBy,omitempty"`
}

// Validate reports whether the record is structurally usable: at least one
// answer form, a known level and an in-range hint index.
func (s *GameSession) Validate() bool {
	if s == nil {
		return false
	}
	if len(s.Words) == 0 || strings.TrimSpace(s.Words[0]) == "" {
		return false
	}
	if !s.Level.Valid() {
		return false
	}
	if s.CurrentHintIndex < 0 || s.CurrentHintIndex > len(s.Hints) {
		return false
	}
	return true
}

// Answer is the canonical word (the first listed form).
func (s *GameSession) Answer() string {
	if len(s.Words) == 0 {
		return ""
	}
	return s.Words[0]
}

// HintsUsed is the count of hints beyond the free opening hint, used for
// score deduction.
func (s *GameSession) HintsUsed() int {
	used := s.CurrentHintIndex - 1
	if used < 0 {
		return 0
	}
	return used
}

// RevealedHints returns the hints shown so far.
func (s *GameSession) RevealedHints() []string {
	n := s.CurrentHintIndex
	if n > len(s.Hints) {
		n = len(s.Hints)
	}
	if n < 0 {
		n = 0
	}
	return s.Hints[:n]
}

// HasMoreHints reports whether another hint can be revealed. The last hint
// stays held back so the word is never fully given away.
func (s *GameSession) HasMoreHints() bool {
	return s.CurrentHintIndex < len(s.Hints)-1
}

// IsRevealed reports whether the letter position is already visible.
func (s *GameSession) IsRevealed(position int) bool {
	for _, p := range s.RevealedPositions {
		if p == position {
			return true
		}
	}
	return false
}

// RemainingPositions lists the answer's letter positions not yet revealed.
// Positions index letters, not bytes.
func (s *GameSession) RemainingPositions() []int {
	letters := []rune(s.Answer())
	remaining := make([]int, 0, len(letters))
	for i := range letters {
		if !s.IsRevealed(i) {
			remaining = append(remaining, i)
		}
	}
	return remaining
}

// MaskedWord renders the answer with unrevealed letters as underscores,
// space separated: "c _ t".
func (s *GameSession) MaskedWord() string {
	letters := []rune(s.Answer())
	parts := make([]string, 0, len(letters))
	for i, r := range letters {
		if s.IsRevealed(i) {
			parts = append(parts, string(r))
		} else {
			parts = append(parts, "_")
		}
	}
	return strings.Join(parts, " ")
}

// MatchesAnswer reports whether guess equals any accepted word form,
// case-insensitively.
func (s *GameSession) MatchesAnswer(guess string) bool {
	normalized := strings.ToLower(strings.TrimSpace(guess))
	for _, word := range s.Words {
		if strings.ToLower(word) == normalized {
			return true
		}
	}
	return false
}
