// Package model defines the word game's domain types: difficulty levels,
// the session record, votes and guess evaluation.
package model

import (
	"crypto/rand"
	"math"
	"math/big"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	wherrors "github.com/wordhush/wordhush-bot-go/internal/wordhush/errors"
)

// Level is a game difficulty.
type Level string

// Difficulty levels in ascending order.
const (
	LevelEasy    Level = "easy"
	LevelMedium  Level = "medium"
	LevelHard    Level = "hard"
	LevelExtreme Level = "extreme"
)

// AllLevels lists every difficulty in ascending order.
var AllLevels = []Level{LevelEasy, LevelMedium, LevelHard, LevelExtreme}

// cefrTiers maps each difficulty to the CEFR bands it draws words from.
var cefrTiers = map[Level][]string{
	LevelEasy:    {"A1", "A2"},
	LevelMedium:  {"B1"},
	LevelHard:    {"B2"},
	LevelExtreme: {"C1", "C2"},
}

// ParseLevel resolves a difficulty argument. "random" picks a level with
// uniform probability.
func ParseLevel(input string) (Level, error) {
	normalized := strings.ToLower(strings.TrimSpace(input))
	switch normalized {
	case "easy":
		return LevelEasy, nil
	case "medium":
		return LevelMedium, nil
	case "hard":
		return LevelHard, nil
	case "extreme":
		return LevelExtreme, nil
	case "random":
		return randomLevel(), nil
	}
	return "", wherrors.InvalidLevelError{Input: input}
}

func randomLevel() Level {
	n, err := rand.Int(rand.Reader, big.NewInt(int64(len(AllLevels))))
	if err != nil {
		return LevelEasy
	}
	return AllLevels[n.Int64()]
}

// Valid reports whether l is a known difficulty.
func (l Level) Valid() bool {
	_, ok := cefrTiers[l]
	return ok
}

// CEFRTiers returns the CEFR bands backing this difficulty.
func (l Level) CEFRTiers() []string {
	return cefrTiers[l]
}

// BaseScore is the undeducted win score for the difficulty.
func (l Level) BaseScore() int {
	switch l {
	case LevelEasy:
		return 5
	case LevelMedium:
		return 10
	case LevelHard:
		return 20
	default:
		return 30
	}
}

// RevealPrice is the coin cost of one paid letter reveal.
func (l Level) RevealPrice() int {
	switch l {
	case LevelEasy:
		return 2
	case LevelMedium:
		return 4
	case LevelHard:
		return 6
	default:
		return 8
	}
}

func (l Level) penaltyPerHint() float64 {
	switch l {
	case LevelEasy:
		return 0.25
	case LevelMedium:
		return 0.5
	case LevelHard:
		return 0.75
	default:
		return 1
	}
}

// Score computes the win score after hint deductions. The deduction is
// capped at 30% of base for easy and 40% otherwise, and the result never
// drops below 1.
func (l Level) Score(hintsUsed int) int {
	if hintsUsed < 0 {
		hintsUsed = 0
	}

	base := float64(l.BaseScore())

	capRatio := 0.4
	if l == LevelEasy {
		capRatio = 0.3
	}
	maxDeduction := base * capRatio

	deduction := math.Min(float64(hintsUsed)*l.penaltyPerHint(), maxDeduction)

	score := int(math.Round(base - deduction))
	if score < 1 {
		return 1
	}
	return score
}

// Title renders the level with a leading capital for display. Casers are
// stateful, so one is built per call.
func (l Level) Title() string {
	return cases.Title(language.English).String(string(l))
}
