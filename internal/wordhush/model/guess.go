package model

import "strings"

// GuessOutcome classifies one evaluated guess.
type GuessOutcome int

// Guess outcomes.
const (
	// GuessMiss stays silent so chat traffic never drowns in bot noise.
	GuessMiss GuessOutcome = iota
	// GuessClose is within the similarity threshold of an answer form.
	GuessClose
	// GuessCorrect matches an accepted word form exactly.
	GuessCorrect
)

// SimilarityThreshold marks a guess as "close" when its normalized
// similarity to any answer form reaches this value.
const SimilarityThreshold = 0.7

// levenshteinDistance computes edit distance with two rolling rows.
func levenshteinDistance(a, b string) int {
	ra := []rune(a)
	rb := []rune(b)

	prev := make([]int, len(rb)+1)
	curr := make([]int, len(rb)+1)
	for j := 0; j <= len(rb); j++ {
		prev[j] = j
	}

	for i := 1; i <= len(ra); i++ {
		curr[0] = i
		for j := 1; j <= len(rb); j++ {
			if ra[i-1] == rb[j-1] {
				curr[j] = prev[j-1]
			} else {
				curr[j] = 1 + min(prev[j], curr[j-1], prev[j-1])
			}
		}
		prev, curr = curr, prev
	}

	return prev[len(rb)]
}

// Similarity is 1 - distance/maxLen on lowercased input, in [0, 1].
func Similarity(a, b string) float64 {
	maxLen := max(len([]rune(a)), len([]rune(b)))
	if maxLen == 0 {
		return 1
	}
	distance := levenshteinDistance(strings.ToLower(a), strings.ToLower(b))
	return 1 - float64(distance)/float64(maxLen)
}

// ClassifyGuess evaluates a guess against the session's answer forms.
func ClassifyGuess(session *GameSession, guess string) GuessOutcome {
	if session.MatchesAnswer(guess) {
		return GuessCorrect
	}
	normalized := strings.TrimSpace(guess)
	for _, word := range session.Words {
		if Similarity(normalized, word) >= SimilarityThreshold {
			return GuessClose
		}
	}
	return GuessMiss
}
