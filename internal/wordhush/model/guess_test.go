package model

import (
	"math"
	"testing"
)

func TestSimilarity(t *testing.T) {
	tests := []struct {
		a, b string
		want float64
	}{
		{"cat", "cat", 1},
		{"cat", "cet", 1 - 1.0/3},
		{"cart", "cat", 0.75},
		{"", "", 1},
		{"abc", "xyz", 0},
		{"CAT", "cat", 1},
	}

	for _, tt := range tests {
		got := Similarity(tt.a, tt.b)
		if math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("Similarity(%q, %q) = %f, want %f", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestClassifyGuess(t *testing.T) {
	session := &GameSession{
		Words: []string{"elephant", "elephants"},
		Level: LevelMedium,
	}

	tests := []struct {
		name  string
		guess string
		want  GuessOutcome
	}{
		{"exact match", "elephant", GuessCorrect},
		{"plural form", "elephants", GuessCorrect},
		{"case insensitive", "ELEPHANT", GuessCorrect},
		{"surrounding spaces", "  elephant  ", GuessCorrect},
		{"one letter off", "elephznt", GuessClose},
		{"two letters off", "elephzzt", GuessClose},
		{"unrelated", "giraffe", GuessMiss},
		{"empty", "", GuessMiss},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ClassifyGuess(session, tt.guess); got != tt.want {
				t.Errorf("ClassifyGuess(%q) = %v, want %v", tt.guess, got, tt.want)
			}
		})
	}
}

func TestClassifyGuess_ThresholdBoundary(t *testing.T) {
	// "cart" vs "cat" sits at 0.75, above the 0.7 threshold.
	session := &GameSession{Words: []string{"cart"}, Level: LevelEasy}
	if got := ClassifyGuess(session, "cat"); got != GuessClose {
		t.Errorf("expected close at similarity 0.75, got %v", got)
	}

	// "cet" vs "cat" is 0.667, below threshold.
	session = &GameSession{Words: []string{"cat"}, Level: LevelEasy}
	if got := ClassifyGuess(session, "cet"); got != GuessMiss {
		t.Errorf("expected miss at similarity 0.667, got %v", got)
	}
}
