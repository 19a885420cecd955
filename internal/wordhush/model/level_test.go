package model

import (
	"errors"
	"testing"

	wherrors "github.com/wordhush/wordhush-bot-go/internal/wordhush/errors"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input string
		want  Level
	}{
		{"easy", LevelEasy},
		{"MEDIUM", LevelMedium},
		{"  hard  ", LevelHard},
		{"Extreme", LevelExtreme},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseLevel(tt.input)
			if err != nil {
				t.Fatalf("parse failed: %v", err)
			}
			if got != tt.want {
				t.Errorf("ParseLevel(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseLevel_Random(t *testing.T) {
	got, err := ParseLevel("random")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if !got.Valid() {
		t.Errorf("random produced unknown level %q", got)
	}
}

func TestParseLevel_Invalid(t *testing.T) {
	_, err := ParseLevel("impossible")
	if err == nil {
		t.Fatal("expected error")
	}
	var invalid wherrors.InvalidLevelError
	if !errors.As(err, &invalid) {
		t.Fatalf("expected InvalidLevelError, got %T", err)
	}
}

func TestLevel_BaseScoreAndPrice(t *testing.T) {
	tests := []struct {
		level     Level
		baseScore int
		price     int
	}{
		{LevelEasy, 5, 2},
		{LevelMedium, 10, 4},
		{LevelHard, 20, 6},
		{LevelExtreme, 30, 8},
	}

	for _, tt := range tests {
		if got := tt.level.BaseScore(); got != tt.baseScore {
			t.Errorf("%s BaseScore() = %d, want %d", tt.level, got, tt.baseScore)
		}
		if got := tt.level.RevealPrice(); got != tt.price {
			t.Errorf("%s RevealPrice() = %d, want %d", tt.level, got, tt.price)
		}
	}
}

func TestLevel_Score(t *testing.T) {
	tests := []struct {
		name      string
		level     Level
		hintsUsed int
		want      int
	}{
		{"no hints keeps base", LevelMedium, 0, 10},
		{"negative treated as zero", LevelHard, -3, 20},
		{"medium two hints", LevelMedium, 2, 9},
		{"medium deduction capped at 40 percent", LevelMedium, 100, 6},
		{"easy deduction capped at 30 percent", LevelEasy, 100, 4},
		{"extreme full penalty per hint", LevelExtreme, 5, 25},
		{"extreme capped", LevelExtreme, 50, 18},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.level.Score(tt.hintsUsed); got != tt.want {
				t.Errorf("Score(%d) = %d, want %d", tt.hintsUsed, got, tt.want)
			}
		})
	}
}

func TestLevel_ScoreNeverBelowOne(t *testing.T) {
	for _, level := range AllLevels {
		for hints := 0; hints < 200; hints += 7 {
			if got := level.Score(hints); got < 1 {
				t.Fatalf("%s Score(%d) = %d, below floor", level, hints, got)
			}
		}
	}
}

func TestLevel_Title(t *testing.T) {
	if got := LevelEasy.Title(); got != "Easy" {
		t.Errorf("Title() = %q, want %q", got, "Easy")
	}
	if got := LevelExtreme.Title(); got != "Extreme" {
		t.Errorf("Title() = %q, want %q", got, "Extreme")
	}
}

func TestLevel_CEFRTiers(t *testing.T) {
	for _, level := range AllLevels {
		if len(level.CEFRTiers()) == 0 {
			t.Errorf("%s has no CEFR bands", level)
		}
	}
	if Level("nope").Valid() {
		t.Error("unknown level reported valid")
	}
}
