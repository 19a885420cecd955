package repository

import (
	"context"
	"reflect"
	"testing"
)

func TestStoreAndFindHintSet(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	set := HintSet{
		Word:         "cat",
		Level:        "easy",
		Hints:        []string{"animal", "pet", "meows"},
		RelatedWords: []string{"cat", "cats"},
		Sentence:     "The cat sat.",
	}
	if err := repo.StoreHintSet(ctx, set); err != nil {
		t.Fatalf("store failed: %v", err)
	}

	got, err := repo.FindHintSet(ctx, "easy", "cat")
	if err != nil {
		t.Fatalf("find failed: %v", err)
	}
	if got == nil {
		t.Fatal("expected hint set, got nil")
	}
	if !reflect.DeepEqual(got.Hints, set.Hints) {
		t.Errorf("Hints = %v, want %v", got.Hints, set.Hints)
	}
	if !reflect.DeepEqual(got.RelatedWords, set.RelatedWords) {
		t.Errorf("RelatedWords = %v, want %v", got.RelatedWords, set.RelatedWords)
	}
	if got.Sentence != set.Sentence {
		t.Errorf("Sentence = %q, want %q", got.Sentence, set.Sentence)
	}
}

func TestFindHintSet_LevelMismatch(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	if err := repo.StoreHintSet(ctx, HintSet{Word: "cat", Level: "easy", Hints: []string{"h"}}); err != nil {
		t.Fatalf("store failed: %v", err)
	}

	got, err := repo.FindHintSet(ctx, "hard", "cat")
	if err != nil {
		t.Fatalf("find failed: %v", err)
	}
	if got != nil {
		t.Errorf("expected nil for other level, got %+v", got)
	}
}

func TestFindAnyHintSetByLevel(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	got, err := repo.FindAnyHintSetByLevel(ctx, "easy")
	if err != nil {
		t.Fatalf("find failed: %v", err)
	}
	if got != nil {
		t.Errorf("expected nil for empty level, got %+v", got)
	}

	for _, word := range []string{"cat", "dog"} {
		if err := repo.StoreHintSet(ctx, HintSet{Word: word, Level: "easy", Hints: []string{"h"}}); err != nil {
			t.Fatalf("store failed: %v", err)
		}
	}

	got, err = repo.FindAnyHintSetByLevel(ctx, "easy")
	if err != nil {
		t.Fatalf("find failed: %v", err)
	}
	if got == nil {
		t.Fatal("expected hint set, got nil")
	}
	if got.Word != "cat" && got.Word != "dog" {
		t.Errorf("Word = %q, want one of the stored words", got.Word)
	}
}
