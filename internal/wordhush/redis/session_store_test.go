package redis

import (
	"context"
	"testing"

	"github.com/wordhush/wordhush-bot-go/internal/common/testhelper"
	"github.com/wordhush/wordhush-bot-go/internal/wordhush/model"
)

func testSession() model.GameSession {
	return model.GameSession{
		Words:            []string{"cat", "cats"},
		Hints:            []string{"animal", "pet", "meows"},
		Sentence:         "The cat sat.",
		Level:            model.LevelEasy,
		CurrentHintIndex: 1,
		StartedBy:        "user1",
	}
}

func TestSessionStore_SaveAndLoad(t *testing.T) {
	client, _ := testhelper.NewMiniValkey(t)
	store := NewSessionStore(client, testhelper.DiscardLogger())
	ctx := context.Background()

	if err := store.Save(ctx, "chat1", testSession()); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	got, err := store.LoadValid(ctx, "chat1")
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if got == nil {
		t.Fatal("expected session, got nil")
	}
	if got.Answer() != "cat" {
		t.Errorf("Answer() = %q, want %q", got.Answer(), "cat")
	}
	if got.StartedBy != "user1" {
		t.Errorf("StartedBy = %q, want %q", got.StartedBy, "user1")
	}
	if got.Level != model.LevelEasy {
		t.Errorf("Level = %q, want %q", got.Level, model.LevelEasy)
	}
}

func TestSessionStore_LoadValid_Absent(t *testing.T) {
	client, _ := testhelper.NewMiniValkey(t)
	store := NewSessionStore(client, testhelper.DiscardLogger())

	got, err := store.LoadValid(context.Background(), "no-such-chat")
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if got != nil {
		t.Errorf("expected nil, got %v", got)
	}
}

func TestSessionStore_LoadValid_MalformedTreatedAbsent(t *testing.T) {
	client, mr := testhelper.NewMiniValkey(t)
	store := NewSessionStore(client, testhelper.DiscardLogger())
	ctx := context.Background()

	mr.Set("wordhush:game:chat1", "{not json")

	got, err := store.LoadValid(ctx, "chat1")
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if got != nil {
		t.Errorf("expected malformed record treated as absent, got %v", got)
	}
}

func TestSessionStore_LoadValid_InvalidTreatedAbsent(t *testing.T) {
	client, _ := testhelper.NewMiniValkey(t)
	store := NewSessionStore(client, testhelper.DiscardLogger())
	ctx := context.Background()

	invalid := testSession()
	invalid.Words = nil
	if err := store.Save(ctx, "chat1", invalid); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	got, err := store.LoadValid(ctx, "chat1")
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if got != nil {
		t.Errorf("expected invalid record treated as absent, got %v", got)
	}
}

func TestSessionStore_Delete(t *testing.T) {
	client, _ := testhelper.NewMiniValkey(t)
	store := NewSessionStore(client, testhelper.DiscardLogger())
	ctx := context.Background()

	if err := store.Save(ctx, "chat1", testSession()); err != nil {
		t.Fatalf("save failed: %v", err)
	}
	if err := store.Delete(ctx, "chat1"); err != nil {
		t.Fatalf("delete failed: %v", err)
	}

	exists, err := store.Exists(ctx, "chat1")
	if err != nil {
		t.Fatalf("exists failed: %v", err)
	}
	if exists {
		t.Error("session still present after delete")
	}
}
