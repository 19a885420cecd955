package redis

import (
	"context"
	"testing"

	"github.com/wordhush/wordhush-bot-go/internal/common/testhelper"
)

func TestLatestMessageStore_RecordAndGet(t *testing.T) {
	client, _ := testhelper.NewMiniValkey(t)
	store := NewLatestMessageStore(client)
	ctx := context.Background()

	if err := store.Record(ctx, "chat1", "12345"); err != nil {
		t.Fatalf("record failed: %v", err)
	}

	got, err := store.Get(ctx, "chat1")
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if got != "12345" {
		t.Errorf("Get() = %q, want %q", got, "12345")
	}

	// Newer records overwrite.
	if err := store.Record(ctx, "chat1", "12350"); err != nil {
		t.Fatalf("record failed: %v", err)
	}
	got, err = store.Get(ctx, "chat1")
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if got != "12350" {
		t.Errorf("Get() = %q, want %q", got, "12350")
	}
}

func TestLatestMessageStore_GetAbsent(t *testing.T) {
	client, _ := testhelper.NewMiniValkey(t)
	store := NewLatestMessageStore(client)

	got, err := store.Get(context.Background(), "no-chat")
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if got != "" {
		t.Errorf("Get() = %q, want empty", got)
	}
}

func TestLatestMessageStore_Clear(t *testing.T) {
	client, _ := testhelper.NewMiniValkey(t)
	store := NewLatestMessageStore(client)
	ctx := context.Background()

	if err := store.Record(ctx, "chat1", "12345"); err != nil {
		t.Fatalf("record failed: %v", err)
	}
	if err := store.Clear(ctx, "chat1"); err != nil {
		t.Fatalf("clear failed: %v", err)
	}

	got, err := store.Get(ctx, "chat1")
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if got != "" {
		t.Errorf("Get() = %q, want empty after clear", got)
	}
}
