package repository

import (
	"context"
	"slices"
	"testing"
)

func TestIsUserAuthorized(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	ok, err := repo.IsUserAuthorized(ctx, "chat1", "u1")
	if err != nil {
		t.Fatalf("lookup failed: %v", err)
	}
	if ok {
		t.Error("unexpected grant")
	}

	if err := repo.db.Create(&AuthorizedUser{ChatID: "chat1", UserID: "u1"}).Error; err != nil {
		t.Fatalf("seed failed: %v", err)
	}

	ok, err = repo.IsUserAuthorized(ctx, "chat1", "u1")
	if err != nil {
		t.Fatalf("lookup failed: %v", err)
	}
	if !ok {
		t.Error("expected grant")
	}

	// Grants do not cross chats.
	ok, err = repo.IsUserAuthorized(ctx, "chat2", "u1")
	if err != nil {
		t.Fatalf("lookup failed: %v", err)
	}
	if ok {
		t.Error("grant leaked to another chat")
	}
}

func TestAllowedTopics(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	topics, err := repo.AllowedTopics(ctx, "chat1")
	if err != nil {
		t.Fatalf("lookup failed: %v", err)
	}
	if len(topics) != 0 {
		t.Errorf("topics = %v, want empty", topics)
	}

	for _, topic := range []string{"42", "77"} {
		if err := repo.db.Create(&ChatGameTopic{ChatID: "chat1", TopicID: topic}).Error; err != nil {
			t.Fatalf("seed failed: %v", err)
		}
	}

	topics, err = repo.AllowedTopics(ctx, "chat1")
	if err != nil {
		t.Fatalf("lookup failed: %v", err)
	}
	slices.Sort(topics)
	if !slices.Equal(topics, []string{"42", "77"}) {
		t.Errorf("topics = %v, want [42 77]", topics)
	}
}
