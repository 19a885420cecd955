package repository

import (
	"context"
	"errors"
	"testing"

	wherrors "github.com/wordhush/wordhush-bot-go/internal/wordhush/errors"
)

func TestUpsertWithCredit_InsertsAndAccumulates(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	if err := repo.UpsertWithCredit(ctx, User{ID: "u1", Name: "Alice"}, 10); err != nil {
		t.Fatalf("upsert failed: %v", err)
	}

	user, err := repo.GetUser(ctx, "u1")
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if user == nil {
		t.Fatal("expected user, got nil")
	}
	if user.Coins != 10 {
		t.Errorf("Coins = %d, want 10", user.Coins)
	}

	// Second win adds to the balance and refreshes the profile.
	if err := repo.UpsertWithCredit(ctx, User{ID: "u1", Name: "Alice B"}, 5); err != nil {
		t.Fatalf("upsert failed: %v", err)
	}

	user, err = repo.GetUser(ctx, "u1")
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if user.Coins != 15 {
		t.Errorf("Coins = %d, want 15", user.Coins)
	}
	if user.Name != "Alice B" {
		t.Errorf("Name = %q, want %q", user.Name, "Alice B")
	}
}

func TestGetUser_Absent(t *testing.T) {
	repo := newTestRepo(t)

	user, err := repo.GetUser(context.Background(), "nobody")
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if user != nil {
		t.Errorf("expected nil, got %+v", user)
	}
}

func TestDebitIfSufficient(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	if err := repo.UpsertWithCredit(ctx, User{ID: "u1", Name: "Alice"}, 10); err != nil {
		t.Fatalf("upsert failed: %v", err)
	}

	if err := repo.DebitIfSufficient(ctx, "u1", 6); err != nil {
		t.Fatalf("debit failed: %v", err)
	}

	user, err := repo.GetUser(ctx, "u1")
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if user.Coins != 4 {
		t.Errorf("Coins = %d, want 4", user.Coins)
	}

	// The remaining 4 cannot cover another 6.
	err = repo.DebitIfSufficient(ctx, "u1", 6)
	var insufficient wherrors.InsufficientCoinsError
	if !errors.As(err, &insufficient) {
		t.Fatalf("expected InsufficientCoinsError, got %v", err)
	}
	if insufficient.Price != 6 {
		t.Errorf("Price = %d, want 6", insufficient.Price)
	}

	// Balance untouched by the failed debit.
	user, err = repo.GetUser(ctx, "u1")
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if user.Coins != 4 {
		t.Errorf("Coins = %d, want 4", user.Coins)
	}
}

func TestDebitIfSufficient_UnknownUser(t *testing.T) {
	repo := newTestRepo(t)

	err := repo.DebitIfSufficient(context.Background(), "nobody", 2)
	var insufficient wherrors.InsufficientCoinsError
	if !errors.As(err, &insufficient) {
		t.Fatalf("expected InsufficientCoinsError, got %v", err)
	}
}
