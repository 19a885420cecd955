package model

import (
	"testing"
	"time"
)

func TestNewEndVote_CountsInitiator(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	vote := NewEndVote("user1", now)

	if vote.Count() != 1 {
		t.Errorf("Count() = %d, want 1", vote.Count())
	}
	if !vote.HasVoted("user1") {
		t.Error("initiator not counted")
	}
	if vote.InitiatedAt != now.UnixMilli() {
		t.Errorf("InitiatedAt = %d, want %d", vote.InitiatedAt, now.UnixMilli())
	}
}

func TestEndVote_AddVoter(t *testing.T) {
	vote := NewEndVote("user1", time.Now())

	updated, added := vote.AddVoter("user2")
	if !added {
		t.Fatal("expected new voter to be counted")
	}
	if updated.Count() != 2 {
		t.Errorf("Count() = %d, want 2", updated.Count())
	}

	// Original value stays untouched.
	if vote.Count() != 1 {
		t.Errorf("original Count() = %d, want 1", vote.Count())
	}

	again, added := updated.AddVoter("user2")
	if added {
		t.Error("duplicate vote counted")
	}
	if again.Count() != 2 {
		t.Errorf("Count() after duplicate = %d, want 2", again.Count())
	}
}

func TestEndVote_Reaches(t *testing.T) {
	vote := NewEndVote("user1", time.Now())
	if vote.Reaches(3) {
		t.Error("single vote should not reach threshold 3")
	}

	vote, _ = vote.AddVoter("user2")
	vote, _ = vote.AddVoter("user3")
	if !vote.Reaches(3) {
		t.Error("three votes should reach threshold 3")
	}
}
