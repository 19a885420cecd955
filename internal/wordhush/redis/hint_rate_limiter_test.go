package redis

import (
	"context"
	"testing"
	"time"

	"github.com/wordhush/wordhush-bot-go/internal/common/testhelper"
	whconfig "github.com/wordhush/wordhush-bot-go/internal/wordhush/config"
)

func TestHintRateLimiter_AllowsUnderCeiling(t *testing.T) {
	client, _ := testhelper.NewMiniValkey(t)
	limiter := NewHintRateLimiter(client, testhelper.DiscardLogger())
	ctx := context.Background()

	for i := 0; i < whconfig.HintRateMaxAttempts; i++ {
		outcome, err := limiter.Check(ctx, "user1", false)
		if err != nil {
			t.Fatalf("check %d failed: %v", i, err)
		}
		if outcome != Allowed {
			t.Fatalf("check %d outcome = %v, want Allowed", i, outcome)
		}
	}
}

func TestHintRateLimiter_BlocksOverCeiling(t *testing.T) {
	client, _ := testhelper.NewMiniValkey(t)
	limiter := NewHintRateLimiter(client, testhelper.DiscardLogger())
	ctx := context.Background()

	for i := 0; i < whconfig.HintRateMaxAttempts; i++ {
		if _, err := limiter.Check(ctx, "user1", false); err != nil {
			t.Fatalf("check failed: %v", err)
		}
	}

	outcome, err := limiter.Check(ctx, "user1", false)
	if err != nil {
		t.Fatalf("check failed: %v", err)
	}
	if outcome != NewlyBlocked {
		t.Fatalf("outcome = %v, want NewlyBlocked", outcome)
	}

	// Follow-up attempts report the standing block.
	outcome, err = limiter.Check(ctx, "user1", false)
	if err != nil {
		t.Fatalf("check failed: %v", err)
	}
	if outcome != Blocked {
		t.Fatalf("outcome = %v, want Blocked", outcome)
	}

	remaining, err := limiter.BlockRemaining(ctx, "user1")
	if err != nil {
		t.Fatalf("block remaining failed: %v", err)
	}
	if remaining <= 0 || remaining > int64(whconfig.HintBlockDuration.Seconds()) {
		t.Errorf("BlockRemaining() = %d, want within (0, %d]", remaining, int64(whconfig.HintBlockDuration.Seconds()))
	}
}

func TestHintRateLimiter_WindowSlides(t *testing.T) {
	client, _ := testhelper.NewMiniValkey(t)
	limiter := NewHintRateLimiter(client, testhelper.DiscardLogger())
	ctx := context.Background()

	base := time.Now()
	limiter.now = func() time.Time { return base }

	for i := 0; i < whconfig.HintRateMaxAttempts; i++ {
		if _, err := limiter.Check(ctx, "user1", false); err != nil {
			t.Fatalf("check failed: %v", err)
		}
	}

	// Past the window the old attempts no longer count.
	limiter.now = func() time.Time { return base.Add(whconfig.HintRateWindow + time.Second) }

	outcome, err := limiter.Check(ctx, "user1", false)
	if err != nil {
		t.Fatalf("check failed: %v", err)
	}
	if outcome != Allowed {
		t.Errorf("outcome = %v, want Allowed after window passed", outcome)
	}
}

func TestHintRateLimiter_BlockExpires(t *testing.T) {
	client, mr := testhelper.NewMiniValkey(t)
	limiter := NewHintRateLimiter(client, testhelper.DiscardLogger())
	ctx := context.Background()

	for i := 0; i <= whconfig.HintRateMaxAttempts; i++ {
		if _, err := limiter.Check(ctx, "user1", false); err != nil {
			t.Fatalf("check failed: %v", err)
		}
	}

	mr.FastForward(whconfig.HintBlockDuration + time.Second)

	outcome, err := limiter.Check(ctx, "user1", false)
	if err != nil {
		t.Fatalf("check failed: %v", err)
	}
	if outcome == Blocked {
		t.Error("block should have expired")
	}

	remaining, err := limiter.BlockRemaining(ctx, "user1")
	if err != nil {
		t.Fatalf("block remaining failed: %v", err)
	}
	if remaining != 0 {
		t.Errorf("BlockRemaining() = %d, want 0", remaining)
	}
}

func TestHintRateLimiter_ExemptNeverBlocked(t *testing.T) {
	client, _ := testhelper.NewMiniValkey(t)
	limiter := NewHintRateLimiter(client, testhelper.DiscardLogger())
	ctx := context.Background()

	for i := 0; i < whconfig.HintRateMaxAttempts*3; i++ {
		outcome, err := limiter.Check(ctx, "admin", true)
		if err != nil {
			t.Fatalf("check failed: %v", err)
		}
		if outcome != Allowed {
			t.Fatalf("attempt %d outcome = %v, want Allowed for exempt user", i, outcome)
		}
	}
}

func TestHintRateLimiter_MalformedWindowTolerated(t *testing.T) {
	client, mr := testhelper.NewMiniValkey(t)
	limiter := NewHintRateLimiter(client, testhelper.DiscardLogger())
	ctx := context.Background()

	mr.Set("wordhush:ratelimit:hint:user1", "not json")

	outcome, err := limiter.Check(ctx, "user1", false)
	if err != nil {
		t.Fatalf("check failed: %v", err)
	}
	if outcome != Allowed {
		t.Errorf("outcome = %v, want Allowed", outcome)
	}
}
