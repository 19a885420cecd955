package redis

import (
	"context"
	"log/slog"
	"time"

	json "github.com/goccy/go-json"
	"github.com/valkey-io/valkey-go"

	cerrors "github.com/wordhush/wordhush-bot-go/internal/common/errors"
	"github.com/wordhush/wordhush-bot-go/internal/common/valkeyx"
	whconfig "github.com/wordhush/wordhush-bot-go/internal/wordhush/config"
)

// HintRateLimiter enforces the per-user sliding window on hint requests:
// at most 5 attempts inside 10 seconds, then a 30 second block. The block
// outlives the window so clearing attempts does not clear the penalty.
type HintRateLimiter struct {
	client valkey.Client
	logger *slog.Logger

	// now is swappable for tests.
	now func() time.Time
}

// NewHintRateLimiter creates a HintRateLimiter.
func NewHintRateLimiter(client valkey.Client, logger *slog.Logger) *HintRateLimiter {
	if logger == nil {
		logger = slog.Default()
	}
	return &HintRateLimiter{client: client, logger: logger, now: time.Now}
}

// Outcome is the result of one rate limit check.
type Outcome int

// Outcomes of Check.
const (
	// Allowed: the attempt was recorded and may proceed.
	Allowed Outcome = iota
	// Blocked: the user is serving a spam block.
	Blocked
	// NewlyBlocked: this attempt crossed the ceiling and started a block.
	NewlyBlocked
)

// Check applies one hint request attempt for the user. Exempt users are
// recorded but never blocked.
func (l *HintRateLimiter) Check(ctx context.Context, userID string, exempt bool) (Outcome, error) {
	blocked, err := valkeyx.Exists(ctx, l.client, hintBlockedKey(userID))
	if err != nil {
		return Allowed, cerrors.RedisError{Operation: "hint_block_check", Err: err}
	}
	if blocked {
		return Blocked, nil
	}

	attempts, err := l.loadAttempts(ctx, userID)
	if err != nil {
		return Allowed, err
	}

	nowMillis := l.now().UnixMilli()
	windowMillis := whconfig.HintRateWindow.Milliseconds()

	live := attempts[:0]
	for _, ts := range attempts {
		if nowMillis-ts < windowMillis {
			live = append(live, ts)
		}
	}

	if !exempt && len(live) >= whconfig.HintRateMaxAttempts {
		if err := valkeyx.SetStringEX(ctx, l.client, hintBlockedKey(userID), "true", whconfig.HintBlockDuration); err != nil {
			return Allowed, cerrors.RedisError{Operation: "hint_block_set", Err: err}
		}
		l.logger.Info("hint_spam_blocked", "user_id", userID)
		return NewlyBlocked, nil
	}

	live = append(live, nowMillis)

	payload, err := json.Marshal(live)
	if err != nil {
		return Allowed, cerrors.RedisError{Operation: "hint_attempts_marshal", Err: err}
	}
	if err := valkeyx.SetStringEX(ctx, l.client, hintRateLimitKey(userID), string(payload), whconfig.HintRateWindow); err != nil {
		return Allowed, cerrors.RedisError{Operation: "hint_attempts_save", Err: err}
	}

	return Allowed, nil
}

// BlockRemaining returns the seconds left on the user's block, 0 if none.
func (l *HintRateLimiter) BlockRemaining(ctx context.Context, userID string) (int64, error) {
	cmd := l.client.B().Ttl().Key(hintBlockedKey(userID)).Build()
	ttl, err := l.client.Do(ctx, cmd).AsInt64()
	if err != nil {
		return 0, cerrors.RedisError{Operation: "hint_block_ttl", Err: err}
	}
	if ttl < 0 {
		return 0, nil
	}
	return ttl, nil
}

// loadAttempts reads the attempt window, tolerating malformed payloads.
func (l *HintRateLimiter) loadAttempts(ctx context.Context, userID string) ([]int64, error) {
	raw, ok, err := valkeyx.GetBytes(ctx, l.client, hintRateLimitKey(userID))
	if err != nil {
		return nil, cerrors.RedisError{Operation: "hint_attempts_load", Err: err}
	}
	if !ok {
		return nil, nil
	}

	var attempts []int64
	if err := json.Unmarshal(raw, &attempts); err != nil {
		l.logger.Warn("hint_attempts_malformed", "user_id", userID, "err", err)
		return nil, nil
	}
	return attempts, nil
}
