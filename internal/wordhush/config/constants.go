// Package config holds the word game's settings and fixed gameplay rules.
package config

import "time"

// Redis key prefixes. Every key the game touches lives under "wordhush:".
const (
	RedisKeyPrefix = "wordhush"

	RedisKeyGamePrefix        = "wordhush:game"
	RedisKeyHistoryPrefix     = "wordhush:history"
	RedisKeyVotePrefix        = "wordhush:vote"
	RedisKeyLatestMsgPrefix   = "wordhush:msg"
	RedisKeyHintRateLimit     = "wordhush:ratelimit:hint"
	RedisKeyHintBlockedPrefix = "wordhush:blocked:hint"
)

// Word history (anti-repetition) tuning.
const (
	// WordHistoryCeiling caps the per-chat used-word set.
	WordHistoryCeiling = 100
	// WordHistoryResetThreshold triggers a history collapse when fewer
	// candidate words remain.
	WordHistoryResetThreshold = 10
	// WordHistoryTrimRatio is the fraction of the set popped once the
	// ceiling is reached.
	WordHistoryTrimRatio = 0.2
	// WordHistoryTTL expires idle chat histories.
	WordHistoryTTL = 7 * 24 * time.Hour
)

// Termination vote tuning.
const (
	// VoteThreshold is the number of distinct voters that ends a game.
	VoteThreshold = 3
	// VoteTTL expires an unresolved vote.
	VoteTTL = 300 * time.Second
)

// Hint request rate limiting.
const (
	// HintRateWindow is the sliding window for hint request attempts.
	HintRateWindow = 10 * time.Second
	// HintRateMaxAttempts is the attempt ceiling inside one window.
	HintRateMaxAttempts = 5
	// HintBlockDuration is the penalty block after exceeding the ceiling.
	HintBlockDuration = 30 * time.Second
)

// Letter reveal rules.
const (
	// MaxRevealedLetters caps paid letter reveals per game.
	MaxRevealedLetters = 3
)
