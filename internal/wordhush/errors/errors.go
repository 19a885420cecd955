// Package errors defines the word game's precondition errors. Infrastructure
// errors (RedisError, DatabaseError) come from common/errors.
package errors

import (
	"errors"
	"fmt"
)

// SessionNotFoundError: no active game in the chat.
type SessionNotFoundError struct {
	ChatID string
}

func (e SessionNotFoundError) Error() string {
	if e.ChatID == "" {
		return "session not found"
	}
	return fmt.Sprintf("session not found chatId=%s", e.ChatID)
}

// GameAlreadyActiveError: a valid game already occupies the chat's slot.
type GameAlreadyActiveError struct {
	ChatID string
}

func (e GameAlreadyActiveError) Error() string {
	return fmt.Sprintf("game already active chatId=%s", e.ChatID)
}

// NoMoreHintsError: the hint sequence is exhausted.
type NoMoreHintsError struct{}

func (e NoMoreHintsError) Error() string { return "no more hints available" }

// RevealLimitError: the per-game letter reveal cap was reached.
type RevealLimitError struct {
	Limit int
}

func (e RevealLimitError) Error() string {
	return fmt.Sprintf("letter reveal limit reached limit=%d", e.Limit)
}

// AllLettersRevealedError: every position of the word is already visible.
type AllLettersRevealedError struct{}

func (e AllLettersRevealedError) Error() string { return "all letters already revealed" }

// InsufficientCoinsError: the user cannot afford a paid reveal.
type InsufficientCoinsError struct {
	Price int
}

func (e InsufficientCoinsError) Error() string {
	return fmt.Sprintf("insufficient coins price=%d", e.Price)
}

// VoteInProgressError: a termination vote is already open for the chat.
type VoteInProgressError struct {
	ChatID string
}

func (e VoteInProgressError) Error() string {
	return fmt.Sprintf("vote already in progress chatId=%s", e.ChatID)
}

// VoteExpiredError: the referenced vote no longer exists.
type VoteExpiredError struct{}

func (e VoteExpiredError) Error() string { return "vote session expired" }

// AlreadyVotedError: the user's vote was already counted.
type AlreadyVotedError struct {
	UserID string
}

func (e AlreadyVotedError) Error() string {
	return fmt.Sprintf("already voted userId=%s", e.UserID)
}

// RateLimitedError: the user is blocked for spamming hint requests.
type RateLimitedError struct {
	RetryAfterSeconds int64
}

func (e RateLimitedError) Error() string {
	return fmt.Sprintf("rate limited retryAfter=%ds", e.RetryAfterSeconds)
}

// InvalidLevelError: the difficulty argument could not be resolved.
type InvalidLevelError struct {
	Input string
}

func (e InvalidLevelError) Error() string {
	return fmt.Sprintf("invalid difficulty level %q", e.Input)
}

// TopicNotAllowedError: the chat restricts play to designated topics.
type TopicNotAllowedError struct {
	TopicID string
}

func (e TopicNotAllowedError) Error() string {
	return fmt.Sprintf("topic not allowed topicId=%s", e.TopicID)
}

// NotYourConfirmationError: a reveal confirmation pressed by someone other
// than the requester.
type NotYourConfirmationError struct{}

func (e NotYourConfirmationError) Error() string { return "confirmation belongs to another user" }

// HintGenerationError: no hint set could be produced for the word.
type HintGenerationError struct {
	Word string
	Err  error
}

func (e HintGenerationError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("hint generation failed word=%s", e.Word)
	}
	return fmt.Sprintf("hint generation failed word=%s: %v", e.Word, e.Err)
}

func (e HintGenerationError) Unwrap() error { return e.Err }

// preconditionTypes lists the errors that are ordinary user mistakes or
// game-state preconditions rather than system failures.
var preconditionTypes = []func() any{
	func() any { return new(SessionNotFoundError) },
	func() any { return new(GameAlreadyActiveError) },
	func() any { return new(NoMoreHintsError) },
	func() any { return new(RevealLimitError) },
	func() any { return new(AllLettersRevealedError) },
	func() any { return new(InsufficientCoinsError) },
	func() any { return new(VoteInProgressError) },
	func() any { return new(VoteExpiredError) },
	func() any { return new(AlreadyVotedError) },
	func() any { return new(RateLimitedError) },
	func() any { return new(InvalidLevelError) },
	func() any { return new(TopicNotAllowedError) },
	func() any { return new(NotYourConfirmationError) },
}

// IsPrecondition reports whether err is a game precondition failure that
// warrants a user-facing message but no error-level logging.
func IsPrecondition(err error) bool {
	if err == nil {
		return false
	}
	for _, targetFn := range preconditionTypes {
		if errors.As(err, targetFn()) {
			return true
		}
	}
	return false
}
