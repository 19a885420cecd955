package mq

import (
	"errors"
	"testing"

	wherrors "github.com/wordhush/wordhush-bot-go/internal/wordhush/errors"
	qmessages "github.com/wordhush/wordhush-bot-go/internal/wordhush/messages"
)

func TestGetErrorMapping(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		wantKey string
	}{
		{"session not found", wherrors.SessionNotFoundError{ChatID: "chat1"}, qmessages.ErrorNoGame},
		{"already active", wherrors.GameAlreadyActiveError{ChatID: "chat1"}, qmessages.StartAlreadyActive},
		{"no more hints", wherrors.NoMoreHintsError{}, qmessages.HintNoMore},
		{"reveal limit", wherrors.RevealLimitError{Limit: 3}, qmessages.RevealLimit},
		{"all revealed", wherrors.AllLettersRevealedError{}, qmessages.RevealAllRevealed},
		{"insufficient coins", wherrors.InsufficientCoinsError{Price: 4}, qmessages.RevealInsufficient},
		{"vote in progress", wherrors.VoteInProgressError{ChatID: "chat1"}, qmessages.VoteInProgress},
		{"vote expired", wherrors.VoteExpiredError{}, qmessages.VoteExpired},
		{"already voted", wherrors.AlreadyVotedError{UserID: "u1"}, qmessages.VoteAlready},
		{"rate limited", wherrors.RateLimitedError{RetryAfterSeconds: 30}, qmessages.ErrorRateLimited},
		{"invalid level", wherrors.InvalidLevelError{Input: "nope"}, qmessages.StartInvalidDifficulty},
		{"topic blocked", wherrors.TopicNotAllowedError{TopicID: "general"}, qmessages.StartTopicNotAllowed},
		{"not your confirmation", wherrors.NotYourConfirmationError{}, qmessages.RevealNotForYou},
		{"hint generation failed", wherrors.HintGenerationError{Word: "cat"}, qmessages.StartFailed},
		{"unknown error", errors.New("boom"), qmessages.ErrorGeneric},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mapping := GetErrorMapping(tt.err, "/")
			if mapping.Key != tt.wantKey {
				t.Errorf("Key = %q, want %q", mapping.Key, tt.wantKey)
			}
		})
	}
}

func TestGetErrorMapping_WrappedError(t *testing.T) {
	wrapped := errors.Join(errors.New("context"), wherrors.NoMoreHintsError{})
	mapping := GetErrorMapping(wrapped, "/")
	if mapping.Key != qmessages.HintNoMore {
		t.Errorf("Key = %q, want %q", mapping.Key, qmessages.HintNoMore)
	}
}
