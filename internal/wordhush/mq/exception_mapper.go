package mq

import (
	"errors"

	"github.com/wordhush/wordhush-bot-go/internal/common/messageprovider"
	wherrors "github.com/wordhush/wordhush-bot-go/internal/wordhush/errors"
	qmessages "github.com/wordhush/wordhush-bot-go/internal/wordhush/messages"
)

// ErrorMapping pairs a message key with its template parameters.
type ErrorMapping struct {
	Key    string
	Params []messageprovider.Param
}

// GetErrorMapping translates a service error into the message shown to the
// user.
func GetErrorMapping(err error, commandPrefix string) ErrorMapping {
	var (
		sessionNotFound wherrors.SessionNotFoundError
		alreadyActive   wherrors.GameAlreadyActiveError
		noMoreHints     wherrors.NoMoreHintsError
		revealLimit     wherrors.RevealLimitError
		allRevealed     wherrors.AllLettersRevealedError
		insufficient    wherrors.InsufficientCoinsError
		voteInProgress  wherrors.VoteInProgressError
		voteExpired     wherrors.VoteExpiredError
		alreadyVoted    wherrors.AlreadyVotedError
		rateLimited     wherrors.RateLimitedError
		invalidLevel    wherrors.InvalidLevelError
		topicBlocked    wherrors.TopicNotAllowedError
		notYours        wherrors.NotYourConfirmationError
		hintFailed      wherrors.HintGenerationError
	)

	switch {
	case errors.As(err, &sessionNotFound):
		return ErrorMapping{
			Key:    qmessages.ErrorNoGame,
			Params: []messageprovider.Param{messageprovider.P("prefix", commandPrefix)},
		}
	case errors.As(err, &alreadyActive):
		return ErrorMapping{Key: qmessages.StartAlreadyActive}
	case errors.As(err, &noMoreHints):
		return ErrorMapping{Key: qmessages.HintNoMore}
	case errors.As(err, &revealLimit):
		return ErrorMapping{
			Key:    qmessages.RevealLimit,
			Params: []messageprovider.Param{messageprovider.P("limit", revealLimit.Limit)},
		}
	case errors.As(err, &allRevealed):
		return ErrorMapping{Key: qmessages.RevealAllRevealed}
	case errors.As(err, &insufficient):
		return ErrorMapping{Key: qmessages.RevealInsufficient}
	case errors.As(err, &voteInProgress):
		return ErrorMapping{Key: qmessages.VoteInProgress}
	case errors.As(err, &voteExpired):
		return ErrorMapping{Key: qmessages.VoteExpired}
	case errors.As(err, &alreadyVoted):
		return ErrorMapping{Key: qmessages.VoteAlready}
	case errors.As(err, &rateLimited):
		return ErrorMapping{
			Key:    qmessages.ErrorRateLimited,
			Params: []messageprovider.Param{messageprovider.P("seconds", rateLimited.RetryAfterSeconds)},
		}
	case errors.As(err, &invalidLevel):
		return ErrorMapping{Key: qmessages.StartInvalidDifficulty}
	case errors.As(err, &topicBlocked):
		return ErrorMapping{Key: qmessages.StartTopicNotAllowed}
	case errors.As(err, &notYours):
		return ErrorMapping{Key: qmessages.RevealNotForYou}
	case errors.As(err, &hintFailed):
		return ErrorMapping{Key: qmessages.StartFailed}
	default:
		return ErrorMapping{Key: qmessages.ErrorGeneric}
	}
}
