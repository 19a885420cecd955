package service

import (
	"context"
	"strconv"
	"strings"

	"github.com/wordhush/wordhush-bot-go/internal/common/messageprovider"
	"github.com/wordhush/wordhush-bot-go/internal/common/mqmsg"
	whconfig "github.com/wordhush/wordhush-bot-go/internal/wordhush/config"
	wherrors "github.com/wordhush/wordhush-bot-go/internal/wordhush/errors"
	qmessages "github.com/wordhush/wordhush-bot-go/internal/wordhush/messages"
	"github.com/wordhush/wordhush-bot-go/internal/wordhush/model"
	whredis "github.com/wordhush/wordhush-bot-go/internal/wordhush/redis"
)

// messageGapForNewPost is how far the conversation must have moved past the
// hint message before an update is posted fresh instead of edited in place.
const messageGapForNewPost = 5

// RevealNextHint advances the hint sequence by one and re-renders the full
// hint list. The update edits the pressed message unless the chat has moved
// on, in which case a fresh message is posted.
func (s *GameService) RevealNextHint(ctx context.Context, msg mqmsg.InboundMessage) ([]mqmsg.OutboundMessage, error) {
	session, err := s.requireSession(ctx, msg.ChatID)
	if err != nil {
		return nil, err
	}
	if !session.HasMoreHints() {
		return nil, wherrors.NoMoreHintsError{}
	}

	exempt := s.access.IsSystemAdmin(msg.UserID) || msg.Role == mqmsg.RoleSystemAdmin
	outcome, err := s.rateLimiter.Check(ctx, msg.UserID, exempt)
	if err != nil {
		return nil, err
	}
	switch outcome {
	case whredis.Blocked:
		remaining, err := s.rateLimiter.BlockRemaining(ctx, msg.UserID)
		if err != nil {
			remaining = int64(whconfig.HintBlockDuration.Seconds())
		}
		return nil, wherrors.RateLimitedError{RetryAfterSeconds: remaining}
	case whredis.NewlyBlocked:
		notice := mqmsg.NewFinal(msg.ChatID, s.msgProvider.Get(qmessages.HintSpamNotice,
			messageprovider.P("userId", msg.UserID)), msg.ThreadID)
		return []mqmsg.OutboundMessage{notice}, nil
	}

	session.CurrentHintIndex++
	if err := s.sessions.Save(ctx, msg.ChatID, *session); err != nil {
		return nil, err
	}

	s.logger.Info("hint_revealed", "chat_id", msg.ChatID, "hint_index", session.CurrentHintIndex)

	reply := mqmsg.NewFinal(msg.ChatID, s.renderHintList(session), msg.ThreadID)
	reply.Buttons = s.gameKeyboard(*session)
	if s.shouldEditInPlace(ctx, msg) {
		reply.EditMessageID = msg.MessageID
	}
	return []mqmsg.OutboundMessage{reply}, nil
}

// renderHintList renders the hint header, the letter mask when letters have
// been bought, and every revealed hint.
func (s *GameService) renderHintList(session *model.GameSession) string {
	lines := []string{s.msgProvider.Get(qmessages.HintHeader, messageprovider.P("level", session.Level.Title()))}
	if len(session.RevealedPositions) > 0 {
		lines = append(lines, s.msgProvider.Get(qmessages.HintLetterLine, messageprovider.P("mask", session.MaskedWord())))
	}
	for i, hint := range session.RevealedHints() {
		lines = append(lines, s.msgProvider.Get(qmessages.HintLine,
			messageprovider.P("number", i+1),
			messageprovider.P("hint", hint),
		))
	}
	return strings.Join(lines, "\n")
}

// shouldEditInPlace compares the pressed message against the chat's latest
// recorded message. A small gap keeps the update on the original message.
func (s *GameService) shouldEditInPlace(ctx context.Context, msg mqmsg.InboundMessage) bool {
	if strings.TrimSpace(msg.MessageID) == "" {
		return false
	}
	latest, err := s.latestMsgs.Get(ctx, msg.ChatID)
	if err != nil || latest == "" {
		return true
	}
	latestID, err1 := strconv.ParseInt(latest, 10, 64)
	pressedID, err2 := strconv.ParseInt(msg.MessageID, 10, 64)
	if err1 != nil || err2 != nil {
		return true
	}
	return latestID-pressedID <= messageGapForNewPost
}

// RequestLetterReveal asks the user to confirm a paid letter reveal.
func (s *GameService) RequestLetterReveal(ctx context.Context, msg mqmsg.InboundMessage) ([]mqmsg.OutboundMessage, error) {
	session, err := s.requireSession(ctx, msg.ChatID)
	if err != nil {
		return nil, err
	}

	price := session.Level.RevealPrice()
	reply := mqmsg.NewFinal(msg.ChatID, s.msgProvider.Get(qmessages.RevealConfirm,
		messageprovider.P("price", price)), msg.ThreadID)
	reply.Buttons = []mqmsg.Button{
		{Label: s.msgProvider.Get(qmessages.RevealConfirmYes), Data: "confirm_reveal " + msg.UserID},
		{Label: s.msgProvider.Get(qmessages.RevealConfirmNo), Data: "cancel_reveal " + msg.UserID},
	}
	return []mqmsg.OutboundMessage{reply}, nil
}

// ConfirmLetterReveal debits the user and reveals one random hidden letter.
// Only the user who requested the reveal may confirm it.
func (s *GameService) ConfirmLetterReveal(ctx context.Context, msg mqmsg.InboundMessage, targetUserID string) ([]mqmsg.OutboundMessage, error) {
	if msg.UserID != targetUserID {
		return nil, wherrors.NotYourConfirmationError{}
	}

	session, err := s.requireSession(ctx, msg.ChatID)
	if err != nil {
		return nil, err
	}
	if len(session.RevealedPositions) >= whconfig.MaxRevealedLetters {
		return nil, wherrors.RevealLimitError{Limit: whconfig.MaxRevealedLetters}
	}
	remaining := session.RemainingPositions()
	if len(remaining) == 0 {
		return nil, wherrors.AllLettersRevealedError{}
	}

	price := session.Level.RevealPrice()
	if err := s.repo.DebitIfSufficient(ctx, msg.UserID, price); err != nil {
		return nil, err
	}

	position, err := randomPosition(remaining)
	if err != nil {
		return nil, err
	}
	session.RevealedPositions = append(session.RevealedPositions, position)
	if err := s.sessions.Save(ctx, msg.ChatID, *session); err != nil {
		return nil, err
	}

	s.logger.Info("letter_revealed", "chat_id", msg.ChatID, "user_id", msg.UserID, "price", price,
		"revealed_count", len(session.RevealedPositions))

	reply := mqmsg.NewFinal(msg.ChatID, s.msgProvider.Get(qmessages.RevealDone,
		messageprovider.P("price", price),
		messageprovider.P("mask", session.MaskedWord()),
	), msg.ThreadID)
	reply.EditMessageID = msg.MessageID
	return []mqmsg.OutboundMessage{reply}, nil
}

// CancelLetterReveal dismisses the confirmation. Only the requester may
// cancel.
func (s *GameService) CancelLetterReveal(ctx context.Context, msg mqmsg.InboundMessage, targetUserID string) ([]mqmsg.OutboundMessage, error) {
	if msg.UserID != targetUserID {
		return nil, wherrors.NotYourConfirmationError{}
	}

	reply := mqmsg.NewFinal(msg.ChatID, s.msgProvider.Get(qmessages.RevealCancelled), msg.ThreadID)
	reply.EditMessageID = msg.MessageID
	return []mqmsg.OutboundMessage{reply}, nil
}

func randomPosition(positions []int) (int, error) {
	idx, err := randomIndex(len(positions))
	if err != nil {
		return 0, err
	}
	return positions[idx], nil
}
