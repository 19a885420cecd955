package service

import (
	"context"
	"strings"

	"github.com/wordhush/wordhush-bot-go/internal/common/messageprovider"
	"github.com/wordhush/wordhush-bot-go/internal/common/mqmsg"
	qmessages "github.com/wordhush/wordhush-bot-go/internal/wordhush/messages"
	"github.com/wordhush/wordhush-bot-go/internal/wordhush/model"
	"github.com/wordhush/wordhush-bot-go/internal/wordhush/repository"
)

// HandleGuess evaluates a plain chat message against the running game. Chats
// without a game, restricted topics and command-like messages produce no
// reply at all; a miss is silent as well, so ordinary conversation is never
// interrupted.
func (s *GameService) HandleGuess(ctx context.Context, msg mqmsg.InboundMessage) ([]mqmsg.OutboundMessage, error) {
	allowed, err := s.isTopicAllowed(ctx, msg)
	if err != nil {
		return nil, err
	}
	if !allowed {
		return nil, nil
	}

	session, err := s.sessions.LoadValid(ctx, msg.ChatID)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, nil
	}

	if strings.TrimSpace(msg.MessageID) != "" {
		if err := s.latestMsgs.Record(ctx, msg.ChatID, msg.MessageID); err != nil {
			s.logger.Warn("latest_msg_record_failed", "chat_id", msg.ChatID, "err", err)
		}
	}

	guess := strings.ToLower(strings.TrimSpace(msg.Content))
	if guess == "" || strings.HasPrefix(guess, "/") {
		return nil, nil
	}

	switch model.ClassifyGuess(session, guess) {
	case model.GuessCorrect:
		return s.handleWin(ctx, msg, session, guess)
	case model.GuessClose:
		reply := mqmsg.NewFinal(msg.ChatID, s.msgProvider.Get(qmessages.GuessClose), msg.ThreadID)
		reply.ReplyToMessageID = msg.MessageID
		return []mqmsg.OutboundMessage{reply}, nil
	default:
		return nil, nil
	}
}

func (s *GameService) handleWin(ctx context.Context, msg mqmsg.InboundMessage, session *model.GameSession, guess string) ([]mqmsg.OutboundMessage, error) {
	score := session.Level.Score(session.HintsUsed())

	user := repository.User{ID: msg.UserID, Name: displayName(msg)}
	if err := s.repo.UpsertWithCredit(ctx, user, score); err != nil {
		return nil, err
	}
	if err := s.repo.RecordWin(ctx, repository.LeaderboardEntry{
		UserID: msg.UserID,
		ChatID: msg.ChatID,
		Level:  string(session.Level),
		Score:  score,
	}); err != nil {
		return nil, err
	}

	if err := s.clearGameState(ctx, msg.ChatID); err != nil {
		return nil, err
	}

	s.logger.Info("game_won", "chat_id", msg.ChatID, "user_id", msg.UserID,
		"level", session.Level, "score", score, "hints_used", session.HintsUsed())

	reply := mqmsg.NewFinal(msg.ChatID, s.msgProvider.Get(qmessages.GuessCorrect,
		messageprovider.P("score", score),
		messageprovider.P("word", guess),
		messageprovider.P("forms", strings.Join(session.Words, ", ")),
		messageprovider.P("sentence", session.Sentence),
		messageprovider.P("prefix", s.prefix),
	), msg.ThreadID)
	reply.ReplyToMessageID = msg.MessageID
	reply.Reaction = "🎉"
	return []mqmsg.OutboundMessage{reply}, nil
}

// clearGameState removes every per-chat game key: session, open vote and
// the latest message marker.
func (s *GameService) clearGameState(ctx context.Context, chatID string) error {
	if err := s.sessions.Delete(ctx, chatID); err != nil {
		return err
	}
	if err := s.votes.Clear(ctx, chatID); err != nil {
		return err
	}
	if err := s.latestMsgs.Clear(ctx, chatID); err != nil {
		s.logger.Warn("latest_msg_clear_failed", "chat_id", chatID, "err", err)
	}
	return nil
}

func displayName(msg mqmsg.InboundMessage) string {
	if msg.Sender != nil && strings.TrimSpace(*msg.Sender) != "" {
		return strings.TrimSpace(*msg.Sender)
	}
	return msg.UserID
}
