package service

import (
	"context"
	"strings"
	"time"

	"github.com/wordhush/wordhush-bot-go/internal/common/messageprovider"
	"github.com/wordhush/wordhush-bot-go/internal/common/mqmsg"
	whconfig "github.com/wordhush/wordhush-bot-go/internal/wordhush/config"
	wherrors "github.com/wordhush/wordhush-bot-go/internal/wordhush/errors"
	qmessages "github.com/wordhush/wordhush-bot-go/internal/wordhush/messages"
	"github.com/wordhush/wordhush-bot-go/internal/wordhush/model"
	"github.com/wordhush/wordhush-bot-go/internal/wordhush/security"
)

// RequestEnd handles the end-game command. Privileged users terminate the
// game immediately; anyone else opens (or is pointed at) a termination vote.
func (s *GameService) RequestEnd(ctx context.Context, msg mqmsg.InboundMessage) ([]mqmsg.OutboundMessage, error) {
	allowed, err := s.isTopicAllowed(ctx, msg)
	if err != nil {
		return nil, err
	}
	if !allowed {
		return nil, wherrors.TopicNotAllowedError{TopicID: topicOf(msg)}
	}

	session, err := s.requireSession(ctx, msg.ChatID)
	if err != nil {
		return nil, err
	}

	authority, err := s.access.ResolveEndAuthority(ctx, msg, session)
	if err != nil {
		return nil, err
	}
	if authority != security.AuthorityNone {
		return s.endGame(ctx, msg, session, s.endReason(authority))
	}

	voteOpen, err := s.votes.Exists(ctx, msg.ChatID)
	if err != nil {
		return nil, err
	}
	if voteOpen {
		return nil, wherrors.VoteInProgressError{ChatID: msg.ChatID}
	}

	vote := model.NewEndVote(msg.UserID, s.timeNow())
	if err := s.votes.Save(ctx, msg.ChatID, vote); err != nil {
		return nil, err
	}

	s.logger.Info("end_vote_started", "chat_id", msg.ChatID, "initiated_by", msg.UserID)

	reply := mqmsg.NewFinal(msg.ChatID, s.msgProvider.Get(qmessages.VoteStarted,
		messageprovider.P("threshold", whconfig.VoteThreshold),
		messageprovider.P("count", vote.Count()),
	), msg.ThreadID)
	reply.Buttons = []mqmsg.Button{s.voteButton(msg.ChatID, vote.Count())}
	return []mqmsg.OutboundMessage{reply}, nil
}

// CastVote applies one press of the end-game vote button. Privileged voters
// short-circuit the vote; the third ordinary vote ends the game.
func (s *GameService) CastVote(ctx context.Context, msg mqmsg.InboundMessage, voteChatID string) ([]mqmsg.OutboundMessage, error) {
	if strings.TrimSpace(voteChatID) != msg.ChatID {
		reply := mqmsg.NewError(msg.ChatID, s.msgProvider.Get(qmessages.VoteWrongChat), msg.ThreadID)
		return []mqmsg.OutboundMessage{reply}, nil
	}

	session, err := s.requireSession(ctx, msg.ChatID)
	if err != nil {
		return nil, err
	}

	vote, err := s.votes.Get(ctx, msg.ChatID)
	if err != nil {
		return nil, err
	}
	if vote == nil {
		return nil, wherrors.VoteExpiredError{}
	}

	authority, err := s.access.ResolveEndAuthority(ctx, msg, session)
	if err != nil {
		return nil, err
	}
	if authority != security.AuthorityNone {
		return s.endGame(ctx, msg, session, s.endReason(authority))
	}

	if vote.HasVoted(msg.UserID) {
		return nil, wherrors.AlreadyVotedError{UserID: msg.UserID}
	}

	updated, _ := vote.AddVoter(msg.UserID)
	if updated.Reaches(whconfig.VoteThreshold) {
		s.logger.Info("end_vote_reached", "chat_id", msg.ChatID, "votes", updated.Count())
		return s.endGame(ctx, msg, session, s.msgProvider.Get(qmessages.EndByVote,
			messageprovider.P("threshold", whconfig.VoteThreshold)))
	}

	if err := s.votes.Save(ctx, msg.ChatID, updated); err != nil {
		return nil, err
	}

	s.logger.Info("end_vote_recorded", "chat_id", msg.ChatID, "user_id", msg.UserID, "votes", updated.Count())

	reply := mqmsg.NewFinal(msg.ChatID, s.msgProvider.Get(qmessages.VoteProgress,
		messageprovider.P("threshold", whconfig.VoteThreshold),
		messageprovider.P("count", updated.Count()),
	), msg.ThreadID)
	reply.Buttons = []mqmsg.Button{s.voteButton(msg.ChatID, updated.Count())}
	reply.EditMessageID = msg.MessageID
	return []mqmsg.OutboundMessage{reply}, nil
}

// endGame reveals the word and clears every game key for the chat.
func (s *GameService) endGame(ctx context.Context, msg mqmsg.InboundMessage, session *model.GameSession, reason string) ([]mqmsg.OutboundMessage, error) {
	if err := s.clearGameState(ctx, msg.ChatID); err != nil {
		return nil, err
	}

	s.logger.Info("game_ended", "chat_id", msg.ChatID, "ended_by", msg.UserID)

	reply := mqmsg.NewFinal(msg.ChatID, s.msgProvider.Get(qmessages.EndSummary,
		messageprovider.P("word", session.Answer()),
		messageprovider.P("forms", strings.Join(session.Words, ", ")),
		messageprovider.P("sentence", session.Sentence),
		messageprovider.P("reason", reason),
		messageprovider.P("prefix", s.prefix),
	), msg.ThreadID)
	return []mqmsg.OutboundMessage{reply}, nil
}

func (s *GameService) endReason(authority security.EndAuthority) string {
	switch authority {
	case security.AuthoritySystemAdmin:
		return s.msgProvider.Get(qmessages.EndBySystemAdmin)
	case security.AuthorityGroupAdmin:
		return s.msgProvider.Get(qmessages.EndByGroupAdmin)
	case security.AuthorityGameStarter:
		return s.msgProvider.Get(qmessages.EndByGameStarter)
	case security.AuthorityAuthorized:
		return s.msgProvider.Get(qmessages.EndByAuthorizedUser)
	default:
		return ""
	}
}

func (s *GameService) voteButton(chatID string, count int) mqmsg.Button {
	return mqmsg.Button{
		Label: s.msgProvider.Get(qmessages.VoteButton,
			messageprovider.P("count", count),
			messageprovider.P("threshold", whconfig.VoteThreshold)),
		Data: "vote_end " + chatID,
	}
}

func (s *GameService) timeNow() time.Time {
	if s.now != nil {
		return s.now()
	}
	return time.Now()
}
