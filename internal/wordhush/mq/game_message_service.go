package mq

import (
	"context"
	"log/slog"
	"strings"

	"github.com/wordhush/wordhush-bot-go/internal/common/messageprovider"
	commonmq "github.com/wordhush/wordhush-bot-go/internal/common/mq"
	"github.com/wordhush/wordhush-bot-go/internal/common/mqmsg"
	"github.com/wordhush/wordhush-bot-go/internal/common/sequencer"
	wherrors "github.com/wordhush/wordhush-bot-go/internal/wordhush/errors"
	qmessages "github.com/wordhush/wordhush-bot-go/internal/wordhush/messages"
	qsecurity "github.com/wordhush/wordhush-bot-go/internal/wordhush/security"
	qsvc "github.com/wordhush/wordhush-bot-go/internal/wordhush/service"
)

// GameMessageService is the inbound event dispatcher. It parses commands
// and callbacks, serializes all work for a chat, runs the matching game
// operation and publishes the reply intents.
type GameMessageService struct {
	game        *qsvc.GameService
	commands    *CommandParser
	publisher   *commonmq.ReplyPublisher
	sequencer   *sequencer.Sequencer
	access      *qsecurity.AccessControl
	msgProvider *messageprovider.Provider
	prefix      string
	logger      *slog.Logger
}

// NewGameMessageService creates a GameMessageService.
func NewGameMessageService(
	game *qsvc.GameService,
	commands *CommandParser,
	publisher *commonmq.ReplyPublisher,
	seq *sequencer.Sequencer,
	access *qsecurity.AccessControl,
	msgProvider *messageprovider.Provider,
	prefix string,
	logger *slog.Logger,
) *GameMessageService {
	if logger == nil {
		logger = slog.Default()
	}
	return &GameMessageService{
		game:        game,
		commands:    commands,
		publisher:   publisher,
		sequencer:   seq,
		access:      access,
		msgProvider: msgProvider,
		prefix:      strings.TrimSpace(prefix),
		logger:      logger,
	}
}

// HandleMessage processes one inbound chat event. Events of the same chat
// run strictly in order; different chats run in parallel.
func (s *GameMessageService) HandleMessage(ctx context.Context, message mqmsg.InboundMessage) {
	s.sequencer.Do(message.ChatID, func() {
		if message.IsCallback() {
			if s.isAccessAllowed(ctx, message, true) {
				s.handleCallback(ctx, message)
			}
			return
		}

		if cmd := s.commands.Parse(message.Content); cmd != nil {
			if s.isAccessAllowed(ctx, message, true) {
				s.handleCommand(ctx, message, *cmd)
			}
			return
		}

		if s.isAccessAllowed(ctx, message, false) {
			s.handleGuess(ctx, message)
		}
	})
}

// isAccessAllowed checks the configured allow and block lists. Denials of
// explicit interactions get a reply; denied free text is just dropped.
func (s *GameMessageService) isAccessAllowed(ctx context.Context, message mqmsg.InboundMessage, explicit bool) bool {
	key := s.access.DenialMessageKey(message.UserID, message.ChatID)
	if key == "" {
		return true
	}

	s.logger.Warn("access_denied", "chat_id", message.ChatID, "user_id", message.UserID, "reason", key)
	if explicit && key != qmessages.ErrorAccessDenied {
		if err := s.publisher.Publish(ctx, mqmsg.NewError(message.ChatID, s.msgProvider.Get(key), message.ThreadID)); err != nil {
			s.logger.Error("reply_publish_failed", "chat_id", message.ChatID, "err", err)
		}
	}
	return false
}

func (s *GameMessageService) handleCommand(ctx context.Context, message mqmsg.InboundMessage, command Command) {
	s.logger.Info("command_received", "chat_id", message.ChatID, "user_id", message.UserID, "kind", command.Kind)

	var (
		replies []mqmsg.OutboundMessage
		err     error
	)
	switch command.Kind {
	case CommandNewGame:
		replies, err = s.game.StartGame(ctx, message, command.LevelArg)
	case CommandEndGame:
		replies, err = s.game.RequestEnd(ctx, message)
	case CommandLeaderboard:
		replies, err = s.game.Leaderboard(ctx, message)
	case CommandScore:
		replies, err = s.game.Score(ctx, message)
	case CommandHelp:
		replies = []mqmsg.OutboundMessage{mqmsg.NewFinal(message.ChatID,
			s.msgProvider.Get(qmessages.HelpMessage, messageprovider.P("prefix", s.prefix)),
			message.ThreadID)}
	default:
		return
	}

	s.finish(ctx, message, replies, err)
}

func (s *GameMessageService) handleCallback(ctx context.Context, message mqmsg.InboundMessage) {
	callback := ParseCallback(message.CallbackData)
	s.logger.Info("callback_received", "chat_id", message.ChatID, "user_id", message.UserID, "kind", callback.Kind)

	var (
		replies []mqmsg.OutboundMessage
		err     error
	)
	switch callback.Kind {
	case CallbackDifficulty:
		replies, err = s.game.StartGame(ctx, message, callback.Arg)
	case CallbackRevealHint:
		replies, err = s.game.RevealNextHint(ctx, message)
	case CallbackRevealLetter:
		replies, err = s.game.RequestLetterReveal(ctx, message)
	case CallbackConfirmReveal:
		replies, err = s.game.ConfirmLetterReveal(ctx, message, callback.Arg)
	case CallbackCancelReveal:
		replies, err = s.game.CancelLetterReveal(ctx, message, callback.Arg)
	case CallbackVoteEnd:
		replies, err = s.game.CastVote(ctx, message, callback.Arg)
	default:
		s.logger.Debug("callback_unknown", "chat_id", message.ChatID, "data", message.CallbackData)
		return
	}

	s.finish(ctx, message, replies, err)
}

// handleGuess evaluates free text. Failures here stay quiet toward the
// user; a broken store should not turn every chat message into an error
// reply.
func (s *GameMessageService) handleGuess(ctx context.Context, message mqmsg.InboundMessage) {
	replies, err := s.game.HandleGuess(ctx, message)
	if err != nil {
		s.logger.Error("guess_handling_failed", "chat_id", message.ChatID, "err", err)
		return
	}
	s.publishAll(ctx, message, replies)
}

func (s *GameMessageService) finish(ctx context.Context, message mqmsg.InboundMessage, replies []mqmsg.OutboundMessage, err error) {
	if err != nil {
		s.replyError(ctx, message, err)
		return
	}
	s.publishAll(ctx, message, replies)
}

func (s *GameMessageService) publishAll(ctx context.Context, message mqmsg.InboundMessage, replies []mqmsg.OutboundMessage) {
	for _, reply := range replies {
		if err := s.publisher.Publish(ctx, reply); err != nil {
			s.logger.Error("reply_publish_failed", "chat_id", message.ChatID, "err", err)
			return
		}
	}
}

func (s *GameMessageService) replyError(ctx context.Context, message mqmsg.InboundMessage, err error) {
	if wherrors.IsPrecondition(err) {
		s.logger.Debug("command_precondition_failed", "chat_id", message.ChatID, "user_id", message.UserID, "err", err)
	} else {
		s.logger.Error("command_failed", "chat_id", message.ChatID, "user_id", message.UserID, "err", err)
	}

	mapping := GetErrorMapping(err, s.prefix)
	text := s.msgProvider.Get(mapping.Key, mapping.Params...)
	if publishErr := s.publisher.Publish(ctx, mqmsg.NewError(message.ChatID, text, message.ThreadID)); publishErr != nil {
		s.logger.Error("reply_publish_failed", "chat_id", message.ChatID, "err", publishErr)
	}
}
