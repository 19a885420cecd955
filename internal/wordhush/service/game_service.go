// Package service implements the word game flows: starting games, revealing
// hints and letters, evaluating guesses and ending games by authority or
// vote. Operations consume inbound chat events and return reply intents;
// nothing here talks to a chat platform directly.
package service

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/wordhush/wordhush-bot-go/internal/common/messageprovider"
	"github.com/wordhush/wordhush-bot-go/internal/common/mqmsg"
	whconfig "github.com/wordhush/wordhush-bot-go/internal/wordhush/config"
	wherrors "github.com/wordhush/wordhush-bot-go/internal/wordhush/errors"
	"github.com/wordhush/wordhush-bot-go/internal/wordhush/hints"
	qmessages "github.com/wordhush/wordhush-bot-go/internal/wordhush/messages"
	"github.com/wordhush/wordhush-bot-go/internal/wordhush/model"
	whredis "github.com/wordhush/wordhush-bot-go/internal/wordhush/redis"
	"github.com/wordhush/wordhush-bot-go/internal/wordhush/repository"
	"github.com/wordhush/wordhush-bot-go/internal/wordhush/security"
)

// GameService coordinates the per-chat game lifecycle.
type GameService struct {
	sessions    *whredis.SessionStore
	history     *whredis.WordHistoryStore
	votes       *whredis.VoteStore
	latestMsgs  *whredis.LatestMessageStore
	rateLimiter *whredis.HintRateLimiter
	selector    *WordSelector
	repo        *repository.Repository
	hintCache   hints.Source
	hintGen     hints.Source
	access      *security.AccessControl
	msgProvider *messageprovider.Provider
	prefix      string
	logger      *slog.Logger

	// prewarm dedupes concurrent background hint authoring per word.
	prewarm singleflight.Group

	// now is swappable for tests.
	now func() time.Time
}

// NewGameService creates a GameService.
func NewGameService(
	sessions *whredis.SessionStore,
	history *whredis.WordHistoryStore,
	votes *whredis.VoteStore,
	latestMsgs *whredis.LatestMessageStore,
	rateLimiter *whredis.HintRateLimiter,
	selector *WordSelector,
	repo *repository.Repository,
	hintCache hints.Source,
	hintGen hints.Source,
	access *security.AccessControl,
	msgProvider *messageprovider.Provider,
	prefix string,
	logger *slog.Logger,
) *GameService {
	if logger == nil {
		logger = slog.Default()
	}
	return &GameService{
		sessions:    sessions,
		history:     history,
		votes:       votes,
		latestMsgs:  latestMsgs,
		rateLimiter: rateLimiter,
		selector:    selector,
		repo:        repo,
		hintCache:   hintCache,
		hintGen:     hintGen,
		access:      access,
		msgProvider: msgProvider,
		prefix:      strings.TrimSpace(prefix),
		logger:      logger,
	}
}

// StartGame begins a new game at the requested difficulty. An empty level
// argument returns the difficulty picker instead.
func (s *GameService) StartGame(ctx context.Context, msg mqmsg.InboundMessage, levelArg string) ([]mqmsg.OutboundMessage, error) {
	allowed, err := s.isTopicAllowed(ctx, msg)
	if err != nil {
		return nil, err
	}
	if !allowed {
		return nil, wherrors.TopicNotAllowedError{TopicID: topicOf(msg)}
	}

	if strings.TrimSpace(levelArg) == "" {
		return []mqmsg.OutboundMessage{s.difficultyPicker(msg)}, nil
	}

	level, err := model.ParseLevel(levelArg)
	if err != nil {
		return nil, err
	}

	existing, err := s.sessions.LoadValid(ctx, msg.ChatID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, wherrors.GameAlreadyActiveError{ChatID: msg.ChatID}
	}

	word, err := s.selector.Pick(ctx, msg.ChatID, level)
	if err != nil {
		return nil, err
	}

	set, err := s.hintCache.HintsFor(ctx, level, word)
	if err != nil {
		return nil, err
	}
	fromCache := set != nil
	if set == nil {
		set, err = s.hintGen.HintsFor(ctx, level, word)
		if err != nil {
			return nil, err
		}
	}
	if set == nil || len(set.Hints) == 0 {
		return nil, wherrors.HintGenerationError{Word: word}
	}

	// The cache may resolve a different lemma of the same level; keep the
	// history pointing at the word actually in play.
	if set.ResolvedWord != "" && set.ResolvedWord != word {
		if err := s.history.Swap(ctx, msg.ChatID, word, set.ResolvedWord); err != nil {
			s.logger.Warn("word_history_swap_failed", "chat_id", msg.ChatID, "err", err)
		}
	}

	session := model.GameSession{
		Words:            set.Words,
		Hints:            set.Hints,
		Sentence:         set.Sentence,
		Level:            level,
		CurrentHintIndex: 1,
		StartedBy:        msg.UserID,
	}
	if err := s.sessions.Save(ctx, msg.ChatID, session); err != nil {
		return nil, err
	}

	s.logger.Info("game_started", "chat_id", msg.ChatID, "level", level, "started_by", msg.UserID)

	// A cache-served start never ran the generator, so the drawn word may
	// still lack its own hint set (the cache can answer with a related
	// lemma). Author it in the background for a later game.
	if fromCache {
		go s.prewarmHints(context.WithoutCancel(ctx), level, word)
	}

	firstHint := ""
	if len(session.Hints) > 0 {
		firstHint = session.Hints[0]
	}
	reply := mqmsg.NewFinal(msg.ChatID, s.msgProvider.Get(qmessages.StartStarted,
		messageprovider.P("level", level.Title()),
		messageprovider.P("hint", firstHint),
	), msg.ThreadID)
	reply.Buttons = s.gameKeyboard(session)
	return []mqmsg.OutboundMessage{reply}, nil
}

func (s *GameService) prewarmHints(ctx context.Context, level model.Level, word string) {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Minute)
	defer cancel()
	_, err, _ := s.prewarm.Do(string(level)+":"+word, func() (any, error) {
		return s.hintGen.HintsFor(ctx, level, word)
	})
	if err != nil {
		s.logger.Debug("hint_prewarm_failed", "word", word, "err", err)
	}
}

func (s *GameService) difficultyPicker(msg mqmsg.InboundMessage) mqmsg.OutboundMessage {
	reply := mqmsg.NewFinal(msg.ChatID, s.msgProvider.Get(qmessages.StartChooseDifficulty), msg.ThreadID)
	reply.Buttons = []mqmsg.Button{
		{Label: s.msgProvider.Get(qmessages.ButtonEasy), Data: "difficulty_easy"},
		{Label: s.msgProvider.Get(qmessages.ButtonMedium), Data: "difficulty_medium"},
		{Label: s.msgProvider.Get(qmessages.ButtonHard), Data: "difficulty_hard"},
		{Label: s.msgProvider.Get(qmessages.ButtonExtreme), Data: "difficulty_extreme"},
		{Label: s.msgProvider.Get(qmessages.ButtonRandom), Data: "difficulty_random"},
	}
	return reply
}

// gameKeyboard builds the standard in-game buttons. The paid letter reveal
// disappears once the reveal cap is reached.
func (s *GameService) gameKeyboard(session model.GameSession) []mqmsg.Button {
	buttons := []mqmsg.Button{
		{Label: s.msgProvider.Get(qmessages.ButtonRevealHint), Data: "reveal_hint"},
	}
	if len(session.RevealedPositions) < whconfig.MaxRevealedLetters {
		buttons = append(buttons, mqmsg.Button{
			Label: s.msgProvider.Get(qmessages.ButtonRevealLetter, messageprovider.P("price", session.Level.RevealPrice())),
			Data:  "reveal_letter",
		})
	}
	return buttons
}

// isTopicAllowed checks the chat's designated game topics. A chat with no
// designations allows play everywhere.
func (s *GameService) isTopicAllowed(ctx context.Context, msg mqmsg.InboundMessage) (bool, error) {
	topics, err := s.repo.AllowedTopics(ctx, msg.ChatID)
	if err != nil {
		return false, err
	}
	if len(topics) == 0 {
		return true, nil
	}
	current := topicOf(msg)
	for _, t := range topics {
		if t == current {
			return true, nil
		}
	}
	return false, nil
}

func topicOf(msg mqmsg.InboundMessage) string {
	if msg.ThreadID != nil && strings.TrimSpace(*msg.ThreadID) != "" {
		return strings.TrimSpace(*msg.ThreadID)
	}
	return "general"
}

// requireSession loads a valid session or fails with SessionNotFoundError.
func (s *GameService) requireSession(ctx context.Context, chatID string) (*model.GameSession, error) {
	session, err := s.sessions.LoadValid(ctx, chatID)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, wherrors.SessionNotFoundError{ChatID: chatID}
	}
	return session, nil
}
