package service

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/glebarez/sqlite"
	"gorm.io/gorm"

	"github.com/wordhush/wordhush-bot-go/internal/common/messageprovider"
	"github.com/wordhush/wordhush-bot-go/internal/common/mqmsg"
	"github.com/wordhush/wordhush-bot-go/internal/common/testhelper"
	whassets "github.com/wordhush/wordhush-bot-go/internal/wordhush/assets"
	whconfig "github.com/wordhush/wordhush-bot-go/internal/wordhush/config"
	"github.com/wordhush/wordhush-bot-go/internal/wordhush/hints"
	"github.com/wordhush/wordhush-bot-go/internal/wordhush/model"
	whredis "github.com/wordhush/wordhush-bot-go/internal/wordhush/redis"
	"github.com/wordhush/wordhush-bot-go/internal/wordhush/repository"
	"github.com/wordhush/wordhush-bot-go/internal/wordhush/security"
)

// fakeHintSource returns a fixed hint set, or nothing.
type fakeHintSource struct {
	set *hints.WordHints
	err error
}

func (f *fakeHintSource) HintsFor(ctx context.Context, level model.Level, word string) (*hints.WordHints, error) {
	if f == nil {
		return nil, nil
	}
	return f.set, f.err
}

// recordingHintSource signals every word it is asked to author.
type recordingHintSource struct {
	set   *hints.WordHints
	calls chan string
}

func (r *recordingHintSource) HintsFor(ctx context.Context, level model.Level, word string) (*hints.WordHints, error) {
	r.calls <- word
	return r.set, nil
}

type gameFixture struct {
	svc      *GameService
	sessions *whredis.SessionStore
	history  *whredis.WordHistoryStore
	votes    *whredis.VoteStore
	latest   *whredis.LatestMessageStore
	repo     *repository.Repository
	db       *gorm.DB
	provider *messageprovider.Provider
	mr       *miniredis.Miniredis
}

func newGameFixture(t *testing.T, cache, gen hints.Source) *gameFixture {
	t.Helper()

	client, mr := testhelper.NewMiniValkey(t)
	logger := testhelper.DiscardLogger()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("access sql db failed: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetMaxIdleConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	repo := repository.New(db)
	if err := repo.AutoMigrate(context.Background()); err != nil {
		t.Fatalf("auto migrate failed: %v", err)
	}

	provider, err := messageprovider.NewFromYAML(whassets.GameMessagesYAML)
	if err != nil {
		t.Fatalf("load messages failed: %v", err)
	}

	sessions := whredis.NewSessionStore(client, logger)
	history := whredis.NewWordHistoryStore(client, logger)
	votes := whredis.NewVoteStore(client)
	latest := whredis.NewLatestMessageStore(client)
	limiter := whredis.NewHintRateLimiter(client, logger)

	access := security.NewAccessControl(
		whconfig.AccessConfig{},
		whconfig.AdminConfig{UserIDs: []string{"admin1"}},
		repo,
	)

	svc := NewGameService(
		sessions,
		history,
		votes,
		latest,
		limiter,
		NewWordSelector(history, logger),
		repo,
		cache,
		gen,
		access,
		provider,
		"/",
		logger,
	)

	return &gameFixture{
		svc:      svc,
		sessions: sessions,
		history:  history,
		votes:    votes,
		latest:   latest,
		repo:     repo,
		db:       db,
		provider: provider,
		mr:       mr,
	}
}

func inbound(chatID, userID string) mqmsg.InboundMessage {
	return mqmsg.InboundMessage{ChatID: chatID, UserID: userID}
}

func seedSession(t *testing.T, f *gameFixture, chatID string, session model.GameSession) {
	t.Helper()
	if err := f.sessions.Save(context.Background(), chatID, session); err != nil {
		t.Fatalf("seed session failed: %v", err)
	}
}

func activeSession(t *testing.T, f *gameFixture, chatID string) *model.GameSession {
	t.Helper()
	session, err := f.sessions.LoadValid(context.Background(), chatID)
	if err != nil {
		t.Fatalf("load session failed: %v", err)
	}
	return session
}

func fiveHintSession(startedBy string) model.GameSession {
	return model.GameSession{
		Words:            []string{"cat", "cats"},
		Hints:            []string{"animal", "pet", "meows", "chases mice", "starts with c"},
		Sentence:         "The cat sat on the mat.",
		Level:            model.LevelEasy,
		CurrentHintIndex: 1,
		StartedBy:        startedBy,
	}
}
