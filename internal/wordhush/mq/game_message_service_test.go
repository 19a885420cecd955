package mq

import (
	"context"
	"strings"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/valkey-io/valkey-go"
	"gorm.io/gorm"

	"github.com/wordhush/wordhush-bot-go/internal/common/messageprovider"
	commonmq "github.com/wordhush/wordhush-bot-go/internal/common/mq"
	"github.com/wordhush/wordhush-bot-go/internal/common/mqmsg"
	"github.com/wordhush/wordhush-bot-go/internal/common/sequencer"
	"github.com/wordhush/wordhush-bot-go/internal/common/testhelper"
	whassets "github.com/wordhush/wordhush-bot-go/internal/wordhush/assets"
	whconfig "github.com/wordhush/wordhush-bot-go/internal/wordhush/config"
	"github.com/wordhush/wordhush-bot-go/internal/wordhush/hints"
	qmessages "github.com/wordhush/wordhush-bot-go/internal/wordhush/messages"
	"github.com/wordhush/wordhush-bot-go/internal/wordhush/model"
	whredis "github.com/wordhush/wordhush-bot-go/internal/wordhush/redis"
	"github.com/wordhush/wordhush-bot-go/internal/wordhush/repository"
	qsecurity "github.com/wordhush/wordhush-bot-go/internal/wordhush/security"
	qsvc "github.com/wordhush/wordhush-bot-go/internal/wordhush/service"
)

const testReplyStream = "reply:stream"

type emptyHintSource struct{}

func (emptyHintSource) HintsFor(ctx context.Context, level model.Level, word string) (*hints.WordHints, error) {
	return nil, nil
}

type dispatchFixture struct {
	svc      *GameMessageService
	client   valkey.Client
	provider *messageprovider.Provider
	sessions *whredis.SessionStore
}

func newDispatchFixture(t *testing.T, access whconfig.AccessConfig) *dispatchFixture {
	t.Helper()

	client, _ := testhelper.NewMiniValkey(t)
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
	accessControl := qsecurity.NewAccessControl(access, whconfig.AdminConfig{}, repo)

	game := qsvc.NewGameService(
		sessions,
		history,
		whredis.NewVoteStore(client),
		whredis.NewLatestMessageStore(client),
		whredis.NewHintRateLimiter(client, logger),
		qsvc.NewWordSelector(history, logger),
		repo,
		emptyHintSource{},
		emptyHintSource{},
		accessControl,
		provider,
		"/",
		logger,
	)

	publisher := commonmq.NewReplyPublisher(commonmq.NewStreamPublisher(client, logger, commonmq.StreamPublisherConfig{
		Stream: testReplyStream,
		MaxLen: 100,
	}))

	svc := NewGameMessageService(game, NewCommandParser("/"), publisher, sequencer.New(),
		accessControl, provider, "/", logger)

	return &dispatchFixture{svc: svc, client: client, provider: provider, sessions: sessions}
}

func publishedReplies(t *testing.T, f *dispatchFixture) []valkey.XRangeEntry {
	t.Helper()
	cmd := f.client.B().Xrange().Key(testReplyStream).Start("-").End("+").Build()
	entries, err := f.client.Do(context.Background(), cmd).AsXRange()
	if err != nil {
		t.Fatalf("read reply stream failed: %v", err)
	}
	return entries
}

func TestHandleMessage_HelpCommand(t *testing.T) {
	f := newDispatchFixture(t, whconfig.AccessConfig{})

	f.svc.HandleMessage(context.Background(), mqmsg.InboundMessage{
		ChatID:  "chat1",
		UserID:  "u1",
		Content: "/help",
	})

	entries := publishedReplies(t, f)
	if len(entries) != 1 {
		t.Fatalf("len(entries) = %d, want 1", len(entries))
	}
	if entries[0].FieldValues["type"] != "final" {
		t.Errorf("type = %q, want final", entries[0].FieldValues["type"])
	}
	if !strings.Contains(entries[0].FieldValues["text"], "/newword") {
		t.Errorf("text = %q, want help text", entries[0].FieldValues["text"])
	}
}

func TestHandleMessage_PreconditionBecomesErrorReply(t *testing.T) {
	f := newDispatchFixture(t, whconfig.AccessConfig{})

	// Ending without a game maps to the no-game message.
	f.svc.HandleMessage(context.Background(), mqmsg.InboundMessage{
		ChatID:  "chat1",
		UserID:  "u1",
		Content: "/endword",
	})

	entries := publishedReplies(t, f)
	if len(entries) != 1 {
		t.Fatalf("len(entries) = %d, want 1", len(entries))
	}
	if entries[0].FieldValues["type"] != "error" {
		t.Errorf("type = %q, want error", entries[0].FieldValues["type"])
	}
	want := f.provider.Get(qmessages.ErrorNoGame, messageprovider.P("prefix", "/"))
	if entries[0].FieldValues["text"] != want {
		t.Errorf("text = %q, want %q", entries[0].FieldValues["text"], want)
	}
}

func TestHandleMessage_PlainChatWithoutGameIsSilent(t *testing.T) {
	f := newDispatchFixture(t, whconfig.AccessConfig{})

	f.svc.HandleMessage(context.Background(), mqmsg.InboundMessage{
		ChatID:  "chat1",
		UserID:  "u1",
		Content: "just chatting",
	})

	if entries := publishedReplies(t, f); len(entries) != 0 {
		t.Errorf("entries = %+v, want none", entries)
	}
}

func TestHandleMessage_CallbackRunsGameOperation(t *testing.T) {
	f := newDispatchFixture(t, whconfig.AccessConfig{})
	ctx := context.Background()

	session := model.GameSession{
		Words:            []string{"cat", "cats"},
		Hints:            []string{"animal", "pet", "meows"},
		Level:            model.LevelEasy,
		CurrentHintIndex: 1,
		StartedBy:        "u1",
	}
	if err := f.sessions.Save(ctx, "chat1", session); err != nil {
		t.Fatalf("seed session failed: %v", err)
	}

	f.svc.HandleMessage(ctx, mqmsg.InboundMessage{
		ChatID:       "chat1",
		UserID:       "u1",
		CallbackData: "reveal_hint",
	})

	entries := publishedReplies(t, f)
	if len(entries) != 1 {
		t.Fatalf("len(entries) = %d, want 1", len(entries))
	}
	if !strings.Contains(entries[0].FieldValues["text"], "pet") {
		t.Errorf("text = %q, want the second hint", entries[0].FieldValues["text"])
	}
}

func TestHandleMessage_BlockedUserGetsReplyOnCommandOnly(t *testing.T) {
	f := newDispatchFixture(t, whconfig.AccessConfig{BlockedUserIDs: []string{"u1"}})
	ctx := context.Background()

	// Free text from a blocked user is dropped silently.
	f.svc.HandleMessage(ctx, mqmsg.InboundMessage{ChatID: "chat1", UserID: "u1", Content: "cat"})
	if entries := publishedReplies(t, f); len(entries) != 0 {
		t.Fatalf("entries = %+v, want silence for free text", entries)
	}

	// An explicit command gets the block notice.
	f.svc.HandleMessage(ctx, mqmsg.InboundMessage{ChatID: "chat1", UserID: "u1", Content: "/help"})
	entries := publishedReplies(t, f)
	if len(entries) != 1 {
		t.Fatalf("len(entries) = %d, want 1", len(entries))
	}
	if entries[0].FieldValues["text"] != f.provider.Get(qmessages.ErrorUserBlocked) {
		t.Errorf("text = %q, want block notice", entries[0].FieldValues["text"])
	}
}

func TestHandleMessage_NonAllowlistedChatIsSilent(t *testing.T) {
	f := newDispatchFixture(t, whconfig.AccessConfig{
		Enabled:        true,
		AllowedChatIDs: []string{"chat1"},
	})

	f.svc.HandleMessage(context.Background(), mqmsg.InboundMessage{
		ChatID:  "chat2",
		UserID:  "u1",
		Content: "/help",
	})

	if entries := publishedReplies(t, f); len(entries) != 0 {
		t.Errorf("entries = %+v, want silence outside the allowlist", entries)
	}
}

func TestHandleMessage_UnknownCallbackIgnored(t *testing.T) {
	f := newDispatchFixture(t, whconfig.AccessConfig{})

	f.svc.HandleMessage(context.Background(), mqmsg.InboundMessage{
		ChatID:       "chat1",
		UserID:       "u1",
		CallbackData: "mystery_button",
	})

	if entries := publishedReplies(t, f); len(entries) != 0 {
		t.Errorf("entries = %+v, want none", entries)
	}
}
