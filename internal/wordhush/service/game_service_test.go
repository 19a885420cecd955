package service

import (
	"context"
	"errors"
	"slices"
	"strings"
	"testing"
	"time"

	wherrors "github.com/wordhush/wordhush-bot-go/internal/wordhush/errors"
	"github.com/wordhush/wordhush-bot-go/internal/wordhush/hints"
	qmessages "github.com/wordhush/wordhush-bot-go/internal/wordhush/messages"
	"github.com/wordhush/wordhush-bot-go/internal/wordhush/model"
	"github.com/wordhush/wordhush-bot-go/internal/wordhush/repository"
	"github.com/wordhush/wordhush-bot-go/internal/wordhush/words"
)

func testHintSet() *hints.WordHints {
	return &hints.WordHints{
		Words:        []string{"testword", "testwords"},
		Hints:        []string{"first", "second", "third", "fourth", "fifth"},
		Sentence:     "A testword in a sentence.",
		ResolvedWord: "testword",
	}
}

func TestStartGame_EmptyLevelShowsPicker(t *testing.T) {
	f := newGameFixture(t, &fakeHintSource{}, &fakeHintSource{})

	replies, err := f.svc.StartGame(context.Background(), inbound("chat1", "u1"), "")
	if err != nil {
		t.Fatalf("start failed: %v", err)
	}
	if len(replies) != 1 {
		t.Fatalf("len(replies) = %d, want 1", len(replies))
	}

	reply := replies[0]
	if reply.Text != f.provider.Get(qmessages.StartChooseDifficulty) {
		t.Errorf("Text = %q, want difficulty prompt", reply.Text)
	}
	if len(reply.Buttons) != 5 {
		t.Fatalf("len(Buttons) = %d, want 5", len(reply.Buttons))
	}
	var data []string
	for _, b := range reply.Buttons {
		data = append(data, b.Data)
	}
	want := []string{"difficulty_easy", "difficulty_medium", "difficulty_hard", "difficulty_extreme", "difficulty_random"}
	if !slices.Equal(data, want) {
		t.Errorf("button data = %v, want %v", data, want)
	}
}

func TestStartGame_InvalidLevel(t *testing.T) {
	f := newGameFixture(t, &fakeHintSource{}, &fakeHintSource{})

	_, err := f.svc.StartGame(context.Background(), inbound("chat1", "u1"), "impossible")
	var invalidErr wherrors.InvalidLevelError
	if !errors.As(err, &invalidErr) {
		t.Fatalf("err = %v, want InvalidLevelError", err)
	}
}

func TestStartGame_AlreadyActive(t *testing.T) {
	f := newGameFixture(t, &fakeHintSource{}, &fakeHintSource{})
	seedSession(t, f, "chat1", fiveHintSession("u1"))

	_, err := f.svc.StartGame(context.Background(), inbound("chat1", "u2"), "easy")
	var activeErr wherrors.GameAlreadyActiveError
	if !errors.As(err, &activeErr) {
		t.Fatalf("err = %v, want GameAlreadyActiveError", err)
	}
}

func TestStartGame_CacheHit(t *testing.T) {
	f := newGameFixture(t, &fakeHintSource{set: testHintSet()}, &fakeHintSource{})
	ctx := context.Background()

	replies, err := f.svc.StartGame(ctx, inbound("chat1", "u1"), "easy")
	if err != nil {
		t.Fatalf("start failed: %v", err)
	}
	if len(replies) != 1 {
		t.Fatalf("len(replies) = %d, want 1", len(replies))
	}

	reply := replies[0]
	if !strings.Contains(reply.Text, "Word Game Started") {
		t.Errorf("Text = %q, want start announcement", reply.Text)
	}
	if !strings.Contains(reply.Text, "first") {
		t.Errorf("Text = %q, want first hint", reply.Text)
	}

	var data []string
	for _, b := range reply.Buttons {
		data = append(data, b.Data)
	}
	if !slices.Equal(data, []string{"reveal_hint", "reveal_letter"}) {
		t.Errorf("button data = %v, want reveal buttons", data)
	}

	session := activeSession(t, f, "chat1")
	if session == nil {
		t.Fatal("expected a saved session")
	}
	if session.CurrentHintIndex != 1 {
		t.Errorf("CurrentHintIndex = %d, want 1", session.CurrentHintIndex)
	}
	if session.StartedBy != "u1" {
		t.Errorf("StartedBy = %q, want u1", session.StartedBy)
	}
	if session.Answer() != "testword" {
		t.Errorf("Answer = %q, want testword", session.Answer())
	}

	// The cache resolved another lemma, so the history holds the resolved
	// word rather than the drawn one.
	members, err := f.history.Members(ctx, "chat1")
	if err != nil {
		t.Fatalf("members failed: %v", err)
	}
	if !slices.Contains(members, "testword") {
		t.Errorf("history %v does not contain resolved word", members)
	}
	easy, err := words.ForLevel(model.LevelEasy)
	if err != nil {
		t.Fatalf("load candidates failed: %v", err)
	}
	for _, member := range members {
		if slices.Contains(easy, member) {
			t.Errorf("history still holds drawn word %q", member)
		}
	}
}

func TestStartGame_CacheHitPrewarmsDrawnWord(t *testing.T) {
	gen := &recordingHintSource{calls: make(chan string, 1)}
	f := newGameFixture(t, &fakeHintSource{set: testHintSet()}, gen)

	if _, err := f.svc.StartGame(context.Background(), inbound("chat1", "u1"), "easy"); err != nil {
		t.Fatalf("start failed: %v", err)
	}

	// The cache answered with another lemma, so the drawn word still has no
	// hint set of its own. A background authoring pass must cover it.
	select {
	case word := <-gen.calls:
		if word == "testword" {
			t.Errorf("authored %q, want the drawn word", word)
		}
		easy, err := words.ForLevel(model.LevelEasy)
		if err != nil {
			t.Fatalf("load candidates failed: %v", err)
		}
		if !slices.Contains(easy, word) {
			t.Errorf("authored %q, want an easy catalog word", word)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("no background authoring after a cache-served start")
	}
}

func TestStartGame_GeneratorFallback(t *testing.T) {
	f := newGameFixture(t, &fakeHintSource{}, &fakeHintSource{set: testHintSet()})

	replies, err := f.svc.StartGame(context.Background(), inbound("chat1", "u1"), "medium")
	if err != nil {
		t.Fatalf("start failed: %v", err)
	}
	if len(replies) != 1 {
		t.Fatalf("len(replies) = %d, want 1", len(replies))
	}

	session := activeSession(t, f, "chat1")
	if session == nil {
		t.Fatal("expected a saved session")
	}
	if session.Level != model.LevelMedium {
		t.Errorf("Level = %q, want medium", session.Level)
	}
}

func TestStartGame_NoHintsAnywhere(t *testing.T) {
	f := newGameFixture(t, &fakeHintSource{}, &fakeHintSource{})

	_, err := f.svc.StartGame(context.Background(), inbound("chat1", "u1"), "easy")
	var genErr wherrors.HintGenerationError
	if !errors.As(err, &genErr) {
		t.Fatalf("err = %v, want HintGenerationError", err)
	}
	if session := activeSession(t, f, "chat1"); session != nil {
		t.Error("no session should be saved on hint failure")
	}
}

func TestStartGame_TopicRestricted(t *testing.T) {
	f := newGameFixture(t, &fakeHintSource{set: testHintSet()}, &fakeHintSource{})
	ctx := context.Background()

	if err := f.db.Create(&repository.ChatGameTopic{ChatID: "chat1", TopicID: "42"}).Error; err != nil {
		t.Fatalf("seed topic failed: %v", err)
	}

	_, err := f.svc.StartGame(ctx, inbound("chat1", "u1"), "easy")
	var topicErr wherrors.TopicNotAllowedError
	if !errors.As(err, &topicErr) {
		t.Fatalf("err = %v, want TopicNotAllowedError", err)
	}

	topic := "42"
	msg := inbound("chat1", "u1")
	msg.ThreadID = &topic
	if _, err := f.svc.StartGame(ctx, msg, "easy"); err != nil {
		t.Fatalf("start in designated topic failed: %v", err)
	}
}

var _ hints.Source = (*fakeHintSource)(nil)
