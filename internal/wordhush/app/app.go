package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	json "github.com/goccy/go-json"
	"github.com/valkey-io/valkey-go"
	"gorm.io/gorm"

	"github.com/wordhush/wordhush-bot-go/internal/common/bootstrap"
	"github.com/wordhush/wordhush-bot-go/internal/common/health"
	"github.com/wordhush/wordhush-bot-go/internal/common/httpserver"
	"github.com/wordhush/wordhush-bot-go/internal/common/messageprovider"
	commonmq "github.com/wordhush/wordhush-bot-go/internal/common/mq"
	"github.com/wordhush/wordhush-bot-go/internal/common/sequencer"
	whassets "github.com/wordhush/wordhush-bot-go/internal/wordhush/assets"
	whconfig "github.com/wordhush/wordhush-bot-go/internal/wordhush/config"
	"github.com/wordhush/wordhush-bot-go/internal/wordhush/hints"
	whmq "github.com/wordhush/wordhush-bot-go/internal/wordhush/mq"
	whredis "github.com/wordhush/wordhush-bot-go/internal/wordhush/redis"
	whrepo "github.com/wordhush/wordhush-bot-go/internal/wordhush/repository"
	whsecurity "github.com/wordhush/wordhush-bot-go/internal/wordhush/security"
	whsvc "github.com/wordhush/wordhush-bot-go/internal/wordhush/service"
)

type wordhushStores struct {
	sessionStore    *whredis.SessionStore
	historyStore    *whredis.WordHistoryStore
	voteStore       *whredis.VoteStore
	latestMsgStore  *whredis.LatestMessageStore
	hintRateLimiter *whredis.HintRateLimiter
}

func newWordhushStores(client valkey.Client, logger *slog.Logger) *wordhushStores {
	return &wordhushStores{
		sessionStore:    whredis.NewSessionStore(client, logger),
		historyStore:    whredis.NewWordHistoryStore(client, logger),
		voteStore:       whredis.NewVoteStore(client),
		latestMsgStore:  whredis.NewLatestMessageStore(client),
		hintRateLimiter: whredis.NewHintRateLimiter(client, logger),
	}
}

func newWordhushMessageProvider() (*messageprovider.Provider, error) {
	provider, err := messageprovider.NewFromYAML(whassets.GameMessagesYAML)
	if err != nil {
		return nil, fmt.Errorf("load messages failed: %w", err)
	}
	return provider, nil
}

func newWordhushRepository(ctx context.Context, db *gorm.DB) (*whrepo.Repository, error) {
	repo := whrepo.New(db)
	if err := repo.AutoMigrate(ctx); err != nil {
		return nil, fmt.Errorf("auto migrate failed: %w", err)
	}
	return repo, nil
}

func newWordhushGameService(
	cfg *whconfig.Config,
	stores *wordhushStores,
	repo *whrepo.Repository,
	accessControl *whsecurity.AccessControl,
	msgProvider *messageprovider.Provider,
	logger *slog.Logger,
) *whsvc.GameService {
	selector := whsvc.NewWordSelector(stores.historyStore, logger)
	hintCache := hints.NewCachedSource(repo, logger)
	hintGen := hints.NewGeminiGenerator(cfg.Gemini, repo, logger)

	return whsvc.NewGameService(
		stores.sessionStore,
		stores.historyStore,
		stores.voteStore,
		stores.latestMsgStore,
		stores.hintRateLimiter,
		selector,
		repo,
		hintCache,
		hintGen,
		accessControl,
		msgProvider,
		cfg.Commands.Prefix,
		logger,
	)
}

func newWordhushReplyPublisher(cfg *whconfig.Config, mqClient valkey.Client, logger *slog.Logger) *commonmq.ReplyPublisher {
	publisher := commonmq.NewStreamPublisher(mqClient, logger, commonmq.StreamPublisherConfig{
		Stream: cfg.Valkey.ReplyStreamKey,
		MaxLen: cfg.Valkey.StreamMaxLen,
	})
	return commonmq.NewReplyPublisher(publisher)
}

func newWordhushStreamConsumer(cfg *whconfig.Config, mqClient valkey.Client, logger *slog.Logger) *commonmq.StreamConsumer {
	return commonmq.NewStreamConsumer(mqClient, logger, commonmq.StreamConsumerConfig{
		Stream:              cfg.Valkey.StreamKey,
		Group:               cfg.Valkey.ConsumerGroup,
		Name:                cfg.Valkey.ConsumerName,
		BatchSize:           cfg.Valkey.BatchSize,
		Block:               cfg.Valkey.BlockTimeout,
		Concurrency:         cfg.Valkey.Concurrency,
		ResetGroupOnStartup: cfg.Valkey.ResetConsumerGroupOnStartup,
	})
}

type wordhushMQPipeline struct {
	streamConsumer *commonmq.StreamConsumer
	streamHandler  *commonmq.StreamMessageHandler
}

func newWordhushMQPipeline(
	cfg *whconfig.Config,
	mqClient valkey.Client,
	gameService *whsvc.GameService,
	accessControl *whsecurity.AccessControl,
	msgProvider *messageprovider.Provider,
	logger *slog.Logger,
) *wordhushMQPipeline {
	replyPublisher := newWordhushReplyPublisher(cfg, mqClient, logger)
	commandParser := whmq.NewCommandParser(cfg.Commands.Prefix)

	gameMessageService := whmq.NewGameMessageService(
		gameService,
		commandParser,
		replyPublisher,
		sequencer.New(),
		accessControl,
		msgProvider,
		cfg.Commands.Prefix,
		logger,
	)

	return &wordhushMQPipeline{
		streamConsumer: newWordhushStreamConsumer(cfg, mqClient, logger),
		streamHandler:  commonmq.NewStreamMessageHandler(gameMessageService, logger),
	}
}

func newWordhushHTTPMux(logger *slog.Logger) *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(health.Get()); err != nil {
			logger.Warn("health_encode_failed", "err", err)
		}
	})
	return mux
}

func newWordhushHTTPServer(cfg *whconfig.Config, mux *http.ServeMux) *http.Server {
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	return httpserver.NewServer(addr, mux, httpserver.ServerOptions{
		UseH2C:            true,
		ReadHeaderTimeout: cfg.ServerTuning.ReadHeaderTimeout,
		IdleTimeout:       cfg.ServerTuning.IdleTimeout,
		MaxHeaderBytes:    cfg.ServerTuning.MaxHeaderBytes,
	})
}

func newWordhushServerApp(
	logger *slog.Logger,
	server *http.Server,
	mqPipeline *wordhushMQPipeline,
) *bootstrap.ServerApp {
	return bootstrap.NewServerApp(
		"wordhush",
		logger,
		server,
		10*time.Second,
		bootstrap.BackgroundTask{
			Name:        "mq_consumer",
			ErrorLogKey: "mq_consumer_failed",
			Run: func(ctx context.Context) error {
				return mqPipeline.streamConsumer.Run(ctx, mqPipeline.streamHandler.HandleStreamMessage)
			},
		},
	)
}
