// Package app assembles the word game bot: stores, repository, services,
// the MQ pipeline and the ops HTTP server.
package app

import (
	"context"
	"log/slog"

	"github.com/wordhush/wordhush-bot-go/internal/common/bootstrap"
	whconfig "github.com/wordhush/wordhush-bot-go/internal/wordhush/config"
	whsecurity "github.com/wordhush/wordhush-bot-go/internal/wordhush/security"
)

// Initialize wires the application dependencies and returns the ServerApp
// plus a cleanup releasing them in reverse order.
func Initialize(ctx context.Context, cfg *whconfig.Config, logger *slog.Logger) (*bootstrap.ServerApp, func(), error) {
	msgProvider, err := newWordhushMessageProvider()
	if err != nil {
		return nil, nil, err
	}

	dataValkeyClient, cleanupDataValkey, err := bootstrap.NewAndPingDataValkeyClient(ctx, cfg.Redis, logger)
	if err != nil {
		return nil, nil, err
	}

	stores := newWordhushStores(dataValkeyClient, logger)

	db, cleanupDB, err := bootstrap.OpenDatabase(cfg.Database, logger)
	if err != nil {
		cleanupDataValkey()
		return nil, nil, err
	}

	repo, err := newWordhushRepository(ctx, db)
	if err != nil {
		cleanupDB()
		cleanupDataValkey()
		return nil, nil, err
	}

	accessControl := whsecurity.NewAccessControl(cfg.Access, cfg.Admin, repo)
	gameService := newWordhushGameService(cfg, stores, repo, accessControl, msgProvider, logger)

	httpServer := newWordhushHTTPServer(cfg, newWordhushHTTPMux(logger))

	mqValkeyClient, cleanupMQValkey, err := bootstrap.NewAndPingMQValkeyClient(ctx, cfg.Valkey, logger)
	if err != nil {
		cleanupDB()
		cleanupDataValkey()
		return nil, nil, err
	}

	mqPipeline := newWordhushMQPipeline(cfg, mqValkeyClient, gameService, accessControl, msgProvider, logger)

	serverApp := newWordhushServerApp(logger, httpServer, mqPipeline)

	cleanup := func() {
		cleanupMQValkey()
		cleanupDB()
		cleanupDataValkey()
	}

	return serverApp, cleanup, nil
}
