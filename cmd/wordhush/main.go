package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/wordhush/wordhush-bot-go/internal/common/bootstrap"
	"github.com/wordhush/wordhush-bot-go/internal/common/health"
	whapp "github.com/wordhush/wordhush-bot-go/internal/wordhush/app"
	whconfig "github.com/wordhush/wordhush-bot-go/internal/wordhush/config"
)

// Version is injected at build time via -ldflags="-X main.Version=1.0.0".
var Version = "dev"

func main() {
	health.Init(Version)

	logger := bootstrap.NewLogger()
	slog.SetDefault(logger)

	finalLogger, err := bootstrap.RunBotEntrypoint(
		context.Background(),
		logger,
		"wordhush.log",
		whconfig.LoadFromEnv,
		func(cfg *whconfig.Config) whconfig.LogConfig { return cfg.Log },
		whapp.Initialize,
	)
	if err != nil {
		logger = finalLogger
		logger.Error("fatal", "err", err)
		os.Exit(1)
	}
}
