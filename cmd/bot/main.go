package main

import (
	"SocialNetwork/internal/api/config"
	"SocialNetwork/internal/bot"
	"SocialNetwork/internal/pkg/logger"
	"context"
	log "log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"
)

func main() {
	logger.InitLogger(config.LogConfig{Level: "info", Format: "text"})

	cfg, err := config.LoadBot("./configs")
	if err != nil {
		log.Error("Fatal error: failed to load bot configuration", "err", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	start := time.Now()
	runner := bot.NewRunner(bot.NewClient(cfg.BaseURL, cfg.Timeout), *cfg, uint64(start.UnixNano()))
	summary, err := runner.Run(ctx)
	log.Info("bot finished",
		"users", summary.Users,
		"posts", summary.Posts,
		"likes", summary.Likes,
		"already_liked", summary.AlreadyLiked,
		"failures", summary.Failures,
		"elapsed", time.Since(start),
	)
	if err != nil {
		log.Error("bot run failed", "err", err)
		os.Exit(1)
	}
}
