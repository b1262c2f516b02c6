package main

import (
	"context"
	"log"
	"net/http"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/hamed0406/linkwatch/internal/config"
	"github.com/hamed0406/linkwatch/internal/httpapi"
	"github.com/hamed0406/linkwatch/internal/logging"
	"github.com/hamed0406/linkwatch/internal/notify"
	"github.com/hamed0406/linkwatch/internal/probe"
	"github.com/hamed0406/linkwatch/internal/scheduler"
)

// buildAccessToken is a build-time fallback for ACCESS_TOKEN, injected with
//
//	go build -ldflags "-X main.buildAccessToken=$(openssl rand -hex 16)"
//
// so an image built without explicit secrets still has admin endpoints
// gated behind a random value rather than left open.
var buildAccessToken string

func main() {
	cfg := config.FromEnv()
	if cfg.AccessToken == "" {
		cfg.AccessToken = buildAccessToken
	}

	logger, err := logging.NewLogger(cfg.LogDir)
	if err != nil {
		log.Fatal(err)
	}
	defer logger.Sync()

	resources, err := config.LoadResources(cfg.ResourcesFile)
	if err != nil {
		logger.Fatal("load_resources", zap.Error(err))
	}
	logger.Info("resources_loaded",
		zap.String("file", cfg.ResourcesFile),
		zap.Int("count", len(resources)),
	)

	checker := probe.NewChecker(cfg.CheckTimeout, logger)
	notifier := notify.NewRouter(cfg.WebhookURL, cfg.WebhookService, logger)
	cycle := scheduler.NewCycle(logger, resources, checker, notifier, cfg.MaxConcurrent, cfg.CheckTimeout)
	runner := scheduler.NewRunner(logger, cycle, cfg.CheckInterval)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go runner.Run(ctx)

	api := httpapi.NewServer(logger, resources, cycle, notifier, cfg.AccessToken)
	logger.Info("api_listen", zap.String("addr", cfg.Addr))
	if err := http.ListenAndServe(cfg.Addr, api.Router(cfg.RatePerMin, cfg.RateBurst)); err != nil {
		log.Fatal(err)
	}
}
