package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/fhuszti/videos-cdn-go/internal/config"
	workerHandler "github.com/fhuszti/videos-cdn-go/internal/handler/worker"
	"github.com/fhuszti/videos-cdn-go/internal/logger"
	"github.com/fhuszti/videos-cdn-go/internal/storage"
	"github.com/fhuszti/videos-cdn-go/internal/task"
	videoSvc "github.com/fhuszti/videos-cdn-go/internal/usecase/video"
	"github.com/hibiken/asynq"
)

func main() {
	ctx := context.Background()

	cfg, err := config.LoadWorker()
	if err != nil {
		logger.Errorf(ctx, "❌  Configuration error: %v", err)
		os.Exit(1)
	}

	logger.Init()

	strg, err := storage.FromSettings(ctx, cfg)
	if err != nil {
		logger.Errorf(ctx, "❌  Failed to initialize object storage: %v", err)
		os.Exit(1)
	}
	purgeSvc := videoSvc.NewUploadPurger(strg)

	mux := asynq.NewServeMux()
	mux.HandleFunc(task.TypePurgeObject, func(ctx context.Context, t *asynq.Task) error {
		p, err := task.ParsePurgeObjectPayload(t)
		if err != nil {
			return err
		}
		return workerHandler.PurgeObjectHandler(ctx, p, purgeSvc)
	})

	runWorker(ctx, mux, cfg)
}

func runWorker(ctx context.Context, mux *asynq.ServeMux, cfg *config.Settings) {
	srv := asynq.NewServer(asynq.RedisClientOpt{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
	}, asynq.Config{Concurrency: 10})

	// Run server in background
	go func() {
		if err := srv.Run(mux); err != nil {
			logger.Errorf(context.Background(), "❌  Worker failed: %v", err)
			os.Exit(1)
		}
	}()
	logger.Info(ctx, "🚀 Worker started")

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	<-sigCh
	logger.Info(ctx, "🛑 Shutdown signal received, exiting…")

	done := make(chan struct{})
	go func() {
		srv.Shutdown() // stop accepting new tasks, finish in-flight
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(30 * time.Second):
		logger.Warn(ctx, "⚠️  Worker shutdown timed out")
	}
	logger.Info(ctx, "✅  Worker gracefully stopped")
}
