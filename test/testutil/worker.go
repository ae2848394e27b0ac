package testutil

import (
	"context"

	workerHandler "github.com/fhuszti/videos-cdn-go/internal/handler/worker"
	"github.com/fhuszti/videos-cdn-go/internal/logger"
	"github.com/fhuszti/videos-cdn-go/internal/port"
	"github.com/fhuszti/videos-cdn-go/internal/task"
	videoSvc "github.com/fhuszti/videos-cdn-go/internal/usecase/video"
	"github.com/hibiken/asynq"
)

// StartPurgeWorker starts an asynq worker processing object purge tasks.
// It returns a function to gracefully shut down the worker.
func StartPurgeWorker(strg port.ObjectStore, redisAddr string) func() {
	purgeSvc := videoSvc.NewUploadPurger(strg)

	mux := asynq.NewServeMux()
	mux.HandleFunc(task.TypePurgeObject, func(ctx context.Context, t *asynq.Task) error {
		p, err := task.ParsePurgeObjectPayload(t)
		if err != nil {
			return err
		}
		return workerHandler.PurgeObjectHandler(ctx, p, purgeSvc)
	})

	srv := asynq.NewServer(asynq.RedisClientOpt{Addr: redisAddr}, asynq.Config{Concurrency: 2})
	go func() {
		if err := srv.Run(mux); err != nil {
			logger.Errorf(context.Background(), "worker stopped: %v", err)
		}
	}()

	return func() {
		srv.Shutdown()
	}
}
