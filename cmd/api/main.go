package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/fhuszti/videos-cdn-go/internal/config"
	"github.com/fhuszti/videos-cdn-go/internal/db"
	"github.com/fhuszti/videos-cdn-go/internal/flags"
	"github.com/fhuszti/videos-cdn-go/internal/handler/api"
	"github.com/fhuszti/videos-cdn-go/internal/logger"
	cMiddleware "github.com/fhuszti/videos-cdn-go/internal/middleware"
	"github.com/fhuszti/videos-cdn-go/internal/port"
	"github.com/fhuszti/videos-cdn-go/internal/renderer"
	"github.com/fhuszti/videos-cdn-go/internal/repository/mariadb"
	"github.com/fhuszti/videos-cdn-go/internal/storage"
	"github.com/fhuszti/videos-cdn-go/internal/task"
	videoSvc "github.com/fhuszti/videos-cdn-go/internal/usecase/video"
	"github.com/fhuszti/videos-cdn-go/internal/uuid"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/cors"
)

func main() {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		logger.Errorf(ctx, "❌  Configuration error: %v", err)
		os.Exit(1)
	}

	logger.Init()

	database := initDb(ctx, cfg)

	r := initRouter(ctx, cfg)

	strg := initStorage(ctx, cfg)
	strategy := videoSvc.StrategyFromSettings(cfg)

	videoRepo := mariadb.NewVideoRepository(database.DB)
	courseRepo := mariadb.NewCourseRepository(database.DB)
	prefsRepo := mariadb.NewTranscriptPreferencesRepository(database.DB)

	flagDefaults := map[string]bool{port.FlagVideoTranscript: cfg.TranscriptFlagDefault}
	var ff port.FeatureFlags
	var dispatcher port.TaskDispatcher
	if cfg.RedisAddr != "" {
		ff = flags.NewRedisFlags(cfg.RedisAddr, cfg.RedisPassword, flagDefaults)
		dispatcher = task.NewDispatcher(cfg.RedisAddr, cfg.RedisPassword)
		logger.Info(ctx, "✅  Redis feature flags and purge queue enabled")
	} else {
		ff = flags.NewStatic(flagDefaults)
		dispatcher = task.NewNoopDispatcher()
		logger.Warn(ctx, "⚠️  Redis not configured, per-course flags and object purges are disabled")
	}

	uploadLinkGeneratorSvc := videoSvc.NewUploadLinkGenerator(
		strg,
		videoSvc.NewMetadataComposer(ff, prefsRepo),
		videoSvc.NewRegistrar(videoRepo, strategy),
		uuid.NewUUID,
		strategy,
	)
	videoListerSvc := videoSvc.NewVideoLister(videoRepo)
	videoRemoverSvc := videoSvc.NewVideoRemover(videoRepo, dispatcher, strategy)
	postProcessorSvc := videoSvc.NewVideoPostProcessor(videoRepo, strategy)

	r.Route("/courses/{courseKey}/videos", func(r chi.Router) {
		r.With(cMiddleware.WithCourseOrBadRequest(courseRepo)).
			Post("/upload_link", api.GenerateUploadLinksHandler(uploadLinkGeneratorSvc))

		r.Group(func(r chi.Router) {
			r.Use(cMiddleware.WithCourse(courseRepo))

			r.Get("/", api.ListVideosHandler(renderer.NewHTTPRenderer(), videoListerSvc))
			r.Post("/", api.GenerateUploadLinksHandler(uploadLinkGeneratorSvc))
			r.With(cMiddleware.WithVideoID()).
				Delete("/{id}", api.DeleteVideoHandler(videoRemoverSvc))
		})
	})
	r.Post("/videos/editor_saved", api.EditorSavedHandler(postProcessorSvc))

	listenRouter(ctx, r, cfg, database)
}

func initDb(ctx context.Context, cfg *config.Settings) *db.Database {
	logger.Info(ctx, "initialising database...")

	database, err := db.Open(db.MariaDbConfig{
		DSN:             cfg.MariaDBDSN,
		MaxOpenConns:    cfg.MaxOpenConns,
		MaxIdleConns:    cfg.MaxIdleConns,
		ConnMaxLifetime: cfg.ConnMaxLifetime,
	})
	if err != nil {
		logger.Errorf(ctx, "❌  Failed to connect to db: %v", err)
		os.Exit(1)
	}

	return database
}

func initRouter(ctx context.Context, cfg *config.Settings) *chi.Mux {
	logger.Info(ctx, "initialising router...")

	r := chi.NewRouter()

	r.Use(middleware.Logger)
	if len(cfg.CORSAllowedOrigins) > 0 {
		r.Use(cors.New(cors.Options{
			AllowedOrigins:   cfg.CORSAllowedOrigins,
			AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodDelete},
			AllowedHeaders:   []string{"Authorization", "Content-Type"},
			AllowCredentials: true,
		}).Handler)
	}
	r.Use(cMiddleware.WithDSTAuth(cfg.JWTPublicKey))

	r.NotFound(api.NotFoundHandler())
	r.MethodNotAllowed(api.MethodNotAllowedHandler())

	return r
}

func initStorage(ctx context.Context, cfg *config.Settings) port.ObjectStore {
	strg, err := storage.FromSettings(ctx, cfg)
	if err != nil {
		logger.Errorf(ctx, "❌  Failed to initialize object storage: %v", err)
		os.Exit(1)
	}
	return strg
}

func listenRouter(ctx context.Context, r *chi.Mux, cfg *config.Settings, database *db.Database) {
	srv := &http.Server{Addr: ":" + strconv.Itoa(cfg.ServerPort), Handler: r}

	// start serving
	go func() {
		logger.Infof(ctx, "🚀 API listening on %s", srv.Addr)
		if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			logger.Errorf(ctx, "❌  Listen error: %v", err)
			os.Exit(1)
		}
	}()

	// block until we get SIGINT/SIGTERM
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info(ctx, "🛑 Shutdown signal received, exiting…")

	// graceful shutdown with timeout
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Errorf(ctx, "❌  Server shutdown failed: %v", err)
		os.Exit(1)
	}
	logger.Info(ctx, "✅  Server gracefully stopped")

	if err := database.Close(); err != nil {
		logger.Errorf(ctx, "DB close error: %v", err)
		os.Exit(1)
	}
}
