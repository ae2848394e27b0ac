package main

import (
	"context"
	"os"

	"github.com/fhuszti/videos-cdn-go/internal/config"
	"github.com/fhuszti/videos-cdn-go/internal/db"
	"github.com/fhuszti/videos-cdn-go/internal/logger"
	"github.com/fhuszti/videos-cdn-go/internal/migration"
)

func main() {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		logger.Errorf(ctx, "❌  Configuration error: %v", err)
		os.Exit(1)
	}

	database, err := db.OpenForMigrations(db.MariaDbConfig{
		DSN:             cfg.MariaDBDSN,
		MaxOpenConns:    cfg.MaxOpenConns,
		MaxIdleConns:    cfg.MaxIdleConns,
		ConnMaxLifetime: cfg.ConnMaxLifetime,
	})
	if err != nil {
		logger.Errorf(ctx, "❌  Failed to connect to db: %v", err)
		os.Exit(1)
	}
	defer func() {
		if err := database.Close(); err != nil {
			logger.Warnf(ctx, "DB close error: %v", err)
		}
	}()

	if err := migration.MigrateUp(database.DB); err != nil {
		logger.Errorf(ctx, "❌  Migration up failed: %v", err)
		os.Exit(1)
	}

	versions, err := migration.Versions()
	if err == nil && len(versions) > 0 {
		logger.Infof(ctx, "✅  Migrations applied successfully (latest version %d)", versions[len(versions)-1])
		return
	}
	logger.Info(ctx, "✅  Migrations applied successfully")
}
