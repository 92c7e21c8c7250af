package main

import (
	"context"
	"log"
	"os"

	"go.uber.org/zap"

	"github.com/kawaf/petcafe-service/internal/auth"
	"github.com/kawaf/petcafe-service/internal/config"
	"github.com/kawaf/petcafe-service/internal/observability"
	"github.com/kawaf/petcafe-service/internal/persistence"
)

const adminEmail = "admin@kawaf.fr"

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logger)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	adminPassword := os.Getenv("ADMIN_PASSWORD")
	if adminPassword == "" {
		logger.Fatal("ADMIN_PASSWORD must be set")
	}

	ctx := context.Background()

	pg, err := persistence.NewPostgres(ctx, cfg.Postgres, logger)
	if err != nil {
		logger.Fatal("failed to connect postgres", zap.Error(err))
	}
	defer pg.Close()

	if err := persistence.RunMigrations(ctx, pg.PoolHandle(), logger); err != nil {
		logger.Fatal("failed to run migrations", zap.Error(err))
	}

	hash, err := auth.HashPassword(adminPassword, cfg.Auth.BcryptCost)
	if err != nil {
		logger.Fatal("failed to hash admin password", zap.Error(err))
	}

	// Upsert so reruns rotate the password instead of failing.
	const query = `
        INSERT INTO users (email, name, password_hash, role)
        VALUES ($1, $2, $3, 'ADMIN')
        ON CONFLICT (email)
        DO UPDATE SET password_hash = EXCLUDED.password_hash, updated_at = NOW()
        RETURNING id`

	var id int64
	if err := pg.PoolHandle().QueryRow(ctx, query, adminEmail, "Admin", hash).Scan(&id); err != nil {
		logger.Fatal("failed to seed admin user", zap.Error(err))
	}

	logger.Info("admin user seeded",
		zap.Int64("id", id),
		zap.String("email", adminEmail),
	)
}
