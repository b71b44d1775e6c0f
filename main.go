package main

import (
	"context"
	"log"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"

	"binomtest/adapters/postgres"
	"binomtest/internal"
	"binomtest/internal/api"
	"binomtest/internal/config"
)

func main() {
	// Optional .env for local development; the environment wins otherwise.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	logger := internal.NewDefaultLogger()

	history, err := initHistory(cfg, logger)
	if err != nil {
		log.Fatalf("history store: %v", err)
	}

	server := api.NewServer(history, logger, cfg)
	if err := server.Run(cfg.Server.Port); err != nil {
		log.Fatalf("server: %v", err)
	}
}

// initHistory connects the PostgreSQL history when DATABASE_URL is set and
// falls back to the in-memory store otherwise.
func initHistory(cfg *config.Config, logger *internal.Logger) (api.HistoryStore, error) {
	if cfg.Database.URL == "" {
		logger.Info("no DATABASE_URL configured, keeping evaluation history in memory")
		return api.NewMemoryHistory(1000), nil
	}

	db, err := sqlx.Connect("postgres", cfg.Database.URL)
	if err != nil {
		return nil, err
	}

	repo := postgres.NewEvaluationRepository(db)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := repo.Migrate(ctx); err != nil {
		return nil, err
	}

	logger.Info("evaluation history persisted to PostgreSQL")
	return repo, nil
}
