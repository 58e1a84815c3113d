package main

import (
	"context"
	"flag"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/news-api/internal/config"
	"github.com/news-api/internal/database"
	"github.com/news-api/pkg/logger"
)

func main() {
	down := flag.Bool("down", false, "Roll back the last migration instead of seeding")
	flag.Parse()

	envErr := godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		fallback := logger.New(config.LogConfig{})
		fallback.Fatal().Err(err).Msg("Failed to load configuration")
	}

	log := logger.New(cfg.Log)
	if envErr != nil && !os.IsNotExist(envErr) {
		log.Warn().Err(envErr).Msg("Could not load .env file")
	}

	db, err := database.New(&cfg.Database, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to database")
	}
	defer db.Close()

	if *down {
		if err := db.MigrateDown(); err != nil {
			log.Fatal().Err(err).Msg("Failed to roll back migration")
		}
		return
	}

	if err := db.RunMigrations(); err != nil {
		log.Fatal().Err(err).Msg("Failed to run database migrations")
	}

	data, err := database.SampleData()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load sample data")
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	if err := db.HealthCheck(ctx); err != nil {
		log.Fatal().Err(err).Msg("Database is not reachable")
	}

	if err := db.Seed(ctx, data); err != nil {
		log.Fatal().Err(err).Msg("Failed to seed database")
	}

	log.Info().
		Int("topics", len(data.Topics)).
		Int("users", len(data.Users)).
		Int("articles", len(data.Articles)).
		Int("comments", len(data.Comments)).
		Msg("Database seeded")
}
