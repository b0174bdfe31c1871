// cmd/seed/main.go
package main

import (
	"github.com/sirupsen/logrus"

	"github.com/bookreview/bookreview-backend/internal/config"
	"github.com/bookreview/bookreview-backend/internal/database"
	"github.com/bookreview/bookreview-backend/internal/services"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logrus.WithError(err).Fatal("Failed to load configuration")
	}

	db, err := database.Initialize(cfg.Database)
	if err != nil {
		logrus.WithError(err).Fatal("Failed to initialize database")
	}
	defer database.Close(db)

	if err := database.RunMigrations(db); err != nil {
		logrus.WithError(err).Fatal("Failed to run migrations")
	}

	if err := database.SeedSampleData(db); err != nil {
		logrus.WithError(err).Fatal("Failed to seed sample data")
	}

	// Seeded aggregates start at zero; recompute so every book is consistent
	// with its reviews.
	if err := services.NewRatingService(db).RecomputeAll(); err != nil {
		logrus.WithError(err).Fatal("Failed to recompute book ratings")
	}

	logrus.Info("Seeding completed")
}
