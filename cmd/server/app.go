package main

import (
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/phrazzld/workout-api/internal/config"
	"github.com/phrazzld/workout-api/internal/platform/postgres"
	"github.com/phrazzld/workout-api/internal/service"
)

// application holds the wired-together dependencies of the server.
type application struct {
	config *config.Config
	logger *slog.Logger
	db     *sql.DB

	athleteService        service.AthleteService
	categoryService       service.CategoryService
	trainingCenterService service.TrainingCenterService
}

// newApplication creates the stores and services the server needs and wires
// them into an application. Returns an error if any dependency fails to
// initialize.
func newApplication(cfg *config.Config, logger *slog.Logger, db *sql.DB) (*application, error) {
	athleteStore := postgres.NewPostgresAthleteStore(db, logger)
	categoryStore := postgres.NewPostgresCategoryStore(db, logger)
	trainingCenterStore := postgres.NewPostgresTrainingCenterStore(db, logger)

	athleteService, err := service.NewAthleteService(db, athleteStore, categoryStore, trainingCenterStore, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create athlete service: %w", err)
	}

	categoryService, err := service.NewCategoryService(categoryStore, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create category service: %w", err)
	}

	trainingCenterService, err := service.NewTrainingCenterService(trainingCenterStore, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create training center service: %w", err)
	}

	return &application{
		config:                cfg,
		logger:                logger,
		db:                    db,
		athleteService:        athleteService,
		categoryService:       categoryService,
		trainingCenterService: trainingCenterService,
	}, nil
}

// cleanup releases resources held by the application.
func (app *application) cleanup() {
	if app.db != nil {
		if err := app.db.Close(); err != nil {
			app.logger.Error("failed to close database connection", "error", err)
		}
	}
}
