package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/phrazzld/workout-api/internal/api"
	apiMiddleware "github.com/phrazzld/workout-api/internal/api/middleware"
)

// setupRouter creates and configures the application router with all routes
// and middleware.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	// Apply standard middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.TraceMiddleware)

	athleteHandler := api.NewAthleteHandler(app.athleteService, app.logger)
	categoryHandler := api.NewCategoryHandler(app.categoryService, app.logger)
	trainingCenterHandler := api.NewTrainingCenterHandler(app.trainingCenterService, app.logger)

	r.Route("/api", func(r chi.Router) {
		r.Route("/athletes", func(r chi.Router) {
			r.Post("/", athleteHandler.Create)
			r.Get("/", athleteHandler.List)
			r.Get("/{id}", athleteHandler.GetByID)
			r.Patch("/{id}", athleteHandler.Update)
			r.Delete("/{id}", athleteHandler.Delete)
		})

		r.Route("/categories", func(r chi.Router) {
			r.Post("/", categoryHandler.Create)
			r.Get("/", categoryHandler.List)
			r.Get("/{id}", categoryHandler.GetByID)
		})

		r.Route("/training-centers", func(r chi.Router) {
			r.Post("/", trainingCenterHandler.Create)
			r.Get("/", trainingCenterHandler.List)
			r.Get("/{id}", trainingCenterHandler.GetByID)
		})
	})

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			app.logger.Error("failed to write health check response", "error", err)
		}
	})

	return r
}
