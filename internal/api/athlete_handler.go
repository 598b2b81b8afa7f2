package api

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/phrazzld/workout-api/internal/api/shared"
	"github.com/phrazzld/workout-api/internal/domain"
	"github.com/phrazzld/workout-api/internal/platform/logger"
	"github.com/phrazzld/workout-api/internal/service"
)

// createdAtFormat renders timestamps as naive UTC, microsecond precision.
const createdAtFormat = "2006-01-02T15:04:05.000000"

// EntityRef references an existing entity by name.
type EntityRef struct {
	Name string `json:"name" validate:"required"`
}

// CreateAthleteRequest is the payload for athlete creation. The category
// and training center are referenced by name and must already exist.
type CreateAthleteRequest struct {
	Name           string    `json:"name" validate:"required,max=50"`
	CPF            string    `json:"cpf" validate:"required,len=11,numeric"`
	Age            int       `json:"age" validate:"required,gt=0"`
	Weight         float64   `json:"weight" validate:"required,gt=0"`
	Height         float64   `json:"height" validate:"required,gt=0"`
	Sex            string    `json:"sex" validate:"required,oneof=M F"`
	Category       EntityRef `json:"category"`
	TrainingCenter EntityRef `json:"training_center"`
}

// UpdateAthleteRequest is the payload for a partial athlete update.
// Absent fields keep their stored values; the referenced category and
// training center cannot be changed. Supplied fields are fully validated,
// so a present-but-zero value (empty name, zero age) is rejected rather
// than skipped.
type UpdateAthleteRequest struct {
	Name   *string  `json:"name" validate:"omitnil,min=1,max=50"`
	CPF    *string  `json:"cpf" validate:"omitnil,len=11,numeric"`
	Age    *int     `json:"age" validate:"omitnil,gt=0"`
	Weight *float64 `json:"weight" validate:"omitnil,gt=0"`
	Height *float64 `json:"height" validate:"omitnil,gt=0"`
	Sex    *string  `json:"sex" validate:"omitnil,oneof=M F"`
}

// AthleteResponse is the athlete representation returned by the API.
type AthleteResponse struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	CPF            string    `json:"cpf"`
	Age            int       `json:"age"`
	Weight         float64   `json:"weight"`
	Height         float64   `json:"height"`
	Sex            string    `json:"sex"`
	Category       EntityRef `json:"category"`
	TrainingCenter EntityRef `json:"training_center"`
	CreatedAt      string    `json:"created_at"`
}

func toAthleteResponse(a *domain.Athlete) AthleteResponse {
	return AthleteResponse{
		ID:             a.ID.String(),
		Name:           a.Name,
		CPF:            a.CPF,
		Age:            a.Age,
		Weight:         a.Weight,
		Height:         a.Height,
		Sex:            a.Sex,
		Category:       EntityRef{Name: a.CategoryName},
		TrainingCenter: EntityRef{Name: a.TrainingCenterName},
		CreatedAt:      a.CreatedAt.UTC().Format(createdAtFormat),
	}
}

// AthleteHandler handles athlete-related HTTP requests.
type AthleteHandler struct {
	service service.AthleteService
	logger  *slog.Logger
}

// NewAthleteHandler creates a new AthleteHandler.
func NewAthleteHandler(svc service.AthleteService, log *slog.Logger) *AthleteHandler {
	if log == nil {
		log = slog.Default()
	}
	return &AthleteHandler{
		service: svc,
		logger:  log.With("component", "athlete_handler"),
	}
}

// Create handles POST /api/athletes.
func (h *AthleteHandler) Create(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	var req CreateAthleteRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusUnprocessableEntity, "invalid request body")
		return
	}
	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithFieldErrors(w, r, shared.FieldErrorsFromValidation(err))
		return
	}

	athlete, err := h.service.Create(r.Context(), service.CreateAthleteParams{
		Name:               req.Name,
		CPF:                req.CPF,
		Age:                req.Age,
		Weight:             req.Weight,
		Height:             req.Height,
		Sex:                req.Sex,
		CategoryName:       req.Category.Name,
		TrainingCenterName: req.TrainingCenter.Name,
	})
	if err != nil {
		status := MapErrorToStatusCode(err)
		shared.RespondWithErrorAndLog(w, r, status, ClientMessage(err, "failed to create athlete"), err)
		return
	}

	log.Info("athlete created", "athlete_id", athlete.ID)
	shared.RespondWithJSON(w, r, http.StatusCreated, toAthleteResponse(athlete))
}

// List handles GET /api/athletes.
func (h *AthleteHandler) List(w http.ResponseWriter, r *http.Request) {
	limit, offset, err := shared.PaginationParams(r)
	if err != nil {
		shared.RespondWithError(w, r, http.StatusUnprocessableEntity, err.Error())
		return
	}

	athletes, err := h.service.List(r.Context())
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError,
			"an internal error occurred", err)
		return
	}

	responses := make([]AthleteResponse, 0, len(athletes))
	for _, a := range athletes {
		responses = append(responses, toAthleteResponse(a))
	}

	shared.RespondWithJSON(w, r, http.StatusOK, shared.Paginate(responses, limit, offset))
}

// GetByID handles GET /api/athletes/{id}.
func (h *AthleteHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		shared.RespondWithError(w, r, http.StatusUnprocessableEntity, err.Error())
		return
	}

	athlete, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		status := MapErrorToStatusCode(err)
		detail := ClientMessage(err, fmt.Sprintf("athlete not found with id: %s", id))
		shared.RespondWithErrorAndLog(w, r, status, detail, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, toAthleteResponse(athlete))
}

// Update handles PATCH /api/athletes/{id}.
func (h *AthleteHandler) Update(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	id, err := pathUUID(r, "id")
	if err != nil {
		shared.RespondWithError(w, r, http.StatusUnprocessableEntity, err.Error())
		return
	}

	var req UpdateAthleteRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusUnprocessableEntity, "invalid request body")
		return
	}
	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithFieldErrors(w, r, shared.FieldErrorsFromValidation(err))
		return
	}

	athlete, err := h.service.Update(r.Context(), id, service.UpdateAthleteParams{
		Name:   req.Name,
		CPF:    req.CPF,
		Age:    req.Age,
		Weight: req.Weight,
		Height: req.Height,
		Sex:    req.Sex,
	})
	if err != nil {
		status := MapErrorToStatusCode(err)
		detail := ClientMessage(err, fmt.Sprintf("athlete not found with id: %s", id))
		shared.RespondWithErrorAndLog(w, r, status, detail, err)
		return
	}

	log.Info("athlete updated", "athlete_id", id)
	shared.RespondWithJSON(w, r, http.StatusOK, toAthleteResponse(athlete))
}

// Delete handles DELETE /api/athletes/{id}.
func (h *AthleteHandler) Delete(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	id, err := pathUUID(r, "id")
	if err != nil {
		shared.RespondWithError(w, r, http.StatusUnprocessableEntity, err.Error())
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		status := MapErrorToStatusCode(err)
		detail := ClientMessage(err, fmt.Sprintf("athlete not found with id: %s", id))
		shared.RespondWithErrorAndLog(w, r, status, detail, err)
		return
	}

	log.Info("athlete deleted", "athlete_id", id)
	w.WriteHeader(http.StatusNoContent)
}
