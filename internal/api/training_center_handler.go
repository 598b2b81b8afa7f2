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

// CreateTrainingCenterRequest is the payload for training center creation.
type CreateTrainingCenterRequest struct {
	Name    string `json:"name" validate:"required,max=20"`
	Address string `json:"address" validate:"required,max=60"`
	Owner   string `json:"owner" validate:"required,max=30"`
}

// TrainingCenterResponse is the training center representation returned by
// the API.
type TrainingCenterResponse struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Address string `json:"address"`
	Owner   string `json:"owner"`
}

func toTrainingCenterResponse(tc *domain.TrainingCenter) TrainingCenterResponse {
	return TrainingCenterResponse{
		ID:      tc.ID.String(),
		Name:    tc.Name,
		Address: tc.Address,
		Owner:   tc.Owner,
	}
}

// TrainingCenterHandler handles training-center-related HTTP requests.
type TrainingCenterHandler struct {
	service service.TrainingCenterService
	logger  *slog.Logger
}

// NewTrainingCenterHandler creates a new TrainingCenterHandler.
func NewTrainingCenterHandler(svc service.TrainingCenterService, log *slog.Logger) *TrainingCenterHandler {
	if log == nil {
		log = slog.Default()
	}
	return &TrainingCenterHandler{
		service: svc,
		logger:  log.With("component", "training_center_handler"),
	}
}

// Create handles POST /api/training-centers.
func (h *TrainingCenterHandler) Create(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	var req CreateTrainingCenterRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusUnprocessableEntity, "invalid request body")
		return
	}
	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithFieldErrors(w, r, shared.FieldErrorsFromValidation(err))
		return
	}

	center, err := h.service.Create(r.Context(), service.CreateTrainingCenterParams{
		Name:    req.Name,
		Address: req.Address,
		Owner:   req.Owner,
	})
	if err != nil {
		status := MapErrorToStatusCode(err)
		shared.RespondWithErrorAndLog(w, r, status, ClientMessage(err, "failed to create training center"), err)
		return
	}

	log.Info("training center created", "training_center_id", center.ID)
	shared.RespondWithJSON(w, r, http.StatusCreated, toTrainingCenterResponse(center))
}

// List handles GET /api/training-centers.
func (h *TrainingCenterHandler) List(w http.ResponseWriter, r *http.Request) {
	limit, offset, err := shared.PaginationParams(r)
	if err != nil {
		shared.RespondWithError(w, r, http.StatusUnprocessableEntity, err.Error())
		return
	}

	centers, err := h.service.List(r.Context())
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError,
			"an internal error occurred", err)
		return
	}

	responses := make([]TrainingCenterResponse, 0, len(centers))
	for _, tc := range centers {
		responses = append(responses, toTrainingCenterResponse(tc))
	}

	shared.RespondWithJSON(w, r, http.StatusOK, shared.Paginate(responses, limit, offset))
}

// GetByID handles GET /api/training-centers/{id}.
func (h *TrainingCenterHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		shared.RespondWithError(w, r, http.StatusUnprocessableEntity, err.Error())
		return
	}

	center, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		status := MapErrorToStatusCode(err)
		detail := ClientMessage(err, fmt.Sprintf("training center not found with id: %s", id))
		shared.RespondWithErrorAndLog(w, r, status, detail, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, toTrainingCenterResponse(center))
}
