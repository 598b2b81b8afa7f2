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

// CreateCategoryRequest is the payload for category creation.
type CreateCategoryRequest struct {
	Name string `json:"name" validate:"required,max=10"`
}

// CategoryResponse is the category representation returned by the API.
type CategoryResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func toCategoryResponse(c *domain.Category) CategoryResponse {
	return CategoryResponse{
		ID:   c.ID.String(),
		Name: c.Name,
	}
}

// CategoryHandler handles category-related HTTP requests.
type CategoryHandler struct {
	service service.CategoryService
	logger  *slog.Logger
}

// NewCategoryHandler creates a new CategoryHandler.
func NewCategoryHandler(svc service.CategoryService, log *slog.Logger) *CategoryHandler {
	if log == nil {
		log = slog.Default()
	}
	return &CategoryHandler{
		service: svc,
		logger:  log.With("component", "category_handler"),
	}
}

// Create handles POST /api/categories.
func (h *CategoryHandler) Create(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	var req CreateCategoryRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusUnprocessableEntity, "invalid request body")
		return
	}
	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithFieldErrors(w, r, shared.FieldErrorsFromValidation(err))
		return
	}

	category, err := h.service.Create(r.Context(), req.Name)
	if err != nil {
		status := MapErrorToStatusCode(err)
		shared.RespondWithErrorAndLog(w, r, status, ClientMessage(err, "failed to create category"), err)
		return
	}

	log.Info("category created", "category_id", category.ID)
	shared.RespondWithJSON(w, r, http.StatusCreated, toCategoryResponse(category))
}

// List handles GET /api/categories.
func (h *CategoryHandler) List(w http.ResponseWriter, r *http.Request) {
	limit, offset, err := shared.PaginationParams(r)
	if err != nil {
		shared.RespondWithError(w, r, http.StatusUnprocessableEntity, err.Error())
		return
	}

	categories, err := h.service.List(r.Context())
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError,
			"an internal error occurred", err)
		return
	}

	responses := make([]CategoryResponse, 0, len(categories))
	for _, c := range categories {
		responses = append(responses, toCategoryResponse(c))
	}

	shared.RespondWithJSON(w, r, http.StatusOK, shared.Paginate(responses, limit, offset))
}

// GetByID handles GET /api/categories/{id}.
func (h *CategoryHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		shared.RespondWithError(w, r, http.StatusUnprocessableEntity, err.Error())
		return
	}

	category, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		status := MapErrorToStatusCode(err)
		detail := ClientMessage(err, fmt.Sprintf("category not found with id: %s", id))
		shared.RespondWithErrorAndLog(w, r, status, detail, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, toCategoryResponse(category))
}
