package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phrazzld/workout-api/internal/api/shared"
	"github.com/phrazzld/workout-api/internal/domain"
	"github.com/phrazzld/workout-api/internal/service"
)

func newTrainingCenterRouter(svc service.TrainingCenterService) http.Handler {
	h := NewTrainingCenterHandler(svc, testLogger())
	r := chi.NewRouter()
	r.Route("/api/training-centers", func(r chi.Router) {
		r.Post("/", h.Create)
		r.Get("/", h.List)
		r.Get("/{id}", h.GetByID)
	})
	return r
}

func TestTrainingCenterHandler_Create(t *testing.T) {
	t.Parallel()

	t.Run("success returns 201", func(t *testing.T) {
		t.Parallel()

		center, err := domain.NewTrainingCenter("CT King", "Main street 42", "Marcos")
		require.NoError(t, err)

		svc := &mockTrainingCenterService{
			createFn: func(_ context.Context, params service.CreateTrainingCenterParams) (*domain.TrainingCenter, error) {
				assert.Equal(t, "CT King", params.Name)
				assert.Equal(t, "Main street 42", params.Address)
				assert.Equal(t, "Marcos", params.Owner)
				return center, nil
			},
		}

		body := []byte(`{"name": "CT King", "address": "Main street 42", "owner": "Marcos"}`)
		req := httptest.NewRequest(http.MethodPost, "/api/training-centers", bytes.NewReader(body))
		rr := httptest.NewRecorder()
		newTrainingCenterRouter(svc).ServeHTTP(rr, req)

		require.Equal(t, http.StatusCreated, rr.Code)

		var resp TrainingCenterResponse
		require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
		assert.Equal(t, center.ID.String(), resp.ID)
		assert.Equal(t, "CT King", resp.Name)
		assert.Equal(t, "Main street 42", resp.Address)
		assert.Equal(t, "Marcos", resp.Owner)
	})

	t.Run("missing owner returns 422", func(t *testing.T) {
		t.Parallel()

		svc := &mockTrainingCenterService{}
		body := []byte(`{"name": "CT King", "address": "Main street 42"}`)
		req := httptest.NewRequest(http.MethodPost, "/api/training-centers", bytes.NewReader(body))
		rr := httptest.NewRecorder()
		newTrainingCenterRouter(svc).ServeHTTP(rr, req)

		require.Equal(t, http.StatusUnprocessableEntity, rr.Code)

		var resp shared.ErrorResponse
		require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
		require.NotEmpty(t, resp.Errors)
		assert.Equal(t, "owner", resp.Errors[0].Field)
	})
}

func TestTrainingCenterHandler_List(t *testing.T) {
	t.Parallel()

	center, err := domain.NewTrainingCenter("CT King", "Main street 42", "Marcos")
	require.NoError(t, err)

	svc := &mockTrainingCenterService{
		listFn: func(_ context.Context) ([]*domain.TrainingCenter, error) {
			return []*domain.TrainingCenter{center}, nil
		},
	}

	req := httptest.NewRequest(http.MethodGet, "/api/training-centers", nil)
	rr := httptest.NewRecorder()
	newTrainingCenterRouter(svc).ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)

	var page shared.Page[TrainingCenterResponse]
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&page))
	require.Len(t, page.Items, 1)
	assert.Equal(t, shared.DefaultLimit, page.Limit)
}

func TestTrainingCenterHandler_GetByID(t *testing.T) {
	t.Parallel()

	id := uuid.New()
	svc := &mockTrainingCenterService{
		getByIDFn: func(_ context.Context, _ uuid.UUID) (*domain.TrainingCenter, error) {
			return nil, service.ErrTrainingCenterNotFound
		},
	}

	req := httptest.NewRequest(http.MethodGet, "/api/training-centers/"+id.String(), nil)
	rr := httptest.NewRecorder()
	newTrainingCenterRouter(svc).ServeHTTP(rr, req)

	require.Equal(t, http.StatusNotFound, rr.Code)

	var resp shared.ErrorResponse
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	assert.Contains(t, resp.Detail, id.String())
}
