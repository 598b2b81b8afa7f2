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

func newCategoryRouter(svc service.CategoryService) http.Handler {
	h := NewCategoryHandler(svc, testLogger())
	r := chi.NewRouter()
	r.Route("/api/categories", func(r chi.Router) {
		r.Post("/", h.Create)
		r.Get("/", h.List)
		r.Get("/{id}", h.GetByID)
	})
	return r
}

func TestCategoryHandler_Create(t *testing.T) {
	t.Parallel()

	t.Run("success returns 201", func(t *testing.T) {
		t.Parallel()

		category, err := domain.NewCategory("Scale")
		require.NoError(t, err)

		svc := &mockCategoryService{
			createFn: func(_ context.Context, name string) (*domain.Category, error) {
				assert.Equal(t, "Scale", name)
				return category, nil
			},
		}

		body := []byte(`{"name": "Scale"}`)
		req := httptest.NewRequest(http.MethodPost, "/api/categories", bytes.NewReader(body))
		rr := httptest.NewRecorder()
		newCategoryRouter(svc).ServeHTTP(rr, req)

		require.Equal(t, http.StatusCreated, rr.Code)

		var resp CategoryResponse
		require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
		assert.Equal(t, category.ID.String(), resp.ID)
		assert.Equal(t, "Scale", resp.Name)
	})

	t.Run("name over the limit returns 422", func(t *testing.T) {
		t.Parallel()

		svc := &mockCategoryService{}
		body := []byte(`{"name": "a very long category name"}`)
		req := httptest.NewRequest(http.MethodPost, "/api/categories", bytes.NewReader(body))
		rr := httptest.NewRecorder()
		newCategoryRouter(svc).ServeHTTP(rr, req)

		require.Equal(t, http.StatusUnprocessableEntity, rr.Code)

		var resp shared.ErrorResponse
		require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
		require.NotEmpty(t, resp.Errors)
		assert.Equal(t, "name", resp.Errors[0].Field)
	})
}

func TestCategoryHandler_List(t *testing.T) {
	t.Parallel()

	scale, err := domain.NewCategory("Scale")
	require.NoError(t, err)
	rx, err := domain.NewCategory("RX")
	require.NoError(t, err)

	svc := &mockCategoryService{
		listFn: func(_ context.Context) ([]*domain.Category, error) {
			return []*domain.Category{rx, scale}, nil
		},
	}

	req := httptest.NewRequest(http.MethodGet, "/api/categories", nil)
	rr := httptest.NewRecorder()
	newCategoryRouter(svc).ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)

	var page shared.Page[CategoryResponse]
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&page))
	require.Len(t, page.Items, 2)
	assert.Equal(t, 2, page.Total)
	assert.Equal(t, "RX", page.Items[0].Name)
}

func TestCategoryHandler_GetByID(t *testing.T) {
	t.Parallel()

	t.Run("unknown id returns 404 naming the id", func(t *testing.T) {
		t.Parallel()

		id := uuid.New()
		svc := &mockCategoryService{
			getByIDFn: func(_ context.Context, _ uuid.UUID) (*domain.Category, error) {
				return nil, service.ErrCategoryNotFound
			},
		}

		req := httptest.NewRequest(http.MethodGet, "/api/categories/"+id.String(), nil)
		rr := httptest.NewRecorder()
		newCategoryRouter(svc).ServeHTTP(rr, req)

		require.Equal(t, http.StatusNotFound, rr.Code)

		var resp shared.ErrorResponse
		require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
		assert.Contains(t, resp.Detail, id.String())
	})

	t.Run("malformed id returns 422", func(t *testing.T) {
		t.Parallel()

		svc := &mockCategoryService{}
		req := httptest.NewRequest(http.MethodGet, "/api/categories/123", nil)
		rr := httptest.NewRecorder()
		newCategoryRouter(svc).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnprocessableEntity, rr.Code)
	})
}
