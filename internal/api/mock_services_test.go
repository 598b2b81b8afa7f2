package api

import (
	"context"

	"github.com/google/uuid"
	"github.com/phrazzld/workout-api/internal/domain"
	"github.com/phrazzld/workout-api/internal/service"
)

// mockAthleteService implements service.AthleteService with function fields
// so each test can stub exactly the calls it expects.
type mockAthleteService struct {
	createFn  func(ctx context.Context, params service.CreateAthleteParams) (*domain.Athlete, error)
	listFn    func(ctx context.Context) ([]*domain.Athlete, error)
	getByIDFn func(ctx context.Context, id uuid.UUID) (*domain.Athlete, error)
	updateFn  func(ctx context.Context, id uuid.UUID, params service.UpdateAthleteParams) (*domain.Athlete, error)
	deleteFn  func(ctx context.Context, id uuid.UUID) error
}

func (m *mockAthleteService) Create(ctx context.Context, params service.CreateAthleteParams) (*domain.Athlete, error) {
	return m.createFn(ctx, params)
}

func (m *mockAthleteService) List(ctx context.Context) ([]*domain.Athlete, error) {
	return m.listFn(ctx)
}

func (m *mockAthleteService) GetByID(ctx context.Context, id uuid.UUID) (*domain.Athlete, error) {
	return m.getByIDFn(ctx, id)
}

func (m *mockAthleteService) Update(ctx context.Context, id uuid.UUID, params service.UpdateAthleteParams) (*domain.Athlete, error) {
	return m.updateFn(ctx, id, params)
}

func (m *mockAthleteService) Delete(ctx context.Context, id uuid.UUID) error {
	return m.deleteFn(ctx, id)
}

// mockCategoryService implements service.CategoryService.
type mockCategoryService struct {
	createFn  func(ctx context.Context, name string) (*domain.Category, error)
	listFn    func(ctx context.Context) ([]*domain.Category, error)
	getByIDFn func(ctx context.Context, id uuid.UUID) (*domain.Category, error)
}

func (m *mockCategoryService) Create(ctx context.Context, name string) (*domain.Category, error) {
	return m.createFn(ctx, name)
}

func (m *mockCategoryService) List(ctx context.Context) ([]*domain.Category, error) {
	return m.listFn(ctx)
}

func (m *mockCategoryService) GetByID(ctx context.Context, id uuid.UUID) (*domain.Category, error) {
	return m.getByIDFn(ctx, id)
}

// mockTrainingCenterService implements service.TrainingCenterService.
type mockTrainingCenterService struct {
	createFn  func(ctx context.Context, params service.CreateTrainingCenterParams) (*domain.TrainingCenter, error)
	listFn    func(ctx context.Context) ([]*domain.TrainingCenter, error)
	getByIDFn func(ctx context.Context, id uuid.UUID) (*domain.TrainingCenter, error)
}

func (m *mockTrainingCenterService) Create(ctx context.Context, params service.CreateTrainingCenterParams) (*domain.TrainingCenter, error) {
	return m.createFn(ctx, params)
}

func (m *mockTrainingCenterService) List(ctx context.Context) ([]*domain.TrainingCenter, error) {
	return m.listFn(ctx)
}

func (m *mockTrainingCenterService) GetByID(ctx context.Context, id uuid.UUID) (*domain.TrainingCenter, error) {
	return m.getByIDFn(ctx, id)
}
