package service

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/phrazzld/workout-api/internal/domain"
	"github.com/phrazzld/workout-api/internal/store"
)

// mockAthleteStore is a function-field mock of store.AthleteStore.
type mockAthleteStore struct {
	CreateFn  func(ctx context.Context, athlete *domain.Athlete) error
	GetByIDFn func(ctx context.Context, id uuid.UUID) (*domain.Athlete, error)
	ListFn    func(ctx context.Context) ([]*domain.Athlete, error)
	UpdateFn  func(ctx context.Context, athlete *domain.Athlete) error
	DeleteFn  func(ctx context.Context, id uuid.UUID) error
}

func (m *mockAthleteStore) Create(ctx context.Context, athlete *domain.Athlete) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, athlete)
	}
	return nil
}

func (m *mockAthleteStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Athlete, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return nil, nil
}

func (m *mockAthleteStore) List(ctx context.Context) ([]*domain.Athlete, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx)
	}
	return nil, nil
}

func (m *mockAthleteStore) Update(ctx context.Context, athlete *domain.Athlete) error {
	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, athlete)
	}
	return nil
}

func (m *mockAthleteStore) Delete(ctx context.Context, id uuid.UUID) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}
	return nil
}

func (m *mockAthleteStore) WithTx(tx *sql.Tx) store.AthleteStore { return m }

// mockCategoryStore is a function-field mock of store.CategoryStore.
type mockCategoryStore struct {
	CreateFn    func(ctx context.Context, category *domain.Category) error
	GetByIDFn   func(ctx context.Context, id uuid.UUID) (*domain.Category, error)
	GetByNameFn func(ctx context.Context, name string) (*domain.Category, error)
	ListFn      func(ctx context.Context) ([]*domain.Category, error)
}

func (m *mockCategoryStore) Create(ctx context.Context, category *domain.Category) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, category)
	}
	return nil
}

func (m *mockCategoryStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Category, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return nil, nil
}

func (m *mockCategoryStore) GetByName(ctx context.Context, name string) (*domain.Category, error) {
	if m.GetByNameFn != nil {
		return m.GetByNameFn(ctx, name)
	}
	return nil, nil
}

func (m *mockCategoryStore) List(ctx context.Context) ([]*domain.Category, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx)
	}
	return nil, nil
}

func (m *mockCategoryStore) WithTx(tx *sql.Tx) store.CategoryStore { return m }

// mockTrainingCenterStore is a function-field mock of store.TrainingCenterStore.
type mockTrainingCenterStore struct {
	CreateFn    func(ctx context.Context, center *domain.TrainingCenter) error
	GetByIDFn   func(ctx context.Context, id uuid.UUID) (*domain.TrainingCenter, error)
	GetByNameFn func(ctx context.Context, name string) (*domain.TrainingCenter, error)
	ListFn      func(ctx context.Context) ([]*domain.TrainingCenter, error)
}

func (m *mockTrainingCenterStore) Create(ctx context.Context, center *domain.TrainingCenter) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, center)
	}
	return nil
}

func (m *mockTrainingCenterStore) GetByID(
	ctx context.Context,
	id uuid.UUID,
) (*domain.TrainingCenter, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return nil, nil
}

func (m *mockTrainingCenterStore) GetByName(
	ctx context.Context,
	name string,
) (*domain.TrainingCenter, error) {
	if m.GetByNameFn != nil {
		return m.GetByNameFn(ctx, name)
	}
	return nil, nil
}

func (m *mockTrainingCenterStore) List(ctx context.Context) ([]*domain.TrainingCenter, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx)
	}
	return nil, nil
}

func (m *mockTrainingCenterStore) WithTx(tx *sql.Tx) store.TrainingCenterStore { return m }
