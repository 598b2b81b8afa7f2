package service

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/phrazzld/workout-api/internal/domain"
	"github.com/phrazzld/workout-api/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAthleteService_NilDependencies(t *testing.T) {
	athletes := &mockAthleteStore{}
	categories := &mockCategoryStore{}
	centers := &mockTrainingCenterStore{}

	_, err := NewAthleteService(nil, athletes, categories, centers, nil)
	require.Error(t, err)

	// The db is only touched by transactional paths, so a non-nil pointer is
	// enough for the remaining dependency checks. GetByID/List/Delete never
	// use it.
	_, err = NewAthleteService(testDB(t), nil, categories, centers, nil)
	require.Error(t, err)

	_, err = NewAthleteService(testDB(t), athletes, nil, centers, nil)
	require.Error(t, err)

	_, err = NewAthleteService(testDB(t), athletes, categories, nil, nil)
	require.Error(t, err)
}

func TestAthleteService_GetByID(t *testing.T) {
	athleteID := uuid.MustParse("22222222-2222-2222-2222-222222222222")

	tests := []struct {
		name        string
		storeErr    error
		expectedErr error
	}{
		{
			name: "found",
		},
		{
			name:        "not_found_maps_to_service_sentinel",
			storeErr:    store.ErrAthleteNotFound,
			expectedErr: ErrAthleteNotFound,
		},
		{
			name:     "unexpected_error_is_wrapped",
			storeErr: errors.New("connection refused"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			athletes := &mockAthleteStore{
				GetByIDFn: func(ctx context.Context, id uuid.UUID) (*domain.Athlete, error) {
					assert.Equal(t, athleteID, id)
					if tt.storeErr != nil {
						return nil, tt.storeErr
					}
					return &domain.Athlete{ID: athleteID}, nil
				},
			}

			svc, err := NewAthleteService(
				testDB(t),
				athletes,
				&mockCategoryStore{},
				&mockTrainingCenterStore{},
				nil,
			)
			require.NoError(t, err)

			athlete, err := svc.GetByID(context.Background(), athleteID)

			switch {
			case tt.expectedErr != nil:
				assert.ErrorIs(t, err, tt.expectedErr)
			case tt.storeErr != nil:
				require.Error(t, err)
				var svcErr *ServiceError
				assert.ErrorAs(t, err, &svcErr)
			default:
				require.NoError(t, err)
				assert.Equal(t, athleteID, athlete.ID)
			}
		})
	}
}

func TestAthleteService_Delete(t *testing.T) {
	athleteID := uuid.New()

	athletes := &mockAthleteStore{
		DeleteFn: func(ctx context.Context, id uuid.UUID) error {
			return store.ErrAthleteNotFound
		},
	}

	svc, err := NewAthleteService(
		testDB(t),
		athletes,
		&mockCategoryStore{},
		&mockTrainingCenterStore{},
		nil,
	)
	require.NoError(t, err)

	err = svc.Delete(context.Background(), athleteID)
	assert.ErrorIs(t, err, ErrAthleteNotFound)

	athletes.DeleteFn = func(ctx context.Context, id uuid.UUID) error { return nil }
	assert.NoError(t, svc.Delete(context.Background(), athleteID))
}

func TestAthleteService_List(t *testing.T) {
	athletes := &mockAthleteStore{
		ListFn: func(ctx context.Context) ([]*domain.Athlete, error) {
			return []*domain.Athlete{{ID: uuid.New()}, {ID: uuid.New()}}, nil
		},
	}

	svc, err := NewAthleteService(
		testDB(t),
		athletes,
		&mockCategoryStore{},
		&mockTrainingCenterStore{},
		nil,
	)
	require.NoError(t, err)

	result, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, result, 2)
}

func TestReferenceNotFoundError(t *testing.T) {
	err := &ReferenceNotFoundError{Entity: "category", Name: "Scale"}

	assert.Equal(t, `the category "Scale" was not found`, err.Error())
	assert.ErrorIs(t, err, ErrReferenceNotFound)
	assert.NotErrorIs(t, err, ErrAthleteNotFound)
}

// newTestAthleteService builds an athlete service whose transaction runner
// invokes the callback directly, so the mock stores stand in for the
// database on the transactional paths.
func newTestAthleteService(
	t *testing.T,
	athletes *mockAthleteStore,
	categories *mockCategoryStore,
	centers *mockTrainingCenterStore,
) AthleteService {
	t.Helper()

	svc, err := NewAthleteService(testDB(t), athletes, categories, centers, nil)
	require.NoError(t, err)

	impl := svc.(*athleteServiceImpl)
	impl.runTx = func(ctx context.Context, _ *sql.DB, fn store.TxFn) error {
		return fn(ctx, nil)
	}
	return svc
}

func validCreateParams() CreateAthleteParams {
	return CreateAthleteParams{
		Name:               "Joao",
		CPF:                "12345678901",
		Age:                25,
		Weight:             75.5,
		Height:             1.70,
		Sex:                "M",
		CategoryName:       "Scale",
		TrainingCenterName: "CT King",
	}
}

func TestAthleteService_Create(t *testing.T) {
	categoryID := uuid.New()
	centerID := uuid.New()

	category := &domain.Category{ID: categoryID, Name: "Scale"}
	center := &domain.TrainingCenter{ID: centerID, Name: "CT King", Address: "Main street 42", Owner: "Marcos"}

	t.Run("resolves references and persists the athlete", func(t *testing.T) {
		var created *domain.Athlete

		categories := &mockCategoryStore{
			GetByNameFn: func(ctx context.Context, name string) (*domain.Category, error) {
				assert.Equal(t, "Scale", name)
				return category, nil
			},
		}
		centers := &mockTrainingCenterStore{
			GetByNameFn: func(ctx context.Context, name string) (*domain.TrainingCenter, error) {
				assert.Equal(t, "CT King", name)
				return center, nil
			},
		}
		athletes := &mockAthleteStore{
			CreateFn: func(ctx context.Context, athlete *domain.Athlete) error {
				created = athlete
				return nil
			},
		}

		svc := newTestAthleteService(t, athletes, categories, centers)

		athlete, err := svc.Create(context.Background(), validCreateParams())
		require.NoError(t, err)
		require.NotNil(t, created)

		assert.NotEqual(t, uuid.Nil, athlete.ID)
		assert.False(t, athlete.CreatedAt.IsZero())
		assert.Equal(t, categoryID, created.CategoryID)
		assert.Equal(t, centerID, created.TrainingCenterID)
		assert.Equal(t, "Scale", athlete.CategoryName)
		assert.Equal(t, "CT King", athlete.TrainingCenterName)
	})

	t.Run("missing category fails before the center lookup", func(t *testing.T) {
		centerLookups := 0

		categories := &mockCategoryStore{
			GetByNameFn: func(ctx context.Context, name string) (*domain.Category, error) {
				return nil, store.ErrCategoryNotFound
			},
		}
		centers := &mockTrainingCenterStore{
			GetByNameFn: func(ctx context.Context, name string) (*domain.TrainingCenter, error) {
				centerLookups++
				return center, nil
			},
		}

		svc := newTestAthleteService(t, &mockAthleteStore{}, categories, centers)

		_, err := svc.Create(context.Background(), validCreateParams())

		var refErr *ReferenceNotFoundError
		require.ErrorAs(t, err, &refErr)
		assert.Equal(t, "category", refErr.Entity)
		assert.Equal(t, "Scale", refErr.Name)
		assert.Zero(t, centerLookups, "center must not be looked up when the category is missing")
	})

	t.Run("missing training center yields a reference error naming it", func(t *testing.T) {
		categories := &mockCategoryStore{
			GetByNameFn: func(ctx context.Context, name string) (*domain.Category, error) {
				return category, nil
			},
		}
		centers := &mockTrainingCenterStore{
			GetByNameFn: func(ctx context.Context, name string) (*domain.TrainingCenter, error) {
				return nil, store.ErrTrainingCenterNotFound
			},
		}

		svc := newTestAthleteService(t, &mockAthleteStore{}, categories, centers)

		_, err := svc.Create(context.Background(), validCreateParams())

		var refErr *ReferenceNotFoundError
		require.ErrorAs(t, err, &refErr)
		assert.Equal(t, "training center", refErr.Entity)
		assert.Equal(t, "CT King", refErr.Name)
	})

	t.Run("reference deleted before the insert maps to the same error", func(t *testing.T) {
		tests := []struct {
			name       string
			storeErr   error
			wantEntity string
			wantName   string
		}{
			{"category gone", store.ErrCategoryRefMissing, "category", "Scale"},
			{"training center gone", store.ErrTrainingCenterRefMissing, "training center", "CT King"},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				categories := &mockCategoryStore{
					GetByNameFn: func(ctx context.Context, name string) (*domain.Category, error) {
						return category, nil
					},
				}
				centers := &mockTrainingCenterStore{
					GetByNameFn: func(ctx context.Context, name string) (*domain.TrainingCenter, error) {
						return center, nil
					},
				}
				athletes := &mockAthleteStore{
					CreateFn: func(ctx context.Context, athlete *domain.Athlete) error {
						return tt.storeErr
					},
				}

				svc := newTestAthleteService(t, athletes, categories, centers)

				_, err := svc.Create(context.Background(), validCreateParams())

				var refErr *ReferenceNotFoundError
				require.ErrorAs(t, err, &refErr)
				assert.Equal(t, tt.wantEntity, refErr.Entity)
				assert.Equal(t, tt.wantName, refErr.Name)
			})
		}
	})

	t.Run("other insert failures propagate unchanged", func(t *testing.T) {
		categories := &mockCategoryStore{
			GetByNameFn: func(ctx context.Context, name string) (*domain.Category, error) {
				return category, nil
			},
		}
		centers := &mockTrainingCenterStore{
			GetByNameFn: func(ctx context.Context, name string) (*domain.TrainingCenter, error) {
				return center, nil
			},
		}
		athletes := &mockAthleteStore{
			CreateFn: func(ctx context.Context, athlete *domain.Athlete) error {
				return store.ErrCPFExists
			},
		}

		svc := newTestAthleteService(t, athletes, categories, centers)

		_, err := svc.Create(context.Background(), validCreateParams())
		assert.ErrorIs(t, err, store.ErrCPFExists)
	})
}

func TestAthleteService_Update(t *testing.T) {
	athleteID := uuid.New()

	stored := func() *domain.Athlete {
		return &domain.Athlete{
			ID:               athleteID,
			Name:             "Joao",
			CPF:              "12345678901",
			Age:              25,
			Weight:           75.5,
			Height:           1.70,
			Sex:              "M",
			CategoryID:       uuid.New(),
			TrainingCenterID: uuid.New(),
		}
	}

	t.Run("merges only the supplied fields", func(t *testing.T) {
		var persisted *domain.Athlete

		athletes := &mockAthleteStore{
			GetByIDFn: func(ctx context.Context, id uuid.UUID) (*domain.Athlete, error) {
				assert.Equal(t, athleteID, id)
				return stored(), nil
			},
			UpdateFn: func(ctx context.Context, athlete *domain.Athlete) error {
				persisted = athlete
				return nil
			},
		}

		svc := newTestAthleteService(t, athletes, &mockCategoryStore{}, &mockTrainingCenterStore{})

		weight := 80.0
		sex := "F"
		athlete, err := svc.Update(context.Background(), athleteID, UpdateAthleteParams{
			Weight: &weight,
			Sex:    &sex,
		})
		require.NoError(t, err)
		require.NotNil(t, persisted)

		assert.Equal(t, 80.0, persisted.Weight)
		assert.Equal(t, "F", persisted.Sex)
		assert.Equal(t, "Joao", persisted.Name, "omitted fields must survive the merge")
		assert.Equal(t, "12345678901", persisted.CPF)
		assert.Equal(t, 25, persisted.Age)
		assert.Equal(t, 1.70, persisted.Height)
		assert.Equal(t, athlete, persisted)
	})

	t.Run("unknown athlete maps to the service sentinel", func(t *testing.T) {
		athletes := &mockAthleteStore{
			GetByIDFn: func(ctx context.Context, id uuid.UUID) (*domain.Athlete, error) {
				return nil, store.ErrAthleteNotFound
			},
		}

		svc := newTestAthleteService(t, athletes, &mockCategoryStore{}, &mockTrainingCenterStore{})

		name := "Maria"
		_, err := svc.Update(context.Background(), athleteID, UpdateAthleteParams{Name: &name})
		assert.ErrorIs(t, err, ErrAthleteNotFound)
	})
}
