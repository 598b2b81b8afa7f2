package service

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"

	"github.com/google/uuid"
	"github.com/phrazzld/workout-api/internal/domain"
	"github.com/phrazzld/workout-api/internal/store"
)

// CreateAthleteParams carries the validated input for athlete creation.
// Category and training center are referenced by name and resolved against
// the store before the insert.
type CreateAthleteParams struct {
	Name               string
	CPF                string
	Age                int
	Weight             float64
	Height             float64
	Sex                string
	CategoryName       string
	TrainingCenterName string
}

// UpdateAthleteParams carries a partial update. Nil fields are left
// untouched; each non-nil field replaces the stored value. References to
// category and training center are immutable and cannot be updated.
type UpdateAthleteParams struct {
	Name   *string
	CPF    *string
	Age    *int
	Weight *float64
	Height *float64
	Sex    *string
}

// AthleteService provides athlete-related operations.
type AthleteService interface {
	// Create resolves the referenced category and training center by name
	// and persists a new athlete, all within a single transaction.
	// Returns a *ReferenceNotFoundError if either reference does not exist.
	Create(ctx context.Context, params CreateAthleteParams) (*domain.Athlete, error)

	// List retrieves all athletes in creation order.
	List(ctx context.Context) ([]*domain.Athlete, error)

	// GetByID retrieves an athlete by its ID.
	// Returns ErrAthleteNotFound if the athlete does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Athlete, error)

	// Update applies a partial update to an existing athlete inside a
	// transaction and returns the merged result.
	// Returns ErrAthleteNotFound if the athlete does not exist.
	Update(ctx context.Context, id uuid.UUID, params UpdateAthleteParams) (*domain.Athlete, error)

	// Delete removes an athlete.
	// Returns ErrAthleteNotFound if the athlete does not exist.
	Delete(ctx context.Context, id uuid.UUID) error
}

// txRunner executes a function within a database transaction. It exists as
// a seam so orchestration logic can be tested without a live database.
type txRunner func(ctx context.Context, db *sql.DB, fn store.TxFn) error

// athleteServiceImpl implements the AthleteService interface
type athleteServiceImpl struct {
	db         *sql.DB
	athletes   store.AthleteStore
	categories store.CategoryStore
	centers    store.TrainingCenterStore
	logger     *slog.Logger
	runTx      txRunner
}

// NewAthleteService creates a new AthleteService.
// It returns an error if any of the required dependencies are nil.
func NewAthleteService(
	db *sql.DB,
	athletes store.AthleteStore,
	categories store.CategoryStore,
	centers store.TrainingCenterStore,
	logger *slog.Logger,
) (AthleteService, error) {
	// Validate dependencies
	if db == nil {
		return nil, &ServiceError{Operation: "create_service", Message: "db cannot be nil"}
	}
	if athletes == nil {
		return nil, &ServiceError{Operation: "create_service", Message: "athletes store cannot be nil"}
	}
	if categories == nil {
		return nil, &ServiceError{Operation: "create_service", Message: "categories store cannot be nil"}
	}
	if centers == nil {
		return nil, &ServiceError{Operation: "create_service", Message: "centers store cannot be nil"}
	}

	// Use provided logger or create default
	if logger == nil {
		logger = slog.Default()
	}

	return &athleteServiceImpl{
		db:         db,
		athletes:   athletes,
		categories: categories,
		centers:    centers,
		logger:     logger.With("component", "athlete_service"),
		runTx:      store.RunInTransaction,
	}, nil
}

// Create resolves both references and inserts the athlete within one
// transaction, so a concurrent delete of a referenced row surfaces as a
// foreign key violation instead of a dangling reference.
func (s *athleteServiceImpl) Create(
	ctx context.Context,
	params CreateAthleteParams,
) (*domain.Athlete, error) {
	var athlete *domain.Athlete

	err := s.runTx(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		txCategories := s.categories.WithTx(tx)
		txCenters := s.centers.WithTx(tx)
		txAthletes := s.athletes.WithTx(tx)

		category, err := txCategories.GetByName(ctx, params.CategoryName)
		if err != nil {
			if errors.Is(err, store.ErrCategoryNotFound) {
				return &ReferenceNotFoundError{Entity: "category", Name: params.CategoryName}
			}
			return &ServiceError{
				Operation: "create_athlete",
				Message:   "failed to resolve category",
				Err:       err,
			}
		}

		center, err := txCenters.GetByName(ctx, params.TrainingCenterName)
		if err != nil {
			if errors.Is(err, store.ErrTrainingCenterNotFound) {
				return &ReferenceNotFoundError{Entity: "training center", Name: params.TrainingCenterName}
			}
			return &ServiceError{
				Operation: "create_athlete",
				Message:   "failed to resolve training center",
				Err:       err,
			}
		}

		athlete, err = domain.NewAthlete(
			params.Name,
			params.CPF,
			params.Age,
			params.Weight,
			params.Height,
			params.Sex,
			category.ID,
			center.ID,
		)
		if err != nil {
			s.logger.Error("failed to create athlete object", "error", err)
			return &ServiceError{
				Operation: "create_athlete",
				Message:   "failed to create athlete object",
				Err:       err,
			}
		}

		if err := txAthletes.Create(ctx, athlete); err != nil {
			// A reference deleted between the lookup and the insert fails the
			// FK constraint; report it the same way as a failed lookup.
			switch {
			case errors.Is(err, store.ErrCategoryRefMissing):
				return &ReferenceNotFoundError{Entity: "category", Name: params.CategoryName}
			case errors.Is(err, store.ErrTrainingCenterRefMissing):
				return &ReferenceNotFoundError{Entity: "training center", Name: params.TrainingCenterName}
			}
			s.logger.Error("failed to create athlete in transaction",
				"error", err,
				"athlete_id", athlete.ID)
			return err
		}

		athlete.CategoryName = category.Name
		athlete.TrainingCenterName = center.Name
		return nil
	})

	if err != nil {
		return nil, err
	}

	s.logger.Info("athlete created successfully",
		"athlete_id", athlete.ID,
		"category", athlete.CategoryName,
		"training_center", athlete.TrainingCenterName)
	return athlete, nil
}

// List implements AthleteService.List
func (s *athleteServiceImpl) List(ctx context.Context) ([]*domain.Athlete, error) {
	athletes, err := s.athletes.List(ctx)
	if err != nil {
		return nil, &ServiceError{
			Operation: "list_athletes",
			Message:   "failed to list athletes",
			Err:       err,
		}
	}
	return athletes, nil
}

// GetByID implements AthleteService.GetByID
func (s *athleteServiceImpl) GetByID(ctx context.Context, id uuid.UUID) (*domain.Athlete, error) {
	athlete, err := s.athletes.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrAthleteNotFound) {
			return nil, ErrAthleteNotFound
		}
		return nil, &ServiceError{
			Operation: "get_athlete",
			Message:   "failed to get athlete",
			Err:       err,
		}
	}
	return athlete, nil
}

// Update reads the current row, merges only the fields present in params,
// and persists the result, all within one transaction.
func (s *athleteServiceImpl) Update(
	ctx context.Context,
	id uuid.UUID,
	params UpdateAthleteParams,
) (*domain.Athlete, error) {
	var athlete *domain.Athlete

	err := s.runTx(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		txAthletes := s.athletes.WithTx(tx)

		current, err := txAthletes.GetByID(ctx, id)
		if err != nil {
			if errors.Is(err, store.ErrAthleteNotFound) {
				return ErrAthleteNotFound
			}
			return &ServiceError{
				Operation: "update_athlete",
				Message:   "failed to load athlete",
				Err:       err,
			}
		}

		// Explicit per-field conditional merge: only supplied fields change.
		if params.Name != nil {
			current.Name = *params.Name
		}
		if params.CPF != nil {
			current.CPF = *params.CPF
		}
		if params.Age != nil {
			current.Age = *params.Age
		}
		if params.Weight != nil {
			current.Weight = *params.Weight
		}
		if params.Height != nil {
			current.Height = *params.Height
		}
		if params.Sex != nil {
			current.Sex = *params.Sex
		}

		if err := txAthletes.Update(ctx, current); err != nil {
			if errors.Is(err, store.ErrAthleteNotFound) {
				return ErrAthleteNotFound
			}
			s.logger.Error("failed to update athlete in transaction",
				"error", err,
				"athlete_id", id)
			return err
		}

		athlete = current
		return nil
	})

	if err != nil {
		return nil, err
	}

	s.logger.Info("athlete updated successfully", "athlete_id", id)
	return athlete, nil
}

// Delete implements AthleteService.Delete
func (s *athleteServiceImpl) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.athletes.Delete(ctx, id); err != nil {
		if errors.Is(err, store.ErrAthleteNotFound) {
			return ErrAthleteNotFound
		}
		return &ServiceError{
			Operation: "delete_athlete",
			Message:   "failed to delete athlete",
			Err:       err,
		}
	}

	s.logger.Info("athlete deleted successfully", "athlete_id", id)
	return nil
}
