package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/google/uuid"
	"github.com/phrazzld/workout-api/internal/domain"
	"github.com/phrazzld/workout-api/internal/store"
)

// CreateTrainingCenterParams carries the validated input for training
// center creation.
type CreateTrainingCenterParams struct {
	Name    string
	Address string
	Owner   string
}

// TrainingCenterService provides training-center-related operations.
type TrainingCenterService interface {
	// Create persists a new training center.
	Create(ctx context.Context, params CreateTrainingCenterParams) (*domain.TrainingCenter, error)

	// List retrieves all training centers in name order.
	List(ctx context.Context) ([]*domain.TrainingCenter, error)

	// GetByID retrieves a training center by its ID.
	// Returns ErrTrainingCenterNotFound if the training center does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.TrainingCenter, error)
}

// trainingCenterServiceImpl implements the TrainingCenterService interface
type trainingCenterServiceImpl struct {
	centers store.TrainingCenterStore
	logger  *slog.Logger
}

// NewTrainingCenterService creates a new TrainingCenterService.
// It returns an error if the store dependency is nil.
func NewTrainingCenterService(
	centers store.TrainingCenterStore,
	logger *slog.Logger,
) (TrainingCenterService, error) {
	if centers == nil {
		return nil, &ServiceError{Operation: "create_service", Message: "centers store cannot be nil"}
	}

	// Use provided logger or create default
	if logger == nil {
		logger = slog.Default()
	}

	return &trainingCenterServiceImpl{
		centers: centers,
		logger:  logger.With("component", "training_center_service"),
	}, nil
}

// Create implements TrainingCenterService.Create
func (s *trainingCenterServiceImpl) Create(
	ctx context.Context,
	params CreateTrainingCenterParams,
) (*domain.TrainingCenter, error) {
	center, err := domain.NewTrainingCenter(params.Name, params.Address, params.Owner)
	if err != nil {
		s.logger.Error("failed to create training center object", "error", err)
		return nil, &ServiceError{
			Operation: "create_training_center",
			Message:   "failed to create training center object",
			Err:       err,
		}
	}

	if err := s.centers.Create(ctx, center); err != nil {
		s.logger.Error("failed to create training center", "error", err, "name", params.Name)
		return nil, err
	}

	s.logger.Info("training center created successfully",
		"training_center_id", center.ID,
		"name", center.Name)
	return center, nil
}

// List implements TrainingCenterService.List
func (s *trainingCenterServiceImpl) List(ctx context.Context) ([]*domain.TrainingCenter, error) {
	centers, err := s.centers.List(ctx)
	if err != nil {
		return nil, &ServiceError{
			Operation: "list_training_centers",
			Message:   "failed to list training centers",
			Err:       err,
		}
	}
	return centers, nil
}

// GetByID implements TrainingCenterService.GetByID
func (s *trainingCenterServiceImpl) GetByID(
	ctx context.Context,
	id uuid.UUID,
) (*domain.TrainingCenter, error) {
	center, err := s.centers.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrTrainingCenterNotFound) {
			return nil, ErrTrainingCenterNotFound
		}
		return nil, &ServiceError{
			Operation: "get_training_center",
			Message:   "failed to get training center",
			Err:       err,
		}
	}
	return center, nil
}
