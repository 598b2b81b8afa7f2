package store

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/phrazzld/workout-api/internal/domain"
)

// TrainingCenterStore defines the interface for training center data persistence.
type TrainingCenterStore interface {
	// Create saves a new training center to the store.
	// Returns validation errors if the training center data is invalid.
	// Returns ErrDuplicate if a training center with the same name already exists.
	Create(ctx context.Context, center *domain.TrainingCenter) error

	// GetByID retrieves a training center by its unique ID.
	// Returns ErrTrainingCenterNotFound if the training center does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.TrainingCenter, error)

	// GetByName retrieves a training center by its unique name. Athlete
	// creation resolves the training center reference through this lookup.
	// Returns ErrTrainingCenterNotFound if the training center does not exist.
	GetByName(ctx context.Context, name string) (*domain.TrainingCenter, error)

	// List retrieves all training centers ordered by name, then ID.
	List(ctx context.Context) ([]*domain.TrainingCenter, error)

	// WithTx returns a new TrainingCenterStore instance that uses the
	// provided transaction.
	WithTx(tx *sql.Tx) TrainingCenterStore
}
