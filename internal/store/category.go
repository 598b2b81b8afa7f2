package store

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/phrazzld/workout-api/internal/domain"
)

// CategoryStore defines the interface for category data persistence.
type CategoryStore interface {
	// Create saves a new category to the store.
	// Returns validation errors if the category data is invalid.
	// Returns ErrDuplicate if a category with the same name already exists.
	Create(ctx context.Context, category *domain.Category) error

	// GetByID retrieves a category by its unique ID.
	// Returns ErrCategoryNotFound if the category does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Category, error)

	// GetByName retrieves a category by its unique name. Athlete creation
	// resolves the category reference through this lookup.
	// Returns ErrCategoryNotFound if the category does not exist.
	GetByName(ctx context.Context, name string) (*domain.Category, error)

	// List retrieves all categories ordered by name, then ID.
	List(ctx context.Context) ([]*domain.Category, error)

	// WithTx returns a new CategoryStore instance that uses the provided
	// transaction.
	WithTx(tx *sql.Tx) CategoryStore
}
