package store

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/phrazzld/workout-api/internal/domain"
)

// AthleteStore defines the interface for athlete data persistence.
type AthleteStore interface {
	// Create saves a new athlete to the store. The athlete must already
	// carry resolved category and training center IDs; creation is expected
	// to run inside a transaction together with the reference lookups (use
	// WithTx and store.RunInTransaction).
	//
	// Returns validation errors if the athlete data is invalid.
	// Returns ErrCPFExists if an athlete with the same CPF already exists.
	// Returns ErrInvalidEntity if a referenced row vanished before commit
	// (foreign key violation).
	Create(ctx context.Context, athlete *domain.Athlete) error

	// GetByID retrieves an athlete by its unique ID, with the referenced
	// category and training center names populated.
	// Returns ErrAthleteNotFound if the athlete does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Athlete, error)

	// List retrieves all athletes ordered by creation time, then ID, with
	// referenced names populated. Pagination happens at the API layer, the
	// way the limit/offset page helper expects a full ordered sequence.
	List(ctx context.Context) ([]*domain.Athlete, error)

	// Update persists the full current state of an existing athlete.
	// Callers merge partial updates before calling; only athlete-owned
	// columns are written (references are immutable after creation).
	// Returns ErrAthleteNotFound if the athlete does not exist.
	Update(ctx context.Context, athlete *domain.Athlete) error

	// Delete removes an athlete from the store by its ID.
	// Returns ErrAthleteNotFound if the athlete does not exist.
	Delete(ctx context.Context, id uuid.UUID) error

	// WithTx returns a new AthleteStore instance that uses the provided
	// transaction. The transaction should be created and managed by the
	// caller, typically via store.RunInTransaction.
	WithTx(tx *sql.Tx) AthleteStore
}
