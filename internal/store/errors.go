package store

import (
	"errors"
	"fmt"
)

// Common store errors used across all store implementations.
var (
	// ErrNotFound is returned when a requested entity does not exist in the store.
	// This is a generic version of the entity-specific not found errors
	// (e.g., ErrAthleteNotFound, ErrCategoryNotFound).
	ErrNotFound = errors.New("entity not found")

	// ErrDuplicate is returned when an operation would create a duplicate
	// of a unique entity (e.g., an athlete with the same CPF).
	ErrDuplicate = errors.New("entity already exists")

	// ErrInvalidEntity is returned when an entity fails validation before
	// being stored, or when a write violates a referential constraint.
	// Check the wrapped error for specific validation details.
	ErrInvalidEntity = errors.New("invalid entity")

	// ErrTransactionFailed is returned when a database transaction fails
	// to commit or when an operation within a transaction fails.
	ErrTransactionFailed = errors.New("transaction failed")

	// Entity-specific "not found" errors

	// ErrAthleteNotFound indicates that the requested athlete does not exist in the store.
	ErrAthleteNotFound = fmt.Errorf("%w: athlete", ErrNotFound)

	// ErrCategoryNotFound indicates that the requested category does not exist in the store.
	ErrCategoryNotFound = fmt.Errorf("%w: category", ErrNotFound)

	// ErrTrainingCenterNotFound indicates that the requested training center does not exist in the store.
	ErrTrainingCenterNotFound = fmt.Errorf("%w: training center", ErrNotFound)

	// Entity-specific "duplicate" errors

	// ErrCPFExists indicates that an athlete with the given CPF already exists.
	ErrCPFExists = fmt.Errorf("%w: cpf", ErrDuplicate)

	// Referential integrity errors. Raised when an insert references a row
	// that was deleted after the lookup but before the write.

	// ErrCategoryRefMissing indicates that the referenced category row no longer exists.
	ErrCategoryRefMissing = fmt.Errorf("%w: referenced category does not exist", ErrInvalidEntity)

	// ErrTrainingCenterRefMissing indicates that the referenced training center row no longer exists.
	ErrTrainingCenterRefMissing = fmt.Errorf("%w: referenced training center does not exist", ErrInvalidEntity)
)

// IsNotFoundError checks if the error is any kind of "not found" error.
// This includes the generic ErrNotFound and all entity-specific not found errors.
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsDuplicateError checks if the error is any kind of "duplicate" error.
// This includes the generic ErrDuplicate and all entity-specific duplicate errors.
func IsDuplicateError(err error) bool {
	return errors.Is(err, ErrDuplicate)
}
