package service

import (
	"errors"
	"fmt"
)

// Common service errors - sentinel errors used across service implementations.
// Service methods return sentinel errors for expected error conditions;
// unexpected errors are wrapped in ServiceError. Callers use errors.Is /
// errors.As, and the API layer maps service errors to HTTP status codes.
var (
	// ErrAthleteNotFound indicates that the athlete does not exist.
	// API layer should map this to HTTP 404 Not Found.
	ErrAthleteNotFound = errors.New("athlete not found")

	// ErrCategoryNotFound indicates that the category does not exist.
	// API layer should map this to HTTP 404 Not Found.
	ErrCategoryNotFound = errors.New("category not found")

	// ErrTrainingCenterNotFound indicates that the training center does not exist.
	// API layer should map this to HTTP 404 Not Found.
	ErrTrainingCenterNotFound = errors.New("training center not found")

	// ErrReferenceNotFound indicates that an entity referenced by name during
	// athlete creation does not exist. Concrete occurrences are
	// *ReferenceNotFoundError values, which match this sentinel via errors.Is.
	// API layer should map this to HTTP 400 Bad Request.
	ErrReferenceNotFound = errors.New("referenced entity not found")
)

// ReferenceNotFoundError reports a missing category or training center
// referenced by name during athlete creation. Its message is safe to return
// to clients: it names the entity kind and the name that failed to resolve.
type ReferenceNotFoundError struct {
	// Entity is the kind of the missing reference ("category" or "training center").
	Entity string
	// Name is the name the client supplied.
	Name string
}

// Error implements the error interface for ReferenceNotFoundError.
func (e *ReferenceNotFoundError) Error() string {
	return fmt.Sprintf("the %s %q was not found", e.Entity, e.Name)
}

// Is makes errors.Is(err, ErrReferenceNotFound) match any ReferenceNotFoundError.
func (e *ReferenceNotFoundError) Is(target error) bool {
	return target == ErrReferenceNotFound
}

// ServiceError wraps unexpected errors from a service with operation context.
type ServiceError struct {
	// Operation is the operation that failed (e.g., "create_athlete").
	Operation string
	// Message is a human-readable description of the error
	Message string
	// Err is the underlying error that caused the failure
	Err error
}

// Error implements the error interface for ServiceError.
func (e *ServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("service %s failed: %s: %v", e.Operation, e.Message, e.Err)
	}
	return fmt.Sprintf("service %s failed: %s", e.Operation, e.Message)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *ServiceError) Unwrap() error {
	return e.Err
}
