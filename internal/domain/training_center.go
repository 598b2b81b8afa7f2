package domain

import (
	"fmt"
	"unicode/utf8"

	"github.com/google/uuid"
)

// TrainingCenter-specific validation errors. All wrap ErrValidation so
// callers can classify them without matching each sentinel.
var (
	// ErrTrainingCenterIDEmpty is returned when a training center ID is empty or nil.
	ErrTrainingCenterIDEmpty = fmt.Errorf("%w: training center ID cannot be empty", ErrValidation)

	// ErrTrainingCenterNameEmpty is returned when a training center name is empty.
	ErrTrainingCenterNameEmpty = fmt.Errorf("%w: training center name cannot be empty", ErrValidation)

	// ErrTrainingCenterNameTooLong is returned when a training center name exceeds the limit.
	ErrTrainingCenterNameTooLong = fmt.Errorf("%w: training center name must be at most 20 characters", ErrValidation)

	// ErrTrainingCenterAddressEmpty is returned when a training center address is empty.
	ErrTrainingCenterAddressEmpty = fmt.Errorf("%w: training center address cannot be empty", ErrValidation)

	// ErrTrainingCenterAddressTooLong is returned when a training center address exceeds the limit.
	ErrTrainingCenterAddressTooLong = fmt.Errorf("%w: training center address must be at most 60 characters", ErrValidation)

	// ErrTrainingCenterOwnerEmpty is returned when a training center owner is empty.
	ErrTrainingCenterOwnerEmpty = fmt.Errorf("%w: training center owner cannot be empty", ErrValidation)

	// ErrTrainingCenterOwnerTooLong is returned when a training center owner exceeds the limit.
	ErrTrainingCenterOwnerTooLong = fmt.Errorf("%w: training center owner must be at most 30 characters", ErrValidation)
)

// Field length limits for TrainingCenter.
const (
	TrainingCenterNameMaxLen    = 20
	TrainingCenterAddressMaxLen = 60
	TrainingCenterOwnerMaxLen   = 30
)

// TrainingCenter represents a gym or training facility where athletes train.
// Athletes reference training centers by ID; clients reference them by name.
type TrainingCenter struct {
	ID      uuid.UUID `json:"id"`
	Name    string    `json:"name"`
	Address string    `json:"address"`
	Owner   string    `json:"owner"`
}

// NewTrainingCenter creates a new TrainingCenter with the given name,
// address and owner. It generates a new UUID for the training center ID.
// Returns an error if validation fails.
func NewTrainingCenter(name, address, owner string) (*TrainingCenter, error) {
	center := &TrainingCenter{
		ID:      uuid.New(),
		Name:    name,
		Address: address,
		Owner:   owner,
	}

	if err := center.Validate(); err != nil {
		return nil, err
	}

	return center, nil
}

// Validate checks if the TrainingCenter has valid data.
// Returns an error if any field fails validation.
func (t *TrainingCenter) Validate() error {
	if t.ID == uuid.Nil {
		return ErrTrainingCenterIDEmpty
	}

	if t.Name == "" {
		return ErrTrainingCenterNameEmpty
	}

	// Length limits count characters, matching varchar(n) semantics.
	if utf8.RuneCountInString(t.Name) > TrainingCenterNameMaxLen {
		return ErrTrainingCenterNameTooLong
	}

	if t.Address == "" {
		return ErrTrainingCenterAddressEmpty
	}

	if utf8.RuneCountInString(t.Address) > TrainingCenterAddressMaxLen {
		return ErrTrainingCenterAddressTooLong
	}

	if t.Owner == "" {
		return ErrTrainingCenterOwnerEmpty
	}

	if utf8.RuneCountInString(t.Owner) > TrainingCenterOwnerMaxLen {
		return ErrTrainingCenterOwnerTooLong
	}

	return nil
}
