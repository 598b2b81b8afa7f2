package domain

import (
	"fmt"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
)

// Athlete-specific validation errors. All wrap ErrValidation so callers can
// classify them without matching each sentinel.
var (
	// ErrAthleteIDEmpty is returned when an athlete ID is empty or nil.
	ErrAthleteIDEmpty = fmt.Errorf("%w: athlete ID cannot be empty", ErrValidation)

	// ErrAthleteNameEmpty is returned when an athlete name is empty.
	ErrAthleteNameEmpty = fmt.Errorf("%w: athlete name cannot be empty", ErrValidation)

	// ErrAthleteNameTooLong is returned when an athlete name exceeds the limit.
	ErrAthleteNameTooLong = fmt.Errorf("%w: athlete name must be at most 50 characters", ErrValidation)

	// ErrAthleteCPFInvalid is returned when an athlete CPF is not 11 digits.
	ErrAthleteCPFInvalid = fmt.Errorf("%w: athlete CPF must be exactly 11 digits", ErrValidation)

	// ErrAthleteAgeInvalid is returned when an athlete age is not positive.
	ErrAthleteAgeInvalid = fmt.Errorf("%w: athlete age must be positive", ErrValidation)

	// ErrAthleteWeightInvalid is returned when an athlete weight is not positive.
	ErrAthleteWeightInvalid = fmt.Errorf("%w: athlete weight must be positive", ErrValidation)

	// ErrAthleteHeightInvalid is returned when an athlete height is not positive.
	ErrAthleteHeightInvalid = fmt.Errorf("%w: athlete height must be positive", ErrValidation)

	// ErrAthleteSexInvalid is returned when an athlete sex is not "M" or "F".
	ErrAthleteSexInvalid = fmt.Errorf(`%w: athlete sex must be "M" or "F"`, ErrValidation)

	// ErrAthleteCategoryIDEmpty is returned when an athlete's category ID is empty or nil.
	ErrAthleteCategoryIDEmpty = fmt.Errorf("%w: athlete category ID cannot be empty", ErrValidation)

	// ErrAthleteTrainingCenterIDEmpty is returned when an athlete's training center ID is empty or nil.
	ErrAthleteTrainingCenterIDEmpty = fmt.Errorf("%w: athlete training center ID cannot be empty", ErrValidation)
)

// Field limits for Athlete.
const (
	AthleteNameMaxLen = 50
	AthleteCPFLen     = 11
)

// Athlete represents a registered athlete. Every athlete belongs to exactly
// one category and one training center, both resolved by name at creation
// time and stored as foreign keys.
//
// CategoryName and TrainingCenterName are read-model fields: stores populate
// them by joining the referenced rows, and services set them when the
// references are resolved. They are never persisted directly.
type Athlete struct {
	ID                 uuid.UUID `json:"id"`
	Name               string    `json:"name"`
	CPF                string    `json:"cpf"`
	Age                int       `json:"age"`
	Weight             float64   `json:"weight"`
	Height             float64   `json:"height"`
	Sex                string    `json:"sex"`
	CategoryID         uuid.UUID `json:"category_id"`
	TrainingCenterID   uuid.UUID `json:"training_center_id"`
	CategoryName       string    `json:"category_name"`
	TrainingCenterName string    `json:"training_center_name"`
	CreatedAt          time.Time `json:"created_at"`
}

// NewAthlete creates a new Athlete linked to the given category and training
// center. It generates a new UUID for the athlete ID and sets the creation
// timestamp to the current UTC time. Returns an error if validation fails.
func NewAthlete(
	name, cpf string,
	age int,
	weight, height float64,
	sex string,
	categoryID, trainingCenterID uuid.UUID,
) (*Athlete, error) {
	athlete := &Athlete{
		ID:               uuid.New(),
		Name:             name,
		CPF:              cpf,
		Age:              age,
		Weight:           weight,
		Height:           height,
		Sex:              sex,
		CategoryID:       categoryID,
		TrainingCenterID: trainingCenterID,
		CreatedAt:        time.Now().UTC(),
	}

	if err := athlete.Validate(); err != nil {
		return nil, err
	}

	return athlete, nil
}

// Validate checks if the Athlete has valid data.
// Returns an error if any field fails validation.
func (a *Athlete) Validate() error {
	if a.ID == uuid.Nil {
		return ErrAthleteIDEmpty
	}

	if a.Name == "" {
		return ErrAthleteNameEmpty
	}

	// Length limits count characters, matching varchar(n) semantics.
	if utf8.RuneCountInString(a.Name) > AthleteNameMaxLen {
		return ErrAthleteNameTooLong
	}

	if !validCPF(a.CPF) {
		return ErrAthleteCPFInvalid
	}

	if a.Age <= 0 {
		return ErrAthleteAgeInvalid
	}

	if a.Weight <= 0 {
		return ErrAthleteWeightInvalid
	}

	if a.Height <= 0 {
		return ErrAthleteHeightInvalid
	}

	if a.Sex != "M" && a.Sex != "F" {
		return ErrAthleteSexInvalid
	}

	if a.CategoryID == uuid.Nil {
		return ErrAthleteCategoryIDEmpty
	}

	if a.TrainingCenterID == uuid.Nil {
		return ErrAthleteTrainingCenterIDEmpty
	}

	return nil
}

// validCPF reports whether cpf is exactly eleven ASCII digits.
// Check-digit verification is intentionally out of scope.
func validCPF(cpf string) bool {
	if len(cpf) != AthleteCPFLen {
		return false
	}
	for _, r := range cpf {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
