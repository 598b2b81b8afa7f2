package domain

import (
	"fmt"
	"unicode/utf8"

	"github.com/google/uuid"
)

// Category-specific validation errors. All wrap ErrValidation so callers can
// classify them without matching each sentinel.
var (
	// ErrCategoryIDEmpty is returned when a category ID is empty or nil.
	ErrCategoryIDEmpty = fmt.Errorf("%w: category ID cannot be empty", ErrValidation)

	// ErrCategoryNameEmpty is returned when a category name is empty.
	ErrCategoryNameEmpty = fmt.Errorf("%w: category name cannot be empty", ErrValidation)

	// ErrCategoryNameTooLong is returned when a category name exceeds the limit.
	ErrCategoryNameTooLong = fmt.Errorf("%w: category name must be at most 10 characters", ErrValidation)
)

// CategoryNameMaxLen is the maximum length of a category name.
const CategoryNameMaxLen = 10

// Category represents a competition category that athletes are assigned to
// (e.g. a weight class). Athletes reference categories by ID; clients
// reference them by name.
type Category struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

// NewCategory creates a new Category with the given name.
// It generates a new UUID for the category ID.
// Returns an error if validation fails.
func NewCategory(name string) (*Category, error) {
	category := &Category{
		ID:   uuid.New(),
		Name: name,
	}

	if err := category.Validate(); err != nil {
		return nil, err
	}

	return category, nil
}

// Validate checks if the Category has valid data.
// Returns an error if any field fails validation.
func (c *Category) Validate() error {
	if c.ID == uuid.Nil {
		return ErrCategoryIDEmpty
	}

	if c.Name == "" {
		return ErrCategoryNameEmpty
	}

	// Length limits count characters, matching varchar(n) semantics.
	if utf8.RuneCountInString(c.Name) > CategoryNameMaxLen {
		return ErrCategoryNameTooLong
	}

	return nil
}
