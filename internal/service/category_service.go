package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/google/uuid"
	"github.com/phrazzld/workout-api/internal/domain"
	"github.com/phrazzld/workout-api/internal/store"
)

// CategoryService provides category-related operations.
type CategoryService interface {
	// Create persists a new category with the given name.
	Create(ctx context.Context, name string) (*domain.Category, error)

	// List retrieves all categories in name order.
	List(ctx context.Context) ([]*domain.Category, error)

	// GetByID retrieves a category by its ID.
	// Returns ErrCategoryNotFound if the category does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Category, error)
}

// categoryServiceImpl implements the CategoryService interface
type categoryServiceImpl struct {
	categories store.CategoryStore
	logger     *slog.Logger
}

// NewCategoryService creates a new CategoryService.
// It returns an error if the store dependency is nil.
func NewCategoryService(categories store.CategoryStore, logger *slog.Logger) (CategoryService, error) {
	if categories == nil {
		return nil, &ServiceError{Operation: "create_service", Message: "categories store cannot be nil"}
	}

	// Use provided logger or create default
	if logger == nil {
		logger = slog.Default()
	}

	return &categoryServiceImpl{
		categories: categories,
		logger:     logger.With("component", "category_service"),
	}, nil
}

// Create implements CategoryService.Create
func (s *categoryServiceImpl) Create(ctx context.Context, name string) (*domain.Category, error) {
	category, err := domain.NewCategory(name)
	if err != nil {
		s.logger.Error("failed to create category object", "error", err)
		return nil, &ServiceError{
			Operation: "create_category",
			Message:   "failed to create category object",
			Err:       err,
		}
	}

	if err := s.categories.Create(ctx, category); err != nil {
		s.logger.Error("failed to create category", "error", err, "name", name)
		return nil, err
	}

	s.logger.Info("category created successfully",
		"category_id", category.ID,
		"name", category.Name)
	return category, nil
}

// List implements CategoryService.List
func (s *categoryServiceImpl) List(ctx context.Context) ([]*domain.Category, error) {
	categories, err := s.categories.List(ctx)
	if err != nil {
		return nil, &ServiceError{
			Operation: "list_categories",
			Message:   "failed to list categories",
			Err:       err,
		}
	}
	return categories, nil
}

// GetByID implements CategoryService.GetByID
func (s *categoryServiceImpl) GetByID(ctx context.Context, id uuid.UUID) (*domain.Category, error) {
	category, err := s.categories.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrCategoryNotFound) {
			return nil, ErrCategoryNotFound
		}
		return nil, &ServiceError{
			Operation: "get_category",
			Message:   "failed to get category",
			Err:       err,
		}
	}
	return category, nil
}
