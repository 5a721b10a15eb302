package services

import (
	"context"
	"errors"
	"strings"

	"github.com/taingysrun-volunteer/event-management-system-backend/internal/models"
	"github.com/taingysrun-volunteer/event-management-system-backend/internal/repositories"
)

//go:generate mockgen -source=category.go -destination=category_mock.go -package=services

// Error variables
var (
	ErrCategoryNotFound = errors.New("category not found")
	ErrCategoryExists   = errors.New("category name already exists")
	ErrCategoryInvalid  = errors.New("category name is required")
)

// CategoryStore defines persistence operations for categories.
type CategoryStore interface {
	Save(ctx context.Context, category models.CategoryDB) (*models.CategoryDB, error)
	GetByID(ctx context.Context, id int64) (*models.CategoryDB, error)
	List(ctx context.Context) ([]models.CategoryDB, error)
	Update(ctx context.Context, category models.CategoryDB) (*models.CategoryDB, error)
	Delete(ctx context.Context, id int64) error
}

// CategoryService manages event categories.
type CategoryService struct {
	categories CategoryStore
}

func NewCategoryService(categories CategoryStore) *CategoryService {
	return &CategoryService{categories: categories}
}

func (s *CategoryService) Create(ctx context.Context, category models.CategoryDB) (*models.CategoryDB, error) {
	category.Name = strings.TrimSpace(category.Name)
	if category.Name == "" {
		return nil, ErrCategoryInvalid
	}

	created, err := s.categories.Save(ctx, category)
	if err != nil {
		if repositories.IsUniqueViolation(err) {
			return nil, ErrCategoryExists
		}
		return nil, err
	}
	return created, nil
}

func (s *CategoryService) Get(ctx context.Context, id int64) (*models.CategoryDB, error) {
	category, err := s.categories.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrCategoryNotFound
		}
		return nil, err
	}
	return category, nil
}

func (s *CategoryService) List(ctx context.Context) ([]models.CategoryDB, error) {
	return s.categories.List(ctx)
}

func (s *CategoryService) Update(ctx context.Context, category models.CategoryDB) (*models.CategoryDB, error) {
	category.Name = strings.TrimSpace(category.Name)
	if category.Name == "" {
		return nil, ErrCategoryInvalid
	}

	updated, err := s.categories.Update(ctx, category)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrCategoryNotFound
		}
		if repositories.IsUniqueViolation(err) {
			return nil, ErrCategoryExists
		}
		return nil, err
	}
	return updated, nil
}

func (s *CategoryService) Delete(ctx context.Context, id int64) error {
	if err := s.categories.Delete(ctx, id); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrCategoryNotFound
		}
		return err
	}
	return nil
}
