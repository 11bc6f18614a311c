package services

import (
	"context"
	"fmt"

	"finanzas/internal/core"
	"finanzas/internal/storage"
)

// CategoryService owns category CRUD and first-use seeding.
type CategoryService struct {
	storage *storage.SQLiteRepository
}

func NewCategoryService(storage *storage.SQLiteRepository) *CategoryService {
	return &CategoryService{storage: storage}
}

// List returns the user's categories, seeding the default set first when the
// user has none. Seeding is idempotent at the database level, so re-renders
// and concurrent first requests cannot duplicate it.
func (s *CategoryService) List(ctx context.Context, userID string) ([]core.Category, error) {
	categories, err := s.storage.ListCategories(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	if len(categories) > 0 {
		return categories, nil
	}

	if err := s.storage.EnsureDefaultCategories(ctx, userID); err != nil {
		return nil, fmt.Errorf("seed default categories: %w", err)
	}
	categories, err = s.storage.ListCategories(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list categories after seed: %w", err)
	}
	return categories, nil
}

func (s *CategoryService) Create(ctx context.Context, userID string, c core.Category) (core.Category, error) {
	c.UserID = userID
	if err := c.Validate(); err != nil {
		return core.Category{}, err
	}

	created, err := s.storage.CreateCategory(ctx, c)
	if err != nil {
		return core.Category{}, fmt.Errorf("create category: %w", err)
	}
	return created, nil
}

func (s *CategoryService) Update(ctx context.Context, userID string, id int64, c core.Category) (core.Category, error) {
	c.ID = id
	c.UserID = userID
	if err := c.Validate(); err != nil {
		return core.Category{}, err
	}

	updated, err := s.storage.UpdateCategory(ctx, c)
	if err != nil {
		return core.Category{}, fmt.Errorf("update category %d: %w", id, err)
	}
	return updated, nil
}

// Delete removes a category. Transactions recorded against it keep their
// original category text and keep aggregating under that label.
func (s *CategoryService) Delete(ctx context.Context, userID string, id int64) error {
	if err := s.storage.DeleteCategory(ctx, userID, id); err != nil {
		return fmt.Errorf("delete category %d: %w", id, err)
	}
	return nil
}
