package services

import (
	"context"
	"path/filepath"
	"testing"

	"finanzas/internal/core"
	"finanzas/internal/storage"
)

func newCategoryService(t *testing.T) *CategoryService {
	t.Helper()
	repo, err := storage.NewSQLiteRepository(filepath.Join(t.TempDir(), "finanzas.db"))
	if err != nil {
		t.Fatalf("open repository: %v", err)
	}
	t.Cleanup(func() { repo.Close() })
	return NewCategoryService(repo)
}

func TestListSeedsDefaultsOnFirstUse(t *testing.T) {
	svc := newCategoryService(t)
	ctx := context.Background()

	first, err := svc.List(ctx, "user-1")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(first) != len(core.DefaultCategories()) {
		t.Fatalf("expected seeded defaults, got %d", len(first))
	}

	// A second list must not duplicate the seed.
	second, err := svc.List(ctx, "user-1")
	if err != nil {
		t.Fatalf("second list: %v", err)
	}
	if len(second) != len(first) {
		t.Fatalf("seed duplicated: %d then %d", len(first), len(second))
	}
}

func TestListDoesNotSeedWhenUserHasCategories(t *testing.T) {
	svc := newCategoryService(t)
	ctx := context.Background()

	if _, err := svc.Create(ctx, "user-1", core.Category{Name: "Mascotas", Type: core.Expense}); err != nil {
		t.Fatalf("create: %v", err)
	}

	list, err := svc.List(ctx, "user-1")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list) != 1 {
		t.Fatalf("existing categories must suppress seeding, got %d", len(list))
	}
}

func TestCategoryValidationAtService(t *testing.T) {
	svc := newCategoryService(t)
	ctx := context.Background()

	if _, err := svc.Create(ctx, "user-1", core.Category{Name: "", Type: core.Expense}); err == nil {
		t.Fatal("expected empty name rejection")
	}
	if _, err := svc.Create(ctx, "user-1", core.Category{Name: "x", Type: "savings"}); err == nil {
		t.Fatal("expected unknown type rejection")
	}
}
