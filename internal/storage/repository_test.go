package storage

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"finanzas/internal/core"

	"github.com/shopspring/decimal"
)

func newTestRepo(t *testing.T) *SQLiteRepository {
	t.Helper()
	repo, err := NewSQLiteRepository(filepath.Join(t.TempDir(), "finanzas.db"))
	if err != nil {
		t.Fatalf("open repository: %v", err)
	}
	t.Cleanup(func() { repo.Close() })
	return repo
}

func mustDate(t *testing.T, s string) core.Date {
	t.Helper()
	d, err := core.ParseDate(s)
	if err != nil {
		t.Fatalf("parse date %q: %v", s, err)
	}
	return d
}

func TestTransactionCRUD(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	created, err := repo.CreateTransaction(ctx, core.Transaction{
		UserID:      "user-1",
		Amount:      decimal.RequireFromString("-42.50"),
		Category:    "Comida",
		Description: "mercado",
		Date:        mustDate(t, "2024-06-01"),
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.ID == 0 {
		t.Fatal("expected assigned id")
	}

	got, err := repo.GetTransaction(ctx, "user-1", created.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if !got.Amount.Equal(created.Amount) || got.Category != "Comida" || got.Date.String() != "2024-06-01" {
		t.Fatalf("round trip mismatch: %+v", got)
	}

	got.Amount = decimal.RequireFromString("-50")
	got.Description = "mercado grande"
	if _, err := repo.UpdateTransaction(ctx, got); err != nil {
		t.Fatalf("update: %v", err)
	}
	updated, err := repo.GetTransaction(ctx, "user-1", created.ID)
	if err != nil {
		t.Fatalf("get after update: %v", err)
	}
	if updated.Amount.String() != "-50" || updated.Description != "mercado grande" {
		t.Fatalf("update not applied: %+v", updated)
	}

	if err := repo.DeleteTransaction(ctx, "user-1", created.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := repo.GetTransaction(ctx, "user-1", created.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}
}

func TestTransactionsScopedByUser(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	mine, err := repo.CreateTransaction(ctx, core.Transaction{
		UserID:   "user-1",
		Amount:   decimal.RequireFromString("100"),
		Category: "Salario",
		Date:     mustDate(t, "2024-06-01"),
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if _, err := repo.GetTransaction(ctx, "user-2", mine.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected cross-user get to fail, got %v", err)
	}
	if err := repo.DeleteTransaction(ctx, "user-2", mine.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected cross-user delete to fail, got %v", err)
	}
	other, err := repo.ListTransactions(ctx, "user-2")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(other) != 0 {
		t.Fatalf("user-2 should see no rows, got %d", len(other))
	}
}

func TestListTransactionsOrderedByDateDesc(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	for _, date := range []string{"2024-06-02", "2024-06-10", "2024-06-01", "2024-06-10"} {
		_, err := repo.CreateTransaction(ctx, core.Transaction{
			UserID:   "user-1",
			Amount:   decimal.RequireFromString("-1"),
			Category: "Comida",
			Date:     mustDate(t, date),
		})
		if err != nil {
			t.Fatalf("create: %v", err)
		}
	}

	list, err := repo.ListTransactions(ctx, "user-1")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	want := []string{"2024-06-10", "2024-06-10", "2024-06-02", "2024-06-01"}
	if len(list) != len(want) {
		t.Fatalf("expected %d rows, got %d", len(want), len(list))
	}
	for i, w := range want {
		if list[i].Date.String() != w {
			t.Fatalf("position %d: expected %s, got %s", i, w, list[i].Date.String())
		}
	}
	// Same-day records come newest first.
	if list[0].ID < list[1].ID {
		t.Fatalf("same-day order should be id desc: %d before %d", list[0].ID, list[1].ID)
	}
}

func TestCategoryCRUD(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	created, err := repo.CreateCategory(ctx, core.Category{
		UserID: "user-1",
		Name:   "Mascotas",
		Type:   core.Expense,
		Color:  "#AABBCC",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	created.Name = "Mascotas y más"
	if _, err := repo.UpdateCategory(ctx, created); err != nil {
		t.Fatalf("update: %v", err)
	}

	list, err := repo.ListCategories(ctx, "user-1")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list) != 1 || list[0].Name != "Mascotas y más" {
		t.Fatalf("unexpected list: %+v", list)
	}

	if err := repo.DeleteCategory(ctx, "user-1", created.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if err := repo.DeleteCategory(ctx, "user-1", created.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestEnsureDefaultCategoriesIdempotent(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	if err := repo.EnsureDefaultCategories(ctx, "user-1"); err != nil {
		t.Fatalf("first seed: %v", err)
	}
	if err := repo.EnsureDefaultCategories(ctx, "user-1"); err != nil {
		t.Fatalf("second seed: %v", err)
	}

	list, err := repo.ListCategories(ctx, "user-1")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list) != len(core.DefaultCategories()) {
		t.Fatalf("expected %d categories after double seed, got %d",
			len(core.DefaultCategories()), len(list))
	}

	// Seeding one user never leaks into another.
	other, err := repo.ListCategories(ctx, "user-2")
	if err != nil {
		t.Fatalf("list other: %v", err)
	}
	if len(other) != 0 {
		t.Fatalf("user-2 should have no categories, got %d", len(other))
	}
}
