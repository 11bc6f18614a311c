package export

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"

	"finanzas/internal/core"
	"finanzas/internal/events"
	"finanzas/internal/storage"
)

func newWorkerFixture(t *testing.T) (*Worker, *storage.SQLiteRepository, *MemoryExporter) {
	t.Helper()

	repo, err := storage.NewSQLiteRepository(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("creating repository: %v", err)
	}
	t.Cleanup(func() { repo.Close() })

	exporter := NewMemoryExporter()
	return NewWorker(repo, exporter), repo, exporter
}

func TestWorkerExportsUserSnapshot(t *testing.T) {
	w, repo, exporter := newWorkerFixture(t)
	ctx := context.Background()

	created, err := repo.CreateTransaction(ctx, core.Transaction{
		UserID:   "user-1",
		Amount:   decimal.RequireFromString("-42.10"),
		Category: "Comida",
		Date:     core.NewDate(2025, 6, 1),
	})
	if err != nil {
		t.Fatalf("seed transaction: %v", err)
	}
	if _, err := repo.CreateTransaction(ctx, core.Transaction{
		UserID:   "user-2",
		Amount:   decimal.NewFromInt(500),
		Category: "Salario",
		Date:     core.NewDate(2025, 6, 2),
	}); err != nil {
		t.Fatalf("seed other user: %v", err)
	}

	e := events.NewTransactionEvent(events.ActionCreated, "user-1", created.ID)
	if err := w.HandleTransactionEvent(ctx, e); err != nil {
		t.Fatalf("handle event: %v", err)
	}

	snapshot := exporter.Snapshot("user-1")
	if len(snapshot) != 1 {
		t.Fatalf("snapshot length: got %d, want 1", len(snapshot))
	}
	if snapshot[0].Category != "Comida" {
		t.Errorf("unexpected snapshot record: %+v", snapshot[0])
	}
	if exporter.Snapshot("user-2") != nil {
		t.Error("event for user-1 must not export user-2")
	}
}

func TestWorkerExportAfterDeleteIsEmptySnapshot(t *testing.T) {
	w, repo, exporter := newWorkerFixture(t)
	ctx := context.Background()

	created, err := repo.CreateTransaction(ctx, core.Transaction{
		UserID:   "user-1",
		Amount:   decimal.NewFromInt(-10),
		Category: "Comida",
		Date:     core.NewDate(2025, 6, 1),
	})
	if err != nil {
		t.Fatalf("seed transaction: %v", err)
	}
	if err := repo.DeleteTransaction(ctx, "user-1", created.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}

	e := events.NewTransactionEvent(events.ActionDeleted, "user-1", created.ID)
	if err := w.HandleTransactionEvent(ctx, e); err != nil {
		t.Fatalf("handle event: %v", err)
	}

	if got := exporter.Snapshot("user-1"); len(got) != 0 || got == nil {
		t.Errorf("deleted user snapshot: got %v, want empty non-nil", got)
	}
}
