package export

import (
	"context"
	"fmt"
	"log/slog"

	"finanzas/internal/events"
	applog "finanzas/internal/log"
	"finanzas/internal/storage"
)

// Worker turns transaction events into snapshot exports. Each event triggers
// a full re-export of the affected user, so the handler is safe to retry and
// event order does not matter.
type Worker struct {
	repo     *storage.SQLiteRepository
	exporter Exporter
}

func NewWorker(repo *storage.SQLiteRepository, exporter Exporter) *Worker {
	return &Worker{repo: repo, exporter: exporter}
}

// HandleTransactionEvent re-exports the user named by the event. The error
// return lets the consumer requeue the event on transient failures.
func (w *Worker) HandleTransactionEvent(ctx context.Context, e events.TransactionEvent) error {
	transactions, err := w.repo.ListTransactions(ctx, e.UserID)
	if err != nil {
		return fmt.Errorf("list transactions for export: %w", err)
	}

	if err := w.exporter.ExportTransactions(ctx, e.UserID, transactions); err != nil {
		return fmt.Errorf("export snapshot for %s: %w", e.UserID, err)
	}

	slog.InfoContext(ctx, "Snapshot export completed",
		applog.FieldUserID, e.UserID,
		"action", e.Action,
		"transaction_id", e.TransactionID)
	return nil
}
