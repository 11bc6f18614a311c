package export

import (
	"context"
	"sync"

	"finanzas/internal/core"
)

// MemoryExporter retains the latest snapshot per user in memory. It backs
// tests and local development without spreadsheet credentials.
type MemoryExporter struct {
	mu        sync.Mutex
	snapshots map[string][]core.Transaction
}

var _ Exporter = (*MemoryExporter)(nil)

func NewMemoryExporter() *MemoryExporter {
	return &MemoryExporter{snapshots: make(map[string][]core.Transaction)}
}

func (e *MemoryExporter) ExportTransactions(_ context.Context, userID string, transactions []core.Transaction) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	snapshot := make([]core.Transaction, len(transactions))
	copy(snapshot, transactions)
	e.snapshots[userID] = snapshot
	return nil
}

// Snapshot returns the last exported snapshot for a user, or nil.
func (e *MemoryExporter) Snapshot(userID string) []core.Transaction {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.snapshots[userID]
}
