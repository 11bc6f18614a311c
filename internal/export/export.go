// Package export mirrors a user's transaction history to an external
// spreadsheet. The export is a full snapshot per user: simpler to reason
// about than incremental edits, and naturally idempotent under event replay.
package export

import (
	"context"
	"strings"

	"finanzas/internal/core"
)

// Exporter writes a user's full transaction snapshot to an external sink.
type Exporter interface {
	ExportTransactions(ctx context.Context, userID string, transactions []core.Transaction) error
}

var header = []any{"Date", "Type", "Category", "Description", "Amount"}

// buildRows renders transactions as spreadsheet rows, header first. Amounts
// are signed and fixed to two decimal places.
func buildRows(transactions []core.Transaction) [][]any {
	rows := make([][]any, 0, len(transactions)+1)
	rows = append(rows, header)
	for _, t := range transactions {
		rows = append(rows, []any{
			t.Date.String(),
			string(t.Type()),
			t.Category,
			t.Description,
			t.Amount.StringFixed(2),
		})
	}
	return rows
}

// sheetNameFor derives a per-user tab title from the user id. Characters the
// Sheets API rejects in titles are replaced, and long ids are truncated.
func sheetNameFor(userID string) string {
	name := strings.Map(func(r rune) rune {
		switch r {
		case '[', ']', '*', '/', '\\', '?', ':':
			return '_'
		}
		return r
	}, userID)
	if len(name) > 80 {
		name = name[:80]
	}
	return name
}
