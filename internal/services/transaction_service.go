// Package services orchestrates the domain operations over storage and the
// event bus: input validation, amount sign normalization, and change
// notification after committed writes.
package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"finanzas/internal/core"
	"finanzas/internal/events"
	applog "finanzas/internal/log"
	"finanzas/internal/storage"
)

// TransactionService owns the transaction write path and the read snapshots
// the aggregator consumes.
type TransactionService struct {
	storage   *storage.SQLiteRepository
	publisher events.Publisher
}

func NewTransactionService(storage *storage.SQLiteRepository, publisher events.Publisher) *TransactionService {
	return &TransactionService{
		storage:   storage,
		publisher: publisher,
	}
}

// Create validates the input, derives the signed amount from the declared
// type, and persists the record. The stored record is returned directly so
// the caller can merge it by id instead of refetching the whole collection.
func (s *TransactionService) Create(ctx context.Context, userID string, in core.TransactionInput) (core.Transaction, error) {
	if err := in.Validate(time.Now()); err != nil {
		return core.Transaction{}, err
	}

	created, err := s.storage.CreateTransaction(ctx, core.Transaction{
		UserID:      userID,
		Amount:      core.SignedAmount(in.Type, in.Amount),
		Category:    in.Category,
		Description: in.Description,
		Date:        in.Date,
	})
	if err != nil {
		return core.Transaction{}, fmt.Errorf("create transaction: %w", err)
	}

	s.notify(ctx, events.ActionCreated, userID, created.ID)
	return created, nil
}

// Update applies a partial update in place, preserving the id. When type or
// amount change, the sign is re-derived so the stored amount always matches
// the effective type.
func (s *TransactionService) Update(ctx context.Context, userID string, id int64, upd core.TransactionUpdate) (core.Transaction, error) {
	existing, err := s.storage.GetTransaction(ctx, userID, id)
	if err != nil {
		return core.Transaction{}, fmt.Errorf("load transaction %d: %w", id, err)
	}

	effectiveType := existing.Type()
	if upd.Type != nil {
		effectiveType = *upd.Type
	}
	magnitude := existing.Amount.Abs()
	if upd.Amount != nil {
		magnitude = *upd.Amount
	}
	if upd.Category != nil {
		existing.Category = *upd.Category
	}
	if upd.Description != nil {
		existing.Description = *upd.Description
	}
	if upd.Date != nil {
		existing.Date = *upd.Date
	}

	in := core.TransactionInput{
		Type:        effectiveType,
		Amount:      magnitude,
		Category:    existing.Category,
		Description: existing.Description,
		Date:        existing.Date,
	}
	if err := in.Validate(time.Now()); err != nil {
		return core.Transaction{}, err
	}
	existing.Amount = core.SignedAmount(effectiveType, magnitude)

	updated, err := s.storage.UpdateTransaction(ctx, existing)
	if err != nil {
		return core.Transaction{}, fmt.Errorf("update transaction %d: %w", id, err)
	}

	s.notify(ctx, events.ActionUpdated, userID, id)
	return updated, nil
}

// Delete removes a transaction by id.
func (s *TransactionService) Delete(ctx context.Context, userID string, id int64) error {
	if err := s.storage.DeleteTransaction(ctx, userID, id); err != nil {
		return fmt.Errorf("delete transaction %d: %w", id, err)
	}

	s.notify(ctx, events.ActionDeleted, userID, id)
	return nil
}

// List returns the user's transactions within r, date-descending.
func (s *TransactionService) List(ctx context.Context, userID string, r core.DateRange) ([]core.Transaction, error) {
	all, err := s.storage.ListTransactions(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list transactions: %w", err)
	}
	return core.FilterByRange(all, r), nil
}

// Summary aggregates the user's transactions within r. Each call reduces a
// fresh immutable snapshot; nothing is retained between calls.
func (s *TransactionService) Summary(ctx context.Context, userID string, r core.DateRange) (core.Summary, error) {
	all, err := s.storage.ListTransactions(ctx, userID)
	if err != nil {
		return core.Summary{}, fmt.Errorf("list transactions for summary: %w", err)
	}
	return core.Summarize(all, r), nil
}

// notify publishes a change event. Publish failures are logged, never
// propagated: the write already committed and the API response must say so.
func (s *TransactionService) notify(ctx context.Context, action events.Action, userID string, id int64) {
	if s.publisher == nil {
		return
	}
	e := events.NewTransactionEvent(action, userID, id)
	if err := s.publisher.PublishTransactionEvent(ctx, e); err != nil {
		slog.ErrorContext(ctx, "Failed to publish transaction event",
			"action", action,
			applog.FieldUserID, userID,
			"transaction_id", id,
			applog.FieldError, err)
	}
}
