// Package events carries change notifications between the write path and its
// consumers: cache invalidation in the API server and the export worker.
// Registration is explicit; there is no ambient global signaling.
package events

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	applog "finanzas/internal/log"
)

const (
	ActionCreated Action = "created"
	ActionUpdated Action = "updated"
	ActionDeleted Action = "deleted"
)

// Action names the write that produced an event.
type Action string

// TransactionEvent announces a committed transaction write. Consumers refetch
// whatever they need by user; the event itself stays small.
type TransactionEvent struct {
	Action        Action    `json:"action"`
	UserID        string    `json:"user_id"`
	TransactionID int64     `json:"transaction_id"`
	Timestamp     time.Time `json:"timestamp"`
}

// NewTransactionEvent stamps an event with the current time.
func NewTransactionEvent(action Action, userID string, transactionID int64) TransactionEvent {
	return TransactionEvent{
		Action:        action,
		UserID:        userID,
		TransactionID: transactionID,
		Timestamp:     time.Now(),
	}
}

// ToJSON converts the event to JSON bytes.
func (e TransactionEvent) ToJSON() ([]byte, error) {
	return json.Marshal(e)
}

// TransactionEventFromJSON parses an event from JSON bytes.
func TransactionEventFromJSON(data []byte) (*TransactionEvent, error) {
	var e TransactionEvent
	if err := json.Unmarshal(data, &e); err != nil {
		return nil, err
	}
	return &e, nil
}

// Publisher is the write path's outbound port for change notifications.
type Publisher interface {
	PublishTransactionEvent(ctx context.Context, e TransactionEvent) error
}

// Handler consumes one event. Errors are the consumer's to report; the
// dispatcher only logs them.
type Handler func(ctx context.Context, e TransactionEvent) error

// Dispatcher is the in-process Publisher for single-instance deployments:
// handlers subscribe once at startup and run synchronously on publish.
type Dispatcher struct {
	mu       sync.RWMutex
	handlers []Handler
}

func NewDispatcher() *Dispatcher {
	return &Dispatcher{}
}

// Subscribe registers a handler for all subsequent events.
func (d *Dispatcher) Subscribe(h Handler) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.handlers = append(d.handlers, h)
}

// PublishTransactionEvent delivers the event to every subscriber. A failing
// handler never blocks the others or the write that triggered the event.
func (d *Dispatcher) PublishTransactionEvent(ctx context.Context, e TransactionEvent) error {
	d.mu.RLock()
	handlers := make([]Handler, len(d.handlers))
	copy(handlers, d.handlers)
	d.mu.RUnlock()

	for _, h := range handlers {
		if err := h(ctx, e); err != nil {
			slog.ErrorContext(ctx, "Event handler failed",
				"action", e.Action,
				applog.FieldUserID, e.UserID,
				"transaction_id", e.TransactionID,
				applog.FieldError, err)
		}
	}
	return nil
}
