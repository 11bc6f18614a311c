package http

import (
	"log/slog"
	"net/http"
	"time"

	"finanzas/internal/core"
	applog "finanzas/internal/log"
)

// transactionRequest is the create payload. Amount is the unsigned magnitude
// as a string; the sign is derived from Type server-side.
type transactionRequest struct {
	Type        string `json:"type"`
	Amount      string `json:"amount"`
	Category    string `json:"category"`
	Description string `json:"description"`
	Date        string `json:"date"`
}

// transactionUpdateRequest is the partial update payload; absent fields are
// left untouched.
type transactionUpdateRequest struct {
	Type        *string `json:"type"`
	Amount      *string `json:"amount"`
	Category    *string `json:"category"`
	Description *string `json:"description"`
	Date        *string `json:"date"`
}

type transactionListResponse struct {
	Transactions []core.Transaction `json:"transactions"`
	Count        int                `json:"count"`
}

func (s *Server) handleListTransactions(w http.ResponseWriter, r *http.Request) {
	user := userFrom(r.Context())
	dateRange := parseRange(r.URL.Query(), time.Now())

	transactions, err := s.transactions.List(r.Context(), user.ID, dateRange)
	if err != nil {
		// Reads degrade to an empty collection; the diagnostic goes to the
		// log, not the client.
		slog.ErrorContext(r.Context(), "Failed to list transactions, returning empty collection",
			applog.FieldUserID, user.ID,
			applog.FieldError, err)
		transactions = nil
	}
	if transactions == nil {
		transactions = []core.Transaction{}
	}

	writeJSON(w, http.StatusOK, transactionListResponse{
		Transactions: transactions,
		Count:        len(transactions),
	})
}

func (s *Server) handleCreateTransaction(w http.ResponseWriter, r *http.Request) {
	user := userFrom(r.Context())

	var req transactionRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	in, err := req.toInput()
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	created, err := s.transactions.Create(r.Context(), user.ID, in)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, created)
}

func (s *Server) handleUpdateTransaction(w http.ResponseWriter, r *http.Request) {
	user := userFrom(r.Context())

	id, err := parseID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	var req transactionUpdateRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	upd, err := req.toUpdate()
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	updated, err := s.transactions.Update(r.Context(), user.ID, id, upd)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, updated)
}

func (s *Server) handleDeleteTransaction(w http.ResponseWriter, r *http.Request) {
	user := userFrom(r.Context())

	id, err := parseID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := s.transactions.Delete(r.Context(), user.ID, id); err != nil {
		writeServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (req transactionRequest) toInput() (core.TransactionInput, error) {
	amount, err := core.ParseAmount(req.Amount)
	if err != nil {
		return core.TransactionInput{}, err
	}
	date, err := core.ParseDate(req.Date)
	if err != nil {
		return core.TransactionInput{}, core.ErrInvalidDate
	}
	return core.TransactionInput{
		Type:        core.TransactionType(req.Type),
		Amount:      amount,
		Category:    sanitizeInput(req.Category),
		Description: sanitizeInput(req.Description),
		Date:        date,
	}, nil
}

func (req transactionUpdateRequest) toUpdate() (core.TransactionUpdate, error) {
	var upd core.TransactionUpdate

	if req.Type != nil {
		t := core.TransactionType(*req.Type)
		upd.Type = &t
	}
	if req.Amount != nil {
		amount, err := core.ParseAmount(*req.Amount)
		if err != nil {
			return core.TransactionUpdate{}, err
		}
		upd.Amount = &amount
	}
	if req.Category != nil {
		category := sanitizeInput(*req.Category)
		upd.Category = &category
	}
	if req.Description != nil {
		description := sanitizeInput(*req.Description)
		upd.Description = &description
	}
	if req.Date != nil {
		date, err := core.ParseDate(*req.Date)
		if err != nil {
			return core.TransactionUpdate{}, core.ErrInvalidDate
		}
		upd.Date = &date
	}
	return upd, nil
}
