package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/shopspring/decimal"

	"finanzas/internal/core"
	applog "finanzas/internal/log"
)

// summaryResponse is the dashboard payload. Monetary values are fixed to two
// decimal places as strings; percent shares are of total expenses.
type summaryResponse struct {
	Period        summaryPeriod     `json:"period"`
	TotalIncome   string            `json:"total_income"`
	TotalExpenses string            `json:"total_expenses"`
	Balance       string            `json:"balance"`
	Count         int               `json:"count"`
	ByCategory    []categorySummary `json:"by_category"`
}

type summaryPeriod struct {
	From string `json:"from,omitempty"`
	To   string `json:"to,omitempty"`
}

type categorySummary struct {
	Category         string `json:"category"`
	Amount           string `json:"amount"`
	PercentOfExpense string `json:"percent_of_expense"`
}

func (s *Server) handleSummary(w http.ResponseWriter, r *http.Request) {
	user := userFrom(r.Context())
	dateRange := parseRange(r.URL.Query(), time.Now())

	key := s.summaryCacheKey(user.ID, dateRange)
	if cached, ok := s.summaryCache.Get(key); ok {
		writeJSON(w, http.StatusOK, buildSummaryResponse(cached, dateRange))
		return
	}

	summary, err := s.transactions.Summary(r.Context(), user.ID, dateRange)
	if err != nil {
		// A failed read renders as an all-zero summary rather than an error;
		// the degraded result is never cached.
		slog.ErrorContext(r.Context(), "Failed to compute summary, returning zero totals",
			applog.FieldUserID, user.ID,
			applog.FieldError, err)
		writeJSON(w, http.StatusOK, buildSummaryResponse(core.Summary{}, dateRange))
		return
	}
	s.summaryCache.Set(key, summary)

	writeJSON(w, http.StatusOK, buildSummaryResponse(summary, dateRange))
}

func buildSummaryResponse(summary core.Summary, r core.DateRange) summaryResponse {
	byCategory := make([]categorySummary, 0, len(summary.Breakdown))
	hundred := decimal.NewFromInt(100)
	for _, g := range summary.Breakdown {
		percent := decimal.Zero
		if summary.Expenses.Sign() > 0 {
			percent = g.Value.Mul(hundred).DivRound(summary.Expenses, 2)
		}
		byCategory = append(byCategory, categorySummary{
			Category:         g.Category,
			Amount:           g.Value.StringFixed(2),
			PercentOfExpense: percent.StringFixed(2),
		})
	}

	return summaryResponse{
		Period: summaryPeriod{
			From: r.Start.String(),
			To:   r.End.String(),
		},
		TotalIncome:   summary.Income.StringFixed(2),
		TotalExpenses: summary.Expenses.StringFixed(2),
		Balance:       summary.Balance.StringFixed(2),
		Count:         len(summary.Filtered),
		ByCategory:    byCategory,
	}
}
