package core

import (
	"errors"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

const (
	Income  TransactionType = "income"
	Expense TransactionType = "expense"
)

type (
	// TransactionType selects the sign applied to a transaction amount.
	TransactionType string

	// Transaction is one recorded money movement. The sign of Amount is the
	// ground truth for income/expense classification; magnitude is > 0 for
	// every valid record.
	Transaction struct {
		ID          int64           `json:"id"`
		UserID      string          `json:"-"`
		Amount      decimal.Decimal `json:"amount"`
		Category    string          `json:"category"`
		Description string          `json:"description"`
		Date        Date            `json:"date"`
	}

	// Category is a user-owned label for classifying transactions. Its Type
	// constrains which entry forms offer it; the aggregator never consults it.
	Category struct {
		ID     int64           `json:"id"`
		UserID string          `json:"-"`
		Name   string          `json:"name"`
		Type   TransactionType `json:"type"`
		Color  string          `json:"color"`
	}

	// TransactionInput carries the fields of a create request. Amount is the
	// unsigned magnitude; the sign is derived from Type before the record
	// reaches storage.
	TransactionInput struct {
		Type        TransactionType
		Amount      decimal.Decimal
		Category    string
		Description string
		Date        Date
	}

	// TransactionUpdate carries a partial update; nil fields are left as-is.
	TransactionUpdate struct {
		Type        *TransactionType
		Amount      *decimal.Decimal
		Category    *string
		Description *string
		Date        *Date
	}
)

var (
	ErrInvalidAmount    = errors.New("invalid amount")
	ErrInvalidType      = errors.New("invalid transaction type")
	ErrInvalidDate      = errors.New("invalid date")
	ErrFutureDate       = errors.New("date cannot be in the future")
	ErrEmptyCategory    = errors.New("empty category")
	ErrEmptyName        = errors.New("empty name")
	ErrDescriptionLimit = errors.New("description too long (max 200 characters)")
)

// Valid reports whether t is a known transaction type token.
func (t TransactionType) Valid() bool {
	return t == Income || t == Expense
}

// Validate checks a create request against a reference instant. The date must
// be a real calendar date no later than ref's calendar date; the amount is the
// unsigned magnitude and must be strictly positive.
func (in TransactionInput) Validate(ref time.Time) error {
	if !in.Type.Valid() {
		return ErrInvalidType
	}
	if in.Amount.Sign() <= 0 {
		return ErrInvalidAmount
	}
	if in.Date.IsZero() {
		return ErrInvalidDate
	}
	if in.Date.After(DateOf(ref).Time) {
		return ErrFutureDate
	}
	if strings.TrimSpace(in.Category) == "" {
		return ErrEmptyCategory
	}
	if len(in.Description) > 200 {
		return ErrDescriptionLimit
	}
	return nil
}

func (c Category) Validate() error {
	if strings.TrimSpace(c.Name) == "" {
		return ErrEmptyName
	}
	if !c.Type.Valid() {
		return ErrInvalidType
	}
	return nil
}

// Type reports the classification encoded by the amount sign. Zero-amount
// records belong to neither side.
func (t Transaction) Type() TransactionType {
	if t.Amount.Sign() < 0 {
		return Expense
	}
	return Income
}

// DefaultCategories returns the seed set created for a user with no
// categories: six expense and four income labels.
func DefaultCategories() []Category {
	return []Category{
		{Name: "Comida", Type: Expense, Color: "#FF6B6B"},
		{Name: "Transporte", Type: Expense, Color: "#4ECDC4"},
		{Name: "Entretenimiento", Type: Expense, Color: "#45B7D1"},
		{Name: "Salud", Type: Expense, Color: "#96CEB4"},
		{Name: "Educación", Type: Expense, Color: "#FFEAA7"},
		{Name: "Servicios", Type: Expense, Color: "#DDA0DD"},
		{Name: "Salario", Type: Income, Color: "#48BB78"},
		{Name: "Freelance", Type: Income, Color: "#38A169"},
		{Name: "Inversiones", Type: Income, Color: "#2F855A"},
		{Name: "Regalos", Type: Income, Color: "#68D391"},
	}
}
