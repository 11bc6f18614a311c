// Package storage persists transactions and categories in SQLite. Every query
// is scoped by user id; callers never see another user's rows.
package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"finanzas/internal/core"
	applog "finanzas/internal/log"

	"github.com/shopspring/decimal"
	_ "modernc.org/sqlite"
)

// ErrNotFound is returned when an id does not exist for the requesting user.
var ErrNotFound = errors.New("record not found")

type SQLiteRepository struct {
	db *sql.DB
}

func NewSQLiteRepository(dbPath string) (*SQLiteRepository, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("create db directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	if err := RunMigrations(dbPath); err != nil {
		db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return &SQLiteRepository{db: db}, nil
}

func (r *SQLiteRepository) Close() error {
	if r.db != nil {
		return r.db.Close()
	}
	return nil
}

// Ping reports whether the database is reachable, for readiness checks.
func (r *SQLiteRepository) Ping(ctx context.Context) error {
	return r.db.PingContext(ctx)
}

// ListTransactions returns the user's full collection ordered by date
// descending, newest id first within a day. The aggregator relies on this
// order being stable; it never re-sorts.
func (r *SQLiteRepository) ListTransactions(ctx context.Context, userID string) ([]core.Transaction, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, user_id, amount, category, description, date
		FROM transactions
		WHERE user_id = ?
		ORDER BY date DESC, id DESC`, userID)
	if err != nil {
		return nil, fmt.Errorf("list transactions: %w", err)
	}
	defer rows.Close()

	var transactions []core.Transaction
	for rows.Next() {
		t, err := scanTransaction(rows)
		if err != nil {
			return nil, err
		}
		transactions = append(transactions, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate transactions: %w", err)
	}

	return transactions, nil
}

// GetTransaction fetches one transaction, enforcing ownership.
func (r *SQLiteRepository) GetTransaction(ctx context.Context, userID string, id int64) (core.Transaction, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, user_id, amount, category, description, date
		FROM transactions
		WHERE id = ? AND user_id = ?`, id, userID)

	t, err := scanTransaction(row)
	if errors.Is(err, sql.ErrNoRows) {
		return core.Transaction{}, ErrNotFound
	}
	if err != nil {
		return core.Transaction{}, err
	}
	return t, nil
}

// CreateTransaction inserts a record and returns it with its assigned id, so
// callers can merge it into local state without a refetch round-trip.
func (r *SQLiteRepository) CreateTransaction(ctx context.Context, t core.Transaction) (core.Transaction, error) {
	res, err := r.db.ExecContext(ctx, `
		INSERT INTO transactions (user_id, amount, category, description, date)
		VALUES (?, ?, ?, ?, ?)`,
		t.UserID, t.Amount.String(), t.Category, t.Description, t.Date.String())
	if err != nil {
		return core.Transaction{}, fmt.Errorf("create transaction: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return core.Transaction{}, fmt.Errorf("transaction insert id: %w", err)
	}
	t.ID = id

	slog.InfoContext(ctx, "Transaction saved",
		"id", t.ID,
		applog.FieldUserID, t.UserID,
		applog.FieldAmount, t.Amount.String(),
		applog.FieldCategory, t.Category,
		applog.FieldDate, t.Date.String())

	return t, nil
}

// UpdateTransaction replaces the mutable fields of a record in place,
// preserving its id. The caller supplies the fully merged record.
func (r *SQLiteRepository) UpdateTransaction(ctx context.Context, t core.Transaction) (core.Transaction, error) {
	res, err := r.db.ExecContext(ctx, `
		UPDATE transactions
		SET amount = ?, category = ?, description = ?, date = ?, updated_at = CURRENT_TIMESTAMP
		WHERE id = ? AND user_id = ?`,
		t.Amount.String(), t.Category, t.Description, t.Date.String(), t.ID, t.UserID)
	if err != nil {
		return core.Transaction{}, fmt.Errorf("update transaction: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return core.Transaction{}, ErrNotFound
	}

	return t, nil
}

func (r *SQLiteRepository) DeleteTransaction(ctx context.Context, userID string, id int64) error {
	res, err := r.db.ExecContext(ctx, `
		DELETE FROM transactions WHERE id = ? AND user_id = ?`, id, userID)
	if err != nil {
		return fmt.Errorf("delete transaction: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrNotFound
	}

	slog.InfoContext(ctx, "Transaction deleted", "id", id, applog.FieldUserID, userID)
	return nil
}

// ListCategories returns the user's categories ordered by name.
func (r *SQLiteRepository) ListCategories(ctx context.Context, userID string) ([]core.Category, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, user_id, name, type, color
		FROM categories
		WHERE user_id = ?
		ORDER BY name`, userID)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	defer rows.Close()

	var categories []core.Category
	for rows.Next() {
		var c core.Category
		if err := rows.Scan(&c.ID, &c.UserID, &c.Name, &c.Type, &c.Color); err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		categories = append(categories, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate categories: %w", err)
	}

	return categories, nil
}

func (r *SQLiteRepository) CreateCategory(ctx context.Context, c core.Category) (core.Category, error) {
	res, err := r.db.ExecContext(ctx, `
		INSERT INTO categories (user_id, name, type, color)
		VALUES (?, ?, ?, ?)`,
		c.UserID, c.Name, c.Type, c.Color)
	if err != nil {
		return core.Category{}, fmt.Errorf("create category: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return core.Category{}, fmt.Errorf("category insert id: %w", err)
	}
	c.ID = id

	return c, nil
}

func (r *SQLiteRepository) UpdateCategory(ctx context.Context, c core.Category) (core.Category, error) {
	res, err := r.db.ExecContext(ctx, `
		UPDATE categories
		SET name = ?, type = ?, color = ?
		WHERE id = ? AND user_id = ?`,
		c.Name, c.Type, c.Color, c.ID, c.UserID)
	if err != nil {
		return core.Category{}, fmt.Errorf("update category: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return core.Category{}, ErrNotFound
	}

	return c, nil
}

func (r *SQLiteRepository) DeleteCategory(ctx context.Context, userID string, id int64) error {
	res, err := r.db.ExecContext(ctx, `
		DELETE FROM categories WHERE id = ? AND user_id = ?`, id, userID)
	if err != nil {
		return fmt.Errorf("delete category: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrNotFound
	}

	return nil
}

// EnsureDefaultCategories seeds the default set for a user. Idempotent: the
// UNIQUE(user_id, name, type) constraint plus INSERT OR IGNORE make repeated
// calls harmless, whatever order concurrent first requests arrive in.
func (r *SQLiteRepository) EnsureDefaultCategories(ctx context.Context, userID string) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin seed transaction: %w", err)
	}
	defer tx.Rollback()

	for _, c := range core.DefaultCategories() {
		_, err := tx.ExecContext(ctx, `
			INSERT OR IGNORE INTO categories (user_id, name, type, color)
			VALUES (?, ?, ?, ?)`,
			userID, c.Name, c.Type, c.Color)
		if err != nil {
			return fmt.Errorf("seed category %q: %w", c.Name, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit seed transaction: %w", err)
	}

	slog.InfoContext(ctx, "Default categories ensured", applog.FieldUserID, userID)
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanTransaction(row rowScanner) (core.Transaction, error) {
	var (
		t         core.Transaction
		amountStr string
		dateStr   string
	)
	if err := row.Scan(&t.ID, &t.UserID, &amountStr, &t.Category, &t.Description, &dateStr); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return core.Transaction{}, err
		}
		return core.Transaction{}, fmt.Errorf("scan transaction: %w", err)
	}

	amount, err := decimal.NewFromString(amountStr)
	if err != nil {
		return core.Transaction{}, fmt.Errorf("parse stored amount %q: %w", amountStr, err)
	}
	t.Amount = amount

	// A date that no longer parses degrades to the zero date; the aggregator
	// excludes it from bounded windows instead of the whole read failing.
	if date, err := core.ParseDate(dateStr); err == nil {
		t.Date = date
	} else {
		slog.Warn("Stored transaction has malformed date",
			"id", t.ID, applog.FieldDate, dateStr)
	}

	return t, nil
}
