// Package store provides the SQLite-backed transaction and category store.
// It owns record validation; the forecasting engine assumes well-formed rows
// and never touches the database.
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/shopspring/decimal"
	_ "modernc.org/sqlite" // register sqlite driver

	"flowcast/internal/model"
)

// ErrNotFound is returned when a transaction ID does not exist.
var ErrNotFound = errors.New("transaction not found")

const (
	dateFormat = "2006-01-02"
)

// Store wraps the SQLite database holding transactions and categories.
type Store struct {
	db *sql.DB
}

// DataDir returns the XDG-compliant data directory.
func DataDir() string {
	if xdg := os.Getenv("XDG_DATA_HOME"); xdg != "" {
		return filepath.Join(xdg, "flowcast")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".local", "share", "flowcast")
}

// DefaultPath returns the full path to the default database file.
func DefaultPath() string {
	return filepath.Join(DataDir(), "flowcast.db")
}

// Open opens or creates the database at the given path and applies the schema.
func Open(dbPath string) (*Store, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("creating data dir: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(wal)&_pragma=synchronous(normal)&_pragma=foreign_keys(on)")
	if err != nil {
		return nil, fmt.Errorf("opening db: %w", err)
	}

	if _, err := db.Exec(schemaSQL); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	s := &Store{db: db}
	if err := s.seedCategories(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("seeding categories: %w", err)
	}
	return s, nil
}

// Close closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) seedCategories() error {
	var count int
	if err := s.db.QueryRow("SELECT COUNT(*) FROM categories").Scan(&count); err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	for _, c := range defaultCategories {
		if _, err := tx.Exec("INSERT INTO categories (name, type) VALUES (?, ?)", c.name, c.typ); err != nil {
			return err
		}
	}
	return tx.Commit()
}

// validate enforces the data-entry invariants. Records that pass here are
// what the engine is entitled to assume: positive amounts, known enums, and
// a recurrence end (if any) no earlier than the anchor.
func validate(t model.Transaction) error {
	if !t.Type.Valid() {
		return fmt.Errorf("invalid transaction type %q", t.Type)
	}
	if !t.Amount.IsPositive() {
		return fmt.Errorf("amount must be positive, got %s", t.Amount)
	}
	if t.Recurrence != "" && !t.Recurrence.Valid() {
		return fmt.Errorf("invalid recurrence %q", t.Recurrence)
	}
	if t.Date.IsZero() {
		return errors.New("date is required")
	}
	if t.RecurrenceEnd != nil && t.RecurrenceEnd.Before(t.Date) {
		return errors.New("recurrence end precedes the transaction date")
	}
	return nil
}

// GetAll returns every stored transaction ordered by date, then ID.
func (s *Store) GetAll(ctx context.Context) ([]model.Transaction, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT
		id, type, amount, description, category, date, recurrence, recurrence_end,
		created_at, updated_at
		FROM transactions ORDER BY date, id`)
	if err != nil {
		return nil, fmt.Errorf("fetching transactions: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var txs []model.Transaction
	for rows.Next() {
		t, err := scanTransaction(rows)
		if err != nil {
			return nil, err
		}
		txs = append(txs, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("fetching transactions: %w", err)
	}
	return txs, nil
}

// GetByID returns one transaction or ErrNotFound.
func (s *Store) GetByID(ctx context.Context, id int64) (model.Transaction, error) {
	row := s.db.QueryRowContext(ctx, `SELECT
		id, type, amount, description, category, date, recurrence, recurrence_end,
		created_at, updated_at
		FROM transactions WHERE id = ?`, id)

	t, err := scanTransaction(row)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Transaction{}, ErrNotFound
	}
	if err != nil {
		return model.Transaction{}, err
	}
	return t, nil
}

// Create validates and inserts a transaction, filling in its ID and timestamps.
func (s *Store) Create(ctx context.Context, t *model.Transaction) error {
	if err := validate(*t); err != nil {
		return err
	}
	if t.Recurrence == "" {
		t.Recurrence = model.RecurNone
	}

	now := time.Now().UTC()
	res, err := s.db.ExecContext(ctx, `INSERT INTO transactions
		(type, amount, description, category, date, recurrence, recurrence_end, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		string(t.Type), t.Amount.String(), t.Description, t.Category,
		t.Date.Format(dateFormat), string(t.Recurrence), nullableDate(t.RecurrenceEnd),
		now.Format(time.RFC3339), now.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("creating transaction: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("creating transaction: %w", err)
	}
	t.ID = id
	t.CreatedAt = now
	t.UpdatedAt = now
	return nil
}

// Update validates and rewrites an existing transaction.
func (s *Store) Update(ctx context.Context, t model.Transaction) error {
	if err := validate(t); err != nil {
		return err
	}

	now := time.Now().UTC()
	res, err := s.db.ExecContext(ctx, `UPDATE transactions SET
		type = ?, amount = ?, description = ?, category = ?, date = ?,
		recurrence = ?, recurrence_end = ?, updated_at = ?
		WHERE id = ?`,
		string(t.Type), t.Amount.String(), t.Description, t.Category,
		t.Date.Format(dateFormat), string(t.Recurrence), nullableDate(t.RecurrenceEnd),
		now.Format(time.RFC3339), t.ID,
	)
	if err != nil {
		return fmt.Errorf("updating transaction %d: %w", t.ID, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("updating transaction %d: %w", t.ID, err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes a transaction by ID.
func (s *Store) Delete(ctx context.Context, id int64) error {
	res, err := s.db.ExecContext(ctx, "DELETE FROM transactions WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("deleting transaction %d: %w", id, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("deleting transaction %d: %w", id, err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// Count returns the number of stored transactions.
func (s *Store) Count(ctx context.Context) (int, error) {
	var count int
	err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM transactions").Scan(&count)
	return count, err
}

// ListCategories returns all categories ordered by type, then name.
func (s *Store) ListCategories(ctx context.Context) ([]model.Category, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT id, name, type FROM categories ORDER BY type, name")
	if err != nil {
		return nil, fmt.Errorf("fetching categories: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var cats []model.Category
	for rows.Next() {
		var c model.Category
		var typ string
		if err := rows.Scan(&c.ID, &c.Name, &typ); err != nil {
			return nil, err
		}
		c.Type = model.TransactionType(typ)
		cats = append(cats, c)
	}
	return cats, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanTransaction(row rowScanner) (model.Transaction, error) {
	var t model.Transaction
	var typ, amount, date, recurrence, createdAt, updatedAt string
	var recurrenceEnd sql.NullString

	err := row.Scan(&t.ID, &typ, &amount, &t.Description, &t.Category,
		&date, &recurrence, &recurrenceEnd, &createdAt, &updatedAt)
	if err != nil {
		return model.Transaction{}, err
	}

	t.Type = model.TransactionType(typ)
	t.Recurrence = model.Recurrence(recurrence)

	t.Amount, err = decimal.NewFromString(amount)
	if err != nil {
		return model.Transaction{}, fmt.Errorf("transaction %d: bad amount %q: %w", t.ID, amount, err)
	}
	t.Date, err = time.Parse(dateFormat, date)
	if err != nil {
		return model.Transaction{}, fmt.Errorf("transaction %d: bad date %q: %w", t.ID, date, err)
	}
	if recurrenceEnd.Valid && recurrenceEnd.String != "" {
		end, err := time.Parse(dateFormat, recurrenceEnd.String)
		if err != nil {
			return model.Transaction{}, fmt.Errorf("transaction %d: bad recurrence end %q: %w", t.ID, recurrenceEnd.String, err)
		}
		t.RecurrenceEnd = &end
	}
	if ts, err := time.Parse(time.RFC3339, createdAt); err == nil {
		t.CreatedAt = ts
	}
	if ts, err := time.Parse(time.RFC3339, updatedAt); err == nil {
		t.UpdatedAt = ts
	}
	return t, nil
}

func nullableDate(t *time.Time) any {
	if t == nil {
		return nil
	}
	return t.Format(dateFormat)
}
