package store

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"spend/internal/core"

	_ "modernc.org/sqlite"
)

// SQLiteStore persists transactions in a local SQLite database.
type SQLiteStore struct {
	db *sql.DB
}

func NewSQLiteStore(dbPath string) (*SQLiteStore, error) {
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

	return &SQLiteStore{db: db}, nil
}

func (s *SQLiteStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

func (s *SQLiteStore) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

func (s *SQLiteStore) Create(ctx context.Context, t core.Transaction) (string, error) {
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO transactions (description, amount, category, date, created_at)
		 VALUES (?, ?, ?, ?, ?)`,
		t.Description, t.Amount, t.Category, t.Date.String(), t.CreatedAt.UTC().Format(time.RFC3339))
	if err != nil {
		return "", fmt.Errorf("insert transaction: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return "", fmt.Errorf("last insert id: %w", err)
	}

	slog.InfoContext(ctx, "Transaction saved to SQLite",
		"id", id,
		"description", t.Description,
		"amount", t.Amount,
		"category", t.Category,
		"date", t.Date.String())

	return strconv.FormatInt(id, 10), nil
}

// List returns all transactions ordered by date descending. The date column
// holds YYYY-MM-DD text, so lexicographic order matches calendar order.
func (s *SQLiteStore) List(ctx context.Context) ([]core.Transaction, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, description, amount, category, date, created_at
		 FROM transactions ORDER BY date DESC`)
	if err != nil {
		return nil, fmt.Errorf("list transactions: %w", err)
	}
	defer rows.Close()

	var txs []core.Transaction
	for rows.Next() {
		var (
			id        int64
			t         core.Transaction
			dateStr   string
			createdAt string
		)
		if err := rows.Scan(&id, &t.Description, &t.Amount, &t.Category, &dateStr, &createdAt); err != nil {
			return nil, fmt.Errorf("scan transaction: %w", err)
		}
		t.ID = strconv.FormatInt(id, 10)
		if t.Date, err = core.ParseDate(dateStr); err != nil {
			return nil, fmt.Errorf("parse stored date %q: %w", dateStr, err)
		}
		if ts, perr := time.Parse(time.RFC3339, createdAt); perr == nil {
			t.CreatedAt = ts
		}
		txs = append(txs, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate transactions: %w", err)
	}
	return txs, nil
}

func (s *SQLiteStore) Update(ctx context.Context, id string, t core.Transaction) error {
	numID, err := parseID(id)
	if err != nil {
		return err
	}

	res, err := s.db.ExecContext(ctx,
		`UPDATE transactions SET description = ?, amount = ?, category = ?, date = ?
		 WHERE id = ?`,
		t.Description, t.Amount, t.Category, t.Date.String(), numID)
	if err != nil {
		return fmt.Errorf("update transaction: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if affected == 0 {
		return ErrNotFound
	}

	slog.InfoContext(ctx, "Transaction updated", "id", numID)
	return nil
}

func (s *SQLiteStore) Delete(ctx context.Context, id string) error {
	numID, err := parseID(id)
	if err != nil {
		return err
	}

	res, err := s.db.ExecContext(ctx, `DELETE FROM transactions WHERE id = ?`, numID)
	if err != nil {
		return fmt.Errorf("delete transaction: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if affected == 0 {
		return ErrNotFound
	}

	slog.InfoContext(ctx, "Transaction deleted", "id", numID)
	return nil
}

func parseID(id string) (int64, error) {
	n, err := strconv.ParseInt(id, 10, 64)
	if err != nil {
		return 0, ErrInvalidID
	}
	return n, nil
}
