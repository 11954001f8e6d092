package store

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"spend/internal/core"

	_ "github.com/lib/pq"
)

const createTransactionsTable = `
CREATE TABLE IF NOT EXISTS transactions (
    id BIGSERIAL PRIMARY KEY,
    description TEXT NOT NULL,
    amount DOUBLE PRECISION NOT NULL,
    category TEXT NOT NULL,
    date DATE NOT NULL,
    created_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP
)`

// PostgresStore persists transactions in a PostgreSQL database.
type PostgresStore struct {
	db *sql.DB
}

func NewPostgresStore(connStr string) (*PostgresStore, error) {
	db, err := sql.Open("postgres", connStr)
	if err != nil {
		return nil, fmt.Errorf("open postgres database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	if _, err := db.Exec(createTransactionsTable); err != nil {
		db.Close()
		return nil, fmt.Errorf("create transactions table: %w", err)
	}

	return &PostgresStore{db: db}, nil
}

func (s *PostgresStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

func (s *PostgresStore) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

func (s *PostgresStore) Create(ctx context.Context, t core.Transaction) (string, error) {
	var id int64
	err := s.db.QueryRowContext(ctx,
		`INSERT INTO transactions (description, amount, category, date, created_at)
		 VALUES ($1, $2, $3, $4, $5) RETURNING id`,
		t.Description, t.Amount, t.Category, t.Date.Time, t.CreatedAt.UTC()).Scan(&id)
	if err != nil {
		return "", fmt.Errorf("insert transaction: %w", err)
	}

	slog.InfoContext(ctx, "Transaction saved to Postgres",
		"id", id,
		"description", t.Description,
		"amount", t.Amount,
		"category", t.Category)

	return strconv.FormatInt(id, 10), nil
}

func (s *PostgresStore) List(ctx context.Context) ([]core.Transaction, error) {
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
			date      time.Time
			createdAt time.Time
		)
		if err := rows.Scan(&id, &t.Description, &t.Amount, &t.Category, &date, &createdAt); err != nil {
			return nil, fmt.Errorf("scan transaction: %w", err)
		}
		t.ID = strconv.FormatInt(id, 10)
		t.Date = core.NewDate(date.Year(), int(date.Month()), date.Day())
		t.CreatedAt = createdAt
		txs = append(txs, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate transactions: %w", err)
	}
	return txs, nil
}

func (s *PostgresStore) Update(ctx context.Context, id string, t core.Transaction) error {
	numID, err := parseID(id)
	if err != nil {
		return err
	}

	res, err := s.db.ExecContext(ctx,
		`UPDATE transactions SET description = $1, amount = $2, category = $3, date = $4
		 WHERE id = $5`,
		t.Description, t.Amount, t.Category, t.Date.Time, numID)
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
	return nil
}

func (s *PostgresStore) Delete(ctx context.Context, id string) error {
	numID, err := parseID(id)
	if err != nil {
		return err
	}

	res, err := s.db.ExecContext(ctx, `DELETE FROM transactions WHERE id = $1`, numID)
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
	return nil
}
