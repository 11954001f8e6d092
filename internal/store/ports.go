package store

import (
	"context"
	"errors"

	"spend/internal/core"
)

var (
	// ErrNotFound means the id does not resolve to an existing transaction.
	ErrNotFound = errors.New("transaction not found")
	// ErrInvalidID means the id is not a well-formed store identifier.
	ErrInvalidID = errors.New("invalid transaction id")
)

// TransactionStore is the port implemented by each persistence backend.
// List returns all transactions ordered by date descending; filtering by
// month happens in the report package, not here.
type TransactionStore interface {
	Create(ctx context.Context, t core.Transaction) (string, error)
	List(ctx context.Context) ([]core.Transaction, error)
	Update(ctx context.Context, id string, t core.Transaction) error
	Delete(ctx context.Context, id string) error
	Ping(ctx context.Context) error
	Close() error
}
