package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"spend/internal/amqp"
	"spend/internal/core"
	"spend/internal/store"
)

// TransactionInput carries the raw field values of a create or update
// request, before type coercion. Amount and date arrive as text from forms
// and JSON alike; the service owns the parse-and-validate step.
type TransactionInput struct {
	Description string
	Amount      string
	Category    string
	Date        string
}

// TransactionService validates input, coerces field types, forwards to the
// store, and publishes lifecycle events for downstream consumers.
type TransactionService struct {
	store  store.TransactionStore
	events *amqp.Client
}

// NewTransactionService creates the service. events may be nil; writes then
// skip event publishing.
func NewTransactionService(st store.TransactionStore, events *amqp.Client) *TransactionService {
	return &TransactionService{store: st, events: events}
}

// Create validates and persists a new transaction, returning the assigned id.
func (s *TransactionService) Create(ctx context.Context, in TransactionInput) (string, error) {
	t, err := coerce(in)
	if err != nil {
		return "", err
	}
	t.CreatedAt = time.Now().UTC()

	id, err := s.store.Create(ctx, t)
	if err != nil {
		return "", fmt.Errorf("create transaction: %w", err)
	}

	s.publishEvent(ctx, amqp.ActionCreated, id)
	return id, nil
}

// List returns all transactions, date descending.
func (s *TransactionService) List(ctx context.Context) ([]core.Transaction, error) {
	txs, err := s.store.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list transactions: %w", err)
	}
	return txs, nil
}

// Update replaces description, amount, category, and date wholesale. All
// four fields are required; a partial update is rejected rather than writing
// empty values.
func (s *TransactionService) Update(ctx context.Context, id string, in TransactionInput) error {
	t, err := coerce(in)
	if err != nil {
		return err
	}

	if err := s.store.Update(ctx, id, t); err != nil {
		return err
	}

	s.publishEvent(ctx, amqp.ActionUpdated, id)
	return nil
}

// Delete removes a transaction by id.
func (s *TransactionService) Delete(ctx context.Context, id string) error {
	if err := s.store.Delete(ctx, id); err != nil {
		return err
	}

	s.publishEvent(ctx, amqp.ActionDeleted, id)
	return nil
}

// Ping reports whether the underlying store is reachable.
func (s *TransactionService) Ping(ctx context.Context) error {
	return s.store.Ping(ctx)
}

func (s *TransactionService) publishEvent(ctx context.Context, action, id string) {
	if s.events == nil {
		return
	}
	// Event delivery is best effort: the write already succeeded locally.
	if err := s.events.PublishTransactionEvent(ctx, action, id); err != nil {
		slog.ErrorContext(ctx, "Failed to publish transaction event",
			"action", action, "id", id, "error", err)
	}
}

// coerce turns raw input into a validated transaction. Missing fields and
// unparseable values fail here, at the service boundary, so an invalid
// amount never reaches the store.
func coerce(in TransactionInput) (core.Transaction, error) {
	if strings.TrimSpace(in.Description) == "" ||
		strings.TrimSpace(in.Amount) == "" ||
		strings.TrimSpace(in.Category) == "" ||
		strings.TrimSpace(in.Date) == "" {
		return core.Transaction{}, core.ErrMissingFields
	}

	amount, err := core.ParseAmount(in.Amount)
	if err != nil {
		return core.Transaction{}, err
	}

	date, err := core.ParseDate(in.Date)
	if err != nil {
		return core.Transaction{}, err
	}

	t := core.Transaction{
		Description: strings.TrimSpace(in.Description),
		Amount:      amount,
		Category:    core.NormalizeCategory(in.Category),
		Date:        date,
	}
	if err := t.Validate(); err != nil {
		return core.Transaction{}, err
	}
	return t, nil
}
