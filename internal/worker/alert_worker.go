package worker

import (
	"context"
	"fmt"
	"log/slog"

	"spend/internal/amqp"
	"spend/internal/budget"
	"spend/internal/report"
	"spend/internal/store"
)

// AlertWorker recomputes the budget comparison after every transaction event
// and logs the resulting insight messages, giving budget alerts a home
// outside the request path.
type AlertWorker struct {
	store   store.TransactionStore
	budgets budget.Store
}

func NewAlertWorker(st store.TransactionStore, budgets budget.Store) *AlertWorker {
	return &AlertWorker{store: st, budgets: budgets}
}

// HandleEvent processes a single transaction event from AMQP.
func (w *AlertWorker) HandleEvent(ctx context.Context, ev *amqp.TransactionEvent) error {
	slog.InfoContext(ctx, "Processing transaction event",
		"action", ev.Action,
		"id", ev.ID)

	if _, err := w.CheckBudgets(ctx); err != nil {
		return fmt.Errorf("check budgets: %w", err)
	}
	return nil
}

// CheckBudgets loads a fresh snapshot, logs each current insight at Warn,
// and returns the messages in budget order. Logging lives here so the
// startup and periodic check paths alert the same way the event path does.
func (w *AlertWorker) CheckBudgets(ctx context.Context) ([]string, error) {
	txs, err := w.store.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list transactions: %w", err)
	}

	budgets, err := w.budgets.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load budgets: %w", err)
	}

	rows := report.BudgetComparison(txs, budgets)
	insights := report.GenerateInsights(rows)

	for _, msg := range insights {
		slog.WarnContext(ctx, "Budget alert", "insight", msg)
	}
	if len(insights) == 0 {
		slog.DebugContext(ctx, "All budgets within limits")
	}

	return insights, nil
}
