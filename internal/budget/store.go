// Package budget persists per-category monthly limits through an injected
// storage port instead of ambient client-local state.
package budget

import (
	"context"

	"spend/internal/core"
)

// Store loads and saves the full budget set. Save overwrites the stored set
// wholesale; there is no partial merge and no check that entries match the
// transaction category set.
type Store interface {
	Load(ctx context.Context) (core.Budgets, error)
	Save(ctx context.Context, budgets core.Budgets) error
}
