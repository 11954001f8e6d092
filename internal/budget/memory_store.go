package budget

import (
	"context"
	"sync"

	"spend/internal/core"
)

// MemoryStore holds budgets in memory, for tests and the memory backend.
type MemoryStore struct {
	mu      sync.Mutex
	budgets core.Budgets
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) Load(_ context.Context) (core.Budgets, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.budgets == nil {
		return core.DefaultBudgets(), nil
	}
	out := make(core.Budgets, len(s.budgets))
	copy(out, s.budgets)
	return out, nil
}

func (s *MemoryStore) Save(_ context.Context, budgets core.Budgets) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.budgets = make(core.Budgets, len(budgets))
	copy(s.budgets, budgets)
	return nil
}
