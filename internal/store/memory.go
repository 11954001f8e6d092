package store

import (
	"context"
	"sort"
	"strconv"
	"sync"

	"spend/internal/core"
)

// MemoryStore keeps transactions in memory. Used as the default backend for
// local development and in handler tests.
type MemoryStore struct {
	mu     sync.Mutex
	nextID int64
	items  map[int64]core.Transaction
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{nextID: 1, items: make(map[int64]core.Transaction)}
}

func (s *MemoryStore) Create(_ context.Context, t core.Transaction) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextID
	s.nextID++
	t.ID = strconv.FormatInt(id, 10)
	s.items[id] = t
	return t.ID, nil
}

func (s *MemoryStore) List(_ context.Context) ([]core.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	txs := make([]core.Transaction, 0, len(s.items))
	for _, t := range s.items {
		txs = append(txs, t)
	}
	sort.SliceStable(txs, func(i, j int) bool {
		return txs[i].Date.After(txs[j].Date.Time)
	})
	return txs, nil
}

func (s *MemoryStore) Update(_ context.Context, id string, t core.Transaction) error {
	numID, err := parseID(id)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	existing, ok := s.items[numID]
	if !ok {
		return ErrNotFound
	}
	t.ID = existing.ID
	t.CreatedAt = existing.CreatedAt
	s.items[numID] = t
	return nil
}

func (s *MemoryStore) Delete(_ context.Context, id string) error {
	numID, err := parseID(id)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.items[numID]; !ok {
		return ErrNotFound
	}
	delete(s.items, numID)
	return nil
}

func (s *MemoryStore) Ping(_ context.Context) error {
	return nil
}

func (s *MemoryStore) Close() error {
	return nil
}
