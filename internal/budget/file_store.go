package budget

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"spend/internal/core"
)

// FileStore keeps the budget set as a JSON array on disk. The array form
// preserves entry order across load/save cycles.
type FileStore struct {
	path string
}

func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Load returns the last-saved budgets, or the default set when no file
// exists yet.
func (s *FileStore) Load(ctx context.Context) (core.Budgets, error) {
	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		slog.DebugContext(ctx, "No budgets file, using defaults", "path", s.path)
		return core.DefaultBudgets(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("read budgets file: %w", err)
	}

	var budgets core.Budgets
	if err := json.Unmarshal(data, &budgets); err != nil {
		return nil, fmt.Errorf("decode budgets file: %w", err)
	}
	return budgets, nil
}

// Save overwrites the stored set. The write goes through a temp file and a
// rename so a crash cannot leave a half-written budgets file behind.
func (s *FileStore) Save(ctx context.Context, budgets core.Budgets) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return fmt.Errorf("create budgets directory: %w", err)
	}

	data, err := json.MarshalIndent(budgets, "", "  ")
	if err != nil {
		return fmt.Errorf("encode budgets: %w", err)
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return fmt.Errorf("write budgets file: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("replace budgets file: %w", err)
	}

	slog.InfoContext(ctx, "Budgets saved", "path", s.path, "entries", len(budgets))
	return nil
}
