package budget

import (
	"context"
	"path/filepath"
	"testing"

	"spend/internal/core"
)

func TestFileStoreDefaultsWhenMissing(t *testing.T) {
	ctx := context.Background()
	s := NewFileStore(filepath.Join(t.TempDir(), "budgets.json"))

	budgets, err := s.Load(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(budgets) != 10 {
		t.Fatalf("expected 10 default entries, got %d", len(budgets))
	}
	if budgets[0].Category != "food" || budgets[0].Limit != 500 {
		t.Fatalf("first default entry = %+v", budgets[0])
	}
}

func TestFileStoreSaveOverwrites(t *testing.T) {
	ctx := context.Background()
	s := NewFileStore(filepath.Join(t.TempDir(), "budgets.json"))

	custom := core.Budgets{
		{Category: "rent", Limit: 1200},
		{Category: "food", Limit: 450},
	}
	if err := s.Save(ctx, custom); err != nil {
		t.Fatalf("save: %v", err)
	}

	loaded, err := s.Load(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(loaded) != 2 {
		t.Fatalf("save must overwrite wholesale, got %d entries", len(loaded))
	}
	if loaded[0].Category != "rent" || loaded[1].Category != "food" {
		t.Fatalf("entry order not preserved: %+v", loaded)
	}

	// A second save replaces everything again, no merge.
	if err := s.Save(ctx, core.Budgets{{Category: "travel", Limit: 300}}); err != nil {
		t.Fatalf("second save: %v", err)
	}
	loaded, _ = s.Load(ctx)
	if len(loaded) != 1 || loaded[0].Category != "travel" {
		t.Fatalf("second save did not overwrite: %+v", loaded)
	}
}

func TestMemoryStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	budgets, err := s.Load(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(budgets) != 10 {
		t.Fatalf("expected defaults before first save, got %d entries", len(budgets))
	}

	if err := s.Save(ctx, core.Budgets{{Category: "food", Limit: 50}}); err != nil {
		t.Fatalf("save: %v", err)
	}
	budgets, _ = s.Load(ctx)
	if len(budgets) != 1 || budgets[0].Limit != 50 {
		t.Fatalf("unexpected budgets after save: %+v", budgets)
	}
}
