package core

import (
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	cases := []struct {
		in string
		ok bool
	}{
		{"2025-01-01", true},
		{"2024-02-29", true},
		{" 2025-06-15 ", true},
		{"2023-02-29", false},
		{"2025-13-01", false},
		{"not a date", false},
		{"", false},
	}
	for i, tc := range cases {
		d, err := ParseDate(tc.in)
		if tc.ok && err != nil {
			t.Fatalf("case %d expected ok, got %v", i, err)
		}
		if !tc.ok && err == nil {
			t.Fatalf("case %d expected error, got %v", i, d)
		}
	}
}

func TestParseAmount(t *testing.T) {
	cases := []struct {
		in   string
		want float64
		ok   bool
	}{
		{"12.50", 12.50, true},
		{"0", 0, true},
		{" 99 ", 99, true},
		{"abc", 0, false},
		{"", 0, false},
		{"-1", 0, false},
		{"NaN", 0, false},
		{"Inf", 0, false},
	}
	for i, tc := range cases {
		got, err := ParseAmount(tc.in)
		if tc.ok {
			if err != nil {
				t.Fatalf("case %d expected ok, got %v", i, err)
			}
			if got != tc.want {
				t.Fatalf("case %d got %v, want %v", i, got, tc.want)
			}
			continue
		}
		if err == nil {
			t.Fatalf("case %d expected error, got %v", i, got)
		}
	}
}

func TestNormalizeCategory(t *testing.T) {
	if got := NormalizeCategory("  Food "); got != "food" {
		t.Fatalf("got %q", got)
	}
	if !KnownCategory("personal care") {
		t.Fatal("personal care should be known")
	}
	if KnownCategory("crypto") {
		t.Fatal("crypto should not be known")
	}
}

func TestTransactionValidate(t *testing.T) {
	good := Transaction{
		Description: "groceries",
		Amount:      42.10,
		Category:    "food",
		Date:        NewDate(2025, 6, 15),
	}
	if err := good.Validate(); err != nil {
		t.Fatalf("expected ok, got %v", err)
	}

	bads := []Transaction{
		{Description: "", Amount: 1, Category: "food", Date: NewDate(2025, 1, 1)},
		{Description: "x", Amount: -1, Category: "food", Date: NewDate(2025, 1, 1)},
		{Description: "x", Amount: 1, Category: "", Date: NewDate(2025, 1, 1)},
		{Description: "x", Amount: 1, Category: "food", Date: Date{Time: time.Time{}}},
	}
	for i, tx := range bads {
		if err := tx.Validate(); err == nil {
			t.Fatalf("case %d expected error", i)
		}
	}
}

func TestDateJSONRoundTrip(t *testing.T) {
	d := NewDate(2024, 2, 29)
	data, err := d.MarshalJSON()
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(data) != `"2024-02-29"` {
		t.Fatalf("got %s", data)
	}
	var back Date
	if err := back.UnmarshalJSON(data); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !back.Equal(d.Time) {
		t.Fatalf("round trip mismatch: %v != %v", back, d)
	}
}

func TestBudgetsLimit(t *testing.T) {
	b := DefaultBudgets()
	if limit, ok := b.Limit("housing"); !ok || limit != 1000 {
		t.Fatalf("housing limit = %v, %v", limit, ok)
	}
	if _, ok := b.Limit("crypto"); ok {
		t.Fatal("crypto should not be budgeted")
	}
	if len(b) != 10 {
		t.Fatalf("expected 10 default entries, got %d", len(b))
	}
}

func TestBudgetsValidate(t *testing.T) {
	if err := (Budgets{{Category: "food", Limit: 100}}).Validate(); err != nil {
		t.Fatalf("expected ok, got %v", err)
	}
	if err := (Budgets{{Category: "", Limit: 100}}).Validate(); err == nil {
		t.Fatal("expected error for empty category")
	}
	if err := (Budgets{{Category: "food", Limit: -5}}).Validate(); err == nil {
		t.Fatal("expected error for negative limit")
	}
}
