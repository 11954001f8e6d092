package report

import (
	"math"
	"testing"

	"spend/internal/core"
)

func tx(desc string, amount float64, category string, year, month, day int) core.Transaction {
	return core.Transaction{
		Description: desc,
		Amount:      amount,
		Category:    category,
		Date:        core.NewDate(year, month, day),
	}
}

func TestTotalSpend(t *testing.T) {
	if got := TotalSpend(nil); got != 0 {
		t.Fatalf("empty input: got %v, want 0", got)
	}
	txs := []core.Transaction{
		tx("a", 10.5, "food", 2025, 6, 1),
		tx("b", 4.5, "shopping", 2025, 6, 2),
		tx("c", 5, "food", 2025, 6, 3),
	}
	if got := TotalSpend(txs); got != 20 {
		t.Fatalf("got %v, want 20", got)
	}
}

func TestCategoryTotalsSparse(t *testing.T) {
	txs := []core.Transaction{
		tx("a", 10, "food", 2025, 6, 1),
		tx("b", 5, "food", 2025, 6, 2),
		tx("c", 7, "others", 2025, 6, 3),
	}
	totals := CategoryTotals(txs)
	if len(totals) != 2 {
		t.Fatalf("expected 2 categories, got %d", len(totals))
	}
	if totals["food"] != 15 || totals["others"] != 7 {
		t.Fatalf("unexpected totals: %v", totals)
	}
	if _, ok := totals["housing"]; ok {
		t.Fatal("housing must not be padded into the totals")
	}
}

// Category totals partition the total spend.
func TestCategoryTotalsPartitionSum(t *testing.T) {
	txs := []core.Transaction{
		tx("a", 10.10, "food", 2025, 6, 1),
		tx("b", 0.20, "shopping", 2025, 6, 2),
		tx("c", 3.33, "food", 2025, 6, 3),
		tx("d", 99.99, "others", 2025, 6, 4),
	}
	var sum float64
	for _, v := range CategoryTotals(txs) {
		sum += v
	}
	if diff := math.Abs(sum - TotalSpend(txs)); diff > 1e-9 {
		t.Fatalf("partition sum differs from total by %v", diff)
	}
}

func TestCategoryShareOrder(t *testing.T) {
	txs := []core.Transaction{
		tx("a", 1, "shopping", 2025, 6, 1),
		tx("b", 2, "food", 2025, 6, 2),
		tx("c", 3, "shopping", 2025, 6, 3),
		tx("d", 4, "others", 2025, 6, 4),
	}
	share := CategoryShare(txs)
	wantOrder := []string{"shopping", "food", "others"}
	if len(share) != len(wantOrder) {
		t.Fatalf("expected %d entries, got %d", len(wantOrder), len(share))
	}
	for i, name := range wantOrder {
		if share[i].Name != name {
			t.Fatalf("entry %d = %q, want %q (first-seen order)", i, share[i].Name, name)
		}
	}
	if share[0].Value != 4 {
		t.Fatalf("shopping value = %v, want 4", share[0].Value)
	}
}

func TestCategoryShareRounding(t *testing.T) {
	txs := []core.Transaction{
		tx("a", 0.1, "food", 2025, 6, 1),
		tx("b", 0.2, "food", 2025, 6, 2),
	}
	share := CategoryShare(txs)
	if share[0].Value != 0.3 {
		t.Fatalf("value = %v, want 0.3 after display rounding", share[0].Value)
	}
}

func TestCategoryShareSumsToTotal(t *testing.T) {
	txs := []core.Transaction{
		tx("a", 12.34, "food", 2025, 6, 1),
		tx("b", 56.78, "shopping", 2025, 6, 2),
		tx("c", 9.01, "food", 2025, 6, 3),
	}
	var sum float64
	for _, s := range CategoryShare(txs) {
		sum += s.Value
	}
	if diff := math.Abs(sum - TotalSpend(txs)); diff > 0.01*float64(len(txs)) {
		t.Fatalf("share sum %v too far from total %v", sum, TotalSpend(txs))
	}
}

func TestDaysInMonth(t *testing.T) {
	cases := []struct {
		year, month, want int
	}{
		{2024, 2, 29},
		{2023, 2, 28},
		{2000, 2, 29},
		{1900, 2, 28},
		{2025, 1, 31},
		{2025, 4, 30},
		{2025, 12, 31},
	}
	for _, tc := range cases {
		if got := DaysInMonth(tc.year, tc.month); got != tc.want {
			t.Fatalf("DaysInMonth(%d, %d) = %d, want %d", tc.year, tc.month, got, tc.want)
		}
	}
}

func TestDailySeriesDense(t *testing.T) {
	txs := []core.Transaction{
		tx("a", 10, "food", 2024, 2, 1),
		tx("b", 5, "food", 2024, 2, 1),
		tx("c", 7, "others", 2024, 2, 29),
		tx("d", 100, "food", 2024, 3, 1), // other month, filtered out
	}
	series := DailySeries(txs, 2024, 2)
	if len(series) != 29 {
		t.Fatalf("February 2024 should have 29 entries, got %d", len(series))
	}
	if series[0].Day != 1 || series[0].Amount != 15 {
		t.Fatalf("day 1 = %+v", series[0])
	}
	if series[28].Day != 29 || series[28].Amount != 7 {
		t.Fatalf("day 29 = %+v", series[28])
	}
	for _, e := range series[1:28] {
		if e.Amount != 0 {
			t.Fatalf("day %d should be zero, got %v", e.Day, e.Amount)
		}
	}
}

func TestDailySeriesEmptyMonth(t *testing.T) {
	txs := []core.Transaction{tx("a", 10, "food", 2025, 1, 15)}
	series := DailySeries(txs, 2023, 2)
	if len(series) != 28 {
		t.Fatalf("February 2023 should have 28 entries, got %d", len(series))
	}
	for _, e := range series {
		if e.Amount != 0 {
			t.Fatalf("day %d should be zero, got %v", e.Day, e.Amount)
		}
	}
}

func TestBudgetComparison(t *testing.T) {
	budgets := core.Budgets{
		{Category: "food", Limit: 500},
		{Category: "transportation", Limit: 300},
	}
	txs := []core.Transaction{
		tx("a", 600, "food", 2025, 6, 1),
		tx("b", 50, "crypto", 2025, 6, 2), // not budgeted, excluded
	}
	rows := BudgetComparison(txs, budgets)
	if len(rows) != 2 {
		t.Fatalf("expected one row per budget entry, got %d", len(rows))
	}
	if rows[0].Category != "food" || rows[0].Actual != 600 || rows[0].Remaining != -100 {
		t.Fatalf("food row = %+v", rows[0])
	}
	if rows[1].Category != "transportation" || rows[1].Actual != 0 || rows[1].Remaining != 300 {
		t.Fatalf("transportation row = %+v", rows[1])
	}
}

func TestGenerateInsightsOverspend(t *testing.T) {
	rows := []ComparisonRow{{Category: "food", Budget: 500, Actual: 600, Remaining: -100}}
	insights := GenerateInsights(rows)
	if len(insights) != 1 {
		t.Fatalf("expected 1 insight, got %d", len(insights))
	}
	want := "Over budget in food by $100.00"
	if insights[0] != want {
		t.Fatalf("got %q, want %q", insights[0], want)
	}
}

func TestGenerateInsightsNearDepletion(t *testing.T) {
	rows := []ComparisonRow{{Category: "entertainment", Budget: 200, Actual: 170, Remaining: 30}}
	insights := GenerateInsights(rows)
	if len(insights) != 1 {
		t.Fatalf("expected 1 insight, got %d", len(insights))
	}
	want := "entertainment budget is nearly depleted (15.0% remaining)"
	if insights[0] != want {
		t.Fatalf("got %q, want %q", insights[0], want)
	}
}

func TestGenerateInsightsQuietRows(t *testing.T) {
	rows := []ComparisonRow{
		{Category: "food", Budget: 500, Actual: 100, Remaining: 400},
		{Category: "housing", Budget: 1000, Actual: 0, Remaining: 1000},
	}
	if insights := GenerateInsights(rows); len(insights) != 0 {
		t.Fatalf("expected no insights, got %v", insights)
	}
}

func TestGenerateInsightsOrderFollowsRows(t *testing.T) {
	rows := []ComparisonRow{
		{Category: "shopping", Budget: 400, Actual: 900, Remaining: -500},
		{Category: "food", Budget: 500, Actual: 450, Remaining: 50},
	}
	insights := GenerateInsights(rows)
	if len(insights) != 2 {
		t.Fatalf("expected 2 insights, got %d", len(insights))
	}
	if insights[0] != "Over budget in shopping by $500.00" {
		t.Fatalf("first insight = %q", insights[0])
	}
	if insights[1] != "food budget is nearly depleted (10.0% remaining)" {
		t.Fatalf("second insight = %q", insights[1])
	}
}
