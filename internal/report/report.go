package report

import (
	"math"
	"time"

	"spend/internal/core"
)

// The functions in this package are pure: the same transaction snapshot (and
// budget set) always yields the same output. Sums run over raw float64
// values; rounding happens only on values meant for display.

// CategoryValue is a named slice of the total, used for chart segments.
type CategoryValue struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
}

// DayAmount is the spend for one day of a month.
type DayAmount struct {
	Day    int     `json:"day"`
	Amount float64 `json:"amount"`
}

// ComparisonRow reports budgeted vs actual spend for one category.
// Remaining goes negative on overspend; it is never clamped.
type ComparisonRow struct {
	Category  string  `json:"category"`
	Budget    float64 `json:"budget"`
	Actual    float64 `json:"actual"`
	Remaining float64 `json:"remaining"`
}

// TotalSpend sums all transaction amounts. Empty input yields 0.
func TotalSpend(txs []core.Transaction) float64 {
	var total float64
	for _, t := range txs {
		total += t.Amount
	}
	return total
}

// CategoryTotals groups transactions by category, summing amounts. The map is
// sparse: categories without transactions do not appear.
func CategoryTotals(txs []core.Transaction) map[string]float64 {
	totals := make(map[string]float64)
	for _, t := range txs {
		totals[t.Category] += t.Amount
	}
	return totals
}

// CategoryShare returns per-category totals in first-seen order, each value
// rounded to two decimals for display. The order fixes chart segment order.
func CategoryShare(txs []core.Transaction) []CategoryValue {
	totals := make(map[string]float64)
	var order []string
	for _, t := range txs {
		if _, seen := totals[t.Category]; !seen {
			order = append(order, t.Category)
		}
		totals[t.Category] += t.Amount
	}

	share := make([]CategoryValue, 0, len(order))
	for _, name := range order {
		share = append(share, CategoryValue{Name: name, Value: round2(totals[name])})
	}
	return share
}

// DaysInMonth returns the number of calendar days in the given month (1-12),
// leap years included.
func DaysInMonth(year, month int) int {
	// Day 0 of the next month is the last day of this one.
	return time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// DailySeries sums amounts per day for transactions falling in the given year
// and month (1-indexed). The result is dense: one entry per calendar day,
// zero for days without transactions, so a chart axis never has gaps.
func DailySeries(txs []core.Transaction, year, month int) []DayAmount {
	perDay := make(map[int]float64)
	for _, t := range txs {
		if t.Date.Year() != year || t.Date.Month() != month {
			continue
		}
		perDay[t.Date.Day()] += t.Amount
	}

	days := DaysInMonth(year, month)
	series := make([]DayAmount, days)
	for d := 1; d <= days; d++ {
		series[d-1] = DayAmount{Day: d, Amount: perDay[d]}
	}
	return series
}

// BudgetComparison produces one row per budget entry, in budget order.
// Categories with transactions but no budget entry are not reported.
func BudgetComparison(txs []core.Transaction, budgets core.Budgets) []ComparisonRow {
	totals := CategoryTotals(txs)
	rows := make([]ComparisonRow, 0, len(budgets))
	for _, e := range budgets {
		actual := totals[e.Category]
		rows = append(rows, ComparisonRow{
			Category:  e.Category,
			Budget:    e.Limit,
			Actual:    actual,
			Remaining: e.Limit - actual,
		})
	}
	return rows
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
