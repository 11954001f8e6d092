package core

import "math"

// BudgetEntry is a monthly spending limit for a single category.
type BudgetEntry struct {
	Category string  `json:"category"`
	Limit    float64 `json:"limit"`
}

// Budgets is an ordered list of per-category monthly limits. Order is
// significant: comparison rows and insight messages follow it.
type Budgets []BudgetEntry

// Limit returns the limit for a category and whether it is budgeted.
func (b Budgets) Limit(category string) (float64, bool) {
	for _, e := range b {
		if e.Category == category {
			return e.Limit, true
		}
	}
	return 0, false
}

func (b Budgets) Validate() error {
	for _, e := range b {
		if NormalizeCategory(e.Category) == "" {
			return ErrEmptyCategory
		}
		if math.IsNaN(e.Limit) || math.IsInf(e.Limit, 0) || e.Limit < 0 {
			return ErrInvalidAmount
		}
	}
	return nil
}

// DefaultBudgets returns the preset limits used until the user saves their
// own set.
func DefaultBudgets() Budgets {
	return Budgets{
		{Category: "food", Limit: 500},
		{Category: "transportation", Limit: 300},
		{Category: "housing", Limit: 1000},
		{Category: "utilities", Limit: 200},
		{Category: "entertainment", Limit: 200},
		{Category: "healthcare", Limit: 300},
		{Category: "shopping", Limit: 400},
		{Category: "education", Limit: 300},
		{Category: "personal care", Limit: 200},
		{Category: "others", Limit: 200},
	}
}
